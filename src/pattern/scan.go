package pattern

// search scans the subject left to right for the first place the whole
// pattern matches. When a candidate fails, the pattern restarts from its
// first token one character after the candidate's start. Repetitions and
// classes are never retried with a different consumption.
func (m *matcher) search() (Span, bool) {
	var (
		c       cursor
		span    Span
		inMatch bool
	)
	for {
		if c.pat == len(m.pat) || c.src == len(m.src) {
			return Span{}, false
		}
		if m.step(&c) != matched {
			c.pat = 0
			if inMatch {
				inMatch = false
				c.src = span.Start
			}
			c.src++
			continue
		}
		if !inMatch {
			inMatch = true
			span.Start = c.src - 1
		}
		if c.pat == len(m.pat) {
			span.End = c.src
			return span, true
		}
	}
}

// anchored matches the pattern at subject offset 0 only. It succeeds once the
// pattern or the subject is used up, whichever comes first.
func (m *matcher) anchored() (Span, bool) {
	var c cursor
	for {
		if m.step(&c) != matched {
			return Span{}, false
		}
		if c.pat == len(m.pat) || c.src == len(m.src) {
			return Span{Start: 0, End: c.src}, true
		}
	}
}

// collect runs search on every suffix of the subject and returns the
// resulting spans in subject coordinates in discovery order. A span that was
// already found, or that lies inside one that was (the tail of a repetition
// found again from a later offset), is skipped.
func collect(pat, src []rune) []Span {
	spans := []Span{}
	for x := range src {
		rel, ok := newMatcher(pat, src[x:]).search()
		if !ok {
			continue
		}
		abs := rel.Shift(x)
		if !seen(spans, abs) {
			spans = append(spans, abs)
		}
	}
	return spans
}

func seen(spans []Span, span Span) bool {
	for _, s := range spans {
		if s.Contains(span) {
			return true
		}
	}
	return false
}
