// Package pattern implements a small regular expression like matcher. Patterns
// are plain strings that are interpreted one character at a time while they
// are matched, there is no compile step.
//
// Pattern Items:
//
//   - x: (where x is not one of the magic characters .\[+) represents the character x itself.
//   - .: (a dot) represents all characters except a newline.
//   - \w: represents all ASCII alphanumeric characters.
//   - \W: represents everything that is not an ASCII alphanumeric character.
//   - \x: (where x is any other character) represents all characters.
//   - [set]: represents the characters in set. If set contains a '-' the class is
//     the range between the characters on either side of the first '-', for
//     instance [a-z]. Only one range is recognized per class.
//   - +: repeats the single pattern character right before it one or more times.
//     It binds to that raw character, so in \w+ it repeats the letter w.
//
// Malformed items, like a range with nothing on one side, an unclosed class or a
// lone '\' at the end of the pattern, never cause an error, they simply do not
// match. A repetition that runs into the end of the subject does not match either.
//
// Positions and spans are counted in characters (runes), not bytes.
package pattern

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var diagnostics atomic.Pointer[zap.Logger]

// SetLogger sets the logger that receives debug diagnostics when a malformed
// pattern item degrades to no match. A nil logger disables diagnostics.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	diagnostics.Store(l)
}

func logger() *zap.Logger {
	if l := diagnostics.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// Search scans through subject looking for the first location where pattern
// matches. It returns nil if no position in subject matches.
func Search(pat, src string) *Match {
	return search([]rune(pat), []rune(src))
}

// Anchored returns a match only if pattern matches at the very beginning of
// subject. Matching stops once either pattern or subject runs out, so a
// pattern longer than subject can still match the whole of subject.
func Anchored(pat, src string) *Match {
	return anchored([]rune(pat), []rune(src))
}

// FindAll returns the text of all matches of pattern in subject, in the order
// they were found.
func FindAll(pat, src string) []string {
	matches := FindAllMatches(pat, src)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Subs
	}
	return out
}

// FindAllMatches searches every suffix of subject and returns each distinct
// match with its span in subject coordinates.
func FindAllMatches(pat, src string) []*Match {
	return findAll([]rune(pat), []rune(src))
}

func search(pat, src []rune) *Match {
	span, ok := newMatcher(pat, src).search()
	if !ok {
		return nil
	}
	return newMatch(src, span)
}

func anchored(pat, src []rune) *Match {
	span, ok := newMatcher(pat, src).anchored()
	if !ok {
		return nil
	}
	return newMatch(src, span)
}

func findAll(pat, src []rune) []*Match {
	spans := collect(pat, src)
	matches := make([]*Match, len(spans))
	for i, span := range spans {
		matches[i] = newMatch(src, span)
	}
	return matches
}
