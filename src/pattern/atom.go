package pattern

import (
	"slices"

	"go.uber.org/zap"

	"github.com/tanema/minire/src/lerrors"
)

type (
	// cursor is the pattern/subject position pair of a single search or match.
	cursor struct {
		pat int
		src int
	}
	outcome int
	matcher struct {
		pat []rune
		src []rune
	}
)

const (
	matched outcome = iota
	mismatch
	outOfBounds
	malformed
)

func (o outcome) String() string {
	switch o {
	case matched:
		return "matched"
	case mismatch:
		return "mismatch"
	case outOfBounds:
		return "out of bounds"
	case malformed:
		return "malformed"
	}
	return "unknown"
}

func newMatcher(pat, src []rune) *matcher {
	return &matcher{pat: pat, src: src}
}

// step matches the pattern token at c.pat against the subject character at
// c.src. On success both cursors have moved past what was consumed, on any
// other outcome no trailing advance is made. Bracket classes and escapes may
// already have moved c.pat when they fail.
func (m *matcher) step(c *cursor) outcome {
	if c.pat >= len(m.pat) || c.src >= len(m.src) {
		return outOfBounds
	}
	ch := m.src[c.src]
	switch tok := m.pat[c.pat]; tok {
	case '.':
		if ch == '\n' {
			return mismatch
		}
	case '\\':
		if c.pat+1 >= len(m.pat) {
			return m.degrade(malformed, c.pat, ErrDanglingEscape)
		}
		c.pat++
		switch m.pat[c.pat] {
		case 'w':
			if !isAlnum(ch) {
				return mismatch
			}
		case 'W':
			if isAlnum(ch) {
				return mismatch
			}
		}
	case '[':
		open := c.pat
		end := slices.Index(m.pat[open+1:], ']')
		if end < 0 {
			return m.degrade(malformed, open, ErrUnclosedClass)
		}
		body := m.pat[open+1 : open+1+end]
		c.pat += end + 1
		ok, err := classify(ch, body)
		if err != nil {
			return m.degrade(malformed, open, err)
		} else if !ok {
			return mismatch
		}
	case '+':
		if c.pat == 0 {
			return m.degrade(malformed, c.pat, ErrDanglingQuantifier)
		}
		prev := m.pat[c.pat-1]
		for m.src[c.src] == prev {
			c.src++
			if c.src == len(m.src) {
				c.src--
				return m.degrade(outOfBounds, c.pat, ErrSubjectEnd)
			}
		}
		c.src--
	default:
		if tok != ch {
			return mismatch
		}
	}
	c.pat++
	c.src++
	return matched
}

func (m *matcher) degrade(res outcome, pos int, err error) outcome {
	kind := lerrors.PatternErr
	if res == outOfBounds {
		kind = lerrors.BoundsErr
	}
	logger().Debug("atom degraded to no match",
		zap.String("pattern", string(m.pat)),
		zap.Int("pos", pos),
		zap.Stringer("outcome", res),
		zap.Error(lerrors.New(kind, string(m.pat), pos, err)),
	)
	return res
}
