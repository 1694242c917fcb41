package pattern

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tanema/minire/src/lerrors"
)

type (
	// Span is a start inclusive, end exclusive pair of character offsets into a
	// subject.
	Span struct {
		Start int
		End   int
	}
	// Match is the result of a successful search or anchored match. Subs is
	// always the subject text between the span bounds.
	Match struct {
		Span Span
		Subs string
	}
)

// ErrBadSpan is returned when a span text is not of the form "(start, end)".
var ErrBadSpan = errors.New("expected span of the form (start, end)")

// Shift returns a new span with offset added to both bounds.
func (s Span) Shift(offset int) Span {
	return Span{Start: s.Start + offset, End: s.End + offset}
}

// Contains reports whether other lies completely within s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

func (s Span) String() string {
	return fmt.Sprintf("(%d, %d)", s.Start, s.End)
}

func (m *Match) String() string {
	return fmt.Sprintf("%v %q", m.Span, m.Subs)
}

func newMatch(src []rune, span Span) *Match {
	return &Match{Span: span, Subs: string(src[span.Start:span.End])}
}

// ParseSpan parses the text form of a span, "(start, end)". Whitespace around
// the numbers is ignored.
func ParseSpan(text string) (Span, error) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "(") || !strings.HasSuffix(trimmed, ")") {
		return Span{}, lerrors.New(lerrors.SpanErr, text, 0, ErrBadSpan)
	}
	parts := strings.Split(trimmed[1:len(trimmed)-1], ",")
	if len(parts) != 2 {
		return Span{}, lerrors.New(lerrors.SpanErr, text, 0, ErrBadSpan)
	}
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Span{}, lerrors.New(lerrors.SpanErr, text, 0, err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Span{}, lerrors.New(lerrors.SpanErr, text, 0, err)
	}
	return Span{Start: start, End: end}, nil
}

// ShiftSpan parses a span text, shifts it by offset and formats it again.
//
//	ShiftSpan("(2, 5)", 3) // "(5, 8)"
func ShiftSpan(text string, offset int) (string, error) {
	span, err := ParseSpan(text)
	if err != nil {
		return "", err
	}
	return span.Shift(offset).String(), nil
}
