package pattern

import (
	"errors"
	"slices"

	"go.uber.org/zap"

	"github.com/tanema/minire/src/lerrors"
)

var (
	ErrInvalidRange       = errors.New("invalid range")
	ErrUnclosedClass      = errors.New("missing ']'")
	ErrDanglingEscape     = errors.New("pattern ends with '\\'")
	ErrDanglingQuantifier = errors.New("'+' has no preceding character")
	ErrSubjectEnd         = errors.New("repetition ran past end of subject")
)

// InRange reports whether ch is a member of the bracket class body (the text
// between '[' and ']'). A body with a '-' is read as the single range around
// its first '-'; every other character is ignored. A '-' on either edge of
// the body is an invalid range and never matches.
func InRange(ch rune, body string) bool {
	ok, err := classify(ch, []rune(body))
	if err != nil {
		logger().Debug("class degraded to no match",
			zap.String("class", body),
			zap.Error(lerrors.New(lerrors.PatternErr, body, slices.Index([]rune(body), '-'), err)),
		)
	}
	return ok
}

func classify(ch rune, body []rune) (bool, error) {
	dash := slices.Index(body, '-')
	if dash < 0 {
		return slices.Contains(body, ch), nil
	} else if dash == 0 || dash == len(body)-1 {
		return false, ErrInvalidRange
	}
	return body[dash-1] <= ch && ch <= body[dash+1], nil
}

// ascii only, \w does not follow unicode letter categories.
func isAlnum(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}
