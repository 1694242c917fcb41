package pattern

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tanema/minire/src/lerrors"
)

// SearchValue is Search for loosely typed callers. Pattern and subject may be
// a string, []byte, []rune or fmt.Stringer. Anything else, including nil, is
// not text and results in no match.
func SearchValue(pat, src any) *Match {
	p, s, ok := textArgs("search", pat, src)
	if !ok {
		return nil
	}
	return search(p, s)
}

// AnchoredValue is Anchored for loosely typed callers, see SearchValue.
func AnchoredValue(pat, src any) *Match {
	p, s, ok := textArgs("match", pat, src)
	if !ok {
		return nil
	}
	return anchored(p, s)
}

// FindAllValue is FindAll for loosely typed callers, see SearchValue. Values
// that are not text result in an empty list.
func FindAllValue(pat, src any) []string {
	p, s, ok := textArgs("findall", pat, src)
	if !ok {
		return []string{}
	}
	matches := findAll(p, s)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Subs
	}
	return out
}

func textArgs(fnName string, pat, src any) ([]rune, []rune, bool) {
	p, ok := toText(pat)
	if !ok {
		argumentDiagnostic(fnName, 1, pat)
		return nil, nil, false
	}
	s, ok := toText(src)
	if !ok {
		argumentDiagnostic(fnName, 2, src)
		return nil, nil, false
	}
	return p, s, true
}

func toText(val any) ([]rune, bool) {
	switch tval := val.(type) {
	case string:
		return []rune(tval), true
	case []byte:
		return []rune(string(tval)), true
	case []rune:
		return tval, true
	case fmt.Stringer:
		return []rune(tval.String()), true
	default:
		return nil, false
	}
}

func argumentDiagnostic(fnName string, pos int, val any) {
	logger().Debug("non text argument treated as no match",
		zap.String("fn", fnName),
		zap.Error(lerrors.New(lerrors.ArgumentErr, fnName, pos, fmt.Errorf("string expected, got %T", val))),
	)
}
