// Package literal provides a prefilter for sets of patterns that contain no
// magic characters. Such a pattern can only match where its text occurs
// verbatim, so a single Aho-Corasick pass can reject lines that no pattern in
// the set could ever match.
package literal

import (
	"strings"

	"github.com/coregx/ahocorasick"
	"github.com/pkg/errors"
)

// SpecialChars are the characters that give a pattern meaning beyond its text.
const SpecialChars = `.\[+`

// Set is a compiled set of literal patterns.
type Set struct {
	auto *ahocorasick.Automaton
}

// IsLiteral reports whether pat is matched as plain text.
func IsLiteral(pat string) bool {
	return pat != "" && !strings.ContainsAny(pat, SpecialChars)
}

// NewSet builds a prefilter for patterns. It returns nil when any of the
// patterns is not literal, because a prefilter over part of the set could
// reject lines the rest of the set matches.
func NewSet(patterns []string) (*Set, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	builder := ahocorasick.NewBuilder()
	for _, pat := range patterns {
		if !IsLiteral(pat) {
			return nil, nil
		}
		builder.AddPattern([]byte(pat))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building literal prefilter")
	}
	return &Set{auto: auto}, nil
}

// MayMatch reports whether line contains any of the literal patterns. A nil
// set lets every line through.
func (s *Set) MayMatch(line string) bool {
	if s == nil {
		return true
	}
	return s.auto.IsMatch([]byte(line))
}
