// Package lstring is a small collection of rune based string utilities used to
// present matches.
package lstring

import (
	"strings"

	"github.com/fatih/color"

	"github.com/tanema/minire/src/pattern"
)

var (
	// MatchStyle is the style matched text is highlighted with.
	MatchStyle = color.New(color.FgRed, color.Bold)
	// SpanStyle is the style spans are written with.
	SpanStyle = color.New(color.FgCyan)
	// FileStyle is the style of file name prefixes.
	FileStyle = color.New(color.FgMagenta)
)

// Highlight writes str with every character covered by one of spans rendered
// in style. Overlapping and adjacent spans are highlighted as one run.
func Highlight(str string, spans []pattern.Span, style *color.Color) string {
	if len(spans) == 0 {
		return str
	}
	runes := []rune(str)
	covered := make([]bool, len(runes))
	for _, span := range spans {
		for i := clamp(span.Start, 0, len(runes)); i < clamp(span.End, 0, len(runes)); i++ {
			covered[i] = true
		}
	}

	var out strings.Builder
	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && covered[j] == covered[i] {
			j++
		}
		if covered[i] {
			out.WriteString(style.Sprint(string(runes[i:j])))
		} else {
			out.WriteString(string(runes[i:j]))
		}
		i = j
	}
	return out.String()
}

func clamp(f, low, high int) int {
	return min(max(f, low), high)
}
