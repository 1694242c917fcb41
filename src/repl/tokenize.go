package repl

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var ErrUnfinishedString = errors.New("unfinished string")

// tokenize splits a command line into values. Double quoted tokens are Go
// string literals, the bare word nil is nil, bare integers are ints and every
// other bare word is a string taken verbatim, backslashes included.
func tokenize(line string) ([]any, error) {
	tokens := []any{}
	runes := []rune(line)
	for i := 0; i < len(runes); {
		switch ch := runes[i]; {
		case unicode.IsSpace(ch):
			i++
		case ch == '"':
			j := i + 1
			for ; j < len(runes) && runes[j] != '"'; j++ {
				if runes[j] == '\\' {
					j++
				}
			}
			if j >= len(runes) {
				return nil, ErrUnfinishedString
			}
			str, err := strconv.Unquote(string(runes[i : j+1]))
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, str)
			i = j + 1
		default:
			j := i
			for j < len(runes) && !unicode.IsSpace(runes[j]) {
				j++
			}
			tokens = append(tokens, bareword(string(runes[i:j])))
			i = j
		}
	}
	return tokens, nil
}

func bareword(word string) any {
	if word == "nil" {
		return nil
	} else if n, err := strconv.Atoi(word); err == nil && !strings.HasPrefix(word, "+") {
		return n
	}
	return word
}
