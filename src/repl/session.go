// Package repl implements the interactive minire session. A Session evaluates
// command lines and is independent of the terminal, Run drives it from a
// readline instance.
package repl

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tanema/minire/src/lerrors"
	"github.com/tanema/minire/src/lstring"
	"github.com/tanema/minire/src/pattern"
)

// Help is printed by the help command.
const Help = `commands:
  search PATTERN SUBJECT   first match anywhere in SUBJECT
  match PATTERN SUBJECT    match at the start of SUBJECT
  findall PATTERN SUBJECT  every distinct match
  range CHAR BODY          is CHAR in the bracket class [BODY]
  span SPAN OFFSET         shift a span like "(2, 5)" by OFFSET
  help                     this message
arguments are separated by spaces, use "double quotes" for spaces and escapes.
nil is the nil value, a trailing \ continues the line.`

type (
	// Session is a repl session. It buffers continued lines until a command is
	// complete.
	Session struct {
		out     io.Writer
		colored bool
		buf     strings.Builder
	}
	command struct {
		args int
		fn   func(s *Session, args []any) error
	}
)

var commands = map[string]command{
	"search":  {2, (*Session).search},
	"match":   {2, (*Session).match},
	"findall": {2, (*Session).findAll},
	"range":   {2, (*Session).inRange},
	"span":    {2, (*Session).span},
	"help":    {0, (*Session).help},
}

// NewSession creates a session writing results to out. If colored is set
// matches are highlighted with the lstring styles.
func NewSession(out io.Writer, colored bool) *Session {
	return &Session{out: out, colored: colored}
}

// Feed adds a line of input. If the line ends in a '\' it is buffered and
// pending is true, otherwise the buffered command is evaluated.
func (s *Session) Feed(line string) (pending bool, err error) {
	if strings.HasSuffix(line, `\`) {
		s.buf.WriteString(strings.TrimSuffix(line, `\`))
		s.buf.WriteString(" ")
		return true, nil
	}
	s.buf.WriteString(line)
	src := s.buf.String()
	s.buf.Reset()
	return false, s.Eval(src)
}

// Pending reports whether a continued line is buffered.
func (s *Session) Pending() bool { return s.buf.Len() > 0 }

// Reset drops any buffered input.
func (s *Session) Reset() { s.buf.Reset() }

// Eval evaluates a single command line.
func (s *Session) Eval(line string) error {
	tokens, err := tokenize(line)
	if err != nil {
		return err
	} else if len(tokens) == 0 {
		return nil
	}
	name, ok := tokens[0].(string)
	if !ok {
		return fmt.Errorf("unknown command %v", tokens[0])
	}
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q, try help", name)
	}
	args := tokens[1:]
	if len(args) != cmd.args {
		return fmt.Errorf("%v expects %v arguments, got %v", name, cmd.args, len(args))
	}
	return cmd.fn(s, args)
}

func (s *Session) search(args []any) error {
	return s.printMatch(args[1], pattern.SearchValue(args[0], args[1]))
}

func (s *Session) match(args []any) error {
	return s.printMatch(args[1], pattern.AnchoredValue(args[0], args[1]))
}

func (s *Session) findAll(args []any) error {
	parts := []string{}
	for _, sub := range pattern.FindAllValue(args[0], args[1]) {
		parts = append(parts, strconv.Quote(sub))
	}
	_, err := fmt.Fprintf(s.out, "[%v]\n", strings.Join(parts, ", "))
	return err
}

func (s *Session) inRange(args []any) error {
	ch, ok := args[0].(string)
	if !ok || utf8.RuneCountInString(ch) != 1 {
		return lerrors.New(lerrors.ArgumentErr, "range", 1, fmt.Errorf("single character expected, got %v", args[0]))
	}
	body, ok := args[1].(string)
	if !ok {
		return lerrors.New(lerrors.ArgumentErr, "range", 2, fmt.Errorf("string expected, got %v", args[1]))
	}
	r, _ := utf8.DecodeRuneInString(ch)
	_, err := fmt.Fprintln(s.out, pattern.InRange(r, body))
	return err
}

func (s *Session) span(args []any) error {
	text, ok := args[0].(string)
	if !ok {
		return lerrors.New(lerrors.ArgumentErr, "span", 1, fmt.Errorf("string expected, got %v", args[0]))
	}
	offset, ok := args[1].(int)
	if !ok {
		return lerrors.New(lerrors.ArgumentErr, "span", 2, fmt.Errorf("integer expected, got %v", args[1]))
	}
	shifted, err := pattern.ShiftSpan(text, offset)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.out, shifted)
	return err
}

func (s *Session) help(_ []any) error {
	_, err := fmt.Fprintln(s.out, Help)
	return err
}

func (s *Session) printMatch(src any, m *pattern.Match) error {
	if m == nil {
		_, err := fmt.Fprintln(s.out, "nil")
		return err
	}
	if !s.colored {
		_, err := fmt.Fprintln(s.out, m)
		return err
	}
	subject, _ := src.(string)
	_, err := fmt.Fprintf(s.out, "%v %v\n",
		lstring.SpanStyle.Sprint(m.Span),
		lstring.Highlight(subject, []pattern.Span{m.Span}, lstring.MatchStyle),
	)
	return err
}
