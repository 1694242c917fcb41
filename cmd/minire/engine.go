package main

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/tanema/minire/src/lstring"
	"github.com/tanema/minire/src/pattern"
)

func (a *app) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search PATTERN SUBJECT",
		Short: "Print the first match of PATTERN anywhere in SUBJECT",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.printMatch(pattern.Search(args[0], args[1]))
		},
	}
}

func (a *app) matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match PATTERN SUBJECT",
		Short: "Print the match of PATTERN at the start of SUBJECT",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.printMatch(pattern.Anchored(args[0], args[1]))
		},
	}
}

func (a *app) findAllCmd() *cobra.Command {
	var showSpans bool
	cmd := &cobra.Command{
		Use:   "findall PATTERN SUBJECT",
		Short: "Print every distinct match of PATTERN in SUBJECT, one per line",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			matches := pattern.FindAllMatches(args[0], args[1])
			for _, m := range matches {
				if showSpans {
					fmt.Fprintf(a.out, "%v\t%v\n", a.span(m.Span), m.Subs)
				} else {
					fmt.Fprintln(a.out, m.Subs)
				}
			}
			if len(matches) == 0 {
				return errNoMatch
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&showSpans, "spans", "s", false, "prefix every match with its span")
	return cmd
}

func (a *app) rangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range CHAR BODY",
		Short: "Print whether CHAR is a member of the bracket class [BODY]",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if utf8.RuneCountInString(args[0]) != 1 {
				return usageErr(fmt.Errorf("bad argument #1 to 'range' (single character expected, got %q)", args[0]))
			}
			ch, _ := utf8.DecodeRuneInString(args[0])
			fmt.Fprintln(a.out, pattern.InRange(ch, args[1]))
			return nil
		},
	}
}

func (a *app) spanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "span SPAN OFFSET",
		Short: `Shift a span like "(2, 5)" by OFFSET`,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			offset, err := strconv.Atoi(args[1])
			if err != nil {
				return usageErr(fmt.Errorf("bad argument #2 to 'span' (integer expected, got %q)", args[1]))
			}
			shifted, err := pattern.ShiftSpan(args[0], offset)
			if err != nil {
				return usageErr(err)
			}
			fmt.Fprintln(a.out, shifted)
			return nil
		},
	}
}

func (a *app) printMatch(m *pattern.Match) error {
	if m == nil {
		return errNoMatch
	}
	text := m.Subs
	if a.colored {
		text = lstring.MatchStyle.Sprint(text)
	}
	fmt.Fprintf(a.out, "%v %v\n", a.span(m.Span), text)
	return nil
}

func (a *app) span(span pattern.Span) string {
	if a.colored {
		return lstring.SpanStyle.Sprint(span)
	}
	return span.String()
}
