package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tanema/minire/src/literal"
	"github.com/tanema/minire/src/lstring"
	"github.com/tanema/minire/src/pattern"
)

type grepOpts struct {
	patterns    []string
	lineNumbers bool
	count       bool
}

func (a *app) grepCmd() *cobra.Command {
	opts := &grepOpts{}
	cmd := &cobra.Command{
		Use:   "grep [-e PATTERN]... [PATTERN] [FILE...]",
		Short: "Print lines of FILEs (or stdin) that contain a match of any PATTERN",
		RunE: func(_ *cobra.Command, args []string) error {
			if len(opts.patterns) == 0 {
				if len(args) == 0 {
					return usageErr(errors.New("grep: no pattern given"))
				}
				opts.patterns, args = args[:1], args[1:]
			}
			return a.grep(opts, args)
		},
	}
	cmd.Flags().StringArrayVarP(&opts.patterns, "regexp", "e", nil, "pattern to search for, may be repeated")
	cmd.Flags().BoolVarP(&opts.lineNumbers, "line-number", "n", false, "prefix lines with their line number")
	cmd.Flags().BoolVarP(&opts.count, "count", "c", false, "only print the number of matching lines")
	return cmd
}

func (a *app) grep(opts *grepOpts, paths []string) error {
	prefilter, err := literal.NewSet(opts.patterns)
	if err != nil {
		return usageErr(err)
	}
	a.logger.Debug("grep", zap.Strings("patterns", opts.patterns), zap.Bool("prefilter", prefilter != nil))

	found := false
	if len(paths) == 0 {
		n, err := a.grepReader(opts, prefilter, "<stdin>", a.in, false)
		if err != nil {
			return usageErr(err)
		}
		found = n > 0
	}
	for _, path := range paths {
		n, err := a.grepFile(opts, prefilter, path, len(paths) > 1)
		if err != nil {
			a.logger.Error("grep failed", zap.String("file", path), zap.Error(err))
			return usageErr(err)
		}
		found = found || n > 0
	}
	if !found {
		return errNoMatch
	}
	return nil
}

func (a *app) grepFile(opts *grepOpts, prefilter *literal.Set, path string, prefix bool) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "opening %v", path)
	}
	defer func() { _ = f.Close() }()
	return a.grepReader(opts, prefilter, path, f, prefix)
}

// grepReader prints the matching lines of src and returns how many there were.
func (a *app) grepReader(opts *grepOpts, prefilter *literal.Set, name string, src io.Reader, prefix bool) (int, error) {
	scanner := bufio.NewScanner(src)
	count := 0
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if !prefilter.MayMatch(line) {
			continue
		}
		spans := matchLine(opts.patterns, line, a.colored)
		if spans == nil {
			continue
		}
		count++
		if opts.count {
			continue
		}
		a.printLine(name, lineNo, line, spans, prefix, opts.lineNumbers)
	}
	if err := scanner.Err(); err != nil {
		return count, errors.Wrapf(err, "reading %v", name)
	}
	if opts.count {
		if prefix {
			fmt.Fprintf(a.out, "%v:", a.file(name))
		}
		fmt.Fprintln(a.out, count)
	}
	return count, nil
}

// matchLine returns nil if no pattern matches line. When all is set it collects
// every match of every pattern for highlighting, otherwise it stops at the
// first match.
func matchLine(patterns []string, line string, all bool) []pattern.Span {
	var spans []pattern.Span
	for _, pat := range patterns {
		if !all {
			if m := pattern.Search(pat, line); m != nil {
				return []pattern.Span{m.Span}
			}
			continue
		}
		for _, m := range pattern.FindAllMatches(pat, line) {
			spans = append(spans, m.Span)
		}
	}
	return spans
}

func (a *app) printLine(name string, lineNo int, line string, spans []pattern.Span, prefix, lineNumbers bool) {
	if prefix {
		fmt.Fprintf(a.out, "%v:", a.file(name))
	}
	if lineNumbers {
		fmt.Fprintf(a.out, "%v:", lineNo)
	}
	if a.colored {
		line = lstring.Highlight(line, spans, lstring.MatchStyle)
	}
	fmt.Fprintln(a.out, line)
}

func (a *app) file(name string) string {
	if a.colored {
		return lstring.FileStyle.Sprint(name)
	}
	return name
}
