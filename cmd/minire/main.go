// Package main is the main entrypoint to the minire application
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	err := newApp(os.Stdin, os.Stdout, os.Stderr).execute(os.Args[1:])
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exit *exitError
	if errors.As(err, &exit) {
		if exit.err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", exit.err)
		}
		return exit.code
	}
	fmt.Fprintf(os.Stderr, "%v\n", err)
	return 2
}

// exitError carries the process exit code. A nil err exits silently, which is
// how "no match" is reported.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %v", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

var errNoMatch = &exitError{code: 1}

func usageErr(err error) error {
	return &exitError{code: 2, err: err}
}
