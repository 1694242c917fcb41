// Package lerrors is a unified errors package for the pattern engine and its
// front ends so that failures can be formatted and inspected in one way.
package lerrors

import (
	"fmt"
)

type (
	// ErrorKind is an enum to describe where the error originates from.
	ErrorKind int
	// Error captures the errors of minire. It distinguishes between argument,
	// pattern, bounds, span and config errors and formats them accordingly.
	// Engine errors are never returned to callers of the matching functions,
	// they only surface as diagnostics.
	Error struct {
		Kind  ErrorKind
		Pos   int
		Input string
		Err   error
	}
)

const (
	// ArgumentErr is raised when a value of the wrong type is passed to a dynamic entry point.
	ArgumentErr ErrorKind = iota
	// PatternErr is a malformed pattern construct found while matching.
	PatternErr
	// BoundsErr is a cursor running off the end of the subject.
	BoundsErr
	// SpanErr is an unparsable span text.
	SpanErr
	// ConfigErr is an invalid configuration value.
	ConfigErr
)

// New creates an error of a kind at a position of the given input.
func New(kind ErrorKind, input string, pos int, err error) *Error {
	return &Error{Kind: kind, Input: input, Pos: pos, Err: err}
}

func (kind ErrorKind) String() string {
	switch kind {
	case ArgumentErr:
		return "argument"
	case PatternErr:
		return "pattern"
	case BoundsErr:
		return "bounds"
	case SpanErr:
		return "span"
	case ConfigErr:
		return "config"
	default:
		return "unknown"
	}
}

func (err *Error) Error() string {
	switch err.Kind {
	case PatternErr:
		return fmt.Sprintf("Pattern Error: %q:%v %v", err.Input, err.Pos, err.Err)
	case BoundsErr:
		return fmt.Sprintf("Bounds Error: %q:%v %v", err.Input, err.Pos, err.Err)
	case SpanErr:
		return fmt.Sprintf("Span Error: %q %v", err.Input, err.Err)
	case ArgumentErr:
		return fmt.Sprintf("bad argument #%v (%v)", err.Pos, err.Err)
	default:
		return err.Err.Error()
	}
}

func (err *Error) Unwrap() error {
	return err.Err
}
