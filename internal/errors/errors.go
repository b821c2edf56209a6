// Package errors is the single import for error handling: stdlib matching plus
// pkg/errors wrapping, so every wrapped error records where it was wrapped.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

var (
	New = stderrors.New
	Is  = stderrors.Is
	As  = stderrors.As
)

func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf creates a new error with a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Stack formats the stack recorded closest to where err originated, one frame per line.
// It returns "" when no layer of err carries a stack.
func Stack(err error) string {
	var origin stackTracer
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			origin = st
		}
	}
	if origin == nil {
		return ""
	}

	return fmt.Sprintf("%+v", origin.StackTrace())
}
