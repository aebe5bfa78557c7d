// Package errors classifies pipeline failures into a small set of codes.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Code is a machine-readable failure class.
type Code string

const (
	CodeUnknown              Code = "UNKNOWN"
	CodeMissingDependency    Code = "MISSING_DEPENDENCY"
	CodeInvalidConfiguration Code = "INVALID_CONFIGURATION"
	CodeInvalidArgument      Code = "INVALID_ARGUMENT"
	CodeResourceUnavailable  Code = "RESOURCE_UNAVAILABLE"
	CodeWriteFailure         Code = "WRITE_FAILURE"
)

// Sentinels for errors.Is matching against a code.
var (
	ErrMissingDependency    = &Error{Code: CodeMissingDependency}
	ErrInvalidConfiguration = &Error{Code: CodeInvalidConfiguration}
	ErrInvalidArgument      = &Error{Code: CodeInvalidArgument}
	ErrResourceUnavailable  = &Error{Code: CodeResourceUnavailable}
	ErrWriteFailure         = &Error{Code: CodeWriteFailure}
)

// Error carries a code, the failing operation and the underlying cause.
type Error struct {
	Code Code
	Op   string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Op != "":
		return e.Op
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports a match when the target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New builds a coded error with a formatted message.
func New(code Code, format string, args ...any) error {
	return &Error{Code: code, Op: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and operation to err. A nil err stays nil.
func Wrap(code Code, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Op: op, Err: err}
}

// CodeOf returns the outermost code found in the chain.
func CodeOf(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
