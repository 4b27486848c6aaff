package shell

import (
	"errors"
	"fmt"
)

// Code classifies shell failures
type Code string

const (
	CodeTokenization     Code = "TOKENIZATION"
	CodeUnknownCommand   Code = "UNKNOWN_COMMAND"
	CodeCommandExecution Code = "COMMAND_EXECUTION"
	CodeResourceMissing  Code = "RESOURCE_MISSING"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Error is a coded shell error. Two errors match with errors.Is when their
// codes are equal, so the sentinels below match any error of their kind.
type Error struct {
	Code    Code
	Command string
	Err     error
}

// Kind sentinels
var (
	ErrTokenization     = &Error{Code: CodeTokenization}
	ErrUnknownCommand   = &Error{Code: CodeUnknownCommand}
	ErrCommandExecution = &Error{Code: CodeCommandExecution}
	ErrResourceMissing  = &Error{Code: CodeResourceMissing}
)

// Control flow and detail errors
var (
	// ErrExit is returned by a handler to end the session.
	ErrExit = errors.New("exit")

	// ErrInputClosed is returned by Run when input ends without exit or interrupt.
	ErrInputClosed = errors.New("input closed")

	ErrArgumentCount  = errors.New("missing required argument")
	ErrUnclosedQuote  = errors.New("no closing quotation")
	ErrDanglingEscape = errors.New("no escaped character")
)

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Command != "":
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case e.Command != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Command)
	default:
		return e.Code.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of the same code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Detail returns the user-facing description without the command prefix
func (e *Error) Detail() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Code.String()
}

// CodeOf returns the code of the first coded error in err's chain
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
