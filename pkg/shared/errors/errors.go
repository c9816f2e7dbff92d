package errors

import (
	"fmt"
)

// Custom error type for not implemented errors
type NotImplementedError struct {
	Method string
	Client string
}

// Implement the error interface for NotImplementedError
func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("method %q is not implemented for %q", e.Method, e.Client)
}

// Constructor for NotImplementedError
func NewNotImplementedError(method, client string) error {
	return &NotImplementedError{
		Method: method,
		Client: client,
	}
}

// InvalidInputError indicates that a caller supplied an argument the layer
// cannot act on, such as an unknown rule name or a malformed option. It is
// surfaced immediately and never retried.
type InvalidInputError struct {
	Param  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Param, e.Reason)
}

func NewInvalidInputError(param, reason string) error {
	return &InvalidInputError{Param: param, Reason: reason}
}

// ParseError reports a coverage report that does not conform to its format.
// File and Line locate the offending construct; Line is 0 when the whole
// document is unparseable.
type ParseError struct {
	File      string
	Line      int
	Construct string
	Reason    string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parsing %q line %d: %s: %s", e.File, e.Line, e.Construct, e.Reason)
	}
	return fmt.Sprintf("parsing %q: %s: %s", e.File, e.Construct, e.Reason)
}

func NewParseError(file string, line int, construct, reason string) error {
	return &ParseError{File: file, Line: line, Construct: construct, Reason: reason}
}
