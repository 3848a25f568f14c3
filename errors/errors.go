// Package errors defines the one error type nimbus shows to people.
//
// The code decides what the caller does with it: a TELEMETRY error costs
// one refresh and the animation carries on, a CONFIG or TERMINAL error
// stops nimbus before the screen is touched.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Codes carried by Error.
const (
	ErrConfig    = "CONFIG"
	ErrTelemetry = "TELEMETRY"
	ErrTerminal  = "TERMINAL"
)

// Error is a coded failure with an optional hint for the user.
//
// Printed on stderr it reads as a headline marked with ✗, then the
// underlying cause and the hint as indented paragraphs. Either paragraph
// is left out when empty.
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New returns an Error without a cause.
func New(code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion}
}

// WrapWithCode returns an Error whose cause is err.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion, Cause: err}
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "✗ %s\n", e.Message)
	for _, para := range []string{e.cause(), e.Suggestion} {
		if para != "" {
			fmt.Fprintf(&b, "\n  %s\n", para)
		}
	}
	return b.String()
}

func (e *Error) cause() string {
	if e.Cause == nil {
		return ""
	}
	return e.Cause.Error()
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// CodeOf returns the code of the first Error in err's chain, or "" when
// there is none.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether err's chain holds an Error with the given code.
func IsCode(err error, code string) bool {
	c := CodeOf(err)
	return c != "" && c == code
}
