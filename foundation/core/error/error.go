// File: error.go
// Title: Core Error Implementation
// Description: Implements the main Error type with code, severity, details
//              and a captured call site. Compatible with errors.Is/As through
//              Unwrap.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-19 v0.2.0: errors.As based lookups, dropped localization fields

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"runtime"
	"slices"
	"strings"
	"time"
)

// MaxStackFrames limits the number of stack frames captured
const MaxStackFrames = 16

// Error carries a message, an optional cause and the metadata used by
// logging and diagnostics. With* methods modify the receiver and return it.
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time
	details   map[string]interface{}
	operation string
	stack     []StackFrame
}

// StackFrame is one captured call site
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

func newError(message string, cause error) *Error {
	return &Error{
		message:   message,
		cause:     cause,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   map[string]interface{}{},
		stack:     callers(4),
	}
}

// New creates an error with CodeUnknown and medium severity
func New(message string) *Error {
	return newError(message, nil)
}

// Wrap returns nil for a nil err. Code, severity and details of a wrapped
// *Error anywhere in the chain are inherited.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	e := newError(message, err)
	if inner, ok := as(err); ok {
		e.code, e.severity = inner.code, inner.severity
		maps.Copy(e.details, inner.details)
	}
	return e
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }

// WithCode sets the code. The severity follows the code unless it was
// changed from the default before.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

func (e *Error) WithDetails(details map[string]interface{}) *Error {
	maps.Copy(e.details, details)
	return e
}

// WithOperation names the operation that failed, e.g. "resolver.coerce"
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Message returns the message without the cause chain
func (e *Error) Message() string      { return e.message }
func (e *Error) Code() Code           { return e.code }
func (e *Error) Severity() Severity   { return e.severity }
func (e *Error) Timestamp() time.Time { return e.timestamp }
func (e *Error) Operation() string    { return e.operation }

// Details returns a copy of the details
func (e *Error) Details() map[string]interface{} {
	return maps.Clone(e.details)
}

// StackTrace returns a copy of the frames captured at construction
func (e *Error) StackTrace() []StackFrame {
	return slices.Clone(e.stack)
}

// String renders the error over several lines for diagnostics
func (e *Error) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\nCode: %s\nSeverity: %s", e.message, e.code, e.severity)
	if e.operation != "" {
		b.WriteString("\nOperation: " + e.operation)
	}
	if len(e.details) > 0 {
		pairs := make([]string, 0, len(e.details))
		for _, k := range slices.Sorted(maps.Keys(e.details)) {
			pairs = append(pairs, fmt.Sprintf("%s=%v", k, e.details[k]))
		}
		b.WriteString("\nDetails: {" + strings.Join(pairs, ", ") + "}")
	}
	if e.cause != nil {
		b.WriteString("\nCause: " + e.cause.Error())
	}
	return b.String()
}

type jsonError struct {
	Message   string                 `json:"message"`
	Code      Code                   `json:"code"`
	Category  string                 `json:"category"`
	Severity  string                 `json:"severity"`
	Timestamp string                 `json:"timestamp"`
	Details   map[string]interface{} `json:"details"`
	Operation string                 `json:"operation,omitempty"`
	Cause     string                 `json:"cause,omitempty"`
}

// MarshalJSON implements json.Marshaler for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	out := jsonError{
		Message:   e.message,
		Code:      e.code,
		Category:  e.code.Category(),
		Severity:  e.severity.String(),
		Timestamp: e.timestamp.Format(time.RFC3339),
		Details:   e.details,
		Operation: e.operation,
	}
	if e.cause != nil {
		out.Cause = e.cause.Error()
	}
	return json.Marshal(out)
}

func callers(skip int) []StackFrame {
	pcs := make([]uintptr, MaxStackFrames)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	stack := make([]StackFrame, 0, n)
	for {
		f, more := frames.Next()
		stack = append(stack, StackFrame{Function: f.Function, File: f.File, Line: f.Line})
		if !more {
			return stack
		}
	}
}

func as(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// HasCode reports whether the first *Error in err's chain has code
func HasCode(err error, code Code) bool {
	e, ok := as(err)
	return ok && e.code == code
}

// GetCode returns the code of the first *Error in err's chain, CodeUnknown
// when there is none
func GetCode(err error) Code {
	if e, ok := as(err); ok {
		return e.code
	}
	return CodeUnknown
}

// GetSeverity returns the severity of the first *Error in err's chain,
// SeverityMedium when there is none
func GetSeverity(err error) Severity {
	if e, ok := as(err); ok {
		return e.severity
	}
	return SeverityMedium
}
