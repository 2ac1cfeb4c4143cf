// File: error.go
// Title: Core Error Implementation
// Description: Implements the rich error type used across the IxCompiler
//              foundation with error codes, severity levels, operation
//              context, and structured details. Errors form chains through
//              wrapping and integrate with the structured logging output.
// Author: danielbradley
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation with structured errors

package error

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Error represents a structured error with code, severity, and context
type Error struct {
	// Core error information
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	// Context and metadata
	details   map[string]interface{}
	operation string
}

// MaxErrorChainDepth limits the depth of error wrapping to prevent
// unbounded chains when errors are re-wrapped in a loop
const MaxErrorChainDepth = 15

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Flatten instead of growing the chain past the depth limit
	if depth := chainDepth(err); depth >= MaxErrorChainDepth {
		root := rootCause(err)
		return &Error{
			message:   fmt.Sprintf("%s (chain truncated at depth %d): %s", message, MaxErrorChainDepth, root.Error()),
			code:      CodeUnknown,
			severity:  SeverityHigh,
			timestamp: time.Now(),
			details:   map[string]interface{}{"truncated": true, "original_depth": depth},
		}
	}

	// If err is already our Error type, preserve its classification
	if ixErr, ok := err.(*Error); ok {
		wrapped := &Error{
			message:   message,
			cause:     ixErr,
			code:      ixErr.code,
			severity:  ixErr.severity,
			timestamp: time.Now(),
			details:   make(map[string]interface{}),
		}
		for k, v := range ixErr.details {
			wrapped.details[k] = v
		}
		return wrapped
	}

	return &Error{
		message:   message,
		cause:     err,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// chainDepth calculates the depth of an error chain
func chainDepth(err error) int {
	depth := 0
	current := err

	for current != nil && depth < MaxErrorChainDepth*2 {
		depth++
		if ixErr, ok := current.(*Error); ok {
			current = ixErr.cause
		} else {
			break
		}
	}

	return depth
}

// rootCause returns the deepest error in a chain
func rootCause(err error) error {
	current := err
	last := err

	for current != nil {
		last = current
		if ixErr, ok := current.(*Error); ok {
			current = ixErr.cause
		} else {
			break
		}
	}

	return last
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code and adjusts the severity to the code's
// default unless a severity was set explicitly before
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple key-value details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns when the error was created
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Operation returns the operation that caused the error
func (e *Error) Operation() string {
	return e.operation
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// Message returns the error message without the cause chain
func (e *Error) Message() string {
	return e.message
}

// RootCause returns the deepest error in the chain
func (e *Error) RootCause() error {
	return rootCause(e)
}

// String returns a detailed string representation for diagnostics
func (e *Error) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s/%s] %s", e.code, e.severity, e.message)

	if e.operation != "" {
		fmt.Fprintf(&b, " (operation: %s)", e.operation)
	}

	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString(" {")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.details[k])
		}
		b.WriteString("}")
	}

	if e.cause != nil {
		fmt.Fprintf(&b, " caused by: %s", e.cause.Error())
	}

	return b.String()
}

// MarshalJSON implements json.Marshaler so structured log output carries
// the full error classification
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":   e.message,
		"code":      e.code.String(),
		"severity":  e.severity.String(),
		"timestamp": e.timestamp.Format(time.RFC3339),
	}

	if e.operation != "" {
		data["operation"] = e.operation
	}

	if len(e.details) > 0 {
		data["details"] = e.details
	}

	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}

	return json.Marshal(data)
}

// HasCode checks if an error (or any error in its chain) carries the code
func HasCode(err error, code Code) bool {
	for current := err; current != nil; {
		ixErr, ok := current.(*Error)
		if !ok {
			return false
		}
		if ixErr.code == code {
			return true
		}
		current = ixErr.cause
	}
	return false
}

// GetCode extracts the error code from an error, or CodeUnknown
func GetCode(err error) Code {
	if ixErr, ok := err.(*Error); ok {
		return ixErr.code
	}
	return CodeUnknown
}

// GetSeverity extracts the severity from an error, or SeverityMedium
func GetSeverity(err error) Severity {
	if ixErr, ok := err.(*Error); ok {
		return ixErr.severity
	}
	return SeverityMedium
}

// RootCause walks the chain to the innermost error.
// Plain errors are returned unchanged; nil stays nil.
func RootCause(err error) error {
	if ixErr, ok := err.(*Error); ok {
		return ixErr.RootCause()
	}
	return err
}
