// Package errors provides standardized error messaging for the cyas tool
package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"
)

// ErrorCategory represents different categories of errors
type ErrorCategory string

const (
	CategoryConfig  ErrorCategory = "CONFIG"
	CategoryIO      ErrorCategory = "IO"
	CategoryLexical ErrorCategory = "LEXICAL"
	CategorySyntax  ErrorCategory = "SYNTAX"
	CategoryUsage   ErrorCategory = "USAGE"
)

// StandardError provides a consistent error format
type StandardError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Context  map[string]interface{}
	Caller   string
	Cause    error
}

// Error implements the error interface. The message is user facing and
// carries no caller information; Detail includes it.
func (e *StandardError) Error() string {
	return e.Message
}

// Detail renders the full diagnostic form.
func (e *StandardError) Detail() string {
	return fmt.Sprintf("[%s:%s] %s (caller: %s)", e.Category, e.Code, e.Message, e.Caller)
}

// Unwrap returns the underlying cause
func (e *StandardError) Unwrap() error {
	return e.Cause
}

// NewStandardError creates a new standardized error
func NewStandardError(category ErrorCategory, code, message string, context map[string]interface{}) *StandardError {
	return newStandardError(2, category, code, message, context)
}

func newStandardError(skip int, category ErrorCategory, code, message string, context map[string]interface{}) *StandardError {
	pc, _, _, ok := runtime.Caller(skip)
	caller := "unknown"
	if ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			caller = fn.Name()
		}
	}

	return &StandardError{
		Category: category,
		Code:     code,
		Message:  message,
		Context:  context,
		Caller:   caller,
	}
}

// Wrap attaches a cause to a new standardized error
func Wrap(cause error, category ErrorCategory, code, message string) *StandardError {
	e := newStandardError(2, category, code, message, nil)
	e.Cause = cause
	return e
}

// CategoryOf returns the category of the first StandardError in err's chain.
func CategoryOf(err error) (ErrorCategory, bool) {
	var se *StandardError
	if stderrors.As(err, &se) {
		return se.Category, true
	}
	return "", false
}

// Common error constructors
func FileNotFound(path string) *StandardError {
	return newStandardError(2, CategoryIO, "FILE_NOT_FOUND",
		fmt.Sprintf("File %q does not exist.", path),
		map[string]interface{}{"path": path})
}

func ReadFailed(path string, cause error) *StandardError {
	e := newStandardError(2, CategoryIO, "READ_FAILED",
		fmt.Sprintf("Read file %q failed.", path),
		map[string]interface{}{"path": path})
	e.Cause = cause
	return e
}

func InvalidConfig(field string, value interface{}, reason string) *StandardError {
	return newStandardError(2, CategoryConfig, "INVALID_CONFIG",
		fmt.Sprintf("Invalid value %v for %s: %s", value, field, reason),
		map[string]interface{}{"field": field, "value": value})
}

func LexFailed(path string, cause error) *StandardError {
	e := newStandardError(2, CategoryLexical, "LEX_FAILED", cause.Error(),
		map[string]interface{}{"path": path})
	e.Cause = cause
	return e
}

func ParseFailed(path string, cause error) *StandardError {
	e := newStandardError(2, CategorySyntax, "PARSE_FAILED", cause.Error(),
		map[string]interface{}{"path": path})
	e.Cause = cause
	return e
}
