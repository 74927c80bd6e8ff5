// Package errors provides the structured error types shared across the
// curricula engine: categorized errors with stable codes for tooling,
// and LoadError, the fatal wrapper around a validation report.
package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/conneroisu/curricula/internal/validate"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeContent    ErrorType = "content"
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeInternal   ErrorType = "internal"
)

// Common error codes.
const (
	ErrCodeEmptyCorpus      = "ERR_EMPTY_CORPUS"
	ErrCodeMalformedModule  = "ERR_MALFORMED_MODULE"
	ErrCodeValidationFailed = "ERR_VALIDATION_FAILED"
	ErrCodeConfigInvalid    = "ERR_CONFIG_INVALID"
	ErrCodeContentDir       = "ERR_CONTENT_DIR"
	ErrCodeInternalError    = "ERR_INTERNAL"
)

// CurriculaError is a structured error type with context.
type CurriculaError struct {
	Type    ErrorType
	Code    string
	Message string
	Cause   error
	Module  string
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *CurriculaError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}
	if e.Module != "" {
		parts = append(parts, "module:"+e.Module)
	}
	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")
	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *CurriculaError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison on type and code.
func (e *CurriculaError) Is(target error) bool {
	var t *CurriculaError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *CurriculaError) WithContext(key string, value interface{}) *CurriculaError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithModule adds source module context.
func (e *CurriculaError) WithModule(module string) *CurriculaError {
	e.Module = module

	return e
}

// NewContentError creates a content error.
func NewContentError(code, message string) *CurriculaError {
	return &CurriculaError{
		Type:    ErrorTypeContent,
		Code:    code,
		Message: message,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *CurriculaError {
	return &CurriculaError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *CurriculaError {
	return &CurriculaError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *CurriculaError {
	return &CurriculaError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// LoadError is returned when the corpus has one or more error-severity
// validation findings. It is fatal: a curriculum app must not boot with
// a broken knowledge base. The full report rides along so the build
// pipeline can surface every finding at once.
type LoadError struct {
	Report *validate.Report
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Report == nil {
		return "[" + ErrCodeValidationFailed + "] corpus failed validation"
	}

	return fmt.Sprintf("[%s] corpus failed validation: %s",
		ErrCodeValidationFailed, e.Report.Summary())
}

// NewLoadError wraps a validation report in a fatal load error.
func NewLoadError(report *validate.Report) *LoadError {
	return &LoadError{Report: report}
}

// IsLoadError reports whether err is (or wraps) a LoadError, returning
// the carried validation report when it is.
func IsLoadError(err error) (*validate.Report, bool) {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Report, true
	}

	return nil, false
}
