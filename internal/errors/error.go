package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryDocument Category = "document"
	CategoryRegistry Category = "registry"
	CategoryConfig   Category = "config"
	CategoryStore    Category = "store"
	CategoryCLI      Category = "cli"
)

// VellumError is a structured error with a code, suggestion, and
// documentation link, used for CLI-facing failures.
type VellumError struct {
	// Code is a unique error identifier (e.g., "V001").
	Code string

	// Category is the error type (document, registry, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *VellumError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *VellumError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *VellumError) WithSuggestion(s string) *VellumError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *VellumError) WithDetail(d string) *VellumError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *VellumError) Wrap(err error) *VellumError {
	e.Wrapped = err
	return e
}

// New creates a VellumError from a registered error code.
func New(code string) *VellumError {
	template, ok := registry[code]
	if !ok {
		return &VellumError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &VellumError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new VellumError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *VellumError {
	return &VellumError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a VellumError.
func FromError(err error, code string) *VellumError {
	if err == nil {
		return nil
	}
	e := New(code)
	e.Wrapped = err
	if e.Detail == "" {
		e.Detail = err.Error()
	}
	return e
}
