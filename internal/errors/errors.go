// Package errors provides centralized error handling with category and
// context metadata for log reporting.
package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
)

// ErrorCategory represents the type of error for better categorization
type ErrorCategory string

const (
	CategoryFileIO      ErrorCategory = "file-io"
	CategoryFileParsing ErrorCategory = "file-parsing"
	CategoryDatabase    ErrorCategory = "database"
	CategoryImageList   ErrorCategory = "image-list"
	CategoryValidation  ErrorCategory = "validation"
	CategoryGeneric     ErrorCategory = "generic"
)

// ComponentUnknown is used when the component was not set by the builder.
const ComponentUnknown = "unknown"

// EnhancedError wraps an error with additional context and metadata
type EnhancedError struct {
	Err       error          // Original error
	Component string         // Component where the error occurred
	Category  ErrorCategory  // Error category for better grouping
	Context   map[string]any // Additional context data
}

// Error implements the error interface
func (ee *EnhancedError) Error() string {
	return ee.Err.Error()
}

// Unwrap supports errors.Is and errors.As against the wrapped error.
func (ee *EnhancedError) Unwrap() error {
	return ee.Err
}

// GetContext returns a copy of the error context.
func (ee *EnhancedError) GetContext() map[string]any {
	if ee.Context == nil {
		return nil
	}
	contextCopy := make(map[string]any, len(ee.Context))
	maps.Copy(contextCopy, ee.Context)
	return contextCopy
}

// ErrorBuilder provides a fluent interface for creating enhanced errors
type ErrorBuilder struct {
	err       error
	component string
	category  ErrorCategory
	context   map[string]any
}

// New creates a new ErrorBuilder wrapping err. If err is already an
// EnhancedError its metadata is carried over so double wrapping only adds
// context instead of losing the original classification.
func New(err error) *ErrorBuilder {
	eb := &ErrorBuilder{
		err:      err,
		category: CategoryGeneric,
	}
	var ee *EnhancedError
	if stderrors.As(err, &ee) {
		eb.err = ee.Err
		eb.component = ee.Component
		eb.category = ee.Category
		if ee.Context != nil {
			eb.context = make(map[string]any, len(ee.Context))
			maps.Copy(eb.context, ee.Context)
		}
	}
	return eb
}

// Newf creates a new ErrorBuilder from a format string.
func Newf(format string, args ...any) *ErrorBuilder {
	return New(fmt.Errorf(format, args...))
}

// NewStd returns a plain error without enhancement, for sentinel errors.
func NewStd(text string) error {
	return stderrors.New(text)
}

// Component sets the component name
func (eb *ErrorBuilder) Component(component string) *ErrorBuilder {
	eb.component = component
	return eb
}

// Category sets the error category
func (eb *ErrorBuilder) Category(category ErrorCategory) *ErrorBuilder {
	eb.category = category
	return eb
}

// Context adds context data to the error
func (eb *ErrorBuilder) Context(key string, value any) *ErrorBuilder {
	if eb.context == nil {
		eb.context = make(map[string]any)
	}
	eb.context[key] = value
	return eb
}

// Build creates the EnhancedError
func (eb *ErrorBuilder) Build() *EnhancedError {
	component := eb.component
	if component == "" {
		component = ComponentUnknown
	}
	return &EnhancedError{
		Err:       eb.err,
		Component: component,
		Category:  eb.category,
		Context:   eb.context,
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
