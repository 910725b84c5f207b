// Package error defines domain-specific errors for the family finance application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameRequired is returned when the category name is empty.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrInvalidCategoryType is returned when the category type is not income or expense.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrInvalidCategoryKind is returned when an expense category kind is not product or service.
	ErrInvalidCategoryKind = errors.New("invalid category kind")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeCategoryNotFound CategoryErrorCode = "CAT-010001"

	// Validation errors (02XXXX)
	ErrCodeCategoryNameRequired CategoryErrorCode = "CAT-020001"
	ErrCodeInvalidCategoryType  CategoryErrorCode = "CAT-020002"
	ErrCodeInvalidCategoryKind  CategoryErrorCode = "CAT-020003"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
