// Package error defines domain-specific errors for the family finance application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetOverlap is returned when a budget for the same family and
	// category already covers part of the requested period.
	ErrBudgetOverlap = errors.New("a budget for this category already covers part of the period")

	// ErrInvalidBudgetPeriod is returned when the period type label is unknown.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period type")

	// ErrInvalidBudgetDates is returned when the end date precedes the start date.
	ErrInvalidBudgetDates = errors.New("budget end date precedes start date")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BDG-010001"

	// Validation errors (02XXXX)
	ErrCodeInvalidBudgetPeriod BudgetErrorCode = "BDG-020001"
	ErrCodeInvalidBudgetDates  BudgetErrorCode = "BDG-020002"

	// Conflict errors (03XXXX)
	ErrCodeBudgetOverlap BudgetErrorCode = "BDG-030001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
