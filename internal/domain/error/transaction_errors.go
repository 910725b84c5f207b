// Package error defines domain-specific errors for the family finance application.
package error

import "errors"

// Income and expense domain errors.
var (
	// ErrIncomeNotFound is returned when an income is not found in the system.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidAmount is returned when a monetary amount is negative.
	ErrInvalidAmount = errors.New("amount must not be negative")

	// ErrTransactionMemberNotFound is returned when the referenced family member is missing.
	ErrTransactionMemberNotFound = errors.New("selected family member not found")

	// ErrTransactionCategoryNotFound is returned when the referenced category is missing.
	ErrTransactionCategoryNotFound = errors.New("selected category not found")

	// ErrCategoryTypeMismatch is returned when the category kind does not match the transaction kind.
	ErrCategoryTypeMismatch = errors.New("category type does not match transaction type")
)

// TransactionErrorCode defines error codes for income/expense errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeIncomeNotFound             TransactionErrorCode = "TXN-010001"
	ErrCodeExpenseNotFound            TransactionErrorCode = "TXN-010002"
	ErrCodeTransactionMemberNotFound  TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionCategoryMissing TransactionErrorCode = "TXN-010004"

	// Validation errors (02XXXX)
	ErrCodeInvalidAmount        TransactionErrorCode = "TXN-020001"
	ErrCodeCategoryTypeMismatch TransactionErrorCode = "TXN-020002"
)

// TransactionError represents an income/expense error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
