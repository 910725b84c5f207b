// Package error defines domain-specific errors for the family finance application.
package error

import "errors"

// Family domain errors.
var (
	// ErrFamilyNotFound is returned when a family is not found in the system.
	ErrFamilyNotFound = errors.New("family not found")

	// ErrFamilyNameRequired is returned when the family name is empty.
	ErrFamilyNameRequired = errors.New("family name is required")

	// ErrMemberNotFound is returned when a family member is not found.
	ErrMemberNotFound = errors.New("family member not found")

	// ErrUserAlreadyFamilyMember is returned when a user already belongs to the family.
	ErrUserAlreadyFamilyMember = errors.New("user is already a member of this family")

	// ErrNotAdministrator is returned when a non-administrator attempts an admin action.
	ErrNotAdministrator = errors.New("only a family administrator can perform this action")

	// ErrCannotRemoveSelf is returned when a member tries to remove their own membership.
	ErrCannotRemoveSelf = errors.New("cannot remove your own membership")

	// ErrCannotRemoveLastAdministrator is returned when removing or demoting the only administrator.
	ErrCannotRemoveLastAdministrator = errors.New("cannot remove the family's last administrator")

	// ErrInvalidMemberRole is returned when an invalid member role is provided.
	ErrInvalidMemberRole = errors.New("invalid member role")
)

// FamilyErrorCode defines error codes for family errors.
// Format: FAM-XXYYYY where XX is category and YYYY is specific error.
type FamilyErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeFamilyNotFound FamilyErrorCode = "FAM-010001"
	ErrCodeMemberNotFound FamilyErrorCode = "FAM-010002"

	// Validation errors (02XXXX)
	ErrCodeFamilyNameRequired FamilyErrorCode = "FAM-020001"
	ErrCodeInvalidMemberRole  FamilyErrorCode = "FAM-020002"

	// Conflict errors (03XXXX)
	ErrCodeUserAlreadyFamilyMember FamilyErrorCode = "FAM-030001"

	// Authorization errors (04XXXX)
	ErrCodeNotAdministrator FamilyErrorCode = "FAM-040001"

	// Business logic errors (05XXXX)
	ErrCodeCannotRemoveSelf              FamilyErrorCode = "FAM-050001"
	ErrCodeCannotRemoveLastAdministrator FamilyErrorCode = "FAM-050002"
)

// FamilyError represents a family error with code and message.
type FamilyError struct {
	Code    FamilyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FamilyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FamilyError) Unwrap() error {
	return e.Err
}

// NewFamilyError creates a new FamilyError with the given code and message.
func NewFamilyError(code FamilyErrorCode, message string, err error) *FamilyError {
	return &FamilyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
