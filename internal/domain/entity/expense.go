// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents money spent by a family member.
type Expense struct {
	ID             uuid.UUID
	FamilyMemberID uuid.UUID
	CategoryID     uuid.UUID
	Amount         decimal.Decimal
	Description    string
	Date           time.Time
	CreatedAt      time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	familyMemberID, categoryID uuid.UUID,
	amount decimal.Decimal,
	description string,
	date time.Time,
	now time.Time,
) *Expense {
	return &Expense{
		ID:             uuid.New(),
		FamilyMemberID: familyMemberID,
		CategoryID:     categoryID,
		Amount:         amount,
		Description:    description,
		Date:           date,
		CreatedAt:      now,
	}
}
