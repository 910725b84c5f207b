// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnspecifiedSource is recorded when an income is created without a source.
const UnspecifiedSource = "unspecified"

// Income represents money earned by a family member.
type Income struct {
	ID             uuid.UUID
	FamilyMemberID uuid.UUID
	CategoryID     uuid.UUID
	Amount         decimal.Decimal
	Source         string
	Description    string
	Date           time.Time
	CreatedAt      time.Time
}

// NewIncome creates a new Income entity. An empty source defaults to
// UnspecifiedSource.
func NewIncome(
	familyMemberID, categoryID uuid.UUID,
	amount decimal.Decimal,
	source, description string,
	date time.Time,
	now time.Time,
) *Income {
	if source == "" {
		source = UnspecifiedSource
	}

	return &Income{
		ID:             uuid.New(),
		FamilyMemberID: familyMemberID,
		CategoryID:     categoryID,
		Amount:         amount,
		Source:         source,
		Description:    description,
		Date:           date,
		CreatedAt:      now,
	}
}
