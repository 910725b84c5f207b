// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriodType labels the intended cadence of a budget. It is advisory
// only and is not enforced against the start/end dates.
type BudgetPeriodType string

const (
	BudgetPeriodDaily     BudgetPeriodType = "daily"
	BudgetPeriodWeekly    BudgetPeriodType = "weekly"
	BudgetPeriodMonthly   BudgetPeriodType = "monthly"
	BudgetPeriodQuarterly BudgetPeriodType = "quarterly"
	BudgetPeriodYearly    BudgetPeriodType = "yearly"
)

// IsValid reports whether the period type is one of the known labels.
func (p BudgetPeriodType) IsValid() bool {
	switch p {
	case BudgetPeriodDaily, BudgetPeriodWeekly, BudgetPeriodMonthly,
		BudgetPeriodQuarterly, BudgetPeriodYearly:
		return true
	}
	return false
}

// Budget caps spending for one expense category of one family over an
// inclusive [StartDate, EndDate] interval.
type Budget struct {
	ID         uuid.UUID
	FamilyID   uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	PeriodType BudgetPeriodType
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(
	familyID, categoryID uuid.UUID,
	amount decimal.Decimal,
	periodType BudgetPeriodType,
	startDate, endDate time.Time,
	now time.Time,
) *Budget {
	return &Budget{
		ID:         uuid.New(),
		FamilyID:   familyID,
		CategoryID: categoryID,
		Amount:     amount,
		PeriodType: periodType,
		StartDate:  startDate,
		EndDate:    endDate,
		CreatedAt:  now,
	}
}

// Overlaps reports whether the budget's interval intersects the inclusive
// [start, end] interval.
func (b *Budget) Overlaps(start, end time.Time) bool {
	return !b.StartDate.After(end) && !b.EndDate.Before(start)
}

// BudgetAlert is a derived warning about a budget. Alerts are computed on
// demand from current transactions and are never persisted.
type BudgetAlert struct {
	ID        uuid.UUID
	BudgetID  uuid.UUID
	Message   string
	AlertDate time.Time
}

// BudgetStatus is a budget hydrated with its category name and the amount
// already spent within the budget's own window.
type BudgetStatus struct {
	Budget       *Budget
	CategoryName string
	CurrentSpent decimal.Decimal
}
