// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OperationType labels a report row as income or expense.
type OperationType string

const (
	OperationTypeIncome  OperationType = "Income"
	OperationTypeExpense OperationType = "Expense"
)

// FinancialSummary aggregates a family's finances over a period.
type FinancialSummary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
	TotalBudget  decimal.Decimal
	PeriodStart  time.Time
	PeriodEnd    time.Time
}

// ReportItem is one transaction row of a financial report, joined with
// its category, member role and username.
type ReportItem struct {
	ID            uuid.UUID
	Date          time.Time
	OperationType OperationType
	Category      string
	Amount        decimal.Decimal
	Description   string
	Username      string
	MemberRole    MemberRole
	Source        string
}
