// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/family-finance/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FamilyMemberID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Description    string          `gorm:"type:varchar(255)"`
	Date           time.Time       `gorm:"not null;index"`
	CreatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:             m.ID,
		FamilyMemberID: m.FamilyMemberID,
		CategoryID:     m.CategoryID,
		Amount:         m.Amount,
		Description:    m.Description,
		Date:           m.Date,
		CreatedAt:      m.CreatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:             expense.ID,
		FamilyMemberID: expense.FamilyMemberID,
		CategoryID:     expense.CategoryID,
		Amount:         expense.Amount,
		Description:    expense.Description,
		Date:           expense.Date,
		CreatedAt:      expense.CreatedAt,
	}
}
