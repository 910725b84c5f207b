// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/family-finance/backend/internal/domain/entity"
)

// IncomeModel represents the incomes table in the database.
type IncomeModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FamilyMemberID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Source         string          `gorm:"type:varchar(100);not null"`
	Description    string          `gorm:"type:varchar(255)"`
	Date           time.Time       `gorm:"not null;index"`
	CreatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:             m.ID,
		FamilyMemberID: m.FamilyMemberID,
		CategoryID:     m.CategoryID,
		Amount:         m.Amount,
		Source:         m.Source,
		Description:    m.Description,
		Date:           m.Date,
		CreatedAt:      m.CreatedAt,
	}
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	return &IncomeModel{
		ID:             income.ID,
		FamilyMemberID: income.FamilyMemberID,
		CategoryID:     income.CategoryID,
		Amount:         income.Amount,
		Source:         income.Source,
		Description:    income.Description,
		Date:           income.Date,
		CreatedAt:      income.CreatedAt,
	}
}
