// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// CategoryKind tags expense categories as products or services. Income
// categories carry no kind.
type CategoryKind string

const (
	CategoryKindNone    CategoryKind = ""
	CategoryKindProduct CategoryKind = "product"
	CategoryKindService CategoryKind = "service"
)

// Category represents global (not family-scoped) reference data used to
// classify incomes and expenses.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	Type        CategoryType
	Kind        CategoryKind
	CreatedAt   time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name, description string, categoryType CategoryType, kind CategoryKind, now time.Time) *Category {
	return &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Type:        categoryType,
		Kind:        kind,
		CreatedAt:   now,
	}
}
