// Package category contains category-related use cases.
package category

import (
	"time"

	"github.com/family-finance/backend/internal/domain/entity"
)

// Fixed default sets. They seed an empty categories table at startup
// and double as the fallback returned when category storage is
// unreachable; fallback results carry fresh IDs that are never
// persisted.

func defaultIncomeCategories(now time.Time) []*entity.Category {
	defs := []struct{ name, description string }{
		{"Salary", "Primary wages"},
		{"Side job", "Additional earnings"},
		{"Investments", "Investment returns"},
		{"Pension", "Pension payments"},
		{"Scholarship", "Scholarship payments"},
	}

	categories := make([]*entity.Category, len(defs))
	for i, d := range defs {
		categories[i] = entity.NewCategory(d.name, d.description, entity.CategoryTypeIncome, entity.CategoryKindNone, now)
	}
	return categories
}

func defaultExpenseCategories(now time.Time) []*entity.Category {
	defs := []struct {
		name, description string
		kind              entity.CategoryKind
	}{
		{"Groceries", "Food purchases", entity.CategoryKindProduct},
		{"Utilities", "Household utility bills", entity.CategoryKindService},
		{"Transport", "Transportation costs", entity.CategoryKindService},
		{"Education", "Tuition and courses", entity.CategoryKindService},
		{"Entertainment", "Leisure activities", entity.CategoryKindService},
		{"Health", "Medical expenses", entity.CategoryKindService},
		{"Clothing", "Clothing purchases", entity.CategoryKindProduct},
		{"Electronics", "Electronics purchases", entity.CategoryKindProduct},
	}

	categories := make([]*entity.Category, len(defs))
	for i, d := range defs {
		categories[i] = entity.NewCategory(d.name, d.description, entity.CategoryTypeExpense, d.kind, now)
	}
	return categories
}
