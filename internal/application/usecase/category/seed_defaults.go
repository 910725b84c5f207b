// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/family-finance/backend/internal/application/adapter"
	"github.com/family-finance/backend/internal/domain/entity"
)

// SeedDefaultCategoriesUseCase populates an empty categories table with
// the default income and expense sets at startup. Seeding is idempotent
// per type: a type that already has stored categories is left untouched,
// so administrator additions survive restarts.
type SeedDefaultCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewSeedDefaultCategoriesUseCase creates a new SeedDefaultCategoriesUseCase instance.
func NewSeedDefaultCategoriesUseCase(categoryRepo adapter.CategoryRepository, clock adapter.Clock) *SeedDefaultCategoriesUseCase {
	return &SeedDefaultCategoriesUseCase{
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute seeds the default category sets for every type that has none.
func (uc *SeedDefaultCategoriesUseCase) Execute(ctx context.Context) error {
	now := uc.clock.Now()

	sets := []struct {
		categoryType entity.CategoryType
		defaults     []*entity.Category
	}{
		{entity.CategoryTypeIncome, defaultIncomeCategories(now)},
		{entity.CategoryTypeExpense, defaultExpenseCategories(now)},
	}

	for _, set := range sets {
		existing, err := uc.categoryRepo.FindByType(ctx, set.categoryType)
		if err != nil {
			return fmt.Errorf("failed to list %s categories: %w", set.categoryType, err)
		}
		if len(existing) > 0 {
			continue
		}

		for _, c := range set.defaults {
			if err := uc.categoryRepo.Create(ctx, c); err != nil {
				return fmt.Errorf("failed to seed category %q: %w", c.Name, err)
			}
		}
		slog.Info("Seeded default categories", "type", set.categoryType, "count", len(set.defaults))
	}

	return nil
}
