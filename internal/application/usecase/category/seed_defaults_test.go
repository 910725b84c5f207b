// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/family-finance/backend/internal/domain/entity"
)

func TestSeedDefaultCategoriesUseCase_Execute(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("empty table gets both default sets", func(t *testing.T) {
		repo := &fakeCategoryRepo{}
		uc := NewSeedDefaultCategoriesUseCase(repo, fixedClock{now})

		if err := uc.Execute(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.created) != 13 {
			t.Fatalf("expected 13 seeded categories, got %d", len(repo.created))
		}

		incomeCount, expenseCount := 0, 0
		for _, c := range repo.created {
			switch c.Type {
			case entity.CategoryTypeIncome:
				incomeCount++
				if c.Kind != entity.CategoryKindNone {
					t.Errorf("expected no kind on income category %s, got %s", c.Name, c.Kind)
				}
			case entity.CategoryTypeExpense:
				expenseCount++
				if c.Kind != entity.CategoryKindProduct && c.Kind != entity.CategoryKindService {
					t.Errorf("expected product or service kind on %s, got %q", c.Name, c.Kind)
				}
			}
		}
		if incomeCount != 5 || expenseCount != 8 {
			t.Errorf("expected 5 income and 8 expense categories, got %d/%d", incomeCount, expenseCount)
		}
	})

	t.Run("type with stored categories is left untouched", func(t *testing.T) {
		stored := entity.NewCategory("Salary", "Primary wages", entity.CategoryTypeIncome, entity.CategoryKindNone, now)
		repo := &fakeCategoryRepo{categories: []*entity.Category{stored}}
		uc := NewSeedDefaultCategoriesUseCase(repo, fixedClock{now})

		if err := uc.Execute(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.created) != 8 {
			t.Fatalf("expected only the 8 expense defaults, got %d", len(repo.created))
		}
		for _, c := range repo.created {
			if c.Type != entity.CategoryTypeExpense {
				t.Errorf("expected only expense categories seeded, got %s %s", c.Type, c.Name)
			}
		}
	})

	t.Run("storage failure is surfaced", func(t *testing.T) {
		repo := &fakeCategoryRepo{err: errors.New("connection refused")}
		uc := NewSeedDefaultCategoriesUseCase(repo, fixedClock{now})

		if err := uc.Execute(ctx); err == nil {
			t.Fatal("expected an error when storage is unreachable")
		}
	})
}
