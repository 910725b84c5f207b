// Package category contains category-related use cases.
package category

import (
	"context"
	"log/slog"

	"github.com/family-finance/backend/internal/application/adapter"
	"github.com/family-finance/backend/internal/domain/entity"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// Source tags whether a category listing came from storage or from the
// built-in fallback set.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	Type entity.CategoryType
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
	Source     Source
}

// ListCategoriesUseCase lists categories of one type. When storage is
// unreachable it degrades to the fixed default set instead of failing,
// tagging the result so callers can tell the difference.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository, clock adapter.Clock) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute performs the category listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	if input.Type != entity.CategoryTypeIncome && input.Type != entity.CategoryTypeExpense {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'income' or 'expense'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	categories, err := uc.categoryRepo.FindByType(ctx, input.Type)
	if err != nil {
		slog.Warn("Category storage unreachable, serving fallback defaults",
			"type", input.Type,
			"error", err,
		)

		now := uc.clock.Now()
		fallback := defaultIncomeCategories(now)
		if input.Type == entity.CategoryTypeExpense {
			fallback = defaultExpenseCategories(now)
		}

		return &ListCategoriesOutput{
			Categories: fallback,
			Source:     SourceFallback,
		}, nil
	}

	return &ListCategoriesOutput{
		Categories: categories,
		Source:     SourceLive,
	}, nil
}
