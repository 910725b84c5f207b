// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/application/adapter"
	"github.com/family-finance/backend/internal/domain/entity"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name         string
	Description  string
	Type         entity.CategoryType
	Kind         entity.CategoryKind
	ActingUserID uuid.UUID
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation. Admin-gated; categories
// are global reference data shared by every family.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	familyRepo   adapter.FamilyRepository
	clock        adapter.Clock
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	familyRepo adapter.FamilyRepository,
	clock adapter.Clock,
) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		familyRepo:   familyRepo,
		clock:        clock,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}

	switch input.Type {
	case entity.CategoryTypeIncome:
		if input.Kind != entity.CategoryKindNone {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidCategoryKind,
				"income categories carry no kind",
				domainerror.ErrInvalidCategoryKind,
			)
		}
	case entity.CategoryTypeExpense:
		if input.Kind != entity.CategoryKindProduct && input.Kind != entity.CategoryKindService {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidCategoryKind,
				"expense category kind must be 'product' or 'service'",
				domainerror.ErrInvalidCategoryKind,
			)
		}
	default:
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'income' or 'expense'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	if err := requireAdministrator(ctx, uc.familyRepo, input.ActingUserID); err != nil {
		return nil, err
	}

	category := entity.NewCategory(input.Name, input.Description, input.Type, input.Kind, uc.clock.Now())
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}
