// Package budget contains budget and alert use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/application/adapter"
	"github.com/family-finance/backend/internal/domain/entity"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// ListBudgetsInput represents the input for listing a family's budgets.
type ListBudgetsInput struct {
	FamilyID uuid.UUID
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.BudgetStatus
}

// ListBudgetsUseCase lists a family's budgets hydrated with category names
// and the amount already spent inside each budget's window.
type ListBudgetsUseCase struct {
	budgetRepo   adapter.BudgetRepository
	familyRepo   adapter.FamilyRepository
	categoryRepo adapter.CategoryRepository
	expenseRepo  adapter.ExpenseRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	familyRepo adapter.FamilyRepository,
	categoryRepo adapter.CategoryRepository,
	expenseRepo adapter.ExpenseRepository,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:   budgetRepo,
		familyRepo:   familyRepo,
		categoryRepo: categoryRepo,
		expenseRepo:  expenseRepo,
	}
}

// Execute performs the budget listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	family, err := uc.familyRepo.FindFamilyByID(ctx, input.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find family: %w", err)
	}
	if family == nil {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeFamilyNotFound,
			"family not found",
			domainerror.ErrFamilyNotFound,
		)
	}

	budgets, err := uc.budgetRepo.FindByFamilyID(ctx, input.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	memberIDs, err := resolveMemberIDs(ctx, uc.familyRepo, input.FamilyID)
	if err != nil {
		return nil, err
	}

	statuses := make([]*entity.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		categoryName := ""
		category, err := uc.categoryRepo.FindByID(ctx, b.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
		if category != nil {
			categoryName = category.Name
		}

		spent, err := spentForBudget(ctx, uc.expenseRepo, memberIDs, b)
		if err != nil {
			return nil, err
		}

		statuses = append(statuses, &entity.BudgetStatus{
			Budget:       b,
			CategoryName: categoryName,
			CurrentSpent: spent,
		})
	}

	return &ListBudgetsOutput{Budgets: statuses}, nil
}
