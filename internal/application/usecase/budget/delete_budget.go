// Package budget contains budget and alert use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/application/adapter"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// DeleteBudgetInput represents the input for deleting a budget.
type DeleteBudgetInput struct {
	BudgetID     uuid.UUID
	ActingUserID uuid.UUID
}

// DeleteBudgetOutput represents the output of deleting a budget.
type DeleteBudgetOutput struct {
	Success bool
}

// DeleteBudgetUseCase removes a budget. Admin-gated.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	familyRepo adapter.FamilyRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository, familyRepo adapter.FamilyRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
		familyRepo: familyRepo,
	}
}

// Execute performs the budget deletion.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) (*DeleteBudgetOutput, error) {
	if err := requireAdministrator(ctx, uc.familyRepo, input.ActingUserID); err != nil {
		return nil, err
	}

	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	if budget == nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	if err := uc.budgetRepo.Delete(ctx, budget.ID); err != nil {
		return nil, fmt.Errorf("failed to delete budget: %w", err)
	}

	return &DeleteBudgetOutput{Success: true}, nil
}
