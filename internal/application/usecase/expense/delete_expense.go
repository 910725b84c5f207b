// Package expense contains expense tracking use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/application/adapter"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for deleting an expense.
type DeleteExpenseInput struct {
	ExpenseID    uuid.UUID
	ActingUserID uuid.UUID
}

// DeleteExpenseOutput represents the output of deleting an expense.
type DeleteExpenseOutput struct {
	Success bool
}

// DeleteExpenseUseCase removes an expense record. Admin-gated.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	familyRepo  adapter.FamilyRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository, familyRepo adapter.FamilyRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		familyRepo:  familyRepo,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	if err := requireAdministrator(ctx, uc.familyRepo, input.ActingUserID); err != nil {
		return nil, err
	}

	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	if expense == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if err := uc.expenseRepo.Delete(ctx, expense.ID); err != nil {
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}

	return &DeleteExpenseOutput{Success: true}, nil
}
