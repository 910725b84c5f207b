// Package expense contains expense tracking use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/family-finance/backend/internal/application/adapter"
	"github.com/family-finance/backend/internal/domain/entity"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for updating an expense.
type UpdateExpenseInput struct {
	ExpenseID      uuid.UUID
	FamilyMemberID uuid.UUID
	CategoryID     uuid.UUID
	Amount         decimal.Decimal
	Description    string
	Date           time.Time
	ActingUserID   uuid.UUID
}

// UpdateExpenseOutput represents the output of updating an expense.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase rewrites an existing expense record. Admin-gated;
// references are re-validated on every update.
type UpdateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	familyRepo   adapter.FamilyRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	familyRepo adapter.FamilyRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:  expenseRepo,
		familyRepo:   familyRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
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

	if err := validateExpenseRefs(ctx, uc.familyRepo, uc.categoryRepo, input.FamilyMemberID, input.CategoryID, input.Amount); err != nil {
		return nil, err
	}

	expense.FamilyMemberID = input.FamilyMemberID
	expense.CategoryID = input.CategoryID
	expense.Amount = input.Amount
	expense.Description = input.Description
	expense.Date = input.Date

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{Expense: expense}, nil
}
