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
)

// CreateExpenseInput represents the input for recording an expense.
type CreateExpenseInput struct {
	FamilyMemberID uuid.UUID
	CategoryID     uuid.UUID
	Amount         decimal.Decimal
	Description    string
	Date           time.Time
}

// CreateExpenseOutput represents the output of recording an expense.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase records a new expense. Any member may record
// expenses for themselves; no administrator gate applies here.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	familyRepo   adapter.FamilyRepository
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	familyRepo adapter.FamilyRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		familyRepo:   familyRepo,
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateExpenseRefs(ctx, uc.familyRepo, uc.categoryRepo, input.FamilyMemberID, input.CategoryID, input.Amount); err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		input.FamilyMemberID,
		input.CategoryID,
		input.Amount,
		input.Description,
		input.Date,
		uc.clock.Now(),
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: expense}, nil
}
