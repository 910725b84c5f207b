// Package budget contains budget and alert use cases.
package budget

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

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	FamilyID     uuid.UUID
	CategoryID   uuid.UUID
	Amount       decimal.Decimal
	PeriodType   entity.BudgetPeriodType
	StartDate    time.Time
	EndDate      time.Time
	ActingUserID uuid.UUID
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase creates a budget for one expense category of a
// family. Admin-gated; a period overlapping an existing budget for the
// same family and category is rejected.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	familyRepo   adapter.FamilyRepository
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	familyRepo adapter.FamilyRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		familyRepo:   familyRepo,
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if err := requireAdministrator(ctx, uc.familyRepo, input.ActingUserID); err != nil {
		return nil, err
	}

	if !input.PeriodType.IsValid() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"unknown budget period type",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetDates,
			"budget end date precedes start date",
			domainerror.ErrInvalidBudgetDates,
		)
	}
	if input.Amount.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"budget amount must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}

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

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionCategoryMissing,
			"selected category not found",
			domainerror.ErrTransactionCategoryNotFound,
		)
	}
	if category.Type != entity.CategoryTypeExpense {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTypeMismatch,
			"budgets apply to expense categories only",
			domainerror.ErrCategoryTypeMismatch,
		)
	}

	overlaps, err := uc.budgetRepo.ExistsOverlapping(ctx, input.FamilyID, input.CategoryID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check budget overlap: %w", err)
	}
	if overlaps {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetOverlap,
			"a budget for this category already covers part of the period",
			domainerror.ErrBudgetOverlap,
		)
	}

	budget := entity.NewBudget(
		input.FamilyID,
		input.CategoryID,
		input.Amount,
		input.PeriodType,
		input.StartDate,
		input.EndDate,
		uc.clock.Now(),
	)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{Budget: budget}, nil
}
