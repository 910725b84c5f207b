// Package budget contains budget and alert use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/family-finance/backend/internal/application/adapter"
	"github.com/family-finance/backend/internal/domain/entity"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for updating a budget.
type UpdateBudgetInput struct {
	BudgetID     uuid.UUID
	Amount       decimal.Decimal
	PeriodType   entity.BudgetPeriodType
	StartDate    time.Time
	EndDate      time.Time
	ActingUserID uuid.UUID
}

// UpdateBudgetOutput represents the output of updating a budget.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase rewrites an existing budget. Admin-gated. Unlike
// creation, updates do not re-check period overlap; a warning is logged
// so the gap stays visible in operation.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	familyRepo adapter.FamilyRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, familyRepo adapter.FamilyRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		familyRepo: familyRepo,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
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

	slog.Warn("Budget update skips overlap validation",
		"budget_id", budget.ID,
		"family_id", budget.FamilyID,
		"category_id", budget.CategoryID,
	)

	budget.Amount = input.Amount
	budget.PeriodType = input.PeriodType
	budget.StartDate = input.StartDate
	budget.EndDate = input.EndDate

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{Budget: budget}, nil
}
