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

// CheckBudgetAlertsInput represents the input for the coarse alert check.
type CheckBudgetAlertsInput struct {
	FamilyID uuid.UUID
}

// CheckBudgetAlertsOutput represents the output of the coarse alert check.
type CheckBudgetAlertsOutput struct {
	Alerts []*entity.BudgetAlert
}

// CheckBudgetAlertsUseCase produces message-style alerts for budgets whose
// spending passed the warning or exceeded threshold. Alerts are derived on
// every call and never stored; repeated calls over unchanged data yield
// the same alerts.
type CheckBudgetAlertsUseCase struct {
	budgetRepo   adapter.BudgetRepository
	familyRepo   adapter.FamilyRepository
	categoryRepo adapter.CategoryRepository
	expenseRepo  adapter.ExpenseRepository
	clock        adapter.Clock
}

// NewCheckBudgetAlertsUseCase creates a new CheckBudgetAlertsUseCase instance.
func NewCheckBudgetAlertsUseCase(
	budgetRepo adapter.BudgetRepository,
	familyRepo adapter.FamilyRepository,
	categoryRepo adapter.CategoryRepository,
	expenseRepo adapter.ExpenseRepository,
	clock adapter.Clock,
) *CheckBudgetAlertsUseCase {
	return &CheckBudgetAlertsUseCase{
		budgetRepo:   budgetRepo,
		familyRepo:   familyRepo,
		categoryRepo: categoryRepo,
		expenseRepo:  expenseRepo,
		clock:        clock,
	}
}

// Execute performs the alert check.
func (uc *CheckBudgetAlertsUseCase) Execute(ctx context.Context, input CheckBudgetAlertsInput) (*CheckBudgetAlertsOutput, error) {
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

	now := uc.clock.Now()
	alerts := make([]*entity.BudgetAlert, 0)
	for _, b := range budgets {
		if b.Amount.IsZero() {
			continue
		}

		spent, err := spentForBudget(ctx, uc.expenseRepo, memberIDs, b)
		if err != nil {
			return nil, err
		}

		percentage, _ := evaluateBudget(b, spent)
		if percentage <= warningThreshold {
			continue
		}

		categoryName := "unknown category"
		category, err := uc.categoryRepo.FindByID(ctx, b.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
		if category != nil {
			categoryName = category.Name
		}

		var message string
		if percentage > exceededThreshold {
			message = fmt.Sprintf("Budget for %q exceeded: %.1f%% of %s spent", categoryName, percentage, b.Amount.StringFixed(2))
		} else {
			message = fmt.Sprintf("Budget for %q almost spent: %.1f%% of %s used", categoryName, percentage, b.Amount.StringFixed(2))
		}

		alerts = append(alerts, &entity.BudgetAlert{
			ID:        uuid.New(),
			BudgetID:  b.ID,
			Message:   message,
			AlertDate: now,
		})
	}

	return &CheckBudgetAlertsOutput{Alerts: alerts}, nil
}
