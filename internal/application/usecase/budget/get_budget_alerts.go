// Package budget contains budget and alert use cases.
package budget

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/family-finance/backend/internal/application/adapter"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// BudgetAlertDetail carries the full evaluation of one over-threshold
// budget.
type BudgetAlertDetail struct {
	BudgetID     uuid.UUID
	CategoryName string
	BudgetAmount decimal.Decimal
	SpentAmount  decimal.Decimal
	Percentage   float64
	IsCritical   bool
	PeriodStart  time.Time
	PeriodEnd    time.Time
}

// GetBudgetAlertsInput represents the input for the detailed alert listing.
type GetBudgetAlertsInput struct {
	FamilyID uuid.UUID
}

// GetBudgetAlertsOutput represents the output of the detailed alert listing.
type GetBudgetAlertsOutput struct {
	Alerts []*BudgetAlertDetail
}

// GetBudgetAlertsUseCase evaluates every budget of a family and returns
// details for those past the warning threshold, critical ones first.
// Zero-amount budgets are skipped; a percentage of them is undefined.
type GetBudgetAlertsUseCase struct {
	budgetRepo   adapter.BudgetRepository
	familyRepo   adapter.FamilyRepository
	categoryRepo adapter.CategoryRepository
	expenseRepo  adapter.ExpenseRepository
}

// NewGetBudgetAlertsUseCase creates a new GetBudgetAlertsUseCase instance.
func NewGetBudgetAlertsUseCase(
	budgetRepo adapter.BudgetRepository,
	familyRepo adapter.FamilyRepository,
	categoryRepo adapter.CategoryRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetBudgetAlertsUseCase {
	return &GetBudgetAlertsUseCase{
		budgetRepo:   budgetRepo,
		familyRepo:   familyRepo,
		categoryRepo: categoryRepo,
		expenseRepo:  expenseRepo,
	}
}

// Execute performs the detailed alert evaluation.
func (uc *GetBudgetAlertsUseCase) Execute(ctx context.Context, input GetBudgetAlertsInput) (*GetBudgetAlertsOutput, error) {
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

	alerts := make([]*BudgetAlertDetail, 0)
	for _, b := range budgets {
		if b.Amount.IsZero() {
			continue
		}

		spent, err := spentForBudget(ctx, uc.expenseRepo, memberIDs, b)
		if err != nil {
			return nil, err
		}

		percentage, critical := evaluateBudget(b, spent)
		if percentage <= warningThreshold {
			continue
		}

		categoryName := ""
		category, err := uc.categoryRepo.FindByID(ctx, b.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
		if category != nil {
			categoryName = category.Name
		}

		alerts = append(alerts, &BudgetAlertDetail{
			BudgetID:     b.ID,
			CategoryName: categoryName,
			BudgetAmount: b.Amount,
			SpentAmount:  spent,
			Percentage:   percentage,
			IsCritical:   critical,
			PeriodStart:  b.StartDate,
			PeriodEnd:    b.EndDate,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].IsCritical != alerts[j].IsCritical {
			return alerts[i].IsCritical
		}
		return alerts[i].Percentage > alerts[j].Percentage
	})

	return &GetBudgetAlertsOutput{Alerts: alerts}, nil
}
