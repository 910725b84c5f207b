// Package budget contains budget and alert use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/family-finance/backend/internal/application/adapter"
	"github.com/family-finance/backend/internal/domain/entity"
)

// Alert thresholds as percentages of the budgeted amount.
const (
	warningThreshold  = 80.0
	exceededThreshold = 100.0
)

// resolveMemberIDs returns the IDs of the family's current members. Spent
// amounts count only transactions authored by current members.
func resolveMemberIDs(ctx context.Context, familyRepo adapter.FamilyRepository, familyID uuid.UUID) ([]uuid.UUID, error) {
	members, err := familyRepo.FindMembersByFamilyID(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list family members: %w", err)
	}

	ids := make([]uuid.UUID, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return ids, nil
}

// spentForBudget sums the family's expenses in the budget's category
// within the budget's own window.
func spentForBudget(
	ctx context.Context,
	expenseRepo adapter.ExpenseRepository,
	memberIDs []uuid.UUID,
	budget *entity.Budget,
) (decimal.Decimal, error) {
	if len(memberIDs) == 0 {
		return decimal.Zero, nil
	}

	expenses, err := expenseRepo.FindByMemberIDs(ctx, memberIDs, &budget.StartDate, &budget.EndDate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list expenses: %w", err)
	}

	spent := decimal.Zero
	for _, e := range expenses {
		if e.CategoryID == budget.CategoryID {
			spent = spent.Add(e.Amount)
		}
	}
	return spent, nil
}

// evaluateBudget computes the consumed percentage of a budget and whether
// the budget is critical (spending strictly exceeds the budgeted amount).
// The budget amount must be non-zero.
func evaluateBudget(budget *entity.Budget, spent decimal.Decimal) (percentage float64, critical bool) {
	ratio, _ := spent.Div(budget.Amount).Float64()
	return ratio * 100, spent.GreaterThan(budget.Amount)
}
