// Package report contains financial aggregation use cases.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/family-finance/backend/internal/application/adapter"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// GetCategoryExpensesInput represents the input for the per-category
// expense breakdown.
type GetCategoryExpensesInput struct {
	FamilyID  uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetCategoryExpensesOutput maps category names to summed expense amounts.
type GetCategoryExpensesOutput struct {
	Totals map[string]decimal.Decimal
}

// GetCategoryExpensesUseCase sums a family's expenses per category name
// over a period. When a read fails it degrades to an empty breakdown.
type GetCategoryExpensesUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	familyRepo   adapter.FamilyRepository
	categoryRepo adapter.CategoryRepository
}

// NewGetCategoryExpensesUseCase creates a new GetCategoryExpensesUseCase instance.
func NewGetCategoryExpensesUseCase(
	expenseRepo adapter.ExpenseRepository,
	familyRepo adapter.FamilyRepository,
	categoryRepo adapter.CategoryRepository,
) *GetCategoryExpensesUseCase {
	return &GetCategoryExpensesUseCase{
		expenseRepo:  expenseRepo,
		familyRepo:   familyRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the per-category aggregation.
func (uc *GetCategoryExpensesUseCase) Execute(ctx context.Context, input GetCategoryExpensesInput) (*GetCategoryExpensesOutput, error) {
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

	totals, err := uc.aggregate(ctx, input)
	if err != nil {
		slog.Warn("Category expense aggregation failed, returning empty breakdown",
			"family_id", input.FamilyID,
			"error", err,
		)
		return &GetCategoryExpensesOutput{Totals: map[string]decimal.Decimal{}}, nil
	}

	return &GetCategoryExpensesOutput{Totals: totals}, nil
}

func (uc *GetCategoryExpensesUseCase) aggregate(ctx context.Context, input GetCategoryExpensesInput) (map[string]decimal.Decimal, error) {
	members, err := uc.familyRepo.FindMembersByFamilyID(ctx, input.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list family members: %w", err)
	}

	totals := make(map[string]decimal.Decimal)
	if len(members) == 0 {
		return totals, nil
	}

	memberIDs := make([]uuid.UUID, len(members))
	for i, m := range members {
		memberIDs[i] = m.ID
	}

	expenses, err := uc.expenseRepo.FindByMemberIDs(ctx, memberIDs, &input.StartDate, &input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	categoryNames := make(map[uuid.UUID]string)
	for _, e := range expenses {
		name, ok := categoryNames[e.CategoryID]
		if !ok {
			category, err := uc.categoryRepo.FindByID(ctx, e.CategoryID)
			if err != nil {
				return nil, fmt.Errorf("failed to find category: %w", err)
			}
			name = "uncategorized"
			if category != nil {
				name = category.Name
			}
			categoryNames[e.CategoryID] = name
		}

		totals[name] = totals[name].Add(e.Amount)
	}

	return totals, nil
}
