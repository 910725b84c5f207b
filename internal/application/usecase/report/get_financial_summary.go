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
	"github.com/family-finance/backend/internal/domain/entity"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// GetFinancialSummaryInput represents the input for the financial summary.
type GetFinancialSummaryInput struct {
	FamilyID  uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetFinancialSummaryOutput represents the output of the financial summary.
type GetFinancialSummaryOutput struct {
	Summary *entity.FinancialSummary
}

// GetFinancialSummaryUseCase aggregates a family's incomes, expenses and
// budgets over a period. Balance is always income minus expense. When a
// read fails mid-aggregation the use case degrades to a zeroed summary
// instead of surfacing the failure.
type GetFinancialSummaryUseCase struct {
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
	budgetRepo  adapter.BudgetRepository
	familyRepo  adapter.FamilyRepository
}

// NewGetFinancialSummaryUseCase creates a new GetFinancialSummaryUseCase instance.
func NewGetFinancialSummaryUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	budgetRepo adapter.BudgetRepository,
	familyRepo adapter.FamilyRepository,
) *GetFinancialSummaryUseCase {
	return &GetFinancialSummaryUseCase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		familyRepo:  familyRepo,
	}
}

// Execute performs the summary aggregation.
func (uc *GetFinancialSummaryUseCase) Execute(ctx context.Context, input GetFinancialSummaryInput) (*GetFinancialSummaryOutput, error) {
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

	summary, err := uc.aggregate(ctx, input)
	if err != nil {
		slog.Warn("Financial summary aggregation failed, returning zeroed summary",
			"family_id", input.FamilyID,
			"error", err,
		)
		summary = &entity.FinancialSummary{
			TotalIncome:  decimal.Zero,
			TotalExpense: decimal.Zero,
			Balance:      decimal.Zero,
			TotalBudget:  decimal.Zero,
			PeriodStart:  input.StartDate,
			PeriodEnd:    input.EndDate,
		}
	}

	return &GetFinancialSummaryOutput{Summary: summary}, nil
}

func (uc *GetFinancialSummaryUseCase) aggregate(ctx context.Context, input GetFinancialSummaryInput) (*entity.FinancialSummary, error) {
	members, err := uc.familyRepo.FindMembersByFamilyID(ctx, input.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list family members: %w", err)
	}

	memberIDs := make([]uuid.UUID, len(members))
	for i, m := range members {
		memberIDs[i] = m.ID
	}

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	if len(memberIDs) > 0 {
		incomes, err := uc.incomeRepo.FindByMemberIDs(ctx, memberIDs, &input.StartDate, &input.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to list incomes: %w", err)
		}
		for _, in := range incomes {
			totalIncome = totalIncome.Add(in.Amount)
		}

		expenses, err := uc.expenseRepo.FindByMemberIDs(ctx, memberIDs, &input.StartDate, &input.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to list expenses: %w", err)
		}
		for _, e := range expenses {
			totalExpense = totalExpense.Add(e.Amount)
		}
	}

	totalBudget := decimal.Zero
	budgets, err := uc.budgetRepo.FindByFamilyID(ctx, input.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	// Every family budget counts toward the total, whatever its period.
	for _, b := range budgets {
		totalBudget = totalBudget.Add(b.Amount)
	}

	return &entity.FinancialSummary{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome.Sub(totalExpense),
		TotalBudget:  totalBudget,
		PeriodStart:  input.StartDate,
		PeriodEnd:    input.EndDate,
	}, nil
}
