// Package report contains financial aggregation use cases.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/application/adapter"
	"github.com/family-finance/backend/internal/domain/entity"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// GetFinancialReportInput represents the input for the financial report.
type GetFinancialReportInput struct {
	FamilyID  uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GetFinancialReportOutput represents the output of the financial report.
type GetFinancialReportOutput struct {
	Items []*entity.ReportItem
}

// GetFinancialReportUseCase produces a row-per-transaction report of a
// family's incomes and expenses over a period, newest first, each row
// joined with its category name and author. When a read fails the use
// case degrades to an empty report instead of surfacing the failure.
type GetFinancialReportUseCase struct {
	incomeRepo   adapter.IncomeRepository
	expenseRepo  adapter.ExpenseRepository
	familyRepo   adapter.FamilyRepository
	categoryRepo adapter.CategoryRepository
}

// NewGetFinancialReportUseCase creates a new GetFinancialReportUseCase instance.
func NewGetFinancialReportUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	familyRepo adapter.FamilyRepository,
	categoryRepo adapter.CategoryRepository,
) *GetFinancialReportUseCase {
	return &GetFinancialReportUseCase{
		incomeRepo:   incomeRepo,
		expenseRepo:  expenseRepo,
		familyRepo:   familyRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the report generation.
func (uc *GetFinancialReportUseCase) Execute(ctx context.Context, input GetFinancialReportInput) (*GetFinancialReportOutput, error) {
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

	items, err := uc.buildReport(ctx, input)
	if err != nil {
		slog.Warn("Financial report generation failed, returning empty report",
			"family_id", input.FamilyID,
			"error", err,
		)
		return &GetFinancialReportOutput{Items: []*entity.ReportItem{}}, nil
	}

	return &GetFinancialReportOutput{Items: items}, nil
}

func (uc *GetFinancialReportUseCase) buildReport(ctx context.Context, input GetFinancialReportInput) ([]*entity.ReportItem, error) {
	members, err := uc.familyRepo.FindMembersByFamilyID(ctx, input.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list family members: %w", err)
	}
	if len(members) == 0 {
		return []*entity.ReportItem{}, nil
	}

	memberIDs := make([]uuid.UUID, len(members))
	membersByID := make(map[uuid.UUID]*entity.FamilyMember, len(members))
	for i, m := range members {
		memberIDs[i] = m.ID
		membersByID[m.ID] = m
	}

	incomes, err := uc.incomeRepo.FindByMemberIDs(ctx, memberIDs, &input.StartDate, &input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	expenses, err := uc.expenseRepo.FindByMemberIDs(ctx, memberIDs, &input.StartDate, &input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	categoryNames := make(map[uuid.UUID]string)
	resolveCategory := func(id uuid.UUID) (string, error) {
		if name, ok := categoryNames[id]; ok {
			return name, nil
		}
		category, err := uc.categoryRepo.FindByID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("failed to find category: %w", err)
		}
		name := ""
		if category != nil {
			name = category.Name
		}
		categoryNames[id] = name
		return name, nil
	}

	items := make([]*entity.ReportItem, 0, len(incomes)+len(expenses))
	for _, in := range incomes {
		categoryName, err := resolveCategory(in.CategoryID)
		if err != nil {
			return nil, err
		}

		item := &entity.ReportItem{
			ID:            in.ID,
			Date:          in.Date,
			OperationType: entity.OperationTypeIncome,
			Category:      categoryName,
			Amount:        in.Amount,
			Description:   in.Description,
			Source:        in.Source,
		}
		if m := membersByID[in.FamilyMemberID]; m != nil {
			item.Username = m.Username
			item.MemberRole = m.Role
		}
		items = append(items, item)
	}

	for _, e := range expenses {
		categoryName, err := resolveCategory(e.CategoryID)
		if err != nil {
			return nil, err
		}

		item := &entity.ReportItem{
			ID:            e.ID,
			Date:          e.Date,
			OperationType: entity.OperationTypeExpense,
			Category:      categoryName,
			Amount:        e.Amount,
			Description:   e.Description,
		}
		if m := membersByID[e.FamilyMemberID]; m != nil {
			item.Username = m.Username
			item.MemberRole = m.Role
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})

	return items, nil
}
