// Package report contains financial aggregation use cases.
package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/family-finance/backend/internal/domain/entity"
)

func TestGetFinancialReportUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	t.Run("rows are joined and sorted newest first", func(t *testing.T) {
		f := newSummaryFixture()
		categoryRepo := newFakeCategoryRepo()

		salary := entity.NewCategory("Salary", "Primary wages", entity.CategoryTypeIncome, entity.CategoryKindNone, f.now)
		groceries := entity.NewCategory("Groceries", "Food purchases", entity.CategoryTypeExpense, entity.CategoryKindProduct, f.now)
		categoryRepo.categories[salary.ID] = salary
		categoryRepo.categories[groceries.ID] = groceries

		older := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
		newer := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

		f.incomeRepo.incomes = append(f.incomeRepo.incomes,
			entity.NewIncome(f.member.ID, salary.ID, decimal.RequireFromString("3000"), "ACME Corp", "january pay", older, f.now),
		)
		f.expenseRepo.expenses = append(f.expenseRepo.expenses,
			entity.NewExpense(f.member.ID, groceries.ID, decimal.RequireFromString("120"), "weekly shop", newer, f.now),
		)

		uc := NewGetFinancialReportUseCase(f.incomeRepo, f.expenseRepo, f.familyRepo, categoryRepo)
		output, err := uc.Execute(ctx, GetFinancialReportInput{
			FamilyID:  f.family.ID,
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Items) != 2 {
			t.Fatalf("expected two rows, got %d", len(output.Items))
		}

		first, second := output.Items[0], output.Items[1]
		if first.OperationType != entity.OperationTypeExpense {
			t.Errorf("expected the newer expense first, got %s", first.OperationType)
		}
		if first.Category != "Groceries" {
			t.Errorf("expected category Groceries, got %s", first.Category)
		}
		if first.Username != "alice" || first.MemberRole != entity.MemberRoleAdministrator {
			t.Errorf("expected author alice/administrator, got %s/%s", first.Username, first.MemberRole)
		}

		if second.OperationType != entity.OperationTypeIncome {
			t.Errorf("expected the older income second, got %s", second.OperationType)
		}
		if second.Source != "ACME Corp" {
			t.Errorf("expected source ACME Corp, got %s", second.Source)
		}
		if second.Category != "Salary" {
			t.Errorf("expected category Salary, got %s", second.Category)
		}
	})

	t.Run("read failure degrades to an empty report", func(t *testing.T) {
		f := newSummaryFixture()
		f.expenseRepo.err = errors.New("connection refused")

		uc := NewGetFinancialReportUseCase(f.incomeRepo, f.expenseRepo, f.familyRepo, newFakeCategoryRepo())
		output, err := uc.Execute(ctx, GetFinancialReportInput{
			FamilyID:  f.family.ID,
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			t.Fatalf("expected degraded success, got error: %v", err)
		}
		if len(output.Items) != 0 {
			t.Fatalf("expected an empty report, got %d rows", len(output.Items))
		}
	})
}

func TestGetCategoryExpensesUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	inWindow := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("expenses are summed per category name", func(t *testing.T) {
		f := newSummaryFixture()
		categoryRepo := newFakeCategoryRepo()

		groceries := entity.NewCategory("Groceries", "Food purchases", entity.CategoryTypeExpense, entity.CategoryKindProduct, f.now)
		categoryRepo.categories[groceries.ID] = groceries

		f.expenseRepo.expenses = append(f.expenseRepo.expenses,
			entity.NewExpense(f.member.ID, groceries.ID, decimal.RequireFromString("120"), "weekly shop", inWindow, f.now),
			entity.NewExpense(f.member.ID, groceries.ID, decimal.RequireFromString("80"), "top-up", inWindow, f.now),
			entity.NewExpense(f.member.ID, uuid.New(), decimal.RequireFromString("40"), "no category", inWindow, f.now),
		)

		uc := NewGetCategoryExpensesUseCase(f.expenseRepo, f.familyRepo, categoryRepo)
		output, err := uc.Execute(ctx, GetCategoryExpensesInput{
			FamilyID:  f.family.ID,
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Totals["Groceries"].Equal(decimal.RequireFromString("200")) {
			t.Errorf("expected Groceries total 200, got %s", output.Totals["Groceries"])
		}
		if !output.Totals["uncategorized"].Equal(decimal.RequireFromString("40")) {
			t.Errorf("expected uncategorized total 40, got %s", output.Totals["uncategorized"])
		}
	})

	t.Run("read failure degrades to an empty breakdown", func(t *testing.T) {
		f := newSummaryFixture()
		f.expenseRepo.err = errors.New("connection refused")

		uc := NewGetCategoryExpensesUseCase(f.expenseRepo, f.familyRepo, newFakeCategoryRepo())
		output, err := uc.Execute(ctx, GetCategoryExpensesInput{
			FamilyID:  f.family.ID,
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			t.Fatalf("expected degraded success, got error: %v", err)
		}
		if len(output.Totals) != 0 {
			t.Fatalf("expected an empty breakdown, got %d entries", len(output.Totals))
		}
	})
}
