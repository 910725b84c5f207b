// Package budget contains budget and alert use cases.
package budget

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/family-finance/backend/internal/domain/entity"
)

// alertFixture wires a family with one member, one expense category and
// the repositories shared by the alert tests.
type alertFixture struct {
	budgetRepo   *fakeBudgetRepo
	familyRepo   *fakeFamilyRepo
	categoryRepo *fakeCategoryRepo
	expenseRepo  *fakeExpenseRepo
	family       *entity.Family
	member       *entity.FamilyMember
	category     *entity.Category
	now          time.Time
}

func newAlertFixture() *alertFixture {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	f := &alertFixture{
		budgetRepo:   newFakeBudgetRepo(),
		familyRepo:   newFakeFamilyRepo(),
		categoryRepo: newFakeCategoryRepo(),
		expenseRepo:  &fakeExpenseRepo{},
		now:          now,
	}

	f.family = entity.NewFamily("test family", now)
	f.familyRepo.families[f.family.ID] = f.family

	f.member = entity.NewFamilyMember(f.family.ID, uuid.New(), entity.MemberRoleAdministrator, now)
	f.familyRepo.members[f.member.ID] = f.member

	f.category = entity.NewCategory("Groceries", "Food purchases", entity.CategoryTypeExpense, entity.CategoryKindProduct, now)
	f.categoryRepo.categories[f.category.ID] = f.category

	return f
}

// addBudget registers a January budget for the given category and amount.
func (f *alertFixture) addBudget(categoryID uuid.UUID, amount string) *entity.Budget {
	b := entity.NewBudget(
		f.family.ID,
		categoryID,
		decimal.RequireFromString(amount),
		entity.BudgetPeriodMonthly,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		f.now,
	)
	f.budgetRepo.budgets[b.ID] = b
	return b
}

// spend records an expense by the fixture member inside the budget window.
func (f *alertFixture) spend(categoryID uuid.UUID, amount string) {
	e := entity.NewExpense(
		f.member.ID,
		categoryID,
		decimal.RequireFromString(amount),
		"spending",
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		f.now,
	)
	f.expenseRepo.expenses = append(f.expenseRepo.expenses, e)
}

func TestGetBudgetAlertsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("warning budget is reported with percentage", func(t *testing.T) {
		f := newAlertFixture()
		b := f.addBudget(f.category.ID, "1000")
		f.spend(f.category.ID, "850")

		uc := NewGetBudgetAlertsUseCase(f.budgetRepo, f.familyRepo, f.categoryRepo, f.expenseRepo)
		output, err := uc.Execute(ctx, GetBudgetAlertsInput{FamilyID: f.family.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Alerts) != 1 {
			t.Fatalf("expected one alert, got %d", len(output.Alerts))
		}
		alert := output.Alerts[0]
		if alert.BudgetID != b.ID {
			t.Errorf("expected budget %s, got %s", b.ID, alert.BudgetID)
		}
		if alert.CategoryName != "Groceries" {
			t.Errorf("expected category Groceries, got %s", alert.CategoryName)
		}
		if math.Abs(alert.Percentage-85.0) > 1e-9 {
			t.Errorf("expected percentage 85.0, got %f", alert.Percentage)
		}
		if alert.IsCritical {
			t.Error("expected 85%% spending not to be critical")
		}
		if !alert.SpentAmount.Equal(decimal.RequireFromString("850")) {
			t.Errorf("expected spent 850, got %s", alert.SpentAmount)
		}
	})

	t.Run("spending over the budget is critical", func(t *testing.T) {
		f := newAlertFixture()
		f.addBudget(f.category.ID, "1000")
		f.spend(f.category.ID, "1200")

		uc := NewGetBudgetAlertsUseCase(f.budgetRepo, f.familyRepo, f.categoryRepo, f.expenseRepo)
		output, err := uc.Execute(ctx, GetBudgetAlertsInput{FamilyID: f.family.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Alerts) != 1 {
			t.Fatalf("expected one alert, got %d", len(output.Alerts))
		}
		if !output.Alerts[0].IsCritical {
			t.Error("expected over-budget spending to be critical")
		}
		if math.Abs(output.Alerts[0].Percentage-120.0) > 1e-9 {
			t.Errorf("expected percentage 120.0, got %f", output.Alerts[0].Percentage)
		}
	})

	t.Run("spending exactly the budget is not critical", func(t *testing.T) {
		f := newAlertFixture()
		f.addBudget(f.category.ID, "1000")
		f.spend(f.category.ID, "1000")

		uc := NewGetBudgetAlertsUseCase(f.budgetRepo, f.familyRepo, f.categoryRepo, f.expenseRepo)
		output, err := uc.Execute(ctx, GetBudgetAlertsInput{FamilyID: f.family.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Alerts) != 1 {
			t.Fatalf("expected one alert, got %d", len(output.Alerts))
		}
		if output.Alerts[0].IsCritical {
			t.Error("expected spending equal to the budget not to be critical")
		}
	})

	t.Run("spending at the warning threshold is excluded", func(t *testing.T) {
		f := newAlertFixture()
		f.addBudget(f.category.ID, "1000")
		f.spend(f.category.ID, "800")

		uc := NewGetBudgetAlertsUseCase(f.budgetRepo, f.familyRepo, f.categoryRepo, f.expenseRepo)
		output, err := uc.Execute(ctx, GetBudgetAlertsInput{FamilyID: f.family.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Alerts) != 0 {
			t.Fatalf("expected no alerts at exactly 80%%, got %d", len(output.Alerts))
		}
	})

	t.Run("zero-amount budget is skipped", func(t *testing.T) {
		f := newAlertFixture()
		f.addBudget(f.category.ID, "0")
		f.spend(f.category.ID, "50")

		uc := NewGetBudgetAlertsUseCase(f.budgetRepo, f.familyRepo, f.categoryRepo, f.expenseRepo)
		output, err := uc.Execute(ctx, GetBudgetAlertsInput{FamilyID: f.family.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Alerts) != 0 {
			t.Fatalf("expected zero-amount budget to be skipped, got %d alerts", len(output.Alerts))
		}
	})

	t.Run("critical alerts come first, then by percentage", func(t *testing.T) {
		f := newAlertFixture()

		transport := entity.NewCategory("Transport", "Transportation costs", entity.CategoryTypeExpense, entity.CategoryKindService, f.now)
		f.categoryRepo.categories[transport.ID] = transport
		health := entity.NewCategory("Health", "Medical expenses", entity.CategoryTypeExpense, entity.CategoryKindService, f.now)
		f.categoryRepo.categories[health.ID] = health

		f.addBudget(f.category.ID, "1000")
		f.spend(f.category.ID, "900") // 90%, warning
		f.addBudget(transport.ID, "100")
		f.spend(transport.ID, "120") // 120%, critical
		f.addBudget(health.ID, "200")
		f.spend(health.ID, "170") // 85%, warning

		uc := NewGetBudgetAlertsUseCase(f.budgetRepo, f.familyRepo, f.categoryRepo, f.expenseRepo)
		output, err := uc.Execute(ctx, GetBudgetAlertsInput{FamilyID: f.family.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Alerts) != 3 {
			t.Fatalf("expected three alerts, got %d", len(output.Alerts))
		}
		if output.Alerts[0].CategoryName != "Transport" || !output.Alerts[0].IsCritical {
			t.Errorf("expected critical Transport alert first, got %s", output.Alerts[0].CategoryName)
		}
		if output.Alerts[1].CategoryName != "Groceries" {
			t.Errorf("expected Groceries second, got %s", output.Alerts[1].CategoryName)
		}
		if output.Alerts[2].CategoryName != "Health" {
			t.Errorf("expected Health third, got %s", output.Alerts[2].CategoryName)
		}
	})
}

func TestCheckBudgetAlertsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("exceeded budget produces an exceeded message", func(t *testing.T) {
		f := newAlertFixture()
		b := f.addBudget(f.category.ID, "1000")
		f.spend(f.category.ID, "1200")

		uc := NewCheckBudgetAlertsUseCase(f.budgetRepo, f.familyRepo, f.categoryRepo, f.expenseRepo, fixedClock{f.now})
		output, err := uc.Execute(ctx, CheckBudgetAlertsInput{FamilyID: f.family.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Alerts) != 1 {
			t.Fatalf("expected one alert, got %d", len(output.Alerts))
		}
		alert := output.Alerts[0]
		if alert.BudgetID != b.ID {
			t.Errorf("expected budget %s, got %s", b.ID, alert.BudgetID)
		}
		if !strings.Contains(alert.Message, "exceeded") {
			t.Errorf("expected an exceeded message, got %q", alert.Message)
		}
		if !strings.Contains(alert.Message, "Groceries") {
			t.Errorf("expected the category name in the message, got %q", alert.Message)
		}
		if !alert.AlertDate.Equal(f.now) {
			t.Errorf("expected alert date %s, got %s", f.now, alert.AlertDate)
		}
	})

	t.Run("warning budget produces an almost-spent message", func(t *testing.T) {
		f := newAlertFixture()
		f.addBudget(f.category.ID, "1000")
		f.spend(f.category.ID, "850")

		uc := NewCheckBudgetAlertsUseCase(f.budgetRepo, f.familyRepo, f.categoryRepo, f.expenseRepo, fixedClock{f.now})
		output, err := uc.Execute(ctx, CheckBudgetAlertsInput{FamilyID: f.family.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Alerts) != 1 {
			t.Fatalf("expected one alert, got %d", len(output.Alerts))
		}
		if !strings.Contains(output.Alerts[0].Message, "almost spent") {
			t.Errorf("expected an almost-spent message, got %q", output.Alerts[0].Message)
		}
	})

	t.Run("repeated checks over unchanged data yield the same alerts", func(t *testing.T) {
		f := newAlertFixture()
		f.addBudget(f.category.ID, "1000")
		f.spend(f.category.ID, "1200")

		uc := NewCheckBudgetAlertsUseCase(f.budgetRepo, f.familyRepo, f.categoryRepo, f.expenseRepo, fixedClock{f.now})

		first, err := uc.Execute(ctx, CheckBudgetAlertsInput{FamilyID: f.family.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(ctx, CheckBudgetAlertsInput{FamilyID: f.family.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(first.Alerts) != len(second.Alerts) {
			t.Fatalf("expected identical alert counts, got %d and %d", len(first.Alerts), len(second.Alerts))
		}
		for i := range first.Alerts {
			if first.Alerts[i].BudgetID != second.Alerts[i].BudgetID {
				t.Errorf("expected same budget at position %d", i)
			}
			if first.Alerts[i].Message != second.Alerts[i].Message {
				t.Errorf("expected same message at position %d: %q vs %q", i, first.Alerts[i].Message, second.Alerts[i].Message)
			}
		}
	})

	t.Run("expenses outside the budget window are ignored", func(t *testing.T) {
		f := newAlertFixture()
		f.addBudget(f.category.ID, "1000")

		outside := entity.NewExpense(
			f.member.ID,
			f.category.ID,
			decimal.RequireFromString("5000"),
			"outside the window",
			time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			f.now,
		)
		f.expenseRepo.expenses = append(f.expenseRepo.expenses, outside)

		uc := NewCheckBudgetAlertsUseCase(f.budgetRepo, f.familyRepo, f.categoryRepo, f.expenseRepo, fixedClock{f.now})
		output, err := uc.Execute(ctx, CheckBudgetAlertsInput{FamilyID: f.family.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Alerts) != 0 {
			t.Fatalf("expected no alerts from out-of-window spending, got %d", len(output.Alerts))
		}
	})
}
