// Package income contains income tracking use cases.
package income

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/family-finance/backend/internal/domain/entity"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

type fakeIncomeRepo struct {
	incomes map[uuid.UUID]*entity.Income
}

func newFakeIncomeRepo() *fakeIncomeRepo {
	return &fakeIncomeRepo{incomes: make(map[uuid.UUID]*entity.Income)}
}

func (r *fakeIncomeRepo) Create(_ context.Context, income *entity.Income) error {
	r.incomes[income.ID] = income
	return nil
}

func (r *fakeIncomeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Income, error) {
	return r.incomes[id], nil
}

func (r *fakeIncomeRepo) FindByMemberIDs(_ context.Context, memberIDs []uuid.UUID, start, end *time.Time) ([]*entity.Income, error) {
	var out []*entity.Income
	for _, in := range r.incomes {
		for _, id := range memberIDs {
			if in.FamilyMemberID == id {
				out = append(out, in)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeIncomeRepo) Update(_ context.Context, income *entity.Income) error {
	r.incomes[income.ID] = income
	return nil
}

func (r *fakeIncomeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.incomes, id)
	return nil
}

// stubFamilyRepo resolves a single known member. The remaining methods
// are unused by income use cases.
type stubFamilyRepo struct {
	member *entity.FamilyMember
}

func (r *stubFamilyRepo) CreateFamily(context.Context, *entity.Family) error { return nil }
func (r *stubFamilyRepo) FindFamilyByID(context.Context, uuid.UUID) (*entity.Family, error) {
	return nil, nil
}
func (r *stubFamilyRepo) CreateMember(context.Context, *entity.FamilyMember) error { return nil }
func (r *stubFamilyRepo) FindMemberByID(_ context.Context, id uuid.UUID) (*entity.FamilyMember, error) {
	if r.member != nil && r.member.ID == id {
		return r.member, nil
	}
	return nil, nil
}
func (r *stubFamilyRepo) FindMemberByUserID(context.Context, uuid.UUID) (*entity.FamilyMember, error) {
	return r.member, nil
}
func (r *stubFamilyRepo) FindMemberByFamilyAndUser(context.Context, uuid.UUID, uuid.UUID) (*entity.FamilyMember, error) {
	return nil, nil
}
func (r *stubFamilyRepo) FindMembersByFamilyID(context.Context, uuid.UUID) ([]*entity.FamilyMember, error) {
	return nil, nil
}
func (r *stubFamilyRepo) UpdateMember(context.Context, *entity.FamilyMember) error { return nil }
func (r *stubFamilyRepo) DeleteMember(context.Context, uuid.UUID) error            { return nil }
func (r *stubFamilyRepo) CountAdministrators(context.Context, uuid.UUID) (int, error) {
	return 0, nil
}

type stubCategoryRepo struct {
	category *entity.Category
}

func (r *stubCategoryRepo) Create(context.Context, *entity.Category) error { return nil }
func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	if r.category != nil && r.category.ID == id {
		return r.category, nil
	}
	return nil, nil
}
func (r *stubCategoryRepo) FindByType(context.Context, entity.CategoryType) ([]*entity.Category, error) {
	return nil, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func TestCreateIncomeUseCase_Execute(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	member := entity.NewFamilyMember(uuid.New(), uuid.New(), entity.MemberRoleMember, now)
	incomeCategory := entity.NewCategory("Salary", "Primary wages", entity.CategoryTypeIncome, entity.CategoryKindNone, now)
	expenseCategory := entity.NewCategory("Groceries", "Food purchases", entity.CategoryTypeExpense, entity.CategoryKindProduct, now)

	setup := func(category *entity.Category) (*CreateIncomeUseCase, *fakeIncomeRepo) {
		repo := newFakeIncomeRepo()
		uc := NewCreateIncomeUseCase(repo, &stubFamilyRepo{member: member}, &stubCategoryRepo{category: category}, fixedClock{now})
		return uc, repo
	}

	t.Run("member records an income", func(t *testing.T) {
		uc, repo := setup(incomeCategory)

		output, err := uc.Execute(ctx, CreateIncomeInput{
			FamilyMemberID: member.ID,
			CategoryID:     incomeCategory.ID,
			Amount:         decimal.RequireFromString("2500.00"),
			Source:         "ACME Corp",
			Date:           date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Income.Source != "ACME Corp" {
			t.Errorf("expected source ACME Corp, got %s", output.Income.Source)
		}
		if !output.Income.Amount.Equal(decimal.RequireFromString("2500.00")) {
			t.Errorf("expected amount 2500.00, got %s", output.Income.Amount)
		}
		if _, ok := repo.incomes[output.Income.ID]; !ok {
			t.Error("expected income to be persisted")
		}
	})

	t.Run("empty source defaults to unspecified", func(t *testing.T) {
		uc, _ := setup(incomeCategory)

		output, err := uc.Execute(ctx, CreateIncomeInput{
			FamilyMemberID: member.ID,
			CategoryID:     incomeCategory.ID,
			Amount:         decimal.RequireFromString("100"),
			Source:         "",
			Date:           date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Income.Source != entity.UnspecifiedSource {
			t.Errorf("expected source %q, got %q", entity.UnspecifiedSource, output.Income.Source)
		}
	})

	t.Run("zero amount is accepted", func(t *testing.T) {
		uc, _ := setup(incomeCategory)

		_, err := uc.Execute(ctx, CreateIncomeInput{
			FamilyMemberID: member.ID,
			CategoryID:     incomeCategory.ID,
			Amount:         decimal.Zero,
			Date:           date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		uc, _ := setup(incomeCategory)

		_, err := uc.Execute(ctx, CreateIncomeInput{
			FamilyMemberID: member.ID,
			CategoryID:     incomeCategory.ID,
			Amount:         decimal.RequireFromString("-1"),
			Date:           date,
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) {
			t.Fatalf("expected TransactionError, got %v", err)
		}
		if txnErr.Code != domainerror.ErrCodeInvalidAmount {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidAmount, txnErr.Code)
		}
	})

	t.Run("unknown member is rejected", func(t *testing.T) {
		uc, _ := setup(incomeCategory)

		_, err := uc.Execute(ctx, CreateIncomeInput{
			FamilyMemberID: uuid.New(),
			CategoryID:     incomeCategory.ID,
			Amount:         decimal.RequireFromString("100"),
			Date:           date,
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) {
			t.Fatalf("expected TransactionError, got %v", err)
		}
		if txnErr.Code != domainerror.ErrCodeTransactionMemberNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeTransactionMemberNotFound, txnErr.Code)
		}
	})

	t.Run("expense category is rejected", func(t *testing.T) {
		uc, _ := setup(expenseCategory)

		_, err := uc.Execute(ctx, CreateIncomeInput{
			FamilyMemberID: member.ID,
			CategoryID:     expenseCategory.ID,
			Amount:         decimal.RequireFromString("100"),
			Date:           date,
		})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) {
			t.Fatalf("expected TransactionError, got %v", err)
		}
		if txnErr.Code != domainerror.ErrCodeCategoryTypeMismatch {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeCategoryTypeMismatch, txnErr.Code)
		}
	})
}
