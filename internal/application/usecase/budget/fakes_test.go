// Package budget contains budget and alert use cases.
package budget

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/domain/entity"
)

type fakeBudgetRepo struct {
	budgets map[uuid.UUID]*entity.Budget
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{budgets: make(map[uuid.UUID]*entity.Budget)}
}

func (r *fakeBudgetRepo) Create(_ context.Context, budget *entity.Budget) error {
	r.budgets[budget.ID] = budget
	return nil
}

func (r *fakeBudgetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Budget, error) {
	return r.budgets[id], nil
}

func (r *fakeBudgetRepo) FindByFamilyID(_ context.Context, familyID uuid.UUID) ([]*entity.Budget, error) {
	var out []*entity.Budget
	for _, b := range r.budgets {
		if b.FamilyID == familyID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBudgetRepo) ExistsOverlapping(_ context.Context, familyID, categoryID uuid.UUID, start, end time.Time) (bool, error) {
	for _, b := range r.budgets {
		if b.FamilyID == familyID && b.CategoryID == categoryID && b.Overlaps(start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBudgetRepo) Update(_ context.Context, budget *entity.Budget) error {
	r.budgets[budget.ID] = budget
	return nil
}

func (r *fakeBudgetRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.budgets, id)
	return nil
}

type fakeFamilyRepo struct {
	families map[uuid.UUID]*entity.Family
	members  map[uuid.UUID]*entity.FamilyMember
}

func newFakeFamilyRepo() *fakeFamilyRepo {
	return &fakeFamilyRepo{
		families: make(map[uuid.UUID]*entity.Family),
		members:  make(map[uuid.UUID]*entity.FamilyMember),
	}
}

func (r *fakeFamilyRepo) CreateFamily(_ context.Context, family *entity.Family) error {
	r.families[family.ID] = family
	return nil
}

func (r *fakeFamilyRepo) FindFamilyByID(_ context.Context, id uuid.UUID) (*entity.Family, error) {
	return r.families[id], nil
}

func (r *fakeFamilyRepo) CreateMember(_ context.Context, member *entity.FamilyMember) error {
	r.members[member.ID] = member
	return nil
}

func (r *fakeFamilyRepo) FindMemberByID(_ context.Context, id uuid.UUID) (*entity.FamilyMember, error) {
	return r.members[id], nil
}

func (r *fakeFamilyRepo) FindMemberByUserID(_ context.Context, userID uuid.UUID) (*entity.FamilyMember, error) {
	for _, m := range r.members {
		if m.UserID == userID {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeFamilyRepo) FindMemberByFamilyAndUser(_ context.Context, familyID, userID uuid.UUID) (*entity.FamilyMember, error) {
	for _, m := range r.members {
		if m.FamilyID == familyID && m.UserID == userID {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeFamilyRepo) FindMembersByFamilyID(_ context.Context, familyID uuid.UUID) ([]*entity.FamilyMember, error) {
	var members []*entity.FamilyMember
	for _, m := range r.members {
		if m.FamilyID == familyID {
			members = append(members, m)
		}
	}
	return members, nil
}

func (r *fakeFamilyRepo) UpdateMember(_ context.Context, member *entity.FamilyMember) error {
	r.members[member.ID] = member
	return nil
}

func (r *fakeFamilyRepo) DeleteMember(_ context.Context, id uuid.UUID) error {
	delete(r.members, id)
	return nil
}

func (r *fakeFamilyRepo) CountAdministrators(_ context.Context, familyID uuid.UUID) (int, error) {
	count := 0
	for _, m := range r.members {
		if m.FamilyID == familyID && m.Role == entity.MemberRoleAdministrator {
			count++
		}
	}
	return count, nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) FindByType(_ context.Context, categoryType entity.CategoryType) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.Type == categoryType {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (r *fakeExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	r.expenses = append(r.expenses, expense)
	return nil
}

func (r *fakeExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	for _, e := range r.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeExpenseRepo) FindByMemberIDs(_ context.Context, memberIDs []uuid.UUID, start, end *time.Time) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range r.expenses {
		matched := false
		for _, id := range memberIDs {
			if e.FamilyMemberID == id {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if start != nil && e.Date.Before(*start) {
			continue
		}
		if end != nil && e.Date.After(*end) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeExpenseRepo) Update(_ context.Context, expense *entity.Expense) error {
	for i, e := range r.expenses {
		if e.ID == expense.ID {
			r.expenses[i] = expense
		}
	}
	return nil
}

func (r *fakeExpenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, e := range r.expenses {
		if e.ID == id {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			return nil
		}
	}
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}
