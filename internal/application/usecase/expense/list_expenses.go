// Package expense contains expense tracking use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/application/adapter"
	"github.com/family-finance/backend/internal/domain/entity"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// ListExpensesInput represents the input for listing a family's expenses.
type ListExpensesInput struct {
	FamilyID  uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase lists the expenses of every member of a family,
// optionally restricted to a date range. The member set is resolved first
// so that a transaction is included exactly when its author is currently
// a member.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
	familyRepo  adapter.FamilyRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository, familyRepo adapter.FamilyRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
		familyRepo:  familyRepo,
	}
}

// Execute performs the expense listing.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
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

	members, err := uc.familyRepo.FindMembersByFamilyID(ctx, input.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list family members: %w", err)
	}
	if len(members) == 0 {
		return &ListExpensesOutput{Expenses: []*entity.Expense{}}, nil
	}

	memberIDs := make([]uuid.UUID, len(members))
	for i, m := range members {
		memberIDs[i] = m.ID
	}

	expenses, err := uc.expenseRepo.FindByMemberIDs(ctx, memberIDs, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &ListExpensesOutput{Expenses: expenses}, nil
}
