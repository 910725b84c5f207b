// Package income contains income tracking use cases.
package income

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/application/adapter"
	"github.com/family-finance/backend/internal/domain/entity"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// ListIncomesInput represents the input for listing a family's incomes.
type ListIncomesInput struct {
	FamilyID  uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// ListIncomesOutput represents the output of listing incomes.
type ListIncomesOutput struct {
	Incomes []*entity.Income
}

// ListIncomesUseCase lists the incomes of every member of a family,
// optionally restricted to a date range. The member set is resolved first
// so that a transaction is included exactly when its author is currently
// a member.
type ListIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
	familyRepo adapter.FamilyRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(incomeRepo adapter.IncomeRepository, familyRepo adapter.FamilyRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{
		incomeRepo: incomeRepo,
		familyRepo: familyRepo,
	}
}

// Execute performs the income listing.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, input ListIncomesInput) (*ListIncomesOutput, error) {
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
		return &ListIncomesOutput{Incomes: []*entity.Income{}}, nil
	}

	memberIDs := make([]uuid.UUID, len(members))
	for i, m := range members {
		memberIDs[i] = m.ID
	}

	incomes, err := uc.incomeRepo.FindByMemberIDs(ctx, memberIDs, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}

	return &ListIncomesOutput{Incomes: incomes}, nil
}
