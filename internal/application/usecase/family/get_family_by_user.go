// Package family contains family and membership use cases.
package family

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/application/adapter"
	"github.com/family-finance/backend/internal/domain/entity"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// GetFamilyByUserInput represents the input for resolving a user's family.
type GetFamilyByUserInput struct {
	UserID uuid.UUID
}

// GetFamilyByUserOutput represents the output of resolving a user's family.
type GetFamilyByUserOutput struct {
	Family *entity.Family
	Member *entity.FamilyMember
}

// GetFamilyByUserUseCase resolves the family a user belongs to through
// their membership record.
type GetFamilyByUserUseCase struct {
	familyRepo adapter.FamilyRepository
}

// NewGetFamilyByUserUseCase creates a new GetFamilyByUserUseCase instance.
func NewGetFamilyByUserUseCase(familyRepo adapter.FamilyRepository) *GetFamilyByUserUseCase {
	return &GetFamilyByUserUseCase{familyRepo: familyRepo}
}

// Execute resolves the user's family.
func (uc *GetFamilyByUserUseCase) Execute(ctx context.Context, input GetFamilyByUserInput) (*GetFamilyByUserOutput, error) {
	member, err := uc.familyRepo.FindMemberByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve membership: %w", err)
	}
	if member == nil {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeMemberNotFound,
			"user does not belong to a family",
			domainerror.ErrMemberNotFound,
		)
	}

	family, err := uc.familyRepo.FindFamilyByID(ctx, member.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get family: %w", err)
	}
	if family == nil {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeFamilyNotFound,
			"family not found",
			domainerror.ErrFamilyNotFound,
		)
	}

	return &GetFamilyByUserOutput{
		Family: family,
		Member: member,
	}, nil
}
