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

// GetFamilyInput represents the input for fetching a family.
type GetFamilyInput struct {
	FamilyID uuid.UUID
}

// GetFamilyOutput represents the output of fetching a family.
type GetFamilyOutput struct {
	Family  *entity.Family
	Members []*entity.FamilyMember
}

// GetFamilyUseCase fetches a family with its members.
type GetFamilyUseCase struct {
	familyRepo adapter.FamilyRepository
}

// NewGetFamilyUseCase creates a new GetFamilyUseCase instance.
func NewGetFamilyUseCase(familyRepo adapter.FamilyRepository) *GetFamilyUseCase {
	return &GetFamilyUseCase{familyRepo: familyRepo}
}

// Execute fetches the family.
func (uc *GetFamilyUseCase) Execute(ctx context.Context, input GetFamilyInput) (*GetFamilyOutput, error) {
	family, err := uc.familyRepo.FindFamilyByID(ctx, input.FamilyID)
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

	members, err := uc.familyRepo.FindMembersByFamilyID(ctx, input.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list family members: %w", err)
	}

	return &GetFamilyOutput{
		Family:  family,
		Members: members,
	}, nil
}
