// Package family contains family and membership use cases.
package family

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/application/adapter"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// RemoveMemberInput represents the input for removing a family member.
type RemoveMemberInput struct {
	MemberID     uuid.UUID
	ActingUserID uuid.UUID
}

// RemoveMemberOutput represents the output of removing a family member.
type RemoveMemberOutput struct {
	Success bool
}

// RemoveMemberUseCase handles removing members from a family. Admin-gated;
// self-removal and removing the last administrator are rejected.
type RemoveMemberUseCase struct {
	familyRepo adapter.FamilyRepository
}

// NewRemoveMemberUseCase creates a new RemoveMemberUseCase instance.
func NewRemoveMemberUseCase(familyRepo adapter.FamilyRepository) *RemoveMemberUseCase {
	return &RemoveMemberUseCase{familyRepo: familyRepo}
}

// Execute performs the member removal.
func (uc *RemoveMemberUseCase) Execute(ctx context.Context, input RemoveMemberInput) (*RemoveMemberOutput, error) {
	if err := requireAdministrator(ctx, uc.familyRepo, input.ActingUserID); err != nil {
		return nil, err
	}

	member, err := uc.familyRepo.FindMemberByID(ctx, input.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to find member: %w", err)
	}
	if member == nil {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeMemberNotFound,
			"family member not found",
			domainerror.ErrMemberNotFound,
		)
	}

	if member.UserID == input.ActingUserID {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeCannotRemoveSelf,
			"cannot remove your own membership",
			domainerror.ErrCannotRemoveSelf,
		)
	}

	if member.IsAdministrator() {
		adminCount, err := uc.familyRepo.CountAdministrators(ctx, member.FamilyID)
		if err != nil {
			return nil, fmt.Errorf("failed to count administrators: %w", err)
		}
		if adminCount <= 1 {
			return nil, domainerror.NewFamilyError(
				domainerror.ErrCodeCannotRemoveLastAdministrator,
				"cannot remove the family's last administrator",
				domainerror.ErrCannotRemoveLastAdministrator,
			)
		}
	}

	if err := uc.familyRepo.DeleteMember(ctx, member.ID); err != nil {
		return nil, fmt.Errorf("failed to remove member: %w", err)
	}

	return &RemoveMemberOutput{Success: true}, nil
}
