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

// ChangeMemberRoleInput represents the input for changing a member's role.
type ChangeMemberRoleInput struct {
	MemberID     uuid.UUID
	NewRole      entity.MemberRole
	ActingUserID uuid.UUID
}

// ChangeMemberRoleOutput represents the output of changing a member's role.
type ChangeMemberRoleOutput struct {
	Member *entity.FamilyMember
}

// ChangeMemberRoleUseCase handles role changes. Admin-gated; the family's
// last administrator cannot be demoted.
type ChangeMemberRoleUseCase struct {
	familyRepo adapter.FamilyRepository
}

// NewChangeMemberRoleUseCase creates a new ChangeMemberRoleUseCase instance.
func NewChangeMemberRoleUseCase(familyRepo adapter.FamilyRepository) *ChangeMemberRoleUseCase {
	return &ChangeMemberRoleUseCase{familyRepo: familyRepo}
}

// Execute performs the role change.
func (uc *ChangeMemberRoleUseCase) Execute(ctx context.Context, input ChangeMemberRoleInput) (*ChangeMemberRoleOutput, error) {
	if !input.NewRole.IsValid() {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeInvalidMemberRole,
			"role must be 'administrator' or 'member'",
			domainerror.ErrInvalidMemberRole,
		)
	}

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

	// Demoting the only administrator would leave the family without one.
	if member.IsAdministrator() && input.NewRole == entity.MemberRoleMember {
		adminCount, err := uc.familyRepo.CountAdministrators(ctx, member.FamilyID)
		if err != nil {
			return nil, fmt.Errorf("failed to count administrators: %w", err)
		}
		if adminCount <= 1 {
			return nil, domainerror.NewFamilyError(
				domainerror.ErrCodeCannotRemoveLastAdministrator,
				"cannot demote the family's last administrator",
				domainerror.ErrCannotRemoveLastAdministrator,
			)
		}
	}

	member.Role = input.NewRole
	if err := uc.familyRepo.UpdateMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}

	return &ChangeMemberRoleOutput{Member: member}, nil
}
