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

// AddMemberInput represents the input for adding a family member.
type AddMemberInput struct {
	FamilyID     uuid.UUID
	UserID       uuid.UUID
	Role         entity.MemberRole
	ActingUserID uuid.UUID
}

// AddMemberOutput represents the output of adding a family member.
type AddMemberOutput struct {
	Member *entity.FamilyMember
}

// AddMemberUseCase handles adding users to a family. Admin-gated.
type AddMemberUseCase struct {
	familyRepo adapter.FamilyRepository
	userRepo   adapter.UserRepository
	clock      adapter.Clock
	txManager  adapter.TransactionManager
}

// NewAddMemberUseCase creates a new AddMemberUseCase instance.
func NewAddMemberUseCase(
	familyRepo adapter.FamilyRepository,
	userRepo adapter.UserRepository,
	clock adapter.Clock,
	txManager adapter.TransactionManager,
) *AddMemberUseCase {
	return &AddMemberUseCase{
		familyRepo: familyRepo,
		userRepo:   userRepo,
		clock:      clock,
		txManager:  txManager,
	}
}

// Execute performs the member addition.
func (uc *AddMemberUseCase) Execute(ctx context.Context, input AddMemberInput) (*AddMemberOutput, error) {
	if !input.Role.IsValid() {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeInvalidMemberRole,
			"role must be 'administrator' or 'member'",
			domainerror.ErrInvalidMemberRole,
		)
	}

	if err := requireAdministrator(ctx, uc.familyRepo, input.ActingUserID); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

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

	existing, err := uc.familyRepo.FindMemberByFamilyAndUser(ctx, input.FamilyID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeUserAlreadyFamilyMember,
			"user is already a member of this family",
			domainerror.ErrUserAlreadyFamilyMember,
		)
	}

	member := entity.NewFamilyMember(input.FamilyID, input.UserID, input.Role, uc.clock.Now())
	member.Username = user.Username
	member.Email = user.Email

	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		return uc.familyRepo.CreateMember(ctx, member)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return &AddMemberOutput{Member: member}, nil
}
