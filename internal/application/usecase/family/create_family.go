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

// MaxFamilyNameLength is the maximum allowed length for family names.
const MaxFamilyNameLength = 100

// CreateFamilyInput represents the input for family creation.
type CreateFamilyInput struct {
	Name          string
	CreatorUserID uuid.UUID
}

// CreateFamilyOutput represents the output of family creation.
type CreateFamilyOutput struct {
	Family *entity.Family
	Member *entity.FamilyMember
}

// CreateFamilyUseCase handles family creation. The creator is bound as
// the family's administrator.
type CreateFamilyUseCase struct {
	familyRepo adapter.FamilyRepository
	userRepo   adapter.UserRepository
	clock      adapter.Clock
	txManager  adapter.TransactionManager
}

// NewCreateFamilyUseCase creates a new CreateFamilyUseCase instance.
func NewCreateFamilyUseCase(
	familyRepo adapter.FamilyRepository,
	userRepo adapter.UserRepository,
	clock adapter.Clock,
	txManager adapter.TransactionManager,
) *CreateFamilyUseCase {
	return &CreateFamilyUseCase{
		familyRepo: familyRepo,
		userRepo:   userRepo,
		clock:      clock,
		txManager:  txManager,
	}
}

// Execute performs the family creation.
func (uc *CreateFamilyUseCase) Execute(ctx context.Context, input CreateFamilyInput) (*CreateFamilyOutput, error) {
	if input.Name == "" || len(input.Name) > MaxFamilyNameLength {
		return nil, domainerror.NewFamilyError(
			domainerror.ErrCodeFamilyNameRequired,
			fmt.Sprintf("family name is required and must not exceed %d characters", MaxFamilyNameLength),
			domainerror.ErrFamilyNameRequired,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.CreatorUserID)
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

	now := uc.clock.Now()
	family := entity.NewFamily(input.Name, now)
	member := entity.NewFamilyMember(family.ID, user.ID, entity.MemberRoleAdministrator, now)
	member.Username = user.Username
	member.Email = user.Email

	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.familyRepo.CreateFamily(ctx, family); err != nil {
			return fmt.Errorf("failed to create family: %w", err)
		}
		if err := uc.familyRepo.CreateMember(ctx, member); err != nil {
			return fmt.Errorf("failed to add creator as member: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateFamilyOutput{
		Family: family,
		Member: member,
	}, nil
}
