// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"regexp"

	"github.com/family-finance/backend/internal/application/adapter"
	"github.com/family-finance/backend/internal/domain/entity"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Username string
	Email    string
	Password string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User   *entity.User
	Family *entity.Family
	Member *entity.FamilyMember
}

// RegisterUserUseCase handles user registration logic. Registration
// auto-creates a family and binds the new user as its administrator.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	familyRepo      adapter.FamilyRepository
	passwordService adapter.PasswordService
	clock           adapter.Clock
	txManager       adapter.TransactionManager
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	familyRepo adapter.FamilyRepository,
	passwordService adapter.PasswordService,
	clock adapter.Clock,
	txManager adapter.TransactionManager,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		familyRepo:      familyRepo,
		passwordService: passwordService,
		clock:           clock,
		txManager:       txManager,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if input.Username == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUsernameRequired,
			"username is required",
			domainerror.ErrUsernameRequired,
		)
	}

	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	exists, err := uc.userRepo.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserAlreadyExists,
			"username or email already exists",
			domainerror.ErrUserAlreadyExists,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := uc.clock.Now()
	user := entity.NewUser(input.Username, input.Email, passwordHash, now)
	family := entity.NewFamily(fmt.Sprintf("%s's family", input.Username), now)
	member := entity.NewFamilyMember(family.ID, user.ID, entity.MemberRoleAdministrator, now)
	member.Username = user.Username
	member.Email = user.Email

	// User, family and membership are committed together.
	err = uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
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

	return &RegisterUserOutput{
		User:   user,
		Family: family,
		Member: member,
	}, nil
}

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
