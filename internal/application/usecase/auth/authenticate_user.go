// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/family-finance/backend/internal/application/adapter"
	"github.com/family-finance/backend/internal/domain/entity"
	domainerror "github.com/family-finance/backend/internal/domain/error"
)

// AuthenticateUserInput represents the input for credential verification.
type AuthenticateUserInput struct {
	Username string
	Password string
}

// AuthenticateUserOutput represents the output of credential verification.
type AuthenticateUserOutput struct {
	User *entity.User
}

// AuthenticateUserUseCase verifies a username/password pair.
type AuthenticateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewAuthenticateUserUseCase creates a new AuthenticateUserUseCase instance.
func NewAuthenticateUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *AuthenticateUserUseCase {
	return &AuthenticateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the credential check. Unknown usernames and wrong
// passwords produce the same failure to prevent account enumeration.
func (uc *AuthenticateUserUseCase) Execute(ctx context.Context, input AuthenticateUserInput) (*AuthenticateUserOutput, error) {
	user, err := uc.userRepo.FindByUsername(ctx, input.Username)
	if err != nil || user == nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid username or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid username or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	return &AuthenticateUserOutput{User: user}, nil
}
