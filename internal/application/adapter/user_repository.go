// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID. Returns nil when not found.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by username. Returns nil when not found.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsernameOrEmail checks whether a user with the username or email exists.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
