// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/domain/entity"
)

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	// Create persists a new income.
	Create(ctx context.Context, income *entity.Income) error

	// FindByID retrieves an income by ID. Returns nil when not found.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error)

	// FindByMemberIDs retrieves incomes recorded by any of the given
	// members, optionally restricted to the inclusive [start, end] range.
	FindByMemberIDs(ctx context.Context, memberIDs []uuid.UUID, start, end *time.Time) ([]*entity.Income, error)

	// Update updates an existing income.
	Update(ctx context.Context, income *entity.Income) error

	// Delete removes an income.
	Delete(ctx context.Context, id uuid.UUID) error
}
