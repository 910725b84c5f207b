// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create persists a new budget.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by ID. Returns nil when not found.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByFamilyID retrieves all budgets of a family.
	FindByFamilyID(ctx context.Context, familyID uuid.UUID) ([]*entity.Budget, error)

	// ExistsOverlapping checks whether a budget for the same family and
	// category intersects the inclusive [start, end] interval.
	ExistsOverlapping(ctx context.Context, familyID, categoryID uuid.UUID, start, end time.Time) (bool, error)

	// Update updates an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget.
	Delete(ctx context.Context, id uuid.UUID) error
}
