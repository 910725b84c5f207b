// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create persists a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by ID. Returns nil when not found.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByMemberIDs retrieves expenses recorded by any of the given
	// members, optionally restricted to the inclusive [start, end] range.
	FindByMemberIDs(ctx context.Context, memberIDs []uuid.UUID, start, end *time.Time) ([]*entity.Expense, error)

	// Update updates an existing expense.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense.
	Delete(ctx context.Context, id uuid.UUID) error
}
