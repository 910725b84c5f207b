// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by ID. Returns nil when not found.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByType retrieves all categories of the given type, ordered by name.
	FindByType(ctx context.Context, categoryType entity.CategoryType) ([]*entity.Category, error)
}
