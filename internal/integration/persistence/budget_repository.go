// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/family-finance/backend/internal/application/adapter"
	"github.com/family-finance/backend/internal/domain/entity"
	"github.com/family-finance/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget in the database.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	return retryVoid(ctx, "budget.create", func() error {
		budgetModel := model.BudgetFromEntity(budget)
		return dbFromContext(ctx, r.db).WithContext(ctx).Create(budgetModel).Error
	})
}

// FindByID retrieves a budget by ID.
func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	return withRetry(ctx, "budget.find_by_id", func() (*entity.Budget, error) {
		var budgetModel model.BudgetModel
		result := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&budgetModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, result.Error
		}
		return budgetModel.ToEntity(), nil
	})
}

// FindByFamilyID retrieves all budgets of a family, newest period first.
func (r *budgetRepository) FindByFamilyID(ctx context.Context, familyID uuid.UUID) ([]*entity.Budget, error) {
	return withRetry(ctx, "budget.find_by_family", func() ([]*entity.Budget, error) {
		var budgetModels []model.BudgetModel
		result := dbFromContext(ctx, r.db).WithContext(ctx).
			Where("family_id = ?", familyID).
			Order("start_date DESC").
			Find(&budgetModels)
		if result.Error != nil {
			return nil, result.Error
		}

		budgets := make([]*entity.Budget, len(budgetModels))
		for i, bm := range budgetModels {
			budgets[i] = bm.ToEntity()
		}
		return budgets, nil
	})
}

// ExistsOverlapping checks whether a budget for the same family and
// category intersects the inclusive [start, end] interval.
func (r *budgetRepository) ExistsOverlapping(ctx context.Context, familyID, categoryID uuid.UUID, start, end time.Time) (bool, error) {
	return withRetry(ctx, "budget.exists_overlapping", func() (bool, error) {
		var count int64
		result := dbFromContext(ctx, r.db).WithContext(ctx).
			Model(&model.BudgetModel{}).
			Where("family_id = ? AND category_id = ?", familyID, categoryID).
			Where("start_date <= ? AND end_date >= ?", end, start).
			Count(&count)
		if result.Error != nil {
			return false, result.Error
		}
		return count > 0, nil
	})
}

// Update updates an existing budget in the database.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	return retryVoid(ctx, "budget.update", func() error {
		budgetModel := model.BudgetFromEntity(budget)
		return dbFromContext(ctx, r.db).WithContext(ctx).Save(budgetModel).Error
	})
}

// Delete removes a budget from the database.
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return retryVoid(ctx, "budget.delete", func() error {
		return dbFromContext(ctx, r.db).WithContext(ctx).Delete(&model.BudgetModel{}, "id = ?", id).Error
	})
}
