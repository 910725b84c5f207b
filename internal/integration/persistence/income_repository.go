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

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// Create creates a new income in the database.
func (r *incomeRepository) Create(ctx context.Context, income *entity.Income) error {
	return retryVoid(ctx, "income.create", func() error {
		incomeModel := model.IncomeFromEntity(income)
		return dbFromContext(ctx, r.db).WithContext(ctx).Create(incomeModel).Error
	})
}

// FindByID retrieves an income by ID.
func (r *incomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error) {
	return withRetry(ctx, "income.find_by_id", func() (*entity.Income, error) {
		var incomeModel model.IncomeModel
		result := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&incomeModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, result.Error
		}
		return incomeModel.ToEntity(), nil
	})
}

// FindByMemberIDs retrieves incomes recorded by any of the given members,
// optionally restricted to a date range, newest first.
func (r *incomeRepository) FindByMemberIDs(ctx context.Context, memberIDs []uuid.UUID, start, end *time.Time) ([]*entity.Income, error) {
	return withRetry(ctx, "income.find_by_members", func() ([]*entity.Income, error) {
		if len(memberIDs) == 0 {
			return []*entity.Income{}, nil
		}

		query := dbFromContext(ctx, r.db).WithContext(ctx).
			Where("family_member_id IN ?", memberIDs)
		if start != nil {
			query = query.Where("date >= ?", *start)
		}
		if end != nil {
			query = query.Where("date <= ?", *end)
		}

		var incomeModels []model.IncomeModel
		result := query.Order("date DESC").Find(&incomeModels)
		if result.Error != nil {
			return nil, result.Error
		}

		incomes := make([]*entity.Income, len(incomeModels))
		for i, im := range incomeModels {
			incomes[i] = im.ToEntity()
		}
		return incomes, nil
	})
}

// Update updates an existing income in the database.
func (r *incomeRepository) Update(ctx context.Context, income *entity.Income) error {
	return retryVoid(ctx, "income.update", func() error {
		incomeModel := model.IncomeFromEntity(income)
		return dbFromContext(ctx, r.db).WithContext(ctx).Save(incomeModel).Error
	})
}

// Delete removes an income from the database.
func (r *incomeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return retryVoid(ctx, "income.delete", func() error {
		return dbFromContext(ctx, r.db).WithContext(ctx).Delete(&model.IncomeModel{}, "id = ?", id).Error
	})
}
