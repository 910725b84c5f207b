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

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return retryVoid(ctx, "expense.create", func() error {
		expenseModel := model.ExpenseFromEntity(expense)
		return dbFromContext(ctx, r.db).WithContext(ctx).Create(expenseModel).Error
	})
}

// FindByID retrieves an expense by ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	return withRetry(ctx, "expense.find_by_id", func() (*entity.Expense, error) {
		var expenseModel model.ExpenseModel
		result := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&expenseModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, result.Error
		}
		return expenseModel.ToEntity(), nil
	})
}

// FindByMemberIDs retrieves expenses recorded by any of the given members,
// optionally restricted to a date range, newest first.
func (r *expenseRepository) FindByMemberIDs(ctx context.Context, memberIDs []uuid.UUID, start, end *time.Time) ([]*entity.Expense, error) {
	return withRetry(ctx, "expense.find_by_members", func() ([]*entity.Expense, error) {
		if len(memberIDs) == 0 {
			return []*entity.Expense{}, nil
		}

		query := dbFromContext(ctx, r.db).WithContext(ctx).
			Where("family_member_id IN ?", memberIDs)
		if start != nil {
			query = query.Where("date >= ?", *start)
		}
		if end != nil {
			query = query.Where("date <= ?", *end)
		}

		var expenseModels []model.ExpenseModel
		result := query.Order("date DESC").Find(&expenseModels)
		if result.Error != nil {
			return nil, result.Error
		}

		expenses := make([]*entity.Expense, len(expenseModels))
		for i, em := range expenseModels {
			expenses[i] = em.ToEntity()
		}
		return expenses, nil
	})
}

// Update updates an existing expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	return retryVoid(ctx, "expense.update", func() error {
		expenseModel := model.ExpenseFromEntity(expense)
		return dbFromContext(ctx, r.db).WithContext(ctx).Save(expenseModel).Error
	})
}

// Delete removes an expense from the database.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return retryVoid(ctx, "expense.delete", func() error {
		return dbFromContext(ctx, r.db).WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id).Error
	})
}
