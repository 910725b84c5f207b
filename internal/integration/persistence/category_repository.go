// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/family-finance/backend/internal/application/adapter"
	"github.com/family-finance/backend/internal/domain/entity"
	"github.com/family-finance/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return retryVoid(ctx, "category.create", func() error {
		categoryModel := model.CategoryFromEntity(category)
		return dbFromContext(ctx, r.db).WithContext(ctx).Create(categoryModel).Error
	})
}

// FindByID retrieves a category by ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return withRetry(ctx, "category.find_by_id", func() (*entity.Category, error) {
		var categoryModel model.CategoryModel
		result := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&categoryModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, result.Error
		}
		return categoryModel.ToEntity(), nil
	})
}

// FindByType retrieves all categories of a type, ordered by name.
func (r *categoryRepository) FindByType(ctx context.Context, categoryType entity.CategoryType) ([]*entity.Category, error) {
	return withRetry(ctx, "category.find_by_type", func() ([]*entity.Category, error) {
		var categoryModels []model.CategoryModel
		result := dbFromContext(ctx, r.db).WithContext(ctx).
			Where("type = ?", string(categoryType)).
			Order("name ASC").
			Find(&categoryModels)
		if result.Error != nil {
			return nil, result.Error
		}

		categories := make([]*entity.Category, len(categoryModels))
		for i, cm := range categoryModels {
			categories[i] = cm.ToEntity()
		}
		return categories, nil
	})
}
