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

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return retryVoid(ctx, "user.create", func() error {
		userModel := model.UserFromEntity(user)
		return dbFromContext(ctx, r.db).WithContext(ctx).Create(userModel).Error
	})
}

// FindByID retrieves a user by ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return withRetry(ctx, "user.find_by_id", func() (*entity.User, error) {
		var userModel model.UserModel
		result := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&userModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, result.Error
		}
		return userModel.ToEntity(), nil
	})
}

// FindByUsername retrieves a user by username.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return withRetry(ctx, "user.find_by_username", func() (*entity.User, error) {
		var userModel model.UserModel
		result := dbFromContext(ctx, r.db).WithContext(ctx).Where("username = ?", username).First(&userModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, result.Error
		}
		return userModel.ToEntity(), nil
	})
}

// ExistsByUsernameOrEmail checks whether a user with the username or
// email already exists.
func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	return withRetry(ctx, "user.exists", func() (bool, error) {
		var count int64
		result := dbFromContext(ctx, r.db).WithContext(ctx).
			Model(&model.UserModel{}).
			Where("username = ? OR email = ?", username, email).
			Count(&count)
		if result.Error != nil {
			return false, result.Error
		}
		return count > 0, nil
	})
}
