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

// familyRepository implements the adapter.FamilyRepository interface.
type familyRepository struct {
	db *gorm.DB
}

// NewFamilyRepository creates a new family repository instance.
func NewFamilyRepository(db *gorm.DB) adapter.FamilyRepository {
	return &familyRepository{
		db: db,
	}
}

// CreateFamily creates a new family in the database.
func (r *familyRepository) CreateFamily(ctx context.Context, family *entity.Family) error {
	return retryVoid(ctx, "family.create", func() error {
		familyModel := model.FamilyFromEntity(family)
		return dbFromContext(ctx, r.db).WithContext(ctx).Create(familyModel).Error
	})
}

// FindFamilyByID retrieves a family by its ID.
func (r *familyRepository) FindFamilyByID(ctx context.Context, id uuid.UUID) (*entity.Family, error) {
	return withRetry(ctx, "family.find_by_id", func() (*entity.Family, error) {
		var familyModel model.FamilyModel
		result := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&familyModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, result.Error
		}
		return familyModel.ToEntity(), nil
	})
}

// CreateMember adds a new member to a family.
func (r *familyRepository) CreateMember(ctx context.Context, member *entity.FamilyMember) error {
	return retryVoid(ctx, "family.create_member", func() error {
		memberModel := model.FamilyMemberFromEntity(member)
		return dbFromContext(ctx, r.db).WithContext(ctx).Create(memberModel).Error
	})
}

// FindMemberByID retrieves a family member by their ID.
func (r *familyRepository) FindMemberByID(ctx context.Context, id uuid.UUID) (*entity.FamilyMember, error) {
	return withRetry(ctx, "family.find_member_by_id", func() (*entity.FamilyMember, error) {
		var memberModel model.FamilyMemberModel
		result := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&memberModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, result.Error
		}

		r.hydrateUserInfo(ctx, &memberModel)
		return memberModel.ToEntity(), nil
	})
}

// FindMemberByUserID retrieves the membership of a user.
func (r *familyRepository) FindMemberByUserID(ctx context.Context, userID uuid.UUID) (*entity.FamilyMember, error) {
	return withRetry(ctx, "family.find_member_by_user", func() (*entity.FamilyMember, error) {
		var memberModel model.FamilyMemberModel
		result := dbFromContext(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&memberModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, result.Error
		}

		r.hydrateUserInfo(ctx, &memberModel)
		return memberModel.ToEntity(), nil
	})
}

// FindMemberByFamilyAndUser retrieves a member by family and user ID.
func (r *familyRepository) FindMemberByFamilyAndUser(ctx context.Context, familyID, userID uuid.UUID) (*entity.FamilyMember, error) {
	return withRetry(ctx, "family.find_member_by_family_and_user", func() (*entity.FamilyMember, error) {
		var memberModel model.FamilyMemberModel
		result := dbFromContext(ctx, r.db).WithContext(ctx).
			Where("family_id = ? AND user_id = ?", familyID, userID).
			First(&memberModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, result.Error
		}

		r.hydrateUserInfo(ctx, &memberModel)
		return memberModel.ToEntity(), nil
	})
}

// FindMembersByFamilyID retrieves all members of a family.
func (r *familyRepository) FindMembersByFamilyID(ctx context.Context, familyID uuid.UUID) ([]*entity.FamilyMember, error) {
	return withRetry(ctx, "family.find_members", func() ([]*entity.FamilyMember, error) {
		var memberModels []model.FamilyMemberModel
		result := dbFromContext(ctx, r.db).WithContext(ctx).
			Where("family_id = ?", familyID).
			Order("created_at ASC").
			Find(&memberModels)
		if result.Error != nil {
			return nil, result.Error
		}

		userIDs := make([]uuid.UUID, len(memberModels))
		for i, m := range memberModels {
			userIDs[i] = m.UserID
		}

		if len(userIDs) > 0 {
			var userModels []model.UserModel
			if err := dbFromContext(ctx, r.db).WithContext(ctx).Where("id IN ?", userIDs).Find(&userModels).Error; err == nil {
				userMap := make(map[uuid.UUID]model.UserModel)
				for _, u := range userModels {
					userMap[u.ID] = u
				}
				for i := range memberModels {
					if user, ok := userMap[memberModels[i].UserID]; ok {
						memberModels[i].Username = user.Username
						memberModels[i].Email = user.Email
					}
				}
			}
		}

		members := make([]*entity.FamilyMember, len(memberModels))
		for i, mm := range memberModels {
			members[i] = mm.ToEntity()
		}
		return members, nil
	})
}

// UpdateMember updates a family member.
func (r *familyRepository) UpdateMember(ctx context.Context, member *entity.FamilyMember) error {
	return retryVoid(ctx, "family.update_member", func() error {
		memberModel := model.FamilyMemberFromEntity(member)
		return dbFromContext(ctx, r.db).WithContext(ctx).Save(memberModel).Error
	})
}

// DeleteMember removes a member from its family.
func (r *familyRepository) DeleteMember(ctx context.Context, id uuid.UUID) error {
	return retryVoid(ctx, "family.delete_member", func() error {
		return dbFromContext(ctx, r.db).WithContext(ctx).Delete(&model.FamilyMemberModel{}, "id = ?", id).Error
	})
}

// CountAdministrators counts the administrator members of a family.
func (r *familyRepository) CountAdministrators(ctx context.Context, familyID uuid.UUID) (int, error) {
	return withRetry(ctx, "family.count_administrators", func() (int, error) {
		var count int64
		result := dbFromContext(ctx, r.db).WithContext(ctx).
			Model(&model.FamilyMemberModel{}).
			Where("family_id = ? AND role = ?", familyID, entity.MemberRoleAdministrator).
			Count(&count)
		if result.Error != nil {
			return 0, result.Error
		}
		return int(count), nil
	})
}

// hydrateUserInfo joins username and email onto a member model. Lookup
// failures leave the fields empty rather than failing the read.
func (r *familyRepository) hydrateUserInfo(ctx context.Context, memberModel *model.FamilyMemberModel) {
	var userModel model.UserModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).Where("id = ?", memberModel.UserID).First(&userModel).Error; err == nil {
		memberModel.Username = userModel.Username
		memberModel.Email = userModel.Email
	}
}
