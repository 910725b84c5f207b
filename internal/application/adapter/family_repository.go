// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/domain/entity"
)

// FamilyRepository defines the interface for family and membership persistence.
type FamilyRepository interface {
	// CreateFamily persists a new family.
	CreateFamily(ctx context.Context, family *entity.Family) error

	// FindFamilyByID retrieves a family by ID. Returns nil when not found.
	FindFamilyByID(ctx context.Context, id uuid.UUID) (*entity.Family, error)

	// CreateMember adds a member to a family.
	CreateMember(ctx context.Context, member *entity.FamilyMember) error

	// FindMemberByID retrieves a member by ID, hydrated with user info.
	// Returns nil when not found.
	FindMemberByID(ctx context.Context, id uuid.UUID) (*entity.FamilyMember, error)

	// FindMemberByUserID retrieves the membership of a user, hydrated with
	// user info. Returns nil when the user belongs to no family.
	FindMemberByUserID(ctx context.Context, userID uuid.UUID) (*entity.FamilyMember, error)

	// FindMemberByFamilyAndUser retrieves a member by family and user ID.
	// Returns nil when not found.
	FindMemberByFamilyAndUser(ctx context.Context, familyID, userID uuid.UUID) (*entity.FamilyMember, error)

	// FindMembersByFamilyID retrieves all members of a family, hydrated
	// with user info.
	FindMembersByFamilyID(ctx context.Context, familyID uuid.UUID) ([]*entity.FamilyMember, error)

	// UpdateMember updates a family member.
	UpdateMember(ctx context.Context, member *entity.FamilyMember) error

	// DeleteMember removes a member from its family.
	DeleteMember(ctx context.Context, id uuid.UUID) error

	// CountAdministrators counts administrator members of a family.
	CountAdministrators(ctx context.Context, familyID uuid.UUID) (int, error)
}
