// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MemberRole represents the role of a member within a family.
type MemberRole string

const (
	MemberRoleAdministrator MemberRole = "administrator"
	MemberRoleMember        MemberRole = "member"
)

// IsValid reports whether the role is one of the known roles.
func (r MemberRole) IsValid() bool {
	return r == MemberRoleAdministrator || r == MemberRoleMember
}

// Family represents a household whose members record shared finances.
type Family struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// NewFamily creates a new Family entity.
func NewFamily(name string, now time.Time) *Family {
	return &Family{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
	}
}

// FamilyMember links a user to a family with a role. A user appears at
// most once per family.
type FamilyMember struct {
	ID        uuid.UUID
	FamilyID  uuid.UUID
	UserID    uuid.UUID
	Role      MemberRole
	IsActive  bool
	CreatedAt time.Time
	// User information (populated when needed)
	Username string
	Email    string
}

// NewFamilyMember creates a new active FamilyMember entity.
func NewFamilyMember(familyID, userID uuid.UUID, role MemberRole, now time.Time) *FamilyMember {
	return &FamilyMember{
		ID:        uuid.New(),
		FamilyID:  familyID,
		UserID:    userID,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
	}
}

// IsAdministrator reports whether the member holds the administrator role.
func (m *FamilyMember) IsAdministrator() bool {
	return m.Role == MemberRoleAdministrator
}

// FamilyWithMembers represents a family together with its member list.
type FamilyWithMembers struct {
	Family  *Family
	Members []*FamilyMember
}
