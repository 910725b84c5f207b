// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/domain/entity"
)

// FamilyModel represents the families table in the database.
type FamilyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the FamilyModel.
func (FamilyModel) TableName() string {
	return "families"
}

// ToEntity converts a FamilyModel to a domain Family entity.
func (m *FamilyModel) ToEntity() *entity.Family {
	return &entity.Family{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// FamilyFromEntity creates a FamilyModel from a domain Family entity.
func FamilyFromEntity(family *entity.Family) *FamilyModel {
	return &FamilyModel{
		ID:        family.ID,
		Name:      family.Name,
		CreatedAt: family.CreatedAt,
	}
}

// FamilyMemberModel represents the family_members table in the database.
type FamilyMemberModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FamilyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Role      string    `gorm:"type:varchar(20);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	// User information (joined from users table)
	Username string `gorm:"-"`
	Email    string `gorm:"-"`
}

// TableName returns the table name for the FamilyMemberModel.
func (FamilyMemberModel) TableName() string {
	return "family_members"
}

// ToEntity converts a FamilyMemberModel to a domain FamilyMember entity.
func (m *FamilyMemberModel) ToEntity() *entity.FamilyMember {
	return &entity.FamilyMember{
		ID:        m.ID,
		FamilyID:  m.FamilyID,
		UserID:    m.UserID,
		Role:      entity.MemberRole(m.Role),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		Username:  m.Username,
		Email:     m.Email,
	}
}

// FamilyMemberFromEntity creates a FamilyMemberModel from a domain FamilyMember entity.
func FamilyMemberFromEntity(member *entity.FamilyMember) *FamilyMemberModel {
	return &FamilyMemberModel{
		ID:        member.ID,
		FamilyID:  member.FamilyID,
		UserID:    member.UserID,
		Role:      string(member.Role),
		IsActive:  member.IsActive,
		CreatedAt: member.CreatedAt,
	}
}
