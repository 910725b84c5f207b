// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/family-finance/backend/internal/domain/entity"
)

// CreateFamilyRequest represents the request body for family creation.
type CreateFamilyRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// AddMemberRequest represents the request body for adding a family member.
type AddMemberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Role   string `json:"role" binding:"required,oneof=administrator member"`
}

// ChangeMemberRoleRequest represents the request body for changing a member's role.
type ChangeMemberRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=administrator member"`
}

// FamilyResponse represents a single family in API responses.
type FamilyResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	CreatedAt time.Time              `json:"created_at"`
	Members   []FamilyMemberResponse `json:"members,omitempty"`
}

// FamilyMemberResponse represents a family member in API responses.
type FamilyMemberResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// MemberListResponse represents the response for listing family members.
type MemberListResponse struct {
	Members []FamilyMemberResponse `json:"members"`
}

// ToFamilyResponse converts a domain Family entity to a FamilyResponse DTO.
func ToFamilyResponse(family *entity.Family, members []*entity.FamilyMember) FamilyResponse {
	response := FamilyResponse{
		ID:        family.ID.String(),
		Name:      family.Name,
		CreatedAt: family.CreatedAt,
		Members:   make([]FamilyMemberResponse, len(members)),
	}

	for i, m := range members {
		response.Members[i] = ToFamilyMemberResponse(m)
	}

	return response
}

// ToFamilyMemberResponse converts a domain FamilyMember entity to a
// FamilyMemberResponse DTO.
func ToFamilyMemberResponse(member *entity.FamilyMember) FamilyMemberResponse {
	return FamilyMemberResponse{
		ID:        member.ID.String(),
		UserID:    member.UserID.String(),
		Username:  member.Username,
		Email:     member.Email,
		Role:      string(member.Role),
		IsActive:  member.IsActive,
		CreatedAt: member.CreatedAt,
	}
}

// ToMemberListResponse converts a list of members to MemberListResponse.
func ToMemberListResponse(members []*entity.FamilyMember) MemberListResponse {
	items := make([]FamilyMemberResponse, len(members))
	for i, m := range members {
		items[i] = ToFamilyMemberResponse(m)
	}
	return MemberListResponse{Members: items}
}
