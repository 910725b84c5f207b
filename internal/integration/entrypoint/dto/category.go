// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/family-finance/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=255"`
	Type        string `json:"type" binding:"required,oneof=income expense"`
	Kind        string `json:"kind" binding:"omitempty,oneof=product service"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"`
	Kind        string    `json:"kind,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryListResponse represents the response for listing categories.
// Source is "live" when the list came from storage and "fallback" when
// the built-in defaults were served instead.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Source     string             `json:"source"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
		Type:        string(category.Type),
		Kind:        string(category.Kind),
		CreatedAt:   category.CreatedAt,
	}
}

// ToCategoryListResponse converts categories and their source to a
// CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category, source string) CategoryListResponse {
	items := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		items[i] = ToCategoryResponse(c)
	}
	return CategoryListResponse{
		Categories: items,
		Source:     source,
	}
}
