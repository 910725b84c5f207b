// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/family-finance/backend/internal/application/usecase/budget"
	"github.com/family-finance/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	FamilyID   string    `json:"family_id" binding:"required,uuid"`
	CategoryID string    `json:"category_id" binding:"required,uuid"`
	Amount     string    `json:"amount" binding:"required"`
	PeriodType string    `json:"period_type" binding:"required,oneof=daily weekly monthly quarterly yearly"`
	StartDate  time.Time `json:"start_date" binding:"required"`
	EndDate    time.Time `json:"end_date" binding:"required"`
}

// UpdateBudgetRequest represents the request body for updating a budget.
type UpdateBudgetRequest struct {
	Amount     string    `json:"amount" binding:"required"`
	PeriodType string    `json:"period_type" binding:"required,oneof=daily weekly monthly quarterly yearly"`
	StartDate  time.Time `json:"start_date" binding:"required"`
	EndDate    time.Time `json:"end_date" binding:"required"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID         string    `json:"id"`
	FamilyID   string    `json:"family_id"`
	CategoryID string    `json:"category_id"`
	Amount     string    `json:"amount"`
	PeriodType string    `json:"period_type"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// BudgetStatusResponse represents a budget with spending progress.
type BudgetStatusResponse struct {
	BudgetResponse
	CategoryName string `json:"category_name"`
	CurrentSpent string `json:"current_spent"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetStatusResponse `json:"budgets"`
}

// BudgetAlertResponse represents a message-style budget alert.
type BudgetAlertResponse struct {
	ID        string    `json:"id"`
	BudgetID  string    `json:"budget_id"`
	Message   string    `json:"message"`
	AlertDate time.Time `json:"alert_date"`
}

// BudgetAlertListResponse represents the response for the coarse alert check.
type BudgetAlertListResponse struct {
	Alerts []BudgetAlertResponse `json:"alerts"`
}

// BudgetAlertDetailResponse represents a detailed budget alert.
type BudgetAlertDetailResponse struct {
	BudgetID     string    `json:"budget_id"`
	CategoryName string    `json:"category_name"`
	BudgetAmount string    `json:"budget_amount"`
	SpentAmount  string    `json:"spent_amount"`
	Percentage   float64   `json:"percentage"`
	IsCritical   bool      `json:"is_critical"`
	PeriodStart  time.Time `json:"period_start"`
	PeriodEnd    time.Time `json:"period_end"`
}

// BudgetAlertDetailListResponse represents the response for the detailed
// alert listing.
type BudgetAlertDetailListResponse struct {
	Alerts []BudgetAlertDetailResponse `json:"alerts"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         b.ID.String(),
		FamilyID:   b.FamilyID.String(),
		CategoryID: b.CategoryID.String(),
		Amount:     b.Amount.StringFixed(2),
		PeriodType: string(b.PeriodType),
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		CreatedAt:  b.CreatedAt,
	}
}

// ToBudgetListResponse converts budget statuses to BudgetListResponse.
func ToBudgetListResponse(statuses []*entity.BudgetStatus) BudgetListResponse {
	items := make([]BudgetStatusResponse, len(statuses))
	for i, s := range statuses {
		items[i] = BudgetStatusResponse{
			BudgetResponse: ToBudgetResponse(s.Budget),
			CategoryName:   s.CategoryName,
			CurrentSpent:   s.CurrentSpent.StringFixed(2),
		}
	}
	return BudgetListResponse{Budgets: items}
}

// ToBudgetAlertListResponse converts budget alerts to BudgetAlertListResponse.
func ToBudgetAlertListResponse(alerts []*entity.BudgetAlert) BudgetAlertListResponse {
	items := make([]BudgetAlertResponse, len(alerts))
	for i, a := range alerts {
		items[i] = BudgetAlertResponse{
			ID:        a.ID.String(),
			BudgetID:  a.BudgetID.String(),
			Message:   a.Message,
			AlertDate: a.AlertDate,
		}
	}
	return BudgetAlertListResponse{Alerts: items}
}

// ToBudgetAlertDetailListResponse converts alert details to
// BudgetAlertDetailListResponse.
func ToBudgetAlertDetailListResponse(alerts []*budget.BudgetAlertDetail) BudgetAlertDetailListResponse {
	items := make([]BudgetAlertDetailResponse, len(alerts))
	for i, a := range alerts {
		items[i] = BudgetAlertDetailResponse{
			BudgetID:     a.BudgetID.String(),
			CategoryName: a.CategoryName,
			BudgetAmount: a.BudgetAmount.StringFixed(2),
			SpentAmount:  a.SpentAmount.StringFixed(2),
			Percentage:   a.Percentage,
			IsCritical:   a.IsCritical,
			PeriodStart:  a.PeriodStart,
			PeriodEnd:    a.PeriodEnd,
		}
	}
	return BudgetAlertDetailListResponse{Alerts: items}
}
