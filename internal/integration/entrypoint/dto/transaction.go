// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/family-finance/backend/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for recording an income.
type CreateIncomeRequest struct {
	FamilyMemberID string    `json:"family_member_id" binding:"required,uuid"`
	CategoryID     string    `json:"category_id" binding:"required,uuid"`
	Amount         string    `json:"amount" binding:"required"`
	Source         string    `json:"source" binding:"max=100"`
	Description    string    `json:"description" binding:"max=255"`
	Date           time.Time `json:"date" binding:"required"`
}

// UpdateIncomeRequest represents the request body for updating an income.
type UpdateIncomeRequest struct {
	FamilyMemberID string    `json:"family_member_id" binding:"required,uuid"`
	CategoryID     string    `json:"category_id" binding:"required,uuid"`
	Amount         string    `json:"amount" binding:"required"`
	Source         string    `json:"source" binding:"max=100"`
	Description    string    `json:"description" binding:"max=255"`
	Date           time.Time `json:"date" binding:"required"`
}

// CreateExpenseRequest represents the request body for recording an expense.
type CreateExpenseRequest struct {
	FamilyMemberID string    `json:"family_member_id" binding:"required,uuid"`
	CategoryID     string    `json:"category_id" binding:"required,uuid"`
	Amount         string    `json:"amount" binding:"required"`
	Description    string    `json:"description" binding:"max=255"`
	Date           time.Time `json:"date" binding:"required"`
}

// UpdateExpenseRequest represents the request body for updating an expense.
type UpdateExpenseRequest struct {
	FamilyMemberID string    `json:"family_member_id" binding:"required,uuid"`
	CategoryID     string    `json:"category_id" binding:"required,uuid"`
	Amount         string    `json:"amount" binding:"required"`
	Description    string    `json:"description" binding:"max=255"`
	Date           time.Time `json:"date" binding:"required"`
}

// IncomeResponse represents a single income in API responses.
type IncomeResponse struct {
	ID             string    `json:"id"`
	FamilyMemberID string    `json:"family_member_id"`
	CategoryID     string    `json:"category_id"`
	Amount         string    `json:"amount"`
	Source         string    `json:"source"`
	Description    string    `json:"description,omitempty"`
	Date           time.Time `json:"date"`
	CreatedAt      time.Time `json:"created_at"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID             string    `json:"id"`
	FamilyMemberID string    `json:"family_member_id"`
	CategoryID     string    `json:"category_id"`
	Amount         string    `json:"amount"`
	Description    string    `json:"description,omitempty"`
	Date           time.Time `json:"date"`
	CreatedAt      time.Time `json:"created_at"`
}

// IncomeListResponse represents the response for listing incomes.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToIncomeResponse converts a domain Income entity to an IncomeResponse DTO.
func ToIncomeResponse(income *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:             income.ID.String(),
		FamilyMemberID: income.FamilyMemberID.String(),
		CategoryID:     income.CategoryID.String(),
		Amount:         income.Amount.StringFixed(2),
		Source:         income.Source,
		Description:    income.Description,
		Date:           income.Date,
		CreatedAt:      income.CreatedAt,
	}
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:             expense.ID.String(),
		FamilyMemberID: expense.FamilyMemberID.String(),
		CategoryID:     expense.CategoryID.String(),
		Amount:         expense.Amount.StringFixed(2),
		Description:    expense.Description,
		Date:           expense.Date,
		CreatedAt:      expense.CreatedAt,
	}
}

// ToIncomeListResponse converts a list of incomes to IncomeListResponse.
func ToIncomeListResponse(incomes []*entity.Income) IncomeListResponse {
	items := make([]IncomeResponse, len(incomes))
	for i, in := range incomes {
		items[i] = ToIncomeResponse(in)
	}
	return IncomeListResponse{Incomes: items}
}

// ToExpenseListResponse converts a list of expenses to ExpenseListResponse.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	items := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		items[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{Expenses: items}
}
