// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/family-finance/backend/internal/domain/entity"
)

// FinancialSummaryResponse represents the financial summary in API responses.
type FinancialSummaryResponse struct {
	TotalIncome  string    `json:"total_income"`
	TotalExpense string    `json:"total_expense"`
	Balance      string    `json:"balance"`
	TotalBudget  string    `json:"total_budget"`
	PeriodStart  time.Time `json:"period_start"`
	PeriodEnd    time.Time `json:"period_end"`
}

// ReportItemResponse represents one row of the financial report.
type ReportItemResponse struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	OperationType string    `json:"operation_type"`
	Category      string    `json:"category"`
	Amount        string    `json:"amount"`
	Description   string    `json:"description,omitempty"`
	Username      string    `json:"username"`
	MemberRole    string    `json:"member_role"`
	Source        string    `json:"source,omitempty"`
}

// FinancialReportResponse represents the response for the financial report.
type FinancialReportResponse struct {
	Items []ReportItemResponse `json:"items"`
}

// CategoryExpensesResponse maps category names to summed expense amounts.
type CategoryExpensesResponse struct {
	Totals map[string]string `json:"totals"`
}

// ToFinancialSummaryResponse converts a FinancialSummary to its DTO.
func ToFinancialSummaryResponse(s *entity.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		TotalIncome:  s.TotalIncome.StringFixed(2),
		TotalExpense: s.TotalExpense.StringFixed(2),
		Balance:      s.Balance.StringFixed(2),
		TotalBudget:  s.TotalBudget.StringFixed(2),
		PeriodStart:  s.PeriodStart,
		PeriodEnd:    s.PeriodEnd,
	}
}

// ToFinancialReportResponse converts report items to FinancialReportResponse.
func ToFinancialReportResponse(items []*entity.ReportItem) FinancialReportResponse {
	rows := make([]ReportItemResponse, len(items))
	for i, item := range items {
		rows[i] = ReportItemResponse{
			ID:            item.ID.String(),
			Date:          item.Date,
			OperationType: string(item.OperationType),
			Category:      item.Category,
			Amount:        item.Amount.StringFixed(2),
			Description:   item.Description,
			Username:      item.Username,
			MemberRole:    string(item.MemberRole),
			Source:        item.Source,
		}
	}
	return FinancialReportResponse{Items: rows}
}

// ToCategoryExpensesResponse converts per-category totals to their DTO.
func ToCategoryExpensesResponse(totals map[string]decimal.Decimal) CategoryExpensesResponse {
	out := make(map[string]string, len(totals))
	for name, amount := range totals {
		out[name] = amount.StringFixed(2)
	}
	return CategoryExpensesResponse{Totals: out}
}
