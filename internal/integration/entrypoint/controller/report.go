// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/application/usecase/report"
	domainerror "github.com/family-finance/backend/internal/domain/error"
	"github.com/family-finance/backend/internal/integration/entrypoint/dto"
)

// ReportController handles financial aggregation endpoints.
type ReportController struct {
	summaryUseCase          *report.GetFinancialSummaryUseCase
	reportUseCase           *report.GetFinancialReportUseCase
	categoryExpensesUseCase *report.GetCategoryExpensesUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	summaryUseCase *report.GetFinancialSummaryUseCase,
	reportUseCase *report.GetFinancialReportUseCase,
	categoryExpensesUseCase *report.GetCategoryExpensesUseCase,
) *ReportController {
	return &ReportController{
		summaryUseCase:          summaryUseCase,
		reportUseCase:           reportUseCase,
		categoryExpensesUseCase: categoryExpensesUseCase,
	}
}

// GetSummary handles GET /families/:id/reports/summary requests.
func (c *ReportController) GetSummary(ctx *gin.Context) {
	familyID, start, end, ok := c.parseReportParams(ctx)
	if !ok {
		return
	}

	input := report.GetFinancialSummaryInput{
		FamilyID:  familyID,
		StartDate: start,
		EndDate:   end,
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(output.Summary))
}

// GetReport handles GET /families/:id/reports/transactions requests.
func (c *ReportController) GetReport(ctx *gin.Context) {
	familyID, start, end, ok := c.parseReportParams(ctx)
	if !ok {
		return
	}

	input := report.GetFinancialReportInput{
		FamilyID:  familyID,
		StartDate: start,
		EndDate:   end,
	}

	output, err := c.reportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinancialReportResponse(output.Items))
}

// GetCategoryExpenses handles GET /families/:id/reports/category-expenses requests.
func (c *ReportController) GetCategoryExpenses(ctx *gin.Context) {
	familyID, start, end, ok := c.parseReportParams(ctx)
	if !ok {
		return
	}

	input := report.GetCategoryExpensesInput{
		FamilyID:  familyID,
		StartDate: start,
		EndDate:   end,
	}

	output, err := c.categoryExpensesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryExpensesResponse(output.Totals))
}

// parseReportParams parses the family ID path parameter and the required
// start_date and end_date query parameters.
func (c *ReportController) parseReportParams(ctx *gin.Context) (uuid.UUID, time.Time, time.Time, bool) {
	familyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid family ID format",
		})
		return uuid.Nil, time.Time{}, time.Time{}, false
	}

	start, err := time.Parse(time.RFC3339, ctx.Query("start_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid or missing start_date, expected RFC 3339",
		})
		return uuid.Nil, time.Time{}, time.Time{}, false
	}

	end, err := time.Parse(time.RFC3339, ctx.Query("end_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid or missing end_date, expected RFC 3339",
		})
		return uuid.Nil, time.Time{}, time.Time{}, false
	}

	return familyID, start, end, true
}

// handleReportError maps report errors to HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var familyErr *domainerror.FamilyError
	if errors.As(err, &familyErr) {
		ctx.JSON(getStatusCodeForFamilyError(familyErr.Code), dto.ErrorResponse{
			Error: familyErr.Message,
			Code:  string(familyErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
