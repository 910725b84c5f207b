// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/family-finance/backend/internal/application/usecase/budget"
	"github.com/family-finance/backend/internal/domain/entity"
	domainerror "github.com/family-finance/backend/internal/domain/error"
	"github.com/family-finance/backend/internal/integration/entrypoint/dto"
	"github.com/family-finance/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget and alert endpoints.
type BudgetController struct {
	createUseCase      *budget.CreateBudgetUseCase
	updateUseCase      *budget.UpdateBudgetUseCase
	deleteUseCase      *budget.DeleteBudgetUseCase
	listUseCase        *budget.ListBudgetsUseCase
	checkAlertsUseCase *budget.CheckBudgetAlertsUseCase
	getAlertsUseCase   *budget.GetBudgetAlertsUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	createUseCase *budget.CreateBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
	checkAlertsUseCase *budget.CheckBudgetAlertsUseCase,
	getAlertsUseCase *budget.GetBudgetAlertsUseCase,
) *BudgetController {
	return &BudgetController{
		createUseCase:      createUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		listUseCase:        listUseCase,
		checkAlertsUseCase: checkAlertsUseCase,
		getAlertsUseCase:   getAlertsUseCase,
	}
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondMissingIdentity(ctx)
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	familyID, err := uuid.Parse(req.FamilyID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid family ID format",
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
		})
		return
	}

	input := budget.CreateBudgetInput{
		FamilyID:     familyID,
		CategoryID:   categoryID,
		Amount:       amount,
		PeriodType:   entity.BudgetPeriodType(req.PeriodType),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		ActingUserID: userID,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// Update handles PUT /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondMissingIdentity(ctx)
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
		})
		return
	}

	input := budget.UpdateBudgetInput{
		BudgetID:     budgetID,
		Amount:       amount,
		PeriodType:   entity.BudgetPeriodType(req.PeriodType),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		ActingUserID: userID,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondMissingIdentity(ctx)
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	input := budget.DeleteBudgetInput{
		BudgetID:     budgetID,
		ActingUserID: userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Budget deleted"})
}

// List handles GET /families/:id/budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	familyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid family ID format",
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{FamilyID: familyID})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// CheckAlerts handles GET /families/:id/budgets/alerts requests.
func (c *BudgetController) CheckAlerts(ctx *gin.Context) {
	familyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid family ID format",
		})
		return
	}

	output, err := c.checkAlertsUseCase.Execute(ctx.Request.Context(), budget.CheckBudgetAlertsInput{FamilyID: familyID})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetAlertListResponse(output.Alerts))
}

// GetAlertDetails handles GET /families/:id/budgets/alerts/details requests.
func (c *BudgetController) GetAlertDetails(ctx *gin.Context) {
	familyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid family ID format",
		})
		return
	}

	output, err := c.getAlertsUseCase.Execute(ctx.Request.Context(), budget.GetBudgetAlertsInput{FamilyID: familyID})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetAlertDetailListResponse(output.Alerts))
}

// handleBudgetError maps budget errors to HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(c.getStatusCodeForBudgetError(budgetErr.Code), dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(getStatusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

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

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeBudgetOverlap:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidBudgetPeriod,
		domainerror.ErrCodeInvalidBudgetDates:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
