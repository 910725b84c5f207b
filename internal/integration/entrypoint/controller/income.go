// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/family-finance/backend/internal/application/usecase/income"
	domainerror "github.com/family-finance/backend/internal/domain/error"
	"github.com/family-finance/backend/internal/integration/entrypoint/dto"
	"github.com/family-finance/backend/internal/integration/entrypoint/middleware"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	createUseCase *income.CreateIncomeUseCase
	getUseCase    *income.GetIncomeUseCase
	updateUseCase *income.UpdateIncomeUseCase
	deleteUseCase *income.DeleteIncomeUseCase
	listUseCase   *income.ListIncomesUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	createUseCase *income.CreateIncomeUseCase,
	getUseCase *income.GetIncomeUseCase,
	updateUseCase *income.UpdateIncomeUseCase,
	deleteUseCase *income.DeleteIncomeUseCase,
	listUseCase *income.ListIncomesUseCase,
) *IncomeController {
	return &IncomeController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /incomes requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	var req dto.CreateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	memberID, amount, categoryID, ok := parseTransactionFields(ctx, req.FamilyMemberID, req.CategoryID, req.Amount)
	if !ok {
		return
	}

	input := income.CreateIncomeInput{
		FamilyMemberID: memberID,
		CategoryID:     categoryID,
		Amount:         amount,
		Source:         req.Source,
		Description:    req.Description,
		Date:           req.Date,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeResponse(output.Income))
}

// Get handles GET /incomes/:id requests.
func (c *IncomeController) Get(ctx *gin.Context) {
	incomeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), income.GetIncomeInput{IncomeID: incomeID})
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeResponse(output.Income))
}

// Update handles PUT /incomes/:id requests.
func (c *IncomeController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondMissingIdentity(ctx)
		return
	}

	incomeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income ID format",
		})
		return
	}

	var req dto.UpdateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	memberID, amount, categoryID, ok := parseTransactionFields(ctx, req.FamilyMemberID, req.CategoryID, req.Amount)
	if !ok {
		return
	}

	input := income.UpdateIncomeInput{
		IncomeID:       incomeID,
		FamilyMemberID: memberID,
		CategoryID:     categoryID,
		Amount:         amount,
		Source:         req.Source,
		Description:    req.Description,
		Date:           req.Date,
		ActingUserID:   userID,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeResponse(output.Income))
}

// Delete handles DELETE /incomes/:id requests.
func (c *IncomeController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondMissingIdentity(ctx)
		return
	}

	incomeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income ID format",
		})
		return
	}

	input := income.DeleteIncomeInput{
		IncomeID:     incomeID,
		ActingUserID: userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Income deleted"})
}

// List handles GET /families/:id/incomes requests.
func (c *IncomeController) List(ctx *gin.Context) {
	familyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid family ID format",
		})
		return
	}

	start, end, ok := parseDateRangeQuery(ctx)
	if !ok {
		return
	}

	input := income.ListIncomesInput{
		FamilyID:  familyID,
		StartDate: start,
		EndDate:   end,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(output.Incomes))
}

// parseTransactionFields parses the shared member, category and amount
// fields of income/expense payloads, writing the failure response itself.
func parseTransactionFields(ctx *gin.Context, memberIDStr, categoryIDStr, amountStr string) (uuid.UUID, decimal.Decimal, uuid.UUID, bool) {
	memberID, err := uuid.Parse(memberIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid family member ID format",
		})
		return uuid.Nil, decimal.Zero, uuid.Nil, false
	}

	categoryID, err := uuid.Parse(categoryIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return uuid.Nil, decimal.Zero, uuid.Nil, false
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
		})
		return uuid.Nil, decimal.Zero, uuid.Nil, false
	}

	return memberID, amount, categoryID, true
}

// parseDateRangeQuery parses optional start_date and end_date query
// parameters in RFC 3339 format, writing the failure response itself.
func parseDateRangeQuery(ctx *gin.Context) (*time.Time, *time.Time, bool) {
	var start, end *time.Time

	if s := ctx.Query("start_date"); s != "" {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected RFC 3339",
			})
			return nil, nil, false
		}
		start = &parsed
	}

	if s := ctx.Query("end_date"); s != "" {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected RFC 3339",
			})
			return nil, nil, false
		}
		end = &parsed
	}

	return start, end, true
}

// handleTransactionError maps income/expense errors to HTTP responses.
func handleTransactionError(ctx *gin.Context, err error) {
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

// getStatusCodeForTransactionError maps transaction error codes to HTTP
// status codes.
func getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeIncomeNotFound,
		domainerror.ErrCodeExpenseNotFound,
		domainerror.ErrCodeTransactionMemberNotFound,
		domainerror.ErrCodeTransactionCategoryMissing:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeCategoryTypeMismatch:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
