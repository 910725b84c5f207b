// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/family-finance/backend/internal/application/usecase/family"
	"github.com/family-finance/backend/internal/domain/entity"
	domainerror "github.com/family-finance/backend/internal/domain/error"
	"github.com/family-finance/backend/internal/integration/entrypoint/dto"
	"github.com/family-finance/backend/internal/integration/entrypoint/middleware"
)

// FamilyController handles family and membership endpoints.
type FamilyController struct {
	createUseCase     *family.CreateFamilyUseCase
	getUseCase        *family.GetFamilyUseCase
	getByUserUseCase  *family.GetFamilyByUserUseCase
	listMembers       *family.ListMembersUseCase
	addMemberUseCase  *family.AddMemberUseCase
	changeRoleUseCase *family.ChangeMemberRoleUseCase
	removeUseCase     *family.RemoveMemberUseCase
}

// NewFamilyController creates a new family controller instance.
func NewFamilyController(
	createUseCase *family.CreateFamilyUseCase,
	getUseCase *family.GetFamilyUseCase,
	getByUserUseCase *family.GetFamilyByUserUseCase,
	listMembers *family.ListMembersUseCase,
	addMemberUseCase *family.AddMemberUseCase,
	changeRoleUseCase *family.ChangeMemberRoleUseCase,
	removeUseCase *family.RemoveMemberUseCase,
) *FamilyController {
	return &FamilyController{
		createUseCase:     createUseCase,
		getUseCase:        getUseCase,
		getByUserUseCase:  getByUserUseCase,
		listMembers:       listMembers,
		addMemberUseCase:  addMemberUseCase,
		changeRoleUseCase: changeRoleUseCase,
		removeUseCase:     removeUseCase,
	}
}

// Create handles POST /families requests.
func (c *FamilyController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondMissingIdentity(ctx)
		return
	}

	var req dto.CreateFamilyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := family.CreateFamilyInput{
		Name:          req.Name,
		CreatorUserID: userID,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFamilyError(ctx, err)
		return
	}

	response := dto.ToFamilyResponse(output.Family, []*entity.FamilyMember{output.Member})
	ctx.JSON(http.StatusCreated, response)
}

// Get handles GET /families/:id requests.
func (c *FamilyController) Get(ctx *gin.Context) {
	familyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid family ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), family.GetFamilyInput{FamilyID: familyID})
	if err != nil {
		c.handleFamilyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFamilyResponse(output.Family, output.Members))
}

// GetMine handles GET /me/family requests.
func (c *FamilyController) GetMine(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondMissingIdentity(ctx)
		return
	}

	output, err := c.getByUserUseCase.Execute(ctx.Request.Context(), family.GetFamilyByUserInput{UserID: userID})
	if err != nil {
		c.handleFamilyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFamilyResponse(output.Family, []*entity.FamilyMember{output.Member}))
}

// ListMembers handles GET /families/:id/members requests.
func (c *FamilyController) ListMembers(ctx *gin.Context) {
	familyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid family ID format",
		})
		return
	}

	output, err := c.listMembers.Execute(ctx.Request.Context(), family.ListMembersInput{FamilyID: familyID})
	if err != nil {
		c.handleFamilyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMemberListResponse(output.Members))
}

// AddMember handles POST /families/:id/members requests.
func (c *FamilyController) AddMember(ctx *gin.Context) {
	actingUserID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondMissingIdentity(ctx)
		return
	}

	familyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid family ID format",
		})
		return
	}

	var req dto.AddMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	input := family.AddMemberInput{
		FamilyID:     familyID,
		UserID:       userID,
		Role:         entity.MemberRole(req.Role),
		ActingUserID: actingUserID,
	}

	output, err := c.addMemberUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFamilyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFamilyMemberResponse(output.Member))
}

// ChangeMemberRole handles PUT /members/:memberId/role requests.
func (c *FamilyController) ChangeMemberRole(ctx *gin.Context) {
	actingUserID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondMissingIdentity(ctx)
		return
	}

	memberID, err := uuid.Parse(ctx.Param("memberId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid member ID format",
		})
		return
	}

	var req dto.ChangeMemberRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := family.ChangeMemberRoleInput{
		MemberID:     memberID,
		NewRole:      entity.MemberRole(req.Role),
		ActingUserID: actingUserID,
	}

	output, err := c.changeRoleUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFamilyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFamilyMemberResponse(output.Member))
}

// RemoveMember handles DELETE /members/:memberId requests.
func (c *FamilyController) RemoveMember(ctx *gin.Context) {
	actingUserID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondMissingIdentity(ctx)
		return
	}

	memberID, err := uuid.Parse(ctx.Param("memberId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid member ID format",
		})
		return
	}

	input := family.RemoveMemberInput{
		MemberID:     memberID,
		ActingUserID: actingUserID,
	}

	if _, err := c.removeUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleFamilyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Member removed"})
}

// handleFamilyError maps family errors to HTTP responses.
func (c *FamilyController) handleFamilyError(ctx *gin.Context, err error) {
	var familyErr *domainerror.FamilyError
	if errors.As(err, &familyErr) {
		ctx.JSON(getStatusCodeForFamilyError(familyErr.Code), dto.ErrorResponse{
			Error: familyErr.Message,
			Code:  string(familyErr.Code),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForFamilyError maps family error codes to HTTP status codes.
func getStatusCodeForFamilyError(code domainerror.FamilyErrorCode) int {
	switch code {
	case domainerror.ErrCodeFamilyNotFound,
		domainerror.ErrCodeMemberNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUserAlreadyFamilyMember:
		return http.StatusConflict
	case domainerror.ErrCodeNotAdministrator:
		return http.StatusForbidden
	case domainerror.ErrCodeFamilyNameRequired,
		domainerror.ErrCodeInvalidMemberRole,
		domainerror.ErrCodeCannotRemoveSelf,
		domainerror.ErrCodeCannotRemoveLastAdministrator:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondMissingIdentity writes the shared missing-identity failure.
func respondMissingIdentity(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not identified",
		Code:  string(domainerror.ErrCodeMissingIdentity),
	})
}
