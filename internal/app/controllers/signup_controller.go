package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/services"
	"github.com/suhaktamgu/academy/internal/middleware"
)

// SignupController handles enrollment applications: public submission
// plus the admin review queue.
type SignupController struct {
	signupService *services.SignupService
	logger        zerolog.Logger
}

// NewSignupController creates a new SignupController.
func NewSignupController(signupService *services.SignupService, logger zerolog.Logger) *SignupController {
	return &SignupController{signupService: signupService, logger: logger}
}

// Create submits an enrollment application (public)
// @Summary Submit signup request
// @Tags signup-requests
// @Accept json
// @Produce json
// @Param request body dto.CreateSignupRequest true "Application"
// @Success 201 {object} dto.APIResponse{data=models.SignupRequest}
// @Failure 400 {object} dto.APIResponse
// @Router /signup-requests [post]
func (c *SignupController) Create(ctx *gin.Context) {
	var req dto.CreateSignupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	signup, err := c.signupService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: signup})
}

// List returns applications for admin review
// @Summary List signup requests
// @Tags signup-requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Success 200 {object} dto.APIResponse{data=[]models.SignupRequest}
// @Router /signup-requests [get]
func (c *SignupController) List(ctx *gin.Context) {
	signups, err := c.signupService.List(ctx.Request.Context(), ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: signups})
}

// Decide approves or rejects an application
// @Summary Decide signup request
// @Description Approval registers the applicant as a student with a fresh number.
// @Tags signup-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.DecideSignupRequest true "APPROVED or REJECTED"
// @Success 200 {object} dto.APIResponse{data=models.SignupRequest}
// @Failure 409 {object} dto.APIResponse "Already decided"
// @Router /signup-requests/{id} [patch]
func (c *SignupController) Decide(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.DecideSignupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	signup, err := c.signupService.Decide(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: signup})
}

// Delete removes an application
// @Summary Delete signup request
// @Tags signup-requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /signup-requests/{id} [delete]
func (c *SignupController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.signupService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "가입 신청이 삭제되었습니다"}})
}
