package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/services"
	"github.com/suhaktamgu/academy/internal/middleware"
)

// CounselingController manages counseling requests on the staff side.
type CounselingController struct {
	counselingService *services.CounselingService
	logger            zerolog.Logger
}

// NewCounselingController creates a new CounselingController.
func NewCounselingController(counselingService *services.CounselingService, logger zerolog.Logger) *CounselingController {
	return &CounselingController{counselingService: counselingService, logger: logger}
}

// Create files a counseling request
// @Summary Create counseling request
// @Tags counseling
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCounselingRequest true "Request"
// @Success 201 {object} dto.APIResponse{data=models.CounselingRequest}
// @Failure 400 {object} dto.APIResponse
// @Router /counseling [post]
func (c *CounselingController) Create(ctx *gin.Context) {
	var req dto.CreateCounselingRequest
	if !bindJSON(ctx, &req) {
		return
	}

	counseling, err := c.counselingService.Create(ctx.Request.Context(), nil, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: counseling})
}

// List returns counseling requests, optionally by status
// @Summary List counseling requests
// @Tags counseling
// @Produce json
// @Security BearerAuth
// @Param status query string false "PENDING, SCHEDULED or COMPLETED"
// @Success 200 {object} dto.APIResponse{data=[]models.CounselingRequest}
// @Router /counseling [get]
func (c *CounselingController) List(ctx *gin.Context) {
	counselings, err := c.counselingService.List(ctx.Request.Context(), ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: counselings})
}

// Update changes a counseling request's status or notes
// @Summary Update counseling request
// @Tags counseling
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Counseling ID"
// @Param request body dto.UpdateCounselingRequest true "Changes"
// @Success 200 {object} dto.APIResponse{data=models.CounselingRequest}
// @Failure 404 {object} dto.APIResponse
// @Router /counseling/{id} [put]
func (c *CounselingController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateCounselingRequest
	if !bindJSON(ctx, &req) {
		return
	}

	counseling, err := c.counselingService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: counseling})
}

// Delete removes a counseling request
// @Summary Delete counseling request
// @Tags counseling
// @Produce json
// @Security BearerAuth
// @Param id path int true "Counseling ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /counseling/{id} [delete]
func (c *CounselingController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.counselingService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "상담 요청이 삭제되었습니다"}})
}
