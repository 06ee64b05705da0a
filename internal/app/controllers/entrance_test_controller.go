package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/services"
	"github.com/suhaktamgu/academy/internal/middleware"
)

// EntranceTestController manages placement test bookings.
type EntranceTestController struct {
	entranceTestService *services.EntranceTestService
	logger              zerolog.Logger
}

// NewEntranceTestController creates a new EntranceTestController.
func NewEntranceTestController(entranceTestService *services.EntranceTestService, logger zerolog.Logger) *EntranceTestController {
	return &EntranceTestController{entranceTestService: entranceTestService, logger: logger}
}

// Create books a placement test
// @Summary Create entrance test
// @Tags entrance-tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEntranceTestRequest true "Booking"
// @Success 201 {object} dto.APIResponse{data=models.EntranceTest}
// @Failure 400 {object} dto.APIResponse
// @Router /entrance-tests [post]
func (c *EntranceTestController) Create(ctx *gin.Context) {
	var req dto.CreateEntranceTestRequest
	if !bindJSON(ctx, &req) {
		return
	}

	test, err := c.entranceTestService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: test})
}

// List returns bookings
// @Summary List entrance tests
// @Tags entrance-tests
// @Produce json
// @Security BearerAuth
// @Param upcoming query bool false "Only scheduled tests from today onward"
// @Success 200 {object} dto.APIResponse{data=[]models.EntranceTest}
// @Router /entrance-tests [get]
func (c *EntranceTestController) List(ctx *gin.Context) {
	tests, err := c.entranceTestService.List(ctx.Request.Context(), ctx.Query("upcoming") == "true")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: tests})
}

// Get returns one booking
// @Summary Get entrance test
// @Tags entrance-tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Success 200 {object} dto.APIResponse{data=models.EntranceTest}
// @Failure 404 {object} dto.APIResponse
// @Router /entrance-tests/{id} [get]
func (c *EntranceTestController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	test, err := c.entranceTestService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: test})
}

// Update modifies a booking
// @Summary Update entrance test
// @Tags entrance-tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Param request body dto.UpdateEntranceTestRequest true "Changes"
// @Success 200 {object} dto.APIResponse{data=models.EntranceTest}
// @Failure 404 {object} dto.APIResponse
// @Router /entrance-tests/{id} [put]
func (c *EntranceTestController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateEntranceTestRequest
	if !bindJSON(ctx, &req) {
		return
	}

	test, err := c.entranceTestService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: test})
}

// Delete removes a booking
// @Summary Delete entrance test
// @Tags entrance-tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /entrance-tests/{id} [delete]
func (c *EntranceTestController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.entranceTestService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "입학 테스트가 삭제되었습니다"}})
}
