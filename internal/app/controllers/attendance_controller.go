package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/services"
	"github.com/suhaktamgu/academy/internal/middleware"
)

// AttendanceController records and reads class-day attendance.
type AttendanceController struct {
	attendanceService *services.AttendanceService
	logger            zerolog.Logger
}

// NewAttendanceController creates a new AttendanceController.
func NewAttendanceController(attendanceService *services.AttendanceService, logger zerolog.Logger) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService, logger: logger}
}

// Save upserts attendance for a class day
// @Summary Save attendance
// @Description Batch upsert. Re-submitting the same class and date revises the earlier records.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveAttendanceRequest true "Class, date and per-student statuses"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.APIResponse
// @Router /attendance [post]
func (c *AttendanceController) Save(ctx *gin.Context) {
	var req dto.SaveAttendanceRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.attendanceService.Save(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "출결이 저장되었습니다"}})
}

// List returns attendance for a class on a date
// @Summary List attendance
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param classroomId query int true "Class ID"
// @Param date query string false "Date (defaults to today)"
// @Success 200 {object} dto.APIResponse{data=[]models.AttendanceRecord}
// @Router /attendance [get]
func (c *AttendanceController) List(ctx *gin.Context) {
	classroomID := queryID(ctx, "classroomId")
	if classroomID == 0 {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid classroomId parameter"),
		})
		return
	}

	records, err := c.attendanceService.ListByClassroomDate(ctx.Request.Context(), classroomID, ctx.Query("date"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: records})
}
