package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/services"
	"github.com/suhaktamgu/academy/internal/middleware"
)

// DailyReportController lets teachers file per-class-day study reports.
type DailyReportController struct {
	dailyReportService *services.DailyReportService
	logger             zerolog.Logger
}

// NewDailyReportController creates a new DailyReportController.
func NewDailyReportController(dailyReportService *services.DailyReportService, logger zerolog.Logger) *DailyReportController {
	return &DailyReportController{dailyReportService: dailyReportService, logger: logger}
}

// Save files a study report for one class day
// @Summary Save daily report
// @Description One report per student, class and date; filing again revises it.
// @Tags daily-reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDailyReportRequest true "Report"
// @Success 200 {object} dto.APIResponse{data=models.DailyReport}
// @Failure 400 {object} dto.APIResponse
// @Router /daily-reports [post]
func (c *DailyReportController) Save(ctx *gin.Context) {
	var req dto.CreateDailyReportRequest
	if !bindJSON(ctx, &req) {
		return
	}

	report, err := c.dailyReportService.Save(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: report})
}

// List returns a student's reports
// @Summary List daily reports
// @Tags daily-reports
// @Produce json
// @Security BearerAuth
// @Param studentId query int true "Student ID"
// @Param from query string false "Start date"
// @Param to query string false "End date"
// @Success 200 {object} dto.APIResponse{data=[]models.DailyReport}
// @Router /daily-reports [get]
func (c *DailyReportController) List(ctx *gin.Context) {
	studentID := queryID(ctx, "studentId")
	if studentID == 0 {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid studentId parameter"),
		})
		return
	}

	reports, err := c.dailyReportService.ListByStudent(ctx.Request.Context(), studentID, ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: reports})
}
