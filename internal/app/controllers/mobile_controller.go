package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/services"
	"github.com/suhaktamgu/academy/internal/middleware"
	"github.com/suhaktamgu/academy/internal/pkg/helpers"
)

// MobileController serves the parent and student app.
type MobileController struct {
	mobileService     *services.MobileService
	counselingService *services.CounselingService
	logger            zerolog.Logger
}

// NewMobileController creates a new MobileController.
func NewMobileController(mobileService *services.MobileService, counselingService *services.CounselingService, logger zerolog.Logger) *MobileController {
	return &MobileController{
		mobileService:     mobileService,
		counselingService: counselingService,
		logger:            logger,
	}
}

// monthBounds expands an optional ?month= query into a date range; an
// empty month means the caller wants everything.
func monthBounds(ctx *gin.Context) (from, to string) {
	if month := ctx.Query("month"); month != "" {
		return helpers.MonthRange(month)
	}
	return "", ""
}

// Children lists the caller's students
// @Summary Linked students
// @Description A parent sees every linked student; a student sees their own record. Each entry carries the active classes.
// @Tags mobile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ChildrenResponse}
// @Router /mobile/children [get]
func (c *MobileController) Children(ctx *gin.Context) {
	children, err := c.mobileService.Children(ctx.Request.Context(),
		middleware.SessionAccountID(ctx), middleware.SessionRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: children})
}

// StudentProfile resolves a student session to its own record
// @Summary Own student profile
// @Tags mobile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentProfileResponse}
// @Failure 403 {object} dto.APIResponse
// @Router /mobile/student-profile [get]
func (c *MobileController) StudentProfile(ctx *gin.Context) {
	profile, err := c.mobileService.OwnProfile(ctx.Request.Context(),
		middleware.SessionAccountID(ctx), middleware.SessionRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile})
}

// Attendance returns a student's records with per-status counts
// @Summary Student attendance
// @Tags mobile
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param month query string false "Month (2026-08)"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceListResponse}
// @Failure 403 {object} dto.APIResponse
// @Router /mobile/student/{id}/attendance [get]
func (c *MobileController) Attendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	from, to := monthBounds(ctx)
	attendance, err := c.mobileService.Attendance(ctx.Request.Context(),
		middleware.SessionAccountID(ctx), middleware.SessionRole(ctx), id, from, to)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: attendance})
}

// Grades returns a student's test scores
// @Summary Student grades
// @Tags mobile
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param classroomId query int false "Restrict to one class"
// @Success 200 {object} dto.APIResponse{data=[]models.Grade}
// @Failure 403 {object} dto.APIResponse
// @Router /mobile/student/{id}/grades [get]
func (c *MobileController) Grades(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	grades, err := c.mobileService.Grades(ctx.Request.Context(),
		middleware.SessionAccountID(ctx), middleware.SessionRole(ctx), id, queryID(ctx, "classroomId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: grades})
}

// Assignments returns a student's homework with submission state
// @Summary Student assignments
// @Tags mobile
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.AssignmentSubmission}
// @Failure 403 {object} dto.APIResponse
// @Router /mobile/student/{id}/assignments [get]
func (c *MobileController) Assignments(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	submissions, err := c.mobileService.Assignments(ctx.Request.Context(),
		middleware.SessionAccountID(ctx), middleware.SessionRole(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: submissions})
}

// Lectures returns a student's active classes
// @Summary Student lectures
// @Tags mobile
// @Produce json
// @Security BearerAuth
// @Param studentId query int false "Student ID (a student session may omit it)"
// @Success 200 {object} dto.APIResponse{data=[]models.Classroom}
// @Failure 403 {object} dto.APIResponse
// @Router /mobile/lectures [get]
func (c *MobileController) Lectures(ctx *gin.Context) {
	lectures, err := c.mobileService.Lectures(ctx.Request.Context(),
		middleware.SessionAccountID(ctx), middleware.SessionRole(ctx), queryID(ctx, "studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: lectures})
}

// Announcements returns the live notices for the caller's role
// @Summary Mobile announcements
// @Tags mobile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Announcement}
// @Router /mobile/announcements [get]
func (c *MobileController) Announcements(ctx *gin.Context) {
	announcements, err := c.mobileService.Announcements(ctx.Request.Context(), middleware.SessionRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: announcements})
}

// ListCounseling returns the caller's own counseling requests
// @Summary Own counseling requests
// @Tags mobile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.CounselingRequest}
// @Router /mobile/counseling [get]
func (c *MobileController) ListCounseling(ctx *gin.Context) {
	counselings, err := c.counselingService.ListByParent(ctx.Request.Context(), middleware.SessionAccountID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: counselings})
}

// CreateCounseling files a counseling request from a parent
// @Summary Request counseling
// @Tags mobile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCounselingRequest true "Request"
// @Success 201 {object} dto.APIResponse{data=models.CounselingRequest}
// @Failure 400 {object} dto.APIResponse
// @Router /mobile/counseling [post]
func (c *MobileController) CreateCounseling(ctx *gin.Context) {
	var req dto.CreateCounselingRequest
	if !bindJSON(ctx, &req) {
		return
	}

	accountID := middleware.SessionAccountID(ctx)
	counseling, err := c.counselingService.Create(ctx.Request.Context(), &accountID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: counseling})
}

// DailyReports returns a student's study reports
// @Summary Student daily reports
// @Tags mobile
// @Produce json
// @Security BearerAuth
// @Param studentId query int true "Student ID"
// @Param month query string false "Month (2026-08)"
// @Param classroomId query int false "Restrict to one class"
// @Success 200 {object} dto.APIResponse{data=[]models.DailyReport}
// @Failure 403 {object} dto.APIResponse
// @Router /mobile/daily-reports [get]
func (c *MobileController) DailyReports(ctx *gin.Context) {
	studentID := queryID(ctx, "studentId")
	if studentID == 0 {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid studentId parameter"),
		})
		return
	}

	from, to := monthBounds(ctx)
	reports, err := c.mobileService.DailyReports(ctx.Request.Context(),
		middleware.SessionAccountID(ctx), middleware.SessionRole(ctx), studentID, from, to)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if classroomID := queryID(ctx, "classroomId"); classroomID != 0 {
		filtered := make([]*models.DailyReport, 0, len(reports))
		for _, report := range reports {
			if report.ClassroomID == classroomID {
				filtered = append(filtered, report)
			}
		}
		reports = filtered
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: reports})
}

// Dashboard aggregates the mobile home screen for one student
// @Summary Mobile dashboard
// @Tags mobile
// @Produce json
// @Security BearerAuth
// @Param studentId query int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.MobileDashboardResponse}
// @Failure 403 {object} dto.APIResponse
// @Router /mobile/dashboard [get]
func (c *MobileController) Dashboard(ctx *gin.Context) {
	studentID := queryID(ctx, "studentId")
	if studentID == 0 {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid studentId parameter"),
		})
		return
	}

	dashboard, err := c.mobileService.Dashboard(ctx.Request.Context(),
		middleware.SessionAccountID(ctx), middleware.SessionRole(ctx), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dashboard})
}

// RegisterPushToken stores a device token for the caller
// @Summary Register push token
// @Tags mobile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterPushTokenRequest true "Expo token"
// @Success 200 {object} dto.APIResponse{data=models.PushToken}
// @Failure 400 {object} dto.APIResponse
// @Router /mobile/push-token [post]
func (c *MobileController) RegisterPushToken(ctx *gin.Context) {
	var req dto.RegisterPushTokenRequest
	if !bindJSON(ctx, &req) {
		return
	}

	token, err := c.mobileService.RegisterPushToken(ctx.Request.Context(), middleware.SessionAccountID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: token})
}

// DeactivatePushToken retires a device token
// @Summary Deactivate push token
// @Tags mobile
// @Produce json
// @Security BearerAuth
// @Param token query string true "Expo token"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /mobile/push-token [delete]
func (c *MobileController) DeactivatePushToken(ctx *gin.Context) {
	token := ctx.Query("token")
	if token == "" {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid token parameter"),
		})
		return
	}

	if err := c.mobileService.DeactivatePushToken(ctx.Request.Context(), token); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "푸시 토큰이 해제되었습니다"}})
}
