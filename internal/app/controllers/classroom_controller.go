package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/services"
	"github.com/suhaktamgu/academy/internal/middleware"
)

// ClassroomController manages classes, subjects and enrollment.
type ClassroomController struct {
	classroomService *services.ClassroomService
	logger           zerolog.Logger
}

// NewClassroomController creates a new ClassroomController.
func NewClassroomController(classroomService *services.ClassroomService, logger zerolog.Logger) *ClassroomController {
	return &ClassroomController{classroomService: classroomService, logger: logger}
}

// Create opens a new class
// @Summary Create class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClassroomRequest true "Class"
// @Success 201 {object} dto.APIResponse{data=models.Classroom}
// @Failure 400 {object} dto.APIResponse
// @Router /classes [post]
func (c *ClassroomController) Create(ctx *gin.Context) {
	var req dto.CreateClassroomRequest
	if !bindJSON(ctx, &req) {
		return
	}

	classroom, err := c.classroomService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: classroom})
}

// List returns classes, optionally filtered by status
// @Summary List classes
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param status query string false "ACTIVE or INACTIVE"
// @Success 200 {object} dto.APIResponse{data=[]models.Classroom}
// @Router /classes [get]
func (c *ClassroomController) List(ctx *gin.Context) {
	classrooms, err := c.classroomService.List(ctx.Request.Context(), ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: classrooms})
}

// Get returns one class
// @Summary Get class
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Success 200 {object} dto.APIResponse{data=models.Classroom}
// @Failure 404 {object} dto.APIResponse
// @Router /classes/{id} [get]
func (c *ClassroomController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	classroom, err := c.classroomService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: classroom})
}

// Update modifies a class
// @Summary Update class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Param request body dto.UpdateClassroomRequest true "Changes"
// @Success 200 {object} dto.APIResponse{data=models.Classroom}
// @Failure 404 {object} dto.APIResponse
// @Router /classes/{id} [put]
func (c *ClassroomController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateClassroomRequest
	if !bindJSON(ctx, &req) {
		return
	}

	classroom, err := c.classroomService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: classroom})
}

// Delete removes a class
// @Summary Delete class
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /classes/{id} [delete]
func (c *ClassroomController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.classroomService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "수업이 삭제되었습니다"}})
}

// Enroll adds students to a class
// @Summary Enroll students
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Param request body dto.EnrollRequest true "Student IDs"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 409 {object} dto.APIResponse "Capacity exceeded"
// @Router /classes/{id}/enroll [post]
func (c *ClassroomController) Enroll(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.EnrollRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.classroomService.Enroll(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "수강 등록이 완료되었습니다"}})
}

// Unenroll withdraws a student from a class
// @Summary Unenroll student
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Param studentId query int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /classes/{id}/enroll [delete]
func (c *ClassroomController) Unenroll(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	studentID := queryID(ctx, "studentId")
	if studentID == 0 {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid studentId parameter"),
		})
		return
	}

	if err := c.classroomService.Unenroll(ctx.Request.Context(), id, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "수강이 취소되었습니다"}})
}

// Roster lists the students enrolled in a class
// @Summary Class roster
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Router /classes/{id}/students [get]
func (c *ClassroomController) Roster(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	students, err := c.classroomService.Roster(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: students})
}

// CreateSubject adds a subject
// @Summary Create subject
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubjectRequest true "Subject"
// @Success 201 {object} dto.APIResponse{data=models.Subject}
// @Failure 409 {object} dto.APIResponse "Duplicate name"
// @Router /subjects [post]
func (c *ClassroomController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if !bindJSON(ctx, &req) {
		return
	}

	subject, err := c.classroomService.CreateSubject(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: subject})
}

// ListSubjects returns all subjects
// @Summary List subjects
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Subject}
// @Router /subjects [get]
func (c *ClassroomController) ListSubjects(ctx *gin.Context) {
	subjects, err := c.classroomService.ListSubjects(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: subjects})
}

// ListTeachers returns accounts that can lead a class
// @Summary List teachers
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.PublicAccount}
// @Router /teachers [get]
func (c *ClassroomController) ListTeachers(ctx *gin.Context) {
	teachers, err := c.classroomService.ListTeachers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	public := make([]interface{}, 0, len(teachers))
	for _, teacher := range teachers {
		public = append(public, teacher.Public())
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: public})
}
