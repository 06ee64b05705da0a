package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/services"
	"github.com/suhaktamgu/academy/internal/middleware"
)

// GradeController records and reads test scores.
type GradeController struct {
	gradeService *services.GradeService
	logger       zerolog.Logger
}

// NewGradeController creates a new GradeController.
func NewGradeController(gradeService *services.GradeService, logger zerolog.Logger) *GradeController {
	return &GradeController{gradeService: gradeService, logger: logger}
}

// Save records scores for one test across a class
// @Summary Save grades
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveGradesRequest true "Test and per-student scores"
// @Success 201 {object} dto.APIResponse{data=[]models.Grade}
// @Failure 400 {object} dto.APIResponse
// @Router /grades [post]
func (c *GradeController) Save(ctx *gin.Context) {
	var req dto.SaveGradesRequest
	if !bindJSON(ctx, &req) {
		return
	}

	grades, err := c.gradeService.Save(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: grades})
}

// List returns grades for a class or a student
// @Summary List grades
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param classroomId query int false "Class ID"
// @Param studentId query int false "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Grade}
// @Router /grades [get]
func (c *GradeController) List(ctx *gin.Context) {
	if studentID := queryID(ctx, "studentId"); studentID != 0 {
		grades, err := c.gradeService.ListByStudent(ctx.Request.Context(), studentID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.APIResponse{Data: grades})
		return
	}

	classroomID := queryID(ctx, "classroomId")
	if classroomID == 0 {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "classroomId or studentId is required"),
		})
		return
	}
	grades, err := c.gradeService.ListByClassroom(ctx.Request.Context(), classroomID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: grades})
}

// Update corrects one score
// @Summary Update grade
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade ID"
// @Param request body dto.UpdateGradeRequest true "Changes"
// @Success 200 {object} dto.APIResponse{data=models.Grade}
// @Failure 404 {object} dto.APIResponse
// @Router /grades/{id} [put]
func (c *GradeController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateGradeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	grade, err := c.gradeService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: grade})
}

// Delete removes one score
// @Summary Delete grade
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /grades/{id} [delete]
func (c *GradeController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.gradeService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "성적이 삭제되었습니다"}})
}
