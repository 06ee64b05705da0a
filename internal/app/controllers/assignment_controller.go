package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/services"
	"github.com/suhaktamgu/academy/internal/middleware"
)

// AssignmentController manages homework and per-student submissions.
type AssignmentController struct {
	assignmentService *services.AssignmentService
	logger            zerolog.Logger
}

// NewAssignmentController creates a new AssignmentController.
func NewAssignmentController(assignmentService *services.AssignmentService, logger zerolog.Logger) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService, logger: logger}
}

// Create posts homework to a class roster
// @Summary Create assignment
// @Description Creates the assignment and a NOT_SUBMITTED row for every enrolled student.
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAssignmentRequest true "Assignment"
// @Success 201 {object} dto.APIResponse{data=models.Assignment}
// @Failure 400 {object} dto.APIResponse
// @Router /assignments [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	var req dto.CreateAssignmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	assignment, err := c.assignmentService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: assignment})
}

// List returns assignments for a class
// @Summary List assignments
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param classroomId query int true "Class ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Assignment}
// @Router /assignments [get]
func (c *AssignmentController) List(ctx *gin.Context) {
	classroomID := queryID(ctx, "classroomId")
	if classroomID == 0 {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid classroomId parameter"),
		})
		return
	}

	assignments, err := c.assignmentService.ListByClassroom(ctx.Request.Context(), classroomID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: assignments})
}

// Get returns one assignment with its submissions
// @Summary Get assignment
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=models.Assignment}
// @Failure 404 {object} dto.APIResponse
// @Router /assignments/{id} [get]
func (c *AssignmentController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	assignment, err := c.assignmentService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: assignment})
}

// Update modifies an assignment
// @Summary Update assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param request body dto.UpdateAssignmentRequest true "Changes"
// @Success 200 {object} dto.APIResponse{data=models.Assignment}
// @Failure 404 {object} dto.APIResponse
// @Router /assignments/{id} [put]
func (c *AssignmentController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateAssignmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	assignment, err := c.assignmentService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: assignment})
}

// UpdateSubmission changes one student's submission state
// @Summary Update submission
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Param request body dto.UpdateSubmissionRequest true "Student and new status"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /assignments/{id}/submissions [put]
func (c *AssignmentController) UpdateSubmission(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateSubmissionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.assignmentService.UpdateSubmission(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "제출 상태가 변경되었습니다"}})
}

// Delete removes an assignment and its submissions
// @Summary Delete assignment
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /assignments/{id} [delete]
func (c *AssignmentController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.assignmentService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "과제가 삭제되었습니다"}})
}
