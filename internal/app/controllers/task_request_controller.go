package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/services"
	"github.com/suhaktamgu/academy/internal/middleware"
)

// TaskRequestController manages the internal staff to-do board.
type TaskRequestController struct {
	taskRequestService *services.TaskRequestService
	logger             zerolog.Logger
}

// NewTaskRequestController creates a new TaskRequestController.
func NewTaskRequestController(taskRequestService *services.TaskRequestService, logger zerolog.Logger) *TaskRequestController {
	return &TaskRequestController{taskRequestService: taskRequestService, logger: logger}
}

// Create files a task for a staff role
// @Summary Create task request
// @Tags task-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTaskRequest true "Task"
// @Success 201 {object} dto.APIResponse{data=models.TaskRequest}
// @Failure 400 {object} dto.APIResponse
// @Router /task-requests [post]
func (c *TaskRequestController) Create(ctx *gin.Context) {
	var req dto.CreateTaskRequest
	if !bindJSON(ctx, &req) {
		return
	}

	task, err := c.taskRequestService.Create(ctx.Request.Context(),
		middleware.SessionAccountID(ctx), middleware.SessionName(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: task})
}

// List returns tasks relevant to the caller
// @Summary List task requests
// @Description Tasks targeted at the caller's role, at everyone, or created by the caller. Open tasks first.
// @Tags task-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.TaskRequest}
// @Router /task-requests [get]
func (c *TaskRequestController) List(ctx *gin.Context) {
	tasks, err := c.taskRequestService.List(ctx.Request.Context(),
		middleware.SessionRole(ctx), middleware.SessionAccountID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: tasks})
}

// SetCompleted toggles a task's completion
// @Summary Complete task request
// @Tags task-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Completion flag"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /task-requests/{id} [patch]
func (c *TaskRequestController) SetCompleted(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.taskRequestService.SetCompleted(ctx.Request.Context(), id, req.IsCompleted); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "업무 요청이 갱신되었습니다"}})
}

// Delete removes a task
// @Summary Delete task request
// @Tags task-requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /task-requests/{id} [delete]
func (c *TaskRequestController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.taskRequestService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "업무 요청이 삭제되었습니다"}})
}
