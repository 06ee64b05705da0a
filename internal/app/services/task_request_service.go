package services

import (
	"context"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/repositories"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
)

// TaskRequestService manages internal staff work requests.
type TaskRequestService struct {
	taskRepo *repositories.TaskRequestRepository
}

// NewTaskRequestService creates a new TaskRequestService.
func NewTaskRequestService(taskRepo *repositories.TaskRequestRepository) *TaskRequestService {
	return &TaskRequestService{taskRepo: taskRepo}
}

// Create files a task request. The creator's name is denormalized onto
// the row so the list view needs no join.
func (s *TaskRequestService) Create(ctx context.Context, creatorID int64, creatorName string, req *dto.CreateTaskRequest) (*models.TaskRequest, error) {
	switch models.RoleType(req.TargetRole) {
	case models.RoleAdmin, models.RoleTeacher, models.RoleDesk:
	default:
		if req.TargetRole != models.TargetAll {
			return nil, apperrors.NewInvalidInputError("target role must be a staff role or ALL")
		}
	}

	task := &models.TaskRequest{
		Title:         req.Title,
		Description:   req.Description,
		CreatedBy:     creatorID,
		CreatedByName: creatorName,
		TargetRole:    req.TargetRole,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// List retrieves the tasks visible to the caller's role.
func (s *TaskRequestService) List(ctx context.Context, role models.RoleType, accountID int64) ([]*models.TaskRequest, error) {
	return s.taskRepo.ListForRole(ctx, role, accountID)
}

// SetCompleted toggles a task's completion flag.
func (s *TaskRequestService) SetCompleted(ctx context.Context, id int64, completed bool) error {
	return s.taskRepo.SetCompleted(ctx, id, completed)
}

// Delete removes a task request.
func (s *TaskRequestService) Delete(ctx context.Context, id int64) error {
	return s.taskRepo.Delete(ctx, id)
}
