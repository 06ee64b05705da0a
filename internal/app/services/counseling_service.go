package services

import (
	"context"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/repositories"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
)

// CounselingService manages consultation requests.
type CounselingService struct {
	counselingRepo *repositories.CounselingRepository
	studentRepo    *repositories.StudentRepository
}

// NewCounselingService creates a new CounselingService.
func NewCounselingService(counselingRepo *repositories.CounselingRepository, studentRepo *repositories.StudentRepository) *CounselingService {
	return &CounselingService{
		counselingRepo: counselingRepo,
		studentRepo:    studentRepo,
	}
}

// Create files a counseling request in PENDING state. parentID is nil
// when desk staff file on a walk-in parent's behalf.
func (s *CounselingService) Create(ctx context.Context, parentID *int64, req *dto.CreateCounselingRequest) (*models.CounselingRequest, error) {
	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	request := &models.CounselingRequest{
		ParentID:      parentID,
		StudentID:     req.StudentID,
		Title:         req.Title,
		Description:   req.Description,
		PreferredDate: req.PreferredDate,
		Status:        models.CounselingPending,
	}
	if err := s.counselingRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return s.counselingRepo.GetByID(ctx, request.ID)
}

// List retrieves requests, optionally by status.
func (s *CounselingService) List(ctx context.Context, status string) ([]*models.CounselingRequest, error) {
	return s.counselingRepo.List(ctx, status)
}

// ListByParent retrieves the requests one parent filed.
func (s *CounselingService) ListByParent(ctx context.Context, parentID int64) ([]*models.CounselingRequest, error) {
	return s.counselingRepo.ListByParent(ctx, parentID)
}

// Delete removes a counseling request.
func (s *CounselingService) Delete(ctx context.Context, id int64) error {
	return s.counselingRepo.Delete(ctx, id)
}

// Update moves a request through its states and records session notes.
func (s *CounselingService) Update(ctx context.Context, id int64, req *dto.UpdateCounselingRequest) (*models.CounselingRequest, error) {
	request, err := s.counselingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		status := models.CounselingStatus(*req.Status)
		switch status {
		case models.CounselingPending, models.CounselingScheduled, models.CounselingCompleted, models.CounselingCancelled:
			request.Status = status
		default:
			return nil, apperrors.NewInvalidInputError("unknown counseling status: " + *req.Status)
		}
	}
	if req.SessionDate != nil {
		request.SessionDate = req.SessionDate
	}
	if req.SessionNotes != nil {
		request.SessionNotes = req.SessionNotes
	}
	if req.AdminNotes != nil {
		request.AdminNotes = req.AdminNotes
	}

	if err := s.counselingRepo.Update(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}
