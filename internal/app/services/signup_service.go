package services

import (
	"context"
	"time"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/repositories"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/logger"
)

// SignupService manages public enrollment inquiries.
type SignupService struct {
	signupRepo  *repositories.SignupRequestRepository
	studentRepo *repositories.StudentRepository
}

// NewSignupService creates a new SignupService.
func NewSignupService(signupRepo *repositories.SignupRequestRepository, studentRepo *repositories.StudentRepository) *SignupService {
	return &SignupService{
		signupRepo:  signupRepo,
		studentRepo: studentRepo,
	}
}

// Create files an inquiry from the public form. Phones are normalized
// on the way in so a later approval seeds clean login data.
func (s *SignupService) Create(ctx context.Context, req *dto.CreateSignupRequest) (*models.SignupRequest, error) {
	request := &models.SignupRequest{
		StudentName:  req.StudentName,
		School:       req.School,
		Grade:        req.Grade,
		ParentName:   req.ParentName,
		ParentPhone:  NormalizePhone(req.ParentPhone),
		StudentPhone: normalizedPhonePtr(req.StudentPhone),
		Message:      req.Message,
		Status:       models.SignupPending,
	}
	if err := s.signupRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// List retrieves inquiries, optionally by status.
func (s *SignupService) List(ctx context.Context, status string) ([]*models.SignupRequest, error) {
	return s.signupRepo.List(ctx, status)
}

// Get retrieves one inquiry.
func (s *SignupService) Get(ctx context.Context, id int64) (*models.SignupRequest, error) {
	return s.signupRepo.GetByID(ctx, id)
}

// Delete removes an inquiry.
func (s *SignupService) Delete(ctx context.Context, id int64) error {
	return s.signupRepo.Delete(ctx, id)
}

// Decide approves or rejects an inquiry. Approval registers the student
// so phone login works immediately for the family.
func (s *SignupService) Decide(ctx context.Context, id int64, req *dto.DecideSignupRequest) (*models.SignupRequest, error) {
	status := models.SignupStatus(req.Status)
	switch status {
	case models.SignupApproved, models.SignupRejected:
	default:
		return nil, apperrors.NewInvalidInputError("decision must be APPROVED or REJECTED")
	}

	request, err := s.signupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status != models.SignupPending {
		return nil, apperrors.NewConflictError("signup request already decided")
	}

	if status == models.SignupApproved {
		if err := s.registerStudent(ctx, request); err != nil {
			return nil, err
		}
	}

	if err := s.signupRepo.Decide(ctx, id, status, req.AdminNotes); err != nil {
		return nil, err
	}
	request.Status = status
	request.AdminNotes = req.AdminNotes
	return request, nil
}

func (s *SignupService) registerStudent(ctx context.Context, request *models.SignupRequest) error {
	number, err := s.studentRepo.NextStudentNumber(ctx, time.Now())
	if err != nil {
		return err
	}

	parentPhone := request.ParentPhone
	student := &models.Student{
		Name:          request.StudentName,
		StudentNumber: number,
		Phone:         request.StudentPhone,
		ParentPhone:   &parentPhone,
		School:        request.School,
		Grade:         request.Grade,
		Status:        models.StudentActive,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return err
	}

	logger.Info().Int64("signupRequestId", request.ID).Int64("studentId", student.ID).Msg("Signup approved, student registered")
	return nil
}
