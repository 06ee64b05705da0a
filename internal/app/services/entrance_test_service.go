package services

import (
	"context"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/helpers"
)

// EntranceTestStore is the slice of booking storage the service needs.
type EntranceTestStore interface {
	Create(ctx context.Context, t *models.EntranceTest) error
	GetByID(ctx context.Context, id int64) (*models.EntranceTest, error)
	List(ctx context.Context) ([]*models.EntranceTest, error)
	ListUpcoming(ctx context.Context, from string) ([]*models.EntranceTest, error)
	Update(ctx context.Context, t *models.EntranceTest) error
	Delete(ctx context.Context, id int64) error
}

// EntranceTestService manages placement test bookings.
type EntranceTestService struct {
	entranceTestRepo EntranceTestStore
}

// NewEntranceTestService creates a new EntranceTestService.
func NewEntranceTestService(entranceTestRepo EntranceTestStore) *EntranceTestService {
	return &EntranceTestService{entranceTestRepo: entranceTestRepo}
}

// Create books a test in SCHEDULED state.
func (s *EntranceTestService) Create(ctx context.Context, req *dto.CreateEntranceTestRequest) (*models.EntranceTest, error) {
	test := &models.EntranceTest{
		Name:        req.Name,
		School:      req.School,
		Grade:       req.Grade,
		ParentPhone: NormalizePhone(req.ParentPhone),
		TestDate:    req.TestDate,
		TestTime:    req.TestTime,
		Status:      models.EntranceTestScheduled,
		Notes:       req.Notes,
		PriorLevel:  req.PriorLevel,
	}
	if err := s.entranceTestRepo.Create(ctx, test); err != nil {
		return nil, err
	}
	return test, nil
}

// List retrieves bookings; upcoming restricts to future scheduled tests.
func (s *EntranceTestService) List(ctx context.Context, upcoming bool) ([]*models.EntranceTest, error) {
	if upcoming {
		return s.entranceTestRepo.ListUpcoming(ctx, helpers.Today())
	}
	return s.entranceTestRepo.List(ctx)
}

// Get retrieves one booking.
func (s *EntranceTestService) Get(ctx context.Context, id int64) (*models.EntranceTest, error) {
	return s.entranceTestRepo.GetByID(ctx, id)
}

// Update edits a booking's applicant details, reschedules it or records
// its outcome.
func (s *EntranceTestService) Update(ctx context.Context, id int64, req *dto.UpdateEntranceTestRequest) (*models.EntranceTest, error) {
	test, err := s.entranceTestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		test.Name = *req.Name
	}
	if req.School != nil {
		test.School = req.School
	}
	if req.Grade != nil {
		test.Grade = req.Grade
	}
	if req.ParentPhone != nil {
		test.ParentPhone = NormalizePhone(*req.ParentPhone)
	}
	if req.TestDate != nil {
		test.TestDate = *req.TestDate
	}
	if req.TestTime != nil {
		test.TestTime = *req.TestTime
	}
	if req.Status != nil {
		status := models.EntranceTestStatus(*req.Status)
		switch status {
		case models.EntranceTestScheduled, models.EntranceTestCompleted, models.EntranceTestCancelled:
			test.Status = status
		default:
			return nil, apperrors.NewInvalidInputError("unknown entrance test status: " + *req.Status)
		}
	}
	if req.Notes != nil {
		test.Notes = req.Notes
	}
	if req.PriorLevel != nil {
		test.PriorLevel = req.PriorLevel
	}
	if req.TestScore != nil {
		test.TestScore = req.TestScore
	}
	if req.CounselingNotes != nil {
		test.CounselingNotes = req.CounselingNotes
	}

	if err := s.entranceTestRepo.Update(ctx, test); err != nil {
		return nil, err
	}
	return test, nil
}

// Delete removes a booking.
func (s *EntranceTestService) Delete(ctx context.Context, id int64) error {
	return s.entranceTestRepo.Delete(ctx, id)
}
