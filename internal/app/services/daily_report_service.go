package services

import (
	"context"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/repositories"
	"github.com/suhaktamgu/academy/internal/pkg/helpers"
)

// DailyReportService lets teachers file per-class-day study reports.
type DailyReportService struct {
	dailyReportRepo *repositories.DailyReportRepository
	studentRepo     *repositories.StudentRepository
	classroomRepo   *repositories.ClassroomRepository
}

// NewDailyReportService creates a new DailyReportService.
func NewDailyReportService(dailyReportRepo *repositories.DailyReportRepository, studentRepo *repositories.StudentRepository, classroomRepo *repositories.ClassroomRepository) *DailyReportService {
	return &DailyReportService{
		dailyReportRepo: dailyReportRepo,
		studentRepo:     studentRepo,
		classroomRepo:   classroomRepo,
	}
}

// Save upserts one student's report for a class day. Filing again for
// the same day revises the earlier report.
func (s *DailyReportService) Save(ctx context.Context, req *dto.CreateDailyReportRequest) (*models.DailyReport, error) {
	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}
	if _, err := s.classroomRepo.GetByID(ctx, req.ClassroomID); err != nil {
		return nil, err
	}

	report := &models.DailyReport{
		StudentID:   req.StudentID,
		ClassroomID: req.ClassroomID,
		Date:        req.Date,
		Content:     req.Content,
		Homework:    req.Homework,
		Attitude:    req.Attitude,
		SpecialNote: req.SpecialNote,
	}
	if err := s.dailyReportRepo.Upsert(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// ListByStudent retrieves a student's reports for the staff view.
func (s *DailyReportService) ListByStudent(ctx context.Context, studentID int64, from, to string) ([]*models.DailyReport, error) {
	if to == "" {
		to = helpers.Today()
	}
	if from == "" {
		from = "1970-01-01"
	}
	return s.dailyReportRepo.ListByStudent(ctx, studentID, from, to)
}
