package services

import (
	"context"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/repositories"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/helpers"
)

// AttendanceService manages class-day attendance.
type AttendanceService struct {
	attendanceRepo *repositories.AttendanceRepository
	classroomRepo  *repositories.ClassroomRepository
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(attendanceRepo *repositories.AttendanceRepository, classroomRepo *repositories.ClassroomRepository) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		classroomRepo:  classroomRepo,
	}
}

func validAttendanceStatus(status string) bool {
	switch models.AttendanceStatus(status) {
	case models.AttendancePresent, models.AttendanceAbsent, models.AttendanceLate, models.AttendanceExcused:
		return true
	}
	return false
}

// Save upserts a class day's records. Saving the same day twice
// overwrites the earlier entries row by row.
func (s *AttendanceService) Save(ctx context.Context, req *dto.SaveAttendanceRequest) error {
	if _, err := s.classroomRepo.GetByID(ctx, req.ClassroomID); err != nil {
		return err
	}

	records := make([]*models.AttendanceRecord, 0, len(req.Records))
	for _, entry := range req.Records {
		if !validAttendanceStatus(entry.Status) {
			return apperrors.NewInvalidInputError("unknown attendance status: " + entry.Status)
		}
		records = append(records, &models.AttendanceRecord{
			StudentID:   entry.StudentID,
			ClassroomID: req.ClassroomID,
			Date:        req.Date,
			Status:      models.AttendanceStatus(entry.Status),
			CheckInTime: entry.CheckInTime,
			Remarks:     entry.Remarks,
		})
	}
	return s.attendanceRepo.UpsertBatch(ctx, records)
}

// ListByClassroomDate retrieves one class day's sheet.
func (s *AttendanceService) ListByClassroomDate(ctx context.Context, classroomID int64, date string) ([]*models.AttendanceRecord, error) {
	if date == "" {
		date = helpers.Today()
	}
	return s.attendanceRepo.ListByClassroomDate(ctx, classroomID, date)
}

// ListByStudent retrieves a student's records plus the period tally.
func (s *AttendanceService) ListByStudent(ctx context.Context, studentID int64, from, to string) (*dto.AttendanceListResponse, error) {
	if to == "" {
		to = helpers.Today()
	}
	if from == "" {
		from = "1970-01-01"
	}

	records, err := s.attendanceRepo.ListByStudent(ctx, studentID, from, to)
	if err != nil {
		return nil, err
	}
	tally, err := s.attendanceRepo.TallyByStudent(ctx, studentID, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.AttendanceListResponse{Records: records, Summary: tally}, nil
}
