package services

import (
	"context"
	"time"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/repositories"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
)

// koreanStatusAliases maps the status labels staff type in Korean onto
// canonical values, so searching for 재원 finds ACTIVE students.
var koreanStatusAliases = map[string]models.StudentStatus{
	"재원": models.StudentActive,
	"수료": models.StudentCompleted,
	"퇴원": models.StudentWithdrawn,
}

// CanonicalStudentStatus resolves a raw status filter, accepting both
// canonical values and Korean aliases. Unknown values pass through.
func CanonicalStudentStatus(raw string) string {
	if status, ok := koreanStatusAliases[raw]; ok {
		return string(status)
	}
	return raw
}

// StudentService manages the student roster.
type StudentService struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repositories.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// Create registers a student, generating the next YYYYNNN number when
// none was provided.
func (s *StudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	number := ""
	if req.StudentNumber != nil && *req.StudentNumber != "" {
		number = *req.StudentNumber
	} else {
		generated, err := s.studentRepo.NextStudentNumber(ctx, time.Now())
		if err != nil {
			return nil, err
		}
		number = generated
	}

	status := models.StudentActive
	if req.Status != nil && *req.Status != "" {
		status = models.StudentStatus(CanonicalStudentStatus(*req.Status))
	}

	student := &models.Student{
		Name:          req.Name,
		StudentNumber: number,
		DateOfBirth:   req.DateOfBirth,
		Phone:         normalizedPhonePtr(req.Phone),
		ParentPhone:   normalizedPhonePtr(req.ParentPhone),
		School:        req.School,
		Grade:         req.Grade,
		Status:        status,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// normalizedPhonePtr normalizes an optional phone field. Phones are
// stored normalized so login lookups never miss on formatting.
func normalizedPhonePtr(phone *string) *string {
	if phone == nil {
		return nil
	}
	normalized := NormalizePhone(*phone)
	if normalized == "" {
		return nil
	}
	return &normalized
}

// Get retrieves one student.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// List retrieves a filtered page of students.
func (s *StudentService) List(ctx context.Context, filter dto.StudentFilter) ([]*models.Student, dto.PaginationInfo, error) {
	filter.Status = CanonicalStudentStatus(filter.Status)
	return s.studentRepo.List(ctx, filter)
}

// Update applies the provided fields to a student.
func (s *StudentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.DateOfBirth != nil {
		student.DateOfBirth = req.DateOfBirth
	}
	if req.Phone != nil {
		student.Phone = normalizedPhonePtr(req.Phone)
	}
	if req.ParentPhone != nil {
		student.ParentPhone = normalizedPhonePtr(req.ParentPhone)
	}
	if req.School != nil {
		student.School = req.School
	}
	if req.Grade != nil {
		student.Grade = req.Grade
	}
	if req.Status != nil {
		status := models.StudentStatus(CanonicalStudentStatus(*req.Status))
		switch status {
		case models.StudentActive, models.StudentCompleted, models.StudentWithdrawn:
			student.Status = status
		default:
			return nil, apperrors.NewInvalidInputError("unknown student status")
		}
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Delete removes a student record.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}
