package services

import (
	"context"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/repositories"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
)

const defaultMaxCapacity = 20

// ClassroomService manages subjects, classrooms and enrollments.
type ClassroomService struct {
	classroomRepo *repositories.ClassroomRepository
	accountRepo   *repositories.AccountRepository
	studentRepo   *repositories.StudentRepository
}

// NewClassroomService creates a new ClassroomService.
func NewClassroomService(classroomRepo *repositories.ClassroomRepository, accountRepo *repositories.AccountRepository, studentRepo *repositories.StudentRepository) *ClassroomService {
	return &ClassroomService{
		classroomRepo: classroomRepo,
		accountRepo:   accountRepo,
		studentRepo:   studentRepo,
	}
}

// CreateSubject registers a subject.
func (s *ClassroomService) CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*models.Subject, error) {
	subject := &models.Subject{Name: req.Name, Code: req.Code}
	if err := s.classroomRepo.CreateSubject(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// ListSubjects retrieves all subjects.
func (s *ClassroomService) ListSubjects(ctx context.Context) ([]*models.Subject, error) {
	return s.classroomRepo.ListSubjects(ctx)
}

// ListTeachers retrieves the accounts that may be assigned to a class.
// Admins teach too at a small academy, so both roles are included.
func (s *ClassroomService) ListTeachers(ctx context.Context) ([]*models.Account, error) {
	return s.accountRepo.ListByRoles(ctx, []models.RoleType{models.RoleTeacher, models.RoleAdmin})
}

// Create opens a classroom. The teacher must hold the TEACHER role.
func (s *ClassroomService) Create(ctx context.Context, req *dto.CreateClassroomRequest) (*models.Classroom, error) {
	teacher, err := s.accountRepo.GetByID(ctx, req.TeacherID)
	if err != nil {
		return nil, err
	}
	if teacher.Role != models.RoleTeacher {
		return nil, apperrors.NewInvalidInputError("assigned account is not a teacher")
	}

	capacity := defaultMaxCapacity
	if req.MaxCapacity != nil && *req.MaxCapacity > 0 {
		capacity = *req.MaxCapacity
	}

	classroom := &models.Classroom{
		Name:        req.Name,
		SubjectID:   req.SubjectID,
		TeacherID:   req.TeacherID,
		Schedule:    req.Schedule,
		MaxCapacity: capacity,
		Status:      models.ClassActive,
	}
	if err := s.classroomRepo.Create(ctx, classroom); err != nil {
		return nil, err
	}
	return s.classroomRepo.GetByID(ctx, classroom.ID)
}

// Get retrieves one classroom with its roster headcount.
func (s *ClassroomService) Get(ctx context.Context, id int64) (*models.Classroom, error) {
	return s.classroomRepo.GetByID(ctx, id)
}

// List retrieves classrooms, optionally by status.
func (s *ClassroomService) List(ctx context.Context, status string) ([]*models.Classroom, error) {
	return s.classroomRepo.List(ctx, status)
}

// Update applies the provided fields to a classroom.
func (s *ClassroomService) Update(ctx context.Context, id int64, req *dto.UpdateClassroomRequest) (*models.Classroom, error) {
	classroom, err := s.classroomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		classroom.Name = *req.Name
	}
	if req.SubjectID != nil {
		classroom.SubjectID = *req.SubjectID
	}
	if req.TeacherID != nil {
		teacher, err := s.accountRepo.GetByID(ctx, *req.TeacherID)
		if err != nil {
			return nil, err
		}
		if teacher.Role != models.RoleTeacher {
			return nil, apperrors.NewInvalidInputError("assigned account is not a teacher")
		}
		classroom.TeacherID = *req.TeacherID
	}
	if req.Schedule != nil {
		classroom.Schedule = req.Schedule
	}
	if req.MaxCapacity != nil {
		classroom.MaxCapacity = *req.MaxCapacity
	}
	if req.Status != nil {
		classroom.Status = models.ClassStatus(*req.Status)
	}

	if err := s.classroomRepo.Update(ctx, classroom); err != nil {
		return nil, err
	}
	return s.classroomRepo.GetByID(ctx, id)
}

// Delete removes a classroom.
func (s *ClassroomService) Delete(ctx context.Context, id int64) error {
	return s.classroomRepo.Delete(ctx, id)
}

// Enroll adds students to a classroom, refusing to exceed capacity.
func (s *ClassroomService) Enroll(ctx context.Context, classroomID int64, req *dto.EnrollRequest) error {
	classroom, err := s.classroomRepo.GetByID(ctx, classroomID)
	if err != nil {
		return err
	}
	if classroom.EnrollmentCount+len(req.StudentIDs) > classroom.MaxCapacity {
		return apperrors.NewConflictError("classroom is at capacity")
	}

	for _, studentID := range req.StudentIDs {
		if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
			return err
		}
		if err := s.classroomRepo.Enroll(ctx, classroomID, studentID); err != nil {
			return err
		}
	}
	return nil
}

// Unenroll removes a student from a classroom's active roster.
func (s *ClassroomService) Unenroll(ctx context.Context, classroomID, studentID int64) error {
	return s.classroomRepo.Unenroll(ctx, classroomID, studentID)
}

// Roster retrieves the active students of a classroom.
func (s *ClassroomService) Roster(ctx context.Context, classroomID int64) ([]*models.Student, error) {
	if _, err := s.classroomRepo.GetByID(ctx, classroomID); err != nil {
		return nil, err
	}
	return s.classroomRepo.ListEnrolledStudents(ctx, classroomID)
}
