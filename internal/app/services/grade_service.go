package services

import (
	"context"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/repositories"
)

const defaultMaxScore = 100

// GradeService manages test scores.
type GradeService struct {
	gradeRepo     *repositories.GradeRepository
	classroomRepo *repositories.ClassroomRepository
}

// NewGradeService creates a new GradeService.
func NewGradeService(gradeRepo *repositories.GradeRepository, classroomRepo *repositories.ClassroomRepository) *GradeService {
	return &GradeService{
		gradeRepo:     gradeRepo,
		classroomRepo: classroomRepo,
	}
}

// Save records one test's scores for a classroom.
func (s *GradeService) Save(ctx context.Context, req *dto.SaveGradesRequest) ([]*models.Grade, error) {
	if _, err := s.classroomRepo.GetByID(ctx, req.ClassroomID); err != nil {
		return nil, err
	}

	grades := make([]*models.Grade, 0, len(req.Grades))
	for _, entry := range req.Grades {
		maxScore := float64(defaultMaxScore)
		if entry.MaxScore != nil && *entry.MaxScore > 0 {
			maxScore = *entry.MaxScore
		}
		grades = append(grades, &models.Grade{
			StudentID:   entry.StudentID,
			ClassroomID: req.ClassroomID,
			TestName:    req.TestName,
			TestDate:    req.TestDate,
			Score:       entry.Score,
			MaxScore:    maxScore,
			Remarks:     entry.Remarks,
		})
	}
	if err := s.gradeRepo.CreateBatch(ctx, grades); err != nil {
		return nil, err
	}
	return grades, nil
}

// ListByClassroom retrieves a classroom's grades.
func (s *GradeService) ListByClassroom(ctx context.Context, classroomID int64) ([]*models.Grade, error) {
	return s.gradeRepo.ListByClassroom(ctx, classroomID)
}

// ListByStudent retrieves a student's grades.
func (s *GradeService) ListByStudent(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	return s.gradeRepo.ListByStudent(ctx, studentID)
}

// Update rewrites one recorded score.
func (s *GradeService) Update(ctx context.Context, id int64, req *dto.UpdateGradeRequest) (*models.Grade, error) {
	grade, err := s.gradeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TestName != nil {
		grade.TestName = *req.TestName
	}
	if req.TestDate != nil {
		grade.TestDate = *req.TestDate
	}
	if req.Score != nil {
		grade.Score = *req.Score
	}
	if req.MaxScore != nil {
		grade.MaxScore = *req.MaxScore
	}
	if req.Remarks != nil {
		grade.Remarks = req.Remarks
	}

	if err := s.gradeRepo.Update(ctx, grade); err != nil {
		return nil, err
	}
	return grade, nil
}

// Delete removes one grade row.
func (s *GradeService) Delete(ctx context.Context, id int64) error {
	return s.gradeRepo.Delete(ctx, id)
}
