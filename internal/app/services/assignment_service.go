package services

import (
	"context"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/repositories"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/helpers"
)

// AssignmentService manages homework and submissions.
type AssignmentService struct {
	assignmentRepo *repositories.AssignmentRepository
	classroomRepo  *repositories.ClassroomRepository
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(assignmentRepo *repositories.AssignmentRepository, classroomRepo *repositories.ClassroomRepository) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		classroomRepo:  classroomRepo,
	}
}

// Create records an assignment and fans out a pending submission for
// every student on the active roster.
func (s *AssignmentService) Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*models.Assignment, error) {
	if _, err := s.classroomRepo.GetByID(ctx, req.ClassroomID); err != nil {
		return nil, err
	}

	roster, err := s.classroomRepo.ListEnrolledStudents(ctx, req.ClassroomID)
	if err != nil {
		return nil, err
	}
	studentIDs := make([]int64, 0, len(roster))
	for _, student := range roster {
		studentIDs = append(studentIDs, student.ID)
	}

	assignmentDate := helpers.Today()
	if req.AssignmentDate != nil && *req.AssignmentDate != "" {
		assignmentDate = *req.AssignmentDate
	}

	assignment := &models.Assignment{
		ClassroomID:    req.ClassroomID,
		Title:          req.Title,
		Description:    req.Description,
		AssignmentDate: assignmentDate,
		DueDate:        req.DueDate,
	}
	if err := s.assignmentRepo.CreateWithSubmissions(ctx, assignment, studentIDs); err != nil {
		return nil, err
	}
	return assignment, nil
}

// ListByClassroom retrieves a classroom's assignments.
func (s *AssignmentService) ListByClassroom(ctx context.Context, classroomID int64) ([]*models.Assignment, error) {
	return s.assignmentRepo.ListByClassroom(ctx, classroomID)
}

// Get retrieves one assignment with its submissions.
func (s *AssignmentService) Get(ctx context.Context, id int64) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	submissions, err := s.assignmentRepo.ListSubmissions(ctx, id)
	if err != nil {
		return nil, err
	}
	assignment.Submissions = submissions
	return assignment, nil
}

// Update edits homework details.
func (s *AssignmentService) Update(ctx context.Context, id int64, req *dto.UpdateAssignmentRequest) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		assignment.Title = *req.Title
	}
	if req.Description != nil {
		assignment.Description = req.Description
	}
	if req.AssignmentDate != nil {
		assignment.AssignmentDate = *req.AssignmentDate
	}
	if req.DueDate != nil {
		assignment.DueDate = *req.DueDate
	}

	if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// UpdateSubmission changes one student's status, score or feedback on
// an assignment.
func (s *AssignmentService) UpdateSubmission(ctx context.Context, assignmentID int64, req *dto.UpdateSubmissionRequest) error {
	status := models.SubmissionStatus(req.Status)
	switch status {
	case models.SubmissionNotSubmitted, models.SubmissionSubmitted, models.SubmissionGraded:
	default:
		return apperrors.NewInvalidInputError("unknown submission status: " + req.Status)
	}

	submission, err := s.assignmentRepo.GetSubmission(ctx, assignmentID, req.StudentID)
	if err != nil {
		return err
	}
	submission.Status = status
	submission.Score = req.Score
	submission.Feedback = req.Feedback
	return s.assignmentRepo.UpdateSubmission(ctx, submission)
}

// Delete removes an assignment and its submissions.
func (s *AssignmentService) Delete(ctx context.Context, id int64) error {
	return s.assignmentRepo.Delete(ctx, id)
}
