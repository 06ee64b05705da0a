package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/dberrors"
)

// AssignmentRepository handles assignments and their submissions.
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new AssignmentRepository.
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// CreateWithSubmissions inserts an assignment and fans out a
// NOT_SUBMITTED submission row for every student ID, all in one
// transaction so a partial fan-out never survives.
func (r *AssignmentRepository) CreateWithSubmissions(ctx context.Context, assignment *models.Assignment, studentIDs []int64) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO assignments (classroom_id, title, description, assignment_date, due_date)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at`,
			assignment.ClassroomID, assignment.Title, assignment.Description,
			assignment.AssignmentDate, assignment.DueDate).
			Scan(&assignment.ID, &assignment.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating assignment: %w", err)
		}

		for _, studentID := range studentIDs {
			_, err := tx.Exec(ctx, `
				INSERT INTO assignment_submissions (assignment_id, student_id, status)
				VALUES ($1, $2, $3)`,
				assignment.ID, studentID, models.SubmissionNotSubmitted)
			if err != nil {
				return fmt.Errorf("error creating submission for student %d: %w", studentID, err)
			}
		}
		return nil
	})
}

const assignmentSelect = `
	SELECT a.id, a.classroom_id, a.title, a.description, a.assignment_date, a.due_date, a.created_at
	FROM assignments a`

func scanAssignment(row interface{ Scan(dest ...any) error }) (*models.Assignment, error) {
	a := &models.Assignment{}
	err := row.Scan(&a.ID, &a.ClassroomID, &a.Title, &a.Description, &a.AssignmentDate, &a.DueDate, &a.CreatedAt)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("error scanning assignment: %w", err)
	}
	return a, nil
}

// GetByID retrieves one assignment.
func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*models.Assignment, error) {
	row := r.db.QueryRow(ctx, assignmentSelect+` WHERE a.id = $1`, id)
	return scanAssignment(row)
}

// ListByClassroom retrieves a classroom's assignments, newest first.
func (r *AssignmentRepository) ListByClassroom(ctx context.Context, classroomID int64) ([]*models.Assignment, error) {
	rows, err := r.db.Query(ctx, assignmentSelect+`
		WHERE a.classroom_id = $1
		ORDER BY a.due_date DESC, a.id DESC`, classroomID)
	if err != nil {
		return nil, fmt.Errorf("error listing assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]*models.Assignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

const submissionSelect = `
	SELECT sub.id, sub.assignment_id, sub.student_id, sub.status, sub.score,
	       sub.feedback, sub.submitted_at, sub.created_at
	FROM assignment_submissions sub`

func scanSubmission(row interface{ Scan(dest ...any) error }) (*models.AssignmentSubmission, error) {
	s := &models.AssignmentSubmission{}
	err := row.Scan(&s.ID, &s.AssignmentID, &s.StudentID, &s.Status, &s.Score,
		&s.Feedback, &s.SubmittedAt, &s.CreatedAt)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("error scanning submission: %w", err)
	}
	return s, nil
}

func (r *AssignmentRepository) querySubmissions(ctx context.Context, sql string, args ...any) ([]*models.AssignmentSubmission, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying submissions: %w", err)
	}
	defer rows.Close()

	submissions := make([]*models.AssignmentSubmission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

// ListSubmissions retrieves all submissions for one assignment.
func (r *AssignmentRepository) ListSubmissions(ctx context.Context, assignmentID int64) ([]*models.AssignmentSubmission, error) {
	return r.querySubmissions(ctx, submissionSelect+`
		WHERE sub.assignment_id = $1
		ORDER BY sub.student_id`, assignmentID)
}

// ListSubmissionsByStudent retrieves a student's submissions, newest first.
func (r *AssignmentRepository) ListSubmissionsByStudent(ctx context.Context, studentID int64) ([]*models.AssignmentSubmission, error) {
	return r.querySubmissions(ctx, submissionSelect+`
		WHERE sub.student_id = $1
		ORDER BY sub.id DESC`, studentID)
}

// ListOpenSubmissionsByStudent retrieves a student's unfinished homework.
func (r *AssignmentRepository) ListOpenSubmissionsByStudent(ctx context.Context, studentID int64) ([]*models.AssignmentSubmission, error) {
	return r.querySubmissions(ctx, submissionSelect+`
		WHERE sub.student_id = $1 AND sub.status = $2
		ORDER BY sub.id DESC`, studentID, models.SubmissionNotSubmitted)
}

// GetSubmission retrieves one student's submission on an assignment.
func (r *AssignmentRepository) GetSubmission(ctx context.Context, assignmentID, studentID int64) (*models.AssignmentSubmission, error) {
	row := r.db.QueryRow(ctx, submissionSelect+`
		WHERE sub.assignment_id = $1 AND sub.student_id = $2`, assignmentID, studentID)
	return scanSubmission(row)
}

// Update rewrites an assignment's details.
func (r *AssignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE assignments
		SET title = $1, description = $2, assignment_date = $3, due_date = $4
		WHERE id = $5`,
		assignment.Title, assignment.Description, assignment.AssignmentDate,
		assignment.DueDate, assignment.ID)
	if err != nil {
		return fmt.Errorf("error updating assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}
	return nil
}

// UpdateSubmission changes one submission's state. SubmittedAt is
// stamped when the status moves to SUBMITTED.
func (r *AssignmentRepository) UpdateSubmission(ctx context.Context, submission *models.AssignmentSubmission) error {
	var submittedAt *time.Time
	if submission.Status != models.SubmissionNotSubmitted {
		if submission.SubmittedAt != nil {
			submittedAt = submission.SubmittedAt
		} else {
			now := time.Now()
			submittedAt = &now
		}
	}

	cmdTag, err := r.db.Exec(ctx, `
		UPDATE assignment_submissions
		SET status = $1, score = $2, feedback = $3, submitted_at = $4
		WHERE id = $5`,
		submission.Status, submission.Score, submission.Feedback, submittedAt, submission.ID)
	if err != nil {
		return fmt.Errorf("error updating submission: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubmissionNotFound
	}
	return nil
}

// Delete removes an assignment; submissions go with it via cascade.
func (r *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}
	return nil
}
