package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/dberrors"
)

// SignupRequestRepository handles public enrollment inquiries.
type SignupRequestRepository struct {
	db *pgxpool.Pool
}

// NewSignupRequestRepository creates a new SignupRequestRepository.
func NewSignupRequestRepository(db *pgxpool.Pool) *SignupRequestRepository {
	return &SignupRequestRepository{db: db}
}

const signupSelect = `
	SELECT id, student_name, school, grade, parent_name, parent_phone,
	       student_phone, message, status, admin_notes, created_at, updated_at
	FROM signup_requests`

func scanSignupRequest(row interface{ Scan(dest ...any) error }) (*models.SignupRequest, error) {
	s := &models.SignupRequest{}
	err := row.Scan(
		&s.ID, &s.StudentName, &s.School, &s.Grade, &s.ParentName, &s.ParentPhone,
		&s.StudentPhone, &s.Message, &s.Status, &s.AdminNotes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrSignupRequestNotFound
		}
		return nil, fmt.Errorf("error scanning signup request: %w", err)
	}
	return s, nil
}

// Create inserts a signup request in PENDING state.
func (r *SignupRequestRepository) Create(ctx context.Context, s *models.SignupRequest) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO signup_requests (student_name, school, grade, parent_name, parent_phone, student_phone, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		s.StudentName, s.School, s.Grade, s.ParentName, s.ParentPhone,
		s.StudentPhone, s.Message, s.Status).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating signup request: %w", err)
	}
	return nil
}

// GetByID retrieves one signup request.
func (r *SignupRequestRepository) GetByID(ctx context.Context, id int64) (*models.SignupRequest, error) {
	row := r.db.QueryRow(ctx, signupSelect+` WHERE id = $1`, id)
	return scanSignupRequest(row)
}

// List retrieves signup requests, optionally by status, newest first.
func (r *SignupRequestRepository) List(ctx context.Context, status string) ([]*models.SignupRequest, error) {
	sql := signupSelect + ` ORDER BY created_at DESC`
	args := []any{}
	if status != "" {
		sql = signupSelect + ` WHERE status = $1 ORDER BY created_at DESC`
		args = append(args, status)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing signup requests: %w", err)
	}
	defer rows.Close()

	requests := make([]*models.SignupRequest, 0)
	for rows.Next() {
		s, err := scanSignupRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, s)
	}
	return requests, rows.Err()
}

// CountByStatus counts signup requests in the given status.
func (r *SignupRequestRepository) CountByStatus(ctx context.Context, status models.SignupStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM signup_requests WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting signup requests: %w", err)
	}
	return count, nil
}

// Delete removes a signup request.
func (r *SignupRequestRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM signup_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting signup request: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSignupRequestNotFound
	}
	return nil
}

// Decide records an admin's approval or rejection.
func (r *SignupRequestRepository) Decide(ctx context.Context, id int64, status models.SignupStatus, adminNotes *string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE signup_requests
		SET status = $1, admin_notes = $2, updated_at = now()
		WHERE id = $3`, status, adminNotes, id)
	if err != nil {
		return fmt.Errorf("error deciding signup request: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSignupRequestNotFound
	}
	return nil
}
