package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/dberrors"
)

// CounselingRepository handles counseling requests.
type CounselingRepository struct {
	db *pgxpool.Pool
}

// NewCounselingRepository creates a new CounselingRepository.
func NewCounselingRepository(db *pgxpool.Pool) *CounselingRepository {
	return &CounselingRepository{db: db}
}

const counselingSelect = `
	SELECT cr.id, cr.parent_id, cr.student_id, cr.title, cr.description,
	       cr.preferred_date, cr.session_date, cr.session_notes, cr.admin_notes,
	       cr.status, cr.created_at, cr.updated_at,
	       s.name
	FROM counseling_requests cr
	JOIN students s ON s.id = cr.student_id`

func scanCounseling(row interface{ Scan(dest ...any) error }) (*models.CounselingRequest, error) {
	c := &models.CounselingRequest{Student: &models.Student{}}
	err := row.Scan(
		&c.ID, &c.ParentID, &c.StudentID, &c.Title, &c.Description,
		&c.PreferredDate, &c.SessionDate, &c.SessionNotes, &c.AdminNotes,
		&c.Status, &c.CreatedAt, &c.UpdatedAt,
		&c.Student.Name)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrCounselingNotFound
		}
		return nil, fmt.Errorf("error scanning counseling request: %w", err)
	}
	c.Student.ID = c.StudentID
	return c, nil
}

func (r *CounselingRepository) queryRequests(ctx context.Context, sql string, args ...any) ([]*models.CounselingRequest, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying counseling requests: %w", err)
	}
	defer rows.Close()

	requests := make([]*models.CounselingRequest, 0)
	for rows.Next() {
		c, err := scanCounseling(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, c)
	}
	return requests, rows.Err()
}

// Create inserts a counseling request.
func (r *CounselingRepository) Create(ctx context.Context, req *models.CounselingRequest) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO counseling_requests (parent_id, student_id, title, description, preferred_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		req.ParentID, req.StudentID, req.Title, req.Description, req.PreferredDate, req.Status).
		Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error creating counseling request: %w", err)
	}
	return nil
}

// GetByID retrieves one counseling request.
func (r *CounselingRepository) GetByID(ctx context.Context, id int64) (*models.CounselingRequest, error) {
	row := r.db.QueryRow(ctx, counselingSelect+` WHERE cr.id = $1`, id)
	return scanCounseling(row)
}

// List retrieves counseling requests, optionally by status, newest first.
func (r *CounselingRepository) List(ctx context.Context, status string) ([]*models.CounselingRequest, error) {
	if status != "" {
		return r.queryRequests(ctx, counselingSelect+`
			WHERE cr.status = $1
			ORDER BY cr.created_at DESC`, status)
	}
	return r.queryRequests(ctx, counselingSelect+` ORDER BY cr.created_at DESC`)
}

// ListByParent retrieves the requests filed by one parent, newest first.
func (r *CounselingRepository) ListByParent(ctx context.Context, parentID int64) ([]*models.CounselingRequest, error) {
	return r.queryRequests(ctx, counselingSelect+`
		WHERE cr.parent_id = $1
		ORDER BY cr.created_at DESC`, parentID)
}

// ListRecent retrieves the latest requests for the dashboard.
func (r *CounselingRepository) ListRecent(ctx context.Context, limit int) ([]*models.CounselingRequest, error) {
	return r.queryRequests(ctx, counselingSelect+`
		ORDER BY cr.created_at DESC
		LIMIT $1`, limit)
}

// CountByStatus counts requests in the given status.
func (r *CounselingRepository) CountByStatus(ctx context.Context, status models.CounselingStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM counseling_requests WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting counseling requests: %w", err)
	}
	return count, nil
}

// Delete removes a counseling request.
func (r *CounselingRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM counseling_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting counseling request: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCounselingNotFound
	}
	return nil
}

// Update writes the mutable counseling fields.
func (r *CounselingRepository) Update(ctx context.Context, req *models.CounselingRequest) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE counseling_requests
		SET status = $1, session_date = $2, session_notes = $3, admin_notes = $4, updated_at = now()
		WHERE id = $5`,
		req.Status, req.SessionDate, req.SessionNotes, req.AdminNotes, req.ID)
	if err != nil {
		return fmt.Errorf("error updating counseling request: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCounselingNotFound
	}
	return nil
}
