package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/dberrors"
)

// EntranceTestRepository handles placement test bookings.
type EntranceTestRepository struct {
	db *pgxpool.Pool
}

// NewEntranceTestRepository creates a new EntranceTestRepository.
func NewEntranceTestRepository(db *pgxpool.Pool) *EntranceTestRepository {
	return &EntranceTestRepository{db: db}
}

const entranceTestSelect = `
	SELECT id, name, school, grade, parent_phone, test_date, test_time, status,
	       notes, prior_level, test_score, counseling_notes, created_at, updated_at
	FROM entrance_tests`

func scanEntranceTest(row interface{ Scan(dest ...any) error }) (*models.EntranceTest, error) {
	t := &models.EntranceTest{}
	err := row.Scan(
		&t.ID, &t.Name, &t.School, &t.Grade, &t.ParentPhone, &t.TestDate, &t.TestTime,
		&t.Status, &t.Notes, &t.PriorLevel, &t.TestScore, &t.CounselingNotes,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrEntranceTestNotFound
		}
		return nil, fmt.Errorf("error scanning entrance test: %w", err)
	}
	return t, nil
}

func (r *EntranceTestRepository) queryTests(ctx context.Context, sql string, args ...any) ([]*models.EntranceTest, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying entrance tests: %w", err)
	}
	defer rows.Close()

	tests := make([]*models.EntranceTest, 0)
	for rows.Next() {
		t, err := scanEntranceTest(rows)
		if err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	return tests, rows.Err()
}

// Create inserts a test booking in SCHEDULED state.
func (r *EntranceTestRepository) Create(ctx context.Context, t *models.EntranceTest) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO entrance_tests (name, school, grade, parent_phone, test_date, test_time, status, notes, prior_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		t.Name, t.School, t.Grade, t.ParentPhone, t.TestDate, t.TestTime,
		t.Status, t.Notes, t.PriorLevel).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating entrance test: %w", err)
	}
	return nil
}

// GetByID retrieves one test booking.
func (r *EntranceTestRepository) GetByID(ctx context.Context, id int64) (*models.EntranceTest, error) {
	row := r.db.QueryRow(ctx, entranceTestSelect+` WHERE id = $1`, id)
	return scanEntranceTest(row)
}

// List retrieves all test bookings, soonest first.
func (r *EntranceTestRepository) List(ctx context.Context) ([]*models.EntranceTest, error) {
	return r.queryTests(ctx, entranceTestSelect+` ORDER BY test_date, test_time`)
}

// ListUpcoming retrieves scheduled tests from the given date onward.
func (r *EntranceTestRepository) ListUpcoming(ctx context.Context, from string) ([]*models.EntranceTest, error) {
	return r.queryTests(ctx, entranceTestSelect+`
		WHERE status = $1 AND test_date >= $2
		ORDER BY test_date, test_time`, models.EntranceTestScheduled, from)
}

// CountScheduledOn counts scheduled tests on one date.
func (r *EntranceTestRepository) CountScheduledOn(ctx context.Context, date string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT count(*) FROM entrance_tests
		WHERE status = $1 AND test_date = $2`,
		models.EntranceTestScheduled, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting entrance tests: %w", err)
	}
	return count, nil
}

// ListUpcomingLimit retrieves the next scheduled tests, capped.
func (r *EntranceTestRepository) ListUpcomingLimit(ctx context.Context, from string, limit int) ([]*models.EntranceTest, error) {
	return r.queryTests(ctx, entranceTestSelect+`
		WHERE status = $1 AND test_date >= $2
		ORDER BY test_date, test_time
		LIMIT $3`, models.EntranceTestScheduled, from, limit)
}

// Update writes the mutable test fields.
func (r *EntranceTestRepository) Update(ctx context.Context, t *models.EntranceTest) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE entrance_tests
		SET name = $1, school = $2, grade = $3, parent_phone = $4,
		    test_date = $5, test_time = $6, status = $7, notes = $8,
		    prior_level = $9, test_score = $10, counseling_notes = $11, updated_at = now()
		WHERE id = $12`,
		t.Name, t.School, t.Grade, t.ParentPhone,
		t.TestDate, t.TestTime, t.Status, t.Notes,
		t.PriorLevel, t.TestScore, t.CounselingNotes, t.ID)
	if err != nil {
		return fmt.Errorf("error updating entrance test: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEntranceTestNotFound
	}
	return nil
}

// Delete removes a test booking.
func (r *EntranceTestRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM entrance_tests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting entrance test: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEntranceTestNotFound
	}
	return nil
}
