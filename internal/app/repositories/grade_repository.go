package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/dberrors"
)

// GradeRepository handles test score records.
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new GradeRepository.
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{db: db}
}

// CreateBatch records one test's scores in one transaction.
func (r *GradeRepository) CreateBatch(ctx context.Context, grades []*models.Grade) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for _, g := range grades {
			err := tx.QueryRow(ctx, `
				INSERT INTO grades (student_id, classroom_id, test_name, test_date, score, max_score, remarks)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				RETURNING id, created_at`,
				g.StudentID, g.ClassroomID, g.TestName, g.TestDate, g.Score, g.MaxScore, g.Remarks).
				Scan(&g.ID, &g.CreatedAt)
			if err != nil {
				return fmt.Errorf("error inserting grade: %w", err)
			}
		}
		return nil
	})
}

const gradeSelect = `
	SELECT g.id, g.student_id, g.classroom_id, g.test_name, g.test_date,
	       g.score, g.max_score, g.remarks, g.created_at
	FROM grades g`

func scanGrade(row interface{ Scan(dest ...any) error }) (*models.Grade, error) {
	g := &models.Grade{}
	err := row.Scan(
		&g.ID, &g.StudentID, &g.ClassroomID, &g.TestName, &g.TestDate,
		&g.Score, &g.MaxScore, &g.Remarks, &g.CreatedAt)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error scanning grade: %w", err)
	}
	return g, nil
}

func (r *GradeRepository) queryGrades(ctx context.Context, sql string, args ...any) ([]*models.Grade, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying grades: %w", err)
	}
	defer rows.Close()

	grades := make([]*models.Grade, 0)
	for rows.Next() {
		g, err := scanGrade(rows)
		if err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

// ListByClassroom retrieves a classroom's grades, newest test first.
func (r *GradeRepository) ListByClassroom(ctx context.Context, classroomID int64) ([]*models.Grade, error) {
	return r.queryGrades(ctx, gradeSelect+`
		WHERE g.classroom_id = $1
		ORDER BY g.test_date DESC, g.student_id`, classroomID)
}

// ListByStudent retrieves a student's grades, newest test first.
func (r *GradeRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	return r.queryGrades(ctx, gradeSelect+`
		WHERE g.student_id = $1
		ORDER BY g.test_date DESC, g.id DESC`, studentID)
}

// ListRecentByStudent retrieves a student's latest scores.
func (r *GradeRepository) ListRecentByStudent(ctx context.Context, studentID int64, limit int) ([]*models.Grade, error) {
	return r.queryGrades(ctx, gradeSelect+`
		WHERE g.student_id = $1
		ORDER BY g.test_date DESC, g.id DESC
		LIMIT $2`, studentID, limit)
}

// Update rewrites one grade row.
func (r *GradeRepository) Update(ctx context.Context, g *models.Grade) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE grades
		SET test_name = $1, test_date = $2, score = $3, max_score = $4, remarks = $5
		WHERE id = $6`,
		g.TestName, g.TestDate, g.Score, g.MaxScore, g.Remarks, g.ID)
	if err != nil {
		return fmt.Errorf("error updating grade: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}
	return nil
}

// GetByID retrieves one grade row.
func (r *GradeRepository) GetByID(ctx context.Context, id int64) (*models.Grade, error) {
	row := r.db.QueryRow(ctx, gradeSelect+` WHERE g.id = $1`, id)
	return scanGrade(row)
}

// Delete removes one grade row.
func (r *GradeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM grades WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting grade: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}
	return nil
}
