package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suhaktamgu/academy/internal/app/models"
)

const studentColumnsS = "s.id, s.name, s.student_number, s.date_of_birth, s.phone, s.parent_phone, s.school, s.grade, s.status, s.account_id, s.created_at, s.updated_at"

// ParentLinkRepository handles the parent_students link table.
type ParentLinkRepository struct {
	db *pgxpool.Pool
}

// NewParentLinkRepository creates a new ParentLinkRepository.
func NewParentLinkRepository(db *pgxpool.Pool) *ParentLinkRepository {
	return &ParentLinkRepository{db: db}
}

// Link records that a parent account is the guardian of a student.
// The (parent, student) pair is unique; repeating the call is a no-op,
// so retried phone logins never duplicate links.
func (r *ParentLinkRepository) Link(ctx context.Context, parentID, studentID int64, relation string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO parent_students (parent_id, student_id, relation)
		VALUES ($1, $2, $3)
		ON CONFLICT (parent_id, student_id) DO NOTHING`,
		parentID, studentID, relation)
	if err != nil {
		return fmt.Errorf("error linking parent to student: %w", err)
	}
	return nil
}

// Exists reports whether the parent is linked to the student.
func (r *ParentLinkRepository) Exists(ctx context.Context, parentID, studentID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM parent_students WHERE parent_id = $1 AND student_id = $2)`,
		parentID, studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking parent link: %w", err)
	}
	return exists, nil
}

func (r *ParentLinkRepository) queryLinkedStudents(ctx context.Context, sql string, args ...any) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying linked students: %w", err)
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// ListStudentsByParent retrieves the students a parent account is linked to.
func (r *ParentLinkRepository) ListStudentsByParent(ctx context.Context, parentID int64) ([]*models.Student, error) {
	return r.queryLinkedStudents(ctx, `
		SELECT `+studentColumnsS+`
		FROM parent_students ps
		JOIN students s ON s.id = ps.student_id
		WHERE ps.parent_id = $1
		ORDER BY s.name`, parentID)
}

// FindActiveStudentsLinkedByPhone retrieves active students linked to
// any PARENT-role account carrying the given phone. This is the third
// phone-login search: it catches parents whose number was recorded on
// their account but never on the student row.
func (r *ParentLinkRepository) FindActiveStudentsLinkedByPhone(ctx context.Context, phone string) ([]*models.Student, error) {
	return r.queryLinkedStudents(ctx, `
		SELECT `+studentColumnsS+`
		FROM accounts a
		JOIN parent_students ps ON ps.parent_id = a.id
		JOIN students s ON s.id = ps.student_id
		WHERE a.phone = $1 AND a.role = $2 AND s.status = $3
		ORDER BY s.id`, phone, models.RoleParent, models.StudentActive)
}
