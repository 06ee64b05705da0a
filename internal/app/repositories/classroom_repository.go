package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/dberrors"
)

// ClassroomRepository handles classrooms, subjects and enrollments.
type ClassroomRepository struct {
	db *pgxpool.Pool
}

// NewClassroomRepository creates a new ClassroomRepository.
func NewClassroomRepository(db *pgxpool.Pool) *ClassroomRepository {
	return &ClassroomRepository{db: db}
}

// CreateSubject inserts a subject.
func (r *ClassroomRepository) CreateSubject(ctx context.Context, subject *models.Subject) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO subjects (name, code)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		subject.Name, subject.Code).Scan(&subject.ID, &subject.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrSubjectExists
		}
		return fmt.Errorf("error creating subject: %w", err)
	}
	return nil
}

// ListSubjects retrieves all subjects ordered by name.
func (r *ClassroomRepository) ListSubjects(ctx context.Context) ([]*models.Subject, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, code, created_at
		FROM subjects
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	defer rows.Close()

	subjects := make([]*models.Subject, 0)
	for rows.Next() {
		subject := &models.Subject{}
		if err := rows.Scan(&subject.ID, &subject.Name, &subject.Code, &subject.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning subject: %w", err)
		}
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}

const classroomSelect = `
	SELECT c.id, c.name, c.subject_id, c.teacher_id, c.schedule, c.max_capacity, c.status,
	       c.created_at, c.updated_at,
	       s.id, s.name, s.code, s.created_at,
	       a.id, a.name, a.email, a.role,
	       (SELECT count(*) FROM enrollments e WHERE e.classroom_id = c.id AND e.status = 'ACTIVE')
	FROM classrooms c
	JOIN subjects s ON s.id = c.subject_id
	JOIN accounts a ON a.id = c.teacher_id`

func scanClassroom(row interface{ Scan(dest ...any) error }) (*models.Classroom, error) {
	classroom := &models.Classroom{
		Subject: &models.Subject{},
		Teacher: &models.Account{},
	}
	err := row.Scan(
		&classroom.ID, &classroom.Name, &classroom.SubjectID, &classroom.TeacherID,
		&classroom.Schedule, &classroom.MaxCapacity, &classroom.Status,
		&classroom.CreatedAt, &classroom.UpdatedAt,
		&classroom.Subject.ID, &classroom.Subject.Name, &classroom.Subject.Code, &classroom.Subject.CreatedAt,
		&classroom.Teacher.ID, &classroom.Teacher.Name, &classroom.Teacher.Email, &classroom.Teacher.Role,
		&classroom.EnrollmentCount)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrClassroomNotFound
		}
		return nil, fmt.Errorf("error scanning classroom: %w", err)
	}
	return classroom, nil
}

func (r *ClassroomRepository) queryClassrooms(ctx context.Context, sql string, args ...any) ([]*models.Classroom, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying classrooms: %w", err)
	}
	defer rows.Close()

	classrooms := make([]*models.Classroom, 0)
	for rows.Next() {
		classroom, err := scanClassroom(rows)
		if err != nil {
			return nil, err
		}
		classrooms = append(classrooms, classroom)
	}
	return classrooms, rows.Err()
}

// Create inserts a classroom.
func (r *ClassroomRepository) Create(ctx context.Context, classroom *models.Classroom) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO classrooms (name, subject_id, teacher_id, schedule, max_capacity, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		classroom.Name, classroom.SubjectID, classroom.TeacherID,
		classroom.Schedule, classroom.MaxCapacity, classroom.Status).
		Scan(&classroom.ID, &classroom.CreatedAt, &classroom.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewInvalidInputError("subject or teacher does not exist")
		}
		return fmt.Errorf("error creating classroom: %w", err)
	}
	return nil
}

// GetByID retrieves a classroom with its subject, teacher and headcount.
func (r *ClassroomRepository) GetByID(ctx context.Context, id int64) (*models.Classroom, error) {
	row := r.db.QueryRow(ctx, classroomSelect+` WHERE c.id = $1`, id)
	return scanClassroom(row)
}

// List retrieves all classrooms, optionally restricted to one status.
func (r *ClassroomRepository) List(ctx context.Context, status string) ([]*models.Classroom, error) {
	if status != "" {
		return r.queryClassrooms(ctx, classroomSelect+` WHERE c.status = $1 ORDER BY c.name`, status)
	}
	return r.queryClassrooms(ctx, classroomSelect+` ORDER BY c.name`)
}


// ListByStudent retrieves the classrooms a student is actively enrolled in.
func (r *ClassroomRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Classroom, error) {
	return r.queryClassrooms(ctx, classroomSelect+`
		JOIN enrollments e ON e.classroom_id = c.id
		WHERE e.student_id = $1 AND e.status = 'ACTIVE'
		ORDER BY c.name`, studentID)
}

// Update writes the mutable classroom fields.
func (r *ClassroomRepository) Update(ctx context.Context, classroom *models.Classroom) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE classrooms
		SET name = $1, subject_id = $2, teacher_id = $3, schedule = $4,
		    max_capacity = $5, status = $6, updated_at = now()
		WHERE id = $7`,
		classroom.Name, classroom.SubjectID, classroom.TeacherID, classroom.Schedule,
		classroom.MaxCapacity, classroom.Status, classroom.ID)
	if err != nil {
		return fmt.Errorf("error updating classroom: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassroomNotFound
	}
	return nil
}

// Delete removes a classroom.
func (r *ClassroomRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM classrooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting classroom: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassroomNotFound
	}
	return nil
}

// Enroll adds a student to a classroom. Re-enrolling reactivates an
// existing row instead of failing.
func (r *ClassroomRepository) Enroll(ctx context.Context, classroomID, studentID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO enrollments (student_id, classroom_id, status)
		VALUES ($1, $2, 'ACTIVE')
		ON CONFLICT (student_id, classroom_id) DO UPDATE SET status = 'ACTIVE'`,
		studentID, classroomID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error enrolling student: %w", err)
	}
	return nil
}

// Unenroll marks an enrollment inactive, preserving record history.
func (r *ClassroomRepository) Unenroll(ctx context.Context, classroomID, studentID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE enrollments
		SET status = 'INACTIVE'
		WHERE classroom_id = $1 AND student_id = $2`,
		classroomID, studentID)
	if err != nil {
		return fmt.Errorf("error unenrolling student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotEnrolled
	}
	return nil
}

// ListEnrolledStudents retrieves the active roster of a classroom.
func (r *ClassroomRepository) ListEnrolledStudents(ctx context.Context, classroomID int64) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+studentColumnsS+`
		FROM enrollments e
		JOIN students s ON s.id = e.student_id
		WHERE e.classroom_id = $1 AND e.status = 'ACTIVE'
		ORDER BY s.name`, classroomID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrolled students: %w", err)
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

// CountByStatus counts classrooms in the given status.
func (r *ClassroomRepository) CountByStatus(ctx context.Context, status models.ClassStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM classrooms WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting classrooms: %w", err)
	}
	return count, nil
}
