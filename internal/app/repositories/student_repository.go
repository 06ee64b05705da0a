package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/dberrors"
	"github.com/suhaktamgu/academy/internal/pkg/helpers"
)

const studentColumns = "id, name, student_number, date_of_birth, phone, parent_phone, school, grade, status, account_id, created_at, updated_at"

// StudentRepository handles database operations for students.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

func scanStudent(row interface{ Scan(dest ...any) error }) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(
		&student.ID, &student.Name, &student.StudentNumber, &student.DateOfBirth,
		&student.Phone, &student.ParentPhone, &student.School, &student.Grade,
		&student.Status, &student.AccountID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error scanning student: %w", err)
	}
	return student, nil
}

func (r *StudentRepository) queryStudents(ctx context.Context, sql string, args ...any) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
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

// Create inserts a new student and sets its generated ID.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO students (name, student_number, date_of_birth, phone, parent_phone, school, grade, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		student.Name, student.StudentNumber, student.DateOfBirth, student.Phone,
		student.ParentPhone, student.School, student.Grade, student.Status).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentNumberAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE id = $1`, id)
	return scanStudent(row)
}

// GetByAccountID retrieves the student bound to a STUDENT-role account.
func (r *StudentRepository) GetByAccountID(ctx context.Context, accountID int64) (*models.Student, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE account_id = $1`, accountID)
	return scanStudent(row)
}

// FindActiveByPhone retrieves active students whose own phone matches.
func (r *StudentRepository) FindActiveByPhone(ctx context.Context, phone string) ([]*models.Student, error) {
	return r.queryStudents(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE phone = $1 AND status = $2
		ORDER BY id`, phone, models.StudentActive)
}

// FindActiveByParentPhone retrieves active students whose registered
// parent phone matches.
func (r *StudentRepository) FindActiveByParentPhone(ctx context.Context, phone string) ([]*models.Student, error) {
	return r.queryStudents(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE parent_phone = $1 AND status = $2
		ORDER BY id`, phone, models.StudentActive)
}

// BindAccount attaches a provisioned login account to a student and
// persists the phone used to log in.
func (r *StudentRepository) BindAccount(ctx context.Context, studentID, accountID int64, phone string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE students
		SET account_id = $1, phone = COALESCE(phone, $2), updated_at = now()
		WHERE id = $3`,
		accountID, phone, studentID)
	if err != nil {
		return fmt.Errorf("error binding account to student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// NextStudentNumber generates the next YYYYNNN number for the given year.
func (r *StudentRepository) NextStudentNumber(ctx context.Context, now time.Time) (string, error) {
	prefix := now.Format("2006")
	var last *string
	err := r.db.QueryRow(ctx, `
		SELECT MAX(student_number)
		FROM students
		WHERE student_number LIKE $1`, prefix+"%").Scan(&last)
	if err != nil {
		return "", fmt.Errorf("error finding last student number: %w", err)
	}

	seq := 1
	if last != nil && len(*last) == len(prefix)+3 {
		if n, err := strconv.Atoi((*last)[len(prefix):]); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%03d", prefix, seq), nil
}

// List retrieves a paginated, filtered list of students.
func (r *StudentRepository) List(ctx context.Context, filter dto.StudentFilter) ([]*models.Student, dto.PaginationInfo, error) {
	where := "WHERE 1=1"
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		where += " AND (name ILIKE $" + n + " OR student_number ILIKE $" + n + " OR phone ILIKE $" + n + " OR parent_phone ILIKE $" + n + ")"
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += " AND status = $" + strconv.Itoa(len(args))
	}
	if filter.Grade != "" {
		args = append(args, filter.Grade)
		where += " AND grade = $" + strconv.Itoa(len(args))
	}
	if filter.School != "" {
		args = append(args, filter.School)
		where += " AND school = $" + strconv.Itoa(len(args))
	}

	var totalItems int64
	err := r.db.QueryRow(ctx, "SELECT count(*) FROM students "+where, args...).Scan(&totalItems)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting students: %w", err)
	}

	pagination := helpers.NewPaginationInfo(totalItems, filter.Page, filter.Size)
	if totalItems == 0 {
		return []*models.Student{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Size)
	args = append(args, limit, offset)
	sql := "SELECT " + studentColumns + " FROM students " + where +
		" ORDER BY student_number DESC LIMIT $" + strconv.Itoa(len(args)-1) + " OFFSET $" + strconv.Itoa(len(args))

	students, err := r.queryStudents(ctx, sql, args...)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return students, pagination, nil
}

// ListActive retrieves every active student ordered by name. The monthly
// billing roster is built from this.
func (r *StudentRepository) ListActive(ctx context.Context) ([]*models.Student, error) {
	return r.queryStudents(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE status = $1
		ORDER BY name`, models.StudentActive)
}

// CountByStatus counts students in the given status.
func (r *StudentRepository) CountByStatus(ctx context.Context, status models.StudentStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM students WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// Update writes the mutable student fields.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE students
		SET name = $1, date_of_birth = $2, phone = $3, parent_phone = $4,
		    school = $5, grade = $6, status = $7, updated_at = now()
		WHERE id = $8`,
		student.Name, student.DateOfBirth, student.Phone, student.ParentPhone,
		student.School, student.Grade, student.Status, student.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student record.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
