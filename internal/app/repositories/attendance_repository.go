package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
)

// AttendanceRepository handles attendance records.
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// UpsertBatch writes a class day's attendance in one transaction.
// The (student, classroom, date) triple is unique, so saving the same
// day twice overwrites rather than duplicates.
func (r *AttendanceRepository) UpsertBatch(ctx context.Context, records []*models.AttendanceRecord) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for _, rec := range records {
			_, err := tx.Exec(ctx, `
				INSERT INTO attendance_records (student_id, classroom_id, date, status, check_in_time, remarks)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (student_id, classroom_id, date)
				DO UPDATE SET status = EXCLUDED.status,
				              check_in_time = EXCLUDED.check_in_time,
				              remarks = EXCLUDED.remarks,
				              updated_at = now()`,
				rec.StudentID, rec.ClassroomID, rec.Date, rec.Status, rec.CheckInTime, rec.Remarks)
			if err != nil {
				return fmt.Errorf("error upserting attendance record: %w", err)
			}
		}
		return nil
	})
}

const attendanceSelect = `
	SELECT ar.id, ar.student_id, ar.classroom_id, ar.date, ar.status,
	       ar.check_in_time, ar.remarks, ar.created_at, ar.updated_at
	FROM attendance_records ar`

func scanAttendance(row interface{ Scan(dest ...any) error }) (*models.AttendanceRecord, error) {
	rec := &models.AttendanceRecord{}
	err := row.Scan(
		&rec.ID, &rec.StudentID, &rec.ClassroomID, &rec.Date, &rec.Status,
		&rec.CheckInTime, &rec.Remarks, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error scanning attendance record: %w", err)
	}
	return rec, nil
}

func (r *AttendanceRepository) queryRecords(ctx context.Context, sql string, args ...any) ([]*models.AttendanceRecord, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying attendance records: %w", err)
	}
	defer rows.Close()

	records := make([]*models.AttendanceRecord, 0)
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListByClassroomDate retrieves one class day's records.
func (r *AttendanceRepository) ListByClassroomDate(ctx context.Context, classroomID int64, date string) ([]*models.AttendanceRecord, error) {
	return r.queryRecords(ctx, attendanceSelect+`
		WHERE ar.classroom_id = $1 AND ar.date = $2
		ORDER BY ar.student_id`, classroomID, date)
}

// ListByStudent retrieves a student's records in a date range, newest first.
func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID int64, from, to string) ([]*models.AttendanceRecord, error) {
	return r.queryRecords(ctx, attendanceSelect+`
		WHERE ar.student_id = $1 AND ar.date >= $2 AND ar.date <= $3
		ORDER BY ar.date DESC`, studentID, from, to)
}


// TallyByStudent counts a student's records per status in a date range.
func (r *AttendanceRepository) TallyByStudent(ctx context.Context, studentID int64, from, to string) (dto.AttendanceTally, error) {
	return r.tally(ctx, `
		SELECT status, count(*)
		FROM attendance_records
		WHERE student_id = $1 AND date >= $2 AND date <= $3
		GROUP BY status`, studentID, from, to)
}

// TallyByDate counts records per status for one date across the academy.
func (r *AttendanceRepository) TallyByDate(ctx context.Context, date string) (dto.AttendanceTally, error) {
	return r.tally(ctx, `
		SELECT status, count(*)
		FROM attendance_records
		WHERE date = $1
		GROUP BY status`, date)
}

func (r *AttendanceRepository) tally(ctx context.Context, sql string, args ...any) (dto.AttendanceTally, error) {
	var tally dto.AttendanceTally
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return tally, fmt.Errorf("error tallying attendance: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status models.AttendanceStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return tally, fmt.Errorf("error scanning attendance tally: %w", err)
		}
		switch status {
		case models.AttendancePresent:
			tally.Present = count
		case models.AttendanceAbsent:
			tally.Absent = count
		case models.AttendanceLate:
			tally.Late = count
		case models.AttendanceExcused:
			tally.Excused = count
		}
		tally.Total += count
	}
	return tally, rows.Err()
}
