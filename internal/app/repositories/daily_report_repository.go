package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suhaktamgu/academy/internal/app/models"
)

// DailyReportRepository handles per-class-day study reports.
type DailyReportRepository struct {
	db *pgxpool.Pool
}

// NewDailyReportRepository creates a new DailyReportRepository.
func NewDailyReportRepository(db *pgxpool.Pool) *DailyReportRepository {
	return &DailyReportRepository{db: db}
}

// Upsert writes a student's report for one class day. The
// (student, classroom, date) triple is unique so teachers can revise.
func (r *DailyReportRepository) Upsert(ctx context.Context, report *models.DailyReport) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO daily_reports (student_id, classroom_id, date, content, homework, attitude, special_note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (student_id, classroom_id, date)
		DO UPDATE SET content = EXCLUDED.content,
		              homework = EXCLUDED.homework,
		              attitude = EXCLUDED.attitude,
		              special_note = EXCLUDED.special_note
		RETURNING id, created_at`,
		report.StudentID, report.ClassroomID, report.Date, report.Content,
		report.Homework, report.Attitude, report.SpecialNote).
		Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return fmt.Errorf("error upserting daily report: %w", err)
	}
	return nil
}

const dailyReportSelect = `
	SELECT dr.id, dr.student_id, dr.classroom_id, dr.date, dr.content,
	       dr.homework, dr.attitude, dr.special_note, dr.created_at,
	       c.name
	FROM daily_reports dr
	JOIN classrooms c ON c.id = dr.classroom_id`

func scanDailyReport(row interface{ Scan(dest ...any) error }) (*models.DailyReport, error) {
	report := &models.DailyReport{Classroom: &models.Classroom{}}
	err := row.Scan(
		&report.ID, &report.StudentID, &report.ClassroomID, &report.Date, &report.Content,
		&report.Homework, &report.Attitude, &report.SpecialNote, &report.CreatedAt,
		&report.Classroom.Name)
	if err != nil {
		return nil, fmt.Errorf("error scanning daily report: %w", err)
	}
	report.Classroom.ID = report.ClassroomID
	return report, nil
}

// ListByStudent retrieves a student's reports in a date range, newest first.
func (r *DailyReportRepository) ListByStudent(ctx context.Context, studentID int64, from, to string) ([]*models.DailyReport, error) {
	rows, err := r.db.Query(ctx, dailyReportSelect+`
		WHERE dr.student_id = $1 AND dr.date >= $2 AND dr.date <= $3
		ORDER BY dr.date DESC`, studentID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error listing daily reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.DailyReport, 0)
	for rows.Next() {
		report, err := scanDailyReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}
