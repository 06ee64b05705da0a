package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/dberrors"
)

// PaymentRepository handles monthly billing rows.
type PaymentRepository struct {
	db *pgxpool.Pool
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Upsert writes one student's billing row for one month. The
// (student, year_month) pair is unique; re-entering a month's fees
// overwrites the previous row.
func (r *PaymentRepository) Upsert(ctx context.Context, p *models.Payment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO payments (student_id, year_month, tuition_fee, special_fee, other_fee, total_fee, status, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (student_id, year_month)
		DO UPDATE SET tuition_fee = EXCLUDED.tuition_fee,
		              special_fee = EXCLUDED.special_fee,
		              other_fee = EXCLUDED.other_fee,
		              total_fee = EXCLUDED.total_fee,
		              status = EXCLUDED.status,
		              remarks = EXCLUDED.remarks,
		              updated_at = now()
		RETURNING id, created_at, updated_at`,
		p.StudentID, p.YearMonth, p.TuitionFee, p.SpecialFee, p.OtherFee,
		p.TotalFee, p.Status, p.Remarks).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error upserting payment: %w", err)
	}
	return nil
}

const paymentSelect = `
	SELECT p.id, p.student_id, p.year_month, p.tuition_fee, p.special_fee,
	       p.other_fee, p.total_fee, p.status, p.remarks, p.created_at, p.updated_at
	FROM payments p`

func scanPayment(row interface{ Scan(dest ...any) error }) (*models.Payment, error) {
	p := &models.Payment{}
	err := row.Scan(
		&p.ID, &p.StudentID, &p.YearMonth, &p.TuitionFee, &p.SpecialFee,
		&p.OtherFee, &p.TotalFee, &p.Status, &p.Remarks, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("error scanning payment: %w", err)
	}
	return p, nil
}

// ListByMonth retrieves all billing rows for one month.
func (r *PaymentRepository) ListByMonth(ctx context.Context, yearMonth string) ([]*models.Payment, error) {
	rows, err := r.db.Query(ctx, paymentSelect+`
		WHERE p.year_month = $1
		ORDER BY p.student_id`, yearMonth)
	if err != nil {
		return nil, fmt.Errorf("error listing payments: %w", err)
	}
	defer rows.Close()

	payments := make([]*models.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// ListByStudent retrieves one student's billing history, newest first.
func (r *PaymentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Payment, error) {
	rows, err := r.db.Query(ctx, paymentSelect+`
		WHERE p.student_id = $1
		ORDER BY p.year_month DESC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing payment history: %w", err)
	}
	defer rows.Close()

	payments := make([]*models.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// Delete removes one billing row.
func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting payment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPaymentNotFound
	}
	return nil
}

// UpdateStatus moves one payment through its billing states.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id int64, status models.PaymentStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE payments
		SET status = $1, updated_at = now()
		WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating payment status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPaymentNotFound
	}
	return nil
}
