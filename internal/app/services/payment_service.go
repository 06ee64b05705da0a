package services

import (
	"context"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/repositories"
	"github.com/suhaktamgu/academy/internal/pkg/helpers"
)

// PaymentService manages monthly billing.
type PaymentService struct {
	paymentRepo *repositories.PaymentRepository
	studentRepo *repositories.StudentRepository
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo *repositories.PaymentRepository, studentRepo *repositories.StudentRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		studentRepo: studentRepo,
	}
}

// Upsert writes a student's fees for one month. The total is always
// derived from the three fee fields, never taken from the caller.
func (s *PaymentService) Upsert(ctx context.Context, req *dto.UpsertPaymentRequest) (*models.Payment, error) {
	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	status := models.PaymentInputDone
	if req.Status != nil && *req.Status != "" {
		status = models.PaymentStatus(*req.Status)
	}

	payment := &models.Payment{
		StudentID:  req.StudentID,
		YearMonth:  req.YearMonth,
		TuitionFee: req.TuitionFee,
		SpecialFee: req.SpecialFee,
		OtherFee:   req.OtherFee,
		TotalFee:   req.TuitionFee + req.SpecialFee + req.OtherFee,
		Status:     status,
		Remarks:    req.Remarks,
	}
	if err := s.paymentRepo.Upsert(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Month builds the billing view for one month: every active student,
// merged with the month's payment row if one exists.
func (s *PaymentService) Month(ctx context.Context, yearMonth string) (*dto.PaymentMonthResponse, error) {
	if yearMonth == "" {
		yearMonth = helpers.CurrentMonth()
	}

	students, err := s.studentRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListByMonth(ctx, yearMonth)
	if err != nil {
		return nil, err
	}

	byStudent := make(map[int64]*models.Payment, len(payments))
	for _, p := range payments {
		byStudent[p.StudentID] = p
	}

	rows := make([]dto.PaymentRosterRow, 0, len(students))
	var totalSum int64
	for _, student := range students {
		row := dto.PaymentRosterRow{Student: student}
		if p, ok := byStudent[student.ID]; ok {
			row.Payment = p
			totalSum += p.TotalFee
		}
		rows = append(rows, row)
	}

	return &dto.PaymentMonthResponse{
		YearMonth: yearMonth,
		Rows:      rows,
		TotalSum:  totalSum,
	}, nil
}

// History retrieves one student's billing rows, newest month first.
func (s *PaymentService) History(ctx context.Context, studentID int64) ([]*models.Payment, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListByStudent(ctx, studentID)
}

// Delete removes one billing row.
func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	return s.paymentRepo.Delete(ctx, id)
}

// UpdateStatus moves one payment through its billing states.
func (s *PaymentService) UpdateStatus(ctx context.Context, id int64, status models.PaymentStatus) error {
	return s.paymentRepo.UpdateStatus(ctx, id, status)
}
