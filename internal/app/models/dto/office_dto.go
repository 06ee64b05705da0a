package dto

import "github.com/suhaktamgu/academy/internal/app/models"

// CreateCounselingRequest files a consultation request. ParentID is
// taken from the session on the mobile surface; staff may file on a
// parent's behalf without one.
type CreateCounselingRequest struct {
	StudentID     int64   `json:"studentId" binding:"required"`
	Title         string  `json:"title" binding:"required"`
	Description   *string `json:"description,omitempty"`
	PreferredDate *string `json:"preferredDate,omitempty" example:"2026-09-03"`
}

// UpdateCounselingRequest moves a counseling request through its states.
type UpdateCounselingRequest struct {
	Status       *string `json:"status,omitempty" example:"SCHEDULED"`
	SessionDate  *string `json:"sessionDate,omitempty"`
	SessionNotes *string `json:"sessionNotes,omitempty"`
	AdminNotes   *string `json:"adminNotes,omitempty"`
}

// UpsertPaymentRequest writes one student's billing row for one month.
// TotalFee is derived server-side as the sum of the three fees.
type UpsertPaymentRequest struct {
	StudentID  int64   `json:"studentId" binding:"required"`
	YearMonth  string  `json:"yearMonth" binding:"required" example:"2026-08"`
	TuitionFee int64   `json:"tuitionFee"`
	SpecialFee int64   `json:"specialFee"`
	OtherFee   int64   `json:"otherFee"`
	Status     *string `json:"status,omitempty" example:"INPUT_DONE"`
	Remarks    *string `json:"remarks,omitempty"`
}

// UpdatePaymentStatusRequest moves one payment through its billing states.
type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required" example:"PAID"`
}

// PaymentRosterRow merges the month's payment (if any) onto an active
// student, so the billing screen always shows the full roster.
type PaymentRosterRow struct {
	Student *models.Student `json:"student"`
	Payment *models.Payment `json:"payment,omitempty"`
}

// PaymentMonthResponse is the billing view for one month.
type PaymentMonthResponse struct {
	YearMonth string             `json:"yearMonth" example:"2026-08"`
	Rows      []PaymentRosterRow `json:"rows"`
	TotalSum  int64              `json:"totalSum"`
}

// CreateAnnouncementRequest publishes a notice; members of the target
// role with registered push tokens are notified.
type CreateAnnouncementRequest struct {
	Title      string  `json:"title" binding:"required"`
	Content    string  `json:"content" binding:"required"`
	TargetRole string  `json:"targetRole" binding:"required" example:"PARENT"`
	ExpiryDate *string `json:"expiryDate,omitempty"`
}

// UpdateAnnouncementRequest edits or retires a notice.
type UpdateAnnouncementRequest struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	TargetRole *string `json:"targetRole,omitempty"`
	ExpiryDate *string `json:"expiryDate,omitempty"`
	IsActive   *bool   `json:"isActive,omitempty"`
}

// CreateSignupRequest is the public enrollment inquiry form.
type CreateSignupRequest struct {
	StudentName  string  `json:"studentName" binding:"required"`
	School       *string `json:"school,omitempty"`
	Grade        *string `json:"grade,omitempty"`
	ParentName   *string `json:"parentName,omitempty"`
	ParentPhone  string  `json:"parentPhone" binding:"required"`
	StudentPhone *string `json:"studentPhone,omitempty"`
	Message      *string `json:"message,omitempty"`
}

// DecideSignupRequest approves or rejects an inquiry.
type DecideSignupRequest struct {
	Status     string  `json:"status" binding:"required" example:"APPROVED"`
	AdminNotes *string `json:"adminNotes,omitempty"`
}

// CreateEntranceTestRequest books a placement test.
type CreateEntranceTestRequest struct {
	Name        string  `json:"name" binding:"required"`
	School      *string `json:"school,omitempty"`
	Grade       *string `json:"grade,omitempty"`
	ParentPhone string  `json:"parentPhone" binding:"required"`
	TestDate    string  `json:"testDate" binding:"required" example:"2026-09-05"`
	TestTime    string  `json:"testTime" binding:"required" example:"14:00"`
	Notes       *string `json:"notes,omitempty"`
	PriorLevel  *string `json:"priorLevel,omitempty"`
}

// UpdateEntranceTestRequest edits a booking, reschedules it or records
// the outcome. All fields are optional; absent fields keep their value.
type UpdateEntranceTestRequest struct {
	Name            *string `json:"name,omitempty"`
	School          *string `json:"school,omitempty"`
	Grade           *string `json:"grade,omitempty"`
	ParentPhone     *string `json:"parentPhone,omitempty"`
	TestDate        *string `json:"testDate,omitempty"`
	TestTime        *string `json:"testTime,omitempty"`
	Status          *string `json:"status,omitempty" example:"COMPLETED"`
	Notes           *string `json:"notes,omitempty"`
	PriorLevel      *string `json:"priorLevel,omitempty"`
	TestScore       *string `json:"testScore,omitempty"`
	CounselingNotes *string `json:"counselingNotes,omitempty"`
}

// CreateTaskRequest files an internal work request.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description,omitempty"`
	TargetRole  string  `json:"targetRole" binding:"required" example:"DESK"`
}

// UpdateTaskRequest toggles completion.
type UpdateTaskRequest struct {
	IsCompleted bool `json:"isCompleted"`
}
