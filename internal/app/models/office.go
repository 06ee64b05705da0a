package models

import "time"

// CounselingRequest is a consultation request, usually filed by a parent
// from the mobile surface and handled by desk staff.
type CounselingRequest struct {
	ID            int64            `json:"id" db:"id"`
	ParentID      *int64           `json:"parentId,omitempty" db:"parent_id"`
	StudentID     int64            `json:"studentId" db:"student_id"`
	Title         string           `json:"title" db:"title"`
	Description   *string          `json:"description,omitempty" db:"description"`
	PreferredDate *string          `json:"preferredDate,omitempty" db:"preferred_date" example:"2026-09-03"`
	SessionDate   *string          `json:"sessionDate,omitempty" db:"session_date"`
	SessionNotes  *string          `json:"sessionNotes,omitempty" db:"session_notes"`
	AdminNotes    *string          `json:"adminNotes,omitempty" db:"admin_notes"`
	Status        CounselingStatus `json:"status" db:"status" example:"PENDING"`
	CreatedAt     time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time        `json:"updatedAt" db:"updated_at"`

	Parent  *Account `json:"parent,omitempty"`
	Student *Student `json:"student,omitempty"`
}

// Payment is one student's billing row for one month; the
// (student, yearMonth) pair is unique and writes are upserts.
type Payment struct {
	ID         int64         `json:"id" db:"id"`
	StudentID  int64         `json:"studentId" db:"student_id"`
	YearMonth  string        `json:"yearMonth" db:"year_month" example:"2026-08"`
	TuitionFee int64         `json:"tuitionFee" db:"tuition_fee"`
	SpecialFee int64         `json:"specialFee" db:"special_fee"`
	OtherFee   int64         `json:"otherFee" db:"other_fee"`
	TotalFee   int64         `json:"totalFee" db:"total_fee"`
	Status     PaymentStatus `json:"status" db:"status" example:"INPUT_DONE"`
	Remarks    *string       `json:"remarks,omitempty" db:"remarks"`
	CreatedAt  time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time     `json:"updatedAt" db:"updated_at"`

	Student *Student `json:"student,omitempty"`
}

// Announcement is a notice targeted at a role group.
type Announcement struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	TargetRole  string    `json:"targetRole" db:"target_role" example:"ALL"`
	PublishDate time.Time `json:"publishDate" db:"publish_date"`
	ExpiryDate  *string   `json:"expiryDate,omitempty" db:"expiry_date"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// SignupRequest is a public enrollment inquiry awaiting admin review.
type SignupRequest struct {
	ID           int64        `json:"id" db:"id"`
	StudentName  string       `json:"studentName" db:"student_name"`
	School       *string      `json:"school,omitempty" db:"school"`
	Grade        *string      `json:"grade,omitempty" db:"grade"`
	ParentName   *string      `json:"parentName,omitempty" db:"parent_name"`
	ParentPhone  string       `json:"parentPhone" db:"parent_phone"`
	StudentPhone *string      `json:"studentPhone,omitempty" db:"student_phone"`
	Message      *string      `json:"message,omitempty" db:"message"`
	Status       SignupStatus `json:"status" db:"status" example:"PENDING"`
	AdminNotes   *string      `json:"adminNotes,omitempty" db:"admin_notes"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time    `json:"updatedAt" db:"updated_at"`
}

// EntranceTest is a placement test booking for a prospective student.
type EntranceTest struct {
	ID              int64              `json:"id" db:"id"`
	Name            string             `json:"name" db:"name"`
	School          *string            `json:"school,omitempty" db:"school"`
	Grade           *string            `json:"grade,omitempty" db:"grade"`
	ParentPhone     string             `json:"parentPhone" db:"parent_phone"`
	TestDate        string             `json:"testDate" db:"test_date" example:"2026-09-05"`
	TestTime        string             `json:"testTime" db:"test_time" example:"14:00"`
	Status          EntranceTestStatus `json:"status" db:"status" example:"SCHEDULED"`
	Notes           *string            `json:"notes,omitempty" db:"notes"`
	PriorLevel      *string            `json:"priorLevel,omitempty" db:"prior_level"`
	TestScore       *string            `json:"testScore,omitempty" db:"test_score"`
	CounselingNotes *string            `json:"counselingNotes,omitempty" db:"counseling_notes"`
	CreatedAt       time.Time          `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time          `json:"updatedAt" db:"updated_at"`
}

// TaskRequest is an internal work request between staff roles.
type TaskRequest struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Description   *string   `json:"description,omitempty" db:"description"`
	CreatedBy     int64     `json:"createdBy" db:"created_by"`
	CreatedByName string    `json:"createdByName" db:"created_by_name"`
	TargetRole    string    `json:"targetRole" db:"target_role" example:"DESK"`
	IsCompleted   bool      `json:"isCompleted" db:"is_completed"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// PushToken is a registered Expo push token; unique by token value.
type PushToken struct {
	ID        int64     `json:"id" db:"id"`
	AccountID int64     `json:"accountId" db:"account_id"`
	Token     string    `json:"token" db:"token"`
	Platform  string    `json:"platform" db:"platform" example:"ios"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
