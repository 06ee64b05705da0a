package models

import "time"

// AttendanceRecord stores one student's attendance for one class day.
// Dates are stored as YYYY-MM-DD strings; the (student, classroom, date)
// triple is unique and writes are upserts.
type AttendanceRecord struct {
	ID          int64            `json:"id" db:"id"`
	StudentID   int64            `json:"studentId" db:"student_id"`
	ClassroomID int64            `json:"classroomId" db:"classroom_id"`
	Date        string           `json:"date" db:"date" example:"2026-08-28"`
	Status      AttendanceStatus `json:"status" db:"status" example:"PRESENT"`
	CheckInTime *string          `json:"checkInTime,omitempty" db:"check_in_time" example:"16:58"`
	Remarks     *string          `json:"remarks,omitempty" db:"remarks"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time        `json:"updatedAt" db:"updated_at"`

	Student *Student `json:"student,omitempty"`
}

// Grade stores one test score for one student.
type Grade struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	ClassroomID int64     `json:"classroomId" db:"classroom_id"`
	TestName    string    `json:"testName" db:"test_name" example:"8월 월말평가"`
	TestDate    string    `json:"testDate" db:"test_date" example:"2026-08-25"`
	Score       float64   `json:"score" db:"score" example:"92"`
	MaxScore    float64   `json:"maxScore" db:"max_score" example:"100"`
	Remarks     *string   `json:"remarks,omitempty" db:"remarks"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	Student   *Student   `json:"student,omitempty"`
	Classroom *Classroom `json:"classroom,omitempty"`
}

// Assignment defines homework given to a classroom.
type Assignment struct {
	ID             int64     `json:"id" db:"id"`
	ClassroomID    int64     `json:"classroomId" db:"classroom_id"`
	Title          string    `json:"title" db:"title"`
	Description    *string   `json:"description,omitempty" db:"description"`
	AssignmentDate string    `json:"assignmentDate" db:"assignment_date" example:"2026-08-28"`
	DueDate        string    `json:"dueDate" db:"due_date" example:"2026-09-01"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`

	Submissions []*AssignmentSubmission `json:"submissions,omitempty"`
}

// AssignmentSubmission tracks one student's submission state for one
// assignment; the (assignment, student) pair is unique. A NOT_SUBMITTED
// row is fanned out per active enrollment when the assignment is created.
type AssignmentSubmission struct {
	ID           int64            `json:"id" db:"id"`
	AssignmentID int64            `json:"assignmentId" db:"assignment_id"`
	StudentID    int64            `json:"studentId" db:"student_id"`
	Status       SubmissionStatus `json:"status" db:"status" example:"NOT_SUBMITTED"`
	Score        *float64         `json:"score,omitempty" db:"score"`
	Feedback     *string          `json:"feedback,omitempty" db:"feedback"`
	SubmittedAt  *time.Time       `json:"submittedAt,omitempty" db:"submitted_at"`
	CreatedAt    time.Time        `json:"createdAt" db:"created_at"`

	Student    *Student    `json:"student,omitempty"`
	Assignment *Assignment `json:"assignment,omitempty"`
}

// DailyReport is a per-class-day study report shown to parents.
type DailyReport struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	ClassroomID int64     `json:"classroomId" db:"classroom_id"`
	Date        string    `json:"date" db:"date" example:"2026-08-28"`
	Content     *string   `json:"content,omitempty" db:"content"`
	Homework    *string   `json:"homework,omitempty" db:"homework"`
	Attitude    *string   `json:"attitude,omitempty" db:"attitude"`
	SpecialNote *string   `json:"specialNote,omitempty" db:"special_note"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	Classroom *Classroom `json:"classroom,omitempty"`
}
