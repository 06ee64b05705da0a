package dto

import "github.com/suhaktamgu/academy/internal/app/models"

// AttendanceEntry is one student's state within a batch save.
type AttendanceEntry struct {
	StudentID   int64   `json:"studentId" binding:"required"`
	Status      string  `json:"status" binding:"required" example:"PRESENT"`
	CheckInTime *string `json:"checkInTime,omitempty" example:"16:58"`
	Remarks     *string `json:"remarks,omitempty"`
}

// SaveAttendanceRequest upserts a class day's attendance in one call.
type SaveAttendanceRequest struct {
	ClassroomID int64             `json:"classroomId" binding:"required"`
	Date        string            `json:"date" binding:"required" example:"2026-08-28"`
	Records     []AttendanceEntry `json:"records" binding:"required,min=1"`
}

// AttendanceTally summarizes a student's attendance over a period.
type AttendanceTally struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Excused int `json:"excused"`
	Total   int `json:"total"`
}

// AttendanceListResponse returns records plus the per-status tally.
type AttendanceListResponse struct {
	Records []*models.AttendanceRecord `json:"records"`
	Summary AttendanceTally            `json:"summary"`
}

// GradeEntry is one student's score within a batch save.
type GradeEntry struct {
	StudentID int64    `json:"studentId" binding:"required"`
	Score     float64  `json:"score"`
	MaxScore  *float64 `json:"maxScore,omitempty" example:"100"`
	Remarks   *string  `json:"remarks,omitempty"`
}

// SaveGradesRequest records one test's scores for a classroom.
type SaveGradesRequest struct {
	ClassroomID int64        `json:"classroomId" binding:"required"`
	TestName    string       `json:"testName" binding:"required" example:"8월 월말평가"`
	TestDate    string       `json:"testDate" binding:"required" example:"2026-08-25"`
	Grades      []GradeEntry `json:"grades" binding:"required,min=1"`
}

// UpdateGradeRequest rewrites one recorded score.
type UpdateGradeRequest struct {
	TestName *string  `json:"testName,omitempty"`
	TestDate *string  `json:"testDate,omitempty"`
	Score    *float64 `json:"score,omitempty"`
	MaxScore *float64 `json:"maxScore,omitempty"`
	Remarks  *string  `json:"remarks,omitempty"`
}

// CreateAssignmentRequest creates homework for a classroom. A
// NOT_SUBMITTED submission row is created for every active enrollment.
type CreateAssignmentRequest struct {
	ClassroomID    int64   `json:"classroomId" binding:"required"`
	Title          string  `json:"title" binding:"required"`
	Description    *string `json:"description,omitempty"`
	AssignmentDate *string `json:"assignmentDate,omitempty" example:"2026-08-28"`
	DueDate        string  `json:"dueDate" binding:"required" example:"2026-09-01"`
}

// UpdateAssignmentRequest edits homework details. The submission
// fan-out is not re-run; the roster at creation time stands.
type UpdateAssignmentRequest struct {
	Title          *string `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
	AssignmentDate *string `json:"assignmentDate,omitempty"`
	DueDate        *string `json:"dueDate,omitempty"`
}

// UpdateSubmissionRequest changes one student's submission state on an
// assignment.
type UpdateSubmissionRequest struct {
	StudentID int64    `json:"studentId" binding:"required"`
	Status    string   `json:"status" binding:"required" example:"SUBMITTED"`
	Score     *float64 `json:"score,omitempty"`
	Feedback  *string  `json:"feedback,omitempty"`
}

// CreateDailyReportRequest files a study report for one class day.
type CreateDailyReportRequest struct {
	StudentID   int64   `json:"studentId" binding:"required"`
	ClassroomID int64   `json:"classroomId" binding:"required"`
	Date        string  `json:"date" binding:"required" example:"2026-08-28"`
	Content     *string `json:"content,omitempty"`
	Homework    *string `json:"homework,omitempty"`
	Attitude    *string `json:"attitude,omitempty"`
	SpecialNote *string `json:"specialNote,omitempty"`
}
