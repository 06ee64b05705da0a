package dto

import "github.com/suhaktamgu/academy/internal/app/models"

// ChildSummary is one linked student on the parent's home screen,
// with the active classes they attend.
type ChildSummary struct {
	ID            int64               `json:"id"`
	Name          string              `json:"name"`
	StudentNumber string              `json:"studentNumber"`
	School        *string             `json:"school,omitempty"`
	Grade         *string             `json:"grade,omitempty"`
	Status        string              `json:"status"`
	Classrooms    []*models.Classroom `json:"classrooms"`
}

// ChildrenResponse lists the students a parent account is linked to.
type ChildrenResponse struct {
	Children []ChildSummary `json:"children"`
}

// StudentProfileResponse is the mobile view of one student, with the
// classes they are enrolled in.
type StudentProfileResponse struct {
	Student    *models.Student     `json:"student"`
	Classrooms []*models.Classroom `json:"classrooms"`
}

// MobileDashboardResponse aggregates the mobile home screen for one
// student: this month's attendance tally, recent grades, how much
// homework is still outstanding and the latest notices.
type MobileDashboardResponse struct {
	MonthAttendance     AttendanceTally        `json:"monthAttendance"`
	RecentGrades        []*models.Grade        `json:"recentGrades"`
	OpenAssignmentCount int                    `json:"openAssignmentCount"`
	Announcements       []*models.Announcement `json:"announcements"`
}

// RegisterPushTokenRequest stores an Expo push token for the caller.
type RegisterPushTokenRequest struct {
	Token    string `json:"token" binding:"required" example:"ExponentPushToken[xxxx]"`
	Platform string `json:"platform" binding:"required" example:"ios"`
}
