package dto

import "github.com/suhaktamgu/academy/internal/app/models"

// DashboardResponse is the staff home screen snapshot.
type DashboardResponse struct {
	ActiveStudents      int64                       `json:"activeStudents"`
	ActiveClassrooms    int64                       `json:"activeClassrooms"`
	PendingSignups      int64                       `json:"pendingSignups"`
	PendingCounselings  int64                       `json:"pendingCounselings"`
	TodayAttendance     AttendanceTally             `json:"todayAttendance"`
	TodayTestCount      int64                       `json:"todayTestCount"`
	UpcomingTests       []*models.EntranceTest      `json:"upcomingTests"`
	RecentAnnouncements []*models.Announcement      `json:"recentAnnouncements"`
	OpenTasks           []*models.TaskRequest       `json:"openTasks"`
	RecentCounselings   []*models.CounselingRequest `json:"recentCounselings"`
}
