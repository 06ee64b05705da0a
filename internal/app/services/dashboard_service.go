package services

import (
	"context"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/repositories"
	"github.com/suhaktamgu/academy/internal/pkg/helpers"
)

const dashboardListLimit = 5

// DashboardService aggregates the staff home screen snapshot.
type DashboardService struct {
	studentRepo      *repositories.StudentRepository
	classroomRepo    *repositories.ClassroomRepository
	signupRepo       *repositories.SignupRequestRepository
	counselingRepo   *repositories.CounselingRepository
	attendanceRepo   *repositories.AttendanceRepository
	entranceRepo     *repositories.EntranceTestRepository
	taskRepo         *repositories.TaskRequestRepository
	announcementRepo *repositories.AnnouncementRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	studentRepo *repositories.StudentRepository,
	classroomRepo *repositories.ClassroomRepository,
	signupRepo *repositories.SignupRequestRepository,
	counselingRepo *repositories.CounselingRepository,
	attendanceRepo *repositories.AttendanceRepository,
	entranceRepo *repositories.EntranceTestRepository,
	taskRepo *repositories.TaskRequestRepository,
	announcementRepo *repositories.AnnouncementRepository,
) *DashboardService {
	return &DashboardService{
		studentRepo:      studentRepo,
		classroomRepo:    classroomRepo,
		signupRepo:       signupRepo,
		counselingRepo:   counselingRepo,
		attendanceRepo:   attendanceRepo,
		entranceRepo:     entranceRepo,
		taskRepo:         taskRepo,
		announcementRepo: announcementRepo,
	}
}

// Snapshot builds the dashboard for one staff member.
func (s *DashboardService) Snapshot(ctx context.Context, role models.RoleType) (*dto.DashboardResponse, error) {
	today := helpers.Today()

	activeStudents, err := s.studentRepo.CountByStatus(ctx, models.StudentActive)
	if err != nil {
		return nil, err
	}
	activeClassrooms, err := s.classroomRepo.CountByStatus(ctx, models.ClassActive)
	if err != nil {
		return nil, err
	}
	pendingSignups, err := s.signupRepo.CountByStatus(ctx, models.SignupPending)
	if err != nil {
		return nil, err
	}
	pendingCounselings, err := s.counselingRepo.CountByStatus(ctx, models.CounselingPending)
	if err != nil {
		return nil, err
	}
	todayTally, err := s.attendanceRepo.TallyByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	todayTestCount, err := s.entranceRepo.CountScheduledOn(ctx, today)
	if err != nil {
		return nil, err
	}
	upcomingTests, err := s.entranceRepo.ListUpcomingLimit(ctx, today, dashboardListLimit)
	if err != nil {
		return nil, err
	}
	recentAnnouncements, err := s.announcementRepo.ListRecent(ctx, dashboardListLimit)
	if err != nil {
		return nil, err
	}
	openTasks, err := s.taskRepo.ListOpenForRole(ctx, role, dashboardListLimit)
	if err != nil {
		return nil, err
	}
	recentCounselings, err := s.counselingRepo.ListRecent(ctx, dashboardListLimit)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		ActiveStudents:      activeStudents,
		ActiveClassrooms:    activeClassrooms,
		PendingSignups:      pendingSignups,
		PendingCounselings:  pendingCounselings,
		TodayAttendance:     todayTally,
		TodayTestCount:      todayTestCount,
		UpcomingTests:       upcomingTests,
		RecentAnnouncements: recentAnnouncements,
		OpenTasks:           openTasks,
		RecentCounselings:   recentCounselings,
	}, nil
}
