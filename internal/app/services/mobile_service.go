package services

import (
	"context"
	"errors"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/repositories"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/helpers"
)

const (
	recentGradesLimit        = 5
	dashboardNoticeLimit     = 3
	dailyReportMobileLimit   = 30
)

// MobileService serves the parent and student app. Every student-scoped
// call re-checks that the session is allowed to see that student.
type MobileService struct {
	studentRepo      *repositories.StudentRepository
	parentLinkRepo   *repositories.ParentLinkRepository
	classroomRepo    *repositories.ClassroomRepository
	attendanceRepo   *repositories.AttendanceRepository
	gradeRepo        *repositories.GradeRepository
	assignmentRepo   *repositories.AssignmentRepository
	dailyReportRepo  *repositories.DailyReportRepository
	announcementRepo *repositories.AnnouncementRepository
	pushTokenRepo    *repositories.PushTokenRepository
}

// NewMobileService creates a new MobileService.
func NewMobileService(
	studentRepo *repositories.StudentRepository,
	parentLinkRepo *repositories.ParentLinkRepository,
	classroomRepo *repositories.ClassroomRepository,
	attendanceRepo *repositories.AttendanceRepository,
	gradeRepo *repositories.GradeRepository,
	assignmentRepo *repositories.AssignmentRepository,
	dailyReportRepo *repositories.DailyReportRepository,
	announcementRepo *repositories.AnnouncementRepository,
	pushTokenRepo *repositories.PushTokenRepository,
) *MobileService {
	return &MobileService{
		studentRepo:      studentRepo,
		parentLinkRepo:   parentLinkRepo,
		classroomRepo:    classroomRepo,
		attendanceRepo:   attendanceRepo,
		gradeRepo:        gradeRepo,
		assignmentRepo:   assignmentRepo,
		dailyReportRepo:  dailyReportRepo,
		announcementRepo: announcementRepo,
		pushTokenRepo:    pushTokenRepo,
	}
}

// AuthorizeStudentAccess verifies the session may read this student:
// the student's own bound account, or a parent holding a link.
func (s *MobileService) AuthorizeStudentAccess(ctx context.Context, accountID int64, role models.RoleType, studentID int64) error {
	switch role {
	case models.RoleStudent:
		student, err := s.studentRepo.GetByAccountID(ctx, accountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				return apperrors.ErrPermissionDenied
			}
			return err
		}
		if student.ID != studentID {
			return apperrors.ErrPermissionDenied
		}
		return nil
	case models.RoleParent:
		linked, err := s.parentLinkRepo.Exists(ctx, accountID, studentID)
		if err != nil {
			return err
		}
		if !linked {
			return apperrors.ErrPermissionDenied
		}
		return nil
	default:
		// Staff roles read students through the admin surface instead.
		return apperrors.ErrPermissionDenied
	}
}

// Children lists the students linked to a parent account. A student
// session gets its own record as a single child.
func (s *MobileService) Children(ctx context.Context, accountID int64, role models.RoleType) (*dto.ChildrenResponse, error) {
	var students []*models.Student
	var err error

	switch role {
	case models.RoleParent:
		students, err = s.parentLinkRepo.ListStudentsByParent(ctx, accountID)
	case models.RoleStudent:
		var student *models.Student
		student, err = s.studentRepo.GetByAccountID(ctx, accountID)
		if err == nil {
			students = []*models.Student{student}
		}
	default:
		return nil, apperrors.ErrPermissionDenied
	}
	if err != nil {
		return nil, err
	}

	children := make([]dto.ChildSummary, 0, len(students))
	for _, student := range students {
		classrooms, err := s.classroomRepo.ListByStudent(ctx, student.ID)
		if err != nil {
			return nil, err
		}
		children = append(children, dto.ChildSummary{
			ID:            student.ID,
			Name:          student.Name,
			StudentNumber: student.StudentNumber,
			School:        student.School,
			Grade:         student.Grade,
			Status:        string(student.Status),
			Classrooms:    classrooms,
		})
	}
	return &dto.ChildrenResponse{Children: children}, nil
}

// Attendance returns a student's records plus the period tally.
func (s *MobileService) Attendance(ctx context.Context, accountID int64, role models.RoleType, studentID int64, from, to string) (*dto.AttendanceListResponse, error) {
	if err := s.AuthorizeStudentAccess(ctx, accountID, role, studentID); err != nil {
		return nil, err
	}

	if to == "" {
		to = helpers.Today()
	}
	if from == "" {
		from = "1970-01-01"
	}
	records, err := s.attendanceRepo.ListByStudent(ctx, studentID, from, to)
	if err != nil {
		return nil, err
	}
	tally, err := s.attendanceRepo.TallyByStudent(ctx, studentID, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.AttendanceListResponse{Records: records, Summary: tally}, nil
}

// Grades returns a student's test scores, optionally for one class.
func (s *MobileService) Grades(ctx context.Context, accountID int64, role models.RoleType, studentID, classroomID int64) ([]*models.Grade, error) {
	if err := s.AuthorizeStudentAccess(ctx, accountID, role, studentID); err != nil {
		return nil, err
	}
	grades, err := s.gradeRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if classroomID == 0 {
		return grades, nil
	}
	filtered := make([]*models.Grade, 0, len(grades))
	for _, grade := range grades {
		if grade.ClassroomID == classroomID {
			filtered = append(filtered, grade)
		}
	}
	return filtered, nil
}

// Assignments returns a student's homework with submission state.
func (s *MobileService) Assignments(ctx context.Context, accountID int64, role models.RoleType, studentID int64) ([]*models.AssignmentSubmission, error) {
	if err := s.AuthorizeStudentAccess(ctx, accountID, role, studentID); err != nil {
		return nil, err
	}

	submissions, err := s.assignmentRepo.ListSubmissionsByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	for _, submission := range submissions {
		assignment, err := s.assignmentRepo.GetByID(ctx, submission.AssignmentID)
		if err != nil {
			return nil, err
		}
		submission.Assignment = assignment
	}
	return submissions, nil
}

// DailyReports returns a student's study reports for a date range.
func (s *MobileService) DailyReports(ctx context.Context, accountID int64, role models.RoleType, studentID int64, from, to string) ([]*models.DailyReport, error) {
	if err := s.AuthorizeStudentAccess(ctx, accountID, role, studentID); err != nil {
		return nil, err
	}

	if to == "" {
		to = helpers.Today()
	}
	if from == "" {
		from = "1970-01-01"
	}
	reports, err := s.dailyReportRepo.ListByStudent(ctx, studentID, from, to)
	if err != nil {
		return nil, err
	}
	if len(reports) > dailyReportMobileLimit {
		reports = reports[:dailyReportMobileLimit]
	}
	return reports, nil
}

// Dashboard aggregates the mobile home screen for one student.
func (s *MobileService) Dashboard(ctx context.Context, accountID int64, role models.RoleType, studentID int64) (*dto.MobileDashboardResponse, error) {
	if err := s.AuthorizeStudentAccess(ctx, accountID, role, studentID); err != nil {
		return nil, err
	}

	monthFrom, monthTo := helpers.MonthRange(helpers.CurrentMonth())
	monthAttendance, err := s.attendanceRepo.TallyByStudent(ctx, studentID, monthFrom, monthTo)
	if err != nil {
		return nil, err
	}
	recentGrades, err := s.gradeRepo.ListRecentByStudent(ctx, studentID, recentGradesLimit)
	if err != nil {
		return nil, err
	}
	openAssignments, err := s.assignmentRepo.ListOpenSubmissionsByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	announcements, err := s.announcementRepo.ListActiveForRole(ctx, role, helpers.Today())
	if err != nil {
		return nil, err
	}
	if len(announcements) > dashboardNoticeLimit {
		announcements = announcements[:dashboardNoticeLimit]
	}

	return &dto.MobileDashboardResponse{
		MonthAttendance:     monthAttendance,
		RecentGrades:        recentGrades,
		OpenAssignmentCount: len(openAssignments),
		Announcements:       announcements,
	}, nil
}

// OwnProfile resolves a student session to its own record.
func (s *MobileService) OwnProfile(ctx context.Context, accountID int64, role models.RoleType) (*dto.StudentProfileResponse, error) {
	if role != models.RoleStudent {
		return nil, apperrors.ErrPermissionDenied
	}
	student, err := s.studentRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	classrooms, err := s.classroomRepo.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	return &dto.StudentProfileResponse{Student: student, Classrooms: classrooms}, nil
}

// Lectures returns the active classes for one student. A student
// session may omit the ID and gets its own classes.
func (s *MobileService) Lectures(ctx context.Context, accountID int64, role models.RoleType, studentID int64) ([]*models.Classroom, error) {
	if studentID == 0 && role == models.RoleStudent {
		student, err := s.studentRepo.GetByAccountID(ctx, accountID)
		if err != nil {
			return nil, err
		}
		studentID = student.ID
	}
	if err := s.AuthorizeStudentAccess(ctx, accountID, role, studentID); err != nil {
		return nil, err
	}
	return s.classroomRepo.ListByStudent(ctx, studentID)
}

// Announcements returns the live notices for the session's role.
func (s *MobileService) Announcements(ctx context.Context, role models.RoleType) ([]*models.Announcement, error) {
	return s.announcementRepo.ListActiveForRole(ctx, role, helpers.Today())
}

// DeactivatePushToken retires a device token, e.g. at logout.
func (s *MobileService) DeactivatePushToken(ctx context.Context, token string) error {
	return s.pushTokenRepo.Deactivate(ctx, token)
}

// RegisterPushToken stores a device token for the session's account.
func (s *MobileService) RegisterPushToken(ctx context.Context, accountID int64, req *dto.RegisterPushTokenRequest) (*models.PushToken, error) {
	token := &models.PushToken{
		AccountID: accountID,
		Token:     req.Token,
		Platform:  req.Platform,
	}
	if err := s.pushTokenRepo.Upsert(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}
