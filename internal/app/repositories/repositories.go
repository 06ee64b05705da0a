package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AccountRepository       *AccountRepository
	StudentRepository       *StudentRepository
	ParentLinkRepository    *ParentLinkRepository
	ClassroomRepository     *ClassroomRepository
	AttendanceRepository    *AttendanceRepository
	GradeRepository         *GradeRepository
	AssignmentRepository    *AssignmentRepository
	DailyReportRepository   *DailyReportRepository
	CounselingRepository    *CounselingRepository
	PaymentRepository       *PaymentRepository
	AnnouncementRepository  *AnnouncementRepository
	SignupRequestRepository *SignupRequestRepository
	EntranceTestRepository  *EntranceTestRepository
	TaskRequestRepository   *TaskRequestRepository
	PushTokenRepository     *PushTokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AccountRepository:       NewAccountRepository(db),
		StudentRepository:       NewStudentRepository(db),
		ParentLinkRepository:    NewParentLinkRepository(db),
		ClassroomRepository:     NewClassroomRepository(db),
		AttendanceRepository:    NewAttendanceRepository(db),
		GradeRepository:         NewGradeRepository(db),
		AssignmentRepository:    NewAssignmentRepository(db),
		DailyReportRepository:   NewDailyReportRepository(db),
		CounselingRepository:    NewCounselingRepository(db),
		PaymentRepository:       NewPaymentRepository(db),
		AnnouncementRepository:  NewAnnouncementRepository(db),
		SignupRequestRepository: NewSignupRequestRepository(db),
		EntranceTestRepository:  NewEntranceTestRepository(db),
		TaskRequestRepository:   NewTaskRequestRepository(db),
		PushTokenRepository:     NewPushTokenRepository(db),
	}
}
