package models

// RoleType defines an account role
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleTeacher RoleType = "TEACHER"
	RoleDesk    RoleType = "DESK"
	RoleStudent RoleType = "STUDENT"
	RoleParent  RoleType = "PARENT"
)

// TargetAll addresses announcements and task requests to every role.
const TargetAll = "ALL"

// StaffRoles are the roles that sign in with email and password on the
// browser surface.
var StaffRoles = []RoleType{RoleAdmin, RoleTeacher, RoleDesk}

// StudentStatus defines enrollment standing at the academy
type StudentStatus string

const (
	StudentActive    StudentStatus = "ACTIVE"
	StudentCompleted StudentStatus = "COMPLETED"
	StudentWithdrawn StudentStatus = "WITHDRAWN"
)

// ClassStatus defines whether a classroom is running
type ClassStatus string

const (
	ClassActive   ClassStatus = "ACTIVE"
	ClassInactive ClassStatus = "INACTIVE"
)

// AttendanceStatus defines a single day's attendance outcome
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceLate    AttendanceStatus = "LATE"
	AttendanceExcused AttendanceStatus = "EXCUSED"
)

// SubmissionStatus defines assignment submission state
type SubmissionStatus string

const (
	SubmissionNotSubmitted SubmissionStatus = "NOT_SUBMITTED"
	SubmissionSubmitted    SubmissionStatus = "SUBMITTED"
	SubmissionGraded       SubmissionStatus = "GRADED"
)

// CounselingStatus defines counseling request state
type CounselingStatus string

const (
	CounselingPending   CounselingStatus = "PENDING"
	CounselingScheduled CounselingStatus = "SCHEDULED"
	CounselingCompleted CounselingStatus = "COMPLETED"
	CounselingCancelled CounselingStatus = "CANCELLED"
)

// PaymentStatus defines monthly billing state
type PaymentStatus string

const (
	PaymentInputDone PaymentStatus = "INPUT_DONE"
	PaymentInvoiced  PaymentStatus = "INVOICED"
	PaymentPaid      PaymentStatus = "PAID"
	PaymentOverdue   PaymentStatus = "OVERDUE"
)

// SignupStatus defines staff/parent signup request state
type SignupStatus string

const (
	SignupPending  SignupStatus = "PENDING"
	SignupApproved SignupStatus = "APPROVED"
	SignupRejected SignupStatus = "REJECTED"
)

// EntranceTestStatus defines entrance test scheduling state
type EntranceTestStatus string

const (
	EntranceTestScheduled EntranceTestStatus = "SCHEDULED"
	EntranceTestCompleted EntranceTestStatus = "COMPLETED"
	EntranceTestCancelled EntranceTestStatus = "CANCELLED"
)
