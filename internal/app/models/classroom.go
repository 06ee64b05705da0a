package models

import "time"

// Subject defines a taught subject based on the 'subjects' table
type Subject struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" example:"수학"`
	Code      string    `json:"code" db:"code" example:"MATH"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Classroom defines a class based on the 'classrooms' table
type Classroom struct {
	ID          int64       `json:"id" db:"id"`
	Name        string      `json:"name" db:"name" example:"중2 심화반"`
	SubjectID   int64       `json:"subjectId" db:"subject_id"`
	TeacherID   int64       `json:"teacherId" db:"teacher_id"`
	Schedule    *string     `json:"schedule,omitempty" db:"schedule" example:"월수금 17:00"`
	MaxCapacity int         `json:"maxCapacity" db:"max_capacity" example:"20"`
	Status      ClassStatus `json:"status" db:"status" example:"ACTIVE"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Subject         *Subject `json:"subject,omitempty"`
	Teacher         *Account `json:"teacher,omitempty"`
	EnrollmentCount int      `json:"enrollmentCount"`
}

// Enrollment links a student to a classroom; the pair is unique.
type Enrollment struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	ClassroomID int64     `json:"classroomId" db:"classroom_id"`
	Status      string    `json:"status" db:"status" example:"ACTIVE"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	Student   *Student   `json:"student,omitempty"`
	Classroom *Classroom `json:"classroom,omitempty"`
}
