package models

import "time"

// Student defines a student record based on the 'students' table.
// AccountID is the optional back-reference to a STUDENT-role login
// account; the column carries a unique constraint so a student never
// has more than one.
type Student struct {
	ID            int64         `json:"id" db:"id" example:"1"`
	Name          string        `json:"name" db:"name" example:"김철수"`
	StudentNumber string        `json:"studentNumber" db:"student_number" example:"2026001"`
	DateOfBirth   *string       `json:"dateOfBirth,omitempty" db:"date_of_birth" example:"2011-03-02"`
	Phone         *string       `json:"phone,omitempty" db:"phone" example:"01012345678"`
	ParentPhone   *string       `json:"parentPhone,omitempty" db:"parent_phone" example:"01098765432"`
	School        *string       `json:"school,omitempty" db:"school" example:"수학중학교"`
	Grade         *string       `json:"grade,omitempty" db:"grade" example:"중2"`
	Status        StudentStatus `json:"status" db:"status" example:"ACTIVE"`
	AccountID     *int64        `json:"accountId,omitempty" db:"account_id"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Enrollments []*Enrollment `json:"enrollments,omitempty"`
}

// ParentStudent links a PARENT-role account to a student. The
// (parent, student) pair is unique; links are created idempotently the
// first time a parent resolves login for that student.
type ParentStudent struct {
	ID        int64     `json:"id" db:"id"`
	ParentID  int64     `json:"parentId" db:"parent_id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	Relation  string    `json:"relation" db:"relation" example:"보호자"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	Parent  *Account `json:"parent,omitempty"`
	Student *Student `json:"student,omitempty"`
}
