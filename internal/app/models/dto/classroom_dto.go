package dto

// CreateSubjectRequest registers a subject.
type CreateSubjectRequest struct {
	Name string `json:"name" binding:"required" example:"수학"`
	Code string `json:"code" binding:"required" example:"MATH"`
}

// CreateClassroomRequest opens a new class.
type CreateClassroomRequest struct {
	Name        string  `json:"name" binding:"required"`
	SubjectID   int64   `json:"subjectId" binding:"required"`
	TeacherID   int64   `json:"teacherId" binding:"required"`
	Schedule    *string `json:"schedule,omitempty" example:"월수금 17:00"`
	MaxCapacity *int    `json:"maxCapacity,omitempty" example:"20"`
}

// UpdateClassroomRequest partially updates a class.
type UpdateClassroomRequest struct {
	Name        *string `json:"name,omitempty"`
	SubjectID   *int64  `json:"subjectId,omitempty"`
	TeacherID   *int64  `json:"teacherId,omitempty"`
	Schedule    *string `json:"schedule,omitempty"`
	MaxCapacity *int    `json:"maxCapacity,omitempty"`
	Status      *string `json:"status,omitempty" example:"INACTIVE"`
}

// EnrollRequest adds students to a classroom.
type EnrollRequest struct {
	StudentIDs []int64 `json:"studentIds" binding:"required,min=1"`
}
