package dto

// CreateStudentRequest registers a new student. StudentNumber is
// generated (YYYYNNN) when omitted.
type CreateStudentRequest struct {
	Name          string  `json:"name" binding:"required"`
	StudentNumber *string `json:"studentNumber,omitempty"`
	DateOfBirth   *string `json:"dateOfBirth,omitempty" example:"2011-03-02"`
	Phone         *string `json:"phone,omitempty"`
	ParentPhone   *string `json:"parentPhone,omitempty"`
	School        *string `json:"school,omitempty"`
	Grade         *string `json:"grade,omitempty"`
	Status        *string `json:"status,omitempty" example:"ACTIVE"`
}

// UpdateStudentRequest partially updates a student record.
type UpdateStudentRequest struct {
	Name        *string `json:"name,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	ParentPhone *string `json:"parentPhone,omitempty"`
	School      *string `json:"school,omitempty"`
	Grade       *string `json:"grade,omitempty"`
	Status      *string `json:"status,omitempty" example:"COMPLETED"`
}

// StudentFilter narrows student listings. Search matches name, student
// number or phone; Status accepts canonical values and the Korean
// aliases 재원/수료/퇴원.
type StudentFilter struct {
	Search string
	Status string
	Grade  string
	School string
	Page   int
	Size   int
}
