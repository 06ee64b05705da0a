package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("authentication required")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidInput     = errors.New("invalid input")

	// Account errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Phone login errors
var (
	ErrPhoneNotRegistered = errors.New("phone number not registered")
	ErrNameMismatch       = errors.New("student name does not match")
)

// Student errors
var (
	ErrStudentNotFound            = errors.New("student not found")
	ErrStudentNumberAlreadyExists = errors.New("student number already exists")
)

// Classroom errors
var (
	ErrClassroomNotFound = errors.New("classroom not found")
	ErrAlreadyEnrolled   = errors.New("student is already enrolled in this class")
	ErrNotEnrolled       = errors.New("student is not enrolled in this class")
	ErrSubjectExists     = errors.New("subject with this code already exists")
)

// Record errors
var (
	ErrAssignmentNotFound    = errors.New("assignment not found")
	ErrSubmissionNotFound    = errors.New("submission not found")
	ErrCounselingNotFound    = errors.New("counseling request not found")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrAnnouncementNotFound  = errors.New("announcement not found")
	ErrSignupRequestNotFound = errors.New("signup request not found")
	ErrEntranceTestNotFound  = errors.New("entrance test not found")
	ErrTaskRequestNotFound   = errors.New("task request not found")
	ErrGradeNotFound         = errors.New("grade not found")
)

// NewNotFoundError creates a custom error for resource not found with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewInvalidInputError creates a custom error for bad input with a message
func NewInvalidInputError(message string) error {
	return &CustomError{
		Err:     ErrInvalidInput,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}
