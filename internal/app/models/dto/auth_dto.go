package dto

import "github.com/suhaktamgu/academy/internal/app/models"

// LoginRequest represents a staff email+password login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session result. Token is only populated for
// mobile clients; browser clients get the token as an httpOnly cookie.
type LoginResponse struct {
	Message string               `json:"message"`
	Token   string               `json:"token,omitempty"`
	User    models.PublicAccount `json:"user"`
}

// PhoneLoginRequest drives both steps of phone-based resolution.
// Step 1 sends only Phone; step 2 adds StudentID, StudentName and
// LoginType carried over from the step-1 candidate list.
type PhoneLoginRequest struct {
	Phone       string `json:"phone" binding:"required"`
	StudentID   int64  `json:"studentId,omitempty"`
	StudentName string `json:"studentName,omitempty"`
	LoginType   string `json:"loginType,omitempty" example:"STUDENT"`
}

// Phone login step markers
const (
	PhoneLoginStepSelect  = "SELECT_STUDENT"
	PhoneLoginStepSuccess = "LOGIN_SUCCESS"
)

// PhoneCandidate is one student surfaced during phone lookup, annotated
// with the role a login for that student would assume. The name is
// partially masked.
type PhoneCandidate struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name" example:"김*수"`
	School  *string `json:"school,omitempty"`
	Grade   *string `json:"grade,omitempty"`
	LoginAs string  `json:"loginAs" example:"PARENT"`
}

// PhoneLoginSelectResponse is the step-1 result.
type PhoneLoginSelectResponse struct {
	Step     string           `json:"step" example:"SELECT_STUDENT"`
	Students []PhoneCandidate `json:"students"`
	Message  string           `json:"message"`
}

// PhoneLoginSuccessResponse is the step-2 result.
type PhoneLoginSuccessResponse struct {
	Step  string               `json:"step" example:"LOGIN_SUCCESS"`
	Token string               `json:"token"`
	User  models.PublicAccount `json:"user"`
}

// MeResponse describes the authenticated caller.
type MeResponse struct {
	User models.PublicAccount `json:"user"`
}

// UpdateAccountRequest updates a staff account (admin only).
type UpdateAccountRequest struct {
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty" example:"TEACHER"`
	Password *string `json:"password,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}
