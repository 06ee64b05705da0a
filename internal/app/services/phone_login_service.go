package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/auth"
	"github.com/suhaktamgu/academy/internal/pkg/dberrors"
	"github.com/suhaktamgu/academy/internal/pkg/logger"
)

// ParentRelation is recorded on every parent-student link created
// during phone login.
const ParentRelation = "보호자"

// AccountStore is the slice of account storage phone login needs.
type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByPhoneAndRole(ctx context.Context, phone string, role models.RoleType) (*models.Account, error)
}

// StudentStore is the slice of student storage phone login needs.
type StudentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	FindActiveByPhone(ctx context.Context, phone string) ([]*models.Student, error)
	FindActiveByParentPhone(ctx context.Context, phone string) ([]*models.Student, error)
	BindAccount(ctx context.Context, studentID, accountID int64, phone string) error
}

// ParentLinkStore is the slice of link storage phone login needs.
type ParentLinkStore interface {
	Link(ctx context.Context, parentID, studentID int64, relation string) error
	FindActiveStudentsLinkedByPhone(ctx context.Context, phone string) ([]*models.Student, error)
}

// PhoneLoginService resolves a phone number to students and provisions
// STUDENT or PARENT accounts on first login. One endpoint serves both
// steps: a bare phone returns candidates, a chosen candidate returns a
// session.
type PhoneLoginService struct {
	accounts   AccountStore
	students   StudentStore
	links      ParentLinkStore
	jwtService *auth.JWTService
}

// NewPhoneLoginService creates a new PhoneLoginService.
func NewPhoneLoginService(accounts AccountStore, students StudentStore, links ParentLinkStore, jwtService *auth.JWTService) *PhoneLoginService {
	return &PhoneLoginService{
		accounts:   accounts,
		students:   students,
		links:      links,
		jwtService: jwtService,
	}
}

// NormalizePhone strips hyphens and whitespace so 010-1234-5678 and
// 01012345678 refer to the same number.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r == '-' || r == ' ' || r == '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MaskName hides the middle of a name: 김철수 becomes 김*수, 이박
// becomes 이*, and a single character stays as is.
func MaskName(name string) string {
	runes := []rune(name)
	switch len(runes) {
	case 0, 1:
		return name
	case 2:
		return string(runes[0]) + "*"
	default:
		return string(runes[0]) + strings.Repeat("*", len(runes)-2) + string(runes[len(runes)-1])
	}
}

// stripAllWhitespace removes every whitespace rune, so "김 철수"
// matches "김철수". Comparison stays case-sensitive.
func stripAllWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
}

// candidate pairs a student with the role a login would assume.
type candidate struct {
	student *models.Student
	loginAs models.RoleType
}

// findCandidates runs the three phone searches and merges them. A
// student found by its own phone wins over the same student found by a
// parent number.
func (s *PhoneLoginService) findCandidates(ctx context.Context, phone string) ([]candidate, error) {
	byOwnPhone, err := s.students.FindActiveByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("searching students by phone: %w", err)
	}

	byParentPhone, err := s.students.FindActiveByParentPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("searching students by parent phone: %w", err)
	}

	byParentLink, err := s.links.FindActiveStudentsLinkedByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("searching students by parent link: %w", err)
	}

	seen := make(map[int64]models.RoleType)
	candidates := make([]candidate, 0, len(byOwnPhone)+len(byParentPhone)+len(byParentLink))

	for _, student := range byOwnPhone {
		if _, ok := seen[student.ID]; ok {
			continue
		}
		seen[student.ID] = models.RoleStudent
		candidates = append(candidates, candidate{student: student, loginAs: models.RoleStudent})
	}
	for _, student := range append(byParentPhone, byParentLink...) {
		if _, ok := seen[student.ID]; ok {
			continue
		}
		seen[student.ID] = models.RoleParent
		candidates = append(candidates, candidate{student: student, loginAs: models.RoleParent})
	}
	return candidates, nil
}

// Lookup is step one: it resolves a phone number to masked candidates.
// An unknown number returns ErrPhoneNotRegistered and writes nothing.
func (s *PhoneLoginService) Lookup(ctx context.Context, rawPhone string) (*dto.PhoneLoginSelectResponse, error) {
	phone := NormalizePhone(rawPhone)
	if phone == "" {
		return nil, apperrors.NewInvalidInputError("phone number is required")
	}

	candidates, err := s.findCandidates(ctx, phone)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, apperrors.ErrPhoneNotRegistered
	}

	students := make([]dto.PhoneCandidate, 0, len(candidates))
	for _, c := range candidates {
		students = append(students, dto.PhoneCandidate{
			ID:      c.student.ID,
			Name:    MaskName(c.student.Name),
			School:  c.student.School,
			Grade:   c.student.Grade,
			LoginAs: string(c.loginAs),
		})
	}

	return &dto.PhoneLoginSelectResponse{
		Step:     dto.PhoneLoginStepSelect,
		Students: students,
		Message:  "학생을 선택하고 이름을 입력해주세요",
	}, nil
}

// Confirm is step two: it verifies the typed name against the chosen
// student and returns a session, provisioning an account on first login.
func (s *PhoneLoginService) Confirm(ctx context.Context, req *dto.PhoneLoginRequest) (*dto.PhoneLoginSuccessResponse, error) {
	phone := NormalizePhone(req.Phone)
	if stripAllWhitespace(req.StudentName) == "" {
		return nil, apperrors.NewInvalidInputError("student name is required")
	}

	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	if stripAllWhitespace(student.Name) != stripAllWhitespace(req.StudentName) {
		return nil, apperrors.ErrNameMismatch
	}

	var account *models.Account
	if models.RoleType(req.LoginType) == models.RoleStudent {
		account, err = s.resolveStudentAccount(ctx, student, phone)
	} else {
		account, err = s.resolveParentAccount(ctx, student, phone)
	}
	if err != nil {
		return nil, err
	}

	token, _, err := s.jwtService.GenerateToken(account)
	if err != nil {
		return nil, fmt.Errorf("generating session token: %w", err)
	}

	logger.Info().
		Int64("accountId", account.ID).
		Str("role", string(account.Role)).
		Int64("studentId", student.ID).
		Msg("Phone login completed")

	return &dto.PhoneLoginSuccessResponse{
		Step:  dto.PhoneLoginStepSuccess,
		Token: token,
		User:  account.Public(),
	}, nil
}

// resolveStudentAccount reuses the student's bound account or
// provisions one. Password login is not supported for these accounts,
// so the stored credential is random.
func (s *PhoneLoginService) resolveStudentAccount(ctx context.Context, student *models.Student, phone string) (*models.Account, error) {
	if student.AccountID != nil {
		return s.accounts.GetByID(ctx, *student.AccountID)
	}

	credential, err := auth.RandomCredential()
	if err != nil {
		return nil, fmt.Errorf("generating credential: %w", err)
	}

	account := &models.Account{
		Email:    fmt.Sprintf("student_%s@suhaktamgu.local", student.StudentNumber),
		Password: credential,
		Name:     student.Name,
		Role:     models.RoleStudent,
		Phone:    &phone,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		// A concurrent first login may have provisioned the account
		// already; use the winner's row.
		if dberrors.IsUniqueViolation(err) || errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return s.accounts.GetByEmail(ctx, account.Email)
		}
		return nil, err
	}

	if err := s.students.BindAccount(ctx, student.ID, account.ID, phone); err != nil {
		return nil, err
	}
	return account, nil
}

// resolveParentAccount finds the PARENT account for this phone or
// provisions one, then links it to the student. The link is idempotent,
// so a parent logging in for a second child just gains a second link.
func (s *PhoneLoginService) resolveParentAccount(ctx context.Context, student *models.Student, phone string) (*models.Account, error) {
	account, err := s.accounts.GetByPhoneAndRole(ctx, phone, models.RoleParent)
	if err != nil {
		if !errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, err
		}

		credential, credErr := auth.RandomCredential()
		if credErr != nil {
			return nil, fmt.Errorf("generating credential: %w", credErr)
		}

		account = &models.Account{
			Email:    fmt.Sprintf("parent_%s@suhaktamgu.local", phone),
			Password: credential,
			Name:     student.Name + " 학부모",
			Role:     models.RoleParent,
			Phone:    &phone,
		}
		if createErr := s.accounts.Create(ctx, account); createErr != nil {
			if dberrors.IsUniqueViolation(createErr) || errors.Is(createErr, apperrors.ErrEmailAlreadyExists) {
				account, err = s.accounts.GetByEmail(ctx, account.Email)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, createErr
			}
		}
	}

	if err := s.links.Link(ctx, account.ID, student.ID, ParentRelation); err != nil {
		return nil, err
	}
	return account, nil
}

// Login dispatches one request to the step it belongs to. Choosing a
// student commits the caller to step two; a missing name there is an
// input error, never a silent fall back to the candidate list.
func (s *PhoneLoginService) Login(ctx context.Context, req *dto.PhoneLoginRequest) (any, error) {
	if req.StudentID == 0 {
		return s.Lookup(ctx, req.Phone)
	}
	return s.Confirm(ctx, req)
}
