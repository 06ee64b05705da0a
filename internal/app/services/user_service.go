package services

import (
	"context"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/repositories"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/auth"
)

// UserService manages staff accounts for the admin screen.
type UserService struct {
	accountRepo *repositories.AccountRepository
}

// NewUserService creates a new UserService.
func NewUserService(accountRepo *repositories.AccountRepository) *UserService {
	return &UserService{accountRepo: accountRepo}
}

// ListStaff retrieves all staff accounts. Auto-provisioned STUDENT and
// PARENT accounts are kept off this screen.
func (s *UserService) ListStaff(ctx context.Context) ([]*models.Account, error) {
	return s.accountRepo.ListByRoles(ctx, models.StaffRoles)
}

// Update applies admin changes to a staff account.
func (s *UserService) Update(ctx context.Context, id int64, req *dto.UpdateAccountRequest) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Role != nil {
		role := models.RoleType(*req.Role)
		switch role {
		case models.RoleAdmin, models.RoleTeacher, models.RoleDesk:
			account.Role = role
		default:
			return nil, apperrors.NewInvalidInputError("role must be a staff role")
		}
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		account.Password = hashed
	}
	if req.Phone != nil {
		account.Phone = normalizedPhonePtr(req.Phone)
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Delete removes a staff account. The caller cannot delete itself,
// which keeps the last admin from locking everyone out.
func (s *UserService) Delete(ctx context.Context, callerID, id int64) error {
	if callerID == id {
		return apperrors.NewConflictError("cannot delete your own account")
	}
	return s.accountRepo.Delete(ctx, id)
}
