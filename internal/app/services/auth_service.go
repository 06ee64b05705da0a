package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/repositories"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/auth"
	"github.com/suhaktamgu/academy/internal/pkg/logger"
)

// AuthService handles staff email+password authentication.
type AuthService struct {
	accountRepo *repositories.AccountRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new AuthService.
func NewAuthService(accountRepo *repositories.AccountRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		jwtService:  jwtService,
	}
}

// Login verifies staff credentials and returns a signed session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.Account, error) {
	account, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(account.Password, req.Password) {
		logger.Warn().Str("email", req.Email).Msg("Login failed: wrong password")
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(account)
	if err != nil {
		return "", nil, fmt.Errorf("generating session token: %w", err)
	}

	logger.Info().Int64("accountId", account.ID).Str("role", string(account.Role)).Msg("Staff login")
	return token, account, nil
}

// Me returns the account behind a session.
func (s *AuthService) Me(ctx context.Context, accountID int64) (*models.Account, error) {
	return s.accountRepo.GetByID(ctx, accountID)
}
