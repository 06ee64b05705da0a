// Package seed creates the default data a fresh install needs.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/repositories"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/auth"
)

const (
	defaultAdminEmail    = "admin@suhaktamgu.com"
	defaultAdminPassword = "changeme"
)

var defaultSubjects = []string{"수학", "영어", "과학"}

// CreateDefaultData makes sure a fresh database has an admin account
// and the base subjects. Existing rows are left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	accountRepo := repositories.NewAccountRepository(dbPool)
	classroomRepo := repositories.NewClassroomRepository(dbPool)

	var finalErr error

	if _, err := accountRepo.GetByEmail(ctx, defaultAdminEmail); err != nil {
		if !errors.Is(err, apperrors.ErrAccountNotFound) {
			return err
		}

		hashed, err := auth.HashPassword(defaultAdminPassword)
		if err != nil {
			return err
		}
		admin := &models.Account{
			Email:    defaultAdminEmail,
			Password: hashed,
			Name:     "관리자",
			Role:     models.RoleAdmin,
		}
		if err := accountRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Error().Err(err).Msg("Error creating default admin account")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
		}
	}

	for _, name := range defaultSubjects {
		subject := &models.Subject{Name: name}
		if err := classroomRepo.CreateSubject(ctx, subject); err != nil && !errors.Is(err, apperrors.ErrSubjectExists) {
			lgr.Error().Err(err).Str("subject", name).Msg("Error creating default subject")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
