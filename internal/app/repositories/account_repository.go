package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/pkg/apperrors"
	"github.com/suhaktamgu/academy/internal/pkg/dberrors"
)

const accountColumns = "id, email, password, name, role, phone, created_at, updated_at"

// AccountRepository handles database operations for accounts.
type AccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

func scanAccount(row interface{ Scan(dest ...any) error }) (*models.Account, error) {
	account := &models.Account{}
	err := row.Scan(
		&account.ID, &account.Email, &account.Password, &account.Name,
		&account.Role, &account.Phone, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error scanning account: %w", err)
	}
	return account, nil
}

// Create inserts a new account and sets its generated ID.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO accounts (email, password, name, role, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		account.Email, account.Password, account.Name, account.Role, account.Phone).
		Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE id = $1`, id)
	return scanAccount(row)
}

// GetByEmail retrieves an account by email.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE email = $1`, email)
	return scanAccount(row)
}

// GetByPhoneAndRole retrieves an account matching both phone and role.
// Phone login uses this to find an existing PARENT account before
// provisioning a new one.
func (r *AccountRepository) GetByPhoneAndRole(ctx context.Context, phone string, role models.RoleType) (*models.Account, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE phone = $1 AND role = $2`, phone, role)
	return scanAccount(row)
}

// ListByRoles retrieves all accounts holding any of the given roles,
// ordered by name.
func (r *AccountRepository) ListByRoles(ctx context.Context, roles []models.RoleType) ([]*models.Account, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE role = ANY($1)
		ORDER BY name`, roles)
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]*models.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

// Update writes the mutable account fields.
func (r *AccountRepository) Update(ctx context.Context, account *models.Account) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET name = $1, role = $2, password = $3, phone = $4, updated_at = now()
		WHERE id = $5`,
		account.Name, account.Role, account.Password, account.Phone, account.ID)
	if err != nil {
		return fmt.Errorf("error updating account: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

// Delete removes an account.
func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting account: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}
