package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suhaktamgu/academy/internal/app/models"
)

// PushTokenRepository handles Expo push token registrations.
type PushTokenRepository struct {
	db *pgxpool.Pool
}

// NewPushTokenRepository creates a new PushTokenRepository.
func NewPushTokenRepository(db *pgxpool.Pool) *PushTokenRepository {
	return &PushTokenRepository{db: db}
}

// Upsert registers a token for an account. A token value is unique
// across accounts; re-registering moves it to the new account, which
// handles one device switching between users.
func (r *PushTokenRepository) Upsert(ctx context.Context, t *models.PushToken) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO push_tokens (account_id, token, platform, is_active)
		VALUES ($1, $2, $3, true)
		ON CONFLICT (token)
		DO UPDATE SET account_id = EXCLUDED.account_id,
		              platform = EXCLUDED.platform,
		              is_active = true,
		              updated_at = now()
		RETURNING id, created_at, updated_at`,
		t.AccountID, t.Token, t.Platform).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error upserting push token: %w", err)
	}
	t.IsActive = true
	return nil
}

// ListActiveTokensForRole retrieves active token values for every
// account in the role. TargetAll fans out to all roles.
func (r *PushTokenRepository) ListActiveTokensForRole(ctx context.Context, targetRole string) ([]string, error) {
	sql := `
		SELECT pt.token
		FROM push_tokens pt
		JOIN accounts a ON a.id = pt.account_id
		WHERE pt.is_active = true`
	args := []any{}
	if targetRole != models.TargetAll {
		sql += ` AND a.role = $1`
		args = append(args, targetRole)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing push tokens: %w", err)
	}
	defer rows.Close()

	tokens := make([]string, 0)
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("error scanning push token: %w", err)
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}

// Deactivate retires a token, e.g. on logout or Expo delivery failure.
func (r *PushTokenRepository) Deactivate(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE push_tokens
		SET is_active = false, updated_at = now()
		WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("error deactivating push token: %w", err)
	}
	return nil
}
