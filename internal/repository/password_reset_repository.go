package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hrms-saas-api/internal/models"
)

// PasswordResetRepository stores single-use reset tokens.
type PasswordResetRepository struct{}

// NewPasswordResetRepository constructs a PasswordResetRepository.
func NewPasswordResetRepository() *PasswordResetRepository {
	return &PasswordResetRepository{}
}

// Replace drops outstanding tokens for the user and stores reset.
func (r *PasswordResetRepository) Replace(ctx context.Context, q sqlx.ExtContext, reset *models.PasswordReset) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM password_resets WHERE user_id = $1`, reset.UserID); err != nil {
		return fmt.Errorf("delete previous password resets: %w", err)
	}
	if reset.ID == "" {
		reset.ID = uuid.NewString()
	}
	reset.CreatedAt = time.Now().UTC()

	const query = `INSERT INTO password_resets (id, tenant_id, user_id, email, token_hash, expires_at, created_at)
VALUES (:id, :tenant_id, :user_id, :email, :token_hash, :expires_at, :created_at)`
	if _, err := sqlx.NamedExecContext(ctx, q, query, reset); err != nil {
		return translate("insert password reset", err)
	}
	return nil
}

// Consume deletes and returns the unexpired token with hash. A token can be
// consumed once; later calls return sql.ErrNoRows.
func (r *PasswordResetRepository) Consume(ctx context.Context, q sqlx.ExtContext, hash string) (*models.PasswordReset, error) {
	const query = `DELETE FROM password_resets WHERE token_hash = $1 AND expires_at > NOW()
RETURNING id, tenant_id, user_id, email, token_hash, expires_at, created_at`
	var reset models.PasswordReset
	if err := sqlx.GetContext(ctx, q, &reset, query, hash); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("consume password reset: %w", err)
	}
	return &reset, nil
}

// PurgeExpired removes stale tokens.
func (r *PasswordResetRepository) PurgeExpired(ctx context.Context, q sqlx.ExtContext) (int64, error) {
	return execCount(ctx, q, "purge password resets", `DELETE FROM password_resets WHERE expires_at <= NOW()`)
}
