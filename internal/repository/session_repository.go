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

// SessionRepository persists refresh-token sessions.
type SessionRepository struct{}

// NewSessionRepository constructs a SessionRepository.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

// Create stores a new session.
func (r *SessionRepository) Create(ctx context.Context, q sqlx.ExtContext, session *models.Session) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	const query = `INSERT INTO user_sessions (id, tenant_id, user_id, refresh_token_hash, expires_at, remember_me, is_revoked, ip_address, user_agent, created_at, updated_at)
VALUES (:id, :tenant_id, :user_id, :refresh_token_hash, :expires_at, :remember_me, :is_revoked, :ip_address, :user_agent, :created_at, :updated_at)`
	if _, err := sqlx.NamedExecContext(ctx, q, query, session); err != nil {
		return translate("insert session", err)
	}
	return nil
}

// FindByHash loads the session owning a refresh token hash.
func (r *SessionRepository) FindByHash(ctx context.Context, q sqlx.ExtContext, hash string) (*models.Session, error) {
	const query = `SELECT id, tenant_id, user_id, refresh_token_hash, expires_at, remember_me, is_revoked, revoked_at, ip_address, user_agent, created_at, updated_at
FROM user_sessions WHERE refresh_token_hash = $1`
	var session models.Session
	if err := sqlx.GetContext(ctx, q, &session, query, hash); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &session, nil
}

// Rotate swaps the refresh token hash only while oldHash is still current and
// the session is live. It reports false when another request rotated first.
func (r *SessionRepository) Rotate(ctx context.Context, q sqlx.ExtContext, id, oldHash, newHash string, expiresAt time.Time, ip, userAgent *string) (bool, error) {
	const query = `UPDATE user_sessions
SET refresh_token_hash = $3, expires_at = $4, ip_address = COALESCE($5, ip_address), user_agent = COALESCE($6, user_agent), updated_at = NOW()
WHERE id = $1 AND refresh_token_hash = $2 AND NOT is_revoked AND expires_at > NOW()`
	n, err := execCount(ctx, q, "rotate session", query, id, oldHash, newHash, expiresAt, ip, userAgent)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// RevokeByHash revokes the session owning hash. Revoking twice is a no-op.
func (r *SessionRepository) RevokeByHash(ctx context.Context, q sqlx.ExtContext, hash string) (int64, error) {
	const query = `UPDATE user_sessions SET is_revoked = TRUE, revoked_at = NOW(), updated_at = NOW()
WHERE refresh_token_hash = $1 AND NOT is_revoked`
	return execCount(ctx, q, "revoke session", query, hash)
}

// RevokeAllForUser revokes every live session of userID except exceptID.
func (r *SessionRepository) RevokeAllForUser(ctx context.Context, q sqlx.ExtContext, userID, exceptID string) (int64, error) {
	const query = `UPDATE user_sessions SET is_revoked = TRUE, revoked_at = NOW(), updated_at = NOW()
WHERE user_id = $1 AND NOT is_revoked AND ($2 = '' OR id::text <> $2)`
	return execCount(ctx, q, "revoke user sessions", query, userID, exceptID)
}

// ListActive returns the user's sessions that can still refresh.
func (r *SessionRepository) ListActive(ctx context.Context, q sqlx.ExtContext, userID string) ([]models.SessionView, error) {
	const query = `SELECT id, ip_address, user_agent, created_at, expires_at FROM user_sessions
WHERE user_id = $1 AND NOT is_revoked AND expires_at > NOW() ORDER BY created_at DESC`
	var sessions []models.SessionView
	if err := sqlx.SelectContext(ctx, q, &sessions, query, userID); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}
