package models

import "time"

// Session is a persisted refresh-token session. Only the SHA-256 hash of the
// opaque token is stored.
type Session struct {
	ID               string     `db:"id" json:"id"`
	TenantID         *string    `db:"tenant_id" json:"tenant_id,omitempty"`
	UserID           string     `db:"user_id" json:"user_id"`
	RefreshTokenHash string     `db:"refresh_token_hash" json:"-"`
	ExpiresAt        time.Time  `db:"expires_at" json:"expires_at"`
	RememberMe       bool       `db:"remember_me" json:"remember_me"`
	IsRevoked        bool       `db:"is_revoked" json:"is_revoked"`
	RevokedAt        *time.Time `db:"revoked_at" json:"revoked_at,omitempty"`
	IPAddress        *string    `db:"ip_address" json:"ip_address,omitempty"`
	UserAgent        *string    `db:"user_agent" json:"user_agent,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// Usable reports whether the session can still mint tokens at now.
func (s *Session) Usable(now time.Time) bool {
	return s != nil && !s.IsRevoked && now.Before(s.ExpiresAt)
}

// SessionView is the client-facing listing entry.
type SessionView struct {
	ID        string    `db:"id" json:"id"`
	IPAddress *string   `db:"ip_address" json:"ip_address,omitempty"`
	UserAgent *string   `db:"user_agent" json:"user_agent,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	Current   bool      `db:"-" json:"current"`
}

// PasswordReset is a single-use reset token row.
type PasswordReset struct {
	ID        string    `db:"id"`
	TenantID  *string   `db:"tenant_id"`
	UserID    string    `db:"user_id"`
	Email     string    `db:"email"`
	TokenHash string    `db:"token_hash"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
