package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	"github.com/noah-isme/hrms-saas-api/internal/validation"
	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
	"github.com/noah-isme/hrms-saas-api/pkg/security"
)

// dummyHash keeps unknown-email logins as slow as wrong-password ones.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoO5HZ5bGDV5UjQ5E0k8lq0Rk3b7Sx6JbK"

type authUserStore interface {
	FindAuthByEmail(ctx context.Context, q sqlx.ExtContext, email string) ([]models.AuthUser, error)
	FindAuthByID(ctx context.Context, q sqlx.ExtContext, id string) (*models.AuthUser, error)
	FindDetail(ctx context.Context, q sqlx.ExtContext, id string) (*models.UserDetail, error)
	UpdatePassword(ctx context.Context, q sqlx.ExtContext, id, passwordHash string, mustChange bool) error
	UpdateLastLogin(ctx context.Context, q sqlx.ExtContext, id string, ts time.Time) error
}

type sessionStore interface {
	Create(ctx context.Context, q sqlx.ExtContext, session *models.Session) error
	FindByHash(ctx context.Context, q sqlx.ExtContext, hash string) (*models.Session, error)
	Rotate(ctx context.Context, q sqlx.ExtContext, id, oldHash, newHash string, expiresAt time.Time, ip, userAgent *string) (bool, error)
	RevokeByHash(ctx context.Context, q sqlx.ExtContext, hash string) (int64, error)
	RevokeAllForUser(ctx context.Context, q sqlx.ExtContext, userID, exceptID string) (int64, error)
	ListActive(ctx context.Context, q sqlx.ExtContext, userID string) ([]models.SessionView, error)
}

type passwordResetStore interface {
	Replace(ctx context.Context, q sqlx.ExtContext, reset *models.PasswordReset) error
	Consume(ctx context.Context, q sqlx.ExtContext, hash string) (*models.PasswordReset, error)
}

type resetNotifier interface {
	PasswordReset(email, token string)
}

// AuthConfig defines configuration for authentication flows.
type AuthConfig struct {
	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	RememberMeExpiry   time.Duration
	ResetTokenExpiry   time.Duration
	Issuer             string
}

// AuthService provides authentication use cases.
type AuthService struct {
	scoper    Scoper
	users     authUserStore
	sessions  sessionStore
	resets    passwordResetStore
	audit     AuditStore
	notifier  resetNotifier
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
	now       func() time.Time
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(scoper Scoper, users authUserStore, sessions sessionStore, resets passwordResetStore, audit AuditStore, notifier resetNotifier, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validation.New()
	}
	if config.AccessTokenExpiry <= 0 {
		config.AccessTokenExpiry = 15 * time.Minute
	}
	if config.RefreshTokenExpiry <= 0 {
		config.RefreshTokenExpiry = 7 * 24 * time.Hour
	}
	if config.RememberMeExpiry <= 0 {
		config.RememberMeExpiry = 30 * 24 * time.Hour
	}
	if config.ResetTokenExpiry <= 0 {
		config.ResetTokenExpiry = 15 * time.Minute
	}
	return &AuthService{
		scoper:    scoper,
		users:     users,
		sessions:  sessions,
		resets:    resets,
		audit:     audit,
		notifier:  notifier,
		validator: validate,
		logger:    logger,
		config:    config,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Login authenticates a user and returns issued tokens.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := validation.Struct(s.validator, req, "invalid login payload"); err != nil {
		return nil, err
	}

	var (
		user    *models.AuthUser
		session *models.Session
		refresh string
	)
	err := s.scoper.WithScope(ctx, models.SystemActor(), func(q sqlx.ExtContext) error {
		candidates, err := s.users.FindAuthByEmail(ctx, q, req.Email)
		if err != nil {
			return appErrors.Internal(err, "failed to fetch user")
		}
		user, err = pickLoginCandidate(candidates, req)
		if err != nil {
			return err
		}
		if !user.IsActive {
			return appErrors.Clone(appErrors.ErrInactiveAccount, "Account is inactive")
		}
		if user.TenantActive != nil && !*user.TenantActive {
			return appErrors.Clone(appErrors.ErrTenantInactive, "Tenant is inactive")
		}

		ttl := s.config.RefreshTokenExpiry
		if req.RememberMe {
			ttl = s.config.RememberMeExpiry
		}
		refresh, err = security.NewOpaqueToken(security.RefreshTokenBytes)
		if err != nil {
			return appErrors.Internal(err, "failed to issue token")
		}
		now := s.now()
		session = &models.Session{
			TenantID:         user.TenantID,
			UserID:           user.ID,
			RefreshTokenHash: security.HashToken(refresh),
			ExpiresAt:        now.Add(ttl),
			RememberMe:       req.RememberMe,
			IPAddress:        optional(req.IP),
			UserAgent:        optional(req.UserAgent),
		}
		if err := s.sessions.Create(ctx, q, session); err != nil {
			return appErrors.Internal(err, "failed to persist session")
		}
		if err := s.users.UpdateLastLogin(ctx, q, user.ID, now); err != nil {
			return appErrors.Internal(err, "failed to update last login")
		}
		actor := &models.Actor{UserID: user.ID, TenantID: user.TenantID, IP: req.IP, UserAgent: req.UserAgent}
		return writeAudit(ctx, q, s.audit, actor, auditEvent{
			Action:     models.AuditActionLogin,
			Resource:   "session",
			ResourceID: session.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	access, expiresAt, err := s.generateAccessToken(user, session.ID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to issue token")
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID), zap.String("tenant_id", derefString(user.TenantID)))
	return &models.LoginResponse{
		TokenPair: s.tokenPair(access, expiresAt, refresh, session.ExpiresAt),
		User:      userInfo(user),
	}, nil
}

// pickLoginCandidate narrows the accounts sharing an email to the one being
// signed into. The password is always checked so status is never revealed to
// a caller without valid credentials.
func pickLoginCandidate(candidates []models.AuthUser, req models.LoginRequest) (*models.AuthUser, error) {
	invalid := appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid credentials")

	if domain := strings.TrimSpace(req.TenantDomain); domain != "" {
		filtered := candidates[:0:0]
		for _, c := range candidates {
			if c.TenantDomain != nil && strings.EqualFold(*c.TenantDomain, domain) {
				filtered = append(filtered, c)
			}
		}
		candidates = filtered
	}

	if len(candidates) == 0 {
		security.CheckPassword(dummyHash, req.Password)
		return nil, invalid
	}

	var matched []*models.AuthUser
	for i := range candidates {
		if security.CheckPassword(candidates[i].PasswordHash, req.Password) {
			matched = append(matched, &candidates[i])
		}
	}
	switch len(matched) {
	case 0:
		return nil, invalid
	case 1:
		return matched[0], nil
	default:
		return nil, appErrors.WithDetails(
			appErrors.Clone(appErrors.ErrValidation, "multiple accounts use this email, provide tenant_domain"),
			[]validation.FieldError{{Field: "tenant_domain", Rule: "required", Message: "tenant_domain is required for this account"}},
		)
	}
}

// Refresh rotates the session owning the presented refresh token.
func (s *AuthService) Refresh(ctx context.Context, req models.RefreshTokenRequest) (*models.TokenPair, error) {
	if err := validation.Struct(s.validator, req, "invalid refresh payload"); err != nil {
		return nil, err
	}

	invalid := appErrors.Clone(appErrors.ErrUnauthorized, "Invalid or expired refresh token")
	oldHash := security.HashToken(req.RefreshToken)

	var (
		user    *models.AuthUser
		session *models.Session
		refresh string
		expires time.Time
	)
	err := s.scoper.WithScope(ctx, models.SystemActor(), func(q sqlx.ExtContext) error {
		var err error
		session, err = s.sessions.FindByHash(ctx, q, oldHash)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return invalid
			}
			return appErrors.Internal(err, "failed to load session")
		}
		now := s.now()
		if !session.Usable(now) {
			return invalid
		}

		user, err = s.users.FindAuthByID(ctx, q, session.UserID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return invalid
			}
			return appErrors.Internal(err, "failed to load user")
		}
		if !user.IsActive {
			return appErrors.Clone(appErrors.ErrInactiveAccount, "Account is inactive")
		}
		if user.TenantActive != nil && !*user.TenantActive {
			return appErrors.Clone(appErrors.ErrTenantInactive, "Tenant is inactive")
		}

		refresh, err = security.NewOpaqueToken(security.RefreshTokenBytes)
		if err != nil {
			return appErrors.Internal(err, "failed to issue token")
		}
		expires = now.Add(s.sessionLifetime(session))
		rotated, err := s.sessions.Rotate(ctx, q, session.ID, oldHash, security.HashToken(refresh), expires, optional(req.IP), optional(req.UserAgent))
		if err != nil {
			return appErrors.Internal(err, "failed to rotate session")
		}
		if !rotated {
			s.logger.Warn("refresh token replay detected", zap.String("session_id", session.ID), zap.String("user_id", session.UserID))
			return invalid
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	access, accessExpires, err := s.generateAccessToken(user, session.ID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to issue token")
	}
	pair := s.tokenPair(access, accessExpires, refresh, expires)
	return &pair, nil
}

// sessionLifetime keeps remember-me sessions on the longer window across rotations.
func (s *AuthService) sessionLifetime(session *models.Session) time.Duration {
	if session.RememberMe {
		return s.config.RememberMeExpiry
	}
	return s.config.RefreshTokenExpiry
}

// Logout revokes the session owning the refresh token. Unknown or already
// revoked tokens succeed silently.
func (s *AuthService) Logout(ctx context.Context, req models.LogoutRequest) error {
	if err := validation.Struct(s.validator, req, "invalid logout payload"); err != nil {
		return err
	}
	hash := security.HashToken(req.RefreshToken)
	return s.scoper.WithScope(ctx, models.SystemActor(), func(q sqlx.ExtContext) error {
		session, err := s.sessions.FindByHash(ctx, q, hash)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return appErrors.Internal(err, "failed to load session")
		}
		n, err := s.sessions.RevokeByHash(ctx, q, hash)
		if err != nil {
			return appErrors.Internal(err, "failed to revoke session")
		}
		if n == 0 {
			return nil
		}
		actor := &models.Actor{UserID: session.UserID, TenantID: session.TenantID}
		return writeAudit(ctx, q, s.audit, actor, auditEvent{Action: models.AuditActionLogout, Resource: "session", ResourceID: session.ID})
	})
}

// LogoutAll revokes every session of the actor except the one it is using.
func (s *AuthService) LogoutAll(ctx context.Context, actor *models.Actor) (int64, error) {
	var revoked int64
	err := s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		var err error
		revoked, err = s.sessions.RevokeAllForUser(ctx, q, actor.UserID, actor.SessionID)
		if err != nil {
			return appErrors.Internal(err, "failed to revoke sessions")
		}
		return writeAudit(ctx, q, s.audit, actor, auditEvent{
			Action:   models.AuditActionLogoutAll,
			Resource: "session",
			New:      map[string]interface{}{"revoked": revoked},
		})
	})
	return revoked, err
}

// Sessions lists the actor's live sessions, flagging the current one.
func (s *AuthService) Sessions(ctx context.Context, actor *models.Actor) ([]models.SessionView, error) {
	var sessions []models.SessionView
	err := s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		var err error
		sessions, err = s.sessions.ListActive(ctx, q, actor.UserID)
		if err != nil {
			return appErrors.Internal(err, "failed to list sessions")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		sessions[i].Current = sessions[i].ID == actor.SessionID
	}
	return sessions, nil
}

// ForgotPassword issues a reset token for every active account using the
// email. The caller always answers 200 so account existence is not revealed.
func (s *AuthService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	if err := validation.Struct(s.validator, req, "invalid forgot password payload"); err != nil {
		return err
	}

	type issued struct{ email, token string }
	var tokens []issued
	err := s.scoper.WithScope(ctx, models.SystemActor(), func(q sqlx.ExtContext) error {
		candidates, err := s.users.FindAuthByEmail(ctx, q, req.Email)
		if err != nil {
			return appErrors.Internal(err, "failed to fetch user")
		}
		for _, user := range candidates {
			if !user.IsActive || (user.TenantActive != nil && !*user.TenantActive) {
				continue
			}
			token, err := security.NewOpaqueToken(security.ResetTokenBytes)
			if err != nil {
				return appErrors.Internal(err, "failed to issue reset token")
			}
			reset := &models.PasswordReset{
				TenantID:  user.TenantID,
				UserID:    user.ID,
				Email:     user.Email,
				TokenHash: security.HashToken(token),
				ExpiresAt: s.now().Add(s.config.ResetTokenExpiry),
			}
			if err := s.resets.Replace(ctx, q, reset); err != nil {
				return appErrors.Internal(err, "failed to store reset token")
			}
			tokens = append(tokens, issued{email: user.Email, token: token})
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, t := range tokens {
		if s.notifier != nil {
			s.notifier.PasswordReset(t.email, t.token)
		}
	}
	if len(tokens) == 0 {
		s.logger.Info("password reset requested for unknown or inactive email")
	}
	return nil
}

// ResetPassword redeems a reset token exactly once.
func (s *AuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if err := validation.Struct(s.validator, req, "invalid reset password payload"); err != nil {
		return err
	}
	hash, err := security.HashPassword(req.NewPassword)
	if err != nil {
		return appErrors.Internal(err, "failed to hash password")
	}

	return s.scoper.WithScope(ctx, models.SystemActor(), func(q sqlx.ExtContext) error {
		reset, err := s.resets.Consume(ctx, q, security.HashToken(req.Token))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return appErrors.Clone(appErrors.ErrInvalidResetToken, "")
			}
			return appErrors.Internal(err, "failed to redeem reset token")
		}
		if err := s.users.UpdatePassword(ctx, q, reset.UserID, hash, false); err != nil {
			return mapStoreError(err, "user not found", "")
		}
		if _, err := s.sessions.RevokeAllForUser(ctx, q, reset.UserID, ""); err != nil {
			return appErrors.Internal(err, "failed to revoke sessions")
		}
		actor := &models.Actor{UserID: reset.UserID, TenantID: reset.TenantID}
		return writeAudit(ctx, q, s.audit, actor, auditEvent{Action: models.AuditActionPasswordReset, Resource: "user", ResourceID: reset.UserID})
	})
}

// ChangePassword replaces the actor's password and signs out its other sessions.
func (s *AuthService) ChangePassword(ctx context.Context, actor *models.Actor, req models.ChangePasswordRequest) error {
	if err := validation.Struct(s.validator, req, "invalid change password payload"); err != nil {
		return err
	}
	hash, err := security.HashPassword(req.NewPassword)
	if err != nil {
		return appErrors.Internal(err, "failed to hash password")
	}

	return s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		user, err := s.users.FindAuthByID(ctx, q, actor.UserID)
		if err != nil {
			return mapStoreError(err, "user not found", "")
		}
		if !security.CheckPassword(user.PasswordHash, req.CurrentPassword) {
			return appErrors.WithDetails(
				appErrors.Clone(appErrors.ErrValidation, "Current password is incorrect"),
				[]validation.FieldError{{Field: "current_password", Rule: "match", Message: "current password is incorrect"}},
			)
		}
		if err := s.users.UpdatePassword(ctx, q, actor.UserID, hash, false); err != nil {
			return mapStoreError(err, "user not found", "")
		}
		if _, err := s.sessions.RevokeAllForUser(ctx, q, actor.UserID, actor.SessionID); err != nil {
			return appErrors.Internal(err, "failed to revoke sessions")
		}
		return writeAudit(ctx, q, s.audit, actor, auditEvent{Action: models.AuditActionPasswordChange, Resource: "user", ResourceID: actor.UserID})
	})
}

// Me returns the actor's account joined with its employee profile.
func (s *AuthService) Me(ctx context.Context, actor *models.Actor) (*models.MeResponse, error) {
	var detail *models.UserDetail
	err := s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		var err error
		detail, err = s.users.FindDetail(ctx, q, actor.UserID)
		return mapStoreError(err, "user not found", "")
	})
	if err != nil {
		return nil, err
	}
	return &models.MeResponse{UserDetail: *detail, MustChangePassword: actor.MustChangePassword}, nil
}

// ValidateToken parses and validates an access token returning the claims.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.Issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.AccessTokenSecret), nil
	}, opts...)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}
	if !claims.Role.Valid() || claims.Role == models.RoleSystem || claims.UserID == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}
	return claims, nil
}

// ResolveActor turns verified claims into the request actor using the
// current state of the account, so role changes and deactivation apply
// before the token expires.
func (s *AuthService) ResolveActor(ctx context.Context, claims *models.JWTClaims) (*models.Actor, error) {
	var user *models.AuthUser
	err := s.scoper.WithScope(ctx, models.SystemActor(), func(q sqlx.ExtContext) error {
		var err error
		user, err = s.users.FindAuthByID(ctx, q, claims.UserID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return appErrors.Clone(appErrors.ErrUnauthorized, "user no longer exists")
			}
			return appErrors.Internal(err, "failed to resolve user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, appErrors.Clone(appErrors.ErrInactiveAccount, "Account is inactive")
	}
	if user.TenantActive != nil && !*user.TenantActive {
		return nil, appErrors.Clone(appErrors.ErrTenantInactive, "Tenant is inactive")
	}
	return &models.Actor{
		UserID:             user.ID,
		TenantID:           user.TenantID,
		EmployeeID:         user.EmployeeID,
		Role:               user.Role,
		Email:              user.Email,
		SessionID:          claims.SessionID,
		MustChangePassword: user.MustChangePassword,
	}, nil
}

func (s *AuthService) generateAccessToken(user *models.AuthUser, sessionID string) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.config.AccessTokenExpiry)
	claims := &models.JWTClaims{
		UserID:     user.ID,
		TenantID:   user.TenantID,
		EmployeeID: user.EmployeeID,
		Role:       user.Role,
		SessionID:  sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.AccessTokenSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *AuthService) tokenPair(access string, accessExpires time.Time, refresh string, refreshExpires time.Time) models.TokenPair {
	return models.TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		TokenType:        "Bearer",
		ExpiresIn:        int64(accessExpires.Sub(s.now()).Seconds()),
		RefreshExpiresAt: refreshExpires,
	}
}

func userInfo(user *models.AuthUser) models.UserInfo {
	return models.UserInfo{
		ID:                 user.ID,
		Email:              user.Email,
		Role:               user.Role,
		TenantID:           user.TenantID,
		EmployeeID:         user.EmployeeID,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		MustChangePassword: user.MustChangePassword,
	}
}
