package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	"github.com/noah-isme/hrms-saas-api/internal/validation"
	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
	"github.com/noah-isme/hrms-saas-api/pkg/security"
)

type globalUserCreator interface {
	Create(ctx context.Context, q sqlx.ExtContext, user *models.User) error
}

type resetPurger interface {
	PurgeExpired(ctx context.Context, q sqlx.ExtContext) (int64, error)
}

// MaintenanceService backs operator commands that run outside any request.
// Everything executes as the SYSTEM actor.
type MaintenanceService struct {
	scoper    Scoper
	users     globalUserCreator
	resets    resetPurger
	audit     AuditStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMaintenanceService constructs a MaintenanceService.
func NewMaintenanceService(scoper Scoper, users globalUserCreator, resets resetPurger, audit AuditStore, logger *zap.Logger) *MaintenanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MaintenanceService{scoper: scoper, users: users, resets: resets, audit: audit, validator: validation.New(), logger: logger}
}

// CreateSuperAdmin provisions a platform-wide SUPER_ADMIN account.
func (s *MaintenanceService) CreateSuperAdmin(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.validator.Var(email, "required,email"); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "a valid email is required")
	}
	if !validation.StrongPassword(password) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "password must be at least 8 characters and include upper case, lower case, digit and special characters")
	}
	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to hash password")
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleSuperAdmin,
		IsActive:     true,
	}
	system := models.SystemActor()
	err = s.scoper.WithScope(ctx, system, func(q sqlx.ExtContext) error {
		if err := s.users.Create(ctx, q, user); err != nil {
			return mapStoreError(err, "", "a super admin with this email already exists")
		}
		return writeAudit(ctx, q, s.audit, system, auditEvent{
			Action:     models.AuditActionUserCreate,
			Resource:   "user",
			ResourceID: user.ID,
			New:        map[string]interface{}{"email": email, "role": models.RoleSuperAdmin},
		})
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("super admin created", zap.String("user_id", user.ID))
	return user, nil
}

// PurgeExpiredResets deletes password reset tokens that can no longer be used.
func (s *MaintenanceService) PurgeExpiredResets(ctx context.Context) (int64, error) {
	var purged int64
	err := s.scoper.WithScope(ctx, models.SystemActor(), func(q sqlx.ExtContext) error {
		var err error
		purged, err = s.resets.PurgeExpired(ctx, q)
		return err
	})
	if err != nil {
		return 0, mapStoreError(err, "", "")
	}
	return purged, nil
}
