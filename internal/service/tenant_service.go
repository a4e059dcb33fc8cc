package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	"github.com/noah-isme/hrms-saas-api/internal/validation"
	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
	"github.com/noah-isme/hrms-saas-api/pkg/security"
)

const defaultTrialDays = 14

type tenantStore interface {
	FindConflict(ctx context.Context, q sqlx.ExtContext, domain *string, email string, phone *string) (string, error)
	Create(ctx context.Context, q sqlx.ExtContext, tenant *models.Tenant) error
	FindByID(ctx context.Context, q sqlx.ExtContext, id string) (*models.Tenant, error)
	SetActive(ctx context.Context, q sqlx.ExtContext, id string, active bool) error
}

type userCreator interface {
	Create(ctx context.Context, q sqlx.ExtContext, user *models.User) error
}

type employeeCreator interface {
	Create(ctx context.Context, q sqlx.ExtContext, employee *models.Employee) error
}

type trialStore interface {
	FindTrialPlan(ctx context.Context, q sqlx.ExtContext) (*models.SubscriptionPlan, error)
	CreateSubscription(ctx context.Context, q sqlx.ExtContext, sub *models.TenantSubscription) error
}

type tenantNotifier interface {
	TenantWelcome(tenant *models.Tenant, adminEmail, tempPassword string, trialEndsAt *time.Time)
}

// TenantService handles self-service tenant signup.
type TenantService struct {
	scoper    Scoper
	tenants   tenantStore
	users     userCreator
	employees employeeCreator
	plans     trialStore
	audit     AuditStore
	notifier  tenantNotifier
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewTenantService constructs a TenantService.
func NewTenantService(scoper Scoper, tenants tenantStore, users userCreator, employees employeeCreator, plans trialStore, audit AuditStore, notifier tenantNotifier, validate *validator.Validate, logger *zap.Logger) *TenantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validation.New()
	}
	return &TenantService{
		scoper:    scoper,
		tenants:   tenants,
		users:     users,
		employees: employees,
		plans:     plans,
		audit:     audit,
		notifier:  notifier,
		validator: validate,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Register creates a tenant, its first ADMIN account and, when a trial plan
// exists, a trial subscription. Everything commits together.
func (s *TenantService) Register(ctx context.Context, req models.RegisterTenantRequest) (*models.RegisterTenantResult, error) {
	if err := validation.Struct(s.validator, req, "invalid tenant registration payload"); err != nil {
		return nil, err
	}
	req.Email = strings.TrimSpace(req.Email)

	tempPassword, err := security.TemporaryPassword()
	if err != nil {
		return nil, appErrors.Internal(err, "failed to generate password")
	}
	passwordHash, err := security.HashPassword(tempPassword)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to hash password")
	}

	system := models.SystemActor()
	system.IP, system.UserAgent = req.IP, req.UserAgent

	result := &models.RegisterTenantResult{}
	err = s.scoper.WithScope(ctx, system, func(q sqlx.ExtContext) error {
		field, err := s.tenants.FindConflict(ctx, q, req.Domain, req.Email, req.Phone)
		if err != nil {
			return appErrors.Internal(err, "failed to check tenant")
		}
		if field != "" {
			return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("Tenant with this %s already exists", field))
		}

		tenant := &models.Tenant{
			Name:     strings.TrimSpace(req.Name),
			Domain:   req.Domain,
			Email:    req.Email,
			Phone:    req.Phone,
			Address:  req.Address,
			City:     req.City,
			State:    req.State,
			Country:  req.Country,
			ZipCode:  req.ZipCode,
			IsActive: true,
		}
		if err := s.tenants.Create(ctx, q, tenant); err != nil {
			return mapStoreError(err, "", "Tenant already exists")
		}

		admin := &models.User{
			TenantID:           &tenant.ID,
			Email:              req.Email,
			PasswordHash:       passwordHash,
			Role:               models.RoleAdmin,
			IsActive:           true,
			MustChangePassword: true,
		}
		if err := s.users.Create(ctx, q, admin); err != nil {
			return mapStoreError(err, "", "User with this email already exists")
		}
		employee := &models.Employee{TenantID: tenant.ID, UserID: admin.ID, FirstName: "Administrator", CreatedBy: &admin.ID}
		if err := s.employees.Create(ctx, q, employee); err != nil {
			return mapStoreError(err, "", "Employee profile already exists")
		}

		sub, err := s.startTrial(ctx, q, tenant.ID)
		if err != nil {
			return err
		}

		result.Tenant = *tenant
		result.Subscription = sub
		result.AdminUser = models.UserInfo{
			ID:                 admin.ID,
			Email:              admin.Email,
			Role:               admin.Role,
			TenantID:           admin.TenantID,
			EmployeeID:         &employee.ID,
			FirstName:          &employee.FirstName,
			MustChangePassword: true,
		}
		return writeAudit(ctx, q, s.audit, system, auditEvent{
			Action:     models.AuditActionTenantRegister,
			Resource:   "tenant",
			ResourceID: tenant.ID,
			TenantID:   &tenant.ID,
			New:        map[string]interface{}{"name": tenant.Name, "email": tenant.Email, "admin_user_id": admin.ID},
		})
	})
	if err != nil {
		return nil, err
	}

	var trialEnds *time.Time
	if result.Subscription != nil {
		trialEnds = result.Subscription.EndDate
	}
	if s.notifier != nil {
		s.notifier.TenantWelcome(&result.Tenant, result.AdminUser.Email, tempPassword, trialEnds)
	}
	s.logger.Info("tenant registered", zap.String("tenant_id", result.Tenant.ID), zap.Bool("trial", result.Subscription != nil))
	return result, nil
}

func (s *TenantService) startTrial(ctx context.Context, q sqlx.ExtContext, tenantID string) (*models.TenantSubscription, error) {
	if s.plans == nil {
		return nil, nil
	}
	plan, err := s.plans.FindTrialPlan(ctx, q)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, appErrors.Internal(err, "failed to load trial plan")
	}
	days := defaultTrialDays
	if plan.TrialDurationDays != nil && *plan.TrialDurationDays > 0 {
		days = *plan.TrialDurationDays
	}
	start := s.now().Truncate(24 * time.Hour)
	end := start.AddDate(0, 0, days)
	sub := &models.TenantSubscription{
		TenantID:  tenantID,
		PlanID:    plan.ID,
		PlanName:  &plan.Name,
		StartDate: start,
		EndDate:   &end,
		Status:    models.SubscriptionTrial,
	}
	if err := s.plans.CreateSubscription(ctx, q, sub); err != nil {
		return nil, mapStoreError(err, "", "Tenant already has a subscription")
	}
	return sub, nil
}
