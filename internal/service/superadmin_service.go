package service

import (
	"context"
	"strconv"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
	"github.com/noah-isme/hrms-saas-api/pkg/export"
)

const recentLoginsLimit = 100

type platformStore interface {
	ListTenants(ctx context.Context, q sqlx.ExtContext) ([]models.TenantSummary, error)
	TenantUsers(ctx context.Context, q sqlx.ExtContext, tenantID string) ([]models.User, error)
	EmployeeCount(ctx context.Context, q sqlx.ExtContext, tenantID string) (int, error)
	Stats(ctx context.Context, q sqlx.ExtContext) (*models.PlatformStats, error)
	RecentLogins(ctx context.Context, q sqlx.ExtContext, limit int) ([]models.LoginActivity, error)
}

type tenantAdminStore interface {
	FindByID(ctx context.Context, q sqlx.ExtContext, id string) (*models.Tenant, error)
	SetActive(ctx context.Context, q sqlx.ExtContext, id string, active bool) error
}

// SuperAdminService exposes cross-tenant platform operations.
type SuperAdminService struct {
	scoper   Scoper
	platform platformStore
	tenants  tenantAdminStore
	audit    AuditStore
	cache    tenantCache
	metrics  *MetricsService
	exporter fileExporter
	logger   *zap.Logger
}

// NewSuperAdminService constructs a SuperAdminService.
func NewSuperAdminService(scoper Scoper, platform platformStore, tenants tenantAdminStore, audit AuditStore, cache tenantCache, metrics *MetricsService, exporter fileExporter, logger *zap.Logger) *SuperAdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if exporter == nil {
		exporter = export.NewExporter()
	}
	return &SuperAdminService{scoper: scoper, platform: platform, tenants: tenants, audit: audit, cache: cache, metrics: metrics, exporter: exporter, logger: logger}
}

func requireSuperAdmin(actor *models.Actor) error {
	if actor == nil || actor.Role != models.RoleSuperAdmin {
		return appErrors.Clone(appErrors.ErrForbidden, "super admin access required")
	}
	return nil
}

// ListTenants returns every tenant with usage counters.
func (s *SuperAdminService) ListTenants(ctx context.Context, actor *models.Actor) ([]models.TenantSummary, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}
	var tenants []models.TenantSummary
	err := s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		var err error
		tenants, err = s.platform.ListTenants(ctx, q)
		return err
	})
	if err != nil {
		return nil, mapStoreError(err, "", "")
	}
	return nonNil(tenants), nil
}

// GetTenant loads one tenant.
func (s *SuperAdminService) GetTenant(ctx context.Context, actor *models.Actor, id string) (*models.Tenant, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}
	var tenant *models.Tenant
	err := s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		var err error
		tenant, err = s.tenants.FindByID(ctx, q, id)
		return err
	})
	if err != nil {
		return nil, mapStoreError(err, "Tenant not found", "")
	}
	return tenant, nil
}

// SetTenantActive activates or deactivates a tenant. Deactivated tenants can
// no longer sign in.
func (s *SuperAdminService) SetTenantActive(ctx context.Context, actor *models.Actor, id string, active bool) (*models.Tenant, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}
	var tenant *models.Tenant
	err := s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		before, err := s.tenants.FindByID(ctx, q, id)
		if err != nil {
			return mapStoreError(err, "Tenant not found", "")
		}
		if err := s.tenants.SetActive(ctx, q, id, active); err != nil {
			return mapStoreError(err, "Tenant not found", "")
		}
		tenant = before
		tenant.IsActive = active
		return writeAudit(ctx, q, s.audit, actor, auditEvent{
			Action:     models.AuditActionTenantStatus,
			Resource:   "tenant",
			ResourceID: id,
			TenantID:   &id,
			Old:        map[string]interface{}{"is_active": before.IsActive},
			New:        map[string]interface{}{"is_active": active},
		})
	})
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.InvalidateTenant(ctx, id)
	}
	s.logger.Info("tenant status changed", zap.String("tenant_id", id), zap.Bool("active", active))
	return tenant, nil
}

// TenantUsers lists the accounts of a tenant.
func (s *SuperAdminService) TenantUsers(ctx context.Context, actor *models.Actor, tenantID string) ([]models.User, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}
	var users []models.User
	err := s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		if _, err := s.tenants.FindByID(ctx, q, tenantID); err != nil {
			return err
		}
		var err error
		users, err = s.platform.TenantUsers(ctx, q, tenantID)
		return err
	})
	if err != nil {
		return nil, mapStoreError(err, "Tenant not found", "")
	}
	return nonNil(users), nil
}

// EmployeeCount counts the employees of a tenant.
func (s *SuperAdminService) EmployeeCount(ctx context.Context, actor *models.Actor, tenantID string) (int, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return 0, err
	}
	var count int
	err := s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		if _, err := s.tenants.FindByID(ctx, q, tenantID); err != nil {
			return err
		}
		var err error
		count, err = s.platform.EmployeeCount(ctx, q, tenantID)
		return err
	})
	if err != nil {
		return 0, mapStoreError(err, "Tenant not found", "")
	}
	return count, nil
}

// Stats aggregates platform counters with a process metrics snapshot.
func (s *SuperAdminService) Stats(ctx context.Context, actor *models.Actor) (*models.PlatformStats, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}
	var stats *models.PlatformStats
	err := s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		var err error
		stats, err = s.platform.Stats(ctx, q)
		return err
	})
	if err != nil {
		return nil, mapStoreError(err, "", "")
	}
	if s.metrics != nil {
		snapshot := s.metrics.Snapshot()
		stats.System = &snapshot
	}
	return stats, nil
}

// RecentLogins lists the newest sessions across all tenants.
func (s *SuperAdminService) RecentLogins(ctx context.Context, actor *models.Actor) ([]models.LoginActivity, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}
	var rows []models.LoginActivity
	err := s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		var err error
		rows, err = s.platform.RecentLogins(ctx, q, recentLoginsLimit)
		return err
	})
	if err != nil {
		return nil, mapStoreError(err, "", "")
	}
	return nonNil(rows), nil
}

// ExportTenants renders the tenant listing.
func (s *SuperAdminService) ExportTenants(ctx context.Context, actor *models.Actor, rawFormat string) (*export.File, error) {
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv, pdf or xlsx")
	}
	tenants, err := s.ListTenants(ctx, actor)
	if err != nil {
		return nil, err
	}
	table := export.Table{
		Title:   "Tenants",
		Headers: []string{"Name", "Email", "Active", "Users", "Employees", "Plan", "Created"},
	}
	for _, t := range tenants {
		table.Rows = append(table.Rows, []string{
			t.Name,
			t.Email,
			strconv.FormatBool(t.IsActive),
			strconv.Itoa(t.UserCount),
			strconv.Itoa(t.EmployeeCount),
			export.Cell(t.PlanName),
			t.CreatedAt.Format("2006-01-02"),
		})
	}
	file, err := s.exporter.Export(format, "tenants", table)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to render export")
	}
	return file, nil
}
