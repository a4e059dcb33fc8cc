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

const (
	lastLoginsLimit      = 20
	recentEmployeesLimit = 15
	defaultAuditLimit    = 50
	maxAuditLimit        = 200
)

type analyticsStore interface {
	Summary(ctx context.Context, q sqlx.ExtContext, tenantID string) (*models.AdminSummary, error)
	LastLogins(ctx context.Context, q sqlx.ExtContext, tenantID string, limit int) ([]models.LastLogin, error)
	RecentEmployees(ctx context.Context, q sqlx.ExtContext, tenantID string, limit int) ([]models.RecentEmployee, error)
	RoleCounts(ctx context.Context, q sqlx.ExtContext, tenantID string) ([]models.LabelCount, error)
	DepartmentCounts(ctx context.Context, q sqlx.ExtContext, tenantID string) ([]models.LabelCount, error)
	DesignationCounts(ctx context.Context, q sqlx.ExtContext, tenantID string) ([]models.LabelCount, error)
	ManagerReports(ctx context.Context, q sqlx.ExtContext, tenantID string) ([]models.ManagerReport, error)
	EmployeeStatus(ctx context.Context, q sqlx.ExtContext, tenantID string) (*models.EmployeeStatus, error)
	Directory(ctx context.Context, q sqlx.ExtContext, tenantID string) ([]models.DirectoryEntry, error)
}

type auditReader interface {
	ListRecent(ctx context.Context, q sqlx.ExtContext, tenantID string, limit int) ([]models.AuditLog, error)
}

type fileExporter interface {
	Export(format export.Format, base string, table export.Table) (*export.File, error)
}

// AdminService serves the tenant admin dashboard. Aggregates are cached per
// tenant and every read runs inside the actor's scope.
type AdminService struct {
	scoper    Scoper
	analytics analyticsStore
	audit     auditReader
	tenants   tenantFinder
	cache     *CacheService
	exporter  fileExporter
	logger    *zap.Logger
}

// NewAdminService constructs an AdminService.
func NewAdminService(scoper Scoper, analytics analyticsStore, audit auditReader, tenants tenantFinder, cache *CacheService, exporter fileExporter, logger *zap.Logger) *AdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if exporter == nil {
		exporter = export.NewExporter()
	}
	return &AdminService{scoper: scoper, analytics: analytics, audit: audit, tenants: tenants, cache: cache, exporter: exporter, logger: logger}
}

// cachedRead loads a tenant aggregate through the cache. The flag reports a hit.
func cachedRead[T any](ctx context.Context, s *AdminService, actor *models.Actor, name string, load func(q sqlx.ExtContext, tenantID string) (T, error)) (T, bool, error) {
	var out T
	tenantID, err := requireTenant(actor)
	if err != nil {
		return out, false, err
	}
	hit, err := s.cache.Remember(ctx, TenantKey(tenantID, name), &out, func() error {
		return s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
			var err error
			out, err = load(q, tenantID)
			return err
		})
	})
	if err != nil {
		return out, false, mapStoreError(err, "", "")
	}
	return out, hit, nil
}

func scopedRead[T any](ctx context.Context, s *AdminService, actor *models.Actor, load func(q sqlx.ExtContext, tenantID string) (T, error)) (T, error) {
	var out T
	tenantID, err := requireTenant(actor)
	if err != nil {
		return out, err
	}
	err = s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		var err error
		out, err = load(q, tenantID)
		return err
	})
	if err != nil {
		return out, mapStoreError(err, "", "")
	}
	return out, nil
}

// Summary returns the headline counters.
func (s *AdminService) Summary(ctx context.Context, actor *models.Actor) (*models.AdminSummary, bool, error) {
	return cachedRead(ctx, s, actor, "summary", func(q sqlx.ExtContext, tenantID string) (*models.AdminSummary, error) {
		return s.analytics.Summary(ctx, q, tenantID)
	})
}

// RoleCounts groups accounts by role.
func (s *AdminService) RoleCounts(ctx context.Context, actor *models.Actor) ([]models.LabelCount, bool, error) {
	return cachedRead(ctx, s, actor, "roles", func(q sqlx.ExtContext, tenantID string) ([]models.LabelCount, error) {
		rows, err := s.analytics.RoleCounts(ctx, q, tenantID)
		return nonNil(rows), err
	})
}

// DepartmentCounts counts employees per department.
func (s *AdminService) DepartmentCounts(ctx context.Context, actor *models.Actor) ([]models.LabelCount, bool, error) {
	return cachedRead(ctx, s, actor, "departments", func(q sqlx.ExtContext, tenantID string) ([]models.LabelCount, error) {
		rows, err := s.analytics.DepartmentCounts(ctx, q, tenantID)
		return nonNil(rows), err
	})
}

// DesignationCounts counts employees per designation.
func (s *AdminService) DesignationCounts(ctx context.Context, actor *models.Actor) ([]models.LabelCount, bool, error) {
	return cachedRead(ctx, s, actor, "designations", func(q sqlx.ExtContext, tenantID string) ([]models.LabelCount, error) {
		rows, err := s.analytics.DesignationCounts(ctx, q, tenantID)
		return nonNil(rows), err
	})
}

// ManagerReports counts direct reports per manager.
func (s *AdminService) ManagerReports(ctx context.Context, actor *models.Actor) ([]models.ManagerReport, bool, error) {
	return cachedRead(ctx, s, actor, "managers", func(q sqlx.ExtContext, tenantID string) ([]models.ManagerReport, error) {
		rows, err := s.analytics.ManagerReports(ctx, q, tenantID)
		return nonNil(rows), err
	})
}

// EmployeeStatus splits accounts into active and inactive.
func (s *AdminService) EmployeeStatus(ctx context.Context, actor *models.Actor) (*models.EmployeeStatus, bool, error) {
	return cachedRead(ctx, s, actor, "status", func(q sqlx.ExtContext, tenantID string) (*models.EmployeeStatus, error) {
		return s.analytics.EmployeeStatus(ctx, q, tenantID)
	})
}

// LastLogins lists the most recent sign ins.
func (s *AdminService) LastLogins(ctx context.Context, actor *models.Actor) ([]models.LastLogin, error) {
	return scopedRead(ctx, s, actor, func(q sqlx.ExtContext, tenantID string) ([]models.LastLogin, error) {
		rows, err := s.analytics.LastLogins(ctx, q, tenantID, lastLoginsLimit)
		return nonNil(rows), err
	})
}

// RecentEmployees lists the newest accounts.
func (s *AdminService) RecentEmployees(ctx context.Context, actor *models.Actor) ([]models.RecentEmployee, error) {
	return scopedRead(ctx, s, actor, func(q sqlx.ExtContext, tenantID string) ([]models.RecentEmployee, error) {
		rows, err := s.analytics.RecentEmployees(ctx, q, tenantID, recentEmployeesLimit)
		return nonNil(rows), err
	})
}

// AuditLogs returns the newest audit entries of the tenant.
func (s *AdminService) AuditLogs(ctx context.Context, actor *models.Actor, limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}
	return scopedRead(ctx, s, actor, func(q sqlx.ExtContext, tenantID string) ([]models.AuditLog, error) {
		rows, err := s.audit.ListRecent(ctx, q, tenantID, limit)
		return nonNil(rows), err
	})
}

// TenantProfile returns the actor's own tenant.
func (s *AdminService) TenantProfile(ctx context.Context, actor *models.Actor) (*models.Tenant, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	var tenant *models.Tenant
	err = s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		var err error
		tenant, err = s.tenants.FindByID(ctx, q, tenantID)
		return err
	})
	if err != nil {
		return nil, mapStoreError(err, "Tenant not found", "")
	}
	return tenant, nil
}

// ExportDirectory renders the employee directory.
func (s *AdminService) ExportDirectory(ctx context.Context, actor *models.Actor, rawFormat string) (*export.File, error) {
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv, pdf or xlsx")
	}
	entries, err := scopedRead(ctx, s, actor, func(q sqlx.ExtContext, tenantID string) ([]models.DirectoryEntry, error) {
		return s.analytics.Directory(ctx, q, tenantID)
	})
	if err != nil {
		return nil, err
	}
	table := export.Table{
		Title:   "Employee Directory",
		Headers: []string{"First Name", "Last Name", "Email", "Phone", "Role", "Department", "Designation", "Active"},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			export.Cell(e.FirstName),
			export.Cell(e.LastName),
			e.Email,
			export.Cell(e.Phone),
			string(e.Role),
			export.Cell(e.Department),
			export.Cell(e.Designation),
			strconv.FormatBool(e.IsActive),
		})
	}
	file, err := s.exporter.Export(format, "employees", table)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to render export")
	}
	return file, nil
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
