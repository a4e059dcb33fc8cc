package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hrms-saas-api/internal/models"
)

// AnalyticsRepository exposes read-optimised queries for the tenant admin dashboard.
type AnalyticsRepository struct{}

// NewAnalyticsRepository instantiates the repository.
func NewAnalyticsRepository() *AnalyticsRepository {
	return &AnalyticsRepository{}
}

// Summary returns the headline counters for a tenant.
func (r *AnalyticsRepository) Summary(ctx context.Context, q sqlx.ExtContext, tenantID string) (*models.AdminSummary, error) {
	const query = `SELECT
	(SELECT COUNT(*) FROM employees WHERE tenant_id = $1) AS total_employees,
	(SELECT COUNT(*) FROM users WHERE tenant_id = $1 AND is_active) AS active_employees,
	(SELECT COUNT(*) FROM users WHERE tenant_id = $1 AND NOT is_active) AS inactive_employees,
	(SELECT COUNT(*) FROM departments WHERE tenant_id = $1) AS total_departments,
	(SELECT COUNT(*) FROM designations WHERE tenant_id = $1) AS total_designations,
	(SELECT COUNT(*) FROM users WHERE tenant_id = $1 AND role = 'MANAGER') AS total_managers`
	var summary models.AdminSummary
	if err := sqlx.GetContext(ctx, q, &summary, query, tenantID); err != nil {
		return nil, fmt.Errorf("query admin summary: %w", err)
	}
	return &summary, nil
}

// LastLogins lists users by most recent sign in with the device of their latest session.
func (r *AnalyticsRepository) LastLogins(ctx context.Context, q sqlx.ExtContext, tenantID string, limit int) ([]models.LastLogin, error) {
	const query = `SELECT u.email, u.role, u.last_login_at, s.ip_address, s.user_agent
FROM users u
LEFT JOIN LATERAL (
	SELECT ip_address, user_agent FROM user_sessions WHERE user_id = u.id ORDER BY created_at DESC LIMIT 1
) s ON TRUE
WHERE u.tenant_id = $1
ORDER BY u.last_login_at DESC NULLS LAST
LIMIT $2`
	var rows []models.LastLogin
	if err := sqlx.SelectContext(ctx, q, &rows, query, tenantID, limit); err != nil {
		return nil, fmt.Errorf("query last logins: %w", err)
	}
	return rows, nil
}

// RecentEmployees lists the newest accounts.
func (r *AnalyticsRepository) RecentEmployees(ctx context.Context, q sqlx.ExtContext, tenantID string, limit int) ([]models.RecentEmployee, error) {
	const query = `SELECT u.email, u.role, e.first_name, e.last_name, u.created_at
FROM users u
LEFT JOIN employees e ON e.user_id = u.id
WHERE u.tenant_id = $1
ORDER BY u.created_at DESC
LIMIT $2`
	var rows []models.RecentEmployee
	if err := sqlx.SelectContext(ctx, q, &rows, query, tenantID, limit); err != nil {
		return nil, fmt.Errorf("query recent employees: %w", err)
	}
	return rows, nil
}

// RoleCounts groups users by role.
func (r *AnalyticsRepository) RoleCounts(ctx context.Context, q sqlx.ExtContext, tenantID string) ([]models.LabelCount, error) {
	const query = `SELECT role AS label, COUNT(*) AS count FROM users WHERE tenant_id = $1 GROUP BY role ORDER BY role`
	return r.labelCounts(ctx, q, "role counts", query, tenantID)
}

// DepartmentCounts counts employees per department, including empty ones.
func (r *AnalyticsRepository) DepartmentCounts(ctx context.Context, q sqlx.ExtContext, tenantID string) ([]models.LabelCount, error) {
	const query = `SELECT d.name AS label, COUNT(e.id) AS count
FROM departments d
LEFT JOIN employees e ON e.department_id = d.id
WHERE d.tenant_id = $1
GROUP BY d.id, d.name
ORDER BY d.name`
	return r.labelCounts(ctx, q, "department counts", query, tenantID)
}

// DesignationCounts counts employees per designation, including empty ones.
func (r *AnalyticsRepository) DesignationCounts(ctx context.Context, q sqlx.ExtContext, tenantID string) ([]models.LabelCount, error) {
	const query = `SELECT g.name AS label, COUNT(e.id) AS count
FROM designations g
LEFT JOIN employees e ON e.designation_id = g.id
WHERE g.tenant_id = $1
GROUP BY g.id, g.name
ORDER BY g.name`
	return r.labelCounts(ctx, q, "designation counts", query, tenantID)
}

// ManagerReports counts direct reports per manager.
func (r *AnalyticsRepository) ManagerReports(ctx context.Context, q sqlx.ExtContext, tenantID string) ([]models.ManagerReport, error) {
	const query = `SELECT em.id AS manager_id, um.email AS manager_email, em.first_name AS manager_first_name,
em.last_name AS manager_last_name, COUNT(e.id) AS report_count
FROM users um
JOIN employees em ON em.user_id = um.id
LEFT JOIN employees e ON e.reports_to = em.id
WHERE um.tenant_id = $1 AND um.role = 'MANAGER'
GROUP BY em.id, um.email, em.first_name, em.last_name
ORDER BY report_count DESC`
	var rows []models.ManagerReport
	if err := sqlx.SelectContext(ctx, q, &rows, query, tenantID); err != nil {
		return nil, fmt.Errorf("query manager reports: %w", err)
	}
	return rows, nil
}

// EmployeeStatus splits accounts by activation.
func (r *AnalyticsRepository) EmployeeStatus(ctx context.Context, q sqlx.ExtContext, tenantID string) (*models.EmployeeStatus, error) {
	const query = `SELECT
	COUNT(*) FILTER (WHERE is_active) AS active,
	COUNT(*) FILTER (WHERE NOT is_active) AS inactive
FROM users WHERE tenant_id = $1`
	var status models.EmployeeStatus
	if err := sqlx.GetContext(ctx, q, &status, query, tenantID); err != nil {
		return nil, fmt.Errorf("query employee status: %w", err)
	}
	return &status, nil
}

// Directory returns every account with its profile for export.
func (r *AnalyticsRepository) Directory(ctx context.Context, q sqlx.ExtContext, tenantID string) ([]models.DirectoryEntry, error) {
	const query = `SELECT u.email, u.role, u.is_active, e.first_name, e.last_name, e.phone,
d.name AS department, g.name AS designation
FROM users u
LEFT JOIN employees e ON e.user_id = u.id
LEFT JOIN departments d ON d.id = e.department_id
LEFT JOIN designations g ON g.id = e.designation_id
WHERE u.tenant_id = $1
ORDER BY e.first_name NULLS LAST, u.email`
	var rows []models.DirectoryEntry
	if err := sqlx.SelectContext(ctx, q, &rows, query, tenantID); err != nil {
		return nil, fmt.Errorf("query employee directory: %w", err)
	}
	return rows, nil
}

func (r *AnalyticsRepository) labelCounts(ctx context.Context, q sqlx.ExtContext, op, query string, args ...interface{}) ([]models.LabelCount, error) {
	var rows []models.LabelCount
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query %s: %w", op, err)
	}
	return rows, nil
}
