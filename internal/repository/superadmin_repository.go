package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hrms-saas-api/internal/models"
)

// SuperAdminRepository runs cross-tenant platform queries. It only returns
// rows when the scope is global.
type SuperAdminRepository struct{}

// NewSuperAdminRepository constructs a SuperAdminRepository.
func NewSuperAdminRepository() *SuperAdminRepository {
	return &SuperAdminRepository{}
}

// ListTenants returns every tenant with usage counters and current plan.
func (r *SuperAdminRepository) ListTenants(ctx context.Context, q sqlx.ExtContext) ([]models.TenantSummary, error) {
	const query = `SELECT t.id, t.name, t.email, t.is_active, t.created_at, t.updated_at,
	(SELECT COUNT(*) FROM users u WHERE u.tenant_id = t.id) AS user_count,
	(SELECT COUNT(*) FROM employees e WHERE e.tenant_id = t.id) AS employee_count,
	(SELECT p.name FROM tenant_subscription s JOIN subscription_plans p ON p.id = s.plan_id
		WHERE s.tenant_id = t.id AND s.status IN ('ACTIVE', 'TRIAL') ORDER BY s.created_at DESC LIMIT 1) AS plan_name
FROM tenants t
ORDER BY t.created_at DESC`
	var tenants []models.TenantSummary
	if err := sqlx.SelectContext(ctx, q, &tenants, query); err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	return tenants, nil
}

// TenantUsers lists the accounts of a tenant.
func (r *SuperAdminRepository) TenantUsers(ctx context.Context, q sqlx.ExtContext, tenantID string) ([]models.User, error) {
	const query = `SELECT id, tenant_id, email, password_hash, role, is_active, must_change_password, last_login_at, created_by, created_at, updated_at
FROM users WHERE tenant_id = $1 ORDER BY created_at DESC`
	var users []models.User
	if err := sqlx.SelectContext(ctx, q, &users, query, tenantID); err != nil {
		return nil, fmt.Errorf("list tenant users: %w", err)
	}
	return users, nil
}

// EmployeeCount counts the employees of a tenant.
func (r *SuperAdminRepository) EmployeeCount(ctx context.Context, q sqlx.ExtContext, tenantID string) (int, error) {
	var count int
	if err := sqlx.GetContext(ctx, q, &count, `SELECT COUNT(*) FROM employees WHERE tenant_id = $1`, tenantID); err != nil {
		return 0, fmt.Errorf("count tenant employees: %w", err)
	}
	return count, nil
}

// Stats aggregates platform counters.
func (r *SuperAdminRepository) Stats(ctx context.Context, q sqlx.ExtContext) (*models.PlatformStats, error) {
	const query = `SELECT
	(SELECT COUNT(*) FROM tenants) AS tenants,
	(SELECT COUNT(*) FROM tenants WHERE is_active) AS active_tenants,
	(SELECT COUNT(*) FROM users) AS users,
	(SELECT COUNT(*) FROM employees) AS employees,
	(SELECT COUNT(*) FROM tenant_subscription WHERE status = 'ACTIVE') AS active_subscriptions,
	(SELECT COUNT(*) FROM tenant_subscription WHERE status = 'TRIAL') AS trial_subscriptions`
	var stats models.PlatformStats
	if err := sqlx.GetContext(ctx, q, &stats, query); err != nil {
		return nil, fmt.Errorf("query platform stats: %w", err)
	}
	return &stats, nil
}

// RecentLogins lists the newest sessions across the platform.
func (r *SuperAdminRepository) RecentLogins(ctx context.Context, q sqlx.ExtContext, limit int) ([]models.LoginActivity, error) {
	const query = `SELECT s.user_id, u.tenant_id, u.email, s.ip_address, s.user_agent, s.created_at AS login_time
FROM user_sessions s
JOIN users u ON u.id = s.user_id
ORDER BY s.created_at DESC
LIMIT $1`
	var rows []models.LoginActivity
	if err := sqlx.SelectContext(ctx, q, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("query recent logins: %w", err)
	}
	return rows, nil
}
