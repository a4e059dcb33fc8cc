package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"github.com/noah-isme/hrms-saas-api/internal/models"
)

const tenantColumns = `id, name, domain, email, phone, address, city, state, country, zip_code, settings, is_active, created_at, updated_at`

// TenantRepository persists tenants.
type TenantRepository struct{}

// NewTenantRepository constructs a TenantRepository.
func NewTenantRepository() *TenantRepository {
	return &TenantRepository{}
}

// FindConflict returns the first of domain, email or phone already used by a
// tenant, or an empty string.
func (r *TenantRepository) FindConflict(ctx context.Context, q sqlx.ExtContext, domain *string, email string, phone *string) (string, error) {
	const query = `SELECT CASE
	WHEN $1::text IS NOT NULL AND LOWER(domain) = LOWER($1::text) THEN 'domain'
	WHEN LOWER(email) = LOWER($2) THEN 'email'
	ELSE 'phone' END
FROM tenants
WHERE ($1::text IS NOT NULL AND LOWER(domain) = LOWER($1::text))
	OR LOWER(email) = LOWER($2)
	OR ($3::text IS NOT NULL AND phone = $3::text)
LIMIT 1`
	var field string
	if err := sqlx.GetContext(ctx, q, &field, query, domain, strings.TrimSpace(email), phone); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("check tenant conflicts: %w", err)
	}
	return field, nil
}

// Create inserts a tenant.
func (r *TenantRepository) Create(ctx context.Context, q sqlx.ExtContext, tenant *models.Tenant) error {
	if tenant.ID == "" {
		tenant.ID = uuid.NewString()
	}
	if len(tenant.Settings) == 0 {
		tenant.Settings = types.JSONText(`{}`)
	}
	now := time.Now().UTC()
	tenant.CreatedAt = now
	tenant.UpdatedAt = now

	const query = `INSERT INTO tenants (id, name, domain, email, phone, address, city, state, country, zip_code, settings, is_active, created_at, updated_at)
VALUES (:id, :name, :domain, :email, :phone, :address, :city, :state, :country, :zip_code, :settings, :is_active, :created_at, :updated_at)`
	if _, err := sqlx.NamedExecContext(ctx, q, query, tenant); err != nil {
		return translate("insert tenant", err)
	}
	return nil
}

// FindByID loads a tenant visible to the current scope.
func (r *TenantRepository) FindByID(ctx context.Context, q sqlx.ExtContext, id string) (*models.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1`
	var tenant models.Tenant
	if err := sqlx.GetContext(ctx, q, &tenant, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find tenant: %w", err)
	}
	return &tenant, nil
}

// SetActive toggles a tenant.
func (r *TenantRepository) SetActive(ctx context.Context, q sqlx.ExtContext, id string, active bool) error {
	const query = `UPDATE tenants SET is_active = $2, updated_at = NOW() WHERE id = $1`
	return execOne(ctx, q, "update tenant status", query, id, active)
}
