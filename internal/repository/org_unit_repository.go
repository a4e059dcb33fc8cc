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

// OrgUnitRepository persists departments or designations. Both tables share a
// shape, so the kind selects the table.
type OrgUnitRepository struct {
	kind models.OrgUnitKind
}

// NewOrgUnitRepository constructs a repository for kind.
func NewOrgUnitRepository(kind models.OrgUnitKind) *OrgUnitRepository {
	return &OrgUnitRepository{kind: kind}
}

func (r *OrgUnitRepository) table() string {
	if r.kind == models.OrgUnitDesignation {
		return "designations"
	}
	return "departments"
}

func (r *OrgUnitRepository) columns() string {
	return `id, tenant_id, name, description, is_active, created_by, updated_by, created_at, updated_at`
}

// Create inserts a unit.
func (r *OrgUnitRepository) Create(ctx context.Context, q sqlx.ExtContext, unit *models.OrgUnit) error {
	if unit.ID == "" {
		unit.ID = uuid.NewString()
	}
	unit.IsActive = true
	unit.CreatedAt = time.Now().UTC()

	query := fmt.Sprintf(`INSERT INTO %s (id, tenant_id, name, description, is_active, created_by, created_at)
VALUES (:id, :tenant_id, :name, :description, :is_active, :created_by, :created_at)`, r.table())
	if _, err := sqlx.NamedExecContext(ctx, q, query, unit); err != nil {
		return translate("insert "+string(r.kind), err)
	}
	return nil
}

// FindByID loads a unit visible to the current scope.
func (r *OrgUnitRepository) FindByID(ctx context.Context, q sqlx.ExtContext, id string) (*models.OrgUnit, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, r.columns(), r.table())
	var unit models.OrgUnit
	if err := sqlx.GetContext(ctx, q, &unit, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find %s: %w", r.kind, err)
	}
	return &unit, nil
}

// List returns the tenant's units ordered by name.
func (r *OrgUnitRepository) List(ctx context.Context, q sqlx.ExtContext, tenantID string) ([]models.OrgUnit, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE tenant_id = $1 ORDER BY name`, r.columns(), r.table())
	var units []models.OrgUnit
	if err := sqlx.SelectContext(ctx, q, &units, query, tenantID); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.kind, err)
	}
	return units, nil
}

// Update applies the non-nil fields of req.
func (r *OrgUnitRepository) Update(ctx context.Context, q sqlx.ExtContext, id string, req models.UpdateOrgUnitRequest, updatedBy string) error {
	query := fmt.Sprintf(`UPDATE %s SET name = COALESCE($2, name), description = COALESCE($3, description),
is_active = COALESCE($4, is_active), updated_by = $5, updated_at = NOW() WHERE id = $1`, r.table())
	return execOne(ctx, q, "update "+string(r.kind), query, id, req.Name, req.Description, req.IsActive, updatedBy)
}

// Delete removes a unit.
func (r *OrgUnitRepository) Delete(ctx context.Context, q sqlx.ExtContext, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table())
	return execOne(ctx, q, "delete "+string(r.kind), query, id)
}
