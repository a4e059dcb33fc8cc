package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hrms-saas-api/internal/models"
)

// AuditRepository writes and reads the audit trail.
type AuditRepository struct{}

// NewAuditRepository constructs an AuditRepository.
func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

// Create appends an entry.
func (r *AuditRepository) Create(ctx context.Context, q sqlx.ExtContext, entry *models.AuditLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.CreatedAt = time.Now().UTC()

	const query = `INSERT INTO audit_logs (id, tenant_id, user_id, action, resource, resource_id, old_values, new_values, ip_address, user_agent, created_at)
VALUES (:id, :tenant_id, :user_id, :action, :resource, :resource_id, :old_values, :new_values, :ip_address, :user_agent, :created_at)`
	if _, err := sqlx.NamedExecContext(ctx, q, query, entry); err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// ListRecent returns the newest entries of a tenant.
func (r *AuditRepository) ListRecent(ctx context.Context, q sqlx.ExtContext, tenantID string, limit int) ([]models.AuditLog, error) {
	const query = `SELECT id, tenant_id, user_id, action, resource, resource_id, old_values, new_values, ip_address, user_agent, created_at
FROM audit_logs WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2`
	var logs []models.AuditLog
	if err := sqlx.SelectContext(ctx, q, &logs, query, tenantID, limit); err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	return logs, nil
}
