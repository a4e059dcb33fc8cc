package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	"github.com/noah-isme/hrms-saas-api/internal/repository"
	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
)

// Scoper runs fn inside a transaction bound to actor's RLS scope.
type Scoper interface {
	WithScope(ctx context.Context, actor *models.Actor, fn func(q sqlx.ExtContext) error) error
}

// AuditStore appends audit entries on the caller's executor.
type AuditStore interface {
	Create(ctx context.Context, q sqlx.ExtContext, entry *models.AuditLog) error
}

// auditEvent describes one mutation to record.
type auditEvent struct {
	Action     string
	Resource   string
	ResourceID string
	// TenantID overrides the actor's tenant, used by global actors acting on a tenant.
	TenantID *string
	Old      interface{}
	New      interface{}
}

// writeAudit records ev inside the running scope so it commits or rolls back
// with the mutation itself.
func writeAudit(ctx context.Context, q sqlx.ExtContext, store AuditStore, actor *models.Actor, ev auditEvent) error {
	if store == nil {
		return nil
	}
	entry := &models.AuditLog{
		Action:    ev.Action,
		Resource:  ev.Resource,
		OldValues: jsonText(ev.Old),
		NewValues: jsonText(ev.New),
		TenantID:  ev.TenantID,
	}
	if ev.ResourceID != "" {
		entry.ResourceID = stringPtr(ev.ResourceID)
	}
	if actor != nil {
		if entry.TenantID == nil {
			entry.TenantID = actor.TenantID
		}
		if actor.UserID != "" {
			entry.UserID = stringPtr(actor.UserID)
		}
		entry.IPAddress = optional(actor.IP)
		entry.UserAgent = optional(actor.UserAgent)
	}
	return store.Create(ctx, q, entry)
}

func jsonText(v interface{}) types.JSONText {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return types.JSONText(raw)
}

// mapStoreError converts repository failures into typed errors. Typed errors
// pass through untouched.
func mapStoreError(err error, notFound, conflict string) error {
	if err == nil {
		return nil
	}
	var appErr *appErrors.Error
	switch {
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, sql.ErrNoRows):
		return appErrors.Clone(appErrors.ErrNotFound, notFound)
	case errors.Is(err, repository.ErrDuplicate):
		return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, conflict)
	case errors.Is(err, repository.ErrReferenced):
		if conflict == "" {
			conflict = "resource is still referenced"
		}
		return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, conflict)
	default:
		return appErrors.Internal(err, appErrors.ErrInternal.Message)
	}
}

func stringPtr(v string) *string {
	return &v
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// requireTenant returns the actor's tenant, or Forbidden for actors without one.
func requireTenant(actor *models.Actor) (string, error) {
	tenantID := actor.Tenant()
	if tenantID == "" {
		return "", appErrors.Clone(appErrors.ErrForbidden, "tenant context required")
	}
	return tenantID, nil
}

// sameTenant reports whether a row owned by rowTenant belongs to tenantID.
func sameTenant(rowTenant *string, tenantID string) bool {
	return rowTenant != nil && *rowTenant == tenantID
}
