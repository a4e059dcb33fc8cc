package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	"github.com/noah-isme/hrms-saas-api/pkg/security"
)

type countingPurger struct {
	purged int64
	err    error
}

func (p *countingPurger) PurgeExpired(context.Context, sqlx.ExtContext) (int64, error) {
	return p.purged, p.err
}

func TestMaintenanceCreateSuperAdmin(t *testing.T) {
	users := newFakeUsers()
	audit := &fakeAudit{}
	scoper := &fakeScoper{}
	svc := NewMaintenanceService(scoper, users, &countingPurger{}, audit, nil)

	user, err := svc.CreateSuperAdmin(context.Background(), "  Root@Platform.test ", "Sup3r!secret")
	require.NoError(t, err)
	assert.Equal(t, "root@platform.test", user.Email)
	assert.Equal(t, models.RoleSuperAdmin, user.Role)
	assert.Nil(t, user.TenantID)
	assert.True(t, security.CheckPassword(user.PasswordHash, "Sup3r!secret"))
	assert.Equal(t, models.RoleSystem, scoper.lastRole())
	require.Len(t, audit.entries, 1)
	assert.Equal(t, models.AuditActionUserCreate, audit.entries[0].Action)

	_, err = svc.CreateSuperAdmin(context.Background(), "root@platform.test", "Sup3r!secret")
	requireAppError(t, err, 409)
}

func TestMaintenanceCreateSuperAdminValidates(t *testing.T) {
	svc := NewMaintenanceService(&fakeScoper{}, newFakeUsers(), &countingPurger{}, nil, nil)

	_, err := svc.CreateSuperAdmin(context.Background(), "not-an-email", "Sup3r!secret")
	requireAppError(t, err, 400)

	_, err = svc.CreateSuperAdmin(context.Background(), "root@platform.test", "weak")
	requireAppError(t, err, 400)
}

func TestMaintenancePurgeExpiredResets(t *testing.T) {
	svc := NewMaintenanceService(&fakeScoper{}, newFakeUsers(), &countingPurger{purged: 4}, nil, nil)
	purged, err := svc.PurgeExpiredResets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), purged)

	svc = NewMaintenanceService(&fakeScoper{}, newFakeUsers(), &countingPurger{err: errors.New("timeout")}, nil, nil)
	_, err = svc.PurgeExpiredResets(context.Background())
	requireAppError(t, err, 500)
}
