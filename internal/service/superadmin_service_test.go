package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hrms-saas-api/internal/models"
)

type fakePlatform struct {
	tenants *fakeTenants
	users   []models.User
	limit   int
}

func (f *fakePlatform) ListTenants(_ context.Context, _ sqlx.ExtContext) ([]models.TenantSummary, error) {
	var out []models.TenantSummary
	for _, t := range f.tenants.tenants {
		out = append(out, models.TenantSummary{ID: t.ID, Name: t.Name, Email: t.Email, IsActive: t.IsActive, UserCount: 2, EmployeeCount: 2, PlanName: strPtr("Pro"), CreatedAt: t.CreatedAt})
	}
	return out, nil
}

func (f *fakePlatform) TenantUsers(_ context.Context, _ sqlx.ExtContext, tenantID string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if derefString(u.TenantID) == tenantID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakePlatform) EmployeeCount(_ context.Context, _ sqlx.ExtContext, tenantID string) (int, error) {
	users, _ := f.TenantUsers(context.Background(), nil, tenantID)
	return len(users), nil
}

func (f *fakePlatform) Stats(_ context.Context, _ sqlx.ExtContext) (*models.PlatformStats, error) {
	return &models.PlatformStats{Tenants: len(f.tenants.tenants), Users: len(f.users), ActiveSubscriptions: 1}, nil
}

func (f *fakePlatform) RecentLogins(_ context.Context, _ sqlx.ExtContext, limit int) ([]models.LoginActivity, error) {
	f.limit = limit
	return nil, nil
}

func newSuperAdminFixture() (*SuperAdminService, *fakeTenants, *fakePlatform, *fakeAudit, *invalidationRecorder) {
	tenants := newFakeTenants(
		models.Tenant{ID: testTenantID, Name: "Acme", Email: "acme@acme.test", IsActive: true, CreatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		models.Tenant{ID: otherTenantID, Name: "Globex", Email: "ops@globex.test", IsActive: false},
	)
	platform := &fakePlatform{tenants: tenants, users: []models.User{
		{ID: testAdminID, TenantID: strPtr(testTenantID), Email: "admin@acme.test", Role: models.RoleAdmin},
		{ID: testHRID, TenantID: strPtr(testTenantID), Email: "hr@acme.test", Role: models.RoleHR},
		{ID: "u-3", TenantID: strPtr(otherTenantID), Email: "admin@globex.test", Role: models.RoleAdmin},
	}}
	audit := &fakeAudit{}
	cache := &invalidationRecorder{}
	svc := NewSuperAdminService(&fakeScoper{}, platform, tenants, audit, cache, NewMetricsService(), nil, nil)
	return svc, tenants, platform, audit, cache
}

func TestSuperAdminServiceRequiresRole(t *testing.T) {
	svc, _, _, _, _ := newSuperAdminFixture()
	ctx := context.Background()

	_, err := svc.ListTenants(ctx, adminActor())
	requireAppError(t, err, 403)

	_, err = svc.SetTenantActive(ctx, adminActor(), testTenantID, false)
	requireAppError(t, err, 403)

	_, err = svc.Stats(ctx, nil)
	requireAppError(t, err, 403)
}

func TestSuperAdminServiceTenantStatus(t *testing.T) {
	svc, tenants, _, audit, cache := newSuperAdminFixture()
	ctx := context.Background()

	tenant, err := svc.SetTenantActive(ctx, superAdminActor(), testTenantID, false)
	require.NoError(t, err)
	assert.False(t, tenant.IsActive)
	assert.False(t, tenants.tenants[testTenantID].IsActive)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, models.AuditActionTenantStatus, audit.entries[0].Action)
	assert.Equal(t, testTenantID, *audit.entries[0].TenantID)
	assert.JSONEq(t, `{"is_active":true}`, string(audit.entries[0].OldValues))
	assert.Equal(t, []string{testTenantID}, cache.tenants)

	tenant, err = svc.SetTenantActive(ctx, superAdminActor(), otherTenantID, true)
	require.NoError(t, err)
	assert.True(t, tenant.IsActive)

	_, err = svc.SetTenantActive(ctx, superAdminActor(), "missing", true)
	requireAppError(t, err, 404)
}

func TestSuperAdminServiceTenantDetails(t *testing.T) {
	svc, _, _, _, _ := newSuperAdminFixture()
	ctx := context.Background()

	tenant, err := svc.GetTenant(ctx, superAdminActor(), otherTenantID)
	require.NoError(t, err)
	assert.Equal(t, "Globex", tenant.Name)

	users, err := svc.TenantUsers(ctx, superAdminActor(), testTenantID)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	count, err := svc.EmployeeCount(ctx, superAdminActor(), otherTenantID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = svc.TenantUsers(ctx, superAdminActor(), "missing")
	requireAppError(t, err, 404)
}

func TestSuperAdminServiceStatsAndLogins(t *testing.T) {
	svc, _, platform, _, _ := newSuperAdminFixture()
	ctx := context.Background()

	stats, err := svc.Stats(ctx, superAdminActor())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Tenants)
	require.NotNil(t, stats.System)
	assert.Positive(t, stats.System.Goroutines)

	logins, err := svc.RecentLogins(ctx, superAdminActor())
	require.NoError(t, err)
	assert.NotNil(t, logins)
	assert.Equal(t, 100, platform.limit)
}

func TestSuperAdminServiceExportTenants(t *testing.T) {
	svc, _, _, _, _ := newSuperAdminFixture()

	file, err := svc.ExportTenants(context.Background(), superAdminActor(), "")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(file.Name, ".csv"))
	assert.Contains(t, string(file.Data), "Acme,acme@acme.test,true,2,2,Pro,2026-01-02")

	_, err = svc.ExportTenants(context.Background(), adminActor(), "csv")
	requireAppError(t, err, 403)
}
