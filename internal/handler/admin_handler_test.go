package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
	"github.com/noah-isme/hrms-saas-api/pkg/export"
)

type fakeAdminSrv struct {
	adminService
	hit        bool
	auditLimit int
	format     string
}

func (f *fakeAdminSrv) Summary(context.Context, *models.Actor) (*models.AdminSummary, bool, error) {
	return &models.AdminSummary{TotalEmployees: 4}, f.hit, nil
}

func (f *fakeAdminSrv) RoleCounts(context.Context, *models.Actor) ([]models.LabelCount, bool, error) {
	return []models.LabelCount{{Label: "HR", Count: 1}}, f.hit, nil
}

func (f *fakeAdminSrv) AuditLogs(_ context.Context, _ *models.Actor, limit int) ([]models.AuditLog, error) {
	f.auditLimit = limit
	return []models.AuditLog{}, nil
}

func (f *fakeAdminSrv) ExportDirectory(_ context.Context, _ *models.Actor, format string) (*export.File, error) {
	f.format = format
	if format == "xml" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv, pdf or xlsx")
	}
	return &export.File{Name: "employees-20261019.csv", ContentType: "text/csv", Data: []byte("a,b\n")}, nil
}

func TestAdminHandlerSummaryReportsCacheHit(t *testing.T) {
	handler := NewAdminHandler(&fakeAdminSrv{hit: true})

	c, rec := newTestContext(http.MethodGet, "/admin/summary", nil, tenantAdmin())
	handler.Summary(c)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, true, env.Meta["cache_hit"])
	assert.Contains(t, string(env.Data), `"total_employees":4`)
}

func TestAdminHandlerRolesMiss(t *testing.T) {
	handler := NewAdminHandler(&fakeAdminSrv{})

	c, rec := newTestContext(http.MethodGet, "/admin/roles", nil, tenantAdmin())
	handler.Roles(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decodeEnvelope(t, rec).Meta["cache_hit"])
}

func TestAdminHandlerAuditLimit(t *testing.T) {
	srv := &fakeAdminSrv{}
	handler := NewAdminHandler(srv)

	c, rec := newTestContext(http.MethodGet, "/admin/audit-logs?limit=25", nil, tenantAdmin())
	handler.AuditLogs(c)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 25, srv.auditLimit)

	c, rec = newTestContext(http.MethodGet, "/admin/audit-logs?limit=x", nil, tenantAdmin())
	handler.AuditLogs(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHandlerExport(t *testing.T) {
	srv := &fakeAdminSrv{}
	handler := NewAdminHandler(srv)

	c, rec := newTestContext(http.MethodGet, "/admin/employees/export?format=csv", nil, tenantAdmin())
	handler.ExportEmployees(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "csv", srv.format)
	assert.Equal(t, `attachment; filename="employees-20261019.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, "a,b\n", rec.Body.String())

	c, rec = newTestContext(http.MethodGet, "/admin/employees/export?format=xml", nil, tenantAdmin())
	handler.ExportEmployees(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type fakeSuperAdminSrv struct {
	superAdminService
	activeID string
	active   bool
}

func (f *fakeSuperAdminSrv) SetTenantActive(_ context.Context, _ *models.Actor, id string, active bool) (*models.Tenant, error) {
	f.activeID = id
	f.active = active
	return &models.Tenant{ID: id, IsActive: active}, nil
}

func (f *fakeSuperAdminSrv) EmployeeCount(_ context.Context, _ *models.Actor, tenantID string) (int, error) {
	if tenantID == "missing" {
		return 0, appErrors.Clone(appErrors.ErrNotFound, "Tenant not found")
	}
	return 7, nil
}

func (f *fakeSuperAdminSrv) Stats(context.Context, *models.Actor) (*models.PlatformStats, error) {
	return nil, errors.New("db down")
}

func TestSuperAdminHandlerActivation(t *testing.T) {
	srv := &fakeSuperAdminSrv{}
	handler := NewSuperAdminHandler(srv)

	c, rec := newTestContext(http.MethodPatch, "/super-admin/tenants/t1/deactivate", nil, superAdmin(), "id", "t1")
	handler.Deactivate(c)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "t1", srv.activeID)
	assert.False(t, srv.active)

	c, rec = newTestContext(http.MethodPatch, "/super-admin/tenants/t1/activate", nil, superAdmin(), "id", "t1")
	handler.Activate(c)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, srv.active)
}

func TestSuperAdminHandlerEmployeeCount(t *testing.T) {
	handler := NewSuperAdminHandler(&fakeSuperAdminSrv{})

	c, rec := newTestContext(http.MethodGet, "/super-admin/tenants/t1/employees", nil, superAdmin(), "id", "t1")
	handler.EmployeeCount(c)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tenant_id":"t1","employees":7}`, string(decodeEnvelope(t, rec).Data))

	c, rec = newTestContext(http.MethodGet, "/super-admin/tenants/missing/employees", nil, superAdmin(), "id", "missing")
	handler.EmployeeCount(c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSuperAdminHandlerHidesInternalErrors(t *testing.T) {
	handler := NewSuperAdminHandler(&fakeSuperAdminSrv{})

	c, rec := newTestContext(http.MethodGet, "/super-admin/stats", nil, superAdmin())
	handler.Stats(c)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
	assert.Len(t, c.Errors, 1)
}
