package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
)

type fakeUserSrv struct {
	userService
	filter   models.UserFilter
	statusID string
	status   models.UpdateStatusRequest
	resetErr error
}

func (f *fakeUserSrv) List(_ context.Context, _ *models.Actor, filter models.UserFilter) ([]models.UserDetail, *models.Pagination, error) {
	f.filter = filter
	return []models.UserDetail{{ID: "u1", Email: "ada@acme.test"}}, &models.Pagination{Limit: 50, TotalCount: 1}, nil
}

func (f *fakeUserSrv) Create(_ context.Context, _ *models.Actor, req models.CreateUserRequest) (*models.CreateUserResult, error) {
	return &models.CreateUserResult{}, nil
}

func (f *fakeUserSrv) SetStatus(_ context.Context, _ *models.Actor, id string, req models.UpdateStatusRequest) (*models.UserDetail, error) {
	f.statusID = id
	f.status = req
	return &models.UserDetail{ID: id}, nil
}

func (f *fakeUserSrv) ResetPassword(context.Context, *models.Actor, string) error {
	return f.resetErr
}

func (f *fakeUserSrv) Reports(context.Context, *models.Actor) ([]models.UserDetail, error) {
	return []models.UserDetail{}, nil
}

func TestUserHandlerListParsesFilter(t *testing.T) {
	srv := &fakeUserSrv{}
	handler := NewUserHandler(srv)

	c, rec := newTestContext(http.MethodGet, "/users?role=manager&departmentId=d1&search=%20ada%20&limit=10&offset=20", nil, tenantAdmin())
	handler.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, srv.filter.Role)
	assert.Equal(t, models.RoleManager, *srv.filter.Role)
	assert.Equal(t, "d1", srv.filter.DepartmentID)
	assert.Equal(t, "ada", srv.filter.Search)
	assert.Equal(t, 10, srv.filter.Limit)
	assert.Equal(t, 20, srv.filter.Offset)
	assert.NotNil(t, decodeEnvelope(t, rec).Pagination)
}

func TestUserHandlerListRejectsBadQuery(t *testing.T) {
	handler := NewUserHandler(&fakeUserSrv{})

	for _, target := range []string{"/users?role=SYSTEM", "/users?role=owner", "/users?limit=-1", "/users?offset=abc"} {
		c, rec := newTestContext(http.MethodGet, target, nil, tenantAdmin())
		handler.List(c)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestUserHandlerSetStatus(t *testing.T) {
	srv := &fakeUserSrv{}
	handler := NewUserHandler(srv)

	c, rec := newTestContext(http.MethodPut, "/users/u9/status", `{"is_active":false}`, tenantAdmin(), "id", "u9")
	handler.SetStatus(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u9", srv.statusID)
	require.NotNil(t, srv.status.IsActive)
	assert.False(t, *srv.status.IsActive)
}

func TestUserHandlerResetPassword(t *testing.T) {
	srv := &fakeUserSrv{}
	handler := NewUserHandler(srv)

	c, rec := newTestContext(http.MethodPost, "/users/u9/reset-password", nil, tenantAdmin(), "id", "u9")
	handler.ResetPassword(c)
	assert.Equal(t, http.StatusOK, rec.Code)

	srv.resetErr = appErrors.Clone(appErrors.ErrForbidden, "HR cannot reset an ADMIN password")
	c, rec = newTestContext(http.MethodPost, "/users/u9/reset-password", nil, tenantAdmin(), "id", "u9")
	handler.ResetPassword(c)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUserHandlerRequiresActor(t *testing.T) {
	handler := NewUserHandler(&fakeUserSrv{})

	c, rec := newTestContext(http.MethodGet, "/users/me/reports", nil, nil)
	handler.Reports(c)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = newTestContext(http.MethodPost, "/users", "not json", tenantAdmin())
	handler.Create(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
