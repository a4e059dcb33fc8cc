package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hrms-saas-api/internal/handler"
	"github.com/noah-isme/hrms-saas-api/internal/models"
	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
	"github.com/noah-isme/hrms-saas-api/pkg/config"
)

const tenantID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

// tokenAuth maps bearer tokens straight to actors.
type tokenAuth map[string]*models.Actor

func (a tokenAuth) ValidateToken(token string) (*models.JWTClaims, error) {
	if _, ok := a[token]; !ok {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
	}
	return &models.JWTClaims{UserID: token}, nil
}

func (a tokenAuth) ResolveActor(_ context.Context, claims *models.JWTClaims) (*models.Actor, error) {
	return a[claims.UserID], nil
}

type stubAuthService struct{}

func (stubAuthService) Login(context.Context, models.LoginRequest) (*models.LoginResponse, error) {
	return &models.LoginResponse{}, nil
}
func (stubAuthService) Refresh(context.Context, models.RefreshTokenRequest) (*models.TokenPair, error) {
	return &models.TokenPair{}, nil
}
func (stubAuthService) Logout(context.Context, models.LogoutRequest) error { return nil }
func (stubAuthService) LogoutAll(context.Context, *models.Actor) (int64, error) {
	return 0, nil
}
func (stubAuthService) Sessions(context.Context, *models.Actor) ([]models.SessionView, error) {
	return []models.SessionView{}, nil
}
func (stubAuthService) ForgotPassword(context.Context, models.ForgotPasswordRequest) error {
	return nil
}
func (stubAuthService) ResetPassword(context.Context, models.ResetPasswordRequest) error {
	return nil
}
func (stubAuthService) ChangePassword(context.Context, *models.Actor, models.ChangePasswordRequest) error {
	return nil
}
func (stubAuthService) Me(_ context.Context, actor *models.Actor) (*models.MeResponse, error) {
	return &models.MeResponse{UserDetail: models.UserDetail{ID: actor.UserID}}, nil
}

type memoryCounter map[string]int64

func (m memoryCounter) Increment(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	m[key]++
	return m[key], window, nil
}

func actorWith(role models.UserRole, pending bool) *models.Actor {
	tid := tenantID
	a := &models.Actor{UserID: string(role), Role: role, MustChangePassword: pending}
	if role != models.RoleSuperAdmin {
		a.TenantID = &tid
	}
	return a
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Env:       "test",
		APIPrefix: "/api",
		RateLimit: config.RateLimitConfig{Enabled: true, AuthLimit: 1, AuthWindow: time.Minute},
	}
	auth := tokenAuth{
		"employee": actorWith(models.RoleEmployee, false),
		"pending":  actorWith(models.RoleAdmin, true),
		"super":    actorWith(models.RoleSuperAdmin, false),
	}
	handlers := Handlers{
		Auth:         handler.NewAuthHandler(stubAuthService{}),
		Tenant:       handler.NewTenantHandler(nil),
		User:         handler.NewUserHandler(nil),
		Department:   handler.NewOrgUnitHandler(nil, "Department"),
		Designation:  handler.NewOrgUnitHandler(nil, "Designation"),
		Subscription: handler.NewSubscriptionHandler(nil),
		Admin:        handler.NewAdminHandler(nil),
		SuperAdmin:   handler.NewSuperAdminHandler(nil),
		Health:       handler.NewMetricsHandler(nil, nil),
	}
	return New(Options{Config: cfg, Auth: auth, Limiter: memoryCounter{}}, handlers)
}

func call(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(`{"email":"a@acme.test","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

func TestRouterPublicRoutes(t *testing.T) {
	r := newTestEngine(t)

	rec := call(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	assert.Equal(t, http.StatusNotFound, call(r, http.MethodGet, "/api/nope", "").Code)
}

func TestRouterAccessGates(t *testing.T) {
	r := newTestEngine(t)
	cases := []struct {
		name   string
		method string
		path   string
		token  string
		status int
		code   string
	}{
		{"missing token", http.MethodGet, "/api/users", "", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"unknown token", http.MethodGet, "/api/users", "forged", http.StatusUnauthorized, "UNAUTHORIZED"},
		{"employee on admin analytics", http.MethodGet, "/api/admin/summary", "employee", http.StatusForbidden, "FORBIDDEN"},
		{"employee deleting department", http.MethodDelete, "/api/departments/d1", "employee", http.StatusForbidden, "FORBIDDEN"},
		{"super admin on tenant users", http.MethodGet, "/api/users", "super", http.StatusForbidden, "FORBIDDEN"},
		{"super admin on own profile", http.MethodGet, "/api/users/me/profile", "super", http.StatusForbidden, "FORBIDDEN"},
		{"employee on plan catalogue writes", http.MethodPost, "/api/subscriptions/plans", "employee", http.StatusForbidden, "FORBIDDEN"},
		{"employee on platform stats", http.MethodGet, "/api/super-admin/stats", "employee", http.StatusForbidden, "FORBIDDEN"},
		{"pending password on sessions", http.MethodGet, "/api/auth/sessions", "pending", http.StatusForbidden, "PASSWORD_CHANGE_REQUIRED"},
		{"pending password on users", http.MethodGet, "/api/users", "pending", http.StatusForbidden, "PASSWORD_CHANGE_REQUIRED"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := call(r, tc.method, tc.path, tc.token)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.code, errorCode(t, rec))
		})
	}
}

func TestRouterPendingPasswordMayChangeIt(t *testing.T) {
	r := newTestEngine(t)

	assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/api/auth/me", "pending").Code)
	assert.Equal(t, http.StatusOK, call(r, http.MethodPost, "/api/auth/change-password", "pending").Code)
	assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/api/auth/sessions", "employee").Code)
}

func TestRouterRateLimitsLogin(t *testing.T) {
	r := newTestEngine(t)

	assert.Equal(t, http.StatusOK, call(r, http.MethodPost, "/api/auth/login", "").Code)
	rec := call(r, http.MethodPost, "/api/auth/login", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, call(r, http.MethodPost, "/api/auth/refresh", "").Code)
}
