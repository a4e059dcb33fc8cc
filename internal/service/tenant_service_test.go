package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
	"github.com/noah-isme/hrms-saas-api/pkg/security"
)

type tenantFixture struct {
	svc       *TenantService
	scoper    *fakeScoper
	tenants   *fakeTenants
	users     *fakeUsers
	employees *fakeEmployees
	subs      *fakeSubscriptions
	audit     *fakeAudit
	notifier  *notifierStub
}

func newTenantFixture(plans ...models.SubscriptionPlan) *tenantFixture {
	f := &tenantFixture{
		scoper:    &fakeScoper{},
		tenants:   newFakeTenants(),
		users:     newFakeUsers(),
		employees: newFakeEmployees(),
		subs:      newFakeSubscriptions(plans...),
		audit:     &fakeAudit{},
		notifier:  newNotifierStub(),
	}
	f.svc = NewTenantService(f.scoper, f.tenants, f.users, f.employees, f.subs, f.audit, f.notifier, nil, nil)
	f.svc.now = func() time.Time { return time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC) }
	return f
}

func TestTenantServiceRegisterWithTrial(t *testing.T) {
	trialDays := 30
	f := newTenantFixture(models.SubscriptionPlan{ID: "plan-trial", Name: "Trial", PlanType: models.PlanTrial, IsTrial: true, TrialDurationDays: &trialDays})

	result, err := f.svc.Register(context.Background(), models.RegisterTenantRequest{
		Name:      "Acme Corp",
		Email:     "owner@acme.test",
		IP:        "10.0.0.1",
		UserAgent: "curl/8",
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", result.Tenant.Name)
	assert.True(t, result.Tenant.IsActive)
	assert.Equal(t, models.RoleAdmin, result.AdminUser.Role)
	assert.True(t, result.AdminUser.MustChangePassword)
	require.NotNil(t, result.AdminUser.TenantID)
	assert.Equal(t, result.Tenant.ID, *result.AdminUser.TenantID)

	admin, ok := f.users.users[result.AdminUser.ID]
	require.True(t, ok)
	assert.True(t, admin.MustChangePassword)
	assert.NotEmpty(t, admin.PasswordHash)

	emp := f.employees.forUser(admin.ID)
	require.NotNil(t, emp)
	assert.Equal(t, "Administrator", emp.FirstName)
	assert.Equal(t, result.Tenant.ID, emp.TenantID)

	require.NotNil(t, result.Subscription)
	assert.Equal(t, models.SubscriptionTrial, result.Subscription.Status)
	require.NotNil(t, result.Subscription.EndDate)
	assert.Equal(t, time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC), *result.Subscription.EndDate)

	assert.Equal(t, models.RoleSystem, f.scoper.lastRole())
	assert.Equal(t, []string{models.AuditActionTenantRegister}, f.audit.actions())
	require.NotNil(t, f.audit.entries[0].TenantID)
	assert.Equal(t, result.Tenant.ID, *f.audit.entries[0].TenantID)
	assert.Equal(t, "10.0.0.1", *f.audit.entries[0].IPAddress)
	assert.Equal(t, []string{"Acme Corp:owner@acme.test"}, f.notifier.tenants)
}

func TestTenantServiceRegisterWithoutTrialPlan(t *testing.T) {
	f := newTenantFixture()

	result, err := f.svc.Register(context.Background(), models.RegisterTenantRequest{Name: "Beta", Email: "hr@beta.test"})
	require.NoError(t, err)
	assert.Nil(t, result.Subscription)
	assert.Len(t, f.tenants.tenants, 1)
}

func TestTenantServiceRegisterDefaultsTrialLength(t *testing.T) {
	f := newTenantFixture(models.SubscriptionPlan{ID: "plan-trial", Name: "Trial", IsTrial: true})

	result, err := f.svc.Register(context.Background(), models.RegisterTenantRequest{Name: "Gamma", Email: "a@gamma.test"})
	require.NoError(t, err)
	require.NotNil(t, result.Subscription)
	assert.Equal(t, time.Date(2026, 3, 24, 0, 0, 0, 0, time.UTC), *result.Subscription.EndDate)
}

func TestTenantServiceRegisterConflict(t *testing.T) {
	f := newTenantFixture()
	f.tenants.conflict = "domain"

	_, err := f.svc.Register(context.Background(), models.RegisterTenantRequest{Name: "Dup", Email: "x@dup.test", Domain: strPtr("dup.test")})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 409, appErr.Status)
	assert.Equal(t, "Tenant with this domain already exists", appErr.Message)
	assert.Empty(t, f.users.users)
	assert.Empty(t, f.notifier.tenants)
}

func TestTenantServiceRegisterValidation(t *testing.T) {
	f := newTenantFixture()

	_, err := f.svc.Register(context.Background(), models.RegisterTenantRequest{Name: "A", Email: "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, f.scoper.actors)
}

func TestTenantServiceRegisterTempPasswordMatchesHash(t *testing.T) {
	f := newTenantFixture()
	var sent string
	f.svc.notifier = tenantNotifierFunc(func(_ *models.Tenant, _ string, temp string, _ *time.Time) { sent = temp })

	result, err := f.svc.Register(context.Background(), models.RegisterTenantRequest{Name: "Delta", Email: "boss@delta.test"})
	require.NoError(t, err)
	require.NotEmpty(t, sent)
	assert.True(t, security.CheckPassword(f.users.users[result.AdminUser.ID].PasswordHash, sent))
}

type tenantNotifierFunc func(tenant *models.Tenant, adminEmail, tempPassword string, trialEndsAt *time.Time)

func (fn tenantNotifierFunc) TenantWelcome(tenant *models.Tenant, adminEmail, tempPassword string, trialEndsAt *time.Time) {
	fn(tenant, adminEmail, tempPassword, trialEndsAt)
}
