package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hrms-saas-api/internal/models"
)

var renewalNow = time.Date(2026, 7, 15, 2, 0, 0, 0, time.UTC)

func expiring(id, tenantID string, status models.SubscriptionStatus, end time.Time, autoRenew bool, cycle int) models.ExpiringSubscription {
	return models.ExpiringSubscription{
		TenantSubscription: models.TenantSubscription{ID: id, TenantID: tenantID, Status: status, EndDate: &end, AutoRenew: autoRenew},
		TenantName:         "Acme",
		TenantEmail:        "billing@acme.test",
		CycleMonths:        cycle,
	}
}

func newRenewalFixture() (*RenewalService, *fakeSubscriptions, *fakeTenants, *fakeAudit, *notifierStub, *fakeScoper) {
	subs := newFakeSubscriptions()
	tenants := newFakeTenants(
		models.Tenant{ID: testTenantID, Name: "Acme", IsActive: true},
		models.Tenant{ID: otherTenantID, Name: "Other", IsActive: true},
	)
	users := newFakeUsers(member(testAdminID, "admin@acme.test", models.RoleAdmin))
	audit := &fakeAudit{}
	notifier := newNotifierStub()
	scoper := &fakeScoper{}
	svc := NewRenewalService(scoper, subs, tenants, users, audit, notifier, RenewalConfig{}, nil)
	svc.now = func() time.Time { return renewalNow }
	return svc, subs, tenants, audit, notifier, scoper
}

func TestRenewalServiceWarnsAdmins(t *testing.T) {
	svc, subs, _, _, notifier, scoper := newRenewalFixture()
	subs.ending[models.SubscriptionTrial] = []models.ExpiringSubscription{
		expiring("trial-1", testTenantID, models.SubscriptionTrial, renewalNow.AddDate(0, 0, 5), false, 1),
	}
	subs.ending[models.SubscriptionActive] = []models.ExpiringSubscription{
		expiring("sub-1", testTenantID, models.SubscriptionActive, renewalNow.AddDate(0, 0, 2), true, 1),
	}

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.TrialWarnings)
	assert.Equal(t, 1, report.SubscriptionWarnings)
	require.Len(t, notifier.expiring, 2)
	assert.Equal(t, []string{"admin@acme.test"}, notifier.expiredTo[0])
	assert.Equal(t, models.RoleSystem, scoper.lastRole())
}

func TestRenewalServiceExpiresTrialAndDeactivatesTenant(t *testing.T) {
	svc, subs, tenants, audit, _, _ := newRenewalFixture()
	sub := expiring("trial-1", testTenantID, models.SubscriptionTrial, renewalNow.AddDate(0, 0, -1), false, 1)
	subs.subs[sub.ID] = &sub.TenantSubscription
	subs.ended[models.SubscriptionTrial] = []models.ExpiringSubscription{sub}

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.TrialsExpired)
	assert.Equal(t, models.SubscriptionExpired, subs.subs["trial-1"].Status)
	assert.False(t, tenants.tenants[testTenantID].IsActive)
	assert.True(t, tenants.tenants[otherTenantID].IsActive)
	assert.Equal(t, []string{models.AuditActionSubscriptionChange, models.AuditActionTenantStatus}, audit.actions())
	assert.Equal(t, testTenantID, *audit.entries[1].TenantID)
}

func TestRenewalServiceClosesOrRenewsActive(t *testing.T) {
	svc, subs, _, _, _, _ := newRenewalFixture()
	endedYesterday := time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC)
	closing := expiring("sub-close", testTenantID, models.SubscriptionActive, endedYesterday, false, 1)
	renewing := expiring("sub-renew", otherTenantID, models.SubscriptionActive, endedYesterday, true, 12)
	subs.subs[closing.ID] = &closing.TenantSubscription
	subs.subs[renewing.ID] = &renewing.TenantSubscription
	subs.ended[models.SubscriptionActive] = []models.ExpiringSubscription{closing, renewing}

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Expired)
	assert.Equal(t, 1, report.Renewed)
	assert.Equal(t, models.SubscriptionExpired, subs.subs["sub-close"].Status)
	assert.Equal(t, time.Date(2027, 7, 14, 0, 0, 0, 0, time.UTC), subs.extended["sub-renew"])
}

func TestRenewalServiceCountsFailures(t *testing.T) {
	svc, subs, _, _, _, _ := newRenewalFixture()
	missing := expiring("not-stored", testTenantID, models.SubscriptionActive, renewalNow.AddDate(0, 0, -3), false, 1)
	subs.ended[models.SubscriptionActive] = []models.ExpiringSubscription{missing}

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failures)
	assert.Zero(t, report.Expired)
}

func TestRenewalServiceScopeFailureAborts(t *testing.T) {
	svc, _, _, _, _, scoper := newRenewalFixture()
	scoper.err = errors.New("database unavailable")

	_, err := svc.Run(context.Background())
	require.Error(t, err)
}

func TestNextEndSkipsMissedCycles(t *testing.T) {
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	next := nextEnd(end, 3, today)
	assert.False(t, next.Before(today))
	assert.Equal(t, time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC), next)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), nextEnd(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), 0, today))
}
