package service

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/hrms-saas-api/internal/models"
)

type renewalStore interface {
	ListEndingBetween(ctx context.Context, q sqlx.ExtContext, status models.SubscriptionStatus, from, to time.Time) ([]models.ExpiringSubscription, error)
	ListEndedBefore(ctx context.Context, q sqlx.ExtContext, status models.SubscriptionStatus, asOf time.Time) ([]models.ExpiringSubscription, error)
	SetStatus(ctx context.Context, q sqlx.ExtContext, id string, status models.SubscriptionStatus, updatedBy *string) error
	Extend(ctx context.Context, q sqlx.ExtContext, id string, endDate time.Time) error
}

type tenantDeactivator interface {
	SetActive(ctx context.Context, q sqlx.ExtContext, id string, active bool) error
}

type adminDirectory interface {
	AdminEmails(ctx context.Context, q sqlx.ExtContext, tenantID string) ([]string, error)
}

type expiryNotifier interface {
	SubscriptionExpiring(sub models.ExpiringSubscription, to []string, now time.Time)
}

// RenewalConfig controls the renewal sweep.
type RenewalConfig struct {
	Interval            time.Duration
	TrialWarning        time.Duration
	SubscriptionWarning time.Duration
}

// RenewalReport counts what one sweep did.
type RenewalReport struct {
	TrialWarnings        int `json:"trial_warnings"`
	TrialsExpired        int `json:"trials_expired"`
	SubscriptionWarnings int `json:"subscription_warnings"`
	Renewed              int `json:"renewed"`
	Expired              int `json:"expired"`
	Failures             int `json:"failures"`
}

// RenewalService warns about ending subscriptions and closes or renews the
// ones that have ended. It always acts as the SYSTEM actor.
type RenewalService struct {
	scoper   Scoper
	store    renewalStore
	tenants  tenantDeactivator
	admins   adminDirectory
	audit    AuditStore
	notifier expiryNotifier
	cfg      RenewalConfig
	logger   *zap.Logger
	now      func() time.Time
}

// NewRenewalService constructs a RenewalService.
func NewRenewalService(scoper Scoper, store renewalStore, tenants tenantDeactivator, admins adminDirectory, audit AuditStore, notifier expiryNotifier, cfg RenewalConfig, logger *zap.Logger) *RenewalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 24 * time.Hour
	}
	if cfg.TrialWarning <= 0 {
		cfg.TrialWarning = 7 * 24 * time.Hour
	}
	if cfg.SubscriptionWarning <= 0 {
		cfg.SubscriptionWarning = 3 * 24 * time.Hour
	}
	return &RenewalService{
		scoper:   scoper,
		store:    store,
		tenants:  tenants,
		admins:   admins,
		audit:    audit,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Start runs a sweep immediately and then on every interval until ctx ends.
func (s *RenewalService) Start(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	go func() {
		defer ticker.Stop()
		s.runLogged(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runLogged(ctx)
			}
		}
	}()
}

func (s *RenewalService) runLogged(ctx context.Context) {
	report, err := s.Run(ctx)
	if err != nil {
		s.logger.Error("renewal sweep failed", zap.Error(err))
		return
	}
	s.logger.Info("renewal sweep finished",
		zap.Int("trial_warnings", report.TrialWarnings),
		zap.Int("trials_expired", report.TrialsExpired),
		zap.Int("subscription_warnings", report.SubscriptionWarnings),
		zap.Int("renewed", report.Renewed),
		zap.Int("expired", report.Expired),
		zap.Int("failures", report.Failures),
	)
}

// Run performs one sweep. Each expired subscription is handled in its own
// transaction so a single failure does not undo the rest.
func (s *RenewalService) Run(ctx context.Context) (*RenewalReport, error) {
	now := s.now()
	today := now.Truncate(24 * time.Hour)
	report := &RenewalReport{}

	n, err := s.warn(ctx, models.SubscriptionTrial, today, today.Add(s.cfg.TrialWarning), now)
	if err != nil {
		return report, err
	}
	report.TrialWarnings = n

	n, err = s.warn(ctx, models.SubscriptionActive, today, today.Add(s.cfg.SubscriptionWarning), now)
	if err != nil {
		return report, err
	}
	report.SubscriptionWarnings = n

	trials, err := s.ended(ctx, models.SubscriptionTrial, today)
	if err != nil {
		return report, err
	}
	for _, sub := range trials {
		if err := s.expireTrial(ctx, sub); err != nil {
			report.Failures++
			s.logger.Warn("failed to expire trial", zap.String("subscription_id", sub.ID), zap.Error(err))
			continue
		}
		report.TrialsExpired++
	}

	active, err := s.ended(ctx, models.SubscriptionActive, today)
	if err != nil {
		return report, err
	}
	for _, sub := range active {
		renewed, err := s.closeOrRenew(ctx, sub, today)
		if err != nil {
			report.Failures++
			s.logger.Warn("failed to close subscription", zap.String("subscription_id", sub.ID), zap.Error(err))
			continue
		}
		if renewed {
			report.Renewed++
		} else {
			report.Expired++
		}
	}
	return report, nil
}

type pendingWarning struct {
	sub models.ExpiringSubscription
	to  []string
}

func (s *RenewalService) warn(ctx context.Context, status models.SubscriptionStatus, from, to, now time.Time) (int, error) {
	var pending []pendingWarning
	err := s.scoper.WithScope(ctx, models.SystemActor(), func(q sqlx.ExtContext) error {
		subs, err := s.store.ListEndingBetween(ctx, q, status, from, to)
		if err != nil {
			return err
		}
		for _, sub := range subs {
			emails, err := s.admins.AdminEmails(ctx, q, sub.TenantID)
			if err != nil {
				return err
			}
			pending = append(pending, pendingWarning{sub: sub, to: emails})
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	for _, p := range pending {
		if s.notifier != nil {
			s.notifier.SubscriptionExpiring(p.sub, p.to, now)
		}
	}
	return len(pending), nil
}

func (s *RenewalService) ended(ctx context.Context, status models.SubscriptionStatus, today time.Time) ([]models.ExpiringSubscription, error) {
	var subs []models.ExpiringSubscription
	err := s.scoper.WithScope(ctx, models.SystemActor(), func(q sqlx.ExtContext) error {
		var err error
		subs, err = s.store.ListEndedBefore(ctx, q, status, today)
		return err
	})
	return subs, err
}

func (s *RenewalService) expireTrial(ctx context.Context, sub models.ExpiringSubscription) error {
	system := models.SystemActor()
	return s.scoper.WithScope(ctx, system, func(q sqlx.ExtContext) error {
		if err := s.store.SetStatus(ctx, q, sub.ID, models.SubscriptionExpired, nil); err != nil {
			return err
		}
		if err := s.tenants.SetActive(ctx, q, sub.TenantID, false); err != nil {
			return err
		}
		tenantID := sub.TenantID
		if err := writeAudit(ctx, q, s.audit, system, auditEvent{
			Action:     models.AuditActionSubscriptionChange,
			Resource:   "tenant_subscription",
			ResourceID: sub.ID,
			TenantID:   &tenantID,
			Old:        map[string]interface{}{"status": sub.Status},
			New:        map[string]interface{}{"status": models.SubscriptionExpired, "reason": "trial_ended"},
		}); err != nil {
			return err
		}
		return writeAudit(ctx, q, s.audit, system, auditEvent{
			Action:     models.AuditActionTenantStatus,
			Resource:   "tenant",
			ResourceID: sub.TenantID,
			TenantID:   &tenantID,
			New:        map[string]interface{}{"is_active": false, "reason": "trial_ended"},
		})
	})
}

func (s *RenewalService) closeOrRenew(ctx context.Context, sub models.ExpiringSubscription, today time.Time) (bool, error) {
	if sub.EndDate == nil {
		return false, errors.New("subscription has no end date")
	}
	system := models.SystemActor()
	tenantID := sub.TenantID
	if !sub.AutoRenew {
		return false, s.scoper.WithScope(ctx, system, func(q sqlx.ExtContext) error {
			if err := s.store.SetStatus(ctx, q, sub.ID, models.SubscriptionExpired, nil); err != nil {
				return err
			}
			return writeAudit(ctx, q, s.audit, system, auditEvent{
				Action:     models.AuditActionSubscriptionChange,
				Resource:   "tenant_subscription",
				ResourceID: sub.ID,
				TenantID:   &tenantID,
				Old:        map[string]interface{}{"status": sub.Status},
				New:        map[string]interface{}{"status": models.SubscriptionExpired, "reason": "ended"},
			})
		})
	}

	end := nextEnd(*sub.EndDate, sub.CycleMonths, today)
	return true, s.scoper.WithScope(ctx, system, func(q sqlx.ExtContext) error {
		if err := s.store.Extend(ctx, q, sub.ID, end); err != nil {
			return err
		}
		return writeAudit(ctx, q, s.audit, system, auditEvent{
			Action:     models.AuditActionSubscriptionChange,
			Resource:   "tenant_subscription",
			ResourceID: sub.ID,
			TenantID:   &tenantID,
			Old:        map[string]interface{}{"end_date": sub.EndDate},
			New:        map[string]interface{}{"end_date": end, "reason": "auto_renew"},
		})
	})
}

// nextEnd advances end by whole billing cycles until it is no longer in the past.
func nextEnd(end time.Time, cycleMonths int, today time.Time) time.Time {
	if cycleMonths <= 0 {
		cycleMonths = 1
	}
	next := end.AddDate(0, cycleMonths, 0)
	for next.Before(today) {
		next = next.AddDate(0, cycleMonths, 0)
	}
	return next
}
