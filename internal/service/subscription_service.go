package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	"github.com/noah-isme/hrms-saas-api/internal/validation"
	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
)

const defaultCurrency = "INR"

type subscriptionStore interface {
	ListPlans(ctx context.Context, q sqlx.ExtContext) ([]models.SubscriptionPlan, error)
	FindPlan(ctx context.Context, q sqlx.ExtContext, id string) (*models.SubscriptionPlan, error)
	PlanNameTaken(ctx context.Context, q sqlx.ExtContext, name, excludeID string) (bool, error)
	CreatePlan(ctx context.Context, q sqlx.ExtContext, plan *models.SubscriptionPlan) error
	UpdatePlan(ctx context.Context, q sqlx.ExtContext, plan *models.SubscriptionPlan) error
	PlanInUse(ctx context.Context, q sqlx.ExtContext, id string) (bool, error)
	DeletePlan(ctx context.Context, q sqlx.ExtContext, id string) error
	FindCurrent(ctx context.Context, q sqlx.ExtContext, tenantID string) (*models.TenantSubscription, error)
	HasStatus(ctx context.Context, q sqlx.ExtContext, tenantID string, status models.SubscriptionStatus) (bool, error)
	CreateSubscription(ctx context.Context, q sqlx.ExtContext, sub *models.TenantSubscription) error
	SetStatus(ctx context.Context, q sqlx.ExtContext, id string, status models.SubscriptionStatus, updatedBy *string) error
	DeactivateCurrent(ctx context.Context, q sqlx.ExtContext, tenantID string, updatedBy *string) (int64, error)
}

type tenantFinder interface {
	FindByID(ctx context.Context, q sqlx.ExtContext, id string) (*models.Tenant, error)
}

// SubscriptionService manages the plan catalogue and tenant subscriptions.
type SubscriptionService struct {
	scoper    Scoper
	store     subscriptionStore
	tenants   tenantFinder
	audit     AuditStore
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewSubscriptionService constructs a SubscriptionService.
func NewSubscriptionService(scoper Scoper, store subscriptionStore, tenants tenantFinder, audit AuditStore, validate *validator.Validate, logger *zap.Logger) *SubscriptionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validation.New()
	}
	return &SubscriptionService{
		scoper:    scoper,
		store:     store,
		tenants:   tenants,
		audit:     audit,
		validator: validate,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ListPlans returns the catalogue. A nil actor serves the public listing.
func (s *SubscriptionService) ListPlans(ctx context.Context, actor *models.Actor) ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	err := s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		var err error
		plans, err = s.store.ListPlans(ctx, q)
		return err
	})
	if err != nil {
		return nil, mapStoreError(err, "", "")
	}
	if plans == nil {
		plans = []models.SubscriptionPlan{}
	}
	return plans, nil
}

// CreatePlan adds a plan to the catalogue.
func (s *SubscriptionService) CreatePlan(ctx context.Context, actor *models.Actor, req models.PlanRequest) (*models.SubscriptionPlan, error) {
	if err := s.checkPlanRequest(actor, &req); err != nil {
		return nil, err
	}
	plan := planFromRequest(req)
	plan.CreatedBy = stringPtr(actor.UserID)

	err := s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		if err := s.ensureNameFree(ctx, q, plan.Name, ""); err != nil {
			return err
		}
		if err := s.store.CreatePlan(ctx, q, plan); err != nil {
			return mapStoreError(err, "", "Plan with this name already exists")
		}
		return writeAudit(ctx, q, s.audit, actor, auditEvent{
			Action:     models.AuditActionPlanCreate,
			Resource:   "subscription_plan",
			ResourceID: plan.ID,
			New:        plan,
		})
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// UpdatePlan replaces a plan definition.
func (s *SubscriptionService) UpdatePlan(ctx context.Context, actor *models.Actor, id string, req models.PlanRequest) (*models.SubscriptionPlan, error) {
	if err := s.checkPlanRequest(actor, &req); err != nil {
		return nil, err
	}
	plan := planFromRequest(req)
	plan.ID = id
	plan.UpdatedBy = stringPtr(actor.UserID)

	err := s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		before, err := s.store.FindPlan(ctx, q, id)
		if err != nil {
			return mapStoreError(err, "Plan not found", "")
		}
		if err := s.ensureNameFree(ctx, q, plan.Name, id); err != nil {
			return err
		}
		plan.CreatedBy = before.CreatedBy
		plan.CreatedAt = before.CreatedAt
		if err := s.store.UpdatePlan(ctx, q, plan); err != nil {
			return mapStoreError(err, "Plan not found", "Plan with this name already exists")
		}
		return writeAudit(ctx, q, s.audit, actor, auditEvent{
			Action:     models.AuditActionPlanUpdate,
			Resource:   "subscription_plan",
			ResourceID: id,
			Old:        before,
			New:        plan,
		})
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// DeletePlan removes a plan no subscription references.
func (s *SubscriptionService) DeletePlan(ctx context.Context, actor *models.Actor, id string) error {
	if actor.Role != models.RoleSuperAdmin {
		return appErrors.Clone(appErrors.ErrForbidden, "only SUPER_ADMIN can manage plans")
	}
	return s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		before, err := s.store.FindPlan(ctx, q, id)
		if err != nil {
			return mapStoreError(err, "Plan not found", "")
		}
		used, err := s.store.PlanInUse(ctx, q, id)
		if err != nil {
			return appErrors.Internal(err, "failed to check plan usage")
		}
		if used {
			return appErrors.Clone(appErrors.ErrConflict, "Plan is in use by tenant subscriptions")
		}
		if err := s.store.DeletePlan(ctx, q, id); err != nil {
			return mapStoreError(err, "Plan not found", "Plan is in use by tenant subscriptions")
		}
		return writeAudit(ctx, q, s.audit, actor, auditEvent{
			Action:     models.AuditActionPlanDelete,
			Resource:   "subscription_plan",
			ResourceID: id,
			Old:        before,
		})
	})
}

// Assign subscribes a tenant to a plan. Any trial is closed first; an ACTIVE
// subscription must be changed through upgrade or downgrade instead.
func (s *SubscriptionService) Assign(ctx context.Context, actor *models.Actor, tenantID, planID string) (*models.TenantSubscription, error) {
	if actor.Role != models.RoleSuperAdmin {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only SUPER_ADMIN can assign plans")
	}
	var sub *models.TenantSubscription
	err := s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		if _, err := s.tenants.FindByID(ctx, q, tenantID); err != nil {
			return mapStoreError(err, "Tenant not found", "")
		}
		active, err := s.store.HasStatus(ctx, q, tenantID, models.SubscriptionActive)
		if err != nil {
			return appErrors.Internal(err, "failed to check subscription")
		}
		if active {
			return appErrors.Clone(appErrors.ErrConflict, "Tenant already has an active subscription")
		}
		sub, err = s.switchPlan(ctx, q, actor, tenantID, planID, "assign")
		return err
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// Current returns the tenant's ACTIVE or TRIAL subscription.
func (s *SubscriptionService) Current(ctx context.Context, actor *models.Actor) (*models.TenantSubscription, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	var sub *models.TenantSubscription
	err = s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		var err error
		sub, err = s.store.FindCurrent(ctx, q, tenantID)
		return err
	})
	if err != nil {
		return nil, mapStoreError(err, "No active subscription found", "")
	}
	return sub, nil
}

// Status summarises the current subscription with the days left on it.
func (s *SubscriptionService) Status(ctx context.Context, actor *models.Actor) (*models.SubscriptionStatusView, error) {
	sub, err := s.Current(ctx, actor)
	if err != nil {
		if errors.Is(err, appErrors.ErrNotFound) {
			return &models.SubscriptionStatusView{HasSubscription: false}, nil
		}
		return nil, err
	}
	view := &models.SubscriptionStatusView{HasSubscription: true, Subscription: sub}
	if sub.EndDate != nil {
		now := s.now()
		days := daysUntil(now, *sub.EndDate)
		view.DaysRemaining = &days
		view.IsExpired = sub.EndDate.UTC().Before(now.Truncate(24 * time.Hour))
	}
	return view, nil
}

// Upgrade moves the tenant to planID.
func (s *SubscriptionService) Upgrade(ctx context.Context, actor *models.Actor, planID string) (*models.TenantSubscription, error) {
	return s.change(ctx, actor, planID, "upgrade")
}

// Downgrade moves the tenant to planID.
func (s *SubscriptionService) Downgrade(ctx context.Context, actor *models.Actor, planID string) (*models.TenantSubscription, error) {
	return s.change(ctx, actor, planID, "downgrade")
}

func (s *SubscriptionService) change(ctx context.Context, actor *models.Actor, planID, direction string) (*models.TenantSubscription, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleAdmin {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only ADMIN can change the subscription")
	}
	var sub *models.TenantSubscription
	err = s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		current, err := s.store.FindCurrent(ctx, q, tenantID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return appErrors.Internal(err, "failed to load subscription")
		}
		if current != nil && current.PlanID == planID && current.Status == models.SubscriptionActive {
			return appErrors.Clone(appErrors.ErrConflict, "Tenant is already subscribed to this plan")
		}
		sub, err = s.switchPlan(ctx, q, actor, tenantID, planID, direction)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// switchPlan closes the current subscription and opens an ACTIVE one for a
// full billing cycle starting today.
func (s *SubscriptionService) switchPlan(ctx context.Context, q sqlx.ExtContext, actor *models.Actor, tenantID, planID, reason string) (*models.TenantSubscription, error) {
	plan, err := s.store.FindPlan(ctx, q, planID)
	if err != nil {
		return nil, mapStoreError(err, "Plan not found", "")
	}
	if plan.IsTrial || plan.PlanType == models.PlanTrial {
		return nil, appErrors.Clone(appErrors.ErrValidation, "trial plans cannot be subscribed to directly")
	}
	by := stringPtr(actor.UserID)
	if _, err := s.store.DeactivateCurrent(ctx, q, tenantID, by); err != nil {
		return nil, appErrors.Internal(err, "failed to close current subscription")
	}
	start := s.now().Truncate(24 * time.Hour)
	end := start.AddDate(0, plan.CycleMonths(), 0)
	sub := &models.TenantSubscription{
		TenantID:  tenantID,
		PlanID:    plan.ID,
		PlanName:  &plan.Name,
		StartDate: start,
		EndDate:   &end,
		Status:    models.SubscriptionActive,
		CreatedBy: by,
	}
	if err := s.store.CreateSubscription(ctx, q, sub); err != nil {
		return nil, mapStoreError(err, "", "Tenant already has an active subscription")
	}
	return sub, writeAudit(ctx, q, s.audit, actor, auditEvent{
		Action:     models.AuditActionSubscriptionChange,
		Resource:   "tenant_subscription",
		ResourceID: sub.ID,
		TenantID:   &tenantID,
		New:        map[string]interface{}{"plan_id": plan.ID, "reason": reason, "end_date": end},
	})
}

// Cancel ends the current subscription.
func (s *SubscriptionService) Cancel(ctx context.Context, actor *models.Actor) (*models.TenantSubscription, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleAdmin {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only ADMIN can cancel the subscription")
	}
	var sub *models.TenantSubscription
	err = s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		var err error
		if sub, err = s.store.FindCurrent(ctx, q, tenantID); err != nil {
			return mapStoreError(err, "No active subscription found", "")
		}
		if err := s.store.SetStatus(ctx, q, sub.ID, models.SubscriptionCancelled, stringPtr(actor.UserID)); err != nil {
			return mapStoreError(err, "No active subscription found", "")
		}
		old := sub.Status
		sub.Status = models.SubscriptionCancelled
		return writeAudit(ctx, q, s.audit, actor, auditEvent{
			Action:     models.AuditActionSubscriptionChange,
			Resource:   "tenant_subscription",
			ResourceID: sub.ID,
			Old:        map[string]interface{}{"status": old},
			New:        map[string]interface{}{"status": sub.Status, "reason": "cancel"},
		})
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) checkPlanRequest(actor *models.Actor, req *models.PlanRequest) error {
	if actor.Role != models.RoleSuperAdmin {
		return appErrors.Clone(appErrors.ErrForbidden, "only SUPER_ADMIN can manage plans")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.PlanType == "" {
		req.PlanType = models.PlanMonthly
	}
	if req.Currency == "" {
		req.Currency = defaultCurrency
	}
	req.Currency = strings.ToUpper(req.Currency)
	return validation.Struct(s.validator, *req, "invalid plan payload")
}

func (s *SubscriptionService) ensureNameFree(ctx context.Context, q sqlx.ExtContext, name, excludeID string) error {
	taken, err := s.store.PlanNameTaken(ctx, q, name, excludeID)
	if err != nil {
		return appErrors.Internal(err, "failed to check plan name")
	}
	if taken {
		return appErrors.Clone(appErrors.ErrConflict, "Plan with this name already exists")
	}
	return nil
}

func planFromRequest(req models.PlanRequest) *models.SubscriptionPlan {
	plan := &models.SubscriptionPlan{
		Name:               req.Name,
		Description:        req.Description,
		PricePerMonth:      req.PricePerMonth,
		PricePerEmployee:   req.PricePerEmployee,
		MaxEmployees:       req.MaxEmployees,
		PlanType:           req.PlanType,
		BillingCycleMonths: req.BillingCycleMonths,
		Currency:           req.Currency,
		TrialDurationDays:  req.TrialDurationDays,
		IsTrial:            req.IsTrial || req.PlanType == models.PlanTrial,
	}
	if req.Features != nil {
		plan.Features = jsonText(req.Features)
	}
	return plan
}
