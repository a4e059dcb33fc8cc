package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"github.com/noah-isme/hrms-saas-api/internal/models"
)

const planColumns = `id, name, description, price_per_month, price_per_employee, max_employees, features, plan_type,
billing_cycle_months, currency, trial_duration_days, is_trial, created_by, updated_by, created_at, updated_at`

const subscriptionSelect = `SELECT s.id, s.tenant_id, s.plan_id, p.name AS plan_name, s.start_date, s.end_date, s.status, s.auto_renew,
s.created_by, s.updated_by, s.created_at, s.updated_at
FROM tenant_subscription s
JOIN subscription_plans p ON p.id = s.plan_id`

// SubscriptionRepository persists plans and tenant subscriptions.
type SubscriptionRepository struct{}

// NewSubscriptionRepository constructs a SubscriptionRepository.
func NewSubscriptionRepository() *SubscriptionRepository {
	return &SubscriptionRepository{}
}

// ListPlans returns the plan catalogue.
func (r *SubscriptionRepository) ListPlans(ctx context.Context, q sqlx.ExtContext) ([]models.SubscriptionPlan, error) {
	query := `SELECT ` + planColumns + ` FROM subscription_plans ORDER BY price_per_month, name`
	var plans []models.SubscriptionPlan
	if err := sqlx.SelectContext(ctx, q, &plans, query); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

// FindPlan loads a plan.
func (r *SubscriptionRepository) FindPlan(ctx context.Context, q sqlx.ExtContext, id string) (*models.SubscriptionPlan, error) {
	query := `SELECT ` + planColumns + ` FROM subscription_plans WHERE id = $1`
	var plan models.SubscriptionPlan
	if err := sqlx.GetContext(ctx, q, &plan, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find plan: %w", err)
	}
	return &plan, nil
}

// FindTrialPlan returns the oldest trial plan.
func (r *SubscriptionRepository) FindTrialPlan(ctx context.Context, q sqlx.ExtContext) (*models.SubscriptionPlan, error) {
	query := `SELECT ` + planColumns + ` FROM subscription_plans WHERE is_trial OR plan_type = 'TRIAL' ORDER BY created_at LIMIT 1`
	var plan models.SubscriptionPlan
	if err := sqlx.GetContext(ctx, q, &plan, query); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find trial plan: %w", err)
	}
	return &plan, nil
}

// PlanNameTaken reports whether another plan uses name, case-insensitively.
func (r *SubscriptionRepository) PlanNameTaken(ctx context.Context, q sqlx.ExtContext, name, excludeID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM subscription_plans WHERE LOWER(name) = LOWER($1) AND ($2 = '' OR id::text <> $2))`
	var taken bool
	if err := sqlx.GetContext(ctx, q, &taken, query, name, excludeID); err != nil {
		return false, fmt.Errorf("check plan name: %w", err)
	}
	return taken, nil
}

// CreatePlan inserts a plan.
func (r *SubscriptionRepository) CreatePlan(ctx context.Context, q sqlx.ExtContext, plan *models.SubscriptionPlan) error {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	if len(plan.Features) == 0 {
		plan.Features = types.JSONText(`{}`)
	}
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	const query = `INSERT INTO subscription_plans (id, name, description, price_per_month, price_per_employee, max_employees, features, plan_type,
billing_cycle_months, currency, trial_duration_days, is_trial, created_by, created_at, updated_at)
VALUES (:id, :name, :description, :price_per_month, :price_per_employee, :max_employees, :features, :plan_type,
:billing_cycle_months, :currency, :trial_duration_days, :is_trial, :created_by, :created_at, :updated_at)`
	if _, err := sqlx.NamedExecContext(ctx, q, query, plan); err != nil {
		return translate("insert plan", err)
	}
	return nil
}

// UpdatePlan replaces the mutable plan fields.
func (r *SubscriptionRepository) UpdatePlan(ctx context.Context, q sqlx.ExtContext, plan *models.SubscriptionPlan) error {
	if len(plan.Features) == 0 {
		plan.Features = types.JSONText(`{}`)
	}
	plan.UpdatedAt = time.Now().UTC()
	const query = `UPDATE subscription_plans SET name = :name, description = :description, price_per_month = :price_per_month,
price_per_employee = :price_per_employee, max_employees = :max_employees, features = :features, plan_type = :plan_type,
billing_cycle_months = :billing_cycle_months, currency = :currency, trial_duration_days = :trial_duration_days,
is_trial = :is_trial, updated_by = :updated_by, updated_at = :updated_at
WHERE id = :id`
	result, err := sqlx.NamedExecContext(ctx, q, query, plan)
	if err != nil {
		return translate("update plan", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update plan rows affected: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// PlanInUse reports whether any subscription references the plan.
func (r *SubscriptionRepository) PlanInUse(ctx context.Context, q sqlx.ExtContext, id string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM tenant_subscription WHERE plan_id = $1)`
	var used bool
	if err := sqlx.GetContext(ctx, q, &used, query, id); err != nil {
		return false, fmt.Errorf("check plan usage: %w", err)
	}
	return used, nil
}

// DeletePlan removes a plan.
func (r *SubscriptionRepository) DeletePlan(ctx context.Context, q sqlx.ExtContext, id string) error {
	return execOne(ctx, q, "delete plan", `DELETE FROM subscription_plans WHERE id = $1`, id)
}

// FindCurrent returns the tenant's newest ACTIVE or TRIAL subscription.
func (r *SubscriptionRepository) FindCurrent(ctx context.Context, q sqlx.ExtContext, tenantID string) (*models.TenantSubscription, error) {
	query := subscriptionSelect + ` WHERE s.tenant_id = $1 AND s.status IN ('ACTIVE', 'TRIAL') ORDER BY s.created_at DESC LIMIT 1`
	var sub models.TenantSubscription
	if err := sqlx.GetContext(ctx, q, &sub, query, tenantID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find current subscription: %w", err)
	}
	return &sub, nil
}

// HasStatus reports whether the tenant has a subscription in status.
func (r *SubscriptionRepository) HasStatus(ctx context.Context, q sqlx.ExtContext, tenantID string, status models.SubscriptionStatus) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM tenant_subscription WHERE tenant_id = $1 AND status = $2)`
	var exists bool
	if err := sqlx.GetContext(ctx, q, &exists, query, tenantID, status); err != nil {
		return false, fmt.Errorf("check subscription status: %w", err)
	}
	return exists, nil
}

// CreateSubscription inserts a tenant subscription.
func (r *SubscriptionRepository) CreateSubscription(ctx context.Context, q sqlx.ExtContext, sub *models.TenantSubscription) error {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	const query = `INSERT INTO tenant_subscription (id, tenant_id, plan_id, start_date, end_date, status, auto_renew, created_by, created_at, updated_at)
VALUES (:id, :tenant_id, :plan_id, :start_date, :end_date, :status, :auto_renew, :created_by, :created_at, :updated_at)`
	if _, err := sqlx.NamedExecContext(ctx, q, query, sub); err != nil {
		return translate("insert subscription", err)
	}
	return nil
}

// SetStatus moves a subscription to status.
func (r *SubscriptionRepository) SetStatus(ctx context.Context, q sqlx.ExtContext, id string, status models.SubscriptionStatus, updatedBy *string) error {
	const query = `UPDATE tenant_subscription SET status = $2, updated_by = $3, updated_at = NOW() WHERE id = $1`
	return execOne(ctx, q, "update subscription status", query, id, status, updatedBy)
}

// DeactivateCurrent marks every ACTIVE or TRIAL subscription of the tenant INACTIVE.
func (r *SubscriptionRepository) DeactivateCurrent(ctx context.Context, q sqlx.ExtContext, tenantID string, updatedBy *string) (int64, error) {
	const query = `UPDATE tenant_subscription SET status = 'INACTIVE', updated_by = $2, updated_at = NOW()
WHERE tenant_id = $1 AND status IN ('ACTIVE', 'TRIAL')`
	return execCount(ctx, q, "deactivate subscriptions", query, tenantID, updatedBy)
}

// Extend pushes the end date of a subscription.
func (r *SubscriptionRepository) Extend(ctx context.Context, q sqlx.ExtContext, id string, endDate time.Time) error {
	const query = `UPDATE tenant_subscription SET end_date = $2, updated_at = NOW() WHERE id = $1`
	return execOne(ctx, q, "extend subscription", query, id, endDate)
}

// ListEndingBetween returns subscriptions in status whose end date falls in [from, to].
func (r *SubscriptionRepository) ListEndingBetween(ctx context.Context, q sqlx.ExtContext, status models.SubscriptionStatus, from, to time.Time) ([]models.ExpiringSubscription, error) {
	return r.listRenewal(ctx, q, `s.status = $1 AND s.end_date BETWEEN $2 AND $3`, status, from, to)
}

// ListEndedBefore returns subscriptions in status whose end date is before asOf.
func (r *SubscriptionRepository) ListEndedBefore(ctx context.Context, q sqlx.ExtContext, status models.SubscriptionStatus, asOf time.Time) ([]models.ExpiringSubscription, error) {
	return r.listRenewal(ctx, q, `s.status = $1 AND s.end_date < $2`, status, asOf)
}

func (r *SubscriptionRepository) listRenewal(ctx context.Context, q sqlx.ExtContext, where string, args ...interface{}) ([]models.ExpiringSubscription, error) {
	query := `SELECT s.id, s.tenant_id, s.plan_id, p.name AS plan_name, s.start_date, s.end_date, s.status, s.auto_renew,
s.created_by, s.updated_by, s.created_at, s.updated_at,
t.name AS tenant_name, t.email AS tenant_email,
COALESCE(p.billing_cycle_months, CASE p.plan_type WHEN 'QUARTERLY' THEN 3 WHEN 'HALF_YEARLY' THEN 6 WHEN 'YEARLY' THEN 12 ELSE 1 END) AS cycle_months
FROM tenant_subscription s
JOIN subscription_plans p ON p.id = s.plan_id
JOIN tenants t ON t.id = s.tenant_id
WHERE ` + where + ` ORDER BY s.end_date`
	var subs []models.ExpiringSubscription
	if err := sqlx.SelectContext(ctx, q, &subs, query, args...); err != nil {
		return nil, fmt.Errorf("list subscriptions for renewal: %w", err)
	}
	return subs, nil
}
