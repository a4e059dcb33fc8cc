package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// PlanType enumerates billing plan kinds.
type PlanType string

const (
	PlanMonthly     PlanType = "MONTHLY"
	PlanQuarterly   PlanType = "QUARTERLY"
	PlanHalfYearly  PlanType = "HALF_YEARLY"
	PlanYearly      PlanType = "YEARLY"
	PlanPerEmployee PlanType = "PER_EMPLOYEE"
	PlanTrial       PlanType = "TRIAL"
)

// CycleMonths returns the default billing cycle for a plan type.
func (p PlanType) CycleMonths() int {
	switch p {
	case PlanQuarterly:
		return 3
	case PlanHalfYearly:
		return 6
	case PlanYearly:
		return 12
	default:
		return 1
	}
}

// SubscriptionStatus enumerates tenant subscription states.
type SubscriptionStatus string

const (
	SubscriptionTrial     SubscriptionStatus = "TRIAL"
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionInactive  SubscriptionStatus = "INACTIVE"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
	SubscriptionExpired   SubscriptionStatus = "EXPIRED"
)

// SubscriptionPlan is a catalogue entry managed by super admins.
type SubscriptionPlan struct {
	ID                 string         `db:"id" json:"id"`
	Name               string         `db:"name" json:"name"`
	Description        *string        `db:"description" json:"description,omitempty"`
	PricePerMonth      float64        `db:"price_per_month" json:"price_per_month"`
	PricePerEmployee   float64        `db:"price_per_employee" json:"price_per_employee"`
	MaxEmployees       *int           `db:"max_employees" json:"max_employees,omitempty"`
	Features           types.JSONText `db:"features" json:"features,omitempty"`
	PlanType           PlanType       `db:"plan_type" json:"plan_type"`
	BillingCycleMonths *int           `db:"billing_cycle_months" json:"billing_cycle_months,omitempty"`
	Currency           string         `db:"currency" json:"currency"`
	TrialDurationDays  *int           `db:"trial_duration_days" json:"trial_duration_days,omitempty"`
	IsTrial            bool           `db:"is_trial" json:"is_trial"`
	CreatedBy          *string        `db:"created_by" json:"created_by,omitempty"`
	UpdatedBy          *string        `db:"updated_by" json:"updated_by,omitempty"`
	CreatedAt          time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at" json:"updated_at"`
}

// CycleMonths prefers the explicit billing cycle over the plan type default.
func (p *SubscriptionPlan) CycleMonths() int {
	if p.BillingCycleMonths != nil && *p.BillingCycleMonths > 0 {
		return *p.BillingCycleMonths
	}
	return p.PlanType.CycleMonths()
}

// PlanRequest creates or replaces a plan.
type PlanRequest struct {
	Name               string                 `json:"name" validate:"required,min=1,max=255"`
	Description        *string                `json:"description" validate:"omitempty,max=1000"`
	PricePerMonth      float64                `json:"price_per_month" validate:"gte=0"`
	PricePerEmployee   float64                `json:"price_per_employee" validate:"gte=0"`
	MaxEmployees       *int                   `json:"max_employees" validate:"omitempty,gt=0"`
	Features           map[string]interface{} `json:"features"`
	PlanType           PlanType               `json:"plan_type" validate:"omitempty,plantype"`
	BillingCycleMonths *int                   `json:"billing_cycle_months" validate:"omitempty,min=1"`
	Currency           string                 `json:"currency" validate:"omitempty,currency"`
	TrialDurationDays  *int                   `json:"trial_duration_days" validate:"omitempty,min=1"`
	IsTrial            bool                   `json:"is_trial"`
}

// TenantSubscription binds a tenant to a plan for a period.
type TenantSubscription struct {
	ID        string             `db:"id" json:"id"`
	TenantID  string             `db:"tenant_id" json:"tenant_id"`
	PlanID    string             `db:"plan_id" json:"plan_id"`
	PlanName  *string            `db:"plan_name" json:"plan_name,omitempty"`
	StartDate time.Time          `db:"start_date" json:"start_date"`
	EndDate   *time.Time         `db:"end_date" json:"end_date,omitempty"`
	Status    SubscriptionStatus `db:"status" json:"status"`
	AutoRenew bool               `db:"auto_renew" json:"auto_renew"`
	CreatedBy *string            `db:"created_by" json:"created_by,omitempty"`
	UpdatedBy *string            `db:"updated_by" json:"updated_by,omitempty"`
	CreatedAt time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt time.Time          `db:"updated_at" json:"updated_at"`
}

// SubscriptionStatusView summarises the current subscription for tenant admins.
type SubscriptionStatusView struct {
	HasSubscription bool                `json:"has_subscription"`
	Subscription    *TenantSubscription `json:"subscription,omitempty"`
	DaysRemaining   *int                `json:"days_remaining,omitempty"`
	IsExpired       bool                `json:"is_expired"`
}

// ExpiringSubscription is a renewal sweep candidate with its notification target.
type ExpiringSubscription struct {
	TenantSubscription
	TenantName  string `db:"tenant_name"`
	TenantEmail string `db:"tenant_email"`
	CycleMonths int    `db:"cycle_months"`
}
