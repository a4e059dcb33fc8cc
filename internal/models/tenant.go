package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Tenant is a customer organisation and the unit of data isolation.
type Tenant struct {
	ID        string         `db:"id" json:"id"`
	Name      string         `db:"name" json:"name"`
	Domain    *string        `db:"domain" json:"domain,omitempty"`
	Email     string         `db:"email" json:"email"`
	Phone     *string        `db:"phone" json:"phone,omitempty"`
	Address   *string        `db:"address" json:"address,omitempty"`
	City      *string        `db:"city" json:"city,omitempty"`
	State     *string        `db:"state" json:"state,omitempty"`
	Country   *string        `db:"country" json:"country,omitempty"`
	ZipCode   *string        `db:"zip_code" json:"zip_code,omitempty"`
	Settings  types.JSONText `db:"settings" json:"settings,omitempty"`
	IsActive  bool           `db:"is_active" json:"is_active"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

// RegisterTenantRequest is the public self-service signup payload.
type RegisterTenantRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=255"`
	Email   string  `json:"email" validate:"required,email,max=255"`
	Domain  *string `json:"domain" validate:"omitempty,fqdn,max=255"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
	Address *string `json:"address" validate:"omitempty,max=500"`
	City    *string `json:"city" validate:"omitempty,max=100"`
	State   *string `json:"state" validate:"omitempty,max=100"`
	Country *string `json:"country" validate:"omitempty,max=100"`
	ZipCode *string `json:"zip_code" validate:"omitempty,max=20"`

	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

// RegisterTenantResult is returned after signup.
type RegisterTenantResult struct {
	Tenant       Tenant              `json:"tenant"`
	AdminUser    UserInfo            `json:"admin_user"`
	Subscription *TenantSubscription `json:"subscription,omitempty"`
}

// TenantSummary is the super-admin listing row.
type TenantSummary struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Email         string    `db:"email" json:"email"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	UserCount     int       `db:"user_count" json:"user_count"`
	EmployeeCount int       `db:"employee_count" json:"employee_count"`
	PlanName      *string   `db:"plan_name" json:"plan_name,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// PlatformStats aggregates platform wide counters.
type PlatformStats struct {
	Tenants             int `db:"tenants" json:"tenants"`
	ActiveTenants       int `db:"active_tenants" json:"active_tenants"`
	Users               int `db:"users" json:"users"`
	Employees           int `db:"employees" json:"employees"`
	ActiveSubscriptions int `db:"active_subscriptions" json:"active_subscriptions"`
	TrialSubscriptions  int `db:"trial_subscriptions" json:"trial_subscriptions"`

	System *SystemMetrics `db:"-" json:"system,omitempty"`
}

// LoginActivity is a single session creation event.
type LoginActivity struct {
	UserID    string    `db:"user_id" json:"user_id"`
	TenantID  *string   `db:"tenant_id" json:"tenant_id,omitempty"`
	Email     string    `db:"email" json:"email"`
	IPAddress *string   `db:"ip_address" json:"ip_address,omitempty"`
	UserAgent *string   `db:"user_agent" json:"user_agent,omitempty"`
	LoginTime time.Time `db:"login_time" json:"login_time"`
}
