package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// AuditAction constants represent actions to be logged.
const (
	AuditActionLogin              = "LOGIN"
	AuditActionLogout             = "LOGOUT"
	AuditActionLogoutAll          = "LOGOUT_ALL"
	AuditActionPasswordChange     = "PASSWORD_CHANGE"
	AuditActionPasswordReset      = "PASSWORD_RESET"
	AuditActionTenantRegister     = "TENANT_REGISTER"
	AuditActionTenantStatus       = "TENANT_STATUS"
	AuditActionUserCreate         = "USER_CREATE"
	AuditActionUserUpdate         = "USER_UPDATE"
	AuditActionUserRole           = "USER_ROLE"
	AuditActionUserStatus         = "USER_STATUS"
	AuditActionUserPasswordReset  = "USER_PASSWORD_RESET"
	AuditActionEmployeeUpdate     = "EMPLOYEE_UPDATE"
	AuditActionOrgUnitCreate      = "ORG_UNIT_CREATE"
	AuditActionOrgUnitUpdate      = "ORG_UNIT_UPDATE"
	AuditActionOrgUnitDelete      = "ORG_UNIT_DELETE"
	AuditActionPlanCreate         = "PLAN_CREATE"
	AuditActionPlanUpdate         = "PLAN_UPDATE"
	AuditActionPlanDelete         = "PLAN_DELETE"
	AuditActionSubscriptionChange = "SUBSCRIPTION_CHANGE"
)

// AuditLog represents an audit trail record.
type AuditLog struct {
	ID         string         `db:"id" json:"id"`
	TenantID   *string        `db:"tenant_id" json:"tenant_id,omitempty"`
	UserID     *string        `db:"user_id" json:"user_id,omitempty"`
	Action     string         `db:"action" json:"action"`
	Resource   string         `db:"resource" json:"resource"`
	ResourceID *string        `db:"resource_id" json:"resource_id,omitempty"`
	OldValues  types.JSONText `db:"old_values" json:"old_values,omitempty"`
	NewValues  types.JSONText `db:"new_values" json:"new_values,omitempty"`
	IPAddress  *string        `db:"ip_address" json:"ip_address,omitempty"`
	UserAgent  *string        `db:"user_agent" json:"user_agent,omitempty"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}
