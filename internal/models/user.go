package models

import "time"

// UserRole represents the available roles for the RBAC system.
type UserRole string

const (
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
	RoleAdmin      UserRole = "ADMIN"
	RoleHR         UserRole = "HR"
	RoleManager    UserRole = "MANAGER"
	RoleEmployee   UserRole = "EMPLOYEE"
	// RoleSystem never appears in tokens or the users table.
	RoleSystem UserRole = "SYSTEM"
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleHR, RoleManager, RoleEmployee, RoleSystem:
		return true
	}
	return false
}

// Global reports whether r sees across tenants.
func (r UserRole) Global() bool {
	return r == RoleSuperAdmin || r == RoleSystem
}

// User represents an application user stored in the users table.
type User struct {
	ID                 string     `db:"id" json:"id"`
	TenantID           *string    `db:"tenant_id" json:"tenant_id,omitempty"`
	Email              string     `db:"email" json:"email"`
	PasswordHash       string     `db:"password_hash" json:"-"`
	Role               UserRole   `db:"role" json:"role"`
	IsActive           bool       `db:"is_active" json:"is_active"`
	MustChangePassword bool       `db:"must_change_password" json:"must_change_password"`
	LastLoginAt        *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
	CreatedBy          *string    `db:"created_by" json:"created_by,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

// AuthUser is the login view of a user joined with tenant and employee state.
type AuthUser struct {
	User
	EmployeeID   *string `db:"employee_id" json:"employee_id,omitempty"`
	TenantActive *bool   `db:"tenant_active" json:"-"`
	TenantDomain *string `db:"tenant_domain" json:"-"`
	FirstName    *string `db:"first_name" json:"first_name,omitempty"`
	LastName     *string `db:"last_name" json:"last_name,omitempty"`
}

// UserDetail is a user joined with its employee profile.
type UserDetail struct {
	ID             string     `db:"id" json:"id"`
	TenantID       *string    `db:"tenant_id" json:"tenant_id,omitempty"`
	Email          string     `db:"email" json:"email"`
	Role           UserRole   `db:"role" json:"role"`
	IsActive       bool       `db:"is_active" json:"is_active"`
	LastLoginAt    *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	EmployeeID     *string    `db:"employee_id" json:"employee_id,omitempty"`
	FirstName      *string    `db:"first_name" json:"first_name,omitempty"`
	LastName       *string    `db:"last_name" json:"last_name,omitempty"`
	Phone          *string    `db:"phone" json:"phone,omitempty"`
	DepartmentID   *string    `db:"department_id" json:"department_id,omitempty"`
	DesignationID  *string    `db:"designation_id" json:"designation_id,omitempty"`
	ReportsTo      *string    `db:"reports_to" json:"reports_to,omitempty"`
	DepartmentName *string    `db:"department_name" json:"department_name,omitempty"`
}

// UserFilter captures filtering criteria for listing users.
type UserFilter struct {
	Role         *UserRole
	DepartmentID string
	Search       string
	Limit        int
	Offset       int
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Limit      int `json:"limit"`
	Offset     int `json:"offset"`
	TotalCount int `json:"total_count"`
}

// CreateUserRequest creates a user together with its employee profile.
type CreateUserRequest struct {
	Email         string   `json:"email" validate:"required,email,max=255"`
	Role          UserRole `json:"role" validate:"required,oneof=HR MANAGER EMPLOYEE ADMIN"`
	FirstName     string   `json:"first_name" validate:"required,min=1,max=100"`
	LastName      *string  `json:"last_name" validate:"omitempty,max=100"`
	Phone         *string  `json:"phone" validate:"omitempty,max=20"`
	DepartmentID  *string  `json:"department_id" validate:"omitempty,uuid"`
	DesignationID *string  `json:"designation_id" validate:"omitempty,uuid"`
	ReportsTo     *string  `json:"reports_to" validate:"omitempty,uuid"`
}

// UpdateUserRequest changes account level fields.
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	IsActive *bool   `json:"is_active"`
}

// ChangeRoleRequest assigns a new role.
type ChangeRoleRequest struct {
	Role UserRole `json:"role" validate:"required,oneof=HR MANAGER EMPLOYEE ADMIN"`
}

// ChangeManagerRequest sets the reporting manager.
type ChangeManagerRequest struct {
	ManagerEmployeeID string `json:"manager_employee_id" validate:"required,uuid"`
}

// AssignDepartmentRequest moves an employee to a department.
type AssignDepartmentRequest struct {
	DepartmentID string `json:"department_id" validate:"required,uuid"`
}

// AssignDesignationRequest sets an employee designation.
type AssignDesignationRequest struct {
	DesignationID string `json:"designation_id" validate:"required,uuid"`
}

// UpdateStatusRequest activates or deactivates a user.
type UpdateStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// CreateUserResult is returned after provisioning a user.
type CreateUserResult struct {
	User     UserDetail `json:"user"`
	Employee Employee   `json:"employee"`
}
