package models

import "time"

// Employee is the HR profile attached to a tenant user.
type Employee struct {
	ID            string    `db:"id" json:"id"`
	TenantID      string    `db:"tenant_id" json:"tenant_id"`
	UserID        string    `db:"user_id" json:"user_id"`
	FirstName     string    `db:"first_name" json:"first_name"`
	LastName      *string   `db:"last_name" json:"last_name,omitempty"`
	Phone         *string   `db:"phone" json:"phone,omitempty"`
	DepartmentID  *string   `db:"department_id" json:"department_id,omitempty"`
	DesignationID *string   `db:"designation_id" json:"designation_id,omitempty"`
	ReportsTo     *string   `db:"reports_to" json:"reports_to,omitempty"`
	CreatedBy     *string   `db:"created_by" json:"created_by,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// UpdateEmployeeRequest patches an employee profile; nil fields are left untouched.
type UpdateEmployeeRequest struct {
	FirstName     *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName      *string `json:"last_name" validate:"omitempty,max=100"`
	Phone         *string `json:"phone" validate:"omitempty,max=20"`
	DepartmentID  *string `json:"department_id" validate:"omitempty,uuid"`
	DesignationID *string `json:"designation_id" validate:"omitempty,uuid"`
	ReportsTo     *string `json:"reports_to" validate:"omitempty,uuid"`
}

// Empty reports whether the request changes nothing.
func (r UpdateEmployeeRequest) Empty() bool {
	return r.FirstName == nil && r.LastName == nil && r.Phone == nil &&
		r.DepartmentID == nil && r.DesignationID == nil && r.ReportsTo == nil
}

// UpdateProfileRequest is the self-service subset of UpdateEmployeeRequest.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
}
