package models

import "time"

// OrgUnitKind distinguishes the two tenant catalogues that share a shape.
type OrgUnitKind string

const (
	OrgUnitDepartment  OrgUnitKind = "departments"
	OrgUnitDesignation OrgUnitKind = "designations"
)

// OrgUnit is a department or designation row.
type OrgUnit struct {
	ID          string     `db:"id" json:"id"`
	TenantID    string     `db:"tenant_id" json:"tenant_id"`
	Name        string     `db:"name" json:"name"`
	Description *string    `db:"description" json:"description,omitempty"`
	IsActive    bool       `db:"is_active" json:"is_active"`
	CreatedBy   *string    `db:"created_by" json:"created_by,omitempty"`
	UpdatedBy   *string    `db:"updated_by" json:"updated_by,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// CreateOrgUnitRequest creates a department or designation.
type CreateOrgUnitRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// UpdateOrgUnitRequest patches a department or designation.
type UpdateOrgUnitRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	IsActive    *bool   `json:"is_active"`
}

// Empty reports whether the request changes nothing.
func (r UpdateOrgUnitRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.IsActive == nil
}
