package models

import "time"

// AdminSummary holds headline counters for the admin dashboard.
type AdminSummary struct {
	TotalEmployees    int `db:"total_employees" json:"total_employees"`
	ActiveEmployees   int `db:"active_employees" json:"active_employees"`
	InactiveEmployees int `db:"inactive_employees" json:"inactive_employees"`
	TotalDepartments  int `db:"total_departments" json:"total_departments"`
	TotalDesignations int `db:"total_designations" json:"total_designations"`
	TotalManagers     int `db:"total_managers" json:"total_managers"`
}

// LastLogin is a user with their most recent sign in.
type LastLogin struct {
	Email       string     `db:"email" json:"email"`
	Role        UserRole   `db:"role" json:"role"`
	LastLoginAt *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
	IPAddress   *string    `db:"ip_address" json:"ip_address,omitempty"`
	UserAgent   *string    `db:"user_agent" json:"user_agent,omitempty"`
}

// RecentEmployee is a newly provisioned account.
type RecentEmployee struct {
	Email     string    `db:"email" json:"email"`
	Role      UserRole  `db:"role" json:"role"`
	FirstName *string   `db:"first_name" json:"first_name,omitempty"`
	LastName  *string   `db:"last_name" json:"last_name,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// LabelCount is a generic grouped count.
type LabelCount struct {
	Label string `db:"label" json:"label"`
	Count int    `db:"count" json:"count"`
}

// ManagerReport counts direct reports per manager.
type ManagerReport struct {
	ManagerID        string  `db:"manager_id" json:"manager_id"`
	ManagerEmail     string  `db:"manager_email" json:"manager_email"`
	ManagerFirstName *string `db:"manager_first_name" json:"manager_first_name,omitempty"`
	ManagerLastName  *string `db:"manager_last_name" json:"manager_last_name,omitempty"`
	ReportCount      int     `db:"report_count" json:"report_count"`
}

// EmployeeStatus splits accounts by activation.
type EmployeeStatus struct {
	Active   int `db:"active" json:"active"`
	Inactive int `db:"inactive" json:"inactive"`
}

// DirectoryEntry is one row of the employee directory export.
type DirectoryEntry struct {
	Email       string   `db:"email"`
	Role        UserRole `db:"role"`
	IsActive    bool     `db:"is_active"`
	FirstName   *string  `db:"first_name"`
	LastName    *string  `db:"last_name"`
	Phone       *string  `db:"phone"`
	Department  *string  `db:"department"`
	Designation *string  `db:"designation"`
}

// ExportFormat selects the rendered report type.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// SystemMetrics is a snapshot of process instrumentation.
type SystemMetrics struct {
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	ActiveScopes             int64     `json:"active_scopes"`
	ScopeFailures            uint64    `json:"scope_failures"`
	AverageScopeDurationMs   float64   `json:"average_scope_duration_ms"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
