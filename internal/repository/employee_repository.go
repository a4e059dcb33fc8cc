package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/hrms-saas-api/internal/models"
)

const employeeColumns = `id, tenant_id, user_id, first_name, last_name, phone, department_id, designation_id, reports_to, created_by, created_at, updated_at`

// EmployeeRepository persists employee profiles.
type EmployeeRepository struct{}

// NewEmployeeRepository constructs an EmployeeRepository.
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{}
}

// Create inserts an employee profile.
func (r *EmployeeRepository) Create(ctx context.Context, q sqlx.ExtContext, employee *models.Employee) error {
	if employee.ID == "" {
		employee.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	const query = `INSERT INTO employees (id, tenant_id, user_id, first_name, last_name, phone, department_id, designation_id, reports_to, created_by, created_at, updated_at)
VALUES (:id, :tenant_id, :user_id, :first_name, :last_name, :phone, :department_id, :designation_id, :reports_to, :created_by, :created_at, :updated_at)`
	if _, err := sqlx.NamedExecContext(ctx, q, query, employee); err != nil {
		return translate("insert employee", err)
	}
	return nil
}

// FindByID loads an employee.
func (r *EmployeeRepository) FindByID(ctx context.Context, q sqlx.ExtContext, id string) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	var employee models.Employee
	if err := sqlx.GetContext(ctx, q, &employee, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return &employee, nil
}

// FindByUserID loads the profile attached to a user.
func (r *EmployeeRepository) FindByUserID(ctx context.Context, q sqlx.ExtContext, userID string) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id = $1`
	var employee models.Employee
	if err := sqlx.GetContext(ctx, q, &employee, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find employee by user: %w", err)
	}
	return &employee, nil
}

// UpdateByUserID applies the non-nil fields of req to the profile of userID.
func (r *EmployeeRepository) UpdateByUserID(ctx context.Context, q sqlx.ExtContext, userID string, req models.UpdateEmployeeRequest) error {
	sets := []string{}
	args := []interface{}{userID}
	add := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	add("first_name", req.FirstName)
	add("last_name", req.LastName)
	add("phone", req.Phone)
	add("department_id", req.DepartmentID)
	add("designation_id", req.DesignationID)
	add("reports_to", req.ReportsTo)
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = NOW()")

	query := `UPDATE employees SET ` + strings.Join(sets, ", ") + ` WHERE user_id = $1`
	return execOne(ctx, q, "update employee", query, args...)
}

// ListReports returns the direct reports of managerEmployeeID.
func (r *EmployeeRepository) ListReports(ctx context.Context, q sqlx.ExtContext, managerEmployeeID string) ([]models.UserDetail, error) {
	query := userDetailSelect + ` WHERE e.reports_to = $1 ORDER BY e.first_name, e.last_name`
	var reports []models.UserDetail
	if err := sqlx.SelectContext(ctx, q, &reports, query, managerEmployeeID); err != nil {
		return nil, fmt.Errorf("list direct reports: %w", err)
	}
	return reports, nil
}
