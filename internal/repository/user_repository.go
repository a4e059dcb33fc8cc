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

const authUserSelect = `SELECT u.id, u.tenant_id, u.email, u.password_hash, u.role, u.is_active, u.must_change_password,
u.last_login_at, u.created_by, u.created_at, u.updated_at,
e.id AS employee_id, e.first_name, e.last_name, t.is_active AS tenant_active, t.domain AS tenant_domain
FROM users u
LEFT JOIN employees e ON e.user_id = u.id
LEFT JOIN tenants t ON t.id = u.tenant_id`

const userDetailSelect = `SELECT u.id, u.tenant_id, u.email, u.role, u.is_active, u.last_login_at, u.created_at,
e.id AS employee_id, e.first_name, e.last_name, e.phone, e.department_id, e.designation_id, e.reports_to,
d.name AS department_name
FROM users u
LEFT JOIN employees e ON e.user_id = u.id
LEFT JOIN departments d ON d.id = e.department_id`

// UserRepository provides database access for user accounts. Every method
// runs on the caller's scoped executor.
type UserRepository struct{}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindAuthByEmail returns every account using email, across tenants when the
// scope allows it.
func (r *UserRepository) FindAuthByEmail(ctx context.Context, q sqlx.ExtContext, email string) ([]models.AuthUser, error) {
	query := authUserSelect + ` WHERE LOWER(u.email) = LOWER($1) ORDER BY u.created_at`
	var users []models.AuthUser
	if err := sqlx.SelectContext(ctx, q, &users, query, email); err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return users, nil
}

// FindAuthByID returns the login view of a single user.
func (r *UserRepository) FindAuthByID(ctx context.Context, q sqlx.ExtContext, id string) (*models.AuthUser, error) {
	query := authUserSelect + ` WHERE u.id = $1`
	var user models.AuthUser
	if err := sqlx.GetContext(ctx, q, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// FindDetail returns a user joined with its employee profile.
func (r *UserRepository) FindDetail(ctx context.Context, q sqlx.ExtContext, id string) (*models.UserDetail, error) {
	query := userDetailSelect + ` WHERE u.id = $1`
	var user models.UserDetail
	if err := sqlx.GetContext(ctx, q, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user detail: %w", err)
	}
	return &user, nil
}

// EmailExists reports whether email is taken inside tenantID, ignoring excludeID.
func (r *UserRepository) EmailExists(ctx context.Context, q sqlx.ExtContext, tenantID, email, excludeID string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM users WHERE tenant_id = $1 AND LOWER(email) = LOWER($2) AND ($3 = '' OR id::text <> $3))`
	var exists bool
	if err := sqlx.GetContext(ctx, q, &exists, query, tenantID, email, excludeID); err != nil {
		return false, fmt.Errorf("check user email: %w", err)
	}
	return exists, nil
}

// Create inserts a user.
func (r *UserRepository) Create(ctx context.Context, q sqlx.ExtContext, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	const query = `INSERT INTO users (id, tenant_id, email, password_hash, role, is_active, must_change_password, created_by, created_at, updated_at)
VALUES (:id, :tenant_id, :email, :password_hash, :role, :is_active, :must_change_password, :created_by, :created_at, :updated_at)`
	if _, err := sqlx.NamedExecContext(ctx, q, query, user); err != nil {
		return translate("insert user", err)
	}
	return nil
}

// List returns users inside tenantID matching filter together with the total count.
func (r *UserRepository) List(ctx context.Context, q sqlx.ExtContext, tenantID string, filter models.UserFilter) ([]models.UserDetail, int, error) {
	conditions := []string{"u.tenant_id = $1"}
	args := []interface{}{tenantID}

	if filter.Role != nil {
		args = append(args, *filter.Role)
		conditions = append(conditions, fmt.Sprintf("u.role = $%d", len(args)))
	}
	if filter.DepartmentID != "" {
		args = append(args, filter.DepartmentID)
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(LOWER(u.email) LIKE $%d OR LOWER(e.first_name) LIKE $%d OR LOWER(e.last_name) LIKE $%d)", n, n, n))
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	query := fmt.Sprintf("%s%s ORDER BY u.created_at DESC LIMIT %d OFFSET %d", userDetailSelect, where, filter.Limit, filter.Offset)
	var users []models.UserDetail
	if err := sqlx.SelectContext(ctx, q, &users, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM users u LEFT JOIN employees e ON e.user_id = u.id` + where
	var total int
	if err := sqlx.GetContext(ctx, q, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	return users, total, nil
}

// Update patches email and active flag.
func (r *UserRepository) Update(ctx context.Context, q sqlx.ExtContext, id string, email *string, isActive *bool) error {
	const query = `UPDATE users SET email = COALESCE($2, email), is_active = COALESCE($3, is_active), updated_at = NOW() WHERE id = $1`
	return execOne(ctx, q, "update user", query, id, email, isActive)
}

// UpdateRole assigns a new role.
func (r *UserRepository) UpdateRole(ctx context.Context, q sqlx.ExtContext, id string, role models.UserRole) error {
	const query = `UPDATE users SET role = $2, updated_at = NOW() WHERE id = $1`
	return execOne(ctx, q, "update user role", query, id, role)
}

// SetActive toggles the account.
func (r *UserRepository) SetActive(ctx context.Context, q sqlx.ExtContext, id string, active bool) error {
	const query = `UPDATE users SET is_active = $2, updated_at = NOW() WHERE id = $1`
	return execOne(ctx, q, "update user status", query, id, active)
}

// UpdatePassword stores a new hash and the pending change flag.
func (r *UserRepository) UpdatePassword(ctx context.Context, q sqlx.ExtContext, id, passwordHash string, mustChange bool) error {
	const query = `UPDATE users SET password_hash = $2, must_change_password = $3, updated_at = NOW() WHERE id = $1`
	return execOne(ctx, q, "update password", query, id, passwordHash, mustChange)
}

// UpdateLastLogin records a successful sign in.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, q sqlx.ExtContext, id string, ts time.Time) error {
	const query = `UPDATE users SET last_login_at = $2 WHERE id = $1`
	if _, err := q.ExecContext(ctx, query, id, ts); err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

// AdminEmails lists the active administrators of a tenant.
func (r *UserRepository) AdminEmails(ctx context.Context, q sqlx.ExtContext, tenantID string) ([]string, error) {
	const query = `SELECT email FROM users WHERE tenant_id = $1 AND role = 'ADMIN' AND is_active ORDER BY created_at`
	var emails []string
	if err := sqlx.SelectContext(ctx, q, &emails, query, tenantID); err != nil {
		return nil, fmt.Errorf("list tenant admins: %w", err)
	}
	return emails, nil
}
