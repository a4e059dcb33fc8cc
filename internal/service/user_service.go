package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	"github.com/noah-isme/hrms-saas-api/internal/validation"
	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
	"github.com/noah-isme/hrms-saas-api/pkg/security"
)

const (
	defaultUserPageSize = 50
	maxUserPageSize     = 200
)

type userStore interface {
	FindAuthByID(ctx context.Context, q sqlx.ExtContext, id string) (*models.AuthUser, error)
	FindDetail(ctx context.Context, q sqlx.ExtContext, id string) (*models.UserDetail, error)
	EmailExists(ctx context.Context, q sqlx.ExtContext, tenantID, email, excludeID string) (bool, error)
	Create(ctx context.Context, q sqlx.ExtContext, user *models.User) error
	List(ctx context.Context, q sqlx.ExtContext, tenantID string, filter models.UserFilter) ([]models.UserDetail, int, error)
	Update(ctx context.Context, q sqlx.ExtContext, id string, email *string, isActive *bool) error
	UpdateRole(ctx context.Context, q sqlx.ExtContext, id string, role models.UserRole) error
	SetActive(ctx context.Context, q sqlx.ExtContext, id string, active bool) error
	UpdatePassword(ctx context.Context, q sqlx.ExtContext, id, passwordHash string, mustChange bool) error
}

type employeeStore interface {
	Create(ctx context.Context, q sqlx.ExtContext, employee *models.Employee) error
	FindByID(ctx context.Context, q sqlx.ExtContext, id string) (*models.Employee, error)
	FindByUserID(ctx context.Context, q sqlx.ExtContext, userID string) (*models.Employee, error)
	UpdateByUserID(ctx context.Context, q sqlx.ExtContext, userID string, req models.UpdateEmployeeRequest) error
	ListReports(ctx context.Context, q sqlx.ExtContext, managerEmployeeID string) ([]models.UserDetail, error)
}

type orgUnitFinder interface {
	FindByID(ctx context.Context, q sqlx.ExtContext, id string) (*models.OrgUnit, error)
}

type sessionRevoker interface {
	RevokeAllForUser(ctx context.Context, q sqlx.ExtContext, userID, exceptID string) (int64, error)
}

type userNotifier interface {
	UserWelcome(email, firstName string, role models.UserRole, tempPassword string)
	TemporaryPassword(email, firstName, tempPassword string)
}

type tenantCache interface {
	InvalidateTenant(ctx context.Context, tenantID string)
}

// UserService manages tenant users and their employee profiles.
type UserService struct {
	scoper       Scoper
	users        userStore
	employees    employeeStore
	departments  orgUnitFinder
	designations orgUnitFinder
	sessions     sessionRevoker
	audit        AuditStore
	notifier     userNotifier
	cache        tenantCache
	validator    *validator.Validate
	logger       *zap.Logger
}

// UserServiceDeps groups the collaborators of UserService.
type UserServiceDeps struct {
	Scoper       Scoper
	Users        userStore
	Employees    employeeStore
	Departments  orgUnitFinder
	Designations orgUnitFinder
	Sessions     sessionRevoker
	Audit        AuditStore
	Notifier     userNotifier
	Cache        tenantCache
	Validator    *validator.Validate
	Logger       *zap.Logger
}

// NewUserService creates an instance of UserService.
func NewUserService(deps UserServiceDeps) *UserService {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Validator == nil {
		deps.Validator = validation.New()
	}
	return &UserService{
		scoper:       deps.Scoper,
		users:        deps.Users,
		employees:    deps.Employees,
		departments:  deps.Departments,
		designations: deps.Designations,
		sessions:     deps.Sessions,
		audit:        deps.Audit,
		notifier:     deps.Notifier,
		cache:        deps.Cache,
		validator:    deps.Validator,
		logger:       deps.Logger,
	}
}

// Create provisions a user and employee profile in one transaction and mails a
// temporary password.
func (s *UserService) Create(ctx context.Context, actor *models.Actor, req models.CreateUserRequest) (*models.CreateUserResult, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(s.validator, req, "invalid user payload"); err != nil {
		return nil, err
	}
	if req.Role == models.RoleAdmin {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "ADMIN users cannot be created")
	}
	if actor.Role == models.RoleHR && req.Role == models.RoleHR {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "HR cannot create HR users")
	}
	req.Email = strings.TrimSpace(req.Email)

	tempPassword, err := security.TemporaryPassword()
	if err != nil {
		return nil, appErrors.Internal(err, "failed to generate password")
	}
	hash, err := security.HashPassword(tempPassword)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to hash password")
	}

	var result models.CreateUserResult
	err = s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		exists, err := s.users.EmailExists(ctx, q, tenantID, req.Email, "")
		if err != nil {
			return appErrors.Internal(err, "failed to check email")
		}
		if exists {
			return appErrors.Clone(appErrors.ErrConflict, "User with this email already exists")
		}
		if err := s.checkReferences(ctx, q, tenantID, "", req.DepartmentID, req.DesignationID, req.ReportsTo); err != nil {
			return err
		}

		user := &models.User{
			TenantID:           &tenantID,
			Email:              req.Email,
			PasswordHash:       hash,
			Role:               req.Role,
			IsActive:           true,
			MustChangePassword: true,
			CreatedBy:          stringPtr(actor.UserID),
		}
		if err := s.users.Create(ctx, q, user); err != nil {
			return mapStoreError(err, "", "User with this email already exists")
		}
		employee := &models.Employee{
			TenantID:      tenantID,
			UserID:        user.ID,
			FirstName:     strings.TrimSpace(req.FirstName),
			LastName:      req.LastName,
			Phone:         req.Phone,
			DepartmentID:  req.DepartmentID,
			DesignationID: req.DesignationID,
			ReportsTo:     req.ReportsTo,
			CreatedBy:     stringPtr(actor.UserID),
		}
		if err := s.employees.Create(ctx, q, employee); err != nil {
			return mapStoreError(err, "", "Employee profile already exists")
		}
		detail, err := s.users.FindDetail(ctx, q, user.ID)
		if err != nil {
			return mapStoreError(err, "user not found", "")
		}
		result = models.CreateUserResult{User: *detail, Employee: *employee}
		return writeAudit(ctx, q, s.audit, actor, auditEvent{
			Action:     models.AuditActionUserCreate,
			Resource:   "user",
			ResourceID: user.ID,
			New:        map[string]interface{}{"email": user.Email, "role": user.Role, "employee_id": employee.ID},
		})
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.UserWelcome(result.User.Email, result.Employee.FirstName, req.Role, tempPassword)
	}
	s.invalidate(ctx, tenantID)
	return &result, nil
}

// List returns a page of the tenant's users.
func (s *UserService) List(ctx context.Context, actor *models.Actor, filter models.UserFilter) ([]models.UserDetail, *models.Pagination, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, nil, err
	}
	if filter.Role != nil && !filter.Role.Valid() {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "unknown role filter")
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultUserPageSize
	}
	if filter.Limit > maxUserPageSize {
		filter.Limit = maxUserPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	filter.Search = strings.TrimSpace(filter.Search)

	var (
		users []models.UserDetail
		total int
	)
	err = s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		var err error
		users, total, err = s.users.List(ctx, q, tenantID, filter)
		return err
	})
	if err != nil {
		return nil, nil, mapStoreError(err, "", "")
	}
	if users == nil {
		users = []models.UserDetail{}
	}
	return users, &models.Pagination{Limit: filter.Limit, Offset: filter.Offset, TotalCount: total}, nil
}

// Get returns a single user with profile.
func (s *UserService) Get(ctx context.Context, actor *models.Actor, id string) (*models.UserDetail, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	var detail *models.UserDetail
	err = s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		var err error
		detail, err = s.users.FindDetail(ctx, q, id)
		if err != nil {
			return mapStoreError(err, "user not found", "")
		}
		if !sameTenant(detail.TenantID, tenantID) {
			return appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// Update changes the email or active flag of a user.
func (s *UserService) Update(ctx context.Context, actor *models.Actor, id string, req models.UpdateUserRequest) (*models.UserDetail, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(s.validator, req, "invalid user payload"); err != nil {
		return nil, err
	}
	if req.Email == nil && req.IsActive == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no fields to update")
	}
	if req.IsActive != nil && !*req.IsActive && id == actor.UserID {
		return nil, appErrors.Clone(appErrors.ErrValidation, "you cannot deactivate your own account")
	}
	if req.Email != nil {
		trimmed := strings.TrimSpace(*req.Email)
		req.Email = &trimmed
	}

	var detail *models.UserDetail
	err = s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		target, err := s.loadTarget(ctx, q, actor, tenantID, id)
		if err != nil {
			return err
		}
		if req.Email != nil && !strings.EqualFold(*req.Email, target.Email) {
			exists, err := s.users.EmailExists(ctx, q, tenantID, *req.Email, id)
			if err != nil {
				return appErrors.Internal(err, "failed to check email")
			}
			if exists {
				return appErrors.Clone(appErrors.ErrConflict, "User with this email already exists")
			}
		}
		if err := s.users.Update(ctx, q, id, req.Email, req.IsActive); err != nil {
			return mapStoreError(err, "user not found", "User with this email already exists")
		}
		if req.IsActive != nil && !*req.IsActive {
			if _, err := s.sessions.RevokeAllForUser(ctx, q, id, ""); err != nil {
				return appErrors.Internal(err, "failed to revoke sessions")
			}
		}
		if detail, err = s.users.FindDetail(ctx, q, id); err != nil {
			return mapStoreError(err, "user not found", "")
		}
		return writeAudit(ctx, q, s.audit, actor, auditEvent{
			Action:     models.AuditActionUserUpdate,
			Resource:   "user",
			ResourceID: id,
			Old:        map[string]interface{}{"email": target.Email, "is_active": target.IsActive},
			New:        map[string]interface{}{"email": detail.Email, "is_active": detail.IsActive},
		})
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, tenantID)
	return detail, nil
}

// UpdateEmployee patches the employee profile of a user.
func (s *UserService) UpdateEmployee(ctx context.Context, actor *models.Actor, id string, req models.UpdateEmployeeRequest) (*models.UserDetail, error) {
	if err := validation.Struct(s.validator, req, "invalid employee payload"); err != nil {
		return nil, err
	}
	if req.Empty() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no fields to update")
	}
	return s.applyEmployeeChange(ctx, actor, id, req)
}

// AssignManager sets the reporting manager of a user.
func (s *UserService) AssignManager(ctx context.Context, actor *models.Actor, id string, req models.ChangeManagerRequest) (*models.UserDetail, error) {
	if err := validation.Struct(s.validator, req, "invalid manager payload"); err != nil {
		return nil, err
	}
	return s.applyEmployeeChange(ctx, actor, id, models.UpdateEmployeeRequest{ReportsTo: &req.ManagerEmployeeID})
}

// AssignDepartment moves a user to a department.
func (s *UserService) AssignDepartment(ctx context.Context, actor *models.Actor, id string, req models.AssignDepartmentRequest) (*models.UserDetail, error) {
	if err := validation.Struct(s.validator, req, "invalid department payload"); err != nil {
		return nil, err
	}
	return s.applyEmployeeChange(ctx, actor, id, models.UpdateEmployeeRequest{DepartmentID: &req.DepartmentID})
}

// AssignDesignation sets the designation of a user.
func (s *UserService) AssignDesignation(ctx context.Context, actor *models.Actor, id string, req models.AssignDesignationRequest) (*models.UserDetail, error) {
	if err := validation.Struct(s.validator, req, "invalid designation payload"); err != nil {
		return nil, err
	}
	return s.applyEmployeeChange(ctx, actor, id, models.UpdateEmployeeRequest{DesignationID: &req.DesignationID})
}

func (s *UserService) applyEmployeeChange(ctx context.Context, actor *models.Actor, id string, req models.UpdateEmployeeRequest) (*models.UserDetail, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	var detail *models.UserDetail
	err = s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		if _, err := s.loadTarget(ctx, q, actor, tenantID, id); err != nil {
			return err
		}
		before, err := s.employees.FindByUserID(ctx, q, id)
		if err != nil {
			return mapStoreError(err, "employee profile not found", "")
		}
		if err := s.checkReferences(ctx, q, tenantID, before.ID, req.DepartmentID, req.DesignationID, req.ReportsTo); err != nil {
			return err
		}
		if err := s.employees.UpdateByUserID(ctx, q, id, req); err != nil {
			return mapStoreError(err, "employee profile not found", "")
		}
		if detail, err = s.users.FindDetail(ctx, q, id); err != nil {
			return mapStoreError(err, "user not found", "")
		}
		return writeAudit(ctx, q, s.audit, actor, auditEvent{
			Action:     models.AuditActionEmployeeUpdate,
			Resource:   "employee",
			ResourceID: before.ID,
			Old:        before,
			New:        req,
		})
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, tenantID)
	return detail, nil
}

// ChangeRole assigns a new role. Only tenant ADMINs may call it and the ADMIN
// role itself cannot be granted or taken away here.
func (s *UserService) ChangeRole(ctx context.Context, actor *models.Actor, id string, req models.ChangeRoleRequest) (*models.UserDetail, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleAdmin {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "only ADMIN can change roles")
	}
	if err := validation.Struct(s.validator, req, "invalid role payload"); err != nil {
		return nil, err
	}
	if req.Role == models.RoleAdmin {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "ADMIN role cannot be assigned")
	}
	if id == actor.UserID {
		return nil, appErrors.Clone(appErrors.ErrValidation, "you cannot change your own role")
	}

	var detail *models.UserDetail
	err = s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		target, err := s.loadTarget(ctx, q, actor, tenantID, id)
		if err != nil {
			return err
		}
		if target.Role == models.RoleAdmin {
			return appErrors.Clone(appErrors.ErrForbidden, "ADMIN role cannot be changed")
		}
		if err := s.users.UpdateRole(ctx, q, id, req.Role); err != nil {
			return mapStoreError(err, "user not found", "")
		}
		if detail, err = s.users.FindDetail(ctx, q, id); err != nil {
			return mapStoreError(err, "user not found", "")
		}
		return writeAudit(ctx, q, s.audit, actor, auditEvent{
			Action:     models.AuditActionUserRole,
			Resource:   "user",
			ResourceID: id,
			Old:        map[string]interface{}{"role": target.Role},
			New:        map[string]interface{}{"role": req.Role},
		})
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, tenantID)
	return detail, nil
}

// SetStatus activates or deactivates a user. Deactivation ends every session
// of the target.
func (s *UserService) SetStatus(ctx context.Context, actor *models.Actor, id string, req models.UpdateStatusRequest) (*models.UserDetail, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(s.validator, req, "invalid status payload"); err != nil {
		return nil, err
	}
	active := *req.IsActive
	if !active && id == actor.UserID {
		return nil, appErrors.Clone(appErrors.ErrValidation, "you cannot deactivate your own account")
	}

	var detail *models.UserDetail
	err = s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		target, err := s.loadTarget(ctx, q, actor, tenantID, id)
		if err != nil {
			return err
		}
		if err := s.users.SetActive(ctx, q, id, active); err != nil {
			return mapStoreError(err, "user not found", "")
		}
		if !active {
			if _, err := s.sessions.RevokeAllForUser(ctx, q, id, ""); err != nil {
				return appErrors.Internal(err, "failed to revoke sessions")
			}
		}
		if detail, err = s.users.FindDetail(ctx, q, id); err != nil {
			return mapStoreError(err, "user not found", "")
		}
		return writeAudit(ctx, q, s.audit, actor, auditEvent{
			Action:     models.AuditActionUserStatus,
			Resource:   "user",
			ResourceID: id,
			Old:        map[string]interface{}{"is_active": target.IsActive},
			New:        map[string]interface{}{"is_active": active},
		})
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, tenantID)
	return detail, nil
}

// ResetPassword replaces the user's password with a temporary one, forces a
// change at next login and mails it.
func (s *UserService) ResetPassword(ctx context.Context, actor *models.Actor, id string) error {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return err
	}
	tempPassword, err := security.TemporaryPassword()
	if err != nil {
		return appErrors.Internal(err, "failed to generate password")
	}
	hash, err := security.HashPassword(tempPassword)
	if err != nil {
		return appErrors.Internal(err, "failed to hash password")
	}

	var target *models.AuthUser
	err = s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		var err error
		if target, err = s.loadTarget(ctx, q, actor, tenantID, id); err != nil {
			return err
		}
		if err := s.users.UpdatePassword(ctx, q, id, hash, true); err != nil {
			return mapStoreError(err, "user not found", "")
		}
		if _, err := s.sessions.RevokeAllForUser(ctx, q, id, ""); err != nil {
			return appErrors.Internal(err, "failed to revoke sessions")
		}
		return writeAudit(ctx, q, s.audit, actor, auditEvent{
			Action:     models.AuditActionUserPasswordReset,
			Resource:   "user",
			ResourceID: id,
		})
	})
	if err != nil {
		return err
	}
	if s.notifier != nil {
		s.notifier.TemporaryPassword(target.Email, derefString(target.FirstName), tempPassword)
	}
	return nil
}

// Profile returns the actor's own account and employee profile.
func (s *UserService) Profile(ctx context.Context, actor *models.Actor) (*models.UserDetail, error) {
	if _, err := requireTenant(actor); err != nil {
		return nil, err
	}
	var detail *models.UserDetail
	err := s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		var err error
		detail, err = s.users.FindDetail(ctx, q, actor.UserID)
		return err
	})
	if err != nil {
		return nil, mapStoreError(err, "user not found", "")
	}
	return detail, nil
}

// UpdateProfile lets any tenant user edit their own name and phone.
func (s *UserService) UpdateProfile(ctx context.Context, actor *models.Actor, req models.UpdateProfileRequest) (*models.UserDetail, error) {
	if _, err := requireTenant(actor); err != nil {
		return nil, err
	}
	if err := validation.Struct(s.validator, req, "invalid profile payload"); err != nil {
		return nil, err
	}
	change := models.UpdateEmployeeRequest{FirstName: req.FirstName, LastName: req.LastName, Phone: req.Phone}
	if change.Empty() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no fields to update")
	}

	var detail *models.UserDetail
	err := s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		if err := s.employees.UpdateByUserID(ctx, q, actor.UserID, change); err != nil {
			return mapStoreError(err, "employee profile not found", "")
		}
		var err error
		if detail, err = s.users.FindDetail(ctx, q, actor.UserID); err != nil {
			return mapStoreError(err, "user not found", "")
		}
		return writeAudit(ctx, q, s.audit, actor, auditEvent{
			Action:     models.AuditActionEmployeeUpdate,
			Resource:   "employee",
			ResourceID: derefString(detail.EmployeeID),
			New:        change,
		})
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// Reports lists the direct reports of the actor's employee record.
func (s *UserService) Reports(ctx context.Context, actor *models.Actor) ([]models.UserDetail, error) {
	if _, err := requireTenant(actor); err != nil {
		return nil, err
	}
	if actor.Employee() == "" {
		return []models.UserDetail{}, nil
	}
	var reports []models.UserDetail
	err := s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		var err error
		reports, err = s.employees.ListReports(ctx, q, actor.Employee())
		return err
	})
	if err != nil {
		return nil, mapStoreError(err, "", "")
	}
	if reports == nil {
		reports = []models.UserDetail{}
	}
	return reports, nil
}

func (s *UserService) invalidate(ctx context.Context, tenantID string) {
	if s.cache != nil {
		s.cache.InvalidateTenant(ctx, tenantID)
	}
}

// loadTarget fetches a user of the actor's tenant and applies the HR versus
// ADMIN guard shared by every mutation.
func (s *UserService) loadTarget(ctx context.Context, q sqlx.ExtContext, actor *models.Actor, tenantID, id string) (*models.AuthUser, error) {
	target, err := s.users.FindAuthByID(ctx, q, id)
	if err != nil {
		return nil, mapStoreError(err, "user not found", "")
	}
	if !sameTenant(target.TenantID, tenantID) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	if actor.Role == models.RoleHR && target.Role == models.RoleAdmin {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "HR cannot modify ADMIN users")
	}
	return target, nil
}

// checkReferences verifies that referenced org units and managers exist in the
// tenant. Foreign keys alone would accept rows of another tenant.
func (s *UserService) checkReferences(ctx context.Context, q sqlx.ExtContext, tenantID, selfEmployeeID string, departmentID, designationID, reportsTo *string) error {
	if departmentID != nil {
		if err := s.checkOrgUnit(ctx, q, s.departments, tenantID, *departmentID, "department not found"); err != nil {
			return err
		}
	}
	if designationID != nil {
		if err := s.checkOrgUnit(ctx, q, s.designations, tenantID, *designationID, "designation not found"); err != nil {
			return err
		}
	}
	if reportsTo == nil {
		return nil
	}
	if *reportsTo == selfEmployeeID {
		return appErrors.Clone(appErrors.ErrValidation, "an employee cannot report to themselves")
	}
	manager, err := s.employees.FindByID(ctx, q, *reportsTo)
	if err != nil {
		return mapStoreError(err, "manager not found", "")
	}
	if manager.TenantID != tenantID {
		return appErrors.Clone(appErrors.ErrNotFound, "manager not found")
	}
	managerUser, err := s.users.FindAuthByID(ctx, q, manager.UserID)
	if err != nil {
		return mapStoreError(err, "manager not found", "")
	}
	switch managerUser.Role {
	case models.RoleManager, models.RoleHR, models.RoleAdmin:
	default:
		return appErrors.Clone(appErrors.ErrValidation, "reporting manager must hold the MANAGER, HR or ADMIN role")
	}
	return nil
}

func (s *UserService) checkOrgUnit(ctx context.Context, q sqlx.ExtContext, store orgUnitFinder, tenantID, id, notFound string) error {
	unit, err := store.FindByID(ctx, q, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, notFound)
		}
		return appErrors.Internal(err, "failed to load organisation unit")
	}
	if unit.TenantID != tenantID {
		return appErrors.Clone(appErrors.ErrNotFound, notFound)
	}
	return nil
}
