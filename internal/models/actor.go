package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidActor is returned when an actor cannot be mapped onto a database scope.
var ErrInvalidActor = errors.New("invalid actor")

// Actor is the authenticated identity a request acts as. It is resolved once
// per request and passed explicitly to every service call.
type Actor struct {
	UserID             string
	TenantID           *string
	EmployeeID         *string
	Role               UserRole
	Email              string
	SessionID          string
	MustChangePassword bool

	// Request metadata recorded on audit entries; never bound into the scope.
	IP        string
	UserAgent string
}

// SystemActor scopes pre-authentication flows and background jobs.
func SystemActor() *Actor {
	return &Actor{Role: RoleSystem}
}

// Tenant returns the tenant id or an empty string for global actors.
func (a *Actor) Tenant() string {
	if a == nil || a.TenantID == nil {
		return ""
	}
	return *a.TenantID
}

// Employee returns the employee id or an empty string.
func (a *Actor) Employee() string {
	if a == nil || a.EmployeeID == nil {
		return ""
	}
	return *a.EmployeeID
}

// HasRole reports whether the actor holds one of roles.
func (a *Actor) HasRole(roles ...UserRole) bool {
	if a == nil {
		return false
	}
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// Validate checks that every value bound into the database scope is well formed.
func (a *Actor) Validate() error {
	if a == nil {
		return fmt.Errorf("%w: missing actor", ErrInvalidActor)
	}
	if !a.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidActor, a.Role)
	}
	if a.Role == RoleSystem {
		if a.TenantID != nil {
			return fmt.Errorf("%w: system actor cannot carry a tenant", ErrInvalidActor)
		}
		return nil
	}
	if _, err := uuid.Parse(a.UserID); err != nil {
		return fmt.Errorf("%w: malformed user id", ErrInvalidActor)
	}
	if a.EmployeeID != nil {
		if _, err := uuid.Parse(*a.EmployeeID); err != nil {
			return fmt.Errorf("%w: malformed employee id", ErrInvalidActor)
		}
	}
	if a.Role.Global() {
		return nil
	}
	if a.TenantID == nil {
		return fmt.Errorf("%w: role %s requires a tenant", ErrInvalidActor, a.Role)
	}
	if _, err := uuid.Parse(*a.TenantID); err != nil {
		return fmt.Errorf("%w: malformed tenant id", ErrInvalidActor)
	}
	return nil
}
