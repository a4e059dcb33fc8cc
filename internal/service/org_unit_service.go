package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	"github.com/noah-isme/hrms-saas-api/internal/validation"
	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
)

type orgUnitStore interface {
	Create(ctx context.Context, q sqlx.ExtContext, unit *models.OrgUnit) error
	FindByID(ctx context.Context, q sqlx.ExtContext, id string) (*models.OrgUnit, error)
	List(ctx context.Context, q sqlx.ExtContext, tenantID string) ([]models.OrgUnit, error)
	Update(ctx context.Context, q sqlx.ExtContext, id string, req models.UpdateOrgUnitRequest, updatedBy string) error
	Delete(ctx context.Context, q sqlx.ExtContext, id string) error
}

// OrgUnitService manages one tenant catalogue: departments or designations.
type OrgUnitService struct {
	kind      models.OrgUnitKind
	label     string
	scoper    Scoper
	store     orgUnitStore
	audit     AuditStore
	cache     tenantCache
	validator *validator.Validate
	logger    *zap.Logger
}

// NewOrgUnitService constructs the service for kind.
func NewOrgUnitService(kind models.OrgUnitKind, scoper Scoper, store orgUnitStore, audit AuditStore, cache tenantCache, validate *validator.Validate, logger *zap.Logger) *OrgUnitService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validation.New()
	}
	label := "Department"
	if kind == models.OrgUnitDesignation {
		label = "Designation"
	}
	return &OrgUnitService{kind: kind, label: label, scoper: scoper, store: store, audit: audit, cache: cache, validator: validate, logger: logger}
}

func (s *OrgUnitService) resource() string {
	return strings.ToLower(s.label)
}

func (s *OrgUnitService) notFound() string {
	return s.label + " not found"
}

func (s *OrgUnitService) duplicate() string {
	return s.label + " with this name already exists"
}

// Create adds a unit to the actor's tenant.
func (s *OrgUnitService) Create(ctx context.Context, actor *models.Actor, req models.CreateOrgUnitRequest) (*models.OrgUnit, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(s.validator, req, "invalid "+s.resource()+" payload"); err != nil {
		return nil, err
	}
	unit := &models.OrgUnit{
		TenantID:    tenantID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		IsActive:    true,
		CreatedBy:   stringPtr(actor.UserID),
	}
	err = s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		if err := s.store.Create(ctx, q, unit); err != nil {
			return mapStoreError(err, "", s.duplicate())
		}
		return writeAudit(ctx, q, s.audit, actor, auditEvent{
			Action:     models.AuditActionOrgUnitCreate,
			Resource:   s.resource(),
			ResourceID: unit.ID,
			New:        unit,
		})
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, tenantID)
	return unit, nil
}

// List returns the tenant catalogue.
func (s *OrgUnitService) List(ctx context.Context, actor *models.Actor) ([]models.OrgUnit, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	var units []models.OrgUnit
	err = s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		var err error
		units, err = s.store.List(ctx, q, tenantID)
		return err
	})
	if err != nil {
		return nil, mapStoreError(err, "", "")
	}
	if units == nil {
		units = []models.OrgUnit{}
	}
	return units, nil
}

// Get loads one unit of the tenant.
func (s *OrgUnitService) Get(ctx context.Context, actor *models.Actor, id string) (*models.OrgUnit, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	var unit *models.OrgUnit
	err = s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		var err error
		unit, err = s.load(ctx, q, tenantID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return unit, nil
}

// Update patches a unit.
func (s *OrgUnitService) Update(ctx context.Context, actor *models.Actor, id string, req models.UpdateOrgUnitRequest) (*models.OrgUnit, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(s.validator, req, "invalid "+s.resource()+" payload"); err != nil {
		return nil, err
	}
	if req.Empty() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no fields to update")
	}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}

	var unit *models.OrgUnit
	err = s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		before, err := s.load(ctx, q, tenantID, id)
		if err != nil {
			return err
		}
		if err := s.store.Update(ctx, q, id, req, actor.UserID); err != nil {
			return mapStoreError(err, s.notFound(), s.duplicate())
		}
		if unit, err = s.load(ctx, q, tenantID, id); err != nil {
			return err
		}
		return writeAudit(ctx, q, s.audit, actor, auditEvent{
			Action:     models.AuditActionOrgUnitUpdate,
			Resource:   s.resource(),
			ResourceID: id,
			Old:        before,
			New:        unit,
		})
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, tenantID)
	return unit, nil
}

// Delete removes a unit. Only tenant ADMINs may delete; units still assigned
// to employees are rejected with a conflict.
func (s *OrgUnitService) Delete(ctx context.Context, actor *models.Actor, id string) error {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return err
	}
	if actor.Role != models.RoleAdmin {
		return appErrors.Clone(appErrors.ErrForbidden, "only ADMIN can delete a "+s.resource())
	}
	err = s.scoper.WithScope(ctx, actor, func(q sqlx.ExtContext) error {
		before, err := s.load(ctx, q, tenantID, id)
		if err != nil {
			return err
		}
		if err := s.store.Delete(ctx, q, id); err != nil {
			return mapStoreError(err, s.notFound(), s.label+" is still assigned to employees")
		}
		return writeAudit(ctx, q, s.audit, actor, auditEvent{
			Action:     models.AuditActionOrgUnitDelete,
			Resource:   s.resource(),
			ResourceID: id,
			Old:        before,
		})
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx, tenantID)
	return nil
}

func (s *OrgUnitService) load(ctx context.Context, q sqlx.ExtContext, tenantID, id string) (*models.OrgUnit, error) {
	unit, err := s.store.FindByID(ctx, q, id)
	if err != nil {
		return nil, mapStoreError(err, s.notFound(), "")
	}
	if unit.TenantID != tenantID {
		return nil, appErrors.Clone(appErrors.ErrNotFound, s.notFound())
	}
	return unit, nil
}

func (s *OrgUnitService) invalidate(ctx context.Context, tenantID string) {
	if s.cache != nil {
		s.cache.InvalidateTenant(ctx, tenantID)
	}
}
