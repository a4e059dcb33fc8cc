package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	"github.com/noah-isme/hrms-saas-api/pkg/export"
	"github.com/noah-isme/hrms-saas-api/pkg/response"
)

type superAdminService interface {
	ListTenants(ctx context.Context, actor *models.Actor) ([]models.TenantSummary, error)
	GetTenant(ctx context.Context, actor *models.Actor, id string) (*models.Tenant, error)
	SetTenantActive(ctx context.Context, actor *models.Actor, id string, active bool) (*models.Tenant, error)
	TenantUsers(ctx context.Context, actor *models.Actor, tenantID string) ([]models.User, error)
	EmployeeCount(ctx context.Context, actor *models.Actor, tenantID string) (int, error)
	Stats(ctx context.Context, actor *models.Actor) (*models.PlatformStats, error)
	RecentLogins(ctx context.Context, actor *models.Actor) ([]models.LoginActivity, error)
	ExportTenants(ctx context.Context, actor *models.Actor, rawFormat string) (*export.File, error)
}

// SuperAdminHandler exposes cross-tenant platform management.
type SuperAdminHandler struct {
	service superAdminService
}

// NewSuperAdminHandler constructs a super admin handler.
func NewSuperAdminHandler(svc superAdminService) *SuperAdminHandler {
	return &SuperAdminHandler{service: svc}
}

// ListTenants godoc
// @Summary List tenants
// @Tags SuperAdmin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /super-admin/tenants [get]
func (h *SuperAdminHandler) ListTenants(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	tenants, err := h.service.ListTenants(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tenants, nil)
}

// GetTenant godoc
// @Summary Get tenant
// @Tags SuperAdmin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tenant ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /super-admin/tenants/{id} [get]
func (h *SuperAdminHandler) GetTenant(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	tenant, err := h.service.GetTenant(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tenant, nil)
}

// Activate godoc
// @Summary Activate tenant
// @Tags SuperAdmin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tenant ID"
// @Success 200 {object} response.Envelope
// @Router /super-admin/tenants/{id}/activate [patch]
func (h *SuperAdminHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

// Deactivate godoc
// @Summary Deactivate tenant
// @Tags SuperAdmin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tenant ID"
// @Success 200 {object} response.Envelope
// @Router /super-admin/tenants/{id}/deactivate [patch]
func (h *SuperAdminHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

func (h *SuperAdminHandler) setActive(c *gin.Context, active bool) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	tenant, err := h.service.SetTenantActive(c.Request.Context(), actor, c.Param("id"), active)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tenant, nil)
}

// TenantUsers godoc
// @Summary Users of a tenant
// @Tags SuperAdmin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tenant ID"
// @Success 200 {object} response.Envelope
// @Router /super-admin/tenants/{id}/users [get]
func (h *SuperAdminHandler) TenantUsers(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	users, err := h.service.TenantUsers(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, users, nil)
}

// EmployeeCount godoc
// @Summary Employee count of a tenant
// @Tags SuperAdmin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tenant ID"
// @Success 200 {object} response.Envelope
// @Router /super-admin/tenants/{id}/employees [get]
func (h *SuperAdminHandler) EmployeeCount(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	count, err := h.service.EmployeeCount(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"tenant_id": c.Param("id"), "employees": count}, nil)
}

// Stats godoc
// @Summary Platform totals
// @Tags SuperAdmin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /super-admin/stats [get]
func (h *SuperAdminHandler) Stats(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	stats, err := h.service.Stats(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}

// RecentLogins godoc
// @Summary Recent sign-ins across tenants
// @Tags SuperAdmin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /super-admin/logins [get]
func (h *SuperAdminHandler) RecentLogins(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	logins, err := h.service.RecentLogins(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, logins, nil)
}

// ExportTenants godoc
// @Summary Download the tenant listing
// @Tags SuperAdmin
// @Produce text/csv
// @Produce application/pdf
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param format query string false "csv (default), pdf or xlsx"
// @Success 200 {file} file
// @Router /super-admin/tenants/export [get]
func (h *SuperAdminHandler) ExportTenants(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	file, err := h.service.ExportTenants(c.Request.Context(), actor, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, file.Name, file.ContentType, file.Data)
}
