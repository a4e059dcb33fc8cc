package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	"github.com/noah-isme/hrms-saas-api/pkg/export"
	"github.com/noah-isme/hrms-saas-api/pkg/response"
)

type adminService interface {
	Summary(ctx context.Context, actor *models.Actor) (*models.AdminSummary, bool, error)
	RoleCounts(ctx context.Context, actor *models.Actor) ([]models.LabelCount, bool, error)
	DepartmentCounts(ctx context.Context, actor *models.Actor) ([]models.LabelCount, bool, error)
	DesignationCounts(ctx context.Context, actor *models.Actor) ([]models.LabelCount, bool, error)
	ManagerReports(ctx context.Context, actor *models.Actor) ([]models.ManagerReport, bool, error)
	EmployeeStatus(ctx context.Context, actor *models.Actor) (*models.EmployeeStatus, bool, error)
	LastLogins(ctx context.Context, actor *models.Actor) ([]models.LastLogin, error)
	RecentEmployees(ctx context.Context, actor *models.Actor) ([]models.RecentEmployee, error)
	AuditLogs(ctx context.Context, actor *models.Actor, limit int) ([]models.AuditLog, error)
	TenantProfile(ctx context.Context, actor *models.Actor) (*models.Tenant, error)
	ExportDirectory(ctx context.Context, actor *models.Actor, rawFormat string) (*export.File, error)
}

// AdminHandler serves tenant analytics for ADMIN and HR.
type AdminHandler struct {
	service adminService
}

// NewAdminHandler constructs an admin handler.
func NewAdminHandler(svc adminService) *AdminHandler {
	return &AdminHandler{service: svc}
}

// Summary godoc
// @Summary Employee and department totals
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/summary [get]
func (h *AdminHandler) Summary(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	data, hit, err := h.service.Summary(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondCached(c, data, hit)
}

// Roles godoc
// @Summary User counts per role
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/roles [get]
func (h *AdminHandler) Roles(c *gin.Context) {
	h.breakdown(c, h.service.RoleCounts)
}

// DepartmentCounts godoc
// @Summary Employee counts per department
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/department-counts [get]
func (h *AdminHandler) DepartmentCounts(c *gin.Context) {
	h.breakdown(c, h.service.DepartmentCounts)
}

// DesignationCounts godoc
// @Summary Employee counts per designation
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/designation-counts [get]
func (h *AdminHandler) DesignationCounts(c *gin.Context) {
	h.breakdown(c, h.service.DesignationCounts)
}

func (h *AdminHandler) breakdown(c *gin.Context, load func(context.Context, *models.Actor) ([]models.LabelCount, bool, error)) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	data, hit, err := load(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondCached(c, data, hit)
}

// ManagerReports godoc
// @Summary Direct report counts per manager
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/manager-reports [get]
func (h *AdminHandler) ManagerReports(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	data, hit, err := h.service.ManagerReports(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondCached(c, data, hit)
}

// EmployeeStatus godoc
// @Summary Active and inactive employee counts
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/employee-status [get]
func (h *AdminHandler) EmployeeStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	data, hit, err := h.service.EmployeeStatus(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondCached(c, data, hit)
}

// LastLogins godoc
// @Summary Most recent sign-ins
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/last-logins [get]
func (h *AdminHandler) LastLogins(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	data, err := h.service.LastLogins(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, data, nil)
}

// RecentEmployees godoc
// @Summary Newest employees
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/recent-employees [get]
func (h *AdminHandler) RecentEmployees(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	data, err := h.service.RecentEmployees(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, data, nil)
}

// AuditLogs godoc
// @Summary Recent audit entries
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Entries (default 50, max 200)"
// @Success 200 {object} response.Envelope
// @Router /admin/audit-logs [get]
func (h *AdminHandler) AuditLogs(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return
	}
	data, err := h.service.AuditLogs(c.Request.Context(), actor, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, data, nil)
}

// TenantProfile godoc
// @Summary Caller's tenant record
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /admin/tenant/profile [get]
func (h *AdminHandler) TenantProfile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	tenant, err := h.service.TenantProfile(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tenant, nil)
}

// ExportEmployees godoc
// @Summary Download the employee directory
// @Tags Admin
// @Produce text/csv
// @Produce application/pdf
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param format query string false "csv (default), pdf or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /admin/employees/export [get]
func (h *AdminHandler) ExportEmployees(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	file, err := h.service.ExportDirectory(c.Request.Context(), actor, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, file.Name, file.ContentType, file.Data)
}
