package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	"github.com/noah-isme/hrms-saas-api/pkg/response"
)

type tenantService interface {
	Register(ctx context.Context, req models.RegisterTenantRequest) (*models.RegisterTenantResult, error)
}

// TenantHandler exposes self-service signup.
type TenantHandler struct {
	service tenantService
}

// NewTenantHandler constructs the handler.
func NewTenantHandler(svc tenantService) *TenantHandler {
	return &TenantHandler{service: svc}
}

// Register godoc
// @Summary Register a tenant
// @Description Creates the tenant, its first ADMIN and a trial subscription when a trial plan exists. The temporary password is emailed.
// @Tags Tenants
// @Accept json
// @Produce json
// @Param payload body models.RegisterTenantRequest true "Tenant details"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /tenants/register [post]
func (h *TenantHandler) Register(c *gin.Context) {
	var req models.RegisterTenantRequest
	if !bindJSON(c, &req, "invalid tenant payload") {
		return
	}
	req.IP = c.ClientIP()
	req.UserAgent = c.GetHeader("User-Agent")

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, res)
}
