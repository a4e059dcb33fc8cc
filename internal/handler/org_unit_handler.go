package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	"github.com/noah-isme/hrms-saas-api/pkg/response"
)

type orgUnitService interface {
	Create(ctx context.Context, actor *models.Actor, req models.CreateOrgUnitRequest) (*models.OrgUnit, error)
	List(ctx context.Context, actor *models.Actor) ([]models.OrgUnit, error)
	Get(ctx context.Context, actor *models.Actor, id string) (*models.OrgUnit, error)
	Update(ctx context.Context, actor *models.Actor, id string, req models.UpdateOrgUnitRequest) (*models.OrgUnit, error)
	Delete(ctx context.Context, actor *models.Actor, id string) error
}

// OrgUnitHandler serves both the department and designation catalogues.
type OrgUnitHandler struct {
	service orgUnitService
	label   string
}

// NewOrgUnitHandler constructs a handler; label is used in response messages.
func NewOrgUnitHandler(svc orgUnitService, label string) *OrgUnitHandler {
	return &OrgUnitHandler{service: svc, label: label}
}

// Create godoc
// @Summary Create department or designation
// @Tags Organisation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.CreateOrgUnitRequest true "Name and description"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /departments [post]
// @Router /designations [post]
func (h *OrgUnitHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.CreateOrgUnitRequest
	if !bindJSON(c, &req, "invalid "+h.label+" payload") {
		return
	}
	unit, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, unit)
}

// List godoc
// @Summary List departments or designations
// @Tags Organisation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /departments [get]
// @Router /designations [get]
func (h *OrgUnitHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	units, err := h.service.List(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, units, nil)
}

// Get godoc
// @Summary Get department or designation
// @Tags Organisation
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /departments/{id} [get]
// @Router /designations/{id} [get]
func (h *OrgUnitHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	unit, err := h.service.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, unit, nil)
}

// Update godoc
// @Summary Update department or designation
// @Tags Organisation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Param payload body models.UpdateOrgUnitRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /departments/{id} [patch]
// @Router /designations/{id} [patch]
func (h *OrgUnitHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.UpdateOrgUnitRequest
	if !bindJSON(c, &req, "invalid "+h.label+" payload") {
		return
	}
	unit, err := h.service.Update(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, unit, nil)
}

// Delete godoc
// @Summary Delete department or designation
// @Tags Organisation
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /departments/{id} [delete]
// @Router /designations/{id} [delete]
func (h *OrgUnitHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, h.label+" deleted")
}
