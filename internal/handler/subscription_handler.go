package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	"github.com/noah-isme/hrms-saas-api/pkg/response"
)

type subscriptionService interface {
	ListPlans(ctx context.Context, actor *models.Actor) ([]models.SubscriptionPlan, error)
	CreatePlan(ctx context.Context, actor *models.Actor, req models.PlanRequest) (*models.SubscriptionPlan, error)
	UpdatePlan(ctx context.Context, actor *models.Actor, id string, req models.PlanRequest) (*models.SubscriptionPlan, error)
	DeletePlan(ctx context.Context, actor *models.Actor, id string) error
	Assign(ctx context.Context, actor *models.Actor, tenantID, planID string) (*models.TenantSubscription, error)
	Current(ctx context.Context, actor *models.Actor) (*models.TenantSubscription, error)
	Status(ctx context.Context, actor *models.Actor) (*models.SubscriptionStatusView, error)
	Upgrade(ctx context.Context, actor *models.Actor, planID string) (*models.TenantSubscription, error)
	Downgrade(ctx context.Context, actor *models.Actor, planID string) (*models.TenantSubscription, error)
	Cancel(ctx context.Context, actor *models.Actor) (*models.TenantSubscription, error)
}

// SubscriptionHandler exposes the plan catalogue and tenant subscriptions.
type SubscriptionHandler struct {
	service subscriptionService
}

// NewSubscriptionHandler constructs a subscription handler.
func NewSubscriptionHandler(svc subscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{service: svc}
}

// PublicPlans godoc
// @Summary List plans without authentication
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /public/plans [get]
func (h *SubscriptionHandler) PublicPlans(c *gin.Context) {
	plans, err := h.service.ListPlans(c.Request.Context(), nil)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, plans, nil)
}

// ListPlans godoc
// @Summary List plans
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /subscriptions/plans [get]
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	plans, err := h.service.ListPlans(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, plans, nil)
}

// CreatePlan godoc
// @Summary Create plan
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.PlanRequest true "Plan"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /subscriptions/plans [post]
func (h *SubscriptionHandler) CreatePlan(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.PlanRequest
	if !bindJSON(c, &req, "invalid plan payload") {
		return
	}
	plan, err := h.service.CreatePlan(c.Request.Context(), actor, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, plan)
}

// UpdatePlan godoc
// @Summary Update plan
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param planId path string true "Plan ID"
// @Param payload body models.PlanRequest true "Plan"
// @Success 200 {object} response.Envelope
// @Router /subscriptions/plans/{planId} [put]
func (h *SubscriptionHandler) UpdatePlan(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.PlanRequest
	if !bindJSON(c, &req, "invalid plan payload") {
		return
	}
	plan, err := h.service.UpdatePlan(c.Request.Context(), actor, c.Param("planId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, plan, nil)
}

// DeletePlan godoc
// @Summary Delete plan
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Param planId path string true "Plan ID"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /subscriptions/plans/{planId} [delete]
func (h *SubscriptionHandler) DeletePlan(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.service.DeletePlan(c.Request.Context(), actor, c.Param("planId")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Plan deleted")
}

// Assign godoc
// @Summary Assign a plan to a tenant
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Param tenantId path string true "Tenant ID"
// @Param planId path string true "Plan ID"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /subscriptions/assign/{tenantId}/{planId} [post]
func (h *SubscriptionHandler) Assign(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	sub, err := h.service.Assign(c.Request.Context(), actor, c.Param("tenantId"), c.Param("planId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, sub)
}

// Current godoc
// @Summary Current subscription of the caller's tenant
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /subscriptions/current [get]
func (h *SubscriptionHandler) Current(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	sub, err := h.service.Current(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sub, nil)
}

// Status godoc
// @Summary Subscription status with days remaining
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /subscriptions/status [get]
func (h *SubscriptionHandler) Status(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := h.service.Status(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Upgrade godoc
// @Summary Switch to a higher plan
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Param planId path string true "Plan ID"
// @Success 200 {object} response.Envelope
// @Router /subscriptions/upgrade/{planId} [post]
func (h *SubscriptionHandler) Upgrade(c *gin.Context) {
	h.switchPlan(c, h.service.Upgrade)
}

// Downgrade godoc
// @Summary Switch to a lower plan
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Param planId path string true "Plan ID"
// @Success 200 {object} response.Envelope
// @Router /subscriptions/downgrade/{planId} [post]
func (h *SubscriptionHandler) Downgrade(c *gin.Context) {
	h.switchPlan(c, h.service.Downgrade)
}

func (h *SubscriptionHandler) switchPlan(c *gin.Context, apply func(context.Context, *models.Actor, string) (*models.TenantSubscription, error)) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	sub, err := apply(c.Request.Context(), actor, c.Param("planId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sub, nil)
}

// Cancel godoc
// @Summary Cancel the active subscription
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /subscriptions/cancel [post]
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	sub, err := h.service.Cancel(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sub, nil)
}
