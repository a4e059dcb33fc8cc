package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
	"github.com/noah-isme/hrms-saas-api/pkg/response"
)

type userService interface {
	Create(ctx context.Context, actor *models.Actor, req models.CreateUserRequest) (*models.CreateUserResult, error)
	List(ctx context.Context, actor *models.Actor, filter models.UserFilter) ([]models.UserDetail, *models.Pagination, error)
	Get(ctx context.Context, actor *models.Actor, id string) (*models.UserDetail, error)
	Update(ctx context.Context, actor *models.Actor, id string, req models.UpdateUserRequest) (*models.UserDetail, error)
	UpdateEmployee(ctx context.Context, actor *models.Actor, id string, req models.UpdateEmployeeRequest) (*models.UserDetail, error)
	AssignManager(ctx context.Context, actor *models.Actor, id string, req models.ChangeManagerRequest) (*models.UserDetail, error)
	AssignDepartment(ctx context.Context, actor *models.Actor, id string, req models.AssignDepartmentRequest) (*models.UserDetail, error)
	AssignDesignation(ctx context.Context, actor *models.Actor, id string, req models.AssignDesignationRequest) (*models.UserDetail, error)
	ChangeRole(ctx context.Context, actor *models.Actor, id string, req models.ChangeRoleRequest) (*models.UserDetail, error)
	SetStatus(ctx context.Context, actor *models.Actor, id string, req models.UpdateStatusRequest) (*models.UserDetail, error)
	ResetPassword(ctx context.Context, actor *models.Actor, id string) error
	Profile(ctx context.Context, actor *models.Actor) (*models.UserDetail, error)
	UpdateProfile(ctx context.Context, actor *models.Actor, req models.UpdateProfileRequest) (*models.UserDetail, error)
	Reports(ctx context.Context, actor *models.Actor) ([]models.UserDetail, error)
}

// UserHandler manages tenant users and their employee profiles.
type UserHandler struct {
	service userService
}

// NewUserHandler constructs a user handler.
func NewUserHandler(svc userService) *UserHandler {
	return &UserHandler{service: svc}
}

// Create godoc
// @Summary Create user
// @Description Creates a user and its employee profile; the temporary password is emailed
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.CreateUserRequest true "User payload"
// @Success 201 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.CreateUserRequest
	if !bindJSON(c, &req, "invalid user payload") {
		return
	}
	res, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, res)
}

// List godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role"
// @Param departmentId query string false "Department ID"
// @Param search query string false "Email or name search"
// @Param limit query int false "Page size (max 200)"
// @Param offset query int false "Offset"
// @Success 200 {object} response.Envelope
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset", 0)
	if !ok {
		return
	}
	filter := models.UserFilter{
		DepartmentID: strings.TrimSpace(c.Query("departmentId")),
		Search:       strings.TrimSpace(c.Query("search")),
		Limit:        limit,
		Offset:       offset,
	}
	if raw := strings.ToUpper(strings.TrimSpace(c.Query("role"))); raw != "" {
		role := models.UserRole(raw)
		if !role.Valid() || role == models.RoleSystem {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown role filter"))
			return
		}
		filter.Role = &role
	}

	users, pagination, err := h.service.List(c.Request.Context(), actor, filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, users, pagination)
}

// Get godoc
// @Summary Get user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	user, err := h.service.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user, nil)
}

// Update godoc
// @Summary Update account fields
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param payload body models.UpdateUserRequest true "Email and activation"
// @Success 200 {object} response.Envelope
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.UpdateUserRequest
	if !bindJSON(c, &req, "invalid user payload") {
		return
	}
	user, err := h.service.Update(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user, nil)
}

// UpdateEmployee godoc
// @Summary Update employee profile
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param payload body models.UpdateEmployeeRequest true "Profile fields"
// @Success 200 {object} response.Envelope
// @Router /users/{id}/employee [put]
func (h *UserHandler) UpdateEmployee(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.UpdateEmployeeRequest
	if !bindJSON(c, &req, "invalid employee payload") {
		return
	}
	user, err := h.service.UpdateEmployee(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user, nil)
}

// AssignManager godoc
// @Summary Set reporting manager
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param payload body models.ChangeManagerRequest true "Manager employee"
// @Success 200 {object} response.Envelope
// @Router /users/{id}/manager [put]
func (h *UserHandler) AssignManager(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.ChangeManagerRequest
	if !bindJSON(c, &req, "invalid manager payload") {
		return
	}
	user, err := h.service.AssignManager(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user, nil)
}

// AssignDepartment godoc
// @Summary Move employee to a department
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param payload body models.AssignDepartmentRequest true "Department"
// @Success 200 {object} response.Envelope
// @Router /users/{id}/department [put]
func (h *UserHandler) AssignDepartment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.AssignDepartmentRequest
	if !bindJSON(c, &req, "invalid department payload") {
		return
	}
	user, err := h.service.AssignDepartment(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user, nil)
}

// AssignDesignation godoc
// @Summary Set employee designation
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param payload body models.AssignDesignationRequest true "Designation"
// @Success 200 {object} response.Envelope
// @Router /users/{id}/designation [put]
func (h *UserHandler) AssignDesignation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.AssignDesignationRequest
	if !bindJSON(c, &req, "invalid designation payload") {
		return
	}
	user, err := h.service.AssignDesignation(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user, nil)
}

// ChangeRole godoc
// @Summary Change user role
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param payload body models.ChangeRoleRequest true "Role"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /users/{id}/role [put]
func (h *UserHandler) ChangeRole(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.ChangeRoleRequest
	if !bindJSON(c, &req, "invalid role payload") {
		return
	}
	user, err := h.service.ChangeRole(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user, nil)
}

// SetStatus godoc
// @Summary Activate or deactivate a user
// @Description Deactivation revokes every session of the target
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param payload body models.UpdateStatusRequest true "Status"
// @Success 200 {object} response.Envelope
// @Router /users/{id}/status [put]
func (h *UserHandler) SetStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.UpdateStatusRequest
	if !bindJSON(c, &req, "invalid status payload") {
		return
	}
	user, err := h.service.SetStatus(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user, nil)
}

// ResetPassword godoc
// @Summary Issue a temporary password
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Router /users/{id}/reset-password [post]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.service.ResetPassword(c.Request.Context(), actor, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Temporary password sent")
}

// Profile godoc
// @Summary Own employee profile
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /users/me/profile [get]
func (h *UserHandler) Profile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	profile, err := h.service.Profile(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile, nil)
}

// UpdateProfile godoc
// @Summary Update own name and phone
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.UpdateProfileRequest true "Profile"
// @Success 200 {object} response.Envelope
// @Router /users/me/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.UpdateProfileRequest
	if !bindJSON(c, &req, "invalid profile payload") {
		return
	}
	profile, err := h.service.UpdateProfile(c.Request.Context(), actor, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile, nil)
}

// Reports godoc
// @Summary Direct reports of the caller
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /users/me/reports [get]
func (h *UserHandler) Reports(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	reports, err := h.service.Reports(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reports, nil)
}
