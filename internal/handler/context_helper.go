package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hrms-saas-api/internal/middleware"
	"github.com/noah-isme/hrms-saas-api/internal/models"
	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
	"github.com/noah-isme/hrms-saas-api/pkg/response"
)

// requireActor returns the authenticated actor or writes 401.
func requireActor(c *gin.Context) (*models.Actor, bool) {
	actor := middleware.ActorFrom(c)
	if actor == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return nil, false
	}
	return actor, true
}

// bindJSON decodes the body into dest or writes a 400 with message.
func bindJSON(c *gin.Context, dest interface{}, message string) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, message))
		return false
	}
	return true
}

// queryInt parses an optional integer query parameter.
func queryInt(c *gin.Context, name string, fallback int) (int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, name+" must be a non-negative integer"))
		return 0, false
	}
	return v, true
}

// respondCached writes data with the cache_hit flag in meta.
func respondCached(c *gin.Context, data interface{}, hit bool) {
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, data, nil, middleware.Meta(c))
}
