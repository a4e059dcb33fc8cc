package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
	"github.com/noah-isme/hrms-saas-api/pkg/response"
)

// RequireRoles admits only actors holding one of roles.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
		names = append(names, string(r))
	}
	message := "Requires role: " + strings.Join(names, ", ")

	return func(c *gin.Context) {
		actor := ActorFrom(c)
		if actor == nil {
			response.Abort(c, appErrors.ErrUnauthorized)
			return
		}
		if _, ok := allowed[actor.Role]; !ok {
			response.Abort(c, appErrors.Clone(appErrors.ErrForbidden, message))
			return
		}
		c.Next()
	}
}

// RequireTenant rejects global actors on tenant-only routes.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFrom(c)
		if actor == nil {
			response.Abort(c, appErrors.ErrUnauthorized)
			return
		}
		if actor.TenantID == nil {
			response.Abort(c, appErrors.Clone(appErrors.ErrForbidden, "tenant context required"))
			return
		}
		c.Next()
	}
}
