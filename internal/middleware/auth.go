package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hrms-saas-api/internal/models"
	appErrors "github.com/noah-isme/hrms-saas-api/pkg/errors"
	"github.com/noah-isme/hrms-saas-api/pkg/response"
)

// ContextActorKey is the gin context key storing the resolved actor.
const ContextActorKey = "actor"

type actorResolver interface {
	ValidateToken(tokenString string) (*models.JWTClaims, error)
	ResolveActor(ctx context.Context, claims *models.JWTClaims) (*models.Actor, error)
}

// Authenticate requires a valid bearer token and resolves it to an actor. The
// role and tenant come from the database, not from the token, so a demoted or
// deactivated account loses access immediately.
func Authenticate(auth actorResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Abort(c, appErrors.Clone(appErrors.ErrUnauthorized, "Access token required"))
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			response.Abort(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
			return
		}

		claims, err := auth.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Abort(c, err)
			return
		}
		actor, err := auth.ResolveActor(c.Request.Context(), claims)
		if err != nil {
			response.Abort(c, err)
			return
		}
		actor.IP = c.ClientIP()
		actor.UserAgent = c.GetHeader("User-Agent")

		c.Set(ContextActorKey, actor)
		c.Next()
	}
}

// ActorFrom returns the actor attached by Authenticate.
func ActorFrom(c *gin.Context) *models.Actor {
	value, exists := c.Get(ContextActorKey)
	if !exists {
		return nil
	}
	actor, _ := value.(*models.Actor)
	return actor
}

// RequirePasswordChanged blocks actors that still carry a temporary password.
// Routes that let them change it are registered outside this gate.
func RequirePasswordChanged() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFrom(c)
		if actor == nil {
			response.Abort(c, appErrors.ErrUnauthorized)
			return
		}
		if actor.MustChangePassword {
			response.Abort(c, appErrors.ErrPasswordChangeRequired)
			return
		}
		c.Next()
	}
}
