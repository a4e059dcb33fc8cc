// Package router assembles the HTTP surface: global middleware, route groups
// and their access gates.
package router

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/hrms-saas-api/api/swagger"
	"github.com/noah-isme/hrms-saas-api/internal/handler"
	"github.com/noah-isme/hrms-saas-api/internal/middleware"
	"github.com/noah-isme/hrms-saas-api/internal/models"
	"github.com/noah-isme/hrms-saas-api/pkg/config"
	"github.com/noah-isme/hrms-saas-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/hrms-saas-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/hrms-saas-api/pkg/middleware/requestid"
)

// Authenticator validates access tokens and resolves the calling actor.
type Authenticator interface {
	ValidateToken(tokenString string) (*models.JWTClaims, error)
	ResolveActor(ctx context.Context, claims *models.JWTClaims) (*models.Actor, error)
}

// Counter backs the rate limiter. A nil Counter disables limiting.
type Counter interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RequestObserver receives per-request metrics.
type RequestObserver interface {
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
}

// Handlers groups every HTTP handler mounted by New.
type Handlers struct {
	Auth         *handler.AuthHandler
	Tenant       *handler.TenantHandler
	User         *handler.UserHandler
	Department   *handler.OrgUnitHandler
	Designation  *handler.OrgUnitHandler
	Subscription *handler.SubscriptionHandler
	Admin        *handler.AdminHandler
	SuperAdmin   *handler.SuperAdminHandler
	Health       *handler.MetricsHandler
}

// Options carries the collaborators the middleware chain needs.
type Options struct {
	Config   *config.Config
	Logger   *zap.Logger
	Auth     Authenticator
	Limiter  Counter
	Observer RequestObserver
}

// New builds the gin engine.
func New(opts Options, h Handlers) *gin.Engine {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.Recovery(log))
	r.Use(logger.GinMiddleware(log))
	if opts.Observer != nil {
		r.Use(middleware.Metrics(opts.Observer))
	}
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", h.Health.Health)
	r.GET("/ready", h.Health.Ready)
	r.GET("/metrics", h.Health.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limiter := opts.Limiter
	if !cfg.RateLimit.Enabled {
		limiter = nil
	}
	rl := cfg.RateLimit
	authLimit := middleware.RateLimit(limiter, "auth", rl.AuthLimit, rl.AuthWindow, log)
	resetLimit := middleware.RateLimit(limiter, "reset", rl.ResetLimit, rl.ResetWindow, log)
	registerLimit := middleware.RateLimit(limiter, "register", rl.RegisterLimit, rl.RegisterWindow, log)

	authenticate := middleware.Authenticate(opts.Auth)
	passwordGate := middleware.RequirePasswordChanged()
	staff := middleware.RequireRoles(models.RoleAdmin, models.RoleHR)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)
	superOnly := middleware.RequireRoles(models.RoleSuperAdmin)

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/login", authLimit, h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/logout", h.Auth.Logout)
	auth.POST("/forgot-password", resetLimit, h.Auth.ForgotPassword)
	auth.POST("/reset-password", resetLimit, h.Auth.ResetPassword)
	auth.POST("/change-password", authenticate, h.Auth.ChangePassword)
	auth.GET("/me", authenticate, h.Auth.Me)
	auth.POST("/logout-all", authenticate, passwordGate, h.Auth.LogoutAll)
	auth.GET("/sessions", authenticate, passwordGate, h.Auth.Sessions)

	api.POST("/tenants/register", registerLimit, h.Tenant.Register)
	api.GET("/public/plans", h.Subscription.PublicPlans)

	secured := api.Group("", authenticate, passwordGate)

	users := secured.Group("/users")
	{
		me := users.Group("/me", middleware.RequireTenant())
		me.GET("/profile", h.User.Profile)
		me.PUT("/profile", h.User.UpdateProfile)
		me.GET("/reports", middleware.RequireRoles(models.RoleManager, models.RoleAdmin, models.RoleHR), h.User.Reports)

		users.POST("", staff, h.User.Create)
		users.GET("", staff, h.User.List)
		users.GET("/:id", staff, h.User.Get)
		users.PUT("/:id", staff, h.User.Update)
		users.PUT("/:id/employee", staff, h.User.UpdateEmployee)
		users.PUT("/:id/role", adminOnly, h.User.ChangeRole)
		users.PUT("/:id/manager", staff, h.User.AssignManager)
		users.PUT("/:id/department", staff, h.User.AssignDepartment)
		users.PUT("/:id/designation", staff, h.User.AssignDesignation)
		users.PUT("/:id/status", staff, h.User.SetStatus)
		users.POST("/:id/reset-password", staff, h.User.ResetPassword)
	}

	mountOrgUnits(secured.Group("/departments"), h.Department, staff, adminOnly)
	mountOrgUnits(secured.Group("/designations"), h.Designation, staff, adminOnly)

	subs := secured.Group("/subscriptions")
	{
		subs.GET("/plans", h.Subscription.ListPlans)
		subs.POST("/plans", superOnly, h.Subscription.CreatePlan)
		subs.PUT("/plans/:planId", superOnly, h.Subscription.UpdatePlan)
		subs.DELETE("/plans/:planId", superOnly, h.Subscription.DeletePlan)
		subs.POST("/assign/:tenantId/:planId", superOnly, h.Subscription.Assign)
		subs.GET("/current", staff, h.Subscription.Current)
		subs.GET("/status", staff, h.Subscription.Status)
		subs.POST("/upgrade/:planId", adminOnly, h.Subscription.Upgrade)
		subs.POST("/downgrade/:planId", adminOnly, h.Subscription.Downgrade)
		subs.POST("/cancel", adminOnly, h.Subscription.Cancel)
	}

	admin := secured.Group("/admin", staff)
	{
		admin.GET("/summary", h.Admin.Summary)
		admin.GET("/last-logins", h.Admin.LastLogins)
		admin.GET("/recent-employees", h.Admin.RecentEmployees)
		admin.GET("/tenant/profile", h.Admin.TenantProfile)
		admin.GET("/roles", h.Admin.Roles)
		admin.GET("/department-counts", h.Admin.DepartmentCounts)
		admin.GET("/designation-counts", h.Admin.DesignationCounts)
		admin.GET("/manager-reports", h.Admin.ManagerReports)
		admin.GET("/audit-logs", h.Admin.AuditLogs)
		admin.GET("/employee-status", h.Admin.EmployeeStatus)
		admin.GET("/employees/export", h.Admin.ExportEmployees)
	}

	super := secured.Group("/super-admin", superOnly)
	{
		super.GET("/tenants", h.SuperAdmin.ListTenants)
		super.GET("/tenants/export", h.SuperAdmin.ExportTenants)
		super.GET("/tenants/:id", h.SuperAdmin.GetTenant)
		super.PATCH("/tenants/:id/activate", h.SuperAdmin.Activate)
		super.PATCH("/tenants/:id/deactivate", h.SuperAdmin.Deactivate)
		super.GET("/tenants/:id/users", h.SuperAdmin.TenantUsers)
		super.GET("/tenants/:id/employees", h.SuperAdmin.EmployeeCount)
		super.GET("/stats", h.SuperAdmin.Stats)
		super.GET("/logins", h.SuperAdmin.RecentLogins)
	}

	return r
}

func mountOrgUnits(g *gin.RouterGroup, h *handler.OrgUnitHandler, staff, adminOnly gin.HandlerFunc) {
	g.POST("", staff, h.Create)
	g.GET("", staff, h.List)
	g.GET("/:id", staff, h.Get)
	g.PATCH("/:id", staff, h.Update)
	g.DELETE("/:id", adminOnly, h.Delete)
}
