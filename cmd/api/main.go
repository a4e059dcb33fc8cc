package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/hrms-saas-api/internal/handler"
	"github.com/noah-isme/hrms-saas-api/internal/models"
	"github.com/noah-isme/hrms-saas-api/internal/repository"
	"github.com/noah-isme/hrms-saas-api/internal/router"
	"github.com/noah-isme/hrms-saas-api/internal/service"
	"github.com/noah-isme/hrms-saas-api/internal/validation"
	"github.com/noah-isme/hrms-saas-api/pkg/cache"
	"github.com/noah-isme/hrms-saas-api/pkg/config"
	"github.com/noah-isme/hrms-saas-api/pkg/database"
	"github.com/noah-isme/hrms-saas-api/pkg/jobs"
	"github.com/noah-isme/hrms-saas-api/pkg/logger"
	"github.com/noah-isme/hrms-saas-api/pkg/mailer"
)

const shutdownTimeout = 15 * time.Second

// @title HRMS SaaS API
// @version 1.0.0
// @description Multi-tenant HR backend with Postgres row-level security
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	} else {
		displayAppname(cfg.AppName)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logr); err != nil {
		logr.Fatal("server failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logr *zap.Logger) error {
	if cfg.MigrateOnStart {
		if err := database.Migrate(cfg.Database.URL(), "up"); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logr.Info("migrations applied")
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck

	metrics := service.NewMetricsService()
	scoper := database.NewScoper(db, metrics, logr)
	validate := validation.New()
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Analytics.CacheTTL, logr, cfg.Analytics.CacheEnabled)

	notifications, stopMail, err := startMail(ctx, cfg, logr)
	if err != nil {
		return err
	}
	defer stopMail()

	users := repository.NewUserRepository()
	employees := repository.NewEmployeeRepository()
	tenants := repository.NewTenantRepository()
	sessions := repository.NewSessionRepository()
	resets := repository.NewPasswordResetRepository()
	audit := repository.NewAuditRepository()
	subscriptions := repository.NewSubscriptionRepository()
	departments := repository.NewOrgUnitRepository(models.OrgUnitDepartment)
	designations := repository.NewOrgUnitRepository(models.OrgUnitDesignation)

	authSvc := service.NewAuthService(scoper, users, sessions, resets, audit, notifications, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.AccessExpiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		RememberMeExpiry:   cfg.JWT.RememberExpiration,
		ResetTokenExpiry:   cfg.PasswordReset.TokenTTL,
		Issuer:             cfg.JWT.Issuer,
	})
	tenantSvc := service.NewTenantService(scoper, tenants, users, employees, subscriptions, audit, notifications, validate, logr)
	userSvc := service.NewUserService(service.UserServiceDeps{
		Scoper:       scoper,
		Users:        users,
		Employees:    employees,
		Departments:  departments,
		Designations: designations,
		Sessions:     sessions,
		Audit:        audit,
		Notifier:     notifications,
		Cache:        cacheSvc,
		Validator:    validate,
		Logger:       logr,
	})
	departmentSvc := service.NewOrgUnitService(models.OrgUnitDepartment, scoper, departments, audit, cacheSvc, validate, logr)
	designationSvc := service.NewOrgUnitService(models.OrgUnitDesignation, scoper, designations, audit, cacheSvc, validate, logr)
	subscriptionSvc := service.NewSubscriptionService(scoper, subscriptions, tenants, audit, validate, logr)
	adminSvc := service.NewAdminService(scoper, repository.NewAnalyticsRepository(), audit, tenants, cacheSvc, nil, logr)
	superAdminSvc := service.NewSuperAdminService(scoper, repository.NewSuperAdminRepository(), tenants, audit, cacheSvc, metrics, nil, logr)

	if cfg.Renewal.Enabled {
		renewal := service.NewRenewalService(scoper, subscriptions, tenants, users, audit, notifications, service.RenewalConfig{
			Interval:            cfg.Renewal.Interval,
			TrialWarning:        cfg.Renewal.TrialWarning,
			SubscriptionWarning: cfg.Renewal.SubscriptionWarning,
		}, logr)
		renewal.Start(ctx)
		logr.Info("renewal job scheduled", zap.Duration("interval", cfg.Renewal.Interval))
	}

	var redisCheck handler.Pinger
	if cacheRepo.Enabled() {
		redisCheck = handler.PingFunc(cacheRepo.Ping)
	}

	engine := router.New(router.Options{
		Config:   cfg,
		Logger:   logr,
		Auth:     authSvc,
		Limiter:  cacheRepo,
		Observer: metrics,
	}, router.Handlers{
		Auth:         handler.NewAuthHandler(authSvc),
		Tenant:       handler.NewTenantHandler(tenantSvc),
		User:         handler.NewUserHandler(userSvc),
		Department:   handler.NewOrgUnitHandler(departmentSvc, "Department"),
		Designation:  handler.NewOrgUnitHandler(designationSvc, "Designation"),
		Subscription: handler.NewSubscriptionHandler(subscriptionSvc),
		Admin:        handler.NewAdminHandler(adminSvc),
		SuperAdmin:   handler.NewSuperAdminHandler(superAdminSvc),
		Health:       handler.NewMetricsHandler(metrics, map[string]handler.Pinger{"database": db, "redis": redisCheck}),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// startMail wires the notification service. With mail disabled no queue is
// started and notifications are logged and dropped.
func startMail(ctx context.Context, cfg *config.Config, logr *zap.Logger) (*service.NotificationService, func(), error) {
	notifyCfg := service.NotificationConfig{
		Enabled:  cfg.Mail.Enabled,
		LoginURL: cfg.Mail.LoginURL,
		ResetURL: cfg.PasswordReset.ResetURL,
		ResetTTL: cfg.PasswordReset.TokenTTL,
	}
	if !cfg.Mail.Enabled {
		return service.NewNotificationService(nil, notifyCfg, logr), func() {}, nil
	}

	sender, err := mailer.NewSMTPSender(cfg.Mail)
	if err != nil {
		return nil, nil, fmt.Errorf("mailer: %w", err)
	}
	queue := jobs.NewQueue("email", service.NewEmailHandler(mailer.NewRenderer(), sender, logr), jobs.QueueConfig{
		Workers:    cfg.Mail.Workers,
		MaxRetries: cfg.Mail.MaxRetries,
		RetryDelay: 2 * time.Second,
		Logger:     logr,
	})
	queue.Start(ctx)
	return service.NewNotificationService(queue, notifyCfg, logr), queue.Stop, nil
}

func displayAppname(appname string) {
	figure.NewFigure(appname, "cybermedium", true).Print()
	fmt.Println()
}
