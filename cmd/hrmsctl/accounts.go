package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/hrms-saas-api/internal/repository"
	"github.com/noah-isme/hrms-saas-api/internal/service"
	"github.com/noah-isme/hrms-saas-api/internal/validation"
	"github.com/noah-isme/hrms-saas-api/pkg/config"
	"github.com/noah-isme/hrms-saas-api/pkg/database"
	"github.com/noah-isme/hrms-saas-api/pkg/logger"
	"github.com/noah-isme/hrms-saas-api/pkg/security"
)

const (
	emailFlag    = "email"
	passwordFlag = "password"
)

var superAdminFlags = map[string]cobraflags.Flag{
	emailFlag: &cobraflags.StringFlag{
		Name:  emailFlag,
		Value: "",
		Usage: "Login email of the super admin (required)",
	},
	passwordFlag: &cobraflags.StringFlag{
		Name:  passwordFlag,
		Value: "",
		Usage: "Initial password (required)",
	},
}

func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <plain>",
		Short: "Print the bcrypt hash of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validation.StrongPassword(args[0]) {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: password does not satisfy the strong password rule")
			}
			hash, err := security.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func newCreateSuperAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-super-admin",
		Short: "Create a platform-wide SUPER_ADMIN account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email := superAdminFlags[emailFlag].GetString()
			password := superAdminFlags[passwordFlag].GetString()
			if email == "" || password == "" {
				return errors.New("--email and --password are required")
			}
			return withMaintenance(cmd.Context(), func(ctx context.Context, svc *service.MaintenanceService) error {
				user, err := svc.CreateSuperAdmin(ctx, email, password)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "super admin %s created (id %s)\n", user.Email, user.ID)
				return nil
			})
		},
	}
	cobraflags.RegisterMap(cmd, superAdminFlags)
	return cmd
}

func newPurgeResetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "purge-reset-tokens",
		Short: "Delete expired and used password reset tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMaintenance(cmd.Context(), func(ctx context.Context, svc *service.MaintenanceService) error {
				purged, err := svc.PurgeExpiredResets(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "purged %d reset tokens\n", purged)
				return nil
			})
		},
	}
}

// withMaintenance opens the database for the duration of fn.
func withMaintenance(ctx context.Context, fn func(context.Context, *service.MaintenanceService) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logr, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	scoper := database.NewScoper(db, nil, logr.With(zap.String("component", "hrmsctl")))
	svc := service.NewMaintenanceService(scoper, repository.NewUserRepository(), repository.NewPasswordResetRepository(), repository.NewAuditRepository(), logr)
	return fn(ctx, svc)
}
