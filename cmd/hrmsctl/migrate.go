package main

import (
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/noah-isme/hrms-saas-api/pkg/config"
	"github.com/noah-isme/hrms-saas-api/pkg/database"
)

const databaseURLFlag = "database-url"

var migrateFlags = map[string]cobraflags.Flag{
	databaseURLFlag: &cobraflags.StringFlag{
		Name:  databaseURLFlag,
		Value: "",
		Usage: "postgres:// URL; defaults to the DB_* environment",
	},
}

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back the embedded schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE:      migrateCommand,
	}
	cobraflags.RegisterMap(cmd, migrateFlags)
	return cmd
}

func migrateCommand(cmd *cobra.Command, args []string) error {
	url := migrateFlags[databaseURLFlag].GetString()
	if url == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		url = cfg.Database.URL()
	}

	direction := args[0]
	if err := database.Migrate(url, direction); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "migrations %s: done\n", direction)
	return nil
}
