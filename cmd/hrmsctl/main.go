// Command hrmsctl is the operator CLI: schema migrations, password hashing and
// platform bootstrap.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "hrmsctl",
		Short:         "Operator tooling for the HRMS API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCommand())
	root.AddCommand(newHashPasswordCommand())
	root.AddCommand(newCreateSuperAdminCommand())
	root.AddCommand(newPurgeResetsCommand())
	return root
}
