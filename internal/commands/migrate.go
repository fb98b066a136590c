package commands

import (
	"fmt"

	"breaktrack/internal/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the schema and seed the admin account and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		if err := database.Bootstrap(cmd.Context(), e.db, e.cfg.AdminPassword, e.log); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "database is up to date")
		return nil
	},
}
