package main

import (
	"fmt"

	"crm-server/cmd/api/wire"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Migrate opens the configured database and brings the custom field,
company and contact tables with their unique indexes up to date.`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

// runMigrate relies on repository construction, which migrates the tables it owns.
func runMigrate(cmd *cobra.Command, args []string) error {
	if _, err := wire.InitializeCompanyService(); err != nil {
		return fmt.Errorf("migrate companies: %w", err)
	}

	if _, err := wire.InitializeContactService(); err != nil {
		return fmt.Errorf("migrate contacts: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
	return nil
}
