// Package main provides crmctl, the operator CLI for the crm server store.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"crm-server/cmd/config"
	"crm-server/internal/infra/node"

	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crmctl",
	Short: "crmctl operates the crm server database",
	Long: `crmctl runs maintenance tasks against the database configured for the
crm server: schema migration, sample data seeding and custom field reports.

It reads the same configuration files and CRM_SERVER_* environment variables
as the API server.`,
	SilenceUsage:      true,
	PersistentPreRunE: initLogging,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(fieldsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "crmctl", node.Version, node.CommitHash)
	},
}

func initLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	if cmd.Name() != "version" {
		cfg := config.LoadConfig()
		slog.Debug("config loaded", slog.String("environment", cfg.General.Environment))
	}

	return nil
}
