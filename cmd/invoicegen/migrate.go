package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iho/goinvoice/internal/infrastructure/postgres"
)

var errRegisterNotConfigured = errors.New("DATABASE_URL is not set; the invoice register is disabled")

func newMigrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the invoice register schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if a.cfg.DatabaseURL == "" {
					return errRegisterNotConfigured
				}
				return postgres.RunMigrations(a.cfg.DatabaseURL, a.cfg.MigrationsPath, a.logger)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the last migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if a.cfg.DatabaseURL == "" {
					return errRegisterNotConfigured
				}
				return postgres.RunMigrationsDown(a.cfg.DatabaseURL, a.cfg.MigrationsPath, a.logger)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the applied schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if a.cfg.DatabaseURL == "" {
					return errRegisterNotConfigured
				}
				status, err := postgres.Status(a.cfg.DatabaseURL, a.cfg.MigrationsPath)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.stdout, formatStatus(status))
				return nil
			},
		},
	)

	return cmd
}

func formatStatus(s postgres.MigrationStatus) string {
	switch {
	case !s.Applied:
		return "Keine Migration angewendet."
	case s.Dirty:
		return fmt.Sprintf("Schema-Version %d (unvollständig)", s.Version)
	default:
		return fmt.Sprintf("Schema-Version %d", s.Version)
	}
}
