package main

import (
	"errors"
	"fmt"
	"strconv"

	"solar_portal/internal/infrastructure/config"
	"solar_portal/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

var errPostgresDisabled = errors.New("postgres is disabled; set postgres.enabled to manage the history schema")

func newMigrateCmd(load func() (*config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the Postgres history schema",
	}

	withDB := func(run func(pg *database.PostgresClient, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if !cfg.Postgres.Enabled {
				return errPostgresDisabled
			}
			pg, err := database.NewPostgres(cfg.Postgres)
			if err != nil {
				return err
			}
			defer pg.Close()
			return run(pg, cmd, args)
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: withDB(func(pg *database.PostgresClient, cmd *cobra.Command, _ []string) error {
			if err := database.RunMigrations(pg.DB); err != nil {
				return err
			}
			cmd.Println("migrations applied")
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back migrations (default one step)",
		Args:  cobra.MaximumNArgs(1),
		RunE: withDB(func(pg *database.PostgresClient, cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid steps %q: %w", args[0], err)
				}
				steps = n
			}
			if err := database.RollbackMigrations(pg.DB, steps); err != nil {
				return err
			}
			cmd.Printf("rolled back %d step(s)\n", steps)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the current schema version",
		RunE: withDB(func(pg *database.PostgresClient, cmd *cobra.Command, _ []string) error {
			status, err := database.GetMigrationStatus(pg.DB)
			if err != nil {
				return err
			}
			cmd.Printf("version: %d dirty: %t\n", status.CurrentVersion, status.Dirty)
			return nil
		}),
	})

	return cmd
}
