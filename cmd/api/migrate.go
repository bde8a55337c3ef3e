package main

import (
	"fmt"

	pg "petify-api/internal/adapters/storage/postgres"
	"petify-api/internal/config"

	"github.com/spf13/cobra"
)

func newMigrateCommand(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Postgres schema migrations",
	}
	cmd.AddCommand(
		migrateDirectionCommand(configFile, pg.Up, "Apply all pending migrations"),
		migrateDirectionCommand(configFile, pg.Down, "Roll back all migrations"),
	)
	return cmd
}

func migrateDirectionCommand(configFile *string, dir pg.Direction, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(dir),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(*configFile)
			if err != nil {
				return err
			}
			if cfg.Storage.Driver != config.DriverPostgres {
				return fmt.Errorf("migrate requires STORAGE_DRIVER=postgres (got %q)", cfg.Storage.Driver)
			}

			db, err := openPostgres(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := pg.Migrate(db, dir, log); err != nil {
				return err
			}
			log.Info("migrations applied", map[string]any{"direction": string(dir)})
			return nil
		},
	}
}
