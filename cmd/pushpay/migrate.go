package main

import (
	"errors"
	"fmt"

	"pushpay/config"
	pgStorage "pushpay/internal/adapter/storage/postgres"
	"pushpay/pkg/logger"

	"github.com/spf13/cobra"
)

func migrateCmd(load func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the PostgreSQL schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if cfg.Storage.Driver != "postgres" {
				return errors.New("migrate requires storage.driver=postgres")
			}
			log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

			pool, err := pgStorage.NewPool(cmd.Context(), cfg.Database, log)
			if err != nil {
				return fmt.Errorf("connecting to postgres: %w", err)
			}
			defer pool.Close()

			if err := pgStorage.Migrate(cmd.Context(), pool); err != nil {
				return err
			}
			log.Info().Msg("schema applied")
			return nil
		},
	}
}
