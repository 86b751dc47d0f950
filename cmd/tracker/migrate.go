package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/storage"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.New(*configPath)
			if err != nil {
				return err
			}
			if err = storage.RunMigrations(conf.Postgres()); err != nil {
				logger.Error("migration failed", zap.Error(err))
				return err
			}
			logger.Info("migrations applied")
			return nil
		},
	}
}
