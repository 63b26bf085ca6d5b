package cmd

import (
	"fmt"

	"carelink/internal/app/server/config"
	"carelink/internal/infrastructure/migration"
	"carelink/internal/utils/logger"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg := config.MustLoad()
		log := logger.New(cfg.Env)

		if err := migration.New(cfg, migration.DefaultEngine).Up(); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		log.Info("migrations applied", "path", cfg.DB.Migrations)
		return nil
	},
}
