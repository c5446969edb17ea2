package main

import (
	"context"
	"fmt"

	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/config"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/database"
	"github.com/DevNatapohn/Automated-Parcel-Sorting-System/internal/logger"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd.Context())
		},
	}
}

func runMigrate(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Migrations never report to New Relic.
	log := logger.NewLoggerWithService(cfg.Observability, nil)

	ctx, cancel := context.WithTimeout(ctx, migrationTimeout)
	defer cancel()

	return database.Migrate(ctx, &log, cfg)
}
