package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/cardvault-importer/pkg/config"
	"github.com/angelmondragon/cardvault-importer/pkg/db"
	"github.com/angelmondragon/cardvault-importer/pkg/db/models"
	"github.com/angelmondragon/cardvault-importer/pkg/logger"
)

// MaybeRunDev executes migrations automatically when the importer runs in dev
// mode with the auto-migrate flag enabled. SQLite runs fall back to gorm
// AutoMigrate; goose only ever targets postgres.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	if cfg.FeatureFlags.UseSQLite {
		if err := client.DB().AutoMigrate(&models.Card{}, &models.CollectionSummary{}); err != nil {
			return fmt.Errorf("sqlite auto-migrate: %w", err)
		}
		logg.Info(ctx, "sqlite schema migrated")
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "dir": DefaultDir})
	logg.Info(ctx, "running goose migrations (dev auto-run)")

	if err := Run(ctx, sqlDB, DefaultDir, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "goose migrations completed")
	return nil
}
