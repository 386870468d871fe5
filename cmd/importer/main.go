package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/multierr"

	"github.com/angelmondragon/cardvault-importer/internal/importer"
	"github.com/angelmondragon/cardvault-importer/internal/scryfall"
	"github.com/angelmondragon/cardvault-importer/pkg/config"
	"github.com/angelmondragon/cardvault-importer/pkg/db"
	pkgerrors "github.com/angelmondragon/cardvault-importer/pkg/errors"
	"github.com/angelmondragon/cardvault-importer/pkg/instance"
	"github.com/angelmondragon/cardvault-importer/pkg/logger"
	"github.com/angelmondragon/cardvault-importer/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "importer"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "importer",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := dbClient.Ping(context.Background()); err != nil {
		logg.Error(context.Background(), "database ping failed", err)
		exit(logg, dbClient, err)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		exit(logg, dbClient, err)
	}

	service, err := importer.NewService(importer.ServiceParams{
		Config:   cfg,
		Logger:   logg,
		Store:    importer.NewRepository(dbClient.DB()),
		Enricher: scryfall.NewClient(cfg.Scryfall),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create importer", err)
		exit(logg, dbClient, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":      cfg.App.Env,
		"instance": instance.GetID(),
	})
	ctx = logg.WithRunID(ctx, uuid.NewString())
	logg.Info(ctx, "starting import run")

	// Cancellation is an abort like any other: the pre-run wipe may already
	// have happened and no summary exists, so a clean exit would lie.
	if err := service.Run(ctx); err != nil {
		logg.Error(ctx, "import run aborted", err)
		exit(logg, dbClient, err)
	}

	logg.Info(ctx, "importer finished")
	if err := dbClient.Close(); err != nil {
		logg.Error(ctx, "error closing database", err)
	}
}

// exit releases the database connection and terminates with the status the
// error's code maps to. Close errors are reported alongside the original.
func exit(logg *logger.Logger, dbClient *db.Client, runErr error) {
	if closeErr := dbClient.Close(); closeErr != nil {
		logg.Error(context.Background(), "error closing database", multierr.Append(runErr, closeErr))
	}
	os.Exit(pkgerrors.MetadataFor(pkgerrors.CodeOf(runErr)).ExitStatus)
}
