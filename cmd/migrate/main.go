package main

import (
	"context"
	"os"

	"github.com/printops/backoffice-system/internal/infrastructure/config"
	"github.com/printops/backoffice-system/internal/infrastructure/db/gormdb"
	"github.com/printops/backoffice-system/pkg/logger"
)

// Runs the schema migrations once and exits. The same routine runs on server
// boot; this binary exists for deploy pipelines that migrate before rollout.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	ctx := context.Background()
	db, err := gormdb.Connect(ctx, gormdb.Config{DSN: cfg.Database.DSN()})
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(1)
	}

	if err := gormdb.EnsureSchema(ctx, db, log); err != nil {
		log.Error().Err(err).Msg("schema migration failed")
		os.Exit(1)
	}
	log.Info().Msg("schema up to date")
}
