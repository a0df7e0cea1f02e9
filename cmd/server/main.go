package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/printops/backoffice-system/internal/api"
	"github.com/printops/backoffice-system/internal/infrastructure/config"
	"github.com/printops/backoffice-system/internal/infrastructure/db/gormdb"
	redisdb "github.com/printops/backoffice-system/internal/infrastructure/db/redis"
	"github.com/printops/backoffice-system/pkg/logger"
)

// @title           Back-Office API
// @version         1.0
// @description     Admin back office for orders, roles and site content.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Msg("starting back-office service")

	ctx := context.Background()

	db, err := gormdb.Connect(ctx, gormdb.Config{DSN: cfg.Database.DSN()})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := gormdb.EnsureSchema(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	// Redis is optional: without it the service runs with the listing cache
	// disabled.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, listing cache disabled")
		rdb = nil
	}

	e := api.NewRouter(db, rdb, cfg.JWTSecret, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}
