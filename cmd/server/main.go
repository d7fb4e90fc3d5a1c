package main

import (
	"context"
	"net/http"
	"os"

	webAdapter "billbook/internal/adapters/web"
	"billbook/internal/app"
	"billbook/internal/config"
	"billbook/internal/db"
	"billbook/internal/logger"
	"billbook/internal/remote"
	"billbook/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := logger.Setup(cfg.Log); err != nil {
		os.Exit(1)
	}
	log := logger.WithComponent("server")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	if err := store.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	local := store.NewPostgres(pool)
	client := remote.NewClient(cfg.RemoteBaseURL, cfg.RemoteAPIKey)
	if cfg.RemoteBaseURL == "" {
		log.Warn().Msg("REMOTE_BASE_URL is not set, running permanently offline")
	}

	services := app.NewServices(local, client, client)
	svc := app.NewAppService(services)
	handler := webAdapter.NewHandler(svc, cfg.AllowedOrigins)

	log.Info().Str("port", cfg.ServerPort).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.ServerPort, handler); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
