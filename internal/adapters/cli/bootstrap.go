package cli

import (
	"context"
	"fmt"

	"billbook/internal/app"
	"billbook/internal/config"
	"billbook/internal/db"
	"billbook/internal/logger"
	"billbook/internal/remote"
	"billbook/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// runtime holds everything a command needs to do its work. Close the pool
// when done.
type runtime struct {
	cfg  *config.Config
	pool *pgxpool.Pool
	svc  app.ApplicationService
}

// bootstrap loads configuration, connects to the database, and wires the
// application service. It does not run migrations; use the migrate command
// for that.
func bootstrap(ctx context.Context) (*runtime, error) {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := logger.Setup(cfg.Log); err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	local := store.NewPostgres(pool)
	client := remote.NewClient(cfg.RemoteBaseURL, cfg.RemoteAPIKey)
	services := app.NewServices(local, client, client)

	return &runtime{
		cfg:  cfg,
		pool: pool,
		svc:  app.NewAppService(services),
	}, nil
}

func (rt *runtime) close() {
	rt.pool.Close()
}
