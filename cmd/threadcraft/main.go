// Command threadcraft runs the ThreadCraft authentication API: login,
// logout and session validation for the dashboard, backed by PostgreSQL
// (accounts) and Redis (sessions).
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/threadcraft/platform/pkg/config"
	"github.com/threadcraft/platform/pkg/httpserver"
	"github.com/threadcraft/platform/pkg/logger"
	"github.com/threadcraft/platform/pkg/pg"
	"github.com/threadcraft/platform/pkg/ratelimiter"
	"github.com/threadcraft/platform/pkg/redis"
	"github.com/threadcraft/platform/svc/auth"
)

type appConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`

	HTTP  httpserver.Config
	PG    pg.Config
	Redis redis.Config
	Auth  auth.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(cfg.Environment, "threadcraft-api"))
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("service stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, cfg.PG, log); err != nil {
		return err
	}

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("redis close failed", "error", err)
		}
	}()

	loginLimiter, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
		Capacity:       cfg.Auth.LoginRateCapacity,
		RefillRate:     1,
		RefillInterval: cfg.Auth.LoginRateInterval,
	})
	if err != nil {
		return err
	}

	authSvc := auth.NewService(
		auth.NewPostgresUserStore(pool),
		auth.NewRedisSessionStore(redisClient),
		auth.WithConfig(cfg.Auth),
		auth.WithLogger(log),
	)
	authHandler := auth.NewHandler(authSvc,
		auth.WithHandlerLogger(log),
		auth.WithLoginRateLimiter(loginLimiter),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(log))
	r.Get("/ready", httpserver.HealthCheckHandler(log,
		pg.Healthcheck(pool),
		redis.Healthcheck(redisClient),
	))
	r.Mount("/", authHandler.Routes())

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}
