// @title        Lodging API
// @version      1.0
// @description  Accounts and accommodation listings for a short-term lodging marketplace.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/stayhub/lodging-api/internal/api"
	"github.com/stayhub/lodging-api/internal/core/ports"
	"github.com/stayhub/lodging-api/internal/core/service"
	"github.com/stayhub/lodging-api/internal/infrastructure/config"
	"github.com/stayhub/lodging-api/internal/infrastructure/db/mongo"
	"github.com/stayhub/lodging-api/internal/infrastructure/db/redis"
	"github.com/stayhub/lodging-api/internal/infrastructure/http/handlers"
	"github.com/stayhub/lodging-api/pkg/logger"
	"github.com/stayhub/lodging-api/pkg/password"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "lodging-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	userRepo := mongo.NewUserRepository(db)
	accommodationRepo := mongo.NewAccommodationRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("could not create user indexes")
	}
	if err := accommodationRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("could not create accommodation indexes")
	}

	checks := map[string]handlers.Check{"mongodb": mongo.PingCheck(db)}

	var idem ports.IdempotencyStore
	if cfg.Redis.Addr != "" {
		var rdb *goredis.Client
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		defer rdb.Close()
		idem = redis.NewIdempotencyStore(rdb)
		checks["redis"] = redis.PingCheck(rdb)
	} else {
		log.Info().Msg("REDIS_ADDR not set, idempotency keys disabled")
	}

	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	hasher := password.NewHasher(cfg.Auth.BcryptCost)

	e := api.NewRouter(api.Dependencies{
		Users:           service.NewUserService(userRepo, hasher, tokens, idem, log),
		Accommodations:  service.NewAccommodationService(accommodationRepo, userRepo, idem, log),
		Tokens:          tokens,
		Logger:          log,
		ReadinessChecks: checks,
		EnforceHostRole: cfg.Auth.EnforceHostRole,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
