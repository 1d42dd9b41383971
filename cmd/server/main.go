// Command server runs the rental API: credential management, token issuance
// and the transport resource endpoints.
//
// @title           Rental API
// @version         1.0
// @description     Multi-tenant rental service: accounts, bearer tokens, transports.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/simbirgo/rental-api/docs"
	"github.com/simbirgo/rental-api/internal/api"
	"github.com/simbirgo/rental-api/internal/core/service"
	"github.com/simbirgo/rental-api/internal/core/token"
	"github.com/simbirgo/rental-api/internal/infrastructure/config"
	mongodb "github.com/simbirgo/rental-api/internal/infrastructure/db/mongo"
	redisdb "github.com/simbirgo/rental-api/internal/infrastructure/db/redis"
	"github.com/simbirgo/rental-api/internal/infrastructure/queue"
	"github.com/simbirgo/rental-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Services ---
	tokens := token.NewManager(token.Config{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      cfg.JWT.TTL,
	})

	auditor := queue.NewAuditor(0, redisdb.NewTokenLog(rdb), log)
	auditor.Start(ctx)

	accountRepo := mongodb.NewAccountRepository(db)
	accounts := service.NewAccountService(accountRepo, tokens, auditor, log)
	transports := service.NewTransportService(mongodb.NewTransportRepository(db), log)

	if err := service.Bootstrap(ctx, accountRepo, log); err != nil {
		log.Fatal().Err(err).Msg("bootstrap failed")
	}

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		Accounts:   accounts,
		Transports: transports,
		Tokens:     tokens,
		Mongo:      db,
		Redis:      rdb,
		Logger:     log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("rental api listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
