package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/companycatalog/catalog-api/internal/api"
	"github.com/companycatalog/catalog-api/internal/core/ports"
	"github.com/companycatalog/catalog-api/internal/core/service"
	"github.com/companycatalog/catalog-api/internal/infrastructure/config"
	mongodb "github.com/companycatalog/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/companycatalog/catalog-api/internal/infrastructure/db/redis"
	"github.com/companycatalog/catalog-api/pkg/logger"
)

// @title        Company Catalog API
// @version      1.0.0
// @description  REST API for user and company records behind role-based authentication.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; stderr is all we have.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Redis (optional: backs the failed-login throttle) ---
	var rdb *goredis.Client
	var throttle ports.LoginThrottle
	if cfg.Redis.Enabled {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		throttle = redisdb.NewLoginThrottle(rdb, 0, 0)
	}

	// --- Core services ---
	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	companyRepo := mongodb.NewCompanyRepository(db)

	users := service.NewUserService(userRepo, hasher, tokens, throttle, logger.Component("users"))
	companies := service.NewCompanyService(companyRepo, hasher, tokens, throttle, logger.Component("companies"))

	e := api.NewRouter(api.Deps{
		Users:     users,
		Companies: companies,
		Tokens:    tokens,
		Mongo:     db,
		Redis:     rdb,
		Log:       log,
	})

	e.Server.ReadHeaderTimeout = 3 * time.Second
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("catalog api started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("catalog api stopped")
}
