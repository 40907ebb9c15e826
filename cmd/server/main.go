// Command server runs the community business discovery API.
//
//	@title						Community Business Discovery API
//	@version					1.0
//	@description				Directory of local businesses with accounts, favorites and search.
//	@BasePath					/api
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/localspot/directory-api/internal/api"
	"github.com/localspot/directory-api/internal/core/ports"
	"github.com/localspot/directory-api/internal/core/service"
	mongodb "github.com/localspot/directory-api/internal/infrastructure/db/mongo"
	redisdb "github.com/localspot/directory-api/internal/infrastructure/db/redis"
	"github.com/localspot/directory-api/internal/infrastructure/queue"
	s3store "github.com/localspot/directory-api/internal/infrastructure/storage/s3"
	"github.com/localspot/directory-api/internal/pkg/config"
	"github.com/localspot/directory-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	log := logger.Init(cfg.LogLevel, cfg.Env == "development")

	db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := db.Client().Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb := connectRedis(ctx, cfg, log)
	logos := buildLogoStore(ctx, cfg, log)

	viewEvents := service.NewViewEventService(mongodb.NewViewEventRepository(db), log)
	dispatcher := queue.NewDispatcher(viewEvents, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, logos, dispatcher, cfg, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(":" + cfg.Port)
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped unexpectedly")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	// Stop the workers after the server has drained so no request enqueues
	// into a closed pipeline.
	cancel()
	dispatcher.Wait()
}

// connectRedis returns nil when no Redis address is configured; the listing
// cache is then simply disabled.
func connectRedis(ctx context.Context, cfg *config.Config, log zerolog.Logger) *redis.Client {
	if !cfg.CacheEnabled() {
		log.Info().Msg("redis not configured, listing cache disabled")
		return nil
	}
	client, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Warn().Err(err).Msg("redis connection failed, listing cache disabled")
		return nil
	}
	return client
}

// buildLogoStore returns nil when object storage is not configured; logo
// uploads then fail with a storage-unavailable error.
func buildLogoStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) ports.LogoStore {
	if !cfg.StorageEnabled() {
		log.Info().Msg("object storage not configured, logo uploads disabled")
		return nil
	}
	store, err := s3store.NewLogoStore(ctx, cfg.S3)
	if err != nil {
		log.Warn().Err(err).Msg("object storage setup failed, logo uploads disabled")
		return nil
	}
	return store
}
