// Notification service: stores and serves per-user event logs.
package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"shortlink-platform/backend/internal/config"
	"shortlink-platform/backend/internal/db"
	notifhandler "shortlink-platform/backend/internal/notification/handler"
	notifrepo "shortlink-platform/backend/internal/notification/repository"
	"shortlink-platform/backend/internal/revocation"
	"shortlink-platform/backend/internal/security"
	"shortlink-platform/backend/internal/server"
	"shortlink-platform/backend/internal/telemetry/otel"
	"shortlink-platform/backend/internal/web"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "notification").Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	ctx := context.Background()
	providers, err := otel.NewProviders(ctx, cfg.OTLPEndpoint, "shortlink-notification", false)
	if err != nil {
		logger.Fatal().Err(err).Msg("telemetry")
	}
	providers.SetGlobal()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = providers.Shutdown(shutdownCtx)
	}()

	if cfg.DatabaseURL == "" {
		logger.Fatal().Msg("DATABASE_URL is required")
	}
	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres")
	}
	defer database.Close()

	publicKey, err := security.ParsePublicKey(cfg.JWTPublicKey)
	if err != nil {
		logger.Fatal().Err(err).Msg("JWT_PUBLIC_KEY")
	}
	codec := security.NewTokenCodec(nil, publicKey, cfg.JWTIssuer, cfg.AccessTTL(), cfg.RefreshTTL())

	var rdb *redis.Client
	var revoked revocation.Store
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer rdb.Close()
		revoked = revocation.NewRedisStore(rdb, cfg.RevocationMinTTL(), logger)
	} else {
		logger.Warn().Msg("REDIS_ADDR not set; HTTP ingress cannot check token revocation")
	}

	store := notifrepo.NewPostgresRepository(database)

	grpcServer := server.New(codec)
	server.RegisterNotification(grpcServer, server.NotificationDeps{
		Notifications: notifhandler.NewServer(store),
		DB:            database,
		Redis:         rdb,
	})

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.GRPCAddr).Msg("listen")
	}
	go func() {
		logger.Info().Str("addr", cfg.GRPCAddr).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatal().Err(err).Msg("serve grpc")
		}
	}()

	var httpServer *http.Server
	if cfg.HTTPAddr != "" {
		mux := http.NewServeMux()
		web.NewNotificationHandler(store).Register(mux)

		authn := web.NewAuthenticator(codec, revoked, logger)
		handler := web.AccessLog(logger)(authn.Middleware(mux))

		httpServer = &http.Server{Addr: cfg.HTTPAddr, Handler: handler, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			logger.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP server listening")
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Fatal().Err(err).Msg("serve http")
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	if httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		_ = httpServer.Shutdown(shutdownCtx)
		cancel()
	}
	grpcServer.GracefulStop()
	logger.Info().Msg("stopped")
}
