// Shortener service: creates and resolves short links and publishes visit
// events. Verifies tokens with the public key only.
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
	"shortlink-platform/backend/internal/events/producer"
	linkhandler "shortlink-platform/backend/internal/link/handler"
	linkrepo "shortlink-platform/backend/internal/link/repository"
	linkservice "shortlink-platform/backend/internal/link/service"
	"shortlink-platform/backend/internal/ratelimit"
	"shortlink-platform/backend/internal/revocation"
	"shortlink-platform/backend/internal/security"
	"shortlink-platform/backend/internal/server"
	"shortlink-platform/backend/internal/telemetry/otel"
	"shortlink-platform/backend/internal/web"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "shortener").Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	ctx := context.Background()
	providers, err := otel.NewProviders(ctx, cfg.OTLPEndpoint, "shortlink-shortener", false)
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
	// Verify-only codec: no private key, this service never signs tokens.
	codec := security.NewTokenCodec(nil, publicKey, cfg.JWTIssuer, cfg.AccessTTL(), cfg.RefreshTTL())

	var rdb *redis.Client
	var revoked revocation.Store
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer rdb.Close()
		revoked = revocation.NewRedisStore(rdb, cfg.RevocationMinTTL(), logger)
	}

	visits := producer.NewKafkaProducer(cfg.KafkaBrokersList(), cfg.KafkaVisitsTopic)
	if visits != nil {
		defer visits.Close()
	} else {
		logger.Warn().Msg("KAFKA_BROKERS not set; visit events disabled")
	}

	links := linkservice.NewLinkService(linkrepo.NewPostgresRepository(database), visits, logger)

	grpcServer := server.New(codec)
	server.RegisterShortener(grpcServer, server.ShortenerDeps{
		Links: linkhandler.NewServer(links),
		DB:    database,
		Redis: rdb,
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
		web.NewLinkHandler(links).Register(mux)

		var limiter *ratelimit.Limiter
		if cfg.RateLimitPerMinute > 0 && rdb != nil {
			limiter = ratelimit.NewLimiter(rdb, int64(cfg.RateLimitPerMinute), time.Minute, logger)
		}
		authn := web.NewAuthenticator(codec, revoked, logger)
		handler := web.AccessLog(logger)(authn.Middleware(web.RateLimit(limiter)(mux)))

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
