// Identity service: issues and rotates tokens, owns the user store, and is
// the only binary holding the token-signing private key.
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
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	"shortlink-platform/backend/internal/config"
	"shortlink-platform/backend/internal/db"
	googleverifier "shortlink-platform/backend/internal/identity/google"
	identityhandler "shortlink-platform/backend/internal/identity/handler"
	"shortlink-platform/backend/internal/identity/service"
	notifclient "shortlink-platform/backend/internal/notification/client"
	"shortlink-platform/backend/internal/ratelimit"
	"shortlink-platform/backend/internal/revocation"
	"shortlink-platform/backend/internal/security"
	"shortlink-platform/backend/internal/server"
	"shortlink-platform/backend/internal/telemetry/otel"
	userrepo "shortlink-platform/backend/internal/user/repository"
	"shortlink-platform/backend/internal/web"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "identity").Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	ctx := context.Background()
	providers, err := otel.NewProviders(ctx, cfg.OTLPEndpoint, "shortlink-identity", false)
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

	if cfg.RedisAddr == "" {
		logger.Fatal().Msg("REDIS_ADDR is required for the revocation store")
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	defer rdb.Close()

	privateKey, err := security.ParsePrivateKey(cfg.JWTPrivateKey)
	if err != nil {
		logger.Fatal().Err(err).Msg("JWT_PRIVATE_KEY")
	}
	publicKey, err := security.ParsePublicKey(cfg.JWTPublicKey)
	if err != nil {
		logger.Fatal().Err(err).Msg("JWT_PUBLIC_KEY")
	}
	codec := security.NewTokenCodec(privateKey, publicKey, cfg.JWTIssuer, cfg.AccessTTL(), cfg.RefreshTTL())
	revoked := revocation.NewRedisStore(rdb, cfg.RevocationMinTTL(), logger)
	users := userrepo.NewPostgresRepository(database)
	hasher := security.NewHasher(cfg.BcryptCost)

	var (
		google    service.GoogleVerifier
		oauthFlow web.GoogleOAuth
	)
	if cfg.GoogleClientID != "" {
		verifier, err := googleverifier.NewVerifier(ctx, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("google verifier")
		}
		google = verifier
		// The browser flow needs a registered redirect URL; without one only
		// the API flow (client-supplied ID token) is served.
		if cfg.GoogleRedirectURL != "" {
			oauthFlow = verifier
		}
	}

	var notifier service.Notifier
	if cfg.NotificationAddr != "" {
		nc, err := notifclient.Dial(cfg.NotificationAddr, logger,
			grpc.WithStatsHandler(otelgrpc.NewClientHandler()))
		if err != nil {
			logger.Fatal().Err(err).Msg("notification client")
		}
		defer nc.Close()
		notifier = nc
	}

	sessions := service.NewSessionService(users, codec, revoked, hasher, google, notifier, logger)

	grpcServer := server.New(codec)
	server.RegisterIdentity(grpcServer, server.IdentityDeps{
		Auth:  identityhandler.NewAuthServer(sessions, logger),
		Users: identityhandler.NewUserServer(users),
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
		web.NewIdentityHandler(sessions, oauthFlow, logger).Register(mux)

		var limiter *ratelimit.Limiter
		if cfg.RateLimitPerMinute > 0 {
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
