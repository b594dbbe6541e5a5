// Package server assembles the gRPC servers for each service binary.
package server

import (
	"database/sql"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	authv1 "shortlink-platform/backend/api/generated/auth/v1"
	healthv1 "shortlink-platform/backend/api/generated/health/v1"
	linkv1 "shortlink-platform/backend/api/generated/link/v1"
	notificationv1 "shortlink-platform/backend/api/generated/notification/v1"

	healthhandler "shortlink-platform/backend/internal/health/handler"
	identityhandler "shortlink-platform/backend/internal/identity/handler"
	linkhandler "shortlink-platform/backend/internal/link/handler"
	notificationhandler "shortlink-platform/backend/internal/notification/handler"
	"shortlink-platform/backend/internal/security"
	"shortlink-platform/backend/internal/server/interceptors"
)

// New builds a gRPC server with the shared interceptor chain: OTel stats and
// bearer-token authentication. Handlers that need a principal enforce it
// themselves; the interceptor only resolves tokens.
func New(tokens *security.TokenCodec, extra ...grpc.ServerOption) *grpc.Server {
	opts := append([]grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(interceptors.AuthUnary(tokens)),
	}, extra...)
	return grpc.NewServer(opts...)
}

// IdentityDeps holds the handlers the identity binary serves.
type IdentityDeps struct {
	Auth  *identityhandler.AuthServer
	Users *identityhandler.UserServer
	DB    *sql.DB
	Redis *redis.Client
}

// RegisterIdentity registers AuthService, UserService, and HealthService.
func RegisterIdentity(s grpc.ServiceRegistrar, deps IdentityDeps) {
	authv1.RegisterAuthServiceServer(s, deps.Auth)
	authv1.RegisterUserServiceServer(s, deps.Users)
	healthv1.RegisterHealthServiceServer(s, healthhandler.NewServer(deps.DB, deps.Redis))
}

// ShortenerDeps holds the handlers the shortener binary serves.
type ShortenerDeps struct {
	Links *linkhandler.Server
	DB    *sql.DB
	Redis *redis.Client
}

// RegisterShortener registers LinkService and HealthService.
func RegisterShortener(s grpc.ServiceRegistrar, deps ShortenerDeps) {
	linkv1.RegisterLinkServiceServer(s, deps.Links)
	healthv1.RegisterHealthServiceServer(s, healthhandler.NewServer(deps.DB, deps.Redis))
}

// NotificationDeps holds the handlers the notification binary serves.
type NotificationDeps struct {
	Notifications *notificationhandler.Server
	DB            *sql.DB
	Redis         *redis.Client
}

// RegisterNotification registers NotificationService and HealthService.
func RegisterNotification(s grpc.ServiceRegistrar, deps NotificationDeps) {
	notificationv1.RegisterNotificationServiceServer(s, deps.Notifications)
	healthv1.RegisterHealthServiceServer(s, healthhandler.NewServer(deps.DB, deps.Redis))
}
