// Package interceptors carries the gRPC identity propagation pair: a client
// interceptor that forwards the caller's bearer token as call metadata and a
// server interceptor that validates it and injects a call-scoped principal.
package interceptors

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"shortlink-platform/backend/internal/auth"
	"shortlink-platform/backend/internal/security"
)

const (
	authorizationKey = "authorization"
	bearerPrefix     = "bearer "
)

// AuthUnary returns a unary server interceptor that validates the Bearer
// access token from call metadata. Absent token: the handler runs with an
// empty identity context (some methods are intentionally public; protected
// handlers reject anonymous principals themselves). Present but invalid
// token, including a refresh token presented as a bearer credential: the call
// terminates with UNAUTHENTICATED and the handler never runs.
//
// Revocation is deliberately not consulted here; a blacklisted access token
// keeps authenticating RPCs until it expires naturally.
func AuthUnary(tokens *security.TokenCodec) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		token := extractBearer(ctx)
		if token == "" {
			return handler(ctx, req)
		}
		claims, err := tokens.VerifyAccess(token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization")
		}
		ctx = auth.WithPrincipal(ctx, claims.Principal())
		ctx = auth.WithBearerToken(ctx, token)
		return handler(ctx, req)
	}
}

// PropagateUnary returns a unary client interceptor that attaches the bearer
// token from the calling context to outgoing metadata. Calls without a token
// in context go out unmodified.
func PropagateUnary() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if token, ok := auth.BearerTokenFrom(ctx); ok {
			ctx = metadata.AppendToOutgoingContext(ctx, authorizationKey, "Bearer "+token)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// extractBearer returns the Bearer token from ctx metadata, or "" if missing
// or malformed.
func extractBearer(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get(authorizationKey)
	if len(vals) == 0 {
		return ""
	}
	v := strings.TrimSpace(vals[0])
	if len(v) < len(bearerPrefix) || !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(bearerPrefix):])
}
