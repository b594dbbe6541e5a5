// Package web carries the HTTP surface shared by the services: the ingress
// authenticator, rate limiting, and the JSON handlers in front of the
// domain services.
package web

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"shortlink-platform/backend/internal/auth"
	"shortlink-platform/backend/internal/ratelimit"
	"shortlink-platform/backend/internal/revocation"
	"shortlink-platform/backend/internal/security"
)

// Authenticator resolves a bearer token to a request principal. It is
// fail-soft: any failure (missing header, revoked, expired, malformed) leaves
// the request anonymous and continues; handlers that need a principal reject
// later with 401. The authenticator itself never writes a response.
type Authenticator struct {
	tokens  *security.TokenCodec
	revoked revocation.Store
	logger  zerolog.Logger
}

// NewAuthenticator returns the ingress authenticator middleware. revoked may
// be nil for services without a revocation store.
func NewAuthenticator(tokens *security.TokenCodec, revoked revocation.Store, logger zerolog.Logger) *Authenticator {
	return &Authenticator{tokens: tokens, revoked: revoked, logger: logger}
}

// Middleware wraps next with bearer-token authentication. The revocation
// check runs before signature verification, so a blacklisted token never
// yields a principal even while cryptographically valid.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		if a.revoked != nil && a.revoked.IsBlacklisted(r.Context(), token) {
			a.logger.Debug().Msg("request carried a revoked token")
			next.ServeHTTP(w, r)
			return
		}
		claims, err := a.tokens.VerifyAccess(token)
		if err != nil {
			a.logger.Debug().Err(err).Msg("request token rejected")
			next.ServeHTTP(w, r)
			return
		}
		ctx := auth.WithPrincipal(r.Context(), claims.Principal())
		ctx = auth.WithBearerToken(ctx, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RateLimit wraps next with a per-subject fixed-window limit. Authenticated
// requests are keyed by user id, anonymous ones by client IP.
func RateLimit(limiter *ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil {
				next.ServeHTTP(w, r)
				return
			}
			subject := "ip:" + clientIP(r)
			if p, ok := auth.PrincipalFrom(r.Context()); ok {
				subject = "user:" + strconv.FormatInt(p.UserID, 10)
			}
			if !limiter.Allow(r.Context(), subject) {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AccessLog logs one line per request in the service's structured format.
func AccessLog(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.status).
				Msg("http request")
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// bearerToken extracts the token from an Authorization: Bearer header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// clientIP prefers X-Forwarded-For (first hop) over the socket address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
