// Package handler exposes liveness and dependency checks over gRPC.
package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/redis/go-redis/v9"

	healthv1 "shortlink-platform/backend/api/generated/health/v1"
)

const checkTimeout = 2 * time.Second

// Server implements HealthService (proto server). Either dependency may be
// nil when a service does not use it; nil dependencies report "skipped".
type Server struct {
	healthv1.UnimplementedHealthServiceServer
	db    *sql.DB
	redis *redis.Client
}

// NewServer returns a health server over the given dependencies.
func NewServer(db *sql.DB, rdb *redis.Client) *Server {
	return &Server{db: db, redis: rdb}
}

// HealthCheck reports overall status plus per-dependency detail. Overall
// status is "ok" only when every wired dependency answers.
func (s *Server) HealthCheck(ctx context.Context, _ *healthv1.HealthCheckRequest) (*healthv1.HealthCheckResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	resp := &healthv1.HealthCheckResponse{Status: "ok", Database: "skipped", Redis: "skipped"}
	if s.db != nil {
		resp.Database = "ok"
		if err := s.db.PingContext(ctx); err != nil {
			resp.Database = err.Error()
			resp.Status = "degraded"
		}
	}
	if s.redis != nil {
		resp.Redis = "ok"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			resp.Redis = err.Error()
			resp.Status = "degraded"
		}
	}
	return resp, nil
}
