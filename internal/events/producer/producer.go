// Package producer defines the interface for emitting visit events to Kafka.
package producer

import (
	"context"

	"shortlink-platform/backend/internal/events"
)

// Producer emits visit events. Callers use it best-effort: log and ignore
// errors, never block a redirect on the broker.
type Producer interface {
	Emit(ctx context.Context, event events.LinkVisited) error
	// Close releases resources (e.g. the Kafka writer). Safe to call twice.
	Close() error
}
