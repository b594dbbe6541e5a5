// Package consumer turns visit events from Kafka into visit counts and owner
// notifications.
package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"shortlink-platform/backend/internal/events"
	notifdomain "shortlink-platform/backend/internal/notification/domain"
)

// VisitCounter increments a link's visit count.
type VisitCounter interface {
	IncrementVisits(ctx context.Context, code string, n int64) error
}

// NotificationWriter appends to a user's event log.
type NotificationWriter interface {
	Create(ctx context.Context, n *notifdomain.Notification) error
}

// messageReader is the slice of kafka.Reader the consumer uses.
type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// VisitConsumer drains the visits topic. Each event bumps the link's visit
// count and records a notification for the owner. Failures on one message are
// logged and skipped; the offset still advances, so a poison message cannot
// wedge the group.
type VisitConsumer struct {
	reader        messageReader
	links         VisitCounter
	notifications NotificationWriter
	logger        zerolog.Logger
}

// NewVisitConsumer builds a consumer over the given Kafka reader.
func NewVisitConsumer(reader messageReader, links VisitCounter, notifications NotificationWriter, logger zerolog.Logger) *VisitConsumer {
	return &VisitConsumer{reader: reader, links: links, notifications: notifications, logger: logger}
}

// NewReader returns a kafka.Reader for the visits topic with the settings the
// worker uses.
func NewReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		MaxWait:        1 * time.Second,
		CommitInterval: time.Second,
	})
}

// Run consumes until ctx is cancelled.
func (c *VisitConsumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error().Err(err).Msg("kafka read error")
			continue
		}
		if err := c.apply(ctx, msg.Value); err != nil {
			c.logger.Error().Err(err).Str("key", string(msg.Key)).Msg("visit event dropped")
		}
	}
}

// apply processes one serialized LinkVisited event.
func (c *VisitConsumer) apply(ctx context.Context, payload []byte) error {
	var event events.LinkVisited
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("decode visit event: %w", err)
	}
	if event.Code == "" {
		return fmt.Errorf("visit event without code")
	}
	if err := c.links.IncrementVisits(ctx, event.Code, 1); err != nil {
		return fmt.Errorf("increment visits for %s: %w", event.Code, err)
	}
	if c.notifications != nil && event.OwnerID != 0 {
		n := &notifdomain.Notification{
			UserID:    event.OwnerID,
			Kind:      "link_visited",
			Message:   fmt.Sprintf("your link %s was visited", event.Code),
			CreatedAt: event.VisitedAt,
		}
		if n.CreatedAt.IsZero() {
			n.CreatedAt = time.Now().UTC()
		}
		if err := c.notifications.Create(ctx, n); err != nil {
			// Count already applied; the notification is best-effort.
			c.logger.Warn().Err(err).Int64("owner_id", event.OwnerID).Msg("owner notification failed")
		}
	}
	return nil
}

// Close releases the underlying reader.
func (c *VisitConsumer) Close() error {
	return c.reader.Close()
}
