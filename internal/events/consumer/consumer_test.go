package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"shortlink-platform/backend/internal/events"
	notifdomain "shortlink-platform/backend/internal/notification/domain"
)

type fakeCounter struct {
	counts map[string]int64
	err    error
}

func (f *fakeCounter) IncrementVisits(ctx context.Context, code string, n int64) error {
	if f.err != nil {
		return f.err
	}
	if f.counts == nil {
		f.counts = map[string]int64{}
	}
	f.counts[code] += n
	return nil
}

type fakeNotifWriter struct {
	created []*notifdomain.Notification
	err     error
}

func (f *fakeNotifWriter) Create(ctx context.Context, n *notifdomain.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, n)
	return nil
}

func encode(t *testing.T, e events.LinkVisited) []byte {
	t.Helper()
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func TestApply_CountsAndNotifies(t *testing.T) {
	counter := &fakeCounter{}
	writer := &fakeNotifWriter{}
	c := &VisitConsumer{links: counter, notifications: writer, logger: zerolog.Nop()}

	payload := encode(t, events.LinkVisited{
		Code: "abc1234", OwnerID: 7, VisitorID: 42, VisitedAt: time.Now().UTC(),
	})
	if err := c.apply(context.Background(), payload); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if counter.counts["abc1234"] != 1 {
		t.Errorf("count = %d, want 1", counter.counts["abc1234"])
	}
	if len(writer.created) != 1 {
		t.Fatalf("created %d notifications, want 1", len(writer.created))
	}
	n := writer.created[0]
	if n.UserID != 7 || n.Kind != "link_visited" {
		t.Errorf("notification = %+v", n)
	}
}

func TestApply_MalformedPayload(t *testing.T) {
	c := &VisitConsumer{links: &fakeCounter{}, logger: zerolog.Nop()}
	if err := c.apply(context.Background(), []byte("{not json")); err == nil {
		t.Error("expected decode error")
	}
	if err := c.apply(context.Background(), []byte(`{"owner_id":7}`)); err == nil {
		t.Error("expected error for event without code")
	}
}

func TestApply_CounterFailureSurfaces(t *testing.T) {
	c := &VisitConsumer{
		links:  &fakeCounter{err: errors.New("db down")},
		logger: zerolog.Nop(),
	}
	payload := encode(t, events.LinkVisited{Code: "abc1234", OwnerID: 7})
	if err := c.apply(context.Background(), payload); err == nil {
		t.Error("expected counter error to surface")
	}
}

func TestApply_NotificationFailureTolerated(t *testing.T) {
	counter := &fakeCounter{}
	c := &VisitConsumer{
		links:         counter,
		notifications: &fakeNotifWriter{err: errors.New("db down")},
		logger:        zerolog.Nop(),
	}
	payload := encode(t, events.LinkVisited{Code: "abc1234", OwnerID: 7})
	if err := c.apply(context.Background(), payload); err != nil {
		t.Errorf("apply = %v, notification failure must not surface", err)
	}
	if counter.counts["abc1234"] != 1 {
		t.Error("visit not counted")
	}
}
