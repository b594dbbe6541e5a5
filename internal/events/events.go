// Package events defines the JSON events the shortener publishes to Kafka
// and the worker consumes.
package events

import "time"

// LinkVisited is emitted once per redirect or resolve. VisitorID is zero for
// anonymous visitors.
type LinkVisited struct {
	Code      string    `json:"code"`
	OwnerID   int64     `json:"owner_id"`
	VisitorID int64     `json:"visitor_id,omitempty"`
	VisitedAt time.Time `json:"visited_at"`
}
