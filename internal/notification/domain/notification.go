package domain

import "time"

// Notification is one entry in a user's event log.
type Notification struct {
	ID        int64
	UserID    int64
	Kind      string // e.g. "login", "logout", "link_visited"
	Message   string
	CreatedAt time.Time
}
