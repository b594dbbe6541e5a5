package web

import (
	"net/http"
	"time"

	"shortlink-platform/backend/internal/auth"
	"shortlink-platform/backend/internal/notification/repository"
)

// NotificationHandler serves a user's event log over HTTP.
type NotificationHandler struct {
	store repository.Repository
}

// NewNotificationHandler returns the notification HTTP handler.
func NewNotificationHandler(store repository.Repository) *NotificationHandler {
	return &NotificationHandler{store: store}
}

// Register mounts the notification routes on mux.
func (h *NotificationHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/notifications", h.list)
}

type notificationJSON struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *NotificationHandler) list(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	limit := queryInt32(r, "limit")
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := queryInt32(r, "offset")
	if offset < 0 {
		offset = 0
	}
	items, err := h.store.ListByUser(r.Context(), p.UserID, limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not list notifications")
		return
	}
	out := make([]notificationJSON, len(items))
	for i, n := range items {
		out[i] = notificationJSON{ID: n.ID, Kind: n.Kind, Message: n.Message, CreatedAt: n.CreatedAt}
	}
	writeJSON(w, http.StatusOK, map[string][]notificationJSON{"notifications": out})
}
