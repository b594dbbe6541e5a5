package web

import (
	"errors"
	"net/http"
	"time"

	"shortlink-platform/backend/internal/auth"
	"shortlink-platform/backend/internal/link/domain"
	"shortlink-platform/backend/internal/link/service"
)

// LinkHandler serves link management and the public redirect over HTTP.
type LinkHandler struct {
	links *service.LinkService
}

// NewLinkHandler returns the shortener HTTP handler.
func NewLinkHandler(links *service.LinkService) *LinkHandler {
	return &LinkHandler{links: links}
}

// Register mounts the link routes on mux. The bare "GET /{code}" redirect is
// the public entry point short URLs resolve through.
func (h *LinkHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/links", h.shorten)
	mux.HandleFunc("GET /api/links", h.list)
	mux.HandleFunc("DELETE /api/links/{code}", h.remove)
	mux.HandleFunc("GET /{code}", h.redirect)
}

type linkJSON struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	TargetURL string    `json:"targetUrl"`
	Visits    int64     `json:"visits"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *LinkHandler) shorten(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req struct {
		TargetURL string `json:"targetUrl"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	link, err := h.links.Shorten(r.Context(), p, req.TargetURL)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTarget) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "could not create link")
		return
	}
	writeJSON(w, http.StatusCreated, toLinkJSON(link))
}

func (h *LinkHandler) list(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	items, err := h.links.List(r.Context(), p, queryInt32(r, "limit"), queryInt32(r, "offset"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not list links")
		return
	}
	out := make([]linkJSON, len(items))
	for i, l := range items {
		out[i] = toLinkJSON(l)
	}
	writeJSON(w, http.StatusOK, map[string][]linkJSON{"links": out})
}

func (h *LinkHandler) remove(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	err := h.links.Delete(r.Context(), p, r.PathValue("code"))
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "link not found")
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, "not the link owner")
	default:
		writeError(w, http.StatusInternalServerError, "could not delete link")
	}
}

// redirect resolves the code and 302s to the target. Anonymous visits carry a
// zero visitor id in the emitted event.
func (h *LinkHandler) redirect(w http.ResponseWriter, r *http.Request) {
	var visitorID int64
	if p, ok := auth.PrincipalFrom(r.Context()); ok {
		visitorID = p.UserID
	}
	link, err := h.links.Resolve(r.Context(), r.PathValue("code"), visitorID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		writeError(w, http.StatusInternalServerError, "could not resolve link")
		return
	}
	http.Redirect(w, r, link.TargetURL, http.StatusFound)
}

func toLinkJSON(l *domain.Link) linkJSON {
	return linkJSON{
		ID:        l.ID,
		Code:      l.Code,
		TargetURL: l.TargetURL,
		Visits:    l.Visits,
		CreatedAt: l.CreatedAt,
	}
}
