package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"shortlink-platform/backend/internal/auth"
	"shortlink-platform/backend/internal/identity/service"
	"shortlink-platform/backend/internal/user/domain"
)

// oauthStateCookie carries the state nonce between the consent redirect and
// the callback so the callback can reject forged codes.
const oauthStateCookie = "oauth_state"

// GoogleOAuth is the browser authorization-code flow for federated login:
// send the user to Google's consent page, then trade the returned code for a
// verified ID token on the callback.
type GoogleOAuth interface {
	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*service.GoogleIdentity, string, error)
}

// IdentityHandler serves the session lifecycle over HTTP.
type IdentityHandler struct {
	sessions *service.SessionService
	oauth    GoogleOAuth
	logger   zerolog.Logger
}

// NewIdentityHandler returns the identity HTTP handler. oauth may be nil when
// the browser-based Google flow is not configured; the API flow
// (POST /api/auth/google with an ID token) works either way.
func NewIdentityHandler(sessions *service.SessionService, oauth GoogleOAuth, logger zerolog.Logger) *IdentityHandler {
	return &IdentityHandler{sessions: sessions, oauth: oauth, logger: logger}
}

// Register mounts the identity routes on mux.
func (h *IdentityHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/register", h.register)
	mux.HandleFunc("POST /api/auth/login", h.login)
	mux.HandleFunc("POST /api/auth/google", h.googleLogin)
	mux.HandleFunc("POST /api/auth/refresh", h.refresh)
	mux.HandleFunc("POST /api/auth/logout", h.logout)
	if h.oauth != nil {
		mux.HandleFunc("GET /api/auth/google", h.googleStart)
		mux.HandleFunc("GET /api/auth/google/callback", h.googleCallback)
	}
}

type userJSON struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Provider string `json:"provider"`
}

type tokenPairJSON struct {
	AccessToken     string    `json:"accessToken"`
	RefreshToken    string    `json:"refreshToken"`
	AccessExpiresAt time.Time `json:"accessExpiresAt"`
	User            userJSON  `json:"user"`
}

func (h *IdentityHandler) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user, err := h.sessions.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailAlreadyRegistered), errors.Is(err, auth.ErrProviderMismatch):
			writeError(w, http.StatusConflict, "email already registered")
		case errors.Is(err, auth.ErrStoreUnavailable):
			writeError(w, http.StatusServiceUnavailable, "try again later")
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusCreated, toUserJSON(user))
}

func (h *IdentityHandler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result, err := h.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.authFailure(w, err, "login")
		return
	}
	writeJSON(w, http.StatusOK, toTokenPairJSON(result))
}

func (h *IdentityHandler) googleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDToken string `json:"idToken"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result, err := h.sessions.GoogleLogin(r.Context(), req.IDToken)
	if err != nil {
		h.authFailure(w, err, "google login")
		return
	}
	writeJSON(w, http.StatusOK, toTokenPairJSON(result))
}

// googleStart redirects the browser to Google's consent page with a fresh
// state nonce, echoed back to the callback through a short-lived cookie.
func (h *IdentityHandler) googleStart(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/api/auth/google",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.oauth.AuthCodeURL(state), http.StatusFound)
}

// googleCallback trades the authorization code for an ID token and signs the
// user in. The state query parameter must match the cookie set by googleStart.
func (h *IdentityHandler) googleCallback(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(oauthStateCookie)
	state := r.URL.Query().Get("state")
	if err != nil || state == "" || cookie.Value != state {
		writeError(w, http.StatusUnauthorized, "authentication failed")
		return
	}
	http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Path: "/api/auth/google", MaxAge: -1})
	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "missing authorization code")
		return
	}
	_, rawIDToken, err := h.oauth.ExchangeCode(r.Context(), code)
	if err != nil {
		h.authFailure(w, err, "google callback")
		return
	}
	result, err := h.sessions.GoogleLogin(r.Context(), rawIDToken)
	if err != nil {
		h.authFailure(w, err, "google callback")
		return
	}
	writeJSON(w, http.StatusOK, toTokenPairJSON(result))
}

func (h *IdentityHandler) refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result, err := h.sessions.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.authFailure(w, err, "refresh")
		return
	}
	writeJSON(w, http.StatusOK, toTokenPairJSON(result))
}

// logout needs both the principal and the raw bearer token from the ingress
// authenticator: the token is what gets blacklisted.
func (h *IdentityHandler) logout(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	token, ok := auth.BearerTokenFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if err := h.sessions.Logout(r.Context(), token, p.UserID); err != nil {
		if errors.Is(err, auth.ErrStoreUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "logout failed, try again")
			return
		}
		writeError(w, http.StatusInternalServerError, "logout failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// authFailure collapses all authentication errors to a single opaque 401.
func (h *IdentityHandler) authFailure(w http.ResponseWriter, err error, op string) {
	if errors.Is(err, auth.ErrStoreUnavailable) {
		writeError(w, http.StatusServiceUnavailable, "try again later")
		return
	}
	h.logger.Info().Err(err).Str("op", op).Msg("authentication rejected")
	writeError(w, http.StatusUnauthorized, "authentication failed")
}

func toUserJSON(u *domain.User) userJSON {
	return userJSON{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     string(u.Role),
		Status:   string(u.Status),
		Provider: string(u.Provider),
	}
}

func toTokenPairJSON(r *service.AuthResult) tokenPairJSON {
	return tokenPairJSON{
		AccessToken:     r.AccessToken,
		RefreshToken:    r.RefreshToken,
		AccessExpiresAt: r.AccessExpiresAt,
		User:            toUserJSON(r.User),
	}
}
