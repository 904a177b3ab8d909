package handlers

import (
	"net/http"

	"seller-console/internal/auth"
	"seller-console/internal/logx"
	"seller-console/internal/notify"
)

// Handlers holds the HTTP handler dependencies.
type Handlers struct {
	Logger   logx.Logger
	Sessions SessionProvider
}

// New creates a Handlers instance.
func New(logger logx.Logger, sessions SessionProvider) *Handlers {
	return &Handlers{Logger: logger, Sessions: sessions}
}

// Ping handles GET /ping and returns 200 with {"message":"pong"}.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead handles HEAD /healthcheck and returns 204 No Content.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// NotFound returns a JSON 404 error for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusNotFound, "route not found")
}

// Notifications handles GET /api/notifications with the caller's own feed,
// newest last. Feeds are per session; nobody reads another seller's outcomes.
func (h *Handlers) Notifications(w http.ResponseWriter, r *http.Request) {
	token, ok := auth.TokenFromContext(r.Context())
	if !ok {
		writeError(h.Logger, w, r, http.StatusUnauthorized, "not signed in")
		return
	}
	entries := h.Sessions.Feed(token).Entries()
	if entries == nil {
		entries = []notify.Entry{}
	}
	writeJSON(h.Logger, w, r, http.StatusOK, entries)
}
