package handlers

import (
	"fmt"
	"net/http"
)

// Page returns a handler serving a minimal HTML shell for a navigation route.
// The console is API-first; these shells exist so the gated routes resolve.
func (h *Handlers) Page(title string) http.HandlerFunc {
	body := fmt.Sprintf("<!doctype html><html><head><title>%s</title></head><body><div id=\"root\" data-page=%q></div></body></html>", title, title)
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	}
}
