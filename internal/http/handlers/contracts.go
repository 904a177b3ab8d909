package handlers

import (
	"seller-console/internal/notify"
	"seller-console/internal/service/console"
)

// SessionProvider hands out per-token console sessions and the notification
// feed backing each one.
type SessionProvider interface {
	Session(token string) *console.Session
	Feed(token string) *notify.Feed
	Drop(token string)
}

// NewSessionProvider wires a console.Registry into a SessionProvider.
func NewSessionProvider(r *console.Registry) SessionProvider {
	return r
}
