package console

import (
	"sync"
	"time"

	"seller-console/internal/logx"
	"seller-console/internal/notify"
)

// Registry hands out per-token sessions. It is the single injectable owner of
// console state: consumers receive it through the container, never through an
// ambient global. Each session gets its own notification feed so one seller
// never reads another seller's outcomes.
type Registry struct {
	gw      Gateway
	newFeed func() *notify.Feed
	logger  logx.Logger
	timeout time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
	feeds    map[string]*notify.Feed
}

// NewRegistry creates a session registry. newFeed builds the notification
// feed backing each new session; nil means a plain uncounted feed.
func NewRegistry(gw Gateway, newFeed func() *notify.Feed, logger logx.Logger, timeout time.Duration) *Registry {
	if gw == nil {
		return nil
	}
	if newFeed == nil {
		newFeed = func() *notify.Feed { return notify.NewFeed(logger, nil) }
	}
	return &Registry{
		gw:       gw,
		newFeed:  newFeed,
		logger:   logger,
		timeout:  timeout,
		sessions: make(map[string]*Session),
		feeds:    make(map[string]*notify.Feed),
	}
}

// Session returns the session for token, creating it on first use.
func (r *Registry) Session(token string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessionLocked(token)
}

// Feed returns the notification feed backing token's session, creating the
// session on first use.
func (r *Registry) Feed(token string) *notify.Feed {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessionLocked(token)
	return r.feeds[token]
}

func (r *Registry) sessionLocked(token string) *Session {
	if s, ok := r.sessions[token]; ok {
		return s
	}
	feed := r.newFeed()
	s := NewSession(token, r.gw, feed, r.logger.With(logx.String("component", "console")), r.timeout)
	r.sessions[token] = s
	r.feeds[token] = feed
	return s
}

// Drop discards the session for token, if any. Called at logout so the next
// sign-in starts from a clean fetch and an empty feed.
func (r *Registry) Drop(token string) {
	r.mu.Lock()
	delete(r.sessions, token)
	delete(r.feeds, token)
	r.mu.Unlock()
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
