package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"seller-console/internal/logx"
)

// Variant labels a feed entry outcome.
type Variant string

// List of possible entry variants
const (
	VariantSuccess Variant = "success"
	VariantFailure Variant = "failure"
)

// Entry is one user-visible notification.
type Entry struct {
	ID          string    `json:"id"`
	Variant     Variant   `json:"variant"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

const defaultFeedCap = 100

// Feed is a bounded in-memory notification ring. Oldest entries are evicted
// once the cap is reached. It also mirrors every entry to the structured log
// and a Prometheus counter labeled by variant.
type Feed struct {
	logger  logx.Logger
	counter *prometheus.CounterVec
	now     func() time.Time

	mu      sync.Mutex
	entries []Entry
	cap     int
}

// NewFeed creates a Feed. The counter may be nil.
func NewFeed(logger logx.Logger, counter *prometheus.CounterVec) *Feed {
	return &Feed{
		logger:  logger,
		counter: counter,
		now:     time.Now,
		cap:     defaultFeedCap,
	}
}

// Success records a success notification.
func (f *Feed) Success(title, description string) {
	f.add(VariantSuccess, title, description)
}

// Failure records a failure notification.
func (f *Feed) Failure(title, description string) {
	f.add(VariantFailure, title, description)
}

// Entries returns a copy of the current feed, newest last.
func (f *Feed) Entries() []Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	return out
}

func (f *Feed) add(v Variant, title, description string) {
	e := Entry{
		ID:          uuid.NewString(),
		Variant:     v,
		Title:       title,
		Description: description,
		CreatedAt:   f.now(),
	}

	f.mu.Lock()
	f.entries = append(f.entries, e)
	if len(f.entries) > f.cap {
		f.entries = f.entries[len(f.entries)-f.cap:]
	}
	f.mu.Unlock()

	if f.counter != nil {
		f.counter.WithLabelValues(string(v)).Inc()
	}
	f.logger.Info("notification",
		logx.String("variant", string(v)),
		logx.String("title", title),
		logx.String("description", description),
	)
}

var _ Notifier = (*Feed)(nil)
