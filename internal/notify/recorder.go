package notify

import "sync"

// Recorded is one captured notification.
type Recorded struct {
	Variant     Variant
	Title       string
	Description string
}

// Recorder is a Notifier test double capturing every notification in order.
type Recorder struct {
	mu       sync.Mutex
	recorded []Recorded
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Success captures a success notification.
func (r *Recorder) Success(title, description string) {
	r.add(VariantSuccess, title, description)
}

// Failure captures a failure notification.
func (r *Recorder) Failure(title, description string) {
	r.add(VariantFailure, title, description)
}

// All returns a copy of the captured notifications.
func (r *Recorder) All() []Recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Recorded, len(r.recorded))
	copy(out, r.recorded)
	return out
}

// Failures returns only the captured failure notifications.
func (r *Recorder) Failures() []Recorded {
	var out []Recorded
	for _, n := range r.All() {
		if n.Variant == VariantFailure {
			out = append(out, n)
		}
	}
	return out
}

// Successes returns only the captured success notifications.
func (r *Recorder) Successes() []Recorded {
	var out []Recorded
	for _, n := range r.All() {
		if n.Variant == VariantSuccess {
			out = append(out, n)
		}
	}
	return out
}

func (r *Recorder) add(v Variant, title, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recorded = append(r.recorded, Recorded{Variant: v, Title: title, Description: description})
}

var _ Notifier = (*Recorder)(nil)
