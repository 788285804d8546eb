package i18n

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Event is the record of one render call delivered to an Observer.
type Event struct {
	ID              string
	Namespace       string
	Key             string
	RequestedLocale string
	ResolvedLocale  string
	Text            string
	Resolved        bool
	StartedAt       time.Time
	FinishedAt      time.Time
}

// Duration returns the wall-clock time the render took.
func (e Event) Duration() time.Duration {
	return e.FinishedAt.Sub(e.StartedAt)
}

// Observer receives a record of every render call. Purely diagnostic; it
// never affects resolution. Implementations are invoked while the
// Localizer's lock is held and must not call back into it.
type Observer interface {
	ObserveRender(Event)
}

// Recorder is an Observer that collects events in memory. Intended for
// tests and debug tooling.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty event recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) ObserveRender(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events in arrival order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Reset discards all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// SlogObserver logs render events through a slog.Logger at debug level.
type SlogObserver struct {
	log *slog.Logger
}

// NewSlogObserver creates an observer writing to the given logger.
// A nil logger falls back to slog.Default().
func NewSlogObserver(log *slog.Logger) *SlogObserver {
	if log == nil {
		log = slog.Default()
	}
	return &SlogObserver{log: log}
}

func (o *SlogObserver) ObserveRender(e Event) {
	o.log.LogAttrs(context.Background(), slog.LevelDebug, "i18n render",
		slog.String("id", e.ID),
		slog.String("namespace", e.Namespace),
		slog.String("key", e.Key),
		slog.String("requested_locale", e.RequestedLocale),
		slog.String("resolved_locale", e.ResolvedLocale),
		slog.Bool("resolved", e.Resolved),
		slog.Duration("duration", e.Duration()),
	)
}
