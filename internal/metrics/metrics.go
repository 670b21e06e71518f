package metrics

import (
	"sync"
	"time"
)

type gameStats struct {
	sessionsStarted  int
	sessionsFinished map[string]int
	guesses          map[string]int
	catalogReloads   int
	catalogErrors    int
	lastReload       time.Duration
	httpRequests     map[string]int
}

// Recorder captures lightweight, in-memory game metrics and forwards them to
// OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats gameStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: gameStats{
			sessionsFinished: make(map[string]int),
			guesses:          make(map[string]int),
			httpRequests:     make(map[string]int),
		},
		otel: otel,
	}
}

// RecordSessionStarted counts a newly created game session.
func (r *Recorder) RecordSessionStarted() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.sessionsStarted++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordSessionStarted()
	}
}

// RecordGuess counts a guess submission by outcome.
func (r *Recorder) RecordGuess(outcome string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.guesses[outcome]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordGuess(outcome)
	}
}

// RecordSessionFinished counts a session reaching a terminal status and how many guesses it took.
func (r *Recorder) RecordSessionFinished(status string, guesses int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.sessionsFinished[status]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordSessionFinished(status, guesses)
	}
}

// RecordCatalogReload tracks catalog refresh attempts.
func (r *Recorder) RecordCatalogReload(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.catalogReloads++
	r.stats.lastReload = duration
	if err != nil {
		r.stats.catalogErrors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCatalogReload(source, duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.httpRequests[method+" "+path]++
	r.mu.Unlock()
	if r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the recorder's in-memory counters.
type Snapshot struct {
	SessionsStarted  int
	SessionsFinished map[string]int
	Guesses          map[string]int
	CatalogReloads   int
	CatalogErrors    int
	LastReload       time.Duration
	HTTPRequests     map[string]int
}

// Snapshot returns a copy of the current counters.
func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{SessionsFinished: map[string]int{}, Guesses: map[string]int{}, HTTPRequests: map[string]int{}}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		SessionsStarted:  r.stats.sessionsStarted,
		SessionsFinished: make(map[string]int, len(r.stats.sessionsFinished)),
		Guesses:          make(map[string]int, len(r.stats.guesses)),
		CatalogReloads:   r.stats.catalogReloads,
		CatalogErrors:    r.stats.catalogErrors,
		LastReload:       r.stats.lastReload,
		HTTPRequests:     make(map[string]int, len(r.stats.httpRequests)),
	}
	for k, v := range r.stats.sessionsFinished {
		snap.SessionsFinished[k] = v
	}
	for k, v := range r.stats.guesses {
		snap.Guesses[k] = v
	}
	for k, v := range r.stats.httpRequests {
		snap.HTTPRequests[k] = v
	}
	return snap
}
