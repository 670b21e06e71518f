package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/EmersonKing1/Teamdle-Project/internal/catalog"
	"github.com/EmersonKing1/Teamdle-Project/internal/logging"
	"github.com/EmersonKing1/Teamdle-Project/internal/metrics"
)

const defaultInterval = 5 * time.Minute

// Publisher receives freshly loaded catalog snapshots.
type Publisher interface {
	Swap(c *catalog.Catalog) *catalog.Catalog
}

// Sweeper drops expired game sessions.
type Sweeper interface {
	PruneExpired() int
}

// Poller reloads the team catalog on an interval and prunes expired sessions.
type Poller struct {
	source    catalog.Source
	publisher Publisher
	sweeper   Sweeper
	logger    *slog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the reload loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	Teams               int
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller. sweeper may be nil.
func New(source catalog.Source, publisher Publisher, sweeper Sweeper, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		source:    source,
		publisher: publisher,
		sweeper:   sweeper,
		logger:    logger,
		metrics:   recorder,
		interval:  interval,
		done:      make(chan struct{}),
	}
}

// MarkLoaded records a load performed outside the loop, typically at boot.
func (p *Poller) MarkLoaded(at time.Time, teams int) {
	p.recordSuccess(at, teams)
}

// Start begins reloading until the context is cancelled or Stop is called.
// The first reload happens after one interval; callers load the catalog at boot.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "catalog poller started",
			logging.FieldSource, p.source.Name(),
			logging.FieldDurationMS, p.interval.Milliseconds(),
		)
		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "catalog poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "catalog poller stopped")
				return
			case <-p.ticker.C:
				p.reloadOnce(ctx)
				p.sweep()
			}
		}
	}()
}

// Stop halts the loop.
func (p *Poller) Stop(context.Context) error {
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// reloadOnce keeps the previous snapshot when the source fails.
func (p *Poller) reloadOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)
	c, err := p.source.Load(ctx)
	p.metrics.RecordCatalogReload(p.source.Name(), time.Since(start), err)
	if err != nil {
		logging.Error(p.logger, "catalog reload failed", err,
			logging.FieldSource, p.source.Name(),
			logging.FieldDurationMS, time.Since(start).Milliseconds(),
		)
		p.recordFailure(err, start)
		return
	}

	p.publisher.Swap(c)
	p.recordSuccess(start, c.Len())
	logging.Debug(p.logger, "catalog reloaded",
		logging.FieldSource, p.source.Name(),
		logging.FieldCount, c.Len(),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) sweep() {
	if p.sweeper != nil {
		p.sweeper.PruneExpired()
	}
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time, teams int) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.status.Teams = teams
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
