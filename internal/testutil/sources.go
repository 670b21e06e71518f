package testutil

import (
	"context"
	"sync/atomic"

	"github.com/EmersonKing1/Teamdle-Project/internal/catalog"
)

// StubSource is a test double for catalog.Source.
type StubSource struct {
	Catalog *catalog.Catalog
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
}

func (s *StubSource) Name() string { return "stub" }

// Load returns the configured catalog and error while tracking calls.
// Notify is closed on the first call.
func (s *StubSource) Load(ctx context.Context) (*catalog.Catalog, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Catalog, s.Err
}

// StubSweeper counts prune calls.
type StubSweeper struct {
	Calls atomic.Int32
}

func (s *StubSweeper) PruneExpired() int {
	s.Calls.Add(1)
	return 0
}
