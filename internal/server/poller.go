package server

import (
	"context"

	"github.com/EmersonKing1/Teamdle-Project/internal/poller"
)

// Poller is the background catalog reloader. It must stop within the
// shutdown grace period.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}

var _ Poller = (*poller.Poller)(nil)
