package server

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/EmersonKing1/Teamdle-Project/internal/poller"
)

// stubPoller counts Start/Stop calls and reports a fixed status.
type stubPoller struct {
	startCalls atomic.Int32
	stopCalls  atomic.Int32
	err        error
	status     poller.Status
}

func readyPoller(teams int) *stubPoller {
	at := time.Unix(0, 0).UTC()
	return &stubPoller{status: poller.Status{LastAttempt: at, LastSuccess: at, Teams: teams}}
}

func (p *stubPoller) Start(context.Context) { p.startCalls.Add(1) }

func (p *stubPoller) Stop(context.Context) error {
	p.stopCalls.Add(1)
	return p.err
}

func (p *stubPoller) Status() poller.Status { return p.status }
