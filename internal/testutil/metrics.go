package testutil

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/EmersonKing1/Teamdle-Project/internal/metrics"
)

// MetricsStub replaces metrics.Setup in tests. It records the config it was
// given and counts shutdowns; a non-nil Err fails setup.
type MetricsStub struct {
	Recorder  *metrics.Recorder
	Err       error
	Config    metrics.TelemetryConfig
	Shutdowns atomic.Int32
}

// Setup has the signature of metrics.Setup.
func (m *MetricsStub) Setup(_ context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
	m.Config = cfg
	if m.Err != nil {
		return nil, nil, nil, m.Err
	}
	rec := m.Recorder
	if rec == nil {
		rec = metrics.NewRecorder()
	}
	shutdown := func(context.Context) error {
		m.Shutdowns.Add(1)
		return nil
	}
	return rec, http.NotFoundHandler(), shutdown, nil
}
