package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/EmersonKing1/Teamdle-Project/internal/app/games"
	"github.com/EmersonKing1/Teamdle-Project/internal/config"
	"github.com/EmersonKing1/Teamdle-Project/internal/metrics"
	"github.com/EmersonKing1/Teamdle-Project/internal/testutil"
)

func testConfig() config.Config {
	return config.Config{
		Port:                  "0",
		GuessLimit:            3,
		CatalogReloadInterval: time.Hour,
		SessionTTL:            time.Hour,
		DailyTimezone:         "UTC",
		Metrics:               config.MetricsConfig{Enabled: false},
	}
}

func TestServerServesHealthAndGames(t *testing.T) {
	source := &testutil.StubSource{Catalog: testutil.SampleCatalog()}
	srv, err := newServerWithSource(context.Background(), testConfig(), nil, source, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	router := srv.Handler()

	healthRec := httptest.NewRecorder()
	router.ServeHTTP(healthRec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if healthRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", healthRec.Code)
	}

	readyRec := httptest.NewRecorder()
	router.ServeHTTP(readyRec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if readyRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /ready after initial load, got %d", readyRec.Code)
	}

	startRec := httptest.NewRecorder()
	router.ServeHTTP(startRec, httptest.NewRequest(http.MethodPost, "/games", strings.NewReader(`{"date":"2024-01-01"}`)))
	if startRec.Code != http.StatusCreated {
		t.Fatalf("expected 201 from POST /games, got %d", startRec.Code)
	}
	var view games.View
	testutil.DecodeJSON(t, startRec, &view)
	if view.Limit != 3 {
		t.Fatalf("expected configured guess limit, got %d", view.Limit)
	}

	guessRec := httptest.NewRecorder()
	router.ServeHTTP(guessRec, httptest.NewRequest(http.MethodPost, "/games/"+view.ID+"/guesses", strings.NewReader(`{"team":"Boston Celtics"}`)))
	if guessRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from guess, got %d", guessRec.Code)
	}
	if srv.store.CountSessions() != 1 {
		t.Fatalf("expected one stored session")
	}
}

func TestNewFailsWhenInitialLoadFails(t *testing.T) {
	source := &testutil.StubSource{Err: errors.New("bad catalog")}
	_, err := newServerWithSource(context.Background(), testConfig(), nil, source, nil)
	if err == nil || !strings.Contains(err.Error(), "bad catalog") {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestNewUsesEmbeddedCatalog(t *testing.T) {
	srv, err := New(context.Background(), testConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
	if srv.catalogs.Current().Len() == 0 {
		t.Fatal("expected embedded catalog to be loaded")
	}
}

func TestNewFailsForMissingCatalogFile(t *testing.T) {
	cfg := testConfig()
	cfg.CatalogPath = "/does/not/exist.json"
	if _, err := New(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}

func TestBuildMetricsSuccessPathSetsServerAndShutdown(t *testing.T) {
	stub := &testutil.MetricsStub{}
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = stub.Setup

	rec, srv, stop := buildMetrics(config.Config{
		Metrics: config.MetricsConfig{Enabled: true, Port: "9999", ExportInterval: 30 * time.Second},
	}, nil, nil)

	if rec == nil || srv == nil || stop == nil {
		t.Fatalf("expected recorder, server, and shutdown to be set on success")
	}
	if srv.Addr() != ":9999" {
		t.Fatalf("expected metrics addr :9999, got %s", srv.Addr())
	}
	if stub.Config.Port != "9999" || stub.Config.ExportInterval != 30*time.Second {
		t.Fatalf("expected metrics config forwarded, got %+v", stub.Config)
	}
	if err := stop(context.Background()); err != nil || stub.Shutdowns.Load() != 1 {
		t.Fatalf("expected shutdown forwarded, err=%v calls=%d", err, stub.Shutdowns.Load())
	}
}

func TestBuildMetricsHandlesSetupFailure(t *testing.T) {
	stub := &testutil.MetricsStub{Err: errors.New("fail")}
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = stub.Setup

	logger, buf := testutil.NewBufferLogger()
	rec, srv, stop := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true}}, logger, nil)
	if rec == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
	if srv != nil || stop != nil {
		t.Fatalf("expected no metrics server on failure")
	}
	if !strings.Contains(buf.String(), "metrics setup failed") {
		t.Fatalf("expected warning log, got %q", buf.String())
	}
}

func TestNewServerUsesInjectedRecorder(t *testing.T) {
	rec := metrics.NewRecorder()
	source := &testutil.StubSource{Catalog: testutil.SampleCatalog()}
	cfg := testConfig()
	cfg.Metrics.Enabled = true

	srv, err := newServerWithSource(context.Background(), cfg, nil, source, rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.metrics != rec || srv.metricsServer != nil {
		t.Fatalf("expected injected recorder to be used without a metrics server")
	}
	if rec.Snapshot().CatalogReloads != 1 {
		t.Fatalf("expected initial load recorded")
	}
}

func TestGracefulShutdownCallsStopAndShutdown(t *testing.T) {
	p := &stubPoller{}
	httpSrv := &testutil.FakeHTTPServer{}
	metricsSrv := &testutil.FakeHTTPServer{}

	srv := newServerWithDeps(testConfig(), nil, httpSrv, p)
	srv.metricsServer = metricsSrv
	stopped := false
	srv.metricsStop = func(context.Context) error {
		stopped = true
		return errors.New("flush failed")
	}
	srv.gracefulShutdown()

	if p.stopCalls.Load() != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.stopCalls.Load())
	}
	if httpSrv.ShutdownCalls.Load() != 1 || metricsSrv.ShutdownCalls.Load() != 1 {
		t.Fatalf("expected both servers shut down, got http=%d metrics=%d", httpSrv.ShutdownCalls.Load(), metricsSrv.ShutdownCalls.Load())
	}
	if !stopped {
		t.Fatal("expected metrics shutdown invoked")
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	p := &stubPoller{}
	blocking := &testutil.FakeHTTPServer{Block: make(chan struct{})}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(testConfig(), nil, blocking, p)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls.Load() != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls.Load())
	}
	if p.stopCalls.Load() != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.stopCalls.Load())
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestGracefulShutdownContinuesWhenPollerStopErrors(t *testing.T) {
	p := &stubPoller{err: errors.New("stop failure")}
	httpSrv := &testutil.FakeHTTPServer{}

	srv := newServerWithDeps(testConfig(), nil, httpSrv, p)
	srv.gracefulShutdown()

	if p.stopCalls.Load() != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.stopCalls.Load())
	}
	if httpSrv.ShutdownCalls.Load() != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls.Load())
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	srv := newServerWithDeps(testConfig(), nil, &testutil.FakeHTTPServer{ListenErr: errors.New("address in use")}, &stubPoller{})

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	plr := &stubPoller{}
	httpSrv := &testutil.FakeHTTPServer{ListenErr: http.ErrServerClosed}

	srv := newServerWithDeps(testConfig(), nil, httpSrv, plr)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	// Let Start be invoked.
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if plr.startCalls.Load() != 1 {
		t.Fatalf("expected poller Start called once, got %d", plr.startCalls.Load())
	}
	if plr.stopCalls.Load() != 1 {
		t.Fatalf("expected poller Stop called once, got %d", plr.stopCalls.Load())
	}
	if httpSrv.ShutdownCalls.Load() != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls.Load())
	}
}

func TestBuildHTTPServerReadinessFollowsPoller(t *testing.T) {
	holder := testutil.SampleHolder()
	_, gameSvc, teamSvc := buildServices(testConfig(), holder, nil, nil)

	tests := []struct {
		name string
		plr  Poller
		want int
	}{
		{name: "loaded", plr: readyPoller(holder.Current().Len()), want: http.StatusOK},
		{name: "never loaded", plr: &stubPoller{}, want: http.StatusServiceUnavailable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := buildHTTPServer(testConfig(), gameSvc, teamSvc, nil, nil, tc.plr)
			rr := testutil.Serve(srv.Handler(), http.MethodGet, "/ready", nil)
			testutil.AssertStatus(t, rr, tc.want)
		})
	}
}
