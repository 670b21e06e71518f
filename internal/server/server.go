package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/EmersonKing1/Teamdle-Project/internal/app/games"
	"github.com/EmersonKing1/Teamdle-Project/internal/app/teams"
	"github.com/EmersonKing1/Teamdle-Project/internal/catalog"
	"github.com/EmersonKing1/Teamdle-Project/internal/config"
	httpserver "github.com/EmersonKing1/Teamdle-Project/internal/http"
	"github.com/EmersonKing1/Teamdle-Project/internal/http/handlers"
	"github.com/EmersonKing1/Teamdle-Project/internal/logging"
	"github.com/EmersonKing1/Teamdle-Project/internal/metrics"
	"github.com/EmersonKing1/Teamdle-Project/internal/poller"
	"github.com/EmersonKing1/Teamdle-Project/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	catalogs      *catalog.Holder
	store         *store.MemoryStore
	gamesService  *games.Service
	teamsService  *teams.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New loads the catalog from the configured source and wires the server.
// It fails when the initial catalog load fails.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithSource(ctx, cfg, logger, catalog.SourceFor(cfg.CatalogPath), nil)
}

func newServerWithSource(ctx context.Context, cfg config.Config, logger *slog.Logger, source catalog.Source, recorder *metrics.Recorder) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	start := time.Now()
	initial, err := source.Load(ctx)
	recorder.RecordCatalogReload(source.Name(), time.Since(start), err)
	if err != nil {
		if metricsShutdown != nil {
			_ = metricsShutdown(ctx)
		}
		return nil, fmt.Errorf("load %s catalog: %w", source.Name(), err)
	}
	logging.Info(logger, "catalog loaded",
		logging.FieldSource, source.Name(),
		logging.FieldCount, initial.Len(),
	)

	holder := catalog.NewHolder(initial)
	memoryStore, gameSvc, teamSvc := buildServices(cfg, holder, logger, recorder)
	plr := poller.New(source, holder, gameSvc, logger, recorder, cfg.CatalogReloadInterval)
	plr.MarkLoaded(start, initial.Len())
	httpSrv := buildHTTPServer(cfg, gameSvc, teamSvc, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		catalogs:      holder,
		store:         memoryStore,
		gamesService:  gameSvc,
		teamsService:  teamSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildServices(cfg config.Config, holder *catalog.Holder, logger *slog.Logger, recorder *metrics.Recorder) (*store.MemoryStore, *games.Service, *teams.Service) {
	memoryStore := store.NewMemoryStore()
	gameSvc := games.NewService(memoryStore, holder, cfg.GuessLimit, cfg.SessionTTL, logger, recorder)
	return memoryStore, gameSvc, teams.NewService(holder)
}

func buildHTTPServer(cfg config.Config, gameSvc *games.Service, teamSvc *teams.Service, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	handler := handlers.NewHandler(gameSvc, teamSvc, cfg.Location(), logger, statusFn)
	router := httpserver.NewRouter(handler, httpserver.RouterOptions{
		Logger:     logger,
		Metrics:    recorder,
		CORSOrigin: cfg.CORSOrigin,
	})

	return newNetHTTPServer(":"+cfg.Port, router)
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownGrace())
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", logging.ErrAttr(err))
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", logging.ErrAttr(err))
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:        cfg.Metrics.Enabled,
		Port:           cfg.Metrics.Port,
		ServiceName:    cfg.Metrics.ServiceName,
		OtlpEndpoint:   cfg.Metrics.OtlpEndpoint,
		OtlpInsecure:   cfg.Metrics.OtlpInsecure,
		ExportInterval: cfg.Metrics.ExportInterval,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.ErrAttr(err))
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newNetHTTPServer(cfg.Metrics.Addr(), handler)
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Debug(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", logging.ErrAttr(err))
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
