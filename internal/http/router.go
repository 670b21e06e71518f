package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/EmersonKing1/Teamdle-Project/internal/http/handlers"
	"github.com/EmersonKing1/Teamdle-Project/internal/http/middleware"
	"github.com/EmersonKing1/Teamdle-Project/internal/metrics"
)

// RouterOptions configures the middleware stack around the API routes.
type RouterOptions struct {
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
	CORSOrigin string
}

// NewRouter registers HTTP routes on a chi router.
func NewRouter(h *handlers.Handler, opts RouterOptions) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging(opts.Logger, opts.Metrics))
	r.Use(middleware.CORS(opts.CORSOrigin))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Get("/teams", h.SearchTeams)
	r.Get("/teams/{name}", h.GetTeam)
	r.Route("/games", func(r chi.Router) {
		r.Post("/", h.StartGame)
		r.Get("/{id}", h.GetGame)
		r.Post("/{id}/guesses", h.SubmitGuess)
	})
	return r
}
