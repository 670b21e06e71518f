package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/EmersonKing1/Teamdle-Project/internal/app/games"
	"github.com/EmersonKing1/Teamdle-Project/internal/app/teams"
	"github.com/EmersonKing1/Teamdle-Project/internal/daily"
	"github.com/EmersonKing1/Teamdle-Project/internal/domain/session"
	domainteams "github.com/EmersonKing1/Teamdle-Project/internal/domain/teams"
	"github.com/EmersonKing1/Teamdle-Project/internal/logging"
	"github.com/EmersonKing1/Teamdle-Project/internal/poller"
	"github.com/EmersonKing1/Teamdle-Project/internal/timeutil"
)

const (
	maxBodyBytes   = 4 << 10
	maxSearchLimit = 50
)

var errTrailingData = errors.New("unexpected data after JSON body")

type nowFunc func() time.Time

// Handler wires HTTP routes to the game and team services.
type Handler struct {
	games    *games.Service
	teams    *teams.Service
	loc      *time.Location
	logger   *slog.Logger
	now      nowFunc
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults. loc decides which calendar day
// "today" is when a client starts a game without a date.
func NewHandler(gameSvc *games.Service, teamSvc *teams.Service, loc *time.Location, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		games:    gameSvc,
		teams:    teamSvc,
		loc:      loc,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.teams.Count() == 0 {
		writeError(w, r, nethttp.StatusServiceUnavailable, "catalog empty", h.logger)
		return
	}
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

type searchResponse struct {
	Query string             `json:"query"`
	Count int                `json:"count"`
	Teams []domainteams.Team `json:"teams"`
}

// SearchTeams returns catalog teams whose name contains q. Without q the whole
// catalog is returned so clients can build their own pickers.
func (h *Handler) SearchTeams(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, r, nethttp.StatusBadRequest, "limit must be a positive integer", h.logger)
			return
		}
		limit = min(n, maxSearchLimit)
	}

	var found []domainteams.Team
	if q == "" {
		found = h.teams.Teams()
		if limit > 0 && len(found) > limit {
			found = found[:limit]
		}
	} else {
		found = h.teams.Search(q, limit)
	}
	writeJSON(w, nethttp.StatusOK, searchResponse{Query: q, Count: len(found), Teams: found}, h.logger)
}

// GetTeam returns one team by exact, case-insensitive name.
func (h *Handler) GetTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || strings.TrimSpace(name) == "" {
		writeError(w, r, nethttp.StatusBadRequest, "team name required", h.logger)
		return
	}
	team, ok := h.teams.TeamByName(name)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "unknown team", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, team, h.logger)
}

type startGameRequest struct {
	Date string `json:"date"`
}

// StartGame creates a session for the requested date, or today in the configured timezone.
func (h *Handler) StartGame(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req startGameRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	date := timeutil.Today(h.now(), h.loc)
	if req.Date != "" {
		parsed, err := timeutil.ParseCalendarDate(req.Date)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
		date = parsed
	}

	view, err := h.games.Start(date)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusCreated, view, h.logger)
}

// GetGame returns the current view of a session.
func (h *Handler) GetGame(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := h.gameID(w, r)
	if !ok {
		return
	}
	view, err := h.games.Game(id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, view, h.logger)
}

type guessRequest struct {
	Team string `json:"team"`
}

// SubmitGuess scores a guess against the session's target.
func (h *Handler) SubmitGuess(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, ok := h.gameID(w, r)
	if !ok {
		return
	}
	var req guessRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if strings.TrimSpace(req.Team) == "" {
		writeError(w, r, nethttp.StatusBadRequest, "team is required", h.logger)
		return
	}

	res, err := h.games.Guess(id, req.Team)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, res, h.logger)
}

func (h *Handler) gameID(w nethttp.ResponseWriter, r *nethttp.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return "", false
	}
	return id, true
}

func (h *Handler) writeServiceError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	switch {
	case errors.Is(err, games.ErrNotFound):
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
	case errors.Is(err, session.ErrUnknownTeam):
		writeError(w, r, nethttp.StatusNotFound, "unknown team", h.logger)
	case errors.Is(err, session.ErrSessionOver):
		writeError(w, r, nethttp.StatusConflict, "game is over", h.logger)
	case errors.Is(err, domainteams.ErrInvalidRecord):
		writeError(w, r, nethttp.StatusUnprocessableEntity, err.Error(), h.logger)
	case errors.Is(err, daily.ErrEmptyCatalog):
		writeError(w, r, nethttp.StatusServiceUnavailable, "catalog unavailable", h.logger)
	default:
		logging.Error(loggerFromContext(r, h.logger), "request failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "internal error", h.logger)
	}
}

// decodeBody reads a small JSON body into dest. An empty body leaves dest untouched.
func decodeBody(w nethttp.ResponseWriter, r *nethttp.Request, dest any) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(nethttp.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
