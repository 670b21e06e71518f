package games

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/EmersonKing1/Teamdle-Project/internal/catalog"
	"github.com/EmersonKing1/Teamdle-Project/internal/daily"
	"github.com/EmersonKing1/Teamdle-Project/internal/domain/session"
	"github.com/EmersonKing1/Teamdle-Project/internal/domain/teams"
	"github.com/EmersonKing1/Teamdle-Project/internal/logging"
	"github.com/EmersonKing1/Teamdle-Project/internal/metrics"
	"github.com/EmersonKing1/Teamdle-Project/internal/store"
	"github.com/EmersonKing1/Teamdle-Project/internal/timeutil"
)

// ErrNotFound is returned for an unknown or expired game ID.
var ErrNotFound = errors.New("game not found")

// Store defines the contract for persisting and retrieving game sessions.
type Store interface {
	SaveSession(rec *store.Record)
	GetSession(id string) (*store.Record, bool)
	PruneSessions(cutoff time.Time) int
}

// Catalogs exposes the current catalog snapshot.
type Catalogs interface {
	Current() *catalog.Catalog
}

// View is the externally visible state of a game. Target is only set once the game is over.
type View struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Status    session.Status  `json:"status"`
	Limit     int             `json:"guessLimit"`
	Remaining int             `json:"remaining"`
	Guesses   []session.Entry `json:"guesses"`
	Target    *teams.Team     `json:"target,omitempty"`
}

// GuessResult pairs the new entry with the updated game.
type GuessResult struct {
	Entry session.Entry `json:"entry"`
	Game  View          `json:"game"`
}

// Service coordinates game sessions: daily target selection, guess submission
// and expiry.
type Service struct {
	store    Store
	catalogs Catalogs
	limit    int
	ttl      time.Duration
	logger   *slog.Logger
	metrics  *metrics.Recorder
	newID    func() string
	now      func() time.Time
}

// NewService constructs a Service. Sessions older than ttl are dropped by PruneExpired;
// a non-positive ttl disables expiry.
func NewService(st Store, catalogs Catalogs, limit int, ttl time.Duration, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		store:    st,
		catalogs: catalogs,
		limit:    limit,
		ttl:      ttl,
		logger:   logger,
		metrics:  recorder,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// DailyTarget returns the team selected for date from the current catalog.
func (s *Service) DailyTarget(date timeutil.Date) (teams.Team, error) {
	return daily.SelectTarget(s.catalogs.Current().Teams(), date)
}

// Start creates a new session against the target for date.
// The session resolves guesses against the catalog snapshot current at creation.
func (s *Service) Start(date timeutil.Date) (View, error) {
	cat := s.catalogs.Current()
	target, err := daily.SelectTarget(cat.Teams(), date)
	if err != nil {
		return View{}, err
	}
	sess, err := session.New(target, s.limit, cat)
	if err != nil {
		return View{}, fmt.Errorf("start session: %w", err)
	}

	rec := &store.Record{
		ID:        s.newID(),
		Date:      date,
		CreatedAt: s.now(),
		Session:   sess,
	}
	s.store.SaveSession(rec)
	s.metrics.RecordSessionStarted()
	logging.Info(s.logger, "game started",
		logging.FieldSessionID, rec.ID,
		logging.FieldDate, date.String(),
		logging.FieldLimit, s.limit,
	)
	return viewOf(rec), nil
}

// Game returns the current view of a session.
func (s *Service) Game(id string) (View, error) {
	rec, ok := s.store.GetSession(id)
	if !ok {
		return View{}, ErrNotFound
	}
	rec.Mu.Lock()
	defer rec.Mu.Unlock()
	return viewOf(rec), nil
}

// Guess submits a team name to the session. Calls for the same session are serialized.
func (s *Service) Guess(id, name string) (GuessResult, error) {
	rec, ok := s.store.GetSession(id)
	if !ok {
		return GuessResult{}, ErrNotFound
	}

	rec.Mu.Lock()
	defer rec.Mu.Unlock()

	entry, err := rec.Session.SubmitGuess(name)
	if err != nil {
		s.metrics.RecordGuess(guessOutcome(err))
		logging.Debug(s.logger, "guess rejected",
			logging.FieldSessionID, id,
			logging.FieldTeam, name,
			logging.ErrAttr(err),
		)
		return GuessResult{}, err
	}
	s.metrics.RecordGuess(metrics.OutcomeAccepted)

	status := rec.Session.Status()
	if status.Terminal() {
		guesses := len(rec.Session.History())
		s.metrics.RecordSessionFinished(string(status), guesses)
		logging.Info(s.logger, "game finished",
			logging.FieldSessionID, id,
			logging.FieldStatus, string(status),
			logging.FieldGuesses, guesses,
		)
	}
	return GuessResult{Entry: entry, Game: viewOf(rec)}, nil
}

// PruneExpired drops sessions older than the configured ttl.
func (s *Service) PruneExpired() int {
	if s.ttl <= 0 {
		return 0
	}
	removed := s.store.PruneSessions(s.now().Add(-s.ttl))
	if removed > 0 {
		logging.Info(s.logger, "expired games pruned", logging.FieldCount, removed)
	}
	return removed
}

func guessOutcome(err error) string {
	switch {
	case errors.Is(err, session.ErrUnknownTeam):
		return metrics.OutcomeUnknownTeam
	case errors.Is(err, session.ErrSessionOver):
		return metrics.OutcomeSessionOver
	default:
		return metrics.OutcomeError
	}
}

// viewOf must be called with rec.Mu held.
func viewOf(rec *store.Record) View {
	sess := rec.Session
	v := View{
		ID:        rec.ID,
		Date:      rec.Date.String(),
		Status:    sess.Status(),
		Limit:     sess.Limit(),
		Remaining: sess.Remaining(),
		Guesses:   sess.History(),
	}
	if sess.Status().Terminal() {
		target := sess.Target()
		v.Target = &target
	}
	return v
}
