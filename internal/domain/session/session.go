package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/EmersonKing1/Teamdle-Project/internal/domain/feedback"
	"github.com/EmersonKing1/Teamdle-Project/internal/domain/teams"
)

var (
	// ErrUnknownTeam is returned when a guess does not resolve to a catalog team.
	ErrUnknownTeam = errors.New("unknown team")
	// ErrSessionOver is returned when a guess is submitted to a finished session.
	ErrSessionOver = errors.New("session is over")
	// ErrInvalidLimit is returned when a session is created with a non-positive guess limit.
	ErrInvalidLimit = errors.New("guess limit must be positive")
	// ErrNoResolver is returned when a session is created without a team resolver.
	ErrNoResolver = errors.New("team resolver required")
)

// Status is the derived lifecycle state of a session.
type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusWon        Status = "WON"
	StatusLost       Status = "LOST"
)

// Terminal reports whether no more guesses are accepted.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Resolver maps a player-entered name to a team, case-insensitively.
type Resolver interface {
	Lookup(name string) (teams.Team, bool)
}

// Entry is one accepted guess and its feedback.
type Entry struct {
	Team     teams.Team      `json:"team"`
	Feedback feedback.Vector `json:"feedback"`
}

// Session holds one player's game against a fixed target.
// It is single-writer; callers serialize SubmitGuess.
type Session struct {
	target   teams.Team
	limit    int
	resolver Resolver
	history  []Entry
	status   Status
}

// New starts an in-progress session with an empty history.
func New(target teams.Team, limit int, resolver Resolver) (*Session, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	if resolver == nil {
		return nil, ErrNoResolver
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		target:   target,
		limit:    limit,
		resolver: resolver,
		history:  make([]Entry, 0, limit),
		status:   StatusInProgress,
	}, nil
}

// SubmitGuess resolves name, scores it against the target and appends the entry.
// On error the session is left untouched.
func (s *Session) SubmitGuess(name string) (Entry, error) {
	if s.status.Terminal() {
		return Entry{}, ErrSessionOver
	}

	name = strings.TrimSpace(name)
	guess, ok := s.resolver.Lookup(name)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownTeam, name)
	}

	fb, err := feedback.Score(guess, s.target)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{Team: guess, Feedback: fb}
	s.history = append(s.history, entry)
	s.status = s.deriveStatus(fb)
	return entry, nil
}

// Win is checked first so a correct final guess is a win.
func (s *Session) deriveStatus(last feedback.Vector) Status {
	if last.Solved() {
		return StatusWon
	}
	if len(s.history) >= s.limit {
		return StatusLost
	}
	return StatusInProgress
}

// Status returns the current state.
func (s *Session) Status() Status { return s.status }

// Target returns the hidden team.
func (s *Session) Target() teams.Team { return s.target }

// Limit returns the guess budget.
func (s *Session) Limit() int { return s.limit }

// Remaining returns how many guesses are left.
func (s *Session) Remaining() int {
	if s.status.Terminal() {
		return 0
	}
	return s.limit - len(s.history)
}

// History returns a copy of the accepted guesses in submission order.
func (s *Session) History() []Entry {
	out := make([]Entry, len(s.history))
	copy(out, s.history)
	return out
}
