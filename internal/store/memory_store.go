package store

import (
	"sync"
	"time"

	"github.com/EmersonKing1/Teamdle-Project/internal/domain/session"
	"github.com/EmersonKing1/Teamdle-Project/internal/timeutil"
)

// Record is a stored game session. Mu serializes access to Session, which is
// not safe for concurrent use on its own.
type Record struct {
	ID        string
	Date      timeutil.Date
	CreatedAt time.Time

	Mu      sync.Mutex
	Session *session.Session
}

// MemoryStore keeps game sessions in process memory, keyed by ID.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Record
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Record),
	}
}

// SaveSession adds or replaces a record.
func (s *MemoryStore) SaveSession(rec *Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[rec.ID] = rec
}

// GetSession retrieves a record by ID.
func (s *MemoryStore) GetSession(id string) (*Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.sessions[id]
	return rec, ok
}

// CountSessions returns the number of stored records.
func (s *MemoryStore) CountSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

// PruneSessions drops records created before cutoff and returns how many were removed.
func (s *MemoryStore) PruneSessions(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, rec := range s.sessions {
		if rec.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
