package quiz

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Quadmor009/Design-Gym/internal/models"
)

// ErrSessionNotFound is returned when a session id has no live session.
var ErrSessionNotFound = errors.New("session not found")

const sessionTTL = 2 * time.Hour

// Store holds live sessions keyed by id. Each session is single-owner;
// the lock only guards the map itself.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	touched  map[string]time.Time
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		touched:  make(map[string]time.Time),
	}
}

// Create starts a new session from the bank and registers it.
func (st *Store) Create(bank *Bank, quotas map[models.Level]int) (*Session, error) {
	session, err := NewSession(uuid.New().String(), bank, quotas)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.evictStale()
	st.sessions[session.ID] = session
	st.touched[session.ID] = time.Now()
	return session, nil
}

// Get returns the live session for id.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	session, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	st.touched[id] = time.Now()
	return session, nil
}

// Delete discards a session.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
	delete(st.touched, id)
}

// evictStale drops sessions idle past the TTL. Caller holds the lock.
func (st *Store) evictStale() {
	cutoff := time.Now().Add(-sessionTTL)
	for id, at := range st.touched {
		if at.Before(cutoff) {
			delete(st.sessions, id)
			delete(st.touched, id)
		}
	}
}
