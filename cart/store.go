package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one browsing context: its cart plus the prefill values taken
// from the ordering-entry query parameters (table, name).
type Session struct {
	ID           string
	TableNumber  string
	CustomerName string
	Cart         *Cart

	// Serializes checkout per session; the server-side counterpart of
	// the disabled submit button.
	CheckoutMu sync.Mutex

	expiresAt time.Time
}

// Store keeps sessions in memory with a sliding TTL. Expired entries are
// dropped on access and by a background janitor.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	done     chan struct{}
}

func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *Store) Create(tableNumber, customerName string) *Session {
	sess := &Session{
		ID:           uuid.NewString(),
		TableNumber:  tableNumber,
		CustomerName: customerName,
		Cart:         New(),
		expiresAt:    time.Now().Add(s.ttl),
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session and refreshes its TTL. Expired sessions are
// treated as absent.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, id)
		return nil, false
	}
	sess.expiresAt = time.Now().Add(s.ttl)
	return sess, true
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) Close() {
	close(s.done)
}

func (s *Store) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, sess := range s.sessions {
				if now.After(sess.expiresAt) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
