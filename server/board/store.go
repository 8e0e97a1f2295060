package board

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps sessions in memory and drops them once idle for longer than ttl.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the session with id or a new one when id is unknown or expired.
// created reports whether a new session was made.
func (s *Store) Get(id string) (session *Session, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if existing, ok := s.sessions[id]; ok && now.Sub(existing.lastSeen) < s.ttl {
		existing.lastSeen = now
		return existing, false
	}
	delete(s.sessions, id)

	session = newSession(uuid.NewString(), now)
	s.sessions[session.ID] = session
	return session, true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Cleanup removes idle sessions and returns how many were removed.
func (s *Store) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var removed int
	for id, session := range s.sessions {
		if now.Sub(session.lastSeen) >= s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run calls Cleanup every interval until ctx is done. A non-positive interval
// disables the cleanup.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		slog.WarnContext(ctx, "Session cleanup disabled", slog.Duration("interval", interval))
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Cleanup(); removed > 0 {
				slog.DebugContext(ctx, "Removed idle sessions", slog.Int("count", removed))
			}
		}
	}
}
