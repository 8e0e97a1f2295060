package board

import (
	"sync"
	"time"

	"github.com/topi314/activity-board/server/activities"
)

// Form is what the signup form shows on the next render.
type Form struct {
	Email    string
	Activity string
}

// Session is the UI state of one browser. Every field is guarded by mu, which
// also serializes the actions of the session.
type Session struct {
	ID string

	mu         sync.Mutex
	lastSeen   time.Time
	snapshot   *activities.Snapshot
	loadFailed bool
	mapView    *Map
	selected   string
	status     *Status
	form       Form
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:       id,
		lastSeen: now,
	}
}

func (s *Session) highlight(name string) {
	s.selected = name
	s.mapView.Focus(name)
}
