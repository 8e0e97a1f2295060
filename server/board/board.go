package board

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/topi314/activity-board/server/activities"
)

const (
	loadFailedMessage = "Failed to load activities. Please try again later."
	rejectedFallback  = "An error occurred"
)

// API is the part of the activities server the board talks to.
type API interface {
	FetchActivities(ctx context.Context) (*activities.Snapshot, error)
	Signup(ctx context.Context, activity string, email string) (string, error)
	Unregister(ctx context.Context, activity string, email string) (string, error)
}

type Notifier interface {
	SendNotification(ctx context.Context, message string)
}

func New(cfg Config, api API, notifier Notifier) *Board {
	return &Board{
		cfg:      cfg,
		api:      api,
		notifier: notifier,
		now:      time.Now,
	}
}

// Board runs the user actions against a Session and renders the result.
type Board struct {
	cfg      Config
	api      API
	notifier Notifier
	loads    singleflight.Group
	now      func() time.Time
}

// Page is everything the index template renders.
type Page struct {
	Cards      []Card
	Options    []string
	LoadFailed bool
	LoadError  string
	Map        MapView
	Selected   string
	Status     *Status
	// StatusHideAfter is the remaining display time of Status in milliseconds.
	StatusHideAfter int64
	Form            Form
}

// Load is a fresh page load. It resets the session and fetches the activities,
// sharing the request with concurrent page loads.
func (b *Board) Load(ctx context.Context, s *Session) Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = nil
	s.loadFailed = false
	s.mapView = NewMap(b.cfg.Map)
	s.selected = ""
	s.status = nil
	s.form = Form{}

	v, err, shared := b.loads.Do("activities", func() (any, error) {
		return b.api.FetchActivities(context.WithoutCancel(ctx))
	})
	if shared {
		slog.DebugContext(ctx, "Shared activities fetch with concurrent page load")
	}
	var snapshot *activities.Snapshot
	if err == nil {
		snapshot = v.(*activities.Snapshot)
	}
	b.apply(ctx, s, snapshot, err)

	return b.page(s)
}

// Select highlights an activity in the list and on the map. It renders from the
// session snapshot and only fetches when the session never loaded one.
func (b *Board) Select(ctx context.Context, s *Session, name string) Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mapView == nil {
		s.mapView = NewMap(b.cfg.Map)
	}
	b.ensureLoaded(ctx, s)

	s.highlight(name)
	return b.page(s)
}

// Render shows the session as it is.
func (b *Board) Render(s *Session) Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mapView == nil {
		s.mapView = NewMap(b.cfg.Map)
	}
	return b.page(s)
}

// ensureLoaded fetches the activities for a session that never loaded them,
// e.g. a fresh session whose first request is not a page load.
func (b *Board) ensureLoaded(ctx context.Context, s *Session) {
	if s.snapshot != nil || s.loadFailed {
		return
	}
	snapshot, err := b.api.FetchActivities(ctx)
	b.apply(ctx, s, snapshot, err)
}

func (b *Board) apply(ctx context.Context, s *Session, snapshot *activities.Snapshot, err error) {
	if err != nil {
		slog.ErrorContext(ctx, "Error fetching activities", slog.Any("err", err))
		s.snapshot = nil
		s.loadFailed = true
		return
	}

	s.snapshot = snapshot
	s.loadFailed = false
	s.selected = ""
	s.mapView.Plot(snapshot)
}

func (b *Board) page(s *Session) Page {
	now := b.now()

	p := Page{
		LoadFailed: s.loadFailed,
		Map:        s.mapView.View(),
		Selected:   s.selected,
		Form:       s.form,
	}
	if s.loadFailed {
		p.LoadError = loadFailedMessage
	} else {
		p.Cards = Cards(s.snapshot, s.selected)
		p.Options = Options(s.snapshot)
	}

	if s.status.Visible(now) {
		status := *s.status
		p.Status = &status
		p.StatusHideAfter = s.status.ExpiresAt.Sub(now).Milliseconds()
	}

	return p
}
