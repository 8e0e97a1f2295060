package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/topi314/activity-board/server/activities"
)

// Signup registers email for activity. On success the form is reset and the
// activities are fetched again, on failure the list stays as it was.
func (b *Board) Signup(ctx context.Context, s *Session, activity string, email string) Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mapView == nil {
		s.mapView = NewMap(b.cfg.Map)
	}

	message, err := b.api.Signup(ctx, activity, email)
	if err != nil {
		s.form = Form{
			Email:    email,
			Activity: activity,
		}
		b.fail(ctx, s, err, "Failed to sign up. Please try again.", "Error signing up",
			slog.String("activity", activity),
		)
		return b.page(s)
	}

	s.form = Form{}
	b.succeed(ctx, s, message, fmt.Sprintf("`%s` signed up for **%s**", email, activity))
	return b.page(s)
}

// Unregister removes email from activity. The signup form is left alone.
func (b *Board) Unregister(ctx context.Context, s *Session, activity string, email string) Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mapView == nil {
		s.mapView = NewMap(b.cfg.Map)
	}

	message, err := b.api.Unregister(ctx, activity, email)
	if err != nil {
		b.fail(ctx, s, err, "Failed to unregister. Please try again.", "Error unregistering",
			slog.String("activity", activity),
		)
		return b.page(s)
	}

	b.succeed(ctx, s, message, fmt.Sprintf("`%s` unregistered from **%s**", email, activity))
	return b.page(s)
}

func (b *Board) succeed(ctx context.Context, s *Session, message string, notification string) {
	s.status = b.newStatus(message, StatusSuccess)

	if b.notifier != nil {
		b.notifier.SendNotification(ctx, notification)
	}

	snapshot, err := b.api.FetchActivities(ctx)
	b.apply(ctx, s, snapshot, err)
}

// fail shows the server's detail for rejections. Anything else never got an
// answer from the server and is logged for operators. The list is only
// fetched when the session has none to keep.
func (b *Board) fail(ctx context.Context, s *Session, err error, fallback string, diagnostic string, attrs ...any) {
	defer b.ensureLoaded(ctx, s)

	if apiErr, ok := activities.IsRejection(err); ok {
		detail := apiErr.Detail
		if detail == "" {
			detail = rejectedFallback
		}
		s.status = b.newStatus(detail, StatusError)
		return
	}

	slog.ErrorContext(ctx, diagnostic, append(attrs, slog.Any("err", err))...)
	s.status = b.newStatus(fallback, StatusError)
}

func (b *Board) newStatus(message string, kind StatusKind) *Status {
	return &Status{
		Message:   message,
		Kind:      kind,
		ExpiresAt: b.now().Add(b.cfg.StatusTTL.Std()),
	}
}
