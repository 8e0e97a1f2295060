package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
)

type notificationWebhook interface {
	CreateContent(content string, opts ...rest.RequestOpt) (*discord.Message, error)
	Close(ctx context.Context)
}

// SendNotification posts message to the configured Discord webhook without
// blocking the caller. It is a no-op when notifications are disabled.
func (s *Server) SendNotification(ctx context.Context, message string) {
	if s.webhook == nil {
		return
	}

	content := message + " at " + discord.NewTimestamp(discord.TimestampStyleShortDateTime, time.Now()).String()

	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()

		if _, err := s.webhook.CreateContent(content, rest.WithCtx(ctx)); err != nil {
			slog.ErrorContext(ctx, "Failed to send notification", slog.Any("err", err))
		}
	}()
}
