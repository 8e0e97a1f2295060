package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/disgoorg/disgo/webhook"

	"github.com/topi314/activity-board/server/activities"
	"github.com/topi314/activity-board/server/board"
)

var (
	//go:embed static
	static embed.FS

	//go:embed templates/*.gohtml
	templates embed.FS
)

const devRoot = "server/"

func New(cfg Config) (*Server, error) {
	if err := cfg.Board.Validate(); err != nil {
		return nil, fmt.Errorf("invalid board config: %w", err)
	}

	var (
		staticFS http.FileSystem
		t        func() *template.Template
	)
	if cfg.Dev {
		root, err := os.OpenRoot(devRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to open dev directory: %w", err)
		}
		staticFS = http.FS(root.FS())
		t = func() *template.Template {
			return template.Must(template.New("templates").
				Funcs(templateFuncs).
				ParseFS(root.FS(), "templates/*.gohtml"))
		}
	} else {
		staticFS = http.FS(static)

		st := template.Must(template.New("templates").
			Funcs(templateFuncs).
			ParseFS(templates, "templates/*.gohtml"),
		)
		t = func() *template.Template {
			return st
		}
	}

	var notifications notificationWebhook
	if cfg.Notifications.Enabled {
		webhookClient, err := webhook.NewWithURL(cfg.Notifications.WebhookURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create notification webhook: %w", err)
		}
		notifications = webhookClient
	}

	ctx, cancel := context.WithCancel(context.Background())

	httpClient := &http.Client{}
	activitiesClient := activities.New(cfg.Activities, httpClient)
	sessions := board.NewStore(cfg.Board.SessionTTL.Std())

	s := &Server{
		Cfg: cfg,
		Server: &http.Server{
			Addr: cfg.Server.Addr,
		},
		HTTPClient: httpClient,
		Activities: activitiesClient,
		Sessions:   sessions,
		StaticFS:   staticFS,
		Templates:  t,
		webhook:    notifications,
		cancel:     cancel,
	}
	s.Board = board.New(cfg.Board, activitiesClient, s)

	go sessions.Run(ctx, cfg.Board.SessionCleanup.Std())

	if cfg.Dev {
		s.ReloadNotifier = NewReloadNotifier()
		go s.watchDevFiles(ctx, devRoot)
	}

	return s, nil
}

type Server struct {
	Cfg            Config
	Server         *http.Server
	HTTPClient     *http.Client
	Activities     *activities.Client
	Board          *board.Board
	Sessions       *board.Store
	StaticFS       http.FileSystem
	Templates      func() *template.Template
	ReloadNotifier *ReloadNotifier

	webhook notificationWebhook
	cancel  context.CancelFunc
}

func (s *Server) Start(handler http.Handler) {
	s.Server.Handler = handler
	go func() {
		if err := s.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", slog.Any("err", err))
		}
	}()
}

func (s *Server) Stop() {
	s.cancel()
	if s.ReloadNotifier != nil {
		s.ReloadNotifier.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", slog.Any("err", err))
	}

	if s.webhook != nil {
		s.webhook.Close(ctx)
	}
}

// PublicURL resolves path against the configured public address.
func (s *Server) PublicURL(path string) string {
	return s.Cfg.Server.PublicURL + path
}
