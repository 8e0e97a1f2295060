package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/topi314/activity-board/internal/middlewares"
	"github.com/topi314/activity-board/server"
)

type handler struct {
	*server.Server
}

func Routes(srv *server.Server) http.Handler {
	h := &handler{
		Server: srv,
	}

	cache := middlewares.Cache(time.Hour)

	var fs http.Handler = http.FileServer(h.StaticFS)
	if !srv.Cfg.Dev {
		fs = cache(fs)
	}

	mux := http.NewServeMux()
	mux.Handle("GET /{$}", middlewares.NoStore(h.withSession(h.Index)))
	mux.Handle("GET /select/{activity}", middlewares.NoStore(h.withSession(h.Select)))

	mux.Handle("POST /signup", middlewares.NoStore(h.withSession(h.Signup)))
	mux.Handle("POST /unregister", middlewares.NoStore(h.withSession(h.Unregister)))

	mux.Handle("GET /activities/{activity}/qr", cache(http.HandlerFunc(h.ActivityQR)))

	mux.Handle("GET  /static/", fs)
	mux.Handle("HEAD /static/", fs)

	if srv.Cfg.Dev {
		mux.HandleFunc("GET /dev/reload", h.DevReload)
	}

	mux.HandleFunc("/", h.NotFound)

	return accessLog(mux)
}

func (h *handler) NotFound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	w.WriteHeader(http.StatusNotFound)
	if err := h.Templates().ExecuteTemplate(w, "not_found.gohtml", nil); err != nil {
		slog.ErrorContext(ctx, "Failed to render not found template", slog.String("error", err.Error()))
	}
}

// DevReload streams server-sent events telling the browser to reload whenever
// a template or static file changes on disk.
func (h *handler) DevReload(w http.ResponseWriter, r *http.Request) {
	if h.ReloadNotifier == nil {
		http.NotFound(w, r)
		return
	}

	rc := http.NewResponseController(w)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	cancel, ch := h.ReloadNotifier.Subscribe()
	defer cancel()
	if ch == nil {
		w.WriteHeader(http.StatusGone)
		return
	}

	if _, err := fmt.Fprint(w, ": connected\n\n"); err != nil {
		return
	}
	if err := rc.Flush(); err != nil {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			if _, err := fmt.Fprint(w, "data: reload\n\n"); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}
