package web

import (
	"log/slog"
	"net/http"

	"github.com/topi314/activity-board/server/board"
)

type IndexVars struct {
	board.Page
	Dev bool
}

// Index is a page load: the session starts over with a fresh fetch.
func (h *handler) Index(w http.ResponseWriter, r *http.Request) {
	page := h.Board.Load(r.Context(), getSession(r))
	h.renderIndex(w, r, page)
}

// Select is reached by clicking an activity card or a map marker.
func (h *handler) Select(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	activity := r.PathValue("activity")
	slog.DebugContext(ctx, "Selecting activity", slog.String("activity", activity))

	page := h.Board.Select(ctx, getSession(r), activity)
	h.renderIndex(w, r, page)
}

func (h *handler) renderIndex(w http.ResponseWriter, r *http.Request, page board.Page) {
	ctx := r.Context()

	if err := h.Templates().ExecuteTemplate(w, "index.gohtml", IndexVars{
		Page: page,
		Dev:  h.Cfg.Dev,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render index template", slog.String("error", err.Error()))
	}
}
