package web

import (
	"log/slog"
	"net/http"
)

func (h *handler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	activity := r.FormValue("activity")
	email := r.FormValue("email")

	slog.InfoContext(ctx, "Signing up for activity", slog.String("activity", activity))

	page := h.Board.Signup(ctx, getSession(r), activity, email)
	h.renderIndex(w, r, page)
}

func (h *handler) Unregister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	activity := r.FormValue("activity")
	email := r.FormValue("email")

	slog.InfoContext(ctx, "Unregistering from activity", slog.String("activity", activity))

	page := h.Board.Unregister(ctx, getSession(r), activity, email)
	h.renderIndex(w, r, page)
}
