package web

import (
	"context"
	"net/http"

	"github.com/topi314/activity-board/server/board"
)

const sessionCookie = "session"

type sessionKey struct{}

var sessionContextKey = &sessionKey{}

// withSession attaches the board session of the browser to a page request and
// hands out a cookie when a new one was created. Only page routes use it, so
// assets, QR codes and unknown paths never create sessions.
func (h *handler) withSession(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if cookie, err := r.Cookie(sessionCookie); err == nil {
			id = cookie.Value
		}

		session, created := h.Sessions.Get(id)
		if created {
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    session.ID,
				Path:     "/",
				MaxAge:   int(h.Cfg.Board.SessionTTL.Std().Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionContextKey, session)))
	})
}

func getSession(r *http.Request) *board.Session {
	return r.Context().Value(sessionContextKey).(*board.Session)
}
