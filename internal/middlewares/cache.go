package middlewares

import (
	"fmt"
	"net/http"
	"time"
)

// Cache lets browsers keep responses for maxAge and serve them stale while
// they revalidate.
func Cache(maxAge time.Duration) func(http.Handler) http.Handler {
	value := fmt.Sprintf("stale-while-revalidate, max-age=%d", int(maxAge.Seconds()))
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", value)
			handler.ServeHTTP(w, r)
		})
	}
}

// NoStore marks responses that depend on the browser session.
func NoStore(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		handler.ServeHTTP(w, r)
	})
}
