package web

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/topi314/activity-board/internal/xslog"
)

const accessLogMessage = "Handled request"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		slog.InfoContext(r.Context(), accessLogMessage,
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

// SkipStaticAccess drops access log records of static assets.
func SkipStaticAccess(_ context.Context, record slog.Record) bool {
	if record.Message != accessLogMessage {
		return true
	}

	path, ok := xslog.Attr(record, "path")
	return !ok || !strings.HasPrefix(path.Value.String(), "/static/")
}
