package web

import (
	"log/slog"
	"net/http"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"

	"github.com/topi314/activity-board/internal/xio"
	"github.com/topi314/activity-board/server/board"
)

// ActivityQR renders a PNG QR code pointing at the selection of an activity.
func (h *handler) ActivityQR(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	activity := r.PathValue("activity")

	qr, err := qrcode.New(h.PublicURL(board.SelectURL(activity)))
	if err != nil {
		slog.ErrorContext(ctx, "Failed to create qrcode", slog.String("error", err.Error()))
		http.Error(w, "Failed to create qrcode", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	out := xio.NewResponseWriteCloser(w)
	qrW := standard.NewWithWriter(out,
		standard.WithBgTransparent(),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	)
	defer func() {
		_ = qrW.Close()
	}()

	if err = qr.Save(qrW); err != nil {
		slog.ErrorContext(ctx, "Failed to save qrcode", slog.String("error", err.Error()))
		return
	}
	slog.DebugContext(ctx, "Rendered activity qrcode", slog.String("activity", activity), slog.Int64("bytes", out.Written()))
}
