package xslog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	skipNoisy := func(_ context.Context, record slog.Record) bool {
		return record.Message != "noisy"
	}
	skipDebugKey := func(_ context.Context, record slog.Record) bool {
		_, ok := Attr(record, "debug")
		return !ok
	}
	logger := slog.New(NewFilterHandler(slog.NewTextHandler(buf, nil), skipNoisy, nil, skipDebugKey))

	logger.Info("noisy")
	logger.Info("kept", slog.String("user", "a@x.com"))
	logger.Info("dropped", slog.Bool("debug", true))
	logger.With(slog.String("component", "board")).Info("also kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "msg=kept")
	assert.Contains(t, lines[1], "component=board")
}

func TestAttr(t *testing.T) {
	record := slog.NewRecord(time.Time{}, slog.LevelInfo, "msg", 0)
	record.AddAttrs(slog.String("path", "/static/app.js"), slog.Int("status", 200))

	attr, ok := Attr(record, "status")
	require.True(t, ok)
	assert.Equal(t, int64(200), attr.Value.Int64())

	_, ok = Attr(record, "missing")
	assert.False(t, ok)
}
