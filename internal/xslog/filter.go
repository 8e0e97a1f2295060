package xslog

import (
	"context"
	"log/slog"
)

var _ slog.Handler = (*FilterHandler)(nil)

// FilterFunc reports whether a record should be handled.
type FilterFunc func(ctx context.Context, record slog.Record) bool

// NewFilterHandler drops every record that one of filters rejects before it
// reaches handler.
func NewFilterHandler(handler slog.Handler, filters ...FilterFunc) *FilterHandler {
	return &FilterHandler{handler: handler, filters: filters}
}

type FilterHandler struct {
	handler slog.Handler
	filters []FilterFunc
}

func (f *FilterHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return f.handler.Enabled(ctx, level)
}

func (f *FilterHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, filter := range f.filters {
		if filter != nil && !filter(ctx, record) {
			return nil
		}
	}
	return f.handler.Handle(ctx, record)
}

func (f *FilterHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewFilterHandler(f.handler.WithAttrs(attrs), f.filters...)
}

func (f *FilterHandler) WithGroup(name string) slog.Handler {
	return NewFilterHandler(f.handler.WithGroup(name), f.filters...)
}

// Attr returns the first top level attribute of record named key.
func Attr(record slog.Record, key string) (slog.Attr, bool) {
	var (
		found slog.Attr
		ok    bool
	)
	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == key {
			found, ok = attr, true
			return false
		}
		return true
	})
	return found, ok
}
