package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"
)

const devWatcherInterval = 500 * time.Millisecond

// watchDevFiles polls root and tells the reload notifier whenever a template or
// static file changes. It returns when ctx is done.
func (s *Server) watchDevFiles(ctx context.Context, root string) {
	last, err := fingerprint(root)
	if err != nil {
		slog.ErrorContext(ctx, "Dev watcher failed to read directory", slog.String("root", root), slog.Any("err", err))
	}

	ticker := time.NewTicker(devWatcherInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current, err := fingerprint(root)
			if err != nil {
				slog.ErrorContext(ctx, "Dev watcher failed to scan directory", slog.String("root", root), slog.Any("err", err))
				continue
			}
			if current == last {
				continue
			}
			last = current
			slog.DebugContext(ctx, "Dev files changed, reloading browsers")
			s.ReloadNotifier.Notify()
		}
	}
}

// fingerprint hashes path, size and modification time of every template and
// static file below root.
func fingerprint(root string) (string, error) {
	hasher := sha256.New()

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".gohtml", ".js", ".css", ".svg", ".png":
		default:
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		relative, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(hasher, "%s:%d:%d;", relative, info.ModTime().UnixNano(), info.Size())
		return err
	})
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
