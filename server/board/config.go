package board

import (
	"errors"
	"fmt"

	"github.com/topi314/activity-board/internal/xtime"
)

type Config struct {
	StatusTTL      xtime.Duration `toml:"status_ttl"`
	SessionTTL     xtime.Duration `toml:"session_ttl"`
	SessionCleanup xtime.Duration `toml:"session_cleanup"`
	Map            MapConfig      `toml:"map"`
}

// Validate rejects session durations the store cannot run with.
func (c Config) Validate() error {
	if c.SessionTTL <= 0 {
		return errors.New("session_ttl must be positive")
	}
	if c.SessionCleanup <= 0 {
		return errors.New("session_cleanup must be positive")
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("\n StatusTTL: %s\n SessionTTL: %s\n SessionCleanup: %s\n Map: %s",
		c.StatusTTL,
		c.SessionTTL,
		c.SessionCleanup,
		c.Map,
	)
}

type MapConfig struct {
	Lat         float64 `toml:"lat"`
	Lng         float64 `toml:"lng"`
	Zoom        int     `toml:"zoom"`
	FocusZoom   int     `toml:"focus_zoom"`
	TileURL     string  `toml:"tile_url"`
	Attribution string  `toml:"attribution"`
	MaxZoom     int     `toml:"max_zoom"`
}

func (c MapConfig) String() string {
	return fmt.Sprintf("\n  Center: %f,%f\n  Zoom: %d\n  FocusZoom: %d\n  TileURL: %s\n  MaxZoom: %d",
		c.Lat,
		c.Lng,
		c.Zoom,
		c.FocusZoom,
		c.TileURL,
		c.MaxZoom,
	)
}
