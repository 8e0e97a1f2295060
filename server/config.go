package server

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/topi314/activity-board/internal/xtime"
	"github.com/topi314/activity-board/server/activities"
	"github.com/topi314/activity-board/server/board"
)

func LoadConfig(cfgPath string) (Config, error) {
	file, err := os.Open(cfgPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	cfg := DefaultConfig()
	if _, err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config file: %w", err)
	}
	if err = cfg.Board.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid board config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig is what LoadConfig starts from before decoding the file.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:     slog.LevelInfo,
			Format:    LogFormatText,
			AddSource: false,
		},
		Server: ServerConfig{
			Addr:      ":8086",
			PublicURL: "http://localhost:8086",
		},
		Activities: activities.Config{
			BaseURL: "http://localhost:8000",
			Every:   xtime.Duration(100 * time.Millisecond),
			Burst:   20,
		},
		Board: board.Config{
			StatusTTL:      xtime.Duration(5 * time.Second),
			SessionTTL:     xtime.Duration(12 * time.Hour),
			SessionCleanup: xtime.Duration(10 * time.Minute),
			Map: board.MapConfig{
				Lat:         42.3601,
				Lng:         -71.0589,
				Zoom:        14,
				FocusZoom:   16,
				TileURL:     "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
				Attribution: `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`,
				MaxZoom:     19,
			},
		},
	}
}

type Config struct {
	Dev           bool                `toml:"dev"`
	Log           LogConfig           `toml:"log"`
	Server        ServerConfig        `toml:"server"`
	Activities    activities.Config   `toml:"activities"`
	Board         board.Config        `toml:"board"`
	Notifications NotificationsConfig `toml:"notifications"`
}

func (c Config) String() string {
	return fmt.Sprintf("Dev: %t\nLog: %s\nServer: %s\nActivities: %s\nBoard: %s\nNotifications: %s",
		c.Dev,
		c.Log,
		c.Server,
		c.Activities,
		c.Board,
		c.Notifications,
	)
}

type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    LogFormat  `toml:"format"`
	AddSource bool       `toml:"add_source"`
	// StaticAccess keeps access log records of /static/ requests.
	StaticAccess bool `toml:"static_access"`
}

func (c LogConfig) String() string {
	return fmt.Sprintf("\n Level: %s\n Format: %s\n AddSource: %t\n StaticAccess: %t",
		c.Level,
		c.Format,
		c.AddSource,
		c.StaticAccess,
	)
}

type ServerConfig struct {
	Addr      string `toml:"addr"`
	PublicURL string `toml:"public_url"`
}

func (c ServerConfig) String() string {
	return fmt.Sprintf("\n Address: %s\n PublicURL: %s",
		c.Addr,
		c.PublicURL,
	)
}

type NotificationsConfig struct {
	Enabled    bool   `toml:"enabled"`
	WebhookURL string `toml:"webhook_url"`
}

func (c NotificationsConfig) String() string {
	webhookURL := c.WebhookURL
	if webhookURL != "" {
		webhookURL = "***"
	}
	return fmt.Sprintf("\n Enabled: %t\n WebhookURL: %s",
		c.Enabled,
		webhookURL,
	)
}
