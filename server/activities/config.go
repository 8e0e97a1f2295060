package activities

import (
	"fmt"

	"github.com/topi314/activity-board/internal/xtime"
)

type Config struct {
	BaseURL string         `toml:"base_url"`
	Every   xtime.Duration `toml:"every"`
	Burst   int            `toml:"burst"`
}

func (c Config) String() string {
	return fmt.Sprintf("\n BaseURL: %s\n Every: %s\n Burst: %d",
		c.BaseURL,
		c.Every,
		c.Burst,
	)
}
