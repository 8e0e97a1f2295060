package xtime

import (
	"errors"
	"fmt"
	"time"
)

var ErrNegativeDuration = errors.New("duration must not be negative")

// Duration is a time.Duration that reads and writes itself as text, so config
// files can hold values like "5s" or "12h".
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return d.Std().String()
}

func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	if duration < 0 {
		return fmt.Errorf("invalid duration %q: %w", text, ErrNegativeDuration)
	}
	*d = Duration(duration)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
