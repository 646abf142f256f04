package config

import (
	"fmt"
	"strings"
	"time"
)

// DefaultPollInterval is the fixed delay between polls.
const DefaultPollInterval = 600 * time.Second

func ParseDurationField(path, raw string) (time.Duration, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", path, raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: duration must be >= 0", path)
	}
	return d, nil
}

func ParseDurationOrDefault(path, raw string, def time.Duration) (time.Duration, error) {
	d, err := ParseDurationField(path, raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return def, nil
	}
	return d, nil
}

// PollInterval returns poll.interval, which must be at least one second.
func PollInterval(cfg *Config) (time.Duration, error) {
	d, err := ParseDurationOrDefault("poll.interval", cfg.Poll.Interval, DefaultPollInterval)
	if err != nil {
		return 0, err
	}
	if d < time.Second {
		return 0, fmt.Errorf("poll.interval: must be >= 1s, got %s", d)
	}
	return d, nil
}
