package engine

import (
	"strconv"
	"time"
)

// DefaultThrottleWindow is the minimum spacing between two applied
// generations on the same board. It sits below the default poll interval so
// evenly spaced ticks are never swallowed.
const DefaultThrottleWindow = 150 * time.Millisecond

// Config holds engine tunables.
type Config struct {
	ThrottleWindow time.Duration
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{ThrottleWindow: DefaultThrottleWindow}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Durations accept Go syntax ("150ms") or a bare millisecond count.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["throttle"]; ok {
		if d, ok := ParseDuration(v); ok && d >= 0 {
			c.ThrottleWindow = d
		}
	}
	return c
}

// ParseDuration accepts time.ParseDuration syntax or an integer number of
// milliseconds.
func ParseDuration(v string) (time.Duration, bool) {
	if d, err := time.ParseDuration(v); err == nil {
		return d, true
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond, true
	}
	return 0, false
}
