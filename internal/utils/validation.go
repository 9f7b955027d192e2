package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseIntervalFlag parses a user-supplied sync interval. It accepts Go
// duration syntax ("45s", "2m") and, for compatibility with stored
// preferences, a bare integer meaning milliseconds.
// Returns an error for anything non-positive or unparseable.
func ParseIntervalFlag(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("interval must not be empty")
	}

	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		if ms <= 0 {
			return 0, fmt.Errorf("interval must be positive, got %dms", ms)
		}
		return time.Duration(ms) * time.Millisecond, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid interval '%s': use a duration like 45s or 2m, or milliseconds", value)
	}
	if d <= 0 {
		return 0, fmt.Errorf("interval must be positive, got %v", d)
	}
	return d, nil
}
