package config

import (
	"fmt"
	"time"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty; must be provided via flag or environment.
	DefaultDatabaseURL = ""

	// DefaultLogLevel is used when LOG_LEVEL is unset.
	DefaultLogLevel = "info"

	// DefaultLogFormat selects the JSON handler.
	DefaultLogFormat = "json"

	// DefaultCalendarTimezone is the zone that decides what "today" is.
	DefaultCalendarTimezone = "UTC"

	// DefaultMaxConns and DefaultMinConns size the pgx pool.
	DefaultMaxConns = 10
	DefaultMinConns = 2
)

// LoadLocation resolves the business calendar zone. Empty means UTC.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load calendar timezone %q: %w", name, err)
	}
	return loc, nil
}
