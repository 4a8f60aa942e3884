package helpers

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDuration parses a duration string, returns the default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return t, nil
}

// FormatDate renders a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidClockTime reports whether value is a valid HH:MM clock time.
func ValidClockTime(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}
