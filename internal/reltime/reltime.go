// Package reltime converts publish strings such as "3 days ago" into
// absolute timestamps.
package reltime

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var relativeRE = regexp.MustCompile(`(?i)(\d+)\s+(second|minute|hour|day|week|month|year)s?\s+ago`)

// Months and years are fixed-length so that "n units ago" is always exactly
// n*unit before now.
var units = map[string]time.Duration{
	"second": time.Second,
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    24 * time.Hour,
	"week":   7 * 24 * time.Hour,
	"month":  30 * 24 * time.Hour,
	"year":   365 * 24 * time.Hour,
}

// Parse resolves input relative to now. It reports false when the input is
// neither a relative phrase nor a parseable date; callers treat that as an
// unknown publish date.
func Parse(input string, now time.Time) (time.Time, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, false
	}

	if m := relativeRE.FindStringSubmatch(input); m != nil {
		amount, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, false
		}
		unit := units[strings.ToLower(m[2])]
		// Ages past what a Duration can hold would wrap into the future.
		if int64(amount) > math.MaxInt64/int64(unit) {
			return time.Time{}, false
		}
		return now.Add(-time.Duration(amount) * unit).UTC(), true
	}

	t, err := dateparse.ParseIn(input, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// ParsePtr is Parse returning nil for unknown dates.
func ParsePtr(input string, now time.Time) *time.Time {
	t, ok := Parse(input, now)
	if !ok {
		return nil
	}
	return &t
}

// ISO formats t as an ISO-8601 timestamp with millisecond precision.
func ISO(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
