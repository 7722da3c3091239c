package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/anicoll/tariff-simulator/internal/pkg/model"
)

const (
	dayFirstLayout  = "2/1/2006"
	yearFirstLayout = "2006/1/2"
)

var (
	yearFirstPattern = regexp.MustCompile(`^\d{4}[-/.]`)
	// H:MM, HH:MM, HH:MM:SS and HH:MM:SS.fff
	clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2})(?:\.\d*)?)?$`)
)

// dateLayout infers the date order from a sample: a leading four digit year
// means year first, anything else is read day first.
func dateLayout(sample string) string {
	if yearFirstPattern.MatchString(strings.TrimSpace(sample)) {
		return yearFirstLayout
	}
	return dayFirstLayout
}

func normaliseDate(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "/")
	return strings.ReplaceAll(s, "-", "/")
}

// parseClock returns the offset from midnight of a wall clock reading. Meter
// exports close the day with 24:00, which becomes midnight of the next day.
func parseClock(s string) (time.Duration, error) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, model.ErrMalformedTimestamp
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second := 0
	if m[3] != "" {
		second, _ = strconv.Atoi(m[3])
	}

	if hour == 24 && minute == 0 && second == 0 {
		return 24 * time.Hour, nil
	}
	if hour > 23 || minute > 59 || second > 59 {
		return 0, model.ErrMalformedTimestamp
	}
	return time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second, nil
}

// parseTimestamp combines a date and a clock reading. Timestamps are wall
// clock readings and are kept in UTC so no daylight saving shift applies.
func parseTimestamp(date, clock, layout string) (time.Time, error) {
	day, err := time.ParseInLocation(layout, normaliseDate(date), time.UTC)
	if err != nil {
		return time.Time{}, model.ErrMalformedTimestamp
	}
	offset, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(offset), nil
}
