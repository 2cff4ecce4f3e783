package calendar

import (
	"strings"
	"time"

	"github.com/interviewdost/backend/pkg/errors"
)

const DateLayout = "2006-01-02"

var layouts = [...]string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// Day truncates ts to midnight UTC of the calendar day ts falls on in UTC.
func Day(ts time.Time) time.Time {
	y, m, d := ts.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay accepts a plain date or a date-time and returns its day in UTC.
// Date-times without an offset are read as UTC.
func ParseDay(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.Error("empty date")
	}

	for _, layout := range layouts {
		ts, err := time.Parse(layout, raw)
		if err == nil {
			return Day(ts), nil
		}
	}

	return time.Time{}, errors.Errorf("malformed date %q", raw)
}

// DayRange returns [day, nextDay) bounds for the day ts falls on.
func DayRange(ts time.Time) (time.Time, time.Time) {
	begin := Day(ts)
	return begin, beginningOfTomorrow(begin)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// Days returns n consecutive days starting from the day of begin.
func Days(begin time.Time, n int) []time.Time {
	days := make([]time.Time, 0, max(n, 0))
	it := Day(begin)
	for i := 0; i < n; i++ {
		days = append(days, it)
		it = beginningOfTomorrow(it)
	}
	return days
}

func beginningOfTomorrow(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day()+1, 0, 0, 0, 0, ts.Location())
}
