package utils

import (
	"strings"
	"time"

	"travelrecords/internal/domain"
)

const (
	layoutDate        = "2006-01-02"
	layoutDateHM      = "2006-01-02T15:04"
	layoutDateTime    = "2006-01-02T15:04:05"
)

// Clock returns the current time. Services take one so tests can pin "today".
type Clock func() time.Time

// SystemClock returns a Clock reading the wall clock in loc.
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return func() time.Time { return time.Now().In(loc) }
}

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// FlightDate is a parsed YYYY-MM-DD[THH:MM[:SS]][Z] value.
type FlightDate struct {
	wall    time.Time
	hasTime bool
	utc     bool
}

// ParseFlightDate parses the accepted ISO-8601 subset. Inputs without a Z
// suffix are kept as wall-clock values and read in the clock's location.
// Fractional seconds are rejected.
func ParseFlightDate(s string) (FlightDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FlightDate{}, domain.ValidationError{Field: "date", Msg: "is required"}
	}
	utc := false
	if strings.HasSuffix(s, "Z") || strings.HasSuffix(s, "z") {
		utc = true
		s = s[:len(s)-1]
	}
	if !strings.Contains(s, "T") {
		if utc {
			return FlightDate{}, invalidDate(s)
		}
		t, err := time.ParseInLocation(layoutDate, s, time.UTC)
		if err != nil {
			return FlightDate{}, invalidDate(s)
		}
		return FlightDate{wall: t}, nil
	}
	for _, layout := range []string{layoutDateTime, layoutDateHM} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return FlightDate{wall: t, hasTime: true, utc: utc}, nil
		}
	}
	return FlightDate{}, invalidDate(s)
}

func invalidDate(s string) error {
	return domain.ValidationError{
		Field:   "date",
		Msg:     "must be ISO-8601 (YYYY-MM-DD[THH:MM[:SS]][Z])",
		Details: map[string]any{"date": s},
	}
}

// String returns the canonical stored form.
func (d FlightDate) String() string {
	switch {
	case !d.hasTime:
		return d.wall.Format(layoutDate)
	case d.utc:
		return d.wall.Format(layoutDateTime) + "Z"
	default:
		return d.wall.Format(layoutDateTime)
	}
}

// In returns the instant d denotes when wall-clock values are read in loc.
func (d FlightDate) In(loc *time.Location) time.Time {
	if d.utc {
		return d.wall.In(loc)
	}
	y, m, day := d.wall.Date()
	h, mi, sec := d.wall.Clock()
	return time.Date(y, m, day, h, mi, sec, d.wall.Nanosecond(), loc)
}

// IsTodayOrFuture reports whether the calendar day of d is on or after the
// calendar day of now, both taken in now's location.
func IsTodayOrFuture(d FlightDate, now time.Time) bool {
	t := d.In(now.Location())
	ty, tm, td := t.Date()
	ny, nm, nd := now.Date()
	if ty != ny {
		return ty > ny
	}
	if tm != nm {
		return tm > nm
	}
	return td >= nd
}

// FormatDate formats time to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}
