package services

import (
	"strings"
	"time"

	"travelrecords/internal/domain"
	"travelrecords/internal/domain/models"
	"travelrecords/internal/utils"
)

func clockNow(c utils.Clock) time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// checkBodyID rejects a body id that differs from the path id.
func checkBodyID(pathID domain.ID, body *models.Stringish) error {
	if body == nil {
		return nil
	}
	id, err := utils.ParseID("id", body.String())
	if err != nil {
		return err
	}
	if id != pathID {
		return domain.ImmutableIDError{Field: "id"}
	}
	return nil
}

func invalidEnum(field, value string, allowed []string) error {
	return domain.ValidationError{
		Field:   field,
		Msg:     "must be one of: " + strings.Join(allowed, ", "),
		Details: map[string]any{field: value, "allowed": allowed},
	}
}

type namedField struct {
	name  string
	value *string
}

// rejectBlanked fails when a present required field is empty after trimming.
func rejectBlanked(fields ...namedField) error {
	var blank []string
	for _, f := range fields {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			blank = append(blank, f.name)
		}
	}
	if len(blank) == 0 {
		return nil
	}
	return domain.ValidationError{
		Msg:     "required fields cannot be empty: " + strings.Join(blank, ", "),
		Details: map[string]any{"missing": blank},
	}
}

func setIfPresent(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

// canonicalFilter resolves an enum filter to its stored spelling. Unknown
// values are returned as given, which then match nothing.
func canonicalFilter(raw string, allowed []string) string {
	if v, ok := utils.CanonicalEnum(raw, allowed); ok {
		return v
	}
	return strings.TrimSpace(raw)
}

// countUpcoming counts flights whose date falls on today or later.
// Rows with an unparseable date are skipped.
func countUpcoming(flights []models.Flight, now time.Time) int {
	n := 0
	for _, f := range flights {
		d, err := utils.ParseFlightDate(f.Date)
		if err != nil {
			continue
		}
		if utils.IsTodayOrFuture(d, now) {
			n++
		}
	}
	return n
}
