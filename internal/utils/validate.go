package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"travelrecords/internal/domain"

	"github.com/go-playground/validator/v10"
)

var (
	phoneRE = regexp.MustCompile(`^[+\d][\d\s().-]{6,}$`)
	zipRE   = regexp.MustCompile(`^[\w\s-]{3,12}$`)

	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// MissingFields returns the JSON names of `validate:"required"` fields of v
// that are empty, in declaration order.
func MissingFields(v any) []string {
	err := structValidator().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	return missing
}

// RequireFields fails with INVALID_INPUT when MissingFields(v) is not empty.
func RequireFields(v any) error {
	missing := MissingFields(v)
	if len(missing) == 0 {
		return nil
	}
	return domain.ValidationError{
		Msg:     "missing required fields: " + strings.Join(missing, ", "),
		Details: map[string]any{"missing": missing},
	}
}

// CanonicalEnum matches value against allowed ignoring case, and treating
// '_' and '-' as spaces. It returns the canonical allowed spelling.
func CanonicalEnum(value string, allowed []string) (string, bool) {
	key := enumKey(value)
	if key == "" {
		return "", false
	}
	for _, a := range allowed {
		if enumKey(a) == key {
			return a, true
		}
	}
	return "", false
}

func enumKey(s string) string {
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.ToLower(NormalizeSpace(s))
}

// ParseID validates raw as a positive integer identifier. A JSON number
// with a zero fraction such as 101.0 is accepted as 101.
func ParseID(field, raw string) (domain.ID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, domain.InvalidIDError{Field: field, Msg: "is required"}
	}
	digits := raw
	if i := strings.IndexByte(raw, '.'); i > 0 && i < len(raw)-1 && strings.Trim(raw[i+1:], "0") == "" {
		digits = raw[:i]
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, domain.InvalidIDError{Field: field, Value: raw, Msg: "must be an integer"}
	}
	if n <= 0 {
		return 0, domain.InvalidIDError{Field: field, Value: raw, Msg: "must be > 0"}
	}
	return domain.ID(n), nil
}

// ValidatePhone checks a liberal international phone format.
func ValidatePhone(phone string) error {
	if !phoneRE.MatchString(phone) {
		return domain.ValidationError{
			Field:   "phone_number",
			Msg:     "invalid phone number format",
			Details: map[string]any{"phone_number": phone},
		}
	}
	return nil
}

// ValidateZip checks a liberal postal code format.
func ValidateZip(zip string) error {
	if !zipRE.MatchString(zip) {
		return domain.ValidationError{
			Field:   "zip_code",
			Msg:     "invalid zip/postal code format",
			Details: map[string]any{"zip_code": zip},
		}
	}
	return nil
}
