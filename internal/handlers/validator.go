package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Accepted load_ts layouts. Fractional seconds are accepted by all of them when parsing.
var loadTSLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// ParseLoadTS parses a load timestamp. Values without a zone are taken as UTC.
func ParseLoadTS(s string) (time.Time, error) {
	for _, layout := range loadTSLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", s)
}

// loadTSStoredLayout matches the zone-less UTC timestamps of the upstream feed, so rows
// written through the API and through the subscriber share one dedup key form.
const loadTSStoredLayout = "2006-01-02T15:04:05.999999999"

// FormatLoadTS renders t in UTC without zone suffix; fractional seconds only when non-zero.
func FormatLoadTS(t time.Time) string {
	return t.UTC().Format(loadTSStoredLayout)
}

// NewValidator returns a validator reporting JSON field names, with the loadts rule registered.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("loadts", func(fl validator.FieldLevel) bool {
		_, err := ParseLoadTS(fl.Field().String())
		return err == nil
	})
	return v
}

// validationMessages flattens validator errors into "field: reason" lines.
func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s: field required", fe.Field()))
		case "loadts":
			msgs = append(msgs, fmt.Sprintf("%s: input should be a valid datetime", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed on %s", fe.Field(), fe.Tag()))
		}
	}
	return msgs
}
