package transformer

import (
	"strings"
	"time"
)

// Layouts per element type.
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = "2006-01-02T15:04"
)

// DateTime maps time.Time values to formatted strings. The layout follows
// the target type unless Layout is set; Location defaults to UTC.
type DateTime struct {
	Layout   string
	Location *time.Location
}

func (d DateTime) layout(target Target) string {
	if d.Layout != "" {
		return d.Layout
	}

	if target == nil {
		return time.RFC3339
	}

	switch target.Type() {
	case "date":
		return DateLayout
	case "time":
		return TimeLayout
	case "datetime", "datetime-local":
		return DateTimeLayout
	}

	return time.RFC3339
}

func (d DateTime) location() *time.Location {
	if d.Location != nil {
		return d.Location
	}

	return time.UTC
}

// ToForm formats time.Time and *time.Time values; strings pass through.
func (d DateTime) ToForm(value any, target Target) any {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return nil
		}

		return v.In(d.location()).Format(d.layout(target))
	case *time.Time:
		if v == nil {
			return nil
		}

		return d.ToForm(*v, target)
	}

	return value
}

// FromForm parses the submitted string. Empty or unparsable input gives nil.
func (d DateTime) FromForm(value any, target Target) any {
	switch v := value.(type) {
	case time.Time:
		return v
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return nil
		}

		for _, layout := range []string{d.layout(target), time.RFC3339, "2006-01-02T15:04:05"} {
			if t, err := time.ParseInLocation(layout, v, d.location()); err == nil {
				return t
			}
		}
	}

	return nil
}
