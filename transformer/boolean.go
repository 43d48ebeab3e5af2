package transformer

import "strings"

// DefaultOnValue is the value browsers submit for a checked checkbox without
// an explicit value attribute.
const DefaultOnValue = "on"

// Boolean maps a checkbox between its submitted value and a bool.
// With a custom OnValue the values are passed through unchanged, the domain
// then receives the configured value itself.
type Boolean struct {
	OnValue string
}

func (b Boolean) custom() bool {
	return b.OnValue != "" && b.OnValue != DefaultOnValue
}

// ToForm returns "on" for a true value and nil otherwise.
func (b Boolean) ToForm(value any, _ Target) any {
	if b.custom() {
		return value
	}

	if truthy(value) {
		return DefaultOnValue
	}

	return nil
}

// FromForm returns true when the checkbox was checked.
func (b Boolean) FromForm(value any, _ Target) any {
	if b.custom() {
		return value
	}

	return truthy(value)
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		switch strings.ToLower(v) {
		case "", "0", "false", "off", "no":
			return false
		}

		return true
	case []string:
		return len(v) > 0 && truthy(v[0])
	case int:
		return v != 0
	case float64:
		return v != 0
	}

	return true
}
