package transformer

import (
	"reflect"
	"strconv"
	"strings"
)

// Number maps numbers to their decimal text. The domain side is always
// float64 (or nil for an empty field); typed fields are converted when the
// value is written to the mapped object.
type Number struct{}

func (Number) ToForm(value any, _ Target) any {
	if value == nil {
		return nil
	}

	rv := reflect.ValueOf(value)
	switch {
	case rv.CanInt():
		return strconv.FormatInt(rv.Int(), 10)
	case rv.CanUint():
		return strconv.FormatUint(rv.Uint(), 10)
	case rv.CanFloat():
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	}

	return value
}

func (Number) FromForm(value any, _ Target) any {
	if value == nil {
		return nil
	}

	rv := reflect.ValueOf(value)
	switch {
	case rv.Kind() == reflect.String:
		s := strings.TrimSpace(rv.String())
		if s == "" {
			return nil
		}

		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}

		return f
	case rv.CanInt():
		return float64(rv.Int())
	case rv.CanUint():
		return float64(rv.Uint())
	case rv.CanFloat():
		return rv.Float()
	}

	return nil
}
