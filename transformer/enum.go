package transformer

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
)

// Enum maps enumerated domain values to their scalar codes. Values lists
// the allowed enum instances; a code is the TextMarshaler output when
// available, otherwise the underlying string or integer. Slices are mapped
// element by element.
type Enum struct {
	Values []any
}

// Code returns the scalar code of an enum value.
func Code(value any) string {
	if m, ok := value.(encoding.TextMarshaler); ok {
		if text, err := m.MarshalText(); err == nil {
			return string(text)
		}
	}

	rv := reflect.ValueOf(value)
	switch {
	case rv.Kind() == reflect.String:
		return rv.String()
	case rv.CanInt():
		return strconv.FormatInt(rv.Int(), 10)
	case rv.CanUint():
		return strconv.FormatUint(rv.Uint(), 10)
	}

	return fmt.Sprint(value)
}

func (e Enum) ToForm(value any, target Target) any {
	if value == nil {
		return nil
	}

	if items, ok := sliceItems(value); ok {
		out := make([]any, 0, len(items))
		for _, item := range items {
			out = append(out, e.ToForm(item, target))
		}

		return out
	}

	return Code(value)
}

func (e Enum) FromForm(value any, target Target) any {
	if value == nil {
		return nil
	}

	if items, ok := sliceItems(value); ok {
		out := make([]any, 0, len(items))
		for _, item := range items {
			out = append(out, e.FromForm(item, target))
		}

		return out
	}

	code := fmt.Sprint(value)
	for _, candidate := range e.Values {
		if Code(candidate) == code {
			return candidate
		}
	}

	return value
}

func sliceItems(value any) ([]any, bool) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}

	return items, true
}
