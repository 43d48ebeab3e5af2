package transformer

import (
	"reflect"

	"form-binder/internal/common"
)

// ArrayFilter drops falsy entries (nil, "", false, zero numbers, empty
// collections) from a slice or a keyed map on the way to the domain.
type ArrayFilter struct{}

func (ArrayFilter) ToForm(value any, _ Target) any { return value }

func (ArrayFilter) FromForm(value any, _ Target) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			if !isFalsy(item) {
				out[k] = item
			}
		}

		return out
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			if !isFalsy(item) {
				out = append(out, item)
			}
		}

		return out
	case []string:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if item != "" {
				out = append(out, item)
			}
		}

		return out
	}

	return value
}

// ArrayValues turns a keyed map into a dense slice ordered by key.
type ArrayValues struct{}

func (ArrayValues) ToForm(value any, _ Target) any { return value }

func (ArrayValues) FromForm(value any, _ Target) any {
	v, ok := value.(map[string]any)
	if !ok {
		return value
	}

	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}

	out := make([]any, 0, len(keys))
	for _, k := range common.SortKeys(keys) {
		out = append(out, v[k])
	}

	return out
}

func isFalsy(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}

	return rv.IsZero()
}
