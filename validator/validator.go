// Package validator holds the constraints evaluated against submitted
// elements. Validators never fail: they return zero or more violations,
// each a message template plus the context used to render it.
package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Target is the element being validated.
type Target interface {
	Name() string
	Type() string
	// Value is the raw form value.
	Value() any
	// FinalValue is the value after transformation.
	FinalValue() any
}

// Validator checks one constraint.
type Validator interface {
	Validate(target Target) []Violation
}

// Func adapts a function to the Validator interface.
type Func func(target Target) []Violation

func (f Func) Validate(target Target) []Violation { return f(target) }

// Violation is a failed constraint.
type Violation struct {
	// Message is a template; "{key}" placeholders are filled from Context.
	Message string
	Context map[string]any
}

// NewViolation creates a violation with context built from key/value pairs.
func NewViolation(message string, keyValues ...any) Violation {
	v := Violation{Message: message, Context: map[string]any{}}
	for i := 0; i+1 < len(keyValues); i += 2 {
		v.Context[fmt.Sprint(keyValues[i])] = keyValues[i+1]
	}

	return v
}

// Render fills the message placeholders.
func (v Violation) Render() string {
	if len(v.Context) == 0 {
		return v.Message
	}

	keys := make([]string, 0, len(v.Context))
	for k := range v.Context {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", fmt.Sprint(v.Context[k]))
	}

	return strings.NewReplacer(pairs...).Replace(v.Message)
}

func (v Violation) String() string {
	return v.Render()
}

// IsEmpty reports whether a form value counts as not filled in.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.Bool:
		return !rv.Bool()
	}

	return false
}

// values flattens a scalar or a slice into a list of strings.
func values(value any) []string {
	if value == nil {
		return nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]string, 0, rv.Len())
		for i := range rv.Len() {
			if item := rv.Index(i).Interface(); item != nil {
				out = append(out, fmt.Sprint(item))
			}
		}

		return out
	case reflect.Map:
		keys := rv.MapKeys()
		out := make([]string, 0, len(keys))
		for _, k := range keys {
			if item := rv.MapIndex(k).Interface(); item != nil {
				out = append(out, fmt.Sprint(item))
			}
		}

		return out
	}

	return []string{fmt.Sprint(value)}
}
