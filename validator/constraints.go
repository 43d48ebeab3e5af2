package validator

import (
	"net/mail"
	"net/url"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"time"
	"unicode/utf8"

	"form-binder/utils"
)

// NotEmpty requires a value.
type NotEmpty struct {
	Message string
}

func (v NotEmpty) Validate(target Target) []Violation {
	if !IsEmpty(target.Value()) {
		return nil
	}

	return []Violation{NewViolation(orDefault(v.Message, "This value is required."), "name", target.Name())}
}

// Length bounds the number of characters of a text value. A zero Max means
// no upper bound. Empty values are left to NotEmpty.
type Length struct {
	Min, Max int
	Message  string
}

func (v Length) Validate(target Target) []Violation {
	s, ok := target.Value().(string)
	if !ok || s == "" {
		return nil
	}

	n := utf8.RuneCountInString(s)
	if utils.IsInRange(v.Min, n, v.Max) {
		return nil
	}

	return []Violation{NewViolation(
		orDefault(v.Message, "This value must have between {min} and {max} characters."),
		"name", target.Name(), "min", v.Min, "max", maxText(v.Max), "length", n,
	)}
}

// Count bounds the number of entries of a collection or multiple choice.
type Count struct {
	Min, Max int
	Message  string
}

func (v Count) Validate(target Target) []Violation {
	n := 0
	if value := target.Value(); value != nil {
		if rv := reflect.ValueOf(value); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Map {
			n = rv.Len()
		}
	}

	if utils.IsInRange(v.Min, n, v.Max) {
		return nil
	}

	return []Violation{NewViolation(
		orDefault(v.Message, "This collection must contain between {min} and {max} elements."),
		"name", target.Name(), "min", v.Min, "max", maxText(v.Max), "count", n,
	)}
}

// Pattern requires text values to match a regular expression.
type Pattern struct {
	Regexp  *regexp.Regexp
	Message string
}

func (v Pattern) Validate(target Target) []Violation {
	var out []Violation

	for _, s := range values(target.Value()) {
		if s != "" && !v.Regexp.MatchString(s) {
			out = append(out, NewViolation(
				orDefault(v.Message, "This value is not valid."),
				"name", target.Name(), "value", s, "pattern", v.Regexp.String(),
			))
		}
	}

	return out
}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Format checks that a value is well formed for the element type
// (email, url, number, range, date, time, datetime, color).
type Format struct {
	Message string
}

func (v Format) Validate(target Target) []Violation {
	var out []Violation

	for _, s := range values(target.Value()) {
		if s == "" || validFormat(target.Type(), s) {
			continue
		}

		out = append(out, NewViolation(
			orDefault(v.Message, "This value is not a valid {type}."),
			"name", target.Name(), "type", target.Type(), "value", s,
		))
	}

	return out
}

// HasFormat reports whether Format knows how to check elements of this type.
func HasFormat(typ string) bool {
	switch typ {
	case "email", "url", "number", "range", "date", "time", "datetime", "datetime-local", "color":
		return true
	}

	return false
}

func validFormat(typ, s string) bool {
	switch typ {
	case "email":
		addr, err := mail.ParseAddress(s)
		return err == nil && addr.Address == s
	case "url":
		u, err := url.ParseRequestURI(s)
		return err == nil && u.Scheme != "" && u.Host != ""
	case "number", "range":
		_, err := strconv.ParseFloat(s, 64)
		return err == nil
	case "date":
		return parses("2006-01-02", s)
	case "time":
		return parses("15:04", s) || parses("15:04:05", s)
	case "datetime", "datetime-local":
		return parses("2006-01-02T15:04", s) || parses("2006-01-02T15:04:05", s) || parses(time.RFC3339, s)
	case "color":
		return colorPattern.MatchString(s)
	}

	return true
}

func parses(layout, s string) bool {
	_, err := time.Parse(layout, s)
	return err == nil
}

// ChoiceTarget is implemented by elements that know their own choice codes.
type ChoiceTarget interface {
	ChoiceValues() []string
}

// Choice requires every submitted value to be one of the allowed codes.
// Without Allowed the codes are read from the target itself.
type Choice struct {
	Allowed func() []string
	Message string
}

func (v Choice) Validate(target Target) []Violation {
	var allowed []string

	switch ct, ok := target.(ChoiceTarget); {
	case v.Allowed != nil:
		allowed = v.Allowed()
	case ok:
		allowed = ct.ChoiceValues()
	default:
		return nil
	}

	var out []Violation

	for _, s := range values(target.Value()) {
		if s != "" && !slices.Contains(allowed, s) {
			out = append(out, NewViolation(
				orDefault(v.Message, "The value {value} is not a valid choice."),
				"name", target.Name(), "value", s,
			))
		}
	}

	return out
}

func orDefault(message, fallback string) string {
	if message != "" {
		return message
	}

	return fallback
}

func maxText(max int) any {
	if max == 0 {
		return "unlimited"
	}

	return max
}
