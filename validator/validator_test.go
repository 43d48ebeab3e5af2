package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"form-binder/validator"
)

type target struct {
	name, typ string
	value     any
}

func (t target) Name() string    { return t.name }
func (t target) Type() string    { return t.typ }
func (t target) Value() any      { return t.value }
func (t target) FinalValue() any { return t.value }

func TestViolation_Render(t *testing.T) {
	v := validator.NewViolation("{name} must have {min} to {max} chars", "name", "city", "min", 2, "max", 5)
	assert.Equal(t, "city must have 2 to 5 chars", v.Render())
	assert.Equal(t, v.Render(), v.String())
	assert.Equal(t, "plain", validator.Violation{Message: "plain"}.Render())
}

func TestNotEmpty(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		invalid bool
	}{
		{"nil", nil, true},
		{"blank", "  ", true},
		{"empty slice", []any{}, true},
		{"text", "Ronan", false},
		{"zero number", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := validator.NotEmpty{}.Validate(target{name: "f", value: tt.value})
			assert.Equal(t, tt.invalid, len(violations) > 0)
		})
	}
}

func TestLength(t *testing.T) {
	l := validator.Length{Min: 2, Max: 4}
	assert.Empty(t, l.Validate(target{value: "été"}))
	assert.Empty(t, l.Validate(target{value: ""}))

	violations := l.Validate(target{name: "zip", value: "75001"})
	require.Len(t, violations, 1)
	assert.Equal(t, "This value must have between 2 and 4 characters.", violations[0].Render())
	assert.Equal(t, 5, violations[0].Context["length"])

	open := validator.Length{Min: 1}
	assert.Empty(t, open.Validate(target{value: "a very long value"}))
}

func TestCount(t *testing.T) {
	c := validator.Count{Min: 1, Max: 2}
	assert.Empty(t, c.Validate(target{value: map[string]any{"0": "a"}}))
	assert.Len(t, c.Validate(target{value: nil}), 1)
	assert.Len(t, c.Validate(target{value: []any{1, 2, 3}}), 1)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		typ   string
		value any
		valid bool
	}{
		{"email", "ronan@example.com", true},
		{"email", "Ronan <ronan@example.com>", false},
		{"email", "nope", false},
		{"url", "https://getberlioz.com", true},
		{"url", "getberlioz", false},
		{"number", "12.5", true},
		{"number", "twelve", false},
		{"date", "1980-01-01", true},
		{"date", "01/01/1980", false},
		{"time", "10:30", true},
		{"datetime", "1980-01-01T10:30", true},
		{"color", "#ff00AA", true},
		{"color", "red", false},
		{"text", "anything", true},
		{"date", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.typ+"/"+tt.value.(string), func(t *testing.T) {
			violations := validator.Format{}.Validate(target{name: "f", typ: tt.typ, value: tt.value})
			assert.Equal(t, tt.valid, len(violations) == 0)
		})
	}

	assert.True(t, validator.HasFormat("email"))
	assert.False(t, validator.HasFormat("text"))
}

func TestPattern(t *testing.T) {
	p := validator.Pattern{Regexp: regexp.MustCompile(`^\d{5}$`)}
	assert.Empty(t, p.Validate(target{value: "75001"}))
	assert.Len(t, p.Validate(target{value: []string{"75001", "7500A"}}), 1)
}

func TestChoice(t *testing.T) {
	c := validator.Choice{Allowed: func() []string { return []string{"m", "f"} }}
	assert.Empty(t, c.Validate(target{value: "f"}))
	assert.Empty(t, c.Validate(target{value: []any{"m", "f"}}))

	violations := c.Validate(target{value: []any{"m", "x"}})
	require.Len(t, violations, 1)
	assert.Equal(t, "The value x is not a valid choice.", violations[0].Render())

	assert.Empty(t, validator.Choice{}.Validate(target{value: "x"}))
}

func TestFunc(t *testing.T) {
	f := validator.Func(func(target validator.Target) []validator.Violation {
		if target.FinalValue() == "admin" {
			return []validator.Violation{validator.NewViolation("reserved")}
		}

		return nil
	})

	assert.Len(t, f.Validate(target{value: "admin"}), 1)
	assert.Empty(t, f.Validate(target{value: "ronan"}))
}
