package definition

import (
	"encoding/json"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	s := Schema(buildPerson(t))

	assert.Equal(t, Draft, s.Schema)
	assert.Equal(t, "Person", s.Title)
	assert.Equal(t, "object", s.Type)
	assert.Equal(t, []string{"last_name"}, s.Required)
	require.Len(t, s.Properties, 6)

	assert.Equal(t, &jsonschema.Schema{
		Title:     "Last name",
		Type:      "string",
		MinLength: jsonschema.Ptr(2),
		MaxLength: jsonschema.Ptr(10),
	}, s.Properties["last_name"])

	assert.Equal(t, &jsonschema.Schema{Types: []string{"string", "null"}, Format: "email"}, s.Properties["email"])
	assert.Equal(t, &jsonschema.Schema{Types: []string{"string", "null"}, Enum: []any{"f", "m", nil}}, s.Properties["gender"])
	assert.Equal(t, &jsonschema.Schema{Types: []string{"boolean", "string", "null"}}, s.Properties["terms"])

	address := s.Properties["address"]
	assert.Equal(t, "object", address.Type)
	assert.Empty(t, address.Required)
	assert.Equal(t, "^[0-9]{5}$", address.Properties["zip"].Pattern)

	tags := s.Properties["tags"]
	assert.Equal(t, "array", tags.Type)
	assert.Equal(t, jsonschema.Ptr(3), tags.MaxItems)
	assert.Nil(t, tags.MinItems)
	assert.Equal(t, &jsonschema.Schema{Types: []string{"string", "null"}}, tags.Items)
}

func decode(t *testing.T, s string) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &out))

	return out
}

func TestValidatePayload(t *testing.T) {
	f := buildPerson(t)

	tests := []struct {
		name    string
		payload string
		valid   bool
	}{
		{
			name:    "valid",
			payload: `{"person":{"last_name":"Giron","gender":"f","address":{"zip":"75001"},"tags":["a","b"],"terms":"on"}}`,
			valid:   true,
		},
		{
			name:    "nulls for optional values",
			payload: `{"person":{"last_name":"Giron","email":null,"gender":null}}`,
			valid:   true,
		},
		{name: "missing form key", payload: `{"other":{}}`},
		{name: "missing required", payload: `{"person":{"gender":"f"}}`},
		{name: "unknown choice", payload: `{"person":{"last_name":"Giron","gender":"x"}}`},
		{name: "too many rows", payload: `{"person":{"last_name":"Giron","tags":["a","b","c","d"]}}`},
		{name: "bad zip", payload: `{"person":{"last_name":"Giron","address":{"zip":"abc"}}}`},
		{name: "too short", payload: `{"person":{"last_name":"G"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayload(f, decode(t, tt.payload))
			if tt.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestSchema_JSON(t *testing.T) {
	data, err := json.Marshal(Schema(buildPerson(t)))
	require.NoError(t, err)

	var round jsonschema.Schema
	require.NoError(t, json.Unmarshal(data, &round))
	assert.Equal(t, "object", round.Type)
	assert.Contains(t, string(data), `"$schema":"https://json-schema.org/draft/2020-12/schema"`)
}
