package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	personFile  = filepath.Join("testdata", "person.yaml")
	brokenFile  = filepath.Join("testdata", "broken.yaml")
	payloadFile = filepath.Join("testdata", "payload.json")
)

func run(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(stdin)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func decodeOutput(t *testing.T, out string) map[string]any {
	t.Helper()

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc), out)

	return doc
}

func TestCheck(t *testing.T) {
	out, err := run(t, nil, "check", personFile)
	require.NoError(t, err)
	assert.Equal(t, personFile+": ok, 1 form(s)\n", out)

	out, err = run(t, nil, "check", brokenFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 error(s)")
	assert.Contains(t, out, `error: [person] mail: [unknown_type] unknown element type "emal" (did you mean email?)`)
	assert.Contains(t, out, "error: [person] tags: [missing_prototype] collection has no prototype")

	_, err = run(t, nil, "check", filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}

func TestView(t *testing.T) {
	out, err := run(t, nil, "view", personFile, "person")
	require.NoError(t, err)

	doc := decodeOutput(t, out)
	assert.Equal(t, "form", doc["type"])
	assert.Equal(t, "person", doc["name"])
	assert.Equal(t, "Person", doc["label"])
	assert.Len(t, doc["children"], 5)

	out, err = run(t, strings.NewReader(`{"last_name": "Giron"}`), "view", personFile, "--data", "-", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: person[last_name]")
	assert.Contains(t, out, "value: Giron")

	_, err = run(t, nil, "view", personFile, "nobody")
	require.Error(t, err)

	_, err = run(t, nil, "view", brokenFile)
	require.Error(t, err, "definitions with errors are not built")

	_, err = run(t, nil, "view", personFile, "-o", "xml")
	require.Error(t, err)
}

func TestSubmit_Valid(t *testing.T) {
	out, err := run(t, nil, "submit", personFile, "--data", payloadFile, "--strict")
	require.NoError(t, err)

	doc := decodeOutput(t, out)
	assert.Equal(t, true, doc["submitted"])
	assert.Equal(t, true, doc["valid"])
	assert.Nil(t, doc["errors"])

	object, ok := doc["object"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Giron", object["last_name"])
	assert.Equal(t, map[string]any{"city": "Paris"}, object["address"])
	assert.Equal(t, []any{"a", "b"}, object["tags"])
	assert.NotContains(t, object, "terms", "unmapped elements are not hydrated")
}

func TestSubmit_Invalid(t *testing.T) {
	out, err := run(t, nil, "submit", personFile, "--query", "person[age]=abc&person[tags][]=a")
	require.NoError(t, err)

	doc := decodeOutput(t, out)
	assert.Equal(t, true, doc["submitted"])
	assert.Equal(t, false, doc["valid"])
	assert.Equal(t, map[string]any{
		"person[last_name]": []any{"This value is required."},
		"person[age]":       []any{"This value is not a valid number."},
	}, doc["errors"])
	assert.Equal(t, map[string]any{}, doc["object"], "invalid submissions leave the object untouched")
}

func TestSubmit_NotSubmitted(t *testing.T) {
	out, err := run(t, strings.NewReader(`{"other": {}}`), "submit", personFile, "--data", "-")
	require.NoError(t, err)

	doc := decodeOutput(t, out)
	assert.Equal(t, false, doc["submitted"])
	assert.Equal(t, false, doc["valid"])
}

func TestSubmit_Strict(t *testing.T) {
	_, err := run(t, strings.NewReader(`{"person": {"tags": ["a", "b", "c", "d"]}}`),
		"submit", personFile, "--data", "-", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payload does not match the form schema")
}

func TestSubmit_Dump(t *testing.T) {
	out, err := run(t, nil, "submit", personFile, "--data", payloadFile, "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "(map[string]interface {})")
	assert.Contains(t, out, `"Giron"`)
}

func TestSubmit_Flags(t *testing.T) {
	_, err := run(t, nil, "submit", personFile)
	require.Error(t, err, "a payload is required")

	_, err = run(t, nil, "submit", personFile, "--data", payloadFile, "--query", "a=b")
	require.Error(t, err)
}

func TestSchema(t *testing.T) {
	out, err := run(t, nil, "schema", personFile)
	require.NoError(t, err)

	doc := decodeOutput(t, out)
	assert.Equal(t, "https://json-schema.org/draft/2020-12/schema", doc["$schema"])
	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, []any{"last_name"}, doc["required"])

	out, err = run(t, nil, "schema", personFile, "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "type: object")
}
