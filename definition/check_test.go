package definition

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"form-binder/internal/diagnostic"
)

func codes(diags []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Code)
	}

	return out
}

func TestCheck_Valid(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "person.yaml"))
	require.NoError(t, err)

	diags := Check(f, NewRegistry(), []string{"map"})
	assert.True(t, diags.IsValid(), diags.Error())
	assert.Empty(t, diags.Warnings)
}

func TestCheck_Problems(t *testing.T) {
	f, err := Parse([]byte(`
forms:
  - name: person
    data_type: persn
    elements:
      - name: mail
        type: emal
      - name: mail
      - type: text
      - name: tags
        type: collection
        min_elements: 4
        max_elements: 2
      - name: age
        transformers: numbr
        validators:
          - lenght
          - {name: pattern}
        choices:
          - {value: a}
      - name: gender
        type: choice
        choices:
          - {value: f}
          - {value: f}
      - name: address
        type: group
        elements:
          - name: rows
            type: collection
            prototype:
              type: group
              elements: []
  - name: person
    elements: []
`))
	require.NoError(t, err)

	diags := Check(f, NewRegistry(), []string{"map", "person"})

	assert.Equal(t, []string{
		CodeUnknownDataType,
		CodeUnknownType,
		CodeDuplicateElement,
		CodeMissingName,
		CodeMissingPrototype,
		CodeInvalidBounds,
		CodeUnknownTransformer,
		CodeUnknownValidator,
		CodeInvalidValidator,
		CodeDuplicateChoice,
		CodeDuplicateForm,
	}, codes(diags.Errors))
	assert.Equal(t, []string{CodeUnusedOption}, codes(diags.Warnings))
	assert.Equal(t, []string{CodeEmptyGroup, CodeEmptyForm}, codes(diags.Infos))

	byCode := map[string]diagnostic.Diagnostic{}
	for _, d := range diags.All() {
		byCode[d.Code] = d
	}

	assert.Equal(t, []string{"person"}, byCode[CodeUnknownDataType].Suggestions)
	assert.Equal(t, []string{"email"}, byCode[CodeUnknownType].Suggestions)
	assert.Equal(t, "mail", byCode[CodeUnknownType].Element)
	assert.Equal(t, "[2]", byCode[CodeMissingName].Element)
	assert.Equal(t, []string{"number"}, byCode[CodeUnknownTransformer].Suggestions)
	assert.Equal(t, []string{"length"}, byCode[CodeUnknownValidator].Suggestions)
	assert.Equal(t, "address.rows.___name___", byCode[CodeEmptyGroup].Element)
	assert.Equal(t, "age", byCode[CodeUnusedOption].Element)

	assert.Equal(t,
		`[person] mail: [unknown_type] unknown element type "emal" (did you mean email?)`,
		byCode[CodeUnknownType].String())
	require.Error(t, diags.Error())
}

func TestCheck_NoForms(t *testing.T) {
	diags := Check(&File{}, NewRegistry(), nil)

	assert.True(t, diags.IsValid())
	assert.Equal(t, []string{CodeNoForms}, codes(diags.Warnings))
}

func TestCheck_DataTypesUnchecked(t *testing.T) {
	f := &File{Forms: []FormDef{{
		Name:     "person",
		DataType: "anything",
		Elements: []ElementDef{{Name: "a", Type: "text"}},
	}}}

	diags := Check(f, NewRegistry(), nil)
	assert.True(t, diags.IsValid())
}

func TestCheckForm(t *testing.T) {
	def := &FormDef{
		Name: "contact",
		Elements: []ElementDef{
			{Name: "mail", Type: "emal"},
			{Name: "notes", Type: TypeGroup},
		},
	}

	diags := CheckForm(def, NewRegistry(), nil)

	assert.Equal(t, []string{CodeUnknownType}, codes(diags.Errors))
	assert.Equal(t, []string{CodeEmptyGroup}, codes(diags.Infos))

	for _, d := range diags.All() {
		assert.Equal(t, "contact", d.Form)
	}

	f := &File{Forms: []FormDef{*def, *def}}
	assert.Equal(t, []string{CodeUnknownType, CodeDuplicateForm, CodeUnknownType}, codes(Check(f, NewRegistry(), nil).Errors))
}
