package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "message only",
			diag: Diagnostic{Message: "empty definition"},
			want: "empty definition",
		},
		{
			name: "with code and location",
			diag: Diagnostic{Code: "duplicate_element", Message: "name is used twice", Form: "person", Element: "addresses.city"},
			want: "[person] addresses.city: [duplicate_element] name is used twice",
		},
		{
			name: "with suggestions",
			diag: Diagnostic{Code: "unknown_type", Message: `unknown element type "emial"`, Element: "mail", Suggestions: []string{"email"}},
			want: `mail: [unknown_type] unknown element type "emial" (did you mean email?)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	require.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddInfo("empty_group", "group has no children", "person", "extra")
	d.AddWarning("unused_option", "choices are ignored", "person", "name")
	d.Add(Diagnostic{Severity: DiagnosticError, Code: "missing_prototype", Message: "collection has no prototype", Form: "person", Element: "tags"})

	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())
	assert.EqualError(t, d.Error(), "[person] tags: [missing_prototype] collection has no prototype")

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticWarning, all[1].Severity)
	assert.Equal(t, DiagnosticInfo, all[2].Severity)

	var other Diagnostics
	other.AddError("unknown_type", "unknown element type", "", "x")
	d.Merge(other)
	assert.Len(t, d.Errors, 2)
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
