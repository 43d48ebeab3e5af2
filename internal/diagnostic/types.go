package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"form-binder/internal/common"
)

// Diagnostics holds all diagnostic information from a definition check.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Form names the form definition this relates to (if any).
	Form string
	// Element is the dotted path of the element this relates to (if any).
	Element string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

func (d *Diagnostics) AddError(code, message, form, element string) {
	d.Add(Diagnostic{DiagnosticError, code, message, form, element, nil})
}

func (d *Diagnostics) AddWarning(code, message, form, element string) {
	d.Add(Diagnostic{DiagnosticWarning, code, message, form, element, nil})
}

func (d *Diagnostics) AddInfo(code, message, form, element string) {
	d.Add(Diagnostic{DiagnosticInfo, code, message, form, element, nil})
}

// Add files diag under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	list := &d.Infos

	switch diag.Severity {
	case DiagnosticError:
		list = &d.Errors
	case DiagnosticWarning:
		list = &d.Warnings
	}

	*list = append(*list, diag)
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

func (d *Diagnostics) Merge(other Diagnostics) {
	for _, diag := range other.All() {
		d.Add(diag)
	}
}

func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Error joins the error diagnostics into one error, nil when there are none.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		parts[i] = e.String()
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Form != "" {
		prefix = append(prefix, "["+d.Form+"]")
	}

	if d.Element != "" {
		prefix = append(prefix, d.Element)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
