package definition

import (
	"fmt"
	"slices"

	"form-binder/form"
	"form-binder/internal/diagnostic"
	"form-binder/internal/match"
)

// Diagnostic codes reported by Check.
const (
	CodeNoForms            = "no_forms"
	CodeDuplicateForm      = "duplicate_form"
	CodeEmptyForm          = "empty_form"
	CodeMissingName        = "missing_name"
	CodeDuplicateElement   = "duplicate_element"
	CodeUnknownType        = "unknown_type"
	CodeMissingPrototype   = "missing_prototype"
	CodeEmptyGroup         = "empty_group"
	CodeNoChoices          = "no_choices"
	CodeDuplicateChoice    = "duplicate_choice"
	CodeInvalidBounds      = "invalid_bounds"
	CodeUnusedOption       = "unused_option"
	CodeUnknownDataType    = "unknown_data_type"
	CodeUnknownTransformer = "unknown_transformer"
	CodeInvalidTransformer = "invalid_transformer"
	CodeUnknownValidator   = "unknown_validator"
	CodeInvalidValidator   = "invalid_validator"
)

const maxSuggestions = 3

type checker struct {
	reg       *Registry
	dataTypes []string
	form      string
	diags     diagnostic.Diagnostics
}

// Check reports every problem of a definition file. Data type names are
// only checked when dataTypes is not nil.
func Check(f *File, reg *Registry, dataTypes []string) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if len(f.Forms) == 0 {
		diags.AddWarning(CodeNoForms, "definition declares no form", "", "")
	}

	seen := make(map[string]bool, len(f.Forms))

	for i := range f.Forms {
		def := &f.Forms[i]

		if seen[def.Name] {
			diags.AddError(CodeDuplicateForm, fmt.Sprintf("form %q is defined more than once", def.Name), def.Name, "")
		}

		seen[def.Name] = true

		diags.Merge(CheckForm(def, reg, dataTypes))
	}

	return diags
}

// CheckForm reports the problems of a single form definition.
func CheckForm(def *FormDef, reg *Registry, dataTypes []string) diagnostic.Diagnostics {
	c := &checker{reg: reg, dataTypes: dataTypes, form: def.Name}

	if len(def.Elements) == 0 {
		c.diags.AddInfo(CodeEmptyForm, "form has no elements", def.Name, "")
	}

	c.dataType(def.DataType, "")
	c.children(def.Elements, "")

	return c.diags
}

func (c *checker) add(severity diagnostic.DiagnosticSeverity, code, path string, suggestions []string, format string, args ...any) {
	c.diags.Add(diagnostic.Diagnostic{
		Severity:    severity,
		Code:        code,
		Message:     fmt.Sprintf(format, args...),
		Form:        c.form,
		Element:     path,
		Suggestions: suggestions,
	})
}

func suggest(wanted string, names []string) []string {
	return match.Rank(wanted, names, match.DefaultThreshold).Top(maxSuggestions)
}

func join(parent, name string) string {
	if parent == "" {
		return name
	}

	return parent + "." + name
}

func (c *checker) children(defs []ElementDef, parent string) {
	seen := make(map[string]bool, len(defs))

	for i := range defs {
		def := &defs[i]
		path := join(parent, def.Name)

		switch {
		case def.Name == "":
			path = join(parent, fmt.Sprintf("[%d]", i))
			c.add(diagnostic.DiagnosticError, CodeMissingName, path, nil, "element has no name")
		case seen[def.Name]:
			c.add(diagnostic.DiagnosticError, CodeDuplicateElement, path, nil, "name %q is used by another element", def.Name)
		}

		seen[def.Name] = true

		c.element(def, path)
	}
}

func (c *checker) element(def *ElementDef, path string) {
	switch {
	case def.Type == TypeGroup:
		if len(def.Elements) == 0 {
			c.add(diagnostic.DiagnosticInfo, CodeEmptyGroup, path, nil, "group has no elements")
		}

		c.children(def.Elements, path)
		c.unused(def.Prototype != nil, path, "prototype")

	case def.Type == TypeCollection:
		if def.Prototype == nil {
			c.add(diagnostic.DiagnosticError, CodeMissingPrototype, path, nil, "collection has no prototype")
		} else {
			c.element(def.Prototype, join(path, form.PrototypeKey))
		}

		if def.MaxElements > 0 && def.MinElements > def.MaxElements {
			c.add(diagnostic.DiagnosticError, CodeInvalidBounds, path, nil,
				"min_elements %d is greater than max_elements %d", def.MinElements, def.MaxElements)
		}

		c.unused(len(def.Elements) > 0, path, "elements")

	case def.Type == TypeChoice:
		if len(def.Choices) == 0 {
			c.add(diagnostic.DiagnosticWarning, CodeNoChoices, path, nil, "choice has no static choices")
		}

		c.choices(def.Choices, path)

	case IsFieldType(def.Type):
		c.unused(len(def.Elements) > 0, path, "elements")
		c.unused(def.Prototype != nil, path, "prototype")
		c.unused(len(def.Choices) > 0, path, "choices")

	default:
		c.add(diagnostic.DiagnosticError, CodeUnknownType, path, suggest(def.Type, ElementTypes()),
			"unknown element type %q", def.Type)
	}

	if def.Type != TypeCollection {
		c.unused(def.MinElements > 0, path, "min_elements")
		c.unused(def.MaxElements > 0, path, "max_elements")
	}

	c.dataType(def.DataType, path)
	c.transformers(def, path)
	c.validators(def.Validators, path)
}

func (c *checker) unused(present bool, path, option string) {
	if present {
		c.add(diagnostic.DiagnosticWarning, CodeUnusedOption, path, nil, "option %q is ignored on this element type", option)
	}
}

func (c *checker) choices(choices []ChoiceDef, path string) {
	var seen []string

	for _, choice := range choices {
		if slices.Contains(seen, choice.Value) {
			c.add(diagnostic.DiagnosticError, CodeDuplicateChoice, path, nil, "choice value %q is listed twice", choice.Value)
		}

		seen = append(seen, choice.Value)
	}
}

func (c *checker) dataType(name, path string) {
	if name == "" || c.dataTypes == nil || slices.Contains(c.dataTypes, name) {
		return
	}

	c.add(diagnostic.DiagnosticError, CodeUnknownDataType, path, suggest(name, c.dataTypes), "unknown data type %q", name)
}

func (c *checker) transformers(def *ElementDef, path string) {
	for _, name := range def.Transformers {
		if !c.reg.HasTransformer(name) {
			c.add(diagnostic.DiagnosticError, CodeUnknownTransformer, path, suggest(name, c.reg.TransformerNames()),
				"unknown transformer %q", name)

			continue
		}

		if _, err := c.reg.Transformer(name, def); err != nil {
			c.add(diagnostic.DiagnosticError, CodeInvalidTransformer, path, nil, "%v", err)
		}
	}
}

func (c *checker) validators(defs []ValidatorDef, path string) {
	for _, def := range defs {
		if !c.reg.HasValidator(def.Name) {
			c.add(diagnostic.DiagnosticError, CodeUnknownValidator, path, suggest(def.Name, c.reg.ValidatorNames()),
				"unknown validator %q", def.Name)

			continue
		}

		if _, err := c.reg.Validator(def); err != nil {
			c.add(diagnostic.DiagnosticError, CodeInvalidValidator, path, nil, "%v", err)
		}
	}
}
