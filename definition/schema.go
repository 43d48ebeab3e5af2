package definition

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"form-binder/form"
	"form-binder/validator"
)

// Draft is the JSON Schema dialect of exported schemas.
const Draft = "https://json-schema.org/draft/2020-12/schema"

var formats = map[string]string{
	"email": "email",
	"url":   "uri",
	"date":  "date",
}

const colorPattern = "^#[0-9a-fA-F]{6}$"

// Schema describes the JSON values a form accepts: groups are objects,
// collections are arrays of their prototype and choices enumerate their
// codes. Optional scalars also accept null.
func Schema(f *form.Form) *jsonschema.Schema {
	s := elementSchema(f)
	s.Schema = Draft

	return s
}

// ValidatePayload checks the entry of f in a decoded JSON payload against
// the schema of f. An anonymous form checks the whole payload.
func ValidatePayload(f *form.Form, payload map[string]any) error {
	resolved, err := Schema(f).Resolve(nil)
	if err != nil {
		return fmt.Errorf("failed to resolve schema of form %q: %w", f.Name(), err)
	}

	var data any = payload
	if f.Name() != "" {
		data = payload[f.Name()]
	}

	return resolved.Validate(data)
}

func elementSchema(el form.Element) *jsonschema.Schema {
	o := el.Options()
	s := &jsonschema.Schema{
		Title:       o.Label,
		Description: o.Help,
		ReadOnly:    el.IsReadonly() || el.IsDisabled(),
	}

	if g, ok := form.AsGroup(el); ok {
		s.Type = "object"
		s.Properties = make(map[string]*jsonschema.Schema)

		for _, child := range g.Children() {
			s.Properties[child.Name()] = elementSchema(child)

			if child.Options().Required {
				s.Required = append(s.Required, child.Name())
			}
		}

		return s
	}

	switch el := el.(type) {
	case *form.Collection:
		s.Type = "array"
		if p := el.Prototype(); p != nil {
			s.Items = elementSchema(p)
		}

		counts(s, o.MinElements, o.MaxElements)

	case *form.Choice:
		enum := make([]any, 0)
		for _, code := range el.ChoiceValues() {
			enum = append(enum, code)
		}

		if o.Multiple {
			s.Type = "array"
			s.Items = &jsonschema.Schema{Type: "string", Enum: enum}
		} else {
			types(s, o.Required, "string")
			if !o.Required {
				enum = append(enum, nil)
			}

			s.Enum = enum
		}

	default:
		fieldSchema(el, s)
	}

	constraints(el, s)

	return s
}

func fieldSchema(el form.Element, s *jsonschema.Schema) {
	required := el.Options().Required

	switch typ := el.Type(); typ {
	case "number", "range":
		types(s, required, "number")
	case "checkbox":
		types(s, required, "boolean", "string")
	case "color":
		types(s, required, "string")
		s.Pattern = colorPattern
	default:
		types(s, required, "string")
		s.Format = formats[typ]
	}
}

func types(s *jsonschema.Schema, required bool, names ...string) {
	if !required {
		names = append(names, "null")
	}

	if len(names) == 1 {
		s.Type = names[0]
		return
	}

	s.Types = names
}

func counts(s *jsonschema.Schema, lo, hi int) {
	if lo > 0 {
		s.MinItems = jsonschema.Ptr(lo)
	}

	if hi > 0 {
		s.MaxItems = jsonschema.Ptr(hi)
	}
}

// constraints maps the builtin validators of an element onto keywords.
func constraints(el form.Element, s *jsonschema.Schema) {
	for _, v := range el.Validators() {
		switch v := v.(type) {
		case validator.Length:
			if v.Min > 0 {
				s.MinLength = jsonschema.Ptr(v.Min)
			}

			if v.Max > 0 {
				s.MaxLength = jsonschema.Ptr(v.Max)
			}
		case validator.Pattern:
			if v.Regexp != nil && s.Items == nil {
				s.Pattern = v.Regexp.String()
			}
		case validator.Count:
			counts(s, v.Min, v.Max)
		}
	}
}
