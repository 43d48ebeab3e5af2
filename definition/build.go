package definition

import (
	"errors"
	"fmt"
	"slices"

	"form-binder/form"
)

var ErrUnknownType = errors.New("unknown element type")

var fieldTypes = []string{
	"checkbox", "color", "date", "datetime", "datetime-local", "email", "hidden", "number",
	"password", "range", "search", "tel", "text", "textarea", "time", "url",
}

// IsFieldType reports whether typ is a plain field type.
func IsFieldType(typ string) bool {
	return slices.Contains(fieldTypes, typ)
}

// ElementTypes returns every known element type, sorted.
func ElementTypes() []string {
	types := append(slices.Clone(fieldTypes), TypeChoice, TypeCollection, TypeGroup)
	slices.Sort(types)

	return types
}

// Build creates the form tree of a definition. The form is not bound to an
// object and not built yet.
func Build(def *FormDef, reg *Registry) (*form.Form, error) {
	var opts []form.Option
	if def.Label != "" {
		opts = append(opts, form.Label(def.Label))
	}

	if def.DataType != "" {
		opts = append(opts, form.DataType(def.DataType))
	}

	f := form.NewForm(def.Name, nil, opts...)

	for i := range def.Elements {
		el, err := buildElement(&def.Elements[i], reg, def.Elements[i].Name)
		if err != nil {
			return nil, fmt.Errorf("form %q: %w", def.Name, err)
		}

		f.Add(el)
	}

	return f, nil
}

// BuildNamed builds the named form of a file.
func BuildNamed(f *File, name string, reg *Registry) (*form.Form, error) {
	def, ok := f.Form(name)
	if !ok {
		return nil, fmt.Errorf("form %q is not defined", name)
	}

	return Build(def, reg)
}

func buildElement(def *ElementDef, reg *Registry, path string) (form.Element, error) {
	opts, err := elementOptions(def, reg)
	if err != nil {
		return nil, fmt.Errorf("element %q: %w", path, err)
	}

	switch def.Type {
	case TypeGroup:
		g := form.NewGroup(def.Name, opts...)

		for i := range def.Elements {
			child, err := buildElement(&def.Elements[i], reg, path+"."+def.Elements[i].Name)
			if err != nil {
				return nil, err
			}

			g.Add(child)
		}

		return g, nil

	case TypeCollection:
		var prototype form.Element

		if def.Prototype != nil {
			prototype, err = buildElement(def.Prototype, reg, path+"."+form.PrototypeKey)
			if err != nil {
				return nil, err
			}
		}

		return form.NewCollection(def.Name, prototype, opts...), nil

	case TypeChoice:
		return form.NewChoice(def.Name, opts...), nil
	}

	if !IsFieldType(def.Type) {
		return nil, fmt.Errorf("element %q: %w: %q", path, ErrUnknownType, def.Type)
	}

	return form.NewField(def.Type, def.Name, opts...), nil
}

func elementOptions(def *ElementDef, reg *Registry) ([]form.Option, error) {
	var opts []form.Option

	add := func(cond bool, opt form.Option) {
		if cond {
			opts = append(opts, opt)
		}
	}

	add(def.Label != "", form.Label(def.Label))
	add(def.Help != "", form.Help(def.Help))
	add(def.Placeholder != "", form.Placeholder(def.Placeholder))
	add(def.Required, form.Required())
	add(def.Disabled, form.Disabled())
	add(def.Readonly, form.Readonly())
	add(!def.IsMapped(), form.Unmapped())
	add(def.DataType != "", form.DataType(def.DataType))
	add(def.OnValue != "", form.OnValue(def.OnValue))
	add(def.Layout != "", form.Layout(def.Layout))
	add(def.Multiple, form.Multiple())
	add(def.Expanded, form.Expanded())
	add(def.MinElements > 0, form.MinElements(def.MinElements))
	add(def.MaxElements > 0, form.MaxElements(def.MaxElements))
	add(def.Editable, form.Editable())

	for _, key := range sortedKeys(def.Attributes) {
		opts = append(opts, form.Attr(key, def.Attributes[key]))
	}

	if len(def.Choices) > 0 {
		items := make([]form.ChoiceItem, 0, len(def.Choices))
		for _, c := range def.Choices {
			label := c.Label
			if label == "" {
				label = c.Value
			}

			items = append(items, form.ChoiceItem{Label: label, Value: c.Value, Group: c.Group})
		}

		opts = append(opts, form.Choices(items...))
	}

	for _, name := range def.Transformers {
		t, err := reg.Transformer(name, def)
		if err != nil {
			return nil, err
		}

		opts = append(opts, form.WithTransformer(t))
	}

	for _, vdef := range def.Validators {
		v, err := reg.Validator(vdef)
		if err != nil {
			return nil, err
		}

		opts = append(opts, form.WithValidator(v))
	}

	return opts, nil
}
