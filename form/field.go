package form

import (
	"form-binder/transformer"
	"form-binder/validator"
)

// Field is a leaf element holding one value.
type Field struct {
	element

	typ            string
	value          any
	submittedValue any
	submitted      bool
}

// NewField creates a field of the given input type. The type selects the
// default transformer: number and range parse numbers, date and time types
// format time.Time, checkbox maps booleans.
func NewField(typ, name string, opts ...Option) *Field {
	f := &Field{typ: typ}
	f.element = newElement(f, name, opts)
	f.setTransformers(defaultTransformer(typ, f.options))

	return f
}

func defaultTransformer(typ string, o *Options) transformer.Transformer {
	switch typ {
	case "number", "range":
		return transformer.Number{}
	case "date", "time", "datetime", "datetime-local":
		return transformer.DateTime{Layout: o.Layout}
	case "checkbox":
		return transformer.Boolean{OnValue: o.OnValue}
	}

	return transformer.Identity{}
}

func NewText(name string, opts ...Option) *Field { return NewField("text", name, opts...) }

func NewTextarea(name string, opts ...Option) *Field { return NewField("textarea", name, opts...) }

func NewEmail(name string, opts ...Option) *Field { return NewField("email", name, opts...) }

func NewURL(name string, opts ...Option) *Field { return NewField("url", name, opts...) }

func NewPassword(name string, opts ...Option) *Field { return NewField("password", name, opts...) }

func NewHidden(name string, opts ...Option) *Field { return NewField("hidden", name, opts...) }

func NewSearch(name string, opts ...Option) *Field { return NewField("search", name, opts...) }

func NewTel(name string, opts ...Option) *Field { return NewField("tel", name, opts...) }

func NewNumber(name string, opts ...Option) *Field { return NewField("number", name, opts...) }

func NewRange(name string, opts ...Option) *Field { return NewField("range", name, opts...) }

func NewColor(name string, opts ...Option) *Field { return NewField("color", name, opts...) }

func NewDate(name string, opts ...Option) *Field { return NewField("date", name, opts...) }

func NewTime(name string, opts ...Option) *Field { return NewField("time", name, opts...) }

func NewDateTime(name string, opts ...Option) *Field { return NewField("datetime", name, opts...) }

func NewCheckbox(name string, opts ...Option) *Field { return NewField("checkbox", name, opts...) }

func (f *Field) Type() string { return f.typ }

func (f *Field) Kind() Kind { return KindField }

// SetValue stores the domain value converted by the transformer.
func (f *Field) SetValue(value any) error {
	f.value = f.transformer.ToForm(value, f.self)
	return nil
}

// SubmitValue stores the raw submitted value. A field accepts any shape.
func (f *Field) SubmitValue(value any) error {
	f.submittedValue = value
	f.submitted = true

	return nil
}

// Value is the submitted value once the form is submitted, the default
// value otherwise.
func (f *Field) Value() any {
	if f.isSubmitted() {
		return f.submittedValue
	}

	return f.value
}

func (f *Field) FinalValue() any {
	return f.transformer.FromForm(f.self.Value(), f.self)
}

// DefaultValue is the value given by SetValue.
func (f *Field) DefaultValue() any { return f.value }

// WasSubmitted reports whether SubmitValue was called on this field.
func (f *Field) WasSubmitted() bool { return f.submitted }

func (f *Field) Build() error {
	if f.options.Required && !f.HasValidator(validator.NotEmpty{}) {
		f.AddValidator(validator.NotEmpty{})
	}

	if validator.HasFormat(f.typ) && !f.HasValidator(validator.Format{}) {
		f.AddValidator(validator.Format{})
	}

	return nil
}

func (f *Field) Validate() bool { return f.validateSelf() }

func (f *Field) IsValid() bool { return f.self.Validate() }

func (f *Field) View() *View {
	v := newView(&f.element)
	v.Value = f.self.Value()

	if f.typ == "checkbox" {
		v.Extra["checked"] = f.FinalValue() == true || (f.options.OnValue != "" && f.self.Value() == f.options.OnValue)
		v.Extra["on_value"] = onValue(f.options)
	}

	return v
}

func onValue(o *Options) string {
	if o.OnValue != "" {
		return o.OnValue
	}

	return transformer.DefaultOnValue
}

func (f *Field) clone() Element {
	c := &Field{typ: f.typ}
	c.element = f.cloneElement(c)

	return c
}
