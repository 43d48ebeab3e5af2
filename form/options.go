package form

import (
	"maps"
	"slices"

	"form-binder/transformer"
	"form-binder/validator"
)

// ChoiceItem is one entry of a choice list. Value is the domain value, its
// form code is computed through the element transformer.
type ChoiceItem struct {
	Label      string
	Value      any
	Group      string
	Attributes map[string]string
}

// ChoiceSource lazily provides the choice list of a Choice element.
type ChoiceSource func() []ChoiceItem

// Options holds the declared configuration of an element. Only Disabled and
// Readonly are inherited from ancestors, see IsDisabled and IsReadonly.
type Options struct {
	Label       string
	Help        string
	Placeholder string
	Attributes  map[string]string

	Required bool
	Disabled bool
	Readonly bool

	// Mapped is false for elements that are never collected nor hydrated.
	Mapped bool
	// DataType names the type the hydrator creates for a missing object.
	DataType string

	// OnValue is the submitted value of a checked checkbox.
	OnValue string
	// Layout overrides the date/time layout.
	Layout string

	Choices  ChoiceSource
	Multiple bool
	Expanded bool

	MinElements int
	// MaxElements bounds a collection, zero means no bound.
	MaxElements int
	Editable    bool

	Transformers []transformer.Transformer
	Validators   []validator.Validator
}

// Option configures an element at construction.
type Option func(o *Options)

func newOptions(opts []Option) *Options {
	o := &Options{Mapped: true}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

func (o *Options) clone() *Options {
	c := *o
	c.Attributes = maps.Clone(o.Attributes)
	c.Transformers = slices.Clone(o.Transformers)
	c.Validators = slices.Clone(o.Validators)

	return &c
}

func Label(label string) Option { return func(o *Options) { o.Label = label } }

func Help(help string) Option { return func(o *Options) { o.Help = help } }

func Placeholder(text string) Option { return func(o *Options) { o.Placeholder = text } }

// Attr sets one HTML attribute rendered by views.
func Attr(key, value string) Option {
	return func(o *Options) {
		if o.Attributes == nil {
			o.Attributes = map[string]string{}
		}

		o.Attributes[key] = value
	}
}

func Required() Option { return func(o *Options) { o.Required = true } }

func Disabled() Option { return func(o *Options) { o.Disabled = true } }

func Readonly() Option { return func(o *Options) { o.Readonly = true } }

// Unmapped excludes the element from collection and hydration.
func Unmapped() Option { return func(o *Options) { o.Mapped = false } }

func DataType(name string) Option { return func(o *Options) { o.DataType = name } }

func OnValue(value string) Option { return func(o *Options) { o.OnValue = value } }

func Layout(layout string) Option { return func(o *Options) { o.Layout = layout } }

// Choices sets a static choice list.
func Choices(items ...ChoiceItem) Option {
	return func(o *Options) {
		o.Choices = func() []ChoiceItem { return items }
	}
}

// ChoicesFunc sets a lazily evaluated choice list.
func ChoicesFunc(source ChoiceSource) Option {
	return func(o *Options) { o.Choices = source }
}

func Multiple() Option { return func(o *Options) { o.Multiple = true } }

func Expanded() Option { return func(o *Options) { o.Expanded = true } }

func MinElements(n int) Option { return func(o *Options) { o.MinElements = max(n, 0) } }

func MaxElements(n int) Option { return func(o *Options) { o.MaxElements = max(n, 0) } }

func Editable() Option { return func(o *Options) { o.Editable = true } }

// WithTransformer appends a transformer after the default one of the type.
func WithTransformer(t transformer.Transformer) Option {
	return func(o *Options) { o.Transformers = append(o.Transformers, t) }
}

func WithValidator(v validator.Validator) Option {
	return func(o *Options) { o.Validators = append(o.Validators, v) }
}
