package form

import (
	"reflect"
	"strings"

	"go.uber.org/zap"

	"form-binder/transformer"
	"form-binder/validator"
)

// PrototypeKey stands for the row key in the identity of a collection
// prototype, so that clients can render new rows from it.
const PrototypeKey = "___name___"

// Element is a node of a form tree. The set of implementations is closed:
// *Field, *Choice, *Group, *Collection and *Form.
type Element interface {
	// Name is the local name, "" for anonymous elements.
	Name() string
	// Type is the view type ("text", "choice", "group", "collection", "form", ...).
	Type() string
	Kind() Kind
	Parent() Element
	// Form is the root form, nil for a detached tree.
	Form() *Form
	Options() *Options

	// ID is the path joined with "_", usable as an HTML id.
	ID() string
	// FormName is the path in bracket notation, usable as an input name.
	FormName() string

	IsDisabled() bool
	IsReadonly() bool

	Transformer() transformer.Transformer
	SetTransformer(t transformer.Transformer)

	Validators() []validator.Validator
	AddValidator(v validator.Validator)
	HasValidator(v validator.Validator) bool
	Violations() []validator.Violation
	// Validate runs the validators of the element and its descendants and
	// reports whether none failed.
	Validate() bool
	IsValid() bool

	// SetValue seeds the default value from domain data.
	SetValue(value any) error
	// SubmitValue stores raw submitted data.
	SubmitValue(value any) error
	Value() any
	FinalValue() any

	// Build attaches the validators implied by the options and checks the
	// configuration. It is idempotent.
	Build() error
	View() *View

	base() *element
	clone() Element
}

type element struct {
	self        Element
	name        string
	options     *Options
	parent      Element
	transformer transformer.Transformer
	validators  []validator.Validator
	violations  []validator.Violation
}

func newElement(self Element, name string, opts []Option) element {
	o := newOptions(opts)

	e := element{
		self:        self,
		name:        name,
		options:     o,
		transformer: transformer.Identity{},
		validators:  append([]validator.Validator(nil), o.Validators...),
	}
	e.setTransformers(transformer.Identity{})

	return e
}

// cloneElement copies the declared shape, never values nor violations.
func (e *element) cloneElement(self Element) element {
	return element{
		self:        self,
		name:        e.name,
		options:     e.options.clone(),
		transformer: e.transformer,
		validators:  append([]validator.Validator(nil), e.validators...),
	}
}

func (e *element) base() *element { return e }

func (e *element) Name() string { return e.name }

func (e *element) Options() *Options { return e.options }

func (e *element) Parent() Element { return e.parent }

func (e *element) Form() *Form {
	var root Element = e.self
	for root.Parent() != nil {
		root = root.Parent()
	}

	f, _ := root.(*Form)

	return f
}

func (e *element) IsDisabled() bool {
	return e.inherited(func(o *Options) bool { return o.Disabled })
}

func (e *element) IsReadonly() bool {
	return e.inherited(func(o *Options) bool { return o.Readonly })
}

func (e *element) inherited(get func(o *Options) bool) bool {
	for el := e.self; el != nil; el = el.Parent() {
		if get(el.Options()) {
			return true
		}
	}

	return false
}

// position is the segment of the element in identities: its collection key
// (or PrototypeKey) inside a collection, its name elsewhere.
func (e *element) position() string {
	c, ok := e.parent.(*Collection)
	if !ok {
		return e.name
	}

	if key, found := c.IndexOf(e.self); found {
		return key
	}

	return e.name
}

func (e *element) path() []string {
	var segments []string

	for el := e.self; el != nil; el = el.Parent() {
		if p := el.base().position(); p != "" {
			segments = append(segments, p)
		}
	}

	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}

	return segments
}

func (e *element) ID() string {
	return strings.Join(e.path(), "_")
}

func (e *element) FormName() string {
	segments := e.path()
	if len(segments) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(segments[0])

	for _, s := range segments[1:] {
		sb.WriteString("[" + s + "]")
	}

	return sb.String()
}

func (e *element) Transformer() transformer.Transformer { return e.transformer }

func (e *element) SetTransformer(t transformer.Transformer) {
	if t == nil {
		t = transformer.Identity{}
	}

	e.transformer = t
}

// setTransformers installs the type default followed by the configured ones.
func (e *element) setTransformers(def transformer.Transformer) {
	if len(e.options.Transformers) == 0 {
		e.SetTransformer(def)
		return
	}

	chain := transformer.NewChain()
	if _, identity := def.(transformer.Identity); def != nil && !identity {
		chain.Add(def)
	}

	for _, t := range e.options.Transformers {
		chain.Add(t)
	}

	e.SetTransformer(chain)
}

func (e *element) Validators() []validator.Validator { return e.validators }

func (e *element) AddValidator(v validator.Validator) {
	if v != nil {
		e.validators = append(e.validators, v)
	}
}

// HasValidator reports whether a validator of the same type is attached.
func (e *element) HasValidator(v validator.Validator) bool {
	want := reflect.TypeOf(v)
	for _, existing := range e.validators {
		if reflect.TypeOf(existing) == want {
			return true
		}
	}

	return false
}

func (e *element) Violations() []validator.Violation { return e.violations }

// validateSelf runs the element validators. Disabled elements are never
// invalid.
func (e *element) validateSelf() bool {
	e.violations = nil

	if e.IsDisabled() {
		return true
	}

	target, _ := e.self.(validator.Target)
	for _, v := range e.validators {
		e.violations = append(e.violations, v.Validate(target)...)
	}

	if len(e.violations) > 0 {
		e.logger().Debugw("element is invalid", "element", e.self.FormName(), "violations", len(e.violations))
	}

	return len(e.violations) == 0
}

func (e *element) isSubmitted() bool {
	f := e.Form()
	return f != nil && f.submitted
}

func (e *element) logger() *zap.SugaredLogger {
	if f := e.Form(); f != nil && f.logger != nil {
		return f.logger
	}

	return zap.NewNop().Sugar()
}

func (e *element) renderViolations() []string {
	if len(e.violations) == 0 {
		return nil
	}

	out := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		out = append(out, v.Render())
	}

	return out
}
