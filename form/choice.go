package form

import (
	"fmt"
	"reflect"
	"slices"

	"form-binder/validator"
)

// Choice is a field restricted to a list of choices. A multiple choice
// always holds a slice.
type Choice struct {
	Field

	choices []ChoiceView
	cached  bool
}

// ChoiceView is a rendered choice.
type ChoiceView struct {
	Label      string            `json:"label" yaml:"label"`
	Value      string            `json:"value" yaml:"value"`
	Group      string            `json:"group,omitempty" yaml:"group,omitempty"`
	Selected   bool              `json:"selected,omitempty" yaml:"selected,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

func NewChoice(name string, opts ...Option) *Choice {
	c := &Choice{}
	c.Field = Field{typ: "choice"}
	c.element = newElement(c, name, opts)
	c.setTransformers(defaultTransformer("choice", c.options))

	return c
}

// SetChoices replaces the choice source and drops the cached list.
func (c *Choice) SetChoices(source ChoiceSource) {
	c.options.Choices = source
	c.cached = false
	c.choices = nil
}

// Choices returns the choice list, evaluated once.
func (c *Choice) Choices() []ChoiceView {
	if c.cached {
		return c.choices
	}

	c.choices = nil
	c.cached = true

	if c.options.Choices == nil {
		return nil
	}

	for _, item := range c.options.Choices() {
		c.choices = append(c.choices, ChoiceView{
			Label:      item.Label,
			Value:      c.code(item.Value),
			Group:      item.Group,
			Attributes: item.Attributes,
		})
	}

	return c.choices
}

// ChoiceValues returns the codes accepted by the element.
func (c *Choice) ChoiceValues() []string {
	choices := c.Choices()

	out := make([]string, 0, len(choices))
	for _, ch := range choices {
		out = append(out, ch.Value)
	}

	return out
}

func (c *Choice) code(value any) string {
	switch v := c.transformer.ToForm(value, c).(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func (c *Choice) SetValue(value any) error {
	if err := c.Field.SetValue(value); err != nil {
		return err
	}

	if c.options.Multiple {
		c.value = asList(c.value)
	}

	return nil
}

// SubmitValue wraps single values into a slice for a multiple choice.
func (c *Choice) SubmitValue(value any) error {
	if c.options.Multiple {
		value = asList(value)
	}

	return c.Field.SubmitValue(value)
}

// Value of a submitted multiple choice is an empty slice when nothing was
// selected.
func (c *Choice) Value() any {
	v := c.Field.Value()
	if c.options.Multiple && v == nil {
		return []any{}
	}

	return v
}

func (c *Choice) Build() error {
	if err := c.Field.Build(); err != nil {
		return err
	}

	if !c.HasValidator(validator.Choice{}) {
		c.AddValidator(validator.Choice{})
	}

	return nil
}

func (c *Choice) View() *View {
	v := c.Field.View()

	selected := map[string]bool{}
	for _, s := range asList(c.Value()) {
		selected[fmt.Sprint(s)] = true
	}

	choices := slices.Clone(c.Choices())
	for i := range choices {
		choices[i].Selected = selected[choices[i].Value]
	}

	v.Extra["choices"] = choices
	v.Extra["multiple"] = c.options.Multiple
	v.Extra["expanded"] = c.options.Expanded

	return v
}

func (c *Choice) clone() Element {
	n := &Choice{}
	n.Field = Field{typ: c.typ}
	n.element = c.cloneElement(n)

	return n
}

func asList(value any) []any {
	if value == nil {
		return []any{}
	}

	if list, ok := value.([]any); ok {
		return list
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{value}
	}

	out := make([]any, 0, rv.Len())
	for i := range rv.Len() {
		out = append(out, rv.Index(i).Interface())
	}

	return out
}
