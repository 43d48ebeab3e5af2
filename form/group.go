package form

import (
	"fmt"
	"reflect"
	"slices"

	"go.uber.org/multierr"
)

// Group is a composite of named children. Its value is a map keyed by the
// child names.
type Group struct {
	element

	children  []Element
	anonymous int
	mapped    any
}

func NewGroup(name string, opts ...Option) *Group {
	g := &Group{}
	g.element = newElement(g, name, opts)

	return g
}

// AsGroup returns the group behind a group element, including a form.
func AsGroup(el Element) (*Group, bool) {
	switch g := el.(type) {
	case *Group:
		return g, true
	case *Form:
		return g.Group, true
	}

	return nil, false
}

func (g *Group) Type() string { return "group" }

func (g *Group) Kind() Kind { return KindGroup }

// Add attaches children in order. A child with the name of an existing
// child replaces it. A child attached elsewhere is moved here.
func (g *Group) Add(children ...Element) *Group {
	for _, child := range children {
		if child == nil {
			continue
		}

		if child.Name() == "" {
			g.anonymous++
			continue
		}

		detach(child)
		child.base().parent = g.self

		if i := slices.IndexFunc(g.children, func(c Element) bool { return c.Name() == child.Name() }); i >= 0 {
			g.children[i].base().parent = nil
			g.children[i] = child

			continue
		}

		g.children = append(g.children, child)
	}

	return g
}

// Remove detaches the named child.
func (g *Group) Remove(name string) (Element, bool) {
	i := slices.IndexFunc(g.children, func(c Element) bool { return c.Name() == name })
	if i < 0 {
		return nil, false
	}

	child := g.children[i]
	g.children = slices.Delete(g.children, i, i+1)
	child.base().parent = nil

	return child, true
}

func detach(child Element) {
	if parent, ok := AsGroup(child.Parent()); ok {
		parent.Remove(child.Name())
	}
}

func (g *Group) Get(name string) (Element, bool) {
	for _, c := range g.children {
		if c.Name() == name {
			return c, true
		}
	}

	return nil, false
}

func (g *Group) Has(name string) bool {
	_, ok := g.Get(name)
	return ok
}

// Children returns the children in declaration order.
func (g *Group) Children() []Element {
	return slices.Clone(g.children)
}

// Mapped returns the object bound to the group, nil if none.
func (g *Group) Mapped() any { return g.mapped }

// SetMapped binds an object, overriding the lookup in the parent object.
func (g *Group) SetMapped(obj any) { g.mapped = obj }

// SetValue forwards map entries to the children of the same name. A nil
// value resets nothing.
func (g *Group) SetValue(value any) error {
	values, err := groupEntries(g, value)
	if err != nil {
		return err
	}

	var errs error

	for _, child := range g.children {
		if v, ok := values[child.Name()]; ok {
			errs = multierr.Append(errs, child.SetValue(v))
		}
	}

	return errs
}

// SubmitValue forwards the submitted entries; children without an entry
// receive nil.
func (g *Group) SubmitValue(value any) error {
	values, err := groupEntries(g, value)
	if err != nil {
		return err
	}

	var errs error

	for _, child := range g.children {
		errs = multierr.Append(errs, child.SubmitValue(values[child.Name()]))
	}

	return errs
}

func groupEntries(g *Group, value any) (map[string]any, error) {
	if value == nil {
		return map[string]any{}, nil
	}

	values, _, ok := Entries(value)
	if !ok || isList(value) {
		return nil, &InputTypeError{Element: g.self.FormName(), Expected: "a map", Got: value}
	}

	return values, nil
}

// isList reports whether value is a slice or an array, behind any pointers.
func isList(value any) bool {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}

	return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
}

func (g *Group) Value() any {
	out := make(map[string]any, len(g.children))
	for _, c := range g.children {
		out[c.Name()] = c.Value()
	}

	return out
}

func (g *Group) FinalValue() any {
	out := make(map[string]any, len(g.children))
	for _, c := range g.children {
		out[c.Name()] = c.FinalValue()
	}

	return g.transformer.FromForm(out, g.self)
}

func (g *Group) Build() error {
	var errs error

	if g.anonymous > 0 {
		errs = multierr.Append(errs, &ConfigurationError{
			Element: g.self.FormName(),
			Err:     fmt.Errorf("%w: %d anonymous children ignored", ErrAnonymousChild, g.anonymous),
		})
	}

	for _, c := range g.children {
		errs = multierr.Append(errs, c.Build())
	}

	return errs
}

func (g *Group) Validate() bool {
	valid := g.validateSelf()
	for _, c := range g.children {
		valid = c.Validate() && valid
	}

	return valid
}

func (g *Group) IsValid() bool { return g.self.Validate() }

func (g *Group) View() *View {
	v := newView(&g.element)
	for _, c := range g.children {
		v.Children = append(v.Children, c.View())
	}

	return v
}

func (g *Group) clone() Element {
	n := &Group{anonymous: g.anonymous}
	n.element = g.cloneElement(n)

	for _, c := range g.children {
		child := c.clone()
		child.base().parent = n
		n.children = append(n.children, child)
	}

	return n
}
