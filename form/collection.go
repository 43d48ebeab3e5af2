package form

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"go.uber.org/multierr"

	"form-binder/internal/common"
	"form-binder/utils"
	"form-binder/validator"
)

// Callback observes a row of a collection.
type Callback func(c *Collection, el Element)

// Collection is a composite of rows cloned from a prototype and keyed by
// strings, numeric keys first in numeric order.
type Collection struct {
	element

	prototype     Element
	keys          []string
	children      map[string]Element
	submittedKeys []string

	onComplete []Callback
	onAdd      []Callback
	onRemove   []Callback
}

// NewCollection creates a collection of rows shaped like prototype.
func NewCollection(name string, prototype Element, opts ...Option) *Collection {
	c := &Collection{children: map[string]Element{}}
	c.element = newElement(c, name, opts)

	if prototype != nil {
		detach(prototype)
		prototype.base().parent = c
		c.prototype = prototype
	}

	c.complete(0)

	return c
}

func (c *Collection) Type() string { return "collection" }

func (c *Collection) Kind() Kind { return KindCollection }

func (c *Collection) Prototype() Element { return c.prototype }

// OnComplete registers a callback for rows created by SetValue.
func (c *Collection) OnComplete(cb Callback) *Collection {
	c.onComplete = append(c.onComplete, cb)
	return c
}

// OnAdd registers a callback for rows created by SubmitValue.
func (c *Collection) OnAdd(cb Callback) *Collection {
	c.onAdd = append(c.onAdd, cb)
	return c
}

// OnRemove registers a callback for rows deleted by SubmitValue. The row is
// already detached when the callback runs.
func (c *Collection) OnRemove(cb Callback) *Collection {
	c.onRemove = append(c.onRemove, cb)
	return c
}

// Keys returns the keys of all rows in order.
func (c *Collection) Keys() []string {
	return slices.Clone(c.keys)
}

// Child returns the row with the given key.
func (c *Collection) Child(key string) (Element, bool) {
	el, ok := c.children[key]
	return el, ok
}

// Children returns all rows in key order.
func (c *Collection) Children() []Element {
	out := make([]Element, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.children[k])
	}

	return out
}

func (c *Collection) Len() int { return len(c.keys) }

// IndexOf returns the key of a row, comparing identities. The prototype
// is always found under PrototypeKey.
func (c *Collection) IndexOf(el Element) (string, bool) {
	if el != nil && el == c.prototype {
		return PrototypeKey, true
	}

	for _, k := range c.keys {
		if c.children[k] == el {
			return k, true
		}
	}

	return "", false
}

// SubmittedKeys returns the keys present in the last submission.
func (c *Collection) SubmittedKeys() []string {
	return slices.Clone(c.submittedKeys)
}

// ValueKeys returns the keys making up the value: the submitted keys once
// the form is submitted, all keys otherwise.
func (c *Collection) ValueKeys() []string {
	if !c.isSubmitted() {
		return c.Keys()
	}

	submitted := make(map[string]bool, len(c.submittedKeys))
	for _, k := range c.submittedKeys {
		submitted[k] = true
	}

	var out []string

	for _, k := range c.keys {
		if submitted[k] {
			out = append(out, k)
		}
	}

	return out
}

// complete pads the collection with fresh rows up to max(MinElements, n),
// bounded by MaxElements. Padding runs no callback.
func (c *Collection) complete(n int) {
	if c.prototype == nil {
		return
	}

	target := utils.Clamp(0, max(c.options.MinElements, n), c.options.MaxElements)

	for len(c.keys) < target {
		c.insert(common.NextKey(c.keys), c.prototype.clone())
	}
}

func (c *Collection) insert(key string, el Element) {
	el.base().parent = c
	c.children[key] = el
	c.keys = append(c.keys, key)
	common.SortKeys(c.keys)
}

func (c *Collection) newRow(key string) Element {
	el := c.prototype.clone()
	c.insert(key, el)

	return el
}

func (c *Collection) entries(value any) (map[string]any, []string, error) {
	if value == nil {
		return map[string]any{}, nil, nil
	}

	values, keys, ok := Entries(value)
	if !ok {
		return nil, nil, &InputTypeError{Element: c.FormName(), Expected: "a list or a map", Got: value}
	}

	return values, keys, nil
}

// SetValue updates existing rows and creates missing ones. It never deletes.
func (c *Collection) SetValue(value any) error {
	if c.prototype == nil {
		return &ConfigurationError{Element: c.FormName(), Err: ErrNoPrototype}
	}

	values, keys, err := c.entries(value)
	if err != nil {
		return err
	}

	c.complete(len(keys))

	var errs error

	for _, k := range keys {
		child, ok := c.children[k]
		if !ok {
			child = c.newRow(k)
			c.fire(c.onComplete, child)
		}

		errs = multierr.Append(errs, child.SetValue(values[k]))
	}

	c.complete(0)

	return errs
}

// SubmitValue reconciles the rows with the submitted keys: rows missing from
// the submission are removed, new keys get new rows. The collection is then
// padded again to MinElements.
func (c *Collection) SubmitValue(value any) error {
	if c.prototype == nil {
		return &ConfigurationError{Element: c.FormName(), Err: ErrNoPrototype}
	}

	values, keys, err := c.entries(value)
	if err != nil {
		return err
	}

	c.complete(len(keys))
	c.submittedKeys = slices.Clone(keys)

	for _, k := range common.Difference(c.keys, keys) {
		c.remove(k)
	}

	var errs error

	for _, k := range keys {
		if child, ok := c.children[k]; ok {
			errs = multierr.Append(errs, child.SubmitValue(values[k]))
			continue
		}

		child := c.newRow(k)
		errs = multierr.Append(errs, child.SubmitValue(values[k]))
		c.fire(c.onAdd, child)
		c.logger().Debugw("collection row added", "collection", c.FormName(), "key", k)
	}

	c.complete(0)

	return errs
}

func (c *Collection) remove(key string) {
	child := c.children[key]
	child.base().parent = nil

	c.fire(c.onRemove, child)

	delete(c.children, key)
	c.keys = slices.DeleteFunc(c.keys, func(k string) bool { return k == key })

	c.logger().Debugw("collection row removed", "collection", c.FormName(), "key", key)
}

func (c *Collection) fire(callbacks []Callback, el Element) {
	for _, cb := range callbacks {
		cb(c, el)
	}
}

func (c *Collection) Value() any {
	keys := c.ValueKeys()

	out := make(map[string]any, len(keys))
	for _, k := range keys {
		out[k] = c.children[k].Value()
	}

	return out
}

func (c *Collection) FinalValue() any {
	keys := c.ValueKeys()

	out := make(map[string]any, len(keys))
	for _, k := range keys {
		out[k] = c.children[k].FinalValue()
	}

	return c.transformer.FromForm(out, c)
}

// Build checks the prototype, builds it and every row, and bounds the
// number of rows when MinElements or MaxElements is set.
func (c *Collection) Build() error {
	if c.prototype == nil {
		return &ConfigurationError{Element: c.FormName(), Err: ErrNoPrototype}
	}

	errs := c.prototype.Build()
	for _, child := range c.children {
		errs = multierr.Append(errs, child.Build())
	}

	if (c.options.MinElements > 0 || c.options.MaxElements > 0) && !c.HasValidator(validator.Count{}) {
		c.AddValidator(validator.Count{Min: c.options.MinElements, Max: c.options.MaxElements})
	}

	return errs
}

func (c *Collection) Validate() bool {
	valid := c.validateSelf()
	for _, k := range c.ValueKeys() {
		valid = c.children[k].Validate() && valid
	}

	return valid
}

func (c *Collection) IsValid() bool { return c.Validate() }

func (c *Collection) View() *View {
	v := newView(&c.element)
	v.Extra["min_elements"] = c.options.MinElements
	v.Extra["max_elements"] = c.options.MaxElements
	v.Extra["editable"] = c.options.Editable

	for _, k := range c.keys {
		v.Children = append(v.Children, c.children[k].View())
	}

	if c.prototype != nil {
		v.Prototype = c.prototype.View()
	}

	return v
}

func (c *Collection) clone() Element {
	n := &Collection{children: map[string]Element{}}
	n.element = c.cloneElement(n)
	n.onComplete = slices.Clone(c.onComplete)
	n.onAdd = slices.Clone(c.onAdd)
	n.onRemove = slices.Clone(c.onRemove)

	if c.prototype != nil {
		n.prototype = c.prototype.clone()
		n.prototype.base().parent = n
	}

	n.complete(0)

	return n
}

// Entries reads a map or a list as values keyed by strings, keys sorted.
// It reports false for any other shape.
func Entries(value any) (map[string]any, []string, bool) {
	if m, ok := value.(map[string]any); ok {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}

		common.SortKeys(keys)

		return m, keys, true
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return map[string]any{}, nil, true
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		values := make(map[string]any, rv.Len())
		keys := make([]string, 0, rv.Len())

		for i := range rv.Len() {
			k := strconv.Itoa(i)
			values[k] = rv.Index(i).Interface()
			keys = append(keys, k)
		}

		return values, keys, true

	case reflect.Map:
		values := make(map[string]any, rv.Len())
		keys := make([]string, 0, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			k := fmt.Sprint(iter.Key().Interface())
			values[k] = iter.Value().Interface()
			keys = append(keys, k)
		}

		common.SortKeys(keys)

		return values, keys, true
	}

	return nil, nil, false
}
