package binding

import (
	"reflect"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"form-binder/form"
	"form-binder/internal/match"
)

// Collector reads the values of a form tree out of its mapped objects.
type Collector struct {
	accessor PropertyAccessor
	logger   *zap.SugaredLogger
}

func NewCollector(accessor PropertyAccessor, logger *zap.SugaredLogger) *Collector {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Collector{accessor: accessor, logger: logger}
}

// Collect returns the value of el read from obj, shaped like the element
// values: maps for groups and collections, raw properties for leaves.
func (c *Collector) Collect(el form.Element, obj any) (any, error) {
	return c.collect(el, obj)
}

// Seed collects the form data from its mapped object and sets it as the
// default value. A form without mapped object is left untouched.
func (c *Collector) Seed(f *form.Form) error {
	if f.Mapped() == nil {
		return nil
	}

	data, err := c.collect(f, nil)
	if err != nil {
		return err
	}

	c.logger.Debugw("form seeded", "form", f.Name())

	return f.SetValue(data)
}

func (c *Collector) collect(el form.Element, parent any) (any, error) {
	target, err := c.target(el, parent)
	if err != nil {
		return nil, err
	}

	return c.value(el, target)
}

// target resolves the object el maps to inside parent.
func (c *Collector) target(el form.Element, parent any) (any, error) {
	if g, ok := form.AsGroup(el); ok && g.Mapped() != nil {
		return g.Mapped(), nil
	}

	if el.Name() == "" {
		return parent, nil
	}

	if isNil(parent) {
		return nil, nil
	}

	v, ok := c.accessor.Get(parent, el.Name())
	if !ok {
		return nil, propertyError(opCollect, c.accessor, el, parent, ErrNoGetter)
	}

	return v, nil
}

// value shapes target as the value of el.
func (c *Collector) value(el form.Element, target any) (any, error) {
	switch el.Kind() {
	case form.KindGroup:
		g, _ := form.AsGroup(el)

		out := map[string]any{}
		if isNil(target) {
			return out, nil
		}

		var errs error

		for _, child := range g.Children() {
			if !child.Options().Mapped {
				continue
			}

			v, err := c.collect(child, target)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}

			out[child.Name()] = v
		}

		return out, errs

	case form.KindCollection:
		coll := el.(*form.Collection)

		out := map[string]any{}
		if isNil(target) {
			return out, nil
		}

		items, keys, ok := form.Entries(target)
		if !ok {
			return nil, &Error{Op: opCollect, Element: el.FormName(), Type: typeStr(reflect.TypeOf(target)), Err: ErrNotIterable}
		}

		var errs error

		for _, k := range keys {
			v, err := c.value(coll.Prototype(), items[k])
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}

			out[k] = v
		}

		return out, errs
	}

	return target, nil
}

func propertyError(op string, accessor PropertyAccessor, el form.Element, obj any, err error) *Error {
	e := &Error{
		Op:       op,
		Element:  el.FormName(),
		Property: el.Name(),
		Type:     typeStr(reflect.TypeOf(obj)),
		Err:      err,
	}

	if lister, ok := accessor.(PropertyLister); ok {
		e.Suggestions = match.Rank(el.Name(), lister.Properties(obj), match.DefaultThreshold).Top(3)
	}

	return e
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}

	return false
}
