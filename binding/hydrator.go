package binding

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"form-binder/form"
	"form-binder/primitive"
)

// Hydrator writes the final values of a form tree into its mapped objects.
//
// Disabled and unmapped elements are skipped. Missing objects are created
// from the DataType option or the declared property type. Collections
// rebuild slices densely in key order and edit maps in place.
type Hydrator struct {
	accessor PropertyAccessor
	registry *Registry
	logger   *zap.SugaredLogger
}

func NewHydrator(accessor PropertyAccessor, registry *Registry, logger *zap.SugaredLogger) *Hydrator {
	if registry == nil {
		registry = NewRegistry()
	}

	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Hydrator{accessor: accessor, registry: registry, logger: logger}
}

// Hydrate writes the form into its mapped object. The mapped object must
// be a pointer or a map.
func (h *Hydrator) Hydrate(f *form.Form) error {
	target := f.Mapped()
	if target == nil {
		h.logger.Debugw("form has no mapped object, nothing to hydrate", "form", f.Name())
		return nil
	}

	if err := h.children(f.Group, target); err != nil {
		return err
	}

	h.logger.Debugw("form hydrated", "form", f.Name(), "type", typeStr(reflect.TypeOf(target)))

	return nil
}

func skipped(el form.Element) bool {
	return !el.Options().Mapped || el.IsDisabled()
}

func (h *Hydrator) children(g *form.Group, obj any) error {
	var errs error

	for _, child := range g.Children() {
		if skipped(child) {
			continue
		}

		errs = multierr.Append(errs, h.hydrate(child, obj))
	}

	return errs
}

// hydrate writes el into the property of its name on parent.
func (h *Hydrator) hydrate(el form.Element, parent any) error {
	if g, ok := form.AsGroup(el); ok && g.Mapped() != nil {
		return h.children(g, g.Mapped())
	}

	if el.Kind() == form.KindField {
		if err := h.accessor.Set(parent, el.Name(), el.FinalValue()); err != nil {
			return propertyError(opHydrate, h.accessor, el, parent, err)
		}

		return nil
	}

	current, ok := h.accessor.Get(parent, el.Name())
	if !ok {
		return propertyError(opHydrate, h.accessor, el, parent, ErrNoGetter)
	}

	value, changed, err := h.item(el, current, h.typeOf(parent, el.Name(), current))
	if err != nil || !changed {
		return err
	}

	if err := h.accessor.Set(parent, el.Name(), value); err != nil {
		return propertyError(opHydrate, h.accessor, el, parent, err)
	}

	return nil
}

// item hydrates el into current, an object of type typ (possibly nil), and
// returns the object to store. changed is false when current was edited in
// place and needs no write back.
func (h *Hydrator) item(el form.Element, current any, typ reflect.Type) (any, bool, error) {
	switch el.Kind() {
	case form.KindGroup:
		g, _ := form.AsGroup(el)

		target, created := current, false
		if isNil(current) {
			obj, err := h.instantiate(el, typ)
			if err != nil {
				return nil, false, err
			}

			target, created = obj, true
		}

		target, copied := addressable(target)

		return target, created || copied, h.children(g, target)

	case form.KindCollection:
		return h.collection(el.(*form.Collection), current, typ)
	}

	return el.FinalValue(), true, nil
}

func (h *Hydrator) instantiate(el form.Element, typ reflect.Type) (any, error) {
	if name := el.Options().DataType; name != "" {
		obj, err := h.registry.Instantiate(name)
		if err != nil {
			return nil, &Error{Op: opHydrate, Element: el.FormName(), Err: err}
		}

		return obj, nil
	}

	if typ == nil {
		return map[string]any{}, nil
	}

	return NewOf(typ), nil
}

// addressable copies a struct value behind a pointer so it can be written.
func addressable(obj any) (any, bool) {
	rv := reflect.ValueOf(obj)
	if rv.Kind() != reflect.Struct {
		return obj, false
	}

	p := reflect.New(rv.Type())
	p.Elem().Set(rv)

	return p.Interface(), true
}

func (h *Hydrator) typeOf(obj any, name string, current any) reflect.Type {
	if typer, ok := h.accessor.(PropertyTyper); ok {
		if t, found := typer.TypeOf(obj, name); found && t.Kind() != reflect.Interface {
			return t
		}
	}

	if current != nil {
		return reflect.TypeOf(current)
	}

	return nil
}

func (h *Hydrator) collection(c *form.Collection, current any, typ reflect.Type) (any, bool, error) {
	if name := c.Options().DataType; name != "" {
		t, ok := h.registry.Lookup(name)
		if !ok {
			return nil, false, &Error{Op: opHydrate, Element: c.FormName(), Err: fmt.Errorf("%w: %q", ErrUnknownType, name)}
		}

		typ = t
	}

	if typ == nil {
		typ = reflect.TypeFor[[]any]()
	}

	_, base := ptrDepthAndBase(typ)

	switch Shape(base) {
	case ShapeMap:
		return h.collectionMap(c, current, base)
	case ShapeSlice:
		return h.collectionSlice(c, current, base.Elem())
	}

	return h.collectionSlice(c, current, reflect.TypeFor[any]())
}

// collectionMap edits the map in place: entries without a row are deleted.
func (h *Hydrator) collectionMap(c *form.Collection, current any, typ reflect.Type) (any, bool, error) {
	m := indirect(reflect.ValueOf(current))

	created := false
	if !m.IsValid() || m.Kind() != reflect.Map || m.IsNil() {
		m = reflect.MakeMap(typ)
		created = true
	}

	keyType, elemType := m.Type().Key(), m.Type().Elem()
	keys := c.ValueKeys()

	for _, k := range m.MapKeys() {
		if !slices.Contains(keys, fmt.Sprint(k.Interface())) {
			m.SetMapIndex(k, reflect.Value{})
		}
	}

	var errs error

	for _, k := range keys {
		key, err := primitive.Convert(k, keyType, primitive.CategoryAll)
		if err != nil {
			errs = multierr.Append(errs, &Error{Op: opHydrate, Element: c.FormName(), Property: k, Err: err})
			continue
		}

		var existing any
		if v := m.MapIndex(key); v.IsValid() {
			existing = v.Interface()
		}

		row, _ := c.Child(k)

		value, _, err := h.item(row, existing, elemType)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		item, err := primitive.Convert(value, elemType, primitive.CategoryAll)
		if err != nil {
			errs = multierr.Append(errs, &Error{Op: opHydrate, Element: row.FormName(), Err: err})
			continue
		}

		m.SetMapIndex(key, item)
	}

	return m.Interface(), created, errs
}

// collectionSlice builds a new slice of elemType from the rows in key order.
// A row keyed by an index of the current slice reuses the object at that
// index.
func (h *Hydrator) collectionSlice(c *form.Collection, current any, elemType reflect.Type) (any, bool, error) {
	old := indirect(reflect.ValueOf(current))
	if old.IsValid() && Shape(old.Type()) != ShapeSlice {
		return nil, false, &Error{Op: opHydrate, Element: c.FormName(), Type: typeStr(old.Type()), Err: ErrNotIterable}
	}

	keys := c.ValueKeys()
	out := reflect.MakeSlice(reflect.SliceOf(elemType), 0, len(keys))

	var errs error

	for _, k := range keys {
		var existing any
		if i, err := strconv.Atoi(k); err == nil && old.IsValid() && i >= 0 && i < old.Len() {
			existing = old.Index(i).Interface()
		}

		row, _ := c.Child(k)

		value, _, err := h.item(row, existing, elemType)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		item, err := primitive.Convert(value, elemType, primitive.CategoryAll)
		if err != nil {
			errs = multierr.Append(errs, &Error{Op: opHydrate, Element: row.FormName(), Err: err})
			continue
		}

		out = reflect.Append(out, item)
	}

	return out.Interface(), true, errs
}
