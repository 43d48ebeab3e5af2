package binding

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"form-binder/internal/match"
	"form-binder/primitive"
)

// PropertyAccessor reads and writes named properties of objects.
type PropertyAccessor interface {
	// Get reports false when obj has no readable property of that name.
	Get(obj any, name string) (any, bool)
	Set(obj any, name string, value any) error
}

// PropertyTyper is implemented by accessors knowing the declared type of a
// property, used to create missing objects.
type PropertyTyper interface {
	TypeOf(obj any, name string) (reflect.Type, bool)
}

// PropertyLister is implemented by accessors able to list properties, used
// for suggestions in errors.
type PropertyLister interface {
	Properties(obj any) []string
}

var errorType = reflect.TypeFor[error]()

// ReflectAccessor accesses struct fields, accessor methods and string keyed
// maps through reflection.
//
// A struct field matches a property name by, in order: its `form` tag, its
// `json` tag, its exact name, its name ignoring case, its normalized name
// ("last_name" matches LastName). A `form:"-"` tag hides the field.
// Methods Get<Name>, Is<Name>, Has<Name> and <Name> are getters, Set<Name>
// is a setter; they win over fields.
type ReflectAccessor struct {
	allowed primitive.CategoryEnum
}

// NewReflectAccessor creates an accessor converting written values within
// the allowed categories. CategoryNone allows every category.
func NewReflectAccessor(allowed primitive.CategoryEnum) *ReflectAccessor {
	if allowed == primitive.CategoryNone {
		allowed = primitive.CategoryAll
	}

	return &ReflectAccessor{allowed: allowed}
}

var getterPrefixes = []string{"Get", "Is", "Has", ""}

func (a *ReflectAccessor) Get(obj any, name string) (any, bool) {
	if obj == nil {
		return nil, false
	}

	rv := reflect.ValueOf(obj)
	if m, ok := method(rv, name, getterPrefixes, isGetter); ok {
		return m.Call(nil)[0].Interface(), true
	}

	v := indirect(rv)
	if !v.IsValid() {
		return nil, false
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}

		item := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		if !item.IsValid() {
			return nil, true
		}

		return item.Interface(), true

	case reflect.Struct:
		f, ok := fieldByProperty(v.Type(), name)
		if !ok {
			return nil, false
		}

		fv, err := v.FieldByIndexErr(f.Index)
		if err != nil {
			return nil, true
		}

		return fv.Interface(), true
	}

	return nil, false
}

func (a *ReflectAccessor) Set(obj any, name string, value any) error {
	if obj == nil {
		return ErrNoSetter
	}

	rv := reflect.ValueOf(obj)
	if m, ok := method(rv, name, []string{"Set"}, isSetter); ok {
		in, err := primitive.Convert(value, m.Type().In(0), a.allowed)
		if err != nil {
			return err
		}

		out := m.Call([]reflect.Value{in})
		if len(out) > 0 && !out[len(out)-1].IsNil() {
			return out[len(out)-1].Interface().(error)
		}

		return nil
	}

	v := indirect(rv)
	if !v.IsValid() {
		return ErrNoSetter
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return ErrNoSetter
		}

		if v.IsNil() {
			return fmt.Errorf("%w: nil map", ErrNoSetter)
		}

		item, err := primitive.Convert(value, v.Type().Elem(), a.allowed)
		if err != nil {
			return err
		}

		v.SetMapIndex(reflect.ValueOf(name).Convert(v.Type().Key()), item)

		return nil

	case reflect.Struct:
		f, ok := fieldByProperty(v.Type(), name)
		if !ok {
			return ErrNoSetter
		}

		fv, err := v.FieldByIndexErr(f.Index)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrNoSetter, err)
		}

		if !fv.CanSet() {
			return ErrNotAddressable
		}

		item, err := primitive.Convert(value, fv.Type(), a.allowed)
		if err != nil {
			return err
		}

		fv.Set(item)

		return nil
	}

	return ErrNoSetter
}

func (a *ReflectAccessor) TypeOf(obj any, name string) (reflect.Type, bool) {
	if obj == nil {
		return nil, false
	}

	rv := reflect.ValueOf(obj)
	if m, ok := method(rv, name, getterPrefixes, isGetter); ok {
		return m.Type().Out(0), true
	}

	_, t := ptrDepthAndBase(rv.Type())

	switch t.Kind() {
	case reflect.Map:
		return t.Elem(), t.Key().Kind() == reflect.String
	case reflect.Struct:
		if f, ok := fieldByProperty(t, name); ok {
			return f.Type, true
		}
	}

	return nil, false
}

func (a *ReflectAccessor) Properties(obj any) []string {
	v := indirect(reflect.ValueOf(obj))
	if !v.IsValid() {
		return nil
	}

	var out []string

	switch v.Kind() {
	case reflect.Map:
		for _, k := range v.MapKeys() {
			out = append(out, fmt.Sprint(k.Interface()))
		}
	case reflect.Struct:
		for _, f := range reflect.VisibleFields(v.Type()) {
			if name, ok := propertyName(f); ok {
				out = append(out, name)
			}
		}
	}

	slices.Sort(out)

	return out
}

func isGetter(t reflect.Type) bool {
	return t.NumIn() == 0 && t.NumOut() >= 1 && t.NumOut() <= 2 &&
		(t.NumOut() == 1 || t.Out(1).Implements(errorType))
}

func isSetter(t reflect.Type) bool {
	return t.NumIn() == 1 && (t.NumOut() == 0 || (t.NumOut() == 1 && t.Out(0).Implements(errorType)))
}

// method finds an exported method named <prefix><name>, name compared in
// normalized form.
func method(rv reflect.Value, name string, prefixes []string, accept func(reflect.Type) bool) (reflect.Value, bool) {
	if !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return reflect.Value{}, false
	}

	t := rv.Type()

	for _, prefix := range prefixes {
		for i := range t.NumMethod() {
			m := t.Method(i)
			if !strings.HasPrefix(m.Name, prefix) || !match.SameIdent(m.Name[len(prefix):], name) {
				continue
			}

			if mv := rv.Method(i); accept(mv.Type()) {
				return mv, true
			}
		}
	}

	return reflect.Value{}, false
}

// propertyName is the name a struct field is exposed under.
func propertyName(f reflect.StructField) (string, bool) {
	if !f.IsExported() || f.Anonymous {
		return "", false
	}

	if tag, ok := f.Tag.Lookup("form"); ok {
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			return "", false
		}

		if name != "" {
			return name, true
		}
	}

	if tag, ok := f.Tag.Lookup("json"); ok {
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			return name, true
		}
	}

	return f.Name, true
}

func fieldByProperty(t reflect.Type, name string) (reflect.StructField, bool) {
	fields := reflect.VisibleFields(t)

	matchers := []func(f reflect.StructField, property string) bool{
		func(_ reflect.StructField, property string) bool { return property == name },
		func(f reflect.StructField, _ string) bool { return f.Name == name },
		func(f reflect.StructField, _ string) bool { return strings.EqualFold(f.Name, name) },
		func(f reflect.StructField, property string) bool {
			return match.SameIdent(f.Name, name) || match.SameIdent(property, name)
		},
	}

	for _, matches := range matchers {
		for _, f := range fields {
			property, ok := propertyName(f)
			if ok && matches(f, property) {
				return f, true
			}
		}
	}

	return reflect.StructField{}, false
}
