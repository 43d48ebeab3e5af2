package binding

import (
	"reflect"
	"strconv"

	"form-binder/primitive"
)

//go:generate go tool stringer -type=ShapeEnum -output=shape_string.go

// ShapeEnum classifies the Go types properties are read from and written to.
type ShapeEnum int

const (
	ShapeUnknown ShapeEnum = iota
	ShapePrimitive
	ShapeInterface
	ShapeSlice
	ShapeMap
	ShapeStruct

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

// Shape classifies t after following pointers.
func Shape(t reflect.Type) ShapeEnum {
	if t == nil {
		return ShapeUnknown
	}

	_, t = ptrDepthAndBase(t)

	switch t.Kind() {
	case reflect.Interface:
		return ShapeInterface
	case reflect.Slice, reflect.Array:
		return ShapeSlice
	case reflect.Map:
		return ShapeMap
	}

	if primitive.FromReflectType(t) != 0 {
		return ShapePrimitive
	}

	if t.Kind() == reflect.Struct {
		return ShapeStruct
	}

	return ShapeUnknown
}

// ptrDepthAndBase returns the pointer depth and the final base type.
func ptrDepthAndBase(t reflect.Type) (depth int, base reflect.Type) {
	depth, base = 0, t
	for base != nil && base.Kind() == reflect.Pointer {
		depth++
		base = base.Elem()
	}

	return
}

// typeStr renders fully qualified type names for messages.
func typeStr(t reflect.Type) string {
	if t == nil {
		return "nil"
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + typeStr(t.Elem())
	case reflect.Slice:
		return "[]" + typeStr(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + typeStr(t.Elem())
	case reflect.Map:
		return "map[" + typeStr(t.Key()) + "]" + typeStr(t.Elem())
	default:
		if t.PkgPath() == "" {
			return t.String()
		}

		return t.PkgPath() + "." + t.Name()
	}
}

// indirect follows pointers and interfaces down to a concrete value.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}

		v = v.Elem()
	}

	return v
}
