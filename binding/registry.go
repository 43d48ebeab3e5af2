package binding

import (
	"fmt"
	"reflect"
	"sort"
)

// MapType is the builtin data type name for map[string]any.
const MapType = "map"

// Instantiator creates empty objects from data type names.
type Instantiator interface {
	Instantiate(name string) (any, error)
}

// Registry maps data type names to Go types so the hydrator can create
// missing objects.
type Registry struct {
	types map[string]reflect.Type
}

var _ Instantiator = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{
		types: map[string]reflect.Type{
			MapType: reflect.TypeFor[map[string]any](),
		},
	}
}

// Register names the type of sample. Pointers are followed.
func (r *Registry) Register(name string, sample any) {
	_, t := ptrDepthAndBase(reflect.TypeOf(sample))
	r.types[name] = t
}

// RegisterType names the type T.
func RegisterType[T any](r *Registry, name string) {
	_, t := ptrDepthAndBase(reflect.TypeFor[T]())
	r.types[name] = t
}

func (r *Registry) Lookup(name string) (reflect.Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Instantiate creates an empty object of the named type.
func (r *Registry) Instantiate(name string) (any, error) {
	t, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}

	return NewOf(t), nil
}

// NewOf creates an empty object of type t: a pointer for structs and
// scalars, an empty map or slice for those kinds. Pointer types are
// followed.
func NewOf(t reflect.Type) any {
	_, t = ptrDepthAndBase(t)

	switch Shape(t) {
	case ShapeMap:
		return reflect.MakeMap(t).Interface()
	case ShapeInterface:
		return map[string]any{}
	case ShapeSlice:
		if t.Kind() == reflect.Slice {
			return reflect.MakeSlice(t, 0, 0).Interface()
		}
	}

	return reflect.New(t).Interface()
}
