package definition

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"

	"form-binder/primitive"
	"form-binder/transformer"
	"form-binder/validator"
)

var (
	ErrUnknownTransformer = errors.New("unknown transformer")
	ErrUnknownValidator   = errors.New("unknown validator")
	ErrInvalidParameter   = errors.New("invalid validator parameter")
)

// TransformerFactory creates the transformer of one element.
type TransformerFactory func(def *ElementDef) (transformer.Transformer, error)

// ValidatorFactory creates a validator from its parameters.
type ValidatorFactory func(def ValidatorDef) (validator.Validator, error)

// Registry holds the named transformers and validators definitions refer to.
type Registry struct {
	transformers map[string]TransformerFactory
	validators   map[string]ValidatorFactory
}

// NewRegistry creates a registry with the builtin transformers and validators.
func NewRegistry() *Registry {
	r := &Registry{
		transformers: make(map[string]TransformerFactory),
		validators:   make(map[string]ValidatorFactory),
	}

	r.AddTransformer("identity", fixed(transformer.Identity{}))
	r.AddTransformer("number", fixed(transformer.Number{}))
	r.AddTransformer("json", fixed(transformer.JSON{}))
	r.AddTransformer("json_strip_nulls", fixed(transformer.JSON{StripNulls: true}))
	r.AddTransformer("array_filter", fixed(transformer.ArrayFilter{}))
	r.AddTransformer("array_values", fixed(transformer.ArrayValues{}))
	r.AddTransformer("boolean", func(def *ElementDef) (transformer.Transformer, error) {
		return transformer.Boolean{OnValue: def.OnValue}, nil
	})
	r.AddTransformer("datetime", func(def *ElementDef) (transformer.Transformer, error) {
		return transformer.DateTime{Layout: def.Layout}, nil
	})

	r.AddValidator("not_empty", func(def ValidatorDef) (validator.Validator, error) {
		return validator.NotEmpty{Message: def.Message}, nil
	})
	r.AddValidator("format", func(def ValidatorDef) (validator.Validator, error) {
		return validator.Format{Message: def.Message}, nil
	})
	r.AddValidator("length", func(def ValidatorDef) (validator.Validator, error) {
		lo, hi, err := bounds(def)
		if err != nil {
			return nil, err
		}

		return validator.Length{Min: lo, Max: hi, Message: def.Message}, nil
	})
	r.AddValidator("count", func(def ValidatorDef) (validator.Validator, error) {
		lo, hi, err := bounds(def)
		if err != nil {
			return nil, err
		}

		return validator.Count{Min: lo, Max: hi, Message: def.Message}, nil
	})
	r.AddValidator("pattern", func(def ValidatorDef) (validator.Validator, error) {
		expr, err := param[string](def, "pattern")
		if err != nil {
			return nil, err
		}

		if expr == "" {
			return nil, fmt.Errorf("%w: %s requires %q", ErrInvalidParameter, def.Name, "pattern")
		}

		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidParameter, def.Name, err)
		}

		return validator.Pattern{Regexp: re, Message: def.Message}, nil
	})
	r.AddValidator("choice", func(def ValidatorDef) (validator.Validator, error) {
		allowed, err := param[[]string](def, "allowed")
		if err != nil {
			return nil, err
		}

		v := validator.Choice{Message: def.Message}
		if allowed != nil {
			v.Allowed = func() []string { return allowed }
		}

		return v, nil
	})

	return r
}

func fixed(t transformer.Transformer) TransformerFactory {
	return func(*ElementDef) (transformer.Transformer, error) { return t, nil }
}

// param reads an optional parameter converted to T.
func param[T any](def ValidatorDef, key string) (T, error) {
	var zero T

	raw, ok := def.Params[key]
	if !ok || raw == nil {
		return zero, nil
	}

	v, err := primitive.Convert(raw, reflect.TypeFor[T](), primitive.CategoryAll)
	if err != nil {
		return zero, fmt.Errorf("%w: %s %q: %w", ErrInvalidParameter, def.Name, key, err)
	}

	return v.Interface().(T), nil
}

func bounds(def ValidatorDef) (int, int, error) {
	lo, err := param[int](def, "min")
	if err != nil {
		return 0, 0, err
	}

	hi, err := param[int](def, "max")
	if err != nil {
		return 0, 0, err
	}

	if lo < 0 || hi < 0 || (hi > 0 && lo > hi) {
		return 0, 0, fmt.Errorf("%w: %s bounds [%d, %d]", ErrInvalidParameter, def.Name, lo, hi)
	}

	return lo, hi, nil
}

// AddTransformer registers a transformer factory, replacing any previous
// one with the same name.
func (r *Registry) AddTransformer(name string, factory TransformerFactory) {
	r.transformers[name] = factory
}

// AddCaster registers a transformer built from two plain conversion
// functions, see transformer.NewCaster.
func (r *Registry) AddCaster(name string, toForm, fromForm any) error {
	c, err := transformer.NewCaster(toForm, fromForm)
	if err != nil {
		return fmt.Errorf("caster %q: %w", name, err)
	}

	r.AddTransformer(name, fixed(c))

	return nil
}

// AddValidator registers a validator factory, replacing any previous one
// with the same name.
func (r *Registry) AddValidator(name string, factory ValidatorFactory) {
	r.validators[name] = factory
}

func (r *Registry) HasTransformer(name string) bool {
	_, ok := r.transformers[name]
	return ok
}

func (r *Registry) HasValidator(name string) bool {
	_, ok := r.validators[name]
	return ok
}

// Transformer creates the named transformer for an element.
func (r *Registry) Transformer(name string, def *ElementDef) (transformer.Transformer, error) {
	factory, ok := r.transformers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransformer, name)
	}

	return factory(def)
}

// Validator creates the validator a definition refers to.
func (r *Registry) Validator(def ValidatorDef) (validator.Validator, error) {
	factory, ok := r.validators[def.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownValidator, def.Name)
	}

	return factory(def)
}

// TransformerNames returns the registered transformer names, sorted.
func (r *Registry) TransformerNames() []string {
	return sortedKeys(r.transformers)
}

// ValidatorNames returns the registered validator names, sorted.
func (r *Registry) ValidatorNames() []string {
	return sortedKeys(r.validators)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
