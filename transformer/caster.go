package transformer

import (
	"errors"
	"path"
	"reflect"
	"runtime"
	"strings"

	"form-binder/primitive"
	"form-binder/utils"
)

var (
	ErrIsNotACaster         = errors.New("provided function is not a recognizable caster")
	ErrCasterIsNotAFunction = errors.New("provided caster is not a function")
	ErrDoublePointer        = errors.New("caster function does not support double pointers")
)

var errorType = reflect.TypeFor[error]()

// CasterFunc describes a plain Go conversion function.
type CasterFunc struct {
	Src, Dst     reflect.Type
	PackageAlias string
	Name         string
	HasBool      bool
	HasErr       bool

	fn reflect.Value
}

// ParseCaster inspects fn and describes it if it is a conversion function.
//
// Supports signatures:
//   - func(src Type) (dst Type)
//   - func(src Type) (dst Type, bool)
//   - func(src Type) (dst Type, error)
//   - func(src Type) (dst Type, bool, error)
func ParseCaster(fn any) (CasterFunc, error) {
	fnVal := reflect.ValueOf(fn)
	if fnVal.Kind() != reflect.Func {
		return CasterFunc{}, ErrCasterIsNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.NumIn() != 1 || fnType.NumOut() == 0 {
		return CasterFunc{}, ErrIsNotACaster
	}

	src, dst := fnType.In(0), fnType.Out(0)
	if isDoublePointer(src) || isDoublePointer(dst) {
		return CasterFunc{}, ErrDoublePointer
	}

	alias, name := utils.Unpack2(strings.SplitN(runtime.FuncForPC(fnVal.Pointer()).Name(), ".", 2))

	caster := CasterFunc{
		Src:          src,
		Dst:          dst,
		Name:         name,
		PackageAlias: utils.Second(path.Split(alias)),
		fn:           fnVal,
	}

	switch fnType.NumOut() {
	case 1:
		return caster, nil

	case 2:
		switch last := fnType.Out(1); {
		case last.Kind() == reflect.Bool:
			caster.HasBool = true
		case last.Implements(errorType):
			caster.HasErr = true
		default:
			return CasterFunc{}, ErrIsNotACaster
		}

		return caster, nil

	case 3:
		if fnType.Out(1).Kind() != reflect.Bool || !fnType.Out(2).Implements(errorType) {
			return CasterFunc{}, ErrIsNotACaster
		}

		caster.HasBool = true
		caster.HasErr = true

		return caster, nil
	}

	return CasterFunc{}, ErrIsNotACaster
}

func isDoublePointer(t reflect.Type) bool {
	return t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Pointer
}

// Call converts value to the source type, calls the function and returns
// its result, or nil when the input does not convert, the function reports
// false or returns an error.
func (c CasterFunc) Call(value any) any {
	if value == nil || !c.fn.IsValid() {
		return nil
	}

	in, err := primitive.Convert(value, c.Src, primitive.CategoryAll)
	if err != nil {
		return nil
	}

	out := c.fn.Call([]reflect.Value{in})

	if c.HasErr && !out[len(out)-1].IsNil() {
		return nil
	}

	if c.HasBool && !out[1].Bool() {
		return nil
	}

	return out[0].Interface()
}

// String returns the qualified function name, e.g. "strconv.Itoa".
func (c CasterFunc) String() string {
	if c.PackageAlias == "" {
		return c.Name
	}

	return c.PackageAlias + "." + c.Name
}

// Caster is a transformer made of two conversion functions. A nil function
// leaves its direction untouched.
type Caster struct {
	toForm, fromForm *CasterFunc
}

// NewCaster builds a transformer from plain functions such as
// strconv.Itoa (to form) and strconv.Atoi (from form).
func NewCaster(toForm, fromForm any) (*Caster, error) {
	c := &Caster{}

	if toForm != nil {
		fn, err := ParseCaster(toForm)
		if err != nil {
			return nil, err
		}

		c.toForm = &fn
	}

	if fromForm != nil {
		fn, err := ParseCaster(fromForm)
		if err != nil {
			return nil, err
		}

		c.fromForm = &fn
	}

	return c, nil
}

func (c *Caster) ToForm(value any, _ Target) any {
	if c.toForm == nil {
		return value
	}

	return c.toForm.Call(value)
}

func (c *Caster) FromForm(value any, _ Target) any {
	if c.fromForm == nil {
		return value
	}

	return c.fromForm.Call(value)
}
