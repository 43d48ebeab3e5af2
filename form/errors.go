package form

import (
	"errors"
	"fmt"
)

var (
	ErrNoPrototype    = errors.New("collection has no prototype")
	ErrAnonymousChild = errors.New("group children must be named")
)

// ConfigurationError reports a tree that cannot work as built.
type ConfigurationError struct {
	Element string
	Err     error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("form configuration of %q: %v", e.Element, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// InputTypeError reports data of the wrong shape given to a composite element.
type InputTypeError struct {
	Element  string
	Expected string
	Got      any
}

func (e *InputTypeError) Error() string {
	return fmt.Sprintf("element %q expects %s, got %T", e.Element, e.Expected, e.Got)
}
