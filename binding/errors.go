package binding

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoGetter       = errors.New("no getter for property")
	ErrNoSetter       = errors.New("no setter for property")
	ErrNotIterable    = errors.New("value is not iterable")
	ErrUnknownType    = errors.New("unknown data type")
	ErrNotAddressable = errors.New("value is not addressable, pass a pointer")
)

const (
	opCollect = "collect"
	opHydrate = "hydrate"
)

// Error is a binding failure on one element.
type Error struct {
	// Op is "collect" or "hydrate".
	Op string
	// Element is the form name of the element.
	Element  string
	Property string
	// Type is the type of the object the property was looked up on.
	Type        string
	Suggestions []string
	Err         error
}

func (e *Error) Error() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %q: %v", e.Op, e.Element, e.Err)

	if e.Property != "" {
		fmt.Fprintf(&sb, " %q", e.Property)
	}

	if e.Type != "" {
		fmt.Fprintf(&sb, " on %s", e.Type)
	}

	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&sb, " (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}

	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}
