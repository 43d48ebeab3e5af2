package primitive

import (
	"encoding"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"form-binder/internal/common"
)

var (
	ErrNotConvertible = errors.New("value is not convertible")
	ErrNotAllowed     = errors.New("conversion category is not allowed")
)

// timeLayouts are tried in order when parsing a string into time.Time.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"15:04:05",
	"15:04",
}

var (
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	stringerType        = reflect.TypeFor[fmt.Stringer]()
)

// Convert turns value into a reflect.Value assignable to target.
// nil becomes the zero value of target. Pointers are followed on the source
// side and allocated on the target side, slices and maps are converted
// element by element; a map with ordered keys converts into a slice in key
// order. Scalar conversions are limited to the given categories.
func Convert(value any, target reflect.Type, allowed CategoryEnum) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(target), nil
	}

	return convertValue(reflect.ValueOf(value), target, allowed)
}

func convertValue(v reflect.Value, target reflect.Type, allowed CategoryEnum) (reflect.Value, error) {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Zero(target), nil
		}

		v = v.Elem()
	}

	if !v.IsValid() {
		return reflect.Zero(target), nil
	}

	if v.Type().AssignableTo(target) {
		return v, nil
	}

	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Zero(target), nil
		}

		return convertValue(v.Elem(), target, allowed)
	}

	if target.Kind() == reflect.Pointer {
		inner, err := convertValue(v, target.Elem(), allowed)
		if err != nil {
			return reflect.Value{}, err
		}

		ptr := reflect.New(target.Elem())
		ptr.Elem().Set(inner)

		return ptr, nil
	}

	srcKind, dstKind := FromReflectType(v.Type()), FromReflectType(target)
	if srcKind != 0 && dstKind != 0 {
		return convertPrimitive(v, srcKind, target, dstKind, allowed)
	}

	switch target.Kind() {
	case reflect.Slice, reflect.Array:
		return convertSequence(v, target, allowed)
	case reflect.Map:
		return convertMap(v, target, allowed)
	}

	if v.Kind() == target.Kind() && v.Type().ConvertibleTo(target) {
		return v.Convert(target), nil
	}

	return reflect.Value{}, notConvertible(v, target)
}

func notConvertible(v reflect.Value, target reflect.Type) error {
	return fmt.Errorf("%w: %s to %s", ErrNotConvertible, v.Type(), target)
}

//nolint:gocyclo // one case per conversion category
func convertPrimitive(
	v reflect.Value, srcKind KindEnum,
	target reflect.Type, dstKind KindEnum,
	allowed CategoryEnum,
) (reflect.Value, error) {
	pair := ConversionPair{srcKind, dstKind}
	if srcKind != dstKind && !Allowed(pair, allowed) {
		return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrNotAllowed, srcKind, dstKind)
	}

	switch {
	case srcKind == dstKind && srcKind != KindPrimitiveEnum:
		return v.Convert(target), nil

	case srcKind.IsNumber() && dstKind.IsNumber():
		return convertNumber(v, target)

	case srcKind == KindString && dstKind.IsNumber():
		return parseNumber(v.String(), target)

	case srcKind.IsNumber() && dstKind == KindString:
		return reflect.ValueOf(formatNumber(v)).Convert(target), nil

	case srcKind == KindString && dstKind == KindBool:
		b, err := parseBool(v.String())
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.ValueOf(b).Convert(target), nil

	case srcKind == KindBool && dstKind == KindString:
		return reflect.ValueOf(strconv.FormatBool(v.Bool())).Convert(target), nil

	case srcKind.IsInteger() && dstKind == KindBool:
		return reflect.ValueOf(intOf(v) != 0), nil

	case srcKind == KindBool && dstKind.IsInteger():
		n := 0
		if v.Bool() {
			n = 1
		}

		return reflect.ValueOf(n).Convert(target), nil

	case srcKind == KindString && dstKind == KindTime:
		t, err := parseTime(v.String())
		if err != nil {
			return reflect.Value{}, err
		}

		return reflect.ValueOf(t), nil

	case srcKind == KindTime && dstKind == KindString:
		return reflect.ValueOf(v.Interface().(time.Time).Format(time.RFC3339Nano)).Convert(target), nil

	case srcKind.IsInteger() && dstKind == KindTime:
		return reflect.ValueOf(time.Unix(intOf(v), 0).UTC()), nil

	case srcKind == KindTime && dstKind.IsInteger():
		return reflect.ValueOf(v.Interface().(time.Time).Unix()).Convert(target), nil

	case srcKind == KindString && dstKind == KindDuration:
		d, err := time.ParseDuration(v.String())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %w", ErrNotConvertible, err)
		}

		return reflect.ValueOf(d), nil

	case srcKind == KindDuration && dstKind == KindString:
		return reflect.ValueOf(time.Duration(v.Int()).String()).Convert(target), nil

	case srcKind.IsInteger() && dstKind == KindDuration:
		return reflect.ValueOf(time.Duration(intOf(v))), nil

	case srcKind == KindDuration && dstKind.IsInteger():
		return reflect.ValueOf(v.Int()).Convert(target), nil

	case srcKind.IsFloat() && dstKind == KindDuration:
		return reflect.ValueOf(time.Duration(v.Float() * float64(time.Second))), nil

	case srcKind == KindDuration && dstKind.IsFloat():
		return reflect.ValueOf(time.Duration(v.Int()).Seconds()).Convert(target), nil

	case dstKind == KindPrimitiveEnum:
		return toEnum(v, srcKind, target)

	case srcKind == KindPrimitiveEnum && dstKind == KindString:
		return reflect.ValueOf(enumText(v)).Convert(target), nil
	}

	return reflect.Value{}, notConvertible(v, target)
}

func convertNumber(v reflect.Value, target reflect.Type) (reflect.Value, error) {
	probe := reflect.New(target).Elem()

	switch {
	case v.CanFloat() && target.Kind() != reflect.Float32 && target.Kind() != reflect.Float64:
		f := v.Float()
		if f != math.Trunc(f) {
			return reflect.Value{}, notConvertible(v, target)
		}

		if probe.CanInt() && probe.OverflowInt(int64(f)) || probe.CanUint() && (f < 0 || probe.OverflowUint(uint64(f))) {
			return reflect.Value{}, notConvertible(v, target)
		}

	case v.CanInt() && probe.CanInt():
		if probe.OverflowInt(v.Int()) {
			return reflect.Value{}, notConvertible(v, target)
		}

	case v.CanInt() && probe.CanUint():
		if v.Int() < 0 || probe.OverflowUint(uint64(v.Int())) {
			return reflect.Value{}, notConvertible(v, target)
		}

	case v.CanUint() && probe.CanInt():
		if v.Uint() > math.MaxInt64 || probe.OverflowInt(int64(v.Uint())) {
			return reflect.Value{}, notConvertible(v, target)
		}
	}

	return v.Convert(target), nil
}

func parseNumber(s string, target reflect.Type) (reflect.Value, error) {
	s = strings.TrimSpace(s)
	probe := reflect.New(target).Elem()

	switch {
	case probe.CanInt():
		n, err := strconv.ParseInt(s, 10, target.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %w", ErrNotConvertible, err)
		}

		probe.SetInt(n)
	case probe.CanUint():
		n, err := strconv.ParseUint(s, 10, target.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %w", ErrNotConvertible, err)
		}

		probe.SetUint(n)
	default:
		f, err := strconv.ParseFloat(s, target.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %w", ErrNotConvertible, err)
		}

		probe.SetFloat(f)
	}

	return probe, nil
}

func formatNumber(v reflect.Value) string {
	switch {
	case v.CanInt():
		return strconv.FormatInt(v.Int(), 10)
	case v.CanUint():
		return strconv.FormatUint(v.Uint(), 10)
	default:
		return strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits())
	}
}

func intOf(v reflect.Value) int64 {
	if v.CanUint() {
		return int64(v.Uint())
	}

	return v.Int()
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true, nil
	case "", "0", "false", "no", "n", "off":
		return false, nil
	}

	return false, fmt.Errorf("%w: %q is not a boolean", ErrNotConvertible, s)
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q is not a time", ErrNotConvertible, s)
}

func toEnum(v reflect.Value, srcKind KindEnum, target reflect.Type) (reflect.Value, error) {
	if srcKind == KindString && reflect.PointerTo(target).Implements(textUnmarshalerType) {
		ptr := reflect.New(target)

		err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(v.String()))
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %w", ErrNotConvertible, err)
		}

		return ptr.Elem(), nil
	}

	if srcKind == KindString && target.Kind() != reflect.String {
		return parseNumber(v.String(), target)
	}

	if v.Type().ConvertibleTo(target) && (v.Kind() == reflect.String) == (target.Kind() == reflect.String) {
		return v.Convert(target), nil
	}

	return reflect.Value{}, notConvertible(v, target)
}

func enumText(v reflect.Value) string {
	if v.Type().Implements(stringerType) {
		return v.Interface().(fmt.Stringer).String()
	}

	if v.Kind() == reflect.String {
		return v.String()
	}

	return formatNumber(v)
}

func convertSequence(v reflect.Value, target reflect.Type, allowed CategoryEnum) (reflect.Value, error) {
	var items []reflect.Value

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			items = append(items, v.Index(i))
		}
	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return common.CompareKeys(fmt.Sprint(keys[i].Interface()), fmt.Sprint(keys[j].Interface())) < 0
		})

		for _, k := range keys {
			items = append(items, v.MapIndex(k))
		}
	default:
		return reflect.Value{}, notConvertible(v, target)
	}

	var out reflect.Value
	if target.Kind() == reflect.Array {
		out = reflect.New(target).Elem()
		items = items[:min(len(items), target.Len())]
	} else {
		out = reflect.MakeSlice(target, len(items), len(items))
	}

	for i, item := range items {
		elem, err := convertValue(item, target.Elem(), allowed)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("index %d: %w", i, err)
		}

		out.Index(i).Set(elem)
	}

	return out, nil
}

func convertMap(v reflect.Value, target reflect.Type, allowed CategoryEnum) (reflect.Value, error) {
	if v.Kind() != reflect.Map {
		return reflect.Value{}, notConvertible(v, target)
	}

	out := reflect.MakeMapWithSize(target, v.Len())

	iter := v.MapRange()
	for iter.Next() {
		key, err := convertValue(iter.Key(), target.Key(), allowed)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("key %v: %w", iter.Key().Interface(), err)
		}

		elem, err := convertValue(iter.Value(), target.Elem(), allowed)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("key %v: %w", iter.Key().Interface(), err)
		}

		out.SetMapIndex(key, elem)
	}

	return out, nil
}
