package primitive_test

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"form-binder/primitive"
)

type gender string

type level int

type color int

func (c *color) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "red":
		*c = 1
	case "blue":
		*c = 2
	default:
		return assert.AnError
	}

	return nil
}

func convert[T any](t *testing.T, value any) (T, error) {
	t.Helper()

	var zero T

	v, err := primitive.Convert(value, reflect.TypeFor[T](), primitive.CategoryAll)
	if err != nil {
		return zero, err
	}

	return v.Interface().(T), nil
}

func TestConvert_Scalars(t *testing.T) {
	t.Parallel()

	i, err := convert[int](t, "42")
	require.NoError(t, err)
	assert.Equal(t, 42, i)

	i, err = convert[int](t, 42.0)
	require.NoError(t, err)
	assert.Equal(t, 42, i)

	_, err = convert[int](t, 42.5)
	require.ErrorIs(t, err, primitive.ErrNotConvertible)

	_, err = convert[int8](t, 300)
	require.ErrorIs(t, err, primitive.ErrNotConvertible)

	f, err := convert[float64](t, " 1.5 ")
	require.NoError(t, err)
	assert.InDelta(t, 1.5, f, 1e-9)

	s, err := convert[string](t, 12.25)
	require.NoError(t, err)
	assert.Equal(t, "12.25", s)

	b, err := convert[bool](t, "on")
	require.NoError(t, err)
	assert.True(t, b)

	b, err = convert[bool](t, "")
	require.NoError(t, err)
	assert.False(t, b)

	_, err = convert[bool](t, "maybe")
	require.ErrorIs(t, err, primitive.ErrNotConvertible)

	d, err := convert[time.Duration](t, "2h45m")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour+45*time.Minute, d)
}

func TestConvert_Time(t *testing.T) {
	t.Parallel()

	tm, err := convert[time.Time](t, "1980-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC), tm)

	tm, err = convert[time.Time](t, "1980-01-01T10:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1980, 1, 1, 10, 30, 0, 0, time.UTC), tm)

	_, err = convert[time.Time](t, "tomorrow")
	require.ErrorIs(t, err, primitive.ErrNotConvertible)
}

func TestConvert_Enums(t *testing.T) {
	t.Parallel()

	g, err := convert[gender](t, "f")
	require.NoError(t, err)
	assert.Equal(t, gender("f"), g)

	l, err := convert[level](t, "3")
	require.NoError(t, err)
	assert.Equal(t, level(3), l)

	c, err := convert[color](t, "Blue")
	require.NoError(t, err)
	assert.Equal(t, color(2), c)

	s, err := convert[string](t, level(7))
	require.NoError(t, err)
	assert.Equal(t, "7", s)
}

func TestConvert_PointersAndNil(t *testing.T) {
	t.Parallel()

	p, err := convert[*int](t, "5")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 5, *p)

	p, err = convert[*int](t, nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	n := 9
	i, err := convert[int](t, &n)
	require.NoError(t, err)
	assert.Equal(t, 9, i)
}

func TestConvert_Collections(t *testing.T) {
	t.Parallel()

	tags, err := convert[[]string](t, map[string]any{"2": "c", "0": "a", "1": "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, tags)

	ints, err := convert[[]int](t, []any{"1", 2.0})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ints)

	m, err := convert[map[int]string](t, map[string]any{"1": "one"})
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "one"}, m)

	_, err = convert[[]int](t, "nope")
	require.ErrorIs(t, err, primitive.ErrNotConvertible)
}

func TestConvert_Categories(t *testing.T) {
	t.Parallel()

	_, err := primitive.Convert("1", reflect.TypeFor[int](), primitive.CategorySafeNumber)
	require.ErrorIs(t, err, primitive.ErrNotAllowed)

	v, err := primitive.Convert(int8(3), reflect.TypeFor[int64](), primitive.CategorySafeNumber)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Interface())

	assert.True(t, primitive.Allowed(primitive.ConversionPair{From: primitive.KindString, To: primitive.KindTime}, primitive.CategoryDatetime))
	assert.False(t, primitive.Allowed(primitive.ConversionPair{From: primitive.KindString, To: primitive.KindTime}, primitive.CategoryNone))
}
