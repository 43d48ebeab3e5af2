package common

import (
	"slices"
	"strconv"
)

// UnknownStr is printed for enum values outside their declared range.
const UnknownStr = "unknown"

// CompareKeys orders collection keys: numeric keys first, by value, then
// every other key lexically.
func CompareKeys(a, b string) int {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)

	switch {
	case aerr == nil && berr == nil:
		return ai - bi
	case aerr == nil:
		return -1
	case berr == nil:
		return 1
	}

	if a < b {
		return -1
	}

	if a > b {
		return 1
	}

	return 0
}

// SortKeys sorts keys in place with CompareKeys and returns them.
func SortKeys(keys []string) []string {
	slices.SortFunc(keys, CompareKeys)

	return keys
}

// NextKey returns the key an appended element gets: one past the greatest
// numeric key, or "0" when there is none.
func NextKey(keys []string) string {
	next := 0

	for _, k := range keys {
		if i, err := strconv.Atoi(k); err == nil && i >= next {
			next = i + 1
		}
	}

	return strconv.Itoa(next)
}

// Difference returns the elements of a missing from b, preserving a's order.
func Difference(a, b []string) []string {
	var out []string

	for _, k := range a {
		if !slices.Contains(b, k) {
			out = append(out, k)
		}
	}

	return out
}
