package utils

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
// A zero max means the range has no upper bound.
func IsInRange[T number](min T, value T, max T) bool {
	if value < min {
		return false
	}

	return max == 0 || value <= max
}

// Clamp limits value to [min, max]; a zero max leaves the upper side open.
// The upper bound wins when min > max.
func Clamp[T number](min T, value T, max T) T {
	if value < min {
		value = min
	}

	if max != 0 && value > max {
		value = max
	}

	return value
}
