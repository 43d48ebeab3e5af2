package primitive

// CategoryEnum is a bit set of conversion families a caller accepts.
type CategoryEnum int

// ConversionPair is a source kind to destination kind conversion.
type ConversionPair struct {
	From, To KindEnum
}

const (
	CategorySafeNumber   CategoryEnum = 1 << iota // numbers without precision loss
	CategoryUnsafeNumber                          // numbers that may overflow or round
	CategoryTextNumber                            // "42" <-> 42
	CategoryNumericBool                           // 0, 1 <-> false, true
	CategoryTextualBool                           // "yes", "off", "true"... <-> bool
	CategoryDatetime                              // RFC 3339 and form layouts <-> time.Time
	CategoryTimestamp                             // Unix seconds <-> time.Time
	CategoryDuration                              // "2h45m" <-> time.Duration
	CategoryNanoseconds                           // integer nanoseconds <-> time.Duration
	CategorySeconds                               // float seconds <-> time.Duration
	CategoryEnumString                            // text <-> named string or integer types

	CategoryAll  = (1 << iota) - 1
	CategoryNone = 0
)

// categories holds the rule of every category.
var categories = map[CategoryEnum]func(p ConversionPair) bool{
	CategorySafeNumber: safeNumber,
	CategoryUnsafeNumber: func(p ConversionPair) bool {
		return p.From.IsNumber() && p.To.IsNumber() && !safeNumber(p)
	},
	CategoryTextNumber: func(p ConversionPair) bool {
		return p.with(KindString, KindEnum.IsNumber)
	},
	CategoryNumericBool: func(p ConversionPair) bool {
		return p.with(KindBool, KindEnum.IsInteger)
	},
	CategoryTextualBool: func(p ConversionPair) bool {
		return p.between(KindString, KindBool)
	},
	CategoryDatetime: func(p ConversionPair) bool {
		return p.between(KindString, KindTime)
	},
	CategoryTimestamp: func(p ConversionPair) bool {
		return p.with(KindTime, KindEnum.IsInteger)
	},
	CategoryDuration: func(p ConversionPair) bool {
		return p.between(KindString, KindDuration)
	},
	CategoryNanoseconds: func(p ConversionPair) bool {
		return p.with(KindDuration, func(k KindEnum) bool { return k.IsInteger() && k != KindUint64 })
	},
	CategorySeconds: func(p ConversionPair) bool {
		return p.with(KindDuration, KindEnum.IsFloat)
	},
	CategoryEnumString: func(p ConversionPair) bool {
		return p == ConversionPair{KindPrimitiveEnum, KindPrimitiveEnum} || p.between(KindString, KindPrimitiveEnum)
	},
}

// between reports whether p converts a into b or b into a.
func (p ConversionPair) between(a, b KindEnum) bool {
	return p == ConversionPair{a, b} || p == ConversionPair{b, a}
}

// with reports whether p converts k from or into a kind matching other.
func (p ConversionPair) with(k KindEnum, other func(KindEnum) bool) bool {
	return (p.From == k && other(p.To)) || (p.To == k && other(p.From))
}

// safeNumber accepts number conversions that keep every value of the
// source kind: widening within a sign class, unsigned into a wider signed
// kind, and integers narrow enough for the float mantissa.
func safeNumber(p ConversionPair) bool {
	from, ok := numberInfo[p.From]
	if !ok {
		return false
	}

	to, ok := numberInfo[p.To]
	if !ok {
		return false
	}

	if p.From == p.To {
		return true
	}

	switch {
	case from.class == to.class:
		return from.maxBits <= to.bits
	case from.class == unsigned && to.class == signed:
		return from.maxBits < to.bits
	case from.class != float && to.class == float:
		return from.maxBits <= to.bits
	}

	return false
}

// Allowed reports whether pair belongs to one of the categories in allowed.
func Allowed(pair ConversionPair, allowed CategoryEnum) bool {
	for category, rule := range categories {
		if allowed&category != 0 && rule(pair) {
			return true
		}
	}

	return false
}
