package primitive

import (
	"reflect"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum classifies the scalar Go types a submitted value can be converted into.
type KindEnum int

const (
	_ KindEnum = iota // zero is the kind of non scalar types

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindTime
	KindDuration
	KindPrimitiveEnum // any named integer or string type

	KindTotal = int(iota)
)

type numberClass int

const (
	notNumber numberClass = iota
	signed
	unsigned
	float
)

// numberInfo describes the numeric kinds. bits is the guaranteed width, or
// the mantissa width for floats; int and uint are 32 bits wide at least and
// 64 bits at most.
var numberInfo = map[KindEnum]struct {
	class   numberClass
	bits    int
	maxBits int
}{
	KindInt:     {signed, 32, 64},
	KindInt8:    {signed, 8, 8},
	KindInt16:   {signed, 16, 16},
	KindInt32:   {signed, 32, 32},
	KindInt64:   {signed, 64, 64},
	KindUint:    {unsigned, 32, 64},
	KindUint8:   {unsigned, 8, 8},
	KindUint16:  {unsigned, 16, 16},
	KindUint32:  {unsigned, 32, 32},
	KindUint64:  {unsigned, 64, 64},
	KindFloat32: {float, 24, 24},
	KindFloat64: {float, 53, 53},
}

func (k KindEnum) class() numberClass {
	return numberInfo[k].class
}

func (k KindEnum) IsNumber() bool { return k.class() != notNumber }

func (k KindEnum) IsInteger() bool { return k.IsSigned() || k.IsUnsigned() }

func (k KindEnum) IsFloat() bool { return k.class() == float }

func (k KindEnum) IsSigned() bool { return k.class() == signed }

func (k KindEnum) IsUnsigned() bool { return k.class() == unsigned }

var scalarKinds = map[reflect.Type]KindEnum{
	reflect.TypeFor[int]():           KindInt,
	reflect.TypeFor[int8]():          KindInt8,
	reflect.TypeFor[int16]():         KindInt16,
	reflect.TypeFor[int32]():         KindInt32,
	reflect.TypeFor[int64]():         KindInt64,
	reflect.TypeFor[uint]():          KindUint,
	reflect.TypeFor[uint8]():         KindUint8,
	reflect.TypeFor[uint16]():        KindUint16,
	reflect.TypeFor[uint32]():        KindUint32,
	reflect.TypeFor[uint64]():        KindUint64,
	reflect.TypeFor[float32]():       KindFloat32,
	reflect.TypeFor[float64]():       KindFloat64,
	reflect.TypeFor[bool]():          KindBool,
	reflect.TypeFor[string]():        KindString,
	reflect.TypeFor[time.Time]():     KindTime,
	reflect.TypeFor[time.Duration](): KindDuration,
}

// FromReflectType returns the kind of rtype, or zero when rtype is not a scalar.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	if k, ok := scalarKinds[rtype]; ok {
		return k
	}

	// named integer and string types are treated as enums
	switch rtype.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.String:
		return KindPrimitiveEnum
	}

	return 0
}
