package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"form-binder/primitive"
)

func TestAllowed_Numbers(t *testing.T) {
	tests := []struct {
		from, to primitive.KindEnum
		safe     bool
	}{
		{primitive.KindInt8, primitive.KindInt64, true},
		{primitive.KindInt64, primitive.KindInt8, false},
		{primitive.KindInt, primitive.KindInt32, false},
		{primitive.KindInt32, primitive.KindInt, true},
		{primitive.KindUint8, primitive.KindInt16, true},
		{primitive.KindUint16, primitive.KindInt16, false},
		{primitive.KindInt8, primitive.KindUint64, false},
		{primitive.KindInt16, primitive.KindFloat32, true},
		{primitive.KindInt32, primitive.KindFloat32, false},
		{primitive.KindUint32, primitive.KindFloat64, true},
		{primitive.KindInt64, primitive.KindFloat64, false},
		{primitive.KindFloat32, primitive.KindFloat64, true},
		{primitive.KindFloat64, primitive.KindFloat32, false},
		{primitive.KindFloat64, primitive.KindInt64, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"_"+tt.to.String(), func(t *testing.T) {
			pair := primitive.ConversionPair{From: tt.from, To: tt.to}
			assert.Equal(t, tt.safe, primitive.Allowed(pair, primitive.CategorySafeNumber))
			assert.Equal(t, !tt.safe, primitive.Allowed(pair, primitive.CategoryUnsafeNumber))
		})
	}
}

func TestAllowed_Categories(t *testing.T) {
	tests := []struct {
		name     string
		pair     primitive.ConversionPair
		category primitive.CategoryEnum
		want     bool
	}{
		{"text number", primitive.ConversionPair{From: primitive.KindString, To: primitive.KindFloat64}, primitive.CategoryTextNumber, true},
		{"number text", primitive.ConversionPair{From: primitive.KindUint8, To: primitive.KindString}, primitive.CategoryTextNumber, true},
		{"numeric bool", primitive.ConversionPair{From: primitive.KindInt, To: primitive.KindBool}, primitive.CategoryNumericBool, true},
		{"float bool", primitive.ConversionPair{From: primitive.KindFloat32, To: primitive.KindBool}, primitive.CategoryNumericBool, false},
		{"textual bool", primitive.ConversionPair{From: primitive.KindBool, To: primitive.KindString}, primitive.CategoryTextualBool, true},
		{"timestamp", primitive.ConversionPair{From: primitive.KindInt64, To: primitive.KindTime}, primitive.CategoryTimestamp, true},
		{"duration", primitive.ConversionPair{From: primitive.KindString, To: primitive.KindDuration}, primitive.CategoryDuration, true},
		{"nanoseconds", primitive.ConversionPair{From: primitive.KindDuration, To: primitive.KindInt64}, primitive.CategoryNanoseconds, true},
		{"uint64 nanoseconds", primitive.ConversionPair{From: primitive.KindUint64, To: primitive.KindDuration}, primitive.CategoryNanoseconds, false},
		{"seconds", primitive.ConversionPair{From: primitive.KindFloat64, To: primitive.KindDuration}, primitive.CategorySeconds, true},
		{"enum", primitive.ConversionPair{From: primitive.KindString, To: primitive.KindPrimitiveEnum}, primitive.CategoryEnumString, true},
		{"enum enum", primitive.ConversionPair{From: primitive.KindPrimitiveEnum, To: primitive.KindPrimitiveEnum}, primitive.CategoryEnumString, true},
		{"wrong category", primitive.ConversionPair{From: primitive.KindString, To: primitive.KindTime}, primitive.CategoryDuration, false},
		{"all", primitive.ConversionPair{From: primitive.KindString, To: primitive.KindTime}, primitive.CategoryAll, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, primitive.Allowed(tt.pair, tt.category))
		})
	}
}
