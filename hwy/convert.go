package hwy

import "math"

// This file provides type conversion and bit reinterpretation operations.

// ConvertToFloat64 converts int32, int64 or uint64 lanes to float64.
// Large 64-bit values may lose precision.
func ConvertToFloat64[T ~int32 | ~int64 | ~uint64](v Vec[T]) Vec[float64] {
	r := Vec[float64]{n: v.n}
	for i := range r.n {
		r.data[i] = float64(v.data[i])
	}
	return r
}

// BitCastF64ToU64 reinterprets float64 bits as uint64 without conversion.
func BitCastF64ToU64(v Vec[float64]) Vec[uint64] {
	r := Vec[uint64]{n: v.n}
	for i := range r.n {
		r.data[i] = math.Float64bits(v.data[i])
	}
	return r
}

// BitCastU64ToF64 reinterprets uint64 bits as float64 without conversion.
func BitCastU64ToF64(v Vec[uint64]) Vec[float64] {
	r := Vec[float64]{n: v.n}
	for i := range r.n {
		r.data[i] = math.Float64frombits(v.data[i])
	}
	return r
}

// BitCastU64ToI64 reinterprets uint64 lanes as int64.
func BitCastU64ToI64(v Vec[uint64]) Vec[int64] {
	r := Vec[int64]{n: v.n}
	for i := range r.n {
		r.data[i] = int64(v.data[i])
	}
	return r
}

// RebindMask reinterprets a mask over T as a mask over U. Both types must
// have the same lane count, which holds for float64, int64 and uint64.
func RebindMask[U, T Lanes](m Mask[T]) Mask[U] {
	return Mask[U]{bits: m.bits, n: m.n}
}
