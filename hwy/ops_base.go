// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import "math"

// This file provides pure Go implementations of the lane operations. Every
// operation works on MaxLanes[T]() lanes held inline in the vector, so the
// compiler can keep them in registers and nothing escapes to the heap.

// Load creates a vector by loading data from a slice.
// Lanes beyond len(src) are zero.
func Load[T Lanes](src []T) Vec[T] {
	var v Vec[T]
	v.n = MaxLanes[T]()
	copy(v.data[:v.n], src)
	return v
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	var v Vec[T]
	v.n = MaxLanes[T]()
	for i := range v.n {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{n: MaxLanes[T]()}
}

// Iota returns a vector with lane i set to i.
func Iota[T Lanes]() Vec[T] {
	var v Vec[T]
	v.n = MaxLanes[T]()
	for i := range v.n {
		v.data[i] = T(i)
	}
	return v
}

// GetLane returns lane i of v, or zero if i is out of range.
func GetLane[T Lanes](v Vec[T], i int) T {
	if i < 0 || i >= v.n {
		var zero T
		return zero
	}
	return v.data[i]
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] + b.data[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] - b.data[i]
	}
	return r
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] * b.data[i]
	}
	return r
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] / b.data[i]
	}
	return r
}

// Neg negates each lane.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = -v.data[i]
	}
	return r
}

// Abs returns the absolute value of each lane. For floats the sign bit is
// cleared, so Abs(-0) is +0 and NaN payloads are preserved.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = absHelper(v.data[i])
	}
	return r
}

func absHelper[T Lanes](a T) T {
	switch av := any(a).(type) {
	case float32:
		return any(math.Float32frombits(math.Float32bits(av) &^ (1 << 31))).(T)
	case float64:
		return any(math.Abs(av)).(T)
	}
	if a < 0 {
		return -a
	}
	return a
}

// Min returns element-wise minimum.
//
// The comparison matches the x86 min instructions: lane i is a[i] only if
// a[i] < b[i], otherwise b[i]. A NaN in a therefore yields b, which lets an
// accumulator passed as b ignore NaN data.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		if a.data[i] < b.data[i] {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// Max returns element-wise maximum with the same operand rule as Min:
// lane i is a[i] only if a[i] > b[i], otherwise b[i].
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		if a.data[i] > b.data[i] {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// Sqrt computes the square root of each lane.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = T(math.Sqrt(float64(v.data[i])))
	}
	return r
}

// FMA performs fused multiply-add: a*b + c with a single rounding.
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n, c.n)}
	for i := range r.n {
		r.data[i] = T(math.FMA(float64(a.data[i]), float64(b.data[i]), float64(c.data[i])))
	}
	return r
}

// MulAdd performs fused multiply-add: a*b + c.
// This is an alias for FMA with the common a.MulAdd(b, c) semantics.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	return FMA(a, b, c)
}

// ReduceSum sums all lanes. Lanes are added in order 0..n-1, so the result
// only depends on the lane contents.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for i := range v.n {
		sum += v.data[i]
	}
	return sum
}

// ReduceMin returns the minimum value across all lanes, using the Min
// operand rule: a NaN lane never replaces the running minimum.
func ReduceMin[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for i := 1; i < v.n; i++ {
		if v.data[i] < m {
			m = v.data[i]
		}
	}
	return m
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for i := 1; i < v.n; i++ {
		if v.data[i] > m {
			m = v.data[i]
		}
	}
	return m
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		if a.data[i] == b.data[i] {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		if a.data[i] != b.data[i] {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		if a.data[i] < b.data[i] {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		if a.data[i] > b.data[i] {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		if a.data[i] >= b.data[i] {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// IsNaN returns a mask indicating which lanes contain NaN values.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	m := Mask[T]{n: v.n}
	for i := range m.n {
		if v.data[i] != v.data[i] {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// IfThenElse performs conditional selection.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		if mask.bits&(1<<uint(i)) != 0 {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// IfThenElseZero returns a where mask is true, zero otherwise.
// Equivalent to IfThenElse(mask, a, Zero()) but more efficient.
func IfThenElseZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	r := Vec[T]{n: a.n}
	for i := range r.n {
		if mask.bits&(1<<uint(i)) != 0 {
			r.data[i] = a.data[i]
		}
	}
	return r
}

// Merge selects elements from a where mask is true, from b otherwise.
// This is equivalent to IfThenElse(mask, a, b).
func Merge[T Lanes](a, b Vec[T], mask Mask[T]) Vec[T] {
	return IfThenElse(mask, a, b)
}

// MaskAdd returns acc + v in lanes where mask is true and acc elsewhere.
// Inactive lanes of v are never read, so NaN there does not propagate.
func MaskAdd[T Lanes](mask Mask[T], acc, v Vec[T]) Vec[T] {
	r := acc
	for i := range min(acc.n, v.n) {
		if mask.bits&(1<<uint(i)) != 0 {
			r.data[i] = acc.data[i] + v.data[i]
		}
	}
	return r
}

// MaskLoad loads data from a slice only for lanes where the mask is true.
// Inactive lanes, and lanes beyond len(src), are zero.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	var v Vec[T]
	v.n = MaxLanes[T]()
	for i := range min(len(src), v.n) {
		if mask.bits&(1<<uint(i)) != 0 {
			v.data[i] = src[i]
		}
	}
	return v
}

// MaskStore stores vector data to a slice only for lanes where the mask is true.
// Elements of dst under inactive lanes are left unchanged.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	for i := range min(len(dst), v.n) {
		if mask.bits&(1<<uint(i)) != 0 {
			dst[i] = v.data[i]
		}
	}
}
