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

// This file provides bit manipulation operations for integer vectors.
// Float kernels that work on the IEEE-754 layout bit cast to uint64 lanes
// (BitCastF64ToU64), operate here, and cast back.

// And performs element-wise bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] & b.data[i]
	}
	return r
}

// Or performs element-wise bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] | b.data[i]
	}
	return r
}

// AndNot performs element-wise bitwise AND NOT (~a & b).
func AndNot[T Integers](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = ^a.data[i] & b.data[i]
	}
	return r
}

// ShiftLeft performs element-wise left shift by a constant number of bits.
func ShiftLeft[T Integers](v Vec[T], count int) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = v.data[i] << uint(count)
	}
	return r
}

// ShiftRight performs element-wise right shift by a constant number of bits.
// Signed lanes shift arithmetically, unsigned lanes logically.
func ShiftRight[T Integers](v Vec[T], count int) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range r.n {
		r.data[i] = v.data[i] >> uint(count)
	}
	return r
}

// ShiftLeftVar shifts lane i of v left by counts[i] bits. Counts at or
// above the lane width produce zero, like the AVX-512 variable shifts.
func ShiftLeftVar[T Integers](v, counts Vec[T]) Vec[T] {
	r := Vec[T]{n: min(v.n, counts.n)}
	for i := range r.n {
		r.data[i] = v.data[i] << uint64(counts.data[i])
	}
	return r
}

// TestBits returns a mask of the lanes where v AND bits is non-zero.
func TestBits[T Integers](v, bits Vec[T]) Mask[T] {
	m := Mask[T]{n: min(v.n, bits.n)}
	for i := range m.n {
		if v.data[i]&bits.data[i] != 0 {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// TestBitsNone returns a mask of the lanes where v AND bits is zero.
func TestBitsNone[T Integers](v, bits Vec[T]) Mask[T] {
	return MaskNot(TestBits(v, bits))
}

