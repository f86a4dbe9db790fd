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

// TailMask creates a mask with the first 'count' lanes active.
// This is useful for handling the tail (remainder) of an array
// when the size is not a multiple of the vector width.
//
// Example:
//
//	maxLanes := hwy.MaxLanes[float32]()
//	remaining := len(data) % maxLanes
//	if remaining > 0 {
//	    mask := hwy.TailMask[float32](remaining)
//	    v := hwy.MaskLoad(mask, data[len(data)-remaining:])
//	    // ... process tail
//	    hwy.MaskStore(mask, result, output[len(output)-remaining:])
//	}
func TailMask[T Lanes](count int) Mask[T] {
	maxLanes := MaxLanes[T]()
	count = max(0, min(count, maxLanes))
	return Mask[T]{bits: laneBits(count), n: maxLanes}
}

// FirstN is an alias for TailMask using Highway's name for the operation.
func FirstN[T Lanes](count int) Mask[T] {
	return TailMask[T](count)
}

// MaskAnd returns the lanes active in both a and b.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	return Mask[T]{bits: a.bits & b.bits, n: min(a.n, b.n)}
}

// MaskOr returns the lanes active in a or b.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	return Mask[T]{bits: a.bits | b.bits, n: min(a.n, b.n)}
}

// MaskAndNot returns the lanes active in a and not in b.
func MaskAndNot[T Lanes](a, b Mask[T]) Mask[T] {
	return Mask[T]{bits: a.bits &^ b.bits, n: min(a.n, b.n)}
}

// MaskNot inverts every lane of m.
func MaskNot[T Lanes](m Mask[T]) Mask[T] {
	return Mask[T]{bits: ^m.bits & laneBits(m.n), n: m.n}
}

// CountTrue returns the number of active lanes in the mask.
func CountTrue[T Lanes](m Mask[T]) int {
	return m.CountTrue()
}

// ProcessWithTail is a helper for processing arrays with SIMD that handles
// both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of vector width
//
// Example:
//
//	hwy.ProcessWithTail[float32](len(data),
//	    func(offset int) {
//	        // Process full vector at data[offset:]
//	        v := hwy.Load(data[offset:])
//	        result := hwy.Add(v, v)
//	        hwy.Store(result, output[offset:])
//	    },
//	    func(offset, count int) {
//	        // Process tail with mask
//	        mask := hwy.TailMask[float32](count)
//	        v := hwy.MaskLoad(mask, data[offset:])
//	        result := hwy.Add(v, v)
//	        hwy.MaskStore(mask, result, output[offset:])
//	    },
//	)
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	maxLanes := MaxLanes[T]()

	// Process full vectors
	fullVectors := size / maxLanes
	for i := range fullVectors {
		fullFn(i * maxLanes)
	}

	// Process tail if any
	remaining := size % maxLanes
	if remaining > 0 {
		tailFn(fullVectors*maxLanes, remaining)
	}
}

