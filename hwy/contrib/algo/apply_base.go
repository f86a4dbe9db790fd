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

package algo

import "github.com/ajroetker/hwystat/hwy"

// Apply transforms input slice to output slice using the provided vector function.
// Full vectors go through fn directly; the tail is loaded zero-filled under a
// tail mask and written back with a masked store, so no scalar code runs and
// out[n:] is never touched.
//
// Only the first min(len(in), len(out)) elements are processed. in and out
// must not overlap unless they are the same slice.
//
// Example usage:
//
//	Apply(input, output, math.Pow2Vec)
func Apply[T hwy.Floats](in, out []T, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(in), len(out))
	lanes := hwy.MaxLanes[T]()
	i := 0

	// Process full vectors
	for ; i+lanes <= n; i += lanes {
		x := hwy.Load(in[i:])
		hwy.Store(fn(x), out[i:])
	}

	// Masked tail handling
	if remaining := n - i; remaining > 0 {
		mask := hwy.TailMask[T](remaining)
		x := hwy.MaskLoad(mask, in[i:n])
		hwy.MaskStore(mask, fn(x), out[i:n])
	}
}
