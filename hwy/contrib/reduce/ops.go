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

package reduce

import "github.com/ajroetker/hwystat/hwy"

// Unary is a pointwise operation with matched scalar and lane forms.
// Apply and ApplyVec must agree lane for lane, including on which inputs
// produce NaN; the reductions use ApplyVec for full vectors and Apply for
// inputs shorter than one vector.
type Unary interface {
	Apply(x float64) float64
	ApplyVec(v hwy.Vec[float64]) hwy.Vec[float64]
}

// Binary is the two-argument counterpart of Unary.
type Binary interface {
	Apply(x, y float64) float64
	ApplyVec(x, y hwy.Vec[float64]) hwy.Vec[float64]
}

// Identity returns its argument.
type Identity struct{}

func (Identity) Apply(x float64) float64 {
	return x
}

func (Identity) ApplyVec(v hwy.Vec[float64]) hwy.Vec[float64] {
	return v
}

// Square returns x².
type Square struct{}

func (Square) Apply(x float64) float64 {
	return x * x
}

func (Square) ApplyVec(v hwy.Vec[float64]) hwy.Vec[float64] {
	return hwy.Mul(v, v)
}

// Cube returns x³.
type Cube struct{}

func (Cube) Apply(x float64) float64 {
	return x * x * x
}

func (Cube) ApplyVec(v hwy.Vec[float64]) hwy.Vec[float64] {
	return hwy.Mul(v, hwy.Mul(v, v))
}

// Fourth returns x⁴ as (x²)².
type Fourth struct{}

func (Fourth) Apply(x float64) float64 {
	sq := x * x
	return sq * sq
}

func (Fourth) ApplyVec(v hwy.Vec[float64]) hwy.Vec[float64] {
	sq := hwy.Mul(v, v)
	return hwy.Mul(sq, sq)
}

// Product returns x·y.
type Product struct{}

func (Product) Apply(x, y float64) float64 {
	return x * y
}

func (Product) ApplyVec(x, y hwy.Vec[float64]) hwy.Vec[float64] {
	return hwy.Mul(x, y)
}

// UnaryFunc adapts a caller-supplied pair of functions to Unary.
type UnaryFunc struct {
	Scalar func(float64) float64
	Vec    func(hwy.Vec[float64]) hwy.Vec[float64]
}

func (f UnaryFunc) Apply(x float64) float64 {
	return f.Scalar(x)
}

func (f UnaryFunc) ApplyVec(v hwy.Vec[float64]) hwy.Vec[float64] {
	return f.Vec(v)
}

// BinaryFunc adapts a caller-supplied pair of functions to Binary.
type BinaryFunc struct {
	Scalar func(x, y float64) float64
	Vec    func(x, y hwy.Vec[float64]) hwy.Vec[float64]
}

func (f BinaryFunc) Apply(x, y float64) float64 {
	return f.Scalar(x, y)
}

func (f BinaryFunc) ApplyVec(x, y hwy.Vec[float64]) hwy.Vec[float64] {
	return f.Vec(x, y)
}
