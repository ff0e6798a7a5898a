// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package reals

import (
	"cmp"
	"math"
	"strconv"
)

// Element wraps float64 to conform to the algebra.Field interface.  Floating
// point arithmetic is only approximately associative and distributive, so law
// checks over reals should be configured with ApproxEqual.
type Element float64

// Add x + y
func (x Element) Add(y Element) Element {
	return x + y
}

// Neg -x
func (x Element) Neg() Element {
	return -x
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	return x - y
}

// Zero returns 0.
func (x Element) Zero() Element {
	return 0
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	return x * y
}

// Identity returns 1, the multiplicative identity.
func (x Element) Identity() Element {
	return 1
}

// Inverse returns the reciprocal 1/x.  Zero has no inverse: following IEEE 754
// the result for ±0 is ±Inf, rather than a signalled failure.  Use
// algebra.CheckedInverse where the failure should be reported instead.
func (x Element) Inverse() Element {
	return 1 / x
}

// FromInt implementation for the algebra.Ring interface.
func (x Element) FromInt(n int64) Element {
	return Element(n)
}

// Equals implementation for the algebra.Equatable interface.  Equality here is
// exact, hence -0 equals +0 and NaN equals nothing.
func (x Element) Equals(y Element) bool {
	return x == y
}

// IsFinite checks whether x is neither infinite nor NaN.
func (x Element) IsFinite() bool {
	return !math.IsInf(float64(x), 0) && !math.IsNaN(float64(x))
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.  NaN is considered less
// than any other value.
func (x Element) Cmp(y Element) int {
	return cmp.Compare(x, y)
}

func (x Element) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}

// ApproxEqual returns an equality relation which accepts x and y when they are
// within epsilon of each other, relative to the larger magnitude (or
// absolutely, when both are below one).  This is suitable for use with
// algebra.LawSet.WithEquality.
func ApproxEqual(epsilon float64) func(x, y Element) bool {
	return func(x, y Element) bool {
		if x == y {
			return true
		} else if !x.IsFinite() || !y.IsFinite() {
			return false
		}
		//
		var (
			a     = float64(x)
			b     = float64(y)
			scale = math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
		)
		//
		return math.Abs(a-b) <= epsilon*scale
	}
}
