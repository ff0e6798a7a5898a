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
package smallfield

import (
	"strconv"

	"github.com/consensys/go-algebra/pkg/algebra"
)

// Element of a prime order field, represented in Montgomery form to speed up
// multiplications.  The order is fixed by M.
type Element[M Modulus] [1]uint32 // defined as an array to prevent mistaken use of arithmetic operators, or naive assignments.

// Add x + y
func (x Element[M]) Add(y Element[M]) Element[M] {
	return fieldOf[M]().Add(x, y)
}

// Neg -x
func (x Element[M]) Neg() Element[M] {
	return fieldOf[M]().Neg(x)
}

// Sub x - y
func (x Element[M]) Sub(y Element[M]) Element[M] {
	return fieldOf[M]().Sub(x, y)
}

// Zero returns 0.
func (x Element[M]) Zero() Element[M] {
	return Element[M]{}
}

// Mul x * y
func (x Element[M]) Mul(y Element[M]) Element[M] {
	return fieldOf[M]().Mul(x, y)
}

// Identity returns 1.
func (x Element[M]) Identity() Element[M] {
	return fieldOf[M]().NewElement(1)
}

// Inverse x⁻¹, or 0 if x = 0.  This uses Fermat's little theorem, i.e. x⁻¹ =
// x^(p-2).
func (x Element[M]) Inverse() Element[M] {
	return algebra.Pow(x, uint64(fieldOf[M]().modulus-2))
}

// FromInt implementation for the algebra.Ring interface.
func (x Element[M]) FromInt(n int64) Element[M] {
	return fieldOf[M]().FromInt(n)
}

// Equals implementation for the algebra.Equatable interface.  Elements are
// always fully reduced, hence structural equality suffices.
func (x Element[M]) Equals(y Element[M]) bool {
	return x == y
}

// ToUint32 returns the numerical value of x.
func (x Element[M]) ToUint32() uint32 {
	return fieldOf[M]().ToUint32(x)
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element[M]) Cmp(y Element[M]) int {
	return fieldOf[M]().Cmp(x, y)
}

func (x Element[M]) String() string {
	return strconv.FormatUint(uint64(x.ToUint32()), 10)
}
