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
package bls12_377

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element wraps fr.Element to conform to the algebra.Field interface.  This is
// the scalar field of the BLS12-377 curve, whose arithmetic is exact, so every
// axiom holds with plain structural equality.
type Element struct {
	fr.Element
}

// Modulus returns the (prime) order of the field.
func Modulus() *big.Int {
	return fr.Modulus()
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Neg -x
func (x Element) Neg() Element {
	var res fr.Element
	//
	res.Neg(&x.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var res fr.Element
	//
	res.Sub(&x.Element, &y.Element)
	//
	return Element{res}
}

// Zero returns 0.
func (x Element) Zero() Element {
	return Element{}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res fr.Element
	//
	res.Mul(&x.Element, &y.Element)
	//
	return Element{res}
}

// Identity returns 1.
func (x Element) Identity() Element {
	var res fr.Element
	//
	return Element{*res.SetOne()}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	var res fr.Element
	//
	res.Inverse(&x.Element)
	//
	return Element{res}
}

// FromInt returns n mod r, where r is the order of the field.  Negative values
// are mapped to their additive inverses.
func (x Element) FromInt(n int64) Element {
	var res fr.Element
	//
	res.SetInt64(n)
	//
	return Element{res}
}

// FromBigInt returns val mod r, where r is the order of the field.
func FromBigInt(val *big.Int) Element {
	var res fr.Element
	//
	res.SetBigInt(val)
	//
	return Element{res}
}

// IsZero checks whether x = 0.
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// IsOne checks whether x = 1.
func (x Element) IsOne() bool {
	return x.Element.IsOne()
}

// Equals implementation for the algebra.Equatable interface.
func (x Element) Equals(y Element) bool {
	return x.Element.Equal(&y.Element)
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.Element.Cmp(&y.Element)
}

func (x Element) String() string {
	return x.Element.String()
}

// Text returns the numerical value of x in the given base.
func (x Element) Text(base int) string {
	return x.Element.Text(base)
}
