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
package integer

import (
	"cmp"
	"strconv"
)

// Element wraps int64 to conform to the algebra.AdditiveGroup and algebra.Ring
// interfaces.  Arithmetic is that of Go's int64, and therefore wraps modulo
// 2⁶⁴ on overflow.  Since this is still a ring, the axioms continue to hold
// for every input.
type Element int64

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

// FromInt implementation for the algebra.Ring interface.
func (x Element) FromInt(n int64) Element {
	return Element(n)
}

// Equals implementation for the algebra.Equatable interface.
func (x Element) Equals(y Element) bool {
	return x == y
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return cmp.Compare(x, y)
}

func (x Element) String() string {
	return strconv.FormatInt(int64(x), 10)
}
