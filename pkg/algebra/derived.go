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
package algebra

import (
	"errors"
	"fmt"
)

// ErrNoInverse is returned when an inverse is requested for a value which has
// none, such as zero in a field.
var ErrNoInverse = errors.New("undefined inverse")

// FromInt constructs the image of n in the ring R.
func FromInt[R Ring[R]](n int64) R {
	var element R
	//
	return element.FromInt(n)
}

// Zero constructs the additive identity of the ring R, as given by FromInt(0).
func Zero[R Ring[R]]() R {
	return FromInt[R](0)
}

// One constructs the multiplicative identity of the ring R, as given by
// FromInt(1).
func One[R Ring[R]]() R {
	return FromInt[R](1)
}

// IsZero checks whether x is the additive identity of its ring.
func IsZero[R Ring[R]](x R) bool {
	return x.Equals(Zero[R]())
}

// Sub computes x - y as x + (-y) in an additive group.
func Sub[G interface {
	Add(y G) G
	Neg() G
}](x, y G) G {
	return x.Add(y.Neg())
}

// Div computes x / y as x * y⁻¹.  As with Inverse, the result for y = 0 is
// whatever the field documents for the inverse of zero.
func Div[F Field[F]](x, y F) F {
	return x.Mul(y.Inverse())
}

// CheckedInverse computes x⁻¹, or fails with ErrNoInverse if x is zero.
func CheckedInverse[F Field[F]](x F) (F, error) {
	if IsZero(x) {
		var dummy F
		return dummy, ErrNoInverse
	}
	//
	return x.Inverse(), nil
}

// CheckedDiv computes x / y, or fails if y is zero.
func CheckedDiv[F Field[F]](x, y F) (F, error) {
	inv, err := CheckedInverse(y)
	if err != nil {
		return inv, fmt.Errorf("division by %v: %w", y, err)
	}
	//
	return x.Mul(inv), nil
}

// Pow takes a given value to the power n by repeated squaring.  Any type with
// an associative Mul and an identity can be used.
func Pow[M Monoid[M]](val M, n uint64) M {
	if n == 0 {
		return val.Identity()
	} else if n > 1 {
		m := n / 2
		// Check for odd case
		if n%2 == 1 {
			tmp := val
			val = Pow(val, m)
			val = val.Mul(val).Mul(tmp)
		} else {
			// Even case is easy
			val = Pow(val, m)
			val = val.Mul(val)
		}
	}
	//
	return val
}
