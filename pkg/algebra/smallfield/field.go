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
	"cmp"
	"fmt"
	"math/big"
)

// Modulus determines the (prime) order of a small field at the type level, so
// that elements of different fields cannot be mixed.  Implementations are
// expected to be empty structs.
type Modulus interface {
	// Modulus returns the order of the field, which must be an odd prime less
	// than 2³¹.
	Modulus() uint32
}

// Mersenne31 is the field of order 2³¹ - 1.
type Mersenne31 struct{}

// Modulus implementation for the Modulus interface.
func (Mersenne31) Modulus() uint32 { return 1<<31 - 1 }

// KoalaBear is the field of order 2³¹ - 2²⁴ + 1.
type KoalaBear struct{}

// Modulus implementation for the Modulus interface.
func (KoalaBear) Modulus() uint32 { return 1<<31 - 1<<24 + 1 }

// A Field of prime order, less than 2³¹.
type Field[M Modulus] struct {
	modulus           uint32
	negModulusInvModR uint32
}

// NewField constructs the field of order determined by M, checking that the
// order is a suitable prime.
func NewField[M Modulus]() Field[M] {
	var m M
	//
	modulus := m.Modulus()
	//
	if modulus >= 1<<31 {
		panic("modulus too large") // need at least one bit of "slack"
	} else if !big.NewInt(int64(modulus)).ProbablyPrime(20) {
		panic(fmt.Sprintf("modulus %d is not prime", modulus))
	}
	//
	return fieldOf[M]()
}

// fieldOf constructs the field of order determined by M without validating it.
func fieldOf[M Modulus]() Field[M] {
	var m M
	//
	modulus := m.Modulus()
	// Newton iteration for modulus⁻¹ mod 2³²: an odd number is its own inverse
	// mod 8, and each step doubles the number of correct bits.
	inv := modulus
	for range 4 {
		inv *= 2 - modulus*inv
	}

	return Field[M]{modulus: modulus, negModulusInvModR: -inv}
}

// Modulus returns the order of the field.
func (f Field[M]) Modulus() uint32 {
	return f.modulus
}

// Add x0 + x1 + xRest[0] + xRest[1] + ...
func (f Field[M]) Add(x0, x1 Element[M], xRest ...Element[M]) Element[M] {
	res := Element[M]{x0[0] + x1[0]}
	if res[0] >= f.modulus {
		res[0] -= f.modulus
	}

	for _, e := range xRest {
		res[0] += e[0]
		if res[0] >= f.modulus {
			res[0] -= f.modulus
		}
	}

	return res
}

// Sub x0 - x1 - xRest[0] - xRest[1] - ...
func (f Field[M]) Sub(x0, x1 Element[M], xRest ...Element[M]) Element[M] {
	const negMask uint32 = 1 << 31

	res := Element[M]{x0[0] - x1[0]}
	if res[0]&negMask != 0 {
		res[0] += f.modulus
	}

	for _, e := range xRest {
		res[0] -= e[0]
		if res[0]&negMask != 0 {
			res[0] += f.modulus
		}
	}

	return res
}

// Neg -x
func (f Field[M]) Neg(x Element[M]) Element[M] {
	if x[0] == 0 {
		return x
	}

	return Element[M]{f.modulus - x[0]}
}

// montgomeryReduce x -> x.R⁻¹ (mod m)
func (f Field[M]) montgomeryReduce(x uint64) Element[M] {
	// textbook Montgomery reduction
	const R = 1 << 32
	m := (x * uint64(f.negModulusInvModR)) % R // m = x * (-modulus⁻¹) (mod R)

	res := Element[M]{uint32((x + m*uint64(f.modulus)) / R)}

	if res[0] >= f.modulus {
		res[0] -= f.modulus
	}

	return res
}

// ToUint32 returns the numerical (non-Montgomery) value of x.
func (f Field[M]) ToUint32(x Element[M]) uint32 {
	return f.montgomeryReduce(uint64(x[0]))[0]
}

func (f Field[M]) mul(a, b Element[M]) Element[M] {
	return f.montgomeryReduce(uint64(a[0]) * uint64(b[0]))
}

// Mul x0 * x1 * xRest[0] * xRest[1] * ...
func (f Field[M]) Mul(x0, x1 Element[M], xRest ...Element[M]) Element[M] {
	res := f.mul(x0, x1)
	for _, e := range xRest {
		res = f.mul(res, e)
	}

	return res
}

// NewElement returns an element of the field f corresponding to the natural
// number x, reduced modulo the order of the field.
func (f Field[M]) NewElement(x uint32) Element[M] {
	return Element[M]{uint32(uint64(x) << 32 % uint64(f.modulus))}
}

// FromInt returns an element corresponding to n mod p, where negative values
// are mapped onto their additive inverses.
func (f Field[M]) FromInt(n int64) Element[M] {
	r := n % int64(f.modulus)
	if r < 0 {
		r += int64(f.modulus)
	}

	return f.NewElement(uint32(r))
}

// Cmp compares the numerical values of x0 and x1.
func (f Field[M]) Cmp(x0, x1 Element[M]) int {
	return cmp.Compare(f.ToUint32(x0), f.ToUint32(x1))
}
