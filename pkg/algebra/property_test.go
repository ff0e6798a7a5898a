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
package algebra_test

import (
	"testing"

	"github.com/consensys/go-algebra/pkg/algebra"
	"github.com/consensys/go-algebra/pkg/algebra/bls12_377"
	"github.com/consensys/go-algebra/pkg/algebra/integer"
	"github.com/consensys/go-algebra/pkg/algebra/reals"
	"github.com/consensys/go-algebra/pkg/algebra/smallfield"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const REAL_EPSILON = 1e-9

func newProperties() *gopter.Properties {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 1000
	//
	return gopter.NewProperties(params)
}

func Test_Integer_Properties(t *testing.T) {
	var (
		properties = newProperties()
		additive   = algebra.AdditiveLaws[integer.Element]()
		ring       = algebra.RingLaws[integer.Element]()
	)
	//
	properties.Property("addition is associative", prop.ForAll(
		func(a, b, c int64) bool {
			return additive.Associativity(integer.Element(a), integer.Element(b), integer.Element(c))
		},
		gen.Int64(), gen.Int64(), gen.Int64(),
	))
	properties.Property("zero is the additive identity", prop.ForAll(
		func(a int64) bool { return additive.Identity(integer.Element(a)) },
		gen.Int64(),
	))
	properties.Property("negation is the additive inverse", prop.ForAll(
		func(a int64) bool { return additive.Inverse(integer.Element(a)) },
		gen.Int64(),
	))
	properties.Property("multiplication is associative", prop.ForAll(
		func(a, b, c int64) bool {
			return ring.Multiplicative.Associativity(integer.Element(a), integer.Element(b), integer.Element(c))
		},
		gen.Int64(), gen.Int64(), gen.Int64(),
	))
	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c int64) bool {
			return ring.Distributivity(integer.Element(a), integer.Element(b), integer.Element(c))
		},
		gen.Int64(), gen.Int64(), gen.Int64(),
	))
	//
	properties.TestingRun(t)
}

func Test_Real_Properties(t *testing.T) {
	var (
		properties = newProperties()
		group      = algebra.GroupLaws[reals.Element]().WithEquality(reals.ApproxEqual(REAL_EPSILON))
		field      = algebra.FieldLaws[reals.Element]().WithEquality(reals.ApproxEqual(REAL_EPSILON))
		nonzero    = gen.OneGenOf(gen.Float64Range(1e-3, 1e3), gen.Float64Range(-1e3, -1e-3))
	)
	//
	properties.Property("multiplication is associative", prop.ForAll(
		func(a, b, c float64) bool {
			return group.Associativity(reals.Element(a), reals.Element(b), reals.Element(c))
		},
		gen.Float64Range(-1e3, 1e3), gen.Float64Range(-1e3, 1e3), gen.Float64Range(-1e3, 1e3),
	))
	properties.Property("reciprocal is the multiplicative inverse", prop.ForAll(
		func(a float64) bool { return group.Inverse(reals.Element(a)) },
		nonzero,
	))
	properties.Property("one is the multiplicative identity", prop.ForAll(
		func(a float64) bool { return field.Multiplicative.Identity(reals.Element(a)) },
		gen.Float64Range(-1e3, 1e3),
	))
	properties.Property("addition is associative", prop.ForAll(
		func(a, b, c float64) bool {
			return field.Additive.Associativity(reals.Element(a), reals.Element(b), reals.Element(c))
		},
		gen.Float64Range(-1e3, 1e3), gen.Float64Range(-1e3, 1e3), gen.Float64Range(-1e3, 1e3),
	))
	//
	properties.TestingRun(t)
}

func Test_PrimeField_Properties(t *testing.T) {
	var (
		properties = newProperties()
		bls        = algebra.FieldLaws[bls12_377.Element]()
		m31        = algebra.FieldLaws[smallfield.Element[smallfield.Mersenne31]]()
	)
	//
	properties.Property("bls12-377 is a field", prop.ForAll(
		func(a, b, c int64) bool {
			var (
				x = algebra.FromInt[bls12_377.Element](a)
				y = algebra.FromInt[bls12_377.Element](b)
				z = algebra.FromInt[bls12_377.Element](c)
			)
			//
			return bls.Additive.Associativity(x, y, z) && bls.Multiplicative.Associativity(x, y, z) &&
				bls.Distributivity(x, y, z) && bls.Additive.Inverse(x) &&
				(algebra.IsZero(x) || bls.Multiplicative.Inverse(x))
		},
		gen.Int64(), gen.Int64(), gen.Int64(),
	))
	properties.Property("mersenne31 is a field", prop.ForAll(
		func(a, b, c int64) bool {
			type M31 = smallfield.Element[smallfield.Mersenne31]
			//
			var (
				x = algebra.FromInt[M31](a)
				y = algebra.FromInt[M31](b)
				z = algebra.FromInt[M31](c)
			)
			//
			return m31.Additive.Associativity(x, y, z) && m31.Multiplicative.Associativity(x, y, z) &&
				m31.Distributivity(x, y, z) && m31.Additive.Inverse(x) &&
				(algebra.IsZero(x) || m31.Multiplicative.Inverse(x))
		},
		gen.Int64(), gen.Int64(), gen.Int64(),
	))
	//
	properties.TestingRun(t)
}
