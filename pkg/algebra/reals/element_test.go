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
	"math"
	"testing"

	"github.com/consensys/go-algebra/pkg/util/assert"
)

func Test_Element_Arithmetic(t *testing.T) {
	var x, y Element = 4, 2
	//
	assert.Equal(t, Element(6), x.Add(y))
	assert.Equal(t, Element(2), x.Sub(y))
	assert.Equal(t, Element(8), x.Mul(y))
	assert.Equal(t, Element(0.5), y.Inverse())
	assert.Equal(t, Element(-4), x.Neg())
	assert.Equal(t, Element(0), x.Zero())
	assert.Equal(t, Element(1), x.Identity())
	assert.Equal(t, Element(-3), x.FromInt(-3))
}

func Test_Element_InverseZero(t *testing.T) {
	inv := Element(0).Inverse()
	//
	assert.True(t, math.IsInf(float64(inv), 1))
	assert.False(t, inv.IsFinite())
	assert.True(t, Element(1).IsFinite())
	assert.False(t, Element(math.NaN()).IsFinite())
}

func Test_Element_Equals(t *testing.T) {
	assert.True(t, Element(0).Equals(Element(math.Copysign(0, -1))))
	assert.False(t, Element(math.NaN()).Equals(Element(math.NaN())))
	assert.Equal(t, "0.25", Element(0.25).String())
	assert.Equal(t, -1, Element(1).Cmp(2))
}

func Test_ApproxEqual(t *testing.T) {
	eq := ApproxEqual(1e-9)
	//
	assert.True(t, eq(1, 1))
	assert.True(t, eq(0.6, 0.1+0.2+0.3))
	assert.True(t, eq(1e12, 1e12+1))
	assert.False(t, eq(1, 1.001))
	assert.False(t, eq(0, 1e-6))
	// Non-finite values are only equal to themselves
	assert.True(t, eq(Element(math.Inf(1)), Element(math.Inf(1))))
	assert.False(t, eq(Element(math.Inf(1)), 1e300))
	assert.False(t, eq(Element(math.NaN()), Element(math.NaN())))
}
