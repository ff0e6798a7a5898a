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
package check

import (
	"fmt"
	"testing"

	"github.com/consensys/go-algebra/pkg/algebra"
	"github.com/consensys/go-algebra/pkg/algebra/integer"
	"github.com/consensys/go-algebra/pkg/util/assert"
)

// Check every known structure satisfies its laws on a reasonable number of
// samples.

func Test_Check_IntegerGroup(t *testing.T) {
	checkStructure(t, "integer-group")
}

func Test_Check_Integer(t *testing.T) {
	checkStructure(t, "integer")
}

func Test_Check_Real(t *testing.T) {
	checkStructure(t, "real")
}

func Test_Check_Bls12_377(t *testing.T) {
	checkStructure(t, "bls12-377")
}

func Test_Check_Mersenne31(t *testing.T) {
	checkStructure(t, "mersenne31")
}

func Test_Check_KoalaBear(t *testing.T) {
	checkStructure(t, "koalabear")
}

func Test_Check_Unknown(t *testing.T) {
	_, err := Lookup("quaternion")
	assert.True(t, err != nil)
}

func Test_Check_Structures(t *testing.T) {
	var names []string
	//
	for _, s := range Structures() {
		names = append(names, s.Name)
	}
	//
	assert.Equal(t, []string{"bls12-377", "integer", "integer-group", "koalabear", "mersenne31", "real"}, names)
}

func Test_Check_Reproducible(t *testing.T) {
	s, err := Lookup("real")
	assert.NoError(t, err)
	// Force failures using a tolerance which is too strict for floating point.
	cfg := Config{Samples: 200, Seed: 7, Epsilon: 0}
	r1 := s.Run(cfg)
	r2 := s.Run(cfg)
	//
	assert.True(t, r1.Failed())
	assert.Equal(t, r1, r2)
}

func Test_Check_RealLaws(t *testing.T) {
	s, err := Lookup("real")
	assert.NoError(t, err)
	//
	report := s.Run(DefaultConfig())
	// Zero is sampled, but never checked for a multiplicative inverse.
	res, ok := report.Result("multiplicative inverse")
	assert.True(t, ok)
	assert.True(t, res.Passed > 0)
	assert.True(t, res.Passed < DefaultConfig().Samples)
}

func Test_Tally(t *testing.T) {
	var (
		tally = newTally("test")
		laws  = algebra.MonoidLaws[integer.Element]()
	)
	//
	tally.record("identity", laws.Identity(1), integer.Element(1))
	tally.record("inverse", laws.Inverse(2), integer.Element(2))
	tally.record("inverse", laws.Inverse(3), integer.Element(3))
	tally.record("identity", laws.Identity(4), integer.Element(4))
	//
	report := tally.report()
	//
	assert.True(t, report.Failed())
	assert.Equal(t, []Result{
		{Law: "identity", Passed: 2},
		{Law: "inverse", Failed: 2, Counterexample: "(2)"},
	}, report.Results)
	//
	_, ok := report.Result("associativity")
	assert.False(t, ok)
}

func Test_FormatSamples(t *testing.T) {
	samples := []fmt.Stringer{integer.Element(1), integer.Element(-2), integer.Element(3)}
	//
	assert.Equal(t, "(1, -2, 3)", formatSamples(samples))
	assert.Equal(t, "()", formatSamples(nil))
}

func checkStructure(t *testing.T, name string) {
	t.Parallel()
	//
	s, err := Lookup(name)
	assert.NoError(t, err)
	//
	report := s.Run(DefaultConfig())
	//
	for _, res := range report.Results {
		assert.Equal(t, uint(0), res.Failed, "%s: %s failed on %s", name, res.Law, res.Counterexample)
		assert.True(t, res.Passed > 0, "%s: %s never checked", name, res.Law)
	}
	//
	assert.False(t, report.Failed())
}
