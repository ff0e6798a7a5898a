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
	"math/big"
	"math/rand/v2"
	"sort"

	"github.com/consensys/go-algebra/pkg/algebra"
	"github.com/consensys/go-algebra/pkg/algebra/bls12_377"
	"github.com/consensys/go-algebra/pkg/algebra/integer"
	"github.com/consensys/go-algebra/pkg/algebra/reals"
	"github.com/consensys/go-algebra/pkg/algebra/smallfield"
)

// REAL_SAMPLE_BOUND bounds the magnitude of sampled reals, such that no law
// evaluation can overflow.
const REAL_SAMPLE_BOUND float64 = 1000

// SPECIAL_SAMPLE_RATE determines how often (one in n) a sample is drawn from
// the special values (0, 1, -1) rather than uniformly.
const SPECIAL_SAMPLE_RATE = 16

// Config determines how structures are checked.
type Config struct {
	// Samples is the number of triples to check each law against.
	Samples uint
	// Seed for the random number generator, such that runs are reproducible.
	Seed uint64
	// Epsilon is the relative tolerance used when comparing reals.
	Epsilon float64
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{Samples: 1000, Seed: 1, Epsilon: 1e-9}
}

// Structure is a named algebraic structure whose laws can be checked.
type Structure struct {
	// Name used to select this structure.
	Name string
	// Description of the structure.
	Description string
	//
	run func(cfg Config, rng *rand.Rand) Report
}

// Run checks every law of this structure against randomly generated samples.
func (s Structure) Run(cfg Config) Report {
	var (
		stats = NewPerfStats()
		rng   = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	)
	//
	report := s.run(cfg, rng)
	//
	stats.Log(fmt.Sprintf("checking %s (%d samples)", s.Name, cfg.Samples))
	//
	return report
}

var structures = map[string]Structure{
	"integer-group": {
		Name:        "integer-group",
		Description: "additive group of 64-bit integers",
		run: func(cfg Config, rng *rand.Rand) Report {
			laws := algebra.AdditiveLaws[integer.Element]()
			return checkAdditive("integer-group", laws, randomInteger, cfg.Samples, rng)
		},
	},
	"integer": {
		Name:        "integer",
		Description: "ring of 64-bit integers",
		run: func(cfg Config, rng *rand.Rand) Report {
			laws := algebra.RingLaws[integer.Element]()
			return checkRing("integer", laws, randomInteger, cfg.Samples, rng)
		},
	},
	"real": {
		Name:        "real",
		Description: "field of 64-bit floating point reals (approximate)",
		run: func(cfg Config, rng *rand.Rand) Report {
			laws := algebra.FieldLaws[reals.Element]().WithEquality(reals.ApproxEqual(cfg.Epsilon))
			return checkRing("real", laws, randomReal, cfg.Samples, rng)
		},
	},
	"bls12-377": {
		Name:        "bls12-377",
		Description: "scalar field of the BLS12-377 curve",
		run: func(cfg Config, rng *rand.Rand) Report {
			laws := algebra.FieldLaws[bls12_377.Element]()
			return checkRing("bls12-377", laws, randomBls12_377, cfg.Samples, rng)
		},
	},
	"mersenne31": {
		Name:        "mersenne31",
		Description: "prime field of order 2^31-1",
		run: func(cfg Config, rng *rand.Rand) Report {
			return checkSmallField[smallfield.Mersenne31]("mersenne31", cfg, rng)
		},
	},
	"koalabear": {
		Name:        "koalabear",
		Description: "prime field of order 2^31-2^24+1",
		run: func(cfg Config, rng *rand.Rand) Report {
			return checkSmallField[smallfield.KoalaBear]("koalabear", cfg, rng)
		},
	},
}

// Structures returns every known structure, sorted by name.
func Structures() []Structure {
	var result []Structure
	//
	for _, s := range structures {
		result = append(result, s)
	}
	//
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	//
	return result
}

// Lookup a structure by name.
func Lookup(name string) (Structure, error) {
	if s, ok := structures[name]; ok {
		return s, nil
	}
	//
	return Structure{}, fmt.Errorf("unknown structure \"%s\"", name)
}

func checkSmallField[M smallfield.Modulus](name string, cfg Config, rng *rand.Rand) Report {
	var (
		field = smallfield.NewField[M]()
		laws  = algebra.FieldLaws[smallfield.Element[M]]()
	)
	//
	gen := func(rng *rand.Rand) smallfield.Element[M] {
		if n, ok := special(rng); ok {
			return field.FromInt(n)
		}

		return field.NewElement(rng.Uint32N(field.Modulus()))
	}
	//
	return checkRing(name, laws, gen, cfg.Samples, rng)
}

// special occasionally selects one of the special values 0, 1 or -1, since
// these are where implementations most often go wrong.
func special(rng *rand.Rand) (int64, bool) {
	if rng.IntN(SPECIAL_SAMPLE_RATE) != 0 {
		return 0, false
	}
	//
	return rng.Int64N(3) - 1, true
}

func randomInteger(rng *rand.Rand) integer.Element {
	if n, ok := special(rng); ok {
		return integer.Element(n)
	}
	//
	return integer.Element(rng.Int64() - rng.Int64())
}

func randomReal(rng *rand.Rand) reals.Element {
	if n, ok := special(rng); ok {
		return reals.Element(n)
	}
	//
	return reals.Element((2*rng.Float64() - 1) * REAL_SAMPLE_BOUND)
}

func randomBls12_377(rng *rand.Rand) bls12_377.Element {
	if n, ok := special(rng); ok {
		return algebra.FromInt[bls12_377.Element](n)
	}
	//
	var bytes [32]byte
	//
	for i := 0; i < len(bytes); i += 8 {
		v := rng.Uint64()
		for j := range 8 {
			bytes[i+j] = byte(v >> (8 * j))
		}
	}
	//
	return bls12_377.FromBigInt(new(big.Int).SetBytes(bytes[:]))
}
