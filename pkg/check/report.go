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
	"strings"
)

// Result records the outcome of evaluating one law over a number of samples.
type Result struct {
	// Law being checked, such as "additive associativity".
	Law string
	// Passed counts the samples for which the law held.
	Passed uint
	// Failed counts the samples which disproved the law.
	Failed uint
	// Counterexample holds the first failing sample (if any).
	Counterexample string
}

// Report summarises the results of checking every law of one structure.
type Report struct {
	// Structure which was checked.
	Structure string
	// Results for each law, in the order they were first evaluated.
	Results []Result
}

// Failed determines whether any law was disproved.
func (r Report) Failed() bool {
	for _, res := range r.Results {
		if res.Failed > 0 {
			return true
		}
	}
	//
	return false
}

// Result returns the outcome for a given law, or false if that law was never
// evaluated.
func (r Report) Result(law string) (Result, bool) {
	for _, res := range r.Results {
		if res.Law == law {
			return res, true
		}
	}
	//
	return Result{}, false
}

// tally accumulates results whilst a structure is being checked.
type tally struct {
	structure string
	results   []Result
	index     map[string]int
}

func newTally(structure string) *tally {
	return &tally{structure, nil, make(map[string]int)}
}

// record the outcome of evaluating a law on some sample values.
func (t *tally) record(law string, holds bool, samples ...fmt.Stringer) {
	i, ok := t.index[law]
	if !ok {
		i = len(t.results)
		t.index[law] = i
		t.results = append(t.results, Result{Law: law})
	}
	//
	res := &t.results[i]
	//
	if holds {
		res.Passed++
		return
	}
	//
	res.Failed++
	//
	if res.Counterexample == "" {
		res.Counterexample = formatSamples(samples)
	}
}

func (t *tally) report() Report {
	return Report{t.structure, t.results}
}

func formatSamples(samples []fmt.Stringer) string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, s := range samples {
		if i != 0 {
			builder.WriteString(", ")
		}

		builder.WriteString(s.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}
