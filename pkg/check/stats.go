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
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats is a snapshot of the time and memory used at a given point, so
// that the cost of checking can be reported.
type PerfStats struct {
	// Time when stats were created
	startTime time.Time
	// Starting total memory allocation
	startMem uint64
}

// NewPerfStats creates a new snapshot of the current time and allocation.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats

	runtime.ReadMemStats(&m)

	return &PerfStats{time.Now(), m.TotalAlloc}
}

// Log logs the difference between the state now and as it was when the
// PerfStats object was created.
func (p *PerfStats) Log(prefix string) {
	var m runtime.MemStats

	runtime.ReadMemStats(&m)
	alloc := (m.TotalAlloc - p.startMem) / 1024
	exectime := time.Since(p.startTime).Seconds()

	log.Debugf("%s took %0.3fs using %v Kb", prefix, exectime, alloc)
}
