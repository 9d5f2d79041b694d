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
package util

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats records how long a run of encoding takes, and how many symbols
// were processed along the way.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Number of symbols processed
	symbols uint
}

// NewPerfStats starts recording from now.
func NewPerfStats() *PerfStats {
	return &PerfStats{time.Now(), 0}
}

// Count records some number of additional symbols as processed.
func (p *PerfStats) Count(symbols uint) {
	p.symbols += symbols
}

// Symbols returns the number of symbols recorded so far.
func (p *PerfStats) Symbols() uint {
	return p.symbols
}

// Log reports elapsed time and throughput at debug level.
func (p *PerfStats) Log(prefix string) {
	exectime := time.Since(p.startTime).Seconds()
	rate := 0.0
	//
	if exectime > 0 {
		rate = float64(p.symbols) / exectime
	}
	//
	log.Debugf("%s took %0.4fs for %d symbols (%0.0f symbols/s)", prefix, exectime, p.symbols, rate)
}
