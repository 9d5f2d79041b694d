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

import "math/rand/v2"

// NewSeededRandom returns a deterministic source of randomness for a given
// seed.  Two sources constructed from the same seed produce identical streams.
func NewSeededRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomPermutation generates a uniformly shuffled permutation of 0..n drawn
// from the given source.  A nil source falls back to the process-wide
// generator, which is not reproducible.
func RandomPermutation(n uint, rng *rand.Rand) []uint {
	items := make([]uint, n)
	//
	for i := uint(0); i < n; i++ {
		items[i] = i
	}
	//
	swap := func(i, j int) {
		items[i], items[j] = items[j], items[i]
	}
	//
	if rng == nil {
		rand.Shuffle(len(items), swap)
	} else {
		rng.Shuffle(len(items), swap)
	}
	//
	return items
}
