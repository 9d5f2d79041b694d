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
	"slices"
	"testing"

	"github.com/consensys/go-enigma/pkg/util/assert"
)

func Test_Random_01(t *testing.T) {
	for n := uint(0); n < 40; n++ {
		check_Permutation(t, RandomPermutation(n, NewSeededRandom(uint64(n))))
		check_Permutation(t, RandomPermutation(n, nil))
	}
}

func Test_Random_02(t *testing.T) {
	lhs := RandomPermutation(64, NewSeededRandom(7))
	rhs := RandomPermutation(64, NewSeededRandom(7))
	assert.Equal(t, lhs, rhs)
}

func Test_PerfStats_01(t *testing.T) {
	stats := NewPerfStats()
	stats.Count(3)
	stats.Count(4)
	assert.Equal(t, 7, stats.Symbols())
	stats.Log("Test")
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Permutation(t *testing.T, items []uint) {
	t.Helper()
	//
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	//
	for i, v := range sorted {
		assert.Equal(t, i, v)
	}
}
