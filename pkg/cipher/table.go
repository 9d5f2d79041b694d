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
package cipher

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/consensys/go-enigma/pkg/util"
)

// PermutationTable is a bijection over the indices 0..n, with both directions
// materialised.  That is, forward[i] gives the image of i and inverse[v] gives
// the preimage of v, such that inverse[forward[i]] == i for all i.  Tables are
// never modified once constructed and, hence, can be freely shared between
// copies of the stages which hold them.
type PermutationTable struct {
	forward []uint
	inverse []uint
}

var _ Directed = PermutationTable{}

// NewPermutationTable constructs a table whose forward direction is given by a
// list of values.  This fails if the values are not a permutation of 0..n
// (i.e. a value is out-of-range, or occurs more than once).
func NewPermutationTable(values []uint) (PermutationTable, error) {
	var (
		n       = uint(len(values))
		inverse = make([]uint, n)
		seen    = make([]bool, n)
	)
	//
	for i, v := range values {
		if v >= n {
			return PermutationTable{}, outOfRange(v, n)
		} else if seen[v] {
			return PermutationTable{}, fmt.Errorf("%w: value %d repeated in permutation", ErrConflict, v)
		}
		//
		seen[v] = true
		inverse[v] = uint(i)
	}
	//
	return PermutationTable{slices.Clone(values), inverse}, nil
}

// AscendingTable constructs the identity permutation over 0..n.
func AscendingTable(n uint) PermutationTable {
	values := make([]uint, n)
	//
	for i := range n {
		values[i] = i
	}
	//
	return newUnchecked(values)
}

// DescendingTable constructs the reversing permutation over 0..n, where i maps
// to n-1-i.
func DescendingTable(n uint) PermutationTable {
	values := make([]uint, n)
	//
	for i := range n {
		values[i] = n - 1 - i
	}
	//
	return newUnchecked(values)
}

// RandomTable constructs a uniformly shuffled permutation over 0..n using a
// given source of randomness.  A nil source uses the process-wide generator.
func RandomTable(n uint, rng *rand.Rand) PermutationTable {
	return newUnchecked(util.RandomPermutation(n, rng))
}

// Construct a table from values known to be a permutation.
func newUnchecked(values []uint) PermutationTable {
	inverse := make([]uint, len(values))
	//
	for i, v := range values {
		inverse[v] = uint(i)
	}
	//
	return PermutationTable{values, inverse}
}

// Len returns the number of indices in this table.
func (p PermutationTable) Len() uint {
	return uint(len(p.forward))
}

// Encode maps an index in the forward direction.
func (p PermutationTable) Encode(index uint) (uint, error) {
	return lookup(p.forward, index)
}

// Decode maps an index in the inverse direction.
func (p PermutationTable) Decode(index uint) (uint, error) {
	return lookup(p.inverse, index)
}

// Forward returns a copy of the forward direction of this table.
func (p PermutationTable) Forward() []uint {
	return slices.Clone(p.forward)
}

// Equals checks whether two tables describe the same permutation.
func (p PermutationTable) Equals(other PermutationTable) bool {
	return slices.Equal(p.forward, other.forward)
}

func (p PermutationTable) String() string {
	return fmt.Sprintf("%v", p.forward)
}

func lookup(values []uint, index uint) (uint, error) {
	if index >= uint(len(values)) {
		return 0, outOfRange(index, uint(len(values)))
	}
	//
	return values[index], nil
}
