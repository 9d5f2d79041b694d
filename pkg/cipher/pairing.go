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
	"strings"

	"github.com/consensys/go-enigma/pkg/util"
)

// Pair is an unordered connection between two indices.  A pair whose left and
// right sides coincide connects an index with itself.
type Pair struct {
	Left  uint
	Right uint
}

// NewPair returns a new pair connecting two indices.
func NewPair(left uint, right uint) Pair {
	return Pair{left, right}
}

// Partner returns the index connected to a given index by this pair, or false
// if the index is not part of this pair.
func (p Pair) Partner(index uint) (uint, bool) {
	switch index {
	case p.Left:
		return p.Right, true
	case p.Right:
		return p.Left, true
	}
	//
	return 0, false
}

// Contains checks whether a given index is one side of this pair.
func (p Pair) Contains(index uint) bool {
	return p.Left == index || p.Right == index
}

func (p Pair) String() string {
	return fmt.Sprintf("%d<->%d", p.Left, p.Right)
}

// PairingSet is a symmetric matching over indices, where each index belongs to
// at most one pair.  Lookups are symmetric: when a is paired with b, then b is
// paired with a.  A PairingSet is a value; operations which change the set
// return a new set and leave the original untouched.
//
// A pairing set says nothing about indices which are unpaired.  What happens to
// them is decided by the stage using the set: a plugboard passes them through,
// whilst a reflector rejects them.
type PairingSet struct {
	pairs []Pair
}

// EmptyPairing returns a pairing set with no pairs.
func EmptyPairing() PairingSet {
	return PairingSet{nil}
}

// MirrorPairing returns a pairing set where every index in 0..n is paired with
// itself.  Only meaningful under a pass-through policy, since it has a fixed
// point at every index.
func MirrorPairing(n uint) PairingSet {
	pairs := make([]Pair, n)
	//
	for i := range n {
		pairs[i] = Pair{i, i}
	}
	//
	return PairingSet{pairs}
}

// FlippedPairing returns a pairing set where each index v in 0..n is paired
// with n-1-v.  When n is odd, the middle index is paired with itself.
func FlippedPairing(n uint) PairingSet {
	pairs := make([]Pair, 0, (n+1)/2)
	//
	for i := uint(0); i < n/2; i++ {
		pairs = append(pairs, Pair{i, n - 1 - i})
	}
	//
	if n%2 == 1 {
		pairs = append(pairs, Pair{n / 2, n / 2})
	}
	//
	return PairingSet{pairs}
}

// RandomPairing returns a uniformly random matching over 0..n drawn from a
// given source of randomness (nil uses the process-wide generator).  The
// indices are shuffled and each consecutive couple of the shuffled sequence
// forms one pair.  When n is even the result is a perfect matching with no
// fixed points, otherwise exactly one index remains unpaired.
func RandomPairing(n uint, rng *rand.Rand) PairingSet {
	var (
		shuffled = util.RandomPermutation(n, rng)
		paired   = make([]bool, n)
		pairs    = make([]Pair, 0, n/2)
	)
	//
	for i := uint(0); i+1 < n; i += 2 {
		a, b := shuffled[i], shuffled[i+1]
		// Each unordered pair is recorded exactly once.
		if paired[a] || paired[b] {
			continue
		}
		//
		paired[a], paired[b] = true, true
		pairs = append(pairs, Pair{a, b})
	}
	//
	return PairingSet{pairs}
}

// Len returns the number of pairs in this set.
func (p PairingSet) Len() uint {
	return uint(len(p.pairs))
}

// Pairs returns a copy of the pairs in this set, in the order they were added.
func (p PairingSet) Pairs() []Pair {
	return slices.Clone(p.pairs)
}

// Pair returns a new set which additionally pairs a with b.  This fails if
// either a or b is already paired.
func (p PairingSet) Pair(a uint, b uint) (PairingSet, error) {
	if p.IsPaired(a) {
		return p, fmt.Errorf("%w: %d already paired", ErrConflict, a)
	} else if p.IsPaired(b) {
		return p, fmt.Errorf("%w: %d already paired", ErrConflict, b)
	}
	//
	pairs := make([]Pair, len(p.pairs), len(p.pairs)+1)
	copy(pairs, p.pairs)
	//
	return PairingSet{append(pairs, Pair{a, b})}, nil
}

// Unpair returns a new set without the pair containing a given index.  If the
// index is not paired, the result is equivalent to this set.
func (p PairingSet) Unpair(index uint) PairingSet {
	pairs := make([]Pair, 0, len(p.pairs))
	//
	for _, pair := range p.pairs {
		if !pair.Contains(index) {
			pairs = append(pairs, pair)
		}
	}
	//
	return PairingSet{pairs}
}

// IsPaired checks whether a given index belongs to some pair.
func (p PairingSet) IsPaired(index uint) bool {
	_, err := p.IndexOf(index)
	return err == nil
}

// IndexOf returns the position within this set of the pair containing a given
// index.  This fails if the index is not paired.
func (p PairingSet) IndexOf(index uint) (uint, error) {
	for i, pair := range p.pairs {
		if pair.Contains(index) {
			return uint(i), nil
		}
	}
	//
	return 0, fmt.Errorf("%w: %d is not paired", ErrNotFound, index)
}

// Lookup returns the partner of a given index, or false if it is unpaired.
func (p PairingSet) Lookup(index uint) (uint, bool) {
	for _, pair := range p.pairs {
		if partner, ok := pair.Partner(index); ok {
			return partner, true
		}
	}
	//
	return 0, false
}

// IsTotal checks whether every index in 0..n is paired, and no pair refers to
// an index outside 0..n.
func (p PairingSet) IsTotal(n uint) bool {
	covered := make([]bool, n)
	//
	for _, pair := range p.pairs {
		if pair.Left >= n || pair.Right >= n {
			return false
		}
		//
		covered[pair.Left] = true
		covered[pair.Right] = true
	}
	//
	return !slices.Contains(covered, false)
}

// HasFixedPoint checks whether any index is paired with itself.
func (p PairingSet) HasFixedPoint() bool {
	for _, pair := range p.pairs {
		if pair.Left == pair.Right {
			return true
		}
	}
	//
	return false
}

func (p PairingSet) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, pair := range p.pairs {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(pair.String())
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}
