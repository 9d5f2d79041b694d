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
package wiring

import (
	"fmt"
	"math/rand/v2"

	"github.com/consensys/go-enigma/pkg/cipher"
)

// ReflectorBuilder constructs a reflector for a given alphabet size.
type ReflectorBuilder func(n uint) (Reflector, error)

// Reflector sends every index back along a different path.  Every index is
// paired with exactly one other index, hence encoding is an involution with no
// fixed points.
type Reflector struct {
	size  uint
	pairs cipher.PairingSet
}

var _ cipher.Involution = Reflector{}

// NewReflector constructs a reflector over n indices from a given pairing.
// The pairing must cover every index in 0..n, and must not pair any index with
// itself.  Hence, n must be even.
func NewReflector(n uint, pairs cipher.PairingSet) (Reflector, error) {
	if n%2 != 0 {
		return Reflector{}, fmt.Errorf("%w: reflector requires even size (was %d)", cipher.ErrSizeMismatch, n)
	}
	//
	for _, p := range pairs.Pairs() {
		if p.Left >= n || p.Right >= n {
			return Reflector{}, fmt.Errorf("%w: pair %s (reflector size %d)", cipher.ErrIndexOutOfRange, p, n)
		} else if p.Left == p.Right {
			return Reflector{}, fmt.Errorf("%w: reflector cannot pair %d with itself", cipher.ErrConflict, p.Left)
		}
	}
	//
	for i := range n {
		if !pairs.IsPaired(i) {
			return Reflector{}, fmt.Errorf("%w: reflector leaves %d unpaired", cipher.ErrNotFound, i)
		}
	}
	//
	return Reflector{n, pairs}, nil
}

// FlippedReflector constructs a reflector pairing each index v with n-1-v.
func FlippedReflector(n uint) (Reflector, error) {
	return NewReflector(n, cipher.FlippedPairing(n))
}

// RandomReflector returns a builder of reflectors with a uniformly random
// pairing, drawing from a given source of randomness.
func RandomReflector(rng *rand.Rand) ReflectorBuilder {
	return func(n uint) (Reflector, error) {
		return NewReflector(n, cipher.RandomPairing(n, rng))
	}
}

// FromPairing returns a builder which always constructs a reflector from the
// given pairing.
func FromPairing(pairs cipher.PairingSet) ReflectorBuilder {
	return func(n uint) (Reflector, error) {
		return NewReflector(n, pairs)
	}
}

// Len returns the number of indices this reflector operates over.
func (r Reflector) Len() uint {
	return r.size
}

// Encode returns the index paired with a given index.  Applying this twice
// returns the original index.
func (r Reflector) Encode(index uint) (uint, error) {
	if index >= r.size {
		return 0, fmt.Errorf("%w: %d (reflector size %d)", cipher.ErrIndexOutOfRange, index, r.size)
	} else if partner, ok := r.pairs.Lookup(index); ok {
		return partner, nil
	}
	// Unreachable for any reflector built by NewReflector.
	return 0, fmt.Errorf("%w: reflector has no pair for %d", cipher.ErrNotFound, index)
}

// Pairs returns the pairs making up this reflector.
func (r Reflector) Pairs() []cipher.Pair {
	return r.pairs.Pairs()
}

func (r Reflector) String() string {
	return r.pairs.String()
}
