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
package rotor

import (
	"fmt"
	"math/rand/v2"

	"github.com/consensys/go-enigma/pkg/cipher"
)

// Builder constructs a rotor for a given alphabet size.
type Builder func(n uint) Rotor

// Rotor is a permutation table which can be rotated.  The position offsets
// every index entering the rotor, and is undone (modulo n) on the way back.
// Rotors are values: advancing or repositioning a rotor returns a new rotor.
// The wiring is immutable, hence copies may safely share it.
type Rotor struct {
	wiring   cipher.PermutationTable
	position uint
}

var _ cipher.Directed = Rotor{}

// New constructs a rotor with the given wiring at position 0.
func New(wiring cipher.PermutationTable) Rotor {
	return Rotor{wiring, 0}
}

// Ascending constructs a rotor wired with the identity permutation.
func Ascending(n uint) Rotor {
	return New(cipher.AscendingTable(n))
}

// Descending constructs a rotor wired with the reversing permutation.
func Descending(n uint) Rotor {
	return New(cipher.DescendingTable(n))
}

// RandomBuilder returns a builder of randomly wired rotors, drawing from a
// given source of randomness.  Each invocation of the builder consumes from
// the source, so successive rotors are wired differently.
func RandomBuilder(rng *rand.Rand) Builder {
	return func(n uint) Rotor {
		return New(cipher.RandomTable(n, rng))
	}
}

// FromTable returns a builder which always produces a rotor with the given
// wiring.  The alphabet size given to the builder is ignored, so callers must
// ensure the table is of the correct size.
func FromTable(wiring cipher.PermutationTable) Builder {
	return func(uint) Rotor {
		return New(wiring)
	}
}

// Len returns the number of indices this rotor operates over.
func (r Rotor) Len() uint {
	return r.wiring.Len()
}

// Position returns the current rotational offset of this rotor.
func (r Rotor) Position() uint {
	return r.position
}

// Wiring returns the permutation table of this rotor.
func (r Rotor) Wiring() cipher.PermutationTable {
	return r.wiring
}

// Encode passes an index through this rotor in the forward direction.
func (r Rotor) Encode(index uint) (uint, error) {
	n := r.Len()
	//
	if index >= n {
		return 0, fmt.Errorf("%w: %d (rotor size %d)", cipher.ErrIndexOutOfRange, index, n)
	}
	//
	return r.wiring.Encode((index + r.position) % n)
}

// Decode passes an index through this rotor in the inverse direction.
func (r Rotor) Decode(index uint) (uint, error) {
	n := r.Len()
	//
	v, err := r.wiring.Decode(index)
	if err != nil {
		return 0, err
	}
	// Adding n before subtracting the position prevents unsigned underflow.
	return (v + n - r.position) % n, nil
}

// Advance returns this rotor moved on by one position, wrapping back to 0
// after the last position.
func (r Rotor) Advance() Rotor {
	return r.SetPosition(r.position + 1)
}

// SetPosition returns this rotor at a given position (modulo n).
func (r Rotor) SetPosition(position uint) Rotor {
	if n := r.Len(); n > 0 {
		r.position = position % n
	} else {
		r.position = 0
	}
	//
	return r
}

// Reset returns this rotor at position 0.
func (r Rotor) Reset() Rotor {
	return r.SetPosition(0)
}

// AtLastPosition checks whether this rotor is in its final position, such that
// advancing it once more wraps back to 0.
func (r Rotor) AtLastPosition() bool {
	return r.Len() > 0 && r.position == r.Len()-1
}

func (r Rotor) String() string {
	return fmt.Sprintf("%s@%d", r.wiring.String(), r.position)
}
