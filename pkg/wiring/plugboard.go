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

	"github.com/consensys/go-enigma/pkg/cipher"
)

// Plugboard swaps connected pairs of indices, and passes every unconnected
// index through unchanged.  It is the only stage which tolerates unpaired
// indices, since most contacts of a real plugboard are left unwired.
type Plugboard struct {
	size  uint
	pairs cipher.PairingSet
}

var _ cipher.Involution = Plugboard{}

// NewPlugboard constructs a plugboard with no connections over n indices.
func NewPlugboard(n uint) Plugboard {
	return Plugboard{n, cipher.EmptyPairing()}
}

// Len returns the number of indices this plugboard operates over.
func (p Plugboard) Len() uint {
	return p.size
}

// Encode returns the index connected to a given index or, if it is not
// connected, the index itself.
func (p Plugboard) Encode(index uint) (uint, error) {
	if index >= p.size {
		return 0, fmt.Errorf("%w: %d (plugboard size %d)", cipher.ErrIndexOutOfRange, index, p.size)
	} else if partner, ok := p.pairs.Lookup(index); ok {
		return partner, nil
	}
	//
	return index, nil
}

// Connect returns a plugboard with a additionally connected to b.  This fails
// if either is out-of-range, or already connected.
func (p Plugboard) Connect(a uint, b uint) (Plugboard, error) {
	if a >= p.size {
		return p, fmt.Errorf("%w: %d (plugboard size %d)", cipher.ErrIndexOutOfRange, a, p.size)
	} else if b >= p.size {
		return p, fmt.Errorf("%w: %d (plugboard size %d)", cipher.ErrIndexOutOfRange, b, p.size)
	}
	//
	pairs, err := p.pairs.Pair(a, b)
	if err != nil {
		return p, err
	}
	//
	return Plugboard{p.size, pairs}, nil
}

// Disconnect returns a plugboard without the connection involving a given
// index.  Disconnecting an unconnected index has no effect.
func (p Plugboard) Disconnect(index uint) Plugboard {
	return Plugboard{p.size, p.pairs.Unpair(index)}
}

// IsConnected checks whether a given index is connected to another.
func (p Plugboard) IsConnected(index uint) bool {
	return p.pairs.IsPaired(index)
}

// Connections returns the connected pairs, in the order they were connected.
func (p Plugboard) Connections() []cipher.Pair {
	return p.pairs.Pairs()
}

func (p Plugboard) String() string {
	return p.pairs.String()
}
