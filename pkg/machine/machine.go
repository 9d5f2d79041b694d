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
package machine

import (
	"fmt"

	"github.com/consensys/go-enigma/pkg/cipher"
	"github.com/consensys/go-enigma/pkg/rotor"
	"github.com/consensys/go-enigma/pkg/wiring"
	log "github.com/sirupsen/logrus"
)

// Machine composes a plugboard, a stack of rotors and a reflector over a
// given alphabet.  An index entering the machine passes through the
// plugboard, forwards through the rotors, into the reflector, backwards
// through the rotors and, finally, through the plugboard again.  Since the
// reflector is an involution without fixed points, the whole machine is
// reciprocal: encoding and decoding are the same operation, given the same
// rotor positions.
//
// A Machine is a value.  Configuring or stepping a machine always produces a
// new machine, leaving the original unchanged.  Callers running a session
// must thread the returned machine through successive calls.
type Machine struct {
	alphabet  Alphabet
	plugboard wiring.Plugboard
	rotors    rotor.Stack
	reflector wiring.Reflector
}

// New constructs a machine over a given alphabet, with no rotors, an empty
// plugboard and a flipped reflector.  This fails if the alphabet has an odd
// number of symbols, since no reflector can then pair every symbol.
func New(alphabet Alphabet) (Machine, error) {
	reflector, err := wiring.FlippedReflector(alphabet.Len())
	//
	if err != nil {
		return Machine{}, err
	}
	//
	return Machine{alphabet, wiring.NewPlugboard(alphabet.Len()), rotor.NewStack(), reflector}, nil
}

// Alphabet returns the alphabet of this machine.
func (m Machine) Alphabet() Alphabet {
	return m.alphabet
}

// Plugboard returns the plugboard of this machine.
func (m Machine) Plugboard() wiring.Plugboard {
	return m.plugboard
}

// Rotors returns the rotor stack of this machine.
func (m Machine) Rotors() rotor.Stack {
	return m.rotors
}

// Reflector returns the reflector of this machine.
func (m Machine) Reflector() wiring.Reflector {
	return m.reflector
}

// WithRotor returns a machine with an additional (slowest) rotor, constructed
// for the size of this machine's alphabet.
func (m Machine) WithRotor(builder rotor.Builder) (Machine, error) {
	r := builder(m.alphabet.Len())
	//
	if r.Len() != m.alphabet.Len() {
		return m, fmt.Errorf("%w: rotor of size %d for alphabet of size %d", cipher.ErrSizeMismatch, r.Len(),
			m.alphabet.Len())
	}
	//
	m.rotors = m.rotors.With(r)
	//
	return m, nil
}

// WithRotors returns a machine with zero or more additional rotors, added in
// the order given.
func (m Machine) WithRotors(builders ...rotor.Builder) (Machine, error) {
	var err error
	//
	for _, builder := range builders {
		if m, err = m.WithRotor(builder); err != nil {
			return m, err
		}
	}
	//
	return m, nil
}

// WithReflector returns a machine whose reflector is replaced by one
// constructed for the size of this machine's alphabet.
func (m Machine) WithReflector(builder wiring.ReflectorBuilder) (Machine, error) {
	reflector, err := builder(m.alphabet.Len())
	//
	if err != nil {
		return m, err
	} else if reflector.Len() != m.alphabet.Len() {
		return m, fmt.Errorf("%w: reflector of size %d for alphabet of size %d", cipher.ErrSizeMismatch,
			reflector.Len(), m.alphabet.Len())
	}
	//
	m.reflector = reflector
	//
	return m, nil
}

// Connect returns a machine whose plugboard additionally connects two
// symbols.
func (m Machine) Connect(a rune, b rune) (Machine, error) {
	ith, err := m.alphabet.Encode(a)
	if err != nil {
		return m, err
	}
	//
	jth, err := m.alphabet.Encode(b)
	if err != nil {
		return m, err
	}
	//
	plugboard, err := m.plugboard.Connect(ith, jth)
	if err != nil {
		return m, fmt.Errorf("connecting '%c' to '%c': %w", a, b, err)
	}
	//
	m.plugboard = plugboard
	//
	return m, nil
}

// Disconnect returns a machine whose plugboard no longer connects a given
// symbol.  Disconnecting an unconnected symbol has no effect.
func (m Machine) Disconnect(symbol rune) (Machine, error) {
	index, err := m.alphabet.Encode(symbol)
	if err != nil {
		return m, err
	}
	//
	m.plugboard = m.plugboard.Disconnect(index)
	//
	return m, nil
}

// Positions returns the position of every rotor, starting from rotor 0.
func (m Machine) Positions() []uint {
	return m.rotors.Positions()
}

// SetPositions returns a machine with its rotors at the given positions.
func (m Machine) SetPositions(positions []uint) (Machine, error) {
	rotors, err := m.rotors.SetPositions(positions)
	if err != nil {
		return m, err
	}
	//
	m.rotors = rotors
	//
	return m, nil
}

// Reset returns a machine with every rotor at position 0.  The wiring,
// plugboard and reflector are unchanged.
func (m Machine) Reset() Machine {
	m.rotors = m.rotors.ResetPositions()
	return m
}

// Step returns a machine whose rotors have advanced once.
func (m Machine) Step() Machine {
	m.rotors = m.rotors.Advance()
	return m
}

// Encode steps the rotors and then passes a symbol through the machine,
// returning the stepped machine and the resulting symbol.  On failure, the
// original machine is returned.
func (m Machine) Encode(symbol rune) (Machine, rune, error) {
	index, err := m.alphabet.Encode(symbol)
	if err != nil {
		return m, 0, err
	}
	//
	next := m.Step()
	//
	if index, err = next.Process(index); err != nil {
		return m, 0, err
	}
	//
	result, err := next.alphabet.Decode(index)
	if err != nil {
		// Should be unreachable, as every stage is sized to the alphabet.
		return m, 0, fmt.Errorf("inconsistent machine: %w", err)
	}
	//
	return next, result, nil
}

// Decode is identical to Encode, since the machine is reciprocal.
func (m Machine) Decode(symbol rune) (Machine, rune, error) {
	return m.Encode(symbol)
}

// Process passes an index through every stage of the machine without stepping
// the rotors.
func (m Machine) Process(index uint) (uint, error) {
	var (
		trace [6]uint
		err   error
	)
	//
	stages := [5]func(uint) (uint, error){
		m.plugboard.Encode,
		m.rotors.Encode,
		m.reflector.Encode,
		m.rotors.Decode,
		m.plugboard.Encode,
	}
	//
	trace[0] = index
	//
	for i, stage := range stages {
		if index, err = stage(index); err != nil {
			return 0, err
		}
		//
		trace[i+1] = index
	}
	//
	log.Tracef("%d -> PB -> %d -> RE -> %d -> X -> %d -> RD -> %d -> PB -> %d", trace[0], trace[1], trace[2],
		trace[3], trace[4], trace[5])
	//
	return index, nil
}
