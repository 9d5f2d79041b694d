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
	"slices"
	"strings"

	"github.com/consensys/go-enigma/pkg/cipher"
)

// Stack is an ordered sequence of rotors.  Rotor 0 sits closest to the
// plugboard and turns fastest.  Indices pass through the rotors in order when
// encoding, and in reverse order when decoding.  Stepping follows a simple
// odometer: rotor 0 always advances, and each subsequent rotor advances only
// when the rotor before it advanced from its final position.
type Stack struct {
	rotors []Rotor
}

var _ cipher.Directed = Stack{}

// NewStack constructs a stack from zero or more rotors, with the first given
// rotor being the fastest.
func NewStack(rotors ...Rotor) Stack {
	return Stack{slices.Clone(rotors)}
}

// With returns a new stack with an additional (slowest) rotor.
func (s Stack) With(rotor Rotor) Stack {
	rotors := make([]Rotor, len(s.rotors), len(s.rotors)+1)
	copy(rotors, s.rotors)
	//
	return Stack{append(rotors, rotor)}
}

// Count returns the number of rotors in this stack.
func (s Stack) Count() uint {
	return uint(len(s.rotors))
}

// Len returns the number of indices this stack operates over, which is that of
// its rotors.  An empty stack has length 0.
func (s Stack) Len() uint {
	if len(s.rotors) == 0 {
		return 0
	}
	//
	return s.rotors[0].Len()
}

// Rotor returns the ith rotor of this stack.
func (s Stack) Rotor(i uint) Rotor {
	return s.rotors[i]
}

// Rotors returns a copy of the rotors in this stack.
func (s Stack) Rotors() []Rotor {
	return slices.Clone(s.rotors)
}

// Encode folds an index through each rotor in turn, starting from rotor 0.
func (s Stack) Encode(index uint) (uint, error) {
	var err error
	//
	for _, r := range s.rotors {
		if index, err = r.Encode(index); err != nil {
			return 0, err
		}
	}
	//
	return index, nil
}

// Decode folds an index back through each rotor in reverse, finishing with
// rotor 0.
func (s Stack) Decode(index uint) (uint, error) {
	var err error
	//
	for i := len(s.rotors) - 1; i >= 0; i-- {
		if index, err = s.rotors[i].Decode(index); err != nil {
			return 0, err
		}
	}
	//
	return index, nil
}

// Advance returns the stack stepped once.  Rotor 0 always advances.  Rotor k+1
// advances only if rotor k advanced and was in its final position beforehand.
func (s Stack) Advance() Stack {
	var (
		rotors = slices.Clone(s.rotors)
		carry  = true
	)
	//
	for i := 0; i < len(rotors) && carry; i++ {
		// Carry is determined before advancing
		carry = rotors[i].AtLastPosition()
		rotors[i] = rotors[i].Advance()
	}
	//
	return Stack{rotors}
}

// Positions returns the current position of every rotor, starting from rotor
// 0.
func (s Stack) Positions() []uint {
	positions := make([]uint, len(s.rotors))
	//
	for i, r := range s.rotors {
		positions[i] = r.Position()
	}
	//
	return positions
}

// SetPositions returns a stack whose rotors are at the given positions.  This
// fails if the number of positions differs from the number of rotors.
func (s Stack) SetPositions(positions []uint) (Stack, error) {
	if len(positions) != len(s.rotors) {
		return s, fmt.Errorf("%w: %d positions given for %d rotors", cipher.ErrSizeMismatch, len(positions),
			len(s.rotors))
	}
	//
	rotors := make([]Rotor, len(s.rotors))
	//
	for i, r := range s.rotors {
		rotors[i] = r.SetPosition(positions[i])
	}
	//
	return Stack{rotors}, nil
}

// ResetPositions returns a stack with every rotor at position 0.
func (s Stack) ResetPositions() Stack {
	rotors := make([]Rotor, len(s.rotors))
	//
	for i, r := range s.rotors {
		rotors[i] = r.Reset()
	}
	//
	return Stack{rotors}
}

func (s Stack) String() string {
	var builder strings.Builder
	//
	for i, r := range s.rotors {
		if i != 0 {
			builder.WriteString(" ")
		}
		//
		builder.WriteString(r.String())
	}
	//
	return builder.String()
}
