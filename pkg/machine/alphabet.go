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
)

// Latin is the alphabet of the 26 uppercase latin letters.
const Latin = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Alphabet is an ordered sequence of distinct symbols, giving a bijection
// between symbols and the indices 0..n.  Alphabets are immutable.
type Alphabet struct {
	symbols []rune
	indices map[rune]uint
}

// NewAlphabet constructs an alphabet from the symbols of a string, in order.
// This fails if any symbol occurs more than once.
func NewAlphabet(symbols string) (Alphabet, error) {
	var (
		runes   = []rune(symbols)
		indices = make(map[rune]uint, len(runes))
	)
	//
	for i, r := range runes {
		if _, ok := indices[r]; ok {
			return Alphabet{}, fmt.Errorf("%w: symbol '%c' repeated in alphabet", cipher.ErrConflict, r)
		}
		//
		indices[r] = uint(i)
	}
	//
	return Alphabet{runes, indices}, nil
}

// Len returns the number of symbols in this alphabet.
func (p Alphabet) Len() uint {
	return uint(len(p.symbols))
}

// Contains checks whether a given symbol is part of this alphabet.
func (p Alphabet) Contains(symbol rune) bool {
	_, ok := p.indices[symbol]
	return ok
}

// Encode returns the index of a given symbol.
func (p Alphabet) Encode(symbol rune) (uint, error) {
	if index, ok := p.indices[symbol]; ok {
		return index, nil
	}
	//
	return 0, fmt.Errorf("%w: '%c'", cipher.ErrUnknownSymbol, symbol)
}

// Decode returns the symbol at a given index.
func (p Alphabet) Decode(index uint) (rune, error) {
	if index >= p.Len() {
		return 0, fmt.Errorf("%w: %d (alphabet size %d)", cipher.ErrIndexOutOfRange, index, p.Len())
	}
	//
	return p.symbols[index], nil
}

func (p Alphabet) String() string {
	return string(p.symbols)
}
