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
	"testing"

	"github.com/consensys/go-enigma/pkg/cipher"
	"github.com/consensys/go-enigma/pkg/util/assert"
)

func Test_Alphabet_01(t *testing.T) {
	alphabet := newAlphabet(t, "abcd")
	assert.Equal(t, 4, alphabet.Len())
	//
	i, err := alphabet.Encode('a')
	assert.NoError(t, err)
	assert.Equal(t, 0, i)
	//
	i, err = alphabet.Encode('c')
	assert.NoError(t, err)
	assert.Equal(t, 2, i)
}

func Test_Alphabet_02(t *testing.T) {
	alphabet := newAlphabet(t, "abcd")
	//
	r, err := alphabet.Decode(0)
	assert.NoError(t, err)
	assert.Equal(t, 'a', r)
	//
	r, err = alphabet.Decode(2)
	assert.NoError(t, err)
	assert.Equal(t, 'c', r)
}

func Test_Alphabet_03(t *testing.T) {
	alphabet := newAlphabet(t, Latin)
	//
	_, err := alphabet.Encode('?')
	assert.ErrorIs(t, err, cipher.ErrUnknownSymbol)
	//
	_, err = alphabet.Decode(26)
	assert.ErrorIs(t, err, cipher.ErrIndexOutOfRange)
}

func Test_Alphabet_04(t *testing.T) {
	_, err := NewAlphabet("ABCA")
	assert.ErrorIs(t, err, cipher.ErrConflict)
}

func Test_Alphabet_05(t *testing.T) {
	// Multi-byte symbols are single indices
	alphabet := newAlphabet(t, "αβγδ")
	assert.Equal(t, 4, alphabet.Len())
	assert.True(t, alphabet.Contains('γ'))
	assert.False(t, alphabet.Contains('a'))
	assert.Equal(t, "αβγδ", alphabet.String())
	//
	for i := range alphabet.Len() {
		r, err := alphabet.Decode(i)
		assert.NoError(t, err)
		j, err := alphabet.Encode(r)
		assert.NoError(t, err)
		assert.Equal(t, i, j)
	}
}
