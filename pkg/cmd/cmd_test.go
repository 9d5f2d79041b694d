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
package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/consensys/go-enigma/pkg/cipher"
	"github.com/consensys/go-enigma/pkg/config"
	"github.com/consensys/go-enigma/pkg/machine"
	"github.com/consensys/go-enigma/pkg/util"
	"github.com/consensys/go-enigma/pkg/util/assert"
)

func Test_Session_01(t *testing.T) {
	var (
		m       = newTestMachine(t, 1)
		encoded bytes.Buffer
		decoded bytes.Buffer
	)
	// Lines share one running machine
	err := newSession(m, false, true).encodeAll(strings.NewReader("hello\nworld\n"), &encoded)
	assert.NoError(t, err)
	//
	err = newSession(m, false, true).encodeAll(&encoded, &decoded)
	assert.NoError(t, err)
	assert.Equal(t, "HELLO\nWORLD\n", decoded.String())
}

func Test_Session_02(t *testing.T) {
	var out bytes.Buffer
	//
	s := newSession(newTestMachine(t, 2), false, false)
	// Lower case is not in the alphabet
	err := s.encodeLine("hello", &out)
	assert.ErrorIs(t, err, cipher.ErrUnknownSymbol)
	assert.Equal(t, []uint{0, 0, 0}, s.machine.Positions())
}

func Test_Session_03(t *testing.T) {
	var out bytes.Buffer
	//
	s := newSession(newTestMachine(t, 3), true, true)
	assert.NoError(t, s.encodeLine("Hello, World!", &out))
	assert.Equal(t, 14, out.Len())
	assert.Equal(t, []uint{10, 0, 0}, s.machine.Positions())
	assert.Equal(t, 13, s.stats.Symbols())
}

func Test_Show_01(t *testing.T) {
	var out bytes.Buffer
	//
	m := newTestMachine(t, 4)
	m, err := m.Connect('A', 'B')
	assert.NoError(t, err)
	//
	assert.NoError(t, printMachine(m, &out, false))
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	// header, plugboard, three rotors and reflector
	assert.Equal(t, 6, len(lines))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[1]), "plugboard | B | A | C |"), lines[1])
	assert.True(t, strings.Contains(lines[5], "reflector | Z | Y |"), lines[5])
	assert.False(t, strings.Contains(out.String(), "\033["))
}

func Test_Demo_01(t *testing.T) {
	var out bytes.Buffer
	//
	m, err := newTestMachine(t, 5).SetPositions([]uint{3, 1, 4})
	assert.NoError(t, err)
	assert.NoError(t, runDemo(m, "HELLOWORLD", &out))
	assert.True(t, strings.Contains(out.String(), "3 rotors at 3,1,4"), out.String())
	assert.True(t, strings.HasSuffix(out.String(), "-> \"HELLOWORLD\"\n"), out.String())
}

func Test_Generate_01(t *testing.T) {
	lhs, err := generateMachine(machine.Latin, 4, util.NewSeededRandom(9))
	assert.NoError(t, err)
	rhs, err := generateMachine(machine.Latin, 4, util.NewSeededRandom(9))
	assert.NoError(t, err)
	assert.Equal(t, 4, lhs.Rotors().Count())
	// Same seed, same configuration
	lcfg, err := config.Describe(lhs)
	assert.NoError(t, err)
	rcfg, err := config.Describe(rhs)
	assert.NoError(t, err)
	assert.Equal(t, lcfg, rcfg)
	//
	_, err = generateMachine("ABC", 1, nil)
	assert.ErrorIs(t, err, cipher.ErrSizeMismatch)
}

func Test_Positions_01(t *testing.T) {
	positions, err := parsePositions("0, 12,3")
	assert.NoError(t, err)
	assert.Equal(t, []uint{0, 12, 3}, positions)
	assert.Equal(t, "0,12,3", formatPositions(positions))
	//
	_, err = parsePositions("1,x")
	assert.True(t, err != nil)
	//
	_, err = parsePositions("-1")
	assert.True(t, err != nil)
}

// ===================================================================
// Test Helpers
// ===================================================================

func newTestMachine(t *testing.T, seed uint64) machine.Machine {
	t.Helper()
	//
	cfg := &config.Config{
		Alphabet: machine.Latin,
		Seed:     &seed,
		Rotors: []config.RotorConfig{
			{Wiring: config.WIRING_RANDOM},
			{Wiring: config.WIRING_ASCENDING},
			{Wiring: config.WIRING_DESCENDING},
		},
		Reflector: config.ReflectorConfig{Kind: config.REFLECTOR_FLIPPED},
	}
	//
	m, err := cfg.Build()
	assert.NoError(t, err)
	//
	return m
}
