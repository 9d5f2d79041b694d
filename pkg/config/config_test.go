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
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-enigma/pkg/cipher"
	"github.com/consensys/go-enigma/pkg/machine"
	"github.com/consensys/go-enigma/pkg/util/assert"
)

const sampleConfig = `
alphabet: ABCDEFGHIJKLMNOPQRSTUVWXYZ
seed: 42
rotors:
  - wiring: random
  - wiring: ascending
    position: 3
  - wiring: descending
    position: 7
reflector:
  kind: flipped
plugboard: [AB, CD]
`

func Test_Config_01(t *testing.T) {
	config, err := Parse([]byte(sampleConfig))
	assert.NoError(t, err)
	assert.Equal(t, 3, len(config.Rotors))
	assert.Equal(t, uint64(42), *config.Seed)
	//
	m, err := config.Build()
	assert.NoError(t, err)
	assert.Equal(t, []uint{0, 3, 7}, m.Positions())
	assert.Equal(t, 2, len(m.Plugboard().Connections()))
	check_Reciprocal(t, m, "HELLOWORLD")
}

func Test_Config_02(t *testing.T) {
	// Seeded configurations are reproducible
	lhs := build(t, sampleConfig)
	rhs := build(t, sampleConfig)
	assert.Equal(t, encode(t, lhs, "REPRODUCIBLE"), encode(t, rhs, "REPRODUCIBLE"))
}

func Test_Config_03(t *testing.T) {
	// Empty configuration defaults to latin alphabet and flipped reflector
	config, err := Parse([]byte(""))
	assert.NoError(t, err)
	assert.Equal(t, machine.Latin, config.Alphabet)
	assert.Equal(t, REFLECTOR_FLIPPED, config.Reflector.Kind)
	//
	m, err := config.Build()
	assert.NoError(t, err)
	assert.Equal(t, 0, m.Rotors().Count())
}

func Test_Config_04(t *testing.T) {
	original := build(t, sampleConfig)
	// Describe, write and read back
	described, err := Describe(original)
	assert.NoError(t, err)
	bytes, err := Marshal(described)
	assert.NoError(t, err)
	reconstructed := build(t, string(bytes))
	//
	assert.Equal(t, original.Positions(), reconstructed.Positions())
	assert.Equal(t, encode(t, original, "IDENTICALMACHINE"), encode(t, reconstructed, "IDENTICALMACHINE"))
}

func Test_Config_05(t *testing.T) {
	config := `
alphabet: ABCD
rotors:
  - wiring: explicit
    table: [2, 0, 3, 1]
    position: 1
reflector:
  kind: explicit
  pairs: [AC, BD]
`
	m := build(t, config)
	assert.Equal(t, []uint{1}, m.Positions())
	check_Reciprocal(t, m, "ABCDDCBA")
}

func Test_Config_06(t *testing.T) {
	check_Invalid(t, "rotors:\n  - wiring: spiral\n")
	check_Invalid(t, "rotors:\n  - wiring: explicit\n")
	check_Invalid(t, "rotors:\n  - wiring: ascending\n    table: [0]\n")
	check_Invalid(t, "reflector:\n  kind: mirror\n")
	check_Invalid(t, "reflector:\n  kind: explicit\n")
	check_Invalid(t, "reflector:\n  kind: flipped\n  pairs: [AB]\n")
	check_Invalid(t, "plugboard: [ABC]\n")
	check_Invalid(t, "colour: blue\n")
	check_Invalid(t, "rotors: [")
}

func Test_Config_07(t *testing.T) {
	check_BuildFails(t, "alphabet: ABC\n", cipher.ErrSizeMismatch)
	check_BuildFails(t, "alphabet: ABCA\n", cipher.ErrConflict)
	check_BuildFails(t, "plugboard: [AB, BC]\n", cipher.ErrConflict)
	check_BuildFails(t, "plugboard: [\"A?\"]\n", cipher.ErrUnknownSymbol)
	check_BuildFails(t, "alphabet: ABCD\nrotors:\n  - wiring: explicit\n    table: [0, 1, 2]\n", cipher.ErrSizeMismatch)
	check_BuildFails(t, "alphabet: ABCD\nrotors:\n  - wiring: explicit\n    table: [0, 1, 1, 2]\n",
		cipher.ErrConflict)
	check_BuildFails(t, "alphabet: ABCD\nreflector:\n  kind: explicit\n  pairs: [AB]\n", cipher.ErrNotFound)
	check_BuildFails(t, "alphabet: ABCD\nreflector:\n  kind: explicit\n  pairs: [AB, AC]\n", cipher.ErrConflict)
}

func Test_Config_08(t *testing.T) {
	path := filepath.Join(t.TempDir(), "machine.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))
	//
	config, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(config.Rotors))
	//
	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, err != nil)
}

// ===================================================================
// Test Helpers
// ===================================================================

func build(t *testing.T, text string) machine.Machine {
	t.Helper()
	//
	config, err := Parse([]byte(text))
	assert.NoError(t, err)
	m, err := config.Build()
	assert.NoError(t, err)
	//
	return m
}

func encode(t *testing.T, m machine.Machine, text string) string {
	t.Helper()
	//
	_, result, err := machine.EncodeString(m, text)
	assert.NoError(t, err)
	//
	return result
}

func check_Reciprocal(t *testing.T, m machine.Machine, plaintext string) {
	t.Helper()
	//
	ciphertext := encode(t, m, plaintext)
	assert.Equal(t, plaintext, encode(t, m, ciphertext))
}

func check_Invalid(t *testing.T, text string) {
	t.Helper()
	//
	_, err := Parse([]byte(text))
	assert.True(t, err != nil, "expected parse failure for %q", text)
}

func check_BuildFails(t *testing.T, text string, expected error) {
	t.Helper()
	//
	config, err := Parse([]byte(text))
	assert.NoError(t, err)
	_, err = config.Build()
	assert.ErrorIs(t, err, expected)
}
