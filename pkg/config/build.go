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
	"fmt"
	"math/rand/v2"

	"github.com/consensys/go-enigma/pkg/cipher"
	"github.com/consensys/go-enigma/pkg/machine"
	"github.com/consensys/go-enigma/pkg/rotor"
	"github.com/consensys/go-enigma/pkg/util"
	"github.com/consensys/go-enigma/pkg/wiring"
	log "github.com/sirupsen/logrus"
)

// Build constructs the machine described by this configuration.  All random
// wirings draw, in order, from a single source seeded by the configured seed
// (or from the process-wide source when no seed is given).
func (c *Config) Build() (machine.Machine, error) {
	var rng *rand.Rand
	//
	if c.Seed != nil {
		rng = util.NewSeededRandom(*c.Seed)
	} else {
		log.Debug("no seed configured, random wirings will not be reproducible")
	}
	//
	alphabet, err := machine.NewAlphabet(c.Alphabet)
	if err != nil {
		return machine.Machine{}, err
	}
	//
	m, err := machine.New(alphabet)
	if err != nil {
		return m, err
	}
	// Rotors
	positions := make([]uint, len(c.Rotors))
	//
	for i, r := range c.Rotors {
		builder, err := rotorBuilder(r, rng)
		if err != nil {
			return m, fmt.Errorf("rotor %d: %w", i, err)
		} else if m, err = m.WithRotor(builder); err != nil {
			return m, fmt.Errorf("rotor %d: %w", i, err)
		}
		//
		positions[i] = r.Position
	}
	//
	if m, err = m.SetPositions(positions); err != nil {
		return m, err
	}
	// Reflector
	builder, err := reflectorBuilder(c.Reflector, alphabet, rng)
	if err != nil {
		return m, fmt.Errorf("reflector: %w", err)
	} else if m, err = m.WithReflector(builder); err != nil {
		return m, fmt.Errorf("reflector: %w", err)
	}
	// Plugboard
	for _, pair := range c.Plugboard {
		a, b, err := splitPair(pair)
		if err != nil {
			return m, fmt.Errorf("plugboard: %w", err)
		} else if m, err = m.Connect(a, b); err != nil {
			return m, fmt.Errorf("plugboard: %w", err)
		}
	}
	//
	log.Debugf("built machine with %d rotors over %d symbols", len(c.Rotors), alphabet.Len())
	//
	return m, nil
}

func rotorBuilder(config RotorConfig, rng *rand.Rand) (rotor.Builder, error) {
	switch config.Wiring {
	case WIRING_ASCENDING:
		return rotor.Ascending, nil
	case WIRING_DESCENDING:
		return rotor.Descending, nil
	case WIRING_RANDOM:
		return rotor.RandomBuilder(rng), nil
	case WIRING_EXPLICIT:
		table, err := cipher.NewPermutationTable(config.Table)
		if err != nil {
			return nil, err
		}
		//
		return rotor.FromTable(table), nil
	}
	//
	return nil, fmt.Errorf("unknown wiring \"%s\"", config.Wiring)
}

func reflectorBuilder(config ReflectorConfig, alphabet machine.Alphabet, rng *rand.Rand) (wiring.ReflectorBuilder,
	error) {
	switch config.Kind {
	case REFLECTOR_FLIPPED:
		return wiring.FlippedReflector, nil
	case REFLECTOR_RANDOM:
		return wiring.RandomReflector(rng), nil
	case REFLECTOR_EXPLICIT:
		pairs := cipher.EmptyPairing()
		//
		for _, pair := range config.Pairs {
			a, b, err := splitPair(pair)
			if err != nil {
				return nil, err
			}
			//
			ith, err := alphabet.Encode(a)
			if err != nil {
				return nil, err
			}
			//
			jth, err := alphabet.Encode(b)
			if err != nil {
				return nil, err
			}
			//
			if pairs, err = pairs.Pair(ith, jth); err != nil {
				return nil, err
			}
		}
		//
		return wiring.FromPairing(pairs), nil
	}
	//
	return nil, fmt.Errorf("unknown kind \"%s\"", config.Kind)
}

// Describe produces a configuration which reconstructs a given machine
// exactly, including the current rotor positions.  Every wiring is written
// explicitly, hence no seed is required.
func Describe(m machine.Machine) (*Config, error) {
	var (
		alphabet = m.Alphabet()
		rotors   = m.Rotors().Rotors()
		config   = Config{Alphabet: alphabet.String()}
	)
	//
	for _, r := range rotors {
		config.Rotors = append(config.Rotors, RotorConfig{WIRING_EXPLICIT, r.Wiring().Forward(), r.Position()})
	}
	//
	config.Reflector.Kind = REFLECTOR_EXPLICIT
	//
	for _, p := range m.Reflector().Pairs() {
		pair, err := symbolPair(alphabet, p)
		if err != nil {
			return nil, err
		}
		//
		config.Reflector.Pairs = append(config.Reflector.Pairs, pair)
	}
	//
	for _, p := range m.Plugboard().Connections() {
		pair, err := symbolPair(alphabet, p)
		if err != nil {
			return nil, err
		}
		//
		config.Plugboard = append(config.Plugboard, pair)
	}
	//
	return &config, nil
}

func symbolPair(alphabet machine.Alphabet, pair cipher.Pair) (string, error) {
	a, err := alphabet.Decode(pair.Left)
	if err != nil {
		return "", err
	}
	//
	b, err := alphabet.Decode(pair.Right)
	if err != nil {
		return "", err
	}
	//
	return string([]rune{a, b}), nil
}
