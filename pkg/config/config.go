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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-enigma/pkg/machine"
	"gopkg.in/yaml.v3"
)

// WIRING_ASCENDING identifies a rotor wired with the identity permutation.
const WIRING_ASCENDING = "ascending"

// WIRING_DESCENDING identifies a rotor wired with the reversing permutation.
const WIRING_DESCENDING = "descending"

// WIRING_RANDOM identifies a randomly wired rotor.
const WIRING_RANDOM = "random"

// WIRING_EXPLICIT identifies a rotor whose wiring is given as a table.
const WIRING_EXPLICIT = "explicit"

// REFLECTOR_FLIPPED identifies a reflector pairing v with n-1-v.
const REFLECTOR_FLIPPED = "flipped"

// REFLECTOR_RANDOM identifies a randomly paired reflector.
const REFLECTOR_RANDOM = "random"

// REFLECTOR_EXPLICIT identifies a reflector whose pairs are given as symbols.
const REFLECTOR_EXPLICIT = "explicit"

// Config describes a complete machine: its alphabet, its rotors (in order,
// fastest first) with their starting positions, its reflector and its
// plugboard connections.  A Config with an explicit wiring for every rotor and
// the reflector reconstructs exactly the same machine every time.  Random
// wirings are reproducible only when a seed is given.
type Config struct {
	Alphabet  string          `yaml:"alphabet"`
	Seed      *uint64         `yaml:"seed,omitempty"`
	Rotors    []RotorConfig   `yaml:"rotors"`
	Reflector ReflectorConfig `yaml:"reflector"`
	Plugboard []string        `yaml:"plugboard,omitempty"`
}

// RotorConfig describes a single rotor.
type RotorConfig struct {
	Wiring   string `yaml:"wiring"`
	Table    []uint `yaml:"table,omitempty,flow"`
	Position uint   `yaml:"position"`
}

// ReflectorConfig describes the reflector.  Explicit pairs are given as two
// symbol strings, such as "AY".
type ReflectorConfig struct {
	Kind  string   `yaml:"kind"`
	Pairs []string `yaml:"pairs,omitempty,flow"`
}

// LoadFromFile reads and parses a configuration file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	//
	return Parse(data)
}

// Parse parses a configuration from YAML, filling in defaults and validating
// it.  Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	var config Config
	//
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	//
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	//
	if config.Alphabet == "" {
		config.Alphabet = machine.Latin
	}
	//
	if config.Reflector.Kind == "" {
		config.Reflector.Kind = REFLECTOR_FLIPPED
	}
	//
	if err := validate(&config); err != nil {
		return nil, err
	}
	//
	return &config, nil
}

// Marshal writes a configuration as YAML.
func Marshal(config *Config) ([]byte, error) {
	return yaml.Marshal(config)
}

func validate(config *Config) error {
	for i, r := range config.Rotors {
		switch r.Wiring {
		case WIRING_ASCENDING, WIRING_DESCENDING, WIRING_RANDOM:
			if len(r.Table) != 0 {
				return fmt.Errorf("rotor %d: table given for %s wiring", i, r.Wiring)
			}
		case WIRING_EXPLICIT:
			if len(r.Table) == 0 {
				return fmt.Errorf("rotor %d: explicit wiring requires a table", i)
			}
		default:
			return fmt.Errorf("rotor %d: unknown wiring \"%s\"", i, r.Wiring)
		}
	}
	//
	switch config.Reflector.Kind {
	case REFLECTOR_FLIPPED, REFLECTOR_RANDOM:
		if len(config.Reflector.Pairs) != 0 {
			return fmt.Errorf("reflector: pairs given for %s reflector", config.Reflector.Kind)
		}
	case REFLECTOR_EXPLICIT:
		if len(config.Reflector.Pairs) == 0 {
			return errors.New("reflector: explicit reflector requires pairs")
		}
	default:
		return fmt.Errorf("reflector: unknown kind \"%s\"", config.Reflector.Kind)
	}
	//
	for _, pair := range config.Reflector.Pairs {
		if _, _, err := splitPair(pair); err != nil {
			return fmt.Errorf("reflector: %w", err)
		}
	}
	//
	for _, pair := range config.Plugboard {
		if _, _, err := splitPair(pair); err != nil {
			return fmt.Errorf("plugboard: %w", err)
		}
	}
	//
	return nil
}

// Split a pair such as "AB" into its two symbols.
func splitPair(pair string) (rune, rune, error) {
	runes := []rune(pair)
	//
	if len(runes) != 2 {
		return 0, 0, fmt.Errorf("invalid pair \"%s\"", pair)
	}
	//
	return runes[0], runes[1], nil
}
