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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-enigma/pkg/config"
	"github.com/consensys/go-enigma/pkg/machine"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected unsigned int flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint64 gets an expected unsigned int64 flag, or exits if an error arises.
func GetUint64(cmd *cobra.Command, flag string) uint64 {
	r, err := cmd.Flags().GetUint64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetStringArray gets an expected string array flag, or exits if an error
// arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Configure log level from the persistent flags.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "trace") {
		log.SetLevel(log.TraceLevel)
	} else if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Determine the seed given on the command-line (if any).
func getSeed(cmd *cobra.Command) *uint64 {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	//
	seed := GetUint64(cmd, "seed")
	//
	return &seed
}

// Construct the machine configuration requested on the command-line.  This is
// either read from a configuration file or, failing that, is the default
// machine: random, ascending and descending rotors with a flipped reflector.
func getMachineConfig(cmd *cobra.Command) *config.Config {
	filename := GetString(cmd, "config")
	//
	if filename != "" {
		log.Debug(fmt.Sprintf("reading machine configuration %s", filename))
		//
		cfg, err := config.LoadFromFile(filename)
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		if cmd.Flags().Changed("seed") {
			cfg.Seed = getSeed(cmd)
		}
		//
		return cfg
	}
	//
	return &config.Config{
		Alphabet: GetString(cmd, "alphabet"),
		Seed:     getSeed(cmd),
		Rotors: []config.RotorConfig{
			{Wiring: config.WIRING_RANDOM},
			{Wiring: config.WIRING_ASCENDING},
			{Wiring: config.WIRING_DESCENDING},
		},
		Reflector: config.ReflectorConfig{Kind: config.REFLECTOR_FLIPPED},
	}
}

// Construct the machine requested on the command-line, applying any plugboard
// connections and rotor positions given as flags.
func getMachine(cmd *cobra.Command) machine.Machine {
	m, err := getMachineConfig(cmd).Build()
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	//
	for _, pair := range GetStringArray(cmd, "plug") {
		symbols := []rune(pair)
		//
		if len(symbols) != 2 {
			log.Errorf("invalid plugboard pair \"%s\"", pair)
			os.Exit(2)
		} else if m, err = m.Connect(symbols[0], symbols[1]); err != nil {
			log.Error(err)
			os.Exit(2)
		}
	}
	//
	if positions := GetString(cmd, "positions"); positions != "" {
		ps, err := parsePositions(positions)
		//
		if err != nil {
			log.Error(err)
			os.Exit(2)
		} else if m, err = m.SetPositions(ps); err != nil {
			log.Error(err)
			os.Exit(2)
		}
	}
	//
	return m
}

// Parse a comma-separated list of rotor positions.
func parsePositions(text string) ([]uint, error) {
	var positions []uint
	//
	for _, s := range strings.Split(text, ",") {
		p, err := strconv.ParseUint(strings.TrimSpace(s), 10, 0)
		if err != nil {
			return nil, fmt.Errorf("invalid rotor position \"%s\"", s)
		}
		//
		positions = append(positions, uint(p))
	}
	//
	return positions, nil
}
