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
	"math/rand/v2"
	"os"

	"github.com/consensys/go-enigma/pkg/config"
	"github.com/consensys/go-enigma/pkg/machine"
	"github.com/consensys/go-enigma/pkg/rotor"
	"github.com/consensys/go-enigma/pkg/util"
	"github.com/consensys/go-enigma/pkg/wiring"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags]",
	Short: "generate a random machine configuration.",
	Long: `Generate a machine with randomly wired rotors and a randomly paired reflector, and
write its configuration (with every wiring given explicitly) as YAML.`,
	Aliases: []string{"gen"},
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var rng *rand.Rand
		//
		if seed := getSeed(cmd); seed != nil {
			rng = util.NewSeededRandom(*seed)
		}
		//
		m, err := generateMachine(GetString(cmd, "alphabet"), GetUint(cmd, "rotors"), rng)
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		cfg, err := config.Describe(m)
		if err != nil {
			log.Error(err)
			os.Exit(3)
		}
		//
		bytes, err := config.Marshal(cfg)
		if err != nil {
			log.Error(err)
			os.Exit(3)
		}
		//
		fmt.Print(string(bytes))
	},
}

func generateMachine(symbols string, nrotors uint, rng *rand.Rand) (machine.Machine, error) {
	alphabet, err := machine.NewAlphabet(symbols)
	if err != nil {
		return machine.Machine{}, err
	}
	//
	m, err := machine.New(alphabet)
	if err != nil {
		return m, err
	}
	//
	for range nrotors {
		if m, err = m.WithRotor(rotor.RandomBuilder(rng)); err != nil {
			return m, err
		}
	}
	//
	return m.WithReflector(wiring.RandomReflector(rng))
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Uint("rotors", 3, "number of rotors")
}
