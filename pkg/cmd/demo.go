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
	"io"
	"os"

	"github.com/consensys/go-enigma/pkg/machine"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo [flags] [text]",
	Short: "encode and then decode a sample message.",
	Long: `Encode a sample message (HELLOWORLD by default), reset the machine and encode
the ciphertext again to recover the original message.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		sample := "HELLOWORLD"
		//
		if len(args) == 1 {
			sample = args[0]
		}
		//
		if err := runDemo(getMachine(cmd), sample, os.Stdout); err != nil {
			log.Error(err)
			os.Exit(3)
		}
	},
}

func runDemo(m machine.Machine, sample string, w io.Writer) error {
	fmt.Fprintf(w, "Machine:\n  %d rotors at %s\n  %d reflector pairs\n  %d connected plugs\n\n",
		m.Rotors().Count(), formatPositions(m.Positions()), len(m.Reflector().Pairs()),
		len(m.Plugboard().Connections()))
	// Remember starting positions, since Reset returns to zero.
	start := m
	//
	_, encoded, err := machine.EncodeString(start, sample)
	if err != nil {
		return err
	}
	//
	_, decoded, err := machine.EncodeString(start, encoded)
	if err != nil {
		return err
	}
	//
	fmt.Fprintf(w, "%q -> %q -> %q\n", sample, encoded, decoded)
	//
	if decoded != sample {
		return fmt.Errorf("decoded message %q differs from original %q", decoded, sample)
	}
	//
	return nil
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
