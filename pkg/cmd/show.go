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
	"github.com/consensys/go-enigma/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [flags]",
	Short: "show the configuration of a machine.",
	Long: `Show the wiring of every stage of a machine as a table.  Each row gives, for every
symbol of the alphabet, the symbol it is sent to by that stage.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		m := getMachine(cmd)
		//
		if err := printMachine(m, os.Stdout, termio.IsTerminal(os.Stdout)); err != nil {
			log.Error(err)
			os.Exit(3)
		}
	},
}

// Print the wiring of each stage of a machine.  Rotor rows show the wiring at
// the rotor's current position.
func printMachine(m machine.Machine, w io.Writer, colour bool) error {
	var (
		alphabet = m.Alphabet()
		n        = alphabet.Len()
		rotors   = m.Rotors()
		// header + plugboard + rotors + reflector
		height = 3 + rotors.Count()
		table  = termio.NewTablePrinter(n+1, height)
		row    = uint(1)
	)
	// Header
	table.Set(0, 0, "")
	//
	for i := range n {
		symbol, _ := alphabet.Decode(i)
		table.Set(i+1, 0, string(symbol))
	}
	//
	table.SetRowEscape(0, termio.BoldAnsiEscape())
	// Plugboard
	if err := setRow(table, row, "plugboard", alphabet, m.Plugboard().Encode); err != nil {
		return err
	}
	//
	row++
	// Rotors
	for i := range rotors.Count() {
		r := rotors.Rotor(i)
		label := fmt.Sprintf("rotor %d @%d", i, r.Position())
		//
		if err := setRow(table, row, label, alphabet, r.Encode); err != nil {
			return err
		}
		//
		table.SetEscape(0, row, termio.NewAnsiEscape().FgColour(termio.TERM_CYAN))
		row++
	}
	// Reflector
	if err := setRow(table, row, "reflector", alphabet, m.Reflector().Encode); err != nil {
		return err
	}
	//
	table.SetEscape(0, row, termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW))
	// Keep the label column from dominating narrow terminals
	table.SetMaxWidth(0, max(8, termio.TerminalWidth(w, 80)/4))
	table.AnsiEscapes(colour)
	//
	return table.Print(w)
}

func setRow(table *termio.TablePrinter, row uint, label string, alphabet machine.Alphabet,
	stage func(uint) (uint, error)) error {
	//
	table.Set(0, row, label)
	//
	for i := range alphabet.Len() {
		j, err := stage(i)
		if err != nil {
			return err
		}
		//
		symbol, err := alphabet.Decode(j)
		if err != nil {
			return err
		}
		//
		table.Set(i+1, row, string(symbol))
	}
	//
	return nil
}

func init() {
	rootCmd.AddCommand(showCmd)
}
