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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/consensys/go-enigma/pkg/machine"
	"github.com/consensys/go-enigma/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [flags] [text...]",
	Short: "encode (or decode) text with a machine.",
	Long: `Encode text given as arguments or, if none, each line read from standard input.
Since the machine is reciprocal, decoding is done by encoding the ciphertext from the
same starting positions.  The machine is not reset between lines.`,
	Aliases: []string{"decode", "enc", "dec"},
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		var (
			m       = getMachine(cmd)
			session = newSession(m, GetFlag(cmd, "lenient"), GetFlag(cmd, "upper"))
			err     error
		)
		//
		if len(args) > 0 {
			err = session.encodeLine(strings.Join(args, " "), os.Stdout)
		} else {
			err = session.encodeAll(os.Stdin, os.Stdout)
		}
		//
		session.stats.Log("Encoding")
		//
		if err != nil {
			log.Error(err)
			os.Exit(3)
		}
		//
		if GetFlag(cmd, "positions-out") {
			fmt.Fprintf(os.Stderr, "positions: %s\n", formatPositions(session.machine.Positions()))
		}
	},
}

// Encoding session, threading the machine from one line to the next.
type session struct {
	machine machine.Machine
	lenient bool
	upper   bool
	stats   *util.PerfStats
}

func newSession(m machine.Machine, lenient bool, upper bool) *session {
	return &session{m, lenient, upper, util.NewPerfStats()}
}

func (s *session) encodeAll(reader io.Reader, writer io.Writer) error {
	scanner := bufio.NewScanner(reader)
	//
	for scanner.Scan() {
		if err := s.encodeLine(scanner.Text(), writer); err != nil {
			return err
		}
	}
	//
	return scanner.Err()
}

func (s *session) encodeLine(line string, writer io.Writer) error {
	var (
		output string
		err    error
	)
	//
	if s.upper {
		line = strings.ToUpper(line)
	}
	//
	if s.lenient {
		s.machine, output = machine.EncodeFiltered(s.machine, line)
	} else if s.machine, output, err = machine.EncodeString(s.machine, line); err != nil {
		return err
	}
	//
	s.stats.Count(uint(utf8.RuneCountInString(line)))
	//
	if _, err := fmt.Fprintln(writer, output); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	//
	return nil
}

func formatPositions(positions []uint) string {
	items := make([]string, len(positions))
	//
	for i, p := range positions {
		items[i] = fmt.Sprintf("%d", p)
	}
	//
	return strings.Join(items, ",")
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().Bool("lenient", false, "pass symbols outside the alphabet through unchanged")
	encodeCmd.Flags().Bool("upper", true, "convert input to upper case first")
	encodeCmd.Flags().Bool("positions-out", false, "report final rotor positions on stderr")
}
