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
package termio

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal checks whether a given writer is attached to a terminal.  Only
// files can be terminals; anything else (e.g. a buffer) is not.
func IsTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	//
	return false
}

// TerminalWidth returns the width of the terminal attached to a given writer,
// or a default width if it is not a terminal.
func TerminalWidth(w io.Writer, fallback uint) uint {
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return uint(width)
		}
	}
	//
	return fallback
}
