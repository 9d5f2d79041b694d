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
	"fmt"
	"strings"
)

// TERM_RED is the ANSI colour code for red.
const TERM_RED = uint(1)

// TERM_GREEN is the ANSI colour code for green.
const TERM_GREEN = uint(2)

// TERM_YELLOW is the ANSI colour code for yellow.
const TERM_YELLOW = uint(3)

// TERM_BLUE is the ANSI colour code for blue.
const TERM_BLUE = uint(4)

// TERM_CYAN is the ANSI colour code for cyan.
const TERM_CYAN = uint(6)

// AnsiEscape accumulates the parameters of a single "select graphic
// rendition" escape sequence.
type AnsiEscape struct {
	params []string
}

// NewAnsiEscape returns an escape with no parameters.
func NewAnsiEscape() AnsiEscape {
	return AnsiEscape{nil}
}

// ResetAnsiEscape returns an escape which clears all attributes.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{[]string{"0"}}
}

// BoldAnsiEscape returns an escape which enables bold text.
func BoldAnsiEscape() AnsiEscape {
	return AnsiEscape{[]string{"1"}}
}

// FgColour adds a foreground colour to this escape.
func (p AnsiEscape) FgColour(col uint) AnsiEscape {
	return p.with(col + 30)
}

// BgColour adds a background colour to this escape.
func (p AnsiEscape) BgColour(col uint) AnsiEscape {
	return p.with(col + 40)
}

func (p AnsiEscape) with(code uint) AnsiEscape {
	params := make([]string, len(p.params), len(p.params)+1)
	copy(params, p.params)
	//
	return AnsiEscape{append(params, fmt.Sprintf("%d", code))}
}

// Build returns the escape sequence as a string.
func (p AnsiEscape) Build() string {
	return fmt.Sprintf("\033[%sm", strings.Join(p.params, ";"))
}
