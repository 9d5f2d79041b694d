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
package machine

import (
	"fmt"
	"strings"
)

// EncodeString encodes each symbol of a message in turn, stepping the machine
// once per symbol.  This returns the machine after the last symbol, along with
// the encoded message.  Any symbol outside the alphabet aborts encoding, in
// which case the machine as it was before the offending symbol is returned.
func EncodeString(m Machine, text string) (Machine, string, error) {
	var builder strings.Builder
	//
	for i, symbol := range []rune(text) {
		next, result, err := m.Encode(symbol)
		//
		if err != nil {
			return m, builder.String(), fmt.Errorf("symbol %d: %w", i, err)
		}
		//
		builder.WriteRune(result)
		//
		m = next
	}
	//
	return m, builder.String(), nil
}

// EncodeFiltered encodes a message as for EncodeString, except that symbols
// outside the alphabet (e.g. spaces or punctuation) are copied through as-is
// and do not step the machine.
func EncodeFiltered(m Machine, text string) (Machine, string) {
	var builder strings.Builder
	//
	for _, symbol := range text {
		if !m.alphabet.Contains(symbol) {
			builder.WriteRune(symbol)
			continue
		}
		// Cannot fail, as symbol is known.
		next, result, err := m.Encode(symbol)
		if err != nil {
			panic(err)
		}
		//
		builder.WriteRune(result)
		//
		m = next
	}
	//
	return m, builder.String()
}
