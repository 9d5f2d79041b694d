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
package cipher

// Directed captures a substitution stage with distinct forward and inverse
// directions, such as a permutation table or a rotor.  For any index i within
// range, Decode(Encode(i)) == i.
type Directed interface {
	// Encode maps an index in the forward direction.
	Encode(uint) (uint, error)
	// Decode maps an index in the inverse direction.
	Decode(uint) (uint, error)
	// Len returns the number of indices this stage operates over.
	Len() uint
}

// Involution captures a substitution stage which is its own inverse, such as a
// plugboard or a reflector.  For any index i within range,
// Encode(Encode(i)) == i.  There is no separate Decode direction.
type Involution interface {
	// Encode maps an index through this stage.
	Encode(uint) (uint, error)
	// Len returns the number of indices this stage operates over.
	Len() uint
}
