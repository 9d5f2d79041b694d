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

import (
	"errors"
	"fmt"
)

// ErrUnknownSymbol indicates a symbol which is not part of the alphabet.
var ErrUnknownSymbol = errors.New("unknown symbol")

// ErrIndexOutOfRange indicates an index at or beyond the size of a stage.
var ErrIndexOutOfRange = errors.New("index out-of-range")

// ErrConflict indicates an attempt to pair an index which is already paired.
var ErrConflict = errors.New("conflicting pair")

// ErrNotFound indicates a lookup on an index which is not paired.
var ErrNotFound = errors.New("index not found")

// ErrSizeMismatch indicates that two sizes which must agree did not.
var ErrSizeMismatch = errors.New("size mismatch")

func outOfRange(index uint, n uint) error {
	return fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, n)
}
