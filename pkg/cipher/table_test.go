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
	"testing"

	"github.com/consensys/go-enigma/pkg/util"
	"github.com/consensys/go-enigma/pkg/util/assert"
)

func Test_Table_01(t *testing.T) {
	table := AscendingTable(10)
	//
	for i := range uint(10) {
		v, err := table.Encode(i)
		assert.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func Test_Table_02(t *testing.T) {
	table := DescendingTable(10)
	//
	for i := range uint(10) {
		v, err := table.Encode(i)
		assert.NoError(t, err)
		assert.Equal(t, 9-i, v)
	}
}

func Test_Table_03(t *testing.T) {
	check_Bijective(t, AscendingTable(100))
	check_Bijective(t, DescendingTable(100))
	check_Bijective(t, DescendingTable(101))
}

func Test_Table_04(t *testing.T) {
	for seed := range uint64(10) {
		check_Bijective(t, RandomTable(26, util.NewSeededRandom(seed)))
	}
}

func Test_Table_05(t *testing.T) {
	// Same seed, same table
	lhs := RandomTable(64, util.NewSeededRandom(7))
	rhs := RandomTable(64, util.NewSeededRandom(7))
	assert.True(t, lhs.Equals(rhs))
}

func Test_Table_06(t *testing.T) {
	check_Bijective(t, RandomTable(50, nil))
}

func Test_Table_07(t *testing.T) {
	table, err := NewPermutationTable([]uint{2, 0, 3, 1})
	assert.NoError(t, err)
	check_Bijective(t, table)
	//
	v, err := table.Decode(3)
	assert.NoError(t, err)
	assert.Equal(t, 2, v)
}

func Test_Table_08(t *testing.T) {
	_, err := NewPermutationTable([]uint{0, 1, 1})
	assert.ErrorIs(t, err, ErrConflict)
	//
	_, err = NewPermutationTable([]uint{0, 3, 1})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func Test_Table_09(t *testing.T) {
	table := RandomTable(8, util.NewSeededRandom(1))
	//
	_, err := table.Encode(8)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	//
	_, err = table.Decode(100)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func Test_Table_10(t *testing.T) {
	table := AscendingTable(4)
	forward := table.Forward()
	// Modifying the copy cannot modify the table
	forward[0] = 3
	//
	v, err := table.Encode(0)
	assert.NoError(t, err)
	assert.Equal(t, 0, v)
}

func Test_Table_11(t *testing.T) {
	table := AscendingTable(0)
	assert.Equal(t, 0, table.Len())
	//
	_, err := table.Encode(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Bijective(t *testing.T, table PermutationTable) {
	t.Helper()
	//
	for i := range table.Len() {
		e, err := table.Encode(i)
		assert.NoError(t, err)
		d, err := table.Decode(e)
		assert.NoError(t, err)
		assert.Equal(t, i, d, "decode(encode(%d)) failed for %s", i, table.String())
		//
		d, err = table.Decode(i)
		assert.NoError(t, err)
		e, err = table.Encode(d)
		assert.NoError(t, err)
		assert.Equal(t, i, e, "encode(decode(%d)) failed for %s", i, table.String())
	}
}
