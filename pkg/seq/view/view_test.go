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
package view

import (
	"slices"
	"testing"

	"github.com/consensys/go-flux/pkg/seq"
	"github.com/consensys/go-flux/pkg/seq/adaptor"
	"github.com/consensys/go-flux/pkg/util/assert"
)

func Test_Enumerator_1_1(t *testing.T) {
	enumerator := EnumeratePower[uint](1, []uint{0})
	checkEnumerator(t, enumerator, [][]uint{{0}})
}

func Test_Enumerator_1_3(t *testing.T) {
	enumerator := EnumeratePower[uint](1, []uint{0, 1, 2})
	checkEnumerator(t, enumerator, [][]uint{{0}, {1}, {2}})
}

func Test_Enumerator_2_2(t *testing.T) {
	enumerator := EnumeratePower[uint](2, []uint{0, 1})
	checkEnumerator(t, enumerator, [][]uint{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
}

func Test_Enumerator_2_3(t *testing.T) {
	enumerator := EnumeratePower[uint](2, []uint{0, 1, 2})
	checkEnumerator(t, enumerator, [][]uint{
		{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}})
}

func Test_Enumerator_3_2(t *testing.T) {
	enumerator := EnumeratePower[uint](3, []uint{0, 1})
	checkEnumerator(t, enumerator, [][]uint{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1}})
}

func Test_Enumerator_0_0(t *testing.T) {
	checkEnumerator(t, EnumeratePower[uint](0, nil), [][]uint{{}})
	checkEnumerator(t, EnumeratePower[uint](2, nil), [][]uint{})
}

func Test_Iterator_01(t *testing.T) {
	it := Over[int, rune](seq.Runes("flux"))
	clone := it.Clone()
	//
	assert.Equal(t, uint(4), it.Count())
	assert.Equal(t, 'f', it.Next())
	assert.Equal(t, uint(3), it.Count())
	assert.Equal(t, "lux", string(it.Collect()))
	assert.False(t, it.HasNext())
	// Clone is unaffected
	assert.Equal(t, "flux", string(clone.Collect()))
}

func Test_Iterator_02(t *testing.T) {
	it := Over[int, int](seq.Range(10, 20))
	assert.Equal(t, 13, it.Nth(3))
	assert.Equal(t, 14, it.Next())
	//
	index, ok := it.Find(func(i int) bool { return i%4 == 0 })
	assert.True(t, ok)
	assert.Equal(t, uint(1), index)
	//
	_, ok = it.Find(func(i int) bool { return i > 100 })
	assert.False(t, ok)
}

func Test_Iterator_03(t *testing.T) {
	// Single-pass sequences cannot be cloned or counted
	it := Over[int, int](seq.Generate(counter(3)))
	assert.Unrecoverable(t, func() { it.Clone() })
	assert.Unrecoverable(t, func() { it.Count() })
	assert.Equal(t, []int{0, 1, 2}, it.Collect())
}

func Test_Iterator_04(t *testing.T) {
	it := Over[int, int](seq.Range(0, 2)).Append(Over[int, int](seq.Range(5, 7)))
	assert.Equal(t, uint(4), it.Count())
	assert.Equal(t, []int{0, 1, 5, 6}, it.Clone().Collect())
	assert.Equal(t, 5, it.Nth(2))
	assert.Equal(t, 6, it.Next())
	assert.Unrecoverable(t, func() { it.Nth(0) })
}

func Test_Iterator_05(t *testing.T) {
	// Iterating an adaptor
	s := adaptor.FlattenWithValue[int, int, rune, *seq.Slice[rune]](
		seq.FromSlice([]*seq.Slice[rune]{seq.Runes("ab"), seq.Runes("cd")}), ',')
	assert.Equal(t, "ab,cd", string(Over(s).Collect()))
}

func Test_Interop_01(t *testing.T) {
	var items []int
	//
	for v := range All(Over[int, int](seq.Range(0, 10))) {
		if v == 3 {
			break
		}
		//
		items = append(items, v)
	}
	//
	assert.Equal(t, []int{0, 1, 2}, items)
	//
	s := FromEnumerator(EnumeratePower[int](2, []int{1, 2}))
	assert.Equal(t, seq.SinglePass, seq.CapabilitiesOf(s).Category)
	assert.Equal(t, [][]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}}, slices.Collect(seq.Values(s)))
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkEnumerator[E comparable](t *testing.T, enumerator Enumerator[[]E], expected [][]E) {
	t.Helper()
	//
	for i := 0; i < len(expected); i++ {
		if !enumerator.HasNext() {
			t.Fatalf("expected %d elements, got %d", len(expected), i)
		}
		//
		ith := enumerator.Next()
		if !slices.Equal(ith, expected[i]) {
			t.Errorf("expected %v, got %v", expected[i], ith)
		}
	}
	// Sanity check lengths match
	if enumerator.HasNext() {
		t.Errorf("expected %d elements, got more", len(expected))
	}
}

func counter(n int) func() (int, bool) {
	i := 0
	//
	return func() (int, bool) {
		if i < n {
			i++
			return i - 1, true
		}
		//
		return 0, false
	}
}
