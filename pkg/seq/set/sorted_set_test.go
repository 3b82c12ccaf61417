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
package set

import (
	"fmt"
	"slices"
	"testing"

	"github.com/consensys/go-flux/pkg/seq"
	"github.com/consensys/go-flux/pkg/seq/algorithm"
	"github.com/consensys/go-flux/pkg/util"
	"github.com/consensys/go-flux/pkg/util/assert"
)

func Test_SortedSet_00(t *testing.T) {
	check_SortedSet_Insert(t, 5, 10)
	check_SortedSet_InsertSorted(t, 5, 10)
}

func Test_SortedSet_01(t *testing.T) {
	// Really hammer it.
	for i := 0; i < 1000; i++ {
		t.Run(fmt.Sprintf("i=%d", i), func(t *testing.T) {
			check_SortedSet_Insert(t, 10, 32)
			check_SortedSet_InsertSorted(t, 10, 32)
		})
	}
}

func Test_SortedSet_02(t *testing.T) {
	check_SortedSet_Insert(t, 100, 32)
	check_SortedSet_InsertSorted(t, 50, 32)
}

func Test_SortedSet_03(t *testing.T) {
	check_SortedSet_Insert(t, 1000, 64)
	check_SortedSet_InsertSorted(t, 500, 64)
}

func TestSlow_SortedSet_04(t *testing.T) {
	check_SortedSet_Insert(t, 100000, 4096)
	check_SortedSet_InsertSorted(t, 50000, 4096)
}

func Test_SortedSet_05(t *testing.T) {
	var (
		lhs = FromSequence[int, int](seq.FromSlice([]int{5, 1, 3, 1}))
		rhs = FromSequence[int, int](seq.Range(3, 7))
	)
	//
	assert.Equal(t, SortedSet[int]{1, 3, 5}, *lhs)
	assert.Equal(t, SortedSet[int]{1, 3, 4, 5, 6}, *lhs.Union(rhs))
	assert.Equal(t, SortedSet[int]{3, 5}, *lhs.Intersect(rhs))
	assert.Equal(t, SortedSet[int]{1}, *lhs.Subtract(rhs))
	assert.Equal(t, SortedSet[int]{4, 6}, *rhs.Subtract(lhs))
}

func Test_SortedSet_06(t *testing.T) {
	sets := [][]string{{"b", "a"}, {}, {"c", "a"}}
	union := UnionSortedSets(sets, func(items []string) *SortedSet[string] {
		return FromSequence[int, string](seq.FromSlice(items))
	})
	//
	assert.Equal(t, SortedSet[string]{"a", "b", "c"}, *union)
	assert.Equal(t, 0, UnionSortedSets([][]string{}, func([]string) *SortedSet[string] { return nil }).Len())
}

func Test_SortedSet_07(t *testing.T) {
	set := FromSequence[int, int](seq.FromSlice([]int{4, 2, 8}))
	// Views are read-only
	_, writable := set.Seq().(seq.Writable[int, int])
	assert.False(t, writable)
	assert.True(t, algorithm.IsSorted(set.Seq()))
	assert.Equal(t, []int{2, 4, 8}, set.Iter().Collect())
	assert.Equal(t, uint(3), set.Iter().Count())
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_SortedSet_Insert(t *testing.T, n uint, m uint) {
	items := util.GenerateRandomInputs(n, m)
	aset := toSortedSet(items)
	//
	for i := uint(0); i < m; i++ {
		l := slices.Contains(items, i)
		r := aset.Contains(i)
		// Check set
		if !l && r {
			t.Errorf("unexpected item %d", i)
		} else if l && !r {
			t.Errorf("missing item %d", i)
		}
	}
	//
	assert.True(t, slices.IsSorted(*aset))
}

func check_SortedSet_InsertSorted(t *testing.T, n uint, m uint) {
	left := util.GenerateRandomInputs(n, m)
	right := util.GenerateRandomInputs(n, m)
	aset := toSortedSet(left)
	//
	aset.InsertSorted(toSortedSet(right))
	//
	for i := uint(0); i < m; i++ {
		l := slices.Contains(left, i) || slices.Contains(right, i)
		r := aset.Contains(i)
		// Check set
		if !l && r {
			t.Errorf("unexpected item %d", i)
		} else if l && !r {
			t.Errorf("missing item %d", i)
		}
	}
	// No duplicates
	assert.Equal(t, len(slices.Compact(slices.Clone(*aset))), aset.Len())
}

func toSortedSet(items []uint) *SortedSet[uint] {
	set := NewSortedSet[uint]()
	for _, v := range items {
		set.Insert(v)
	}

	return set
}
