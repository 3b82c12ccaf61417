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
package algorithm

import (
	"cmp"
	"slices"
	"strings"
	"testing"

	"github.com/consensys/go-flux/pkg/seq"
	"github.com/consensys/go-flux/pkg/seq/adaptor"
	"github.com/consensys/go-flux/pkg/util"
	"github.com/consensys/go-flux/pkg/util/assert"
)

func Test_Fold_01(t *testing.T) {
	xs := seq.Range(1, 6)
	assert.Equal(t, 15, Sum[int, int](xs))
	assert.Equal(t, 120, Product[int, int](xs))
	assert.Equal(t, 0, Sum[int, int](seq.Empty[int]()))
	assert.Equal(t, 1, Product[int, int](seq.Empty[int]()))
	assert.Equal(t, 2.5, Sum[int, float64](seq.FromSlice([]float64{1, 1.5})))
	//
	joined := Fold[int, rune, string](seq.Runes("abc"), "", func(acc string, r rune) string { return string(r) + acc })
	assert.Equal(t, "cba", joined)
}

func Test_Fold_02(t *testing.T) {
	sum := func(l, r int) int { return l + r }
	assert.Equal(t, util.Some(6), FoldFirst[int, int](seq.FromSlice([]int{1, 2, 3}), sum))
	assert.Equal(t, util.None[int](), FoldFirst[int, int](seq.Empty[int](), sum))
	// Single pass sources are consumed only once
	assert.Equal(t, util.Some(3), FoldFirst[int, int](seq.Generate(counter(3)), sum))
}

func Test_Fold_03(t *testing.T) {
	var items []string
	//
	ForEach[int, string](seq.FromSlice([]string{"a", "b"}), func(s string) { items = append(items, s) })
	assert.Equal(t, []string{"a", "b"}, items)
	//
	even := func(i int) bool { return i%2 == 0 }
	assert.Equal(t, 5, CountIf[int, int](seq.Range(0, 10), even))
	assert.Equal(t, 10, Count[int, int](seq.Range(0, 10)))
	assert.Equal(t, 7, Count[int, int](seq.Generate(counter(7))))
}

func Test_MinMax_01(t *testing.T) {
	xs := seq.FromSlice([]int{3, 1, 4, 1, 5, 9, 2, 6})
	assert.Equal(t, util.Some(1), Min[int, int](xs))
	assert.Equal(t, util.Some(9), Max[int, int](xs))
	assert.True(t, Min[int, int](seq.Empty[int]()).IsEmpty())
	assert.True(t, Max[int, int](seq.Empty[int]()).IsEmpty())
}

func Test_MinMax_02(t *testing.T) {
	// First of the smallest, last of the largest
	type entry = util.Pair[int, string]
	//
	var (
		xs    = seq.FromSlice([]entry{{Left: 2, Right: "a"}, {Left: 1, Right: "b"}, {Left: 2, Right: "c"}, {Left: 1, Right: "d"}})
		byKey = func(l, r entry) int { return cmp.Compare(l.Left, r.Left) }
	)
	//
	assert.Equal(t, "b", MinFunc[int, entry](xs, byKey).Unwrap().Right)
	assert.Equal(t, "c", MaxFunc[int, entry](xs, byKey).Unwrap().Right)
}

func Test_Find_01(t *testing.T) {
	xs := seq.FromSlice([]int{5, 7, 9, 7})
	assert.Equal(t, 1, Find[int, int](xs, 7))
	assert.Equal(t, 4, Find[int, int](xs, 8))
	assert.Equal(t, 2, FindIf[int, int](xs, func(i int) bool { return i > 8 }))
	assert.True(t, Contains[int, int](xs, 9))
	assert.False(t, Contains[int, int](xs, 1))
	// Infinite sequences terminate once found
	assert.Equal(t, 100, Find[int, int](seq.Iota(0), 100))
}

func Test_Predicates_01(t *testing.T) {
	var (
		xs       = seq.FromSlice([]int{2, 4, 6})
		even     = func(i int) bool { return i%2 == 0 }
		negative = func(i int) bool { return i < 0 }
	)
	//
	assert.True(t, AllOf[int, int](xs, even))
	assert.False(t, AnyOf[int, int](xs, negative))
	assert.True(t, NoneOf[int, int](xs, negative))
	// Vacuous truth
	assert.True(t, AllOf[int, int](seq.Empty[int](), negative))
	assert.False(t, AnyOf[int, int](seq.Empty[int](), even))
	// Short circuits over infinite sequences
	assert.True(t, AnyOf[int, int](seq.Iota(1), func(i int) bool { return i > 1000 }))
	assert.False(t, AllOf[int, int](seq.Iota(1), func(i int) bool { return i < 1000 }))
}

func Test_Predicates_02(t *testing.T) {
	positive := func(i int) bool { return i > 0 }
	// The last element taken decides the outcome
	assert.False(t, AllOf[adaptor.TakeCursor[int], int](adaptor.Take[int, int](seq.FromSlice([]int{1, -1, 5}), 2), positive))
	assert.True(t, AllOf[adaptor.TakeCursor[int], int](adaptor.Take[int, int](seq.FromSlice([]int{1, 2, -1}), 2), positive))
	assert.True(t, AnyOf[adaptor.TakeCursor[int], int](adaptor.Take[int, int](seq.FromSlice([]int{-1, 1, -5}), 2), positive))
}

func Test_Equal_01(t *testing.T) {
	assert.True(t, Equal[int, int, rune](seq.Runes("flux"), seq.FromSlice([]rune("flux"))))
	assert.False(t, Equal[int, int, rune](seq.Runes("flux"), seq.Runes("flu")))
	assert.False(t, Equal[int, int, rune](seq.Runes("flu"), seq.Runes("flux")))
	assert.True(t, Equal[int, int, int](seq.Empty[int](), seq.Generate(counter(0))))
	// Differently typed elements
	eq := func(r rune, s string) bool { return string(r) == s }
	assert.True(t, EqualFunc[int, int, rune, string](seq.Runes("ab"), seq.FromSlice([]string{"a", "b"}), eq))
	// Flattening agrees with joining
	words := seq.FromSlice([]*seq.Slice[rune]{seq.Runes("ab"), seq.Runes(""), seq.Runes("c")})
	flat := adaptor.Flatten[int, int, rune, *seq.Slice[rune]](words)
	assert.True(t, Equal[adaptor.FlattenCursor[int, int], int, rune](flat, seq.Runes("abc")))
}

func Test_Compare_01(t *testing.T) {
	compare := func(l, r string) int { return Compare[int, int, rune](seq.Runes(l), seq.Runes(r)) }
	//
	for _, p := range [][2]string{{"", ""}, {"a", ""}, {"ab", "abc"}, {"abd", "abc"}, {"b", "abc"}, {"x", "x"}} {
		assert.Equal(t, strings.Compare(p[0], p[1]), compare(p[0], p[1]), "comparing %q and %q", p[0], p[1])
	}
	// Reverse order
	desc := func(l, r int) int { return r - l }
	assert.Equal(t, -1, CompareFunc[int, int, int](seq.FromSlice([]int{3, 1}), seq.FromSlice([]int{2}), desc))
}

func Test_IsSorted_01(t *testing.T) {
	assert.True(t, IsSorted[int, int](seq.Empty[int]()))
	assert.True(t, IsSorted[int, int](seq.FromSlice([]int{1, 1, 2, 3})))
	assert.False(t, IsSorted[int, int](seq.FromSlice([]int{1, 3, 2})))
	assert.True(t, IsSortedFunc[int, int](seq.FromSlice([]int{3, 2, 2}), func(l, r int) int { return r - l }))
	assert.True(t, IsSorted[int, int](seq.Generate(counter(10))))
}

func Test_IsPermutation_01(t *testing.T) {
	var (
		lhs = seq.FromSlice([]int{1, 2, 2, 3})
		rhs = seq.FromSlice([]int{2, 3, 1, 2})
	)
	//
	assert.True(t, IsPermutation[int, int, int](lhs, rhs))
	assert.True(t, IsPermutation[int, int, int](lhs, lhs))
	assert.True(t, IsPermutation[int, int, int](seq.Empty[int](), seq.Empty[int]()))
	assert.False(t, IsPermutation[int, int, int](lhs, seq.FromSlice([]int{1, 2, 3, 3})))
	assert.False(t, IsPermutation[int, int, int](lhs, seq.FromSlice([]int{1, 2, 2})))
}

func Test_IsPermutation_02(t *testing.T) {
	// Every permutation is a permutation
	input := seq.Runes("abca")
	//
	ForEach(adaptor.Permutations[int, rune](input), func(p []rune) {
		assert.True(t, IsPermutation[int, int, rune](input, seq.FromSlice(p)), "%s", string(p))
	})
}

func Test_ToSlice_01(t *testing.T) {
	backing := []int{1, 2, 3}
	items := ToSlice[int, int](seq.FromSlice(backing))
	items[0] = 10
	// Contiguous sequences are copied
	assert.Equal(t, []int{1, 2, 3}, backing)
	assert.Equal(t, []int{0, 1, 2}, ToSlice[int, int](seq.Generate(counter(3))))
	assert.Equal(t, []int{}, ToSlice[int, int](seq.Empty[int]()))
	//
	evens := adaptor.Filter[int, int](seq.Range(0, 7), func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{0, 2, 4, 6}, ToSlice(evens))
	assert.True(t, slices.Equal([]int{0, 1}, ToSlice(adaptor.Take[int, int](seq.Iota(0), 2))))
}

// ===================================================================
// Test Helpers
// ===================================================================

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
