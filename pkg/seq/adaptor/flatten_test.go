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
package adaptor

import (
	"slices"
	"testing"

	"github.com/consensys/go-flux/pkg/seq"
	"github.com/consensys/go-flux/pkg/util/assert"
)

func Test_Flatten_01(t *testing.T) {
	s := flatten(words("a", "bc", "", "def"))
	assert.Equal(t, "abcdef", string(forwards(s)))
	assert.Equal(t, "abcdef", string(internal(s)))
	assert.Equal(t, seq.Capabilities{Category: seq.BidirectionalCategory, Bounded: true}, seq.CapabilitiesOf(s))
}

func Test_Flatten_02(t *testing.T) {
	s := flatten(words("", "ab", "", "", "c", ""))
	assert.Equal(t, "abc", string(forwards(s)))
	assert.Equal(t, "cba", string(backwards(s)))
}

func Test_Flatten_03(t *testing.T) {
	for _, ws := range [][]string{{}, {""}, {"", ""}, {"", "", "x"}} {
		s := flatten(words(ws...))
		expected := joinWords(ws, "")
		assert.Equal(t, expected, string(forwards(s)))
		assert.Equal(t, reverse(expected), string(backwards(s)))
	}
}

func Test_Flatten_04(t *testing.T) {
	// Single-pass outer sequence
	s := flatten(pulled("ab", "", "c", ""))
	assert.Equal(t, seq.Capabilities{Category: seq.SinglePass}, seq.CapabilitiesOf(s))
	assert.Equal(t, "abc", string(forwards(s)))
	//
	s = flatten(pulled("", "ab", "", "c", ""))
	assert.Equal(t, "abc", string(internal(s)))
}

func Test_Flatten_05(t *testing.T) {
	// Cursors are regular
	var (
		s  = flatten(words("ab", "", "cd"))
		mp = s.(seq.Multipass[FlattenCursor[int, int], rune])
		c1 = mp.First()
		c2 = mp.First()
	)
	//
	for !mp.IsLast(c1) {
		assert.True(t, mp.Equal(c1, c2))
		c1 = mp.Inc(c1)
		assert.False(t, mp.Equal(c1, c2))
		c2 = mp.Inc(c2)
	}
	//
	assert.True(t, mp.Equal(c1, seq.LastOf(mp)))
}

func Test_Flatten_06(t *testing.T) {
	// Stopping and resuming internal iteration
	ctx := seq.Iterate(flatten(pulled("ab", "", "cd")))
	//
	var items []rune
	//
	for e, ok := seq.Pull(ctx); ok; e, ok = seq.Pull(ctx) {
		items = append(items, e)
	}
	//
	assert.Equal(t, "abcd", string(items))
}

func Test_Flatten_07(t *testing.T) {
	// Inner sequences of interface type are treated as single-pass
	outer := seq.FromSlice([]seq.Sequence[int, rune]{seq.Runes("ab"), seq.Runes("c")})
	s := Flatten[int, int, rune, seq.Sequence[int, rune]](outer)
	assert.Equal(t, seq.SinglePass, seq.CapabilitiesOf(s).Category)
	assert.Equal(t, "abc", string(internal(s)))
}

func Test_FlattenWith_01(t *testing.T) {
	s := flattenWith(words("111", "222", "333"), seq.Runes("-"))
	assert.Equal(t, "111-222-333", string(forwards(s)))
	assert.Equal(t, "111-222-333", string(internal(s)))
	assert.Equal(t, "333-222-111", string(backwards(s)))
}

func Test_FlattenWith_02(t *testing.T) {
	s := FlattenWithValue[int, int, rune, runes](words("123", "", "456", "", "7", "89"), '-')
	assert.Equal(t, "123--456--7-89", string(forwards(s)))
	assert.Equal(t, "123--456--7-89", string(internal(s)))
	assert.Equal(t, reverse("123--456--7-89"), string(backwards(s)))
}

func Test_FlattenWith_03(t *testing.T) {
	// Single-pass outer sequence
	s := FlattenWithValue[int, int, rune, runes](pulled("123", "", "456", "", "7", "89"), '-')
	assert.Equal(t, seq.SinglePass, seq.CapabilitiesOf(s).Category)
	assert.Equal(t, "123--456--7-89", string(forwards(s)))
	//
	s = FlattenWithValue[int, int, rune, runes](pulled("123", "", "456", "", "7", "89"), '-')
	assert.Equal(t, "123--456--7-89", string(internal(s)))
}

func Test_FlattenWith_04(t *testing.T) {
	s := flattenWith(words("ab", "cd"), seq.Runes("::"))
	assert.Equal(t, seq.Capabilities{Category: seq.BidirectionalCategory, Bounded: true}, seq.CapabilitiesOf(s))
	assert.Equal(t, "ab::cd", string(forwards(s)))
	// Multi-character separators in single pass mode
	s = flattenWith(pulled("ab", "cd", ""), seq.Runes("::"))
	assert.Equal(t, "ab::cd::", string(internal(s)))
}

func Test_FlattenWith_05(t *testing.T) {
	// Stopping and resuming internal iteration across separators
	ctx := seq.Iterate(flattenWith(pulled("a", "", "b"), seq.Runes("<>")))
	//
	var items []rune
	//
	for e, ok := seq.Pull(ctx); ok; e, ok = seq.Pull(ctx) {
		items = append(items, e)
	}
	//
	assert.Equal(t, "a<><>b", string(items))
}

func Test_FlattenWith_06(t *testing.T) {
	// Non-bidirectional pattern
	pattern := seq.Narrow[int, rune](seq.Runes("-"), seq.Capabilities{Category: seq.MultipassCategory})
	s := FlattenWith[int, int, int, rune, runes](words("a", "b"), pattern.(seq.Multipass[int, rune]))
	assert.Equal(t, seq.Capabilities{Category: seq.MultipassCategory, Bounded: true}, seq.CapabilitiesOf(s))
	assert.Equal(t, "a-b", string(forwards(s)))
}

func Test_FlattenWith_07(t *testing.T) {
	// Empty outer sequences
	assert.Equal(t, "", string(forwards(flattenWith(words(), seq.Runes("-")))))
	assert.Equal(t, "", string(internal(flattenWith(pulled(), seq.Runes("-")))))
	assert.Equal(t, "-", string(forwards(flattenWith(words("", ""), seq.Runes("-")))))
}

func Test_FlattenWith_08(t *testing.T) {
	// Decrementing from the first position is a contract violation
	s := flattenWith(words("", "a"), seq.Runes("-")).(seq.Bidirectional[FlattenWithCursor[int, int, int], rune])
	first := s.First()
	assert.Equal(t, '-', s.ReadAt(first))
	assert.Unrecoverable(t, func() { s.Dec(first) })
}

func Test_FlattenEquivalence_01(t *testing.T) {
	for _, ws := range flattenInputs() {
		expected := joinWords(ws, "")
		// Multipass
		lhs := flatten(words(ws...))
		rhs := flattenWith(words(ws...), seq.Runes(""))
		assert.Equal(t, forwards(lhs), forwards(rhs), "flattening %q", ws)
		assert.Equal(t, backwards(lhs), backwards(rhs), "flattening %q", ws)
		assert.Equal(t, expected, string(forwards(rhs)), "flattening %q", ws)
		// Single pass
		lhs = flatten(pulled(ws...))
		rhs = flattenWith(pulled(ws...), seq.Runes(""))
		assert.Equal(t, internal(lhs), internal(rhs), "flattening %q", ws)
		assert.Equal(t, expected, string(forwards(flattenWith(pulled(ws...), seq.Runes("")))), "flattening %q", ws)
	}
}

func Test_FlattenWith_09(t *testing.T) {
	for _, ws := range flattenInputs() {
		expected := joinWords(ws, "/")
		mp := flattenWith(words(ws...), seq.Runes("/"))
		assert.Equal(t, expected, string(forwards(mp)), "flattening %q", ws)
		assert.Equal(t, expected, string(internal(mp)), "flattening %q", ws)
		assert.Equal(t, reverse(expected), string(backwards(mp)), "flattening %q", ws)
		assert.Equal(t, expected, string(forwards(flattenWith(pulled(ws...), seq.Runes("/")))), "flattening %q", ws)
		assert.Equal(t, expected, string(internal(flattenWith(pulled(ws...), seq.Runes("/")))), "flattening %q", ws)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

type runes = *seq.Slice[rune]

func flatten(outer seq.Sequence[int, runes]) seq.Sequence[FlattenCursor[int, int], rune] {
	return Flatten[int, int, rune, runes](outer)
}

func flattenWith(outer seq.Sequence[int, runes],
	pattern runes) seq.Sequence[FlattenWithCursor[int, int, int], rune] {
	return FlattenWith[int, int, int, rune, runes](outer, pattern)
}

func flattenInputs() [][]string {
	return [][]string{
		{},
		{""},
		{"abc"},
		{"", "abc"},
		{"abc", ""},
		{"ab", "", "c"},
		{"", "", "a", "", "", "bc", "", ""},
		{"a", "b", "c", "d"},
	}
}

// words constructs a (multipass) sequence of words.
func words(ws ...string) *seq.Slice[runes] {
	items := make([]runes, len(ws))
	//
	for i, w := range ws {
		items[i] = seq.Runes(w)
	}
	//
	return seq.FromSlice(items)
}

// pulled constructs a single-pass sequence of words.
func pulled(ws ...string) seq.Sequence[int, runes] {
	return seq.FromIter(slices.Values(words(ws...).Data()))
}

func joinWords(ws []string, sep string) string {
	var result string
	//
	for i, w := range ws {
		if i != 0 {
			result += sep
		}
		//
		result += w
	}
	//
	return result
}

func reverse(s string) string {
	rs := []rune(s)
	slices.Reverse(rs)
	//
	return string(rs)
}

// forwards collects elements by stepping cursors.
func forwards[C, E any](s seq.Sequence[C, E]) []E {
	items := []E{}
	//
	for c := s.First(); !s.IsLast(c); c = s.Inc(c) {
		items = append(items, s.ReadAt(c))
	}
	//
	return items
}

// internal collects elements using internal iteration.
func internal[C, E any](s seq.Sequence[C, E]) []E {
	items := []E{}
	//
	seq.Drain(seq.Iterate(s), func(e E) {
		items = append(items, e)
	})
	//
	return items
}

// backwards collects elements in reverse by stepping cursors back from the
// end.
func backwards[C, E any](s seq.Sequence[C, E]) []E {
	var (
		bd    = s.(seq.Bidirectional[C, E])
		first = bd.First()
		items = []E{}
	)
	//
	for c := seq.LastOf[C, E](bd); !bd.Equal(c, first); {
		c = bd.Dec(c)
		items = append(items, bd.ReadAt(c))
	}
	//
	return items
}
