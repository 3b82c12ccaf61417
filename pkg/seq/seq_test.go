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
package seq

import (
	"slices"
	"testing"

	"github.com/consensys/go-flux/pkg/util"
	"github.com/consensys/go-flux/pkg/util/assert"
	"github.com/stretchr/testify/require"
)

func Test_Capabilities_01(t *testing.T) {
	caps := CapabilitiesOf[int, int](FromSlice([]int{1, 2, 3}))
	assert.Equal(t, Capabilities{RandomAccessCategory, true, true, false, true}, caps)
	assert.Equal(t, "random-access+bounded+sized+contiguous", caps.String())
}

func Test_Capabilities_02(t *testing.T) {
	caps := CapabilitiesOf[int, int](Iota(0))
	assert.Equal(t, Capabilities{Category: RandomAccessCategory, Infinite: true}, caps)
}

func Test_Capabilities_03(t *testing.T) {
	caps := CapabilitiesOf[int, int](Generate(func() (int, bool) { return 0, false }))
	assert.Equal(t, Capabilities{Category: SinglePass}, caps)
}

func Test_Capabilities_04(t *testing.T) {
	lhs := Capabilities{RandomAccessCategory, true, true, false, true}
	rhs := Capabilities{Category: MultipassCategory, Bounded: true}
	assert.Equal(t, rhs, lhs.Meet(rhs))
	assert.True(t, lhs.Includes(rhs))
	assert.False(t, rhs.Includes(lhs))
	assert.Equal(t, Capabilities{BidirectionalCategory, true, true, false, false},
		lhs.Restrict(BidirectionalCategory))
}

func Test_Narrow_01(t *testing.T) {
	for _, caps := range allCapabilities() {
		s := Narrow[int, int](FromSlice([]int{1, 2, 3}), caps)
		assert.Equal(t, caps, CapabilitiesOf(s), "narrowing to %s", caps)
		assert.Equal(t, []int{1, 2, 3}, slices.Collect(Values(s)))
	}
}

func Test_Narrow_02(t *testing.T) {
	// Infinite sequences never become bounded or sized.
	s := Narrow[int, int](Iota(0), Capabilities{MultipassCategory, true, true, true, false})
	assert.Equal(t, Capabilities{Category: MultipassCategory, Infinite: true}, CapabilitiesOf(s))
}

func Test_Narrow_03(t *testing.T) {
	// Cannot widen capabilities
	g := Generate(counter(3))
	s := Narrow[int, int](g, Capabilities{RandomAccessCategory, true, true, false, false})
	assert.Equal(t, Capabilities{Category: SinglePass}, CapabilitiesOf(s))
	assert.Equal(t, []int{0, 1, 2}, slices.Collect(Values(s)))
}

func Test_ForEachWhile_01(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4, 5})
	c := ForEachWhile[int, int](s, func(e int) bool { return e < 3 })
	assert.Equal(t, 2, c)
	c = ForEachWhile[int, int](s, func(int) bool { return true })
	assert.Equal(t, 5, c)
}

func Test_ForEachWhile_02(t *testing.T) {
	// Bounded multipass path, since narrowing hides the override.
	s := Narrow[int, int](FromSlice([]int{1, 2, 3, 4, 5}), Capabilities{Category: MultipassCategory, Bounded: true})
	c := ForEachWhile(s, func(e int) bool { return e != 4 })
	assert.Equal(t, 3, c)
}

func Test_ForEachWhile_03(t *testing.T) {
	s := Generate(counter(10))
	c := ForEachWhile[int, int](s, func(e int) bool { return e < 7 })
	assert.Equal(t, 7, s.ReadAt(c))
}

func Test_Context_01(t *testing.T) {
	s := Narrow[int, int](FromSlice([]int{1, 2, 3, 4, 5}), Capabilities{Category: SinglePass})
	ctx := Iterate(s)
	//
	var seen []int
	// Element on which predicate fails is consumed
	res := ctx.RunWhile(func(e int) bool {
		seen = append(seen, e)
		return e != 2
	})
	assert.Equal(t, Incomplete, res)
	assert.Equal(t, []int{1, 2}, seen)
	//
	res = ctx.RunWhile(func(e int) bool {
		seen = append(seen, e)
		return true
	})
	assert.Equal(t, Complete, res)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, seen)
	// Remains complete
	assert.Equal(t, Complete, ctx.RunWhile(func(int) bool { return false }))
}

func Test_Context_02(t *testing.T) {
	ctx := Iterate[int, int](FromSlice([]int{7, 8}))
	//
	for _, expected := range []int{7, 8} {
		e, ok := Pull(ctx)
		assert.True(t, ok)
		assert.Equal(t, expected, e)
	}
	//
	_, ok := Pull(ctx)
	assert.False(t, ok)
}

func Test_Derived_01(t *testing.T) {
	s := FromSlice([]int{3, 1, 4, 1, 5})
	//
	n, ok := SizeOf[int, int](s)
	assert.True(t, ok)
	assert.Equal(t, 5, n)
	assert.Equal(t, 5, Count[int, int](s))
	assert.Equal(t, util.Some(3), Front[int, int](s))
	assert.Equal(t, util.Some(5), Back[int, int](s))
	assert.Equal(t, 4, Read[int, int](s, Next[int, int](s, 0, 2)))
	assert.Equal(t, 1, Read[int, int](s, Prev[int, int](s, 4, 1)))
	assert.Equal(t, 3, DistanceOf[int, int](s, 1, 4))
	assert.Equal(t, -1, ReadOr[int, int](s, 5, -1))
}

func Test_Derived_02(t *testing.T) {
	// Same operations without random access
	s := Narrow[int, int](FromSlice([]int{3, 1, 4, 1, 5}), Capabilities{Category: BidirectionalCategory})
	bd, ok := AsBidirectional(s)
	require.True(t, ok)
	//
	_, ok = SizeOf(s)
	assert.False(t, ok)
	assert.Equal(t, 5, Count(s))
	assert.Equal(t, 5, LastOf[int, int](bd))
	assert.Equal(t, util.Some(5), Back[int, int](bd))
	assert.Equal(t, 4, Read(s, Next(s, 0, 2)))
	assert.Equal(t, 1, Read(s, Prev(s, 4, 1)))
	assert.Equal(t, 3, DistanceOf[int, int](bd, 1, 4))
}

func Test_Derived_03(t *testing.T) {
	s := Empty[int]()
	assert.True(t, IsEmpty[int, int](s))
	assert.Equal(t, util.None[int](), Front[int, int](s))
	assert.Equal(t, util.None[int](), Back[int, int](s))
}

func Test_Derived_04(t *testing.T) {
	s := FromSlice([]string{"a", "b"})
	Swap[int, string](s, 0, 1)
	assert.Equal(t, []string{"b", "a"}, s.Data())
	// Read only sequences cannot be swapped
	r := Narrow[int, string](s, Capabilities{Category: RandomAccessCategory})
	assert.Unrecoverable(t, func() { Swap(r, 0, 1) })
	// Single pass sequences cannot step back
	g := Generate(counter(2))
	assert.Unrecoverable(t, func() { Prev[int, int](g, g.First(), 1) })
}

func Test_Bounds_01(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	assert.Unrecoverable(t, func() { s.ReadAt(3) })
	assert.Unrecoverable(t, func() { s.ReadAt(-1) })
	assert.Unrecoverable(t, func() { s.Inc(3) })
	assert.Unrecoverable(t, func() { s.Dec(0) })
	assert.Unrecoverable(t, func() { s.IncBy(1, 3) })
	assert.Unrecoverable(t, func() { s.WriteAt(3, 0) })
}

func Test_Bounds_02(t *testing.T) {
	SetBoundsChecking(false)
	defer SetBoundsChecking(true)
	//
	assert.False(t, BoundsChecking())
	// Go runtime check applies instead
	require.Panics(t, func() {
		err := util.CatchUnrecoverable(func() { FromSlice([]int{1}).ReadAt(1) })
		assert.True(t, err == nil)
	})
}

func Test_Range_01(t *testing.T) {
	r := Range(2, 6)
	assert.Equal(t, []int{2, 3, 4, 5}, slices.Collect(Values[int, int](r)))
	assert.Equal(t, 4, r.Size())
	assert.Equal(t, 5, r.IncBy(2, 3))
	assert.Equal(t, 0, Range(6, 2).Size())
	assert.Unrecoverable(t, func() { r.ReadAt(6) })
}

func Test_Range_02(t *testing.T) {
	r := Range[uint8](250, 255)
	assert.Equal(t, uint8(251), r.IncBy(253, -2))
	assert.Equal(t, -3, r.Distance(254, 251))
}

func Test_Range_03(t *testing.T) {
	// Sizes and offsets exceeding the element type
	r := Range[int8](-100, 100)
	assert.Equal(t, 200, r.Size())
	assert.Equal(t, 200, Count[int8, int8](r))
	assert.Equal(t, 200, len(slices.Collect(Values[int8, int8](r))))
	//
	n, ok := SizeOf[int8, int8](r)
	assert.True(t, ok)
	assert.Equal(t, 200, n)
	assert.Equal(t, int8(99), r.IncBy(-100, 199))
	assert.Equal(t, int8(-100), r.IncBy(100, -200))
	assert.Unrecoverable(t, func() { r.IncBy(-100, 201) })
	assert.Unrecoverable(t, func() { r.IncBy(-100, -1) })
}

func Test_Iota_01(t *testing.T) {
	s := Iota[int8](125)
	c := s.Inc(s.Inc(s.First()))
	assert.Equal(t, int8(127), s.ReadAt(c))
	assert.Unrecoverable(t, func() { s.Inc(c) })
	assert.True(t, IsInfinite(s))
}

func Test_Iota_02(t *testing.T) {
	s := Iota[int8](-100)
	assert.Equal(t, int8(100), s.IncBy(-100, 200))
	assert.Equal(t, int8(-100), s.IncBy(100, -200))
	assert.Unrecoverable(t, func() { s.IncBy(0, 128) })
	assert.Unrecoverable(t, func() { s.IncBy(-100, -1) })
	//
	u := Iota[uint8](0)
	assert.Equal(t, uint8(7), u.IncBy(10, -3))
	assert.Unrecoverable(t, func() { u.IncBy(3, -4) })
}

func Test_Repeat_01(t *testing.T) {
	s := RepeatN("x", 3)
	assert.Equal(t, []string{"x", "x", "x"}, slices.Collect(Values[int, string](s)))
	//
	inf := Repeat(1)
	assert.True(t, IsInfinite(inf))
	assert.Equal(t, Capabilities{Category: RandomAccessCategory, Infinite: true}, CapabilitiesOf(inf))
	//
	total := 0
	//
	ForEachWhile(inf, func(e int) bool {
		total += e
		return total < 100
	})
	assert.Equal(t, 100, total)
}

func Test_FromIter_01(t *testing.T) {
	s := FromIter(slices.Values([]string{"a", "b", "c"}))
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(Values[int, string](s)))
	assert.True(t, s.IsLast(s.First()))
}

func Test_FromIter_02(t *testing.T) {
	s := FromIter(slices.Values([]string{"a", "b", "c"}))
	c := s.First()
	assert.Equal(t, "a", s.ReadAt(c))
	s.Close()
	assert.True(t, s.IsLast(c))
	assert.Unrecoverable(t, func() { s.ReadAt(c) })
}

func Test_Generate_01(t *testing.T) {
	s := Generate(counter(4))
	c := s.First()
	d := s.Inc(c)
	// Stale cursors are rejected
	assert.Unrecoverable(t, func() { s.ReadAt(c) })
	assert.Equal(t, 1, s.ReadAt(d))
}

func Test_Traits_01(t *testing.T) {
	// Only the required operations, so single pass
	s := Adapt(ring{5, 2}, ringTraits(false))
	assert.Equal(t, Capabilities{Category: SinglePass}, CapabilitiesOf(s))
	assert.Equal(t, []int{2, 3, 4, 0, 1}, slices.Collect(Values(s)))
}

func Test_Traits_02(t *testing.T) {
	s := Adapt(ring{5, 2}, ringTraits(true))
	assert.Equal(t, Capabilities{RandomAccessCategory, true, true, false, false}, CapabilitiesOf(s))
	assert.Equal(t, []int{2, 3, 4, 0, 1}, slices.Collect(Values(s)))
	//
	ra, _ := AsRandomAccess(s)
	assert.Equal(t, 0, ra.ReadAt(ra.IncBy(ra.First(), 3)))
	assert.Equal(t, util.Some(1), Back[int, int](ra))
}

func Test_Traits_03(t *testing.T) {
	Register(ringTraits(true))
	defer Unregister[ring]()
	//
	assert.True(t, Lookup[ring, int, int]().HasValue())
	assert.True(t, Lookup[ring, int, string]().IsEmpty())
	//
	s := From[int, int](ring{3, 1})
	assert.Equal(t, []int{1, 2, 0}, slices.Collect(Values(s)))
	// Wrong element type
	assert.Unrecoverable(t, func() { From[int, string](ring{3, 1}) })
}

func Test_Traits_04(t *testing.T) {
	assert.Unrecoverable(t, func() { From[int, int](ring{3, 1}) })
	assert.Unrecoverable(t, func() { Adapt(ring{3, 1}, Traits[ring, int, int]{}) })
	// Slices and sequences are accepted as is
	assert.Equal(t, []int{1, 2}, slices.Collect(Values(From[int, int]([]int{1, 2}))))
	assert.Equal(t, []int{4, 5}, slices.Collect(Values(From[int, int](Range(4, 6)))))
}

// ===================================================================
// Test Helpers
// ===================================================================

// ring is a foreign type enumerating 0..n-1 starting from some offset, and
// wrapping around.
type ring struct {
	n     int
	start int
}

func ringTraits(full bool) Traits[ring, int, int] {
	traits := Traits[ring, int, int]{
		First:  func(ring) int { return 0 },
		IsLast: func(r ring, c int) bool { return c == r.n },
		Inc:    func(_ ring, c int) int { return c + 1 },
		ReadAt: func(r ring, c int) int { return (r.start + c) % r.n },
	}
	//
	if full {
		traits.Equal = func(l, r int) bool { return l == r }
		traits.Dec = func(_ ring, c int) int { return c - 1 }
		traits.IncBy = func(_ ring, c int, n int) int { return c + n }
		traits.Distance = func(_ ring, from, to int) int { return to - from }
		traits.Last = func(r ring) int { return r.n }
		traits.Size = func(r ring) int { return r.n }
	}
	//
	return traits
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

func allCapabilities() []Capabilities {
	var caps []Capabilities
	//
	for c := SinglePass; c <= RandomAccessCategory; c++ {
		for _, flags := range [][2]bool{{false, false}, {true, false}, {false, true}, {true, true}} {
			caps = append(caps, Capabilities{Category: c, Bounded: flags[0], Sized: flags[1]})
		}
	}
	//
	return caps
}
