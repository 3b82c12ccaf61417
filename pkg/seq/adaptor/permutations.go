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

	"github.com/consensys/go-flux/pkg/seq"
	"github.com/consensys/go-flux/pkg/util"
	"github.com/consensys/go-flux/pkg/util/math"
	log "github.com/sirupsen/logrus"
)

// PermutationCursor identifies one permutation of a cached sequence.  Cursors
// are ordered by their index, which counts the permutations visited so far.
// The index vector determines which cached element appears at each position.
// For permutations of a given length, the cycles vector holds the counters
// controlling which elements are exchanged next.
type PermutationCursor struct {
	index   int
	indices []int
	cycles  []int
}

// Index returns the position of this permutation within the enumeration.
func (p PermutationCursor) Index() int {
	return p.index
}

type cacheState uint8

const (
	uninitialised cacheState = iota
	cached
)

// Permutations lazily enumerates every permutation of a finite sequence, in
// lexicographic order of element positions.  The elements are copied from the
// sequence on first use, so the sequence need only be single-pass.  Each
// element produced is a freshly allocated slice.  For a sequence of n
// elements, there are n! permutations (hence, exactly one for an empty
// sequence).  The result is bidirectional, bounded and sized.  Permutations
// of an infinite sequence are not possible, and raise an unrecoverable error.
func Permutations[C, E any](s seq.Sequence[C, E]) seq.Sequence[PermutationCursor, []E] {
	caps := seq.Capabilities{Category: seq.BidirectionalCategory, Bounded: true, Sized: true}
	//
	return seq.Narrow[PermutationCursor, []E](newPermutations(s, -1), caps)
}

// PermutationsSized lazily enumerates every arrangement of k elements from a
// finite sequence, in lexicographic order of element positions.  For a sequence
// of n elements, there are n!/(n-k)! such arrangements (hence, none when k >
// n).  The result is multipass, bounded and sized.
func PermutationsSized[C, E any](s seq.Sequence[C, E], k int) seq.Sequence[PermutationCursor, []E] {
	if k < 0 {
		util.Unrecoverable("negative permutation length %d", k)
	}
	//
	caps := seq.Capabilities{Category: seq.MultipassCategory, Bounded: true, Sized: true}
	//
	return seq.Narrow[PermutationCursor, []E](newPermutations(s, k), caps)
}

// permutations caches the elements of its base sequence on first use.  Copying
// this before first use copies only the uninitialised state.
type permutations[C, E any] struct {
	base  seq.Sequence[C, E]
	state cacheState
	cache []E
	// length of each permutation, or negative for full permutations
	k int
	// number of permutations
	count int
}

func newPermutations[C, E any](s seq.Sequence[C, E], k int) *permutations[C, E] {
	if seq.IsInfinite(s) {
		util.Unrecoverable("cannot permute infinite sequence")
	}
	//
	return &permutations[C, E]{base: s, k: k}
}

func (p *permutations[C, E]) First() PermutationCursor {
	p.ensureCache()
	//
	n := len(p.cache)
	//
	if p.k < 0 {
		return PermutationCursor{0, identity(n), nil}
	} else if p.count == 0 {
		return PermutationCursor{0, nil, nil}
	}
	//
	cycles := make([]int, p.k)
	//
	for i := range cycles {
		cycles[i] = n - i
	}
	//
	return PermutationCursor{0, identity(n), cycles}
}

func (p *permutations[C, E]) IsLast(c PermutationCursor) bool {
	p.ensureCache()
	//
	return c.index == p.count
}

func (p *permutations[C, E]) Inc(c PermutationCursor) PermutationCursor {
	if p.k < 0 {
		indices := slices.Clone(c.indices)
		nextPermutation(indices)
		//
		return PermutationCursor{c.index + 1, indices, nil}
	}
	//
	var (
		n       = len(c.indices)
		indices = slices.Clone(c.indices)
		cycles  = slices.Clone(c.cycles)
	)
	//
	for i := p.k - 1; i >= 0; i-- {
		cycles[i]--
		//
		if cycles[i] == 0 {
			// Rotate remaining indices left by one
			first := indices[i]
			copy(indices[i:], indices[i+1:])
			indices[n-1] = first
			cycles[i] = n - i
		} else {
			j := n - cycles[i]
			indices[i], indices[j] = indices[j], indices[i]
			//
			break
		}
	}
	//
	return PermutationCursor{c.index + 1, indices, cycles}
}

func (p *permutations[C, E]) ReadAt(c PermutationCursor) []E {
	p.ensureCache()
	//
	if c.index < 0 || c.index >= p.count {
		util.Unrecoverable("permutation %d out of bounds (count %d)", c.index, p.count)
	}
	//
	n := len(c.indices)
	//
	if p.k >= 0 {
		n = p.k
	}
	//
	items := make([]E, n)
	//
	for i := range items {
		items[i] = p.cache[c.indices[i]]
	}
	//
	return items
}

func (p *permutations[C, E]) Equal(l PermutationCursor, r PermutationCursor) bool {
	return l.index == r.index
}

func (p *permutations[C, E]) Dec(c PermutationCursor) PermutationCursor {
	if p.k >= 0 {
		util.Unrecoverable("cannot decrement sized permutation")
	} else if c.index == 0 {
		util.Unrecoverable("cannot decrement first permutation")
	}
	//
	indices := slices.Clone(c.indices)
	prevPermutation(indices)
	//
	return PermutationCursor{c.index - 1, indices, nil}
}

// Last returns the position following the last permutation.  Stepping past the
// last permutation restores the initial arrangement, hence this is also its
// index vector.
func (p *permutations[C, E]) Last() PermutationCursor {
	c := p.First()
	c.index = p.count
	//
	return c
}

func (p *permutations[C, E]) Size() int {
	p.ensureCache()
	//
	return p.count
}

func (p *permutations[C, E]) ensureCache() {
	if p.state == cached {
		return
	}
	//
	if n, ok := seq.SizeOf(p.base); ok {
		// Sized, so can copy directly
		p.cache = make([]E, n)
		i := 0
		//
		seq.Drain(seq.Iterate(p.base), func(e E) {
			p.cache[i] = e
			i++
		})
	} else {
		seq.Drain(seq.Iterate(p.base), func(e E) {
			p.cache = append(p.cache, e)
		})
	}
	//
	n := uint64(len(p.cache))
	//
	if p.k < 0 {
		p.count = int(math.Factorial(n))
	} else {
		p.count = int(math.FallingFactorial(n, uint64(p.k)))
	}
	//
	p.state = cached
	//
	log.Debugf("cached %d elements for %d permutations", n, p.count)
}

func identity(n int) []int {
	indices := make([]int, n)
	//
	for i := range indices {
		indices[i] = i
	}
	//
	return indices
}

// nextPermutation rearranges indices into the lexicographically next
// permutation, wrapping around from the greatest to the least.
func nextPermutation(indices []int) {
	if len(indices) < 2 {
		return
	}
	//
	i := len(indices) - 2
	// Find rightmost ascent
	for i >= 0 && indices[i] >= indices[i+1] {
		i--
	}
	//
	if i >= 0 {
		j := len(indices) - 1
		//
		for indices[j] <= indices[i] {
			j--
		}
		//
		indices[i], indices[j] = indices[j], indices[i]
	}
	//
	slices.Reverse(indices[i+1:])
}

// prevPermutation rearranges indices into the lexicographically previous
// permutation, wrapping around from the least to the greatest.
func prevPermutation(indices []int) {
	if len(indices) < 2 {
		return
	}
	//
	i := len(indices) - 2
	// Find rightmost descent
	for i >= 0 && indices[i] <= indices[i+1] {
		i--
	}
	//
	if i >= 0 {
		j := len(indices) - 1
		//
		for indices[j] >= indices[i] {
			j--
		}
		//
		indices[i], indices[j] = indices[j], indices[i]
	}
	//
	slices.Reverse(indices[i+1:])
}
