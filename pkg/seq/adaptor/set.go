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
	"cmp"

	"github.com/consensys/go-flux/pkg/seq"
)

// SetCursor is a position within the result of a set operation over two
// non-decreasing sequences.  It holds a position in each sequence, along with
// which of them the current element is taken from.
type SetCursor[L, R any] struct {
	Left  L
	Right R
	from  source
}

// source identifies where the element at some position in a set operation is
// read from.
type source uint8

const (
	fromLeft source = iota
	fromRight
	// Both sides hold equal elements (read from left)
	fromBoth
	// Both sides exhausted
	fromNeither
)

type setKind uint8

const (
	unionKind setKind = iota
	intersectionKind
	differenceKind
	symmetricDifferenceKind
)

// Union lazily merges two non-decreasing sequences into their (multiset) union,
// which is also non-decreasing.  An element occurring n times in one sequence
// and m times in the other occurs max(n,m) times in the result.
func Union[L, R any, E cmp.Ordered](left seq.Sequence[L, E], right seq.Sequence[R, E]) seq.Sequence[SetCursor[L, R], E] {
	return UnionFunc(left, right, cmp.Compare[E])
}

// UnionFunc is like Union, but orders elements using a given three-way
// comparator.
func UnionFunc[L, R, E any](left seq.Sequence[L, E], right seq.Sequence[R, E],
	cmp func(E, E) int) seq.Sequence[SetCursor[L, R], E] {
	return newSetOp(unionKind, left, right, cmp)
}

// Intersection lazily computes the (multiset) intersection of two
// non-decreasing sequences.  An element occurring n times in one sequence and m
// times in the other occurs min(n,m) times in the result.
func Intersection[L, R any, E cmp.Ordered](left seq.Sequence[L, E],
	right seq.Sequence[R, E]) seq.Sequence[SetCursor[L, R], E] {
	return IntersectionFunc(left, right, cmp.Compare[E])
}

// IntersectionFunc is like Intersection, but orders elements using a given
// three-way comparator.
func IntersectionFunc[L, R, E any](left seq.Sequence[L, E], right seq.Sequence[R, E],
	cmp func(E, E) int) seq.Sequence[SetCursor[L, R], E] {
	return newSetOp(intersectionKind, left, right, cmp)
}

// Difference lazily computes those elements of the left non-decreasing sequence
// which are not in the right.  An element occurring n times in the left and m
// times in the right occurs max(n-m,0) times in the result.
func Difference[L, R any, E cmp.Ordered](left seq.Sequence[L, E],
	right seq.Sequence[R, E]) seq.Sequence[SetCursor[L, R], E] {
	return DifferenceFunc(left, right, cmp.Compare[E])
}

// DifferenceFunc is like Difference, but orders elements using a given
// three-way comparator.
func DifferenceFunc[L, R, E any](left seq.Sequence[L, E], right seq.Sequence[R, E],
	cmp func(E, E) int) seq.Sequence[SetCursor[L, R], E] {
	return newSetOp(differenceKind, left, right, cmp)
}

// SymmetricDifference lazily computes those elements of either non-decreasing
// sequence which are not in the other.  An element occurring n times in one
// sequence and m times in the other occurs |n-m| times in the result.
func SymmetricDifference[L, R any, E cmp.Ordered](left seq.Sequence[L, E],
	right seq.Sequence[R, E]) seq.Sequence[SetCursor[L, R], E] {
	return SymmetricDifferenceFunc(left, right, cmp.Compare[E])
}

// SymmetricDifferenceFunc is like SymmetricDifference, but orders elements
// using a given three-way comparator.
func SymmetricDifferenceFunc[L, R, E any](left seq.Sequence[L, E], right seq.Sequence[R, E],
	cmp func(E, E) int) seq.Sequence[SetCursor[L, R], E] {
	return newSetOp(symmetricDifferenceKind, left, right, cmp)
}

// Set operations are at most multipass, since locating an element requires
// the merge to be replayed, and never sized or bounded.  Union and symmetric
// difference are infinite if either side is; difference and intersection only
// if the left side is.
func newSetOp[L, R, E any](kind setKind, left seq.Sequence[L, E], right seq.Sequence[R, E],
	cmp func(E, E) int) seq.Sequence[SetCursor[L, R], E] {
	var (
		lhs  = seq.CapabilitiesOf(left)
		rhs  = seq.CapabilitiesOf(right)
		caps = seq.Capabilities{Category: min(lhs.Category, rhs.Category, seq.MultipassCategory)}
	)
	//
	switch kind {
	case unionKind, symmetricDifferenceKind:
		caps.Infinite = lhs.Infinite || rhs.Infinite
	default:
		caps.Infinite = lhs.Infinite
	}
	//
	return seq.Narrow[SetCursor[L, R], E](&setOp[L, R, E]{kind, left, right, cmp}, caps)
}

type setOp[L, R, E any] struct {
	kind  setKind
	left  seq.Sequence[L, E]
	right seq.Sequence[R, E]
	cmp   func(E, E) int
}

func (p *setOp[L, R, E]) First() SetCursor[L, R] {
	return p.update(p.left.First(), p.right.First())
}

func (p *setOp[L, R, E]) IsLast(c SetCursor[L, R]) bool {
	switch p.kind {
	case intersectionKind:
		return p.left.IsLast(c.Left) || p.right.IsLast(c.Right)
	case differenceKind:
		return p.left.IsLast(c.Left)
	default:
		return c.from == fromNeither
	}
}

func (p *setOp[L, R, E]) Inc(c SetCursor[L, R]) SetCursor[L, R] {
	l, r := c.Left, c.Right
	//
	switch c.from {
	case fromLeft:
		l = p.left.Inc(l)
	case fromRight:
		r = p.right.Inc(r)
	case fromBoth:
		l, r = p.left.Inc(l), p.right.Inc(r)
	}
	//
	return p.update(l, r)
}

func (p *setOp[L, R, E]) ReadAt(c SetCursor[L, R]) E {
	if c.from == fromRight {
		return p.right.ReadAt(c.Right)
	}
	//
	return p.left.ReadAt(c.Left)
}

func (p *setOp[L, R, E]) Equal(l SetCursor[L, R], r SetCursor[L, R]) bool {
	return p.left.(seq.Multipass[L, E]).Equal(l.Left, r.Left) &&
		p.right.(seq.Multipass[R, E]).Equal(l.Right, r.Right)
}

func (p *setOp[L, R, E]) Infinite() {}

// update advances whichever of the two positions is behind, as necessary, until
// they are resolved into a position from which the next element is read, or
// the end.
func (p *setOp[L, R, E]) update(l L, r R) SetCursor[L, R] {
	for {
		lEnd, rEnd := p.left.IsLast(l), p.right.IsLast(r)
		//
		switch {
		case lEnd && rEnd:
			return SetCursor[L, R]{l, r, fromNeither}
		case lEnd:
			// Only union and symmetric difference continue with the right
			return SetCursor[L, R]{l, r, fromRight}
		case rEnd:
			// Intersection has nothing further
			return SetCursor[L, R]{l, r, fromLeft}
		}
		//
		c := p.cmp(p.left.ReadAt(l), p.right.ReadAt(r))
		//
		switch p.kind {
		case unionKind:
			return SetCursor[L, R]{l, r, resolve(c)}
		case intersectionKind:
			if c < 0 {
				l = p.left.Inc(l)
			} else if c > 0 {
				r = p.right.Inc(r)
			} else {
				return SetCursor[L, R]{l, r, fromBoth}
			}
		case differenceKind:
			if c < 0 {
				return SetCursor[L, R]{l, r, fromLeft}
			} else if c == 0 {
				l = p.left.Inc(l)
			}
			//
			r = p.right.Inc(r)
		default:
			if c == 0 {
				l, r = p.left.Inc(l), p.right.Inc(r)
			} else {
				return SetCursor[L, R]{l, r, resolve(c)}
			}
		}
	}
}

func resolve(c int) source {
	switch {
	case c < 0:
		return fromLeft
	case c > 0:
		return fromRight
	default:
		return fromBoth
	}
}
