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
	"github.com/consensys/go-flux/pkg/seq"
	"github.com/consensys/go-flux/pkg/util"
)

// Zip presents pairs of corresponding elements from two sequences, stopping
// when either is exhausted.  The result is at most bidirectional, and is sized
// when the length of both sequences is known (where infinite sequences are
// considered known).  It is bounded only when both are also random access,
// since the end of the shorter must be located in the longer.
func Zip[L, R, E, F any](left seq.Sequence[L, E],
	right seq.Sequence[R, F]) seq.Sequence[util.Pair[L, R], util.Pair[E, F]] {
	var (
		lhs  = seq.CapabilitiesOf(left)
		rhs  = seq.CapabilitiesOf(right)
		caps = lhs.Meet(rhs)
	)
	//
	caps.Sized = !caps.Infinite && knownLength(lhs) && knownLength(rhs)
	caps.Bounded = caps.Sized && caps.Category == seq.RandomAccessCategory
	caps = caps.Restrict(seq.BidirectionalCategory)
	//
	return seq.Narrow[util.Pair[L, R], util.Pair[E, F]](&zipped[L, R, E, F]{left, right, lhs.Infinite, rhs.Infinite}, caps)
}

func knownLength(caps seq.Capabilities) bool {
	return caps.Sized || caps.Infinite || (caps.Bounded && caps.Category == seq.RandomAccessCategory)
}

type zipped[L, R, E, F any] struct {
	left          seq.Sequence[L, E]
	right         seq.Sequence[R, F]
	leftInfinite  bool
	rightInfinite bool
}

func (p *zipped[L, R, E, F]) First() util.Pair[L, R] {
	return util.NewPair(p.left.First(), p.right.First())
}

func (p *zipped[L, R, E, F]) IsLast(c util.Pair[L, R]) bool {
	return p.left.IsLast(c.Left) || p.right.IsLast(c.Right)
}

func (p *zipped[L, R, E, F]) Inc(c util.Pair[L, R]) util.Pair[L, R] {
	return util.NewPair(p.left.Inc(c.Left), p.right.Inc(c.Right))
}

func (p *zipped[L, R, E, F]) ReadAt(c util.Pair[L, R]) util.Pair[E, F] {
	return util.NewPair(p.left.ReadAt(c.Left), p.right.ReadAt(c.Right))
}

func (p *zipped[L, R, E, F]) Equal(l util.Pair[L, R], r util.Pair[L, R]) bool {
	// Both sides always move together
	return p.left.(seq.Multipass[L, E]).Equal(l.Left, r.Left)
}

func (p *zipped[L, R, E, F]) Dec(c util.Pair[L, R]) util.Pair[L, R] {
	return util.NewPair(p.left.(seq.Bidirectional[L, E]).Dec(c.Left),
		p.right.(seq.Bidirectional[R, F]).Dec(c.Right))
}

func (p *zipped[L, R, E, F]) Last() util.Pair[L, R] {
	var (
		left  = p.left.(seq.RandomAccess[L, E])
		right = p.right.(seq.RandomAccess[R, F])
		n     = p.Size()
	)
	//
	return util.NewPair(left.IncBy(left.First(), n), right.IncBy(right.First(), n))
}

func (p *zipped[L, R, E, F]) Size() int {
	n, _ := seq.SizeOf(p.left)
	m, _ := seq.SizeOf(p.right)
	//
	switch {
	case p.leftInfinite:
		return m
	case p.rightInfinite:
		return n
	default:
		return min(n, m)
	}
}

func (p *zipped[L, R, E, F]) Infinite() {}
