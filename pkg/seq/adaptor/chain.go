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

// Chain presents the elements of one sequence followed by those of another,
// with cursors into either the left or the right sequence.  Thus, when all
// elements of the left sequence are visited, iteration continues into the
// right.  Stepping backwards out of the right sequence requires the left be
// bounded, and the result is at most bidirectional.  The result is bounded if
// the right sequence is, sized if both are, and infinite if either is.
func Chain[L, R, E any](left seq.Sequence[L, E], right seq.Sequence[R, E]) seq.Sequence[util.Union[L, R], E] {
	var (
		lhs  = seq.CapabilitiesOf(left)
		rhs  = seq.CapabilitiesOf(right)
		caps = lhs.Meet(rhs).Restrict(seq.BidirectionalCategory)
	)
	//
	if !lhs.Bounded {
		caps = caps.Restrict(seq.MultipassCategory)
	}
	//
	caps.Bounded = rhs.Bounded
	caps.Infinite = lhs.Infinite || rhs.Infinite
	//
	return seq.Narrow[util.Union[L, R], E](&chained[L, R, E]{left, right}, caps)
}

type chained[L, R, E any] struct {
	left  seq.Sequence[L, E]
	right seq.Sequence[R, E]
}

func (p *chained[L, R, E]) First() util.Union[L, R] {
	return p.enter(p.left.First())
}

func (p *chained[L, R, E]) IsLast(c util.Union[L, R]) bool {
	return c.HasSecond() && p.right.IsLast(c.Second())
}

func (p *chained[L, R, E]) Inc(c util.Union[L, R]) util.Union[L, R] {
	if c.HasFirst() {
		return p.enter(p.left.Inc(c.First()))
	}
	//
	return util.Union2[L](p.right.Inc(c.Second()))
}

func (p *chained[L, R, E]) ReadAt(c util.Union[L, R]) E {
	if c.HasFirst() {
		return p.left.ReadAt(c.First())
	}
	//
	return p.right.ReadAt(c.Second())
}

func (p *chained[L, R, E]) MoveAt(c util.Union[L, R]) E {
	if c.HasFirst() {
		return seq.Move(p.left, c.First())
	}
	//
	return seq.Move(p.right, c.Second())
}

func (p *chained[L, R, E]) Equal(l util.Union[L, R], r util.Union[L, R]) bool {
	return util.EqualUnions(l, r,
		p.left.(seq.Multipass[L, E]).Equal,
		p.right.(seq.Multipass[R, E]).Equal)
}

func (p *chained[L, R, E]) Dec(c util.Union[L, R]) util.Union[L, R] {
	if c.HasSecond() {
		right := p.right.(seq.Bidirectional[R, E])
		// Step back into the left sequence?
		if !right.Equal(c.Second(), right.First()) {
			return util.Union2[L](right.Dec(c.Second()))
		}
		//
		left := p.left.(seq.Bounded[L, E]).Last()
		//
		return util.Union1[L, R](p.left.(seq.Bidirectional[L, E]).Dec(left))
	}
	//
	return util.Union1[L, R](p.left.(seq.Bidirectional[L, E]).Dec(c.First()))
}

func (p *chained[L, R, E]) Last() util.Union[L, R] {
	return util.Union2[L](p.right.(seq.Bounded[R, E]).Last())
}

func (p *chained[L, R, E]) Size() int {
	return p.left.(seq.Sized[L, E]).Size() + p.right.(seq.Sized[R, E]).Size()
}

func (p *chained[L, R, E]) Infinite() {}

func (p *chained[L, R, E]) Iterate() seq.Context[E] {
	return &chainContext[L, R, E]{p, seq.Iterate(p.left), nil}
}

// enter moves into the right sequence once the left is exhausted.
func (p *chained[L, R, E]) enter(c L) util.Union[L, R] {
	if p.left.IsLast(c) {
		return util.Union2[L](p.right.First())
	}
	//
	return util.Union1[L, R](c)
}

type chainContext[L, R, E any] struct {
	chain *chained[L, R, E]
	left  seq.Context[E]
	right seq.Context[E]
}

func (p *chainContext[L, R, E]) RunWhile(pred func(E) bool) seq.Result {
	if p.right == nil {
		if p.left.RunWhile(pred) == seq.Incomplete {
			return seq.Incomplete
		}
		//
		p.right = seq.Iterate(p.chain.right)
	}
	//
	return p.right.RunWhile(pred)
}
