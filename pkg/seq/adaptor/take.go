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

// TakeCursor is a cursor into the first n elements of some sequence, which
// additionally counts its position.
type TakeCursor[C any] struct {
	Base  C
	Count int
}

// Take presents (at most) the first n elements of a sequence.  The result has
// the same category as its base, and is never infinite.  It is sized when the
// number of elements it holds can be determined without traversal, and bounded
// when its base is random access and either bounded or infinite.
func Take[C, E any](s seq.Sequence[C, E], n int) seq.Sequence[TakeCursor[C], E] {
	if n < 0 {
		util.Unrecoverable("negative count %d", n)
	}
	//
	var (
		base = seq.CapabilitiesOf(s)
		caps = base
	)
	//
	caps.Infinite = false
	caps.Contiguous = false
	caps.Sized = base.Sized || base.Infinite || (base.Category == seq.RandomAccessCategory && base.Bounded)
	caps.Bounded = base.Category == seq.RandomAccessCategory && (base.Bounded || base.Infinite)
	//
	return seq.Narrow[TakeCursor[C], E](&taken[C, E]{s, n, base.Infinite}, caps)
}

type taken[C, E any] struct {
	base     seq.Sequence[C, E]
	n        int
	infinite bool
}

func (p *taken[C, E]) First() TakeCursor[C] {
	return TakeCursor[C]{p.base.First(), 0}
}

func (p *taken[C, E]) IsLast(c TakeCursor[C]) bool {
	return c.Count == p.n || p.base.IsLast(c.Base)
}

func (p *taken[C, E]) Inc(c TakeCursor[C]) TakeCursor[C] {
	return TakeCursor[C]{p.base.Inc(c.Base), c.Count + 1}
}

func (p *taken[C, E]) ReadAt(c TakeCursor[C]) E {
	return p.base.ReadAt(c.Base)
}

func (p *taken[C, E]) MoveAt(c TakeCursor[C]) E {
	return seq.Move(p.base, c.Base)
}

func (p *taken[C, E]) Equal(l TakeCursor[C], r TakeCursor[C]) bool {
	return l.Count == r.Count
}

func (p *taken[C, E]) Dec(c TakeCursor[C]) TakeCursor[C] {
	return TakeCursor[C]{p.base.(seq.Bidirectional[C, E]).Dec(c.Base), c.Count - 1}
}

func (p *taken[C, E]) IncBy(c TakeCursor[C], n int) TakeCursor[C] {
	return TakeCursor[C]{p.base.(seq.RandomAccess[C, E]).IncBy(c.Base, n), c.Count + n}
}

func (p *taken[C, E]) Distance(from TakeCursor[C], to TakeCursor[C]) int {
	return to.Count - from.Count
}

func (p *taken[C, E]) Last() TakeCursor[C] {
	n := p.Size()
	//
	return p.IncBy(p.First(), n)
}

func (p *taken[C, E]) Size() int {
	if p.infinite {
		return p.n
	}
	//
	n, _ := seq.SizeOf(p.base)
	//
	return min(n, p.n)
}

func (p *taken[C, E]) Iterate() seq.Context[E] {
	return &takeContext[E]{seq.Iterate(p.base), p.n}
}

type takeContext[E any] struct {
	base seq.Context[E]
	left int
}

func (p *takeContext[E]) RunWhile(pred func(E) bool) seq.Result {
	var stopped bool
	//
	if p.left == 0 {
		return seq.Complete
	}
	//
	res := p.base.RunWhile(func(e E) bool {
		p.left--
		//
		if !pred(e) {
			stopped = true
			return false
		}
		//
		return p.left > 0
	})
	// Reaching the limit is not the same as being told to stop
	if stopped {
		return seq.Incomplete
	} else if p.left == 0 {
		return seq.Complete
	}
	//
	return res
}
