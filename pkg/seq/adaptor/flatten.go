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

// FlattenCursor is a position within a flattened sequence, consisting of a
// position in the outer sequence and a position within the inner sequence found
// there.  At the end of a flattened sequence, the inner position is zero.
type FlattenCursor[OC, IC any] struct {
	Outer OC
	Inner IC
}

// Flatten presents the elements of each inner sequence of an outer sequence of
// sequences, one after the other.  Empty inner sequences are skipped.
//
// When the outer sequence is multipass and its element type is (statically) a
// multipass sequence, the result is multipass, with cursors which can be
// copied and compared.  It is additionally bidirectional when the outer
// sequence is bidirectional and the inner sequences are bidirectional and
// bounded, and it is bounded when the outer sequence is.  Otherwise, the result
// is single-pass, and holds the inner sequence currently being traversed.
func Flatten[OC, IC, E any, I seq.Sequence[IC, E]](outer seq.Sequence[OC, I]) seq.Sequence[FlattenCursor[OC, IC], E] {
	var (
		oc = seq.CapabilitiesOf(outer)
		ic = innerCapabilities[IC, E, I]()
	)
	//
	if oc.Category == seq.SinglePass || ic.Category == seq.SinglePass {
		caps := seq.Capabilities{Category: seq.SinglePass, Infinite: oc.Infinite}
		return seq.Narrow[FlattenCursor[OC, IC], E](&flattenSP[OC, IC, E, I]{outer: outer}, caps)
	}
	//
	caps := seq.Capabilities{Category: seq.MultipassCategory, Bounded: oc.Bounded, Infinite: oc.Infinite}
	//
	if oc.Category >= seq.BidirectionalCategory && ic.Category >= seq.BidirectionalCategory && ic.Bounded {
		caps.Category = seq.BidirectionalCategory
	}
	//
	return seq.Narrow[FlattenCursor[OC, IC], E](&flattenMP[OC, IC, E, I]{outer}, caps)
}

// innerCapabilities determines the capabilities of inner sequences from their
// static type alone.  Thus, an inner type which is itself an interface is
// treated as single-pass.
func innerCapabilities[IC, E any, I seq.Sequence[IC, E]]() seq.Capabilities {
	var (
		zero I
		caps seq.Capabilities
	)
	//
	if s, ok := any(zero).(seq.Sequence[IC, E]); ok {
		caps = seq.CapabilitiesOf(s)
	}
	//
	return caps
}

// ============================================================================
// Single-pass
// ============================================================================

// flattenSP holds the inner sequence currently being traversed, since reading
// the outer sequence again is not possible.
type flattenSP[OC, IC, E any, I seq.Sequence[IC, E]] struct {
	outer seq.Sequence[OC, I]
	inner util.Option[I]
}

func (p *flattenSP[OC, IC, E, I]) First() FlattenCursor[OC, IC] {
	var ic IC
	//
	p.inner = util.None[I]()
	//
	return p.satisfy(p.outer.First(), ic)
}

func (p *flattenSP[OC, IC, E, I]) IsLast(c FlattenCursor[OC, IC]) bool {
	return p.outer.IsLast(c.Outer)
}

func (p *flattenSP[OC, IC, E, I]) Inc(c FlattenCursor[OC, IC]) FlattenCursor[OC, IC] {
	inner := p.inner.Unwrap()
	//
	return p.satisfy(c.Outer, inner.Inc(c.Inner))
}

func (p *flattenSP[OC, IC, E, I]) ReadAt(c FlattenCursor[OC, IC]) E {
	return p.inner.Unwrap().ReadAt(c.Inner)
}

func (p *flattenSP[OC, IC, E, I]) Infinite() {}

func (p *flattenSP[OC, IC, E, I]) Iterate() seq.Context[E] {
	return &flattenContext[IC, E, I]{outer: seq.Iterate(p.outer)}
}

// satisfy moves forwards from a given position until positioned on a readable
// element, or at the end.  The inner sequence at the outer position is loaded
// on demand.
func (p *flattenSP[OC, IC, E, I]) satisfy(oc OC, ic IC) FlattenCursor[OC, IC] {
	for !p.outer.IsLast(oc) {
		if p.inner.IsEmpty() {
			inner := p.outer.ReadAt(oc)
			p.inner, ic = util.Some(inner), inner.First()
		}
		//
		if !p.inner.Unwrap().IsLast(ic) {
			return FlattenCursor[OC, IC]{oc, ic}
		}
		//
		p.inner = util.None[I]()
		oc = p.outer.Inc(oc)
	}
	//
	var end IC
	//
	return FlattenCursor[OC, IC]{oc, end}
}

// flattenContext drives internal iteration over the outer sequence, and then
// over each inner sequence in turn.
type flattenContext[IC, E any, I seq.Sequence[IC, E]] struct {
	outer seq.Context[I]
	inner util.Option[seq.Context[E]]
}

func (p *flattenContext[IC, E, I]) RunWhile(pred func(E) bool) seq.Result {
	for {
		if p.inner.IsEmpty() {
			inner, ok := seq.Pull(p.outer)
			//
			if !ok {
				return seq.Complete
			}
			//
			p.inner = util.Some(seq.Iterate[IC, E](inner))
		}
		//
		if p.inner.Unwrap().RunWhile(pred) == seq.Incomplete {
			return seq.Incomplete
		}
		//
		p.inner = util.None[seq.Context[E]]()
	}
}

// ============================================================================
// Multipass
// ============================================================================

// flattenMP reads inner sequences from the outer sequence as needed, relying on
// the outer sequence to hold them.
type flattenMP[OC, IC, E any, I seq.Sequence[IC, E]] struct {
	outer seq.Sequence[OC, I]
}

func (p *flattenMP[OC, IC, E, I]) First() FlattenCursor[OC, IC] {
	oc := p.outer.First()
	//
	if p.outer.IsLast(oc) {
		var end IC
		return FlattenCursor[OC, IC]{oc, end}
	}
	//
	return p.satisfy(oc, p.outer.ReadAt(oc).First())
}

func (p *flattenMP[OC, IC, E, I]) IsLast(c FlattenCursor[OC, IC]) bool {
	return p.outer.IsLast(c.Outer)
}

func (p *flattenMP[OC, IC, E, I]) Inc(c FlattenCursor[OC, IC]) FlattenCursor[OC, IC] {
	inner := p.outer.ReadAt(c.Outer)
	//
	return p.satisfy(c.Outer, inner.Inc(c.Inner))
}

func (p *flattenMP[OC, IC, E, I]) ReadAt(c FlattenCursor[OC, IC]) E {
	return p.outer.ReadAt(c.Outer).ReadAt(c.Inner)
}

func (p *flattenMP[OC, IC, E, I]) MoveAt(c FlattenCursor[OC, IC]) E {
	return seq.Move[IC, E](p.outer.ReadAt(c.Outer), c.Inner)
}

func (p *flattenMP[OC, IC, E, I]) Equal(l FlattenCursor[OC, IC], r FlattenCursor[OC, IC]) bool {
	outer := p.outer.(seq.Multipass[OC, I])
	//
	if !outer.Equal(l.Outer, r.Outer) {
		return false
	} else if outer.IsLast(l.Outer) {
		return true
	}
	//
	return multipass[IC, E](p.outer.ReadAt(l.Outer)).Equal(l.Inner, r.Inner)
}

// Dec mirrors satisfy, but walks backwards: from the end, it steps back into
// the last outer element; then, whilst positioned at the start of an inner
// sequence, it moves to the end of the preceding one; finally, it steps back
// within the inner sequence reached.
func (p *flattenMP[OC, IC, E, I]) Dec(c FlattenCursor[OC, IC]) FlattenCursor[OC, IC] {
	var (
		outer  = p.outer.(seq.Bidirectional[OC, I])
		oc, ic = c.Outer, c.Inner
	)
	//
	if outer.IsLast(oc) {
		oc = outer.Dec(oc)
		ic = bounded[IC, E](outer.ReadAt(oc)).Last()
	}
	//
	for {
		inner := bidirectional[IC, E](outer.ReadAt(oc))
		//
		if !inner.Equal(ic, inner.First()) {
			return FlattenCursor[OC, IC]{oc, inner.Dec(ic)}
		}
		//
		oc = outer.Dec(oc)
		ic = bounded[IC, E](outer.ReadAt(oc)).Last()
	}
}

func (p *flattenMP[OC, IC, E, I]) Last() FlattenCursor[OC, IC] {
	var end IC
	//
	return FlattenCursor[OC, IC]{p.outer.(seq.Bounded[OC, I]).Last(), end}
}

func (p *flattenMP[OC, IC, E, I]) Infinite() {}

// satisfy moves forwards from a given position until positioned on a readable
// element, or at the end.  Empty inner sequences are thus skipped.
func (p *flattenMP[OC, IC, E, I]) satisfy(oc OC, ic IC) FlattenCursor[OC, IC] {
	if !p.outer.ReadAt(oc).IsLast(ic) {
		return FlattenCursor[OC, IC]{oc, ic}
	}
	//
	for oc = p.outer.Inc(oc); !p.outer.IsLast(oc); oc = p.outer.Inc(oc) {
		inner := p.outer.ReadAt(oc)
		//
		if ic = inner.First(); !inner.IsLast(ic) {
			return FlattenCursor[OC, IC]{oc, ic}
		}
	}
	//
	var end IC
	//
	return FlattenCursor[OC, IC]{oc, end}
}

// ============================================================================
// Helpers
// ============================================================================

func multipass[C, E any](s seq.Sequence[C, E]) seq.Multipass[C, E] {
	if mp, ok := s.(seq.Multipass[C, E]); ok {
		return mp
	}
	//
	util.Unrecoverable("inner sequence is not multipass")
	//
	return nil
}

func bidirectional[C, E any](s seq.Sequence[C, E]) seq.Bidirectional[C, E] {
	if bd, ok := s.(seq.Bidirectional[C, E]); ok {
		return bd
	}
	//
	util.Unrecoverable("inner sequence is not bidirectional")
	//
	return nil
}

func bounded[C, E any](s seq.Sequence[C, E]) seq.Bounded[C, E] {
	if b, ok := s.(seq.Bounded[C, E]); ok {
		return b
	}
	//
	util.Unrecoverable("inner sequence is not bounded")
	//
	return nil
}
