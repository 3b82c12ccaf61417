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

// FlattenWithCursor is a position within a sequence flattened with a pattern,
// consisting of a position in the outer sequence and a position either in the
// pattern or within the inner sequence found there.  A pattern position at
// outer position i denotes the copy of the pattern which precedes the ith
// inner sequence.
type FlattenWithCursor[OC, PC, IC any] struct {
	Outer OC
	Inner util.Union[PC, IC]
}

// FlattenWith presents the elements of each inner sequence of an outer
// sequence of sequences, with the elements of a given pattern interleaved
// between consecutive inner sequences.  There is no pattern before the first
// or after the last inner sequence.  Empty inner sequences are not collapsed,
// so they produce adjacent copies of the pattern.  Flattening with an empty
// pattern is equivalent to Flatten.
//
// The pattern is traversed once for every gap, and must therefore be
// multipass.  Capabilities otherwise follow Flatten, except that bidirectional
// traversal additionally requires the pattern to be bidirectional and bounded.
func FlattenWith[OC, IC, PC, E any, I seq.Sequence[IC, E]](outer seq.Sequence[OC, I],
	pattern seq.Multipass[PC, E]) seq.Sequence[FlattenWithCursor[OC, PC, IC], E] {
	//
	var (
		oc = seq.CapabilitiesOf(outer)
		ic = innerCapabilities[IC, E, I]()
		pc = seq.CapabilitiesOf[PC, E](pattern)
	)
	//
	if oc.Category == seq.SinglePass || ic.Category == seq.SinglePass {
		caps := seq.Capabilities{Category: seq.SinglePass, Infinite: oc.Infinite}
		return seq.Narrow[FlattenWithCursor[OC, PC, IC], E](&flattenWithSP[OC, IC, PC, E, I]{outer: outer,
			pattern: pattern}, caps)
	}
	//
	caps := seq.Capabilities{Category: seq.MultipassCategory, Bounded: oc.Bounded, Infinite: oc.Infinite}
	//
	if oc.Category >= seq.BidirectionalCategory && ic.Category >= seq.BidirectionalCategory && ic.Bounded &&
		pc.Category >= seq.BidirectionalCategory && pc.Bounded {
		caps.Category = seq.BidirectionalCategory
	}
	//
	return seq.Narrow[FlattenWithCursor[OC, PC, IC], E](&flattenWithMP[OC, IC, PC, E, I]{outer, pattern}, caps)
}

// FlattenWithValue flattens an outer sequence of sequences, with a single value
// between consecutive inner sequences.
func FlattenWithValue[OC, IC, E any, I seq.Sequence[IC, E]](outer seq.Sequence[OC, I],
	value E) seq.Sequence[FlattenWithCursor[OC, int, IC], E] {
	return FlattenWith[OC, IC, int, E, I](outer, seq.Single(value))
}

// ============================================================================
// Single-pass
// ============================================================================

// flattenWithSP holds the inner sequence currently being traversed.  The next
// inner sequence is read from the outer sequence before the pattern preceding
// it is traversed, since otherwise it is unknown whether a pattern is needed.
type flattenWithSP[OC, IC, PC, E any, I seq.Sequence[IC, E]] struct {
	outer   seq.Sequence[OC, I]
	pattern seq.Multipass[PC, E]
	inner   util.Option[I]
}

func (p *flattenWithSP[OC, IC, PC, E, I]) First() FlattenWithCursor[OC, PC, IC] {
	oc := p.outer.First()
	//
	if p.outer.IsLast(oc) {
		p.inner = util.None[I]()
		return p.end(oc)
	}
	//
	inner := p.outer.ReadAt(oc)
	p.inner = util.Some(inner)
	//
	return p.satisfy(oc, util.Union2[PC](inner.First()))
}

func (p *flattenWithSP[OC, IC, PC, E, I]) IsLast(c FlattenWithCursor[OC, PC, IC]) bool {
	return p.outer.IsLast(c.Outer)
}

func (p *flattenWithSP[OC, IC, PC, E, I]) Inc(c FlattenWithCursor[OC, PC, IC]) FlattenWithCursor[OC, PC, IC] {
	if c.Inner.HasFirst() {
		return p.satisfy(c.Outer, util.Union1[PC, IC](p.pattern.Inc(c.Inner.First())))
	}
	//
	inner := p.inner.Unwrap()
	//
	return p.satisfy(c.Outer, util.Union2[PC](inner.Inc(c.Inner.Second())))
}

func (p *flattenWithSP[OC, IC, PC, E, I]) ReadAt(c FlattenWithCursor[OC, PC, IC]) E {
	if c.Inner.HasFirst() {
		return p.pattern.ReadAt(c.Inner.First())
	}
	//
	return p.inner.Unwrap().ReadAt(c.Inner.Second())
}

func (p *flattenWithSP[OC, IC, PC, E, I]) Infinite() {}

func (p *flattenWithSP[OC, IC, PC, E, I]) Iterate() seq.Context[E] {
	return &flattenWithContext[PC, IC, E, I]{outer: seq.Iterate(p.outer), pattern: p.pattern}
}

// satisfy moves forwards from a given position until positioned on a readable
// element, or at the end.  On exhausting an inner sequence, the next is read
// and the pattern entered; on exhausting the pattern, the inner sequence is
// entered.
func (p *flattenWithSP[OC, IC, PC, E, I]) satisfy(oc OC,
	u util.Union[PC, IC]) FlattenWithCursor[OC, PC, IC] {
	for {
		if u.HasFirst() {
			if !p.pattern.IsLast(u.First()) {
				return FlattenWithCursor[OC, PC, IC]{oc, u}
			}
			//
			u = util.Union2[PC](p.inner.Unwrap().First())
		} else if !p.inner.Unwrap().IsLast(u.Second()) {
			return FlattenWithCursor[OC, PC, IC]{oc, u}
		} else if oc = p.outer.Inc(oc); p.outer.IsLast(oc) {
			p.inner = util.None[I]()
			return p.end(oc)
		} else {
			p.inner = util.Some(p.outer.ReadAt(oc))
			u = util.Union1[PC, IC](p.pattern.First())
		}
	}
}

func (p *flattenWithSP[OC, IC, PC, E, I]) end(oc OC) FlattenWithCursor[OC, PC, IC] {
	var ic IC
	//
	return FlattenWithCursor[OC, PC, IC]{oc, util.Union2[PC](ic)}
}

// flattenWithContext drives internal iteration, alternating between the
// current inner sequence and the pattern.
type flattenWithContext[PC, IC, E any, I seq.Sequence[IC, E]] struct {
	outer   seq.Context[I]
	pattern seq.Multipass[PC, E]
	// current is the iteration over the current inner sequence, whilst next
	// holds that of the following inner sequence when iterating the pattern.
	current util.Option[seq.Context[E]]
	next    util.Option[seq.Context[E]]
	// patternCtx is the iteration over the pattern, when in pattern mode
	patternCtx util.Option[seq.Context[E]]
	started    bool
}

func (p *flattenWithContext[PC, IC, E, I]) RunWhile(pred func(E) bool) seq.Result {
	if !p.started {
		p.started = true
		//
		if inner, ok := seq.Pull(p.outer); ok {
			p.current = util.Some(seq.Iterate[IC, E](inner))
		}
	}
	//
	for {
		if p.patternCtx.HasValue() {
			if p.patternCtx.Unwrap().RunWhile(pred) == seq.Incomplete {
				return seq.Incomplete
			}
			// Switch back into inner mode
			p.patternCtx, p.current, p.next = util.None[seq.Context[E]](), p.next, util.None[seq.Context[E]]()
		}
		//
		if p.current.IsEmpty() {
			return seq.Complete
		} else if p.current.Unwrap().RunWhile(pred) == seq.Incomplete {
			return seq.Incomplete
		}
		// Pattern is only needed if there is another inner sequence
		p.current = util.None[seq.Context[E]]()
		//
		if inner, ok := seq.Pull(p.outer); ok {
			p.next = util.Some(seq.Iterate[IC, E](inner))
			p.patternCtx = util.Some(seq.Iterate[PC, E](p.pattern))
		}
	}
}

// ============================================================================
// Multipass
// ============================================================================

type flattenWithMP[OC, IC, PC, E any, I seq.Sequence[IC, E]] struct {
	outer   seq.Sequence[OC, I]
	pattern seq.Multipass[PC, E]
}

func (p *flattenWithMP[OC, IC, PC, E, I]) First() FlattenWithCursor[OC, PC, IC] {
	oc := p.outer.First()
	//
	if p.outer.IsLast(oc) {
		return p.end(oc)
	}
	//
	return p.satisfy(oc, util.Union2[PC](p.outer.ReadAt(oc).First()))
}

func (p *flattenWithMP[OC, IC, PC, E, I]) IsLast(c FlattenWithCursor[OC, PC, IC]) bool {
	return p.outer.IsLast(c.Outer)
}

func (p *flattenWithMP[OC, IC, PC, E, I]) Inc(c FlattenWithCursor[OC, PC, IC]) FlattenWithCursor[OC, PC, IC] {
	if c.Inner.HasFirst() {
		return p.satisfy(c.Outer, util.Union1[PC, IC](p.pattern.Inc(c.Inner.First())))
	}
	//
	inner := p.outer.ReadAt(c.Outer)
	//
	return p.satisfy(c.Outer, util.Union2[PC](inner.Inc(c.Inner.Second())))
}

func (p *flattenWithMP[OC, IC, PC, E, I]) ReadAt(c FlattenWithCursor[OC, PC, IC]) E {
	if c.Inner.HasFirst() {
		return p.pattern.ReadAt(c.Inner.First())
	}
	//
	return p.outer.ReadAt(c.Outer).ReadAt(c.Inner.Second())
}

func (p *flattenWithMP[OC, IC, PC, E, I]) Equal(l FlattenWithCursor[OC, PC, IC],
	r FlattenWithCursor[OC, PC, IC]) bool {
	outer := p.outer.(seq.Multipass[OC, I])
	//
	if !outer.Equal(l.Outer, r.Outer) {
		return false
	} else if outer.IsLast(l.Outer) {
		return true
	}
	//
	inner := multipass[IC, E](p.outer.ReadAt(l.Outer))
	//
	return util.EqualUnions(l.Inner, r.Inner, p.pattern.Equal, inner.Equal)
}

// Dec mirrors satisfy, but walks backwards.  From the end, it steps back into
// the last inner sequence.  Then, whilst positioned at the start of either the
// pattern or an inner sequence, it moves to the end of whichever precedes it:
// the pattern precedes every inner sequence except the first, and the previous
// inner sequence precedes the pattern.  Finally, it steps back within whichever
// was reached.
func (p *flattenWithMP[OC, IC, PC, E, I]) Dec(c FlattenWithCursor[OC, PC, IC]) FlattenWithCursor[OC, PC, IC] {
	var (
		outer   = p.outer.(seq.Bidirectional[OC, I])
		pattern = bidirectional[PC, E](p.pattern)
		oc, u   = c.Outer, c.Inner
	)
	//
	if outer.IsLast(oc) {
		oc = outer.Dec(oc)
		u = util.Union2[PC](bounded[IC, E](outer.ReadAt(oc)).Last())
	}
	//
	for {
		if u.HasFirst() {
			if pc := u.First(); !pattern.Equal(pc, pattern.First()) {
				return FlattenWithCursor[OC, PC, IC]{oc, util.Union1[PC, IC](pattern.Dec(pc))}
			}
			// Start of pattern, so move to end of previous inner
			oc = outer.Dec(oc)
			u = util.Union2[PC](bounded[IC, E](outer.ReadAt(oc)).Last())
		} else {
			inner := bidirectional[IC, E](outer.ReadAt(oc))
			//
			if ic := u.Second(); !inner.Equal(ic, inner.First()) {
				return FlattenWithCursor[OC, PC, IC]{oc, util.Union2[PC](inner.Dec(ic))}
			} else if outer.Equal(oc, outer.First()) {
				util.Unrecoverable("cannot decrement first cursor")
			}
			// Start of inner, so move to end of preceding pattern
			u = util.Union1[PC, IC](bounded[PC, E](pattern).Last())
		}
	}
}

func (p *flattenWithMP[OC, IC, PC, E, I]) Last() FlattenWithCursor[OC, PC, IC] {
	return p.end(p.outer.(seq.Bounded[OC, I]).Last())
}

func (p *flattenWithMP[OC, IC, PC, E, I]) Infinite() {}

// satisfy moves forwards from a given position until positioned on a readable
// element, or at the end.  On exhausting an inner sequence, the pattern is
// entered (unless there are no further inner sequences); on exhausting the
// pattern, the inner sequence at the same outer position is entered.
func (p *flattenWithMP[OC, IC, PC, E, I]) satisfy(oc OC, u util.Union[PC, IC]) FlattenWithCursor[OC, PC, IC] {
	for {
		if u.HasFirst() {
			if !p.pattern.IsLast(u.First()) {
				return FlattenWithCursor[OC, PC, IC]{oc, u}
			}
			//
			u = util.Union2[PC](p.outer.ReadAt(oc).First())
		} else if !p.outer.ReadAt(oc).IsLast(u.Second()) {
			return FlattenWithCursor[OC, PC, IC]{oc, u}
		} else if oc = p.outer.Inc(oc); p.outer.IsLast(oc) {
			return p.end(oc)
		} else {
			u = util.Union1[PC, IC](p.pattern.First())
		}
	}
}

func (p *flattenWithMP[OC, IC, PC, E, I]) end(oc OC) FlattenWithCursor[OC, PC, IC] {
	var ic IC
	//
	return FlattenWithCursor[OC, PC, IC]{oc, util.Union2[PC](ic)}
}
