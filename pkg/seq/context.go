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

import "iter"

// Result reports how a run of internal iteration finished.
type Result bool

const (
	// Complete indicates every element was visited.
	Complete Result = true
	// Incomplete indicates iteration was stopped by the predicate, and
	// elements may remain.
	Incomplete Result = false
)

// Context is the state of an internal iteration over a sequence.  A context is
// single use: it can only move forwards, and elements it has handed out are
// gone.  Contexts are never copied; they are driven by repeatedly calling
// RunWhile until it reports completion.
type Context[E any] interface {
	// RunWhile passes elements to a predicate until either it returns false
	// or the elements are exhausted.  The element on which pred returns false
	// is consumed, so that a subsequent call resumes from the element after
	// it.  This returns Incomplete whenever pred returned false (even on the
	// final element), and Complete otherwise.
	RunWhile(pred func(E) bool) Result
}

// Iterate begins an internal iteration over a given sequence.  If the sequence
// provides its own internal iteration, this is used.  Otherwise, cursors are
// stepped.
func Iterate[C, E any](s Sequence[C, E]) Context[E] {
	if it, ok := s.(Iterable[E]); ok {
		return it.Iterate()
	}
	//
	return newCursorContext(s)
}

// Values returns a Go iterator over the elements of a sequence, driven by its
// internal iteration.
func Values[C, E any](s Sequence[C, E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		Iterate(s).RunWhile(yield)
	}
}

// Cursors returns a Go iterator over the cursors of a sequence, in order.
func Cursors[C, E any](s Sequence[C, E]) iter.Seq[C] {
	return func(yield func(C) bool) {
		for c := s.First(); !s.IsLast(c); c = s.Inc(c) {
			if !yield(c) {
				return
			}
		}
	}
}

// Drain runs a context to completion, passing every remaining element to a
// given function.
func Drain[E any](ctx Context[E], fn func(E)) {
	ctx.RunWhile(func(e E) bool {
		fn(e)
		return true
	})
}

// Pull takes exactly one element from a given context, or nothing if it is
// exhausted.
func Pull[E any](ctx Context[E]) (E, bool) {
	var (
		next E
		ok   bool
	)
	//
	ctx.RunWhile(func(e E) bool {
		next, ok = e, true
		return false
	})
	//
	return next, ok
}

// ============================================================================
// Cursor context
// ============================================================================

// newCursorContext constructs the default internal iteration for a sequence,
// which simply steps its cursors.  Where the sequence is bounded and
// multipass, the end is detected by comparing against the last cursor rather
// than by IsLast, since the former is typically cheaper.
func newCursorContext[C, E any](s Sequence[C, E]) Context[E] {
	if mp, ok := s.(Multipass[C, E]); ok {
		if b, ok := s.(Bounded[C, E]); ok {
			return &boundedContext[C, E]{mp, s.First(), b.Last()}
		}
	}
	//
	return &cursorContext[C, E]{s, s.First()}
}

type cursorContext[C, E any] struct {
	seq Sequence[C, E]
	cur C
}

func (p *cursorContext[C, E]) RunWhile(pred func(E) bool) Result {
	for !p.seq.IsLast(p.cur) {
		elem := p.seq.ReadAt(p.cur)
		p.cur = p.seq.Inc(p.cur)
		//
		if !pred(elem) {
			return Incomplete
		}
	}
	//
	return Complete
}

type boundedContext[C, E any] struct {
	seq  Multipass[C, E]
	cur  C
	last C
}

func (p *boundedContext[C, E]) RunWhile(pred func(E) bool) Result {
	for !p.seq.Equal(p.cur, p.last) {
		elem := p.seq.ReadAt(p.cur)
		p.cur = p.seq.Inc(p.cur)
		//
		if !pred(elem) {
			return Incomplete
		}
	}
	//
	return Complete
}
