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

import "github.com/consensys/go-flux/pkg/util"

// Read returns the element at a given cursor.
func Read[C, E any](s Sequence[C, E], c C) E {
	return s.ReadAt(c)
}

// Move returns the element at a given cursor, where the caller intends to
// overwrite that position afterwards.  Sequences implementing Mover may hand
// over the element rather than copy it; otherwise, this is just a read.
func Move[C, E any](s Sequence[C, E], c C) E {
	if m, ok := s.(Mover[C, E]); ok {
		return m.MoveAt(c)
	}
	//
	return s.ReadAt(c)
}

// Swap exchanges the elements at two cursors of a writable sequence.
func Swap[C, E any](s Sequence[C, E], a C, b C) {
	switch t := s.(type) {
	case Swapper[C]:
		t.SwapAt(a, b)
	case Writable[C, E]:
		tmp := Move(s, a)
		t.WriteAt(a, Move(s, b))
		t.WriteAt(b, tmp)
	default:
		util.Unrecoverable("cannot swap elements of read-only sequence")
	}
}

// ForEachWhile passes successive elements of a sequence to a predicate until
// it returns false, or the sequence is exhausted.  This returns the cursor at
// which iteration stopped: either the cursor whose element failed the
// predicate, or the end cursor.  Iteration can therefore be resumed from the
// returned cursor.
func ForEachWhile[C, E any](s Sequence[C, E], pred func(E) bool) C {
	if f, ok := s.(ForEachWhiler[C, E]); ok {
		return f.ForEachWhile(pred)
	}
	// Prefer comparing against a known last cursor.
	if mp, ok := s.(Multipass[C, E]); ok {
		if b, ok := s.(Bounded[C, E]); ok {
			last := b.Last()
			c := s.First()
			//
			for ; !mp.Equal(c, last); c = s.Inc(c) {
				if !pred(s.ReadAt(c)) {
					break
				}
			}
			//
			return c
		}
	}
	//
	c := s.First()
	//
	for ; !s.IsLast(c); c = s.Inc(c) {
		if !pred(s.ReadAt(c)) {
			break
		}
	}
	//
	return c
}

// Size returns the number of elements in a sized sequence.
func Size[C, E any](s Sized[C, E]) int {
	return s.Size()
}

// SizeOf returns the number of elements of a sequence, provided this can be
// determined without traversal.  That is, when the sequence is either sized,
// or both random access and bounded.
func SizeOf[C, E any](s Sequence[C, E]) (int, bool) {
	if z, ok := s.(Sized[C, E]); ok {
		return z.Size(), true
	} else if ra, ok := s.(RandomAccess[C, E]); ok {
		if b, ok := s.(Bounded[C, E]); ok {
			return ra.Distance(s.First(), b.Last()), true
		}
	}
	//
	return 0, false
}

// Count returns the number of elements in a (finite) sequence, traversing it
// if necessary.  For a single-pass sequence this consumes it.
func Count[C, E any](s Sequence[C, E]) int {
	if n, ok := SizeOf(s); ok {
		return n
	}
	//
	n := 0
	//
	Drain(Iterate(s), func(E) { n++ })
	//
	return n
}

// LastOf returns the end cursor of a multipass sequence.  For bounded sequences
// this is immediate, otherwise the sequence is traversed.
func LastOf[C, E any](s Multipass[C, E]) C {
	if b, ok := s.(Bounded[C, E]); ok {
		return b.Last()
	}
	//
	c := s.First()
	//
	for !s.IsLast(c) {
		c = s.Inc(c)
	}
	//
	return c
}

// DistanceOf returns the number of steps from one cursor to another.  For
// random access sequences this is immediate, otherwise this steps from "from"
// until reaching "to" (which must therefore not come before it).
func DistanceOf[C, E any](s Multipass[C, E], from C, to C) int {
	if ra, ok := s.(RandomAccess[C, E]); ok {
		return ra.Distance(from, to)
	}
	//
	n := 0
	//
	for ; !s.Equal(from, to); from = s.Inc(from) {
		if s.IsLast(from) {
			util.Unrecoverable("cursor not reachable")
		}
		//
		n++
	}
	//
	return n
}

// Next returns the cursor n steps after a given cursor.  For random access
// sequences this is immediate, otherwise the cursor is stepped n times.
func Next[C, E any](s Sequence[C, E], c C, n int) C {
	if ra, ok := s.(RandomAccess[C, E]); ok {
		return ra.IncBy(c, n)
	} else if n < 0 {
		return Prev(s, c, -n)
	}
	//
	for ; n > 0; n-- {
		c = s.Inc(c)
	}
	//
	return c
}

// Prev returns the cursor n steps before a given cursor.  This requires the
// sequence be bidirectional.
func Prev[C, E any](s Sequence[C, E], c C, n int) C {
	switch t := s.(type) {
	case RandomAccess[C, E]:
		return t.IncBy(c, -n)
	case Bidirectional[C, E]:
		for ; n > 0; n-- {
			c = t.Dec(c)
		}
		//
		return c
	default:
		util.Unrecoverable("cannot step backwards over %s sequence", CapabilitiesOf(s).Category)
		return c
	}
}

// IsEmpty checks whether a sequence has no elements.
func IsEmpty[C, E any](s Sequence[C, E]) bool {
	return s.IsLast(s.First())
}

// Front returns the first element of a sequence, if there is one.
func Front[C, E any](s Sequence[C, E]) util.Option[E] {
	if c := s.First(); !s.IsLast(c) {
		return util.Some(s.ReadAt(c))
	}
	//
	return util.None[E]()
}

// Back returns the last element of a bidirectional sequence, if there is one.
// Unbounded sequences are traversed to find their end.
func Back[C, E any](s Bidirectional[C, E]) util.Option[E] {
	first, last := s.First(), LastOf[C, E](s)
	//
	if s.Equal(first, last) {
		return util.None[E]()
	}
	//
	return util.Some(s.ReadAt(s.Dec(last)))
}

// ReadOr returns the element at a given cursor, or a default if the cursor is at
// the end.
func ReadOr[C, E any](s Sequence[C, E], c C, def E) E {
	if s.IsLast(c) {
		return def
	}
	//
	return s.ReadAt(c)
}
