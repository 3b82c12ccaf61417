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

// Sequence is the minimal (single-pass) sequence protocol.  A sequence hands
// out cursors, which are opaque position tokens that are only meaningful when
// used with the sequence which produced them.  Cursors carry no ownership of
// the sequence's data.
type Sequence[C any, E any] interface {
	// First returns a cursor positioned at the first element (or at the end,
	// if the sequence is empty).
	First() C
	// IsLast determines whether a given cursor is positioned at the end of
	// this sequence (i.e. one past the last element).
	IsLast(C) bool
	// Inc returns the cursor following a given cursor.  The given cursor must
	// not be at the end.
	Inc(C) C
	// ReadAt returns the element denoted by a given cursor.  The cursor must
	// not be at the end.
	ReadAt(C) E
}

// Multipass is a sequence whose cursors can be copied and compared, and where
// reading the same cursor twice yields the same element.
type Multipass[C any, E any] interface {
	Sequence[C, E]
	// Equal determines whether two cursors denote the same position.
	Equal(C, C) bool
}

// Bidirectional is a multipass sequence whose cursors can step backwards.
type Bidirectional[C any, E any] interface {
	Multipass[C, E]
	// Dec returns the cursor preceding a given cursor, which must not be
	// positioned at the first element.
	Dec(C) C
}

// RandomAccess is a bidirectional sequence whose cursors can be moved by
// arbitrary offsets, and whose distances can be measured, in constant time.
type RandomAccess[C any, E any] interface {
	Bidirectional[C, E]
	// IncBy returns the cursor a given (possibly negative) offset away from a
	// given cursor.
	IncBy(C, int) C
	// Distance returns the number of steps required to get from one cursor to
	// another.
	Distance(from C, to C) int
}

// Bounded is a sequence whose end cursor is obtainable without traversal.
type Bounded[C any, E any] interface {
	Sequence[C, E]
	// Last returns the end cursor (i.e. one past the last element).
	Last() C
}

// Sized is a sequence whose number of elements is known without traversal.
type Sized[C any, E any] interface {
	Sequence[C, E]
	// Size returns the number of elements in this sequence.
	Size() int
}

// Infinite is implemented by sequences which never terminate.
type Infinite interface {
	// Infinite is a marker method, which is never called.
	Infinite()
}

// Contiguous is a random-access sequence over integer cursors whose elements
// are held in contiguous storage.
type Contiguous[E any] interface {
	RandomAccess[int, E]
	Bounded[int, E]
	// Data returns the underlying storage.  Modifying the returned slice
	// modifies the sequence.
	Data() []E
}

// Mover is implemented by sequences which can give up an element when it is
// being moved elsewhere (e.g. by a sorting algorithm).  Sequences which don't
// implement this are moved from by reading.
type Mover[C any, E any] interface {
	MoveAt(C) E
}

// Writable is implemented by sequences whose elements can be overwritten.
type Writable[C any, E any] interface {
	WriteAt(C, E)
}

// Swapper is implemented by sequences which can exchange two elements more
// efficiently than by moving them.
type Swapper[C any] interface {
	SwapAt(C, C)
}

// Iterable is implemented by sequences which provide their own internal
// iteration (e.g. because it is faster than stepping cursors, or because the
// sequence is single-pass and can only be driven once).
type Iterable[E any] interface {
	Iterate() Context[E]
}

// ForEachWhiler is implemented by sequences which provide their own cursor
// returning internal iteration.
type ForEachWhiler[C any, E any] interface {
	ForEachWhile(func(E) bool) C
}
