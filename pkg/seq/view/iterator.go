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
package view

import (
	"fmt"

	"github.com/consensys/go-flux/pkg/seq"
	"github.com/consensys/go-flux/pkg/util"
)

// Predicate abstracts the notion of a function which identifies something.
type Predicate[T any] func(T) bool

// Iterator extends an Enumerator with various useful and reusable functions.
type Iterator[T any] interface {
	Enumerator[T]

	// Append another iterator onto the end of this iterator.  Thus, when all
	// items are visited in this iterator, iteration continues into the other.
	Append(Iterator[T]) Iterator[T]

	// Clone creates a copy of this iterator at the given cursor position.
	// Modifying the clone (i.e. by calling Next) iterator will not modify the
	// original.
	Clone() Iterator[T]

	// Collect allocates a new array containing all items of this iterator.
	// This drains the iterator.
	Collect() []T

	// Find returns the index of the first match for a given predicate, or
	// return false if no match is found.  This will mutate the iterator.
	Find(Predicate[T]) (uint, bool)

	// Count the number of items left.  Note, this does not modify the iterator.
	Count() uint

	// Get the nth item in this iterator.  This will mutate the iterator.
	Nth(uint) T
}

// Find provides a default implementation of Iterator.Find which can be used by
// other iterator implementations.
//
//nolint:revive
func Find[T any, S Enumerator[T]](iter S, predicate Predicate[T]) (uint, bool) {
	index := uint(0)

	for iter.HasNext() {
		if predicate(iter.Next()) {
			return index, true
		}

		index++
	}
	// Failed to find it
	return 0, false
}

// Nth provides a default implementation of Iterator.Nth which can be used by
// other iterator implementations.
//
//nolint:revive
func Nth[T any, S Enumerator[T]](iter S, n uint) T {
	for index := uint(0); iter.HasNext(); index++ {
		if ith := iter.Next(); index == n {
			return ith
		}
	}
	//
	// Issue!
	panic(&util.UnrecoverableError{Message: fmt.Sprintf("iterator exhausted before item %d", n)})
}

// Count provides a default implementation of Iterator.Count which can be used by
// other iterator implementations.  This drains the given enumerator.
//
//nolint:revive
func Count[T any, S Enumerator[T]](iter S) uint {
	count := uint(0)

	for iter.HasNext() {
		iter.Next()
		//
		count++
	}

	return count
}

// Collect provides a default implementation of Iterator.Collect which can be used by
// other iterator implementations.
//
//nolint:revive
func Collect[T any, S Enumerator[T]](iter S) []T {
	var items []T = make([]T, 0)
	//
	for iter.HasNext() {
		items = append(items, iter.Next())
	}
	//
	return items
}

// ===============================================================
// Cursor Iterator
// ===============================================================

// Over constructs an iterator over the elements of a sequence, which steps a
// cursor.  Cloning (and, hence, counting) requires the sequence to be
// multipass.
func Over[C, E any](s seq.Sequence[C, E]) Iterator[E] {
	return &cursorIterator[C, E]{s, s.First()}
}

type cursorIterator[C, E any] struct {
	seq    seq.Sequence[C, E]
	cursor C
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *cursorIterator[C, E]) HasNext() bool {
	return !p.seq.IsLast(p.cursor)
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *cursorIterator[C, E]) Next() E {
	next := p.seq.ReadAt(p.cursor)
	p.cursor = p.seq.Inc(p.cursor)

	return next
}

// Append another iterator onto the end of this iterator.  Thus, when all
// items are visited in this iterator, iteration continues into the other.
//
//nolint:revive
func (p *cursorIterator[C, E]) Append(iter Iterator[E]) Iterator[E] {
	return NewAppendIterator[E](p, iter)
}

// Clone creates a copy of this iterator at the given cursor position.
// Modifying the clone (i.e. by calling Next) iterator will not modify the
// original.
//
//nolint:revive
func (p *cursorIterator[C, E]) Clone() Iterator[E] {
	if _, ok := p.seq.(seq.Multipass[C, E]); !ok {
		util.Unrecoverable("cannot clone iterator over single-pass sequence")
	}
	//
	return &cursorIterator[C, E]{p.seq, p.cursor}
}

// Collect allocates a new array containing all items of this iterator.
// This drains the iterator.
//
//nolint:revive
func (p *cursorIterator[C, E]) Collect() []E {
	return Collect[E](p)
}

// Count returns the number of items left in the iterator
//
//nolint:revive
func (p *cursorIterator[C, E]) Count() uint {
	if mp, ok := p.seq.(seq.Multipass[C, E]); ok {
		return uint(seq.DistanceOf(mp, p.cursor, seq.LastOf(mp)))
	}
	//
	util.Unrecoverable("cannot count single-pass sequence without consuming it")
	//
	return 0
}

// Find returns the index of the first match for a given predicate, or
// return false if no match is found.
//
//nolint:revive
func (p *cursorIterator[C, E]) Find(predicate Predicate[E]) (uint, bool) {
	return Find[E](p, predicate)
}

// Nth returns the nth item in this iterator
//
//nolint:revive
func (p *cursorIterator[C, E]) Nth(n uint) E {
	p.cursor = seq.Next(p.seq, p.cursor, int(n))
	//
	return p.Next()
}
