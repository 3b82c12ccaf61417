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
	"iter"

	"github.com/consensys/go-flux/pkg/seq"
)

// Enumerator abstracts the process of iterating over a sequence of elements
// using a begin/end style protocol, for code which cannot work with cursors
// directly.
type Enumerator[T any] interface {
	// Check whether or not there are any items remaining to visit.
	HasNext() bool

	// Get the next item, and advanced the iterator.
	Next() T
}

// All returns a Go iterator over the remaining items of an enumerator.  This
// drains the enumerator.
func All[T any](e Enumerator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for e.HasNext() {
			if !yield(e.Next()) {
				return
			}
		}
	}
}

// FromEnumerator presents the remaining items of an enumerator as a
// single-pass sequence.
func FromEnumerator[T any](e Enumerator[T]) seq.Sequence[int, T] {
	return seq.Generate(func() (T, bool) {
		if e.HasNext() {
			return e.Next(), true
		}
		//
		var empty T
		//
		return empty, false
	})
}

// EnumeratePower returns an enumerator over all arrays of size n drawn from the
// given elements, where the first position varies fastest.  For example, if
// n==2 and elems contained two elements A and B, then this will return
// [[A,A],[B,A],[A,B],[B,B]].
func EnumeratePower[E any](n uint, elems []E) Enumerator[[]E] {
	if len(elems) == 0 && n > 0 {
		// Nothing to draw from
		return &powerEnumerator[E]{nil, elems}
	}
	//
	counters := make([]uint, n)
	//
	return &powerEnumerator[E]{counters, elems}
}

type powerEnumerator[E any] struct {
	counters []uint
	elements []E
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *powerEnumerator[E]) HasNext() bool {
	return p.counters != nil
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *powerEnumerator[E]) Next() []E {
	rs := make([]E, len(p.counters))
	// Copy over elements
	for i := 0; i < len(rs); i++ {
		rs[i] = p.elements[p.counters[i]]
	}
	//
	carry := true
	// Increment counters
	for i := 0; i < len(p.counters) && carry; i++ {
		if p.counters[i]+1 != uint(len(p.elements)) {
			p.counters[i]++
			carry = false
		} else {
			p.counters[i] = 0
		}
	}
	// Check whether finished
	if carry {
		p.counters = nil
	}
	//
	return rs
}
