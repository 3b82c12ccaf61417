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
package set

import (
	"cmp"
	"slices"
	"sort"

	"github.com/consensys/go-flux/pkg/seq"
	"github.com/consensys/go-flux/pkg/seq/adaptor"
	"github.com/consensys/go-flux/pkg/seq/algorithm"
	"github.com/consensys/go-flux/pkg/seq/view"
)

// SortedSet is an array of unique items held in sorted order.  Being sorted,
// the contents of a set can be fed directly into the set algebra adaptors.
type SortedSet[T cmp.Ordered] []T

// NewSortedSet returns an empty sorted set.
func NewSortedSet[T cmp.Ordered]() *SortedSet[T] {
	return &SortedSet[T]{}
}

// FromSequence constructs a sorted set from the (not necessarily sorted)
// elements of a bounded sequence.
func FromSequence[C any, T cmp.Ordered](s seq.Sequence[C, T]) *SortedSet[T] {
	items := algorithm.ToSlice(s)
	// Sort then strip duplicates
	algorithm.Sort[int, T](seq.FromSlice(items))
	items = slices.Compact(items)
	//
	return (*SortedSet[T])(&items)
}

// Contains returns true if a given element is in the set.
func (p *SortedSet[T]) Contains(element T) bool {
	data := *p
	// Find index where element either does occur, or should occur.
	i := sort.Search(len(data), func(i int) bool {
		return element <= data[i]
	})
	// Check whether item existed or not.
	return i < len(data) && data[i] == element
}

// Insert an element into this sorted set.
func (p *SortedSet[T]) Insert(element T) {
	data := *p
	// Find index where element either does occur, or should occur.
	i := sort.Search(len(data), func(i int) bool {
		return element <= data[i]
	})
	// Check whether item existed or not.
	if i >= len(data) || data[i] != element {
		*p = slices.Insert(data, i, element)
	}
}

// InsertSorted inserts all elements from a given sorted set into this set.
func (p *SortedSet[T]) InsertSorted(q *SortedSet[T]) {
	// Nothing to do when every element is already present.
	if algorithm.AllOf(q.Seq(), p.Contains) {
		return
	}
	//
	*p = algorithm.ToSlice(adaptor.Union[int, int, T](p.Seq(), q.Seq()))
}

// Len returns the number of elements in this set.
func (p *SortedSet[T]) Len() int {
	return len(*p)
}

// Seq returns a read-only view of this set as a random access sequence.
// Writes are not exposed, since they could break the ordering of the set.
func (p *SortedSet[T]) Seq() seq.Sequence[int, T] {
	return seq.Narrow[int, T](seq.FromSlice([]T(*p)), seq.Capabilities{
		Category: seq.RandomAccessCategory,
		Bounded:  true,
		Sized:    true,
	})
}

// Iter returns an iterator over the elements of this set, in order.
func (p *SortedSet[T]) Iter() view.Iterator[T] {
	return view.Over(p.Seq())
}

// Union returns the set of elements in either set.
func (p *SortedSet[T]) Union(q *SortedSet[T]) *SortedSet[T] {
	return collect(adaptor.Union[int, int, T](p.Seq(), q.Seq()))
}

// Intersect returns the set of elements in both sets.
func (p *SortedSet[T]) Intersect(q *SortedSet[T]) *SortedSet[T] {
	return collect(adaptor.Intersection[int, int, T](p.Seq(), q.Seq()))
}

// Subtract returns the set of elements in this set but not the other.
func (p *SortedSet[T]) Subtract(q *SortedSet[T]) *SortedSet[T] {
	return collect(adaptor.Difference[int, int, T](p.Seq(), q.Seq()))
}

// UnionSortedSets unions together a number of things which can be converted
// into sorted sets.
func UnionSortedSets[S any, T cmp.Ordered](elems []S, fn func(S) *SortedSet[T]) *SortedSet[T] {
	if len(elems) == 0 {
		return NewSortedSet[T]()
	}
	// Clone first set
	set := slices.Clone(*fn(elems[0]))
	//
	for i := 1; i < len(elems); i++ {
		set.InsertSorted(fn(elems[i]))
	}
	//
	return &set
}

func collect[C any, T cmp.Ordered](s seq.Sequence[C, T]) *SortedSet[T] {
	items := SortedSet[T](algorithm.ToSlice(s))
	return &items
}
