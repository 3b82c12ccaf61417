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
package algorithm

import (
	"cmp"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-flux/pkg/seq"
	"github.com/consensys/go-flux/pkg/util"
)

// Find returns the cursor of the first element equal to a given value, or the
// end cursor if there is none.
func Find[C any, E comparable](s seq.Sequence[C, E], value E) C {
	return seq.ForEachWhile(s, func(e E) bool { return e != value })
}

// FindIf returns the cursor of the first element satisfying a given predicate,
// or the end cursor if there is none.
func FindIf[C, E any](s seq.Sequence[C, E], pred func(E) bool) C {
	return seq.ForEachWhile(s, func(e E) bool { return !pred(e) })
}

// Contains checks whether any element of a sequence equals a given value.
func Contains[C any, E comparable](s seq.Sequence[C, E], value E) bool {
	return AnyOf(s, func(e E) bool { return e == value })
}

// AllOf checks whether every element of a sequence satisfies a given
// predicate.  This holds vacuously for an empty sequence.
func AllOf[C, E any](s seq.Sequence[C, E], pred func(E) bool) bool {
	return seq.Iterate(s).RunWhile(pred) == seq.Complete
}

// AnyOf checks whether some element of a sequence satisfies a given predicate.
func AnyOf[C, E any](s seq.Sequence[C, E], pred func(E) bool) bool {
	return !NoneOf(s, pred)
}

// NoneOf checks whether no element of a sequence satisfies a given predicate.
func NoneOf[C, E any](s seq.Sequence[C, E], pred func(E) bool) bool {
	return AllOf(s, func(e E) bool { return !pred(e) })
}

// Equal checks whether two sequences hold the same elements in the same order.
func Equal[L, R any, E comparable](lhs seq.Sequence[L, E], rhs seq.Sequence[R, E]) bool {
	return EqualFunc(lhs, rhs, func(l E, r E) bool { return l == r })
}

// EqualFunc checks whether two sequences hold pairwise equivalent elements,
// according to a given equality.
func EqualFunc[L, R, E, F any](lhs seq.Sequence[L, E], rhs seq.Sequence[R, F], eq func(E, F) bool) bool {
	if n, ok := seq.SizeOf(lhs); ok {
		if m, ok := seq.SizeOf(rhs); ok && n != m {
			return false
		}
	}
	//
	l, r := lhs.First(), rhs.First()
	//
	for ; !lhs.IsLast(l) && !rhs.IsLast(r); l, r = lhs.Inc(l), rhs.Inc(r) {
		if !eq(lhs.ReadAt(l), rhs.ReadAt(r)) {
			return false
		}
	}
	//
	return lhs.IsLast(l) && rhs.IsLast(r)
}

// Compare lexicographically compares two sequences, returning -1, 0 or 1.  A
// sequence which is a proper prefix of another is smaller.
func Compare[L, R any, E cmp.Ordered](lhs seq.Sequence[L, E], rhs seq.Sequence[R, E]) int {
	return CompareFunc(lhs, rhs, cmp.Compare[E])
}

// CompareFunc lexicographically compares two sequences using a given
// comparator on elements.
func CompareFunc[L, R, E any](lhs seq.Sequence[L, E], rhs seq.Sequence[R, E], cmp func(E, E) int) int {
	l, r := lhs.First(), rhs.First()
	//
	for ; !lhs.IsLast(l) && !rhs.IsLast(r); l, r = lhs.Inc(l), rhs.Inc(r) {
		if c := cmp(lhs.ReadAt(l), rhs.ReadAt(r)); c != 0 {
			return c
		}
	}
	//
	switch {
	case !lhs.IsLast(l):
		return 1
	case !rhs.IsLast(r):
		return -1
	default:
		return 0
	}
}

// IsSorted checks whether the elements of a sequence are in non-decreasing
// order.
func IsSorted[C any, E cmp.Ordered](s seq.Sequence[C, E]) bool {
	return IsSortedFunc(s, cmp.Compare[E])
}

// IsSortedFunc checks whether the elements of a sequence are in non-decreasing
// order, according to a given comparator.
func IsSortedFunc[C, E any](s seq.Sequence[C, E], cmp func(E, E) int) bool {
	var last util.Option[E]
	//
	return AllOf(s, func(e E) bool {
		if last.HasValue() && cmp(e, last.Unwrap()) < 0 {
			return false
		}
		//
		last = util.Some(e)
		//
		return true
	})
}

// IsPermutation checks whether two sequences hold the same multiset of
// elements, regardless of order.  Elements need only be comparable for
// equality, so matching is quadratic in the worst case: each element on the
// left is matched against the first unmatched equal element on the right.
func IsPermutation[L, R any, E comparable](lhs seq.Sequence[L, E], rhs seq.Sequence[R, E]) bool {
	var (
		left  = ToSlice(lhs)
		right = ToSlice(rhs)
	)
	//
	if len(left) != len(right) {
		return false
	}
	// Skip over common prefix
	for len(left) > 0 && left[0] == right[0] {
		left, right = left[1:], right[1:]
	}
	//
	matched := bitset.New(uint(len(right)))
	//
	for _, e := range left {
		i := 0
		//
		for ; i < len(right); i++ {
			if !matched.Test(uint(i)) && right[i] == e {
				break
			}
		}
		//
		if i == len(right) {
			return false
		}
		//
		matched.Set(uint(i))
	}
	//
	return matched.All()
}
