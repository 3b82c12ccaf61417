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

	"github.com/consensys/go-flux/pkg/seq"
	"github.com/consensys/go-flux/pkg/util"
	"golang.org/x/exp/constraints"
)

// Number captures those element types which can be summed and multiplied.
type Number interface {
	constraints.Integer | constraints.Float
}

// Fold combines the elements of a sequence, from first to last, into an
// accumulated value starting from init.
func Fold[C, E, T any](s seq.Sequence[C, E], init T, fn func(T, E) T) T {
	acc := init
	//
	seq.Drain(seq.Iterate(s), func(e E) {
		acc = fn(acc, e)
	})
	//
	return acc
}

// FoldFirst folds a sequence using its first element as the initial value.
// Nothing is returned for an empty sequence.
func FoldFirst[C, E any](s seq.Sequence[C, E], fn func(E, E) E) util.Option[E] {
	ctx := seq.Iterate(s)
	//
	acc, ok := seq.Pull(ctx)
	if !ok {
		return util.None[E]()
	}
	//
	seq.Drain(ctx, func(e E) {
		acc = fn(acc, e)
	})
	//
	return util.Some(acc)
}

// ForEach applies a given function to every element of a sequence, in order.
func ForEach[C, E any](s seq.Sequence[C, E], fn func(E)) {
	seq.Drain(seq.Iterate(s), fn)
}

// Count returns the number of elements in a sequence, traversing it only if
// its size cannot otherwise be determined.
func Count[C, E any](s seq.Sequence[C, E]) int {
	return seq.Count(s)
}

// CountIf returns the number of elements in a sequence satisfying a given
// predicate.
func CountIf[C, E any](s seq.Sequence[C, E], pred func(E) bool) int {
	return Fold(s, 0, func(n int, e E) int {
		if pred(e) {
			return n + 1
		}
		//
		return n
	})
}

// Sum returns the sum of all elements in a sequence (or zero if it is empty).
func Sum[C any, E Number](s seq.Sequence[C, E]) E {
	return Fold(s, E(0), func(acc E, e E) E { return acc + e })
}

// Product returns the product of all elements in a sequence (or one if it is
// empty).
func Product[C any, E Number](s seq.Sequence[C, E]) E {
	return Fold(s, E(1), func(acc E, e E) E { return acc * e })
}

// Min returns the first smallest element of a sequence, or nothing if it is
// empty.
func Min[C any, E cmp.Ordered](s seq.Sequence[C, E]) util.Option[E] {
	return MinFunc(s, cmp.Compare[E])
}

// MinFunc returns the first smallest element of a sequence, according to a
// given comparator.
func MinFunc[C, E any](s seq.Sequence[C, E], cmp func(E, E) int) util.Option[E] {
	return FoldFirst(s, func(m E, e E) E {
		if cmp(e, m) < 0 {
			return e
		}
		//
		return m
	})
}

// Max returns the last largest element of a sequence, or nothing if it is
// empty.
func Max[C any, E cmp.Ordered](s seq.Sequence[C, E]) util.Option[E] {
	return MaxFunc(s, cmp.Compare[E])
}

// MaxFunc returns the last largest element of a sequence, according to a given
// comparator.
func MaxFunc[C, E any](s seq.Sequence[C, E], cmp func(E, E) int) util.Option[E] {
	return FoldFirst(s, func(m E, e E) E {
		if cmp(e, m) >= 0 {
			return e
		}
		//
		return m
	})
}

// ToSlice collects the elements of a sequence into a fresh slice.
func ToSlice[C, E any](s seq.Sequence[C, E]) []E {
	if c, ok := any(s).(seq.Contiguous[E]); ok {
		return append([]E{}, c.Data()...)
	}
	//
	var items []E
	//
	if n, ok := seq.SizeOf(s); ok {
		items = make([]E, 0, n)
	} else {
		items = []E{}
	}
	//
	seq.Drain(seq.Iterate(s), func(e E) {
		items = append(items, e)
	})
	//
	return items
}
