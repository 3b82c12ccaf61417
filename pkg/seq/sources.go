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

import (
	"iter"

	"github.com/consensys/go-flux/pkg/util"
	"github.com/consensys/go-flux/pkg/util/math"
	"golang.org/x/exp/constraints"
)

// Empty returns a sequence with no elements.
func Empty[T any]() *Slice[T] {
	return &Slice[T]{nil}
}

// Single returns a sequence with exactly one element.
func Single[T any](item T) *Slice[T] {
	return &Slice[T]{[]T{item}}
}

// ============================================================================
// Ranges
// ============================================================================

// IntRange is a random access sequence over the integers in a half-open
// interval [from, to).  Cursors are the integers themselves.
type IntRange[T constraints.Integer] struct {
	from T
	to   T
}

// Range constructs a sequence over the integers from (inclusive) up to to
// (exclusive).  If to is below from, the range is empty.
func Range[T constraints.Integer](from T, to T) *IntRange[T] {
	return &IntRange[T]{from, max(from, to)}
}

// First implementation for Sequence interface.
func (p *IntRange[T]) First() T {
	return p.from
}

// IsLast implementation for Sequence interface.
func (p *IntRange[T]) IsLast(c T) bool {
	return c == p.to
}

// Inc implementation for Sequence interface.
func (p *IntRange[T]) Inc(c T) T {
	if BoundsChecking() && c >= p.to {
		util.Unrecoverable("cannot increment past end of range")
	}
	//
	return c + 1
}

// ReadAt implementation for Sequence interface.
func (p *IntRange[T]) ReadAt(c T) T {
	if BoundsChecking() && (c < p.from || c >= p.to) {
		util.Unrecoverable("cursor %v out of range [%v,%v)", c, p.from, p.to)
	}
	//
	return c
}

// Equal implementation for Multipass interface.
func (p *IntRange[T]) Equal(l T, r T) bool {
	return l == r
}

// Dec implementation for Bidirectional interface.
func (p *IntRange[T]) Dec(c T) T {
	if BoundsChecking() && c <= p.from {
		util.Unrecoverable("cannot decrement before start of range")
	}
	//
	return c - 1
}

// IncBy implementation for RandomAccess interface.
func (p *IntRange[T]) IncBy(c T, n int) T {
	if BoundsChecking() && (n < -p.Distance(p.from, c) || n > p.Distance(c, p.to)) {
		util.Unrecoverable("cannot offset cursor %v by %d in range [%v,%v)", c, n, p.from, p.to)
	}
	//
	return math.CheckedOffset(c, n)
}

// Distance implementation for RandomAccess interface.
func (p *IntRange[T]) Distance(from T, to T) int {
	return int(int64(to) - int64(from))
}

// Last implementation for Bounded interface.
func (p *IntRange[T]) Last() T {
	return p.to
}

// Size implementation for Sized interface.
func (p *IntRange[T]) Size() int {
	return p.Distance(p.from, p.to)
}

// Unbounded is an infinite random access sequence over the integers from some
// starting point upwards.  Overflowing the underlying integer type raises an
// unrecoverable error.
type Unbounded[T constraints.Integer] struct {
	from T
}

// Iota constructs an infinite sequence of consecutive integers starting from a
// given value.
func Iota[T constraints.Integer](from T) *Unbounded[T] {
	return &Unbounded[T]{from}
}

// First implementation for Sequence interface.
func (p *Unbounded[T]) First() T {
	return p.from
}

// IsLast implementation for Sequence interface.
func (p *Unbounded[T]) IsLast(T) bool {
	return false
}

// Inc implementation for Sequence interface.
func (p *Unbounded[T]) Inc(c T) T {
	return math.CheckedAdd(c, 1)
}

// ReadAt implementation for Sequence interface.
func (p *Unbounded[T]) ReadAt(c T) T {
	return c
}

// Equal implementation for Multipass interface.
func (p *Unbounded[T]) Equal(l T, r T) bool {
	return l == r
}

// Dec implementation for Bidirectional interface.
func (p *Unbounded[T]) Dec(c T) T {
	if BoundsChecking() && c <= p.from {
		util.Unrecoverable("cannot decrement before start of sequence")
	}
	//
	return c - 1
}

// IncBy implementation for RandomAccess interface.
func (p *Unbounded[T]) IncBy(c T, n int) T {
	next := math.CheckedOffset(c, n)
	//
	if BoundsChecking() && next < p.from {
		util.Unrecoverable("cannot offset cursor %v by %d before start of sequence", c, n)
	}
	//
	return next
}

// Distance implementation for RandomAccess interface.
func (p *Unbounded[T]) Distance(from T, to T) int {
	return int(int64(to) - int64(from))
}

// Infinite implementation for Infinite interface.
func (p *Unbounded[T]) Infinite() {}

// ============================================================================
// Repetition
// ============================================================================

// Repetition is a random access sequence which repeats a single value, either
// a fixed number of times or forever.
type Repetition[T any] struct {
	item T
	// number of repetitions, or negative for unlimited.
	count int
}

// Repeat constructs an infinite sequence of a given value.
func Repeat[T any](item T) Sequence[int, T] {
	var r = &Repetition[T]{item, -1}
	//
	return &infiniteRepetition[T]{r}
}

// RepeatN constructs a sequence of a given value repeated n times.
func RepeatN[T any](item T, n int) *Repetition[T] {
	if n < 0 {
		util.Unrecoverable("negative repetition count %d", n)
	}
	//
	return &Repetition[T]{item, n}
}

// First implementation for Sequence interface.
func (p *Repetition[T]) First() int {
	return 0
}

// IsLast implementation for Sequence interface.
func (p *Repetition[T]) IsLast(c int) bool {
	return c == p.count
}

// Inc implementation for Sequence interface.
func (p *Repetition[T]) Inc(c int) int {
	return math.CheckedAdd(c, 1)
}

// ReadAt implementation for Sequence interface.
func (p *Repetition[T]) ReadAt(c int) T {
	if BoundsChecking() && (c < 0 || (p.count >= 0 && c >= p.count)) {
		util.Unrecoverable("cursor %d out of bounds (count %d)", c, p.count)
	}
	//
	return p.item
}

// Equal implementation for Multipass interface.
func (p *Repetition[T]) Equal(l int, r int) bool {
	return l == r
}

// Dec implementation for Bidirectional interface.
func (p *Repetition[T]) Dec(c int) int {
	if BoundsChecking() && c <= 0 {
		util.Unrecoverable("cannot decrement first cursor")
	}
	//
	return c - 1
}

// IncBy implementation for RandomAccess interface.
func (p *Repetition[T]) IncBy(c int, n int) int {
	return math.CheckedAdd(c, n)
}

// Distance implementation for RandomAccess interface.
func (p *Repetition[T]) Distance(from int, to int) int {
	return to - from
}

// Last implementation for Bounded interface.
func (p *Repetition[T]) Last() int {
	return p.count
}

// Size implementation for Sized interface.
func (p *Repetition[T]) Size() int {
	return p.count
}

// infiniteRepetition hides the bounds of a repetition, which are meaningless
// when it is unlimited.
type infiniteRepetition[T any] struct {
	r *Repetition[T]
}

func (p *infiniteRepetition[T]) First() int { return 0 }
func (p *infiniteRepetition[T]) IsLast(int) bool { return false }
func (p *infiniteRepetition[T]) Inc(c int) int { return p.r.Inc(c) }
func (p *infiniteRepetition[T]) ReadAt(c int) T { return p.r.ReadAt(c) }
func (p *infiniteRepetition[T]) Equal(l int, r int) bool { return l == r }
func (p *infiniteRepetition[T]) Dec(c int) int { return p.r.Dec(c) }
func (p *infiniteRepetition[T]) IncBy(c int, n int) int { return p.r.IncBy(c, n) }
func (p *infiniteRepetition[T]) Distance(from, to int) int { return to - from }
func (p *infiniteRepetition[T]) Infinite() {}

// ============================================================================
// Single pass sources
// ============================================================================

// Pulled is a single-pass sequence whose elements are obtained on demand from a
// function.  Its cursor simply counts the elements consumed so far, and is only
// meaningful for the most recent position.
type Pulled[T any] struct {
	next    func() (T, bool)
	stop    func()
	started bool
	current util.Option[T]
	count   int
}

// FromIter constructs a single-pass sequence over the values of a Go iterator.
// The iterator is stopped once exhausted, or when Close is called.
func FromIter[T any](seq iter.Seq[T]) *Pulled[T] {
	next, stop := iter.Pull(seq)
	//
	return &Pulled[T]{next: next, stop: stop}
}

// Generate constructs a single-pass sequence from a generator function, which
// returns false when there are no more values.
func Generate[T any](fn func() (T, bool)) *Pulled[T] {
	return &Pulled[T]{next: fn, stop: func() {}}
}

// First implementation for Sequence interface.
func (p *Pulled[T]) First() int {
	if !p.started {
		p.started = true
		p.pull()
	}
	//
	return p.count
}

// IsLast implementation for Sequence interface.
func (p *Pulled[T]) IsLast(int) bool {
	return p.current.IsEmpty()
}

// Inc implementation for Sequence interface.
func (p *Pulled[T]) Inc(c int) int {
	if c != p.count {
		util.Unrecoverable("stale cursor %d for single-pass sequence (at %d)", c, p.count)
	}
	//
	p.pull()
	p.count++
	//
	return p.count
}

// ReadAt implementation for Sequence interface.
func (p *Pulled[T]) ReadAt(c int) T {
	if c != p.count {
		util.Unrecoverable("stale cursor %d for single-pass sequence (at %d)", c, p.count)
	}
	//
	return p.current.Unwrap()
}

// Close releases the underlying iterator, after which the sequence is
// exhausted.
func (p *Pulled[T]) Close() {
	p.started = true
	p.current = util.None[T]()
	p.stop()
}

func (p *Pulled[T]) pull() {
	if v, ok := p.next(); ok {
		p.current = util.Some(v)
	} else {
		p.Close()
	}
}
