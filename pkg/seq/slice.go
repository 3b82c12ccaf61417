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
	"github.com/consensys/go-flux/pkg/util"
)

// Slice is a contiguous sequence over the items of a Go slice, whose cursors
// are simply indices.  Cursors range over [0, n], with n denoting the end.
// Slices are writable, so they can be sorted in place.
type Slice[T any] struct {
	items []T
}

// FromSlice constructs a sequence over the items of a given slice.  The
// sequence shares the slice's storage, hence writes through one are visible in
// the other.
func FromSlice[T any](items []T) *Slice[T] {
	return &Slice[T]{items}
}

// Runes constructs a sequence over the unicode code points of a string.
func Runes(s string) *Slice[rune] {
	return &Slice[rune]{[]rune(s)}
}

// Bytes constructs a sequence over the bytes of a string.
func Bytes(s string) *Slice[byte] {
	return &Slice[byte]{[]byte(s)}
}

// First implementation for Sequence interface.
func (p *Slice[T]) First() int {
	return 0
}

// IsLast implementation for Sequence interface.
func (p *Slice[T]) IsLast(c int) bool {
	return c == len(p.items)
}

// Inc implementation for Sequence interface.
func (p *Slice[T]) Inc(c int) int {
	if BoundsChecking() && (c < 0 || c >= len(p.items)) {
		util.Unrecoverable("cannot increment cursor %d (length %d)", c, len(p.items))
	}
	//
	return c + 1
}

// ReadAt implementation for Sequence interface.
func (p *Slice[T]) ReadAt(c int) T {
	p.check(c)
	//
	return p.items[c]
}

// MoveAt implementation for Mover interface.
func (p *Slice[T]) MoveAt(c int) T {
	p.check(c)
	//
	return p.items[c]
}

// WriteAt implementation for Writable interface.
func (p *Slice[T]) WriteAt(c int, item T) {
	p.check(c)
	//
	p.items[c] = item
}

// SwapAt implementation for Swapper interface.
func (p *Slice[T]) SwapAt(a int, b int) {
	p.check(a)
	p.check(b)
	//
	p.items[a], p.items[b] = p.items[b], p.items[a]
}

// Equal implementation for Multipass interface.
func (p *Slice[T]) Equal(l int, r int) bool {
	return l == r
}

// Dec implementation for Bidirectional interface.
func (p *Slice[T]) Dec(c int) int {
	if BoundsChecking() && (c <= 0 || c > len(p.items)) {
		util.Unrecoverable("cannot decrement cursor %d (length %d)", c, len(p.items))
	}
	//
	return c - 1
}

// IncBy implementation for RandomAccess interface.
func (p *Slice[T]) IncBy(c int, n int) int {
	if next := c + n; BoundsChecking() && (next < 0 || next > len(p.items)) {
		util.Unrecoverable("cannot offset cursor %d by %d (length %d)", c, n, len(p.items))
	}
	//
	return c + n
}

// Distance implementation for RandomAccess interface.
func (p *Slice[T]) Distance(from int, to int) int {
	return to - from
}

// Last implementation for Bounded interface.
func (p *Slice[T]) Last() int {
	return len(p.items)
}

// Size implementation for Sized interface.
func (p *Slice[T]) Size() int {
	return len(p.items)
}

// Data implementation for Contiguous interface.
func (p *Slice[T]) Data() []T {
	return p.items
}

// ForEachWhile implementation for ForEachWhiler interface.
func (p *Slice[T]) ForEachWhile(pred func(T) bool) int {
	for i, item := range p.items {
		if !pred(item) {
			return i
		}
	}
	//
	return len(p.items)
}

// Iterate implementation for Iterable interface.
func (p *Slice[T]) Iterate() Context[T] {
	return &sliceContext[T]{p.items}
}

func (p *Slice[T]) check(c int) {
	if BoundsChecking() && (c < 0 || c >= len(p.items)) {
		util.Unrecoverable("cursor %d out of bounds (length %d)", c, len(p.items))
	}
}

type sliceContext[T any] struct {
	items []T
}

func (p *sliceContext[T]) RunWhile(pred func(T) bool) Result {
	for len(p.items) > 0 {
		item := p.items[0]
		p.items = p.items[1:]
		//
		if !pred(item) {
			return Incomplete
		}
	}
	//
	return Complete
}
