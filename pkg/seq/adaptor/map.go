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
package adaptor

import "github.com/consensys/go-flux/pkg/seq"

// Map presents the elements of a sequence transformed by a given function.
// The function is applied every time an element is read, so should be cheap
// and free from side effects.  The result has the same capabilities as its
// base, except that it is never contiguous.
func Map[C, E, F any](s seq.Sequence[C, E], fn func(E) F) seq.Sequence[C, F] {
	caps := seq.CapabilitiesOf(s)
	caps.Contiguous = false
	//
	return seq.Narrow[C, F](&mapped[C, E, F]{s, fn}, caps)
}

type mapped[C, E, F any] struct {
	base seq.Sequence[C, E]
	fn   func(E) F
}

func (p *mapped[C, E, F]) First() C {
	return p.base.First()
}

func (p *mapped[C, E, F]) IsLast(c C) bool {
	return p.base.IsLast(c)
}

func (p *mapped[C, E, F]) Inc(c C) C {
	return p.base.Inc(c)
}

func (p *mapped[C, E, F]) ReadAt(c C) F {
	return p.fn(p.base.ReadAt(c))
}

func (p *mapped[C, E, F]) MoveAt(c C) F {
	return p.fn(seq.Move(p.base, c))
}

func (p *mapped[C, E, F]) Equal(l C, r C) bool {
	return p.base.(seq.Multipass[C, E]).Equal(l, r)
}

func (p *mapped[C, E, F]) Dec(c C) C {
	return p.base.(seq.Bidirectional[C, E]).Dec(c)
}

func (p *mapped[C, E, F]) IncBy(c C, n int) C {
	return p.base.(seq.RandomAccess[C, E]).IncBy(c, n)
}

func (p *mapped[C, E, F]) Distance(from C, to C) int {
	return p.base.(seq.RandomAccess[C, E]).Distance(from, to)
}

func (p *mapped[C, E, F]) Last() C {
	return p.base.(seq.Bounded[C, E]).Last()
}

func (p *mapped[C, E, F]) Size() int {
	return p.base.(seq.Sized[C, E]).Size()
}

func (p *mapped[C, E, F]) Infinite() {}

// Iterate maps the base's own internal iteration, where it has one.
func (p *mapped[C, E, F]) Iterate() seq.Context[F] {
	return &mapContext[E, F]{seq.Iterate(p.base), p.fn}
}

type mapContext[E, F any] struct {
	base seq.Context[E]
	fn   func(E) F
}

func (p *mapContext[E, F]) RunWhile(pred func(F) bool) seq.Result {
	return p.base.RunWhile(func(e E) bool { return pred(p.fn(e)) })
}
