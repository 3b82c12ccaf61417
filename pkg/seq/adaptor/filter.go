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

// Filter presents only those elements of a sequence which satisfy a given
// predicate.  Since locating the nth element requires traversal, the result is
// at most bidirectional and is never sized.  It remains bounded if the base
// is.
func Filter[C, E any](s seq.Sequence[C, E], pred func(E) bool) seq.Sequence[C, E] {
	caps := seq.CapabilitiesOf(s).Restrict(seq.BidirectionalCategory)
	caps.Sized = false
	//
	return seq.Narrow[C, E](&filtered[C, E]{s, pred}, caps)
}

type filtered[C, E any] struct {
	base seq.Sequence[C, E]
	pred func(E) bool
}

func (p *filtered[C, E]) First() C {
	return p.skip(p.base.First())
}

func (p *filtered[C, E]) IsLast(c C) bool {
	return p.base.IsLast(c)
}

func (p *filtered[C, E]) Inc(c C) C {
	return p.skip(p.base.Inc(c))
}

func (p *filtered[C, E]) ReadAt(c C) E {
	return p.base.ReadAt(c)
}

func (p *filtered[C, E]) MoveAt(c C) E {
	return seq.Move(p.base, c)
}

func (p *filtered[C, E]) Equal(l C, r C) bool {
	return p.base.(seq.Multipass[C, E]).Equal(l, r)
}

func (p *filtered[C, E]) Dec(c C) C {
	bd := p.base.(seq.Bidirectional[C, E])
	//
	for c = bd.Dec(c); !p.pred(bd.ReadAt(c)); c = bd.Dec(c) {
	}
	//
	return c
}

func (p *filtered[C, E]) Last() C {
	return p.base.(seq.Bounded[C, E]).Last()
}

func (p *filtered[C, E]) Infinite() {}

func (p *filtered[C, E]) Iterate() seq.Context[E] {
	return &filterContext[E]{seq.Iterate(p.base), p.pred}
}

// skip advances a cursor until it reaches an element satisfying the predicate,
// or the end.
func (p *filtered[C, E]) skip(c C) C {
	for !p.base.IsLast(c) && !p.pred(p.base.ReadAt(c)) {
		c = p.base.Inc(c)
	}
	//
	return c
}

type filterContext[E any] struct {
	base seq.Context[E]
	pred func(E) bool
}

func (p *filterContext[E]) RunWhile(pred func(E) bool) seq.Result {
	return p.base.RunWhile(func(e E) bool {
		return !p.pred(e) || pred(e)
	})
}
