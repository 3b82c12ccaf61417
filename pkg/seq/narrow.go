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

// Narrow presents a given sequence with (at most) a given set of capabilities.
// The result's method set contains exactly the operations of those
// capabilities which both caps and s itself offer, so that probing it (e.g. via
// CapabilitiesOf) reports exactly what it supports.  This allows an adaptor to
// implement every operation once, and then expose only those which its
// base sequences actually support.  Infinite sequences are never bounded or
// sized.
func Narrow[C, E any](s Sequence[C, E], caps Capabilities) Sequence[C, E] {
	var (
		have  = CapabilitiesOf(s)
		bp    boundedPart[C, E]
		zp    sizedPart[C, E]
		view  narrowed[C, E]
		flags narrowFlags
	)
	// Never exceed what is actually supported.
	caps.Category = min(caps.Category, have.Category)
	caps.Bounded = caps.Bounded && have.Bounded
	caps.Sized = caps.Sized && have.Sized
	caps.Infinite = caps.Infinite && have.Infinite
	//
	switch {
	case caps.Infinite:
		flags = infiniteFlag
	case caps.Bounded && caps.Sized:
		flags = boundedSizedFlags
		bp, zp = boundedPart[C, E]{s.(Bounded[C, E])}, sizedPart[C, E]{s.(Sized[C, E])}
	case caps.Bounded:
		flags = boundedFlag
		bp = boundedPart[C, E]{s.(Bounded[C, E])}
	case caps.Sized:
		flags = sizedFlag
		zp = sizedPart[C, E]{s.(Sized[C, E])}
	}
	//
	sp := spView[C, E]{base: s}
	//
	switch caps.Category {
	case SinglePass:
		view = narrowSinglePass(sp, flags, bp, zp)
	case MultipassCategory:
		mp := mpView[C, E]{sp, s.(Multipass[C, E])}
		view = narrowMultipass(mp, flags, bp, zp)
	case BidirectionalCategory:
		bd := bdView[C, E]{mpView[C, E]{sp, s.(Multipass[C, E])}, s.(Bidirectional[C, E])}
		view = narrowBidirectional(bd, flags, bp, zp)
	default:
		bd := bdView[C, E]{mpView[C, E]{sp, s.(Multipass[C, E])}, s.(Bidirectional[C, E])}
		ra := raView[C, E]{bd, s.(RandomAccess[C, E])}
		view = narrowRandomAccess(ra, flags, bp, zp)
	}
	//
	view.setSelf(view)
	//
	return view
}

type narrowFlags uint8

const (
	noFlags narrowFlags = iota
	boundedFlag
	sizedFlag
	boundedSizedFlags
	infiniteFlag
)

type narrowed[C, E any] interface {
	Sequence[C, E]
	setSelf(Sequence[C, E])
}

func narrowSinglePass[C, E any](v spView[C, E], flags narrowFlags, b boundedPart[C, E],
	z sizedPart[C, E]) narrowed[C, E] {
	switch flags {
	case boundedFlag:
		return &spB[C, E]{v, b}
	case sizedFlag:
		return &spS[C, E]{v, z}
	case boundedSizedFlags:
		return &spBS[C, E]{v, b, z}
	case infiniteFlag:
		return &spI[C, E]{v, infinitePart{}}
	default:
		return &v
	}
}

func narrowMultipass[C, E any](v mpView[C, E], flags narrowFlags, b boundedPart[C, E],
	z sizedPart[C, E]) narrowed[C, E] {
	switch flags {
	case boundedFlag:
		return &mpB[C, E]{v, b}
	case sizedFlag:
		return &mpS[C, E]{v, z}
	case boundedSizedFlags:
		return &mpBS[C, E]{v, b, z}
	case infiniteFlag:
		return &mpI[C, E]{v, infinitePart{}}
	default:
		return &v
	}
}

func narrowBidirectional[C, E any](v bdView[C, E], flags narrowFlags, b boundedPart[C, E],
	z sizedPart[C, E]) narrowed[C, E] {
	switch flags {
	case boundedFlag:
		return &bdB[C, E]{v, b}
	case sizedFlag:
		return &bdS[C, E]{v, z}
	case boundedSizedFlags:
		return &bdBS[C, E]{v, b, z}
	case infiniteFlag:
		return &bdI[C, E]{v, infinitePart{}}
	default:
		return &v
	}
}

func narrowRandomAccess[C, E any](v raView[C, E], flags narrowFlags, b boundedPart[C, E],
	z sizedPart[C, E]) narrowed[C, E] {
	switch flags {
	case boundedFlag:
		return &raB[C, E]{v, b}
	case sizedFlag:
		return &raS[C, E]{v, z}
	case boundedSizedFlags:
		return &raBS[C, E]{v, b, z}
	case infiniteFlag:
		return &raI[C, E]{v, infinitePart{}}
	default:
		return &v
	}
}

// ============================================================================
// Views
// ============================================================================

type spView[C, E any] struct {
	base Sequence[C, E]
	// the outermost view, used for default iteration
	self Sequence[C, E]
}

func (p *spView[C, E]) setSelf(self Sequence[C, E]) {
	p.self = self
}

// First implementation for Sequence interface.
func (p *spView[C, E]) First() C {
	return p.base.First()
}

// IsLast implementation for Sequence interface.
func (p *spView[C, E]) IsLast(c C) bool {
	return p.base.IsLast(c)
}

// Inc implementation for Sequence interface.
func (p *spView[C, E]) Inc(c C) C {
	return p.base.Inc(c)
}

// ReadAt implementation for Sequence interface.
func (p *spView[C, E]) ReadAt(c C) E {
	return p.base.ReadAt(c)
}

// MoveAt forwards to the underlying sequence, which may or may not move.
func (p *spView[C, E]) MoveAt(c C) E {
	return Move(p.base, c)
}

// Iterate forwards internal iteration to the underlying sequence where it
// provides its own, since that is typically more efficient.
func (p *spView[C, E]) Iterate() Context[E] {
	if it, ok := p.base.(Iterable[E]); ok {
		return it.Iterate()
	}
	//
	return newCursorContext(p.self)
}

type mpView[C, E any] struct {
	spView[C, E]
	mp Multipass[C, E]
}

// Equal implementation for Multipass interface.
func (p *mpView[C, E]) Equal(l C, r C) bool {
	return p.mp.Equal(l, r)
}

type bdView[C, E any] struct {
	mpView[C, E]
	bd Bidirectional[C, E]
}

// Dec implementation for Bidirectional interface.
func (p *bdView[C, E]) Dec(c C) C {
	return p.bd.Dec(c)
}

type raView[C, E any] struct {
	bdView[C, E]
	ra RandomAccess[C, E]
}

// IncBy implementation for RandomAccess interface.
func (p *raView[C, E]) IncBy(c C, n int) C {
	return p.ra.IncBy(c, n)
}

// Distance implementation for RandomAccess interface.
func (p *raView[C, E]) Distance(from C, to C) int {
	return p.ra.Distance(from, to)
}

type boundedPart[C, E any] struct {
	b Bounded[C, E]
}

// Last implementation for Bounded interface.
func (p *boundedPart[C, E]) Last() C {
	return p.b.Last()
}

type sizedPart[C, E any] struct {
	z Sized[C, E]
}

// Size implementation for Sized interface.
func (p *sizedPart[C, E]) Size() int {
	return p.z.Size()
}

type infinitePart struct{}

// Infinite implementation for Infinite interface.
func (p *infinitePart) Infinite() {}

type (
	spB[C, E any] struct {
		spView[C, E]
		boundedPart[C, E]
	}
	spS[C, E any] struct {
		spView[C, E]
		sizedPart[C, E]
	}
	spBS[C, E any] struct {
		spView[C, E]
		boundedPart[C, E]
		sizedPart[C, E]
	}
	spI[C, E any] struct {
		spView[C, E]
		infinitePart
	}
	mpB[C, E any] struct {
		mpView[C, E]
		boundedPart[C, E]
	}
	mpS[C, E any] struct {
		mpView[C, E]
		sizedPart[C, E]
	}
	mpBS[C, E any] struct {
		mpView[C, E]
		boundedPart[C, E]
		sizedPart[C, E]
	}
	mpI[C, E any] struct {
		mpView[C, E]
		infinitePart
	}
	bdB[C, E any] struct {
		bdView[C, E]
		boundedPart[C, E]
	}
	bdS[C, E any] struct {
		bdView[C, E]
		sizedPart[C, E]
	}
	bdBS[C, E any] struct {
		bdView[C, E]
		boundedPart[C, E]
		sizedPart[C, E]
	}
	bdI[C, E any] struct {
		bdView[C, E]
		infinitePart
	}
	raB[C, E any] struct {
		raView[C, E]
		boundedPart[C, E]
	}
	raS[C, E any] struct {
		raView[C, E]
		sizedPart[C, E]
	}
	raBS[C, E any] struct {
		raView[C, E]
		boundedPart[C, E]
		sizedPart[C, E]
	}
	raI[C, E any] struct {
		raView[C, E]
		infinitePart
	}
)
