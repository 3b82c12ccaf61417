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
	"fmt"
	"strings"
)

// Category identifies the traversal capability of a sequence.  Categories are
// totally ordered, with each including all of the operations of those below
// it.
type Category uint8

const (
	// SinglePass sequences can be traversed once, forwards.
	SinglePass Category = iota
	// MultipassCategory sequences have copyable, comparable cursors.
	MultipassCategory
	// BidirectionalCategory sequences can additionally step backwards.
	BidirectionalCategory
	// RandomAccessCategory sequences can additionally jump in constant time.
	RandomAccessCategory
)

func (c Category) String() string {
	switch c {
	case SinglePass:
		return "single-pass"
	case MultipassCategory:
		return "multipass"
	case BidirectionalCategory:
		return "bidirectional"
	case RandomAccessCategory:
		return "random-access"
	default:
		return fmt.Sprintf("category(%d)", uint8(c))
	}
}

// Capabilities summarises what a given sequence supports: its traversal
// category plus a number of orthogonal flags.
type Capabilities struct {
	Category   Category
	Bounded    bool
	Sized      bool
	Infinite   bool
	Contiguous bool
}

// CapabilitiesOf determines the capabilities of a given sequence by probing
// which of the optional operations it provides.
func CapabilitiesOf[C, E any](s Sequence[C, E]) Capabilities {
	var caps Capabilities
	//
	switch s.(type) {
	case RandomAccess[C, E]:
		caps.Category = RandomAccessCategory
	case Bidirectional[C, E]:
		caps.Category = BidirectionalCategory
	case Multipass[C, E]:
		caps.Category = MultipassCategory
	default:
		caps.Category = SinglePass
	}
	//
	_, caps.Bounded = s.(Bounded[C, E])
	_, caps.Sized = s.(Sized[C, E])
	_, caps.Infinite = s.(Infinite)
	_, caps.Contiguous = any(s).(Contiguous[E])
	//
	return caps
}

// Meet returns the greatest set of capabilities included in both p and q.
// This is what an adaptor over two sequences can offer at most.
func (p Capabilities) Meet(q Capabilities) Capabilities {
	return Capabilities{
		Category:   min(p.Category, q.Category),
		Bounded:    p.Bounded && q.Bounded,
		Sized:      p.Sized && q.Sized,
		Infinite:   p.Infinite && q.Infinite,
		Contiguous: p.Contiguous && q.Contiguous,
	}
}

// Restrict lowers the category to (at most) a given category.  Contiguity is
// lost unless random access is retained.
func (p Capabilities) Restrict(c Category) Capabilities {
	p.Category = min(p.Category, c)
	p.Contiguous = p.Contiguous && p.Category == RandomAccessCategory
	//
	return p
}

// Includes checks whether every capability of q is also offered by p.
func (p Capabilities) Includes(q Capabilities) bool {
	return p.Category >= q.Category &&
		(p.Bounded || !q.Bounded) &&
		(p.Sized || !q.Sized) &&
		(p.Infinite || !q.Infinite) &&
		(p.Contiguous || !q.Contiguous)
}

func (p Capabilities) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Category.String())
	//
	for _, f := range []struct {
		set  bool
		name string
	}{{p.Bounded, "bounded"}, {p.Sized, "sized"}, {p.Infinite, "infinite"}, {p.Contiguous, "contiguous"}} {
		if f.set {
			builder.WriteString("+")
			builder.WriteString(f.name)
		}
	}
	//
	return builder.String()
}

// AsMultipass recovers the multipass capability of a sequence, if it has it.
func AsMultipass[C, E any](s Sequence[C, E]) (Multipass[C, E], bool) {
	r, ok := s.(Multipass[C, E])
	return r, ok
}

// AsBidirectional recovers the bidirectional capability of a sequence, if it
// has it.
func AsBidirectional[C, E any](s Sequence[C, E]) (Bidirectional[C, E], bool) {
	r, ok := s.(Bidirectional[C, E])
	return r, ok
}

// AsRandomAccess recovers the random access capability of a sequence, if it has
// it.
func AsRandomAccess[C, E any](s Sequence[C, E]) (RandomAccess[C, E], bool) {
	r, ok := s.(RandomAccess[C, E])
	return r, ok
}

// AsBounded recovers the bounded capability of a sequence, if it has it.
func AsBounded[C, E any](s Sequence[C, E]) (Bounded[C, E], bool) {
	r, ok := s.(Bounded[C, E])
	return r, ok
}

// AsSized recovers the sized capability of a sequence, if it has it.
func AsSized[C, E any](s Sequence[C, E]) (Sized[C, E], bool) {
	r, ok := s.(Sized[C, E])
	return r, ok
}

// IsInfinite checks whether a given sequence is known never to terminate.
func IsInfinite(s any) bool {
	_, ok := s.(Infinite)
	return ok
}
