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
	"reflect"
	"sync"

	"github.com/consensys/go-flux/pkg/util"
)

// Traits records how values of some (foreign) type T can be used as a sequence
// over cursors C and elements E.  The first four operations are required; the
// remainder are optional and, when present, determine which capabilities the
// adapted sequence offers.  Specifically, Equal gives multipass; Equal and Dec
// give bidirectional; and Equal, Dec, IncBy and Distance give random access.
type Traits[T any, C any, E any] struct {
	First  func(T) C
	IsLast func(T, C) bool
	Inc    func(T, C) C
	ReadAt func(T, C) E
	// Optional operations
	MoveAt   func(T, C) E
	Equal    func(C, C) bool
	Dec      func(T, C) C
	IncBy    func(T, C, int) C
	Distance func(T, C, C) int
	Last     func(T) C
	Size     func(T) int
}

// Capabilities returns the capabilities which sequences adapted via these
// traits will offer.
func (p *Traits[T, C, E]) Capabilities() Capabilities {
	var caps Capabilities
	//
	switch {
	case p.Equal == nil:
		caps.Category = SinglePass
	case p.Dec == nil:
		caps.Category = MultipassCategory
	case p.IncBy == nil || p.Distance == nil:
		caps.Category = BidirectionalCategory
	default:
		caps.Category = RandomAccessCategory
	}
	//
	caps.Bounded = p.Last != nil
	caps.Sized = p.Size != nil
	//
	return caps
}

// Adapt presents a given value as a sequence, using the operations recorded in
// a given set of traits.  The required operations must be present.
func Adapt[T, C, E any](value T, traits Traits[T, C, E]) Sequence[C, E] {
	if traits.First == nil || traits.IsLast == nil || traits.Inc == nil || traits.ReadAt == nil {
		util.Unrecoverable("incomplete traits for %s", reflect.TypeFor[T]())
	}
	//
	return Narrow[C, E](&adapted[T, C, E]{value, &traits}, traits.Capabilities())
}

// adapted implements every operation, and relies on Narrow to hide those which
// its traits don't actually provide.
type adapted[T, C, E any] struct {
	value  T
	traits *Traits[T, C, E]
}

func (p *adapted[T, C, E]) First() C {
	return p.traits.First(p.value)
}

func (p *adapted[T, C, E]) IsLast(c C) bool {
	return p.traits.IsLast(p.value, c)
}

func (p *adapted[T, C, E]) Inc(c C) C {
	return p.traits.Inc(p.value, c)
}

func (p *adapted[T, C, E]) ReadAt(c C) E {
	return p.traits.ReadAt(p.value, c)
}

func (p *adapted[T, C, E]) MoveAt(c C) E {
	if p.traits.MoveAt != nil {
		return p.traits.MoveAt(p.value, c)
	}
	//
	return p.traits.ReadAt(p.value, c)
}

func (p *adapted[T, C, E]) Equal(l C, r C) bool {
	return p.traits.Equal(l, r)
}

func (p *adapted[T, C, E]) Dec(c C) C {
	return p.traits.Dec(p.value, c)
}

func (p *adapted[T, C, E]) IncBy(c C, n int) C {
	return p.traits.IncBy(p.value, c, n)
}

func (p *adapted[T, C, E]) Distance(from C, to C) int {
	return p.traits.Distance(p.value, from, to)
}

func (p *adapted[T, C, E]) Last() C {
	return p.traits.Last(p.value)
}

func (p *adapted[T, C, E]) Size() int {
	return p.traits.Size(p.value)
}

// ============================================================================
// Registry
// ============================================================================

// registration holds the traits of one registered type, with their type
// parameters erased.
type registration struct {
	traits any
	adapt  func(any) any
}

var (
	registryMutex sync.RWMutex
	registry      = make(map[reflect.Type]registration)
)

// Register records the traits for a given type T in the process-wide registry,
// replacing any previous registration for T.  Thereafter, From will accept
// values of type T.
func Register[T, C, E any](traits Traits[T, C, E]) {
	reg := registration{traits, func(v any) any { return Adapt(v.(T), traits) }}
	//
	registryMutex.Lock()
	defer registryMutex.Unlock()
	//
	registry[reflect.TypeFor[T]()] = reg
}

// Unregister removes any traits registered for a given type.
func Unregister[T any]() {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	//
	delete(registry, reflect.TypeFor[T]())
}

// Lookup returns the traits registered for a given type, if any.
func Lookup[T, C, E any]() util.Option[Traits[T, C, E]] {
	registryMutex.RLock()
	reg, ok := registry[reflect.TypeFor[T]()]
	registryMutex.RUnlock()
	//
	if ok {
		if traits, ok := reg.traits.(Traits[T, C, E]); ok {
			return util.Some(traits)
		}
	}
	//
	return util.None[Traits[T, C, E]]()
}

// From obtains a sequence view of an arbitrary value.  Values which are
// sequences already are returned as is, slices are wrapped as slice sequences
// and, otherwise, the value's type must have been registered with matching
// cursor and element types.
func From[C, E any](value any) Sequence[C, E] {
	switch v := value.(type) {
	case Sequence[C, E]:
		return v
	case []E:
		if s, ok := any(FromSlice(v)).(Sequence[C, E]); ok {
			return s
		}
	}
	//
	registryMutex.RLock()
	reg, ok := registry[reflect.TypeOf(value)]
	registryMutex.RUnlock()
	//
	if ok {
		if s, ok := reg.adapt(value).(Sequence[C, E]); ok {
			return s
		}
		//
		util.Unrecoverable("type %T registered with different cursor or element type", value)
	}
	//
	util.Unrecoverable("type %T is not a sequence", value)
	//
	return nil
}
