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

// Package seq provides a cursor-based sequence abstraction.  A sequence hands
// out cursors (opaque position tokens) which can be stepped forwards, tested
// for the end and read through.  Beyond this minimal single-pass protocol, a
// sequence may offer further capabilities (multipass, bidirectional, random
// access, bounded, sized, infinite, contiguous) simply by implementing the
// corresponding methods.  Capabilities are detected structurally, so any type can
// become a sequence without declaring so, and types which cannot be modified
// can be brought in through the traits registry.
//
// Sequences can also be driven by internal iteration, where a Context passes
// successive elements to a callback until told to stop.  Adaptors override
// this where they can do better than stepping cursors, and single-pass
// adaptors rely on it entirely.
package seq
