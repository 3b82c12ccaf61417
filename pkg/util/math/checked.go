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
package math

import (
	"github.com/consensys/go-flux/pkg/util"
	"golang.org/x/exp/constraints"
)

// CheckedAdd returns a + b, or raises an unrecoverable error if the result
// overflows T.
func CheckedAdd[T constraints.Integer](a, b T) T {
	r := a + b
	//
	if (b > 0 && r < a) || (b < 0 && r > a) {
		util.Unrecoverable("arithmetic overflow (%v + %v)", a, b)
	}
	//
	return r
}

// CheckedSub returns a - b, or raises an unrecoverable error if the result
// overflows (or, for unsigned types, underflows) T.
func CheckedSub[T constraints.Integer](a, b T) T {
	r := a - b
	//
	if (b > 0 && r > a) || (b < 0 && r < a) {
		util.Unrecoverable("arithmetic overflow (%v - %v)", a, b)
	}
	//
	return r
}

// CheckedMul returns a * b, or raises an unrecoverable error if the result
// overflows T.
func CheckedMul[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	//
	r := a * b
	// The second disjunct catches MinInt * -1, for which the division check
	// cannot fire.
	if r/b != a || (isSigned[T]() && b == ^T(0) && r == a) {
		util.Unrecoverable("arithmetic overflow (%v * %v)", a, b)
	}
	//
	return r
}

// CheckedDiv returns a / b, raising an unrecoverable error on division by zero
// or when the result overflows T (i.e. MinInt / -1).
func CheckedDiv[T constraints.Integer](a, b T) T {
	if b == 0 {
		util.Unrecoverable("division by zero (%v / 0)", a)
	}
	//
	r := a / b
	//
	if isSigned[T]() && b == ^T(0) && a != 0 && r == a {
		util.Unrecoverable("arithmetic overflow (%v / %v)", a, b)
	}
	//
	return r
}

// CheckedMod returns a % b, raising an unrecoverable error on division by zero.
func CheckedMod[T constraints.Integer](a, b T) T {
	if b == 0 {
		util.Unrecoverable("modulo by zero (%v %% 0)", a)
	}
	//
	return a % b
}

func isSigned[T constraints.Integer]() bool {
	return ^T(0) < 0
}

// CheckedOffset returns c + n, where the offset n may not itself be
// representable in T (e.g. a negative offset for an unsigned type, or an offset
// beyond the range of a narrow type).  An unrecoverable error is raised if the
// result overflows T.
func CheckedOffset[T constraints.Integer](c T, n int) T {
	var magnitude uint64
	//
	if n < 0 {
		magnitude = uint64(-(n + 1)) + 1
	} else {
		magnitude = uint64(n)
	}
	// Apply the offset in chunks which fit into T
	for magnitude > 0 {
		chunk := magnitude
		//
		for uint64(T(chunk)) != chunk || T(chunk) < 0 {
			chunk /= 2
		}
		//
		if n < 0 {
			c = CheckedSub(c, T(chunk))
		} else {
			c = CheckedAdd(c, T(chunk))
		}
		//
		magnitude -= chunk
	}
	//
	return c
}
