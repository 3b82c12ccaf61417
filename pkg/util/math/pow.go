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

// PowUint64 raises a given base raised to a given power.
func PowUint64(base uint64, exp uint64) uint64 {
	result := uint64(1)
	//
	for {
		if exp&1 == 1 {
			result = CheckedMul(result, base)
		}
		// div 2
		exp >>= 1
		//
		if exp == 0 {
			break
		}
		//
		base = CheckedMul(base, base)
	}

	return result
}

// Factorial computes n! (where 0! == 1).  This raises an unrecoverable error if
// the result does not fit into 64 bits, which happens for any n > 20.
func Factorial(n uint64) uint64 {
	return FallingFactorial(n, n)
}

// FallingFactorial computes n!/(n-k)!, which is the number of distinct
// arrangements of k items chosen from n.  This is zero when k > n.  As for
// Factorial, an unrecoverable error is raised on overflow.
func FallingFactorial(n uint64, k uint64) uint64 {
	if k > n {
		return 0
	}
	//
	result := uint64(1)
	//
	for i := n - k + 1; i <= n; i++ {
		result = CheckedMul(result, i)
	}
	//
	return result
}
