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
package util

import "fmt"

// UnrecoverableError is raised (via panic) whenever a contract which cannot be
// checked statically is violated at runtime.  For example, reading a cursor
// which lies outside of its sequence, overflowing a checked arithmetic
// operation or unwrapping an empty option.  There is exactly one such kind of
// error, since the corrective action is always the same: fix the caller.
type UnrecoverableError struct {
	// Message describing the violation.
	Message string
}

// Error implements the error interface.
func (p *UnrecoverableError) Error() string {
	return p.Message
}

// Unrecoverable raises an unrecoverable error with the given (formatted)
// message.  This never returns.
func Unrecoverable(format string, args ...any) {
	panic(&UnrecoverableError{fmt.Sprintf(format, args...)})
}

// CatchUnrecoverable runs a given function and returns the unrecoverable error
// it raised, or nil if it completed normally.  Any other kind of panic is
// propagated unchanged.
func CatchUnrecoverable(fn func()) (err *UnrecoverableError) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*UnrecoverableError)
			if !ok {
				panic(r)
			}
			//
			err = e
		}
	}()
	//
	fn()
	//
	return nil
}
