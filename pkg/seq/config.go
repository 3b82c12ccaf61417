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

import "sync/atomic"

var uncheckedBounds atomic.Bool

// SetBoundsChecking enables or disables validation of index cursors against the
// live length of the underlying storage.  When enabled (the default), an
// invalid cursor raises an unrecoverable error describing the access.  When
// disabled, only Go's own runtime checks apply.
func SetBoundsChecking(enabled bool) {
	uncheckedBounds.Store(!enabled)
}

// BoundsChecking reports whether index cursors are currently validated.
func BoundsChecking() bool {
	return !uncheckedBounds.Load()
}
