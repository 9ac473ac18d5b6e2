// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package common holds the value types shared across every module: block
// identity, hashes, UTxO identifiers, and the message envelope carried on
// the bus.
package common

import (
	lcommon "github.com/blinklabs-io/gouroboros/ledger/common"
)

// Hash28 identifies an address, script, or pool by its Blake2b-224 digest.
type Hash28 = lcommon.Blake2b224

// Hash32 identifies a block, transaction, or datum by its Blake2b-256 digest.
type Hash32 = lcommon.Blake2b256

// NewHash28 builds a Hash28 from a raw 28-byte slice.
func NewHash28(b []byte) Hash28 {
	return lcommon.NewBlake2b224(b)
}

// NewHash32 builds a Hash32 from a raw 32-byte slice.
func NewHash32(b []byte) Hash32 {
	return lcommon.NewBlake2b256(b)
}
