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

package common

import "fmt"

// SecurityParameterK is the Cardano security parameter: the maximum depth at
// which a block may still be rolled back. The volatile rollback window spans
// k+1 blocks.
const SecurityParameterK = 2160

// RollbackWindow is k+1, the number of most-recent blocks the volatile tier
// of the UTxO registry and every StateHistory ring buffer retain.
const RollbackWindow = SecurityParameterK + 1

// UTxOIdentifier is the primary key of the UTxO set: a transaction hash
// together with the index of one of its outputs.
type UTxOIdentifier struct {
	TxHash      Hash32
	OutputIndex uint16
}

func (u UTxOIdentifier) String() string {
	return fmt.Sprintf("%x#%d", u.TxHash[:], u.OutputIndex)
}

// Less orders UTxOIdentifiers lexicographically by hash, then output index,
// matching the sort order transaction inputs must be normalised to.
func (u UTxOIdentifier) Less(other UTxOIdentifier) bool {
	for i := range u.TxHash {
		if u.TxHash[i] != other.TxHash[i] {
			return u.TxHash[i] < other.TxHash[i]
		}
	}
	return u.OutputIndex < other.OutputIndex
}

// TxIdentifier is a compact, run-internal reference to a transaction's
// position on chain: its block number and index within the block. It is
// cheaper to store in bulk than a 32-byte hash and is the value type of the
// UTxO registry's live membership map.
type TxIdentifier struct {
	BlockNumber uint64
	TxIndex     uint16
}

// MultiAssetValue is a multi-asset bundle: policy ID maps to asset name maps
// to quantity. Asset names are at most 32 bytes, matching the Cardano ledger
// rule enforced by the binary codec upstream of this package.
type MultiAssetValue map[Hash28]map[string]uint64

// TxOutput is the decoded, era-independent shape of a transaction output as
// stored in the UTxO registry.
type TxOutput struct {
	Identifier UTxOIdentifier
	Address    []byte
	Lovelace   uint64
	Assets     MultiAssetValue
	DatumHash  *Hash32
	Datum      []byte
	ScriptRef  []byte
}
