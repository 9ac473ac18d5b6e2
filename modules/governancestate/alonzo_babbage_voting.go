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

package governancestate

// IsVoteTimely reports whether a pre-Conway protocol parameter update vote
// cast at slot is early enough in its epoch to count, per the PPUP rule's
// stability-window condition. Cardano mainnet's security parameter yields
// a 6/10-of-epoch voting-stability window: a vote is timely if cast more
// than 6/10 of an epoch before the epoch's end slot.
func IsVoteTimely(slot, newEpochSlot, slotsPerEpoch uint64) bool {
	window := voteStabilityWindow(slotsPerEpoch)
	return slot+window < newEpochSlot
}

// voteStabilityWindow returns 6/10 of slotsPerEpoch (259200 slots of a
// 432000-slot epoch), so only votes cast in the first 4/10 of an epoch
// are timely.
func voteStabilityWindow(slotsPerEpoch uint64) uint64 {
	return (6 * slotsPerEpoch) / 10
}
