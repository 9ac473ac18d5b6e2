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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsVoteTimely(t *testing.T) {
	const slotsPerEpoch = 432000
	const newEpochSlot = 432000

	require.True(t, IsVoteTimely(0, newEpochSlot, slotsPerEpoch), "a vote at the very start of the epoch must be timely")
	require.False(t, IsVoteTimely(300000, newEpochSlot, slotsPerEpoch), "a vote cast within the last 4/10 of the epoch must not be timely")
	require.True(t, IsVoteTimely(100000, newEpochSlot, slotsPerEpoch), "a vote cast in the first 4/10 of the epoch must be timely")
}
