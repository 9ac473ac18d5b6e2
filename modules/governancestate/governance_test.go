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

	lcommon "github.com/blinklabs-io/gouroboros/ledger/common"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeHotKeyRegistersMember(t *testing.T) {
	s := New()
	cold := lcommon.NewBlake2b224([]byte("cold-key-0000000000000000000"))
	hot := lcommon.NewBlake2b224([]byte("hot-key-00000000000000000000"))

	s.AuthorizeHotKey(cold, hot)

	member, ok := s.CommitteeMembers[cold]
	require.True(t, ok)
	require.NotNil(t, member.HotKey)
	require.Equal(t, hot, *member.HotKey)
	require.Equal(t, cold, s.HotKeyToCold[hot])
}

func TestResignedMemberDoesNotCountTowardThreshold(t *testing.T) {
	s := New()
	cold := lcommon.NewBlake2b224([]byte("cold-key-0000000000000000000"))
	hot := lcommon.NewBlake2b224([]byte("hot-key-00000000000000000000"))
	s.AuthorizeHotKey(cold, hot)
	s.CommitteeMembers[cold].ExpiryEpoch = 100

	require.True(t, s.ActiveCommitteeThresholdMet(1, 2, 3))

	s.ResignCommitteeMember(cold)
	require.False(t, s.ActiveCommitteeThresholdMet(1, 2, 3))
}

func TestEnactUpdatesRoot(t *testing.T) {
	s := New()
	s.AddProposal("tx#0", nil, []byte("payload"))
	s.Ratify("tx#0", 210)
	s.Enact("tx#0", "constitution")

	require.Equal(t, "tx#0", s.Roots["constitution"])
	require.True(t, s.Proposals["tx#0"].Enacted)
}

func TestOnEpochBoundaryDropsExpiredMembers(t *testing.T) {
	s := New()
	cold := lcommon.NewBlake2b224([]byte("cold-key-0000000000000000000"))
	hot := lcommon.NewBlake2b224([]byte("hot-key-00000000000000000000"))
	s.AuthorizeHotKey(cold, hot)
	s.CommitteeMembers[cold].ExpiryEpoch = 10

	s.OnEpochBoundary(11)

	_, ok := s.CommitteeMembers[cold]
	require.False(t, ok)
}
