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

package parametersstate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnqueueAppliesAtOrAfterTargetEpoch(t *testing.T) {
	s := New(MainnetGenesisParams())
	s.Enqueue(5, func(p *Params) { p.TreasuryCut = 0.25 })

	s.OnEpochBoundary(4)
	require.Equal(t, 0.2, s.Current.TreasuryCut)

	s.OnEpochBoundary(5)
	require.Equal(t, 0.25, s.Current.TreasuryCut)
}

func TestEnqueueAppliesInOrder(t *testing.T) {
	s := New(MainnetGenesisParams())
	var applied []int
	s.Enqueue(1, func(p *Params) { applied = append(applied, 1) })
	s.Enqueue(1, func(p *Params) { applied = append(applied, 2) })

	s.OnEpochBoundary(1)
	require.Equal(t, []int{1, 2}, applied)
}

func TestFutureUpdateStaysPending(t *testing.T) {
	s := New(MainnetGenesisParams())
	s.Enqueue(100, func(p *Params) { p.MinFeeA = 50 })

	s.OnEpochBoundary(1)
	require.Equal(t, uint64(44), s.Current.MinFeeA)
	require.Len(t, s.pending, 1)
}

func TestToEpochParametersProjectsCurrent(t *testing.T) {
	s := New(MainnetGenesisParams())
	view := s.ToEpochParameters(12345)

	require.Equal(t, uint64(12345), view.LastEpochFees)
	require.Equal(t, s.Current.TreasuryCut, view.TreasuryCutTau)
	require.Equal(t, s.Current.EpochLength, view.EpochLength)
}
