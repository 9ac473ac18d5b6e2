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

// Package accountsstate owns the live stake address map and computes the
// reward pot at every epoch boundary from the mark/set/go snapshot
// triplet, deferring the actual Shelley reward-sharing arithmetic to
// gouroboros's own lcommon.CalculateRewards rather than re-deriving it.
package accountsstate

import (
	"fmt"

	lcommon "github.com/blinklabs-io/gouroboros/ledger/common"

	"github.com/acropolis-cardano/acropolis/common"
	"github.com/acropolis-cardano/acropolis/ledger"
)

// StakeAddressState is one entry of the persistent stake-address map.
type StakeAddressState struct {
	Registered        bool
	UTxOValue         uint64
	Rewards           uint64
	DelegatedSPO      *lcommon.PoolKeyHash
	RegisteredAtMark2 bool // "two_previous_reward_account_registered"
}

// Snapshot is one of the mark/set/go triplet: an immutable view of the
// stake map, pool block counts, and pots at the moment it was taken.
// Copying a Snapshot is cheap because the caller is expected to replace
// maps wholesale at epoch boundaries rather than mutate them in place,
// giving structural sharing in spirit even though this package doesn't
// reach for a dedicated persistent-map library (see DESIGN.md).
type Snapshot struct {
	Epoch           uint64
	StakeAddresses  map[lcommon.AddrKeyHash]StakeAddressState
	PoolBlockCounts map[lcommon.PoolKeyHash]uint64
	Pots            lcommon.AdaPots
}

// EpochParameters are the protocol-parameter and genesis-derived inputs
// the reward calculation needs at an epoch boundary, owned upstream by
// modules/parametersstate.
type EpochParameters = common.EpochParametersView

// State holds the three most recent snapshots (mark, set, go) and the
// running, mutable current-epoch view that BoundaryRoll promotes into a
// new mark snapshot.
type State struct {
	Mark, Set, Go *Snapshot
	Current       Snapshot
}

// New creates an empty State with an initialised current stake map.
func New() *State {
	return &State{
		Current: Snapshot{
			StakeAddresses:  make(map[lcommon.AddrKeyHash]StakeAddressState),
			PoolBlockCounts: make(map[lcommon.PoolKeyHash]uint64),
		},
	}
}

// Clone returns a point-in-time copy of s safe to retain in a
// statehistory.History ring. Mark/Set/Go are shared by pointer since
// BoundaryRoll only ever replaces them wholesale, never mutates through
// them; Current's maps are deep-copied since ApplyDelta/SetRegistered/
// SetDelegation mutate them in place.
func (s *State) Clone() State {
	return State{
		Mark: s.Mark,
		Set:  s.Set,
		Go:   s.Go,
		Current: Snapshot{
			Epoch:           s.Current.Epoch,
			StakeAddresses:  cloneStakeMap(s.Current.StakeAddresses),
			PoolBlockCounts: cloneBlockCounts(s.Current.PoolBlockCounts),
			Pots:            s.Current.Pots,
		},
	}
}

// ApplyDelta folds a single UTxO-value change into the current snapshot's
// stake address state, adding the address to the map if it wasn't already
// known; its Registered flag is left unchanged.
func (s *State) ApplyDelta(addr lcommon.AddrKeyHash, delta int64) {
	st := s.Current.StakeAddresses[addr]
	if delta >= 0 {
		st.UTxOValue += uint64(delta)
	} else {
		dec := uint64(-delta)
		if dec > st.UTxOValue {
			st.UTxOValue = 0
		} else {
			st.UTxOValue -= dec
		}
	}
	s.Current.StakeAddresses[addr] = st
}

// SetRegistered marks a stake credential's registration state, following a
// stake registration or deregistration certificate.
func (s *State) SetRegistered(addr lcommon.AddrKeyHash, registered bool) {
	st := s.Current.StakeAddresses[addr]
	st.Registered = registered
	if !registered {
		st.DelegatedSPO = nil
	}
	s.Current.StakeAddresses[addr] = st
}

// SetDelegation records a stake credential's chosen pool, following a
// stake delegation certificate.
func (s *State) SetDelegation(addr lcommon.AddrKeyHash, pool lcommon.PoolKeyHash) {
	st := s.Current.StakeAddresses[addr]
	p := pool
	st.DelegatedSPO = &p
	s.Current.StakeAddresses[addr] = st
}

// BoundaryRoll ages the snapshot triplet (mark -> set -> go, dropping the
// oldest go) and takes a new mark from the current live stake state, per
// spec's epoch-boundary step 1-2.
func (s *State) BoundaryRoll(epoch uint64) {
	newMark := &Snapshot{
		Epoch:           epoch,
		StakeAddresses:  cloneStakeMap(s.Current.StakeAddresses),
		PoolBlockCounts: cloneBlockCounts(s.Current.PoolBlockCounts),
		Pots:            s.Current.Pots,
	}
	s.Go = s.Set
	s.Set = s.Mark
	s.Mark = newMark
	s.Current.PoolBlockCounts = make(map[lcommon.PoolKeyHash]uint64)
}

func cloneStakeMap(m map[lcommon.AddrKeyHash]StakeAddressState) map[lcommon.AddrKeyHash]StakeAddressState {
	out := make(map[lcommon.AddrKeyHash]StakeAddressState, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneBlockCounts(m map[lcommon.PoolKeyHash]uint64) map[lcommon.PoolKeyHash]uint64 {
	out := make(map[lcommon.PoolKeyHash]uint64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// MonetaryExpansion computes eta and the new reserves draw for the epoch
// that just ended, per spec §4.6 step 3: eta = min(1, blocks_produced /
// (epoch_length * f * (1-d))), forced to 1 once d >= 0.8.
func MonetaryExpansion(reserves uint64, blocksProduced uint64, params EpochParameters) (eta float64, drawn uint64) {
	if params.Decentralisation >= 0.8 {
		eta = 1
	} else {
		activeSlotsCoeff := float64(params.ActiveSlotsCoeffNum) / float64(params.ActiveSlotsCoeffDen)
		denom := float64(params.EpochLength) * activeSlotsCoeff * (1 - params.Decentralisation)
		if denom <= 0 {
			eta = 1
		} else {
			eta = float64(blocksProduced) / denom
			if eta > 1 {
				eta = 1
			}
		}
	}
	drawn = uint64(float64(reserves) * eta * params.MonetaryExpansionRho)
	return eta, drawn
}

// CalculateRewards builds the gouroboros AdaPots/RewardSnapshot inputs
// from the go snapshot (a set snapshot must also exist) using this repository's own ledger
// builders (the same MockAdaPots/MockRewardSnapshot construction the
// teacher uses to build test fixtures, reused here to build the real
// reward-calculation input) and delegates the reward-sharing arithmetic
// itself to lcommon.CalculateRewards.
func (s *State) CalculateRewards(params EpochParameters) (*lcommon.RewardCalculationResult, error) {
	if s.Go == nil || s.Set == nil {
		return nil, fmt.Errorf("accountsstate: reward calculation requires a full mark/set/go snapshot triplet")
	}

	reserves := s.Go.Pots.Reserves + params.LastEpochFees
	var totalBlocks uint64
	for _, n := range s.Go.PoolBlockCounts {
		totalBlocks += n
	}
	_, drawn := MonetaryExpansion(reserves, totalBlocks, params)

	totalPot := drawn + params.LastEpochFees
	treasuryCut := uint64(float64(totalPot) * params.TreasuryCutTau)

	potsBuilder := ledger.NewAdaPotsBuilder().
		WithReserves(reserves - drawn).
		WithTreasury(s.Go.Pots.Treasury + treasuryCut).
		WithRewards(totalPot - treasuryCut)
	pots, err := potsBuilder.Build()
	if err != nil {
		return nil, fmt.Errorf("accountsstate: building AdaPots: %w", err)
	}

	var snapBuilder ledger.RewardSnapshotBuilder = ledger.NewRewardSnapshotBuilder()
	var totalActive uint64
	for pool, stake := range poolStakeFromSnapshot(s.Go) {
		totalActive += stake
		snapBuilder = snapBuilder.WithPoolStake(pool, stake)
	}
	snapBuilder = snapBuilder.WithTotalActiveStake(totalActive)
	for pool, blocks := range s.Go.PoolBlockCounts {
		snapBuilder = snapBuilder.WithPoolBlocks(pool, blocks)
	}
	snapshot, err := snapBuilder.Build()
	if err != nil {
		return nil, fmt.Errorf("accountsstate: building RewardSnapshot: %w", err)
	}

	rewardParams := lcommon.RewardParameters{
		ActiveSlotsCoeff:    float32(params.ActiveSlotsCoeffNum) / float32(params.ActiveSlotsCoeffDen),
		DecentralizationParam: float32(params.Decentralisation),
		PoolPledgeInfluence: float32(params.PoolPledgeInfluence),
		ExpansionRate:       float32(params.MonetaryExpansionRho),
		TreasuryGrowthRate:  float32(params.TreasuryCutTau),
	}

	return lcommon.CalculateRewards(*pots, *snapshot, rewardParams)
}

// poolStakeFromSnapshot sums delegator stake per pool recorded in the
// current accounts state as of the go snapshot; the stake map itself
// records total UTxO value per address, not per pool, so this walks the
// delegation assignments.
func poolStakeFromSnapshot(snap *Snapshot) map[lcommon.PoolKeyHash]uint64 {
	out := make(map[lcommon.PoolKeyHash]uint64)
	for _, st := range snap.StakeAddresses {
		if st.DelegatedSPO == nil {
			continue
		}
		out[*st.DelegatedSPO] += st.UTxOValue
	}
	return out
}
