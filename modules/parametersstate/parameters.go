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

// Package parametersstate owns the live protocol parameter set: the
// genesis defaults per era, and the pending-update queue that
// ParameterChange governance actions and pre-Conway PPUP certificates
// enqueue to take effect at the next epoch boundary.
package parametersstate

import (
	"github.com/acropolis-cardano/acropolis/common"
)

// Params is the flat, era-independent protocol parameter set every other
// module reads from. It deliberately does not alias gouroboros's
// era-specific ConwayProtocolParameters/BabbageProtocolParameters/etc.
// structs, since a single parameter (e.g. TreasuryCut) needs one stable
// name across every era this package serves; the era-tagged structs this
// repository's ledger package builds (NewConwayProtocolParams and friends)
// remain the CBOR-shaped values handed to gouroboros call sites that need
// them verbatim.
type Params struct {
	MinFeeA              uint64
	MinFeeB              uint64
	MaxBlockBodySize     uint64
	MaxTxSize            uint64
	KeyDeposit           uint64
	PoolDeposit          uint64
	DesiredPoolCount     uint64
	PoolPledgeInfluence  float64 // a0
	MonetaryExpansionRho float64
	TreasuryCut          float64 // tau, spec.md's resolved Open Question: a live parameter
	Decentralisation     float64
	ActiveSlotsCoeffNum  uint64
	ActiveSlotsCoeffDen  uint64
	EpochLength          uint64
	SlotsPerKESPeriod    uint64
	MaxKESEvolutions     uint64
	CoinsPerUTxOByte     uint64
}

// MainnetGenesisParams are Cardano mainnet's shelley-genesis.json /
// alonzo-genesis.json values as of the Conway era, used as the default
// bootstrap parameter set absent an explicit snapshot or config override.
func MainnetGenesisParams() Params {
	return Params{
		MinFeeA:              44,
		MinFeeB:              155381,
		MaxBlockBodySize:     90112,
		MaxTxSize:            16384,
		KeyDeposit:           2000000,
		PoolDeposit:          500000000,
		DesiredPoolCount:     500,
		PoolPledgeInfluence:  0.3,
		MonetaryExpansionRho: 0.003,
		TreasuryCut:          0.2,
		Decentralisation:     0,
		ActiveSlotsCoeffNum:  1,
		ActiveSlotsCoeffDen:  20,
		EpochLength:          432000,
		SlotsPerKESPeriod:    129600,
		MaxKESEvolutions:     62,
		CoinsPerUTxOByte:     4310,
	}
}

// PendingUpdate is a single field-level protocol parameter change enqueued
// by either a pre-Conway PPUP certificate or a Conway ParameterChange
// governance action, to be merged into Current at the next epoch
// boundary.
type PendingUpdate struct {
	Epoch  uint64
	Apply  func(*Params)
}

// State holds the currently active parameters and the queue of updates
// not yet applied.
type State struct {
	Current Params
	pending []PendingUpdate
}

// New creates a State bootstrapped from genesis.
func New(genesis Params) *State {
	return &State{Current: genesis}
}

// Clone returns a snapshot of s safe to retain in a statehistory.History
// ring: Current is a value type, and pending is copied into a new slice
// because OnEpochBoundary filters the queue in place over its backing
// array.
func (s *State) Clone() State {
	pending := make([]PendingUpdate, len(s.pending))
	copy(pending, s.pending)
	return State{Current: s.Current, pending: pending}
}

// Enqueue schedules apply to run against Current at the first
// OnEpochBoundary call whose epoch is >= forEpoch.
func (s *State) Enqueue(forEpoch uint64, apply func(*Params)) {
	s.pending = append(s.pending, PendingUpdate{Epoch: forEpoch, Apply: apply})
}

// OnEpochBoundary applies every pending update scheduled for epoch or
// earlier, in the order they were enqueued, and drops them from the
// queue.
func (s *State) OnEpochBoundary(epoch uint64) {
	remaining := s.pending[:0]
	for _, u := range s.pending {
		if u.Epoch <= epoch {
			u.Apply(&s.Current)
		} else {
			remaining = append(remaining, u)
		}
	}
	s.pending = remaining
}

// ToEpochParameters projects the subset of Params the rewards engine
// needs, tagged with the fees accumulated over the epoch that just ended.
func (s *State) ToEpochParameters(lastEpochFees uint64) common.EpochParametersView {
	return common.EpochParametersView{
		LastEpochFees:        lastEpochFees,
		ActiveSlotsCoeffNum:  s.Current.ActiveSlotsCoeffNum,
		ActiveSlotsCoeffDen:  s.Current.ActiveSlotsCoeffDen,
		EpochLength:          s.Current.EpochLength,
		Decentralisation:     s.Current.Decentralisation,
		PoolPledgeInfluence:  s.Current.PoolPledgeInfluence,
		MonetaryExpansionRho: s.Current.MonetaryExpansionRho,
		TreasuryCutTau:       s.Current.TreasuryCut,
	}
}
