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

import "time"

// CardanoMessageKind discriminates the block-scoped event carried by a
// CardanoMessage. Every module that consumes block data switches on this
// enum rather than doing type assertions on an empty interface.
type CardanoMessageKind uint8

const (
	KindBlockAvailable CardanoMessageKind = iota
	KindReceivedTxs
	KindTxCertificates
	KindStakeAddressDeltas
	KindEpochActivity
	KindSPOState
	KindProtocolParams
	KindEpochNonces
	KindGovernanceProcedures
	KindGenesisComplete
	KindRollback
	// KindBlockOffered announces a block an upstream peer has available,
	// before it has been fetched, for multi-peer disambiguation.
	KindBlockOffered
	// KindBlockWanted requests a specific offered block be fetched from
	// the peer that offered it (or the preferred upstream).
	KindBlockWanted
	// KindBlockRescinded withdraws a previously offered block, typically
	// because the offering peer itself rolled back past it.
	KindBlockRescinded
	// KindSPORewards carries one pool's computed member/leader reward
	// split for the epoch just calculated.
	KindSPORewards
	// KindSPOStakeDistribution carries the active stake distribution by
	// pool used for the epoch's reward calculation.
	KindSPOStakeDistribution
	// KindDRepStakeDistribution carries the active stake distribution by
	// DRep used for governance vote tallying.
	KindDRepStakeDistribution
)

// CardanoMessage is the payload half of the dominant bus message family,
// Cardano((BlockInfo, CardanoMessage)). Exactly one of the typed fields is
// populated, selected by Kind; the others are the zero value.
type CardanoMessage struct {
	Kind CardanoMessageKind

	RawBlock           []byte
	Txs                []TxIdentifier
	Certificates       []CertificateEvent
	StakeDeltas        []StakeAddressDelta
	EpochActivity      *EpochActivityReport
	SPOState           *SPOStateUpdate
	ProtocolParamsCBOR []byte
	EpochNonce         *Hash32
	GovernanceEvents   []GovernanceEvent
	RollbackToNumber   uint64
	BlockOffer         *BlockOffer
	SPORewards         *SPORewardReport
	SPOStakeDistribution   map[Hash28]uint64
	DRepStakeDistribution  map[Hash28]uint64

	Delegations        []DelegationEvent
	StakeRegistrations []StakeRegistrationEvent
	PoolRetirements    []PoolRetirementEvent
	CommitteeAuths     []CommitteeAuthEvent
	CommitteeResigns   []CommitteeResignEvent
}

// DelegationEvent records a stake credential's delegation to a pool, from
// a stake/vote delegation certificate.
type DelegationEvent struct {
	StakeCredential Hash28
	Pool            Hash28
}

// StakeRegistrationEvent records a stake credential's registration or
// deregistration.
type StakeRegistrationEvent struct {
	StakeCredential Hash28
	Registered      bool
}

// PoolRetirementEvent records a pool's scheduled retirement epoch.
type PoolRetirementEvent struct {
	Pool  Hash28
	Epoch uint64
}

// CommitteeAuthEvent records a constitutional committee cold key
// authorizing a hot key to vote on its behalf.
type CommitteeAuthEvent struct {
	ColdKey Hash28
	HotKey  Hash28
}

// CommitteeResignEvent records a constitutional committee member
// resigning.
type CommitteeResignEvent struct {
	ColdKey Hash28
}

// BlockOffer identifies a block a specific upstream peer has available,
// for BlockOffered/BlockWanted/BlockRescinded traffic between the
// upstream fetcher's multi-peer election logic and itself.
type BlockOffer struct {
	PeerAddress string
	Number      uint64
	Slot        uint64
	Hash        Hash32
}

// SPORewardReport carries one stake pool's member and leader reward
// amounts for the epoch the reward engine just calculated.
type SPORewardReport struct {
	Epoch        uint64
	Pool         Hash28
	LeaderReward uint64
	MemberReward uint64
}

// CertificateEvent carries one decoded certificate alongside the
// transaction and position it appeared at, for modules that index
// certificates independently of full transaction replay.
type CertificateEvent struct {
	Tx       TxIdentifier
	CertType uint8
	Payload  []byte
}

// StakeAddressDelta is a single lovelace balance change against a stake
// address's UTxO-derived value, emitted by modules/txunpacker (which drives
// the UTxO registry forward) for the accounts/rewards state module to fold in.
type StakeAddressDelta struct {
	StakeAddress Hash28
	DeltaAmount  int64
}

// EpochActivityReport summarises block production for the epoch that just
// ended, keyed by pool operator hash.
type EpochActivityReport struct {
	Epoch           uint64
	BlocksByPool    map[Hash28]uint64
	TotalBlockCount uint64
}

// SPOStateUpdate carries a single stake pool's registration state as of the
// block it changed in.
type SPOStateUpdate struct {
	Operator Hash28
	Retired  bool
}

// GovernanceEvent carries one governance action proposal or vote for the
// governance state module.
type GovernanceEvent struct {
	Tx        TxIdentifier
	ActionID  *Hash32
	IsVote    bool
	Payload   []byte
}

// Message is the envelope published on and read from the bus. Topic and
// Seq are set by the bus itself; Block and Cardano are populated for the
// dominant Cardano-family message, Clock/Query/Response for the others.
type Message struct {
	Topic string
	Seq   Sequence

	Block   *BlockInfo
	Cardano *CardanoMessage

	ClockTick *time.Time

	QueryID       string
	StateQuery    any
	StateResponse any

	RESTRequest  any
	RESTResponse any
}
