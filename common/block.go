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

import (
	"fmt"
	"time"
)

// BlockStatus classifies how far a block has settled on the canonical chain.
type BlockStatus uint8

const (
	// BlockStatusBootstrap marks blocks replayed from a snapshot rather than
	// fetched live from upstream.
	BlockStatusBootstrap BlockStatus = iota
	// BlockStatusVolatile marks a block within the rollback window.
	BlockStatusVolatile
	// BlockStatusImmutable marks a block older than the rollback window.
	BlockStatusImmutable
	// BlockStatusRolledBack marks a rollback notification; Number is the new
	// chain tip after the rollback, not a newly observed block.
	BlockStatusRolledBack
)

func (s BlockStatus) String() string {
	switch s {
	case BlockStatusBootstrap:
		return "bootstrap"
	case BlockStatusVolatile:
		return "volatile"
	case BlockStatusImmutable:
		return "immutable"
	case BlockStatusRolledBack:
		return "rolled_back"
	default:
		return fmt.Sprintf("BlockStatus(%d)", uint8(s))
	}
}

// Era identifies a Cardano ledger era.
type Era uint8

const (
	EraByron Era = iota
	EraShelley
	EraAllegra
	EraMary
	EraAlonzo
	EraBabbage
	EraConway
)

func (e Era) String() string {
	switch e {
	case EraByron:
		return "byron"
	case EraShelley:
		return "shelley"
	case EraAllegra:
		return "allegra"
	case EraMary:
		return "mary"
	case EraAlonzo:
		return "alonzo"
	case EraBabbage:
		return "babbage"
	case EraConway:
		return "conway"
	default:
		return fmt.Sprintf("Era(%d)", uint8(e))
	}
}

// BlockInfo uniquely identifies a block on the chain and is attached to
// every Cardano-family bus message so downstream modules can order, index,
// and roll back their own derived state.
type BlockInfo struct {
	Status    BlockStatus
	Slot      uint64
	Number    uint64
	Hash      Hash32
	Epoch     uint64
	EpochSlot uint64
	NewEpoch  bool
	Era       Era
	Timestamp time.Time
}

// Sequence is a monotone per-topic counter forming a singly-linked chain so
// subscribers can detect gaps in delivery.
type Sequence struct {
	Number   uint64
	Previous *uint64
}

// Next returns the Sequence that immediately follows s on the same topic.
func (s Sequence) Next() Sequence {
	prev := s.Number
	return Sequence{Number: s.Number + 1, Previous: &prev}
}
