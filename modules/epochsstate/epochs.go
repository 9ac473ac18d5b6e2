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

// Package epochsstate tracks epoch/slot arithmetic and the rolling
// nonce accumulator, and is the module responsible for recognising an
// epoch boundary and fanning the EpochActivity/EpochNonces messages out
// to the rest of the pipeline.
package epochsstate

import (
	"context"

	"golang.org/x/crypto/blake2b"

	"github.com/acropolis-cardano/acropolis/bus"
	"github.com/acropolis-cardano/acropolis/common"
)

// Epoch tracking topic names. Every boundary-driven module subscribes to
// one or both of these rather than re-deriving epoch/slot arithmetic
// itself.
const (
	TopicEpochActivity = "cardano.epoch.activity"
	TopicEpochNonce    = "cardano.epoch.nonce"
)

// Nonce accumulates the rolling epoch nonce the way Praos does: every
// block's VRF nonce output is folded in via Blake2b-256(prev || vrf_output),
// and the accumulator is fixed (the "candidate" nonce becomes the epoch
// nonce) a stability window before the epoch boundary.
type Nonce struct {
	Candidate common.Hash32
	Evolving  common.Hash32
}

// State tracks the current epoch, the slot it started at, and the nonce
// accumulator for the epoch now in progress.
type State struct {
	Epoch          uint64
	EpochStartSlot uint64
	SlotsPerEpoch  uint64
	Nonce          Nonce

	BlocksByPool    map[common.Hash28]uint64
	TotalBlockCount uint64
}

// New creates a State for the given fixed-length Shelley-era epoch size.
func New(slotsPerEpoch uint64) *State {
	return &State{
		SlotsPerEpoch:   slotsPerEpoch,
		BlocksByPool:    make(map[common.Hash28]uint64),
	}
}

// EpochOf returns which epoch a given absolute slot falls in, relative to
// the epoch currently tracked by s.
func (s *State) EpochOf(slot uint64) uint64 {
	if slot < s.EpochStartSlot {
		return s.Epoch
	}
	return s.Epoch + (slot-s.EpochStartSlot)/s.SlotsPerEpoch
}

// EpochSlotOf returns the slot's offset within its epoch.
func (s *State) EpochSlotOf(slot uint64) uint64 {
	if slot < s.EpochStartSlot {
		return 0
	}
	return (slot - s.EpochStartSlot) % s.SlotsPerEpoch
}

// AccumulateNonce folds a block's VRF nonce output into the evolving
// accumulator, per Praos: eta_evolving' = Blake2b256(eta_evolving ||
// vrfOutput).
func (s *State) AccumulateNonce(vrfOutput []byte) {
	buf := make([]byte, 0, 32+len(vrfOutput))
	buf = append(buf, s.Nonce.Evolving[:]...)
	buf = append(buf, vrfOutput...)
	sum := blake2b.Sum256(buf)
	s.Nonce.Evolving = common.NewHash32(sum[:])
}

// StabiliseNonce freezes the candidate nonce for the upcoming epoch; it
// must be called once the chain has passed the stability window (3.4k/f
// slots before the boundary) for the epoch currently accumulating.
func (s *State) StabiliseNonce() {
	s.Nonce.Candidate = s.Nonce.Evolving
}

// Clone returns a point-in-time copy of s safe to retain in a
// statehistory.History ring; BlocksByPool is deep-copied since it is
// mutated in place by RecordBlock.
func (s *State) Clone() State {
	blocks := make(map[common.Hash28]uint64, len(s.BlocksByPool))
	for k, v := range s.BlocksByPool {
		blocks[k] = v
	}
	clone := *s
	clone.BlocksByPool = blocks
	return clone
}

// RecordBlock tallies one block produced by operator for the epoch in
// progress.
func (s *State) RecordBlock(operator common.Hash28) {
	s.BlocksByPool[operator]++
	s.TotalBlockCount++
}

// OnBoundary finalises the epoch that just ended, publishes its activity
// report and the stabilised nonce for the epoch beginning at newStartSlot,
// and resets per-epoch counters.
func (s *State) OnBoundary(ctx context.Context, b *bus.Bus, newStartSlot uint64) error {
	report := common.EpochActivityReport{
		Epoch:           s.Epoch,
		BlocksByPool:    s.BlocksByPool,
		TotalBlockCount: s.TotalBlockCount,
	}
	nonce := s.Nonce.Candidate

	s.Epoch++
	s.EpochStartSlot = newStartSlot
	s.BlocksByPool = make(map[common.Hash28]uint64)
	s.TotalBlockCount = 0
	s.Nonce.Evolving = s.Nonce.Candidate

	if err := b.Publish(ctx, TopicEpochActivity, common.Message{
		Cardano: &common.CardanoMessage{Kind: common.KindEpochActivity, EpochActivity: &report},
	}); err != nil {
		return err
	}
	return b.Publish(ctx, TopicEpochNonce, common.Message{
		Cardano: &common.CardanoMessage{Kind: common.KindEpochNonces, EpochNonce: &nonce},
	})
}
