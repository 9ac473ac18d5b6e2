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

// Package blockvrfvalidator checks a block header's VRF nonce and leader
// certificates against the issuing pool's registered VRF key and the
// stake distribution's leader-election threshold, and reports the
// outcome rather than halting the pipeline on a single bad block.
package blockvrfvalidator

import (
	"context"
	"math/big"

	"github.com/acropolis-cardano/acropolis/common"
	"github.com/acropolis-cardano/acropolis/consensus"
)

// HeaderVRFInput is the subset of a block header needed to validate its
// VRF proofs, projected by the upstream decoder so this package never
// needs to import gouroboros's ledger block types directly.
type HeaderVRFInput struct {
	Slot            uint64
	IssuerVRFKey    consensus.PublicKey
	NonceProofRaw   []byte
	LeaderProofRaw  []byte
	EpochNonce      [32]byte
	RelativeStakeN  *uint64
	RelativeStakeD  *uint64
	ActiveSlotCoeffN uint64
	ActiveSlotCoeffD uint64
}

// Outcome is the per-block validation result published for every header
// this module is handed, successful or not.
type Outcome struct {
	BlockNumber uint64
	OK          bool
	ErrorKind   common.ErrorKind
	Detail      string
	VRFOutput   []byte
}

// Validate runs both VRF checks (nonce certificate, leader certificate)
// and, when stake information is available, the leader-value test, per
// the block validation failure taxonomy: a failure here always reports
// ErrorVRF, never halts the caller.
func Validate(in HeaderVRFInput) Outcome {
	nonceSeed := consensus.MkSeed(in.Slot, in.EpochNonce, consensus.SeedTagNonce)
	nonceProof, err := consensus.ParseProof(in.NonceProofRaw)
	if err != nil {
		return failure(in, "parsing nonce VRF proof: "+err.Error())
	}
	nonceOutput, err := consensus.Verify(in.IssuerVRFKey, nonceSeed, nonceProof)
	if err != nil {
		return failure(in, "verifying nonce VRF proof: "+err.Error())
	}

	leaderSeed := consensus.MkSeed(in.Slot, in.EpochNonce, consensus.SeedTagLeader)
	leaderProof, err := consensus.ParseProof(in.LeaderProofRaw)
	if err != nil {
		return failure(in, "parsing leader VRF proof: "+err.Error())
	}
	leaderOutput, err := consensus.Verify(in.IssuerVRFKey, leaderSeed, leaderProof)
	if err != nil {
		return failure(in, "verifying leader VRF proof: "+err.Error())
	}

	if in.RelativeStakeN != nil && in.RelativeStakeD != nil {
		stakeN := new(big.Int).SetUint64(*in.RelativeStakeN)
		stakeD := new(big.Int).SetUint64(*in.RelativeStakeD)
		if !consensus.IsSlotLeader(leaderOutput, in.ActiveSlotCoeffN, in.ActiveSlotCoeffD, stakeN, stakeD) {
			return Outcome{
				BlockNumber: in.Slot,
				OK:          false,
				ErrorKind:   common.ErrorVRF,
				Detail:      "leader value test failed: output not below threshold for relative stake",
			}
		}
	}

	return Outcome{BlockNumber: in.Slot, OK: true, VRFOutput: nonceOutput}
}

func failure(in HeaderVRFInput, detail string) Outcome {
	return Outcome{BlockNumber: in.Slot, OK: false, ErrorKind: common.ErrorVRF, Detail: detail}
}

// PublishOutcome emits the validation outcome on the block-validation
// results topic so downstream modules (and the REST query surface) can
// observe it without re-running the proof checks.
func PublishOutcome(ctx context.Context, publish func(ctx context.Context, topic string, msg common.Message) error, o Outcome) error {
	return publish(ctx, "cardano.block.vrf-validated", common.Message{
		StateResponse: o,
	})
}
