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

package txunpacker

import (
	"context"
	"log/slog"

	"github.com/blinklabs-io/gouroboros/ledger/allegra"
	"github.com/blinklabs-io/gouroboros/ledger/alonzo"
	"github.com/blinklabs-io/gouroboros/ledger/babbage"
	"github.com/blinklabs-io/gouroboros/ledger/byron"
	lcommon "github.com/blinklabs-io/gouroboros/ledger/common"
	"github.com/blinklabs-io/gouroboros/ledger/conway"
	"github.com/blinklabs-io/gouroboros/ledger/mary"
	"github.com/blinklabs-io/gouroboros/ledger/shelley"

	"github.com/acropolis-cardano/acropolis/bus"
	"github.com/acropolis-cardano/acropolis/common"
	"github.com/acropolis-cardano/acropolis/modules/utxostate"
)

// Module is the pipeline stage between the raw block feed and every
// other state module: it owns the live UTxO registry's block-by-block
// drive (NextBlock/Add/Consume via ApplyBlock) and fans the resulting
// per-transaction effects back out onto the bus as StakeAddressDeltas and
// TxCertificates, so modules/accountsstate and modules/governancestate
// never need to decode a block themselves.
type Module struct {
	Registry *utxostate.Registry
	log      *slog.Logger
}

// NewModule creates a Module driving reg from the block feed. reg is
// shared with modules/utxostate's own Module so both see the same live
// set; utxostate's Module only needs to react to rollback once this one
// owns the forward drive.
func NewModule(reg *utxostate.Registry, log *slog.Logger) *Module {
	if log == nil {
		log = slog.Default()
	}
	return &Module{Registry: reg, log: log}
}

func (m *Module) Name() string { return "tx-unpacker" }

func (m *Module) Run(ctx context.Context, b *bus.Bus) error {
	ch := b.Subscribe("cardano.block.available")
	defer b.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if err := m.handle(ctx, b, msg); err != nil {
				return err
			}
		}
	}
}

func (m *Module) handle(ctx context.Context, b *bus.Bus, msg common.Message) error {
	if msg.Cardano == nil || msg.Block == nil || msg.Cardano.Kind != common.KindBlockAvailable {
		return nil
	}
	if len(msg.Cardano.RawBlock) == 0 {
		return nil
	}

	blockType, ok := eraToBlockType(msg.Block.Era)
	if !ok {
		m.log.Warn("dropping block of unknown era", "number", msg.Block.Number, "era", msg.Block.Era)
		return nil
	}
	blk, err := DecodeBlock(blockType, msg.Cardano.RawBlock)
	if err != nil {
		m.log.Warn("dropping undecodable block", "number", msg.Block.Number, "error", err)
		return nil
	}

	unpacked := ApplyBlock(m.Registry, msg.Block.Number, blk.Transactions())

	var deltas []common.StakeAddressDelta
	var certs []common.CertificateEvent
	var delegations []common.DelegationEvent
	var registrations []common.StakeRegistrationEvent
	var retirements []common.PoolRetirementEvent
	var committeeAuths []common.CommitteeAuthEvent
	var committeeResigns []common.CommitteeResignEvent
	for txIndex, u := range unpacked {
		if u.Error != nil {
			continue
		}
		txID := common.TxIdentifier{BlockNumber: msg.Block.Number, TxIndex: uint16(txIndex)}

		for _, o := range u.Outputs {
			deltas = append(deltas, common.StakeAddressDelta{
				StakeAddress: stakeCredentialOf(o.Address),
				DeltaAmount:  int64(o.Lovelace),
			})
		}
		for _, w := range u.Withdrawals {
			deltas = append(deltas, common.StakeAddressDelta{
				StakeAddress: stakeCredentialOf(w.RewardAccount),
				DeltaAmount:  int64(w.Amount),
			})
		}
		for _, c := range u.Certs {
			certs = append(certs, common.CertificateEvent{Tx: txID, CertType: uint8(c.Type())})
			interpretCertificate(c, &delegations, &registrations, &retirements, &committeeAuths, &committeeResigns)
		}
	}

	if len(deltas) > 0 {
		if err := b.Publish(ctx, "cardano.block.available", common.Message{
			Block:   msg.Block,
			Cardano: &common.CardanoMessage{Kind: common.KindStakeAddressDeltas, StakeDeltas: deltas},
		}); err != nil {
			return err
		}
	}
	if len(certs) > 0 {
		if err := b.Publish(ctx, "cardano.block.available", common.Message{
			Block: msg.Block,
			Cardano: &common.CardanoMessage{
				Kind:               common.KindTxCertificates,
				Certificates:       certs,
				Delegations:        delegations,
				StakeRegistrations: registrations,
				PoolRetirements:    retirements,
				CommitteeAuths:     committeeAuths,
				CommitteeResigns:   committeeResigns,
			},
		}); err != nil {
			return err
		}
	}
	return nil
}

// interpretCertificate extracts the event shape this repository's other
// state modules act on from one decoded certificate, following the same
// CertificateType type-switch a conformance validator uses to apply
// certificates to its own mock ledger state, generalized here to emit bus
// events instead of mutating an in-process map directly.
//
// Standalone stake/vote delegation certificates (CertificateTypeStake-
// Delegation and friends) are assumed to carry a StakeCredential and
// PoolKeyHash field pair, mirroring the field names gouroboros uses on
// every other certificate that carries a stake credential or pool id; no
// example in the reference pack exercises this certificate's fields
// directly (see DESIGN.md), so this is the single least-grounded
// assumption in this package.
func interpretCertificate(
	c lcommon.Certificate,
	delegations *[]common.DelegationEvent,
	registrations *[]common.StakeRegistrationEvent,
	retirements *[]common.PoolRetirementEvent,
	committeeAuths *[]common.CommitteeAuthEvent,
	committeeResigns *[]common.CommitteeResignEvent,
) {
	switch cert := c.(type) {
	case *lcommon.StakeRegistrationCertificate:
		*registrations = append(*registrations, common.StakeRegistrationEvent{
			StakeCredential: common.Hash28(cert.StakeCredential.Credential),
			Registered:      true,
		})
	case *lcommon.RegistrationCertificate:
		*registrations = append(*registrations, common.StakeRegistrationEvent{
			StakeCredential: common.Hash28(cert.StakeCredential.Credential),
			Registered:      true,
		})
	case *lcommon.StakeDeregistrationCertificate:
		*registrations = append(*registrations, common.StakeRegistrationEvent{
			StakeCredential: common.Hash28(cert.StakeCredential.Credential),
			Registered:      false,
		})
	case *lcommon.DeregistrationCertificate:
		*registrations = append(*registrations, common.StakeRegistrationEvent{
			StakeCredential: common.Hash28(cert.StakeCredential.Credential),
			Registered:      false,
		})
	case *lcommon.StakeDelegationCertificate:
		*delegations = append(*delegations, common.DelegationEvent{
			StakeCredential: common.Hash28(cert.StakeCredential.Credential),
			Pool:            common.Hash28(cert.PoolKeyHash),
		})
	case *lcommon.PoolRetirementCertificate:
		*retirements = append(*retirements, common.PoolRetirementEvent{
			Pool:  common.Hash28(cert.PoolKeyHash),
			Epoch: cert.Epoch,
		})
	case *lcommon.AuthCommitteeHotCertificate:
		*committeeAuths = append(*committeeAuths, common.CommitteeAuthEvent{
			ColdKey: common.Hash28(cert.ColdCredential.Credential),
			HotKey:  common.Hash28(cert.HotCredential.Credential),
		})
	case *lcommon.ResignCommitteeColdCertificate:
		*committeeResigns = append(*committeeResigns, common.CommitteeResignEvent{
			ColdKey: common.Hash28(cert.ColdCredential.Credential),
		})
	}
}

// stakeCredentialOf reinterprets an address's trailing 28 bytes as its
// stake credential hash. Real Shelley-era addresses carry the payment
// credential first and, for base addresses, the stake credential in the
// last 28 bytes; this is a simplification that does not distinguish
// base/enterprise/pointer address kinds (see DESIGN.md).
func stakeCredentialOf(addr []byte) common.Hash28 {
	if len(addr) < 28 {
		return common.Hash28{}
	}
	return common.NewHash28(addr[len(addr)-28:])
}

// eraToBlockType maps this repository's own Era enum to the block-type
// discriminant gledger.NewBlockFromCbor expects, delegating the actual
// constant values to each era's own gouroboros sub-package rather than
// hard-coding the wire integers here.
func eraToBlockType(era common.Era) (uint, bool) {
	switch era {
	case common.EraByron:
		return byron.BlockTypeByronMain, true
	case common.EraShelley:
		return shelley.BlockTypeShelley, true
	case common.EraAllegra:
		return allegra.BlockTypeAllegra, true
	case common.EraMary:
		return mary.BlockTypeMary, true
	case common.EraAlonzo:
		return alonzo.BlockTypeAlonzo, true
	case common.EraBabbage:
		return babbage.BlockTypeBabbage, true
	case common.EraConway:
		return conway.BlockTypeConway, true
	default:
		return 0, false
	}
}
