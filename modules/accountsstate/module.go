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

package accountsstate

import (
	"context"
	"log/slog"

	lcommon "github.com/blinklabs-io/gouroboros/ledger/common"

	"github.com/acropolis-cardano/acropolis/bus"
	"github.com/acropolis-cardano/acropolis/common"
	"github.com/acropolis-cardano/acropolis/statehistory"
)

// toAddrKeyHash reinterprets a Blake2b-224 digest as an address key hash;
// both are 28-byte Blake2b-224 values, so StakeAddressDelta (emitted by
// modules/txunpacker, which has no reason to depend on the stake-address
// package) can cross into this package's map key type by conversion
// rather than by sharing a type.
func toAddrKeyHash(h common.Hash28) lcommon.AddrKeyHash {
	return lcommon.AddrKeyHash(h)
}

// Module drives a State from the bus: stake address deltas fold into the
// current snapshot, and an epoch boundary notification ages the
// mark/set/go triplet.
type Module struct {
	State   *State
	history *statehistory.History[State]
	log     *slog.Logger
}

// NewModule creates a Module wrapping a fresh State.
func NewModule(log *slog.Logger) *Module {
	if log == nil {
		log = slog.Default()
	}
	return &Module{State: New(), history: statehistory.New[State](), log: log}
}

func (m *Module) Name() string { return "accounts-state" }

func (m *Module) Run(ctx context.Context, b *bus.Bus) error {
	deltaCh := b.Subscribe("cardano.block.available")
	epochCh := b.Subscribe("cardano.epoch.activity")
	defer b.Unsubscribe(deltaCh)
	defer b.Unsubscribe(epochCh)

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-deltaCh:
			if !ok {
				return nil
			}
			m.handleBlock(msg)
		case msg, ok := <-epochCh:
			if !ok {
				return nil
			}
			m.handleEpochActivity(msg)
		}
	}
}

func (m *Module) handleBlock(msg common.Message) {
	if msg.Cardano == nil {
		return
	}
	switch msg.Cardano.Kind {
	case common.KindRollback:
		if restored, err := m.history.GetRolledBackState(msg.Cardano.RollbackToNumber); err == nil {
			*m.State = restored
		} else {
			m.log.Warn("accounts-state: rollback target predates retained history", "target", msg.Cardano.RollbackToNumber, "error", err)
		}
		return
	case common.KindStakeAddressDeltas:
		for _, d := range msg.Cardano.StakeDeltas {
			addr := toAddrKeyHash(d.StakeAddress)
			m.State.ApplyDelta(addr, d.DeltaAmount)
		}
	case common.KindTxCertificates:
		for _, r := range msg.Cardano.StakeRegistrations {
			m.State.SetRegistered(toAddrKeyHash(r.StakeCredential), r.Registered)
		}
		for _, d := range msg.Cardano.Delegations {
			m.State.SetDelegation(toAddrKeyHash(d.StakeCredential), lcommon.PoolKeyHash(d.Pool))
		}
	}
	if msg.Block != nil {
		m.history.Commit(msg.Block.Number, m.State.Clone())
	}
}

func (m *Module) handleEpochActivity(msg common.Message) {
	if msg.Cardano == nil || msg.Cardano.Kind != common.KindEpochActivity || msg.Cardano.EpochActivity == nil {
		return
	}
	m.State.BoundaryRoll(msg.Cardano.EpochActivity.Epoch)
}
