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
	"context"
	"log/slog"

	lcommon "github.com/blinklabs-io/gouroboros/ledger/common"

	"github.com/acropolis-cardano/acropolis/bus"
	"github.com/acropolis-cardano/acropolis/common"
	"github.com/acropolis-cardano/acropolis/statehistory"
)

// Module drives a State from the bus: every GovernanceProcedures message
// folds proposals and votes in, every EpochActivity message advances the
// tracked epoch and drops expired committee members. A statehistory.History
// retains one snapshot per block so a rollback notification can restore
// committee/DRep/proposal state to the point just before the rolled-back
// blocks.
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

func (m *Module) Name() string { return "governance-state" }

func (m *Module) Run(ctx context.Context, b *bus.Bus) error {
	govCh := b.Subscribe("cardano.block.available")
	epochCh := b.Subscribe("cardano.epoch.activity")
	defer b.Unsubscribe(govCh)
	defer b.Unsubscribe(epochCh)

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-govCh:
			if !ok {
				return nil
			}
			m.handleGovernance(msg)
		case msg, ok := <-epochCh:
			if !ok {
				return nil
			}
			m.handleEpochActivity(msg)
		}
	}
}

func (m *Module) handleGovernance(msg common.Message) {
	if msg.Cardano == nil {
		return
	}
	switch msg.Cardano.Kind {
	case common.KindRollback:
		if restored, err := m.history.GetRolledBackState(msg.Cardano.RollbackToNumber); err == nil {
			*m.State = restored
		} else {
			m.log.Warn("governance-state: rollback target predates retained history", "target", msg.Cardano.RollbackToNumber, "error", err)
		}
		return
	case common.KindGovernanceProcedures:
		for _, ev := range msg.Cardano.GovernanceEvents {
			if ev.ActionID == nil {
				continue
			}
			actionID := ev.ActionID.String()
			if ev.IsVote {
				m.State.RecordVote(actionID, ev.Payload)
				continue
			}
			m.State.AddProposal(actionID, nil, ev.Payload)
		}
	case common.KindTxCertificates:
		for _, a := range msg.Cardano.CommitteeAuths {
			m.State.AuthorizeHotKey(lcommon.Blake2b224(a.ColdKey), lcommon.Blake2b224(a.HotKey))
		}
		for _, r := range msg.Cardano.CommitteeResigns {
			m.State.ResignCommitteeMember(lcommon.Blake2b224(r.ColdKey))
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
	m.State.OnEpochBoundary(msg.Cardano.EpochActivity.Epoch)
}
