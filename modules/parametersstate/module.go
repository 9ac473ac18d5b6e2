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
	"context"
	"log/slog"

	"github.com/acropolis-cardano/acropolis/bus"
	"github.com/acropolis-cardano/acropolis/common"
	"github.com/acropolis-cardano/acropolis/statehistory"
)

// Module drives a State from the bus: an EpochActivity message advances
// the epoch and applies any pending parameter updates due for it. A
// statehistory.History retains one snapshot per block observed so a
// rollback notification can restore Current/pending to the point just
// before the rolled-back blocks, the same way modules/utxostate restores
// its own live set.
type Module struct {
	State   *State
	history *statehistory.History[State]
	log     *slog.Logger
}

// NewModule creates a Module wrapping a State bootstrapped from genesis.
func NewModule(genesis Params, log *slog.Logger) *Module {
	if log == nil {
		log = slog.Default()
	}
	return &Module{State: New(genesis), history: statehistory.New[State](), log: log}
}

func (m *Module) Name() string { return "parameters-state" }

func (m *Module) Run(ctx context.Context, b *bus.Bus) error {
	epochCh := b.Subscribe("cardano.epoch.activity")
	blockCh := b.Subscribe("cardano.block.available")
	defer b.Unsubscribe(epochCh)
	defer b.Unsubscribe(blockCh)

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-epochCh:
			if !ok {
				return nil
			}
			if msg.Cardano == nil || msg.Cardano.Kind != common.KindEpochActivity || msg.Cardano.EpochActivity == nil {
				continue
			}
			m.State.OnEpochBoundary(msg.Cardano.EpochActivity.Epoch)
		case msg, ok := <-blockCh:
			if !ok {
				return nil
			}
			m.handleBlock(msg)
		}
	}
}

func (m *Module) handleBlock(msg common.Message) {
	if msg.Cardano == nil || msg.Block == nil {
		return
	}
	if msg.Cardano.Kind == common.KindRollback {
		if restored, err := m.history.GetRolledBackState(msg.Cardano.RollbackToNumber); err == nil {
			*m.State = restored
		} else {
			m.log.Warn("parameters-state: rollback target predates retained history", "target", msg.Cardano.RollbackToNumber, "error", err)
		}
		return
	}
	if msg.Cardano.Kind == common.KindBlockAvailable {
		m.history.Commit(msg.Block.Number, m.State.Clone())
	}
}
