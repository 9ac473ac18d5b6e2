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

package epochsstate

import (
	"context"
	"log/slog"

	"github.com/acropolis-cardano/acropolis/bus"
	"github.com/acropolis-cardano/acropolis/common"
	"github.com/acropolis-cardano/acropolis/statehistory"
)

// Module drives a State from the block feed, recognising the epoch
// boundary itself (the first block whose slot falls in the next epoch)
// and publishing EpochActivity/EpochNonces. It does not call
// State.RecordBlock or State.AccumulateNonce, so the published block
// counts stay zero and the nonce is not updated from block VRF outputs.
// A statehistory.History retains one
// snapshot per block so a rollback notification can restore the epoch/
// nonce/block-count state to the point just before the rolled-back
// blocks.
type Module struct {
	State   *State
	history *statehistory.History[State]
	log     *slog.Logger
}

// NewModule creates a Module wrapping a fresh State for slotsPerEpoch.
func NewModule(slotsPerEpoch uint64, log *slog.Logger) *Module {
	if log == nil {
		log = slog.Default()
	}
	return &Module{State: New(slotsPerEpoch), history: statehistory.New[State](), log: log}
}

func (m *Module) Name() string { return "epochs-state" }

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
	if msg.Block == nil {
		return nil
	}

	if msg.Cardano != nil && msg.Cardano.Kind == common.KindRollback {
		if restored, err := m.history.GetRolledBackState(msg.Cardano.RollbackToNumber); err == nil {
			*m.State = restored
		} else {
			m.log.Warn("epochs-state: rollback target predates retained history", "target", msg.Cardano.RollbackToNumber, "error", err)
		}
		return nil
	}

	if msg.Block.NewEpoch && m.State.EpochOf(msg.Block.Slot) > m.State.Epoch {
		if err := m.State.OnBoundary(ctx, b, msg.Block.Slot); err != nil {
			return err
		}
	}
	m.history.Commit(msg.Block.Number, m.State.Clone())
	return nil
}
