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

package utxostate

import (
	"context"
	"log/slog"

	"github.com/acropolis-cardano/acropolis/bus"
	"github.com/acropolis-cardano/acropolis/common"
)

// Module reacts to rollback against a live Registry. The forward drive
// (NextBlock/Add/Consume per block) is owned by modules/txunpacker, which
// decodes blocks and needs the same Registry instance; this module only
// handles the rollback side so the two never race to advance the volatile
// window for the same block.
type Module struct {
	Registry *Registry
	log      *slog.Logger
}

// NewModule creates a Module wrapping reg, the Registry shared with
// modules/txunpacker.
func NewModule(reg *Registry, log *slog.Logger) *Module {
	if log == nil {
		log = slog.Default()
	}
	return &Module{Registry: reg, log: log}
}

func (m *Module) Name() string { return "utxo-state" }

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
			m.handle(msg)
		}
	}
}

func (m *Module) handle(msg common.Message) {
	if msg.Cardano == nil || msg.Block == nil {
		return
	}
	if msg.Cardano.Kind == common.KindRollback {
		m.Registry.RollbackBefore(msg.Cardano.RollbackToNumber)
	}
}
