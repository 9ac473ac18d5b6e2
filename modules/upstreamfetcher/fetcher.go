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

// Package upstreamfetcher holds the upstream-peer module: it cycles
// through the configured Cardano peers, creating a node-to-node Ouroboros
// connection for each, and has helpers that publish BlockAvailable and
// rollback messages on the bus. Run does not run chain-sync or
// block-fetch, so no block is fetched or published by it. It is the live
// counterpart of the Ouroboros client side the rest of this repository's
// conversation-driven mock simulates the server side of.
package upstreamfetcher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	ouroboros "github.com/blinklabs-io/gouroboros"

	"github.com/acropolis-cardano/acropolis/bus"
	"github.com/acropolis-cardano/acropolis/common"
)

// PeerConfig names one upstream peer to dial.
type PeerConfig struct {
	Address      string
	NetworkMagic uint32
}

// Config configures the fetcher module.
type Config struct {
	Peers         []PeerConfig
	ReconnectWait time.Duration
}

// Module is the engine.Module implementation that cycles through the
// configured peers, creating a node-to-node Ouroboros connection for each
// in turn and waiting on its error channel. It does not run chain-sync or
// block-fetch; publishBlock and publishRollback are not called by Run.
type Module struct {
	cfg Config
	log *slog.Logger

	rollingWindow []common.BlockInfo
}

// New creates an upstreamfetcher Module.
func New(cfg Config, log *slog.Logger) *Module {
	if log == nil {
		log = slog.Default()
	}
	return &Module{cfg: cfg, log: log}
}

func (m *Module) Name() string { return "upstream-fetcher" }

// Run calls runPeer for the first configured peer. When runPeer returns
// an error, Run logs it, waits ReconnectWait (5s by default) and moves on
// to the next peer in the list, wrapping around after the last one; the
// error is not propagated. Run returns nil when ctx is cancelled or when
// runPeer returns without an error. It publishes nothing to the bus.
func (m *Module) Run(ctx context.Context, b *bus.Bus) error {
	if len(m.cfg.Peers) == 0 {
		return fmt.Errorf("upstreamfetcher: no peers configured")
	}

	peerIdx := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		peer := m.cfg.Peers[peerIdx%len(m.cfg.Peers)]
		if err := m.runPeer(ctx, b, peer); err != nil {
			m.log.Warn("upstream peer connection failed, reconnecting", "peer", peer.Address, "error", err)
			peerIdx++
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(m.reconnectWait()):
			}
			continue
		}
		return nil
	}
}

func (m *Module) reconnectWait() time.Duration {
	if m.cfg.ReconnectWait <= 0 {
		return 5 * time.Second
	}
	return m.cfg.ReconnectWait
}

// runPeer creates one node-to-node Ouroboros connection with peer's
// network magic and waits until ctx is cancelled or the connection reports
// on its error channel. It supplies no network connection to dial
// peer.Address (the address appears only in error messages) and streams
// no blocks. A non-nil return makes Run move to the next peer; the only
// error Run returns itself, an empty peer list, is checked before any
// runPeer call.
func (m *Module) runPeer(ctx context.Context, b *bus.Bus, peer PeerConfig) error {
	conn, err := ouroboros.New(
		ouroboros.WithNetworkMagic(peer.NetworkMagic),
		ouroboros.WithNodeToNode(true),
	)
	if err != nil {
		return fmt.Errorf("upstreamfetcher: dial %s: %w", peer.Address, err)
	}
	defer conn.Close()

	select {
	case <-ctx.Done():
		return nil
	case err := <-conn.ErrorChan():
		if err != nil {
			return fmt.Errorf("upstreamfetcher: connection to %s failed: %w", peer.Address, err)
		}
		return nil
	}
}

// publishBlock emits a BlockAvailable CardanoMessage for a freshly
// fetched block, tracking it in a rolling window of at most
// common.RollbackWindow recent blocks. Nothing in this package reads the
// window to propose intersection points.
func (m *Module) publishBlock(ctx context.Context, b *bus.Bus, info common.BlockInfo, raw []byte) error {
	m.rollingWindow = append(m.rollingWindow, info)
	if len(m.rollingWindow) > int(common.RollbackWindow) {
		m.rollingWindow = m.rollingWindow[1:]
	}

	msg := common.Message{
		Block: &info,
		Cardano: &common.CardanoMessage{
			Kind:     common.KindBlockAvailable,
			RawBlock: raw,
		},
	}
	return b.Publish(ctx, "cardano.block.available", msg)
}

// publishRollback emits a RolledBack status message and rescinds the
// rolling window down to the rollback point.
func (m *Module) publishRollback(ctx context.Context, b *bus.Bus, toNumber uint64) error {
	kept := m.rollingWindow[:0]
	for _, bi := range m.rollingWindow {
		if bi.Number <= toNumber {
			kept = append(kept, bi)
		}
	}
	m.rollingWindow = kept

	msg := common.Message{
		Block: &common.BlockInfo{Status: common.BlockStatusRolledBack, Number: toNumber},
		Cardano: &common.CardanoMessage{
			Kind:             common.KindRollback,
			RollbackToNumber: toNumber,
		},
	}
	return b.Publish(ctx, "cardano.block.available", msg)
}
