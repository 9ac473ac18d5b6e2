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

package bus

import (
	"context"
	"sync"

	"github.com/acropolis-cardano/acropolis/common"
)

// RollbackAwarePublisher wraps Publish for a module that derives its own
// events from the block feed and republishes rollbacks selectively. It
// tracks the highest slot it has published a non-rollback message for
// (its "last activity slot"); on a rollback it republishes only if that
// activity slot is at or after the rollback target (P8: a
// RollbackAwarePublisher republishes a rollback iff
// last_activity_slot >= rollback_slot). If this publisher never emitted
// anything past the rollback point, its own consumers have nothing to
// undo, so the rollback is suppressed rather than forwarded.
type RollbackAwarePublisher struct {
	bus   *Bus
	topic string

	mu               sync.Mutex
	lastActivitySlot uint64
	hasActivity      bool
}

// NewRollbackAwarePublisher creates a RollbackAwarePublisher that
// publishes derived events for topic via b.
func NewRollbackAwarePublisher(b *Bus, topic string) *RollbackAwarePublisher {
	return &RollbackAwarePublisher{bus: b, topic: topic}
}

// Publish emits a non-rollback message as having occurred at slot,
// advancing the publisher's last-activity-slot if slot is newer.
func (p *RollbackAwarePublisher) Publish(ctx context.Context, slot uint64, msg common.Message) error {
	p.mu.Lock()
	if !p.hasActivity || slot > p.lastActivitySlot {
		p.lastActivitySlot = slot
		p.hasActivity = true
	}
	p.mu.Unlock()
	return p.bus.Publish(ctx, p.topic, msg)
}

// PublishRollback republishes a rollback to rollbackSlot iff this
// publisher's last activity slot is at or after it (P8); otherwise the
// rollback is suppressed and this call is a no-op.
func (p *RollbackAwarePublisher) PublishRollback(ctx context.Context, rollbackSlot uint64, msg common.Message) error {
	p.mu.Lock()
	active := p.hasActivity && p.lastActivitySlot >= rollbackSlot
	p.mu.Unlock()
	if !active {
		return nil
	}
	return p.bus.Publish(ctx, p.topic, msg)
}

// LastActivitySlot returns the publisher's current last-activity-slot and
// whether it has published anything yet, mainly for tests.
func (p *RollbackAwarePublisher) LastActivitySlot() (uint64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastActivitySlot, p.hasActivity
}
