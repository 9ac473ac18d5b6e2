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

// Package bus implements the process-wide publish/subscribe message bus:
// a topic-keyed channel registry with glob wildcard subscriptions and
// in-order, per-topic delivery.
package bus

import (
	"context"
	"fmt"
	"path"
	"sync"

	"github.com/acropolis-cardano/acropolis/common"
)

// DefaultSubscriberCapacity is the default bounded buffer size applied to
// a subscription channel before Publish starts to block the publisher,
// matching the "bounded buffer grows to a configured limit before applying
// back-pressure" behaviour.
const DefaultSubscriberCapacity = 256

type subscription struct {
	pattern string
	ch      chan common.Message
	// filter, when non-nil, suppresses delivery of messages it returns
	// false for. Used by ReadIgnoringRollbacks; ordinary Subscribe callers
	// get a nil filter and see everything matching pattern.
	filter func(common.Message) bool
}

// Bus is a multi-publisher, multi-subscriber channel registry keyed by
// topic name. Delivery is in-order per topic; no cross-topic ordering is
// guaranteed.
type Bus struct {
	mu   sync.RWMutex
	subs []*subscription

	seqMu sync.Mutex
	seq   map[string]common.Sequence

	handleMu sync.Mutex
	handlers map[string]struct{}

	capacity int
}

// New creates an empty Bus using DefaultSubscriberCapacity for every new
// subscription.
func New() *Bus {
	return NewWithCapacity(DefaultSubscriberCapacity)
}

// NewWithCapacity creates an empty Bus with an explicit subscriber buffer
// capacity, mainly for tests that want to exercise back-pressure directly.
func NewWithCapacity(capacity int) *Bus {
	if capacity < 1 {
		capacity = 1
	}
	return &Bus{
		seq:      make(map[string]common.Sequence),
		capacity: capacity,
	}
}

// Subscribe registers a subscription for topic, which may contain
// path.Match-style glob wildcards (e.g. "rest.get.pools.*"). The returned
// channel delivers messages in the order Publish was called for any topic
// matching the pattern; Unsubscribe closes it.
func (b *Bus) Subscribe(pattern string) <-chan common.Message {
	return b.subscribeFiltered(pattern, nil)
}

// ReadIgnoringRollbacks subscribes to pattern like Subscribe, but silently
// drops CardanoMessage{Kind: KindRollback} messages before they reach the
// returned channel. It is for subscribers that reconstitute their state
// from scratch on rollback (typically backed by a statehistory.History)
// and only need the forward event stream, not the rollback notification
// itself.
func (b *Bus) ReadIgnoringRollbacks(pattern string) <-chan common.Message {
	return b.subscribeFiltered(pattern, func(msg common.Message) bool {
		return msg.Cardano == nil || msg.Cardano.Kind != common.KindRollback
	})
}

func (b *Bus) subscribeFiltered(pattern string, filter func(common.Message) bool) <-chan common.Message {
	ch := make(chan common.Message, b.capacity)
	sub := &subscription{pattern: pattern, ch: ch, filter: filter}
	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes the subscription whose channel is ch and closes that
// channel. Other subscriptions to the same pattern are left in place. It
// is a no-op if ch was never returned by Subscribe.
func (b *Bus) Unsubscribe(ch <-chan common.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, sub := range b.subs {
		if sub.ch == ch {
			close(sub.ch)
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish assigns the next Sequence number for topic and delivers msg to
// every matching subscriber. It blocks until the message has been enqueued
// on each matching subscriber's channel (or ctx is cancelled), which is how
// back-pressure propagates to the publisher once a subscriber falls behind
// by more than its buffer capacity.
func (b *Bus) Publish(ctx context.Context, topic string, msg common.Message) error {
	msg.Topic = topic
	msg.Seq = b.nextSequence(topic)

	b.mu.RLock()
	matched := make([]*subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		if ok, _ := path.Match(sub.pattern, topic); ok {
			matched = append(matched, sub)
		}
	}
	b.mu.RUnlock()

	for _, sub := range matched {
		if sub.filter != nil && !sub.filter(msg) {
			continue
		}
		select {
		case sub.ch <- msg:
		case <-ctx.Done():
			return fmt.Errorf("bus: publish to %q cancelled: %w", topic, ctx.Err())
		}
	}
	return nil
}

func (b *Bus) nextSequence(topic string) common.Sequence {
	b.seqMu.Lock()
	defer b.seqMu.Unlock()
	next := b.seq[topic].Next()
	b.seq[topic] = next
	return next
}
