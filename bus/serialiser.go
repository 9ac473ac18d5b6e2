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
	"errors"

	"github.com/acropolis-cardano/acropolis/common"
)

// ErrSerialiserGapExceeded is returned by Serialiser.Run when the buffer
// of messages held back waiting for a gap to fill grows past the
// configured horizon.
var ErrSerialiserGapExceeded = errors.New("bus: serialiser gap exceeded horizon")

// Serialiser buffers messages arriving out of Sequence.Number order on a
// subscription and releases them to a handler strictly in order, for a
// module that needs to see a topic's messages in publish order despite
// potential re-ordering by parallel publishers racing to deliver to the
// same subscriber channel.
type Serialiser struct {
	horizon int
	next    uint64
	started bool
	pending map[uint64]common.Message
}

// NewSerialiser creates a Serialiser tolerating up to horizon messages
// buffered ahead of the next expected sequence number before failing.
func NewSerialiser(horizon int) *Serialiser {
	if horizon < 1 {
		horizon = 1
	}
	return &Serialiser{horizon: horizon, pending: make(map[uint64]common.Message)}
}

// Run reads from ch until it closes or ctx is cancelled, calling handle
// for every message strictly in Sequence.Number order. It returns
// ErrSerialiserGapExceeded if a gap in the sequence never fills before
// the buffer of held-back messages exceeds the configured horizon.
func (s *Serialiser) Run(ctx context.Context, ch <-chan common.Message, handle func(common.Message) error) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if err := s.accept(msg, handle); err != nil {
				return err
			}
		}
	}
}

func (s *Serialiser) accept(msg common.Message, handle func(common.Message) error) error {
	num := msg.Seq.Number
	if !s.started {
		s.next = num
		s.started = true
	}
	if num < s.next {
		// Already released; a stale redelivery, ignore it.
		return nil
	}
	s.pending[num] = msg
	for {
		next, ok := s.pending[s.next]
		if !ok {
			break
		}
		delete(s.pending, s.next)
		if err := handle(next); err != nil {
			return err
		}
		s.next++
	}
	if len(s.pending) > s.horizon {
		return ErrSerialiserGapExceeded
	}
	return nil
}
