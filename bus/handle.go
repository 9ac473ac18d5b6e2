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
	"fmt"

	"github.com/acropolis-cardano/acropolis/common"
)

// Responder answers one request message with a response message.
type Responder func(ctx context.Context, request common.Message) common.Message

// Handle registers fn as the single responder for pattern: every message
// published to a topic matching pattern is answered by calling fn and
// publishing its result on "<topic>.response.<QueryID>" if the request
// carried a QueryID, or plain "<topic>.response" otherwise. Unlike
// Subscribe, which any number of listeners may use on the same pattern,
// exactly one responder may own a pattern; a second call with a pattern
// already registered is a programming error and panics immediately
// (collisions are fatal), matching net/http.ServeMux's own duplicate-
// pattern behaviour.
//
// Handle spawns the responder loop in its own goroutine and returns
// immediately; the loop exits, unregistering pattern, when ctx is
// cancelled.
func (b *Bus) Handle(ctx context.Context, pattern string, fn Responder) {
	b.handleMu.Lock()
	if b.handlers == nil {
		b.handlers = make(map[string]struct{})
	}
	if _, exists := b.handlers[pattern]; exists {
		b.handleMu.Unlock()
		panic(fmt.Sprintf("bus: Handle called twice for pattern %q", pattern))
	}
	b.handlers[pattern] = struct{}{}
	b.handleMu.Unlock()

	ch := b.subscribeFiltered(pattern, nil)
	go func() {
		defer b.Unsubscribe(ch)
		defer func() {
			b.handleMu.Lock()
			delete(b.handlers, pattern)
			b.handleMu.Unlock()
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				resp := fn(ctx, msg)
				replyTopic := msg.Topic + ".response"
				if msg.QueryID != "" {
					replyTopic += "." + msg.QueryID
				}
				_ = b.Publish(ctx, replyTopic, resp)
			}
		}
	}()
}
