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

// Package queryrouter dispatches StateQuery requests arriving on the
// query bus topic to whichever state module owns the requested data, and
// publishes the StateResponse back on a reply topic keyed by QueryID.
// It is the REST/CLI-facing read path, decoupled from the state modules
// themselves so none of them need to know about HTTP or the bus directly.
package queryrouter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/acropolis-cardano/acropolis/bus"
	"github.com/acropolis-cardano/acropolis/common"
)

// Handler answers one query type, returning the value to place in the
// response envelope's StateResponse field.
type Handler func(ctx context.Context, query any) (any, error)

// Router owns the query-type -> Handler table and the subscription that
// feeds it.
type Router struct {
	log      *slog.Logger
	handlers map[string]Handler
}

// New creates an empty Router.
func New(log *slog.Logger) *Router {
	if log == nil {
		log = slog.Default()
	}
	return &Router{log: log, handlers: make(map[string]Handler)}
}

// Register binds a query kind (e.g. "utxo.byAddress", "account.byStake",
// "spo.list") to the handler that answers it. Registering the same kind
// twice overwrites the previous handler, since module registration order
// at startup is deterministic and the last registration wins by
// convention, matching the teacher's own builder-overwrite semantics.
func (r *Router) Register(kind string, h Handler) {
	r.handlers[kind] = h
}

func (r *Router) Name() string { return "query-router" }

// Run subscribes to the query topic and answers every request until ctx
// is cancelled, replying on "cardano.query.response.<QueryID>" so the
// REST layer can correlate replies without a shared request map.
func (r *Router) Run(ctx context.Context, b *bus.Bus) error {
	ch := b.Subscribe("cardano.query.request")
	defer b.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			r.handleOne(ctx, b, msg)
		}
	}
}

func (r *Router) handleOne(ctx context.Context, b *bus.Bus, msg common.Message) {
	kind, _ := msg.StateQuery.(interface{ Kind() string })
	var kindStr string
	if kind != nil {
		kindStr = kind.Kind()
	}

	h, ok := r.handlers[kindStr]
	if !ok {
		r.publishError(ctx, b, msg.QueryID, common.NewTypedError(common.ErrorNotImplemented, fmt.Sprintf("no handler registered for query kind %q", kindStr), nil))
		return
	}

	resp, err := h(ctx, msg.StateQuery)
	if err != nil {
		r.publishError(ctx, b, msg.QueryID, err)
		return
	}

	replyTopic := "cardano.query.response." + msg.QueryID
	if err := b.Publish(ctx, replyTopic, common.Message{
		QueryID:       msg.QueryID,
		StateResponse: resp,
	}); err != nil {
		r.log.Warn("failed publishing query response", "query_id", msg.QueryID, "error", err)
	}
}

func (r *Router) publishError(ctx context.Context, b *bus.Bus, queryID string, err error) {
	replyTopic := "cardano.query.response." + queryID
	if pubErr := b.Publish(ctx, replyTopic, common.Message{
		QueryID:       queryID,
		StateResponse: err,
	}); pubErr != nil {
		r.log.Warn("failed publishing query error response", "query_id", queryID, "error", pubErr)
	}
}
