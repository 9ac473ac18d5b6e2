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
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/acropolis-cardano/acropolis/common"
)

func TestRollbackAwarePublisherRepublishesWhenActivityPastTarget(t *testing.T) {
	b := New()
	ch := b.Subscribe("derived.events")
	defer b.Unsubscribe(ch)

	p := NewRollbackAwarePublisher(b, "derived.events")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, p.Publish(ctx, 100, common.Message{}))
	<-ch

	require.NoError(t, p.PublishRollback(ctx, 50, common.Message{Cardano: &common.CardanoMessage{Kind: common.KindRollback}}))

	select {
	case msg := <-ch:
		require.Equal(t, common.KindRollback, msg.Cardano.Kind)
	case <-time.After(time.Second):
		t.Fatal("expected rollback to be republished")
	}
}

func TestRollbackAwarePublisherSuppressesWhenNoActivityPastTarget(t *testing.T) {
	b := New()
	ch := b.Subscribe("derived.events")
	defer b.Unsubscribe(ch)

	p := NewRollbackAwarePublisher(b, "derived.events")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, p.Publish(ctx, 10, common.Message{}))
	<-ch

	require.NoError(t, p.PublishRollback(ctx, 50, common.Message{Cardano: &common.CardanoMessage{Kind: common.KindRollback}}))

	select {
	case msg := <-ch:
		t.Fatalf("expected rollback to be suppressed, got %+v", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestReadIgnoringRollbacksSkipsRollbackMessages(t *testing.T) {
	b := New()
	ch := b.ReadIgnoringRollbacks("cardano.block.available")
	defer b.Unsubscribe(ch)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, b.Publish(ctx, "cardano.block.available", common.Message{
		Cardano: &common.CardanoMessage{Kind: common.KindRollback},
	}))
	require.NoError(t, b.Publish(ctx, "cardano.block.available", common.Message{
		Cardano: &common.CardanoMessage{Kind: common.KindBlockAvailable},
	}))

	select {
	case msg := <-ch:
		require.Equal(t, common.KindBlockAvailable, msg.Cardano.Kind)
	case <-time.After(time.Second):
		t.Fatal("expected forward message to arrive")
	}
}
