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

package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/acropolis-cardano/acropolis/bus"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeModule struct {
	name string
	run  func(ctx context.Context, b *bus.Bus) error
}

func (f *fakeModule) Name() string { return f.name }
func (f *fakeModule) Run(ctx context.Context, b *bus.Bus) error {
	return f.run(ctx, b)
}

func TestRunReturnsNilOnContextCancel(t *testing.T) {
	h := New(nil, nil)
	h.Register(&fakeModule{name: "a", run: func(ctx context.Context, b *bus.Bus) error {
		<-ctx.Done()
		return nil
	}})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	<-h.Done()
}

func TestRunPropagatesModuleError(t *testing.T) {
	h := New(nil, nil)
	boom := errors.New("boom")
	h.Register(&fakeModule{name: "failing", run: func(ctx context.Context, b *bus.Bus) error {
		return boom
	}})
	h.Register(&fakeModule{name: "waiter", run: func(ctx context.Context, b *bus.Bus) error {
		<-ctx.Done()
		return nil
	}})

	err := h.Run(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, boom)
}
