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

// Package engine runs the process: it registers modules in dependency
// order, starts each on its own goroutine, and supervises them until
// shutdown is requested or one reports a fatal error.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/acropolis-cardano/acropolis/bus"
)

// Module is a long-lived component registered with a Harness. Run should
// block, doing its work by publishing to and subscribing from b, until ctx
// is cancelled; it should return nil on a clean shutdown.
type Module interface {
	Name() string
	Run(ctx context.Context, b *bus.Bus) error
}

// Harness owns the bus and supervises a fixed, ordered set of modules. It
// mirrors the teacher's Connection: every module goroutine selects on a
// shutdown signal (ctx) and reports failure on a shared error channel
// rather than being force-killed.
type Harness struct {
	Bus *bus.Bus

	modules   []Module
	errorChan chan error
	doneChan  chan struct{}
	onceClose sync.Once
	wg        sync.WaitGroup
	log       *slog.Logger
}

// New creates a Harness backed by b. If b is nil, a fresh bus.Bus is
// created.
func New(b *bus.Bus, log *slog.Logger) *Harness {
	if b == nil {
		b = bus.New()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Harness{
		Bus:       b,
		errorChan: make(chan error, 1),
		doneChan:  make(chan struct{}),
		log:       log,
	}
}

// Register appends a module to the harness's start order. Modules must be
// registered leaves-first: a module's dependencies (the modules whose
// output topics it subscribes to) must be registered before it, so that
// subscriptions exist before the first publisher goroutine starts.
func (h *Harness) Register(m Module) {
	h.modules = append(h.modules, m)
}

// ErrorChan reports the first fatal error raised by any module. It is
// never closed; Done reports when the harness has shut down.
func (h *Harness) ErrorChan() <-chan error {
	return h.errorChan
}

// Run starts every registered module and blocks until ctx is cancelled or
// a module reports a fatal error, then waits for every module goroutine to
// return before returning itself.
func (h *Harness) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for _, m := range h.modules {
		h.wg.Add(1)
		go h.runModule(runCtx, m)
	}

	var runErr error
	select {
	case <-runCtx.Done():
	case err := <-h.errorChan:
		runErr = err
		cancel()
	}

	h.wg.Wait()
	h.onceClose.Do(func() { close(h.doneChan) })
	return runErr
}

func (h *Harness) runModule(ctx context.Context, m Module) {
	defer h.wg.Done()
	if err := m.Run(ctx, h.Bus); err != nil {
		wrapped := fmt.Errorf("module %s: %w", m.Name(), err)
		h.log.Error("module exited with error", "module", m.Name(), "error", err)
		select {
		case h.errorChan <- wrapped:
		default:
		}
		return
	}
	h.log.Debug("module stopped", "module", m.Name())
}

// Done reports when the harness has fully shut down, for callers that need
// to wait without holding Run's return value (e.g. a signal handler
// goroutine).
func (h *Harness) Done() <-chan struct{} {
	return h.doneChan
}
