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

// Package statehistory provides a bounded ring of (block number, snapshot)
// pairs so that any module can revert its own derived state on a chain
// rollback without coordinating with other modules.
package statehistory

import (
	"errors"
	"sync"

	"github.com/acropolis-cardano/acropolis/common"
)

// ErrNoSnapshot is returned when a rollback target predates every retained
// snapshot, which should only happen if the rollback depth exceeds k.
var ErrNoSnapshot = errors.New("statehistory: no snapshot retained before requested block")

type entry[S any] struct {
	number uint64
	state  S
}

// History is a bounded, depth common.RollbackWindow ring of snapshots for a
// single module's state. It is owned exclusively by that module: one
// goroutine commits, any number of readers may call Current concurrently.
type History[S any] struct {
	mu       sync.RWMutex
	depth    int
	entries  []entry[S]
	cur      S
	haveCur  bool
}

// New creates a History retaining up to common.RollbackWindow snapshots.
func New[S any]() *History[S] {
	return NewWithDepth[S](common.RollbackWindow)
}

// NewWithDepth creates a History with an explicit retention depth, mainly
// for tests that don't want to commit 2161 blocks to exercise eviction.
func NewWithDepth[S any](depth int) *History[S] {
	if depth < 1 {
		depth = 1
	}
	return &History[S]{depth: depth}
}

// Current returns the most recently committed state and true, or the zero
// value and false if nothing has been committed yet.
func (h *History[S]) Current() (S, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cur, h.haveCur
}

// Commit records state as the snapshot valid as of block number. number
// must be strictly greater than every previously committed number; callers
// that skip blocks (bootstrap, replay) may still call Commit once per
// block they do observe.
func (h *History[S]) Commit(number uint64, state S) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, entry[S]{number: number, state: state})
	if len(h.entries) > h.depth {
		h.entries = h.entries[len(h.entries)-h.depth:]
	}
	h.cur = state
	h.haveCur = true
}

// GetRolledBackState returns the snapshot valid immediately before block
// number, i.e. the most recent commit with number < the rollback target,
// and discards every retained snapshot at or after it. Call this, then
// resume committing from the returned state.
func (h *History[S]) GetRolledBackState(number uint64) (S, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var zero S
	idx := -1
	for i := len(h.entries) - 1; i >= 0; i-- {
		if h.entries[i].number < number {
			idx = i
			break
		}
	}
	if idx < 0 {
		return zero, ErrNoSnapshot
	}

	restored := h.entries[idx].state
	h.entries = h.entries[:idx+1]
	h.cur = restored
	h.haveCur = true
	return restored, nil
}

// Len reports how many snapshots are currently retained.
func (h *History[S]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}
