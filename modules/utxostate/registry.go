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

// Package utxostate owns the live UTxO set: a volatile, rollback-window
// tier of recent creations and spends layered over an immutable base.
package utxostate

import (
	"fmt"

	"github.com/acropolis-cardano/acropolis/common"
)

// volatileIndex retains, per block within the rollback window, the set of
// keys added at that block. PruneOnOrAfter discards every block at or
// after a rollback target and returns the keys that were in them, so the
// caller can undo their effect.
type volatileIndex[K comparable] struct {
	window     []map[K]struct{}
	startBlock uint64
	capacity   int
}

func newVolatileIndex[K comparable](capacity int) *volatileIndex[K] {
	return &volatileIndex[K]{capacity: capacity}
}

func (v *volatileIndex[K]) nextBlock() {
	if len(v.window) == v.capacity {
		v.window = v.window[1:]
		v.startBlock++
	}
	v.window = append(v.window, make(map[K]struct{}))
}

func (v *volatileIndex[K]) add(key K) {
	if len(v.window) == 0 {
		panic("utxostate: add called before any block was initialized with nextBlock")
	}
	v.window[len(v.window)-1][key] = struct{}{}
}

func (v *volatileIndex[K]) pruneOnOrAfter(block uint64) []K {
	var out []K
	for len(v.window) > 0 {
		lastBlock := v.startBlock + uint64(len(v.window)) - 1
		if lastBlock < block {
			break
		}
		last := v.window[len(v.window)-1]
		v.window = v.window[:len(v.window)-1]
		for k := range last {
			out = append(out, k)
		}
	}
	return out
}

type spentEntry struct {
	ref common.UTxOIdentifier
	id  common.TxIdentifier
}

// Registry is the live UTxO registry: a HashMap of compact UTxOIdentifier
// to TxIdentifier for the whole chain, with the window of creations and
// spends in the last k+1 blocks retained so rollback can undo them.
//
// Grounded on the rollback bookkeeping pattern of a volatile creation/spend
// window layered over a live membership map; generalized here from a
// single rollback window type into two independently pruned windows (one
// for creations, one for spends) per the same pattern.
type Registry struct {
	live       map[common.UTxOIdentifier]common.TxIdentifier
	created    *volatileIndex[common.UTxOIdentifier]
	spent      *volatileIndex[spentEntry]
	lastNumber uint64

	// scripts caches reference-script bytes by the UTxO that carries
	// them, for modules/txunpacker to resolve a later transaction's
	// reference inputs without re-walking the chain. It is not pruned by
	// rollback: a reference script's content never changes even if the
	// output carrying it is later rolled back and re-added identically.
	scripts map[common.UTxOIdentifier][]byte
}

// New creates a Registry retaining common.RollbackWindow blocks of
// volatile history.
func New() *Registry {
	return &Registry{
		live:    make(map[common.UTxOIdentifier]common.TxIdentifier),
		created: newVolatileIndex[common.UTxOIdentifier](common.RollbackWindow),
		spent:   newVolatileIndex[spentEntry](common.RollbackWindow),
		scripts: make(map[common.UTxOIdentifier][]byte),
	}
}

// SetScriptRef records the reference-script bytes an output carries,
// keyed by its UTxOIdentifier.
func (r *Registry) SetScriptRef(ref common.UTxOIdentifier, script []byte) {
	if len(script) == 0 {
		return
	}
	r.scripts[ref] = script
}

// ScriptRef returns the reference-script bytes previously recorded for
// ref, if any.
func (r *Registry) ScriptRef(ref common.UTxOIdentifier) ([]byte, bool) {
	s, ok := r.scripts[ref]
	return s, ok
}

// BootstrapFromGenesis seeds the live set from a snapshot's UTxO pairs,
// all attributed to block 0, before normal block processing begins.
func (r *Registry) BootstrapFromGenesis(pairs []struct {
	Ref common.UTxOIdentifier
	ID  common.TxIdentifier
}) {
	r.created.nextBlock()
	r.spent.nextBlock()
	for _, p := range pairs {
		r.live[p.Ref] = p.ID
		r.created.add(p.Ref)
	}
	r.lastNumber = 0
}

// NextBlock advances the volatile window by one block, evicting the
// oldest retained block's bookkeeping once the window is full.
func (r *Registry) NextBlock() {
	r.created.nextBlock()
	r.spent.nextBlock()
	r.lastNumber++
}

// Add records a new output as live and returns its UTxOIdentifier. It
// fails if ref is already present, which indicates either a duplicate
// block replay or a genuine protocol violation (duplicate tx hash).
func (r *Registry) Add(blockNumber uint64, txIndex uint16, ref common.UTxOIdentifier) (common.TxIdentifier, error) {
	id := common.TxIdentifier{BlockNumber: blockNumber, TxIndex: txIndex}
	if existing, ok := r.live[ref]; ok {
		return common.TxIdentifier{}, fmt.Errorf("utxostate: duplicate UTxO insertion for %s: old=%+v new=%+v", ref, existing, id)
	}
	r.live[ref] = id
	r.created.add(ref)
	r.lastNumber = blockNumber
	return id, nil
}

// Consume removes ref from the live set, recording it in the spent window
// so a rollback can restore it, and returns the TxIdentifier it was
// created under. It fails if ref is not currently live.
func (r *Registry) Consume(blockNumber uint64, ref common.UTxOIdentifier) (common.TxIdentifier, error) {
	id, ok := r.live[ref]
	if !ok {
		return common.TxIdentifier{}, fmt.Errorf("utxostate: attempted to consume non-existent or already-spent UTxO: %s", ref)
	}
	delete(r.live, ref)
	r.spent.add(spentEntry{ref: ref, id: id})
	r.lastNumber = blockNumber
	return id, nil
}

// Lookup returns the TxIdentifier a live UTxOIdentifier was created under.
func (r *Registry) Lookup(ref common.UTxOIdentifier) (common.TxIdentifier, bool) {
	id, ok := r.live[ref]
	return id, ok
}

// RollbackBefore undoes every creation and spend at or after block,
// restoring the live set to its state immediately before block.
func (r *Registry) RollbackBefore(block uint64) {
	for _, e := range r.spent.pruneOnOrAfter(block) {
		r.live[e.ref] = e.id
	}
	for _, ref := range r.created.pruneOnOrAfter(block) {
		delete(r.live, ref)
	}
	r.lastNumber = block
}

// Len reports the number of live UTxOs, for metrics and tests.
func (r *Registry) Len() int {
	return len(r.live)
}

// UTxOQuery asks whether a specific UTxO is currently live, and which
// transaction created it. It implements the Kind() contract
// modules/queryrouter dispatches on.
type UTxOQuery struct {
	Ref common.UTxOIdentifier
}

func (UTxOQuery) Kind() string { return "utxo.byIdentifier" }

// UTxOQueryResult is the response body for UTxOQuery.
type UTxOQueryResult struct {
	Live      bool
	CreatedBy common.TxIdentifier
}

// HandleUTxOQuery answers a UTxOQuery against r, for registration with
// modules/queryrouter.Router.Register.
func (r *Registry) HandleUTxOQuery(q UTxOQuery) UTxOQueryResult {
	id, ok := r.Lookup(q.Ref)
	return UTxOQueryResult{Live: ok, CreatedBy: id}
}
