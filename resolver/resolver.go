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

// Package resolver holds the process-wide backing-store registry used to
// resolve compact Loc references without copying the referenced bytes.
// Payloads too small to be worth mapping (plutus data, small datums) are
// carried inline on the Loc itself.
package resolver

import (
	"errors"
	"fmt"
	"sync"
)

// ErrOutOfBounds is returned when a region falls outside its backing
// object, or offset+len overflows before the bounds check can even run.
var ErrOutOfBounds = errors.New("resolver: region out of bounds")

// StoreID names one of the Registry's backing stores, e.g. a snapshot
// chunk file or an in-memory arena used by a single module.
type StoreID string

// ObjectID names one object within a store.
type ObjectID uint64

// Region is a byte range within an object.
type Region struct {
	Offset uint64
	Len    uint64
}

// Loc is a uniform locator: either Inline carries the referenced bytes
// directly, or Store/Object/Region point into a backing registered with a
// Registry.
type Loc struct {
	Store  StoreID
	Object ObjectID
	Region Region
	Inline []byte
}

// IsInline reports whether l carries its bytes directly rather than
// pointing into a registered backing.
func (l Loc) IsInline() bool {
	return l.Inline != nil
}

// backing is a reference-counted byte buffer. refCount keeps the bytes
// alive for any Resolved view already handed out even if Evict runs
// concurrently.
type backing struct {
	mu       sync.Mutex
	data     []byte
	refCount int
	evicted  bool
}

// Resolved is a view into a backing's bytes. Callers must call Release
// when done so the Registry can reclaim the backing once evicted and
// unreferenced.
type Resolved struct {
	Bytes []byte

	b *backing
}

// Release drops this view's reference to its backing store. It is safe to
// call more than once; subsequent calls are no-ops.
func (r *Resolved) Release() {
	if r.b == nil {
		return
	}
	b := r.b
	r.b = nil
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refCount--
}

// Registry holds every registered backing object, keyed by (StoreID,
// ObjectID), and resolves Locs against them.
type Registry struct {
	mu       sync.RWMutex
	backings map[StoreID]map[ObjectID]*backing
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		backings: make(map[StoreID]map[ObjectID]*backing),
	}
}

// Register installs data as the backing for (store, object), replacing any
// prior backing under that key.
func (r *Registry) Register(store StoreID, object ObjectID, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	objs, ok := r.backings[store]
	if !ok {
		objs = make(map[ObjectID]*backing)
		r.backings[store] = objs
	}
	objs[object] = &backing{data: data}
}

// Resolve returns a Resolved view of loc. For an inline Loc this never
// fails and never touches the Registry; for a store-backed Loc it looks up
// the backing, bounds-checks the region, and increments the backing's
// reference count before returning.
func (r *Registry) Resolve(loc Loc) (*Resolved, error) {
	if loc.IsInline() {
		return &Resolved{Bytes: loc.Inline}, nil
	}

	r.mu.RLock()
	objs, ok := r.backings[loc.Store]
	var b *backing
	if ok {
		b = objs[loc.Object]
	}
	r.mu.RUnlock()
	if b == nil {
		return nil, fmt.Errorf("resolver: no backing registered for store %q object %d", loc.Store, loc.Object)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.evicted {
		return nil, fmt.Errorf("resolver: backing for store %q object %d was evicted", loc.Store, loc.Object)
	}

	end := loc.Region.Offset + loc.Region.Len
	if end < loc.Region.Offset {
		// offset+len overflowed.
		return nil, ErrOutOfBounds
	}
	if end > uint64(len(b.data)) {
		return nil, ErrOutOfBounds
	}

	b.refCount++
	return &Resolved{
		Bytes: b.data[loc.Region.Offset:end],
		b:     b,
	}, nil
}

// Evict marks (store, object) evicted so future Resolve calls fail. The
// backing's memory is only released once every outstanding Resolved view
// has been Released; until then this call simply returns, leaving the
// bytes referenced.
func (r *Registry) Evict(store StoreID, object ObjectID) {
	r.mu.Lock()
	objs, ok := r.backings[store]
	var b *backing
	if ok {
		b = objs[object]
		delete(objs, object)
	}
	r.mu.Unlock()
	if b == nil {
		return
	}
	b.mu.Lock()
	b.evicted = true
	b.mu.Unlock()
}
