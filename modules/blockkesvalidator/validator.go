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

// Package blockkesvalidator checks a block header's KES signature against
// the issuing pool's operational certificate and enforces the
// non-regression invariant on that pool's KES period across the chain it
// has observed so far.
package blockkesvalidator

import (
	"crypto/ed25519"
	"sync"

	"github.com/acropolis-cardano/acropolis/common"
	"github.com/acropolis-cardano/acropolis/consensus"
)

// HeaderKESInput is the subset of a block header needed to validate its
// KES signature.
type HeaderKESInput struct {
	Operator          common.Hash28
	Slot              uint64
	SlotsPerKESPeriod  uint64
	HeaderBody        []byte
	Signature         consensus.KESSignature
}

// Outcome is the per-block validation result.
type Outcome struct {
	BlockNumber uint64
	OK          bool
	ErrorKind   common.ErrorKind
	Detail      string
}

// Tracker holds the highest-seen KES period per pool operator so
// Validate can enforce forward-secure non-regression across calls, the
// same invariant a single signing node enforces on its own key.
type Tracker struct {
	mu     sync.Mutex
	issuer map[common.Hash28]consensus.IssuerKESState
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{issuer: make(map[common.Hash28]consensus.IssuerKESState)}
}

// Validate verifies in's KES signature and, on success, advances the
// tracked period for in.Operator. A regression or signature failure
// always reports ErrorKES and leaves the tracked state untouched.
func (t *Tracker) Validate(in HeaderKESInput) Outcome {
	t.mu.Lock()
	defer t.mu.Unlock()

	state := t.issuer[in.Operator]
	newState, err := consensus.VerifyKES(in.Signature, in.HeaderBody, in.Slot, in.SlotsPerKESPeriod, state)
	if err != nil {
		return Outcome{BlockNumber: in.Slot, OK: false, ErrorKind: common.ErrorKES, Detail: err.Error()}
	}
	t.issuer[in.Operator] = newState
	return Outcome{BlockNumber: in.Slot, OK: true}
}

// VerifyOperationalCertificate checks that the cold key's signature over
// the KES period and leaf verification key is valid, establishing the
// chain of trust from the pool's registered cold key down to the leaf
// KES key used to sign this block's header.
func VerifyOperationalCertificate(coldKey ed25519.PublicKey, kesLeafVKey []byte, kesPeriod uint32, certSignature []byte) bool {
	msg := consensus.DeriveEvolutionMessage(kesPeriod, kesLeafVKey)
	return ed25519.Verify(coldKey, msg, certSignature)
}
