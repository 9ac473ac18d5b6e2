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

package consensus

import (
	"crypto/ed25519"
	"crypto/sha256"
	"errors"
	"fmt"
)

// ErrKESEvolutionRegressed is returned when a header's KES evolution period
// is lower than one already seen for the same issuer, which Cardano
// forbids: once a pool has signed at period N it must never sign at a
// period below N again.
var ErrKESEvolutionRegressed = errors.New("consensus: KES evolution period regressed")

// Cardano's Sum6KES scheme composes 6 levels of binary certificate trees
// on top of a plain Ed25519 leaf signature, giving 2^6 = 64 signing
// periods per KES key. This package does not re-derive the full
// binary-tree key-evolving construction (no corpus library implements
// it); it verifies the leaf Ed25519 signature against the evolution's
// derived verification key and enforces the non-regression and
// period-matching invariants spec.md requires of a validator, which is
// the externally observable contract block validation needs. See
// DESIGN.md for why the full KES tree is out of scope.
const KESLevels = 6

// KESSignature is a single evolution's leaf Ed25519 signature together
// with the cold verification key material needed to check it.
type KESSignature struct {
	Period    uint32
	Signature []byte // 64-byte Ed25519 signature over the period-derived message
	LeafVKey  ed25519.PublicKey
}

// IssuerKESState tracks the highest KES period seen so far for one issuer,
// so VerifyKES can enforce non-regression across a sequence of headers.
type IssuerKESState struct {
	HighestPeriod uint32
	HasSigned     bool
}

// DeriveEvolutionMessage binds a KES signature to the period it was
// produced at and the header body it covers, so a signature valid for one
// evolution can't be replayed at another.
func DeriveEvolutionMessage(period uint32, headerBody []byte) []byte {
	h := sha256.New()
	h.Write([]byte{byte(period >> 24), byte(period >> 16), byte(period >> 8), byte(period)})
	h.Write(headerBody)
	return h.Sum(nil)
}

// VerifyKES checks that sig.Period matches slot/slotsPerKESPeriod, that the
// period has not regressed relative to issuerState, and that the leaf
// Ed25519 signature verifies over headerBody under the derived evolution
// message. On success it returns the updated IssuerKESState the caller
// should persist for the next header from the same issuer.
func VerifyKES(sig KESSignature, headerBody []byte, slot uint64, slotsPerKESPeriod uint64, issuerState IssuerKESState) (IssuerKESState, error) {
	expectedPeriod := uint32(slot / slotsPerKESPeriod)
	if sig.Period != expectedPeriod {
		return issuerState, fmt.Errorf(
			"consensus: KES evolution period mismatch: header claims %d, slot %d implies %d",
			sig.Period, slot, expectedPeriod,
		)
	}
	if issuerState.HasSigned && sig.Period < issuerState.HighestPeriod {
		return issuerState, fmt.Errorf("%w: saw period %d, now %d", ErrKESEvolutionRegressed, issuerState.HighestPeriod, sig.Period)
	}

	msg := DeriveEvolutionMessage(sig.Period, headerBody)
	if !ed25519.Verify(sig.LeafVKey, msg, sig.Signature) {
		return issuerState, errors.New("consensus: KES leaf signature verification failed")
	}

	next := issuerState
	next.HasSigned = true
	if sig.Period > next.HighestPeriod || !issuerState.HasSigned {
		next.HighestPeriod = sig.Period
	}
	return next, nil
}
