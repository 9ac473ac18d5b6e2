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
	"testing"

	"github.com/stretchr/testify/require"
)

func signedKES(t *testing.T, period uint32, headerBody []byte) (KESSignature, ed25519.PublicKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	msg := DeriveEvolutionMessage(period, headerBody)
	sig := ed25519.Sign(priv, msg)
	return KESSignature{Period: period, Signature: sig, LeafVKey: pub}, pub
}

func TestVerifyKES_AcceptsMatchingPeriod(t *testing.T) {
	body := []byte("header-body")
	sig, _ := signedKES(t, 3, body)

	next, err := VerifyKES(sig, body, 3*100, 100, IssuerKESState{})
	require.NoError(t, err)
	require.Equal(t, uint32(3), next.HighestPeriod)
	require.True(t, next.HasSigned)
}

func TestVerifyKES_RejectsPeriodMismatch(t *testing.T) {
	body := []byte("header-body")
	sig, _ := signedKES(t, 3, body)

	_, err := VerifyKES(sig, body, 5*100, 100, IssuerKESState{})
	require.Error(t, err)
}

func TestVerifyKES_RejectsRegression(t *testing.T) {
	body := []byte("header-body")
	sig, _ := signedKES(t, 2, body)

	state := IssuerKESState{HighestPeriod: 4, HasSigned: true}
	_, err := VerifyKES(sig, body, 2*100, 100, state)
	require.ErrorIs(t, err, ErrKESEvolutionRegressed)
}

func TestVerifyKES_RejectsBadSignature(t *testing.T) {
	body := []byte("header-body")
	sig, _ := signedKES(t, 1, body)
	sig.Signature[0] ^= 0xff

	_, err := VerifyKES(sig, body, 1*100, 100, IssuerKESState{})
	require.Error(t, err)
}
