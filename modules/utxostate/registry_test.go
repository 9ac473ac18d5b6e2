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

package utxostate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acropolis-cardano/acropolis/common"
)

func makeRef(b byte) common.UTxOIdentifier {
	var h common.Hash32
	h[0] = b
	return common.UTxOIdentifier{TxHash: h, OutputIndex: 0}
}

func TestRegistry_AddAndLookup(t *testing.T) {
	r := New()
	ref := makeRef(1)
	for i := 0; i <= 10; i++ {
		r.NextBlock()
	}

	_, err := r.Add(10, 0, ref)
	require.NoError(t, err)

	id, ok := r.Lookup(ref)
	require.True(t, ok)
	require.Equal(t, uint64(10), id.BlockNumber)
	require.Equal(t, uint16(0), id.TxIndex)
}

func TestRegistry_ConsumeRemovesEntry(t *testing.T) {
	r := New()
	ref := makeRef(2)
	for i := 0; i <= 10; i++ {
		r.NextBlock()
	}
	_, err := r.Add(10, 0, ref)
	require.NoError(t, err)

	_, ok := r.Lookup(ref)
	require.True(t, ok)

	r.NextBlock()
	_, err = r.Consume(11, ref)
	require.NoError(t, err)

	_, ok = r.Lookup(ref)
	require.False(t, ok)
}

func TestRegistry_RollbackRestoresSpent(t *testing.T) {
	r := New()
	ref := makeRef(3)
	for i := 0; i <= 10; i++ {
		r.NextBlock()
	}
	_, err := r.Add(10, 0, ref)
	require.NoError(t, err)

	r.NextBlock()
	_, err = r.Consume(11, ref)
	require.NoError(t, err)
	_, ok := r.Lookup(ref)
	require.False(t, ok)

	r.RollbackBefore(11)

	id, ok := r.Lookup(ref)
	require.True(t, ok)
	require.Equal(t, uint64(10), id.BlockNumber)
}

func TestRegistry_RollbackDiscardsCreated(t *testing.T) {
	r := New()
	ref := makeRef(4)
	for i := 0; i <= 15; i++ {
		r.NextBlock()
	}
	_, err := r.Add(15, 1, ref)
	require.NoError(t, err)

	_, ok := r.Lookup(ref)
	require.True(t, ok)

	r.RollbackBefore(14)

	_, ok = r.Lookup(ref)
	require.False(t, ok)
}

func TestRegistry_DuplicateAddFails(t *testing.T) {
	r := New()
	ref := makeRef(5)
	r.NextBlock()
	_, err := r.Add(0, 0, ref)
	require.NoError(t, err)

	_, err = r.Add(0, 1, ref)
	require.Error(t, err)
}

func TestRegistry_ConsumeMissingFails(t *testing.T) {
	r := New()
	r.NextBlock()
	_, err := r.Consume(0, makeRef(6))
	require.Error(t, err)
}
