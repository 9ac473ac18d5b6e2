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

package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveInlineNeverTouchesRegistry(t *testing.T) {
	r := New()
	loc := Loc{Inline: []byte("hello")}

	res, err := r.Resolve(loc)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), res.Bytes)
}

func TestResolveStoreBackedWithinBounds(t *testing.T) {
	r := New()
	r.Register("chunk-0", 1, []byte("0123456789"))

	res, err := r.Resolve(Loc{Store: "chunk-0", Object: 1, Region: Region{Offset: 2, Len: 4}})
	require.NoError(t, err)
	require.Equal(t, []byte("2345"), res.Bytes)
	res.Release()
}

func TestResolveOutOfBoundsFails(t *testing.T) {
	r := New()
	r.Register("chunk-0", 1, []byte("0123456789"))

	_, err := r.Resolve(Loc{Store: "chunk-0", Object: 1, Region: Region{Offset: 8, Len: 10}})
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestResolveOffsetLenOverflowFails(t *testing.T) {
	r := New()
	r.Register("chunk-0", 1, []byte("0123456789"))

	_, err := r.Resolve(Loc{Store: "chunk-0", Object: 1, Region: Region{Offset: 1 << 63, Len: 1 << 63}})
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestResolveMissingBackingFails(t *testing.T) {
	r := New()
	_, err := r.Resolve(Loc{Store: "missing", Object: 1, Region: Region{Len: 1}})
	require.Error(t, err)
}

func TestEvictedBackingFailsToResolve(t *testing.T) {
	r := New()
	r.Register("chunk-0", 1, []byte("0123456789"))
	r.Evict("chunk-0", 1)

	_, err := r.Resolve(Loc{Store: "chunk-0", Object: 1, Region: Region{Len: 1}})
	require.Error(t, err)
}

func TestEvictDoesNotInvalidateOutstandingResolved(t *testing.T) {
	r := New()
	r.Register("chunk-0", 1, []byte("0123456789"))

	res, err := r.Resolve(Loc{Store: "chunk-0", Object: 1, Region: Region{Offset: 0, Len: 5}})
	require.NoError(t, err)

	r.Evict("chunk-0", 1)
	require.Equal(t, []byte("01234"), res.Bytes)
	res.Release()
}
