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

package bus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acropolis-cardano/acropolis/common"
)

func TestSerialiserReleasesInOrderDespiteOutOfOrderArrival(t *testing.T) {
	s := NewSerialiser(4)
	var released []uint64

	handle := func(msg common.Message) error {
		released = append(released, msg.Seq.Number)
		return nil
	}

	require.NoError(t, s.accept(common.Message{Seq: common.Sequence{Number: 0}}, handle))
	require.NoError(t, s.accept(common.Message{Seq: common.Sequence{Number: 2}}, handle))
	require.NoError(t, s.accept(common.Message{Seq: common.Sequence{Number: 1}}, handle))
	require.NoError(t, s.accept(common.Message{Seq: common.Sequence{Number: 3}}, handle))

	require.Equal(t, []uint64{0, 1, 2, 3}, released)
}

func TestSerialiserFailsWhenGapExceedsHorizon(t *testing.T) {
	s := NewSerialiser(2)
	handle := func(common.Message) error { return nil }

	require.NoError(t, s.accept(common.Message{Seq: common.Sequence{Number: 0}}, handle))
	require.NoError(t, s.accept(common.Message{Seq: common.Sequence{Number: 2}}, handle))
	require.NoError(t, s.accept(common.Message{Seq: common.Sequence{Number: 3}}, handle))
	err := s.accept(common.Message{Seq: common.Sequence{Number: 4}}, handle)
	require.ErrorIs(t, err, ErrSerialiserGapExceeded)
}

func TestSerialiserIgnoresStaleRedelivery(t *testing.T) {
	s := NewSerialiser(4)
	var released []uint64
	handle := func(msg common.Message) error {
		released = append(released, msg.Seq.Number)
		return nil
	}

	require.NoError(t, s.accept(common.Message{Seq: common.Sequence{Number: 0}}, handle))
	require.NoError(t, s.accept(common.Message{Seq: common.Sequence{Number: 1}}, handle))
	require.NoError(t, s.accept(common.Message{Seq: common.Sequence{Number: 0}}, handle))

	require.Equal(t, []uint64{0, 1}, released)
}
