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

package common

// EpochParametersView is the subset of the live protocol parameter set
// the rewards engine needs at an epoch boundary, projected by
// modules/parametersstate and consumed by modules/accountsstate so neither
// package needs to import the other's parameter representation.
type EpochParametersView struct {
	LastEpochFees        uint64
	ActiveSlotsCoeffNum  uint64
	ActiveSlotsCoeffDen  uint64
	EpochLength          uint64
	Decentralisation     float64
	PoolPledgeInfluence  float64
	MonetaryExpansionRho float64
	TreasuryCutTau       float64
}
