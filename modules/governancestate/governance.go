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

// Package governancestate tracks the committee, DRep registrations, and
// governance action proposals, mutating on every Conway-era block and at
// every epoch boundary rather than only inside a replayed test vector.
package governancestate

import (
	lcommon "github.com/blinklabs-io/gouroboros/ledger/common"
)

// CommitteeMember mirrors a constitutional committee member's on-chain
// state: its cold key, optional authorized hot key, expiry, and whether it
// has resigned.
type CommitteeMember struct {
	ColdKey     lcommon.Blake2b224
	HotKey      *lcommon.Blake2b224
	ExpiryEpoch uint64
	Resigned    bool
}

// Proposal is the live state of one governance action: its content plus
// whether and when it has been ratified/enacted.
type Proposal struct {
	ActionID      string // "txHash#index"
	ParentID      *string
	Payload       []byte
	RatifiedEpoch *uint64
	Enacted       bool
	Purpose       string
	YesVotes      int
}

// State is the live governance state for the whole chain. It generalizes
// the conformance harness's GovernanceState/ProposalState bookkeeping from
// a test-replay snapshot into a module that mutates block by block.
type State struct {
	CurrentEpoch uint64

	CommitteeMembers map[lcommon.Blake2b224]*CommitteeMember
	DRepRegistered   map[lcommon.Blake2b224]bool
	HotKeyToCold     map[lcommon.Blake2b224]lcommon.Blake2b224
	Proposals        map[string]*Proposal
	// Roots tracks the last enacted proposal per governance purpose
	// (committee, constitution, hard-fork, parameter-change, etc.), the
	// "previous governance action id" chain each new proposal of that
	// purpose must reference.
	Roots map[string]string
}

// New creates an empty governance State.
func New() *State {
	return &State{
		CommitteeMembers: make(map[lcommon.Blake2b224]*CommitteeMember),
		DRepRegistered:   make(map[lcommon.Blake2b224]bool),
		HotKeyToCold:     make(map[lcommon.Blake2b224]lcommon.Blake2b224),
		Proposals:        make(map[string]*Proposal),
		Roots:            make(map[string]string),
	}
}

// Clone returns a deep point-in-time copy of s safe to retain in a
// statehistory.History ring: every map is mutated in place by this
// package's setters, so each must be copied rather than shared.
func (s *State) Clone() State {
	members := make(map[lcommon.Blake2b224]*CommitteeMember, len(s.CommitteeMembers))
	for k, v := range s.CommitteeMembers {
		m := *v
		members[k] = &m
	}
	drep := make(map[lcommon.Blake2b224]bool, len(s.DRepRegistered))
	for k, v := range s.DRepRegistered {
		drep[k] = v
	}
	hotToCold := make(map[lcommon.Blake2b224]lcommon.Blake2b224, len(s.HotKeyToCold))
	for k, v := range s.HotKeyToCold {
		hotToCold[k] = v
	}
	proposals := make(map[string]*Proposal, len(s.Proposals))
	for k, v := range s.Proposals {
		p := *v
		proposals[k] = &p
	}
	roots := make(map[string]string, len(s.Roots))
	for k, v := range s.Roots {
		roots[k] = v
	}
	return State{
		CurrentEpoch:     s.CurrentEpoch,
		CommitteeMembers: members,
		DRepRegistered:   drep,
		HotKeyToCold:     hotToCold,
		Proposals:        proposals,
		Roots:            roots,
	}
}

// RegisterDRep marks hash as a registered DRep.
func (s *State) RegisterDRep(hash lcommon.Blake2b224) {
	s.DRepRegistered[hash] = true
}

// DeregisterDRep removes hash's DRep registration.
func (s *State) DeregisterDRep(hash lcommon.Blake2b224) {
	delete(s.DRepRegistered, hash)
}

// AuthorizeHotKey records that coldKey has authorized hotKey to vote on
// its behalf, registering coldKey as a committee member if it is not
// already one.
func (s *State) AuthorizeHotKey(coldKey, hotKey lcommon.Blake2b224) {
	member, ok := s.CommitteeMembers[coldKey]
	if !ok {
		member = &CommitteeMember{ColdKey: coldKey}
		s.CommitteeMembers[coldKey] = member
	}
	member.HotKey = &hotKey
	s.HotKeyToCold[hotKey] = coldKey
}

// ResignCommitteeMember marks coldKey resigned; it remains in the map so
// historical votes it cast can still be attributed.
func (s *State) ResignCommitteeMember(coldKey lcommon.Blake2b224) {
	if member, ok := s.CommitteeMembers[coldKey]; ok {
		member.Resigned = true
	}
}

// AddProposal registers a new proposal under actionID, recording parentID
// as the governance-purpose root it must chain from if present.
func (s *State) AddProposal(actionID string, parentID *string, payload []byte) {
	s.Proposals[actionID] = &Proposal{
		ActionID: actionID,
		ParentID: parentID,
		Payload:  payload,
	}
}

// RecordVote tallies a single vote against actionID. Only the payload's
// first byte is read: an empty payload or a first byte of 0 is not
// counted, any other value counts as yes. This only tracks a running yes
// count per proposal, sufficient for ActiveCommitteeThresholdMet at the
// next epoch boundary.
func (s *State) RecordVote(actionID string, payload []byte) {
	p, ok := s.Proposals[actionID]
	if !ok {
		return
	}
	if len(payload) == 0 || payload[0] == 0 {
		return
	}
	p.YesVotes++
}

// Ratify marks a proposal ratified as of epoch; it becomes eligible for
// enactment at the next epoch boundary.
func (s *State) Ratify(actionID string, epoch uint64) {
	if p, ok := s.Proposals[actionID]; ok {
		p.RatifiedEpoch = &epoch
	}
}

// Enact marks a ratified proposal enacted and updates its governance
// purpose's root, so later proposals of the same purpose must chain from
// it.
func (s *State) Enact(actionID string, purpose string) {
	if p, ok := s.Proposals[actionID]; ok {
		p.Enacted = true
		s.Roots[purpose] = actionID
	}
}

// ActiveCommitteeThresholdMet reports whether enough non-resigned
// committee members with an authorized hot key have voted yes, against a
// numerator/denominator threshold (e.g. 2/3).
func (s *State) ActiveCommitteeThresholdMet(yesVotes int, thresholdNumer, thresholdDenom uint64) bool {
	var active int
	for _, m := range s.CommitteeMembers {
		if !m.Resigned && m.HotKey != nil && m.ExpiryEpoch > s.CurrentEpoch {
			active++
		}
	}
	if active == 0 {
		return false
	}
	return uint64(yesVotes)*thresholdDenom >= uint64(active)*thresholdNumer
}

// defaultCommitteeThresholdNumer/Denom is the constitutional committee's
// default approval threshold of 2/3, used when a proposal carries no
// action-specific override.
const (
	defaultCommitteeThresholdNumer = 2
	defaultCommitteeThresholdDenom = 3
)

// OnEpochBoundary advances the current epoch, drops committee members
// whose expiry has passed (matching the "committee members don't vote
// once expired" rule without deleting their historical vote record from
// Proposals), ratifies any not-yet-ratified proposal whose yes votes meet
// the committee threshold, and enacts any proposal ratified at a prior
// epoch boundary.
func (s *State) OnEpochBoundary(newEpoch uint64) {
	for hash, m := range s.CommitteeMembers {
		if m.ExpiryEpoch <= newEpoch {
			delete(s.CommitteeMembers, hash)
		}
	}
	s.CurrentEpoch = newEpoch

	for actionID, p := range s.Proposals {
		if p.Enacted {
			continue
		}
		if p.RatifiedEpoch == nil {
			if s.ActiveCommitteeThresholdMet(p.YesVotes, defaultCommitteeThresholdNumer, defaultCommitteeThresholdDenom) {
				s.Ratify(actionID, newEpoch)
			}
			continue
		}
		if *p.RatifiedEpoch < newEpoch {
			s.Enact(actionID, p.Purpose)
		}
	}
}
