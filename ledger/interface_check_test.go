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

package ledger

import (
	lcommon "github.com/blinklabs-io/gouroboros/ledger/common"
)

// Compile-time interface checks to ensure MockLedgerState implements
// all required gouroboros interfaces for use in conformance tests.
var (
	_ lcommon.LedgerState = (*MockLedgerState)(nil)
	_ lcommon.UtxoState   = (*MockLedgerState)(nil)
	_ lcommon.CertState   = (*MockLedgerState)(nil)
	_ lcommon.SlotState   = (*MockLedgerState)(nil)
	_ lcommon.PoolState   = (*MockLedgerState)(nil)
	_ lcommon.RewardState = (*MockLedgerState)(nil)
	_ lcommon.GovState    = (*MockLedgerState)(nil)
)
