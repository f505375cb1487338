// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.
package state

import (
	"testing"

	"github.com/Fantom-foundation/cps/go/evm"
)

func newTestState(initial WorldState) *State {
	return New(initial, evm.BlockParameters{BlockNumber: 1000}, evm.TransactionParameters{})
}

func TestState_SnapshotRestoresAllModifications(t *testing.T) {
	addr := evm.Address{1}
	initial := WorldState{
		addr: {Balance: evm.NewValue(10), Nonce: 1, Code: evm.Code{0x00}, Storage: Storage{{1}: {2}}},
	}
	state := newTestState(initial)

	snapshot := state.CreateSnapshot()
	state.SetBalance(addr, evm.NewValue(5))
	state.SetNonce(addr, 2)
	state.SetCode(addr, evm.Code{0x01, 0x02})
	state.SetStorage(addr, evm.Key{1}, evm.Word{3})
	state.SetStorage(addr, evm.Key{2}, evm.Word{4})
	state.SetBalance(evm.Address{2}, evm.NewValue(1))
	state.EmitLog(evm.Log{Address: addr})
	state.SelfDestruct(addr, evm.Address{2})
	state.AccessAccount(evm.Address{3})
	state.AccessStorage(addr, evm.Key{5})

	state.RestoreSnapshot(snapshot)

	if want, got := initial, state.World(); !want.Equal(got) {
		t.Errorf("unexpected world state after restore: %v", got.Diff(want))
	}
	if len(state.Logs()) != 0 {
		t.Errorf("logs have not been reverted")
	}
	if state.HasSelfDestructed(addr) {
		t.Errorf("self-destruct has not been reverted")
	}
	if want, got := evm.ColdAccess, state.AccessAccount(evm.Address{3}); want != got {
		t.Errorf("account access has not been reverted")
	}
	if want, got := evm.ColdAccess, state.AccessStorage(addr, evm.Key{5}); want != got {
		t.Errorf("slot access has not been reverted")
	}
	if state.AccountExists(evm.Address{2}) {
		t.Errorf("created account has not been removed")
	}
}

func TestState_NestedSnapshotsOnlyRevertInnerModifications(t *testing.T) {
	addr := evm.Address{1}
	state := newTestState(nil)

	state.SetBalance(addr, evm.NewValue(1))
	outer := state.CreateSnapshot()
	state.SetBalance(addr, evm.NewValue(2))
	inner := state.CreateSnapshot()
	state.SetBalance(addr, evm.NewValue(3))

	state.RestoreSnapshot(inner)
	if want, got := evm.NewValue(2), state.GetBalance(addr); want != got {
		t.Errorf("unexpected balance, wanted %v, got %v", want, got)
	}
	state.RestoreSnapshot(outer)
	if want, got := evm.NewValue(1), state.GetBalance(addr); want != got {
		t.Errorf("unexpected balance, wanted %v, got %v", want, got)
	}
}

func TestState_SetStorageReportsStatusBasedOnCommittedValue(t *testing.T) {
	addr := evm.Address{1}
	key := evm.Key{1}
	state := newTestState(WorldState{addr: {Nonce: 1, Storage: Storage{key: {1}}}})

	if want, got := evm.StorageModified, state.SetStorage(addr, key, evm.Word{2}); want != got {
		t.Errorf("unexpected status, wanted %v, got %v", want, got)
	}
	if want, got := evm.StorageModifiedRestored, state.SetStorage(addr, key, evm.Word{1}); want != got {
		t.Errorf("unexpected status, wanted %v, got %v", want, got)
	}
	if want, got := (evm.Word{1}), state.GetCommittedStorage(addr, key); want != got {
		t.Errorf("unexpected committed value, wanted %v, got %v", want, got)
	}
}

func TestState_AccessListReportsColdOnlyOnFirstAccess(t *testing.T) {
	state := newTestState(nil)
	addr := evm.Address{1}
	if want, got := evm.ColdAccess, state.AccessAccount(addr); want != got {
		t.Errorf("unexpected first access, wanted %v, got %v", want, got)
	}
	if want, got := evm.WarmAccess, state.AccessAccount(addr); want != got {
		t.Errorf("unexpected second access, wanted %v, got %v", want, got)
	}
	if want, got := evm.ColdAccess, state.AccessStorage(addr, evm.Key{1}); want != got {
		t.Errorf("unexpected first slot access, wanted %v, got %v", want, got)
	}
	if want, got := evm.WarmAccess, state.AccessStorage(addr, evm.Key{1}); want != got {
		t.Errorf("unexpected second slot access, wanted %v, got %v", want, got)
	}
}

func TestState_SelfDestructIsReportedOnlyOnce(t *testing.T) {
	state := newTestState(nil)
	if !state.SelfDestruct(evm.Address{1}, evm.Address{2}) {
		t.Errorf("first self-destruct should be reported")
	}
	if state.SelfDestruct(evm.Address{1}, evm.Address{3}) {
		t.Errorf("second self-destruct should not be reported")
	}
	if want, got := (evm.Address{2}), state.Destructed()[evm.Address{1}]; want != got {
		t.Errorf("unexpected beneficiary, wanted %v, got %v", want, got)
	}
}

func TestState_CommitRemovesDestructedAccountsAndResetsJournal(t *testing.T) {
	addr := evm.Address{1}
	state := newTestState(WorldState{addr: {Nonce: 1, Code: evm.Code{0x00}}})
	state.SelfDestruct(addr, evm.Address{2})
	state.EmitLog(evm.Log{Address: addr, Topics: []evm.Hash{{1}}})
	state.AccessAccount(addr)

	logs := state.Commit()
	if want, got := 1, len(logs); want != got {
		t.Fatalf("unexpected number of logs, wanted %d, got %d", want, got)
	}
	if state.AccountExists(addr) {
		t.Errorf("destructed account still exists")
	}
	if state.HasSelfDestructed(addr) {
		t.Errorf("destruction mark survived commit")
	}
	if want, got := evm.ColdAccess, state.AccessAccount(addr); want != got {
		t.Errorf("access list survived commit")
	}
	if want, got := evm.Snapshot(1), state.CreateSnapshot(); want != got {
		t.Errorf("unexpected journal length, wanted %v, got %v", want, got)
	}
}

func TestState_CodeHash(t *testing.T) {
	addr := evm.Address{1}
	state := newTestState(WorldState{addr: {Nonce: 1}})
	if want, got := evm.EmptyCodeHash, state.GetCodeHash(addr); want != got {
		t.Errorf("unexpected hash of existing account, wanted %v, got %v", want, got)
	}
	if want, got := (evm.Hash{}), state.GetCodeHash(evm.Address{2}); want != got {
		t.Errorf("unexpected hash of missing account, wanted %v, got %v", want, got)
	}
	state.SetCode(addr, evm.Code{0x60})
	if want, got := evm.Keccak256([]byte{0x60}), state.GetCodeHash(addr); want != got {
		t.Errorf("unexpected hash, wanted %v, got %v", want, got)
	}
}

func TestState_BlockHashIsOnlyAvailableForRecentBlocks(t *testing.T) {
	state := newTestState(nil)
	state.SetBlockHash(999, evm.Hash{9})

	tests := map[string]struct {
		number uint64
		zero   bool
	}{
		"current block":  {number: 1000, zero: true},
		"future block":   {number: 2000, zero: true},
		"previous block": {number: 999},
		"oldest block":   {number: 744},
		"too old block":  {number: 743, zero: true},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := state.GetBlockHash(test.number)
			if want := test.zero; want != (got == evm.Hash{}) {
				t.Errorf("unexpected hash %v for block %d", got, test.number)
			}
		})
	}
	if want, got := (evm.Hash{9}), state.GetBlockHash(999); want != got {
		t.Errorf("unexpected registered hash, wanted %v, got %v", want, got)
	}
}
