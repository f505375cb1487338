// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.
package gethstate

import (
	"testing"

	"github.com/Fantom-foundation/cps/go/evm"
	evmstate "github.com/Fantom-foundation/cps/go/state"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/core/state"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	db, err := state.New(types.EmptyRootHash, state.NewDatabase(rawdb.NewMemoryDatabase()), nil)
	require.NoError(t, err)
	getHash := func(n uint64) common.Hash { return common.Hash{byte(n)} }
	return NewAdapter(db, evm.BlockParameters{BlockNumber: 100}, evm.TransactionParameters{Origin: evm.Address{9}}, getHash)
}

func TestAdapter_AccountFieldsAreForwarded(t *testing.T) {
	adapter := newTestAdapter(t)
	addr := evm.Address{1}

	require.False(t, adapter.AccountExists(addr))
	adapter.SetBalance(addr, evm.NewValue(42))
	adapter.SetNonce(addr, 3)
	adapter.SetCode(addr, evm.Code{0x60, 0x00})

	require.True(t, adapter.AccountExists(addr))
	require.Equal(t, evm.NewValue(42), adapter.GetBalance(addr))
	require.Equal(t, uint64(3), adapter.GetNonce(addr))
	require.Equal(t, evm.Code{0x60, 0x00}, adapter.GetCode(addr))
	require.Equal(t, 2, adapter.GetCodeSize(addr))
	require.Equal(t, evm.Keccak256([]byte{0x60, 0x00}), adapter.GetCodeHash(addr))
}

func TestAdapter_SnapshotsRevertModifications(t *testing.T) {
	adapter := newTestAdapter(t)
	addr := evm.Address{1}
	adapter.SetBalance(addr, evm.NewValue(1))

	snapshot := adapter.CreateSnapshot()
	adapter.SetBalance(addr, evm.NewValue(2))
	adapter.SetStorage(addr, evm.Key{1}, evm.Word{1})
	adapter.EmitLog(evm.Log{Address: addr, Topics: []evm.Hash{{1}}, Data: evm.Data{1}})
	require.Len(t, adapter.Logs(), 1)

	adapter.RestoreSnapshot(snapshot)
	require.Equal(t, evm.NewValue(1), adapter.GetBalance(addr))
	require.Equal(t, evm.Word{}, adapter.GetStorage(addr, evm.Key{1}))
	require.Empty(t, adapter.Logs())
}

func TestAdapter_SetStorageReportsStatus(t *testing.T) {
	adapter := newTestAdapter(t)
	addr := evm.Address{1}
	adapter.SetNonce(addr, 1)

	require.Equal(t, evm.StorageAdded, adapter.SetStorage(addr, evm.Key{1}, evm.Word{1}))
	require.Equal(t, evm.StorageAddedDeleted, adapter.SetStorage(addr, evm.Key{1}, evm.Word{}))
	require.Equal(t, evm.StorageAssigned, adapter.SetStorage(addr, evm.Key{1}, evm.Word{}))
}

func TestAdapter_AccessListTracksFirstAccess(t *testing.T) {
	adapter := newTestAdapter(t)
	addr := evm.Address{1}

	require.Equal(t, evm.ColdAccess, adapter.AccessAccount(addr))
	require.Equal(t, evm.WarmAccess, adapter.AccessAccount(addr))
	require.Equal(t, evm.ColdAccess, adapter.AccessStorage(addr, evm.Key{1}))
	require.Equal(t, evm.WarmAccess, adapter.AccessStorage(addr, evm.Key{1}))
}

func TestAdapter_SelfDestructIsReportedOnce(t *testing.T) {
	adapter := newTestAdapter(t)
	addr := evm.Address{1}
	adapter.SetNonce(addr, 1)

	require.True(t, adapter.SelfDestruct(addr, evm.Address{2}))
	require.True(t, adapter.HasSelfDestructed(addr))
	require.False(t, adapter.SelfDestruct(addr, evm.Address{2}))
}

func TestAdapter_BlockHashesAreLimitedToRecentBlocks(t *testing.T) {
	adapter := newTestAdapter(t)
	require.Equal(t, evm.Hash{99}, adapter.GetBlockHash(99))
	require.Equal(t, evm.Hash{}, adapter.GetBlockHash(100))
	require.Equal(t, evm.Hash{}, adapter.GetBlockHash(1000))
	require.Equal(t, evm.Address{9}, adapter.TransactionParameters().Origin)
}

func TestAdapter_MemoryAdapterCommitsModifiedAccounts(t *testing.T) {
	alive, doomed := evm.Address{1}, evm.Address{2}
	key := evm.Key{31: 1}
	adapter, err := NewMemoryAdapter(evmstate.WorldState{
		alive:  {Balance: evm.NewValue(5), Code: evm.Code{0x00}, Storage: evmstate.Storage{key: evm.Word{31: 7}}},
		doomed: {Nonce: 1},
	}, evm.BlockParameters{BlockNumber: 100}, evm.TransactionParameters{})
	require.NoError(t, err)

	require.Equal(t, evm.Word{31: 7}, adapter.GetCommittedStorage(alive, key))
	require.Equal(t, evm.StorageModified, adapter.SetStorage(alive, key, evm.Word{31: 8}))
	adapter.SetNonce(alive, 2)
	adapter.SelfDestruct(doomed, alive)

	want := evmstate.WorldState{
		alive: {Balance: evm.NewValue(5), Nonce: 2, Code: evm.Code{0x00}, Storage: evmstate.Storage{key: evm.Word{31: 8}}},
	}
	got := adapter.Commit()
	require.True(t, want.Equal(got), "unexpected world, wanted %v, got %v", want, got)
}
