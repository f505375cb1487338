// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package gethstate exposes a go-ethereum StateDB as an evm.Host.
package gethstate

import (
	"github.com/Fantom-foundation/cps/go/evm"
	evmstate "github.com/Fantom-foundation/cps/go/state"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/core/state"
	"github.com/ethereum/go-ethereum/core/tracing"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/core/vm"
)

// Adapter forwards all host operations to a go-ethereum StateDB. Journaling
// and access list tracking are provided by the StateDB.
type Adapter struct {
	db          *state.StateDB
	block       evm.BlockParameters
	transaction evm.TransactionParameters
	getHash     vm.GetHashFunc
	touched     map[evm.Address]map[evm.Key]struct{}
}

var _ evm.Host = (*Adapter)(nil)

// NewAdapter wraps the given StateDB. If getHash is nil, block hashes are
// reported as zero.
func NewAdapter(db *state.StateDB, block evm.BlockParameters, transaction evm.TransactionParameters, getHash vm.GetHashFunc) *Adapter {
	return &Adapter{
		db:          db,
		block:       block,
		transaction: transaction,
		getHash:     getHash,
		touched:     map[evm.Address]map[evm.Key]struct{}{},
	}
}

// NewMemoryAdapter creates an adapter over a fresh StateDB backed by an
// in-memory database and holding the given accounts as committed state.
func NewMemoryAdapter(world evmstate.WorldState, block evm.BlockParameters, transaction evm.TransactionParameters) (*Adapter, error) {
	db, err := state.New(types.EmptyRootHash, state.NewDatabase(rawdb.NewMemoryDatabase()), nil)
	if err != nil {
		return nil, err
	}
	a := NewAdapter(db, block, transaction, nil)
	for addr, account := range world {
		a.SetBalance(addr, account.Balance)
		a.SetNonce(addr, account.Nonce)
		a.SetCode(addr, account.Code)
		for key, value := range account.Storage {
			a.SetStorage(addr, key, value)
		}
	}
	db.Finalise(true)
	return a, nil
}

// Commit finalises the ongoing transaction and returns the accounts
// modified through the adapter. Destructed and empty accounts are dropped.
func (a *Adapter) Commit() evmstate.WorldState {
	a.db.Finalise(true)
	res := evmstate.WorldState{}
	for addr, keys := range a.touched {
		if !a.db.Exist(common.Address(addr)) {
			continue
		}
		account := evmstate.Account{
			Balance: a.GetBalance(addr),
			Nonce:   a.GetNonce(addr),
			Code:    a.GetCode(addr),
		}
		for key := range keys {
			if value := a.GetStorage(addr, key); value != (evm.Word{}) {
				if account.Storage == nil {
					account.Storage = evmstate.Storage{}
				}
				account.Storage[key] = value
			}
		}
		res[addr] = account
	}
	return res
}

func (a *Adapter) touch(addr evm.Address, key *evm.Key) {
	keys, found := a.touched[addr]
	if !found {
		keys = map[evm.Key]struct{}{}
		a.touched[addr] = keys
	}
	if key != nil {
		keys[*key] = struct{}{}
	}
}

// Logs converts the logs recorded by the StateDB so far.
func (a *Adapter) Logs() []evm.Log {
	var res []evm.Log
	for _, log := range a.db.Logs() {
		topics := make([]evm.Hash, 0, len(log.Topics))
		for _, topic := range log.Topics {
			topics = append(topics, evm.Hash(topic))
		}
		res = append(res, evm.Log{
			Address: evm.Address(log.Address),
			Topics:  topics,
			Data:    evm.Data(log.Data),
		})
	}
	return res
}

func (a *Adapter) AccountExists(addr evm.Address) bool {
	return !a.db.Empty(common.Address(addr))
}

func (a *Adapter) HasSelfDestructed(addr evm.Address) bool {
	return a.db.HasSelfDestructed(common.Address(addr))
}

func (a *Adapter) GetBalance(addr evm.Address) evm.Value {
	return evm.ValueFromUint256(a.db.GetBalance(common.Address(addr)))
}

func (a *Adapter) SetBalance(addr evm.Address, value evm.Value) {
	a.touch(addr, nil)
	a.db.SetBalance(common.Address(addr), value.ToUint256(), tracing.BalanceChangeUnspecified)
}

func (a *Adapter) GetNonce(addr evm.Address) uint64 {
	return a.db.GetNonce(common.Address(addr))
}

func (a *Adapter) SetNonce(addr evm.Address, nonce uint64) {
	a.touch(addr, nil)
	a.db.SetNonce(common.Address(addr), nonce)
}

func (a *Adapter) GetCode(addr evm.Address) evm.Code {
	return evm.Code(a.db.GetCode(common.Address(addr)))
}

func (a *Adapter) GetCodeHash(addr evm.Address) evm.Hash {
	return evm.Hash(a.db.GetCodeHash(common.Address(addr)))
}

func (a *Adapter) GetCodeSize(addr evm.Address) int {
	return a.db.GetCodeSize(common.Address(addr))
}

func (a *Adapter) SetCode(addr evm.Address, code evm.Code) {
	a.touch(addr, nil)
	a.db.SetCode(common.Address(addr), code)
}

func (a *Adapter) GetStorage(addr evm.Address, key evm.Key) evm.Word {
	return evm.Word(a.db.GetState(common.Address(addr), common.Hash(key)))
}

func (a *Adapter) GetCommittedStorage(addr evm.Address, key evm.Key) evm.Word {
	return evm.Word(a.db.GetCommittedState(common.Address(addr), common.Hash(key)))
}

func (a *Adapter) SetStorage(addr evm.Address, key evm.Key, value evm.Word) evm.StorageStatus {
	original := a.GetCommittedStorage(addr, key)
	current := a.GetStorage(addr, key)
	a.touch(addr, &key)
	a.db.SetState(common.Address(addr), common.Hash(key), common.Hash(value))
	return evm.GetStorageStatus(original, current, value)
}

func (a *Adapter) AccessAccount(addr evm.Address) evm.AccessStatus {
	if a.db.AddressInAccessList(common.Address(addr)) {
		return evm.WarmAccess
	}
	a.db.AddAddressToAccessList(common.Address(addr))
	return evm.ColdAccess
}

func (a *Adapter) AccessStorage(addr evm.Address, key evm.Key) evm.AccessStatus {
	if _, slotPresent := a.db.SlotInAccessList(common.Address(addr), common.Hash(key)); slotPresent {
		return evm.WarmAccess
	}
	a.db.AddSlotToAccessList(common.Address(addr), common.Hash(key))
	return evm.ColdAccess
}

func (a *Adapter) EmitLog(log evm.Log) {
	topics := make([]common.Hash, 0, len(log.Topics))
	for _, topic := range log.Topics {
		topics = append(topics, common.Hash(topic))
	}
	a.db.AddLog(&types.Log{
		Address:     common.Address(log.Address),
		Topics:      topics,
		Data:        common.CopyBytes(log.Data),
		BlockNumber: a.block.BlockNumber,
	})
}

func (a *Adapter) SelfDestruct(addr evm.Address, beneficiary evm.Address) bool {
	first := !a.db.HasSelfDestructed(common.Address(addr))
	a.db.SelfDestruct(common.Address(addr))
	return first
}

func (a *Adapter) CreateSnapshot() evm.Snapshot {
	return evm.Snapshot(a.db.Snapshot())
}

func (a *Adapter) RestoreSnapshot(snapshot evm.Snapshot) {
	a.db.RevertToSnapshot(int(snapshot))
}

func (a *Adapter) BlockParameters() evm.BlockParameters {
	return a.block
}

func (a *Adapter) TransactionParameters() evm.TransactionParameters {
	return a.transaction
}

func (a *Adapter) GetBlockHash(number uint64) evm.Hash {
	current := a.block.BlockNumber
	if a.getHash == nil || number >= current || current-number > 256 {
		return evm.Hash{}
	}
	return evm.Hash(a.getHash(number))
}
