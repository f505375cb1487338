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
	"bytes"
	"math/big"
	"slices"

	"github.com/Fantom-foundation/cps/go/evm"
)

// State is an in-memory, journaled implementation of evm.Host. Every
// modification registers an undo operation so that snapshots can be
// restored in reverse order. The original world state is kept for the
// committed storage lookups required by SSTORE pricing.
type State struct {
	original    WorldState
	current     WorldState
	logs        []evm.Log
	undo        []func()
	accounts    map[evm.Address]struct{}
	slots       map[evm.Address]map[evm.Key]struct{}
	destructed  map[evm.Address]evm.Address
	blockHashes map[uint64]evm.Hash
	block       evm.BlockParameters
	transaction evm.TransactionParameters
}

var _ evm.Host = (*State)(nil)

// New creates a state seeded with the given accounts.
func New(initial WorldState, block evm.BlockParameters, transaction evm.TransactionParameters) *State {
	if initial == nil {
		initial = WorldState{}
	}
	return &State{
		original:    initial,
		current:     initial.Clone(),
		accounts:    map[evm.Address]struct{}{},
		slots:       map[evm.Address]map[evm.Key]struct{}{},
		destructed:  map[evm.Address]evm.Address{},
		blockHashes: map[uint64]evm.Hash{},
		block:       block,
		transaction: transaction,
	}
}

// SetBlockHash registers the hash of a past block. Hashes of recent blocks
// that have not been registered are derived from the block number.
func (s *State) SetBlockHash(number uint64, hash evm.Hash) {
	s.blockHashes[number] = hash
}

// World returns a copy of the current accounts.
func (s *State) World() WorldState {
	return s.current.Clone()
}

// Logs returns the logs emitted in the ongoing transaction.
func (s *State) Logs() []evm.Log {
	return slices.Clone(s.logs)
}

// Destructed returns the accounts marked for deletion and their beneficiaries.
func (s *State) Destructed() map[evm.Address]evm.Address {
	res := make(map[evm.Address]evm.Address, len(s.destructed))
	for k, v := range s.destructed {
		res[k] = v
	}
	return res
}

// Commit concludes the ongoing transaction. Accounts marked for deletion
// are removed, empty accounts are dropped, and the current state becomes
// the new committed state. The journal, the access list and the logs are
// reset. The logs of the concluded transaction are returned.
func (s *State) Commit() []evm.Log {
	for addr := range s.destructed {
		delete(s.current, addr)
	}
	for addr, account := range s.current {
		if account.IsEmpty() && len(account.Storage.Keys()) == 0 {
			delete(s.current, addr)
		}
	}
	logs := s.logs
	s.original = s.current.Clone()
	s.logs = nil
	s.undo = nil
	s.accounts = map[evm.Address]struct{}{}
	s.slots = map[evm.Address]map[evm.Key]struct{}{}
	s.destructed = map[evm.Address]evm.Address{}
	return logs
}

func (s *State) AccountExists(addr evm.Address) bool {
	account, found := s.current[addr]
	return found && !account.IsEmpty()
}

func (s *State) HasSelfDestructed(addr evm.Address) bool {
	_, found := s.destructed[addr]
	return found
}

func (s *State) GetBalance(addr evm.Address) evm.Value {
	return s.current[addr].Balance
}

func (s *State) SetBalance(addr evm.Address, value evm.Value) {
	s.update(addr, func(account *Account) { account.Balance = value })
}

func (s *State) GetNonce(addr evm.Address) uint64 {
	return s.current[addr].Nonce
}

func (s *State) SetNonce(addr evm.Address, nonce uint64) {
	s.update(addr, func(account *Account) { account.Nonce = nonce })
}

func (s *State) GetCode(addr evm.Address) evm.Code {
	return bytes.Clone(s.current[addr].Code)
}

func (s *State) GetCodeHash(addr evm.Address) evm.Hash {
	if !s.AccountExists(addr) {
		return evm.Hash{}
	}
	return evm.Keccak256(s.current[addr].Code)
}

func (s *State) GetCodeSize(addr evm.Address) int {
	return len(s.current[addr].Code)
}

func (s *State) SetCode(addr evm.Address, code evm.Code) {
	code = bytes.Clone(code)
	s.update(addr, func(account *Account) { account.Code = code })
}

func (s *State) GetStorage(addr evm.Address, key evm.Key) evm.Word {
	return s.current[addr].Storage[key]
}

func (s *State) GetCommittedStorage(addr evm.Address, key evm.Key) evm.Word {
	return s.original[addr].Storage[key]
}

func (s *State) SetStorage(addr evm.Address, key evm.Key, value evm.Word) evm.StorageStatus {
	original := s.original[addr].Storage[key]
	current, present := s.current[addr].Storage[key]

	account := s.current[addr]
	if account.Storage == nil {
		account.Storage = Storage{}
		s.current[addr] = account
	}
	storage := account.Storage
	storage[key] = value
	s.undo = append(s.undo, func() {
		if present {
			storage[key] = current
		} else {
			delete(storage, key)
		}
	})
	return evm.GetStorageStatus(original, current, value)
}

func (s *State) AccessAccount(addr evm.Address) evm.AccessStatus {
	if _, found := s.accounts[addr]; found {
		return evm.WarmAccess
	}
	s.accounts[addr] = struct{}{}
	s.undo = append(s.undo, func() { delete(s.accounts, addr) })
	return evm.ColdAccess
}

func (s *State) AccessStorage(addr evm.Address, key evm.Key) evm.AccessStatus {
	slots, found := s.slots[addr]
	if !found {
		slots = map[evm.Key]struct{}{}
		s.slots[addr] = slots
	}
	if _, found := slots[key]; found {
		return evm.WarmAccess
	}
	slots[key] = struct{}{}
	s.undo = append(s.undo, func() { delete(slots, key) })
	return evm.ColdAccess
}

func (s *State) EmitLog(log evm.Log) {
	length := len(s.logs)
	s.logs = append(s.logs, evm.Log{
		Address: log.Address,
		Topics:  slices.Clone(log.Topics),
		Data:    bytes.Clone(log.Data),
	})
	s.undo = append(s.undo, func() { s.logs = s.logs[:length] })
}

func (s *State) SelfDestruct(addr evm.Address, beneficiary evm.Address) bool {
	if _, found := s.destructed[addr]; found {
		return false
	}
	s.destructed[addr] = beneficiary
	s.undo = append(s.undo, func() { delete(s.destructed, addr) })
	return true
}

func (s *State) CreateSnapshot() evm.Snapshot {
	return evm.Snapshot(len(s.undo))
}

func (s *State) RestoreSnapshot(snapshot evm.Snapshot) {
	for len(s.undo) > int(snapshot) {
		s.undo[len(s.undo)-1]()
		s.undo = s.undo[:len(s.undo)-1]
	}
}

func (s *State) BlockParameters() evm.BlockParameters {
	return s.block
}

func (s *State) TransactionParameters() evm.TransactionParameters {
	return s.transaction
}

func (s *State) GetBlockHash(number uint64) evm.Hash {
	current := s.block.BlockNumber
	if number >= current || current-number > 256 {
		return evm.Hash{}
	}
	if hash, found := s.blockHashes[number]; found {
		return hash
	}
	return evm.Keccak256([]byte(new(big.Int).SetUint64(number).String()))
}

// update modifies a copy of the account and registers the restoration of
// the previous version in the journal.
func (s *State) update(addr evm.Address, modify func(*Account)) {
	original, present := s.current[addr]
	modified := original
	modify(&modified)
	s.current[addr] = modified
	s.undo = append(s.undo, func() {
		if present {
			s.current[addr] = original
		} else {
			delete(s.current, addr)
		}
	})
}
