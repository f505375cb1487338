// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package evm

import "fmt"

//go:generate mockgen -source host.go -destination host_mock.go -package evm

// Host is the journaled account, storage and environment model an execution
// operates on. All modifications are buffered in the host and may be undone
// by restoring a snapshot. Implementations own the transactional semantics;
// components executing code never cache host data.
type Host interface {
	AccountExists(Address) bool
	// HasSelfDestructed reports whether the account was marked for deletion
	// in the ongoing transaction.
	HasSelfDestructed(Address) bool

	GetBalance(Address) Value
	SetBalance(Address, Value)

	GetNonce(Address) uint64
	SetNonce(Address, uint64)

	GetCode(Address) Code
	GetCodeHash(Address) Hash
	GetCodeSize(Address) int
	SetCode(Address, Code)

	GetStorage(Address, Key) Word
	// GetCommittedStorage returns the value of a slot at the beginning of
	// the ongoing transaction.
	GetCommittedStorage(Address, Key) Word
	SetStorage(Address, Key, Word) StorageStatus

	// AccessAccount registers the account in the transaction's access list.
	// The result is ColdAccess for the first access in a transaction and
	// WarmAccess for every subsequent one.
	AccessAccount(Address) AccessStatus
	AccessStorage(Address, Key) AccessStatus

	EmitLog(Log)

	// SelfDestruct marks addr for deletion at the end of the transaction.
	// Moving the balance to the beneficiary is up to the caller. Returns
	// true if it is the first time destroying this addr in the ongoing
	// transaction, false otherwise.
	SelfDestruct(addr Address, beneficiary Address) bool

	CreateSnapshot() Snapshot
	RestoreSnapshot(Snapshot)

	BlockParameters() BlockParameters
	TransactionParameters() TransactionParameters
	// GetBlockHash returns the hash of the block with the given number or
	// the zero hash if it is not among the 256 most recent blocks.
	GetBlockHash(number uint64) Hash
}

// BlockParameters contains information about the current block.
type BlockParameters struct {
	ChainID     Word
	BlockNumber uint64
	Timestamp   uint64
	Coinbase    Address
	GasLimit    Gas
	PrevRandao  Hash // < the difficulty before the merge
	BaseFee     Value
	Revision    Revision
}

// TransactionParameters contains information about current transaction.
type TransactionParameters struct {
	Origin   Address
	GasPrice Value
}

// StorageStatus is an enum utilized to indicate the effect of a storage
// slot update on the respective slot in the context of the current
// transaction. It is needed to perform proper gas price calculations of
// SSTORE operations.
type StorageStatus int

// See t.ly/b5HPf for the definition of these values.
const (
	// The comment indicates the storage values for the corresponding
	// configuration. X, Y, Z are non-zero numbers, distinct from each other,
	// while 0 is zero.
	//
	// <original> -> <current> -> <new>
	StorageAssigned         StorageStatus = iota
	StorageAdded                          // 0 -> 0 -> Z
	StorageDeleted                        // X -> X -> 0
	StorageModified                       // X -> X -> Z
	StorageDeletedAdded                   // X -> 0 -> Z
	StorageModifiedDeleted                // X -> Y -> 0
	StorageDeletedRestored                // X -> 0 -> X
	StorageAddedDeleted                   // 0 -> Y -> 0
	StorageModifiedRestored               // X -> Y -> X
)

func (s StorageStatus) String() string {
	switch s {
	case StorageAssigned:
		return "StorageAssigned"
	case StorageAdded:
		return "StorageAdded"
	case StorageAddedDeleted:
		return "StorageAddedDeleted"
	case StorageDeletedRestored:
		return "StorageDeletedRestored"
	case StorageDeletedAdded:
		return "StorageDeletedAdded"
	case StorageDeleted:
		return "StorageDeleted"
	case StorageModified:
		return "StorageModified"
	case StorageModifiedDeleted:
		return "StorageModifiedDeleted"
	case StorageModifiedRestored:
		return "StorageModifiedRestored"
	}
	return fmt.Sprintf("StorageStatus(%d)", s)
}
