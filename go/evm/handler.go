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

import "github.com/holiman/uint256"

//go:generate mockgen -source handler.go -destination handler_mock.go -package evm

// Stack is a read-only view on the operand stack of an executing frame. It
// is handed to Handler.PreValidate to derive dynamic costs.
type Stack interface {
	Len() int
	// Peek returns the n-th element from the top of the stack, starting at 0.
	Peek(n int) (uint256.Int, error)
}

// Handler is the callback surface a bytecode engine uses to observe and
// mutate the world while running a frame. Cross-contract operations may
// either complete synchronously, yielding a result, or request a
// suspension, yielding an Interrupt and no result.
type Handler interface {
	Balance(Address) Value
	Code(Address) Code
	CodeHash(Address) Hash
	CodeSize(Address) int
	Storage(Address, Key) Word
	// OriginalStorage is the value of the slot at the beginning of the
	// ongoing transaction.
	OriginalStorage(Address, Key) Word

	GasLeft() Gas
	GasPrice() Value
	Origin() Address

	BlockHash(number uint64) Hash
	BlockNumber() uint64
	BlockCoinbase() Address
	BlockTimestamp() uint64
	BlockDifficulty() Word
	BlockGasLimit() Gas
	BlockBaseFee() Value
	ChainID() Word

	Exists(Address) bool
	Deleted(Address) bool
	// IsCold reports whether the account, or the slot if key is not nil, has
	// not been accessed before in the ongoing transaction. The query marks
	// the target as accessed.
	IsCold(addr Address, key *Key) bool

	SetStorage(Address, Key, Word) error
	Log(addr Address, topics []Hash, data Data) error
	MarkDelete(addr Address, target Address) error

	// Create either completes a contract creation and returns its result,
	// or returns an Interrupt describing the creation to be run elsewhere.
	// A nil targetGas requests the maximum endowment.
	Create(caller Address, scheme CreateScheme, value Value, initCode Code, targetGas *Gas) (CreateResult, Interrupt)
	// Call either completes a message call and returns its result, or
	// returns an Interrupt describing the call to be run elsewhere.
	Call(codeAddress Address, transfer *Transfer, input Data, targetGas *Gas, isStatic bool, context Context) (CallResult, Interrupt)

	// PreValidate is invoked before every instruction. A non-nil error
	// aborts the frame with a Failed exit.
	PreValidate(context Context, op OpCode, stack Stack) error
}
