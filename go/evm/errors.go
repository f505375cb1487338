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

// ConstError is an error type that can be used to define immutable
// error constants.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

// Errors ending an execution frame with a Failed status. These are reported
// by the engine or the host and propagated unchanged by the control-transfer
// layer.
const (
	ErrOutOfGas            = ConstError("out of gas")
	ErrWriteProtection     = ConstError("write protection")
	ErrStackUnderflow      = ConstError("stack underflow")
	ErrStackOverflow       = ConstError("stack overflow")
	ErrInvalidJump         = ConstError("invalid jump destination")
	ErrInvalidOpcode       = ConstError("invalid opcode")
	ErrInvalidCode         = ConstError("invalid code: must not begin with 0xef")
	ErrCallTooDeep         = ConstError("max call depth exceeded")
	ErrOutOfFund           = ConstError("insufficient balance for transfer")
	ErrCreateCollision     = ConstError("contract address collision")
	ErrCreateContractLimit = ConstError("max code size exceeded")
	ErrInitCodeTooLarge    = ConstError("init code larger than allowed")
	ErrNonceOverflow       = ConstError("nonce uint64 overflow")
	ErrPrecompileFailed    = ConstError("precompiled contract failed")
	ErrOverflow            = ConstError("integer overflow")
)

// ErrReturnDataOutOfBounds is reported by RETURNDATACOPY reading past the
// end of the last sub-call's output.
const ErrReturnDataOutOfBounds = ConstError("return data out of bounds")

// Errors ending an execution frame with a Fatal status.
const (
	ErrUnhandledInterrupt = ConstError("unhandled interrupt")
	ErrNotSupported       = ConstError("not supported")
)
