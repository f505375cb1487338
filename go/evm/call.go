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

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Context is the view of the currently executing call: the account whose
// storage and balance are acted upon, the immediate caller, and the value
// apparently transferred with the call. Nested calls inherit it unless the
// call kind overrides individual fields.
type Context struct {
	Address       Address
	Caller        Address
	ApparentValue Value
}

// Transfer describes a movement of value accompanying a message call.
type Transfer struct {
	Source Address
	Target Address
	Value  Value
}

// CreateSchemeKind distinguishes the ways a contract address is derived.
type CreateSchemeKind byte

const (
	CreateLegacy CreateSchemeKind = iota // < address derived from the creator and its nonce (CREATE)
	CreateSalted                         // < address derived from the creator, a salt and the init code hash (CREATE2)
	CreateFixed                          // < address given explicitly
)

func (k CreateSchemeKind) String() string {
	switch k {
	case CreateLegacy:
		return "legacy"
	case CreateSalted:
		return "salted"
	case CreateFixed:
		return "fixed"
	}
	return fmt.Sprintf("CreateSchemeKind(%d)", k)
}

// CreateScheme determines the address of a contract to be created. Only the
// fields relevant for the Kind are set.
type CreateScheme struct {
	Kind     CreateSchemeKind
	Caller   Address // < legacy and salted
	CodeHash Hash    // < salted only
	Salt     Hash    // < salted only
	Address  Address // < fixed only
}

func LegacyScheme(caller Address) CreateScheme {
	return CreateScheme{Kind: CreateLegacy, Caller: caller}
}

func SaltedScheme(caller Address, codeHash Hash, salt Hash) CreateScheme {
	return CreateScheme{Kind: CreateSalted, Caller: caller, CodeHash: codeHash, Salt: salt}
}

func FixedScheme(address Address) CreateScheme {
	return CreateScheme{Kind: CreateFixed, Address: address}
}

// Derive computes the address of the contract to be created. The nonce is
// the creator's nonce before the creation and only used by legacy schemes.
func (s CreateScheme) Derive(nonce uint64) Address {
	switch s.Kind {
	case CreateLegacy:
		return Address(crypto.CreateAddress(common.Address(s.Caller), nonce))
	case CreateSalted:
		return Address(crypto.CreateAddress2(common.Address(s.Caller), common.Hash(s.Salt), s.CodeHash[:]))
	}
	return s.Address
}

// CreateResult is the outcome of a contract creation completed without
// suspension. Address is nil if no contract address was determined.
type CreateResult struct {
	Reason  ExitReason
	Address *Address
	Output  Data
}

// CallResult is the outcome of a message call completed without suspension.
type CallResult struct {
	Reason ExitReason
	Output Data
}

// InterruptKind distinguishes the two cross-contract operations that may
// suspend an execution.
type InterruptKind byte

const (
	InterruptCreate InterruptKind = iota
	InterruptCall
)

func (k InterruptKind) String() string {
	switch k {
	case InterruptCreate:
		return "create"
	case InterruptCall:
		return "call"
	}
	return fmt.Sprintf("InterruptKind(%d)", k)
}

// Interrupt is the payload of a suspension: a description of a sub-call
// that needs to be executed outside of the suspended engine.
type Interrupt interface {
	Kind() InterruptKind
}

// CreateFeedback is the outcome of an externally executed contract creation
// supplied to resume the suspended creator.
type CreateFeedback struct {
	Reason    ExitReason // < outcome of the init code execution
	Address   Address    // < the address of the created contract
	Output    Data       // < revert data; ignored on success
	GasLeft   Gas        // < unused part of the endowment, returned to the creator
	GasRefund Gas        // < refund accumulated by the creation, credited on success
}

// CallFeedback is the outcome of an externally executed message call
// supplied to resume the suspended caller.
type CallFeedback struct {
	Reason    ExitReason // < outcome of the callee's execution
	Output    Data       // < data returned or reverted by the callee
	GasLeft   Gas        // < unused part of the endowment, returned to the caller
	GasRefund Gas        // < refund accumulated by the call, credited on success
}

// CallKind is an enum enabling the differentiation of the different types
// of recursive contract calls supported in the EVM.
type CallKind int

const (
	Call CallKind = iota
	DelegateCall
	StaticCall
	CallCode
	Create
	Create2
)

func (k CallKind) String() string {
	switch k {
	case Call:
		return "call"
	case StaticCall:
		return "static_call"
	case DelegateCall:
		return "delegate_call"
	case CallCode:
		return "call_code"
	case Create:
		return "create"
	case Create2:
		return "create2"
	default:
		return "unknown"
	}
}
