// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package cps

import (
	"bytes"
	"fmt"

	"github.com/Fantom-foundation/cps/go/evm"
)

// CreateInterrupt describes a contract creation to be executed by the
// driver of a suspended frame.
type CreateInterrupt struct {
	Caller    evm.Address
	Scheme    evm.CreateScheme
	Value     evm.Value
	InitCode  evm.Code
	TargetGas *evm.Gas // < gas ceiling requested by the creator, nil for no ceiling
	GasLimit  evm.Gas  // < endowment reserved for the init code
}

func (*CreateInterrupt) Kind() evm.InterruptKind {
	return evm.InterruptCreate
}

// CallKind reports whether the creation was started by CREATE or CREATE2.
func (i *CreateInterrupt) CallKind() evm.CallKind {
	if i.Scheme.Kind == evm.CreateSalted {
		return evm.Create2
	}
	return evm.Create
}

func (i *CreateInterrupt) String() string {
	return fmt.Sprintf("Create{caller: %v, scheme: %v, value: %v, code: %d bytes, gas: %d}",
		i.Caller, i.Scheme.Kind, i.Value, len(i.InitCode), i.GasLimit)
}

// CallInterrupt describes a message call to be executed by the driver of a
// suspended frame.
type CallInterrupt struct {
	CodeAddress evm.Address
	Transfer    *evm.Transfer
	Input       evm.Data
	TargetGas   *evm.Gas
	IsStatic    bool
	Context     evm.Context // < the context the callee runs in
	GasLimit    evm.Gas     // < endowment reserved for the callee, stipend included
}

func (*CallInterrupt) Kind() evm.InterruptKind {
	return evm.InterruptCall
}

// CallKind recovers the instruction that issued the call from the shape of
// its arguments. A CALLCODE targeting the calling contract itself is
// indistinguishable from a CALL and reported as such.
func (i *CallInterrupt) CallKind() evm.CallKind {
	switch {
	case i.IsStatic:
		return evm.StaticCall
	case i.Transfer == nil:
		return evm.DelegateCall
	case i.CodeAddress != i.Context.Address:
		return evm.CallCode
	}
	return evm.Call
}

func (i *CallInterrupt) String() string {
	return fmt.Sprintf("Call{code: %v, address: %v, caller: %v, static: %t, input: %d bytes, gas: %d}",
		i.CodeAddress, i.Context.Address, i.Context.Caller, i.IsStatic, len(i.Input), i.GasLimit)
}

func newCreateInterrupt(caller evm.Address, scheme evm.CreateScheme, value evm.Value, initCode evm.Code, targetGas *evm.Gas, gasLimit evm.Gas) *CreateInterrupt {
	return &CreateInterrupt{
		Caller:    caller,
		Scheme:    scheme,
		Value:     value,
		InitCode:  bytes.Clone(initCode),
		TargetGas: clonePtr(targetGas),
		GasLimit:  gasLimit,
	}
}

func newCallInterrupt(codeAddress evm.Address, transfer *evm.Transfer, input evm.Data, targetGas *evm.Gas, isStatic bool, context evm.Context, gasLimit evm.Gas) *CallInterrupt {
	return &CallInterrupt{
		CodeAddress: codeAddress,
		Transfer:    clonePtr(transfer),
		Input:       bytes.Clone(input),
		TargetGas:   clonePtr(targetGas),
		IsStatic:    isStatic,
		Context:     context,
		GasLimit:    gasLimit,
	}
}

func clonePtr[T any](value *T) *T {
	if value == nil {
		return nil
	}
	res := *value
	return &res
}
