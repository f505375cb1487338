// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package executor implements the host-delegated logic of a single frame:
// gas accounting, pre-validation of instructions, precompiled contracts and
// the decision whether a sub-call completes in place or has to be executed
// elsewhere.
package executor

import (
	"fmt"

	"github.com/Fantom-foundation/cps/go/evm"
	"github.com/ethereum/go-ethereum/log"
)

const (
	// ErrNoReservation is reported for feedback without an outstanding
	// sub-call of the matching kind.
	ErrNoReservation = evm.ConstError("no sub-call is outstanding")
	// ErrExcessGasReturned is reported for feedback returning more gas than
	// was handed to the sub-call.
	ErrExcessGasReturned = evm.ConstError("sub-call returned more gas than reserved")
)

// Trap is the interrupt produced by a StackExecutor. It only names the kind
// of the operation; the parameters stay with whoever requested it.
type Trap struct {
	Operation evm.InterruptKind
}

func (t Trap) Kind() evm.InterruptKind {
	return t.Operation
}

// reservation is the gas handed to an outstanding sub-call.
type reservation struct {
	kind evm.InterruptKind
	gas  evm.Gas
}

// StackExecutor implements evm.Handler for a single frame on top of an
// evm.Host. It is not safe for concurrent use.
type StackExecutor struct {
	host        evm.Host
	config      Config
	precompiles PrecompileSet
	gasometer   gasometer
	reserved    *reservation
}

// NewStackExecutor creates an executor accounting for a frame with the
// given configuration.
func NewStackExecutor(host evm.Host, config Config, precompiles PrecompileSet) (*StackExecutor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &StackExecutor{
		host:        host,
		config:      config,
		precompiles: precompiles,
		gasometer:   newGasometer(config.Gas),
	}, nil
}

func (e *StackExecutor) Config() Config {
	return e.config
}

// Gas is the gas left to the frame, excluding gas reserved for an
// outstanding sub-call.
func (e *StackExecutor) Gas() evm.Gas {
	return e.gasometer.left
}

// Refund is the refund accumulated by the frame and its successful
// sub-calls. It may be negative within a frame.
func (e *StackExecutor) Refund() evm.Gas {
	return e.gasometer.refund
}

// ReservedGas is the endowment of the outstanding sub-call, if any.
func (e *StackExecutor) ReservedGas() (evm.Gas, bool) {
	if e.reserved == nil {
		return 0, false
	}
	return e.reserved.gas, true
}

// IntoState hands back the host the executor operates on.
func (e *StackExecutor) IntoState() evm.Host {
	return e.host
}

// ------------------ Host Queries ------------------

func (e *StackExecutor) Balance(addr evm.Address) evm.Value {
	return e.host.GetBalance(addr)
}

func (e *StackExecutor) Code(addr evm.Address) evm.Code {
	return e.host.GetCode(addr)
}

func (e *StackExecutor) CodeHash(addr evm.Address) evm.Hash {
	return e.host.GetCodeHash(addr)
}

func (e *StackExecutor) CodeSize(addr evm.Address) int {
	return e.host.GetCodeSize(addr)
}

func (e *StackExecutor) Storage(addr evm.Address, key evm.Key) evm.Word {
	return e.host.GetStorage(addr, key)
}

func (e *StackExecutor) OriginalStorage(addr evm.Address, key evm.Key) evm.Word {
	return e.host.GetCommittedStorage(addr, key)
}

func (e *StackExecutor) GasLeft() evm.Gas {
	return e.gasometer.left
}

func (e *StackExecutor) GasPrice() evm.Value {
	return e.host.TransactionParameters().GasPrice
}

func (e *StackExecutor) Origin() evm.Address {
	return e.host.TransactionParameters().Origin
}

func (e *StackExecutor) BlockHash(number uint64) evm.Hash {
	return e.host.GetBlockHash(number)
}

func (e *StackExecutor) BlockNumber() uint64 {
	return e.host.BlockParameters().BlockNumber
}

func (e *StackExecutor) BlockCoinbase() evm.Address {
	return e.host.BlockParameters().Coinbase
}

func (e *StackExecutor) BlockTimestamp() uint64 {
	return e.host.BlockParameters().Timestamp
}

func (e *StackExecutor) BlockDifficulty() evm.Word {
	return evm.Word(e.host.BlockParameters().PrevRandao)
}

func (e *StackExecutor) BlockGasLimit() evm.Gas {
	return e.host.BlockParameters().GasLimit
}

func (e *StackExecutor) BlockBaseFee() evm.Value {
	return e.host.BlockParameters().BaseFee
}

func (e *StackExecutor) ChainID() evm.Word {
	return e.host.BlockParameters().ChainID
}

func (e *StackExecutor) Exists(addr evm.Address) bool {
	return e.host.AccountExists(addr)
}

func (e *StackExecutor) Deleted(addr evm.Address) bool {
	return e.host.HasSelfDestructed(addr)
}

func (e *StackExecutor) IsCold(addr evm.Address, key *evm.Key) bool {
	if key == nil {
		return e.host.AccessAccount(addr) == evm.ColdAccess
	}
	return e.host.AccessStorage(addr, *key) == evm.ColdAccess
}

// ------------------ Mutations ------------------

func (e *StackExecutor) SetStorage(addr evm.Address, key evm.Key, value evm.Word) error {
	if e.config.Static {
		return evm.ErrWriteProtection
	}
	status := e.host.SetStorage(addr, key, value)
	log.Trace("Storage updated", "address", addr, "key", key, "status", status)
	return nil
}

func (e *StackExecutor) Log(addr evm.Address, topics []evm.Hash, data evm.Data) error {
	if e.config.Static {
		return evm.ErrWriteProtection
	}
	e.host.EmitLog(evm.Log{
		Address: addr,
		Topics:  append([]evm.Hash(nil), topics...),
		Data:    append(evm.Data(nil), data...),
	})
	return nil
}

// MarkDelete moves the balance of addr to the target and schedules addr
// for deletion. A contract naming itself as target burns its balance.
func (e *StackExecutor) MarkDelete(addr evm.Address, target evm.Address) error {
	if e.config.Static {
		return evm.ErrWriteProtection
	}
	balance := e.host.GetBalance(addr)
	e.host.SetBalance(target, evm.Add(e.host.GetBalance(target), balance))
	e.host.SetBalance(addr, evm.Value{})
	e.host.SelfDestruct(addr, target)
	return nil
}

// ------------------ Sub-Calls ------------------

// Create charges the intrinsic cost of the creation and reserves the
// endowment of the init code. Creations that can not be started complete
// with a failure, all others suspend.
func (e *StackExecutor) Create(
	caller evm.Address,
	scheme evm.CreateScheme,
	value evm.Value,
	initCode evm.Code,
	targetGas *evm.Gas,
) (evm.CreateResult, evm.Interrupt) {
	if e.reserved != nil {
		return evm.CreateResult{Reason: evm.ExitWithFatal(evm.ErrUnhandledInterrupt)}, nil
	}
	if e.config.Static {
		return evm.CreateResult{Reason: evm.ExitWithError(evm.ErrWriteProtection)}, nil
	}
	if e.config.Revision >= evm.R12_Shanghai && len(initCode) > MaxInitCodeSize {
		return evm.CreateResult{Reason: evm.ExitWithError(evm.ErrInitCodeTooLarge)}, nil
	}

	cost := createIntrinsicGas(e.config.Revision, scheme, len(initCode))
	ceiling, limited := gasCeiling(targetGas)
	if limited && ceiling < cost {
		return evm.CreateResult{Reason: evm.ExitWithError(evm.ErrOutOfGas)}, nil
	}
	if err := e.gasometer.consume(cost); err != nil {
		return evm.CreateResult{Reason: evm.ExitWithError(err)}, nil
	}

	if e.config.Depth >= MaxRecursiveDepth {
		return evm.CreateResult{Reason: evm.ExitWithError(evm.ErrCallTooDeep)}, nil
	}
	if e.host.GetBalance(caller).Cmp(value) < 0 {
		return evm.CreateResult{Reason: evm.ExitWithError(evm.ErrOutOfFund)}, nil
	}

	endowment := allButOne64th(e.gasometer.left)
	if limited && ceiling-cost < endowment {
		endowment = ceiling - cost
	}
	e.gasometer.left -= endowment
	e.reserved = &reservation{kind: evm.InterruptCreate, gas: endowment}
	return evm.CreateResult{}, Trap{Operation: evm.InterruptCreate}
}

// Call reserves the endowment of a message call. Calls to precompiles are
// completed in place, calls that can not be started complete with a
// failure, all others suspend.
func (e *StackExecutor) Call(
	codeAddress evm.Address,
	transfer *evm.Transfer,
	input evm.Data,
	targetGas *evm.Gas,
	isStatic bool,
	context evm.Context,
) (evm.CallResult, evm.Interrupt) {
	if e.reserved != nil {
		return evm.CallResult{Reason: evm.ExitWithFatal(evm.ErrUnhandledInterrupt)}, nil
	}
	hasValue := transfer != nil && !transfer.Value.IsZero()
	// CALLCODE moves value to itself and is permitted in static frames.
	if e.config.Static && hasValue && transfer.Source != transfer.Target {
		return evm.CallResult{Reason: evm.ExitWithError(evm.ErrWriteProtection)}, nil
	}

	endowment := allButOne64th(e.gasometer.left)
	if ceiling, limited := gasCeiling(targetGas); limited && ceiling < endowment {
		endowment = ceiling
	}
	e.gasometer.left -= endowment
	if hasValue {
		endowment += CallStipend
	}

	if e.config.Depth >= MaxRecursiveDepth {
		e.gasometer.give(endowment)
		return evm.CallResult{Reason: evm.ExitWithError(evm.ErrCallTooDeep)}, nil
	}
	if transfer != nil && !CanTransferValue(e.host, *transfer) {
		e.gasometer.give(endowment)
		return evm.CallResult{Reason: evm.ExitWithError(evm.ErrOutOfFund)}, nil
	}

	if contract, found := e.precompiles.Get(codeAddress); found {
		return e.runPrecompile(contract, transfer, input, endowment), nil
	}

	e.reserved = &reservation{kind: evm.InterruptCall, gas: endowment}
	return evm.CallResult{}, Trap{Operation: evm.InterruptCall}
}

// gasCeiling returns the gas ceiling requested for a sub-call, if any. A
// negative ceiling permits no gas at all.
func gasCeiling(targetGas *evm.Gas) (evm.Gas, bool) {
	if targetGas == nil {
		return 0, false
	}
	return max(*targetGas, 0), true
}

// runPrecompile executes a precompile with the given endowment and returns
// its unused part to the frame.
func (e *StackExecutor) runPrecompile(contract Precompile, transfer *evm.Transfer, input evm.Data, endowment evm.Gas) evm.CallResult {
	result, gasLeft := RunPrecompile(e.host, contract, transfer, input, endowment)
	e.gasometer.give(gasLeft)
	return result
}

// RunPrecompile executes a precompiled contract on the given host and
// returns its result and the gas left. Failures consume all gas and revert
// the value transfer.
func RunPrecompile(host evm.Host, contract Precompile, transfer *evm.Transfer, input evm.Data, gas evm.Gas) (evm.CallResult, evm.Gas) {
	snapshot := host.CreateSnapshot()
	if transfer != nil {
		TransferValue(host, *transfer)
	}
	cost := contract.RequiredGas(input)
	if gas < 0 || cost > uint64(gas) {
		host.RestoreSnapshot(snapshot)
		return evm.CallResult{Reason: evm.ExitWithError(evm.ErrOutOfGas)}, 0
	}
	output, err := contract.Run(input)
	if err != nil {
		host.RestoreSnapshot(snapshot)
		return evm.CallResult{Reason: evm.ExitWithError(fmt.Errorf("%w: %w", evm.ErrPrecompileFailed, err))}, 0
	}
	return evm.CallResult{Reason: evm.ExitReturned, Output: output}, gas - evm.Gas(cost)
}

// ------------------ Feedback ------------------

// CreateFeedback settles the gas of an outstanding creation.
func (e *StackExecutor) CreateFeedback(feedback evm.CreateFeedback) error {
	return e.settle(evm.InterruptCreate, feedback.Reason, feedback.GasLeft, feedback.GasRefund)
}

// CallFeedback settles the gas of an outstanding message call.
func (e *StackExecutor) CallFeedback(feedback evm.CallFeedback) error {
	return e.settle(evm.InterruptCall, feedback.Reason, feedback.GasLeft, feedback.GasRefund)
}

// settle returns the unused endowment of a sub-call that succeeded or
// reverted, and adopts the refund of a successful one.
func (e *StackExecutor) settle(kind evm.InterruptKind, reason evm.ExitReason, gasLeft, refund evm.Gas) error {
	if e.reserved == nil || e.reserved.kind != kind {
		return ErrNoReservation
	}
	if gasLeft < 0 || gasLeft > e.reserved.gas {
		return fmt.Errorf("%w: %d > %d", ErrExcessGasReturned, gasLeft, e.reserved.gas)
	}
	e.reserved = nil
	if reason.IsSucceed() || reason.IsRevert() {
		e.gasometer.give(gasLeft)
	}
	if reason.IsSucceed() {
		e.gasometer.refund += refund
	}
	return nil
}

// ------------------ Helpers ------------------

// CanTransferValue reports whether the source of the transfer holds the
// transferred value.
func CanTransferValue(host evm.Host, transfer evm.Transfer) bool {
	if transfer.Value == (evm.Value{}) {
		return true
	}
	return host.GetBalance(transfer.Source).Cmp(transfer.Value) >= 0
}

// TransferValue moves the value of the transfer. Only to be called after
// CanTransferValue.
func TransferValue(host evm.Host, transfer evm.Transfer) {
	if transfer.Value == (evm.Value{}) || transfer.Source == transfer.Target {
		return
	}
	host.SetBalance(transfer.Source, evm.Sub(host.GetBalance(transfer.Source), transfer.Value))
	host.SetBalance(transfer.Target, evm.Add(host.GetBalance(transfer.Target), transfer.Value))
}
