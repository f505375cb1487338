// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package cps provides the control-transfer layer between a steppable
// bytecode engine and the host-delegated logic of a frame. Instead of
// recursing into nested frames, sub-calls suspend the engine and are handed
// to an external driver as interrupts. The outcome of a sub-call is fed
// back to resume the suspended frame.
package cps

import (
	"github.com/Fantom-foundation/cps/go/evm"
	"github.com/Fantom-foundation/cps/go/executor"
	"github.com/ethereum/go-ethereum/log"
)

const (
	// ErrInterruptOutstanding signals an attempt to continue a frame while
	// one of its sub-calls is still waiting for its outcome.
	ErrInterruptOutstanding = evm.ConstError("an interrupt is outstanding")
	// ErrNoInterrupt signals feedback for a sub-call that was never
	// suspended.
	ErrNoInterrupt = evm.ConstError("no matching interrupt is outstanding")
	// ErrForeignInterrupt signals a runtime suspending on an interrupt that
	// was not issued by the layer.
	ErrForeignInterrupt = evm.ConstError("runtime suspended without a layer interrupt")
)

// OutcomeKind distinguishes a terminated frame from a suspended one.
type OutcomeKind byte

const (
	NormalExit OutcomeKind = iota // < the frame terminated
	Other                         // < the frame is suspended on an interrupt
)

func (k OutcomeKind) String() string {
	if k == NormalExit {
		return "NormalExit"
	}
	return "Other"
}

// Outcome is the result of running a frame through an Executor. For
// NormalExit the Reason is set, for Other the Interrupt.
type Outcome struct {
	Kind      OutcomeKind
	Reason    evm.ExitReason
	Interrupt evm.Interrupt
}

// Executor implements evm.Handler for a single frame. State queries and
// mutations are forwarded to the wrapped Backend. Sub-calls the backend
// can not complete in place are reported as a CreateInterrupt or a
// CallInterrupt carrying everything needed to execute them elsewhere.
//
// At most one interrupt is outstanding at any time. Supplying feedback
// for it resumes the runtime that was suspended. Violations of this
// protocol are programming errors and cause a panic.
//
// An Executor is not safe for concurrent use.
type Executor struct {
	backend Backend
	runtime Runtime       // < the runtime of the last Execute call
	pending evm.Interrupt // < the outstanding interrupt, if any
}

var (
	_ evm.Handler = (*Executor)(nil)
	_ Backend     = (*executor.StackExecutor)(nil)
)

// New wraps the given backend.
func New(backend Backend) *Executor {
	return &Executor{backend: backend}
}

// NewWithPrecompiles creates an Executor on top of a StackExecutor for the
// given host and frame configuration.
func NewWithPrecompiles(host evm.Host, config executor.Config, precompiles executor.PrecompileSet) (*Executor, error) {
	backend, err := executor.NewStackExecutor(host, config, precompiles)
	if err != nil {
		return nil, err
	}
	return New(backend), nil
}

// Execute runs the given runtime until it terminates or suspends. A
// suspended runtime is continued by supplying feedback and executing it
// again.
func (e *Executor) Execute(runtime Runtime) Outcome {
	if e.pending != nil {
		panic(ErrInterruptOutstanding)
	}
	e.runtime = runtime
	reason, interrupt := runtime.Run(e)
	if interrupt == nil {
		log.Trace("Frame terminated", "reason", reason, "gas", e.backend.Gas())
		return Outcome{Kind: NormalExit, Reason: reason}
	}
	if e.pending == nil {
		panic(ErrForeignInterrupt)
	}
	return Outcome{Kind: Other, Interrupt: e.pending}
}

// Pending returns the outstanding interrupt or nil if there is none.
func (e *Executor) Pending() evm.Interrupt {
	return e.pending
}

// CreateFeedback applies the outcome of the outstanding creation to the
// backend and resumes the suspended runtime.
func (e *Executor) CreateFeedback(feedback evm.CreateFeedback) error {
	e.expect(evm.InterruptCreate)
	if err := e.backend.CreateFeedback(feedback); err != nil {
		return err
	}
	e.pending = nil
	log.Trace("Resuming after create", "reason", feedback.Reason, "address", feedback.Address, "gas", feedback.GasLeft)
	if e.runtime == nil {
		return nil
	}
	return e.runtime.ResumeCreate(feedback)
}

// CallFeedback applies the outcome of the outstanding call to the backend
// and resumes the suspended runtime.
func (e *Executor) CallFeedback(feedback evm.CallFeedback) error {
	e.expect(evm.InterruptCall)
	if err := e.backend.CallFeedback(feedback); err != nil {
		return err
	}
	e.pending = nil
	log.Trace("Resuming after call", "reason", feedback.Reason, "output", len(feedback.Output), "gas", feedback.GasLeft)
	if e.runtime == nil {
		return nil
	}
	return e.runtime.ResumeCall(feedback)
}

func (e *Executor) expect(kind evm.InterruptKind) {
	if e.pending == nil || e.pending.Kind() != kind {
		panic(ErrNoInterrupt)
	}
}

// Gas is the gas left in the frame.
func (e *Executor) Gas() evm.Gas {
	return e.backend.Gas()
}

// Refund is the gas refund accumulated by the frame.
func (e *Executor) Refund() evm.Gas {
	return e.backend.Refund()
}

// IntoState releases the host the frame operated on.
func (e *Executor) IntoState() evm.Host {
	return e.backend.IntoState()
}

// --- evm.Handler ---

func (e *Executor) Balance(addr evm.Address) evm.Value {
	return e.backend.Balance(addr)
}

func (e *Executor) Code(addr evm.Address) evm.Code {
	return e.backend.Code(addr)
}

func (e *Executor) CodeHash(addr evm.Address) evm.Hash {
	return e.backend.CodeHash(addr)
}

func (e *Executor) CodeSize(addr evm.Address) int {
	return e.backend.CodeSize(addr)
}

func (e *Executor) Storage(addr evm.Address, key evm.Key) evm.Word {
	return e.backend.Storage(addr, key)
}

func (e *Executor) OriginalStorage(addr evm.Address, key evm.Key) evm.Word {
	return e.backend.OriginalStorage(addr, key)
}

func (e *Executor) GasLeft() evm.Gas {
	return e.backend.GasLeft()
}

func (e *Executor) GasPrice() evm.Value {
	return e.backend.GasPrice()
}

func (e *Executor) Origin() evm.Address {
	return e.backend.Origin()
}

func (e *Executor) BlockHash(number uint64) evm.Hash {
	return e.backend.BlockHash(number)
}

func (e *Executor) BlockNumber() uint64 {
	return e.backend.BlockNumber()
}

func (e *Executor) BlockCoinbase() evm.Address {
	return e.backend.BlockCoinbase()
}

func (e *Executor) BlockTimestamp() uint64 {
	return e.backend.BlockTimestamp()
}

func (e *Executor) BlockDifficulty() evm.Word {
	return e.backend.BlockDifficulty()
}

func (e *Executor) BlockGasLimit() evm.Gas {
	return e.backend.BlockGasLimit()
}

func (e *Executor) BlockBaseFee() evm.Value {
	return e.backend.BlockBaseFee()
}

func (e *Executor) ChainID() evm.Word {
	return e.backend.ChainID()
}

func (e *Executor) Exists(addr evm.Address) bool {
	return e.backend.Exists(addr)
}

func (e *Executor) Deleted(addr evm.Address) bool {
	return e.backend.Deleted(addr)
}

func (e *Executor) IsCold(addr evm.Address, key *evm.Key) bool {
	return e.backend.IsCold(addr, key)
}

func (e *Executor) SetStorage(addr evm.Address, key evm.Key, value evm.Word) error {
	return e.backend.SetStorage(addr, key, value)
}

func (e *Executor) Log(addr evm.Address, topics []evm.Hash, data evm.Data) error {
	return e.backend.Log(addr, topics, data)
}

func (e *Executor) MarkDelete(addr evm.Address, target evm.Address) error {
	return e.backend.MarkDelete(addr, target)
}

func (e *Executor) PreValidate(context evm.Context, op evm.OpCode, stack evm.Stack) error {
	return e.backend.PreValidate(context, op, stack)
}

// Create forwards the creation to the backend. If the backend can not
// complete it in place, the creation is reported as a CreateInterrupt.
func (e *Executor) Create(
	caller evm.Address,
	scheme evm.CreateScheme,
	value evm.Value,
	initCode evm.Code,
	targetGas *evm.Gas,
) (evm.CreateResult, evm.Interrupt) {
	if e.pending != nil {
		panic(ErrInterruptOutstanding)
	}
	result, trap := e.backend.Create(caller, scheme, value, initCode, targetGas)
	if trap == nil {
		return result, nil
	}
	gasLimit, _ := e.backend.ReservedGas()
	interrupt := newCreateInterrupt(caller, scheme, value, initCode, targetGas, gasLimit)
	e.pending = interrupt
	log.Debug("Suspending on create", "caller", caller, "scheme", scheme.Kind, "gas", gasLimit)
	return evm.CreateResult{}, interrupt
}

// Call forwards the call to the backend. If the backend can not complete
// it in place, the call is reported as a CallInterrupt.
func (e *Executor) Call(
	codeAddress evm.Address,
	transfer *evm.Transfer,
	input evm.Data,
	targetGas *evm.Gas,
	isStatic bool,
	context evm.Context,
) (evm.CallResult, evm.Interrupt) {
	if e.pending != nil {
		panic(ErrInterruptOutstanding)
	}
	result, trap := e.backend.Call(codeAddress, transfer, input, targetGas, isStatic, context)
	if trap == nil {
		return result, nil
	}
	gasLimit, _ := e.backend.ReservedGas()
	interrupt := newCallInterrupt(codeAddress, transfer, input, targetGas, isStatic, context, gasLimit)
	e.pending = interrupt
	log.Debug("Suspending on call", "code", codeAddress, "address", context.Address, "static", isStatic, "gas", gasLimit)
	return evm.CallResult{}, interrupt
}
