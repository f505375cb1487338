// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package interpreter provides a steppable EVM engine. Instead of recursing
// into nested frames, the engine hands cross-contract operations to its
// handler and, if the handler requests it, suspends until the outcome of
// the operation is fed back.
package interpreter

import (
	"fmt"

	"github.com/Fantom-foundation/cps/go/evm"
)

const (
	// ErrNotSuspended is returned when feedback is applied to a runtime that
	// is not waiting for an operation of the matching kind.
	ErrNotSuspended = evm.ConstError("runtime is not suspended on a matching operation")
)

// Tracer is invoked before an instruction is validated and executed.
type Tracer func(pc int, op evm.OpCode, gas evm.Gas, stack evm.Stack)

// Config parameterizes a runtime.
type Config struct {
	Revision evm.Revision
	// CodeHash is the hash of the executed code, used to look up cached
	// code analysis. If nil, the hash is computed when needed.
	CodeHash *evm.Hash
	Tracer   Tracer
}

// Runtime is the execution state of a single frame: program counter,
// operand stack, memory and return data buffer. A runtime is not safe for
// concurrent use.
type Runtime struct {
	code       evm.Code
	input      evm.Data
	context    evm.Context
	config     Config
	pc         int
	stack      *stack
	memory     *Memory
	returnData evm.Data // < data returned by the most recent sub-call
	output     evm.Data // < data passed to RETURN or REVERT
	exit       *evm.ExitReason
	pending    *pendingOperation
	jumpDests  destinations
}

// pendingOperation records a suspended sub-call and where its result goes.
type pendingOperation struct {
	kind      evm.InterruptKind
	outOffset uint64
	outSize   uint64
}

// NewRuntime creates a runtime executing the given code in the given
// context. Code and input are not copied and must not be modified while
// the runtime is in use.
func NewRuntime(code evm.Code, input evm.Data, context evm.Context, config Config) *Runtime {
	return &Runtime{
		code:    code,
		input:   input,
		context: context,
		config:  config,
		stack:   newStack(),
		memory:  NewMemory(),
	}
}

func (r *Runtime) Context() evm.Context {
	return r.context
}

func (r *Runtime) PC() int {
	return r.pc
}

// Stack returns a view on the operand stack. Terminated runtimes have an
// empty stack.
func (r *Runtime) Stack() evm.Stack {
	if r.stack == nil {
		return emptyStack{}
	}
	return r.stack
}

// Memory returns a copy of the current memory content.
func (r *Runtime) Memory() []byte {
	return r.memory.Data()
}

// ReturnValue is the data passed to RETURN or REVERT.
func (r *Runtime) ReturnValue() evm.Data {
	return r.output
}

// ReturnDataBuffer is the data produced by the most recent sub-call.
func (r *Runtime) ReturnDataBuffer() evm.Data {
	return r.returnData
}

// Exit returns the exit reason of a terminated runtime.
func (r *Runtime) Exit() (evm.ExitReason, bool) {
	if r.exit == nil {
		return evm.ExitReason{}, false
	}
	return *r.exit, true
}

// IsSuspended reports whether the runtime waits for the outcome of a
// sub-call.
func (r *Runtime) IsSuspended() bool {
	return r.pending != nil
}

// Run executes instructions until the frame terminates or a sub-call
// suspends it. On suspension, the returned interrupt is non-nil and the
// exit reason is to be ignored. Running a suspended runtime aborts it with
// a fatal error.
func (r *Runtime) Run(h evm.Handler) (evm.ExitReason, evm.Interrupt) {
	if r.pending != nil {
		r.pending = nil
		r.terminate(evm.ExitWithFatal(evm.ErrUnhandledInterrupt))
	}
	for r.exit == nil {
		if interrupt := r.step(h); interrupt != nil {
			return evm.ExitReason{}, interrupt
		}
	}
	return *r.exit, nil
}

// ResumeCreate applies the outcome of a suspended contract creation.
func (r *Runtime) ResumeCreate(feedback evm.CreateFeedback) error {
	if r.pending == nil || r.pending.kind != evm.InterruptCreate {
		return ErrNotSuspended
	}
	r.pending = nil
	address := feedback.Address
	r.finishCreate(feedback.Reason, &address, feedback.Output)
	return nil
}

// ResumeCall applies the outcome of a suspended message call.
func (r *Runtime) ResumeCall(feedback evm.CallFeedback) error {
	if r.pending == nil || r.pending.kind != evm.InterruptCall {
		return ErrNotSuspended
	}
	pending := r.pending
	r.pending = nil
	r.finishCall(feedback.Reason, feedback.Output, pending.outOffset, pending.outSize)
	return nil
}

func (r *Runtime) step(h evm.Handler) evm.Interrupt {
	if r.pc >= len(r.code) {
		r.terminate(evm.ExitStopped)
		return nil
	}
	op := evm.OpCode(r.code[r.pc])
	if !isSupported(op, r.config.Revision) {
		r.terminate(evm.ExitWithError(evm.ErrInvalidOpcode))
		return nil
	}

	effect := stackEffects[op]
	if r.stack.len() < effect.pops {
		r.terminate(evm.ExitWithError(evm.ErrStackUnderflow))
		return nil
	}
	if r.stack.len()-effect.pops+effect.pushes > maxStackSize {
		r.terminate(evm.ExitWithError(evm.ErrStackOverflow))
		return nil
	}

	if r.config.Tracer != nil {
		r.config.Tracer(r.pc, op, h.GasLeft(), r.stack)
	}
	if err := h.PreValidate(r.context, op, r.stack); err != nil {
		r.terminate(evm.ExitWithError(err))
		return nil
	}

	interrupt, err := r.execute(h, op)
	if err != nil {
		r.terminate(evm.ExitWithError(err))
		return nil
	}
	return interrupt
}

// terminate records the exit reason and releases the stack.
func (r *Runtime) terminate(reason evm.ExitReason) {
	if r.exit != nil {
		return
	}
	r.exit = &reason
	if r.stack != nil {
		returnStack(r.stack)
		r.stack = nil
	}
}

func (r *Runtime) isJumpDestination(pos uint64) bool {
	if pos >= uint64(len(r.code)) {
		return false
	}
	if r.jumpDests == nil {
		var hash evm.Hash
		if r.config.CodeHash != nil {
			hash = *r.config.CodeHash
		} else {
			hash = keccak256(r.code)
		}
		r.jumpDests = getJumpDestinations(hash, r.code)
	}
	return r.jumpDests.has(pos)
}

func (r *Runtime) String() string {
	status := "running"
	if r.exit != nil {
		status = r.exit.String()
	} else if r.pending != nil {
		status = fmt.Sprintf("suspended on %v", r.pending.kind)
	}
	return fmt.Sprintf("runtime{address: %v, pc: %d, status: %s}", r.context.Address, r.pc, status)
}

func isSupported(op evm.OpCode, revision evm.Revision) bool {
	switch op {
	case evm.INVALID:
		return false
	case evm.PUSH0:
		return revision >= evm.R12_Shanghai
	case evm.BASEFEE:
		return revision >= evm.R10_London
	case evm.TLOAD, evm.TSTORE, evm.MCOPY, evm.BLOBHASH, evm.BLOBBASEFEE:
		return false
	}
	return evm.IsValid(op)
}
