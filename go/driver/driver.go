// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package driver executes messages by servicing the interrupts of
// suspended frames. Nested calls and creations are run on an explicit
// frame stack, so the nesting depth does not grow the Go call stack.
package driver

import (
	"fmt"

	"github.com/Fantom-foundation/cps/go/cps"
	"github.com/Fantom-foundation/cps/go/evm"
	"github.com/Fantom-foundation/cps/go/executor"
	"github.com/Fantom-foundation/cps/go/interpreter"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/params"
)

const (
	// MaxCodeSize is the maximum size of deployed contract code (EIP-170).
	MaxCodeSize = int(params.MaxCodeSize)
	// CreateDataGas is charged per byte of deployed code.
	CreateDataGas = evm.Gas(params.CreateDataGas)

	ErrIntrinsicGas        = evm.ConstError("intrinsic gas too low")
	ErrInsufficientBalance = evm.ConstError("insufficient balance for transfer")
	ErrUnknownInterrupt    = evm.ConstError("unknown interrupt")
)

// AccessTuple is an entry of a message's access list (EIP-2930).
type AccessTuple struct {
	Address evm.Address
	Keys    []evm.Key
}

// Message is a top-level call or, if the recipient is nil, a contract
// creation.
type Message struct {
	Sender     evm.Address
	Recipient  *evm.Address
	Value      evm.Value
	Input      evm.Data
	GasLimit   evm.Gas
	AccessList []AccessTuple
}

// Result summarizes the execution of a message.
type Result struct {
	Reason          evm.ExitReason
	Output          evm.Data
	GasUsed         evm.Gas      // < including the intrinsic gas, after refunds
	GasRefund       evm.Gas      // < refund granted, already deducted from GasUsed
	ContractAddress *evm.Address // < set for successful creations
}

// Config parameterizes a Driver.
type Config struct {
	// MaxCodeSize limits the size of deployed code. Zero selects
	// MaxCodeSize.
	MaxCodeSize int
	// Tracer, if set, observes every instruction of every frame.
	Tracer interpreter.Tracer
	// Metrics, if set, collects statistics on executed frames.
	Metrics *Metrics
}

// Driver runs messages on a host. It is not safe for concurrent use.
type Driver struct {
	host        evm.Host
	config      Config
	revision    evm.Revision
	precompiles executor.PrecompileSet
}

// New creates a driver for the given host. The revision is taken from the
// host's block parameters.
func New(host evm.Host, config Config) (*Driver, error) {
	revision := host.BlockParameters().Revision
	if revision < evm.R07_Istanbul || revision > evm.NewestSupportedRevision {
		return nil, &evm.ErrUnsupportedRevision{Revision: revision}
	}
	if config.MaxCodeSize == 0 {
		config.MaxCodeSize = MaxCodeSize
	}
	return &Driver{
		host:        host,
		config:      config,
		revision:    revision,
		precompiles: executor.PrecompilesFor(revision),
	}, nil
}

// Run executes the given message. Errors are reported for messages that
// can not be executed at all and for fatal conditions in any frame; in
// both cases the host is left unmodified.
func (d *Driver) Run(message Message) (Result, error) {
	intrinsic := IntrinsicGas(message, d.revision)
	if message.GasLimit < intrinsic {
		return Result{}, fmt.Errorf("%w: have %d, want %d", ErrIntrinsicGas, message.GasLimit, intrinsic)
	}
	if message.Recipient == nil && d.revision >= evm.R12_Shanghai && len(message.Input) > executor.MaxInitCodeSize {
		return Result{}, fmt.Errorf("%w: %d bytes", evm.ErrInitCodeTooLarge, len(message.Input))
	}
	if d.host.GetBalance(message.Sender).Cmp(message.Value) < 0 {
		return Result{}, fmt.Errorf("%w: address %v", ErrInsufficientBalance, message.Sender)
	}

	root := d.host.CreateSnapshot()
	d.warmUp(message)

	gas := message.GasLimit - intrinsic
	var interrupt evm.Interrupt
	if message.Recipient == nil {
		interrupt = &cps.CreateInterrupt{
			Caller:   message.Sender,
			Scheme:   evm.LegacyScheme(message.Sender),
			Value:    message.Value,
			InitCode: evm.Code(message.Input),
			GasLimit: gas,
		}
	} else {
		nonce := d.host.GetNonce(message.Sender)
		if nonce+1 < nonce {
			d.host.RestoreSnapshot(root)
			return Result{}, evm.ErrNonceOverflow
		}
		d.host.SetNonce(message.Sender, nonce+1)
		recipient := *message.Recipient
		interrupt = &cps.CallInterrupt{
			CodeAddress: recipient,
			Transfer:    &evm.Transfer{Source: message.Sender, Target: recipient, Value: message.Value},
			Input:       message.Input,
			Context:     evm.Context{Address: recipient, Caller: message.Sender, ApparentValue: message.Value},
			GasLimit:    gas,
		}
	}

	out, err := d.execute(interrupt)
	if err != nil {
		d.host.RestoreSnapshot(root)
		return Result{}, err
	}

	result := d.finalize(message, out)
	log.Debug("Message executed", "sender", message.Sender, "reason", result.Reason, "gasUsed", result.GasUsed, "refund", result.GasRefund)
	return result, nil
}

// warmUp registers the accounts and slots accessible at warm prices from
// the start of the message (EIP-2929, EIP-2930, EIP-3651).
func (d *Driver) warmUp(message Message) {
	if d.revision < evm.R09_Berlin {
		return
	}
	d.host.AccessAccount(message.Sender)
	if message.Recipient != nil {
		d.host.AccessAccount(*message.Recipient)
	}
	for _, address := range d.precompiles.Addresses() {
		d.host.AccessAccount(address)
	}
	for _, tuple := range message.AccessList {
		d.host.AccessAccount(tuple.Address)
		for _, key := range tuple.Keys {
			d.host.AccessStorage(tuple.Address, key)
		}
	}
	if d.revision >= evm.R12_Shanghai {
		d.host.AccessAccount(d.host.BlockParameters().Coinbase)
	}
}

// finalize applies the refund to the gas used by the message.
func (d *Driver) finalize(message Message, out outcome) Result {
	used := message.GasLimit - out.gasLeft
	refund := evm.Gas(0)
	if out.reason.IsSucceed() {
		refund = max(out.refund, 0)
	}
	quotient := evm.Gas(2)
	if d.revision >= evm.R10_London {
		quotient = 5
	}
	refund = min(refund, used/quotient)

	result := Result{
		Reason:    out.reason,
		Output:    out.output,
		GasUsed:   used - refund,
		GasRefund: refund,
	}
	if message.Recipient == nil && out.reason.IsSucceed() {
		address := out.address
		result.ContractAddress = &address
	}
	return result
}

// ------------------ Frames ------------------

// frame is a suspended or running execution on the frame stack.
type frame struct {
	layer    *cps.Executor
	runtime  *interpreter.Runtime
	kind     evm.InterruptKind
	callKind evm.CallKind
	snapshot evm.Snapshot
	static   bool
	address  evm.Address // < the created contract, creations only
}

// outcome is the result of a frame to be fed back to its parent.
type outcome struct {
	reason  evm.ExitReason
	output  evm.Data
	gasLeft evm.Gas
	refund  evm.Gas
	address evm.Address
}

// execute services the given interrupt and all interrupts of the frames
// it spawns until the root frame terminates.
func (d *Driver) execute(root evm.Interrupt) (outcome, error) {
	var (
		frames  []*frame
		pending = root
		deepest = 0
	)
	defer func() { d.config.Metrics.maxDepth(deepest) }()

	for {
		if pending != nil {
			kind, callKind := pending.Kind(), callKindOf(pending)
			static := len(frames) > 0 && frames[len(frames)-1].static
			d.config.Metrics.interrupt(callKind)

			child, done, err := d.enter(pending, len(frames), static)
			if err != nil {
				return outcome{}, err
			}
			pending = nil
			if child != nil {
				child.callKind = callKind
				frames = append(frames, child)
				deepest = max(deepest, len(frames)-1)
			} else {
				d.config.Metrics.frame(callKind, done.reason)
				if len(frames) == 0 {
					return done, nil
				}
				if err := d.feedback(frames[len(frames)-1], kind, done); err != nil {
					return outcome{}, err
				}
			}
		}

		top := frames[len(frames)-1]
		result := top.layer.Execute(top.runtime)
		if result.Kind == cps.Other {
			pending = result.Interrupt
			continue
		}
		if result.Reason.IsFatal() {
			return outcome{}, fmt.Errorf("frame at depth %d aborted: %w", len(frames)-1, result.Reason.Err)
		}

		done := d.exit(top, result.Reason)
		d.config.Metrics.frame(top.callKind, done.reason)
		frames = frames[:len(frames)-1]
		if len(frames) == 0 {
			return done, nil
		}
		if err := d.feedback(frames[len(frames)-1], top.kind, done); err != nil {
			return outcome{}, err
		}
	}
}

// callKindOf classifies the interrupt by the instruction that raised it.
func callKindOf(interrupt evm.Interrupt) evm.CallKind {
	switch interrupt := interrupt.(type) {
	case *cps.CallInterrupt:
		return interrupt.CallKind()
	case *cps.CreateInterrupt:
		return interrupt.CallKind()
	}
	return evm.CallKind(-1)
}

// enter starts the sub-call described by the interrupt. Sub-calls that
// complete without running code yield an outcome instead of a frame.
func (d *Driver) enter(interrupt evm.Interrupt, depth int, static bool) (*frame, outcome, error) {
	switch interrupt := interrupt.(type) {
	case *cps.CallInterrupt:
		return d.enterCall(interrupt, depth, static || interrupt.IsStatic)
	case *cps.CreateInterrupt:
		return d.enterCreate(interrupt, depth, static)
	}
	return nil, outcome{}, fmt.Errorf("%w: %T", ErrUnknownInterrupt, interrupt)
}

func (d *Driver) enterCall(call *cps.CallInterrupt, depth int, static bool) (*frame, outcome, error) {
	log.Trace("Entering call", "depth", depth, "code", call.CodeAddress, "address", call.Context.Address, "gas", call.GasLimit)

	// Only top-level calls reach precompiles, nested ones complete in place.
	if contract, found := d.precompiles.Get(call.CodeAddress); found {
		result, gasLeft := executor.RunPrecompile(d.host, contract, call.Transfer, call.Input, call.GasLimit)
		return nil, outcome{reason: result.Reason, output: result.Output, gasLeft: gasLeft}, nil
	}

	snapshot := d.host.CreateSnapshot()
	if call.Transfer != nil {
		executor.TransferValue(d.host, *call.Transfer)
	}
	code := d.host.GetCode(call.CodeAddress)
	if len(code) == 0 {
		return nil, outcome{reason: evm.ExitStopped, gasLeft: call.GasLimit}, nil
	}

	f, err := d.newFrame(evm.InterruptCall, code, d.host.GetCodeHash(call.CodeAddress), call.Input, call.Context, depth, static, call.GasLimit)
	if err != nil {
		return nil, outcome{}, err
	}
	f.snapshot = snapshot
	return f, outcome{}, nil
}

func (d *Driver) enterCreate(create *cps.CreateInterrupt, depth int, static bool) (*frame, outcome, error) {
	nonce := d.host.GetNonce(create.Caller)
	if nonce+1 < nonce {
		return nil, outcome{reason: evm.ExitWithError(evm.ErrNonceOverflow), gasLeft: create.GasLimit}, nil
	}
	d.host.SetNonce(create.Caller, nonce+1)

	address := create.Scheme.Derive(nonce)
	log.Trace("Entering create", "depth", depth, "caller", create.Caller, "address", address, "gas", create.GasLimit)
	if d.revision >= evm.R09_Berlin {
		d.host.AccessAccount(address)
	}
	if d.host.GetNonce(address) != 0 || d.host.GetCodeSize(address) != 0 {
		return nil, outcome{reason: evm.ExitWithError(evm.ErrCreateCollision), address: address}, nil
	}

	snapshot := d.host.CreateSnapshot()
	d.host.SetNonce(address, 1)
	executor.TransferValue(d.host, evm.Transfer{Source: create.Caller, Target: address, Value: create.Value})

	context := evm.Context{Address: address, Caller: create.Caller, ApparentValue: create.Value}
	f, err := d.newFrame(evm.InterruptCreate, create.InitCode, evm.Keccak256(create.InitCode), nil, context, depth, static, create.GasLimit)
	if err != nil {
		return nil, outcome{}, err
	}
	f.snapshot = snapshot
	f.address = address
	return f, outcome{}, nil
}

func (d *Driver) newFrame(
	kind evm.InterruptKind,
	code evm.Code,
	codeHash evm.Hash,
	input evm.Data,
	context evm.Context,
	depth int,
	static bool,
	gas evm.Gas,
) (*frame, error) {
	config := executor.Config{
		Revision: d.revision,
		Depth:    depth,
		Static:   static,
		Gas:      gas,
	}
	layer, err := cps.NewWithPrecompiles(d.host, config, d.precompiles)
	if err != nil {
		return nil, err
	}
	runtime := interpreter.NewRuntime(code, input, context, interpreter.Config{
		Revision: d.revision,
		CodeHash: &codeHash,
		Tracer:   d.config.Tracer,
	})
	return &frame{
		layer:   layer,
		runtime: runtime,
		kind:    kind,
		static:  static,
	}, nil
}

// exit collects the outcome of a terminated frame. Creations deposit their
// code, failed frames are rolled back.
func (d *Driver) exit(f *frame, reason evm.ExitReason) outcome {
	out := outcome{reason: reason, gasLeft: f.layer.Gas(), address: f.address}
	switch {
	case reason.IsSucceed():
		out.refund = f.layer.Refund()
		if f.kind == evm.InterruptCreate {
			d.deposit(f, &out)
		} else {
			out.output = f.runtime.ReturnValue()
		}
	case reason.IsRevert():
		out.output = f.runtime.ReturnValue()
	default:
		out.gasLeft = 0
	}
	if !out.reason.IsSucceed() {
		d.host.RestoreSnapshot(f.snapshot)
	}
	log.Trace("Frame completed", "kind", f.callKind, "reason", out.reason, "gasLeft", out.gasLeft)
	return out
}

// deposit stores the code returned by the init code of a creation.
func (d *Driver) deposit(f *frame, out *outcome) {
	code := f.runtime.ReturnValue()
	cost := CreateDataGas * evm.Gas(len(code))

	var err error
	switch {
	case len(code) > d.config.MaxCodeSize:
		err = evm.ErrCreateContractLimit
	case d.revision >= evm.R10_London && len(code) > 0 && code[0] == 0xEF:
		err = evm.ErrInvalidCode
	case out.gasLeft < cost:
		err = evm.ErrOutOfGas
	}
	if err != nil {
		out.reason = evm.ExitWithError(err)
		out.gasLeft = 0
		out.refund = 0
		return
	}
	out.gasLeft -= cost
	d.host.SetCode(f.address, evm.Code(code))
}

// feedback hands the outcome of a completed sub-call to the suspended
// parent frame.
func (d *Driver) feedback(parent *frame, kind evm.InterruptKind, out outcome) error {
	if kind == evm.InterruptCreate {
		return parent.layer.CreateFeedback(evm.CreateFeedback{
			Reason:    out.reason,
			Address:   out.address,
			Output:    out.output,
			GasLeft:   out.gasLeft,
			GasRefund: out.refund,
		})
	}
	return parent.layer.CallFeedback(evm.CallFeedback{
		Reason:    out.reason,
		Output:    out.output,
		GasLeft:   out.gasLeft,
		GasRefund: out.refund,
	})
}
