// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package interpreter

import (
	"bytes"
	"errors"
	"math"

	"github.com/Fantom-foundation/cps/go/evm"
	"github.com/holiman/uint256"
)

// execute runs a single instruction whose stack bounds and costs have been
// validated. The program counter is advanced unless the frame terminates.
func (r *Runtime) execute(h evm.Handler, op evm.OpCode) (evm.Interrupt, error) {
	switch {
	case evm.PUSH1 <= op && op <= evm.PUSH32:
		opPush(r, int(op-evm.PUSH1)+1)
		return nil, nil
	case evm.DUP1 <= op && op <= evm.DUP16:
		r.stack.dup(int(op - evm.DUP1))
		r.pc++
		return nil, nil
	case evm.SWAP1 <= op && op <= evm.SWAP16:
		r.stack.swap(int(op-evm.SWAP1) + 1)
		r.pc++
		return nil, nil
	case evm.LOG0 <= op && op <= evm.LOG4:
		if err := opLog(r, h, int(op-evm.LOG0)); err != nil {
			return nil, err
		}
		r.pc++
		return nil, nil
	}

	var err error
	switch op {
	// --- control flow ---
	case evm.STOP:
		r.terminate(evm.ExitStopped)
		return nil, nil
	case evm.RETURN, evm.REVERT:
		return nil, opEndWithResult(r, op)
	case evm.SELFDESTRUCT:
		return nil, opSelfdestruct(r, h)
	case evm.JUMP:
		return nil, opJump(r)
	case evm.JUMPI:
		return nil, opJumpi(r)
	case evm.JUMPDEST:
	case evm.PC:
		r.stack.pushUndefined().SetUint64(uint64(r.pc))
	case evm.POP:
		r.stack.pop()

	// --- arithmetic ---
	case evm.ADD:
		opAdd(r)
	case evm.MUL:
		opMul(r)
	case evm.SUB:
		opSub(r)
	case evm.DIV:
		opDiv(r)
	case evm.SDIV:
		opSDiv(r)
	case evm.MOD:
		opMod(r)
	case evm.SMOD:
		opSMod(r)
	case evm.ADDMOD:
		opAddMod(r)
	case evm.MULMOD:
		opMulMod(r)
	case evm.EXP:
		opExp(r)
	case evm.SIGNEXTEND:
		opSignExtend(r)

	// --- comparison and bitwise ---
	case evm.LT:
		opLt(r)
	case evm.GT:
		opGt(r)
	case evm.SLT:
		opSlt(r)
	case evm.SGT:
		opSgt(r)
	case evm.EQ:
		opEq(r)
	case evm.ISZERO:
		opIszero(r)
	case evm.AND:
		opAnd(r)
	case evm.OR:
		opOr(r)
	case evm.XOR:
		opXor(r)
	case evm.NOT:
		opNot(r)
	case evm.BYTE:
		opByte(r)
	case evm.SHL:
		opShl(r)
	case evm.SHR:
		opShr(r)
	case evm.SAR:
		opSar(r)
	case evm.SHA3:
		err = opSha3(r)

	// --- frame environment ---
	case evm.ADDRESS:
		r.stack.pushUndefined().SetBytes20(r.context.Address[:])
	case evm.CALLER:
		r.stack.pushUndefined().SetBytes20(r.context.Caller[:])
	case evm.CALLVALUE:
		r.stack.pushUndefined().SetBytes32(r.context.ApparentValue[:])
	case evm.CALLDATALOAD:
		opCallDataload(r)
	case evm.CALLDATASIZE:
		r.stack.pushUndefined().SetUint64(uint64(len(r.input)))
	case evm.CALLDATACOPY:
		err = opDataCopy(r, r.input)
	case evm.CODESIZE:
		r.stack.pushUndefined().SetUint64(uint64(len(r.code)))
	case evm.CODECOPY:
		err = opDataCopy(r, r.code)
	case evm.RETURNDATASIZE:
		r.stack.pushUndefined().SetUint64(uint64(len(r.returnData)))
	case evm.RETURNDATACOPY:
		err = opReturnDataCopy(r)

	// --- memory ---
	case evm.MLOAD:
		offset := r.stack.peek()
		if err = checkOffsetOverflow(offset, 32); err == nil {
			err = r.memory.readWord(offset.Uint64(), offset)
		}
	case evm.MSTORE:
		offset, value := r.stack.pop(), r.stack.pop()
		if err = checkOffsetOverflow(offset, 32); err == nil {
			err = r.memory.setWord(offset.Uint64(), value)
		}
	case evm.MSTORE8:
		offset, value := r.stack.pop(), r.stack.pop()
		if err = checkOffsetOverflow(offset, 1); err == nil {
			err = r.memory.setByte(offset.Uint64(), byte(value.Uint64()))
		}
	case evm.MSIZE:
		r.stack.pushUndefined().SetUint64(r.memory.length())

	// --- world state ---
	case evm.BALANCE:
		top := r.stack.peek()
		balance := h.Balance(evm.Address(top.Bytes20()))
		top.SetBytes32(balance[:])
	case evm.SELFBALANCE:
		balance := h.Balance(r.context.Address)
		r.stack.pushUndefined().SetBytes32(balance[:])
	case evm.EXTCODESIZE:
		top := r.stack.peek()
		top.SetUint64(uint64(h.CodeSize(evm.Address(top.Bytes20()))))
	case evm.EXTCODEHASH:
		top := r.stack.peek()
		address := evm.Address(top.Bytes20())
		if !h.Exists(address) {
			top.Clear()
		} else {
			hash := h.CodeHash(address)
			top.SetBytes32(hash[:])
		}
	case evm.EXTCODECOPY:
		address := evm.Address(r.stack.pop().Bytes20())
		err = opDataCopy(r, h.Code(address))
	case evm.SLOAD:
		top := r.stack.peek()
		value := h.Storage(r.context.Address, evm.Key(top.Bytes32()))
		top.SetBytes32(value[:])
	case evm.SSTORE:
		key, value := r.stack.pop(), r.stack.pop()
		err = h.SetStorage(r.context.Address, evm.Key(key.Bytes32()), evm.Word(value.Bytes32()))

	// --- transaction and block environment ---
	case evm.ORIGIN:
		origin := h.Origin()
		r.stack.pushUndefined().SetBytes20(origin[:])
	case evm.GASPRICE:
		price := h.GasPrice()
		r.stack.pushUndefined().SetBytes32(price[:])
	case evm.GAS:
		r.stack.pushUndefined().SetUint64(uint64(h.GasLeft()))
	case evm.BLOCKHASH:
		top := r.stack.peek()
		if !top.IsUint64() {
			top.Clear()
		} else {
			hash := h.BlockHash(top.Uint64())
			top.SetBytes32(hash[:])
		}
	case evm.COINBASE:
		coinbase := h.BlockCoinbase()
		r.stack.pushUndefined().SetBytes20(coinbase[:])
	case evm.TIMESTAMP:
		r.stack.pushUndefined().SetUint64(h.BlockTimestamp())
	case evm.NUMBER:
		r.stack.pushUndefined().SetUint64(h.BlockNumber())
	case evm.PREVRANDAO:
		difficulty := h.BlockDifficulty()
		r.stack.pushUndefined().SetBytes32(difficulty[:])
	case evm.GASLIMIT:
		r.stack.pushUndefined().SetUint64(uint64(h.BlockGasLimit()))
	case evm.CHAINID:
		id := h.ChainID()
		r.stack.pushUndefined().SetBytes32(id[:])
	case evm.BASEFEE:
		fee := h.BlockBaseFee()
		r.stack.pushUndefined().SetBytes32(fee[:])
	case evm.PUSH0:
		r.stack.pushUndefined().Clear()

	// --- sub-calls ---
	case evm.CREATE, evm.CREATE2:
		return opCreate(r, h, op)
	case evm.CALL, evm.CALLCODE, evm.DELEGATECALL, evm.STATICCALL:
		return opCall(r, h, op)

	default:
		err = evm.ErrInvalidOpcode
	}
	if err != nil {
		return nil, err
	}
	r.pc++
	return nil, nil
}

// ------------------ Control Flow ------------------

func opPush(r *Runtime, n int) {
	start := r.pc + 1
	end := start + n
	var data [32]byte
	if start < len(r.code) {
		// Code is implicitly right-padded with zeros.
		copy(data[:n], r.code[start:min(end, len(r.code))])
	}
	r.stack.pushUndefined().SetBytes(data[:n])
	r.pc = end
}

func opJump(r *Runtime) error {
	return jumpTo(r, r.stack.pop())
}

func opJumpi(r *Runtime) error {
	destination, condition := r.stack.pop(), r.stack.pop()
	if condition.IsZero() {
		r.pc++
		return nil
	}
	return jumpTo(r, destination)
}

func jumpTo(r *Runtime, destination *uint256.Int) error {
	if !destination.IsUint64() || destination.Uint64() > math.MaxInt32 {
		return evm.ErrInvalidJump
	}
	pos := destination.Uint64()
	if !r.isJumpDestination(pos) {
		return evm.ErrInvalidJump
	}
	r.pc = int(pos)
	return nil
}

func opEndWithResult(r *Runtime, op evm.OpCode) error {
	offset, size := r.stack.pop(), r.stack.pop()
	if err := checkSizeOffsetUint64Overflow(offset, size); err != nil {
		return err
	}
	data, err := r.memory.getSlice(offset.Uint64(), size.Uint64())
	if err != nil {
		return err
	}
	r.output = bytes.Clone(data)
	if op == evm.REVERT {
		r.terminate(evm.ExitReverted)
	} else {
		r.terminate(evm.ExitReturned)
	}
	return nil
}

func opSelfdestruct(r *Runtime, h evm.Handler) error {
	beneficiary := evm.Address(r.stack.pop().Bytes20())
	if err := h.MarkDelete(r.context.Address, beneficiary); err != nil {
		return err
	}
	r.terminate(evm.ExitSelfDestructed)
	return nil
}

// ------------------ Arithmetic ------------------

func opAdd(r *Runtime) {
	a := r.stack.pop()
	b := r.stack.peek()
	b.Add(a, b)
}

func opSub(r *Runtime) {
	a := r.stack.pop()
	b := r.stack.peek()
	b.Sub(a, b)
}

func opMul(r *Runtime) {
	a := r.stack.pop()
	b := r.stack.peek()
	b.Mul(a, b)
}

func opDiv(r *Runtime) {
	a := r.stack.pop()
	b := r.stack.peek()
	b.Div(a, b)
}

func opSDiv(r *Runtime) {
	a := r.stack.pop()
	b := r.stack.peek()
	b.SDiv(a, b)
}

func opMod(r *Runtime) {
	a := r.stack.pop()
	b := r.stack.peek()
	b.Mod(a, b)
}

func opSMod(r *Runtime) {
	a := r.stack.pop()
	b := r.stack.peek()
	b.SMod(a, b)
}

func opAddMod(r *Runtime) {
	a := r.stack.pop()
	b := r.stack.pop()
	n := r.stack.peek()
	n.AddMod(a, b, n)
}

func opMulMod(r *Runtime) {
	a := r.stack.pop()
	b := r.stack.pop()
	n := r.stack.peek()
	n.MulMod(a, b, n)
}

func opExp(r *Runtime) {
	base, exponent := r.stack.pop(), r.stack.peek()
	exponent.Exp(base, exponent)
}

func opSignExtend(r *Runtime) {
	back, num := r.stack.pop(), r.stack.peek()
	num.ExtendSign(num, back)
}

// ------------------ Comparison and Bitwise ------------------

func opLt(r *Runtime) {
	a := r.stack.pop()
	b := r.stack.peek()
	setBool(b, a.Lt(b))
}

func opGt(r *Runtime) {
	a := r.stack.pop()
	b := r.stack.peek()
	setBool(b, a.Gt(b))
}

func opSlt(r *Runtime) {
	a := r.stack.pop()
	b := r.stack.peek()
	setBool(b, a.Slt(b))
}

func opSgt(r *Runtime) {
	a := r.stack.pop()
	b := r.stack.peek()
	setBool(b, a.Sgt(b))
}

func opEq(r *Runtime) {
	a := r.stack.pop()
	b := r.stack.peek()
	setBool(b, a.Eq(b))
}

func opIszero(r *Runtime) {
	top := r.stack.peek()
	setBool(top, top.IsZero())
}

func setBool(z *uint256.Int, value bool) {
	if value {
		z.SetOne()
	} else {
		z.Clear()
	}
}

func opAnd(r *Runtime) {
	a := r.stack.pop()
	b := r.stack.peek()
	b.And(a, b)
}

func opOr(r *Runtime) {
	a := r.stack.pop()
	b := r.stack.peek()
	b.Or(a, b)
}

func opXor(r *Runtime) {
	a := r.stack.pop()
	b := r.stack.peek()
	b.Xor(a, b)
}

func opNot(r *Runtime) {
	a := r.stack.peek()
	a.Not(a)
}

func opByte(r *Runtime) {
	th, val := r.stack.pop(), r.stack.peek()
	val.Byte(th)
}

func opShl(r *Runtime) {
	a := r.stack.pop()
	b := r.stack.peek()
	if a.LtUint64(256) {
		b.Lsh(b, uint(a.Uint64()))
	} else {
		b.Clear()
	}
}

func opShr(r *Runtime) {
	a := r.stack.pop()
	b := r.stack.peek()
	if a.LtUint64(256) {
		b.Rsh(b, uint(a.Uint64()))
	} else {
		b.Clear()
	}
}

func opSar(r *Runtime) {
	a := r.stack.pop()
	b := r.stack.peek()
	if a.GtUint64(256) {
		if b.Sign() >= 0 {
			b.Clear()
		} else {
			b.SetAllOne()
		}
		return
	}
	b.SRsh(b, uint(a.Uint64()))
}

func opSha3(r *Runtime) error {
	offset, size := r.stack.pop(), r.stack.peek()
	if err := checkSizeOffsetUint64Overflow(offset, size); err != nil {
		return err
	}
	data, err := r.memory.getSlice(offset.Uint64(), size.Uint64())
	if err != nil {
		return err
	}
	hash := keccak256(data)
	size.SetBytes32(hash[:])
	return nil
}

// ------------------ Data Access ------------------

func opCallDataload(r *Runtime) {
	top := r.stack.peek()
	if !top.IsUint64() {
		top.Clear()
		return
	}
	data := getData(r.input, top.Uint64(), 32)
	top.SetBytes32(data)
}

// opDataCopy implements CALLDATACOPY, CODECOPY and EXTCODECOPY copying from
// the given source.
func opDataCopy(r *Runtime, source []byte) error {
	var (
		memOffset  = r.stack.pop()
		dataOffset = r.stack.pop()
		length     = r.stack.pop()
	)
	if err := checkSizeOffsetUint64Overflow(memOffset, length); err != nil {
		return err
	}
	dataOffset64, overflow := dataOffset.Uint64WithOverflow()
	if overflow {
		dataOffset64 = math.MaxUint64
	}
	data, err := r.memory.getSlice(memOffset.Uint64(), length.Uint64())
	if err != nil {
		return err
	}
	copy(data, getData(source, dataOffset64, length.Uint64()))
	return nil
}

func opReturnDataCopy(r *Runtime) error {
	var (
		memOffset  = r.stack.pop()
		dataOffset = r.stack.pop()
		length     = r.stack.pop()
	)
	offset64, overflow := dataOffset.Uint64WithOverflow()
	if overflow {
		return evm.ErrReturnDataOutOfBounds
	}
	end := new(uint256.Int)
	end, overflow = end.AddOverflow(dataOffset, length)
	if overflow || !end.IsUint64() || uint64(len(r.returnData)) < end.Uint64() {
		return evm.ErrReturnDataOutOfBounds
	}
	if err := checkSizeOffsetUint64Overflow(memOffset, length); err != nil {
		return err
	}
	return r.memory.set(memOffset.Uint64(), r.returnData[offset64:end.Uint64()])
}

func opLog(r *Runtime, h evm.Handler, size int) error {
	offset, length := r.stack.pop(), r.stack.pop()
	if err := checkSizeOffsetUint64Overflow(offset, length); err != nil {
		return err
	}
	topics := make([]evm.Hash, size)
	for i := 0; i < size; i++ {
		topics[i] = r.stack.pop().Bytes32()
	}
	data, err := r.memory.getSlice(offset.Uint64(), length.Uint64())
	if err != nil {
		return err
	}
	return h.Log(r.context.Address, topics, bytes.Clone(data))
}

// ------------------ Sub-Calls ------------------

func opCreate(r *Runtime, h evm.Handler, op evm.OpCode) (evm.Interrupt, error) {
	var (
		value  = r.stack.pop()
		offset = r.stack.pop()
		size   = r.stack.pop()
		salt   evm.Hash
	)
	if op == evm.CREATE2 {
		salt = r.stack.pop().Bytes32()
	}
	if err := checkSizeOffsetUint64Overflow(offset, size); err != nil {
		return nil, err
	}
	data, err := r.memory.getSlice(offset.Uint64(), size.Uint64())
	if err != nil {
		return nil, err
	}
	initCode := evm.Code(bytes.Clone(data))

	caller := r.context.Address
	scheme := evm.LegacyScheme(caller)
	if op == evm.CREATE2 {
		scheme = evm.SaltedScheme(caller, keccak256(initCode), salt)
	}

	result, interrupt := h.Create(caller, scheme, evm.ValueFromUint256(value), initCode, nil)
	r.pc++
	if interrupt != nil {
		r.pending = &pendingOperation{kind: evm.InterruptCreate}
		return interrupt, nil
	}
	// A creation that can not pay for itself aborts the creator.
	if result.Reason.IsError() && errors.Is(result.Reason.Err, evm.ErrOutOfGas) {
		return nil, result.Reason.Err
	}
	r.finishCreate(result.Reason, result.Address, result.Output)
	return nil, nil
}

func opCall(r *Runtime, h evm.Handler, op evm.OpCode) (evm.Interrupt, error) {
	gas, to := r.stack.pop(), evm.Address(r.stack.pop().Bytes20())
	value := uint256.Int{}
	if op == evm.CALL || op == evm.CALLCODE {
		value = *r.stack.pop()
	}
	inOffset, inSize := r.stack.pop(), r.stack.pop()
	outOffset, outSize := r.stack.pop(), r.stack.pop()

	if err := checkSizeOffsetUint64Overflow(inOffset, inSize); err != nil {
		return nil, err
	}
	if err := checkSizeOffsetUint64Overflow(outOffset, outSize); err != nil {
		return nil, err
	}
	data, err := r.memory.getSlice(inOffset.Uint64(), inSize.Uint64())
	if err != nil {
		return nil, err
	}
	input := evm.Data(bytes.Clone(data))
	// The return window is reserved before the call is made.
	if err := r.memory.expand(outOffset.Uint64(), outSize.Uint64()); err != nil {
		return nil, err
	}

	var targetGas *evm.Gas
	if gas.IsUint64() && gas.Uint64() <= math.MaxInt64 {
		target := evm.Gas(gas.Uint64())
		targetGas = &target
	}

	self := r.context.Address
	callValue := evm.ValueFromUint256(&value)
	var (
		context  evm.Context
		transfer *evm.Transfer
		isStatic bool
	)
	switch op {
	case evm.CALL:
		context = evm.Context{Address: to, Caller: self, ApparentValue: callValue}
		transfer = &evm.Transfer{Source: self, Target: to, Value: callValue}
	case evm.CALLCODE:
		context = evm.Context{Address: self, Caller: self, ApparentValue: callValue}
		transfer = &evm.Transfer{Source: self, Target: self, Value: callValue}
	case evm.DELEGATECALL:
		context = evm.Context{Address: self, Caller: r.context.Caller, ApparentValue: r.context.ApparentValue}
	case evm.STATICCALL:
		context = evm.Context{Address: to, Caller: self}
		isStatic = true
	}

	result, interrupt := h.Call(to, transfer, input, targetGas, isStatic, context)
	r.pc++
	if interrupt != nil {
		r.pending = &pendingOperation{
			kind:      evm.InterruptCall,
			outOffset: outOffset.Uint64(),
			outSize:   outSize.Uint64(),
		}
		return interrupt, nil
	}
	r.finishCall(result.Reason, result.Output, outOffset.Uint64(), outSize.Uint64())
	return nil, nil
}

// finishCreate pushes the outcome of a contract creation.
func (r *Runtime) finishCreate(reason evm.ExitReason, address *evm.Address, output evm.Data) {
	switch {
	case reason.IsSucceed():
		r.returnData = nil
		result := r.stack.pushUndefined()
		if address != nil {
			result.SetBytes20(address[:])
		} else {
			result.Clear()
		}
	case reason.IsRevert():
		r.returnData = output
		r.stack.pushUndefined().Clear()
	case reason.IsError():
		r.returnData = nil
		r.stack.pushUndefined().Clear()
	default:
		r.terminate(reason)
	}
}

// finishCall pushes the outcome of a message call and copies the returned
// data into the reserved window.
func (r *Runtime) finishCall(reason evm.ExitReason, output evm.Data, outOffset, outSize uint64) {
	switch {
	case reason.IsSucceed():
		r.returnData = output
		r.memory.copyWindow(outOffset, outSize, output)
		r.stack.pushUndefined().SetOne()
	case reason.IsRevert():
		r.returnData = output
		r.memory.copyWindow(outOffset, outSize, output)
		r.stack.pushUndefined().Clear()
	case reason.IsError():
		r.returnData = nil
		r.stack.pushUndefined().Clear()
	default:
		r.terminate(reason)
	}
}

// ------------------ Helpers ------------------

// getData returns size bytes of data starting at start, right-padded with
// zeros.
func getData(data []byte, start uint64, size uint64) []byte {
	length := uint64(len(data))
	if start > length {
		start = length
	}
	end := start + size
	if end > length || end < start {
		end = length
	}
	res := make([]byte, int(size))
	copy(res, data[start:end])
	return res
}

func checkSizeOffsetUint64Overflow(offset, size *uint256.Int) error {
	if size.IsZero() {
		return nil
	}
	if !offset.IsUint64() || !size.IsUint64() || offset.Uint64()+size.Uint64() < offset.Uint64() {
		return evm.ErrOverflow
	}
	return nil
}

func checkOffsetOverflow(offset *uint256.Int, size uint64) error {
	if !offset.IsUint64() || offset.Uint64()+size < offset.Uint64() {
		return evm.ErrOverflow
	}
	return nil
}
