// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package executor

import (
	"github.com/Fantom-foundation/cps/go/evm"
	"github.com/holiman/uint256"
)

// PreValidate charges the static and dynamic costs of the given instruction
// and enforces write protection in static frames. Access list entries
// touched by the instruction are warmed up.
func (e *StackExecutor) PreValidate(context evm.Context, op evm.OpCode, stack evm.Stack) error {
	args := operands{stack: stack}
	if e.config.Static && isStateModifying(op, &args) {
		return evm.ErrWriteProtection
	}

	var memEnd uint64
	dynamic, refund, err := e.dynamicGas(context, op, &args, &memEnd)
	if err != nil {
		return err
	}
	memCost, words := e.gasometer.memoryExpansionCost(memEnd)
	if err := e.gasometer.consume(getStaticGasPrice(op, e.config.Revision) + dynamic + memCost); err != nil {
		return err
	}
	e.gasometer.memoryWords = words
	e.gasometer.refund += refund
	return nil
}

// dynamicGas computes the operand dependent cost and refund of an
// instruction and extends memEnd to the memory it accesses.
func (e *StackExecutor) dynamicGas(context evm.Context, op evm.OpCode, args *operands, memEnd *uint64) (evm.Gas, evm.Gas, error) {
	switch op {
	case evm.MLOAD, evm.MSTORE:
		return 0, 0, args.window(memEnd, 0, uint256.NewInt(32))
	case evm.MSTORE8:
		return 0, 0, args.window(memEnd, 0, uint256.NewInt(1))
	case evm.RETURN, evm.REVERT:
		return 0, 0, args.windowAt(memEnd, 0, 1)
	case evm.SHA3:
		if err := args.windowAt(memEnd, 0, 1); err != nil {
			return 0, 0, err
		}
		cost, err := wordCost(args.get(1), Keccak256WordGas)
		return cost, 0, err
	case evm.CALLDATACOPY, evm.CODECOPY, evm.RETURNDATACOPY:
		if err := args.windowAt(memEnd, 0, 2); err != nil {
			return 0, 0, err
		}
		cost, err := wordCost(args.get(2), CopyGas)
		return cost, 0, err
	case evm.EXTCODECOPY:
		if err := args.windowAt(memEnd, 1, 3); err != nil {
			return 0, 0, err
		}
		cost, err := wordCost(args.get(3), CopyGas)
		if err != nil {
			return 0, 0, err
		}
		return cost + e.accountAccessCost(args.address(0)), 0, args.err
	case evm.BALANCE, evm.EXTCODESIZE, evm.EXTCODEHASH:
		return e.accountAccessCost(args.address(0)), 0, args.err
	case evm.EXP:
		exponent := args.get(1)
		return ExpByteGas * evm.Gas((exponent.BitLen()+7)/8), 0, args.err
	case evm.LOG0, evm.LOG1, evm.LOG2, evm.LOG3, evm.LOG4:
		if err := args.windowAt(memEnd, 0, 1); err != nil {
			return 0, 0, err
		}
		// The window check bounds the size.
		topics := evm.Gas(op - evm.LOG0)
		return topics*LogTopicGas + evm.Gas(args.get(1).Uint64())*LogDataGas, 0, args.err
	case evm.SLOAD:
		key := args.key(0)
		if args.err != nil {
			return 0, 0, args.err
		}
		return e.storageAccessCost(context.Address, key), 0, nil
	case evm.SSTORE:
		key, value := args.key(0), args.word(1)
		if args.err != nil {
			return 0, 0, args.err
		}
		return e.sstoreCost(context.Address, key, value)
	case evm.CREATE, evm.CREATE2:
		if err := args.windowAt(memEnd, 1, 2); err != nil {
			return 0, 0, err
		}
		if e.config.Revision >= evm.R12_Shanghai {
			if size := args.get(2); !size.IsUint64() || size.Uint64() > MaxInitCodeSize {
				return 0, 0, evm.ErrInitCodeTooLarge
			}
		}
		return 0, 0, args.err
	case evm.CALL, evm.CALLCODE:
		cost, err := e.callCost(op, args, memEnd, 3)
		return cost, 0, err
	case evm.DELEGATECALL, evm.STATICCALL:
		cost, err := e.callCost(op, args, memEnd, 2)
		return cost, 0, err
	case evm.SELFDESTRUCT:
		beneficiary := args.address(0)
		if args.err != nil {
			return 0, 0, args.err
		}
		cost, refund := e.selfdestructCost(context.Address, beneficiary)
		return cost, refund, nil
	}
	return 0, 0, nil
}

// isStateModifying reports whether an instruction with the given operands
// modifies the world state.
func isStateModifying(op evm.OpCode, args *operands) bool {
	switch op {
	case evm.SSTORE, evm.LOG0, evm.LOG1, evm.LOG2, evm.LOG3, evm.LOG4,
		evm.CREATE, evm.CREATE2, evm.SELFDESTRUCT, evm.TSTORE:
		return true
	case evm.CALL:
		return !args.get(2).IsZero()
	}
	return false
}

// accountAccessCost is the EIP-2929 surcharge for touching a cold account.
func (e *StackExecutor) accountAccessCost(addr evm.Address) evm.Gas {
	if e.config.Revision < evm.R09_Berlin {
		return 0
	}
	if e.IsCold(addr, nil) {
		return ColdAccountAccessCostEIP2929 - WarmStorageReadCostEIP2929
	}
	return 0
}

func (e *StackExecutor) storageAccessCost(addr evm.Address, key evm.Key) evm.Gas {
	if e.config.Revision < evm.R09_Berlin {
		return 0
	}
	if e.IsCold(addr, &key) {
		return ColdSloadCostEIP2929
	}
	return WarmStorageReadCostEIP2929
}

// sstoreCost implements the net gas metering of EIP-2200, adjusted by
// EIP-2929 and EIP-3529. Costs and refunds follow from the storage status
// the write is going to produce.
func (e *StackExecutor) sstoreCost(addr evm.Address, key evm.Key, value evm.Word) (evm.Gas, evm.Gas, error) {
	if e.gasometer.left <= SstoreSentryGasEIP2200 {
		return 0, 0, evm.ErrOutOfGas
	}

	var (
		cost         = evm.Gas(0)
		sloadGas     = SloadGasEIP2200
		resetGas     = SstoreResetGasEIP2200
		clearsRefund = SstoreClearsScheduleRefundEIP2200
	)
	if e.config.Revision >= evm.R09_Berlin {
		if e.IsCold(addr, &key) {
			cost = ColdSloadCostEIP2929
		}
		sloadGas = WarmStorageReadCostEIP2929
		resetGas = SstoreResetGasEIP2200 - ColdSloadCostEIP2929
	}
	if e.config.Revision >= evm.R10_London {
		clearsRefund = SstoreClearsScheduleRefundEIP3529
	}

	original := e.host.GetCommittedStorage(addr, key)
	current := e.host.GetStorage(addr, key)
	switch evm.GetStorageStatus(original, current, value) {
	case evm.StorageAdded:
		return cost + SstoreSetGasEIP2200, 0, nil
	case evm.StorageModified:
		return cost + resetGas, 0, nil
	case evm.StorageDeleted:
		return cost + resetGas, clearsRefund, nil
	case evm.StorageDeletedAdded:
		return cost + sloadGas, -clearsRefund, nil
	case evm.StorageModifiedDeleted:
		return cost + sloadGas, clearsRefund, nil
	case evm.StorageDeletedRestored:
		return cost + sloadGas, resetGas - sloadGas - clearsRefund, nil
	case evm.StorageAddedDeleted:
		return cost + sloadGas, SstoreSetGasEIP2200 - sloadGas, nil
	case evm.StorageModifiedRestored:
		return cost + sloadGas, resetGas - sloadGas, nil
	}
	// Dirty slots and no-ops are charged as a warm read.
	return cost + sloadGas, 0, nil
}

// callCost computes the dynamic cost of a call instruction, not including
// the endowment. The input window starts at the given operand index,
// followed by the output window.
func (e *StackExecutor) callCost(op evm.OpCode, args *operands, memEnd *uint64, window int) (evm.Gas, error) {
	if err := args.windowAt(memEnd, window, window+1); err != nil {
		return 0, err
	}
	if err := args.windowAt(memEnd, window+2, window+3); err != nil {
		return 0, err
	}
	target := args.address(1)
	cost := e.accountAccessCost(target)
	if op == evm.CALL || op == evm.CALLCODE {
		if !args.get(2).IsZero() {
			cost += CallValueTransferGas
			if op == evm.CALL && !e.host.AccountExists(target) {
				cost += CallNewAccountGas
			}
		}
	}
	return cost, args.err
}

func (e *StackExecutor) selfdestructCost(self evm.Address, beneficiary evm.Address) (evm.Gas, evm.Gas) {
	cost := evm.Gas(0)
	if e.config.Revision >= evm.R09_Berlin && e.IsCold(beneficiary, nil) {
		cost += ColdAccountAccessCostEIP2929
	}
	if !e.host.GetBalance(self).IsZero() && !e.host.AccountExists(beneficiary) {
		cost += CreateBySelfdestructGas
	}
	refund := evm.Gas(0)
	if e.config.Revision < evm.R10_London && !e.host.HasSelfDestructed(self) {
		refund = SelfdestructRefundGas
	}
	return cost, refund
}

// ------------------ Operands ------------------

// operands reads instruction arguments from a stack view. The first failed
// read is retained in err and all subsequent reads yield zero.
type operands struct {
	stack evm.Stack
	err   error
}

func (o *operands) get(n int) *uint256.Int {
	if o.err != nil {
		return new(uint256.Int)
	}
	value, err := o.stack.Peek(n)
	if err != nil {
		o.err = err
		return new(uint256.Int)
	}
	return &value
}

func (o *operands) address(n int) evm.Address {
	return evm.Address(o.get(n).Bytes20())
}

func (o *operands) key(n int) evm.Key {
	return evm.Key(o.get(n).Bytes32())
}

func (o *operands) word(n int) evm.Word {
	return evm.Word(o.get(n).Bytes32())
}

// window extends memEnd to cover size bytes at the offset in operand n.
func (o *operands) window(memEnd *uint64, n int, size *uint256.Int) error {
	end, err := memoryEnd(o.get(n), size)
	if o.err != nil {
		return o.err
	}
	if err != nil {
		return err
	}
	*memEnd = max(*memEnd, end)
	return nil
}

// windowAt is window with the size taken from operand size.
func (o *operands) windowAt(memEnd *uint64, offset, size int) error {
	return o.window(memEnd, offset, o.get(size))
}
