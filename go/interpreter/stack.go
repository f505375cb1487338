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
	"fmt"
	"strings"
	"sync"

	"github.com/Fantom-foundation/cps/go/evm"
	"github.com/holiman/uint256"
)

const maxStackSize = 1024 // Maximum size of VM stack allowed.

// stack is the 1024-element 256-bit word-wide stack used by the runtime.
// Boundaries are not checked by the individual operations. The runtime
// verifies them for every instruction before it is executed.
//
// Each stack consumes 32KB of memory. Runtimes obtain their stack from a
// pool using newStack() and return it with returnStack(s) once they
// terminated.
type stack struct {
	data         [maxStackSize]uint256.Int
	stackPointer int
}

// push adds a copy of the given value to the top of the stack.
func (s *stack) push(d *uint256.Int) {
	s.data[s.stackPointer] = *d
	s.stackPointer++
}

// pushUndefined adds an element with an undefined value to the top of the
// stack and returns a pointer to it.
func (s *stack) pushUndefined() *uint256.Int {
	s.stackPointer++
	return &s.data[s.stackPointer-1]
}

// pop removes the top element from the stack and returns a pointer to it.
// The pointer is only valid until the next push operation.
func (s *stack) pop() *uint256.Int {
	s.stackPointer--
	return &s.data[s.stackPointer]
}

// peek returns a pointer to the top element of the stack without removing it.
func (s *stack) peek() *uint256.Int {
	return &s.data[s.len()-1]
}

// peekN returns a pointer to the n-th element from the top of the stack
// without removing it. peekN(0) is equivalent to peek().
func (s *stack) peekN(n int) *uint256.Int {
	return &s.data[s.len()-n-1]
}

func (s *stack) len() int {
	return s.stackPointer
}

// swap exchanges the top element with the n-th element from the top.
func (s *stack) swap(n int) {
	s.data[s.len()-n-1], s.data[s.len()-1] = s.data[s.len()-1], s.data[s.len()-n-1]
}

// dup duplicates the n-th element from the top and pushes it to the top of
// the stack. dup(0) duplicates the top element.
func (s *stack) dup(n int) {
	s.data[s.stackPointer] = s.data[s.stackPointer-n-1]
	s.stackPointer++
}

// Len is part of the evm.Stack view.
func (s *stack) Len() int {
	return s.len()
}

// Peek is part of the evm.Stack view.
func (s *stack) Peek(n int) (uint256.Int, error) {
	if n < 0 || n >= s.len() {
		return uint256.Int{}, evm.ErrStackUnderflow
	}
	return *s.peekN(n), nil
}

func (s *stack) String() string {
	b := strings.Builder{}
	for i := 0; i < s.len(); i++ {
		b.WriteString(fmt.Sprintf("    [%4d] 0x%064x\n", s.len()-i-1, s.peekN(i).Bytes32()))
	}
	return b.String()
}

// ------------------ Stack Pool ------------------

var stackPool = sync.Pool{
	New: func() interface{} {
		return &stack{}
	},
}

func newStack() *stack {
	return stackPool.Get().(*stack)
}

// returnStack returns the stack to the reuse pool. Any stack may only be
// returned once.
func returnStack(s *stack) {
	s.stackPointer = 0
	stackPool.Put(s)
}

// emptyStack is the stack view of terminated runtimes.
type emptyStack struct{}

func (emptyStack) Len() int {
	return 0
}

func (emptyStack) Peek(int) (uint256.Int, error) {
	return uint256.Int{}, evm.ErrStackUnderflow
}

// ------------------ Stack Boundary ------------------

// stackEffect describes the number of elements an instruction consumes and
// produces.
type stackEffect struct {
	pops, pushes int
}

var stackEffects = [256]stackEffect{}

func init() {
	for i := 0; i < 256; i++ {
		stackEffects[i] = getStackEffect(evm.OpCode(i))
	}
}

func getStackEffect(op evm.OpCode) stackEffect {
	if evm.PUSH1 <= op && op <= evm.PUSH32 {
		return stackEffect{0, 1}
	}
	if evm.DUP1 <= op && op <= evm.DUP16 {
		n := int(op-evm.DUP1) + 1
		return stackEffect{n, n + 1}
	}
	if evm.SWAP1 <= op && op <= evm.SWAP16 {
		n := int(op-evm.SWAP1) + 2
		return stackEffect{n, n}
	}
	if evm.LOG0 <= op && op <= evm.LOG4 {
		return stackEffect{int(op-evm.LOG0) + 2, 0}
	}

	switch op {
	case evm.STOP, evm.JUMPDEST, evm.INVALID:
		return stackEffect{0, 0}
	case evm.ADD, evm.SUB, evm.MUL, evm.DIV, evm.SDIV, evm.MOD, evm.SMOD,
		evm.EXP, evm.SIGNEXTEND, evm.SHA3, evm.LT, evm.GT, evm.SLT, evm.SGT,
		evm.EQ, evm.AND, evm.XOR, evm.OR, evm.BYTE, evm.SHL, evm.SHR, evm.SAR:
		return stackEffect{2, 1}
	case evm.ADDMOD, evm.MULMOD:
		return stackEffect{3, 1}
	case evm.ISZERO, evm.NOT, evm.BALANCE, evm.CALLDATALOAD, evm.EXTCODESIZE,
		evm.BLOCKHASH, evm.MLOAD, evm.SLOAD, evm.TLOAD, evm.EXTCODEHASH, evm.BLOBHASH:
		return stackEffect{1, 1}
	case evm.PUSH0, evm.MSIZE, evm.ADDRESS, evm.ORIGIN, evm.CALLER, evm.CALLVALUE,
		evm.CALLDATASIZE, evm.CODESIZE, evm.GASPRICE, evm.COINBASE, evm.TIMESTAMP,
		evm.NUMBER, evm.PREVRANDAO, evm.GASLIMIT, evm.PC, evm.GAS,
		evm.RETURNDATASIZE, evm.SELFBALANCE, evm.CHAINID, evm.BASEFEE, evm.BLOBBASEFEE:
		return stackEffect{0, 1}
	case evm.POP, evm.JUMP, evm.SELFDESTRUCT:
		return stackEffect{1, 0}
	case evm.MSTORE, evm.MSTORE8, evm.SSTORE, evm.TSTORE, evm.JUMPI, evm.RETURN, evm.REVERT:
		return stackEffect{2, 0}
	case evm.CALLDATACOPY, evm.CODECOPY, evm.RETURNDATACOPY, evm.MCOPY:
		return stackEffect{3, 0}
	case evm.EXTCODECOPY:
		return stackEffect{4, 0}
	case evm.CREATE:
		return stackEffect{3, 1}
	case evm.CREATE2:
		return stackEffect{4, 1}
	case evm.CALL, evm.CALLCODE:
		return stackEffect{7, 1}
	case evm.DELEGATECALL, evm.STATICCALL:
		return stackEffect{6, 1}
	}
	return stackEffect{0, 0}
}
