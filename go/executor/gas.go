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

const (
	CallNewAccountGas    evm.Gas = 25000 // Paid for CALL when the destination address didn't exist prior.
	CallValueTransferGas evm.Gas = 9000  // Paid for CALL when the value transfer is non-zero.
	CallStipend          evm.Gas = 2300  // Free gas given at beginning of call.

	ColdSloadCostEIP2929         evm.Gas = 2100 // Cost of cold SLOAD after EIP 2929
	ColdAccountAccessCostEIP2929 evm.Gas = 2600 // Cost of cold account access after EIP 2929
	WarmStorageReadCostEIP2929   evm.Gas = 100  // Cost of reading warm storage after EIP 2929

	// CreateBySelfdestructGas is used when the refunded account is one that does
	// not exist. This logic is similar to call.
	CreateBySelfdestructGas evm.Gas = 25000

	SelfdestructGasEIP150 evm.Gas = 5000  // Gas cost of SELFDESTRUCT post EIP-150
	SelfdestructRefundGas evm.Gas = 24000 // Refunded following a selfdestruct operation before London.

	SloadGasEIP2200                   evm.Gas = 800   // Cost of SLOAD after EIP 2200 (part of Istanbul)
	SstoreClearsScheduleRefundEIP2200 evm.Gas = 15000 // Once per SSTORE operation for clearing an originally existing storage slot
	// SstoreClearsScheduleRefundEIP3529 is SSTORE_RESET_GAS - COLD_SLOAD_COST + ACCESS_LIST_STORAGE_KEY_COST.
	SstoreClearsScheduleRefundEIP3529 evm.Gas = 4800
	SstoreResetGasEIP2200             evm.Gas = 5000  // Once per SSTORE operation from clean non-zero to something else
	SstoreSentryGasEIP2200            evm.Gas = 2300  // Minimum gas required to be present for an SSTORE call, not consumed
	SstoreSetGasEIP2200               evm.Gas = 20000 // Once per SSTORE operation from clean zero to non-zero

	CreateGas         evm.Gas = 32000 // Base cost of CREATE and CREATE2.
	InitCodeWordGas   evm.Gas = 2     // Per word of init code from Shanghai (EIP-3860).
	Keccak256WordGas  evm.Gas = 6     // Per word hashed by SHA3 and CREATE2.
	CopyGas           evm.Gas = 3     // Per word copied by *COPY instructions.
	ExpByteGas        evm.Gas = 50    // Per byte of the EXP exponent (EIP-160).
	LogTopicGas       evm.Gas = 375   // Per topic of a LOG instruction.
	LogDataGas        evm.Gas = 8     // Per byte of LOG data.
	MemoryGas         evm.Gas = 3     // Linear coefficient of the memory cost.
	QuadCoeffDiv      uint64  = 512   // Divisor of the quadratic memory cost.
	MaxInitCodeSize           = 2 * 24576
	maxMemoryExpansionSize    = 0x1FFFFFFFE0
)

var staticGasPrices = [256]evm.Gas{}
var staticGasPricesBerlin = [256]evm.Gas{}

func init() {
	for i := 0; i < 256; i++ {
		price := getStaticGasPriceInternal(evm.OpCode(i))
		staticGasPrices[i] = price
		staticGasPricesBerlin[i] = price
	}
	// Changed static gas prices with EIP2929. Cold access surcharges are
	// dynamic.
	staticGasPricesBerlin[evm.SLOAD] = 0
	staticGasPricesBerlin[evm.EXTCODECOPY] = 100
	staticGasPricesBerlin[evm.EXTCODESIZE] = 100
	staticGasPricesBerlin[evm.EXTCODEHASH] = 100
	staticGasPricesBerlin[evm.BALANCE] = 100
	staticGasPricesBerlin[evm.CALL] = 100
	staticGasPricesBerlin[evm.CALLCODE] = 100
	staticGasPricesBerlin[evm.STATICCALL] = 100
	staticGasPricesBerlin[evm.DELEGATECALL] = 100
}

func getStaticGasPrice(op evm.OpCode, revision evm.Revision) evm.Gas {
	if revision >= evm.R09_Berlin {
		return staticGasPricesBerlin[op]
	}
	return staticGasPrices[op]
}

func getStaticGasPriceInternal(op evm.OpCode) evm.Gas {
	if evm.PUSH1 <= op && op <= evm.PUSH32 {
		return 3
	}
	if evm.DUP1 <= op && op <= evm.DUP16 {
		return 3
	}
	if evm.SWAP1 <= op && op <= evm.SWAP16 {
		return 3
	}
	if evm.LT <= op && op <= evm.SAR {
		return 3
	}
	if evm.COINBASE <= op && op <= evm.CHAINID {
		return 2
	}
	if evm.LOG0 <= op && op <= evm.LOG4 {
		return 375
	}
	switch op {
	case evm.STOP, evm.RETURN, evm.REVERT, evm.INVALID:
		return 0
	case evm.ADD, evm.SUB:
		return 3
	case evm.MUL, evm.DIV, evm.SDIV, evm.MOD, evm.SMOD, evm.SIGNEXTEND:
		return 5
	case evm.ADDMOD, evm.MULMOD:
		return 8
	case evm.EXP:
		return 10
	case evm.SHA3:
		return 30
	case evm.ADDRESS, evm.ORIGIN, evm.CALLER, evm.CALLVALUE, evm.CALLDATASIZE,
		evm.CODESIZE, evm.GASPRICE, evm.RETURNDATASIZE, evm.BASEFEE, evm.POP,
		evm.PC, evm.MSIZE, evm.GAS, evm.PUSH0:
		return 2
	case evm.CALLDATALOAD, evm.CALLDATACOPY, evm.CODECOPY, evm.RETURNDATACOPY,
		evm.MLOAD, evm.MSTORE, evm.MSTORE8:
		return 3
	case evm.BALANCE, evm.EXTCODESIZE, evm.EXTCODECOPY, evm.EXTCODEHASH:
		return 700
	case evm.BLOCKHASH:
		return 20
	case evm.SELFBALANCE:
		return 5
	case evm.SLOAD:
		return SloadGasEIP2200
	case evm.SSTORE:
		return 0 // Costs are handled in sstoreCost
	case evm.JUMP:
		return 8
	case evm.JUMPI:
		return 10
	case evm.JUMPDEST:
		return 1
	case evm.CREATE, evm.CREATE2:
		return 0 // Charged by StackExecutor.Create
	case evm.CALL, evm.CALLCODE, evm.DELEGATECALL, evm.STATICCALL:
		return 700
	case evm.SELFDESTRUCT:
		return SelfdestructGasEIP150
	}
	return 0
}

// ------------------ Gasometer ------------------

// gasometer tracks the gas of a single frame. The gas left may exceed the
// initial limit when a sub-call returns its stipend.
type gasometer struct {
	left        evm.Gas
	refund      evm.Gas
	memoryWords uint64
}

func newGasometer(limit evm.Gas) gasometer {
	return gasometer{left: limit}
}

// consume charges the given amount. Failing charges exhaust all gas.
func (g *gasometer) consume(cost evm.Gas) error {
	if cost < 0 || g.left < cost {
		g.left = 0
		return evm.ErrOutOfGas
	}
	g.left -= cost
	return nil
}

// give credits gas returned by a sub-call.
func (g *gasometer) give(amount evm.Gas) {
	g.left += amount
}

// memoryExpansionCost returns the cost of growing the memory to cover
// end bytes and the resulting size in words.
func (g *gasometer) memoryExpansionCost(end uint64) (evm.Gas, uint64) {
	words := evm.SizeInWords(end)
	if words <= g.memoryWords {
		return 0, g.memoryWords
	}
	return memoryGasCost(words) - memoryGasCost(g.memoryWords), words
}

func memoryGasCost(words uint64) evm.Gas {
	return evm.Gas(words)*MemoryGas + evm.Gas(words*words/QuadCoeffDiv)
}

// memoryEnd computes the end of the memory window of the given size at the
// given offset. Empty windows require no memory.
func memoryEnd(offset, size *uint256.Int) (uint64, error) {
	if size.IsZero() {
		return 0, nil
	}
	if !offset.IsUint64() || !size.IsUint64() {
		return 0, evm.ErrOutOfGas
	}
	end := offset.Uint64() + size.Uint64()
	if end < offset.Uint64() || end > maxMemoryExpansionSize {
		return 0, evm.ErrOutOfGas
	}
	return end, nil
}

// wordCost charges the given price per started word of size bytes.
func wordCost(size *uint256.Int, price evm.Gas) (evm.Gas, error) {
	if !size.IsUint64() || size.Uint64() > maxMemoryExpansionSize {
		return 0, evm.ErrOutOfGas
	}
	return evm.Gas(evm.SizeInWords(size.Uint64())) * price, nil
}

// allButOne64th implements EIP-150: a sub-call may use at most all but one
// 64th of the remaining gas.
func allButOne64th(gas evm.Gas) evm.Gas {
	return gas - gas/64
}

// createIntrinsicGas is the cost of a creation before its init code runs.
func createIntrinsicGas(revision evm.Revision, scheme evm.CreateScheme, initCodeSize int) evm.Gas {
	words := evm.Gas(evm.SizeInWords(uint64(initCodeSize)))
	cost := CreateGas
	if revision >= evm.R12_Shanghai {
		cost += InitCodeWordGas * words
	}
	if scheme.Kind == evm.CreateSalted {
		cost += Keccak256WordGas * words
	}
	return cost
}
