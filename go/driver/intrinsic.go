// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package driver

import (
	"github.com/Fantom-foundation/cps/go/evm"
	"github.com/Fantom-foundation/cps/go/executor"
	"github.com/ethereum/go-ethereum/params"
)

const (
	TxGas                     = evm.Gas(params.TxGas)
	TxGasContractCreation     = evm.Gas(params.TxGasContractCreation)
	TxDataNonZeroGasEIP2028   = evm.Gas(params.TxDataNonZeroGasEIP2028)
	TxDataZeroGasEIP2028      = evm.Gas(params.TxDataZeroGas)
	TxAccessListAddressGas    = evm.Gas(params.TxAccessListAddressGas)
	TxAccessListStorageKeyGas = evm.Gas(params.TxAccessListStorageKeyGas)
)

// IntrinsicGas is the gas charged for a message before any code is run.
func IntrinsicGas(message Message, revision evm.Revision) evm.Gas {
	var gas evm.Gas
	if message.Recipient == nil {
		gas = TxGasContractCreation
	} else {
		gas = TxGas
	}

	// An overflow would require an input of more than 10^17 bytes.
	if len(message.Input) > 0 {
		nonZeroBytes := evm.Gas(0)
		for _, inputByte := range message.Input {
			if inputByte != 0 {
				nonZeroBytes++
			}
		}
		zeroBytes := evm.Gas(len(message.Input)) - nonZeroBytes
		gas += zeroBytes * TxDataZeroGasEIP2028
		gas += nonZeroBytes * TxDataNonZeroGasEIP2028
	}

	if message.Recipient == nil && revision >= evm.R12_Shanghai {
		gas += evm.Gas(evm.SizeInWords(uint64(len(message.Input)))) * executor.InitCodeWordGas
	}

	gas += evm.Gas(len(message.AccessList)) * TxAccessListAddressGas
	for _, tuple := range message.AccessList {
		gas += evm.Gas(len(tuple.Keys)) * TxAccessListStorageKeyGas
	}
	return gas
}
