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
	"bytes"
	"slices"

	"github.com/Fantom-foundation/cps/go/evm"
	"github.com/ethereum/go-ethereum/common"
	geth "github.com/ethereum/go-ethereum/core/vm"
	"golang.org/x/exp/maps"
)

// Precompile is a contract implemented natively. Calls to precompiles
// complete without suspending the caller.
type Precompile interface {
	RequiredGas(input []byte) uint64
	Run(input []byte) ([]byte, error)
}

// PrecompileSet is an immutable mapping of addresses to precompiles.
type PrecompileSet struct {
	contracts map[evm.Address]Precompile
}

// NewPrecompileSet creates a set holding a copy of the given mapping.
func NewPrecompileSet(contracts map[evm.Address]Precompile) PrecompileSet {
	res := make(map[evm.Address]Precompile, len(contracts))
	for address, contract := range contracts {
		res[address] = contract
	}
	return PrecompileSet{contracts: res}
}

// PrecompilesFor returns the precompiles defined by go-ethereum for the
// given revision.
func PrecompilesFor(revision evm.Revision) PrecompileSet {
	switch revision {
	case evm.R13_Cancun:
		return fromGeth(geth.PrecompiledContractsCancun)
	case evm.R12_Shanghai, evm.R11_Paris, evm.R10_London, evm.R09_Berlin:
		return fromGeth(geth.PrecompiledContractsBerlin)
	}
	return fromGeth(geth.PrecompiledContractsIstanbul)
}

func fromGeth[M ~map[common.Address]geth.PrecompiledContract](precompiles M) PrecompileSet {
	res := make(map[evm.Address]Precompile, len(precompiles))
	for address, contract := range precompiles {
		res[evm.Address(address)] = contract
	}
	return PrecompileSet{contracts: res}
}

func (s PrecompileSet) Get(address evm.Address) (Precompile, bool) {
	contract, found := s.contracts[address]
	return contract, found
}

// Addresses lists the addresses of all precompiles in ascending order.
func (s PrecompileSet) Addresses() []evm.Address {
	res := maps.Keys(s.contracts)
	slices.SortFunc(res, func(a, b evm.Address) int {
		return bytes.Compare(a[:], b[:])
	})
	return res
}
