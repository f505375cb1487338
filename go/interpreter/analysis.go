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
	"sync"

	"github.com/Fantom-foundation/cps/go/evm"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/sha3"
)

// destinations is a bitmap of the valid jump destinations of a code.
type destinations []uint64

func (d destinations) has(pos uint64) bool {
	idx := pos / 64
	return idx < uint64(len(d)) && d[idx]&(1<<(pos%64)) != 0
}

// analyzeJumpDestinations marks every JUMPDEST that is not part of the
// immediate data of a PUSH instruction.
func analyzeJumpDestinations(code evm.Code) destinations {
	res := make(destinations, (len(code)+63)/64)
	for i := 0; i < len(code); {
		op := evm.OpCode(code[i])
		if op == evm.JUMPDEST {
			res[i/64] |= 1 << (uint(i) % 64)
		}
		i += op.Width()
	}
	return res
}

// destinationCache is shared among all runtimes and safe for concurrent use.
var destinationCache = newDestinationCache(1 << 12)

func newDestinationCache(capacity int) *lru.Cache[evm.Hash, destinations] {
	cache, _ := lru.New[evm.Hash, destinations](capacity)
	return cache
}

// getJumpDestinations fetches the analysis of the code with the given hash
// from the cache or computes it.
func getJumpDestinations(hash evm.Hash, code evm.Code) destinations {
	if res, found := destinationCache.Get(hash); found {
		return res
	}
	res := analyzeJumpDestinations(code)
	destinationCache.Add(hash, res)
	return res
}

// ------------------ Keccak ------------------

var keccakHasherPool = sync.Pool{New: func() any { return sha3.NewLegacyKeccak256() }}

type keccakHasher interface {
	Reset()
	Write(in []byte) (int, error)
	Read(out []byte) (int, error)
}

func keccak256(data []byte) evm.Hash {
	hasher := keccakHasherPool.Get().(keccakHasher)
	hasher.Reset()
	hasher.Write(data)
	var res evm.Hash
	hasher.Read(res[:])
	keccakHasherPool.Put(hasher)
	return res
}
