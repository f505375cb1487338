// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.
package evm

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func TestCreateScheme_LegacyAddressDependsOnNonce(t *testing.T) {
	caller := Address{1, 2, 3}
	scheme := LegacyScheme(caller)
	for nonce := uint64(0); nonce < 4; nonce++ {
		want := Address(crypto.CreateAddress(common.Address(caller), nonce))
		if got := scheme.Derive(nonce); want != got {
			t.Errorf("unexpected address for nonce %d, wanted %v, got %v", nonce, want, got)
		}
	}
	if scheme.Derive(0) == scheme.Derive(1) {
		t.Errorf("different nonces must lead to different addresses")
	}
}

func TestCreateScheme_SaltedAddressMatchesKnownVector(t *testing.T) {
	// First example of EIP-1014.
	scheme := SaltedScheme(Address{}, Keccak256([]byte{0}), Hash{})
	want := Address(common.HexToAddress("0x4D1A2e2bB4F88F0250f26Ffff098B0b30B26BF38"))
	if got := scheme.Derive(12); want != got {
		t.Errorf("unexpected address, wanted %v, got %v", want, got)
	}
}

func TestCreateScheme_FixedAddressIsReturnedAsIs(t *testing.T) {
	addr := Address{0xAB, 0xCD}
	if got := FixedScheme(addr).Derive(7); got != addr {
		t.Errorf("unexpected address, wanted %v, got %v", addr, got)
	}
}
