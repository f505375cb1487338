// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package state

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/Fantom-foundation/cps/go/evm"
	xmaps "golang.org/x/exp/maps"
)

// ----------------------------------------------------------------------------
// WorldState
// ----------------------------------------------------------------------------

// WorldState is a plain snapshot of accounts. It is used to seed a State and
// to inspect its content after a transaction.
type WorldState map[evm.Address]Account

func (s WorldState) Equal(other WorldState) bool {
	return equalMapsIgnoringZero(s, other, func(a, b Account) bool {
		return a.Equal(&b)
	})
}

func (s WorldState) Clone() WorldState {
	if s == nil {
		return nil
	}
	res := make(WorldState, len(s))
	for k, v := range s {
		res[k] = v.Clone()
	}
	return res
}

func (s WorldState) Diff(other WorldState) []string {
	return diffMaps("", s, other, func(address evm.Address, a, b Account) []string {
		if a.Equal(&b) {
			return nil
		}
		return a.Diff(fmt.Sprintf("%v/", address), &b)
	})
}

// Addresses lists the accounts of the world state in ascending order.
func (s WorldState) Addresses() []evm.Address {
	res := xmaps.Keys(s)
	slices.SortFunc(res, func(a, b evm.Address) int {
		return bytes.Compare(a[:], b[:])
	})
	return res
}

// ----------------------------------------------------------------------------
// Account
// ----------------------------------------------------------------------------

// Account is a single entry of the world state. The zero account is
// considered non-existent.
type Account struct {
	Balance evm.Value
	Nonce   uint64
	Code    evm.Code
	Storage Storage
}

// IsEmpty reports whether the account has no balance, no nonce and no code.
func (a *Account) IsEmpty() bool {
	return a.Balance.IsZero() && a.Nonce == 0 && len(a.Code) == 0
}

func (a *Account) Equal(other *Account) bool {
	return a.Balance == other.Balance &&
		a.Nonce == other.Nonce &&
		bytes.Equal(a.Code, other.Code) &&
		a.Storage.Equal(other.Storage)
}

func (a *Account) Clone() Account {
	return Account{
		Balance: a.Balance,
		Nonce:   a.Nonce,
		Code:    bytes.Clone(a.Code),
		Storage: a.Storage.Clone(),
	}
}

func (a *Account) Diff(prefix string, other *Account) []string {
	var res []string
	if a.Balance != other.Balance {
		res = append(res, fmt.Sprintf("different balance: %v != %v", a.Balance, other.Balance))
	}
	if a.Nonce != other.Nonce {
		res = append(res, fmt.Sprintf("different nonce: %v != %v", a.Nonce, other.Nonce))
	}
	if !bytes.Equal(a.Code, other.Code) {
		res = append(res, fmt.Sprintf("different code: 0x%x != 0x%x", a.Code, other.Code))
	}
	res = append(res, a.Storage.Diff("Storage/", other.Storage)...)
	for i, diff := range res {
		res[i] = prefix + diff
	}
	return res
}

// ----------------------------------------------------------------------------
// Storage
// ----------------------------------------------------------------------------

// Storage holds the slots of an account. Zero-valued entries are ignored.
type Storage map[evm.Key]evm.Word

func (s Storage) Equal(other Storage) bool {
	return equalMapsIgnoringZero(s, other, func(a, b evm.Word) bool {
		return a == b
	})
}

func (s Storage) Clone() Storage {
	return maps.Clone(s)
}

func (s Storage) Diff(prefix string, other Storage) []string {
	return diffMaps(prefix, s, other, func(k evm.Key, a, b evm.Word) []string {
		if a == b {
			return nil
		}
		return []string{
			fmt.Sprintf("different value for key %v: %v != %v", k, a, b),
		}
	})
}

// Keys lists the non-zero slots of the storage in ascending order.
func (s Storage) Keys() []evm.Key {
	res := make([]evm.Key, 0, len(s))
	for k, v := range s {
		if v != (evm.Word{}) {
			res = append(res, k)
		}
	}
	slices.SortFunc(res, func(a, b evm.Key) int {
		return bytes.Compare(a[:], b[:])
	})
	return res
}

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

func equalMapsIgnoringZero[K comparable, V any](a, b map[K]V, equal func(V, V) bool) bool {
	for k, v := range a {
		if !equal(v, b[k]) {
			return false
		}
	}
	for k, v := range b {
		if !equal(v, a[k]) {
			return false
		}
	}
	return true
}

func diffMaps[K comparable, V any](prefix string, a, b map[K]V, diff func(K, V, V) []string) []string {
	var diffs []string
	for k, v := range a {
		diffs = append(diffs, diff(k, v, b[k])...)
	}
	for k, v := range b {
		if _, overlap := a[k]; !overlap {
			diffs = append(diffs, diff(k, a[k], v)...)
		}
	}
	for i, diff := range diffs {
		diffs[i] = prefix + diff
	}
	return diffs
}
