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
	"fmt"
	"testing"

	"github.com/Fantom-foundation/cps/go/evm"
	"github.com/Fantom-foundation/cps/go/state"
	"github.com/holiman/uint256"
)

// testStack is a stack view listing elements from the top.
type testStack []uint256.Int

func stackOf(values ...*uint256.Int) testStack {
	res := make(testStack, len(values))
	for i, value := range values {
		res[i] = *value
	}
	return res
}

func (s testStack) Len() int {
	return len(s)
}

func (s testStack) Peek(n int) (uint256.Int, error) {
	if n < 0 || n >= len(s) {
		return uint256.Int{}, evm.ErrStackUnderflow
	}
	return s[n], nil
}

func u(value uint64) *uint256.Int {
	return uint256.NewInt(value)
}

func addressOperand(addr evm.Address) *uint256.Int {
	return new(uint256.Int).SetBytes20(addr[:])
}

var self = evm.Address{0x5E}

func TestPreValidate_ChargesInstructionCosts(t *testing.T) {
	tests := map[string]struct {
		revision evm.Revision
		op       evm.OpCode
		stack    testStack
		cost     evm.Gas
	}{
		"add":                   {evm.R12_Shanghai, evm.ADD, stackOf(u(1), u(2)), 3},
		"push0":                 {evm.R12_Shanghai, evm.PUSH0, nil, 2},
		"jumpdest":              {evm.R12_Shanghai, evm.JUMPDEST, nil, 1},
		"stop":                  {evm.R12_Shanghai, evm.STOP, nil, 0},
		"mstore":                {evm.R12_Shanghai, evm.MSTORE, stackOf(u(0), u(1)), 3 + 3},
		"mstore8 second word":   {evm.R12_Shanghai, evm.MSTORE8, stackOf(u(32), u(1)), 3 + 6},
		"mload empty":           {evm.R12_Shanghai, evm.MLOAD, stackOf(u(0)), 3 + 3},
		"sha3 one word":         {evm.R12_Shanghai, evm.SHA3, stackOf(u(0), u(32)), 30 + 6 + 3},
		"sha3 empty":            {evm.R12_Shanghai, evm.SHA3, stackOf(u(1000), u(0)), 30},
		"calldatacopy":          {evm.R12_Shanghai, evm.CALLDATACOPY, stackOf(u(0), u(0), u(33)), 3 + 6 + 6},
		"exp small":             {evm.R12_Shanghai, evm.EXP, stackOf(u(2), u(0xFF)), 10 + 50},
		"exp two bytes":         {evm.R12_Shanghai, evm.EXP, stackOf(u(2), u(0x100)), 10 + 100},
		"exp zero":              {evm.R12_Shanghai, evm.EXP, stackOf(u(2), u(0)), 10},
		"log0":                  {evm.R12_Shanghai, evm.LOG0, stackOf(u(0), u(0)), 375},
		"log2 with data":        {evm.R12_Shanghai, evm.LOG2, stackOf(u(0), u(10), u(1), u(2)), 375 + 750 + 80 + 3},
		"balance istanbul":      {evm.R07_Istanbul, evm.BALANCE, stackOf(addressOperand(bob)), 700},
		"balance cold":          {evm.R12_Shanghai, evm.BALANCE, stackOf(addressOperand(bob)), 2600},
		"extcodecopy cold":      {evm.R12_Shanghai, evm.EXTCODECOPY, stackOf(addressOperand(bob), u(0), u(0), u(1)), 2600 + 3 + 3},
		"sload istanbul":        {evm.R07_Istanbul, evm.SLOAD, stackOf(u(1)), 800},
		"sload cold":            {evm.R09_Berlin, evm.SLOAD, stackOf(u(1)), 2100},
		"sstore set istanbul":   {evm.R07_Istanbul, evm.SSTORE, stackOf(u(1), u(1)), 20000},
		"sstore set cold":       {evm.R10_London, evm.SSTORE, stackOf(u(1), u(1)), 2100 + 20000},
		"sstore noop cold":      {evm.R10_London, evm.SSTORE, stackOf(u(1), u(0)), 2100 + 100},
		"call cold":             {evm.R12_Shanghai, evm.CALL, stackOf(u(0), addressOperand(bob), u(0), u(0), u(0), u(0), u(0)), 2600},
		"call value new":        {evm.R12_Shanghai, evm.CALL, stackOf(u(0), addressOperand(bob), u(1), u(0), u(0), u(0), u(0)), 2600 + 9000 + 25000},
		"call value existing":   {evm.R12_Shanghai, evm.CALL, stackOf(u(0), addressOperand(alice), u(1), u(0), u(0), u(0), u(0)), 2600 + 9000},
		"callcode value":        {evm.R12_Shanghai, evm.CALLCODE, stackOf(u(0), addressOperand(bob), u(1), u(0), u(0), u(0), u(0)), 2600 + 9000},
		"call memory":           {evm.R12_Shanghai, evm.CALL, stackOf(u(0), addressOperand(bob), u(0), u(0), u(32), u(32), u(32)), 2600 + 6},
		"staticcall istanbul":   {evm.R07_Istanbul, evm.STATICCALL, stackOf(u(0), addressOperand(bob), u(0), u(0), u(0), u(0)), 700},
		"delegatecall empty":    {evm.R12_Shanghai, evm.DELEGATECALL, stackOf(u(0), addressOperand(bob), u(64), u(0), u(0), u(0)), 2600},
		"create":                {evm.R12_Shanghai, evm.CREATE, stackOf(u(0), u(0), u(32)), 3},
		"selfdestruct warm":     {evm.R07_Istanbul, evm.SELFDESTRUCT, stackOf(addressOperand(alice)), 5000},
		"selfdestruct cold":     {evm.R12_Shanghai, evm.SELFDESTRUCT, stackOf(addressOperand(alice)), 5000 + 2600},
		"selfdestruct new cold": {evm.R12_Shanghai, evm.SELFDESTRUCT, stackOf(addressOperand(bob)), 5000 + 2600 + 25000},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			host := newTestState(test.revision, state.WorldState{
				self:  {Balance: evm.NewValue(1)},
				alice: {Balance: evm.NewValue(1)},
			})
			const gas = 100_000
			executor := newTestExecutor(t, host, Config{Revision: test.revision, Gas: gas})
			if err := executor.PreValidate(evm.Context{Address: self}, test.op, test.stack); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want, got := test.cost, gas-executor.Gas(); want != got {
				t.Errorf("unexpected cost, wanted %d, got %d", want, got)
			}
		})
	}
}

func TestPreValidate_WarmAccessIsCheaper(t *testing.T) {
	host := newTestState(evm.R12_Shanghai, nil)
	executor := newTestExecutor(t, host, Config{Revision: evm.R12_Shanghai, Gas: 100_000})

	for i, want := range []evm.Gas{2600, 100, 100} {
		before := executor.Gas()
		if err := executor.PreValidate(evm.Context{Address: self}, evm.BALANCE, stackOf(addressOperand(bob))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := before - executor.Gas(); want != got {
			t.Errorf("access %d: wanted cost %d, got %d", i, want, got)
		}
	}
	for i, want := range []evm.Gas{2100, 100} {
		before := executor.Gas()
		if err := executor.PreValidate(evm.Context{Address: self}, evm.SLOAD, stackOf(u(7))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := before - executor.Gas(); want != got {
			t.Errorf("slot access %d: wanted cost %d, got %d", i, want, got)
		}
	}
}

func TestPreValidate_MemoryIsChargedIncrementally(t *testing.T) {
	executor := newTestExecutor(t, newTestState(evm.R12_Shanghai, nil), Config{Revision: evm.R12_Shanghai, Gas: 100_000})

	costs := []struct {
		offset uint64
		want   evm.Gas
	}{
		{0, 3 + 3},
		{0, 3},
		{16, 3 + 3},
		{1024 - 32, 3 + memoryGasCost(32) - memoryGasCost(2)},
	}
	for i, test := range costs {
		before := executor.Gas()
		if err := executor.PreValidate(evm.Context{}, evm.MSTORE, stackOf(u(test.offset), u(0))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := before - executor.Gas(); test.want != got {
			t.Errorf("store %d: wanted cost %d, got %d", i, test.want, got)
		}
	}
}

func TestPreValidate_OutOfGas(t *testing.T) {
	tests := map[string]struct {
		op    evm.OpCode
		stack testStack
		gas   evm.Gas
	}{
		"static cost":     {evm.ADD, stackOf(u(1), u(2)), 2},
		"huge memory":     {evm.MSTORE, stackOf(u(maxMemoryExpansionSize), u(0)), 1_000_000},
		"offset overflow": {evm.MLOAD, stackOf(new(uint256.Int).Lsh(u(1), 64)), 1_000_000},
		"sha3 size":       {evm.SHA3, stackOf(u(0), new(uint256.Int).Lsh(u(1), 64)), 1_000_000},
		"sstore sentry":   {evm.SSTORE, stackOf(u(1), u(1)), SstoreSentryGasEIP2200},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			executor := newTestExecutor(t, newTestState(evm.R12_Shanghai, nil), Config{Revision: evm.R12_Shanghai, Gas: test.gas})
			if err := executor.PreValidate(evm.Context{}, test.op, test.stack); err != evm.ErrOutOfGas {
				t.Errorf("unexpected error, wanted %v, got %v", evm.ErrOutOfGas, err)
			}
		})
	}
}

func TestPreValidate_StaticFramesRejectStateModifications(t *testing.T) {
	tests := map[string]struct {
		op        evm.OpCode
		stack     testStack
		protected bool
	}{
		"sstore":          {evm.SSTORE, stackOf(u(1), u(1)), true},
		"log1":            {evm.LOG1, stackOf(u(0), u(0), u(1)), true},
		"create":          {evm.CREATE, stackOf(u(0), u(0), u(0)), true},
		"create2":         {evm.CREATE2, stackOf(u(0), u(0), u(0), u(0)), true},
		"selfdestruct":    {evm.SELFDESTRUCT, stackOf(u(0)), true},
		"call with value": {evm.CALL, stackOf(u(0), u(0), u(1), u(0), u(0), u(0), u(0)), true},
		"call":            {evm.CALL, stackOf(u(0), u(0), u(0), u(0), u(0), u(0), u(0)), false},
		"callcode value":  {evm.CALLCODE, stackOf(u(0), u(0), u(1), u(0), u(0), u(0), u(0)), false},
		"sload":           {evm.SLOAD, stackOf(u(1)), false},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			executor := newTestExecutor(t, newTestState(evm.R12_Shanghai, nil), Config{Revision: evm.R12_Shanghai, Static: true, Gas: 100_000})
			err := executor.PreValidate(evm.Context{Address: self}, test.op, test.stack)
			if test.protected && err != evm.ErrWriteProtection {
				t.Errorf("expected write protection, got %v", err)
			}
			if !test.protected && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestPreValidate_SstoreRefunds(t *testing.T) {
	key := evm.Key{31: 1}
	tests := map[string]struct {
		revision evm.Revision
		original uint64
		current  uint64
		value    uint64
		cost     evm.Gas
		refund   evm.Gas
	}{
		"delete istanbul":          {evm.R07_Istanbul, 1, 1, 0, 5000, 15000},
		"delete london":            {evm.R10_London, 1, 1, 0, 2100 + 2900, 4800},
		"modify berlin":            {evm.R09_Berlin, 1, 1, 2, 2100 + 2900, 0},
		"recreate london":          {evm.R10_London, 1, 0, 2, 2100 + 100, -4800},
		"reset added london":       {evm.R10_London, 0, 1, 0, 2100 + 100, 20000 - 100},
		"reset modified london":    {evm.R10_London, 1, 2, 1, 2100 + 100, 2900 - 100},
		"reset modified istanbul":  {evm.R07_Istanbul, 1, 2, 1, 800, 5000 - 800},
		"delete modified istanbul": {evm.R07_Istanbul, 1, 2, 0, 800, 15000},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			host := newTestState(test.revision, state.WorldState{
				self: {Balance: evm.NewValue(1), Storage: state.Storage{key: evm.Word(evm.NewValue(test.original))}},
			})
			host.SetStorage(self, key, evm.Word(evm.NewValue(test.current)))

			const gas = 100_000
			executor := newTestExecutor(t, host, Config{Revision: test.revision, Gas: gas})
			stack := stackOf(u(1), u(test.value))
			if err := executor.PreValidate(evm.Context{Address: self}, evm.SSTORE, stack); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want, got := test.cost, gas-executor.Gas(); want != got {
				t.Errorf("unexpected cost, wanted %d, got %d", want, got)
			}
			if want, got := test.refund, executor.Refund(); want != got {
				t.Errorf("unexpected refund, wanted %d, got %d", want, got)
			}
		})
	}
}

func TestPreValidate_SstoreCostsFollowStorageStatus(t *testing.T) {
	type pricing struct {
		cost   evm.Gas
		refund evm.Gas
	}
	key := evm.Key{31: 1}
	// Slot values as original, current and new value, priced for a warm
	// slot in Istanbul, Berlin and London.
	tests := map[evm.StorageStatus]struct {
		original, current, value uint64
		prices                   map[evm.Revision]pricing
	}{
		evm.StorageAssigned: {1, 1, 1, map[evm.Revision]pricing{
			evm.R07_Istanbul: {800, 0}, evm.R09_Berlin: {100, 0}, evm.R10_London: {100, 0},
		}},
		evm.StorageAdded: {0, 0, 3, map[evm.Revision]pricing{
			evm.R07_Istanbul: {20000, 0}, evm.R09_Berlin: {20000, 0}, evm.R10_London: {20000, 0},
		}},
		evm.StorageAddedDeleted: {0, 2, 0, map[evm.Revision]pricing{
			evm.R07_Istanbul: {800, 19200}, evm.R09_Berlin: {100, 19900}, evm.R10_London: {100, 19900},
		}},
		evm.StorageDeletedRestored: {1, 0, 1, map[evm.Revision]pricing{
			evm.R07_Istanbul: {800, -10800}, evm.R09_Berlin: {100, -12200}, evm.R10_London: {100, -2000},
		}},
		evm.StorageDeletedAdded: {1, 0, 3, map[evm.Revision]pricing{
			evm.R07_Istanbul: {800, -15000}, evm.R09_Berlin: {100, -15000}, evm.R10_London: {100, -4800},
		}},
		evm.StorageDeleted: {1, 1, 0, map[evm.Revision]pricing{
			evm.R07_Istanbul: {5000, 15000}, evm.R09_Berlin: {2900, 15000}, evm.R10_London: {2900, 4800},
		}},
		evm.StorageModified: {1, 1, 3, map[evm.Revision]pricing{
			evm.R07_Istanbul: {5000, 0}, evm.R09_Berlin: {2900, 0}, evm.R10_London: {2900, 0},
		}},
		evm.StorageModifiedDeleted: {1, 2, 0, map[evm.Revision]pricing{
			evm.R07_Istanbul: {800, 15000}, evm.R09_Berlin: {100, 15000}, evm.R10_London: {100, 4800},
		}},
		evm.StorageModifiedRestored: {1, 2, 1, map[evm.Revision]pricing{
			evm.R07_Istanbul: {800, 4200}, evm.R09_Berlin: {100, 2800}, evm.R10_London: {100, 2800},
		}},
	}
	for status, test := range tests {
		original := evm.Word(evm.NewValue(test.original))
		current := evm.Word(evm.NewValue(test.current))
		value := evm.Word(evm.NewValue(test.value))
		if want, got := status, evm.GetStorageStatus(original, current, value); want != got {
			t.Fatalf("unexpected status, wanted %v, got %v", want, got)
		}
		for revision, price := range test.prices {
			t.Run(fmt.Sprintf("%v/%v", status, revision), func(t *testing.T) {
				host := newTestState(revision, state.WorldState{
					self: {Storage: state.Storage{key: original}},
				})
				host.SetStorage(self, key, current)
				host.AccessStorage(self, key)

				const gas = 100_000
				executor := newTestExecutor(t, host, Config{Revision: revision, Gas: gas})
				stack := stackOf(u(1), u(test.value))
				if err := executor.PreValidate(evm.Context{Address: self}, evm.SSTORE, stack); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if want, got := price.cost, gas-executor.Gas(); want != got {
					t.Errorf("unexpected cost, wanted %d, got %d", want, got)
				}
				if want, got := price.refund, executor.Refund(); want != got {
					t.Errorf("unexpected refund, wanted %d, got %d", want, got)
				}
			})
		}
	}
}

func TestPreValidate_SelfdestructRefundBeforeLondon(t *testing.T) {
	tests := map[string]struct {
		revision evm.Revision
		refund   evm.Gas
	}{
		"istanbul": {evm.R07_Istanbul, SelfdestructRefundGas},
		"berlin":   {evm.R09_Berlin, SelfdestructRefundGas},
		"london":   {evm.R10_London, 0},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			executor := newTestExecutor(t, newTestState(test.revision, nil), Config{Revision: test.revision, Gas: 100_000})
			if err := executor.PreValidate(evm.Context{Address: self}, evm.SELFDESTRUCT, stackOf(addressOperand(alice))); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want, got := test.refund, executor.Refund(); want != got {
				t.Errorf("unexpected refund, wanted %d, got %d", want, got)
			}
		})
	}
}

func TestPreValidate_InitCodeSizeIsLimitedFromShanghai(t *testing.T) {
	stack := stackOf(u(0), u(0), u(MaxInitCodeSize+1))
	london := newTestExecutor(t, newTestState(evm.R10_London, nil), Config{Revision: evm.R10_London, Gas: 1_000_000})
	if err := london.PreValidate(evm.Context{}, evm.CREATE, stack); err != nil {
		t.Errorf("unexpected error before Shanghai: %v", err)
	}
	shanghai := newTestExecutor(t, newTestState(evm.R12_Shanghai, nil), Config{Revision: evm.R12_Shanghai, Gas: 1_000_000})
	if err := shanghai.PreValidate(evm.Context{}, evm.CREATE, stack); err != evm.ErrInitCodeTooLarge {
		t.Errorf("unexpected error from Shanghai: %v", err)
	}
}

func TestMemoryGasCost(t *testing.T) {
	tests := map[uint64]evm.Gas{
		0:    0,
		1:    3,
		32:   96 + 2,
		1024: 3072 + 2048,
	}
	for words, want := range tests {
		if got := memoryGasCost(words); want != got {
			t.Errorf("cost of %d words: wanted %d, got %d", words, want, got)
		}
	}
}

func TestAllButOne64th(t *testing.T) {
	tests := map[evm.Gas]evm.Gas{
		0:    0,
		63:   63,
		64:   63,
		6400: 6300,
	}
	for gas, want := range tests {
		if got := allButOne64th(gas); want != got {
			t.Errorf("allButOne64th(%d): wanted %d, got %d", gas, want, got)
		}
	}
}
