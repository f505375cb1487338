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
	"errors"
	"testing"

	"github.com/Fantom-foundation/cps/go/evm"
	"github.com/Fantom-foundation/cps/go/state"
	"go.uber.org/mock/gomock"
)

var (
	alice = evm.Address{0xA1}
	bob   = evm.Address{0xB0}
)

func newTestExecutor(t *testing.T, host evm.Host, config Config) *StackExecutor {
	t.Helper()
	executor, err := NewStackExecutor(host, config, PrecompilesFor(config.Revision))
	if err != nil {
		t.Fatalf("failed to create executor: %v", err)
	}
	return executor
}

func newTestState(revision evm.Revision, accounts state.WorldState) *state.State {
	return state.New(accounts, evm.BlockParameters{Revision: revision, BlockNumber: 100}, evm.TransactionParameters{})
}

func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		config Config
		valid  bool
	}{
		"istanbul":      {Config{Revision: evm.R07_Istanbul, Gas: 100}, true},
		"shanghai":      {Config{Revision: evm.R12_Shanghai}, true},
		"cancun":        {Config{Revision: evm.R13_Cancun}, false},
		"unknown":       {Config{Revision: evm.Revision(-1)}, false},
		"max depth":     {Config{Depth: MaxRecursiveDepth}, true},
		"too deep":      {Config{Depth: MaxRecursiveDepth + 1}, false},
		"negative gas":  {Config{Gas: -1}, false},
		"static frames": {Config{Static: true}, true},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := test.config.Validate()
			if test.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !test.valid && err == nil {
				t.Errorf("expected config to be rejected")
			}
		})
	}
}

func TestStackExecutor_UnsupportedRevisionIsRejected(t *testing.T) {
	_, err := NewStackExecutor(nil, Config{Revision: evm.R13_Cancun}, PrecompileSet{})
	var target *evm.ErrUnsupportedRevision
	if !errors.As(err, &target) {
		t.Fatalf("expected unsupported revision error, got %v", err)
	}
}

func TestStackExecutor_QueriesAreForwardedToHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := evm.NewMockHost(ctrl)

	block := evm.BlockParameters{
		ChainID:     evm.Word{31: 250},
		BlockNumber: 12,
		Timestamp:   34,
		Coinbase:    evm.Address{0xC0},
		GasLimit:    56,
		PrevRandao:  evm.Hash{7},
		BaseFee:     evm.NewValue(8),
	}
	transaction := evm.TransactionParameters{Origin: alice, GasPrice: evm.NewValue(9)}

	host.EXPECT().GetBalance(bob).Return(evm.NewValue(1))
	host.EXPECT().GetCode(bob).Return(evm.Code{1, 2})
	host.EXPECT().GetCodeHash(bob).Return(evm.Hash{3})
	host.EXPECT().GetCodeSize(bob).Return(2)
	host.EXPECT().GetStorage(bob, evm.Key{1}).Return(evm.Word{4})
	host.EXPECT().GetCommittedStorage(bob, evm.Key{1}).Return(evm.Word{5})
	host.EXPECT().AccountExists(bob).Return(true)
	host.EXPECT().HasSelfDestructed(bob).Return(false)
	host.EXPECT().GetBlockHash(uint64(11)).Return(evm.Hash{6})
	host.EXPECT().BlockParameters().Return(block).AnyTimes()
	host.EXPECT().TransactionParameters().Return(transaction).AnyTimes()

	executor := newTestExecutor(t, host, Config{Revision: evm.R12_Shanghai, Gas: 1000})

	if want, got := evm.NewValue(1), executor.Balance(bob); want != got {
		t.Errorf("unexpected balance, wanted %v, got %v", want, got)
	}
	if want, got := (evm.Code{1, 2}), executor.Code(bob); !bytes.Equal(want, got) {
		t.Errorf("unexpected code, wanted %x, got %x", want, got)
	}
	if want, got := (evm.Hash{3}), executor.CodeHash(bob); want != got {
		t.Errorf("unexpected code hash, wanted %v, got %v", want, got)
	}
	if want, got := 2, executor.CodeSize(bob); want != got {
		t.Errorf("unexpected code size, wanted %d, got %d", want, got)
	}
	if want, got := (evm.Word{4}), executor.Storage(bob, evm.Key{1}); want != got {
		t.Errorf("unexpected storage, wanted %v, got %v", want, got)
	}
	if want, got := (evm.Word{5}), executor.OriginalStorage(bob, evm.Key{1}); want != got {
		t.Errorf("unexpected original storage, wanted %v, got %v", want, got)
	}
	if !executor.Exists(bob) || executor.Deleted(bob) {
		t.Errorf("unexpected existence flags")
	}
	if want, got := (evm.Hash{6}), executor.BlockHash(11); want != got {
		t.Errorf("unexpected block hash, wanted %v, got %v", want, got)
	}
	if want, got := evm.Gas(1000), executor.GasLeft(); want != got {
		t.Errorf("unexpected gas left, wanted %d, got %d", want, got)
	}
	if executor.GasPrice() != transaction.GasPrice || executor.Origin() != transaction.Origin {
		t.Errorf("unexpected transaction parameters")
	}
	if executor.BlockNumber() != 12 || executor.BlockTimestamp() != 34 ||
		executor.BlockCoinbase() != block.Coinbase || executor.BlockGasLimit() != 56 ||
		executor.BlockDifficulty() != evm.Word(block.PrevRandao) ||
		executor.BlockBaseFee() != block.BaseFee || executor.ChainID() != block.ChainID {
		t.Errorf("unexpected block parameters")
	}
}

func TestStackExecutor_IsColdWarmsTarget(t *testing.T) {
	executor := newTestExecutor(t, newTestState(evm.R12_Shanghai, nil), Config{Revision: evm.R12_Shanghai})
	key := evm.Key{1}

	for i, want := range []bool{true, false, false} {
		if got := executor.IsCold(bob, nil); want != got {
			t.Errorf("account query %d: wanted cold=%t, got %t", i, want, got)
		}
	}
	for i, want := range []bool{true, false} {
		if got := executor.IsCold(bob, &key); want != got {
			t.Errorf("slot query %d: wanted cold=%t, got %t", i, want, got)
		}
	}
}

func TestStackExecutor_StaticFramesRejectMutations(t *testing.T) {
	host := newTestState(evm.R12_Shanghai, state.WorldState{alice: {Balance: evm.NewValue(10)}})
	executor := newTestExecutor(t, host, Config{Revision: evm.R12_Shanghai, Static: true, Gas: 100000})

	if err := executor.SetStorage(alice, evm.Key{1}, evm.Word{1}); err != evm.ErrWriteProtection {
		t.Errorf("unexpected storage error: %v", err)
	}
	if err := executor.Log(alice, nil, nil); err != evm.ErrWriteProtection {
		t.Errorf("unexpected log error: %v", err)
	}
	if err := executor.MarkDelete(alice, bob); err != evm.ErrWriteProtection {
		t.Errorf("unexpected self-destruct error: %v", err)
	}
	result, interrupt := executor.Create(alice, evm.LegacyScheme(alice), evm.Value{}, nil, nil)
	if interrupt != nil || result.Reason != evm.ExitWithError(evm.ErrWriteProtection) {
		t.Errorf("unexpected create result: %v", result.Reason)
	}
	transfer := &evm.Transfer{Source: alice, Target: bob, Value: evm.NewValue(1)}
	callResult, interrupt := executor.Call(bob, transfer, nil, nil, false, evm.Context{})
	if interrupt != nil || callResult.Reason != evm.ExitWithError(evm.ErrWriteProtection) {
		t.Errorf("unexpected call result: %v", callResult.Reason)
	}
	if want, got := (state.WorldState{alice: {Balance: evm.NewValue(10)}}), host.World(); !want.Equal(got) {
		t.Errorf("state was modified: %v", got.Diff(want))
	}
}

func TestStackExecutor_LogCopiesTopicsAndData(t *testing.T) {
	host := newTestState(evm.R12_Shanghai, nil)
	executor := newTestExecutor(t, host, Config{Revision: evm.R12_Shanghai})

	topics := []evm.Hash{{1}}
	data := evm.Data{2}
	if err := executor.Log(alice, topics, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	topics[0] = evm.Hash{3}
	data[0] = 4

	logs := host.Logs()
	if len(logs) != 1 {
		t.Fatalf("unexpected number of logs: %d", len(logs))
	}
	if logs[0].Address != alice || logs[0].Topics[0] != (evm.Hash{1}) || logs[0].Data[0] != 2 {
		t.Errorf("unexpected log: %v", logs[0])
	}
}

func TestStackExecutor_MarkDeleteMovesBalance(t *testing.T) {
	tests := map[string]struct {
		beneficiary evm.Address
		want        state.WorldState
	}{
		"other": {
			beneficiary: bob,
			want:        state.WorldState{alice: {}, bob: {Balance: evm.NewValue(15)}},
		},
		"self": {
			beneficiary: alice,
			want:        state.WorldState{bob: {Balance: evm.NewValue(5)}},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			host := newTestState(evm.R12_Shanghai, state.WorldState{
				alice: {Balance: evm.NewValue(10)},
				bob:   {Balance: evm.NewValue(5)},
			})
			executor := newTestExecutor(t, host, Config{Revision: evm.R12_Shanghai})
			if err := executor.MarkDelete(alice, test.beneficiary); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !host.HasSelfDestructed(alice) {
				t.Errorf("account has not been marked")
			}
			if got := host.World(); !test.want.Equal(got) {
				t.Errorf("unexpected state: %v", got.Diff(test.want))
			}
		})
	}
}

func TestStackExecutor_CreateBelowIntrinsicCostFailsWithoutSuspension(t *testing.T) {
	executor := newTestExecutor(t, newTestState(evm.R12_Shanghai, nil), Config{Revision: evm.R12_Shanghai, Gas: 100000})

	targetGas := CreateGas - 1
	result, interrupt := executor.Create(alice, evm.LegacyScheme(alice), evm.Value{}, nil, &targetGas)
	if interrupt != nil {
		t.Fatalf("unexpected suspension")
	}
	if want, got := evm.ExitWithError(evm.ErrOutOfGas), result.Reason; want != got {
		t.Errorf("unexpected result, wanted %v, got %v", want, got)
	}
	if want, got := evm.Gas(100000), executor.Gas(); want != got {
		t.Errorf("unexpected gas, wanted %d, got %d", want, got)
	}
	if _, reserved := executor.ReservedGas(); reserved {
		t.Errorf("gas has been reserved")
	}
}

func TestStackExecutor_CreateWithoutEnoughGasFails(t *testing.T) {
	executor := newTestExecutor(t, newTestState(evm.R12_Shanghai, nil), Config{Revision: evm.R12_Shanghai, Gas: CreateGas - 1})

	result, interrupt := executor.Create(alice, evm.LegacyScheme(alice), evm.Value{}, nil, nil)
	if interrupt != nil {
		t.Fatalf("unexpected suspension")
	}
	if want, got := evm.ExitWithError(evm.ErrOutOfGas), result.Reason; want != got {
		t.Errorf("unexpected result, wanted %v, got %v", want, got)
	}
	if want, got := evm.Gas(0), executor.Gas(); want != got {
		t.Errorf("unexpected gas, wanted %d, got %d", want, got)
	}
}

func TestStackExecutor_CreateReservesEndowment(t *testing.T) {
	initCode := make(evm.Code, 33)
	tests := map[string]struct {
		revision  evm.Revision
		scheme    evm.CreateScheme
		targetGas *evm.Gas
		cost      evm.Gas
	}{
		"legacy istanbul": {
			revision: evm.R07_Istanbul,
			scheme:   evm.LegacyScheme(alice),
			cost:     CreateGas,
		},
		"legacy shanghai": {
			revision: evm.R12_Shanghai,
			scheme:   evm.LegacyScheme(alice),
			cost:     CreateGas + 2*InitCodeWordGas,
		},
		"salted london": {
			revision: evm.R10_London,
			scheme:   evm.SaltedScheme(alice, evm.Hash{}, evm.Hash{}),
			cost:     CreateGas + 2*Keccak256WordGas,
		},
		"salted shanghai": {
			revision: evm.R12_Shanghai,
			scheme:   evm.SaltedScheme(alice, evm.Hash{}, evm.Hash{}),
			cost:     CreateGas + 2*InitCodeWordGas + 2*Keccak256WordGas,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			const gas = 1_000_000
			executor := newTestExecutor(t, newTestState(test.revision, nil), Config{Revision: test.revision, Gas: gas})

			result, interrupt := executor.Create(alice, test.scheme, evm.Value{}, initCode, nil)
			if interrupt == nil {
				t.Fatalf("expected suspension, got %v", result.Reason)
			}
			if want, got := evm.InterruptCreate, interrupt.Kind(); want != got {
				t.Errorf("unexpected interrupt kind, wanted %v, got %v", want, got)
			}
			available := gas - test.cost
			endowment := available - available/64
			if reserved, found := executor.ReservedGas(); !found || reserved != endowment {
				t.Errorf("unexpected reservation, wanted %d, got %d", endowment, reserved)
			}
			if want, got := available-endowment, executor.Gas(); want != got {
				t.Errorf("unexpected gas left, wanted %d, got %d", want, got)
			}
		})
	}
}

func TestStackExecutor_CreateEndowmentIsCappedByTargetGas(t *testing.T) {
	executor := newTestExecutor(t, newTestState(evm.R10_London, nil), Config{Revision: evm.R10_London, Gas: 1_000_000})

	targetGas := CreateGas + 500
	_, interrupt := executor.Create(alice, evm.LegacyScheme(alice), evm.Value{}, nil, &targetGas)
	if interrupt == nil {
		t.Fatalf("expected suspension")
	}
	if reserved, _ := executor.ReservedGas(); reserved != 500 {
		t.Errorf("unexpected reservation, wanted 500, got %d", reserved)
	}
}

func TestStackExecutor_CreateFailuresDoNotSuspend(t *testing.T) {
	tests := map[string]struct {
		depth int
		value evm.Value
		want  error
	}{
		"too deep":          {depth: MaxRecursiveDepth, want: evm.ErrCallTooDeep},
		"insufficient fund": {value: evm.NewValue(11), want: evm.ErrOutOfFund},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			host := newTestState(evm.R10_London, state.WorldState{alice: {Balance: evm.NewValue(10)}})
			executor := newTestExecutor(t, host, Config{Revision: evm.R10_London, Depth: test.depth, Gas: 100000})

			result, interrupt := executor.Create(alice, evm.LegacyScheme(alice), test.value, nil, nil)
			if interrupt != nil {
				t.Fatalf("unexpected suspension")
			}
			if want, got := evm.ExitWithError(test.want), result.Reason; want != got {
				t.Errorf("unexpected result, wanted %v, got %v", want, got)
			}
			if want, got := 100000-CreateGas, executor.Gas(); want != got {
				t.Errorf("unexpected gas, wanted %d, got %d", want, got)
			}
		})
	}
}

func TestStackExecutor_CreateRejectsOversizedInitCode(t *testing.T) {
	executor := newTestExecutor(t, newTestState(evm.R12_Shanghai, nil), Config{Revision: evm.R12_Shanghai, Gas: 1_000_000})
	result, interrupt := executor.Create(alice, evm.LegacyScheme(alice), evm.Value{}, make(evm.Code, MaxInitCodeSize+1), nil)
	if interrupt != nil || result.Reason != evm.ExitWithError(evm.ErrInitCodeTooLarge) {
		t.Errorf("unexpected result: %v / %v", result.Reason, interrupt)
	}
}

func TestStackExecutor_CallSuspendsWithEndowment(t *testing.T) {
	tests := map[string]struct {
		transfer  *evm.Transfer
		targetGas *evm.Gas
		want      evm.Gas
	}{
		"all but one 64th": {
			want: 6400 - 100,
		},
		"capped by target": {
			targetGas: ptr(evm.Gas(1000)),
			want:      1000,
		},
		"target above limit": {
			targetGas: ptr(evm.Gas(10000)),
			want:      6400 - 100,
		},
		"value adds stipend": {
			transfer:  &evm.Transfer{Source: alice, Target: bob, Value: evm.NewValue(1)},
			targetGas: ptr(evm.Gas(1000)),
			want:      1000 + CallStipend,
		},
		"zero value has no stipend": {
			transfer:  &evm.Transfer{Source: alice, Target: bob},
			targetGas: ptr(evm.Gas(1000)),
			want:      1000,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			host := newTestState(evm.R12_Shanghai, state.WorldState{alice: {Balance: evm.NewValue(10)}})
			executor := newTestExecutor(t, host, Config{Revision: evm.R12_Shanghai, Gas: 6400})

			result, interrupt := executor.Call(bob, test.transfer, nil, test.targetGas, false, evm.Context{Address: bob, Caller: alice})
			if interrupt == nil {
				t.Fatalf("expected suspension, got %v", result.Reason)
			}
			if want, got := evm.InterruptCall, interrupt.Kind(); want != got {
				t.Errorf("unexpected interrupt kind, wanted %v, got %v", want, got)
			}
			if reserved, _ := executor.ReservedGas(); reserved != test.want {
				t.Errorf("unexpected reservation, wanted %d, got %d", test.want, reserved)
			}
		})
	}
}

func TestStackExecutor_CallFailuresReturnEndowment(t *testing.T) {
	tests := map[string]struct {
		depth    int
		transfer *evm.Transfer
		want     error
		gas      evm.Gas
	}{
		"too deep": {
			depth: MaxRecursiveDepth,
			want:  evm.ErrCallTooDeep,
			gas:   6400,
		},
		"insufficient fund": {
			transfer: &evm.Transfer{Source: alice, Target: bob, Value: evm.NewValue(11)},
			want:     evm.ErrOutOfFund,
			gas:      6400 + CallStipend,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			host := newTestState(evm.R12_Shanghai, state.WorldState{alice: {Balance: evm.NewValue(10)}})
			executor := newTestExecutor(t, host, Config{Revision: evm.R12_Shanghai, Depth: test.depth, Gas: 6400})

			result, interrupt := executor.Call(bob, test.transfer, nil, nil, false, evm.Context{})
			if interrupt != nil {
				t.Fatalf("unexpected suspension")
			}
			if want, got := evm.ExitWithError(test.want), result.Reason; want != got {
				t.Errorf("unexpected result, wanted %v, got %v", want, got)
			}
			if want, got := test.gas, executor.Gas(); want != got {
				t.Errorf("unexpected gas, wanted %d, got %d", want, got)
			}
		})
	}
}

func TestStackExecutor_PrecompilesCompleteWithoutSuspension(t *testing.T) {
	identity := evm.Address{19: 0x04}
	host := newTestState(evm.R12_Shanghai, state.WorldState{alice: {Balance: evm.NewValue(10)}})
	executor := newTestExecutor(t, host, Config{Revision: evm.R12_Shanghai, Gas: 6400})

	transfer := &evm.Transfer{Source: alice, Target: identity, Value: evm.NewValue(3)}
	input := evm.Data{1, 2, 3}
	result, interrupt := executor.Call(identity, transfer, input, ptr(evm.Gas(1000)), false, evm.Context{Address: identity, Caller: alice})
	if interrupt != nil {
		t.Fatalf("unexpected suspension")
	}
	if want, got := evm.ExitReturned, result.Reason; want != got {
		t.Fatalf("unexpected result, wanted %v, got %v", want, got)
	}
	if !bytes.Equal(input, result.Output) {
		t.Errorf("unexpected output, wanted %x, got %x", input, result.Output)
	}
	// The identity contract costs 15 + 3 per word; the stipend is returned.
	if want, got := 6400-18+CallStipend, executor.Gas(); want != got {
		t.Errorf("unexpected gas, wanted %d, got %d", want, got)
	}
	if want, got := evm.NewValue(3), host.GetBalance(identity); want != got {
		t.Errorf("value was not transferred, got %v", got)
	}
}

func TestStackExecutor_FailingPrecompileConsumesEndowmentAndRevertsTransfer(t *testing.T) {
	identity := evm.Address{19: 0x04}
	host := newTestState(evm.R12_Shanghai, state.WorldState{alice: {Balance: evm.NewValue(10)}})
	executor := newTestExecutor(t, host, Config{Revision: evm.R12_Shanghai, Gas: 6400})

	transfer := &evm.Transfer{Source: alice, Target: identity, Value: evm.NewValue(3)}
	// The stipend does not cover the cost of large inputs.
	input := make(evm.Data, 32*1000)
	result, interrupt := executor.Call(identity, transfer, input, ptr(evm.Gas(10)), false, evm.Context{})
	if interrupt != nil {
		t.Fatalf("unexpected suspension")
	}
	if want, got := evm.ExitWithError(evm.ErrOutOfGas), result.Reason; want != got {
		t.Errorf("unexpected result, wanted %v, got %v", want, got)
	}
	if want, got := evm.Gas(6400-10), executor.Gas(); want != got {
		t.Errorf("unexpected gas, wanted %d, got %d", want, got)
	}
	if want, got := evm.NewValue(10), host.GetBalance(alice); want != got {
		t.Errorf("transfer was not reverted, got %v", got)
	}
}

func TestStackExecutor_SecondSubCallWhileSuspendedIsFatal(t *testing.T) {
	executor := newTestExecutor(t, newTestState(evm.R12_Shanghai, nil), Config{Revision: evm.R12_Shanghai, Gas: 100000})
	if _, interrupt := executor.Call(bob, nil, nil, nil, false, evm.Context{}); interrupt == nil {
		t.Fatalf("expected suspension")
	}
	result, interrupt := executor.Call(bob, nil, nil, nil, false, evm.Context{})
	if interrupt != nil || !result.Reason.IsFatal() {
		t.Errorf("unexpected result: %v / %v", result.Reason, interrupt)
	}
	createResult, interrupt := executor.Create(alice, evm.LegacyScheme(alice), evm.Value{}, nil, nil)
	if interrupt != nil || !createResult.Reason.IsFatal() {
		t.Errorf("unexpected result: %v / %v", createResult.Reason, interrupt)
	}
}

func TestStackExecutor_FeedbackSettlesGas(t *testing.T) {
	tests := map[string]struct {
		reason evm.ExitReason
		gas    evm.Gas
		refund evm.Gas
	}{
		"success": {evm.ExitStopped, 6400 - 6300 + 200, 50},
		"revert":  {evm.ExitReverted, 6400 - 6300 + 200, 0},
		"failure": {evm.ExitWithError(evm.ErrInvalidJump), 6400 - 6300, 0},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			executor := newTestExecutor(t, newTestState(evm.R12_Shanghai, nil), Config{Revision: evm.R12_Shanghai, Gas: 6400})
			if _, interrupt := executor.Call(bob, nil, nil, nil, false, evm.Context{}); interrupt == nil {
				t.Fatalf("expected suspension")
			}
			err := executor.CallFeedback(evm.CallFeedback{Reason: test.reason, GasLeft: 200, GasRefund: 50})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if want, got := test.gas, executor.Gas(); want != got {
				t.Errorf("unexpected gas, wanted %d, got %d", want, got)
			}
			if want, got := test.refund, executor.Refund(); want != got {
				t.Errorf("unexpected refund, wanted %d, got %d", want, got)
			}
			if _, reserved := executor.ReservedGas(); reserved {
				t.Errorf("reservation has not been released")
			}
		})
	}
}

func TestStackExecutor_InvalidFeedbackIsRejected(t *testing.T) {
	executor := newTestExecutor(t, newTestState(evm.R12_Shanghai, nil), Config{Revision: evm.R12_Shanghai, Gas: 6400})

	if err := executor.CallFeedback(evm.CallFeedback{}); err != ErrNoReservation {
		t.Errorf("unexpected error without reservation: %v", err)
	}
	if _, interrupt := executor.Call(bob, nil, nil, nil, false, evm.Context{}); interrupt == nil {
		t.Fatalf("expected suspension")
	}
	if err := executor.CreateFeedback(evm.CreateFeedback{}); err != ErrNoReservation {
		t.Errorf("unexpected error for mismatching kind: %v", err)
	}
	err := executor.CallFeedback(evm.CallFeedback{Reason: evm.ExitStopped, GasLeft: 6400})
	if !errors.Is(err, ErrExcessGasReturned) {
		t.Errorf("unexpected error for excess gas: %v", err)
	}
	if err := executor.CallFeedback(evm.CallFeedback{Reason: evm.ExitStopped, GasLeft: 6300}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStackExecutor_CreateFeedbackSettlesGas(t *testing.T) {
	executor := newTestExecutor(t, newTestState(evm.R10_London, nil), Config{Revision: evm.R10_London, Gas: CreateGas + 6400})
	if _, interrupt := executor.Create(alice, evm.LegacyScheme(alice), evm.Value{}, nil, nil); interrupt == nil {
		t.Fatalf("expected suspension")
	}
	err := executor.CreateFeedback(evm.CreateFeedback{Reason: evm.ExitReturned, Address: bob, GasLeft: 300, GasRefund: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, got := evm.Gas(100+300), executor.Gas(); want != got {
		t.Errorf("unexpected gas, wanted %d, got %d", want, got)
	}
	if want, got := evm.Gas(7), executor.Refund(); want != got {
		t.Errorf("unexpected refund, wanted %d, got %d", want, got)
	}
}

func TestStackExecutor_IntoStateReturnsHost(t *testing.T) {
	host := newTestState(evm.R12_Shanghai, nil)
	executor := newTestExecutor(t, host, Config{Revision: evm.R12_Shanghai})
	if executor.IntoState() != evm.Host(host) {
		t.Errorf("unexpected state")
	}
}

func ptr[T any](value T) *T {
	return &value
}
