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

import "testing"

func TestExitReason_Classification(t *testing.T) {
	tests := map[string]struct {
		reason  ExitReason
		succeed bool
		revert  bool
		err     bool
		fatal   bool
	}{
		"stopped":         {reason: ExitStopped, succeed: true},
		"returned":        {reason: ExitReturned, succeed: true},
		"self-destructed": {reason: ExitSelfDestructed, succeed: true},
		"reverted":        {reason: ExitReverted, revert: true},
		"failed":          {reason: ExitWithError(ErrOutOfGas), err: true},
		"fatal":           {reason: ExitWithFatal(ErrUnhandledInterrupt), fatal: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if want, got := test.succeed, test.reason.IsSucceed(); want != got {
				t.Errorf("unexpected IsSucceed, wanted %t, got %t", want, got)
			}
			if want, got := test.revert, test.reason.IsRevert(); want != got {
				t.Errorf("unexpected IsRevert, wanted %t, got %t", want, got)
			}
			if want, got := test.err, test.reason.IsError(); want != got {
				t.Errorf("unexpected IsError, wanted %t, got %t", want, got)
			}
			if want, got := test.fatal, test.reason.IsFatal(); want != got {
				t.Errorf("unexpected IsFatal, wanted %t, got %t", want, got)
			}
		})
	}
}

func TestExitReason_String(t *testing.T) {
	tests := map[ExitReason]string{
		ExitStopped:                       "stopped",
		ExitReverted:                      "reverted",
		ExitWithError(ErrOutOfGas):        "failed: out of gas",
		ExitWithFatal(ErrNotSupported):    "fatal: not supported",
		ExitWithError(ErrCreateCollision): "failed: contract address collision",
	}
	for reason, want := range tests {
		if got := reason.String(); want != got {
			t.Errorf("unexpected string, wanted %q, got %q", want, got)
		}
	}
}

func TestStatus_UnknownValuesArePrintable(t *testing.T) {
	if want, got := "Status(42)", Status(42).String(); want != got {
		t.Errorf("unexpected string, wanted %q, got %q", want, got)
	}
}
