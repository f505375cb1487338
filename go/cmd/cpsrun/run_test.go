// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Fantom-foundation/cps/go/evm"
	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := &cli.App{
		Name:      "cpsrun",
		Writer:    &out,
		ErrWriter: &errOut,
		Commands:  []*cli.Command{&RunCmd},
	}
	err := app.Run(append([]string{"cpsrun", "run"}, args...))
	return out.String(), err
}

func TestRun_PrintsResultAndState(t *testing.T) {
	// PUSH1 42, PUSH0, MSTORE, PUSH1 32, PUSH0, RETURN
	out, err := runApp(t, "--code", "602a5f5260205ff3", "--verbosity", "0")
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}
	for _, want := range []string{
		"status:   returned",
		"output:   0x" + strings.Repeat("00", 31) + "2a",
		"state:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestRun_CallsAdditionalAccounts(t *testing.T) {
	// Calls 0x..BB and returns the success flag.
	code := "5f5f5f5f5f60bb5af15f5260205ff3"
	callee := "0x00000000000000000000000000000000000000bb=00"
	out, err := runApp(t, "--code", code, "--account", callee, "--revision", "shanghai", "--verbosity", "0")
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}
	if want := "output:   0x" + strings.Repeat("00", 31) + "01"; !strings.Contains(out, want) {
		t.Errorf("output does not contain %q:\n%s", want, out)
	}
}

func TestRun_RepeatReportsThroughput(t *testing.T) {
	out, err := runApp(t, "--code", "00", "--repeat", "3", "--verbosity", "0")
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}
	if !strings.Contains(out, "throughput:") || !strings.Contains(out, "3 runs") {
		t.Errorf("missing throughput report:\n%s", out)
	}
}

func TestRun_TraceListsInstructions(t *testing.T) {
	out, err := runApp(t, "--code", "600100", "--trace", "--verbosity", "0")
	if err != nil {
		t.Fatalf("failed to run: %v", err)
	}
	if !strings.Contains(out, "op=PUSH1") || !strings.Contains(out, "op=STOP") {
		t.Errorf("missing trace:\n%s", out)
	}
}

func TestRun_StateImplementationsAgree(t *testing.T) {
	// PUSH1 42, PUSH0, SSTORE, PUSH1 42, PUSH0, MSTORE, PUSH1 32, PUSH0, RETURN
	code := "602a5f55602a5f5260205ff3"
	outputs := map[string]string{}
	for _, kind := range []string{memoryState, gethState} {
		t.Run(kind, func(t *testing.T) {
			out, err := runApp(t, "--code", code, "--state", kind, "--verbosity", "0")
			if err != nil {
				t.Fatalf("failed to run: %v", err)
			}
			for _, want := range []string{
				"status:   returned",
				"output:   0x" + strings.Repeat("00", 31) + "2a",
				"    0x" + strings.Repeat("00", 32) + ": 0x" + strings.Repeat("00", 31) + "2a",
			} {
				if !strings.Contains(out, want) {
					t.Errorf("output does not contain %q:\n%s", want, out)
				}
			}
			outputs[kind] = out
		})
	}
	if want, got := outputs[memoryState], outputs[gethState]; want != got {
		t.Errorf("state implementations disagree, memory:\n%s\ngeth:\n%s", want, got)
	}
}

func TestRun_InvalidParametersAreReported(t *testing.T) {
	tests := map[string][]string{
		"code":     {"--code", "0xzz"},
		"input":    {"--code", "00", "--input", "0x1"},
		"revision": {"--code", "00", "--revision", "frontier"},
		"account":  {"--code", "00", "--account", "nope"},
		"cancun":   {"--code", "00", "--revision", "cancun"},
		"state":    {"--code", "00", "--state", "leveldb"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := runApp(t, append(args, "--verbosity", "0")...); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

func TestParseAccount(t *testing.T) {
	address, code, err := parseAccount("0x00000000000000000000000000000000000000aa=6001")
	if err != nil {
		t.Fatalf("failed to parse account: %v", err)
	}
	if want := (evm.Address{19: 0xAA}); want != address {
		t.Errorf("unexpected address, wanted %v, got %v", want, address)
	}
	if want := (evm.Code{0x60, 0x01}); !bytes.Equal(want, code) {
		t.Errorf("unexpected code, wanted %x, got %x", want, code)
	}

	for _, invalid := range []string{"", "0xaa", "0x12=00", "0x00000000000000000000000000000000000000aa=0xg"} {
		if _, _, err := parseAccount(invalid); err == nil {
			t.Errorf("expected error for %q", invalid)
		}
	}
}
