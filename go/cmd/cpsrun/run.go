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
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Fantom-foundation/cps/go/driver"
	"github.com/Fantom-foundation/cps/go/evm"
	"github.com/Fantom-foundation/cps/go/state"
	"github.com/Fantom-foundation/cps/go/state/gethstate"
	"github.com/dsnet/golib/unitconv"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

var RunCmd = cli.Command{
	Action: doRun,
	Name:   "run",
	Usage:  "Runs the given bytecode as a message call and prints the result",
	Flags: []cli.Flag{
		CodeFlag,
		InputFlag,
		GasFlag,
		ValueFlag,
		RevisionFlag,
		AccountsFlag,
		VerbosityFlag,
		RepeatFlag,
		TraceFlag,
		StateFlag,
	},
}

var (
	sender = evm.Address{0x5E, 0x4D}
	target = evm.Address{0x7A, 0x26}
)

// runParameters is the message to run and the world to run it in.
type runParameters struct {
	code     evm.Code
	input    evm.Data
	gas      evm.Gas
	value    evm.Value
	revision evm.Revision
	accounts map[evm.Address]evm.Code
	state    string
	trace    bool
}

func doRun(context *cli.Context) error {
	setupLogging(context.App.ErrWriter, VerbosityFlag.Fetch(context))

	params, err := fetchParameters(context)
	if err != nil {
		return err
	}
	out := context.App.Writer

	repeat := RepeatFlag.Fetch(context)
	start := time.Now()
	var world state.WorldState
	var result driver.Result
	for i := 0; i < repeat; i++ {
		world, result, err = runMessage(out, params)
		if err != nil {
			return err
		}
		// Only the first run is traced.
		params.trace = false
	}
	duration := time.Since(start)

	printResult(out, result, world)
	if repeat > 1 {
		rate := float64(repeat) / duration.Seconds()
		fmt.Fprintf(out, "throughput: %s runs per second (%d runs in %v)\n",
			unitconv.FormatPrefix(rate, unitconv.SI, 1), repeat, duration.Round(time.Millisecond))
	}
	return nil
}

func fetchParameters(context *cli.Context) (runParameters, error) {
	code, err := CodeFlag.Fetch(context)
	if err != nil {
		return runParameters{}, err
	}
	input, err := InputFlag.Fetch(context)
	if err != nil {
		return runParameters{}, err
	}
	revision, err := RevisionFlag.Fetch(context)
	if err != nil {
		return runParameters{}, err
	}
	accounts, err := AccountsFlag.Fetch(context)
	if err != nil {
		return runParameters{}, err
	}
	kind, err := StateFlag.Fetch(context)
	if err != nil {
		return runParameters{}, err
	}
	return runParameters{
		code:     code,
		input:    input,
		gas:      GasFlag.Fetch(context),
		value:    ValueFlag.Fetch(context),
		revision: revision,
		accounts: accounts,
		state:    kind,
		trace:    context.Bool(TraceFlag.Name),
	}, nil
}

// runMessage runs the message described by the parameters on a fresh
// state and returns the resulting world.
func runMessage(out io.Writer, params runParameters) (state.WorldState, driver.Result, error) {
	world := state.WorldState{
		sender: {Balance: params.value},
		target: {Code: params.code},
	}
	for address, code := range params.accounts {
		world[address] = state.Account{Code: code}
	}

	host, commit, err := newHost(params.state, world, evm.BlockParameters{
		Revision:    params.revision,
		BlockNumber: 1,
		GasLimit:    params.gas,
		Timestamp:   uint64(time.Now().Unix()),
	}, evm.TransactionParameters{Origin: sender})
	if err != nil {
		return nil, driver.Result{}, err
	}

	config := driver.Config{}
	if params.trace {
		config.Tracer = func(pc int, op evm.OpCode, gas evm.Gas, stack evm.Stack) {
			fmt.Fprintf(out, "pc=%05d gas=%d stack=%d op=%v\n", pc, gas, stack.Len(), op)
		}
	}
	d, err := driver.New(host, config)
	if err != nil {
		return nil, driver.Result{}, err
	}
	recipient := target
	result, err := d.Run(driver.Message{
		Sender:    sender,
		Recipient: &recipient,
		Value:     params.value,
		Input:     params.input,
		GasLimit:  params.gas,
	})
	if err != nil {
		return nil, driver.Result{}, err
	}
	return commit(), result, nil
}

// newHost creates the selected world state implementation holding the
// given accounts. The returned function finalises the transaction and
// dumps the resulting world.
func newHost(kind string, world state.WorldState, block evm.BlockParameters, transaction evm.TransactionParameters) (evm.Host, func() state.WorldState, error) {
	if kind == gethState {
		adapter, err := gethstate.NewMemoryAdapter(world, block, transaction)
		if err != nil {
			return nil, nil, err
		}
		return adapter, adapter.Commit, nil
	}
	host := state.New(world, block, transaction)
	return host, func() state.WorldState {
		host.Commit()
		return host.World()
	}, nil
}

func printResult(out io.Writer, result driver.Result, world state.WorldState) {
	fmt.Fprintf(out, "status:   %v\n", result.Reason)
	fmt.Fprintf(out, "output:   0x%x\n", []byte(result.Output))
	fmt.Fprintf(out, "gas used: %d (refund %d)\n", result.GasUsed, result.GasRefund)
	fmt.Fprintln(out, "state:")
	for _, address := range world.Addresses() {
		account := world[address]
		fmt.Fprintf(out, "  %v: balance=%v nonce=%d code=%d bytes\n", address, account.Balance, account.Nonce, len(account.Code))
		for _, key := range account.Storage.Keys() {
			fmt.Fprintf(out, "    %v: %v\n", key, account.Storage[key])
		}
	}
}

func setupLogging(writer io.Writer, verbosity int) {
	if writer == nil {
		writer = os.Stderr
	}
	level := log.FromLegacyLevel(verbosity)
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(writer, level, false)))
}
