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
	"strings"

	"github.com/Fantom-foundation/cps/go/evm"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"
)

type hexFlagType struct {
	cli.StringFlag
}

var CodeFlag = &hexFlagType{
	cli.StringFlag{
		Name:     "code",
		Aliases:  []string{"c"},
		Usage:    "hex encoded bytecode of the contract to run",
		Required: true,
	},
}

var InputFlag = &hexFlagType{
	cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "hex encoded call data",
	},
}

func (f *hexFlagType) Fetch(context *cli.Context) ([]byte, error) {
	data, err := parseHex(context.String(f.Name))
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", f.Name, err)
	}
	return data, nil
}

type gasFlagType struct {
	cli.Int64Flag
}

var GasFlag = &gasFlagType{
	cli.Int64Flag{
		Name:    "gas",
		Aliases: []string{"g"},
		Usage:   "gas limit of the message",
		Value:   10_000_000,
	},
}

func (f *gasFlagType) Fetch(context *cli.Context) evm.Gas {
	return evm.Gas(context.Int64(f.Name))
}

type valueFlagType struct {
	cli.Uint64Flag
}

var ValueFlag = &valueFlagType{
	cli.Uint64Flag{
		Name:  "value",
		Usage: "value transferred to the contract, in wei",
	},
}

func (f *valueFlagType) Fetch(context *cli.Context) evm.Value {
	return evm.NewValue(context.Uint64(f.Name))
}

type revisionFlagType struct {
	cli.StringFlag
}

var RevisionFlag = &revisionFlagType{
	cli.StringFlag{
		Name:    "revision",
		Aliases: []string{"r"},
		Usage:   "revision to run the code with",
		Value:   evm.NewestSupportedRevision.String(),
	},
}

func (f *revisionFlagType) Fetch(context *cli.Context) (evm.Revision, error) {
	return evm.ParseRevision(context.String(f.Name))
}

type accountsFlagType struct {
	cli.StringSliceFlag
}

var AccountsFlag = &accountsFlagType{
	cli.StringSliceFlag{
		Name:    "account",
		Aliases: []string{"a"},
		Usage:   "additional contract in the form <address>=<hex code>, may be repeated",
	},
}

func (f *accountsFlagType) Fetch(context *cli.Context) (map[evm.Address]evm.Code, error) {
	res := map[evm.Address]evm.Code{}
	for _, entry := range context.StringSlice(f.Name) {
		address, code, err := parseAccount(entry)
		if err != nil {
			return nil, err
		}
		res[address] = code
	}
	return res, nil
}

type verbosityFlagType struct {
	cli.IntFlag
}

var VerbosityFlag = &verbosityFlagType{
	cli.IntFlag{
		Name:  "verbosity",
		Usage: "log level, 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value: 3,
	},
}

func (f *verbosityFlagType) Fetch(context *cli.Context) int {
	return context.Int(f.Name)
}

type repeatFlagType struct {
	cli.IntFlag
}

var RepeatFlag = &repeatFlagType{
	cli.IntFlag{
		Name:  "repeat",
		Usage: "number of times the message is run to measure throughput",
		Value: 1,
	},
}

func (f *repeatFlagType) Fetch(context *cli.Context) int {
	return max(context.Int(f.Name), 1)
}

const (
	memoryState = "memory"
	gethState   = "geth"
)

type stateFlagType struct {
	cli.StringFlag
}

var StateFlag = &stateFlagType{
	cli.StringFlag{
		Name:  "state",
		Usage: "world state implementation, " + memoryState + " or " + gethState,
		Value: memoryState,
	},
}

func (f *stateFlagType) Fetch(context *cli.Context) (string, error) {
	switch kind := context.String(f.Name); kind {
	case memoryState, gethState:
		return kind, nil
	default:
		return "", fmt.Errorf("invalid --%s: unknown state implementation %q", f.Name, kind)
	}
}

var TraceFlag = &cli.BoolFlag{
	Name:  "trace",
	Usage: "print every executed instruction",
}

func parseHex(data string) ([]byte, error) {
	if data == "" {
		return nil, nil
	}
	if !strings.HasPrefix(data, "0x") && !strings.HasPrefix(data, "0X") {
		data = "0x" + data
	}
	return hexutil.Decode(data)
}

func parseAccount(entry string) (evm.Address, evm.Code, error) {
	address, code, found := strings.Cut(entry, "=")
	if !found {
		return evm.Address{}, nil, fmt.Errorf("invalid account %q, expected <address>=<code>", entry)
	}
	if !common.IsHexAddress(address) {
		return evm.Address{}, nil, fmt.Errorf("invalid address %q", address)
	}
	bytecode, err := parseHex(code)
	if err != nil {
		return evm.Address{}, nil, fmt.Errorf("invalid code for %s: %w", address, err)
	}
	return evm.Address(common.HexToAddress(address)), evm.Code(bytecode), nil
}
