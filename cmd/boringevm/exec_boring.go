// Copyright 2024 The boringevm Authors
// This file is part of the boringevm library.
//
// The boringevm library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The boringevm library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the boringevm library. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/boringevm/boringevm/core/vm"
	"github.com/boringevm/boringevm/evm"
	"github.com/boringevm/boringevm/internal/hexutil"
)

var execBoringCommand = &cli.Command{
	Name:      "exec-boring",
	Aliases:   []string{"xb"},
	Usage:     "run a bytecode program to completion and print its output",
	ArgsUsage: "<bytecode>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "value",
			Usage: "callvalue, as a hex or decimal 256-bit integer",
			Value: "0",
		},
		&cli.StringFlag{
			Name:  "caller",
			Usage: "caller address, 20-byte hex",
			Value: "0x0000000000000000000000000000000000000000",
		},
		&cli.StringFlag{
			Name:  "calldata",
			Usage: "calldata, hex",
			Value: "0x",
		},
		&cli.StringFlag{
			Name:  "contract-address",
			Usage: "executing contract's address, 20-byte hex",
			Value: "0x0000000000000000000000000000000000000000",
		},
	},
	Action: runExecBoring,
}

func runExecBoring(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("exec-boring: missing required <bytecode> argument")
	}
	code, err := hexutil.Decode(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("decoding bytecode: %w", err)
	}

	value, err := hexutil.DecodeWord(c.String("value"))
	if err != nil {
		return fmt.Errorf("decoding --value: %w", err)
	}
	caller, err := hexutil.DecodeAddress(c.String("caller"))
	if err != nil {
		return fmt.Errorf("decoding --caller: %w", err)
	}
	calldata, err := hexutil.Decode(c.String("calldata"))
	if err != nil {
		return fmt.Errorf("decoding --calldata: %w", err)
	}
	contractAddress, err := hexutil.DecodeAddress(c.String("contract-address"))
	if err != nil {
		return fmt.Errorf("decoding --contract-address: %w", err)
	}

	env := vm.ExecutionEnvironment{
		Value:           value,
		Caller:          caller,
		Calldata:        calldata,
		ContractAddress: contractAddress,
	}
	ambient := vm.AmbientContext{
		Accounts: vm.MapAccountReader{},
	}

	e := evm.New(ambient)
	result, machine, err := e.Run(code, env)
	if err != nil {
		if machine != nil {
			fmt.Fprintln(c.App.Writer, machine.String())
		}
		return fmt.Errorf("execution failed: %w", err)
	}

	fmt.Fprintln(c.App.Writer, hexutil.Encode(result.Output))
	fmt.Fprintln(c.App.Writer, machine.String())
	return nil
}
