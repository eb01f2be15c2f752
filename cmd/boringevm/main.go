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
	"os"

	"github.com/urfave/cli/v2"

	"github.com/boringevm/boringevm/internal/xlog"
)

func main() {
	loadDotEnv(".env")

	app := &cli.App{
		Name:      "boringevm",
		Usage:     "a small, deliberately non-canonical EVM bytecode interpreter",
		Version:   "0.1.0",
		Commands:  []*cli.Command{execBoringCommand},
		Copyright: "Copyright 2024 The boringevm Authors",
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		xlog.Error("run failed", "err", err)
		os.Exit(1)
	}
}
