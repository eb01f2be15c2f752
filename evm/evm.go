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

// Package evm is the single public entry point into the interpreter: one
// struct holding the world's ambient facts, one method that runs a program
// against them.
package evm

import (
	"github.com/boringevm/boringevm/core/vm"
)

// EVM holds the ambient context every run executes against: chain id,
// block facts, and account state lookup. It carries no per-call state —
// that lives entirely in the Executor a single Run constructs.
type EVM struct {
	Ambient vm.AmbientContext
}

// New returns an EVM bound to the given ambient context.
func New(ambient vm.AmbientContext) *EVM {
	return &EVM{Ambient: ambient}
}

// Run executes code once against env, returning the Result on success and
// the MachineState the Executor ended in either way (success or error) so
// callers can inspect stack/memory/PC after a failed run too.
func (e *EVM) Run(code []byte, env vm.ExecutionEnvironment) (*vm.Result, *vm.MachineState, error) {
	ex := vm.NewExecutor(code, env, e.Ambient)
	result, err := ex.Run()
	return result, ex.Machine(), err
}
