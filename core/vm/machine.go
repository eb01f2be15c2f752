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

package vm

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// MachineState is the mutable state a single Executor invocation owns:
// its stack, its memory, and its program counter. It outlives the Executor
// only to be inspected afterward (dumped to the CLI, asserted on in tests).
type MachineState struct {
	Stack *Stack
	Mem   *Memory
	PC    ProgramCounter
}

// NewMachineState returns a fresh, empty MachineState with the PC at 0.
func NewMachineState() *MachineState {
	return &MachineState{
		Stack: NewStack(),
		Mem:   NewMemory(),
	}
}

// String renders a terse, single-block hex dump: PC, stack (top first),
// and memory (its length, then its contents as 32-byte hex rows). This is what the CLI prints on every run, success or
// failure, so a reader can see exactly where execution stood.
func (ms *MachineState) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pc=%d\n", ms.PC.Get())

	words := ms.Stack.Words()
	fmt.Fprintf(&b, "stack (%d):\n", len(words))
	for i := len(words) - 1; i >= 0; i-- {
		w := words[i]
		fmt.Fprintf(&b, "  [%d] %s\n", len(words)-1-i, w.Hex())
	}

	fmt.Fprintf(&b, "memory (%d bytes):\n", ms.Mem.Len())
	data := ms.Mem.Data()
	for off := 0; off < len(data); off += 32 {
		end := off + 32
		if end > len(data) {
			end = len(data)
		}
		fmt.Fprintf(&b, "  0x%04x: %x\n", off, data[off:end])
	}
	return b.String()
}

// Dump produces an exhaustive structured rendering: every field of every
// component, via go-spew, rather than the curated summary String provides.
// The CLI does not call it; it prints String only.
func (ms *MachineState) Dump() string {
	return spew.Sdump(ms)
}
