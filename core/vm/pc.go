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

import "fmt"

// ProgramCounter is a monotonic offset cursor into a program's code. It
// performs no bounds checking of its own — the Executor enforces
// reachability against the code length at the top of its loop.
type ProgramCounter struct {
	offset int
}

// Get returns the current offset.
func (pc *ProgramCounter) Get() int {
	return pc.offset
}

// IncrementBy advances the counter by n.
func (pc *ProgramCounter) IncrementBy(n int) {
	pc.offset += n
}

// SetExact sets the counter to exactly n, as JUMP/JUMPI do.
func (pc *ProgramCounter) SetExact(n int) {
	pc.offset = n
}

func (pc *ProgramCounter) String() string {
	return fmt.Sprintf("PC: %d", pc.offset)
}
