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
	"errors"
	"fmt"
)

// Terminal execution errors. Every error the executor returns halts the run
// immediately; there is no rollback and no retry (spec.md §7).
var (
	// ErrStackOverflow is returned when a push would exceed stack capacity.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrJumpDestExpected is returned when JUMP/JUMPI targets an offset
	// whose decoded opcode is not JUMPDEST, or an offset outside the code.
	ErrJumpDestExpected = errors.New("jump destination is not a JUMPDEST")

	// ErrTruncatedPush is returned when a PUSH(n) has fewer than n bytes
	// remaining in the code.
	ErrTruncatedPush = errors.New("truncated PUSH: not enough immediate bytes")

	// ErrNumeric is returned when a Word-to-host-index narrowing overflows,
	// or a host-arithmetic condition the core cannot proceed past occurs.
	ErrNumeric = errors.New("numeric: value out of representable range")
)

// StackUnderflowError reports a pop (or multi-pop) attempted against a
// stack that does not hold enough elements.
type StackUnderflowError struct {
	Height   int
	Required int
}

func (e *StackUnderflowError) Error() string {
	return fmt.Sprintf("stack underflow: have %d, want %d", e.Height, e.Required)
}

// IndexOutOfBoundsError reports a top-relative stack access (Peek/Set, used
// by DUP/SWAP) whose offset falls outside the current stack height.
type IndexOutOfBoundsError struct {
	Offset int
	Height int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("stack index out of bounds: offset %d, height %d", e.Offset, e.Height)
}

// InvalidOpcodeError reports an INVALID opcode (0xFE) or any byte the
// decoder does not recognize as a defined instruction.
type InvalidOpcodeError struct {
	Opcode byte
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode 0x%02x", e.Opcode)
}
