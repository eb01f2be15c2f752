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
	"github.com/holiman/uint256"
)

// Word is the EVM's atomic value type: an unsigned 256-bit integer. All
// arithmetic on it wraps modulo 2**256 unless an opcode's semantics say
// otherwise.
type Word = uint256.Int

// AddressLength is the size, in bytes, of an EVM account address.
const AddressLength = 20

// Address is a 20-byte EVM account address.
type Address [AddressLength]byte

// BytesToAddress left-pads or truncates b to AddressLength bytes, keeping
// the low-order (rightmost) bytes, matching Solidity/EVM address semantics.
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
	return a
}

// WordFromAddress left-zero-pads a into a 32-byte Word, as ADDRESS/CALLER do.
func WordFromAddress(a Address) Word {
	var w Word
	w.SetBytes(a[:])
	return w
}

// ToAddress narrows w to its low 20 bytes, as BALANCE does with a popped
// stack word before looking an account up.
func ToAddress(w *Word) Address {
	b := w.Bytes32()
	return BytesToAddress(b[:])
}

// ToIndex narrows w to a native-width, non-negative index suitable for use
// as a memory or code offset/length. It fails with ErrNumeric if w cannot
// be represented without loss — the lossy-narrowing hazard spec.md §9 calls
// out explicitly.
func ToIndex(w *Word) (int, error) {
	if !w.IsUint64() {
		return 0, ErrNumeric
	}
	u := w.Uint64()
	if u > uint64(maxIndex) {
		return 0, ErrNumeric
	}
	return int(u), nil
}

// maxIndex bounds the largest memory/code index the executor will accept,
// defending against a caller-controlled offset that narrows without
// overflowing uint64 but would still try to allocate an absurd amount of
// host memory (spec.md §5: "implementations should cap memory growth
// defensively").
const maxIndex = 1 << 32

// ByteAt returns the byte at big-endian index i of w's 32-byte encoding,
// or 0 if i >= 32 (spec.md §3's BYTE semantics).
func ByteAt(w *Word, i int) byte {
	if i < 0 || i >= 32 {
		return 0
	}
	b := w.Bytes32()
	return b[i]
}
