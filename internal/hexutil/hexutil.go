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

// Package hexutil decodes the hex strings the CLI takes on its flags:
// bytecode, calldata, addresses, and word values, all with an optional
// leading "0x".
package hexutil

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/boringevm/boringevm/core/vm"
	"github.com/holiman/uint256"
)

// Decode strips an optional "0x"/"0X" prefix from s and hex-decodes the
// rest.
func Decode(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("hexutil: %w", err)
	}
	return b, nil
}

// DecodeWord decodes s into a 256-bit Word. A "0x"/"0X"-prefixed s is
// parsed as hex (an odd number of hex digits is left-zero-padded, since
// "0x0" and "0x100" are both values a caller may reasonably type); anything
// else is parsed as a base-10 decimal, so the bare default value "0" and
// ordinary values like "100" both work without a prefix.
func DecodeWord(s string) (vm.Word, error) {
	var w vm.Word
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		return decodeHexWord(rest, &w)
	}
	if rest, ok := strings.CutPrefix(s, "0X"); ok {
		return decodeHexWord(rest, &w)
	}
	if err := w.SetFromDecimal(s); err != nil {
		return vm.Word{}, fmt.Errorf("hexutil: decoding decimal word %q: %w", s, err)
	}
	return w, nil
}

func decodeHexWord(digits string, w *vm.Word) (vm.Word, error) {
	if len(digits)%2 != 0 {
		digits = "0" + digits
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return vm.Word{}, fmt.Errorf("hexutil: %w", err)
	}
	w.SetBytes(b)
	return *w, nil
}

// DecodeAddress decodes s into a 20-byte Address, keeping the low-order
// bytes if s decodes to more than 20.
func DecodeAddress(s string) (vm.Address, error) {
	b, err := Decode(s)
	if err != nil {
		return vm.Address{}, err
	}
	return vm.BytesToAddress(b), nil
}

// EncodeWord renders w as a "0x"-prefixed hex string.
func EncodeWord(w *uint256.Int) string {
	b := w.Bytes32()
	return "0x" + hex.EncodeToString(b[:])
}

// Encode renders b as a "0x"-prefixed hex string.
func Encode(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
