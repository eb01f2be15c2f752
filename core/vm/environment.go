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

// ExecutionEnvironment carries the per-call facts a single Executor
// invocation runs against: the value transferred, who's calling, their
// calldata, and the address the running code is deployed at.
type ExecutionEnvironment struct {
	Value           Word
	Caller          Address
	Calldata        []byte
	ContractAddress Address
}

// BlockContext carries the facts about the enclosing block that opcodes may
// read but never mutate.
type BlockContext struct {
	Timestamp   uint64
	BlockNumber uint64
	GasLimit    uint64
	BlockHash   [32]byte
}

// AccountState is the externally-owned or contract account data an
// AccountReader hands back for a given address.
type AccountState struct {
	Balance Word
	Code    []byte
	Storage map[Word]Word
}

// AccountReader is a read-only lookup of account state by address. The
// Executor never mutates account state itself — it only asks for the
// caller's balance (SELFBALANCE, per this spec's deliberate divergence) and
// arbitrary account balances (BALANCE). Implementations own however they
// actually source that data (in-memory map, RPC, database); the core
// package has no opinion beyond this interface.
type AccountReader interface {
	AccountAt(addr Address) (AccountState, bool)
}

// AmbientContext bundles everything about the surrounding world an Executor
// run needs beyond its own call frame: the chain identifier, the enclosing
// block, and account state lookup.
type AmbientContext struct {
	ChainID  Word
	Block    BlockContext
	Accounts AccountReader
}

// MapAccountReader is the simplest AccountReader: a fixed in-memory table,
// suitable for the CLI and for tests that don't need a live state backend.
type MapAccountReader map[Address]AccountState

func (m MapAccountReader) AccountAt(addr Address) (AccountState, bool) {
	acc, ok := m[addr]
	return acc, ok
}
