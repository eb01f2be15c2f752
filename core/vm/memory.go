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

// Memory is the EVM's linear memory: a byte-addressable buffer that starts
// empty, grows only by writing past its current end, and never shrinks.
type Memory struct {
	store []byte
}

// NewMemory returns a new, empty Memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Read returns exactly length bytes starting at offset. If offset+length
// exceeds the current buffer size, the result is zero-padded on the right;
// Read never mutates the buffer (spec.md §3).
func (m *Memory) Read(offset, length int) []byte {
	out := make([]byte, length)
	if length == 0 || offset >= len(m.store) {
		return out
	}
	end := offset + length
	if end > len(m.store) {
		end = len(m.store)
	}
	copy(out, m.store[offset:end])
	return out
}

// Write overwrites [offset, offset+len(data)) with data, zero-extending the
// buffer first if that range exceeds the current size. Write is the only
// mutator of Memory; memory size is monotonically non-decreasing across a
// run (spec.md §3, §4.5).
func (m *Memory) Write(offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	end := offset + len(data)
	if end > len(m.store) {
		grown := make([]byte, end)
		copy(grown, m.store)
		m.store = grown
	}
	copy(m.store[offset:end], data)
}

// Len returns the current size of the memory buffer in bytes (MSIZE).
func (m *Memory) Len() int {
	return len(m.store)
}

// Data returns the buffer's current contents. Callers must not mutate it.
func (m *Memory) Data() []byte {
	return m.store
}
