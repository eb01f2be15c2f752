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

// LogRecord is a single entry produced by a LOG0..LOG4 opcode: the topics
// popped off the stack (0 to 4 of them, per the opcode's N) and the data
// slice read from memory.
type LogRecord struct {
	Topics []Word
	Data   []byte
}

// Result is everything an Executor run produces on success: the bytes
// handed to RETURN, and any log records emitted along the way.
type Result struct {
	Output []byte
	Logs   []LogRecord
}
