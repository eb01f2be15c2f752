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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgramCounter(t *testing.T) {
	var pc ProgramCounter
	require.Equal(t, 0, pc.Get())

	pc.IncrementBy(3)
	require.Equal(t, 3, pc.Get())

	pc.SetExact(42)
	require.Equal(t, 42, pc.Get())

	require.Contains(t, pc.String(), "42")
}
