// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/registers"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.String(), "sv-dizc")

	// unused bit is always set
	test.ExpectEquality(t, sr.Value(), 0x20)
	test.ExpectEquality(t, sr.ValueWithBreak(), 0x30)

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), 0x24)
	test.ExpectEquality(t, sr.String(), "sv-dIzc")

	// break and unused bits are ignored
	sr.FromValue(0xff)
	test.ExpectEquality(t, sr.String(), "SV-DIZC")
	test.ExpectEquality(t, sr.Value(), 0xef)

	sr.FromValue(0x10)
	test.ExpectEquality(t, sr.Value(), 0x20)
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0x01)
	test.ExpectEquality(t, sp.Address(), 0x0101)

	test.ExpectEquality(t, sp.Push(), 0x0101)
	test.ExpectEquality(t, sp.Push(), 0x0100)

	// wraps within page one
	test.ExpectEquality(t, sp.Value(), 0xff)
	test.ExpectEquality(t, sp.Address(), 0x01ff)

	test.ExpectEquality(t, sp.Pull(), 0x0100)
	test.ExpectEquality(t, sp.Pull(), 0x0101)

	sp.Load(0xff)
	test.ExpectEquality(t, sp.Pull(), 0x0100)
	test.ExpectEquality(t, sp.String(), "00")
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	pc.Load(127)
	test.ExpectEquality(t, pc.Address(), 127)
	test.ExpectFailure(t, pc.Add(2))
	test.ExpectEquality(t, pc.Address(), 129)

	// page crossing
	pc.Load(0x80fe)
	test.ExpectSuccess(t, pc.Add(2))
	test.ExpectEquality(t, pc.Address(), 0x8100)
	test.ExpectSuccess(t, pc.Add(-1))
	test.ExpectEquality(t, pc.Address(), 0x80ff)

	// wraps around address space
	pc.Load(0xffff)
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), 0x0000)
	test.ExpectEquality(t, pc.String(), "0000")
}
