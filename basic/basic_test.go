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


package basic_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2a03/basic"
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/test"
)

// a ROM that reads a character and then writes it, forever
func echoROM() []uint8 {
	rom := make([]uint8, 0x4000)
	entry := int(basic.EntryPoint - basic.ROMOrigin)
	copy(rom[entry:], []uint8{
		0x20, 0x10, 0xe2, // JSR $E210
		0x20, 0x16, 0xe2, // JSR $E216
		0x4c, 0x7a, 0xe0, // JMP $E07A
	})
	return rom
}

func TestEcho(t *testing.T) {
	out := &strings.Builder{}
	bas, err := basic.NewInterpreter(echoROM(), strings.NewReader("AB\n"), out)
	test.DemandSuccess(t, err)

	// the end of the input stops the interpreter without error
	test.ExpectSuccess(t, bas.Run(context.Background()))

	// every character is echoed by the input hook and then written again by
	// the program. line feeds are converted to carriage returns, which are
	// not printed
	test.ExpectEquality(t, out.String(), "AABB")
	test.ExpectEquality(t, bas.CPU.A.Value(), uint8(0x0d))
}

func TestBackspace(t *testing.T) {
	out := &strings.Builder{}
	bas, err := basic.NewInterpreter(echoROM(), strings.NewReader("A\x7f"), out)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bas.Run(context.Background()))
	test.ExpectEquality(t, out.String(), "AA\b \b\x7f")
}

func TestROMIsReadOnly(t *testing.T) {
	bas, err := basic.NewInterpreter(echoROM(), strings.NewReader(""), &strings.Builder{})
	test.DemandSuccess(t, err)

	bas.Mem.Write(basic.EntryPoint, 0xff)
	test.ExpectEquality(t, bas.Mem.Read(basic.EntryPoint), uint8(0x20))

	bas.Mem.Write(0x0200, 0xff)
	test.ExpectEquality(t, bas.Mem.Read(0x0200), uint8(0xff))
}

func TestInfiniteLoop(t *testing.T) {
	rom := make([]uint8, 0x4000)
	entry := int(basic.EntryPoint - basic.ROMOrigin)
	copy(rom[entry:], []uint8{0x4c, 0x7a, 0xe0}) // JMP $E07A

	bas, err := basic.NewInterpreter(rom, strings.NewReader(""), &strings.Builder{})
	test.DemandSuccess(t, err)

	err = bas.Run(context.Background())
	test.ExpectFailure(t, err)
	addr, ok := cpu.InfiniteLoopAddress(err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, addr, basic.EntryPoint)
	test.ExpectSuccess(t, curated.IsAny(err))
}

func TestEmptyROM(t *testing.T) {
	_, err := basic.NewInterpreter(nil, strings.NewReader(""), &strings.Builder{})
	test.ExpectFailure(t, err)
}
