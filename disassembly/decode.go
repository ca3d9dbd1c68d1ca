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

package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
)

// Decode the instruction at the address without executing it. Memory is
// accessed with the Peeker so there are no side effects.
//
// Bytes that do not form a valid opcode are decoded as an entry with the
// operator "???" and a single byte.
func Decode(mem Peeker, address addresses.Absolute) *Entry {
	e := &Entry{}
	e.Result.Address = address

	opcode := mem.Peek(address)
	defn := instructions.GetDefinitions()[opcode]
	if defn == nil {
		e.format(nil, 0)
		e.Bytecode = fmt.Sprintf("%02X", opcode)
		e.Result.ByteCount = 1
		return e
	}

	e.Result.Defn = defn
	e.Result.ByteCount = defn.Bytes

	switch defn.Bytes {
	case 3:
		lo := mem.Peek(addresses.Offset(address, 1))
		hi := mem.Peek(addresses.Offset(address, 2))
		e.Result.InstructionData = uint16(hi)<<8 | uint16(lo)
	case 2:
		e.Result.InstructionData = uint16(mem.Peek(addresses.Offset(address, 1)))
	}

	// the only effective address that can be known without executing the
	// instruction is the target of a branch
	if defn.AddressingMode == instructions.Relative {
		next := addresses.Offset(address, defn.Bytes)
		e.Result.EffectiveAddress = addresses.Offset(next, int(int8(e.Result.InstructionData)))
	}

	e.format(nil, 0)

	return e
}

// Listing writes the disassembly of count instructions starting at the
// address. Returns the address following the last instruction.
func Listing(w io.Writer, mem Peeker, address addresses.Absolute, count int) (addresses.Absolute, error) {
	for i := 0; i < count; i++ {
		e := Decode(mem, address)
		if _, err := io.WriteString(w, fmt.Sprintf("%s\n", e)); err != nil {
			return address, curated.Errorf("disassembly: %v", err)
		}
		address = addresses.Offset(address, e.Result.ByteCount)
	}
	return address, nil
}
