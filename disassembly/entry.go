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
	"strings"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
)

// Peeker is the memory access required to decorate operands with the values
// found in memory.
type Peeker interface {
	Peek(address addresses.Absolute) uint8
}

// Entry is a disassembled instruction. The fields are string representations
// of the information in the execution.Result.
type Entry struct {
	Result execution.Result

	Address  string
	Bytecode string

	// the mnemonic of the instruction. prefixed with a space for official
	// instructions and an asterisk for unofficial instructions
	Operator string

	Operand string

	// register snapshot and cycle count. only set for entries created with
	// FormatResult()
	Registers string
	Cycles    uint64
}

// String returns the entry in the nestest.log format.
func (e *Entry) String() string {
	s := fmt.Sprintf("%s  %-9s%-31s", e.Address, e.Bytecode, fmt.Sprintf("%s %s", e.Operator, e.Operand))
	if e.Registers == "" {
		return strings.TrimRight(s, " ")
	}
	return fmt.Sprintf("%s  %s CYC:%d", s, e.Registers, e.Cycles)
}

// Notes returns a string describing the most recent execution. The
// information is made up of the BranchSuccess, PageFault and CPUBug fields.
func (e *Entry) Notes() string {
	if !e.Result.Final {
		return ""
	}

	s := strings.Builder{}

	if e.Result.NMI {
		s.WriteString("after NMI ")
	}

	if e.Result.Defn != nil && e.Result.Defn.IsBranch() {
		if e.Result.BranchSuccess {
			s.WriteString("branch succeeded ")
		} else {
			s.WriteString("branch failed ")
		}

		if e.Result.PageFault {
			s.WriteString("with page-fault ")
		}
	} else {
		if e.Result.PageFault {
			s.WriteString("page-fault ")
		}
	}

	if e.Result.CPUBug != "" {
		s.WriteString(e.Result.CPUBug)
	}

	return strings.TrimSpace(s.String())
}

// format the address, bytecode, operator and operand fields of the entry.
//
// values from memory are read with the peeker, which can be nil. the operand
// will not include memory values or effective addresses in that case. the x
// argument is the value of the X register before the instruction is executed
func (e *Entry) format(mem Peeker, x uint8) {
	defn := e.Result.Defn

	e.Address = fmt.Sprintf("%04X", uint16(e.Result.Address))

	if defn == nil {
		e.Operator = "???"
		return
	}

	lo := uint8(e.Result.InstructionData)
	hi := uint8(e.Result.InstructionData >> 8)

	switch defn.Bytes {
	case 3:
		e.Bytecode = fmt.Sprintf("%02X %02X %02X", defn.OpCode, lo, hi)
	case 2:
		e.Bytecode = fmt.Sprintf("%02X %02X", defn.OpCode, lo)
	default:
		e.Bytecode = fmt.Sprintf("%02X", defn.OpCode)
	}

	if defn.Unofficial {
		e.Operator = fmt.Sprintf("*%s", defn.Mnemonic)
	} else {
		e.Operator = fmt.Sprintf(" %s", defn.Mnemonic)
	}

	if mem == nil {
		e.Operand = staticOperand(e.Result)
	} else {
		e.Operand = operand(e.Result, mem, x)
	}
}

// pointer returns the 16bit value at the address in the zero page. the high
// byte wraps around the zero page
func pointer(mem Peeker, zp uint8) uint16 {
	lo := mem.Peek(addresses.ZeroPage(zp).Absolute())
	hi := mem.Peek(addresses.Inc(addresses.ZeroPage(zp)).Absolute())
	return uint16(hi)<<8 | uint16(lo)
}

// operand returns the operand decorated according to the addressing mode,
// with effective addresses and the values found in memory
func operand(result execution.Result, mem Peeker, x uint8) string {
	defn := result.Defn
	data := result.InstructionData
	ea := result.EffectiveAddress
	v := mem.Peek(ea)

	switch defn.AddressingMode {
	case instructions.Implied:
		return ""

	case instructions.Accumulator:
		return "A"

	case instructions.Immediate:
		return fmt.Sprintf("#$%02X", data)

	case instructions.Relative:
		return fmt.Sprintf("$%04X", uint16(ea))

	case instructions.Absolute:
		if defn.Effect == instructions.Flow || defn.Effect == instructions.Subroutine {
			return fmt.Sprintf("$%04X", data)
		}
		return fmt.Sprintf("$%04X = %02X", data, v)

	case instructions.ZeroPage:
		return fmt.Sprintf("$%02X = %02X", data, v)

	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02X,X @ %02X = %02X", data, uint8(ea), v)

	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02X,Y @ %02X = %02X", data, uint8(ea), v)

	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04X,X @ %04X = %02X", data, uint16(ea), v)

	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04X,Y @ %04X = %02X", data, uint16(ea), v)

	case instructions.Indirect:
		return fmt.Sprintf("($%04X) = %04X", data, uint16(ea))

	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", data, uint8(data)+x, uint16(ea), v)

	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", data, pointer(mem, uint8(data)), uint16(ea), v)
	}

	return ""
}

// staticOperand returns the operand decorated according to the addressing
// mode. only the information in the instruction itself is used
func staticOperand(result execution.Result) string {
	data := result.InstructionData

	switch result.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02X", data)
	case instructions.Relative:
		return fmt.Sprintf("$%04X", uint16(result.EffectiveAddress))
	case instructions.Absolute:
		return fmt.Sprintf("$%04X", data)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02X", data)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02X,X", data)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02X,Y", data)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04X,X", data)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04X,Y", data)
	case instructions.Indirect:
		return fmt.Sprintf("($%04X)", data)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02X,X)", data)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02X),Y", data)
	}

	return ""
}
