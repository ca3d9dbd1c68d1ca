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

package instructions

import "fmt"

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// the following three effects have a variable effect on the program
	// counter, depending on the instruction's precise operand.

	// flow consists of the Branch and JMP instructions. Branch instructions
	// specifically can be distinguished by the AddressingMode.
	Flow

	Subroutine
	Interrupt
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory

	// the instruction is not part of the documented instruction set
	Unofficial bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s unofficial=%t]",
		defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.AddressingMode,
		defn.PageSensitive, defn.Effect, defn.Unofficial)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// the definition table. built once by the init() function
var definitions [256]*Definition

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode. Opcodes without a definition are nil. The returned slice should not
// be modified.
func GetDefinitions() []*Definition {
	return definitions[:]
}

func define(opcode uint8, operator Operator, mode AddressingMode, cycles int, pageSensitive bool, unofficial bool) {
	if definitions[opcode] != nil {
		panic(fmt.Sprintf("instructions: opcode %02x defined twice", opcode))
	}
	definitions[opcode] = &Definition{
		OpCode:         opcode,
		Mnemonic:       operator.String(),
		Operator:       operator,
		Bytes:          1 + mode.OperandBytes(),
		Cycles:         cycles,
		AddressingMode: mode,
		PageSensitive:  pageSensitive,
		Effect:         operator.effect(),
		Unofficial:     unofficial,
	}
}

// official instruction
func o(opcode uint8, operator Operator, mode AddressingMode, cycles int) {
	define(opcode, operator, mode, cycles, false, false)
}

// official instruction that takes an extra cycle if a page boundary is crossed
func op(opcode uint8, operator Operator, mode AddressingMode, cycles int) {
	define(opcode, operator, mode, cycles, true, false)
}

// unofficial instruction
func u(opcode uint8, operator Operator, mode AddressingMode, cycles int) {
	define(opcode, operator, mode, cycles, false, true)
}

// unofficial instruction that takes an extra cycle if a page boundary is
// crossed
func up(opcode uint8, operator Operator, mode AddressingMode, cycles int) {
	define(opcode, operator, mode, cycles, true, true)
}

func init() {
	// load and store
	o(0xa9, Lda, Immediate, 2)
	o(0xa5, Lda, ZeroPage, 3)
	o(0xb5, Lda, ZeroPageIndexedX, 4)
	o(0xad, Lda, Absolute, 4)
	op(0xbd, Lda, AbsoluteIndexedX, 4)
	op(0xb9, Lda, AbsoluteIndexedY, 4)
	o(0xa1, Lda, IndexedIndirect, 6)
	op(0xb1, Lda, IndirectIndexed, 5)

	o(0xa2, Ldx, Immediate, 2)
	o(0xa6, Ldx, ZeroPage, 3)
	o(0xb6, Ldx, ZeroPageIndexedY, 4)
	o(0xae, Ldx, Absolute, 4)
	op(0xbe, Ldx, AbsoluteIndexedY, 4)

	o(0xa0, Ldy, Immediate, 2)
	o(0xa4, Ldy, ZeroPage, 3)
	o(0xb4, Ldy, ZeroPageIndexedX, 4)
	o(0xac, Ldy, Absolute, 4)
	op(0xbc, Ldy, AbsoluteIndexedX, 4)

	o(0x85, Sta, ZeroPage, 3)
	o(0x95, Sta, ZeroPageIndexedX, 4)
	o(0x8d, Sta, Absolute, 4)
	o(0x9d, Sta, AbsoluteIndexedX, 5)
	o(0x99, Sta, AbsoluteIndexedY, 5)
	o(0x81, Sta, IndexedIndirect, 6)
	o(0x91, Sta, IndirectIndexed, 6)

	o(0x86, Stx, ZeroPage, 3)
	o(0x96, Stx, ZeroPageIndexedY, 4)
	o(0x8e, Stx, Absolute, 4)

	o(0x84, Sty, ZeroPage, 3)
	o(0x94, Sty, ZeroPageIndexedX, 4)
	o(0x8c, Sty, Absolute, 4)

	// register transfer
	o(0xaa, Tax, Implied, 2)
	o(0xa8, Tay, Implied, 2)
	o(0x8a, Txa, Implied, 2)
	o(0x98, Tya, Implied, 2)
	o(0xba, Tsx, Implied, 2)
	o(0x9a, Txs, Implied, 2)

	// stack
	o(0x48, Pha, Implied, 3)
	o(0x08, Php, Implied, 3)
	o(0x68, Pla, Implied, 4)
	o(0x28, Plp, Implied, 4)

	// arithmetic
	o(0x69, Adc, Immediate, 2)
	o(0x65, Adc, ZeroPage, 3)
	o(0x75, Adc, ZeroPageIndexedX, 4)
	o(0x6d, Adc, Absolute, 4)
	op(0x7d, Adc, AbsoluteIndexedX, 4)
	op(0x79, Adc, AbsoluteIndexedY, 4)
	o(0x61, Adc, IndexedIndirect, 6)
	op(0x71, Adc, IndirectIndexed, 5)

	o(0xe9, Sbc, Immediate, 2)
	o(0xe5, Sbc, ZeroPage, 3)
	o(0xf5, Sbc, ZeroPageIndexedX, 4)
	o(0xed, Sbc, Absolute, 4)
	op(0xfd, Sbc, AbsoluteIndexedX, 4)
	op(0xf9, Sbc, AbsoluteIndexedY, 4)
	o(0xe1, Sbc, IndexedIndirect, 6)
	op(0xf1, Sbc, IndirectIndexed, 5)

	// compare
	o(0xc9, Cmp, Immediate, 2)
	o(0xc5, Cmp, ZeroPage, 3)
	o(0xd5, Cmp, ZeroPageIndexedX, 4)
	o(0xcd, Cmp, Absolute, 4)
	op(0xdd, Cmp, AbsoluteIndexedX, 4)
	op(0xd9, Cmp, AbsoluteIndexedY, 4)
	o(0xc1, Cmp, IndexedIndirect, 6)
	op(0xd1, Cmp, IndirectIndexed, 5)

	o(0xe0, Cpx, Immediate, 2)
	o(0xe4, Cpx, ZeroPage, 3)
	o(0xec, Cpx, Absolute, 4)

	o(0xc0, Cpy, Immediate, 2)
	o(0xc4, Cpy, ZeroPage, 3)
	o(0xcc, Cpy, Absolute, 4)

	// increment and decrement
	o(0xe6, Inc, ZeroPage, 5)
	o(0xf6, Inc, ZeroPageIndexedX, 6)
	o(0xee, Inc, Absolute, 6)
	o(0xfe, Inc, AbsoluteIndexedX, 7)

	o(0xc6, Dec, ZeroPage, 5)
	o(0xd6, Dec, ZeroPageIndexedX, 6)
	o(0xce, Dec, Absolute, 6)
	o(0xde, Dec, AbsoluteIndexedX, 7)

	o(0xe8, Inx, Implied, 2)
	o(0xc8, Iny, Implied, 2)
	o(0xca, Dex, Implied, 2)
	o(0x88, Dey, Implied, 2)

	// logical
	o(0x29, And, Immediate, 2)
	o(0x25, And, ZeroPage, 3)
	o(0x35, And, ZeroPageIndexedX, 4)
	o(0x2d, And, Absolute, 4)
	op(0x3d, And, AbsoluteIndexedX, 4)
	op(0x39, And, AbsoluteIndexedY, 4)
	o(0x21, And, IndexedIndirect, 6)
	op(0x31, And, IndirectIndexed, 5)

	o(0x49, Eor, Immediate, 2)
	o(0x45, Eor, ZeroPage, 3)
	o(0x55, Eor, ZeroPageIndexedX, 4)
	o(0x4d, Eor, Absolute, 4)
	op(0x5d, Eor, AbsoluteIndexedX, 4)
	op(0x59, Eor, AbsoluteIndexedY, 4)
	o(0x41, Eor, IndexedIndirect, 6)
	op(0x51, Eor, IndirectIndexed, 5)

	o(0x09, Ora, Immediate, 2)
	o(0x05, Ora, ZeroPage, 3)
	o(0x15, Ora, ZeroPageIndexedX, 4)
	o(0x0d, Ora, Absolute, 4)
	op(0x1d, Ora, AbsoluteIndexedX, 4)
	op(0x19, Ora, AbsoluteIndexedY, 4)
	o(0x01, Ora, IndexedIndirect, 6)
	op(0x11, Ora, IndirectIndexed, 5)

	o(0x24, Bit, ZeroPage, 3)
	o(0x2c, Bit, Absolute, 4)

	// shifts and rotates
	o(0x0a, Asl, Accumulator, 2)
	o(0x06, Asl, ZeroPage, 5)
	o(0x16, Asl, ZeroPageIndexedX, 6)
	o(0x0e, Asl, Absolute, 6)
	o(0x1e, Asl, AbsoluteIndexedX, 7)

	o(0x4a, Lsr, Accumulator, 2)
	o(0x46, Lsr, ZeroPage, 5)
	o(0x56, Lsr, ZeroPageIndexedX, 6)
	o(0x4e, Lsr, Absolute, 6)
	o(0x5e, Lsr, AbsoluteIndexedX, 7)

	o(0x2a, Rol, Accumulator, 2)
	o(0x26, Rol, ZeroPage, 5)
	o(0x36, Rol, ZeroPageIndexedX, 6)
	o(0x2e, Rol, Absolute, 6)
	o(0x3e, Rol, AbsoluteIndexedX, 7)

	o(0x6a, Ror, Accumulator, 2)
	o(0x66, Ror, ZeroPage, 5)
	o(0x76, Ror, ZeroPageIndexedX, 6)
	o(0x6e, Ror, Absolute, 6)
	o(0x7e, Ror, AbsoluteIndexedX, 7)

	// jumps and calls
	o(0x4c, Jmp, Absolute, 3)
	o(0x6c, Jmp, Indirect, 5)
	o(0x20, Jsr, Absolute, 6)
	o(0x60, Rts, Implied, 6)

	// branches. cycles are for the branch not taken
	o(0x90, Bcc, Relative, 2)
	o(0xb0, Bcs, Relative, 2)
	o(0xf0, Beq, Relative, 2)
	o(0x30, Bmi, Relative, 2)
	o(0xd0, Bne, Relative, 2)
	o(0x10, Bpl, Relative, 2)
	o(0x50, Bvc, Relative, 2)
	o(0x70, Bvs, Relative, 2)

	// status flags
	o(0x18, Clc, Implied, 2)
	o(0xd8, Cld, Implied, 2)
	o(0x58, Cli, Implied, 2)
	o(0xb8, Clv, Implied, 2)
	o(0x38, Sec, Implied, 2)
	o(0xf8, Sed, Implied, 2)
	o(0x78, Sei, Implied, 2)

	// system
	o(0x00, Brk, Implied, 7)
	o(0x40, Rti, Implied, 6)
	o(0xea, Nop, Implied, 2)

	// unofficial no-operations
	for _, opcode := range []uint8{0x1a, 0x3a, 0x5a, 0x7a, 0xda, 0xfa} {
		u(opcode, Nop, Implied, 2)
	}
	for _, opcode := range []uint8{0x80, 0x82, 0x89, 0xc2, 0xe2} {
		u(opcode, Nop, Immediate, 2)
	}
	for _, opcode := range []uint8{0x04, 0x44, 0x64} {
		u(opcode, Nop, ZeroPage, 3)
	}
	for _, opcode := range []uint8{0x14, 0x34, 0x54, 0x74, 0xd4, 0xf4} {
		u(opcode, Nop, ZeroPageIndexedX, 4)
	}
	u(0x0c, Nop, Absolute, 4)
	for _, opcode := range []uint8{0x1c, 0x3c, 0x5c, 0x7c, 0xdc, 0xfc} {
		up(opcode, Nop, AbsoluteIndexedX, 4)
	}

	// unofficial load and store
	u(0xa7, Lax, ZeroPage, 3)
	u(0xb7, Lax, ZeroPageIndexedY, 4)
	u(0xaf, Lax, Absolute, 4)
	up(0xbf, Lax, AbsoluteIndexedY, 4)
	u(0xa3, Lax, IndexedIndirect, 6)
	up(0xb3, Lax, IndirectIndexed, 5)

	u(0x87, Sax, ZeroPage, 3)
	u(0x97, Sax, ZeroPageIndexedY, 4)
	u(0x8f, Sax, Absolute, 4)
	u(0x83, Sax, IndexedIndirect, 6)

	// unofficial immediate operations
	u(0xeb, Sbc, Immediate, 2)
	u(0x0b, Anc, Immediate, 2)
	u(0x2b, Anc, Immediate, 2)
	u(0x4b, Alr, Immediate, 2)

	// unofficial read-modify-write operations. the opcodes of each operator
	// follow the same pattern
	for _, rmw := range []struct {
		base     uint8
		operator Operator
	}{
		{base: 0x00, operator: Slo},
		{base: 0x20, operator: Rla},
		{base: 0x40, operator: Sre},
		{base: 0x60, operator: Rra},
		{base: 0xc0, operator: Dcp},
		{base: 0xe0, operator: Isb},
	} {
		u(rmw.base|0x03, rmw.operator, IndexedIndirect, 8)
		u(rmw.base|0x07, rmw.operator, ZeroPage, 5)
		u(rmw.base|0x0f, rmw.operator, Absolute, 6)
		u(rmw.base|0x13, rmw.operator, IndirectIndexed, 8)
		u(rmw.base|0x17, rmw.operator, ZeroPageIndexedX, 6)
		u(rmw.base|0x1b, rmw.operator, AbsoluteIndexedY, 7)
		u(rmw.base|0x1f, rmw.operator, AbsoluteIndexedX, 7)
	}
}
