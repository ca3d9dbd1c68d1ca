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

package cpu

import (
	"context"
	"fmt"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/registers"
	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
	"github.com/jetsetilly/gopher2a03/hardware/memory/bus"
)

// Hook is a function that replaces a subroutine in the emulated program. The
// hook can change the state of the CPU, including memory, as it sees fit.
type Hook func(mc *CPU) error

// CPU implements the 2A03 as found in the NES. Register logic is implemented
// by the Register type in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// number of cycles since power on. the reset sequence takes seven cycles
	Cycles uint64

	// some operations only need an accumulator
	acc8 registers.Register

	mem          bus.CPUBus
	instructions []*instructions.Definition

	// the NMI latch. set by NMI() and cleared when the interrupt is serviced
	nmi bool

	// subroutine hooks keyed by the address of the subroutine
	hooks map[addresses.Absolute]Hook

	// traceCallback is called after the operands of an instruction have been
	// decoded but before the instruction has been executed
	traceCallback func(mc *CPU)

	// last result. only valid if LastResult.Final is true
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU should be Reset() before use.
func NewCPU(mem bus.CPUBus) *CPU {
	return &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: instructions.GetDefinitions(),
		hooks:        make(map[addresses.Absolute]Hook),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC with the RESET vector.
// Hooks and the trace callback are not affected.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.Cycles = 7
	mc.nmi = false
	mc.LoadPCIndirect(addresses.Reset)
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress addresses.Absolute) {
	mc.PC.Load(mc.read16Bit(indirectAddress))
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress addresses.Absolute) {
	mc.PC.Load(directAddress)
}

// NMI sets the non-maskable interrupt latch. The interrupt will be serviced
// at the start of the next instruction.
func (mc *CPU) NMI() {
	mc.nmi = true
}

// RegisterHook adds a hook for the subroutine at the specified address. Any
// existing hook for the address is replaced. A nil hook removes the hook.
func (mc *CPU) RegisterHook(address addresses.Absolute, hook Hook) {
	if hook == nil {
		delete(mc.hooks, address)
		return
	}
	mc.hooks[address] = hook
}

// SetTraceCallback sets the function to be called for every instruction. The
// function is called after the instruction has been decoded and before it
// has been executed. At that point LastResult contains the instruction
// definition, operand and effective address of the instruction and the
// registers and cycle count have not been changed by the instruction.
//
// The PC register has been advanced past the instruction however. Use the
// LastResult.Address field for the address of the instruction.
func (mc *CPU) SetTraceCallback(f func(mc *CPU)) {
	mc.traceCallback = f
}

// Peek returns the value at the address without side effects, if the memory
// bus supports it. Otherwise, the value is read normally.
func (mc *CPU) Peek(address addresses.Absolute) uint8 {
	if dbg, ok := mc.mem.(bus.DebugBus); ok {
		return dbg.Peek(address)
	}
	return mc.mem.Read(address)
}

// Read returns the value at the address. Useful for hooks.
func (mc *CPU) Read(address addresses.Absolute) uint8 {
	return mc.mem.Read(address)
}

// Write the value to the address. Useful for hooks.
func (mc *CPU) Write(address addresses.Absolute, data uint8) {
	mc.mem.Write(address, data)
}

// read16Bit returns the 16bit value at the specified address. the address of
// the high byte wraps around the address space
func (mc *CPU) read16Bit(address addresses.Absolute) addresses.Absolute {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(addresses.Inc(address))
	return addresses.Absolute(uint16(hi)<<8 | uint16(lo))
}

// read16BitSamePage returns the 16bit value at the specified address. the
// address of the high byte wraps around the page of the low byte
func (mc *CPU) read16BitSamePage(address addresses.SamePage) addresses.Absolute {
	lo := mc.mem.Read(address.Absolute())
	hi := mc.mem.Read(addresses.Inc(address).Absolute())
	return addresses.Absolute(uint16(hi)<<8 | uint16(lo))
}

func (mc *CPU) push(data uint8) {
	mc.mem.Write(mc.SP.Push(), data)
}

func (mc *CPU) push16Bit(address addresses.Absolute) {
	mc.push(address.Page())
	mc.push(address.Lo())
}

func (mc *CPU) pull() uint8 {
	return mc.mem.Read(mc.SP.Pull())
}

func (mc *CPU) pull16Bit() addresses.Absolute {
	lo := mc.pull()
	hi := mc.pull()
	return addresses.Absolute(uint16(hi)<<8 | uint16(lo))
}

// interrupt pushes the PC and the status register and then loads the PC with
// the interrupt vector
func (mc *CPU) interrupt(vector addresses.Absolute, status uint8) {
	mc.push16Bit(mc.PC.Address())
	mc.push(status)
	mc.Status.InterruptDisable = true
	mc.LoadPCIndirect(vector)
}

// Run steps the CPU until the context is cancelled, an error occurs or the
// continueCheck function returns false. The continueCheck function is called
// after every instruction and can be nil. Cancellation is checked between
// instructions.
//
// A cancelled context is not an error.
func (mc *CPU) Run(ctx context.Context, continueCheck func(mc *CPU) bool) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if _, err := mc.Step(); err != nil {
			return err
		}

		if continueCheck != nil && !continueCheck(mc) {
			return nil
		}
	}
}

// Step executes the next instruction. The basic process when executing an
// instruction is this:
//
//  1. service a pending NMI
//  2. read opcode and look up instruction definition
//  3. read operands (if any) and advance the PC past the instruction
//  4. compute the effective address according to the addressing mode
//  5. using the operator as a guide, perform the instruction on the data
//
// The number of cycles taken by the instruction, including the cycles of any
// serviced NMI, is returned. The same value is in LastResult.Cycles.
func (mc *CPU) Step() (int, error) {
	mc.LastResult.Reset()

	if mc.nmi {
		mc.nmi = false
		mc.interrupt(addresses.NMI, mc.Status.Value())
		mc.LastResult.NMI = true
		mc.LastResult.Cycles += 7
		mc.Cycles += 7
	}

	mc.LastResult.Address = mc.PC.Address()

	// read next instruction
	opcode := mc.mem.Read(mc.PC.Address())
	defn := mc.instructions[opcode]
	if defn == nil {
		mc.LastResult.ByteCount = 1
		mc.LastResult.Final = true
		return mc.LastResult.Cycles, curated.Errorf(IllegalOpcode, opcode, uint16(mc.LastResult.Address))
	}
	mc.LastResult.Defn = defn

	// read operand
	switch defn.Bytes {
	case 2:
		mc.LastResult.InstructionData = uint16(mc.mem.Read(addresses.Inc(mc.LastResult.Address)))
	case 3:
		mc.LastResult.InstructionData = uint16(mc.read16Bit(addresses.Inc(mc.LastResult.Address)))
	}
	mc.LastResult.ByteCount = defn.Bytes

	// advance PC past the instruction
	mc.PC.Add(defn.Bytes)

	// address is the actual address to use to access memory (after any indexing
	// has taken place)
	var address addresses.Absolute

	// value is read from the program for immediate mode and from memory for
	// all other modes that read memory
	var value uint8

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		// no operand

	case instructions.Immediate:
		value = uint8(mc.LastResult.InstructionData)

	case instructions.Relative:
		// the branch target. the offset is a signed value
		address = addresses.Offset(mc.PC.Address(), int(int8(mc.LastResult.InstructionData)))

	case instructions.Absolute:
		address = addresses.Absolute(mc.LastResult.InstructionData)

	case instructions.ZeroPage:
		address = addresses.ZeroPage(uint8(mc.LastResult.InstructionData)).Absolute()

	case instructions.ZeroPageIndexedX:
		// indexing wraps within the zero page
		zp := addresses.ZeroPage(uint8(mc.LastResult.InstructionData))
		address = addresses.Offset(zp, int(mc.X.Value())).Absolute()

	case instructions.ZeroPageIndexedY:
		zp := addresses.ZeroPage(uint8(mc.LastResult.InstructionData))
		address = addresses.Offset(zp, int(mc.Y.Value())).Absolute()

	case instructions.AbsoluteIndexedX:
		base := addresses.Absolute(mc.LastResult.InstructionData)
		address = addresses.Offset(base, int(mc.X.Value()))
		mc.LastResult.PageFault = defn.PageSensitive && base.Page() != address.Page()

	case instructions.AbsoluteIndexedY:
		base := addresses.Absolute(mc.LastResult.InstructionData)
		address = addresses.Offset(base, int(mc.Y.Value()))
		mc.LastResult.PageFault = defn.PageSensitive && base.Page() != address.Page()

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP
		// command. the high byte of the pointer is read from the same page
		// as the low byte. this is the JMP bug
		ptr := addresses.SamePage(mc.LastResult.InstructionData)
		if ptr&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.IndirectJMPBug
		}
		address = mc.read16BitSamePage(ptr)

	case instructions.IndexedIndirect:
		// the pointer and the pointer index wrap within the zero page
		zp := addresses.Offset(addresses.ZeroPage(uint8(mc.LastResult.InstructionData)), int(mc.X.Value()))
		address = mc.read16BitSamePage(zp.SamePage())

	case instructions.IndirectIndexed:
		zp := addresses.ZeroPage(uint8(mc.LastResult.InstructionData))
		base := mc.read16BitSamePage(zp.SamePage())
		address = addresses.Offset(base, int(mc.Y.Value()))
		mc.LastResult.PageFault = defn.PageSensitive && base.Page() != address.Page()
	}

	mc.LastResult.EffectiveAddress = address

	if mc.traceCallback != nil {
		mc.traceCallback(mc)
	}

	// read value from memory using the address found above
	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator, instructions.Immediate, instructions.Relative:
	default:
		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			value = mc.mem.Read(address)
		}
	}

	err := mc.execute(defn, address, value)

	// add base cycles and any page fault penalty. branch penalties have
	// already been added
	mc.LastResult.Cycles += defn.Cycles
	if defn.PageSensitive && mc.LastResult.PageFault {
		mc.LastResult.Cycles++
	}
	mc.Cycles += uint64(mc.LastResult.Cycles)
	mc.LastResult.Final = true

	if err != nil {
		return mc.LastResult.Cycles, err
	}

	// an instruction that jumps to itself will never exit
	if mc.PC.Address() == mc.LastResult.Address {
		return mc.LastResult.Cycles, curated.Errorf(InfiniteLoop, uint16(mc.LastResult.Address))
	}

	return mc.LastResult.Cycles, nil
}

// rmwRegister returns the register to be used by a read-modify-write
// instruction. for accumulator addressing this is the A register
func (mc *CPU) rmwRegister(defn *instructions.Definition, value uint8) *registers.Register {
	if defn.AddressingMode == instructions.Accumulator {
		return &mc.A
	}
	mc.acc8.Load(value)
	return &mc.acc8
}

// rmwStore writes the result of a read-modify-write instruction back to
// memory. does nothing for accumulator addressing
func (mc *CPU) rmwStore(defn *instructions.Definition, address addresses.Absolute) {
	if defn.AddressingMode != instructions.Accumulator {
		mc.mem.Write(address, mc.acc8.Value())
	}
}

func (mc *CPU) setZN(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

func (mc *CPU) compare(r registers.Register, value uint8) {
	carry, res := r.Compare(value)
	mc.Status.Carry = carry
	mc.Status.Zero = res == 0
	mc.Status.Sign = res&0x80 == 0x80
}

func (mc *CPU) adc(value uint8) {
	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
	mc.setZN(mc.A)
}

func (mc *CPU) sbc(value uint8) {
	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
	mc.setZN(mc.A)
}

// branch to the address if flag is true
func (mc *CPU) branch(flag bool, address addresses.Absolute) {
	mc.LastResult.BranchSuccess = flag
	if !flag {
		return
	}

	// +1 cycle for the branch and another if the branch crosses a page
	mc.LastResult.Cycles++
	mc.LastResult.PageFault = mc.PC.Address().Page() != address.Page()
	if mc.LastResult.PageFault {
		mc.LastResult.Cycles++
	}

	mc.PC.Load(address)
}

// execute performs the operation of the instruction
func (mc *CPU) execute(defn *instructions.Definition, address addresses.Absolute, value uint8) error {
	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		mc.push(mc.A.Value())

	case instructions.Pla:
		mc.A.Load(mc.pull())
		mc.setZN(mc.A)

	case instructions.Php:
		mc.push(mc.Status.ValueWithBreak())

	case instructions.Plp:
		mc.Status.FromValue(mc.pull())

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A)

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X)

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y)

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A)

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X)

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())

	case instructions.Eor:
		mc.A.EOR(value)
		mc.setZN(mc.A)

	case instructions.Ora:
		mc.A.ORA(value)
		mc.setZN(mc.A)

	case instructions.And:
		mc.A.AND(value)
		mc.setZN(mc.A)

	case instructions.Lda:
		mc.A.Load(value)
		mc.setZN(mc.A)

	case instructions.Ldx:
		mc.X.Load(value)
		mc.setZN(mc.X)

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setZN(mc.Y)

	case instructions.Sta:
		mc.mem.Write(address, mc.A.Value())

	case instructions.Stx:
		mc.mem.Write(address, mc.X.Value())

	case instructions.Sty:
		mc.mem.Write(address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Increment()
		mc.setZN(mc.X)

	case instructions.Iny:
		mc.Y.Increment()
		mc.setZN(mc.Y)

	case instructions.Dex:
		mc.X.Decrement()
		mc.setZN(mc.X)

	case instructions.Dey:
		mc.Y.Decrement()
		mc.setZN(mc.Y)

	case instructions.Asl:
		r := mc.rmwRegister(defn, value)
		mc.Status.Carry = r.ASL()
		mc.setZN(*r)
		mc.rmwStore(defn, address)

	case instructions.Lsr:
		r := mc.rmwRegister(defn, value)
		mc.Status.Carry = r.LSR()
		mc.setZN(*r)
		mc.rmwStore(defn, address)

	case instructions.Rol:
		r := mc.rmwRegister(defn, value)
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.setZN(*r)
		mc.rmwStore(defn, address)

	case instructions.Ror:
		r := mc.rmwRegister(defn, value)
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.setZN(*r)
		mc.rmwStore(defn, address)

	case instructions.Inc:
		mc.acc8.Load(value)
		mc.acc8.Increment()
		mc.setZN(mc.acc8)
		mc.mem.Write(address, mc.acc8.Value())

	case instructions.Dec:
		mc.acc8.Load(value)
		mc.acc8.Decrement()
		mc.setZN(mc.acc8)
		mc.mem.Write(address, mc.acc8.Value())

	case instructions.Adc:
		mc.adc(value)

	case instructions.Sbc:
		mc.sbc(value)

	case instructions.Cmp:
		mc.compare(mc.A, value)

	case instructions.Cpx:
		mc.compare(mc.X, value)

	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		mc.acc8.Load(value)
		mc.Status.Sign = mc.acc8.IsNegative()
		mc.Status.Overflow = mc.acc8.IsBitV()
		mc.acc8.AND(mc.A.Value())
		mc.Status.Zero = mc.acc8.IsZero()

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, address)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, address)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, address)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, address)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, address)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, address)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, address)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, address)

	case instructions.Jsr:
		// a hooked subroutine does not touch the stack or the PC
		if hook, ok := mc.hooks[address]; ok {
			if err := hook(mc); err != nil {
				return curated.Errorf("cpu: %v", err)
			}
			return nil
		}

		// the address pushed onto the stack is the address of the last byte
		// of the JSR instruction
		mc.push16Bit(addresses.Dec(mc.PC.Address()))
		mc.PC.Load(address)

	case instructions.Rts:
		mc.PC.Load(addresses.Inc(mc.pull16Bit()))

	case instructions.Brk:
		// BRK is a two byte instruction despite the implied addressing mode.
		// the second byte is skipped
		mc.PC.Add(1)
		mc.interrupt(addresses.IRQ, mc.Status.ValueWithBreak())

	case instructions.Rti:
		mc.Status.FromValue(mc.pull())
		mc.PC.Load(mc.pull16Bit())

	// unofficial instructions
	case instructions.Lax:
		mc.A.Load(value)
		mc.X.Load(value)
		mc.setZN(mc.A)

	case instructions.Sax:
		mc.acc8.Load(mc.A.Value())
		mc.acc8.AND(mc.X.Value())
		mc.mem.Write(address, mc.acc8.Value())

	case instructions.Dcp:
		mc.acc8.Load(value)
		mc.acc8.Decrement()
		mc.mem.Write(address, mc.acc8.Value())
		mc.compare(mc.A, mc.acc8.Value())

	case instructions.Isb:
		mc.acc8.Load(value)
		mc.acc8.Increment()
		mc.mem.Write(address, mc.acc8.Value())
		mc.sbc(mc.acc8.Value())

	case instructions.Slo:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ASL()
		mc.mem.Write(address, mc.acc8.Value())
		mc.A.ORA(mc.acc8.Value())
		mc.setZN(mc.A)

	case instructions.Rla:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROL(mc.Status.Carry)
		mc.mem.Write(address, mc.acc8.Value())
		mc.A.AND(mc.acc8.Value())
		mc.setZN(mc.A)

	case instructions.Sre:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.LSR()
		mc.mem.Write(address, mc.acc8.Value())
		mc.A.EOR(mc.acc8.Value())
		mc.setZN(mc.A)

	case instructions.Rra:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROR(mc.Status.Carry)
		mc.mem.Write(address, mc.acc8.Value())
		mc.adc(mc.acc8.Value())

	case instructions.Anc:
		mc.A.AND(value)
		mc.setZN(mc.A)
		mc.Status.Carry = mc.A.IsNegative()

	case instructions.Alr:
		mc.A.AND(value)
		mc.Status.Carry = mc.A.LSR()
		mc.setZN(mc.A)

	default:
		return curated.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	return nil
}
