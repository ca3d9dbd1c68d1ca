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

package cpu_test

import (
	"context"
	"testing"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
	"github.com/jetsetilly/gopher2a03/test"
)

const origin = 0x0200

// newCPU creates a CPU in flat memory with the program loaded at the origin.
// the reset vector points to the origin
func newCPU(t *testing.T, program ...uint8) (*cpu.CPU, *memory.FlatMemory) {
	t.Helper()

	mem := memory.NewFlatMemory(0x10000)
	test.DemandSuccess(t, mem.Load(origin, program))
	test.DemandSuccess(t, mem.Load(addresses.Reset, []uint8{origin & 0xff, origin >> 8}))

	mc := cpu.NewCPU(mem)
	mc.Reset()
	return mc, mem
}

// step the CPU and check that the instruction took the expected number of
// cycles and that the result is consistent
func step(t *testing.T, mc *cpu.CPU, expectedCycles int) {
	t.Helper()

	cycles, err := mc.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cycles, expectedCycles, mc.LastResult.String())
	test.ExpectSuccess(t, mc.LastResult.IsValid())
}

func TestReset(t *testing.T) {
	mc, _ := newCPU(t)

	test.ExpectEquality(t, mc.PC.Address(), addresses.Absolute(origin))
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.X.Value(), 0)
	test.ExpectEquality(t, mc.Y.Value(), 0)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.Value(), 0x24)
	test.ExpectEquality(t, mc.Cycles, 7)
}

func TestLoadStore(t *testing.T) {
	mc, mem := newCPU(t,
		0xa9, 0x80, // LDA #$80
		0x85, 0x10, // STA $10
		0xa6, 0x10, // LDX $10
		0xa0, 0x00, // LDY #$00
		0x8c, 0x00, 0x03, // STY $0300
		0x86, 0x11, // STX $11
	)

	step(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectSuccess(t, mc.Status.Sign)
	test.ExpectFailure(t, mc.Status.Zero)

	step(t, mc, 3)
	test.ExpectEquality(t, mem.Peek(0x10), 0x80)

	step(t, mc, 3)
	test.ExpectEquality(t, mc.X.Value(), 0x80)

	step(t, mc, 2)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Sign)

	step(t, mc, 4)
	test.ExpectEquality(t, mem.Peek(0x0300), 0x00)

	step(t, mc, 3)
	test.ExpectEquality(t, mem.Peek(0x11), 0x80)

	test.ExpectEquality(t, mc.Cycles, 7+2+3+3+2+4+3)
}

func TestPageFault(t *testing.T) {
	mc, mem := newCPU(t,
		0xa2, 0x01, // LDX #$01
		0xbd, 0x00, 0x10, // LDA $1000,X
		0xbd, 0xff, 0x10, // LDA $10FF,X
		0x9d, 0xff, 0x10, // STA $10FF,X
		0xa0, 0x10, // LDY #$10
		0xb1, 0x20, // LDA ($20),Y
	)
	mem.Write(0x1001, 0x11)
	mem.Write(0x1100, 0x22)
	mem.Write(0x20, 0xf8)
	mem.Write(0x21, 0x10)
	mem.Write(0x1108, 0x33)

	step(t, mc, 2)

	step(t, mc, 4)
	test.ExpectEquality(t, mc.A.Value(), 0x11)
	test.ExpectFailure(t, mc.LastResult.PageFault)

	step(t, mc, 5)
	test.ExpectEquality(t, mc.A.Value(), 0x22)
	test.ExpectSuccess(t, mc.LastResult.PageFault)

	// stores are not page sensitive
	step(t, mc, 5)
	test.ExpectFailure(t, mc.LastResult.PageFault)

	step(t, mc, 2)

	step(t, mc, 6)
	test.ExpectEquality(t, mc.LastResult.EffectiveAddress, addresses.Absolute(0x1108))
	test.ExpectEquality(t, mc.A.Value(), 0x33)
}

func TestZeroPageWrap(t *testing.T) {
	mc, mem := newCPU(t,
		0xa2, 0x01, // LDX #$01
		0xb5, 0xff, // LDA $FF,X
		0xa1, 0xfe, // LDA ($FE,X)
		0xa0, 0x02, // LDY #$02
		0xb6, 0xff, // LDX $FF,Y
	)
	mem.Write(0x0000, 0x44)
	mem.Write(0x0001, 0x55)
	mem.Write(0x00ff, 0x00)
	mem.Write(0x0400, 0x66)

	step(t, mc, 2)

	step(t, mc, 4)
	test.ExpectEquality(t, mc.LastResult.EffectiveAddress, addresses.Absolute(0x0000))
	test.ExpectEquality(t, mc.A.Value(), 0x44)

	// pointer at $FF with the high byte read from $00
	step(t, mc, 6)
	test.ExpectEquality(t, mc.LastResult.EffectiveAddress, addresses.Absolute(0x4400))

	step(t, mc, 2)

	step(t, mc, 4)
	test.ExpectEquality(t, mc.LastResult.EffectiveAddress, addresses.Absolute(0x0001))
	test.ExpectEquality(t, mc.X.Value(), 0x55)
}

func TestBranches(t *testing.T) {
	mc, mem := newCPU(t,
		0xf0, 0x10, // BEQ (not taken)
		0xd0, 0x02, // BNE +2 (taken)
		0xea, 0xea, // NOP NOP
		0x4c, 0xfb, 0x02, // JMP $02FB
	)

	// branch at $02FB crosses to page 3
	test.DemandSuccess(t, mem.Load(0x02fb, []uint8{
		0x38,       // SEC
		0xb0, 0x10, // BCS +$10
	}))

	step(t, mc, 2)
	test.ExpectFailure(t, mc.LastResult.BranchSuccess)
	test.ExpectEquality(t, mc.PC.Address(), addresses.Absolute(0x0202))

	step(t, mc, 3)
	test.ExpectSuccess(t, mc.LastResult.BranchSuccess)
	test.ExpectEquality(t, mc.PC.Address(), addresses.Absolute(0x0206))

	step(t, mc, 3)
	step(t, mc, 2)

	step(t, mc, 4)
	test.ExpectSuccess(t, mc.LastResult.PageFault)
	test.ExpectEquality(t, mc.PC.Address(), addresses.Absolute(0x030e))
}

func TestBackwardBranch(t *testing.T) {
	mc, _ := newCPU(t,
		0xa2, 0x03, // LDX #$03
		0xca,       // DEX
		0xd0, 0xfd, // BNE -3
		0xea, // NOP
	)

	step(t, mc, 2)
	for i := 0; i < 2; i++ {
		step(t, mc, 2)
		step(t, mc, 3)
		test.ExpectEquality(t, mc.PC.Address(), addresses.Absolute(0x0202))
	}
	step(t, mc, 2)
	step(t, mc, 2)
	test.ExpectFailure(t, mc.LastResult.BranchSuccess)
	test.ExpectEquality(t, mc.X.Value(), 0)
}

func TestStack(t *testing.T) {
	mc, mem := newCPU(t,
		0xa9, 0x42, // LDA #$42
		0x48,       // PHA
		0x08,       // PHP
		0xa9, 0x00, // LDA #$00
		0x68, // PLA
		0x28, // PLP
		0xba, // TSX
	)

	step(t, mc, 2)
	step(t, mc, 3)
	test.ExpectEquality(t, mem.Peek(0x01fd), 0x42)
	test.ExpectEquality(t, mc.SP.Value(), 0xfc)

	// the status register is pushed with the break bit
	step(t, mc, 3)
	test.ExpectEquality(t, mem.Peek(0x01fc), 0x34)

	step(t, mc, 2)
	test.ExpectSuccess(t, mc.Status.Zero)

	// the pull order is the reverse of the push order so A gets the status
	// register and the status register gets $42
	step(t, mc, 4)
	test.ExpectEquality(t, mc.A.Value(), 0x34)

	step(t, mc, 4)
	test.ExpectEquality(t, mc.Status.Value(), 0x62)
	test.ExpectSuccess(t, mc.Status.Overflow)
	test.ExpectSuccess(t, mc.Status.Zero)

	step(t, mc, 2)
	test.ExpectEquality(t, mc.X.Value(), 0xfd)
}

func TestStackWrap(t *testing.T) {
	mc, mem := newCPU(t,
		0xa2, 0x00, // LDX #$00
		0x9a,       // TXS
		0xa9, 0x99, // LDA #$99
		0x48, // PHA
		0x68, // PLA
	)

	step(t, mc, 2)
	step(t, mc, 2)
	step(t, mc, 2)
	step(t, mc, 3)
	test.ExpectEquality(t, mem.Peek(0x0100), 0x99)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	step(t, mc, 4)
	test.ExpectEquality(t, mc.SP.Value(), 0x00)
}

func TestSubroutine(t *testing.T) {
	mc, mem := newCPU(t,
		0x20, 0x00, 0x03, // JSR $0300
		0xea, // NOP
	)
	test.DemandSuccess(t, mem.Load(0x0300, []uint8{
		0xa9, 0x01, // LDA #$01
		0x60, // RTS
	}))

	step(t, mc, 6)
	test.ExpectEquality(t, mc.PC.Address(), addresses.Absolute(0x0300))
	test.ExpectEquality(t, mc.SP.Value(), 0xfb)

	// address of the last byte of the JSR instruction
	test.ExpectEquality(t, mem.Peek(0x01fd), 0x02)
	test.ExpectEquality(t, mem.Peek(0x01fc), 0x02)

	step(t, mc, 2)
	step(t, mc, 6)
	test.ExpectEquality(t, mc.PC.Address(), addresses.Absolute(0x0203))
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
}

func TestHook(t *testing.T) {
	mc, mem := newCPU(t,
		0x20, 0x00, 0x03, // JSR $0300
		0x20, 0x10, 0x03, // JSR $0310
	)

	// the subroutine at $0300 would loop forever if it were called
	test.DemandSuccess(t, mem.Load(0x0300, []uint8{0x4c, 0x00, 0x03}))

	var called int
	mc.RegisterHook(0x0300, func(mc *cpu.CPU) error {
		called++
		mc.A.Load(0x42)
		return nil
	})
	mc.RegisterHook(0x0310, func(mc *cpu.CPU) error {
		return curated.Errorf("hook failed")
	})

	step(t, mc, 6)
	test.ExpectEquality(t, called, 1)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.PC.Address(), addresses.Absolute(0x0203))

	_, err := mc.Step()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, "hook failed"))

	// removing the hook restores the normal behaviour of JSR
	mc.RegisterHook(0x0300, nil)
	mc.LoadPC(origin)
	step(t, mc, 6)
	test.ExpectEquality(t, mc.PC.Address(), addresses.Absolute(0x0300))
	test.ExpectEquality(t, called, 1)
}

func TestBreak(t *testing.T) {
	mc, mem := newCPU(t,
		0x00, 0xff, // BRK
		0xea, // NOP
	)
	test.DemandSuccess(t, mem.Load(addresses.IRQ, []uint8{0x00, 0x04}))
	test.DemandSuccess(t, mem.Load(0x0400, []uint8{
		0x40, // RTI
	}))

	mc.Status.Carry = true
	mc.Status.InterruptDisable = false

	step(t, mc, 7)
	test.ExpectEquality(t, mc.PC.Address(), addresses.Absolute(0x0400))
	test.ExpectSuccess(t, mc.Status.InterruptDisable)
	test.ExpectEquality(t, mem.Peek(0x01fd), 0x02)
	test.ExpectEquality(t, mem.Peek(0x01fc), 0x02)
	test.ExpectEquality(t, mem.Peek(0x01fb), 0x31)

	step(t, mc, 6)
	test.ExpectEquality(t, mc.PC.Address(), addresses.Absolute(0x0202))
	test.ExpectEquality(t, mc.Status.Value(), 0x21)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
}

func TestNMI(t *testing.T) {
	mc, mem := newCPU(t,
		0xea, // NOP
	)
	test.DemandSuccess(t, mem.Load(addresses.NMI, []uint8{0x00, 0x05}))
	test.DemandSuccess(t, mem.Load(0x0500, []uint8{
		0xe8, // INX
		0xea, // NOP
	}))

	mc.NMI()

	// the interrupt is serviced and the first instruction of the handler is
	// executed in the same step
	step(t, mc, 9)
	test.ExpectSuccess(t, mc.LastResult.NMI)
	test.ExpectEquality(t, mc.LastResult.Address, addresses.Absolute(0x0500))
	test.ExpectEquality(t, mc.X.Value(), 1)
	test.ExpectEquality(t, mc.PC.Address(), addresses.Absolute(0x0501))
	test.ExpectSuccess(t, mc.Status.InterruptDisable)

	// return address and the status register without the break bit
	test.ExpectEquality(t, mem.Peek(0x01fd), 0x02)
	test.ExpectEquality(t, mem.Peek(0x01fc), 0x00)
	test.ExpectEquality(t, mem.Peek(0x01fb), 0x24)

	// the latch has been cleared
	step(t, mc, 2)
	test.ExpectFailure(t, mc.LastResult.NMI)
}

func TestIllegalOpcode(t *testing.T) {
	mc, _ := newCPU(t,
		0xea, // NOP
		0x02, // KIL
	)

	step(t, mc, 2)

	_, err := mc.Step()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.IllegalOpcode))
	test.ExpectEquality(t, err.Error(), "cpu: illegal opcode $02 at $0201")

	_, ok := cpu.InfiniteLoopAddress(err)
	test.ExpectFailure(t, ok)
}

func TestInfiniteLoop(t *testing.T) {
	mc, _ := newCPU(t,
		0xea,             // NOP
		0x4c, 0x01, 0x02, // JMP $0201
	)

	step(t, mc, 2)

	cycles, err := mc.Step()
	test.ExpectEquality(t, cycles, 3)
	test.ExpectSuccess(t, curated.Is(err, cpu.InfiniteLoop))

	address, ok := cpu.InfiniteLoopAddress(err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, address, addresses.Absolute(0x0201))

	// the condition survives wrapping
	address, ok = cpu.InfiniteLoopAddress(curated.Errorf("nes: %v", err))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, address, addresses.Absolute(0x0201))

	// a branch to itself
	mc, _ = newCPU(t,
		0xd0, 0xfe, // BNE -2
	)
	_, err = mc.Step()
	address, ok = cpu.InfiniteLoopAddress(err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, address, addresses.Absolute(origin))
}

func TestIndirectJMPBug(t *testing.T) {
	mc, mem := newCPU(t,
		0x6c, 0x00, 0x20, // JMP ($2000)
	)
	mem.Write(0x2000, 0x00)
	mem.Write(0x2001, 0x03)
	test.DemandSuccess(t, mem.Load(0x0300, []uint8{
		0x6c, 0xff, 0x10, // JMP ($10FF)
	}))
	mem.Write(0x10ff, 0x34)
	mem.Write(0x1000, 0x12)
	mem.Write(0x1100, 0x56)

	step(t, mc, 5)
	test.ExpectEquality(t, mc.PC.Address(), addresses.Absolute(0x0300))
	test.ExpectEquality(t, mc.LastResult.CPUBug, "")

	// the high byte of the pointer is read from $1000 and not $1100
	step(t, mc, 5)
	test.ExpectEquality(t, mc.PC.Address(), addresses.Absolute(0x1234))
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.IndirectJMPBug)
}

func TestShifts(t *testing.T) {
	mc, mem := newCPU(t,
		0xa9, 0x81, // LDA #$81
		0x0a,       // ASL A
		0x2a,       // ROL A
		0x6a,       // ROR A
		0x4a,       // LSR A
		0x46, 0x10, // LSR $10
		0x3e, 0x00, 0x03, // ROL $0300,X
	)
	mem.Write(0x10, 0x01)
	mem.Write(0x0300, 0x80)

	step(t, mc, 2)

	step(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), 0x02)
	test.ExpectSuccess(t, mc.Status.Carry)

	step(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), 0x05)
	test.ExpectFailure(t, mc.Status.Carry)

	step(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), 0x02)
	test.ExpectSuccess(t, mc.Status.Carry)

	step(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectFailure(t, mc.Status.Carry)

	step(t, mc, 5)
	test.ExpectEquality(t, mem.Peek(0x10), 0x00)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Zero)

	// read-modify-write instructions always take the extra cycle
	step(t, mc, 7)
	test.ExpectEquality(t, mem.Peek(0x0300), 0x01)
	test.ExpectSuccess(t, mc.Status.Carry)
}

func TestCompareAndBit(t *testing.T) {
	mc, mem := newCPU(t,
		0xa9, 0x40, // LDA #$40
		0xc9, 0x40, // CMP #$40
		0xc9, 0x41, // CMP #$41
		0x24, 0x10, // BIT $10
		0xe0, 0x00, // CPX #$00
	)
	mem.Write(0x10, 0xc0)

	step(t, mc, 2)

	step(t, mc, 2)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Carry)

	step(t, mc, 2)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Sign)

	step(t, mc, 3)
	test.ExpectSuccess(t, mc.Status.Sign)
	test.ExpectSuccess(t, mc.Status.Overflow)
	test.ExpectFailure(t, mc.Status.Zero)

	step(t, mc, 2)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Carry)
}

func TestUnofficial(t *testing.T) {
	mc, mem := newCPU(t,
		0xa7, 0x10, // LAX $10
		0xa9, 0x0f, // LDA #$0F
		0x87, 0x11, // SAX $11
		0xc7, 0x12, // DCP $12
		0xe7, 0x13, // ISB $13
		0x07, 0x14, // SLO $14
		0x0b, 0x80, // ANC #$80
		0x4b, 0x03, // ALR #$03
		0x1c, 0xff, 0x10, // NOP $10FF,X
	)
	mem.Write(0x10, 0x3c)
	mem.Write(0x12, 0x10)
	mem.Write(0x13, 0x01)
	mem.Write(0x14, 0x81)

	step(t, mc, 3)
	test.ExpectEquality(t, mc.A.Value(), 0x3c)
	test.ExpectEquality(t, mc.X.Value(), 0x3c)
	test.ExpectSuccess(t, mc.LastResult.Defn.Unofficial)

	step(t, mc, 2)

	step(t, mc, 3)
	test.ExpectEquality(t, mem.Peek(0x11), 0x0c)

	// memory is decremented to $0F and compared with A
	step(t, mc, 5)
	test.ExpectEquality(t, mem.Peek(0x12), 0x0f)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Carry)

	// memory is incremented to $02 and subtracted from A with carry set
	step(t, mc, 5)
	test.ExpectEquality(t, mem.Peek(0x13), 0x02)
	test.ExpectEquality(t, mc.A.Value(), 0x0d)

	step(t, mc, 5)
	test.ExpectEquality(t, mem.Peek(0x14), 0x02)
	test.ExpectEquality(t, mc.A.Value(), 0x0f)
	test.ExpectSuccess(t, mc.Status.Carry)

	step(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Carry)

	mc.A.Load(0xff)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectSuccess(t, mc.Status.Carry)

	// X is still $3C so the dummy read crosses a page
	step(t, mc, 5)
	test.ExpectSuccess(t, mc.LastResult.PageFault)
}

func referenceADC(a, b uint8, carry bool) (uint8, bool, bool) {
	c := 0
	if carry {
		c = 1
	}
	sum := int(a) + int(b) + c
	res := uint8(sum)
	overflow := (a^res)&(b^res)&0x80 != 0
	return res, sum > 0xff, overflow
}

func TestArithmetic(t *testing.T) {
	mc, _ := newCPU(t,
		0x69, 0x00, // ADC #$00
		0xe9, 0x00, // SBC #$00
	)

	for _, carry := range []bool{false, true} {
		for a := 0; a <= 0xff; a++ {
			for b := 0; b <= 0xff; b++ {
				mc.PC.Load(origin)
				mc.A.Load(uint8(a))
				mc.Status.Carry = carry
				mc.Write(origin+1, uint8(b))
				_, err := mc.Step()
				test.DemandSuccess(t, err)

				res, c, v := referenceADC(uint8(a), uint8(b), carry)
				if mc.A.Value() != res || mc.Status.Carry != c || mc.Status.Overflow != v ||
					mc.Status.Zero != (res == 0) || mc.Status.Sign != (res&0x80 == 0x80) {
					t.Fatalf("ADC %02x + %02x + %v: got %s", a, b, carry, mc)
				}

				mc.PC.Load(origin + 2)
				mc.A.Load(uint8(a))
				mc.Status.Carry = carry
				mc.Write(origin+3, uint8(b))
				_, err = mc.Step()
				test.DemandSuccess(t, err)

				res, c, v = referenceADC(uint8(a), ^uint8(b), carry)
				if mc.A.Value() != res || mc.Status.Carry != c || mc.Status.Overflow != v ||
					mc.Status.Zero != (res == 0) || mc.Status.Sign != (res&0x80 == 0x80) {
					t.Fatalf("SBC %02x - %02x - %v: got %s", a, b, !carry, mc)
				}
			}
		}
	}
}

func TestTraceCallback(t *testing.T) {
	mc, _ := newCPU(t,
		0xa9, 0x01, // LDA #$01
		0xa9, 0x02, // LDA #$02
	)

	var trace []uint8
	mc.SetTraceCallback(func(mc *cpu.CPU) {
		// registers have not been changed by the instruction when the
		// callback is called
		trace = append(trace, mc.A.Value())
	})

	step(t, mc, 2)
	step(t, mc, 2)
	test.ExpectEquality(t, len(trace), 2)
	test.ExpectEquality(t, trace[0], 0x00)
	test.ExpectEquality(t, trace[1], 0x01)
}

func TestRun(t *testing.T) {
	mc, _ := newCPU(t,
		0xe8,             // INX
		0x4c, 0x00, 0x02, // JMP $0200
	)

	err := mc.Run(context.Background(), func(mc *cpu.CPU) bool {
		return mc.X.Value() < 10
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mc.X.Value(), 10)

	// a cancelled context stops the loop before the next instruction
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = mc.Run(ctx, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mc.X.Value(), 10)

	// errors stop the loop
	mc, _ = newCPU(t, 0x02)
	err = mc.Run(context.Background(), nil)
	test.ExpectSuccess(t, curated.Is(err, cpu.IllegalOpcode))
}
