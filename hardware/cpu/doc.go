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

// Package cpu emulates the 6502 microprocessor found in the NES. More
// accurately, the 2A03 which is a 6502 without decimal mode arithmetic. The
// decimal mode flag can be set and cleared but has no effect on the ADC and
// SBC instructions.
//
// The CPU is stepped one instruction at a time with the Step() function. The
// number of cycles consumed by the instruction is returned and can be used to
// step the rest of the hardware by the correct amount.
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
//	for {
//		cycles, err := mc.Step()
//		if err != nil {
//			return err
//		}
//		// step other hardware by cycles
//	}
//
// The instruction set is defined by the instructions sub-package. The
// registers of the CPU are defined by the registers sub-package. The CPU
// accesses memory through the bus.CPUBus interface.
//
// The non-maskable interrupt is triggered by the NMI() function. The interrupt
// is serviced at the beginning of the next call to Step(). The IRQ line is not
// emulated.
//
// Subroutine hooks allow native Go functions to replace subroutines in the
// emulated program. When a JSR instruction targets a hooked address the hook
// function is called instead of the subroutine. See the RegisterHook()
// function.
//
// Step() returns an error if an illegal opcode is encountered or if an
// instruction leaves the program counter unchanged. The second condition is
// used by test programs to indicate that they have finished and the
// InfiniteLoopAddress() function can be used to find the address of the loop.
package cpu
