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

// Package registers implements the three types of registers found in the 6502.
// The 8 bit general purpose registers (A, X and Y) are implemented by the
// Register type. The program counter and stack pointer have their own types.
// The status register is implemented by the StatusRegister type.
//
// The Register type implements the arithmetic and logical operations of the
// CPU. The operations do not affect the status register. It is the
// responsibility of the CPU to update the status flags as appropriate, based
// on the return values of the operations. For example:
//
//	a.Load(10)
//	carry, overflow := a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//	sr.Carry = carry
//	sr.Overflow = overflow
//
// In this case, the zero flag in the status register will be false and the
// carry flag will be false, meaning that a borrow has occurred.
package registers
