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

// Package addresses contains the address value types used throughout the
// emulation, along with the canonical addresses of the interrupt vectors and
// the memory mapped registers.
//
// Each address type has its own wraparound domain:
//
//	Absolute  - the full 16 bit address space
//	FixedPage - a single 256 byte page (zero page and the stack)
//	SamePage  - a 16 bit address in which only the low byte moves
//	VRAM      - the 14 bit address space of the PPU
//
// Arithmetic is performed with the generic functions Inc(), Dec() and
// Offset(), which work with any type that implements the Advancer interface.
// Because the functions are generic, arithmetic between two different address
// types is not possible. Conversions between types are explicit. A FixedPage
// address can always be converted to an Absolute address but the reverse is
// not possible.
package addresses
