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

package addresses

import "fmt"

// Advancer is implemented by every address type. Advance returns a new address
// that is delta places away, wrapped according to the rules of the type.
type Advancer[T any] interface {
	Advance(delta int) T
}

// Inc returns the address one place after a.
func Inc[T Advancer[T]](a T) T {
	return a.Advance(1)
}

// Dec returns the address one place before a.
func Dec[T Advancer[T]](a T) T {
	return a.Advance(-1)
}

// Offset returns the address delta places away from a. The delta can be
// negative.
func Offset[T Advancer[T]](a T, delta int) T {
	return a.Advance(delta)
}

// Absolute is an address anywhere in the 64K address space of the CPU.
type Absolute uint16

// Advance implements the Advancer interface.
func (a Absolute) Advance(delta int) Absolute {
	return Absolute(uint16(int(a) + delta))
}

// Page returns the page number of the address.
func (a Absolute) Page() uint8 {
	return uint8(a >> 8)
}

// Lo returns the low byte of the address.
func (a Absolute) Lo() uint8 {
	return uint8(a)
}

// SamePage converts the address to a SamePage address.
func (a Absolute) SamePage() SamePage {
	return SamePage(a)
}

func (a Absolute) String() string {
	return fmt.Sprintf("$%04X", uint16(a))
}

// SamePage is a 16 bit address in which arithmetic only affects the low byte.
// Used to emulate the page wrapping of the 6502's indirect addressing.
type SamePage uint16

// Advance implements the Advancer interface.
func (a SamePage) Advance(delta int) SamePage {
	return SamePage(uint16(a)&0xff00 | uint16(uint8(int(a)+delta)))
}

// Absolute converts the address to an Absolute address.
func (a SamePage) Absolute() Absolute {
	return Absolute(a)
}

// FixedPage is an address in a single 256 byte page. Arithmetic never leaves
// the page.
type FixedPage struct {
	Page   uint8
	Offset uint8
}

// ZeroPage returns a FixedPage address in page zero.
func ZeroPage(offset uint8) FixedPage {
	return FixedPage{Page: 0x00, Offset: offset}
}

// StackPage returns a FixedPage address in page one, the page used by the
// stack.
func StackPage(offset uint8) FixedPage {
	return FixedPage{Page: 0x01, Offset: offset}
}

// Advance implements the Advancer interface.
func (a FixedPage) Advance(delta int) FixedPage {
	return FixedPage{Page: a.Page, Offset: uint8(int(a.Offset) + delta)}
}

// Absolute converts the address to an Absolute address.
func (a FixedPage) Absolute() Absolute {
	return Absolute(uint16(a.Page)<<8 | uint16(a.Offset))
}

// SamePage converts the address to a SamePage address.
func (a FixedPage) SamePage() SamePage {
	return SamePage(a.Absolute())
}

// VRAM is an address in the 14 bit address space of the PPU.
type VRAM uint16

// VRAMMask is the mask applied to all VRAM addresses.
const VRAMMask = 0x3fff

// NewVRAM returns the value masked to the VRAM address space.
func NewVRAM(v uint16) VRAM {
	return VRAM(v & VRAMMask)
}

// Advance implements the Advancer interface.
func (a VRAM) Advance(delta int) VRAM {
	return VRAM(uint16(int(a)+delta) & VRAMMask)
}

func (a VRAM) String() string {
	return fmt.Sprintf("$%04X", uint16(a))
}
