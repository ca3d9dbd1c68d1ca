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

package registers

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
)

// StackPointer represents the SP register in the 6502 CPU. The stack is
// always in page one and the stack pointer wraps within that page.
type StackPointer struct {
	address addresses.FixedPage
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{address: addresses.StackPage(val)}
}

// Label returns the canonical name for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02X", sp.address.Offset)
}

// Value returns the 8 bit value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.address.Offset
}

// Address returns the address in page one that the stack pointer points to.
func (sp StackPointer) Address() addresses.Absolute {
	return sp.address.Absolute()
}

// Load value into the stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.address.Offset = val
}

// Push moves the stack pointer down by one and returns the address the pushed
// value should be written to. The address is the value of the stack pointer
// before the move.
func (sp *StackPointer) Push() addresses.Absolute {
	a := sp.address.Absolute()
	sp.address = addresses.Dec(sp.address)
	return a
}

// Pull moves the stack pointer up by one and returns the address the pulled
// value should be read from.
func (sp *StackPointer) Pull() addresses.Absolute {
	sp.address = addresses.Inc(sp.address)
	return sp.address.Absolute()
}
