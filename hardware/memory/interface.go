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

package memory

import "github.com/jetsetilly/gopher2a03/hardware/memory/addresses"

// PPUBus defines the operations of the PPU when accessed through the system
// bus. The register address is normalised to the range $2000 to $2007.
type PPUBus interface {
	// read the register. the open bus value is supplied for registers that do
	// not drive all data pins
	ReadRegister(reg addresses.Absolute, openBus uint8) uint8
	WriteRegister(reg addresses.Absolute, data uint8)

	// peek the register without side effects
	PeekRegister(reg addresses.Absolute, openBus uint8) uint8

	// copy a page of data into object attribute memory
	WriteOAMDMA(page []uint8)
}

// APUBus defines the operations of the APU when accessed through the system
// bus.
type APUBus interface {
	ReadStatus() uint8
	PeekStatus() uint8
	WriteRegister(reg addresses.Absolute, data uint8)
}

// ControllerBus defines the operations of the controller port.
type ControllerBus interface {
	// read the next bit of the controller state. only bit 0 is driven
	Read() uint8
	Peek() uint8

	// write the strobe bit
	Write(data uint8)
}
