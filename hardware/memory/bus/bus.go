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

package bus

import (
	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cartridge"
)

// CPUBus defines the operations for the memory system when accessed from the
// CPU. The system bus implements this interface and maps the read/write
// address to the correct memory area, meaning that CPU access need not care
// which part of memory it is writing to.
//
// Neither function returns an error. Reads from addresses that nothing
// responds to return the most recent value on the data bus.
type CPUBus interface {
	Read(address addresses.Absolute) uint8
	Write(address addresses.Absolute, data uint8)
}

// DebugBus defines the meta-operations for memory. Peek does not trigger any
// of the side-effects that a Read from the CPU might (clearing PPU status
// flags, advancing the controller shift register, etc.)
type DebugBus interface {
	Peek(address addresses.Absolute) uint8
}

// ChrBus defines the operations for the pattern table memory of the cartridge
// when accessed from the PPU. The nametable layout is also provided by the
// cartridge.
type ChrBus interface {
	ChrRead(address addresses.VRAM) uint8
	ChrWrite(address addresses.VRAM, data uint8)
	Mirroring() cartridge.Mirroring
}
