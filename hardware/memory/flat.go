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

import (
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
)

// FlatMemory maps the entire 64K address space to memory. The memory below
// the ROM origin is writable. Everything above it is read-only.
//
// It implements the bus.CPUBus and bus.DebugBus interfaces.
type FlatMemory struct {
	data [0x10000]uint8

	// the first address that cannot be written to by the CPU
	romOrigin int
}

// NewFlatMemory is the preferred method of initialisation for the FlatMemory
// type. The romOrigin argument is the first address in the read-only area.
// A value of 0x10000 means that all memory is writable.
func NewFlatMemory(romOrigin int) *FlatMemory {
	if romOrigin < 0 || romOrigin > len(FlatMemory{}.data) {
		romOrigin = len(FlatMemory{}.data)
	}
	return &FlatMemory{romOrigin: romOrigin}
}

// Load copies data into memory starting at the origin. The data can be
// loaded into the read-only area.
func (mem *FlatMemory) Load(origin addresses.Absolute, data []uint8) error {
	if int(origin)+len(data) > len(mem.data) {
		return curated.Errorf("memory: %v", "data does not fit at origin")
	}
	copy(mem.data[origin:], data)
	return nil
}

// Read implements the bus.CPUBus interface.
func (mem *FlatMemory) Read(address addresses.Absolute) uint8 {
	return mem.data[address]
}

// Peek implements the bus.DebugBus interface.
func (mem *FlatMemory) Peek(address addresses.Absolute) uint8 {
	return mem.data[address]
}

// Write implements the bus.CPUBus interface.
func (mem *FlatMemory) Write(address addresses.Absolute, data uint8) {
	if int(address) < mem.romOrigin {
		mem.data[address] = data
	}
}
