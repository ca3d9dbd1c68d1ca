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
	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cartridge"
)

// SystemBus is the memory system as seen by the CPU of the console. It
// implements the bus.CPUBus and bus.DebugBus interfaces.
type SystemBus struct {
	ram ram

	PPU        PPUBus
	APU        APUBus
	Controller ControllerBus
	Cart       cartridge.Mapper

	// the last value on the data bus
	openBus uint8

	// buffer used for OAM DMA transfers
	dma [256]uint8
}

// NewSystemBus is the preferred method of initialisation for the SystemBus
// type. Any of the devices can be nil, in which case the addresses normally
// served by the device return the open bus value.
func NewSystemBus(ppu PPUBus, apu APUBus, controller ControllerBus, cart cartridge.Mapper) *SystemBus {
	return &SystemBus{
		PPU:        ppu,
		APU:        apu,
		Controller: controller,
		Cart:       cart,
	}
}

// Reset contents of RAM. The cartridge is reset too.
func (mem *SystemBus) Reset() {
	mem.ram = ram{}
	mem.openBus = 0
	if mem.Cart != nil {
		mem.Cart.Reset()
	}
}

// OpenBus returns the last value on the data bus.
func (mem *SystemBus) OpenBus() uint8 {
	return mem.openBus
}

// Read implements the bus.CPUBus interface.
func (mem *SystemBus) Read(address addresses.Absolute) uint8 {
	mem.openBus = mem.read(address, false)
	return mem.openBus
}

// Peek implements the bus.DebugBus interface.
func (mem *SystemBus) Peek(address addresses.Absolute) uint8 {
	return mem.read(address, true)
}

func (mem *SystemBus) read(address addresses.Absolute, peek bool) uint8 {
	switch {
	case address <= addresses.RAMTop:
		return mem.ram.read(address)

	case address <= addresses.PPUTop:
		if mem.PPU == nil {
			return mem.openBus
		}
		reg := addresses.PPUCTRL + address&addresses.PPUMask
		if peek {
			return mem.PPU.PeekRegister(reg, mem.openBus)
		}
		return mem.PPU.ReadRegister(reg, mem.openBus)

	case address == addresses.APUStatus:
		if mem.APU == nil {
			return mem.openBus
		}
		if peek {
			return mem.APU.PeekStatus()
		}
		return mem.APU.ReadStatus()

	case address == addresses.JOY1:
		if mem.Controller == nil {
			return mem.openBus
		}
		// only bit 0 is driven by the controller
		var d uint8
		if peek {
			d = mem.Controller.Peek()
		} else {
			d = mem.Controller.Read()
		}
		return (mem.openBus & 0xe0) | (d & 0x01)

	case address <= addresses.APUTop:
		// write-only registers and the unused second controller port
		return mem.openBus
	}

	if mem.Cart == nil {
		return mem.openBus
	}

	d, driven := mem.Cart.Read(address)
	if !driven {
		return mem.openBus
	}
	return d
}

// Write implements the bus.CPUBus interface.
func (mem *SystemBus) Write(address addresses.Absolute, data uint8) {
	mem.openBus = data

	switch {
	case address <= addresses.RAMTop:
		mem.ram.write(address, data)

	case address <= addresses.PPUTop:
		if mem.PPU != nil {
			mem.PPU.WriteRegister(addresses.PPUCTRL+address&addresses.PPUMask, data)
		}

	case address == addresses.OAMDMA:
		mem.oamDMA(data)

	case address == addresses.JOY1:
		if mem.Controller != nil {
			mem.Controller.Write(data)
		}

	case address <= addresses.APUTop:
		if mem.APU != nil {
			mem.APU.WriteRegister(address, data)
		}

	default:
		if mem.Cart != nil {
			mem.Cart.Write(address, data)
		}
	}
}

// copy the page of memory indicated by the data written to the OAMDMA
// register into the PPU. the page is read through the system bus so that any
// page can be used
func (mem *SystemBus) oamDMA(page uint8) {
	if mem.PPU == nil {
		return
	}

	origin := addresses.Absolute(uint16(page) << 8)
	for i := range mem.dma {
		mem.dma[i] = mem.Read(origin + addresses.Absolute(i))
	}
	mem.PPU.WriteOAMDMA(mem.dma[:])
}
