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

package ppu

import "github.com/jetsetilly/gopher2a03/hardware/memory/addresses"

// ReadRegister implements the memory.PPUBus interface.
func (ppu *PPU) ReadRegister(reg addresses.Absolute, openBus uint8) uint8 {
	switch reg {
	case addresses.PPUSTATUS:
		d := uint8(ppu.status) | openBus&uint8(StatusOpenBus)
		ppu.status &^= StatusVBlank
		ppu.latch = false
		return d

	case addresses.OAMDATA:
		return ppu.oam.read(ppu.oamAddr)

	case addresses.PPUDATA:
		return ppu.readData(openBus)
	}

	// write-only registers
	return openBus
}

// PeekRegister implements the memory.PPUBus interface.
func (ppu *PPU) PeekRegister(reg addresses.Absolute, openBus uint8) uint8 {
	switch reg {
	case addresses.PPUSTATUS:
		return uint8(ppu.status) | openBus&uint8(StatusOpenBus)

	case addresses.OAMDATA:
		return ppu.oam.read(ppu.oamAddr)

	case addresses.PPUDATA:
		addr := addresses.NewVRAM(uint16(ppu.v))
		if addr >= addresses.Palette {
			return ppu.vram.read(addr) | openBus&0xc0
		}
		return ppu.readBuffer
	}

	return openBus
}

// WriteRegister implements the memory.PPUBus interface.
func (ppu *PPU) WriteRegister(reg addresses.Absolute, data uint8) {
	switch reg {
	case addresses.PPUCTRL:
		prev := ppu.ctrl
		ppu.ctrl = Control(data)
		ppu.t.setNametable(data)

		// enabling the NMI during vblank causes an immediate NMI
		if !prev.nmi() && ppu.ctrl.nmi() && ppu.status&StatusVBlank == StatusVBlank {
			ppu.triggerNMI()
		}

	case addresses.PPUMASK:
		ppu.mask = Mask(data)

	case addresses.PPUSTATUS:
		// read-only

	case addresses.OAMADDR:
		ppu.oamAddr = data

	case addresses.OAMDATA:
		ppu.oam[ppu.oamAddr] = data
		ppu.oamAddr++

	case addresses.PPUSCROLL:
		if !ppu.latch {
			ppu.t.setCoarseX(data >> 3)
			ppu.fineX = data & 0x07
		} else {
			ppu.t.setCoarseY(data >> 3)
			ppu.t.setFineY(data & 0x07)
		}
		ppu.latch = !ppu.latch

	case addresses.PPUADDR:
		if !ppu.latch {
			ppu.t.setHi(data)
		} else {
			ppu.t.setLo(data)
			ppu.v = ppu.t
		}
		ppu.latch = !ppu.latch

	case addresses.PPUDATA:
		ppu.vram.write(addresses.NewVRAM(uint16(ppu.v)), data)
		ppu.incrementV()
	}
}

// WriteOAMDMA implements the memory.PPUBus interface. The transfer starts at
// the current OAM address and wraps around.
func (ppu *PPU) WriteOAMDMA(page []uint8) {
	for _, d := range page {
		ppu.oam[ppu.oamAddr] = d
		ppu.oamAddr++
	}
}

func (ppu *PPU) incrementV() {
	ppu.v = loopy(uint16(ppu.v)+uint16(ppu.ctrl.increment())) & 0x7fff
}

// reads from PPUDATA are delayed by one read except for palette reads, which
// return immediately but still fill the read buffer with the nametable byte
// that sits beneath the palette
func (ppu *PPU) readData(openBus uint8) uint8 {
	addr := addresses.NewVRAM(uint16(ppu.v))
	ppu.incrementV()

	if addr >= addresses.Palette {
		ppu.readBuffer = ppu.vram.read(addr & 0x2fff)
		return ppu.vram.read(addr) | openBus&0xc0
	}

	d := ppu.readBuffer
	ppu.readBuffer = ppu.vram.read(addr)
	return d
}
