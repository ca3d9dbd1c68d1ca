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

package cartridge

import (
	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
)

// nrom is mapper 000. there is no bank switching. 16K PRG images are mirrored
// into both halves of the $8000 to $ffff window.
//
// cartridges:
//   - Donkey Kong
//   - Super Mario Bros.
type nrom struct {
	mappingID string
	prg       []uint8
	chr       chrMemory
	ram       prgRAM
	mirroring Mirroring
}

func newNROM(prg []uint8, chr []uint8, mirroring Mirroring) Mapper {
	return &nrom{
		mappingID: "NROM",
		prg:       prg,
		chr:       newCHRMemory(chr),
		mirroring: mirroring,
	}
}

// ID implements the cartridge.Mapper interface.
func (cart *nrom) ID() string {
	return cart.mappingID
}

// MappedBanks implements the cartridge.Mapper interface.
func (cart *nrom) MappedBanks() string {
	if len(cart.prg) <= prgBankSize {
		return "Bank: 0 (mirrored)"
	}
	return "Banks: 0 1"
}

// Reset implements the cartridge.Mapper interface.
func (cart *nrom) Reset() {
}

// Read implements the cartridge.Mapper interface.
func (cart *nrom) Read(addr addresses.Absolute) (uint8, bool) {
	if addr >= addresses.PRGROM {
		// masking with the size of the PRG data mirrors a 16K image
		return cart.prg[int(addr-addresses.PRGROM)&(len(cart.prg)-1)], true
	}
	return cart.ram.read(addr)
}

// Write implements the cartridge.Mapper interface.
func (cart *nrom) Write(addr addresses.Absolute, data uint8) {
	if addr < addresses.PRGROM {
		cart.ram.write(addr, data)
	}
}

// ChrRead implements the cartridge.Mapper interface.
func (cart *nrom) ChrRead(addr addresses.VRAM) uint8 {
	return cart.chr.data[int(addr)&(len(cart.chr.data)-1)]
}

// ChrWrite implements the cartridge.Mapper interface.
func (cart *nrom) ChrWrite(addr addresses.VRAM, data uint8) {
	if cart.chr.writable {
		cart.chr.data[int(addr)&(len(cart.chr.data)-1)] = data
	}
}

// Mirroring implements the cartridge.Mapper interface.
func (cart *nrom) Mirroring() Mirroring {
	return cart.mirroring
}
