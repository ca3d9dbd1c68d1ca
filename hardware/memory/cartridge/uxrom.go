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
	"fmt"

	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
	"github.com/jetsetilly/gopher2a03/logger"
)

// uxrom is mapper 002. the 16K window at $8000 is switched by writing the bank
// number anywhere in the ROM area. the window at $c000 is always the last
// bank. the pattern tables are in RAM.
//
// cartridges:
//   - Mega Man
//   - Castlevania
//   - Duck Tales
type uxrom struct {
	mappingID string

	banks [][]uint8

	// the bank mapped to $8000. the bank mapped to $c000 is always the last
	// bank
	bank int

	chr       chrMemory
	ram       prgRAM
	mirroring Mirroring
}

func newUxROM(prg []uint8, chr []uint8, mirroring Mirroring) Mapper {
	cart := &uxrom{
		mappingID: "UxROM",
		mirroring: mirroring,
	}

	numBanks := (len(prg) + prgBankSize - 1) / prgBankSize
	cart.banks = make([][]uint8, numBanks)
	for k := 0; k < numBanks; k++ {
		cart.banks[k] = make([]uint8, prgBankSize)
		copy(cart.banks[k], prg[k*prgBankSize:])
	}

	// the pattern tables are always RAM. any CHR data supplied by the
	// cartridge file is used as the initial contents
	cart.chr = chrMemory{
		data:     make([]uint8, chrBankSize),
		writable: true,
	}
	copy(cart.chr.data, chr)

	return cart
}

// ID implements the cartridge.Mapper interface.
func (cart *uxrom) ID() string {
	return cart.mappingID
}

// MappedBanks implements the cartridge.Mapper interface.
func (cart *uxrom) MappedBanks() string {
	return fmt.Sprintf("Banks: %d %d", cart.bank, len(cart.banks)-1)
}

// Reset implements the cartridge.Mapper interface.
func (cart *uxrom) Reset() {
	cart.bank = 0
}

// Read implements the cartridge.Mapper interface.
func (cart *uxrom) Read(addr addresses.Absolute) (uint8, bool) {
	if addr >= addresses.PRGROMUpper {
		return cart.banks[len(cart.banks)-1][addr-addresses.PRGROMUpper], true
	}
	if addr >= addresses.PRGROM {
		return cart.banks[cart.bank][addr-addresses.PRGROM], true
	}
	return cart.ram.read(addr)
}

// Write implements the cartridge.Mapper interface.
func (cart *uxrom) Write(addr addresses.Absolute, data uint8) {
	if addr < addresses.PRGROM {
		cart.ram.write(addr, data)
		return
	}

	bank := int(data) % len(cart.banks)
	if bank != cart.bank {
		cart.bank = bank
		logger.Logf(logger.Allow, "uxrom", "%s", cart.MappedBanks())
	}
}

// ChrRead implements the cartridge.Mapper interface.
func (cart *uxrom) ChrRead(addr addresses.VRAM) uint8 {
	return cart.chr.data[addr&(chrBankSize-1)]
}

// ChrWrite implements the cartridge.Mapper interface.
func (cart *uxrom) ChrWrite(addr addresses.VRAM, data uint8) {
	cart.chr.data[addr&(chrBankSize-1)] = data
}

// Mirroring implements the cartridge.Mapper interface.
func (cart *uxrom) Mirroring() Mirroring {
	return cart.mirroring
}
