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

// mmc1 is mapper 001. the registers of the mapper are written serially, one
// bit at a time, through a five bit shift register. writes to any ROM address
// shift bit 0 of the data into the shift register. on the fifth write the
// value is transferred to the register selected by the address of that fifth
// write:
//
//	$8000 to $9fff	control
//	$a000 to $bfff	CHR bank 0
//	$c000 to $dfff	CHR bank 1
//	$e000 to $ffff	PRG bank
//
// a write with bit 7 set resets the shift register and sets the PRG mode
// bits of the control register.
//
// cartridges:
//   - The Legend of Zelda
//   - Metroid
//   - Mega Man 2
type mmc1 struct {
	mappingID string

	// PRG data in 16K banks
	banks [][]uint8

	chr       chrMemory
	ram       prgRAM
	mirroring Mirroring

	// the power-on value of the control register. includes the mirroring
	// specified by the cartridge file
	initialControl uint8

	shift   uint8
	control uint8
	chr0    uint8
	chr1    uint8
	prg     uint8
}

// the value of the shift register when it is empty. the bit will be shifted
// into bit 0 on the fifth write
const mmc1ShiftReset = 0x10

// control register bits
const (
	mmc1Mirroring = 0x03
	mmc1PRGMode   = 0x0c
	mmc1CHRMode   = 0x10
)

func newMMC1(prg []uint8, chr []uint8, mirroring Mirroring) Mapper {
	cart := &mmc1{
		mappingID: "MMC1",
		chr:       newCHRMemory(chr),
		mirroring: mirroring,
	}

	numBanks := (len(prg) + prgBankSize - 1) / prgBankSize
	cart.banks = make([][]uint8, numBanks)
	for k := 0; k < numBanks; k++ {
		cart.banks[k] = make([]uint8, prgBankSize)
		copy(cart.banks[k], prg[k*prgBankSize:])
	}

	// PRG mode 3 with the mirroring from the cartridge file
	cart.initialControl = mmc1PRGMode
	switch mirroring {
	case Vertical:
		cart.initialControl |= 0x02
	case Horizontal:
		cart.initialControl |= 0x03
	}

	cart.Reset()

	return cart
}

// ID implements the cartridge.Mapper interface.
func (cart *mmc1) ID() string {
	return cart.mappingID
}

// MappedBanks implements the cartridge.Mapper interface.
func (cart *mmc1) MappedBanks() string {
	lo, hi := cart.prgBanks()
	clo, chi := cart.chrBanks()
	return fmt.Sprintf("PRG: %d %d CHR: %d %d", lo, hi, clo, chi)
}

// Reset implements the cartridge.Mapper interface.
func (cart *mmc1) Reset() {
	cart.shift = mmc1ShiftReset
	cart.control = cart.initialControl
	cart.chr0 = 0
	cart.chr1 = 0
	cart.prg = 0
}

// prgBanks returns the banks mapped to $8000 and $c000
func (cart *mmc1) prgBanks() (int, int) {
	bank := int(cart.prg & 0x0f)
	last := len(cart.banks) - 1

	var lo, hi int

	switch (cart.control & mmc1PRGMode) >> 2 {
	case 0, 1:
		// 32K mode. the low bit of the bank number is ignored
		lo = bank &^ 0x01
		hi = lo + 1
	case 2:
		// first bank fixed at $8000
		lo = 0
		hi = bank
	case 3:
		// last bank fixed at $c000
		lo = bank
		hi = last
	}

	return lo % len(cart.banks), hi % len(cart.banks)
}

// chrBanks returns the 4K banks mapped to $0000 and $1000 of the PPU address
// space
func (cart *mmc1) chrBanks() (int, int) {
	numBanks := len(cart.chr.data) / 0x1000
	if numBanks == 0 {
		return 0, 0
	}

	var lo, hi int
	if cart.control&mmc1CHRMode == mmc1CHRMode {
		lo = int(cart.chr0)
		hi = int(cart.chr1)
	} else {
		// 8K mode. the low bit of the bank number is ignored
		lo = int(cart.chr0 &^ 0x01)
		hi = lo + 1
	}

	return lo % numBanks, hi % numBanks
}

// Read implements the cartridge.Mapper interface.
func (cart *mmc1) Read(addr addresses.Absolute) (uint8, bool) {
	if addr < addresses.PRGROM {
		return cart.ram.read(addr)
	}

	lo, hi := cart.prgBanks()
	if addr >= addresses.PRGROMUpper {
		return cart.banks[hi][addr-addresses.PRGROMUpper], true
	}
	return cart.banks[lo][addr-addresses.PRGROM], true
}

// Write implements the cartridge.Mapper interface.
func (cart *mmc1) Write(addr addresses.Absolute, data uint8) {
	if addr < addresses.PRGROM {
		cart.ram.write(addr, data)
		return
	}

	if data&0x80 == 0x80 {
		cart.shift = mmc1ShiftReset
		cart.control |= mmc1PRGMode
		return
	}

	// the shift register is full when the marker bit reaches bit 0
	complete := cart.shift&0x01 == 0x01
	cart.shift = (cart.shift >> 1) | ((data & 0x01) << 4)
	if !complete {
		return
	}

	v := cart.shift
	cart.shift = mmc1ShiftReset

	var changed bool

	switch {
	case addr < 0xa000:
		changed = cart.control != v
		cart.control = v
	case addr < 0xc000:
		changed = cart.chr0 != v
		cart.chr0 = v
	case addr < 0xe000:
		changed = cart.chr1 != v
		cart.chr1 = v
	default:
		changed = cart.prg != v
		cart.prg = v
	}

	// games rewrite the registers far more often than the values change
	if changed {
		logger.Logf(logger.Allow, "mmc1", "%s (%s mirroring)", cart.MappedBanks(), cart.Mirroring())
	}
}

func (cart *mmc1) chrAddress(addr addresses.VRAM) int {
	lo, hi := cart.chrBanks()
	bank := lo
	if addr&0x1000 == 0x1000 {
		bank = hi
	}
	return (bank*0x1000 + int(addr&0x0fff)) & (len(cart.chr.data) - 1)
}

// ChrRead implements the cartridge.Mapper interface.
func (cart *mmc1) ChrRead(addr addresses.VRAM) uint8 {
	return cart.chr.data[cart.chrAddress(addr)]
}

// ChrWrite implements the cartridge.Mapper interface.
func (cart *mmc1) ChrWrite(addr addresses.VRAM, data uint8) {
	if cart.chr.writable {
		cart.chr.data[cart.chrAddress(addr)] = data
	}
}

// Mirroring implements the cartridge.Mapper interface.
func (cart *mmc1) Mirroring() Mirroring {
	if cart.mirroring == FourScreen {
		return FourScreen
	}
	switch cart.control & mmc1Mirroring {
	case 0:
		return SingleLower
	case 1:
		return SingleUpper
	case 2:
		return Vertical
	}
	return Horizontal
}
