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

	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
	"github.com/jetsetilly/gopher2a03/logger"
)

// UnsupportedMapper is returned by NewMapper() when the mapper number is not
// implemented.
const UnsupportedMapper = "cartridge: unsupported mapper (%d)"

// Mapper implementations hold the actual data from the loaded ROM and keep
// track of which banks are mapped to which addresses.
type Mapper interface {
	ID() string
	MappedBanks() string

	// read the cartridge at the specified address in the CPU address space.
	// the driven return value is false if the cartridge did not respond to
	// the address. in which case the data value should be ignored and the
	// last value on the data bus used instead
	Read(addr addresses.Absolute) (data uint8, driven bool)

	// write to the cartridge at the specified address in the CPU address
	// space. writes to ROM addresses are how mappers are bank switched
	Write(addr addresses.Absolute, data uint8)

	// access to the pattern tables ($0000 to $1fff of the PPU address space)
	ChrRead(addr addresses.VRAM) uint8
	ChrWrite(addr addresses.VRAM, data uint8)

	// current nametable mirroring mode
	Mirroring() Mirroring

	// reset volatile areas of the cartridge. bank registers return to their
	// power-on values. RAM is not cleared
	Reset()
}

// sizes of the different storage areas
const (
	prgBankSize = 0x4000
	chrBankSize = 0x2000
	prgRAMSize  = 0x2000
)

// NewMapper returns the mapper for the loaded cartridge. The Loader must have
// been successfully loaded and parsed as an iNES file.
func NewMapper(loader cartridgeloader.Loader) (Mapper, error) {
	if !loader.IsINES {
		return nil, curated.Errorf("cartridge: %v", "not an iNES file")
	}

	if len(loader.PRG) == 0 {
		return nil, curated.Errorf("cartridge: %v", "no PRG data")
	}

	mirroring := Horizontal
	if loader.FourScreen {
		mirroring = FourScreen
	} else if loader.VerticalMirroring {
		mirroring = Vertical
	}

	var m Mapper

	switch loader.Mapper {
	case 0:
		m = newNROM(loader.PRG, loader.CHR, mirroring)
	case 1:
		m = newMMC1(loader.PRG, loader.CHR, mirroring)
	case 2:
		m = newUxROM(loader.PRG, loader.CHR, mirroring)
	default:
		return nil, curated.Errorf(UnsupportedMapper, loader.Mapper)
	}

	logger.Logf(logger.Allow, "cartridge", "%s: %d PRG banks, %d CHR banks, %s mirroring",
		m.ID(), loader.PRGBanks(), loader.CHRBanks(), mirroring)

	return m, nil
}

// MapperName returns a human readable name for the mapper number. The name is
// returned even if the mapper is not supported.
func MapperName(number int) string {
	var name string
	switch number {
	case 0:
		name = "NROM"
	case 1:
		name = "MMC1"
	case 2:
		name = "UxROM"
	case 3:
		name = "CNROM"
	case 4:
		name = "MMC3"
	case 7:
		name = "AxROM"
	default:
		name = "Unknown"
	}
	return fmt.Sprintf("%s (%03d)", name, number)
}

// prgRAM is the 8K of RAM mapped to $6000 to $7fff. it is present in all the
// supported mappers
type prgRAM [prgRAMSize]uint8

func (ram *prgRAM) read(addr addresses.Absolute) (uint8, bool) {
	if addr < addresses.PRGRAM {
		return 0, false
	}
	return ram[addr-addresses.PRGRAM], true
}

func (ram *prgRAM) write(addr addresses.Absolute, data uint8) {
	if addr < addresses.PRGRAM {
		return
	}
	ram[addr-addresses.PRGRAM] = data
}

// chrMemory is the pattern table storage of a cartridge. if the cartridge
// supplies no CHR data then 8K of CHR RAM is created
type chrMemory struct {
	data     []uint8
	writable bool
}

func newCHRMemory(chr []uint8) chrMemory {
	if len(chr) == 0 {
		return chrMemory{
			data:     make([]uint8, chrBankSize),
			writable: true,
		}
	}

	// take a copy of the data so that the loader is never modified
	c := chrMemory{data: make([]uint8, len(chr))}
	copy(c.data, chr)
	return c
}
