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

package cartridge_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/test"
)

// newMapper creates a mapper from an iNES image built in memory. every byte of
// a PRG bank is the bank number and every byte of a 4K CHR bank is 0x80 plus
// the bank number
func newMapper(t *testing.T, mapper int, prgBanks int, chrBanks int, flags6 uint8) cartridge.Mapper {
	t.Helper()

	flags6 |= uint8(mapper&0x0f) << 4
	flags7 := uint8(mapper & 0xf0)
	d := []byte{'N', 'E', 'S', 0x1a, uint8(prgBanks), uint8(chrBanks), flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	for b := 0; b < prgBanks; b++ {
		for i := 0; i < 0x4000; i++ {
			d = append(d, uint8(b))
		}
	}
	for b := 0; b < chrBanks*2; b++ {
		for i := 0; i < 0x1000; i++ {
			d = append(d, uint8(0x80+b))
		}
	}

	cl, err := cartridgeloader.NewLoaderFromData("test.nes", d)
	test.DemandSuccess(t, err)

	m, err := cartridge.NewMapper(cl)
	test.DemandSuccess(t, err)

	return m
}

func read(t *testing.T, m cartridge.Mapper, addr addresses.Absolute) uint8 {
	t.Helper()
	d, driven := m.Read(addr)
	test.ExpectSuccess(t, driven, addr)
	return d
}

func TestUnsupported(t *testing.T) {
	d := []byte{'N', 'E', 'S', 0x1a, 1, 1, 0x40, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}
	d = append(d, make([]byte, 0x4000+0x2000)...)
	cl, err := cartridgeloader.NewLoaderFromData("mmc3.nes", d)
	test.DemandSuccess(t, err)

	_, err = cartridge.NewMapper(cl)
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedMapper))

	cl, err = cartridgeloader.NewLoaderFromData("raw.bin", []byte{0x00})
	test.DemandSuccess(t, err)
	_, err = cartridge.NewMapper(cl)
	test.ExpectFailure(t, err)
}

func TestMapperName(t *testing.T) {
	test.ExpectEquality(t, cartridge.MapperName(0), "NROM (000)")
	test.ExpectEquality(t, cartridge.MapperName(1), "MMC1 (001)")
	test.ExpectEquality(t, cartridge.MapperName(2), "UxROM (002)")
	test.ExpectEquality(t, cartridge.MapperName(200), "Unknown (200)")
}

func TestNROM(t *testing.T) {
	// 16K image is mirrored
	m := newMapper(t, 0, 1, 1, 0x01)
	test.ExpectEquality(t, m.ID(), "NROM")
	test.ExpectEquality(t, m.Mirroring(), cartridge.Vertical)
	test.ExpectEquality(t, read(t, m, 0x8000), 0)
	test.ExpectEquality(t, read(t, m, 0xc000), 0)

	// 32K image
	m = newMapper(t, 0, 2, 1, 0x00)
	test.ExpectEquality(t, m.Mirroring(), cartridge.Horizontal)
	test.ExpectEquality(t, read(t, m, 0xbfff), 0)
	test.ExpectEquality(t, read(t, m, 0xc000), 1)

	// ROM is not writable
	m.Write(0xc000, 0xff)
	test.ExpectEquality(t, read(t, m, 0xc000), 1)

	// PRG RAM
	m.Write(0x6010, 0x42)
	test.ExpectEquality(t, read(t, m, 0x6010), 0x42)

	// nothing responds below $6000
	_, driven := m.Read(0x5000)
	test.ExpectFailure(t, driven)

	// CHR ROM is not writable
	test.ExpectEquality(t, m.ChrRead(0x0000), 0x80)
	test.ExpectEquality(t, m.ChrRead(0x1000), 0x81)
	m.ChrWrite(0x0000, 0x00)
	test.ExpectEquality(t, m.ChrRead(0x0000), 0x80)

	// CHR RAM is created when there is no CHR data
	m = newMapper(t, 0, 1, 0, 0x08)
	test.ExpectEquality(t, m.Mirroring(), cartridge.FourScreen)
	m.ChrWrite(0x1234, 0x99)
	test.ExpectEquality(t, m.ChrRead(0x1234), 0x99)
}

func TestUxROM(t *testing.T) {
	m := newMapper(t, 2, 8, 0, 0x00)
	test.ExpectEquality(t, m.ID(), "UxROM")
	test.ExpectEquality(t, read(t, m, 0x8000), 0)
	test.ExpectEquality(t, read(t, m, 0xc000), 7)

	m.Write(0x8000, 3)
	test.ExpectEquality(t, read(t, m, 0x8000), 3)
	test.ExpectEquality(t, read(t, m, 0xbfff), 3)
	test.ExpectEquality(t, read(t, m, 0xffff), 7)

	// bank number is wrapped to the number of banks
	m.Write(0xffff, 10)
	test.ExpectEquality(t, read(t, m, 0x8000), 2)

	m.Reset()
	test.ExpectEquality(t, read(t, m, 0x8000), 0)

	// CHR is RAM
	m.ChrWrite(0x0010, 0x55)
	test.ExpectEquality(t, m.ChrRead(0x0010), 0x55)

	// PRG RAM
	m.Write(0x7fff, 0x12)
	test.ExpectEquality(t, read(t, m, 0x7fff), 0x12)
}

// mmc1Write writes the low five bits of v serially to the MMC1 register at
// addr
func mmc1Write(m cartridge.Mapper, addr addresses.Absolute, v uint8) {
	for i := 0; i < 5; i++ {
		m.Write(addr, (v>>i)&0x01)
	}
}

func TestMMC1PRG(t *testing.T) {
	m := newMapper(t, 1, 8, 2, 0x00)
	test.ExpectEquality(t, m.ID(), "MMC1")

	// power on is PRG mode 3. last bank fixed at $c000
	test.ExpectEquality(t, read(t, m, 0x8000), 0)
	test.ExpectEquality(t, read(t, m, 0xc000), 7)

	mmc1Write(m, 0xe000, 5)
	test.ExpectEquality(t, read(t, m, 0x8000), 5)
	test.ExpectEquality(t, read(t, m, 0xc000), 7)

	// PRG mode 2. first bank fixed at $8000
	mmc1Write(m, 0x8000, 0x08)
	test.ExpectEquality(t, read(t, m, 0x8000), 0)
	test.ExpectEquality(t, read(t, m, 0xc000), 5)

	// 32K mode ignores the low bit of the bank number
	mmc1Write(m, 0x8000, 0x00)
	test.ExpectEquality(t, read(t, m, 0x8000), 4)
	test.ExpectEquality(t, read(t, m, 0xc000), 5)
	mmc1Write(m, 0xe000, 2)
	test.ExpectEquality(t, read(t, m, 0x8000), 2)
	test.ExpectEquality(t, read(t, m, 0xc000), 3)

	// a write with bit 7 set returns to PRG mode 3
	m.Write(0x8000, 0x80)
	test.ExpectEquality(t, read(t, m, 0x8000), 2)
	test.ExpectEquality(t, read(t, m, 0xc000), 7)
}

func TestMMC1ShiftReset(t *testing.T) {
	m := newMapper(t, 1, 8, 2, 0x00)

	// partial write followed by a reset. the next five writes form a complete
	// value
	m.Write(0xe000, 0x01)
	m.Write(0xe000, 0x01)
	m.Write(0xe000, 0x80)
	mmc1Write(m, 0xe000, 6)
	test.ExpectEquality(t, read(t, m, 0x8000), 6)

	// only the address of the fifth write matters
	m.Write(0x8000, 0x01)
	m.Write(0x8000, 0x00)
	m.Write(0xa000, 0x00)
	m.Write(0xc000, 0x00)
	m.Write(0xe000, 0x00)
	test.ExpectEquality(t, read(t, m, 0x8000), 1)
}

func TestMMC1CHR(t *testing.T) {
	// two 8K CHR banks. four 4K banks
	m := newMapper(t, 1, 2, 2, 0x00)

	test.ExpectEquality(t, m.ChrRead(0x0000), 0x80)
	test.ExpectEquality(t, m.ChrRead(0x1000), 0x81)

	// 8K mode
	mmc1Write(m, 0xa000, 3)
	test.ExpectEquality(t, m.ChrRead(0x0000), 0x82)
	test.ExpectEquality(t, m.ChrRead(0x1000), 0x83)

	// 4K mode
	mmc1Write(m, 0x8000, 0x1c)
	mmc1Write(m, 0xa000, 3)
	mmc1Write(m, 0xc000, 1)
	test.ExpectEquality(t, m.ChrRead(0x0000), 0x83)
	test.ExpectEquality(t, m.ChrRead(0x1000), 0x81)
}

func TestMMC1Mirroring(t *testing.T) {
	m := newMapper(t, 1, 2, 0, 0x01)
	test.ExpectEquality(t, m.Mirroring(), cartridge.Vertical)

	mmc1Write(m, 0x8000, 0x0c)
	test.ExpectEquality(t, m.Mirroring(), cartridge.SingleLower)
	mmc1Write(m, 0x8000, 0x0d)
	test.ExpectEquality(t, m.Mirroring(), cartridge.SingleUpper)
	mmc1Write(m, 0x8000, 0x0e)
	test.ExpectEquality(t, m.Mirroring(), cartridge.Vertical)
	mmc1Write(m, 0x8000, 0x0f)
	test.ExpectEquality(t, m.Mirroring(), cartridge.Horizontal)

	// CHR RAM
	m.ChrWrite(0x1fff, 0x77)
	test.ExpectEquality(t, m.ChrRead(0x1fff), 0x77)
}

func TestMirroring(t *testing.T) {
	expected := map[cartridge.Mirroring][4]int{
		cartridge.Horizontal:  {0, 0, 1, 1},
		cartridge.Vertical:    {0, 1, 0, 1},
		cartridge.SingleLower: {0, 0, 0, 0},
		cartridge.SingleUpper: {1, 1, 1, 1},
		cartridge.FourScreen:  {0, 1, 2, 3},
	}
	for m, e := range expected {
		for i := 0; i < 4; i++ {
			test.ExpectEquality(t, m.Nametable(i), e[i], m, i)
		}
	}
}

func TestMappedBanks(t *testing.T) {
	m := newMapper(t, 0, 1, 1, 0x00)
	test.ExpectEquality(t, m.MappedBanks(), "Bank: 0 (mirrored)")
	m = newMapper(t, 0, 2, 1, 0x00)
	test.ExpectEquality(t, m.MappedBanks(), "Banks: 0 1")

	m = newMapper(t, 2, 8, 0, 0x00)
	test.ExpectEquality(t, m.MappedBanks(), "Banks: 0 7")
	m.Write(0x8000, 3)
	test.ExpectEquality(t, m.MappedBanks(), "Banks: 3 7")

	m = newMapper(t, 1, 8, 2, 0x00)
	test.ExpectEquality(t, m.MappedBanks(), "PRG: 0 7 CHR: 0 1")
	mmc1Write(m, 0xe000, 5)
	mmc1Write(m, 0xa000, 2)
	test.ExpectEquality(t, m.MappedBanks(), "PRG: 5 7 CHR: 2 3")
}

func TestMMC1Logging(t *testing.T) {
	m := newMapper(t, 1, 8, 2, 0x00)

	echo := &test.CompareWriter{}
	logger.SetEcho(echo, false)
	defer logger.SetEcho(nil, false)

	mmc1Write(m, 0xe000, 5)
	test.ExpectSuccess(t, echo.Compare("mmc1: PRG: 5 7 CHR: 0 1 (horizontal mirroring)\n"), echo.String())

	// rewriting the same values is not logged
	echo.Clear()
	mmc1Write(m, 0xe000, 5)
	mmc1Write(m, 0xa000, 0)
	mmc1Write(m, 0x8000, 0x0f)
	test.ExpectSuccess(t, echo.Compare(""), echo.String())

	mmc1Write(m, 0xa000, 2)
	test.ExpectSuccess(t, echo.Compare("mmc1: PRG: 5 7 CHR: 2 3 (horizontal mirroring)\n"), echo.String())
}
