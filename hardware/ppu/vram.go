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

import (
	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
	"github.com/jetsetilly/gopher2a03/hardware/memory/bus"
)

const (
	nametableSize  = 0x400
	numNametables  = 4
	paletteSize    = 32
	paletteEntries = 0x1f
)

// the power-on palette. the values are arbitrary but the same palette is
// used every time so that results are repeatable
var defaultPalette = [paletteSize]uint8{
	0x0f, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06,
	0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e,
	0x0f, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06,
	0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e,
}

// palette RAM. the first entry of each sprite palette is a mirror of the
// equivalent background palette entry
type palette [paletteSize]uint8

func paletteIndex(idx uint16) uint16 {
	idx &= paletteEntries
	if idx&0x03 == 0 {
		idx &^= 0x10
	}
	return idx
}

func (p *palette) read(idx uint16) uint8 {
	return p[paletteIndex(idx)]
}

func (p *palette) write(idx uint16, data uint8) {
	p[paletteIndex(idx)] = data & 0x3f
}

// vram is the PPU address space. pattern tables are in the cartridge and the
// nametables and palette are internal. four physical nametables exist so
// that four-screen mirroring can be supported without the cartridge needing
// to supply the additional RAM
type vram struct {
	chr        bus.ChrBus
	nametables [numNametables][nametableSize]uint8
	palette    palette
}

func (mem *vram) reset() {
	mem.nametables = [numNametables][nametableSize]uint8{}
	mem.palette = defaultPalette
}

// returns the physical nametable and offset for an address in the nametable
// area. addresses from $3000 to $3eff mirror $2000 to $2eff
func (mem *vram) nametable(addr addresses.VRAM) (int, uint16) {
	a := (uint16(addr) & 0x2fff) - uint16(addresses.Nametables)
	logical := int(a / nametableSize)
	return mem.chr.Mirroring().Nametable(logical), a % nametableSize
}

func (mem *vram) read(addr addresses.VRAM) uint8 {
	switch {
	case addr <= addresses.PatternTop:
		return mem.chr.ChrRead(addr)
	case addr <= addresses.NametableTop:
		n, o := mem.nametable(addr)
		return mem.nametables[n][o]
	}
	return mem.palette.read(uint16(addr))
}

func (mem *vram) write(addr addresses.VRAM, data uint8) {
	switch {
	case addr <= addresses.PatternTop:
		mem.chr.ChrWrite(addr, data)
	case addr <= addresses.NametableTop:
		n, o := mem.nametable(addr)
		mem.nametables[n][o] = data
	default:
		mem.palette.write(uint16(addr), data)
	}
}

// tileRow is one row of an 8x8 tile, as stored in the two bit planes of the
// pattern table
type tileRow struct {
	lo uint8
	hi uint8
}

func (mem *vram) tileRow(table addresses.VRAM, tile uint8, row uint16) tileRow {
	addr := table + addresses.VRAM(uint16(tile)*16+row)
	return tileRow{
		lo: mem.chr.ChrRead(addr),
		hi: mem.chr.ChrRead(addr + 8),
	}
}

// pixel returns the two bit colour of the pixel at x (zero being the
// leftmost pixel) combined with the palette bits
func (r tileRow) pixel(x int, paletteBits uint8) uint8 {
	shift := 7 - x
	return paletteBits | (r.lo>>shift)&0x01 | ((r.hi>>shift)&0x01)<<1
}

// a colour index is transparent if it selects the first entry of any palette
func transparent(idx uint8) bool {
	return idx&0x03 == 0
}
