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

const (
	oamSize             = 256
	numSprites          = oamSize / 4
	maxSpritesPerLine   = 8
	spriteAttrPalette   = 0x03
	spriteAttrBehind    = 0x20
	spriteAttrFlipHoriz = 0x40
	spriteAttrFlipVert  = 0x80

	// the bits of the attribute byte that are not stored
	spriteAttrUnused = 0x1c
)

// oamEntry is a single sprite in object attribute memory
type oamEntry struct {
	y    uint8
	tile uint8
	attr uint8
	x    uint8
}

func (o *oam) entry(i int) oamEntry {
	return oamEntry{
		y:    o[i*4],
		tile: o[i*4+1],
		attr: o[i*4+2],
		x:    o[i*4+3],
	}
}

type oam [oamSize]uint8

func (o *oam) read(addr uint8) uint8 {
	d := o[addr]
	if addr%4 == 2 {
		d &^= spriteAttrUnused
	}
	return d
}

// scanlineSprite is a sprite that has been selected for the next scanline.
// the pattern is stored in display order with horizontal flipping already
// applied
type scanlineSprite struct {
	x       uint8
	behind  bool
	zero    bool
	pattern [8]uint8
}

// evaluateSprites selects the sprites that are to be drawn on the next
// scanline and fetches their pattern data
func (ppu *PPU) evaluateSprites() {
	ppu.sprites = ppu.sprites[:0]

	height := ppu.ctrl.spriteHeight()

	for i := 0; i < numSprites; i++ {
		e := ppu.oam.entry(i)

		row := ppu.Scanline - int(e.y)
		if row < 0 || row >= height {
			continue
		}

		if len(ppu.sprites) == maxSpritesPerLine {
			ppu.status |= StatusOverflow
			break
		}

		ppu.sprites = append(ppu.sprites, scanlineSprite{
			x:       e.x,
			behind:  e.attr&spriteAttrBehind == spriteAttrBehind,
			zero:    i == 0,
			pattern: ppu.spritePattern(e, row),
		})
	}
}

func (ppu *PPU) spritePattern(e oamEntry, row int) [8]uint8 {
	table := ppu.ctrl.spriteTable()
	tile := e.tile

	if ppu.ctrl.spriteHeight() == 16 {
		if tile&0x01 == 0x01 {
			table = 0x1000
		} else {
			table = 0x0000
		}
		tile &= 0xfe
		if e.attr&spriteAttrFlipVert == spriteAttrFlipVert {
			row = 15 - row
		}
		if row > 7 {
			tile++
			row -= 8
		}
	} else if e.attr&spriteAttrFlipVert == spriteAttrFlipVert {
		row = 7 - row
	}

	r := ppu.vram.tileRow(table, tile, uint16(row))
	paletteBits := (e.attr&spriteAttrPalette)<<2 | 0x10
	flip := e.attr&spriteAttrFlipHoriz == spriteAttrFlipHoriz

	var pattern [8]uint8
	for x := range pattern {
		if flip {
			pattern[x] = r.pixel(7-x, paletteBits)
		} else {
			pattern[x] = r.pixel(x, paletteBits)
		}
	}

	return pattern
}

// spritePixel returns the colour index of the first opaque sprite pixel at
// the current position. the colour index is zero if there is no opaque
// sprite pixel
func (ppu *PPU) spritePixel(x int) (idx uint8, behind bool, zero bool) {
	if !ppu.mask.has(MaskShowSprites) {
		return 0, false, false
	}

	for _, s := range ppu.sprites {
		offset := x - int(s.x)
		if offset < 0 || offset > 7 {
			continue
		}
		c := s.pattern[offset]
		if transparent(c) {
			continue
		}
		return c, s.behind, s.zero
	}

	return 0, false, false
}
