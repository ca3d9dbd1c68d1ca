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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
	"github.com/jetsetilly/gopher2a03/hardware/memory/bus"
	"github.com/jetsetilly/gopher2a03/hardware/television"
)

// Timing of the PPU.
const (
	CyclesPerScanline = 341
	ScanlinesPerFrame = 262

	VisibleScanlines = 240
	PostRender       = 240
	VBlankScanline   = 241
	PreRender        = 261

	visibleStart  = 1
	visibleEnd    = 257
	prefetchStart = 321
	prefetchEnd   = 337

	copyYStart = 280
	copyYEnd   = 304
)

// Television defines the frame buffer functions required by the PPU.
type Television interface {
	SetPixel(index uint8, effects television.Effects)
	NewFrame() error
}

// PPU is the picture processing unit.
type PPU struct {
	tv   Television
	vram vram

	// the function to call when an NMI is raised
	nmi func()

	// timing counters. the cycle is the position in the current scanline
	Cycle    int
	Scanline int

	// the number of frames since reset
	Frame int

	ctrl    Control
	mask    Mask
	status  Status
	oamAddr uint8
	oam     oam

	v     loopy
	t     loopy
	fineX uint8
	latch bool

	// buffered value for PPUDATA reads
	readBuffer uint8

	// background pipeline
	nametableByte uint8
	attributeBits uint8
	tile          tileRow
	tileData      [16]uint8

	sprites []scanlineSprite
}

// NewPPU is the preferred method of initialisation for the PPU type. The nmi
// function is called whenever the PPU raises a non-maskable interrupt.
func NewPPU(tv Television, chr bus.ChrBus, nmi func()) *PPU {
	ppu := &PPU{
		tv:      tv,
		nmi:     nmi,
		sprites: make([]scanlineSprite, 0, maxSpritesPerLine),
	}
	ppu.vram.chr = chr
	ppu.Reset()
	return ppu
}

// Reset the PPU to its power-on state.
func (ppu *PPU) Reset() {
	ppu.Cycle = 0
	ppu.Scanline = 0
	ppu.Frame = 0
	ppu.ctrl = 0
	ppu.mask = 0
	ppu.status = 0
	ppu.oamAddr = 0
	ppu.oam = oam{}
	ppu.v = 0
	ppu.t = 0
	ppu.fineX = 0
	ppu.latch = false
	ppu.readBuffer = 0
	ppu.nametableByte = 0
	ppu.attributeBits = 0
	ppu.tile = tileRow{}
	ppu.tileData = [16]uint8{}
	ppu.sprites = ppu.sprites[:0]
	ppu.vram.reset()
}

func (ppu *PPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("scanline=%03d cycle=%03d frame=%d ", ppu.Scanline, ppu.Cycle, ppu.Frame))
	s.WriteString(fmt.Sprintf("ctrl=%02x mask=%02x status=%s ", uint8(ppu.ctrl), uint8(ppu.mask), ppu.status))
	s.WriteString(fmt.Sprintf("v=%04x t=%04x x=%d w=%v", uint16(ppu.v), uint16(ppu.t), ppu.fineX, ppu.latch))
	return s.String()
}

// Status returns the current value of the status register. The low bits are
// always zero.
func (ppu *PPU) Status() Status {
	return ppu.status
}

// Control returns the current value of the control register.
func (ppu *PPU) Control() Control {
	return ppu.ctrl
}

// Mask returns the current value of the mask register.
func (ppu *PPU) Mask() Mask {
	return ppu.mask
}

// PeekVRAM returns the value at the address in the PPU address space without
// affecting the read buffer.
func (ppu *PPU) PeekVRAM(addr addresses.VRAM) uint8 {
	return ppu.vram.read(addresses.NewVRAM(uint16(addr)))
}

// PokeVRAM writes the value to the PPU address space without affecting any
// PPU registers.
func (ppu *PPU) PokeVRAM(addr addresses.VRAM, data uint8) {
	ppu.vram.write(addresses.NewVRAM(uint16(addr)), data)
}

// PeekOAM returns the raw value in object attribute memory.
func (ppu *PPU) PeekOAM(addr uint8) uint8 {
	return ppu.oam[addr]
}

func (ppu *PPU) visibleCycle() bool {
	return ppu.Cycle >= visibleStart && ppu.Cycle < visibleEnd
}

func (ppu *PPU) fetchCycle() bool {
	return ppu.visibleCycle() || (ppu.Cycle >= prefetchStart && ppu.Cycle < prefetchEnd)
}

func (ppu *PPU) visibleScanline() bool {
	return ppu.Scanline < VisibleScanlines
}

func (ppu *PPU) renderScanline() bool {
	return ppu.visibleScanline() || ppu.Scanline == PreRender
}

// Step the PPU forward one cycle. The only errors returned are errors from
// the television.
func (ppu *PPU) Step() error {
	if ppu.visibleScanline() && ppu.visibleCycle() {
		ppu.renderPixel()
	}

	if ppu.mask.rendering() {
		render := ppu.renderScanline()

		if render && ppu.fetchCycle() {
			ppu.fetchBackground()
		}

		if ppu.Scanline == PreRender && ppu.Cycle >= copyYStart && ppu.Cycle <= copyYEnd {
			ppu.v.copyY(ppu.t)
		}

		if render {
			if ppu.fetchCycle() && ppu.Cycle%8 == 0 {
				ppu.v.incrementX()
			}
			switch ppu.Cycle {
			case 256:
				ppu.v.incrementY()
			case 257:
				ppu.v.copyX(ppu.t)
				if ppu.visibleScanline() {
					ppu.evaluateSprites()
				} else {
					ppu.sprites = ppu.sprites[:0]
				}
			}
		}
	}

	if ppu.Cycle == 1 {
		switch ppu.Scanline {
		case VBlankScanline:
			ppu.Frame++
			ppu.status |= StatusVBlank
			if ppu.ctrl.nmi() {
				ppu.triggerNMI()
			}
			if err := ppu.tv.NewFrame(); err != nil {
				return err
			}
		case PreRender:
			ppu.status &^= StatusVBlank | StatusSpriteZero | StatusOverflow
		}
	}

	ppu.Cycle++
	if ppu.Cycle >= CyclesPerScanline {
		ppu.Cycle = 0
		ppu.Scanline++
		if ppu.Scanline >= ScanlinesPerFrame {
			ppu.Scanline = 0
		}
	}

	return nil
}

func (ppu *PPU) triggerNMI() {
	if ppu.nmi != nil {
		ppu.nmi()
	}
}

// advance the background pipeline by one cycle
func (ppu *PPU) fetchBackground() {
	copy(ppu.tileData[:], ppu.tileData[1:])

	switch ppu.Cycle % 8 {
	case 1:
		ppu.nametableByte = ppu.vram.read(ppu.v.nametableAddress())
	case 3:
		a := ppu.vram.read(ppu.v.attributeAddress())
		ppu.attributeBits = ((a >> ppu.v.attributeShift()) & 0x03) << 2
	case 5:
		ppu.tile = ppu.vram.tileRow(ppu.ctrl.backgroundTable(), ppu.nametableByte, ppu.v.fineY())
	case 0:
		for x := 0; x < 8; x++ {
			ppu.tileData[8+x] = ppu.tile.pixel(x, ppu.attributeBits)
		}
	}
}

// composite the background and sprite pixels at the current position and
// send the result to the television
func (ppu *PPU) renderPixel() {
	x := ppu.Cycle - 1

	var background uint8
	if ppu.mask.has(MaskShowBackground) {
		background = ppu.tileData[ppu.fineX]
	}

	sprite, behind, zero := ppu.spritePixel(x)

	if x < 8 {
		if !ppu.mask.has(MaskBackgroundLeft) {
			background = 0
		}
		if !ppu.mask.has(MaskSpritesLeft) {
			sprite = 0
		}
	}

	var idx uint8

	b := transparent(background)
	s := transparent(sprite)
	switch {
	case b && s:
		idx = 0
	case b:
		idx = sprite
	case s:
		idx = background
	default:
		if zero && x < 255 {
			ppu.status |= StatusSpriteZero
		}
		if behind {
			idx = background
		} else {
			idx = sprite
		}
	}

	ppu.tv.SetPixel(ppu.vram.palette.read(uint16(idx)), ppu.mask.effects())
}
