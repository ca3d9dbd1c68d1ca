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

	"github.com/jetsetilly/gopher2a03/hardware/memory/addresses"
	"github.com/jetsetilly/gopher2a03/hardware/television"
)

// Control is the value of the PPUCTRL register.
type Control uint8

// Control register bits.
const (
	CtrlNametable     Control = 0x03
	CtrlIncrement32   Control = 0x04
	CtrlSpriteTable   Control = 0x08
	CtrlBackgroundTbl Control = 0x10
	CtrlTallSprites   Control = 0x20
	CtrlNMI           Control = 0x80
)

func (c Control) increment() int {
	if c&CtrlIncrement32 == CtrlIncrement32 {
		return 32
	}
	return 1
}

func (c Control) spriteTable() addresses.VRAM {
	if c&CtrlSpriteTable == CtrlSpriteTable {
		return 0x1000
	}
	return 0x0000
}

func (c Control) backgroundTable() addresses.VRAM {
	if c&CtrlBackgroundTbl == CtrlBackgroundTbl {
		return 0x1000
	}
	return 0x0000
}

func (c Control) spriteHeight() int {
	if c&CtrlTallSprites == CtrlTallSprites {
		return 16
	}
	return 8
}

func (c Control) nmi() bool {
	return c&CtrlNMI == CtrlNMI
}

// Mask is the value of the PPUMASK register.
type Mask uint8

// Mask register bits.
const (
	MaskGrayscale      Mask = 0x01
	MaskBackgroundLeft Mask = 0x02
	MaskSpritesLeft    Mask = 0x04
	MaskShowBackground Mask = 0x08
	MaskShowSprites    Mask = 0x10
	MaskEmphasizeRed   Mask = 0x20
	MaskEmphasizeGreen Mask = 0x40
	MaskEmphasizeBlue  Mask = 0x80
)

func (m Mask) has(b Mask) bool {
	return m&b == b
}

func (m Mask) rendering() bool {
	return m.has(MaskShowBackground) || m.has(MaskShowSprites)
}

func (m Mask) effects() television.Effects {
	return television.Effects{
		Grayscale:      m.has(MaskGrayscale),
		EmphasizeRed:   m.has(MaskEmphasizeRed),
		EmphasizeGreen: m.has(MaskEmphasizeGreen),
		EmphasizeBlue:  m.has(MaskEmphasizeBlue),
	}
}

// Status is the value of the PPUSTATUS register.
type Status uint8

// Status register bits. The low five bits are not driven by the PPU.
const (
	StatusOpenBus    Status = 0x1f
	StatusOverflow   Status = 0x20
	StatusSpriteZero Status = 0x40
	StatusVBlank     Status = 0x80
)

func (s Status) String() string {
	f := func(b Status, c byte) byte {
		if s&b == b {
			return c
		}
		return '-'
	}
	return fmt.Sprintf("%c%c%c", f(StatusVBlank, 'V'), f(StatusSpriteZero, 'S'), f(StatusOverflow, 'O'))
}

// loopy is the internal 15 bit VRAM address register. The bits are
// arranged as:
//
//	yyy NN YYYYY XXXXX
//
// where y is fine Y, N is the nametable, Y is coarse Y and X is coarse X.
type loopy uint16

const (
	loopyCoarseX   = 0x001f
	loopyCoarseY   = 0x03e0
	loopyNametable = 0x0c00
	loopyFineY     = 0x7000

	loopyHorizontal = 0x041f
	loopyVertical   = 0x7be0
)

func (l loopy) coarseX() uint16 {
	return uint16(l) & loopyCoarseX
}

func (l loopy) coarseY() uint16 {
	return (uint16(l) & loopyCoarseY) >> 5
}

func (l loopy) fineY() uint16 {
	return (uint16(l) & loopyFineY) >> 12
}

func (l *loopy) setNametable(n uint8) {
	*l = *l&^loopyNametable | loopy(n&0x03)<<10
}

func (l *loopy) setCoarseX(x uint8) {
	*l = *l&^loopyCoarseX | loopy(x&0x1f)
}

func (l *loopy) setCoarseY(y uint8) {
	*l = *l&^loopyCoarseY | loopy(y&0x1f)<<5
}

func (l *loopy) setFineY(y uint8) {
	*l = *l&^loopyFineY | loopy(y&0x07)<<12
}

func (l *loopy) setHi(d uint8) {
	*l = *l&0x00ff | loopy(d&0x3f)<<8
}

func (l *loopy) setLo(d uint8) {
	*l = *l&0x7f00 | loopy(d)
}

// coarse X wraps at 32 and switches the horizontal nametable
func (l *loopy) incrementX() {
	if l.coarseX() == 31 {
		*l &^= loopyCoarseX
		*l ^= 0x0400
		return
	}
	*l++
}

// fine Y carries into coarse Y. coarse Y wraps at 30 and switches the
// vertical nametable. values of 30 and 31 can only be set by the program and
// wrap at 32 without switching the nametable
func (l *loopy) incrementY() {
	if l.fineY() < 7 {
		*l += 0x1000
		return
	}
	*l &^= loopyFineY

	y := l.coarseY() + 1
	switch y {
	case 30:
		y = 0
		*l ^= 0x0800
	case 32:
		y = 0
	}
	l.setCoarseY(uint8(y))
}

func (l *loopy) copyX(t loopy) {
	*l = *l&^loopyHorizontal | t&loopyHorizontal
}

func (l *loopy) copyY(t loopy) {
	*l = *l&^loopyVertical | t&loopyVertical
}

func (l loopy) nametableAddress() addresses.VRAM {
	return addresses.NewVRAM(0x2000 | uint16(l)&0x0fff)
}

func (l loopy) attributeAddress() addresses.VRAM {
	v := uint16(l)
	return addresses.NewVRAM(0x23c0 | (v & 0x0c00) | ((v >> 4) & 0x38) | ((v >> 2) & 0x07))
}

// the shift required to select the two attribute bits for the tile within
// the 4x4 tile attribute area
func (l loopy) attributeShift() uint16 {
	v := uint16(l)
	return ((v >> 4) & 0x04) | (v & 0x02)
}
