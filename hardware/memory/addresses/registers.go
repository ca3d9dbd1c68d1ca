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

package addresses

// Interrupt vectors. Each vector holds the little-endian address that the CPU
// loads into the program counter.
const (
	NMI   = Absolute(0xfffa)
	Reset = Absolute(0xfffc)
	IRQ   = Absolute(0xfffe)
)

// Memory regions of the CPU address space.
const (
	RAMTop      = 0x1fff
	RAMMask     = 0x07ff
	PPUTop      = 0x3fff
	PPUMask     = 0x0007
	APUTop      = 0x401f
	CartOrigin  = 0x4020
	PRGRAM      = 0x6000
	PRGROM      = 0x8000
	PRGROMUpper = 0xc000
)

// PPU registers. The eight registers are mirrored every eight bytes between
// $2000 and $3fff.
const (
	PPUCTRL   = 0x2000
	PPUMASK   = 0x2001
	PPUSTATUS = 0x2002
	OAMADDR   = 0x2003
	OAMDATA   = 0x2004
	PPUSCROLL = 0x2005
	PPUADDR   = 0x2006
	PPUDATA   = 0x2007
)

// APU and IO registers.
const (
	Pulse1Ctrl      = 0x4000
	Pulse1Sweep     = 0x4001
	Pulse1TimerLo   = 0x4002
	Pulse1TimerHi   = 0x4003
	Pulse2Ctrl      = 0x4004
	Pulse2Sweep     = 0x4005
	Pulse2TimerLo   = 0x4006
	Pulse2TimerHi   = 0x4007
	TriangleCtrl    = 0x4008
	TriangleTimerLo = 0x400a
	TriangleTimerHi = 0x400b
	NoiseCtrl       = 0x400c
	NoisePeriod     = 0x400e
	NoiseLength     = 0x400f
	OAMDMA          = 0x4014
	APUStatus       = 0x4015
	JOY1            = 0x4016
	FrameCounter    = 0x4017
)

// VRAM regions.
const (
	PatternTop   = VRAM(0x1fff)
	Nametables   = VRAM(0x2000)
	NametableTop = VRAM(0x3eff)
	Palette      = VRAM(0x3f00)
)
