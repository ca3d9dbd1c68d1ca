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

// Package ppu emulates the picture processing unit of the NES.
//
// The PPU is stepped once per PPU cycle by the console. There are three PPU
// cycles for every CPU cycle. Each step advances the cycle and scanline
// counters, drives the background fetch pipeline, evaluates sprites for the
// next scanline and, during the visible portion of the frame, outputs one
// pixel to the television.
//
// The CPU communicates with the PPU through the eight registers at $2000 to
// $2007 (mirrored through to $3fff), and through the OAM DMA register at
// $4014. The SystemBus in the memory package normalises register addresses
// before calling ReadRegister() and WriteRegister().
//
// Pattern tables are accessed through the cartridge. Nametable and palette
// memory are internal to the PPU. The nametable mirroring mode is queried
// from the cartridge on every access because some mappers change it while
// the program is running.
//
// Scrolling follows the well known "loopy" model: a current VRAM address (v),
// a temporary VRAM address (t), a fine X scroll and a write toggle.
package ppu
