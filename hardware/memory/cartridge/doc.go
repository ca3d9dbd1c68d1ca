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

// Package cartridge implements the mappers of the cartridges that can be
// attached to the console.
//
// A mapper translates addresses in the cartridge area of the CPU address space
// ($4020 to $ffff) and in the pattern table area of the PPU address space
// ($0000 to $1fff) into the physical PRG and CHR storage of the cartridge.
// Most mappers also implement bank switching, whereby writes to ROM addresses
// change which part of the storage is visible through a window.
//
// The mapper also decides which physical nametable each of the four logical
// nametables is routed to. See the Mirroring type.
//
// Mappers are created with the NewMapper() function, which selects the correct
// implementation from the mapper number in the iNES header.
package cartridge
