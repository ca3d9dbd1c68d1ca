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

// Package memory implements the memory system of the console. The CPU sees a
// single 64K address space through the SystemBus type. The system bus maps
// each address to the device that responds to it:
//
//	                           ---- RAM ($0000 to $1fff, mirrored every 2K)
//	                          |
//	                          |---- PPU registers ($2000 to $3fff, mirrored every 8 bytes)
//	    CPU ---- cpu bus ---- *
//	                          |---- APU and IO registers ($4000 to $401f)
//	                          |
//	                           ---- Cartridge ($4020 to $ffff)
//
// A write to the OAMDMA address ($4014) copies a 256 byte page of RAM into the
// PPU's object attribute memory. The CPU is not stalled for the duration of
// the copy.
//
// Every read and write updates the open bus value. This is the value on the
// data bus and is returned by reads from addresses that nothing responds to.
// The emulation of the open bus is not complete. Registers that drive only
// some of the data pins use the open bus value for the undriven pins only
// where noted by the PPU and controller implementations.
//
// The FlatMemory type is an alternative to SystemBus that maps the entire
// address space to RAM. It is used to run 6502 programs that do not need the
// rest of the console.
package memory
