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

// Package bus defines the access patterns for the different parts of the
// emulation. The CPU sees memory through the CPUBus interface and the PPU sees
// the pattern tables of the cartridge through the ChrBus interface.
//
// The DebugBus is for the use of diagnostic tools, such as the disassembly
// package, which need to see memory without causing the side-effects of a
// normal read.
package bus
