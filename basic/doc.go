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


// Package basic runs a 6502 BASIC interpreter image on the CPU. The image is
// loaded into flat memory at $C000 and started at $E07A. The two input/output
// subroutines of the interpreter are replaced with hooks that read from and
// write to the host terminal.
//
// The memory below $C000 is RAM. The CPU is not connected to any of the other
// NES hardware.
package basic
