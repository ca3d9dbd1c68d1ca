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

// Package instructions defines the instruction set of the 6502 CPU. The
// Definition type describes an instruction and the GetDefinitions() function
// returns the table of all 256 opcodes, indexed by opcode.
//
// Opcodes that do not have a definition are nil in the table. Executing one
// of these opcodes is an error. The definition table includes the unofficial
// opcodes that are used by commercial software and by CPU test programs. These
// are marked with the Unofficial field.
package instructions
